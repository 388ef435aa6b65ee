package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/snapsheet/internal/panel"
)

// drawChevron draws an up or down chevron centered at (cx, cy). Nothing is
// drawn for AffordanceNone.
func drawChevron(dst *ebiten.Image, cx, cy, size float32, dir panel.Affordance, clr color.Color) {
	var tip, wing float32
	switch dir {
	case panel.AffordanceUp:
		tip, wing = cy-size/2, cy+size/2
	case panel.AffordanceDown:
		tip, wing = cy+size/2, cy-size/2
	default:
		return
	}
	vector.StrokeLine(dst, cx-size, wing, cx, tip, 2.5, clr, true)
	vector.StrokeLine(dst, cx, tip, cx+size, wing, 2.5, clr, true)
}

// drawPill draws a capsule whose corner radius is half its height.
func drawPill(dst *ebiten.Image, x, y, w, h float32, clr color.Color) {
	r := h / 2
	vector.DrawFilledRect(dst, x+r, y, w-2*r, h, clr, true)
	vector.DrawFilledCircle(dst, x+r, y+r, r, clr, true)
	vector.DrawFilledCircle(dst, x+w-r, y+r, r, clr, true)
}

// drawTopRoundedRect fills a rectangle with its top-left and top-right corners
// rounded by r. clr must be opaque; the pieces overlap.
func drawTopRoundedRect(dst *ebiten.Image, x, y, w, h, r float32, clr color.Color) {
	r = min(r, w/2, h)
	vector.DrawFilledRect(dst, x, y+r, w, h-r, clr, true)
	vector.DrawFilledRect(dst, x+r, y, w-2*r, r, clr, true)
	vector.DrawFilledCircle(dst, x+r, y+r, r, clr, true)
	vector.DrawFilledCircle(dst, x+w-r, y+r, r, clr, true)
}

// drawPin draws a map pin with its tip at (x, y).
func drawPin(dst *ebiten.Image, x, y, r float32, clr color.Color) {
	vector.DrawFilledCircle(dst, x, y-r*2, r, clr, true)
	vector.StrokeLine(dst, x, y-r*2, x, y, r*0.5, clr, true)
	vector.DrawFilledCircle(dst, x, y-r*2, r*0.4, ColorSurface, true)
}
