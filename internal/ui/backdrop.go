package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const backdropGridStep = 48

// Backdrop is the screen the sheet slides over: a map-style grid with one pin
// per sheet row. Its scrollable area stops above the sheet via BottomInset.
type Backdrop struct {
	Scroll      ScrollState
	BottomInset float64
	Highlight   int // pin drawn highlighted, -1 for none

	pins [][2]float64
}

// NewBackdrop places count pins on a deterministic spiral.
func NewBackdrop(count int) *Backdrop {
	b := &Backdrop{Highlight: -1}
	for i := 0; i < count; i++ {
		angle := float64(i) * 2.4
		r := 60 + float64(i)*28
		b.pins = append(b.pins, [2]float64{math.Cos(angle) * r, math.Sin(angle)*r + r})
	}
	return b
}

// Update recomputes the scroll range for a w×h screen.
func (b *Backdrop) Update(w, h float64) {
	var maxY float64
	for _, p := range b.pins {
		maxY = max(maxY, h/3+p[1])
	}
	b.Scroll.SetExtent(maxY+backdropGridStep, h, b.BottomInset)
	b.Scroll.Animate()
}

// Draw renders the grid, roads and pins shifted by the scroll position.
func (b *Backdrop) Draw(dst *ebiten.Image) {
	bounds := dst.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	sy := b.Scroll.ScrollY

	dst.Fill(ColorBackground)

	start := -math.Mod(sy, backdropGridStep)
	for y := start; y < h; y += backdropGridStep {
		vector.StrokeLine(dst, 0, float32(y), float32(w), float32(y), 1, ColorBackdropGrid, false)
	}
	for x := 0.0; x < w; x += backdropGridStep {
		vector.StrokeLine(dst, float32(x), 0, float32(x), float32(h), 1, ColorBackdropGrid, false)
	}
	// a couple of roads
	vector.StrokeLine(dst, 0, float32(h*0.3-sy), float32(w), float32(h*0.45-sy), 10, ColorBackdropRoad, true)
	vector.StrokeLine(dst, float32(w*0.6), float32(-sy), float32(w*0.4), float32(h*1.5-sy), 8, ColorBackdropRoad, true)

	for i, p := range b.pins {
		clr := ColorPrimary
		if i == b.Highlight {
			clr = ColorHighlight
		}
		drawPin(dst, float32(w/2+p[0]), float32(h/3+p[1]-sy), 7, clr)
	}
}
