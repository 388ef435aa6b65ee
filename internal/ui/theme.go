package ui

import "image/color"

// Colors — light sheet over a muted map-style backdrop
var (
	ColorBackground    = color.RGBA{R: 0xE8, G: 0xEC, B: 0xE4, A: 0xFF}
	ColorBackdropGrid  = color.RGBA{R: 0xD2, G: 0xD8, B: 0xCC, A: 0xFF}
	ColorBackdropRoad  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0xF2, G: 0xF2, B: 0xF7, A: 0xFF}
	ColorSeparator     = color.RGBA{R: 0xD8, G: 0xD8, B: 0xDE, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0x00, G: 0x7A, B: 0xFF, A: 0xFF}
	ColorText          = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x6C, G: 0x6C, B: 0x70, A: 0xFF}
	ColorTextDisabled  = color.RGBA{R: 0x8E, G: 0x8E, B: 0x93, A: 0xFF}
	ColorDragIndicator = color.RGBA{R: 0xC7, G: 0xC7, B: 0xCC, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorOverlayText   = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorHighlight     = color.RGBA{R: 0xFF, G: 0x3B, B: 0x30, A: 0xFF}
)

// Layout constants
const (
	DragIndicatorW = 36
	DragIndicatorH = 5
	DragIndicatorY = 6

	SheetPadding = 20
	RowHeight    = 56

	ChevronSize = 9

	FontSizeTitle   = 22
	FontSizeBody    = 16
	FontSizeSmall   = 13
	FontSizeCaption = 11

	ScrollAnimSpeed = 0.12

	// ScrollWheelSpeed is pixels per mouse wheel scroll unit.
	ScrollWheelSpeed = 40
)

// Faded scales a color by alpha, keeping it premultiplied.
func Faded(c color.RGBA, alpha float64) color.RGBA {
	alpha = min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
