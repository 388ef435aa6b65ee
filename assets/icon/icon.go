package icon

import (
	"image"
	"image/color"
)

// Theme colors from the app
var (
	backdropCol  = color.RGBA{R: 0xE8, G: 0xEC, B: 0xE4, A: 0xFF}
	gridCol      = color.RGBA{R: 0xC8, G: 0xD0, B: 0xC0, A: 0xFF}
	sheetCol     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	indicatorCol = color.RGBA{R: 0xC7, G: 0xC7, B: 0xCC, A: 0xFF}
	pinCol       = color.RGBA{R: 0x00, G: 0x7A, B: 0xFF, A: 0xFF}
	frameCol     = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	// Phone frame with a map-style screen
	fillRoundedRect(img, s*0.18, s*0.04, s*0.64, s*0.92, s*0.10, false, frameCol)
	fillRoundedRect(img, s*0.22, s*0.08, s*0.56, s*0.84, s*0.07, false, backdropCol)
	for _, xf := range []float64{0.36, 0.50, 0.64} {
		fillRect(img, int(s*xf), int(s*0.08), max(1, size/64), int(s*0.40), gridCol)
	}
	fillCircle(img, s*0.42, s*0.26, s*0.05, pinCol)

	// Bottom sheet at the short position
	drawSheet(img, s)

	return img
}

func drawSheet(img *image.RGBA, s float64) {
	sheetX := s * 0.22
	sheetY := s * 0.48
	sheetW := s * 0.56
	sheetH := s * 0.44
	fillRoundedRect(img, sheetX, sheetY, sheetW, sheetH, s*0.07, true, sheetCol)

	// Drag indicator
	fillRoundedRect(img, s*0.42, sheetY+s*0.03, s*0.16, s*0.03, s*0.015, false, indicatorCol)

	// Content rows
	for i := 0; i < 3; i++ {
		y := sheetY + s*0.12 + float64(i)*s*0.09
		fillCircle(img, sheetX+s*0.07, y+s*0.015, s*0.02, pinCol)
		fillRect(img, int(sheetX+s*0.13), int(y), int(sheetW*0.65), max(1, int(s)/32), indicatorCol)
	}
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// fillRoundedRect fills a rounded rectangle. With topOnly set, the bottom
// corners stay square.
func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, topOnly bool, c color.Color) {
	x0 := int(xf)
	y0 := int(yf)
	x1 := int(xf + wf)
	y1 := int(yf + hf)
	r := rf
	bounds := img.Bounds()

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			// Check if inside rounded rect
			fx := float64(x)
			fy := float64(y)
			inside := true

			// Check corners
			if fx < xf+r && fy < yf+r {
				// Top-left corner
				dx := xf + r - fx
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy < yf+r {
				// Top-right corner
				dx := fx - (xf + wf - r)
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if topOnly {
				// square bottom corners
			} else if fx < xf+r && fy > yf+hf-r {
				// Bottom-left corner
				dx := xf + r - fx
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy > yf+hf-r {
				// Bottom-right corner
				dx := fx - (xf + wf - r)
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			}

			if inside {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	x0 := int(cx - r)
	y0 := int(cy - r)
	x1 := int(cx + r + 1)
	y1 := int(cy + r + 1)
	r2 := r * r

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	// Existing pixel
	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	// Alpha blend
	alpha := a0
	invAlpha := 0xFFFF - alpha
	nr := (r0*alpha + er*invAlpha) / 0xFFFF
	ng := (g0*alpha + eg*invAlpha) / 0xFFFF
	nb := (b0*alpha + eb*invAlpha) / 0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
