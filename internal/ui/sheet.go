package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/snapsheet/internal/panel"
)

// Sheet renders the bottom panel: header with drag indicator, title and
// chevron, followed by a scrollable list of rows. It holds no position of its
// own; every call takes the controller's current offset.
type Sheet struct {
	Title        string
	Rows         []string
	Subtitles    []string
	CornerRadius float64
	HeaderHeight float64

	Scroll   ScrollState
	Selected int // -1 when nothing is selected

	width float64
}

func NewSheet(title string, rows, subtitles []string, headerHeight, cornerRadius float64) *Sheet {
	return &Sheet{
		Title:        title,
		Rows:         rows,
		Subtitles:    subtitles,
		HeaderHeight: headerHeight,
		CornerRadius: cornerRadius,
		Selected:     -1,
	}
}

// SetWidth sets the sheet width from the host layout.
func (s *Sheet) SetWidth(w float64) { s.width = w }

// Contains reports whether (x, y) falls on the sheet at offset.
func (s *Sheet) Contains(x, y, offset float64) bool {
	return x >= 0 && x <= s.width && y >= offset
}

// HeaderContains reports whether (x, y) falls on the header at offset.
func (s *Sheet) HeaderContains(x, y, offset float64) bool {
	return PointInRect(x, y, 0, offset, s.width, s.HeaderHeight)
}

// RowAt returns the content row under (x, y).
func (s *Sheet) RowAt(x, y, offset float64) (int, bool) {
	if !s.Contains(x, y, offset) || s.HeaderContains(x, y, offset) {
		return 0, false
	}
	row := int((y - offset - s.HeaderHeight + s.Scroll.ScrollY) / RowHeight)
	if row < 0 || row >= len(s.Rows) {
		return 0, false
	}
	return row, true
}

// Update refreshes the scroll range for the current inset. viewH is the
// height of the sheet's frame.
func (s *Sheet) Update(v panel.VisualState, viewH float64) {
	contentH := float64(len(s.Rows)) * RowHeight
	s.Scroll.SetExtent(contentH, viewH-s.HeaderHeight, v.ContentInsetBottom)
	s.Scroll.Animate()
}

// Draw renders the sheet with its top edge at offset.
func (s *Sheet) Draw(dst *ebiten.Image, offset float64, v panel.VisualState) {
	bounds := dst.Bounds()
	if offset >= float64(bounds.Max.Y) {
		return
	}
	w := float32(s.width)
	top := float32(offset)
	h := float32(float64(bounds.Max.Y) - offset)

	drawTopRoundedRect(dst, 0, top, w, h, float32(s.CornerRadius), ColorSurface)

	s.drawHeader(dst, offset, v)
	s.drawContent(dst, offset, v)
}

func (s *Sheet) drawHeader(dst *ebiten.Image, offset float64, v panel.VisualState) {
	if v.DragIndicatorVisible {
		drawPill(dst, float32(s.width/2-DragIndicatorW/2), float32(offset+DragIndicatorY),
			DragIndicatorW, DragIndicatorH, ColorDragIndicator)
	}

	titleClr := ColorText
	if v.TitleDimmed {
		titleClr = ColorTextDisabled
	}
	cy := offset + s.HeaderHeight/2
	_, th := MeasureText(s.Title, FontSizeTitle)
	DrawText(dst, s.Title, SheetPadding, cy-th/2, FontSizeTitle, titleClr)

	drawChevron(dst, float32(s.width-SheetPadding-ChevronSize), float32(cy), ChevronSize, v.Affordance, ColorTextSecondary)

	vector.StrokeLine(dst, 0, float32(offset+s.HeaderHeight), float32(s.width), float32(offset+s.HeaderHeight),
		1, Faded(ColorSeparator, v.ContentAlpha), false)
}

func (s *Sheet) drawContent(dst *ebiten.Image, offset float64, v panel.VisualState) {
	if v.ContentAlpha <= 0 {
		return
	}
	bounds := dst.Bounds()
	clipTop := int(offset + s.HeaderHeight + 1)
	if clipTop >= bounds.Max.Y {
		return
	}
	content := dst.SubImage(image.Rect(0, clipTop, int(s.width), bounds.Max.Y)).(*ebiten.Image)

	a := v.ContentAlpha
	baseY := offset + s.HeaderHeight - s.Scroll.ScrollY
	for i, row := range s.Rows {
		y := baseY + float64(i)*RowHeight
		if y+RowHeight < float64(clipTop) {
			continue
		}
		if y > float64(bounds.Max.Y) {
			break
		}
		if i == s.Selected {
			vector.DrawFilledRect(content, 0, float32(y), float32(s.width), RowHeight, Faded(ColorSurfaceHover, a), false)
			drawPin(content, SheetPadding+6, float32(y+RowHeight/2+8), 5, Faded(ColorHighlight, a))
		} else {
			drawPin(content, SheetPadding+6, float32(y+RowHeight/2+8), 5, Faded(ColorPrimary, a))
		}

		textX := float64(SheetPadding + 24)
		maxW := s.width - textX - SheetPadding
		DrawText(content, TruncateText(row, FontSizeBody, maxW), textX, y+10, FontSizeBody, Faded(ColorText, a))
		if i < len(s.Subtitles) {
			DrawText(content, TruncateText(s.Subtitles[i], FontSizeSmall, maxW), textX, y+32, FontSizeSmall, Faded(ColorTextSecondary, a))
		}
		vector.StrokeLine(content, float32(textX), float32(y+RowHeight), float32(s.width), float32(y+RowHeight),
			1, Faded(ColorSeparator, a), false)
	}
}
