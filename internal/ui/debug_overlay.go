package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DebugOverlayVisible reports whether the overlay is shown.
func DebugOverlayVisible() bool { return debugOverlayVisible }

// DrawDebugOverlay draws lines of panel state in the top-left corner if visible.
func DrawDebugOverlay(screen *ebiten.Image, lines []string) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 10.0
		padY    = 8.0
		lineH   = 16.0
		marginL = 8.0
		marginT = 56.0
	)

	const title = "Debug: panel state (F12 to close)"
	panelH := float64(len(lines)+1)*lineH + padY*2
	panelW, _ := MeasureText(title, FontSizeCaption)
	for _, l := range lines {
		w, _ := MeasureText(l, FontSizeCaption)
		panelW = max(panelW, w)
	}
	panelW += padX * 2

	vector.DrawFilledRect(screen, marginL, marginT, float32(panelW), float32(panelH), ColorOverlay, false)

	x := marginL + padX
	y := marginT + padY
	DrawText(screen, title, x, y, FontSizeCaption, ColorPrimary)
	y += lineH
	for _, l := range lines {
		DrawText(screen, l, x, y, FontSizeCaption, ColorOverlayText)
		y += lineH
	}
}
