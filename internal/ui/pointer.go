package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/snapsheet/internal/gesture"
)

// PointerSource polls the left mouse button and the first active touch and
// feeds them to a gesture.Tracker. Only one pointer is tracked at a time; a
// touch takes precedence over the mouse.
type PointerSource struct {
	touchID  ebiten.TouchID
	touching bool
	mouse    bool

	touchIDs []ebiten.TouchID
}

// Poll reads this tick's pointer state and returns the resulting gesture event.
func (ps *PointerSource) Poll(tr *gesture.Tracker, now time.Time) gesture.Event {
	if ps.touching {
		if inpututil.IsTouchJustReleased(ps.touchID) {
			ps.touching = false
			x, y := inpututil.TouchPositionInPreviousTick(ps.touchID)
			return tr.Release(float64(x), float64(y), now)
		}
		x, y := ebiten.TouchPosition(ps.touchID)
		return tr.Move(float64(x), float64(y), now)
	}

	ps.touchIDs = inpututil.AppendJustPressedTouchIDs(ps.touchIDs[:0])
	if len(ps.touchIDs) > 0 {
		if ps.mouse {
			ps.mouse = false
			tr.Cancel()
		}
		ps.touchID = ps.touchIDs[0]
		ps.touching = true
		x, y := ebiten.TouchPosition(ps.touchID)
		return tr.Press(float64(x), float64(y), now)
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		ps.mouse = true
		return tr.Press(float64(x), float64(y), now)
	case ps.mouse && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		ps.mouse = false
		return tr.Release(float64(x), float64(y), now)
	case ps.mouse && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		return tr.Move(float64(x), float64(y), now)
	}
	return gesture.Event{}
}

// CursorPosition returns the cursor position as floats.
func CursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

// MouseWheelDelta returns the mouse wheel scroll delta.
func MouseWheelDelta() (dx, dy float64) {
	return ebiten.Wheel()
}

// PointInRect returns true if point (px, py) is inside the rectangle (rx, ry, rw, rh).
func PointInRect(px, py float64, rx, ry, rw, rh float64) bool {
	return px >= rx && px <= rx+rw &&
		py >= ry && py <= ry+rh
}
