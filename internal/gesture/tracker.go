// Package gesture turns raw pointer samples into drag and tap events.
package gesture

import (
	"math"
	"time"
)

// Kind identifies what a pointer sample meant.
type Kind int

const (
	None Kind = iota
	DragBegin
	DragUpdate
	DragEnd
	Tap
)

func (k Kind) String() string {
	switch k {
	case DragBegin:
		return "drag-begin"
	case DragUpdate:
		return "drag-update"
	case DragEnd:
		return "drag-end"
	case Tap:
		return "tap"
	default:
		return "none"
	}
}

const (
	DefaultTapSlop        = 10.0
	DefaultTapTimeout     = 300 * time.Millisecond
	DefaultVelocityWindow = 100 * time.Millisecond
)

// Event is the result of feeding one pointer sample to a Tracker.
type Event struct {
	Kind Kind

	// StartX, StartY is where the pointer went down.
	StartX, StartY float64
	X, Y           float64

	// DeltaY is the vertical movement since the previous drag event.
	DeltaY float64
	// VelocityY is the release velocity in points per second, set on DragEnd.
	VelocityY float64
}

type sample struct {
	y float64
	t time.Time
}

// Tracker classifies a single pointer's press/move/release sequence.
type Tracker struct {
	TapSlop        float64
	TapTimeout     time.Duration
	VelocityWindow time.Duration

	pressed  bool
	dragging bool
	startX   float64
	startY   float64
	startT   time.Time
	lastY    float64
	samples  []sample
}

// NewTracker returns a Tracker with the default thresholds.
func NewTracker() *Tracker {
	return &Tracker{
		TapSlop:        DefaultTapSlop,
		TapTimeout:     DefaultTapTimeout,
		VelocityWindow: DefaultVelocityWindow,
	}
}

// Active reports whether a pointer is currently down.
func (tr *Tracker) Active() bool { return tr.pressed }

// Dragging reports whether the current press has turned into a drag.
func (tr *Tracker) Dragging() bool { return tr.dragging }

// Press starts tracking a pointer that went down at (x, y).
func (tr *Tracker) Press(x, y float64, t time.Time) Event {
	tr.reset()
	tr.pressed = true
	tr.startX, tr.startY = x, y
	tr.startT = t
	tr.lastY = y
	tr.record(y, t)
	return Event{Kind: None, StartX: x, StartY: y, X: x, Y: y}
}

// Move feeds the pointer's position while it is held down.
func (tr *Tracker) Move(x, y float64, t time.Time) Event {
	if !tr.pressed {
		return Event{}
	}
	tr.record(y, t)
	ev := Event{StartX: tr.startX, StartY: tr.startY, X: x, Y: y}

	if !tr.dragging {
		if math.Hypot(x-tr.startX, y-tr.startY) <= tr.TapSlop {
			return ev
		}
		tr.dragging = true
		ev.Kind = DragBegin
	} else {
		ev.Kind = DragUpdate
	}
	ev.DeltaY = y - tr.lastY
	tr.lastY = y
	return ev
}

// Release ends the press at (x, y).
func (tr *Tracker) Release(x, y float64, t time.Time) Event {
	if !tr.pressed {
		return Event{}
	}
	tr.record(y, t)
	ev := Event{StartX: tr.startX, StartY: tr.startY, X: x, Y: y}

	switch {
	case tr.dragging:
		ev.Kind = DragEnd
		ev.DeltaY = y - tr.lastY
		ev.VelocityY = tr.velocity()
	case t.Sub(tr.startT) <= tr.TapTimeout && math.Hypot(x-tr.startX, y-tr.startY) <= tr.TapSlop:
		ev.Kind = Tap
	}
	tr.reset()
	return ev
}

// Cancel drops the current press without producing an event.
func (tr *Tracker) Cancel() {
	tr.reset()
}

func (tr *Tracker) record(y float64, t time.Time) {
	tr.samples = append(tr.samples, sample{y: y, t: t})
	cutoff := t.Add(-tr.VelocityWindow)
	i := 0
	for i < len(tr.samples)-1 && tr.samples[i].t.Before(cutoff) {
		i++
	}
	tr.samples = tr.samples[i:]
}

// velocity is the average vertical speed across the sample window.
func (tr *Tracker) velocity() float64 {
	if len(tr.samples) < 2 {
		return 0
	}
	first := tr.samples[0]
	last := tr.samples[len(tr.samples)-1]
	dt := last.t.Sub(first.t).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.y - first.y) / dt
}

func (tr *Tracker) reset() {
	tr.pressed = false
	tr.dragging = false
	tr.samples = tr.samples[:0]
}
