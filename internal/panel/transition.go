package panel

import "time"

// DefaultSnapDuration is how long a snap animation takes.
const DefaultSnapDuration = 500 * time.Millisecond

// transition animates a scalar from one value to another over a fixed duration.
// It is advanced explicitly by step, one call per frame.
type transition struct {
	from, to   float64
	duration   time.Duration
	elapsed    time.Duration
	onComplete func(completed bool)
	done       bool
}

func newTransition(from, to float64, duration time.Duration, onComplete func(bool)) *transition {
	return &transition{from: from, to: to, duration: duration, onComplete: onComplete}
}

// step advances the transition by dt and returns the current value and whether
// the transition reached its target.
func (t *transition) step(dt time.Duration) (float64, bool) {
	if dt > 0 {
		t.elapsed += dt
	}
	if t.duration <= 0 || t.elapsed >= t.duration {
		return t.to, true
	}
	p := EaseInOut(float64(t.elapsed) / float64(t.duration))
	return Lerp(t.from, t.to, p), false
}

// finish fires the completion callback once.
func (t *transition) finish(completed bool) {
	if t.done {
		return
	}
	t.done = true
	if t.onComplete != nil {
		t.onComplete(completed)
	}
}

// EaseInOut is a cubic ease-in-out curve mapping [0,1] onto [0,1].
func EaseInOut(p float64) float64 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	case p < 0.5:
		return 4 * p * p * p
	default:
		q := -2*p + 2
		return 1 - q*q*q/2
	}
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
