package panel

import "math"

// DefaultSensitivity is the snap movement sensitivity used when none is configured.
// Higher values lower the velocity needed for a flick to skip stops.
const DefaultSensitivity = 0.7

// Direction is the way the next header tap moves the panel.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// Nearest returns the candidate closest to value. Ties go to the earlier
// candidate. With no candidates, value is returned unchanged.
func Nearest(value float64, candidates ...float64) float64 {
	if len(candidates) == 0 {
		return value
	}
	best := candidates[0]
	bestDist := math.Abs(value - best)
	for _, c := range candidates[1:] {
		if d := math.Abs(value - c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// IsVelocityDecisive reports whether a release velocity (points per second) is
// fast enough to override nearest-position snapping.
func IsVelocityDecisive(velocity, sensitivity float64) bool {
	return math.Abs(velocity) > 1000*(1-sensitivity)
}

// ResolveSnapOnGestureEnd picks the snap position for a drag released at offset
// with the given vertical velocity. Negative velocity is upward.
func ResolveSnapOnGestureEnd(offset, velocity float64, o Offsets, sensitivity float64) SnapPosition {
	if IsVelocityDecisive(velocity, sensitivity) {
		switch {
		case velocity < 0:
			return Full
		case Nearest(offset, o.Full, o.Peeking) == o.Full && offset < o.Short:
			// a downward flick near the top stops at Short instead of skipping to Peeking
			return Short
		default:
			return Peeking
		}
	}

	switch Nearest(offset, o.Peeking, o.Short, o.Full) {
	case o.Full:
		return Full
	case o.Short:
		return Short
	default:
		return Peeking
	}
}

// TravelDirection returns Down while the panel sits at or above the Full
// offset, Up everywhere else.
func TravelDirection(offset, full float64) Direction {
	if offset >= 0 && offset <= full {
		return Down
	}
	return Up
}

// TapTarget returns where a header tap sends a panel currently at offset.
func TapTarget(offset, full float64) SnapPosition {
	if TravelDirection(offset, full) == Up {
		return Full
	}
	return Peeking
}
