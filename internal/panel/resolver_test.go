package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testOffsets = Offsets{Peeking: 800, Short: 600, Full: 47}

func TestNearest(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		candidates []float64
		want       float64
	}{
		{"empty returns value", 42, nil, 42},
		{"single", 42, []float64{7}, 7},
		{"closest wins", 590, []float64{800, 600, 47}, 600},
		{"below all", -10, []float64{800, 600, 47}, 47},
		{"tie keeps first", 50, []float64{40, 60}, 40},
		{"tie keeps first reversed", 50, []float64{60, 40}, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nearest(tt.value, tt.candidates...))
		})
	}
}

func TestIsVelocityDecisive(t *testing.T) {
	tests := []struct {
		velocity    float64
		sensitivity float64
		want        bool
	}{
		{300, 0.7, false},
		{-300, 0.7, false},
		{300.5, 0.7, true},
		{-1200, 0.7, true},
		{0.001, 1.0, true},
		{0, 1.0, false},
		{999, 0.0, false},
		{1000, 0.0, false},
		{1001, 0.0, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsVelocityDecisive(tt.velocity, tt.sensitivity),
			"IsVelocityDecisive(%v, %v)", tt.velocity, tt.sensitivity)
	}
}

func TestResolveSnapOnGestureEnd(t *testing.T) {
	tests := []struct {
		name     string
		offset   float64
		velocity float64
		want     SnapPosition
	}{
		{"fast upward flick goes full", 700, -1200, Full},
		{"fast upward flick from short goes full", 600, -1200, Full},
		{"fast downward flick near top stops at short", 100, 1200, Short},
		{"fast downward flick past midpoint goes peeking", 500, 1200, Peeking},
		{"fast downward flick above midpoint stops at short", 420, 1200, Short},
		{"fast downward flick at short goes peeking", 600, 1200, Peeking},
		{"slow release near peeking", 780, 50, Peeking},
		{"slow release near short", 640, 50, Short},
		{"slow release near full", 200, -50, Full},
		{"velocity at threshold is not decisive", 650, 300, Short},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveSnapOnGestureEnd(tt.offset, tt.velocity, testOffsets, DefaultSensitivity)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTravelDirection(t *testing.T) {
	assert.Equal(t, Down, TravelDirection(0, 47))
	assert.Equal(t, Down, TravelDirection(47, 47))
	assert.Equal(t, Up, TravelDirection(47.5, 47))
	assert.Equal(t, Up, TravelDirection(800, 47))
	assert.Equal(t, Up, TravelDirection(-1, 47))
}

func TestTapTarget(t *testing.T) {
	assert.Equal(t, Peeking, TapTarget(47, 47))
	assert.Equal(t, Full, TapTarget(600, 47))
	assert.Equal(t, Full, TapTarget(800, 47))
}
