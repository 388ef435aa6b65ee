package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeVisualAlpha(t *testing.T) {
	m := testMetrics()
	o := DeriveOffsets(m, DefaultShortRatio)

	assert.InDelta(t, 1.0, ComputeVisual(o.Peeking*0.9, o, m, true, DefaultFadeFraction).ContentAlpha, 1e-9)
	assert.Equal(t, 1.0, ComputeVisual(o.Full, o, m, true, DefaultFadeFraction).ContentAlpha)
	assert.Equal(t, 0.0, ComputeVisual(o.Peeking, o, m, true, DefaultFadeFraction).ContentAlpha)
	assert.Equal(t, 0.0, ComputeVisual(o.Peeking+40, o, m, true, DefaultFadeFraction).ContentAlpha)
	assert.InDelta(t, 0.5, ComputeVisual(o.Peeking*0.95, o, m, true, DefaultFadeFraction).ContentAlpha, 1e-9)

	prev := 2.0
	for y := o.Peeking * 0.88; y <= o.Peeking*1.02; y += 1 {
		a := ComputeVisual(y, o, m, true, DefaultFadeFraction).ContentAlpha
		assert.LessOrEqual(t, a, prev, "alpha increased at offset %v", y)
		prev = a
	}
}

func TestComputeVisualInteractive(t *testing.T) {
	m := testMetrics()
	o := DeriveOffsets(m, DefaultShortRatio)

	assert.True(t, ComputeVisual(o.Short, o, m, true, DefaultFadeFraction).ContentInteractive)
	assert.False(t, ComputeVisual(o.Peeking, o, m, true, DefaultFadeFraction).ContentInteractive)
}

func TestComputeVisualZeroPeeking(t *testing.T) {
	o := Offsets{}
	assert.Equal(t, 0.0, ComputeVisual(0, o, LayoutMetrics{}, true, DefaultFadeFraction).ContentAlpha)
	assert.Equal(t, 1.0, ComputeVisual(-5, o, LayoutMetrics{}, true, DefaultFadeFraction).ContentAlpha)
}

func TestComputeVisualInset(t *testing.T) {
	m := testMetrics()
	o := DeriveOffsets(m, DefaultShortRatio)

	v := ComputeVisual(o.Short, o, m, true, DefaultFadeFraction)
	assert.InDelta(t, 932+o.Short-898, v.ContentInsetBottom, 1e-9)

	m.HasSafeAreaBottom = false
	v = ComputeVisual(100, o, m, true, DefaultFadeFraction)
	assert.Equal(t, 100.0, v.ContentInsetBottom) // container + offset - screen height
}

func TestComputeVisualAffordance(t *testing.T) {
	m := testMetrics()
	o := DeriveOffsets(m, DefaultShortRatio)

	assert.Equal(t, AffordanceDown, ComputeVisual(o.Full, o, m, true, DefaultFadeFraction).Affordance)
	assert.Equal(t, AffordanceUp, ComputeVisual(o.Short, o, m, true, DefaultFadeFraction).Affordance)
	assert.Equal(t, AffordanceUp, ComputeVisual(o.Peeking, o, m, true, DefaultFadeFraction).Affordance)

	v := ComputeVisual(o.Full, o, m, false, DefaultFadeFraction)
	assert.Equal(t, AffordanceNone, v.Affordance)
	assert.False(t, v.DragIndicatorVisible)
	assert.True(t, v.TitleDimmed)
}
