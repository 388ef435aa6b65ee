package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMetrics() LayoutMetrics {
	return LayoutMetrics{
		ContainerHeight:   932,
		SafeAreaBottom:    898,
		HasSafeAreaBottom: true,
		HeaderHeight:      88,
		ScreenHeight:      932,
		TopInset:          47,
	}
}

func TestDeriveOffsets(t *testing.T) {
	o := DeriveOffsets(testMetrics(), DefaultShortRatio)

	assert.Equal(t, 810.0, o.Peeking)
	assert.InDelta(t, 624.44, o.Short, 1e-9)
	assert.Equal(t, 47.0, o.Full)

	assert.Equal(t, o.Peeking, o.At(Peeking))
	assert.Equal(t, o.Short, o.At(Short))
	assert.Equal(t, o.Full, o.At(Full))
}

func TestDeriveOffsetsHeaderMinY(t *testing.T) {
	m := testMetrics()
	m.HeaderMinY = 12
	assert.Equal(t, 822.0, DeriveOffsets(m, DefaultShortRatio).Peeking)
}

func TestDeriveOffsetsFallsBackToContainerSafeArea(t *testing.T) {
	m := testMetrics()
	m.HasSafeAreaBottom = false
	m.ContainerSafeAreaBottom = 900
	assert.Equal(t, 812.0, DeriveOffsets(m, DefaultShortRatio).Peeking)
}

func TestDeriveOffsetsSanitizesDegenerateMetrics(t *testing.T) {
	m := testMetrics()
	m.TopInset = 700 // below short
	require.Error(t, m.Validate(DefaultShortRatio))

	o := DeriveOffsets(m, DefaultShortRatio)
	assert.Equal(t, 700.0, o.Full)
	assert.Equal(t, 700.0, o.Short)
	assert.Equal(t, 810.0, o.Peeking)

	m.TopInset = 900 // below peeking
	o = DeriveOffsets(m, DefaultShortRatio)
	assert.Equal(t, 900.0, o.Peeking)
	assert.Equal(t, 900.0, o.Short)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, testMetrics().Validate(DefaultShortRatio))

	m := testMetrics()
	m.ScreenHeight = 2000 // short falls below peeking
	assert.Error(t, m.Validate(DefaultShortRatio))
}

func TestParseSnapPosition(t *testing.T) {
	for _, p := range []SnapPosition{Peeking, Short, Full} {
		got, err := ParseSnapPosition(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParseSnapPosition("half")
	assert.Error(t, err)
}

func TestSnapPositionStep(t *testing.T) {
	assert.Equal(t, Short, Peeking.Step(Up))
	assert.Equal(t, Full, Short.Step(Up))
	assert.Equal(t, Full, Full.Step(Up))
	assert.Equal(t, Short, Full.Step(Down))
	assert.Equal(t, Peeking, Short.Step(Down))
	assert.Equal(t, Peeking, Peeking.Step(Down))
}
