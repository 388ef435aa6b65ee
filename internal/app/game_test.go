package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/snapsheet/internal/config"
	"github.com/depeter/snapsheet/internal/gesture"
	"github.com/depeter/snapsheet/internal/panel"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(config.DefaultConfig(), DemoPlaces)
	g.Layout(430, 932)
	g.syncLayout()
	return g
}

func settle(g *Game) {
	for i := 0; i < 1000 && g.Panel.Animating(); i++ {
		g.Panel.Update(16 * time.Millisecond)
	}
}

func TestMetricsFor(t *testing.T) {
	g := NewGame(config.DefaultConfig(), nil)
	m := g.metricsFor(430, 932)

	assert.Equal(t, 932.0, m.ContainerHeight)
	assert.Equal(t, 898.0, m.SafeAreaBottom)
	assert.True(t, m.HasSafeAreaBottom)
	assert.Equal(t, 47.0, m.TopInset)

	o := panel.DeriveOffsets(m, panel.DefaultShortRatio)
	assert.Equal(t, 810.0, o.Peeking)
}

func TestFirstLayoutStartsReveal(t *testing.T) {
	g := newTestGame(t)

	assert.True(t, g.Panel.Animating())
	assert.Equal(t, 932.0, g.Panel.Offset())
	assert.False(t, g.Panel.Enabled())

	// taps before the reveal finishes do nothing
	g.ShowPanel()
	assert.False(t, g.Panel.Enabled())

	settle(g)
	assert.True(t, g.revealed)
	assert.Equal(t, g.Panel.Offsets().Peeking, g.Panel.Offset())
	assert.Equal(t, 932.0-810.0, g.Backdrop.BottomInset)
}

func TestShowPanelSnapsToStartPosition(t *testing.T) {
	g := newTestGame(t)
	settle(g)

	g.ShowPanel()
	require.True(t, g.Panel.Enabled())
	settle(g)

	assert.Equal(t, g.Panel.Offsets().Short, g.Panel.Offset())
	assert.InDelta(t, 932-g.Panel.Offsets().Short, g.Backdrop.BottomInset, 1e-9)
}

func TestTapOutsideSheetShowsPanel(t *testing.T) {
	g := newTestGame(t)
	settle(g)

	g.handlePointer(gesture.Event{Kind: gesture.Tap, X: 100, Y: 200})
	settle(g)
	assert.True(t, g.Panel.Enabled())
	assert.Equal(t, g.Panel.Offsets().Short, g.Panel.Offset())
}

func TestTapHeaderTogglesFull(t *testing.T) {
	g := newTestGame(t)
	settle(g)
	g.ShowPanel()
	settle(g)

	y := g.Panel.Offset() + 10
	g.handlePointer(gesture.Event{Kind: gesture.Tap, X: 100, Y: y})
	settle(g)
	assert.Equal(t, g.Panel.Offsets().Full, g.Panel.Offset())
}

func TestTapRowSelectsPlace(t *testing.T) {
	g := newTestGame(t)
	settle(g)
	g.ShowPanel()
	settle(g)

	y := g.Panel.Offset() + g.Config.Panel.HeaderHeight + 5
	g.handlePointer(gesture.Event{Kind: gesture.Tap, X: 100, Y: y})
	assert.Equal(t, 0, g.Sheet.Selected)
	assert.Equal(t, 0, g.Backdrop.Highlight)
}

func TestDragOnSheetMovesPanel(t *testing.T) {
	g := newTestGame(t)
	settle(g)
	g.ShowPanel()
	settle(g)
	start := g.Panel.Offset()

	y := start + 100
	g.handlePointer(gesture.Event{Kind: gesture.DragBegin, StartY: y, DeltaY: -20})
	g.handlePointer(gesture.Event{Kind: gesture.DragUpdate, StartY: y, DeltaY: -30})
	assert.InDelta(t, start-50, g.Panel.Offset(), 1e-9)

	g.handlePointer(gesture.Event{Kind: gesture.DragEnd, StartY: y, VelocityY: -1500})
	settle(g)
	assert.Equal(t, g.Panel.Offsets().Full, g.Panel.Offset())
	assert.Equal(t, dragNone, g.drag)
}

func TestDragOnBackdropScrollsBackdrop(t *testing.T) {
	g := newTestGame(t)
	settle(g)
	g.Backdrop.Update(430, 932)
	before := g.Panel.Offset()

	g.handlePointer(gesture.Event{Kind: gesture.DragBegin, StartY: 100, DeltaY: -40})
	g.handlePointer(gesture.Event{Kind: gesture.DragEnd, StartY: 100, VelocityY: -2000})

	assert.Equal(t, before, g.Panel.Offset())
	assert.False(t, g.Panel.Animating())
	assert.Equal(t, 40.0, g.Backdrop.Scroll.TargetScrollY)
}

func TestResizeKeepsPanelPinned(t *testing.T) {
	g := newTestGame(t)
	settle(g)
	g.ShowPanel()
	settle(g)

	g.Layout(430, 800)
	g.syncLayout()
	assert.InDelta(t, 800*panel.DefaultShortRatio, g.Panel.Offset(), 1e-9)
	assert.InDelta(t, 800-800*panel.DefaultShortRatio, g.Backdrop.BottomInset, 1e-9)
}

func TestParseKey(t *testing.T) {
	for _, name := range []string{"Up", "down", "SPACE", "e", "F", "7"} {
		_, ok := parseKey(name)
		assert.True(t, ok, name)
	}
	_, ok := parseKey("hyper")
	assert.False(t, ok)
}

func TestSnapToPeekingResetsSheetScroll(t *testing.T) {
	g := newTestGame(t)
	settle(g)
	g.ShowPanel()
	settle(g)
	g.Sheet.Scroll.ScrollY = 120
	g.Sheet.Scroll.TargetScrollY = 120

	g.Panel.SnapTo(panel.Peeking, nil)
	settle(g)
	assert.Zero(t, g.Sheet.Scroll.ScrollY)
	assert.Zero(t, g.Sheet.Scroll.TargetScrollY)
}

func TestBackdropInsetTracksFlick(t *testing.T) {
	g := newTestGame(t)
	settle(g)
	g.ShowPanel()
	settle(g)

	y := g.Panel.Offset() + 100
	g.handlePointer(gesture.Event{Kind: gesture.DragBegin, StartY: y, DeltaY: -40})
	g.handlePointer(gesture.Event{Kind: gesture.DragEnd, StartY: y, VelocityY: -2000})
	settle(g)

	require.Equal(t, g.Panel.Offsets().Full, g.Panel.Offset())
	assert.Equal(t, 932-g.Panel.Offsets().Full, g.Backdrop.BottomInset)

	g.Panel.Step(panel.Down)
	settle(g)
	assert.InDelta(t, 932-g.Panel.Offsets().Short, g.Backdrop.BottomInset, 1e-9)
}
