package panel

import (
	"log"
	"time"
)

// RubberBandFactor scales drag movement past the Peeking stop.
const RubberBandFactor = 0.5

// Delegate receives panel lifecycle notifications. All methods are called
// synchronously from the goroutine that drives the Controller.
type Delegate interface {
	// PanelDidReveal is called once the initial reveal animation has ended.
	PanelDidReveal()
	// PanelDidSnap is called when a snap animation ends or is interrupted.
	PanelDidSnap(pos SnapPosition, completed bool)
	// PanelDidFinish is called when the user picks a content row.
	PanelDidFinish(row int)
}

// Options tunes the controller.
type Options struct {
	Sensitivity  float64
	SnapDuration time.Duration
	ShortRatio   float64
	FadeFraction float64
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		Sensitivity:  DefaultSensitivity,
		SnapDuration: DefaultSnapDuration,
		ShortRatio:   DefaultShortRatio,
		FadeFraction: DefaultFadeFraction,
	}
}

// Controller owns the panel offset and enabled flag, maps gestures to snap
// positions and keeps the visual state in sync with the offset.
//
// A Controller is not safe for concurrent use; drive it from the UI loop.
type Controller struct {
	opts     Options
	metrics  LayoutMetrics
	offsets  Offsets
	delegate Delegate

	offset  float64
	enabled bool
	visual  VisualState

	anim      *transition
	targetPos SnapPosition
	position  SnapPosition // last snap position reached
	settled   bool         // offset sits exactly on position

	lastVelocity float64
}

// NewController creates a disabled controller. Call SetMetrics before feeding
// it gestures.
func NewController(opts Options) *Controller {
	if opts.ShortRatio <= 0 {
		opts.ShortRatio = DefaultShortRatio
	}
	if opts.FadeFraction <= 0 {
		opts.FadeFraction = DefaultFadeFraction
	}
	c := &Controller{opts: opts}
	c.refresh()
	return c
}

// SetDelegate registers the notification target. nil disables notifications.
func (c *Controller) SetDelegate(d Delegate) {
	c.delegate = d
}

// SetMetrics recomputes the snap offsets from a new layout pass. A settled
// panel stays pinned to its snap position and an in-flight snap is retargeted.
func (c *Controller) SetMetrics(m LayoutMetrics) {
	if err := m.Validate(c.opts.ShortRatio); err != nil {
		log.Printf("panel: degenerate layout metrics, offsets sanitized: %v", err)
	}
	c.metrics = m
	c.offsets = DeriveOffsets(m, c.opts.ShortRatio)

	switch {
	case c.anim != nil:
		c.anim.to = c.offsets.At(c.targetPos)
	case c.settled:
		c.offset = c.offsets.At(c.position)
	}
	c.offset = max(c.offset, c.offsets.Full)
	c.refresh()
}

// Offsets returns the current snap offsets.
func (c *Controller) Offsets() Offsets { return c.offsets }

// Offset returns the current vertical offset of the panel's top edge.
func (c *Controller) Offset() float64 { return c.offset }

// Target returns the offset the panel is animating to, or the current offset
// when idle.
func (c *Controller) Target() float64 {
	if c.anim != nil {
		return c.anim.to
	}
	return c.offset
}

// Position returns the last snap position reached and whether the panel still
// rests there.
func (c *Controller) Position() (SnapPosition, bool) { return c.position, c.settled }

// Visual returns the visual state for the current offset.
func (c *Controller) Visual() VisualState { return c.visual }

// Enabled reports whether the panel accepts drag and tap input.
func (c *Controller) Enabled() bool { return c.enabled }

// Animating reports whether a snap is in flight.
func (c *Controller) Animating() bool { return c.anim != nil }

// LastVelocity returns the release velocity of the last drag.
func (c *Controller) LastVelocity() float64 { return c.lastVelocity }

// SetEnabled toggles user interaction. It never starts a snap by itself.
func (c *Controller) SetEnabled(enabled bool) {
	c.enabled = enabled
	c.refresh()
}

// DragUpdate moves the panel by deltaY, following the finger directly.
// The offset never goes above Full; past Peeking movement is damped and capped
// at one header height.
func (c *Controller) DragUpdate(deltaY float64) {
	if !c.enabled {
		return
	}
	c.interrupt()
	c.settled = false

	next := c.offset + deltaY
	if deltaY > 0 && next > c.offsets.Peeking {
		over := next - max(c.offset, c.offsets.Peeking)
		next -= over * (1 - RubberBandFactor)
		next = min(next, max(c.offsets.Peeking+c.overscrollLimit(), c.offset))
	}
	c.offset = max(next, c.offsets.Full)
	c.refresh()
}

// DragEnd resolves the release velocity to a snap position and animates there.
func (c *Controller) DragEnd(velocityY float64) {
	if !c.enabled {
		return
	}
	c.lastVelocity = velocityY
	c.SnapTo(ResolveSnapOnGestureEnd(c.offset, velocityY, c.offsets, c.opts.Sensitivity), nil)
}

// TapHeader toggles between Peeking and Full.
func (c *Controller) TapHeader() {
	if !c.enabled {
		return
	}
	c.SnapTo(TapTarget(c.offset, c.offsets.Full), nil)
}

// Step snaps to the neighbouring stop in direction d, counting from the stop
// being animated to, or the nearest stop when idle. Keyboard equivalent of a drag.
func (c *Controller) Step(d Direction) {
	if !c.enabled {
		return
	}
	from := c.targetPos
	if c.anim == nil {
		from = ResolveSnapOnGestureEnd(c.offset, 0, c.offsets, c.opts.Sensitivity)
	}
	c.SnapTo(from.Step(d), nil)
}

// SelectContent reports a tap on content row. It is ignored unless the panel is
// enabled and its content is interactive.
func (c *Controller) SelectContent(row int) bool {
	if !c.enabled || !c.visual.ContentInteractive {
		return false
	}
	if c.delegate != nil {
		c.delegate.PanelDidFinish(row)
	}
	return true
}

// SnapTo animates the panel to pos. An in-flight snap is interrupted first and
// its callback receives false; the new snap starts from the current offset.
// onComplete may be nil.
func (c *Controller) SnapTo(pos SnapPosition, onComplete func(completed bool)) {
	c.interrupt()
	c.settled = false
	c.targetPos = pos
	c.anim = newTransition(c.offset, c.offsets.At(pos), c.opts.SnapDuration, func(completed bool) {
		if completed {
			c.position = pos
			c.settled = true
		}
		if c.delegate != nil {
			c.delegate.PanelDidSnap(pos, completed)
		}
		if onComplete != nil {
			onComplete(completed)
		}
	})
}

// Reveal performs the initial setup: the panel is disabled, placed at
// offscreen and animated to Peeking. PanelDidReveal and onRevealed fire when
// that snap ends; the host enables interaction from there.
func (c *Controller) Reveal(offscreen float64, onRevealed func()) {
	c.interrupt()
	c.settled = false
	c.enabled = false
	c.offset = max(offscreen, c.offsets.Full)
	c.refresh()
	c.SnapTo(Peeking, func(bool) {
		if c.delegate != nil {
			c.delegate.PanelDidReveal()
		}
		if onRevealed != nil {
			onRevealed()
		}
	})
}

// Update advances the in-flight snap by dt. Call once per frame.
func (c *Controller) Update(dt time.Duration) {
	if c.anim == nil {
		return
	}
	v, done := c.anim.step(dt)
	c.offset = max(v, c.offsets.Full)
	c.refresh()
	if done {
		a := c.anim
		c.anim = nil
		a.finish(true)
	}
}

// interrupt cancels the in-flight snap. A completion callback may start
// another snap; that one is interrupted too, so no transition is left running.
func (c *Controller) interrupt() {
	for c.anim != nil {
		a := c.anim
		c.anim = nil
		a.finish(false)
	}
}

func (c *Controller) overscrollLimit() float64 {
	return c.metrics.HeaderHeight
}

func (c *Controller) refresh() {
	c.visual = ComputeVisual(c.offset, c.offsets, c.metrics, c.enabled, c.opts.FadeFraction)
}
