package ui

import "github.com/depeter/snapsheet/internal/panel"

// ScrollState provides reusable vertical scroll tracking with smooth animation.
// Embed this struct in views that need scrollable content.
type ScrollState struct {
	ScrollY       float64
	TargetScrollY float64
	MaxScrollY    float64
}

// ScrollBy moves the target scroll position by dy, clamped to the content.
func (s *ScrollState) ScrollBy(dy float64) {
	s.TargetScrollY = min(max(s.TargetScrollY+dy, 0), s.MaxScrollY)
}

// HandleMouseWheel updates the target scroll position from mouse wheel input.
func (s *ScrollState) HandleMouseWheel() {
	_, wy := MouseWheelDelta()
	if wy != 0 {
		s.ScrollBy(-wy * ScrollWheelSpeed)
	}
}

// SetExtent updates the scrollable range for content of contentH shown in a
// viewport of viewH with bottomInset reserved below it.
func (s *ScrollState) SetExtent(contentH, viewH, bottomInset float64) {
	s.MaxScrollY = max(contentH+bottomInset-viewH, 0)
	s.TargetScrollY = min(s.TargetScrollY, s.MaxScrollY)
}

// Animate performs smooth scroll interpolation. Call this once per frame.
func (s *ScrollState) Animate() {
	s.ScrollY = panel.Lerp(s.ScrollY, s.TargetScrollY, ScrollAnimSpeed)
}

// Reset sets scroll position back to top.
func (s *ScrollState) Reset() {
	s.ScrollY = 0
	s.TargetScrollY = 0
}
