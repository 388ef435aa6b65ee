package app

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/snapsheet/internal/config"
	"github.com/depeter/snapsheet/internal/gesture"
	"github.com/depeter/snapsheet/internal/panel"
	"github.com/depeter/snapsheet/internal/ui"
)

// dragOwner records which view a drag started on.
type dragOwner int

const (
	dragNone dragOwner = iota
	dragSheet
	dragBackdrop
)

// Game implements ebiten.Game and hosts the bottom panel over a backdrop.
type Game struct {
	Config   *config.Config
	Panel    *panel.Controller
	Sheet    *ui.Sheet
	Backdrop *ui.Backdrop
	Places   []Place

	Width, Height int

	tracker *gesture.Tracker
	pointer ui.PointerSource
	metrics panel.LayoutMetrics

	revealStarted bool
	revealed      bool
	drag          dragOwner
	lastGesture   gesture.Kind
}

// NewGame creates the Game with all dependencies.
func NewGame(cfg *config.Config, places []Place) *Game {
	names := make([]string, len(places))
	details := make([]string, len(places))
	for i, p := range places {
		names[i] = p.Name
		details[i] = p.Detail
	}

	g := &Game{
		Config:   cfg,
		Panel:    panel.NewController(cfg.PanelOptions()),
		Sheet:    ui.NewSheet(cfg.Panel.Title, names, details, cfg.Panel.HeaderHeight, cfg.Panel.CornerRadius),
		Backdrop: ui.NewBackdrop(len(places)),
		Places:   places,
		Width:    cfg.UI.Width,
		Height:   cfg.UI.Height,
		tracker:  gesture.NewTracker(),
	}
	g.Panel.SetDelegate(g)
	return g
}

// metricsFor derives the panel's layout metrics for a w×h window. The panel
// frame is the size of the window; the header sits at the top of the frame.
func (g *Game) metricsFor(w, h int) panel.LayoutMetrics {
	uc := g.Config.UI
	return panel.LayoutMetrics{
		ContainerHeight:   float64(h),
		SafeAreaBottom:    float64(h) - uc.HomeIndicatorHeight,
		HasSafeAreaBottom: true,
		HeaderHeight:      g.Config.Panel.HeaderHeight,
		HeaderMinY:        0,
		ScreenHeight:      float64(h),
		TopInset:          uc.StatusBarHeight,
	}
}

// syncLayout pushes new metrics to the panel when the window size changed and
// starts the reveal on the first layout pass.
func (g *Game) syncLayout() {
	m := g.metricsFor(g.Width, g.Height)
	resized := m != g.metrics
	if resized {
		g.metrics = m
		g.Panel.SetMetrics(m)
		g.Sheet.SetWidth(float64(g.Width))
	}
	if !g.revealStarted {
		g.revealStarted = true
		g.Panel.Reveal(float64(g.Height), nil)
	}
	if resized {
		g.adjustBackdropInset()
	}
}

// ShowPanel enables the panel and snaps it to the configured start position.
// It does nothing until the initial reveal has finished.
func (g *Game) ShowPanel() {
	if !g.revealed {
		return
	}
	g.Panel.SetEnabled(true)
	g.Panel.SnapTo(g.Config.StartPosition(), nil)
}

func (g *Game) adjustBackdropInset() {
	g.Backdrop.BottomInset = float64(g.Height) - g.Panel.Offset()
}

// PanelDidReveal implements panel.Delegate.
func (g *Game) PanelDidReveal() {
	g.revealed = true
	g.adjustBackdropInset()
	log.Printf("Panel revealed at offset %.0f", g.Panel.Offset())
}

// PanelDidSnap implements panel.Delegate.
func (g *Game) PanelDidSnap(pos panel.SnapPosition, completed bool) {
	if completed {
		log.Printf("Panel snapped to %s", pos)
		g.adjustBackdropInset()
		if pos == panel.Peeking {
			g.Sheet.Scroll.Reset()
		}
	} else {
		log.Printf("Panel snap to %s interrupted", pos)
	}
}

// PanelDidFinish implements panel.Delegate.
func (g *Game) PanelDidFinish(row int) {
	g.Sheet.Selected = row
	g.Backdrop.Highlight = row
	if row >= 0 && row < len(g.Places) {
		log.Printf("Selected %q", g.Places[row].Name)
	}
}

// Update advances input, the panel animation and both views by one tick.
func (g *Game) Update() error {
	kb := &g.Config.Keybinds
	if keyJustPressed(kb.Fullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	g.syncLayout()
	g.handleKeys()
	g.handlePointer(g.pointer.Poll(g.tracker, time.Now()))
	g.handleWheel()

	g.Panel.Update(time.Second / time.Duration(ebiten.TPS()))
	g.Sheet.Update(g.Panel.Visual(), g.metrics.ContainerHeight)
	g.Backdrop.Update(float64(g.Width), float64(g.Height))
	return nil
}

func (g *Game) handleKeys() {
	kb := &g.Config.Keybinds
	switch {
	case keyJustPressed(kb.SnapUp):
		g.Panel.Step(panel.Up)
	case keyJustPressed(kb.SnapDown):
		g.Panel.Step(panel.Down)
	case keyJustPressed(kb.ShowPanel):
		g.ShowPanel()
	case keyJustPressed(kb.ToggleEnabled):
		if g.revealed {
			g.Panel.SetEnabled(!g.Panel.Enabled())
		}
	}
}

// handlePointer routes a gesture event to the sheet or the backdrop.
// Drags stay with the view they started on.
func (g *Game) handlePointer(ev gesture.Event) {
	if ev.Kind == gesture.None {
		return
	}
	g.lastGesture = ev.Kind
	offset := g.Panel.Offset()

	switch ev.Kind {
	case gesture.DragBegin:
		if g.Sheet.Contains(ev.StartX, ev.StartY, offset) {
			g.drag = dragSheet
		} else {
			g.drag = dragBackdrop
		}
		g.dragBy(ev.DeltaY)
	case gesture.DragUpdate:
		g.dragBy(ev.DeltaY)
	case gesture.DragEnd:
		g.dragBy(ev.DeltaY)
		if g.drag == dragSheet {
			g.Panel.DragEnd(ev.VelocityY)
		}
		g.drag = dragNone
	case gesture.Tap:
		g.handleTap(ev.X, ev.Y, offset)
	}
}

func (g *Game) dragBy(dy float64) {
	switch g.drag {
	case dragSheet:
		g.Panel.DragUpdate(dy)
	case dragBackdrop:
		g.Backdrop.Scroll.ScrollBy(-dy)
	}
}

func (g *Game) handleTap(x, y, offset float64) {
	switch {
	case g.Sheet.HeaderContains(x, y, offset):
		g.Panel.TapHeader()
	case g.Sheet.Contains(x, y, offset):
		if row, ok := g.Sheet.RowAt(x, y, offset); ok {
			g.Panel.SelectContent(row)
		}
	default:
		g.ShowPanel()
	}
}

func (g *Game) handleWheel() {
	x, y := ui.CursorPosition()
	if !g.Sheet.Contains(x, y, g.Panel.Offset()) {
		g.Backdrop.Scroll.HandleMouseWheel()
		return
	}
	if g.Panel.Enabled() && g.Panel.Visual().ContentInteractive {
		g.Sheet.Scroll.HandleMouseWheel()
	}
}

// Draw paints the backdrop, then the sheet on top.
func (g *Game) Draw(screen *ebiten.Image) {
	g.Backdrop.Draw(screen)
	g.Sheet.Draw(screen, g.Panel.Offset(), g.Panel.Visual())
	ui.DrawDebugOverlay(screen, g.debugLines())
}

// Layout follows the window size so resizing produces a new layout pass.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Width, g.Height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) debugLines() []string {
	if !ui.DebugOverlayVisible() {
		return nil
	}
	o := g.Panel.Offsets()
	v := g.Panel.Visual()
	pos, settled := g.Panel.Position()
	return []string{
		fmt.Sprintf("offsets  peeking=%.0f short=%.0f full=%.0f", o.Peeking, o.Short, o.Full),
		fmt.Sprintf("offset   %.1f -> %.1f  animating=%t", g.Panel.Offset(), g.Panel.Target(), g.Panel.Animating()),
		fmt.Sprintf("position %s  settled=%t  enabled=%t", pos, settled, g.Panel.Enabled()),
		fmt.Sprintf("content  alpha=%.2f interactive=%t inset=%.0f", v.ContentAlpha, v.ContentInteractive, v.ContentInsetBottom),
		fmt.Sprintf("arrow    %s", v.Affordance),
		fmt.Sprintf("gesture  %s  last velocity=%.0f", g.lastGesture, g.Panel.LastVelocity()),
	}
}
