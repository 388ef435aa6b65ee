package panel

import "fmt"

// SnapPosition is one of the discrete stops the panel animates to.
type SnapPosition int

const (
	Peeking SnapPosition = iota // only the header is visible
	Short                       // intermediate stop
	Full                        // top edge sits under the status bar
)

func (p SnapPosition) String() string {
	switch p {
	case Peeking:
		return "peeking"
	case Short:
		return "short"
	case Full:
		return "full"
	default:
		return fmt.Sprintf("SnapPosition(%d)", int(p))
	}
}

// Step returns the neighbouring stop in direction d, staying put at the ends.
func (p SnapPosition) Step(d Direction) SnapPosition {
	switch {
	case d == Up && p < Full:
		return p + 1
	case d == Down && p > Peeking:
		return p - 1
	}
	return p
}

// ParseSnapPosition converts a config name ("peeking", "short", "full") to a SnapPosition.
func ParseSnapPosition(name string) (SnapPosition, error) {
	switch name {
	case "peeking":
		return Peeking, nil
	case "short":
		return Short, nil
	case "full":
		return Full, nil
	}
	return Peeking, fmt.Errorf("unknown snap position %q", name)
}

// DefaultShortRatio places the Short stop at 67% of the screen height.
const DefaultShortRatio = 0.67

// LayoutMetrics are the host-supplied measurements for one layout pass.
type LayoutMetrics struct {
	ContainerHeight float64

	// SafeAreaBottom is set by the presenting screen. When HasSafeAreaBottom is
	// false, ContainerSafeAreaBottom is used instead.
	SafeAreaBottom          float64
	HasSafeAreaBottom       bool
	ContainerSafeAreaBottom float64

	HeaderHeight float64
	HeaderMinY   float64
	ScreenHeight float64
	TopInset     float64 // status bar height
}

// SafeBottom returns the bottom bound the peeking stop hangs from.
func (m LayoutMetrics) SafeBottom() float64 {
	if m.HasSafeAreaBottom {
		return m.SafeAreaBottom
	}
	return m.ContainerSafeAreaBottom
}

// insetBase is the bound used for the content inset; the screen height stands in
// when the presenter did not supply a safe area.
func (m LayoutMetrics) insetBase() float64 {
	if m.HasSafeAreaBottom {
		return m.SafeAreaBottom
	}
	return m.ScreenHeight
}

// Offsets holds the vertical offset of the panel's top edge at each snap position.
type Offsets struct {
	Peeking float64
	Short   float64
	Full    float64
}

// At returns the offset for a snap position.
func (o Offsets) At(p SnapPosition) float64 {
	switch p {
	case Short:
		return o.Short
	case Full:
		return o.Full
	default:
		return o.Peeking
	}
}

// Validate reports metrics whose offsets are not ordered Full <= Short <= Peeking.
func (m LayoutMetrics) Validate(shortRatio float64) error {
	o := rawOffsets(m, shortRatio)
	if o.Peeking < o.Full {
		return fmt.Errorf("peeking offset %.1f above full offset %.1f", o.Peeking, o.Full)
	}
	if o.Short < o.Full || o.Short > o.Peeking {
		return fmt.Errorf("short offset %.1f outside [%.1f, %.1f]", o.Short, o.Full, o.Peeking)
	}
	return nil
}

func rawOffsets(m LayoutMetrics, shortRatio float64) Offsets {
	return Offsets{
		Peeking: m.SafeBottom() - m.HeaderHeight + m.HeaderMinY,
		Short:   m.ScreenHeight * shortRatio,
		Full:    m.TopInset,
	}
}

// DeriveOffsets computes the snap offsets for m. Degenerate metrics are
// sanitized so that Full <= Short <= Peeking always holds on the result.
func DeriveOffsets(m LayoutMetrics, shortRatio float64) Offsets {
	o := rawOffsets(m, shortRatio)
	if o.Peeking < o.Full {
		o.Peeking = o.Full
	}
	o.Short = min(max(o.Short, o.Full), o.Peeking)
	return o
}
