package panel

// DefaultFadeFraction is the share of the peeking offset over which the content
// fades out as the panel approaches Peeking.
const DefaultFadeFraction = 0.1

// Affordance is the chevron shown in the header.
type Affordance int

const (
	AffordanceNone Affordance = iota
	AffordanceUp
	AffordanceDown
)

func (a Affordance) String() string {
	switch a {
	case AffordanceUp:
		return "up"
	case AffordanceDown:
		return "down"
	default:
		return "none"
	}
}

// VisualState is everything the host needs to render the panel at its current offset.
type VisualState struct {
	ContentAlpha       float64
	ContentInteractive bool
	Affordance         Affordance
	ContentInsetBottom float64

	DragIndicatorVisible bool
	TitleDimmed          bool
}

// ComputeVisual derives the visual state for a panel at offset.
func ComputeVisual(offset float64, o Offsets, m LayoutMetrics, enabled bool, fadeFraction float64) VisualState {
	var alpha float64
	if band := o.Peeking * fadeFraction; band > 0 {
		alpha = min(max((o.Peeking-offset)/band, 0), 1)
	} else if offset < o.Peeking {
		alpha = 1
	}

	v := VisualState{
		ContentAlpha:         alpha,
		ContentInteractive:   alpha > 0,
		ContentInsetBottom:   m.ContainerHeight + offset - m.insetBase(),
		DragIndicatorVisible: enabled,
		TitleDimmed:          !enabled,
	}
	if enabled {
		if TravelDirection(offset, o.Full) == Down {
			v.Affordance = AffordanceDown
		} else {
			v.Affordance = AffordanceUp
		}
	}
	return v
}
