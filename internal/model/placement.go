package model

// Phase is the interaction phase derived from a PlacementState.
type Phase string

const (
	PhaseBrowsing Phase = "Browsing"
	PhasePlacing  Phase = "Placing"
)

// PlacementState is an immutable snapshot of the selection/placement state.
// Confirmed is a one-shot signal that is cleared by whoever consumes it.
type PlacementState struct {
	PlacementActive bool
	Selected        *ModelDescriptor
	Confirmed       *ModelDescriptor
}

// Phase returns Placing while placement mode is active.
func (s PlacementState) Phase() Phase {
	if s.PlacementActive {
		return PhasePlacing
	}
	return PhaseBrowsing
}

// Valid reports whether placement mode and selection agree: Placing always
// has a selection and Browsing never does.
func (s PlacementState) Valid() bool {
	return s.PlacementActive == (s.Selected != nil)
}

// HasConfirmation reports whether a confirmed model is waiting to be placed.
func (s PlacementState) HasConfirmation() bool {
	return s.Confirmed != nil
}
