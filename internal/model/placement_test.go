package model

import "testing"

func TestPlacementState_Phase(t *testing.T) {
	chair := NewModelDescriptor("chair", "chair.glb")

	tests := []struct {
		name     string
		state    PlacementState
		phase    Phase
		valid    bool
		confirms bool
	}{
		{"initial", PlacementState{}, PhaseBrowsing, true, false},
		{"placing", PlacementState{PlacementActive: true, Selected: chair}, PhasePlacing, true, false},
		{"confirmed", PlacementState{Confirmed: chair}, PhaseBrowsing, true, true},
		{"active without selection", PlacementState{PlacementActive: true}, PhasePlacing, false, false},
		{"selection without active", PlacementState{Selected: chair}, PhaseBrowsing, false, false},
	}

	for _, test := range tests {
		if got := test.state.Phase(); got != test.phase {
			t.Errorf("%s: Phase() = %s, expected %s", test.name, got, test.phase)
		}
		if got := test.state.Valid(); got != test.valid {
			t.Errorf("%s: Valid() = %v, expected %v", test.name, got, test.valid)
		}
		if got := test.state.HasConfirmation(); got != test.confirms {
			t.Errorf("%s: HasConfirmation() = %v, expected %v", test.name, got, test.confirms)
		}
	}
}
