package domain

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionType
	}{
		{"PLACE", ActionPlace},
		{"place", ActionPlace},
		{"Unplace", ActionUnplace},
		{"END_TURN", ActionEndTurn},
		{"health", ActionHealth},
		{"LOAD_LAYOUT", ActionLoadLayout},
		{"RESET", ActionReset},
		{"regenerate", ActionRegenerate},
		{"MOVE", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tt := range tests {
		result := ParseAction(tt.input)
		if result != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestActionType_String(t *testing.T) {
	tests := []struct {
		action   ActionType
		expected string
	}{
		{ActionPlace, "PLACE"},
		{ActionEndTurn, "END_TURN"},
		{ActionUnknown, "UNKNOWN"},
		{ActionType(200), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("ActionType(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}
