package core

import "testing"

func TestGroundPredicates(t *testing.T) {
	tests := []struct {
		ground   Ground
		canSlide bool
		isTarget bool
	}{
		{BlankGround(), false, false},
		{Ice(), true, false},
		{Target(ColorRed), false, true},
		{Target(ColorYellow), false, true},
	}

	for _, tc := range tests {
		t.Run(tc.ground.String(), func(t *testing.T) {
			if got := tc.ground.CanSlide(); got != tc.canSlide {
				t.Errorf("CanSlide() = %v, want %v", got, tc.canSlide)
			}
			if got := tc.ground.IsTarget(); got != tc.isTarget {
				t.Errorf("IsTarget() = %v, want %v", got, tc.isTarget)
			}
		})
	}
}

func TestIsSatisfiedTarget(t *testing.T) {
	tests := []struct {
		name     string
		ground   Ground
		occupant Occupant
		want     bool
	}{
		{"matching trophy", Target(ColorRed), Trophy(ColorRed), true},
		{"other color trophy", Target(ColorRed), Trophy(ColorBlue), false},
		{"box on target", Target(ColorGreen), Box(), false},
		{"empty target", Target(ColorGreen), Empty(), false},
		{"player on target", Target(ColorBlue), Player(), false},
		{"trophy on ice", Ice(), Trophy(ColorRed), false},
		{"trophy on blank", BlankGround(), Trophy(ColorRed), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ground.IsSatisfiedTarget(tc.occupant); got != tc.want {
				t.Errorf("IsSatisfiedTarget(%s) = %v, want %v", tc.occupant, got, tc.want)
			}
		})
	}
}

func TestOccupantPredicates(t *testing.T) {
	tests := []struct {
		occupant    Occupant
		movable     bool
		canHost     bool
		pushable    bool
		destructive bool
	}{
		{Empty(), false, true, false, false},
		{Wall(), false, false, false, false},
		{Player(), true, false, false, false},
		{Box(), false, false, true, false},
		{Trophy(ColorGreen), false, false, true, false},
		{Hole(), false, false, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.occupant.String(), func(t *testing.T) {
			o := tc.occupant
			if got := o.IsPlayerMovable(); got != tc.movable {
				t.Errorf("IsPlayerMovable() = %v, want %v", got, tc.movable)
			}
			if got := o.CanHostOccupant(); got != tc.canHost {
				t.Errorf("CanHostOccupant() = %v, want %v", got, tc.canHost)
			}
			if got := o.IsPushable(); got != tc.pushable {
				t.Errorf("IsPushable() = %v, want %v", got, tc.pushable)
			}
			if got := o.IsDestructive(); got != tc.destructive {
				t.Errorf("IsDestructive() = %v, want %v", got, tc.destructive)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"red", ColorRed, true},
		{"G", ColorGreen, true},
		{"Blue", ColorBlue, true},
		{"y", ColorYellow, true},
		{"purple", ColorNone, false},
		{"", ColorNone, false},
	}
	for _, tc := range tests {
		got, ok := ParseColor(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseColor(%q) = %v, %v, want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
