package balance

import "testing"

func TestParseRoundingPolicy(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			name string
			want RoundingPolicy
		}{
			{"HALF_EVEN", RoundHalfEven},
			{"HALF_UP", RoundHalfUp},
			{"DOWN", RoundDown},
			{"UP", RoundUp},
		}
		for _, tt := range tests {
			got, err := ParseRoundingPolicy(tt.name)
			if err != nil {
				t.Errorf("ParseRoundingPolicy(%q) failed: %v", tt.name, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseRoundingPolicy(%q) = %v, want %v", tt.name, got, tt.want)
			}
			if got.String() != tt.name {
				t.Errorf("%v.String() = %q, want %q", got, got.String(), tt.name)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "half_even", "HALFEVEN", "CEILING", "banker"}
		for _, name := range tests {
			if _, err := ParseRoundingPolicy(name); err == nil {
				t.Errorf("ParseRoundingPolicy(%q) did not fail", name)
			}
		}
	})
}

func TestMustParseRoundingPolicy(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseRoundingPolicy(\"CEILING\") did not panic")
			}
		}()
		MustParseRoundingPolicy("CEILING")
	})
}

func TestRoundingPolicy_ZeroValue(t *testing.T) {
	var p RoundingPolicy
	if p != RoundHalfEven {
		t.Errorf("zero value = %v, want %v", p, RoundHalfEven)
	}
}

func TestRoundingPolicy_Text(t *testing.T) {
	for _, want := range []RoundingPolicy{RoundHalfEven, RoundHalfUp, RoundDown, RoundUp} {
		text, err := want.MarshalText()
		if err != nil {
			t.Errorf("%v.MarshalText() failed: %v", want, err)
			continue
		}
		var got RoundingPolicy
		if err := got.UnmarshalText(text); err != nil {
			t.Errorf("UnmarshalText(%q) failed: %v", text, err)
			continue
		}
		if got != want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", text, got, want)
		}
	}
}
