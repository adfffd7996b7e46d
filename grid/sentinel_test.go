package grid

import "testing"

func TestColorFromSentinel(t *testing.T) {
	cases := []struct {
		v    int
		want Color
	}{
		{0, Regular(0)},
		{5, Regular(5)},
		{-1, Unconstrained(0)},
		{-2, OriginMarker(0)},
		{-3, FarMarker(0)},
		{-4, Unconstrained(1)},
		{-5, OriginMarker(1)},
		{-6, FarMarker(1)},
		{-22, Unconstrained(7)},
	}
	for _, tc := range cases {
		got, err := ColorFromSentinel(tc.v)
		if err != nil {
			t.Fatalf("ColorFromSentinel(%d): %v", tc.v, err)
		}
		if got != tc.want {
			t.Errorf("ColorFromSentinel(%d) = %v, want %v", tc.v, got, tc.want)
		}
	}
}

func TestSentinelForColor_RoundTrip(t *testing.T) {
	colors := []Color{
		Regular(0), Regular(5),
		Unconstrained(0), Unconstrained(1), Unconstrained(7),
		OriginMarker(0), OriginMarker(3),
		FarMarker(0), FarMarker(2),
	}
	for _, c := range colors {
		v, ok := SentinelForColor(c)
		if !ok {
			t.Fatalf("SentinelForColor(%v) not ok", c)
		}
		got, err := ColorFromSentinel(v)
		if err != nil {
			t.Fatalf("ColorFromSentinel(%d): %v", v, err)
		}
		if got != c {
			t.Errorf("round trip %v -> %d -> %v", c, v, got)
		}
	}
}

func TestSentinelForColor_BlankNotOk(t *testing.T) {
	if _, ok := SentinelForColor(Blank()); ok {
		t.Errorf("SentinelForColor(Blank()) should not be ok")
	}
}
