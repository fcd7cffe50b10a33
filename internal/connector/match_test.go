package connector

import "testing"

func TestMatchNames(t *testing.T) {
	cases := []struct {
		s, t     string
		wantOK   bool
		wantMeet string
	}{
		{"S", "S", true, "S"},
		{"Ss", "S*", true, "Ss"},
		{"S*", "Ss", true, "Ss"},
		{"Ss", "Sp", false, ""},
		{"D", "S", false, ""},
		{"AB", "A", false, ""},
		{"Mp", "M*", true, "Mp"},
	}

	for _, c := range cases {
		ok, meet := MatchNames(c.s, c.t)
		if ok != c.wantOK {
			t.Errorf("MatchNames(%q,%q) ok = %v, want %v", c.s, c.t, ok, c.wantOK)
			continue
		}
		if ok && meet != c.wantMeet {
			t.Errorf("MatchNames(%q,%q) meet = %q, want %q", c.s, c.t, meet, c.wantMeet)
		}
	}
}

func TestMatchNamesWildcardMatchesInEitherOrder(t *testing.T) {
	// Matching is not a symmetric function of (s, t) in general because
	// padding differs by position, but a plain equal/wildcard case like
	// this must match regardless of argument order.
	okA, _ := MatchNames("Ss", "S*")
	okB, _ := MatchNames("S*", "Ss")
	if !okA || !okB {
		t.Fatalf("expected both orders to match: %v, %v", okA, okB)
	}
}
