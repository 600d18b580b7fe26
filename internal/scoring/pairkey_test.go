package scoring

import "testing"

func TestCanonicalPair(t *testing.T) {
	cases := []struct{ a, b, wantA, wantB string }{
		{"abc", "xyz", "abc", "xyz"},
		{"xyz", "abc", "abc", "xyz"},
		{"same", "same", "same", "same"},
		{"1b9f", "1b8f", "1b8f", "1b9f"},
	}
	for _, c := range cases {
		gotA, gotB := CanonicalPair(c.a, c.b)
		if gotA != c.wantA || gotB != c.wantB {
			t.Fatalf("CanonicalPair(%q,%q)=(%q,%q), want (%q,%q)", c.a, c.b, gotA, gotB, c.wantA, c.wantB)
		}
		// commutative
		swapA, swapB := CanonicalPair(c.b, c.a)
		if swapA != gotA || swapB != gotB {
			t.Fatalf("CanonicalPair not commutative for (%q,%q)", c.a, c.b)
		}
	}
}
