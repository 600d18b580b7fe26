package scoring

import "testing"

func TestCompareResponsesNumeric(t *testing.T) {
	cases := []struct {
		a, b any
		want float64
	}{
		{3.0, 3.0, 100},
		{1.0, 5.0, 0},
		{4.0, 5.0, 75},
		{3.0, 5.0, 50},
		{2.0, 5.0, 25},
		{2, 4, 50},
	}
	for _, c := range cases {
		got, ok := CompareResponses(c.a, c.b)
		if !ok {
			t.Fatalf("CompareResponses(%v,%v) not comparable", c.a, c.b)
		}
		if got != c.want {
			t.Fatalf("CompareResponses(%v,%v)=%v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestCompareResponsesCategorical(t *testing.T) {
	if got, ok := CompareResponses("introvert", "introvert"); !ok || got != 100 {
		t.Fatalf("equal tokens: got %v ok=%v", got, ok)
	}
	if got, ok := CompareResponses("introvert", "extrovert"); !ok || got != 0 {
		t.Fatalf("unequal tokens: got %v ok=%v", got, ok)
	}
}

func TestCompareResponsesKindMismatch(t *testing.T) {
	if _, ok := CompareResponses(3.0, "sometimes"); ok {
		t.Fatal("numeric vs categorical should not be comparable")
	}
	if _, ok := CompareResponses("sometimes", 3.0); ok {
		t.Fatal("categorical vs numeric should not be comparable")
	}
}

func TestCompareResponsesSelf(t *testing.T) {
	for _, v := range []any{1.0, 5.0, 3, "weekends", "daily"} {
		got, ok := CompareResponses(v, v)
		if !ok || got != 100 {
			t.Fatalf("CompareResponses(%v,%v)=%v ok=%v, want 100", v, v, got, ok)
		}
	}
}
