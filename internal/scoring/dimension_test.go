package scoring

import "testing"

func TestScoreDimensionIdentical(t *testing.T) {
	r := []any{3.0, 4.0, "often", 2.0}
	if got := ScoreDimension(r, r); got != 100 {
		t.Fatalf("ScoreDimension(r,r)=%d, want 100", got)
	}
}

func TestScoreDimension(t *testing.T) {
	cases := []struct {
		name string
		a, b []any
		want int
	}{
		{"worked example", []any{3.0, 4.0, 5.0}, []any{3.0, 5.0, 5.0}, 92},
		{"empty", nil, nil, 0},
		{"one side empty", []any{3.0, 4.0}, nil, 0},
		{"truncates to shorter", []any{3.0, 4.0, 5.0}, []any{3.0}, 100},
		{"all mismatched kinds", []any{3.0, 4.0}, []any{"a", "b"}, 0},
		{"mismatch excluded from denominator", []any{3.0, "yes", 5.0}, []any{3.0, 2.0, 5.0}, 100},
		{"categorical mix", []any{"a", "b"}, []any{"a", "c"}, 50},
	}
	for _, c := range cases {
		if got := ScoreDimension(c.a, c.b); got != c.want {
			t.Fatalf("%s: ScoreDimension=%d, want %d", c.name, got, c.want)
		}
	}
}
