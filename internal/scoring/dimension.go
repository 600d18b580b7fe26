package scoring

import "math"

// ScoreDimension aggregates per-answer similarities across one dimension
// into a 0-100 score.
//
// Answers are compared positionally (i-th of a against i-th of b), not by
// question id. This is a known limitation carried over from the original
// system: the positions only align when both users answered in the same
// order with no gaps. Both sequences are truncated to the shorter one, so
// partial assessments still contribute.
func ScoreDimension(a, b []any) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var total float64
	compared := 0
	for i := 0; i < n; i++ {
		sim, ok := CompareResponses(a[i], b[i])
		if !ok {
			continue
		}
		total += sim
		compared++
	}

	if compared == 0 {
		return 0
	}
	maxTotal := float64(compared) * 100
	return int(math.Round(total / maxTotal * 100))
}
