package scoring

import (
	"encoding/json"
	"fmt"
	"math"
)

// scaleSpan is the span of the 1-5 answer scale.
const scaleSpan = 4.0

// CompareResponses scores the similarity of two individual answers on a
// 0-100 scale. Numeric answers score linearly by distance on the scale;
// categorical answers score 100 on exact match and 0 otherwise. When the
// two values are of different kinds there is no signal: ok is false and
// the pair must be excluded from both numerator and denominator.
func CompareResponses(a, b any) (float64, bool) {
	na, aNumeric := numericValue(a)
	nb, bNumeric := numericValue(b)

	switch {
	case aNumeric && bNumeric:
		sim := 100 - math.Abs(na-nb)/scaleSpan*100
		if sim < 0 {
			sim = 0
		}
		return sim, true
	case !aNumeric && !bNumeric:
		if categoricalEqual(a, b) {
			return 100, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// Categorical tokens compare by their textual form only.
func categoricalEqual(a, b any) bool {
	return fmt.Sprint(a) == fmt.Sprint(b)
}
