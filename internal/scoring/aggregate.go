package scoring

import (
	"math"
	"sort"
)

// StrengthThreshold separates strengths from challenges. The same cutoff
// is used for both the questionnaire and biometric aggregation paths.
const StrengthThreshold = 70

// PhysiologicalDimensionID is the sentinel dimension id under which the
// biometric compatibility score joins the questionnaire dimensions.
const (
	PhysiologicalDimensionID   = "physiological"
	PhysiologicalDimensionName = "Physiological Compatibility"
)

type DimensionScore struct {
	DimensionID string `json:"dimension_id"`
	Name        string `json:"name"`
	Score       int    `json:"score"`
}

// MergeDimensionScore replaces the entry with the same dimension id if
// present, otherwise appends. Last write wins; the input slice is not
// modified.
func MergeDimensionScore(existing []DimensionScore, incoming DimensionScore) []DimensionScore {
	merged := make([]DimensionScore, len(existing))
	copy(merged, existing)
	for i, ds := range merged {
		if ds.DimensionID == incoming.DimensionID {
			merged[i] = incoming
			return merged
		}
	}
	return append(merged, incoming)
}

// OverallScore is the rounded mean of the present dimension scores, 0 when
// none exist yet.
func OverallScore(scores []DimensionScore) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, ds := range scores {
		sum += ds.Score
	}
	return int(math.Round(float64(sum) / float64(len(scores))))
}

// Classify splits dimension scores into relationship strengths and
// challenges: the top three at or above the threshold and the bottom two
// below it. A dimension can never appear on both sides.
func Classify(scores []DimensionScore) (strengths, challenges []DimensionScore) {
	sorted := make([]DimensionScore, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	strengths = []DimensionScore{}
	for _, ds := range sorted {
		if len(strengths) == 3 {
			break
		}
		if ds.Score >= StrengthThreshold {
			strengths = append(strengths, ds)
		}
	}

	challenges = []DimensionScore{}
	for i := len(sorted) - 1; i >= 0; i-- {
		if len(challenges) == 2 {
			break
		}
		if sorted[i].Score < StrengthThreshold {
			challenges = append(challenges, sorted[i])
		}
	}
	return strengths, challenges
}
