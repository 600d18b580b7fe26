package scoring

import (
	"math"

	"github.com/fadilmartias/compatibility-matrix/internal/model"
)

// Sub-metric weights: SDNN complementarity 40%, LF/HF ratio balance 40%,
// overall HRV score similarity 20%.
const (
	sdnnWeight = 0.4
	lfhfWeight = 0.4
	hrvWeight  = 0.2
)

type MetricCompatibility struct {
	Score       int     `json:"score"`
	User1Value  float64 `json:"user1_value"`
	User2Value  float64 `json:"user2_value"`
	Description string  `json:"description"`
}

type HRVCompatibilityDetails struct {
	SDNN     MetricCompatibility `json:"sdnn_compatibility"`
	LFHF     MetricCompatibility `json:"lf_hf_compatibility"`
	HRVScore MetricCompatibility `json:"hrv_score_compatibility"`
}

// CompareHRV scores the compatibility of two HRV measurement summaries.
//
// Note that the comparator is deliberately not reflexive below the
// "both good" SDNN threshold: two identical mediocre measurements land
// outside the complementary band and score less than 100.
func CompareHRV(a, b model.HRVValue) (int, HRVCompatibilityDetails) {
	sdnnScore := sdnnCompatibility(a.SDNN, b.SDNN)
	lfhfScore := lfhfCompatibility(a.LFHFRatio, b.LFHFRatio)
	hrvScore := hrvScoreCompatibility(a.HRVScore, b.HRVScore)

	final := int(math.Round(sdnnScore*sdnnWeight + lfhfScore*lfhfWeight + hrvScore*hrvWeight))

	details := HRVCompatibilityDetails{
		SDNN: MetricCompatibility{
			Score:       int(math.Round(sdnnScore)),
			User1Value:  a.SDNN,
			User2Value:  b.SDNN,
			Description: sdnnDescription(a.SDNN, b.SDNN),
		},
		LFHF: MetricCompatibility{
			Score:       int(math.Round(lfhfScore)),
			User1Value:  a.LFHFRatio,
			User2Value:  b.LFHFRatio,
			Description: lfhfDescription(a.LFHFRatio, b.LFHFRatio),
		},
		HRVScore: MetricCompatibility{
			Score:       int(math.Round(hrvScore)),
			User1Value:  float64(a.HRVScore),
			User2Value:  float64(b.HRVScore),
			Description: hrvScoreDescription(a.HRVScore, b.HRVScore),
		},
	}
	return final, details
}

// Both above 50ms rewards closeness; otherwise a 15-40ms gap counts as
// complementary and anything else decays toward a floor of 50.
func sdnnCompatibility(sdnn1, sdnn2 float64) float64 {
	minS := math.Min(sdnn1, sdnn2)
	maxS := math.Max(sdnn1, sdnn2)

	if minS >= 50 {
		return 100 * minS / maxS
	}

	diff := math.Abs(sdnn1 - sdnn2)
	if diff >= 15 && diff <= 40 {
		return 90
	}
	return math.Max(50, 100-math.Abs(diff-25)*1.5)
}

// A 0.5-1.0 gap in LF/HF ratio is the ideal complementary balance (one
// partner parasympathetic-dominant, the other sympathetic).
func lfhfCompatibility(lfhf1, lfhf2 float64) float64 {
	diff := math.Abs(lfhf1 - lfhf2)
	if diff >= 0.5 && diff <= 1.0 {
		return 100
	}
	return math.Max(50, 100-math.Abs(diff-0.75)*40)
}

func hrvScoreCompatibility(score1, score2 int) float64 {
	diff := math.Abs(float64(score1 - score2))
	if math.Max(float64(score1), float64(score2)) >= 80 {
		return 90
	}
	if diff <= 15 {
		return 100
	}
	return math.Max(50, 100-(diff-15)*2)
}

func sdnnDescription(sdnn1, sdnn2 float64) string {
	minS := math.Min(sdnn1, sdnn2)
	maxS := math.Max(sdnn1, sdnn2)
	diff := math.Abs(sdnn1 - sdnn2)

	switch {
	case minS >= 60:
		return "Both partners show excellent autonomic flexibility, suggesting a relationship with strong stress resilience."
	case minS >= 40 && maxS >= 60:
		return "The balance between your autonomic flexibility patterns suggests good emotional co-regulation potential."
	case diff >= 15 && diff <= 40:
		return "Your complementary autonomic patterns may help balance each other's stress responses."
	default:
		return "Your autonomic patterns suggest you may respond similarly to stress, which can be both a strength and challenge."
	}
}

func lfhfDescription(lfhf1, lfhf2 float64) string {
	diff := math.Abs(lfhf1 - lfhf2)

	switch {
	case diff >= 0.5 && diff <= 1.0:
		return "Your complementary autonomic balance patterns suggest one partner may help calm the other during stress."
	case diff < 0.3:
		return "Your similar autonomic balance patterns suggest you may respond to stress in similar ways."
	default:
		return "Your autonomic balance patterns show moderate complementarity for stress response synchronization."
	}
}

func hrvScoreDescription(score1, score2 int) string {
	maxScore := score1
	if score2 > maxScore {
		maxScore = score2
	}
	diff := score1 - score2
	if diff < 0 {
		diff = -diff
	}

	switch {
	case maxScore >= 80:
		return "At least one partner has excellent autonomic regulation, potentially stabilizing the relationship during stress."
	case diff <= 15:
		return "Your similar overall autonomic profiles suggest synchronized emotional responses."
	default:
		return "Your different autonomic profiles may offer balanced perspectives during emotional situations."
	}
}
