package scoring

import "testing"

func TestMergeDimensionScore(t *testing.T) {
	existing := []DimensionScore{
		{DimensionID: "d1", Name: "Values & Beliefs", Score: 80},
		{DimensionID: "d2", Name: "Communication Styles", Score: 60},
	}

	merged := MergeDimensionScore(existing, DimensionScore{DimensionID: "d3", Name: "Life Goals", Score: 75})
	if len(merged) != 3 {
		t.Fatalf("append: len=%d, want 3", len(merged))
	}

	merged = MergeDimensionScore(merged, DimensionScore{DimensionID: "d2", Name: "Communication Styles", Score: 90})
	if len(merged) != 3 {
		t.Fatalf("replace must not append, len=%d", len(merged))
	}
	if merged[1].Score != 90 {
		t.Fatalf("replace-in-place: score=%d, want 90", merged[1].Score)
	}
	// input untouched
	if existing[1].Score != 60 {
		t.Fatalf("merge mutated its input: %+v", existing[1])
	}
}

func TestOverallScore(t *testing.T) {
	if got := OverallScore(nil); got != 0 {
		t.Fatalf("OverallScore(nil)=%d, want 0", got)
	}
	scores := []DimensionScore{{Score: 80}, {Score: 60}}
	if got := OverallScore(scores); got != 70 {
		t.Fatalf("OverallScore=%d, want 70", got)
	}
	scores = []DimensionScore{{Score: 80}, {Score: 81}, {Score: 81}}
	if got := OverallScore(scores); got != 81 {
		t.Fatalf("OverallScore=%d, want 81", got)
	}
}

func TestClassify(t *testing.T) {
	scores := []DimensionScore{
		{DimensionID: "d1", Score: 92},
		{DimensionID: "d2", Score: 55},
		{DimensionID: "d3", Score: 78},
		{DimensionID: "d4", Score: 71},
		{DimensionID: "d5", Score: 69},
		{DimensionID: "d6", Score: 85},
	}
	strengths, challenges := Classify(scores)

	if len(strengths) != 3 {
		t.Fatalf("strengths len=%d, want 3", len(strengths))
	}
	if strengths[0].DimensionID != "d1" || strengths[1].DimensionID != "d6" || strengths[2].DimensionID != "d3" {
		t.Fatalf("strengths=%+v", strengths)
	}
	if len(challenges) != 2 {
		t.Fatalf("challenges len=%d, want 2", len(challenges))
	}
	if challenges[0].DimensionID != "d2" || challenges[1].DimensionID != "d5" {
		t.Fatalf("challenges=%+v", challenges)
	}
}

func TestClassifyDisjoint(t *testing.T) {
	scores := []DimensionScore{
		{DimensionID: "a", Score: 70},
		{DimensionID: "b", Score: 69},
	}
	strengths, challenges := Classify(scores)
	seen := map[string]bool{}
	for _, s := range strengths {
		seen[s.DimensionID] = true
	}
	for _, c := range challenges {
		if seen[c.DimensionID] {
			t.Fatalf("dimension %s in both strengths and challenges", c.DimensionID)
		}
	}
	if len(strengths) != 1 || len(challenges) != 1 {
		t.Fatalf("strengths=%d challenges=%d, want 1 and 1", len(strengths), len(challenges))
	}
}

func TestClassifyFewerThanQuota(t *testing.T) {
	strengths, challenges := Classify([]DimensionScore{{DimensionID: "only", Score: 95}})
	if len(strengths) != 1 || len(challenges) != 0 {
		t.Fatalf("strengths=%d challenges=%d", len(strengths), len(challenges))
	}
}
