package scoring

import (
	"testing"

	"github.com/fadilmartias/compatibility-matrix/internal/model"
)

func TestCompareHRVComplementaryPair(t *testing.T) {
	// sdnn diff 30 is in the complementary band, lf/hf diff 0.7 is ideal,
	// hrv scores within 15 points.
	a := model.HRVValue{SDNN: 30, LFHFRatio: 1.0, HRVScore: 70}
	b := model.HRVValue{SDNN: 60, LFHFRatio: 1.7, HRVScore: 72}

	score, details := CompareHRV(a, b)
	if score != 96 {
		t.Fatalf("score=%d, want 96", score)
	}
	if details.SDNN.Score != 90 {
		t.Fatalf("sdnn sub-score=%d, want 90", details.SDNN.Score)
	}
	if details.LFHF.Score != 100 {
		t.Fatalf("lf/hf sub-score=%d, want 100", details.LFHF.Score)
	}
	if details.HRVScore.Score != 100 {
		t.Fatalf("hrv sub-score=%d, want 100", details.HRVScore.Score)
	}
}

func TestCompareHRVSelfGoodSDNN(t *testing.T) {
	m := model.HRVValue{SDNN: 60, LFHFRatio: 1.2, HRVScore: 75}
	_, details := CompareHRV(m, m)
	if details.SDNN.Score != 100 {
		t.Fatalf("identical sdnn above 50 should self-compare to 100, got %d", details.SDNN.Score)
	}
}

func TestCompareHRVSelfLowSDNNNotReflexive(t *testing.T) {
	// Identical mediocre measurements: diff 0 misses the 15-40 band, so
	// max(50, 100-|0-25|*1.5) = 62.5.
	m := model.HRVValue{SDNN: 30, LFHFRatio: 1.2, HRVScore: 60}
	_, details := CompareHRV(m, m)
	if details.SDNN.Score != 62 {
		t.Fatalf("identical sdnn below 50: sub-score=%d, want 62", details.SDNN.Score)
	}
}

func TestCompareHRVFloors(t *testing.T) {
	a := model.HRVValue{SDNN: 10, LFHFRatio: 0.5, HRVScore: 20}
	b := model.HRVValue{SDNN: 100, LFHFRatio: 4.0, HRVScore: 75}
	_, details := CompareHRV(a, b)
	// sdnn diff 90: 100-|90-25|*1.5 is far below the floor
	if details.SDNN.Score != 50 {
		t.Fatalf("sdnn floor: got %d, want 50", details.SDNN.Score)
	}
	// lf/hf diff 3.5: 100-|3.5-0.75|*40 is below the floor
	if details.LFHF.Score != 50 {
		t.Fatalf("lf/hf floor: got %d, want 50", details.LFHF.Score)
	}
}

func TestCompareHRVExcellentPartner(t *testing.T) {
	a := model.HRVValue{SDNN: 70, LFHFRatio: 1.0, HRVScore: 85}
	b := model.HRVValue{SDNN: 55, LFHFRatio: 1.6, HRVScore: 40}
	_, details := CompareHRV(a, b)
	if details.HRVScore.Score != 90 {
		t.Fatalf("one excellent hrv score should pin the sub-score at 90, got %d", details.HRVScore.Score)
	}
}

func TestDecodeHRVValueDefaults(t *testing.T) {
	v := model.DecodeHRVValue([]byte(`{}`))
	if v.SDNN != 0 || v.HRVScore != 0 {
		t.Fatalf("missing sdnn/hrv_score should default to 0, got %+v", v)
	}
	if v.LFHFRatio != 1.0 {
		t.Fatalf("missing lf_hf_ratio should default to 1.0, got %v", v.LFHFRatio)
	}

	v = model.DecodeHRVValue([]byte(`{"sdnn":42.5,"rmssd":31,"lf_hf_ratio":2.1,"hrv_score":63}`))
	if v.SDNN != 42.5 || v.RMSSD != 31 || v.LFHFRatio != 2.1 || v.HRVScore != 63 {
		t.Fatalf("decoded %+v", v)
	}
}
