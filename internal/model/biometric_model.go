package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"gorm.io/datatypes"
)

const MeasurementTypeHRV = "hrv"

// BiometricMeasurement is an append-only HRV sample; the current
// measurement for a user is the most recent by created_at.
type BiometricMeasurement struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID           string         `gorm:"type:uuid;index" json:"user_id"`
	MeasurementType  string         `gorm:"type:varchar(50)" json:"measurement_type"`
	MeasurementValue datatypes.JSON `gorm:"type:jsonb" json:"measurement_value"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func (m *BiometricMeasurement) TableName() string {
	return "biometric_measurements"
}

// HRVValue is the decoded shape of MeasurementValue for hrv samples.
type HRVValue struct {
	SDNN      float64 `json:"sdnn"`
	RMSSD     float64 `json:"rmssd"`
	LFHFRatio float64 `json:"lf_hf_ratio"`
	HRVScore  int     `json:"hrv_score"`
}

// DecodeHRVValue reads a measurement_value document. Missing sdnn and
// hrv_score default to 0, a missing lf_hf_ratio defaults to 1.0.
func DecodeHRVValue(raw []byte) HRVValue {
	v := HRVValue{LFHFRatio: 1.0}
	if r := gjson.GetBytes(raw, "sdnn"); r.Exists() {
		v.SDNN = r.Float()
	}
	if r := gjson.GetBytes(raw, "rmssd"); r.Exists() {
		v.RMSSD = r.Float()
	}
	if r := gjson.GetBytes(raw, "lf_hf_ratio"); r.Exists() {
		v.LFHFRatio = r.Float()
	}
	if r := gjson.GetBytes(raw, "hrv_score"); r.Exists() {
		v.HRVScore = int(r.Int())
	}
	return v
}
