package dto

import (
	"time"

	"github.com/fadilmartias/compatibility-matrix/internal/model"
	"github.com/google/uuid"
)

// HRVMeasurementDTO flattens the measurement_value document for clients.
type HRVMeasurementDTO struct {
	ID        uuid.UUID `json:"id"`
	SDNN      float64   `json:"sdnn"`
	RMSSD     float64   `json:"rmssd"`
	LFHFRatio float64   `json:"lf_hf_ratio"`
	HRVScore  int       `json:"hrv_score"`
	CreatedAt time.Time `json:"created_at"`
}

func NewHRVMeasurementDTO(m model.BiometricMeasurement) HRVMeasurementDTO {
	value := model.DecodeHRVValue(m.MeasurementValue)
	return HRVMeasurementDTO{
		ID:        m.ID,
		SDNN:      value.SDNN,
		RMSSD:     value.RMSSD,
		LFHFRatio: value.LFHFRatio,
		HRVScore:  value.HRVScore,
		CreatedAt: m.CreatedAt,
	}
}
