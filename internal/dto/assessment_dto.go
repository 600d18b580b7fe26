package dto

import (
	"time"

	"github.com/fadilmartias/compatibility-matrix/internal/model"
	"github.com/google/uuid"
)

// AssessmentSummaryDTO is the list shape: progress without the raw
// responses payload.
type AssessmentSummaryDTO struct {
	ID          uuid.UUID `json:"id"`
	DimensionID uuid.UUID `json:"dimension_id"`
	Status      string    `json:"status"`
	Progress    int       `json:"progress"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewAssessmentSummaryDTO(a model.UserAssessment) AssessmentSummaryDTO {
	return AssessmentSummaryDTO{
		ID:          a.ID,
		DimensionID: a.DimensionID,
		Status:      a.Status,
		Progress:    a.Progress,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
