package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	AssessmentStatusNotStarted = "not_started"
	AssessmentStatusInProgress = "in_progress"
	AssessmentStatusCompleted  = "completed"
)

type AssessmentDimension struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255)" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Weight      int       `json:"weight"`
	OrderIndex  int       `json:"order_index"`
}

func (d *AssessmentDimension) TableName() string {
	return "assessment_dimensions"
}

type AssessmentQuestion struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	DimensionID  uuid.UUID      `gorm:"type:uuid;index" json:"dimension_id"`
	Text         string         `gorm:"type:text" json:"text"`
	QuestionType string         `gorm:"type:varchar(50)" json:"question_type"` // e.g. "scale", "multiple_choice"
	Options      datatypes.JSON `gorm:"type:jsonb" json:"options"`
	OrderIndex   int            `json:"order_index"`
}

func (q *AssessmentQuestion) TableName() string {
	return "assessment_questions"
}

// UserAssessment is one user's progress on one dimension. Unique per
// (user_id, dimension_id); responses are an append-only jsonb array.
type UserAssessment struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      string         `gorm:"type:uuid;uniqueIndex:idx_user_dimension" json:"user_id"`
	DimensionID uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_user_dimension" json:"dimension_id"`
	Status      string         `gorm:"type:varchar(50)" json:"status"`
	Progress    int            `json:"progress"`
	Responses   datatypes.JSON `gorm:"type:jsonb" json:"responses"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (a *UserAssessment) TableName() string {
	return "user_assessments"
}

// AssessmentResponse is one element of UserAssessment.Responses. Value is
// either a numeric scale point (1-5) or a categorical token.
type AssessmentResponse struct {
	QuestionID string    `json:"question_id"`
	Value      any       `json:"value"`
	Timestamp  time.Time `json:"timestamp"`
}
