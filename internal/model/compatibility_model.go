package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CompatibilityScore is the single aggregate of compatibility data between
// two users. user_id_a < user_id_b lexicographically, so at most one row
// exists per unordered pair.
type CompatibilityScore struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserIDA         string         `gorm:"type:uuid;uniqueIndex:idx_pair" json:"user_id_a"`
	UserIDB         string         `gorm:"type:uuid;uniqueIndex:idx_pair" json:"user_id_b"`
	OverallScore    int            `json:"overall_score"`
	DimensionScores datatypes.JSON `gorm:"type:jsonb" json:"dimension_scores"`
	Strengths       datatypes.JSON `gorm:"type:jsonb" json:"strengths"`
	Challenges      datatypes.JSON `gorm:"type:jsonb" json:"challenges"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (c *CompatibilityScore) TableName() string {
	return "compatibility_scores"
}

// BiometricCompatibilityScore is the biometric-scoped pairwise aggregate.
// Same canonical pair ordering as CompatibilityScore.
type BiometricCompatibilityScore struct {
	ID                   uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserIDA              string         `gorm:"type:uuid;uniqueIndex:idx_bio_pair" json:"user_id_a"`
	UserIDB              string         `gorm:"type:uuid;uniqueIndex:idx_bio_pair" json:"user_id_b"`
	BiometricType        string         `gorm:"type:varchar(50);uniqueIndex:idx_bio_pair" json:"biometric_type"`
	CompatibilityScore   int            `json:"compatibility_score"`
	CompatibilityDetails datatypes.JSON `gorm:"type:jsonb" json:"compatibility_details"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

func (c *BiometricCompatibilityScore) TableName() string {
	return "biometric_compatibility_scores"
}
