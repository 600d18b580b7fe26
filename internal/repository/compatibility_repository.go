package repository

import (
	"errors"

	"github.com/fadilmartias/compatibility-matrix/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompatibilityRepository struct {
	db *gorm.DB
}

func NewCompatibilityRepository(db *gorm.DB) *CompatibilityRepository {
	return &CompatibilityRepository{db}
}

// FindByPair expects the canonical ordering (userIDA < userIDB).
func (r *CompatibilityRepository) FindByPair(userIDA, userIDB string) (*model.CompatibilityScore, error) {
	var c model.CompatibilityScore
	err := r.db.Where("user_id_a = ? AND user_id_b = ?", userIDA, userIDB).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompatibilityRepository) Upsert(c *model.CompatibilityScore) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id_a"}, {Name: "user_id_b"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"overall_score", "dimension_scores", "strengths", "challenges", "updated_at",
		}),
	}).Create(c).Error
}

func (r *CompatibilityRepository) ListForUser(userID string) ([]model.CompatibilityScore, error) {
	var scores []model.CompatibilityScore
	err := r.db.Where("user_id_a = ? OR user_id_b = ?", userID, userID).Find(&scores).Error
	return scores, err
}

func (r *CompatibilityRepository) FindBiometricByPair(userIDA, userIDB, biometricType string) (*model.BiometricCompatibilityScore, error) {
	var c model.BiometricCompatibilityScore
	err := r.db.
		Where("user_id_a = ? AND user_id_b = ? AND biometric_type = ?", userIDA, userIDB, biometricType).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompatibilityRepository) UpsertBiometric(c *model.BiometricCompatibilityScore) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id_a"}, {Name: "user_id_b"}, {Name: "biometric_type"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"compatibility_score", "compatibility_details", "updated_at",
		}),
	}).Create(c).Error
}
