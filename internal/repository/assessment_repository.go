package repository

import (
	"errors"

	"github.com/fadilmartias/compatibility-matrix/internal/model"
	"gorm.io/gorm"
)

type AssessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db}
}

func (r *AssessmentRepository) Create(a *model.UserAssessment) error {
	return r.db.Create(a).Error
}

func (r *AssessmentRepository) Update(a *model.UserAssessment) error {
	return r.db.Save(a).Error
}

func (r *AssessmentRepository) FindByID(id string) (*model.UserAssessment, error) {
	var a model.UserAssessment
	err := r.db.First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssessmentRepository) FindByUser(userID string) ([]model.UserAssessment, error) {
	var assessments []model.UserAssessment
	err := r.db.Where("user_id = ?", userID).Find(&assessments).Error
	return assessments, err
}

func (r *AssessmentRepository) FindByUserAndDimension(userID, dimensionID string) (*model.UserAssessment, error) {
	var a model.UserAssessment
	err := r.db.Where("user_id = ? AND dimension_id = ?", userID, dimensionID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListUsersWithCompletedAssessments returns the distinct ids of users who
// completed at least one dimension, excluding the given user.
func (r *AssessmentRepository) ListUsersWithCompletedAssessments(excludeUserID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.UserAssessment{}).
		Distinct("user_id").
		Where("status = ? AND user_id <> ?", model.AssessmentStatusCompleted, excludeUserID).
		Pluck("user_id", &ids).Error
	return ids, err
}

// ListCompletedByDimension returns every other user's completed assessment
// for one dimension, i.e. the fan-out set for a pairwise recompute.
func (r *AssessmentRepository) ListCompletedByDimension(dimensionID, excludeUserID string) ([]model.UserAssessment, error) {
	var assessments []model.UserAssessment
	err := r.db.
		Where("dimension_id = ? AND status = ? AND user_id <> ?", dimensionID, model.AssessmentStatusCompleted, excludeUserID).
		Find(&assessments).Error
	return assessments, err
}
