package repository

import (
	"errors"

	"github.com/fadilmartias/compatibility-matrix/internal/model"
	"gorm.io/gorm"
)

type DimensionRepository struct {
	db *gorm.DB
}

func NewDimensionRepository(db *gorm.DB) *DimensionRepository {
	return &DimensionRepository{db}
}

func (r *DimensionRepository) ListDimensions() ([]model.AssessmentDimension, error) {
	var dims []model.AssessmentDimension
	err := r.db.Order("order_index asc").Find(&dims).Error
	return dims, err
}

func (r *DimensionRepository) FindDimension(id string) (*model.AssessmentDimension, error) {
	var d model.AssessmentDimension
	err := r.db.First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DimensionRepository) FindQuestions(dimensionID string) ([]model.AssessmentQuestion, error) {
	var questions []model.AssessmentQuestion
	err := r.db.Where("dimension_id = ?", dimensionID).Order("order_index asc").Find(&questions).Error
	return questions, err
}

func (r *DimensionRepository) CountQuestions(dimensionID string) (int, error) {
	var count int64
	err := r.db.Model(&model.AssessmentQuestion{}).Where("dimension_id = ?", dimensionID).Count(&count).Error
	return int(count), err
}
