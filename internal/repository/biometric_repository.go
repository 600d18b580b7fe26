package repository

import (
	"errors"

	"github.com/fadilmartias/compatibility-matrix/internal/model"
	"gorm.io/gorm"
)

type BiometricRepository struct {
	db *gorm.DB
}

func NewBiometricRepository(db *gorm.DB) *BiometricRepository {
	return &BiometricRepository{db}
}

func (r *BiometricRepository) Insert(m *model.BiometricMeasurement) error {
	return r.db.Create(m).Error
}

func (r *BiometricRepository) LatestByUser(userID string) (*model.BiometricMeasurement, error) {
	var m model.BiometricMeasurement
	err := r.db.
		Where("user_id = ? AND measurement_type = ?", userID, model.MeasurementTypeHRV).
		Order("created_at desc").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *BiometricRepository) RecentByUser(userID string, limit, offset int) ([]model.BiometricMeasurement, error) {
	var measurements []model.BiometricMeasurement
	err := r.db.
		Where("user_id = ? AND measurement_type = ?", userID, model.MeasurementTypeHRV).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&measurements).Error
	return measurements, err
}

func (r *BiometricRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.BiometricMeasurement{}).
		Where("user_id = ? AND measurement_type = ?", userID, model.MeasurementTypeHRV).
		Count(&count).Error
	return count, err
}

// ListLatestExcept returns the most recent hrv measurement per user,
// excluding the given user.
func (r *BiometricRepository) ListLatestExcept(userID string) ([]model.BiometricMeasurement, error) {
	var measurements []model.BiometricMeasurement
	err := r.db.Raw(`
        SELECT DISTINCT ON (user_id) *
        FROM biometric_measurements
        WHERE measurement_type = ? AND user_id <> ?
        ORDER BY user_id, created_at DESC
    `, model.MeasurementTypeHRV, userID).Scan(&measurements).Error
	return measurements, err
}
