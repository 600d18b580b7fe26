package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fadilmartias/compatibility-matrix/internal/logger"
	"github.com/fadilmartias/compatibility-matrix/internal/model"
	"github.com/fadilmartias/compatibility-matrix/internal/repository"
	"github.com/fadilmartias/compatibility-matrix/internal/scoring"
)

type BiometricUsecase struct {
	biometricRepo *repository.BiometricRepository
	compatRepo    *repository.CompatibilityRepository
	profileRepo   *repository.ProfileRepository
	compat        *CompatibilityUsecase
	log           *logger.Logger
}

func NewBiometricUsecase(biometricRepo *repository.BiometricRepository, compatRepo *repository.CompatibilityRepository, profileRepo *repository.ProfileRepository, compat *CompatibilityUsecase, log *logger.Logger) *BiometricUsecase {
	return &BiometricUsecase{
		biometricRepo: biometricRepo,
		compatRepo:    compatRepo,
		profileRepo:   profileRepo,
		compat:        compat,
		log:           log,
	}
}

type HRVMeasurementInput struct {
	SDNN      *float64 `json:"sdnn"`
	RMSSD     *float64 `json:"rmssd"`
	LFHFRatio *float64 `json:"lf_hf_ratio"`
	HRVScore  *int     `json:"hrvScore"`
}

// SaveHRV validates and stores a measurement, then schedules the
// biometric compatibility recompute in the background.
func (uc *BiometricUsecase) SaveHRV(ctx context.Context, userID string, input HRVMeasurementInput) (*model.BiometricMeasurement, error) {
	switch {
	case input.SDNN == nil:
		return nil, fmt.Errorf("%w: missing required field: sdnn", ErrValidation)
	case input.RMSSD == nil:
		return nil, fmt.Errorf("%w: missing required field: rmssd", ErrValidation)
	case input.LFHFRatio == nil:
		return nil, fmt.Errorf("%w: missing required field: lf_hf_ratio", ErrValidation)
	case input.HRVScore == nil:
		return nil, fmt.Errorf("%w: missing required field: hrvScore", ErrValidation)
	}
	if *input.SDNN < 0 || *input.LFHFRatio < 0 {
		return nil, fmt.Errorf("%w: sdnn and lf_hf_ratio must be non-negative", ErrValidation)
	}
	if *input.HRVScore < 0 || *input.HRVScore > 100 {
		return nil, fmt.Errorf("%w: hrvScore must be within [0,100]", ErrValidation)
	}

	value, err := json.Marshal(model.HRVValue{
		SDNN:      *input.SDNN,
		RMSSD:     *input.RMSSD,
		LFHFRatio: *input.LFHFRatio,
		HRVScore:  *input.HRVScore,
	})
	if err != nil {
		return nil, fmt.Errorf("encode measurement: %w", err)
	}

	now := time.Now()
	measurement := &model.BiometricMeasurement{
		UserID:           userID,
		MeasurementType:  model.MeasurementTypeHRV,
		MeasurementValue: value,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.biometricRepo.Insert(measurement); err != nil {
		return nil, err
	}

	uc.log.Info("hrv measurement saved, scheduling biometric compatibility update", "user_id", userID)
	go uc.compat.OnBiometricSaved(context.WithoutCancel(ctx), userID)

	return measurement, nil
}

// RecentMeasurements pages the user's hrv history, newest first.
func (uc *BiometricUsecase) RecentMeasurements(userID string, page, limit int) ([]model.BiometricMeasurement, int64, error) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}
	total, err := uc.biometricRepo.CountByUser(userID)
	if err != nil {
		return nil, 0, err
	}
	measurements, err := uc.biometricRepo.RecentByUser(userID, limit, (page-1)*limit)
	return measurements, total, err
}

type BiometricCompatibilityResult struct {
	Record  *model.BiometricCompatibilityScore
	Stored  bool
	Message string
}

// GetCompatibility returns the stored biometric record for the pair, or
// computes one on the fly (without saving) when both users have
// measurements. Missing data is a valid result, not an error.
func (uc *BiometricUsecase) GetCompatibility(userID, otherUserID string) (*BiometricCompatibilityResult, error) {
	other, err := uc.profileRepo.FindByID(otherUserID)
	if err != nil {
		return nil, err
	}
	if other == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}

	keyA, keyB := scoring.CanonicalPair(userID, otherUserID)
	record, err := uc.compatRepo.FindBiometricByPair(keyA, keyB, model.MeasurementTypeHRV)
	if err != nil {
		return nil, err
	}
	if record != nil {
		return &BiometricCompatibilityResult{Record: record, Stored: true}, nil
	}

	mine, err := uc.biometricRepo.LatestByUser(userID)
	if err != nil {
		return nil, err
	}
	theirs, err := uc.biometricRepo.LatestByUser(otherUserID)
	if err != nil {
		return nil, err
	}
	if mine == nil || theirs == nil {
		return &BiometricCompatibilityResult{
			Message: "One or both users have not completed HRV measurements yet",
		}, nil
	}

	score, details := scoring.CompareHRV(
		model.DecodeHRVValue(mine.MeasurementValue),
		model.DecodeHRVValue(theirs.MeasurementValue),
	)
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("encode compatibility details: %w", err)
	}
	return &BiometricCompatibilityResult{
		Record: &model.BiometricCompatibilityScore{
			UserIDA:              keyA,
			UserIDB:              keyB,
			BiometricType:        model.MeasurementTypeHRV,
			CompatibilityScore:   score,
			CompatibilityDetails: detailsJSON,
		},
		Message: "Compatibility calculated but not yet saved",
	}, nil
}
