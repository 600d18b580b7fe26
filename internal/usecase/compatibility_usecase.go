package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fadilmartias/compatibility-matrix/internal/logger"
	"github.com/fadilmartias/compatibility-matrix/internal/model"
	"github.com/fadilmartias/compatibility-matrix/internal/scoring"
	"golang.org/x/sync/errgroup"
)

// Store collaborators of the pairwise updater. Satisfied by the gorm
// repositories; the updater only ever sees these interfaces.
type AssessmentStore interface {
	FindByUser(userID string) ([]model.UserAssessment, error)
	FindByUserAndDimension(userID, dimensionID string) (*model.UserAssessment, error)
	ListCompletedByDimension(dimensionID, excludeUserID string) ([]model.UserAssessment, error)
}

type BiometricStore interface {
	LatestByUser(userID string) (*model.BiometricMeasurement, error)
	ListLatestExcept(userID string) ([]model.BiometricMeasurement, error)
}

type PairwiseStore interface {
	FindByPair(userIDA, userIDB string) (*model.CompatibilityScore, error)
	Upsert(c *model.CompatibilityScore) error
	FindBiometricByPair(userIDA, userIDB, biometricType string) (*model.BiometricCompatibilityScore, error)
	UpsertBiometric(c *model.BiometricCompatibilityScore) error
	ListForUser(userID string) ([]model.CompatibilityScore, error)
}

type DimensionCatalog interface {
	ListDimensions() ([]model.AssessmentDimension, error)
	FindDimension(id string) (*model.AssessmentDimension, error)
}

type ProfileStore interface {
	FindByID(id string) (*model.Profile, error)
}

// fanOutLimit bounds concurrent per-pair recomputes within one trigger.
const fanOutLimit = 8

// CompatibilityUsecase keeps the pairwise compatibility aggregates
// consistent as assessment and biometric data arrives. The On* entry
// points run as best-effort side effects of a successful primary write:
// every failure inside them is logged and swallowed, never propagated to
// the request that triggered them. The next trigger recomputes and
// self-heals anything that was skipped.
type CompatibilityUsecase struct {
	assessments AssessmentStore
	biometrics  BiometricStore
	pairs       PairwiseStore
	catalog     DimensionCatalog
	profiles    ProfileStore
	log         *logger.Logger
	pairLocks   *pairLockTable
}

func NewCompatibilityUsecase(assessments AssessmentStore, biometrics BiometricStore, pairs PairwiseStore, catalog DimensionCatalog, profiles ProfileStore, log *logger.Logger) *CompatibilityUsecase {
	return &CompatibilityUsecase{
		assessments: assessments,
		biometrics:  biometrics,
		pairs:       pairs,
		catalog:     catalog,
		profiles:    profiles,
		log:         log,
		pairLocks:   newPairLockTable(),
	}
}

// OnDimensionCompleted recomputes the dimension score between the
// triggering user and every other user who completed the same dimension,
// and merges each result into the pair's aggregate record.
func (uc *CompatibilityUsecase) OnDimensionCompleted(ctx context.Context, userID, dimensionID string) {
	self, err := uc.assessments.FindByUserAndDimension(userID, dimensionID)
	if err != nil {
		uc.log.Error("compatibility update: load own assessment", "user_id", userID, "dimension_id", dimensionID, "error", err)
		return
	}
	if self == nil || self.Status != model.AssessmentStatusCompleted {
		return
	}

	dimensionName := ""
	if dim, err := uc.catalog.FindDimension(dimensionID); err != nil {
		uc.log.Error("compatibility update: load dimension", "dimension_id", dimensionID, "error", err)
	} else if dim != nil {
		dimensionName = dim.Name
	}

	others, err := uc.assessments.ListCompletedByDimension(dimensionID, userID)
	if err != nil {
		uc.log.Error("compatibility update: list completed users", "dimension_id", dimensionID, "error", err)
		return
	}

	selfValues := responseValues(self.Responses)

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(fanOutLimit)
	for _, other := range others {
		other := other
		g.Go(func() error {
			score := scoring.ScoreDimension(selfValues, responseValues(other.Responses))
			ds := scoring.DimensionScore{DimensionID: dimensionID, Name: dimensionName, Score: score}
			if err := uc.mergeIntoPair(userID, other.UserID, ds); err != nil {
				uc.log.Error("compatibility update: merge pair",
					"user_id", userID, "other_user_id", other.UserID, "dimension_id", dimensionID, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// OnBiometricSaved recomputes biometric compatibility between the
// triggering user and every other user with hrv data, then feeds each
// score into the overall aggregate as the physiological pseudo-dimension.
func (uc *CompatibilityUsecase) OnBiometricSaved(ctx context.Context, userID string) {
	latest, err := uc.biometrics.LatestByUser(userID)
	if err != nil {
		uc.log.Error("biometric update: load own measurement", "user_id", userID, "error", err)
		return
	}
	if latest == nil {
		return
	}
	selfValue := model.DecodeHRVValue(latest.MeasurementValue)

	others, err := uc.biometrics.ListLatestExcept(userID)
	if err != nil {
		uc.log.Error("biometric update: list other measurements", "user_id", userID, "error", err)
		return
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(fanOutLimit)
	for _, other := range others {
		other := other
		g.Go(func() error {
			if err := uc.updateBiometricPair(userID, other.UserID, selfValue, model.DecodeHRVValue(other.MeasurementValue)); err != nil {
				uc.log.Error("biometric update: pair",
					"user_id", userID, "other_user_id", other.UserID, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (uc *CompatibilityUsecase) updateBiometricPair(userID, otherUserID string, selfValue, otherValue model.HRVValue) error {
	score, details := scoring.CompareHRV(selfValue, otherValue)
	keyA, keyB := scoring.CanonicalPair(userID, otherUserID)

	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("marshal compatibility details: %w", err)
	}

	now := time.Now()
	record := &model.BiometricCompatibilityScore{
		UserIDA:              keyA,
		UserIDB:              keyB,
		BiometricType:        model.MeasurementTypeHRV,
		CompatibilityScore:   score,
		CompatibilityDetails: detailsJSON,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if existing, err := uc.pairs.FindBiometricByPair(keyA, keyB, model.MeasurementTypeHRV); err != nil {
		return err
	} else if existing != nil {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	}
	if err := uc.pairs.UpsertBiometric(record); err != nil {
		return err
	}

	ds := scoring.DimensionScore{
		DimensionID: scoring.PhysiologicalDimensionID,
		Name:        scoring.PhysiologicalDimensionName,
		Score:       score,
	}
	return uc.mergeIntoPair(userID, otherUserID, ds)
}

// mergeIntoPair is the single write path for the aggregate record:
// canonicalize, lock the pair key, merge the dimension score, recompute
// overall/strengths/challenges, upsert.
func (uc *CompatibilityUsecase) mergeIntoPair(userID, otherUserID string, ds scoring.DimensionScore) error {
	keyA, keyB := scoring.CanonicalPair(userID, otherUserID)
	unlock := uc.pairLocks.lock(keyA, keyB)
	defer unlock()

	existing, err := uc.pairs.FindByPair(keyA, keyB)
	if err != nil {
		return err
	}

	var current []scoring.DimensionScore
	if existing != nil && len(existing.DimensionScores) > 0 {
		if err := json.Unmarshal(existing.DimensionScores, &current); err != nil {
			return fmt.Errorf("decode dimension scores: %w", err)
		}
	}

	merged := scoring.MergeDimensionScore(current, ds)
	strengths, challenges := scoring.Classify(merged)

	record, err := buildPairRecord(keyA, keyB, merged, strengths, challenges)
	if err != nil {
		return err
	}
	if existing != nil {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	}
	return uc.pairs.Upsert(record)
}

func buildPairRecord(keyA, keyB string, merged, strengths, challenges []scoring.DimensionScore) (*model.CompatibilityScore, error) {
	dimensionsJSON, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("marshal dimension scores: %w", err)
	}
	strengthsJSON, err := json.Marshal(strengths)
	if err != nil {
		return nil, fmt.Errorf("marshal strengths: %w", err)
	}
	challengesJSON, err := json.Marshal(challenges)
	if err != nil {
		return nil, fmt.Errorf("marshal challenges: %w", err)
	}

	now := time.Now()
	return &model.CompatibilityScore{
		UserIDA:         keyA,
		UserIDB:         keyB,
		OverallScore:    scoring.OverallScore(merged),
		DimensionScores: dimensionsJSON,
		Strengths:       strengthsJSON,
		Challenges:      challengesJSON,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// ComputePairwiseIfMissing is the synchronous read-time fallback: return
// the stored record if one exists, otherwise compute from whatever
// comparable data the two users share and persist the result. Returns
// (nil, nil) when the pair has no comparable data at all.
func (uc *CompatibilityUsecase) ComputePairwiseIfMissing(ctx context.Context, userIDA, userIDB string) (*model.CompatibilityScore, error) {
	keyA, keyB := scoring.CanonicalPair(userIDA, userIDB)

	existing, err := uc.pairs.FindByPair(keyA, keyB)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	scores, err := uc.computeAllDimensions(keyA, keyB)
	if err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return nil, nil
	}

	for _, ds := range scores {
		if err := uc.mergeIntoPair(keyA, keyB, ds); err != nil {
			return nil, err
		}
	}
	return uc.pairs.FindByPair(keyA, keyB)
}

func (uc *CompatibilityUsecase) computeAllDimensions(keyA, keyB string) ([]scoring.DimensionScore, error) {
	assessmentsA, err := uc.assessments.FindByUser(keyA)
	if err != nil {
		return nil, err
	}
	assessmentsB, err := uc.assessments.FindByUser(keyB)
	if err != nil {
		return nil, err
	}

	completedB := make(map[string]model.UserAssessment)
	for _, a := range assessmentsB {
		if a.Status == model.AssessmentStatusCompleted {
			completedB[a.DimensionID.String()] = a
		}
	}

	var scores []scoring.DimensionScore
	for _, a := range assessmentsA {
		if a.Status != model.AssessmentStatusCompleted {
			continue
		}
		b, ok := completedB[a.DimensionID.String()]
		if !ok {
			continue
		}
		name := ""
		if dim, err := uc.catalog.FindDimension(a.DimensionID.String()); err == nil && dim != nil {
			name = dim.Name
		}
		scores = append(scores, scoring.DimensionScore{
			DimensionID: a.DimensionID.String(),
			Name:        name,
			Score:       scoring.ScoreDimension(responseValues(a.Responses), responseValues(b.Responses)),
		})
	}

	measurementA, err := uc.biometrics.LatestByUser(keyA)
	if err != nil {
		return nil, err
	}
	measurementB, err := uc.biometrics.LatestByUser(keyB)
	if err != nil {
		return nil, err
	}
	if measurementA != nil && measurementB != nil {
		score, _ := scoring.CompareHRV(
			model.DecodeHRVValue(measurementA.MeasurementValue),
			model.DecodeHRVValue(measurementB.MeasurementValue),
		)
		scores = append(scores, scoring.DimensionScore{
			DimensionID: scoring.PhysiologicalDimensionID,
			Name:        scoring.PhysiologicalDimensionName,
			Score:       score,
		})
	}
	return scores, nil
}

// GetMatrix returns every pairwise record touching the user.
func (uc *CompatibilityUsecase) GetMatrix(userID string) ([]model.CompatibilityScore, error) {
	return uc.pairs.ListForUser(userID)
}

type CompatibilityDetail struct {
	OverallScore    int             `json:"overall_score"`
	DimensionScores json.RawMessage `json:"dimension_scores"`
	Strengths       json.RawMessage `json:"strengths,omitempty"`
	Challenges      json.RawMessage `json:"challenges,omitempty"`
	OtherUserName   string          `json:"other_user_name,omitempty"`
	Message         string          `json:"message,omitempty"`
}

// GetWithUser returns the compatibility detail between two users, using
// the read-time fallback when no record was stored yet. No data is a
// valid zero-score result, not an error.
func (uc *CompatibilityUsecase) GetWithUser(ctx context.Context, userID, otherUserID string) (*CompatibilityDetail, error) {
	record, err := uc.ComputePairwiseIfMissing(ctx, userID, otherUserID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return &CompatibilityDetail{
			OverallScore:    0,
			DimensionScores: json.RawMessage("[]"),
			Message:         "No compatibility data available yet",
		}, nil
	}

	detail := &CompatibilityDetail{
		OverallScore:    record.OverallScore,
		DimensionScores: json.RawMessage(record.DimensionScores),
		Strengths:       json.RawMessage(record.Strengths),
		Challenges:      json.RawMessage(record.Challenges),
	}
	if profile, err := uc.profiles.FindByID(otherUserID); err == nil && profile != nil {
		detail.OtherUserName = profile.Name
	} else {
		detail.OtherUserName = "Unknown User"
	}
	return detail, nil
}

func responseValues(raw []byte) []any {
	if len(raw) == 0 {
		return nil
	}
	var responses []model.AssessmentResponse
	if err := json.Unmarshal(raw, &responses); err != nil {
		return nil
	}
	values := make([]any, len(responses))
	for i := range responses {
		values[i] = responses[i].Value
	}
	return values
}
