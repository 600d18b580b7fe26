package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fadilmartias/compatibility-matrix/internal/logger"
	"github.com/fadilmartias/compatibility-matrix/internal/model"
	"github.com/fadilmartias/compatibility-matrix/internal/scoring"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	userAlice = "2e9d1a40-0000-0000-0000-000000000001"
	userBob   = "5b1c7f20-0000-0000-0000-000000000002"
	dimComm   = "9a3f0c10-0000-0000-0000-0000000000aa"
)

type fakeAssessmentStore struct {
	assessments []model.UserAssessment
	err         error
}

func (f *fakeAssessmentStore) FindByUser(userID string) ([]model.UserAssessment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.UserAssessment
	for _, a := range f.assessments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssessmentStore) FindByUserAndDimension(userID, dimensionID string) (*model.UserAssessment, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.assessments {
		if a.UserID == userID && a.DimensionID.String() == dimensionID {
			a := a
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeAssessmentStore) ListCompletedByDimension(dimensionID, excludeUserID string) ([]model.UserAssessment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.UserAssessment
	for _, a := range f.assessments {
		if a.DimensionID.String() == dimensionID && a.UserID != excludeUserID && a.Status == model.AssessmentStatusCompleted {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeBiometricStore struct {
	measurements map[string]model.BiometricMeasurement
}

func (f *fakeBiometricStore) LatestByUser(userID string) (*model.BiometricMeasurement, error) {
	m, ok := f.measurements[userID]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (f *fakeBiometricStore) ListLatestExcept(userID string) ([]model.BiometricMeasurement, error) {
	var out []model.BiometricMeasurement
	for id, m := range f.measurements {
		if id != userID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakePairwiseStore struct {
	pairs     map[string]*model.CompatibilityScore
	bioPairs  map[string]*model.BiometricCompatibilityScore
	upserts   int
	upsertErr error
}

func newFakePairwiseStore() *fakePairwiseStore {
	return &fakePairwiseStore{
		pairs:    map[string]*model.CompatibilityScore{},
		bioPairs: map[string]*model.BiometricCompatibilityScore{},
	}
}

func (f *fakePairwiseStore) FindByPair(a, b string) (*model.CompatibilityScore, error) {
	if record, ok := f.pairs[a+"|"+b]; ok {
		clone := *record
		return &clone, nil
	}
	return nil, nil
}

func (f *fakePairwiseStore) Upsert(c *model.CompatibilityScore) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts++
	clone := *c
	f.pairs[c.UserIDA+"|"+c.UserIDB] = &clone
	return nil
}

func (f *fakePairwiseStore) FindBiometricByPair(a, b, biometricType string) (*model.BiometricCompatibilityScore, error) {
	if record, ok := f.bioPairs[a+"|"+b+"|"+biometricType]; ok {
		clone := *record
		return &clone, nil
	}
	return nil, nil
}

func (f *fakePairwiseStore) UpsertBiometric(c *model.BiometricCompatibilityScore) error {
	clone := *c
	f.bioPairs[c.UserIDA+"|"+c.UserIDB+"|"+c.BiometricType] = &clone
	return nil
}

func (f *fakePairwiseStore) ListForUser(userID string) ([]model.CompatibilityScore, error) {
	var out []model.CompatibilityScore
	for _, record := range f.pairs {
		if record.UserIDA == userID || record.UserIDB == userID {
			out = append(out, *record)
		}
	}
	return out, nil
}

type fakeCatalog struct {
	dimensions map[string]model.AssessmentDimension
}

func (f *fakeCatalog) ListDimensions() ([]model.AssessmentDimension, error) {
	var out []model.AssessmentDimension
	for _, d := range f.dimensions {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeCatalog) FindDimension(id string) (*model.AssessmentDimension, error) {
	d, ok := f.dimensions[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

type fakeProfileStore struct {
	profiles map[string]model.Profile
}

func (f *fakeProfileStore) FindByID(id string) (*model.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func completedAssessment(t *testing.T, userID, dimensionID string, values ...any) model.UserAssessment {
	t.Helper()
	responses := make([]model.AssessmentResponse, len(values))
	for i, v := range values {
		responses[i] = model.AssessmentResponse{
			QuestionID: uuid.NewString(),
			Value:      v,
			Timestamp:  time.Now(),
		}
	}
	raw, err := json.Marshal(responses)
	require.NoError(t, err)
	return model.UserAssessment{
		ID:          uuid.New(),
		UserID:      userID,
		DimensionID: uuid.MustParse(dimensionID),
		Status:      model.AssessmentStatusCompleted,
		Progress:    100,
		Responses:   raw,
	}
}

func hrvMeasurement(t *testing.T, userID string, value model.HRVValue) model.BiometricMeasurement {
	t.Helper()
	raw, err := json.Marshal(value)
	require.NoError(t, err)
	return model.BiometricMeasurement{
		ID:               uuid.New(),
		UserID:           userID,
		MeasurementType:  model.MeasurementTypeHRV,
		MeasurementValue: raw,
	}
}

func newTestUsecase(assessments *fakeAssessmentStore, biometrics *fakeBiometricStore, pairs *fakePairwiseStore, catalog *fakeCatalog) *CompatibilityUsecase {
	if biometrics == nil {
		biometrics = &fakeBiometricStore{measurements: map[string]model.BiometricMeasurement{}}
	}
	if catalog == nil {
		catalog = &fakeCatalog{dimensions: map[string]model.AssessmentDimension{}}
	}
	profiles := &fakeProfileStore{profiles: map[string]model.Profile{
		userBob: {ID: userBob, Name: "Bob"},
	}}
	return NewCompatibilityUsecase(assessments, biometrics, pairs, catalog, profiles, logger.Nop())
}

func decodeDimensionScores(t *testing.T, raw []byte) []scoring.DimensionScore {
	t.Helper()
	var scores []scoring.DimensionScore
	require.NoError(t, json.Unmarshal(raw, &scores))
	return scores
}

func TestOnDimensionCompletedCreatesPairRecord(t *testing.T) {
	assessments := &fakeAssessmentStore{assessments: []model.UserAssessment{
		completedAssessment(t, userAlice, dimComm, 3, 4, 5),
		completedAssessment(t, userBob, dimComm, 3, 5, 5),
	}}
	catalog := &fakeCatalog{dimensions: map[string]model.AssessmentDimension{
		dimComm: {ID: uuid.MustParse(dimComm), Name: "Communication Styles"},
	}}
	pairs := newFakePairwiseStore()
	uc := newTestUsecase(assessments, nil, pairs, catalog)

	uc.OnDimensionCompleted(context.Background(), userAlice, dimComm)

	keyA, keyB := scoring.CanonicalPair(userAlice, userBob)
	record, err := pairs.FindByPair(keyA, keyB)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, 92, record.OverallScore)
	scores := decodeDimensionScores(t, record.DimensionScores)
	require.Len(t, scores, 1)
	assert.Equal(t, dimComm, scores[0].DimensionID)
	assert.Equal(t, "Communication Styles", scores[0].Name)
	assert.Equal(t, 92, scores[0].Score)

	strengths := decodeDimensionScores(t, record.Strengths)
	require.Len(t, strengths, 1)
	assert.Equal(t, 92, strengths[0].Score)
	assert.Empty(t, decodeDimensionScores(t, record.Challenges))
}

func TestOnDimensionCompletedReplacesExistingScore(t *testing.T) {
	assessments := &fakeAssessmentStore{assessments: []model.UserAssessment{
		completedAssessment(t, userAlice, dimComm, 3, 4, 5),
		completedAssessment(t, userBob, dimComm, 3, 5, 5),
	}}
	pairs := newFakePairwiseStore()
	uc := newTestUsecase(assessments, nil, pairs, nil)

	uc.OnDimensionCompleted(context.Background(), userAlice, dimComm)
	uc.OnDimensionCompleted(context.Background(), userAlice, dimComm)

	keyA, keyB := scoring.CanonicalPair(userAlice, userBob)
	record, err := pairs.FindByPair(keyA, keyB)
	require.NoError(t, err)
	require.NotNil(t, record)

	// Same dimension recomputed twice must replace, not accumulate.
	assert.Len(t, decodeDimensionScores(t, record.DimensionScores), 1)
	assert.Equal(t, 2, pairs.upserts)
}

func TestOnDimensionCompletedIgnoresIncompleteTrigger(t *testing.T) {
	incomplete := completedAssessment(t, userAlice, dimComm, 3)
	incomplete.Status = model.AssessmentStatusInProgress
	assessments := &fakeAssessmentStore{assessments: []model.UserAssessment{
		incomplete,
		completedAssessment(t, userBob, dimComm, 3),
	}}
	pairs := newFakePairwiseStore()
	uc := newTestUsecase(assessments, nil, pairs, nil)

	uc.OnDimensionCompleted(context.Background(), userAlice, dimComm)

	assert.Empty(t, pairs.pairs)
}

func TestOnDimensionCompletedSwallowsStoreErrors(t *testing.T) {
	assessments := &fakeAssessmentStore{err: errors.New("db down")}
	pairs := newFakePairwiseStore()
	uc := newTestUsecase(assessments, nil, pairs, nil)

	// Must not panic and must not propagate anything.
	uc.OnDimensionCompleted(context.Background(), userAlice, dimComm)
	assert.Empty(t, pairs.pairs)
}

func TestOnDimensionCompletedSwallowsUpsertErrors(t *testing.T) {
	assessments := &fakeAssessmentStore{assessments: []model.UserAssessment{
		completedAssessment(t, userAlice, dimComm, 3),
		completedAssessment(t, userBob, dimComm, 3),
	}}
	pairs := newFakePairwiseStore()
	pairs.upsertErr = errors.New("constraint violation")
	uc := newTestUsecase(assessments, nil, pairs, nil)

	uc.OnDimensionCompleted(context.Background(), userAlice, dimComm)
	assert.Empty(t, pairs.pairs)
}

func TestOnBiometricSavedStoresBiometricAndPhysiologicalDimension(t *testing.T) {
	biometrics := &fakeBiometricStore{measurements: map[string]model.BiometricMeasurement{
		userAlice: hrvMeasurement(t, userAlice, model.HRVValue{SDNN: 30, LFHFRatio: 1.0, HRVScore: 70}),
		userBob:   hrvMeasurement(t, userBob, model.HRVValue{SDNN: 60, LFHFRatio: 1.7, HRVScore: 72}),
	}}
	assessments := &fakeAssessmentStore{}
	pairs := newFakePairwiseStore()
	uc := newTestUsecase(assessments, biometrics, pairs, nil)

	uc.OnBiometricSaved(context.Background(), userAlice)

	keyA, keyB := scoring.CanonicalPair(userAlice, userBob)
	bio, err := pairs.FindBiometricByPair(keyA, keyB, model.MeasurementTypeHRV)
	require.NoError(t, err)
	require.NotNil(t, bio)
	assert.Equal(t, 96, bio.CompatibilityScore)

	record, err := pairs.FindByPair(keyA, keyB)
	require.NoError(t, err)
	require.NotNil(t, record)
	scores := decodeDimensionScores(t, record.DimensionScores)
	require.Len(t, scores, 1)
	assert.Equal(t, scoring.PhysiologicalDimensionID, scores[0].DimensionID)
	assert.Equal(t, scoring.PhysiologicalDimensionName, scores[0].Name)
	assert.Equal(t, 96, scores[0].Score)
}

func TestOnBiometricSavedMergesWithQuestionnaireDimensions(t *testing.T) {
	assessments := &fakeAssessmentStore{assessments: []model.UserAssessment{
		completedAssessment(t, userAlice, dimComm, 3, 4, 5),
		completedAssessment(t, userBob, dimComm, 3, 5, 5),
	}}
	biometrics := &fakeBiometricStore{measurements: map[string]model.BiometricMeasurement{
		userAlice: hrvMeasurement(t, userAlice, model.HRVValue{SDNN: 30, LFHFRatio: 1.0, HRVScore: 70}),
		userBob:   hrvMeasurement(t, userBob, model.HRVValue{SDNN: 60, LFHFRatio: 1.7, HRVScore: 72}),
	}}
	pairs := newFakePairwiseStore()
	uc := newTestUsecase(assessments, biometrics, pairs, nil)

	uc.OnDimensionCompleted(context.Background(), userAlice, dimComm)
	uc.OnBiometricSaved(context.Background(), userAlice)

	keyA, keyB := scoring.CanonicalPair(userAlice, userBob)
	record, err := pairs.FindByPair(keyA, keyB)
	require.NoError(t, err)
	require.NotNil(t, record)

	scores := decodeDimensionScores(t, record.DimensionScores)
	assert.Len(t, scores, 2)
	// round(mean(92, 96)) = 94
	assert.Equal(t, 94, record.OverallScore)
}

func TestComputePairwiseIfMissingReturnsStoredRecord(t *testing.T) {
	pairs := newFakePairwiseStore()
	keyA, keyB := scoring.CanonicalPair(userAlice, userBob)
	require.NoError(t, pairs.Upsert(&model.CompatibilityScore{
		UserIDA:      keyA,
		UserIDB:      keyB,
		OverallScore: 81,
	}))
	uc := newTestUsecase(&fakeAssessmentStore{}, nil, pairs, nil)

	record, err := uc.ComputePairwiseIfMissing(context.Background(), userBob, userAlice)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 81, record.OverallScore)
	assert.Equal(t, 1, pairs.upserts)
}

func TestComputePairwiseIfMissingComputesFromSharedData(t *testing.T) {
	assessments := &fakeAssessmentStore{assessments: []model.UserAssessment{
		completedAssessment(t, userAlice, dimComm, 3, 4, 5),
		completedAssessment(t, userBob, dimComm, 3, 5, 5),
	}}
	pairs := newFakePairwiseStore()
	uc := newTestUsecase(assessments, nil, pairs, nil)

	record, err := uc.ComputePairwiseIfMissing(context.Background(), userAlice, userBob)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 92, record.OverallScore)
}

func TestComputePairwiseIfMissingNoSharedData(t *testing.T) {
	assessments := &fakeAssessmentStore{assessments: []model.UserAssessment{
		completedAssessment(t, userAlice, dimComm, 3, 4, 5),
	}}
	pairs := newFakePairwiseStore()
	uc := newTestUsecase(assessments, nil, pairs, nil)

	record, err := uc.ComputePairwiseIfMissing(context.Background(), userAlice, userBob)
	require.NoError(t, err)
	assert.Nil(t, record)
	assert.Empty(t, pairs.pairs)
}

func TestGetWithUserNoData(t *testing.T) {
	uc := newTestUsecase(&fakeAssessmentStore{}, nil, newFakePairwiseStore(), nil)

	detail, err := uc.GetWithUser(context.Background(), userAlice, userBob)
	require.NoError(t, err)
	assert.Equal(t, 0, detail.OverallScore)
	assert.Equal(t, "No compatibility data available yet", detail.Message)
	assert.JSONEq(t, "[]", string(detail.DimensionScores))
}

func TestGetWithUserResolvesOtherUserName(t *testing.T) {
	assessments := &fakeAssessmentStore{assessments: []model.UserAssessment{
		completedAssessment(t, userAlice, dimComm, 3, 4, 5),
		completedAssessment(t, userBob, dimComm, 3, 5, 5),
	}}
	uc := newTestUsecase(assessments, nil, newFakePairwiseStore(), nil)

	detail, err := uc.GetWithUser(context.Background(), userAlice, userBob)
	require.NoError(t, err)
	assert.Equal(t, 92, detail.OverallScore)
	assert.Equal(t, "Bob", detail.OtherUserName)

	// Unknown profile falls back to a placeholder name.
	detail, err = uc.GetWithUser(context.Background(), userBob, userAlice)
	require.NoError(t, err)
	assert.Equal(t, "Unknown User", detail.OtherUserName)
}
