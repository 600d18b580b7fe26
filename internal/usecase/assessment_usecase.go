package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fadilmartias/compatibility-matrix/internal/logger"
	"github.com/fadilmartias/compatibility-matrix/internal/model"
	"github.com/fadilmartias/compatibility-matrix/internal/repository"
	"gorm.io/datatypes"
)

type AssessmentUsecase struct {
	assessmentRepo *repository.AssessmentRepository
	dimensionRepo  *repository.DimensionRepository
	compat         *CompatibilityUsecase
	log            *logger.Logger
}

func NewAssessmentUsecase(assessmentRepo *repository.AssessmentRepository, dimensionRepo *repository.DimensionRepository, compat *CompatibilityUsecase, log *logger.Logger) *AssessmentUsecase {
	return &AssessmentUsecase{assessmentRepo: assessmentRepo, dimensionRepo: dimensionRepo, compat: compat, log: log}
}

func (uc *AssessmentUsecase) ListForUser(userID string) ([]model.UserAssessment, error) {
	return uc.assessmentRepo.FindByUser(userID)
}

func (uc *AssessmentUsecase) ListDimensions() ([]model.AssessmentDimension, error) {
	return uc.dimensionRepo.ListDimensions()
}

func (uc *AssessmentUsecase) ListQuestions(dimensionID string) ([]model.AssessmentQuestion, error) {
	return uc.dimensionRepo.FindQuestions(dimensionID)
}

type StartAssessmentResult struct {
	Assessment    *model.UserAssessment
	QuestionCount int
	AlreadyExists bool
}

// Start creates the user's assessment for a dimension, or returns the
// existing one. One row per (user, dimension); an assessment never
// re-opens after completion.
func (uc *AssessmentUsecase) Start(userID, dimensionID string) (*StartAssessmentResult, error) {
	existing, err := uc.assessmentRepo.FindByUserAndDimension(userID, dimensionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &StartAssessmentResult{Assessment: existing, AlreadyExists: true}, nil
	}

	questionCount, err := uc.dimensionRepo.CountQuestions(dimensionID)
	if err != nil {
		return nil, err
	}
	if questionCount == 0 {
		return nil, fmt.Errorf("%w: no questions found for this dimension", ErrNotFound)
	}

	dimension, err := uc.dimensionRepo.FindDimension(dimensionID)
	if err != nil {
		return nil, err
	}
	if dimension == nil {
		return nil, fmt.Errorf("%w: dimension does not exist", ErrNotFound)
	}

	now := time.Now()
	assessment := &model.UserAssessment{
		UserID:      userID,
		DimensionID: dimension.ID,
		Status:      model.AssessmentStatusInProgress,
		Progress:    0,
		Responses:   datatypes.JSON([]byte("[]")),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.assessmentRepo.Create(assessment); err != nil {
		return nil, err
	}
	return &StartAssessmentResult{Assessment: assessment, QuestionCount: questionCount}, nil
}

type AssessmentDetail struct {
	Assessment         *model.UserAssessment
	Dimension          *model.AssessmentDimension
	Questions          []model.AssessmentQuestion
	TotalQuestions     int
	CompletedQuestions int
}

func (uc *AssessmentUsecase) GetDetail(userID, assessmentID string) (*AssessmentDetail, error) {
	assessment, err := uc.assessmentRepo.FindByID(assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment == nil || assessment.UserID != userID {
		return nil, fmt.Errorf("%w: assessment", ErrNotFound)
	}

	dimension, err := uc.dimensionRepo.FindDimension(assessment.DimensionID.String())
	if err != nil {
		return nil, err
	}
	questions, err := uc.dimensionRepo.FindQuestions(assessment.DimensionID.String())
	if err != nil {
		return nil, err
	}

	return &AssessmentDetail{
		Assessment:         assessment,
		Dimension:          dimension,
		Questions:          questions,
		TotalQuestions:     len(questions),
		CompletedQuestions: countResponses(assessment.Responses),
	}, nil
}

// SubmitResponses appends new answers, advances progress and flips the
// assessment to completed once every question is answered. Completion
// fires the pairwise recompute in the background; its outcome never gates
// this write.
func (uc *AssessmentUsecase) SubmitResponses(ctx context.Context, userID, assessmentID string, responses []model.AssessmentResponse) (*model.UserAssessment, error) {
	if len(responses) == 0 {
		return nil, fmt.Errorf("%w: responses are required", ErrValidation)
	}

	assessment, err := uc.assessmentRepo.FindByID(assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment == nil || assessment.UserID != userID {
		return nil, fmt.Errorf("%w: assessment", ErrNotFound)
	}
	if assessment.Status == model.AssessmentStatusCompleted {
		return nil, fmt.Errorf("%w: assessment is already completed", ErrValidation)
	}

	var existing []model.AssessmentResponse
	if len(assessment.Responses) > 0 {
		if err := json.Unmarshal(assessment.Responses, &existing); err != nil {
			return nil, fmt.Errorf("decode responses: %w", err)
		}
	}
	now := time.Now()
	for i := range responses {
		if responses[i].Timestamp.IsZero() {
			responses[i].Timestamp = now
		}
	}
	all := append(existing, responses...)

	totalQuestions, err := uc.dimensionRepo.CountQuestions(assessment.DimensionID.String())
	if err != nil {
		return nil, err
	}

	progress := 0
	if totalQuestions > 0 {
		progress = len(all) * 100 / totalQuestions
	}
	status := model.AssessmentStatusInProgress
	if progress >= 100 {
		progress = 100
		status = model.AssessmentStatusCompleted
	}

	encoded, err := json.Marshal(all)
	if err != nil {
		return nil, fmt.Errorf("encode responses: %w", err)
	}
	assessment.Responses = encoded
	assessment.Progress = progress
	assessment.Status = status
	assessment.UpdatedAt = now

	if err := uc.assessmentRepo.Update(assessment); err != nil {
		return nil, err
	}

	if status == model.AssessmentStatusCompleted {
		uc.log.Info("assessment completed, scheduling compatibility update",
			"user_id", userID, "dimension_id", assessment.DimensionID.String())
		go uc.compat.OnDimensionCompleted(context.WithoutCancel(ctx), userID, assessment.DimensionID.String())
	}
	return assessment, nil
}

func countResponses(raw []byte) int {
	var responses []model.AssessmentResponse
	if len(raw) == 0 || json.Unmarshal(raw, &responses) != nil {
		return 0
	}
	return len(responses)
}
