package handler

import (
	"github.com/fadilmartias/compatibility-matrix/internal/dto"
	"github.com/fadilmartias/compatibility-matrix/internal/middleware"
	"github.com/fadilmartias/compatibility-matrix/internal/model"
	"github.com/fadilmartias/compatibility-matrix/internal/usecase"
	"github.com/fadilmartias/compatibility-matrix/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AssessmentHandler struct {
	uc *usecase.AssessmentUsecase
}

func NewAssessmentHandler(uc *usecase.AssessmentUsecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

func (h *AssessmentHandler) RegisterRoutes(api fiber.Router) {
	assessments := api.Group("/assessments", middleware.RequireAuth())
	assessments.Get("/", h.List)
	assessments.Post("/", h.Start)
	assessments.Get("/dimensions", h.ListDimensions)
	assessments.Get("/questions/:dimensionId", h.ListQuestions)
	assessments.Post("/responses", h.SubmitResponses)
	assessments.Get("/:id", h.GetDetail)
	assessments.Put("/:id", h.Update)
}

func (h *AssessmentHandler) List(c *fiber.Ctx) error {
	assessments, err := h.uc.ListForUser(middleware.UserID(c))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to fetch assessments",
		}, err)
	}
	summaries := make([]dto.AssessmentSummaryDTO, 0, len(assessments))
	for _, a := range assessments {
		summaries = append(summaries, dto.NewAssessmentSummaryDTO(a))
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get assessments",
		Data:    fiber.Map{"assessments": summaries},
	})
}

func (h *AssessmentHandler) ListDimensions(c *fiber.Ctx) error {
	dimensions, err := h.uc.ListDimensions()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to fetch dimensions",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get dimensions",
		Data:    fiber.Map{"dimensions": dimensions},
	})
}

func (h *AssessmentHandler) ListQuestions(c *fiber.Ctx) error {
	questions, err := h.uc.ListQuestions(c.Params("dimensionId"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to fetch questions",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get questions",
		Data:    fiber.Map{"questions": questions},
	})
}

type startAssessmentRequest struct {
	DimensionID string `json:"dimension_id"`
}

func (h *AssessmentHandler) Start(c *fiber.Ctx) error {
	var req startAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if req.DimensionID == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "dimension_id is required",
		}, nil)
	}

	result, err := h.uc.Start(middleware.UserID(c), req.DimensionID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    statusFor(err),
			Message: "failed to start assessment",
		}, err)
	}

	message := "Assessment started successfully"
	if result.AlreadyExists {
		message = "Assessment already started"
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: message,
		Data: fiber.Map{
			"assessment_id":  result.Assessment.ID,
			"status":         result.Assessment.Status,
			"progress":       result.Assessment.Progress,
			"question_count": result.QuestionCount,
		},
	})
}

func (h *AssessmentHandler) GetDetail(c *fiber.Ctx) error {
	detail, err := h.uc.GetDetail(middleware.UserID(c), c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    statusFor(err),
			Message: "assessment not found",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get assessment",
		Data: fiber.Map{
			"assessment":          detail.Assessment,
			"dimension":           detail.Dimension,
			"questions":           detail.Questions,
			"total_questions":     detail.TotalQuestions,
			"completed_questions": detail.CompletedQuestions,
		},
	})
}

type submitResponsesRequest struct {
	AssessmentID string                     `json:"assessment_id"`
	Responses    []model.AssessmentResponse `json:"responses"`
}

func (h *AssessmentHandler) Update(c *fiber.Ctx) error {
	var req submitResponsesRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	return h.submit(c, c.Params("id"), req.Responses)
}

func (h *AssessmentHandler) SubmitResponses(c *fiber.Ctx) error {
	var req submitResponsesRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if req.AssessmentID == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "assessment_id and responses are required",
		}, nil)
	}
	return h.submit(c, req.AssessmentID, req.Responses)
}

func (h *AssessmentHandler) submit(c *fiber.Ctx, assessmentID string, responses []model.AssessmentResponse) error {
	assessment, err := h.uc.SubmitResponses(c.Context(), middleware.UserID(c), assessmentID, responses)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    statusFor(err),
			Message: "failed to submit responses",
		}, err)
	}

	message := "Assessment updated successfully"
	if assessment.Status == model.AssessmentStatusCompleted {
		message = "Assessment completed successfully. Compatibility scores will be updated."
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: message,
		Data: fiber.Map{
			"assessment": assessment,
			"progress":   assessment.Progress,
			"status":     assessment.Status,
		},
	})
}
