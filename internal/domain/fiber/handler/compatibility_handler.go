package handler

import (
	"github.com/fadilmartias/compatibility-matrix/internal/middleware"
	"github.com/fadilmartias/compatibility-matrix/internal/usecase"
	"github.com/fadilmartias/compatibility-matrix/internal/util"
	"github.com/gofiber/fiber/v2"
)

type CompatibilityHandler struct {
	uc *usecase.CompatibilityUsecase
}

func NewCompatibilityHandler(uc *usecase.CompatibilityUsecase) *CompatibilityHandler {
	return &CompatibilityHandler{uc: uc}
}

func (h *CompatibilityHandler) RegisterRoutes(api fiber.Router) {
	compatibility := api.Group("/compatibility", middleware.RequireAuth())
	compatibility.Get("/matrix", h.Matrix)
	compatibility.Get("/report/:userId", h.Report)
	compatibility.Get("/:userId", h.WithUser)
}

func (h *CompatibilityHandler) Matrix(c *fiber.Ctx) error {
	scores, err := h.uc.GetMatrix(middleware.UserID(c))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to fetch compatibility matrix",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get compatibility matrix",
		Data:    fiber.Map{"scores": scores},
	})
}

func (h *CompatibilityHandler) WithUser(c *fiber.Ctx) error {
	detail, err := h.uc.GetWithUser(c.Context(), middleware.UserID(c), c.Params("userId"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    statusFor(err),
			Message: "failed to fetch compatibility data",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get compatibility",
		Data:    detail,
	})
}

type analysisSection struct {
	Description string         `json:"description"`
	Data        map[string]any `json:"data"`
}

func (h *CompatibilityHandler) Report(c *fiber.Ctx) error {
	detail, err := h.uc.GetWithUser(c.Context(), middleware.UserID(c), c.Params("userId"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    statusFor(err),
			Message: "failed to generate compatibility report",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get compatibility report",
		Data: fiber.Map{
			"overall_score":    detail.OverallScore,
			"dimension_scores": detail.DimensionScores,
			"strengths":        detail.Strengths,
			"challenges":       detail.Challenges,
			"other_user_name":  detail.OtherUserName,
			"message":          detail.Message,
			"detailed_analysis": fiber.Map{
				"personality_comparison": analysisSection{
					Description: "Analysis of how your personalities interact",
					Data:        map[string]any{},
				},
				"values_alignment": analysisSection{
					Description: "Analysis of shared and differing values",
					Data:        map[string]any{},
				},
				"communication_dynamics": analysisSection{
					Description: "Analysis of communication style compatibility",
					Data:        map[string]any{},
				},
			},
		},
	})
}
