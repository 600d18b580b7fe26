package handler

import (
	"github.com/fadilmartias/compatibility-matrix/internal/dto"
	"github.com/fadilmartias/compatibility-matrix/internal/middleware"
	"github.com/fadilmartias/compatibility-matrix/internal/response"
	"github.com/fadilmartias/compatibility-matrix/internal/usecase"
	"github.com/fadilmartias/compatibility-matrix/internal/util"
	"github.com/gofiber/fiber/v2"
)

type BiometricHandler struct {
	uc *usecase.BiometricUsecase
}

func NewBiometricHandler(uc *usecase.BiometricUsecase) *BiometricHandler {
	return &BiometricHandler{uc: uc}
}

func (h *BiometricHandler) RegisterRoutes(api fiber.Router) {
	biometrics := api.Group("/biometrics", middleware.RequireAuth())
	biometrics.Post("/hrv", h.SaveHRV)
	biometrics.Get("/hrv", h.RecentHRV)
	biometrics.Get("/compatibility/:userId", h.Compatibility)
}

func (h *BiometricHandler) SaveHRV(c *fiber.Ctx) error {
	var input usecase.HRVMeasurementInput
	if err := c.BodyParser(&input); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	measurement, err := h.uc.SaveHRV(c.Context(), middleware.UserID(c), input)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    statusFor(err),
			Message: "failed to save measurement",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "HRV measurement saved successfully",
		Data:    dto.NewHRVMeasurementDTO(*measurement),
	})
}

func (h *BiometricHandler) RecentHRV(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	measurements, total, err := h.uc.RecentMeasurements(middleware.UserID(c), page, limit)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to fetch measurements",
		}, err)
	}

	items := make([]dto.HRVMeasurementDTO, 0, len(measurements))
	for _, m := range measurements {
		items = append(items, dto.NewHRVMeasurementDTO(m))
	}

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	from := 0
	if len(items) > 0 {
		from = (page-1)*limit + 1
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get measurements",
		Data:    fiber.Map{"measurements": items},
		Pagination: &response.Pagination{
			Page:       page,
			PageSize:   limit,
			TotalPages: totalPages,
			TotalItems: total,
			HasMore:    int64(page) < totalPages,
			From:       from,
			To:         from + len(items) - 1,
		},
	})
}

func (h *BiometricHandler) Compatibility(c *fiber.Ctx) error {
	result, err := h.uc.GetCompatibility(middleware.UserID(c), c.Params("userId"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    statusFor(err),
			Message: "failed to get biometric compatibility",
		}, err)
	}

	if result.Record == nil {
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Code:    fiber.StatusOK,
			Message: result.Message,
			Data:    fiber.Map{"compatibility": nil},
		})
	}

	message := "Success get biometric compatibility"
	if result.Message != "" {
		message = result.Message
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: message,
		Data: fiber.Map{
			"compatibility": fiber.Map{
				"biometric_type":        result.Record.BiometricType,
				"compatibility_score":   result.Record.CompatibilityScore,
				"compatibility_details": result.Record.CompatibilityDetails,
				"stored":                result.Stored,
			},
		},
	})
}
