package handler

import (
	"github.com/fadilmartias/compatibility-matrix/internal/middleware"
	"github.com/fadilmartias/compatibility-matrix/internal/usecase"
	"github.com/fadilmartias/compatibility-matrix/internal/util"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(api fiber.Router) {
	users := api.Group("/users", middleware.RequireAuth())
	users.Get("/me", h.Me)
	users.Put("/me", h.UpdateMe)
	users.Get("/:id", h.GetByID)
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	profile, err := h.uc.GetProfile(middleware.UserID(c))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    statusFor(err),
			Message: "failed to fetch profile",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get profile",
		Data:    profile,
	})
}

func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	var input usecase.ProfileUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	profile, err := h.uc.UpdateProfile(middleware.UserID(c), input)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    statusFor(err),
			Message: "failed to update profile",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success update profile",
		Data:    profile,
	})
}

func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	profile, err := h.uc.GetProfile(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    statusFor(err),
			Message: "user not found",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get user",
		Data:    profile,
	})
}
