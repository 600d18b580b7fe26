package handler

import (
	"github.com/fadilmartias/compatibility-matrix/internal/middleware"
	"github.com/fadilmartias/compatibility-matrix/internal/usecase"
	"github.com/fadilmartias/compatibility-matrix/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ConnectionHandler struct {
	uc *usecase.ConnectionUsecase
}

func NewConnectionHandler(uc *usecase.ConnectionUsecase) *ConnectionHandler {
	return &ConnectionHandler{uc: uc}
}

func (h *ConnectionHandler) RegisterRoutes(api fiber.Router) {
	connections := api.Group("/connections", middleware.RequireAuth())
	connections.Get("/", h.List)
	connections.Get("/suggested", h.Suggested)
	connections.Post("/request", h.Request)
	connections.Post("/:id/respond", h.Respond)
	connections.Delete("/:id", h.Remove)
}

func (h *ConnectionHandler) List(c *fiber.Ctx) error {
	views, err := h.uc.List(middleware.UserID(c), c.Query("status"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to fetch connections",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get connections",
		Data:    fiber.Map{"connections": views},
	})
}

func (h *ConnectionHandler) Suggested(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	minScore := c.QueryInt("min_score", 0)

	suggestions, err := h.uc.Suggested(middleware.UserID(c), limit, minScore)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to fetch suggestions",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get suggested connections",
		Data:    fiber.Map{"suggestions": suggestions},
	})
}

type connectionRequestBody struct {
	UserID string `json:"user_id"`
}

func (h *ConnectionHandler) Request(c *fiber.Ctx) error {
	var req connectionRequestBody
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	connection, err := h.uc.Request(middleware.UserID(c), req.UserID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    statusFor(err),
			Message: "failed to send connection request",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Connection request sent",
		Data:    fiber.Map{"connection": connection},
	})
}

type connectionRespondBody struct {
	Action string `json:"action"`
}

func (h *ConnectionHandler) Respond(c *fiber.Ctx) error {
	var req connectionRespondBody
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	connection, err := h.uc.Respond(middleware.UserID(c), c.Params("id"), req.Action)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    statusFor(err),
			Message: "failed to respond to connection request",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Connection request " + connection.Status,
		Data:    fiber.Map{"connection": connection},
	})
}

func (h *ConnectionHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(middleware.UserID(c), c.Params("id")); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    statusFor(err),
			Message: "failed to remove connection",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Connection removed",
	})
}
