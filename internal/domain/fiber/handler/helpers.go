package handler

import (
	"errors"

	"github.com/fadilmartias/compatibility-matrix/internal/usecase"
	"github.com/gofiber/fiber/v2"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, usecase.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
