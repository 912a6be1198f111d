package handlers

import (
	"errors"

	"flowerstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// errorStatus maps service layer errors onto HTTP status codes. Anything
// unclassified is an internal error.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrInactiveUser):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}
