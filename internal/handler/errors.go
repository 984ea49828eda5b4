package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/maituanhoang070/ytcreatorapp/internal/apperr"
	"github.com/maituanhoang070/ytcreatorapp/internal/middleware"
)

// writeError maps a domain error to an API error response.
// Conflicts map to 400 rather than 409: duplicate registration is treated as
// invalid input by the API contract.
func writeError(c fiber.Ctx, err error) error {
	var e *apperr.Error
	if errors.As(err, &e) {
		status := fiber.StatusInternalServerError
		switch e.Kind {
		case apperr.KindValidation, apperr.KindConflict:
			status = fiber.StatusBadRequest
		case apperr.KindNotFound:
			status = fiber.StatusNotFound
		case apperr.KindAuth:
			status = fiber.StatusUnauthorized
		}
		return middleware.ErrorResponse(c, status, e.Kind.String(), e.Message)
	}
	return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
}
