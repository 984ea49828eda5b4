package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/maituanhoang070/ytcreatorapp/internal/middleware"
	"github.com/maituanhoang070/ytcreatorapp/internal/service"
)

type TrendHandler struct {
	svc *service.TrendService
}

func NewTrendHandler(svc *service.TrendService) *TrendHandler {
	return &TrendHandler{svc: svc}
}

// GetByCategory handles GET /api/trends/:category
func (h *TrendHandler) GetByCategory(c fiber.Ctx) error {
	category, errMsg := middleware.ValidateCategory(c.Params("category"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	trends, err := h.svc.GetOrCreate(c.Context(), category)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(trends)
}
