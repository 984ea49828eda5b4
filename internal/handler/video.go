package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/maituanhoang070/ytcreatorapp/internal/middleware"
	"github.com/maituanhoang070/ytcreatorapp/internal/model"
	"github.com/maituanhoang070/ytcreatorapp/internal/service"
)

type VideoHandler struct {
	svc *service.VideoService
}

func NewVideoHandler(svc *service.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// Generate handles POST /api/videos/generate
func (h *VideoHandler) Generate(c fiber.Ctx) error {
	var req model.GenerateVideoRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if req.UserID <= 0 || req.TopicID == "" || req.Category == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "Missing required parameters")
	}

	category, errMsg := middleware.ValidateCategory(req.Category)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	video, err := h.svc.Generate(c.Context(), req.UserID, req.TopicID, category)
	if err != nil {
		return writeError(c, err)
	}

	Metrics.VideosGenerated.WithLabelValues(category).Inc()

	return c.Status(fiber.StatusCreated).JSON(model.VideoJobResponse{
		ID:      video.ID,
		Title:   video.Title,
		Status:  video.Status,
		Message: "Video generation started",
	})
}

// ListByUser handles GET /api/videos/:userId
func (h *VideoHandler) ListByUser(c fiber.Ctx) error {
	userID, errMsg := middleware.ParseID(c.Params("userId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	videos, err := h.svc.List(c.Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(videos)
}

// Publish handles POST /api/videos/:id/publish
func (h *VideoHandler) Publish(c fiber.Ctx) error {
	id, errMsg := middleware.ParseID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	video, err := h.svc.Publish(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(video)
}
