package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/maituanhoang070/ytcreatorapp/internal/middleware"
	"github.com/maituanhoang070/ytcreatorapp/internal/model"
	"github.com/maituanhoang070/ytcreatorapp/internal/store"
)

// SettingsHandler serves the channel setup form. Settings operations are
// plain store calls, so the handler takes the store directly.
type SettingsHandler struct {
	store store.Store
}

func NewSettingsHandler(st store.Store) *SettingsHandler {
	return &SettingsHandler{store: st}
}

// Create handles POST /api/channel-settings
func (h *SettingsHandler) Create(c fiber.Ctx) error {
	var req model.NewChannelSettings
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid channel settings data")
	}

	if req.UserID <= 0 || req.ChannelName == "" || req.ChannelCategory == "" || req.ChannelDescription == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS",
			"userId, channelName, channelCategory, and channelDescription are required")
	}
	if len(req.ContentTypes) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD",
			"contentTypes must be a non-empty list")
	}
	if req.TargetLanguage == "" {
		req.TargetLanguage = model.DefaultTargetLanguage
	}

	settings, err := h.store.CreateChannelSettings(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(settings)
}

// GetByUserID handles GET /api/channel-settings/:userId
func (h *SettingsHandler) GetByUserID(c fiber.Ctx) error {
	userID, errMsg := middleware.ParseID(c.Params("userId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	settings, err := h.store.GetChannelSettings(c.Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(settings)
}
