package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v3"

	"github.com/maituanhoang070/ytcreatorapp/internal/apperr"
	"github.com/maituanhoang070/ytcreatorapp/internal/middleware"
	"github.com/maituanhoang070/ytcreatorapp/internal/service"
)

// redirectCallbackUserID is the user the GET-based OAuth callback attaches
// credentials to. The redirect flow carries no user context, so the demo pins
// it to the first registered account.
const redirectCallbackUserID = 1

// YouTubeHandler serves the OAuth connect flow.
type YouTubeHandler struct {
	users   *service.UserService
	authURL func() string
}

func NewYouTubeHandler(users *service.UserService, authURL func() string) *YouTubeHandler {
	return &YouTubeHandler{users: users, authURL: authURL}
}

// AuthURL handles GET /api/youtube/auth-url
func (h *YouTubeHandler) AuthURL(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"authUrl": h.authURL()})
}

// AuthCallback handles POST /api/youtube/auth-callback
func (h *YouTubeHandler) AuthCallback(c fiber.Ctx) error {
	var req struct {
		Code   string `json:"code"`
		UserID int    `json:"userId"`
	}
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if req.Code == "" || req.UserID <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "Missing code or userId")
	}

	user, err := h.users.ConnectYouTube(c.Context(), req.UserID, req.Code)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"channelName": user.YouTubeChannelName,
	})
}

// RedirectCallback handles GET /youtube-callback, the provider-initiated
// redirect variant. Outcomes travel back to the app root as query parameters
// rather than a JSON body.
func (h *YouTubeHandler) RedirectCallback(c fiber.Ctx) error {
	code := fiber.Query[string](c, "code")
	if code == "" {
		return c.Redirect().To("/?error=missing_code")
	}

	if _, err := h.users.ConnectYouTube(c.Context(), redirectCallbackUserID, code); err != nil {
		return c.Redirect().To("/?error=" + url.QueryEscape(apperr.Message(err)))
	}

	return c.Redirect().To("/?youtube_connected=true")
}
