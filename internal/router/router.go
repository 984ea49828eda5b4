package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/maituanhoang070/ytcreatorapp/internal/handler"
	"github.com/maituanhoang070/ytcreatorapp/internal/middleware"
	"github.com/maituanhoang070/ytcreatorapp/internal/youtube"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	User     *handler.UserHandler
	Settings *handler.SettingsHandler
	Trend    *handler.TrendHandler
	Video    *handler.VideoHandler
	YouTube  *handler.YouTubeHandler
	Health   *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Health and metrics (before API group)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	// Provider-initiated OAuth redirect lands outside the API group
	app.Get(youtube.CallbackPath, h.YouTube.RedirectCallback)

	authLimit := middleware.NewAuthRateLimiter().Handler()
	trendLimit := middleware.NewTrendRateLimiter().Handler()
	generateLimit := middleware.NewGenerateRateLimiter().Handler()

	// API routes
	api := app.Group("/api")

	// User routes
	api.Post("/users", h.User.Register, authLimit)
	api.Post("/login", h.User.Login, authLimit)

	// Channel settings routes
	api.Post("/channel-settings", h.Settings.Create)
	api.Get("/channel-settings/:userId", h.Settings.GetByUserID)

	// Trend routes
	api.Get("/trends/:category", h.Trend.GetByCategory, trendLimit)

	// Video routes
	api.Post("/videos/generate", h.Video.Generate, generateLimit)
	api.Get("/videos/:userId", h.Video.ListByUser)
	api.Post("/videos/:id/publish", h.Video.Publish)

	// YouTube OAuth routes
	api.Get("/youtube/auth-url", h.YouTube.AuthURL)
	api.Post("/youtube/auth-callback", h.YouTube.AuthCallback)
}
