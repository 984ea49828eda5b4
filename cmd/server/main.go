package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maituanhoang070/ytcreatorapp/internal/ai"
	"github.com/maituanhoang070/ytcreatorapp/internal/config"
	"github.com/maituanhoang070/ytcreatorapp/internal/db"
	"github.com/maituanhoang070/ytcreatorapp/internal/handler"
	"github.com/maituanhoang070/ytcreatorapp/internal/middleware"
	"github.com/maituanhoang070/ytcreatorapp/internal/router"
	"github.com/maituanhoang070/ytcreatorapp/internal/service"
	"github.com/maituanhoang070/ytcreatorapp/internal/store"
	"github.com/maituanhoang070/ytcreatorapp/internal/youtube"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "ytcreator-api")

	if err := cfg.Validate(); err != nil {
		if cfg.Environment == "production" {
			log.Fatalf("config: %v", err)
		}
		log.Printf("config: %v (continuing, integrations degrade to fallbacks)", err)
	}

	ctx := context.Background()

	var st store.Store
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		p, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer p.Close()

		pg, err := store.NewPostgresStore(ctx, p)
		if err != nil {
			log.Fatalf("failed to initialize schema: %v", err)
		}
		st = pg
		pool = p
	} else {
		log.Println("no DATABASE_URL configured, using in-memory store")
		st = store.NewMemStore()
	}

	handler.InitMetrics(pool)

	cache := service.NewCacheService(cfg.RedisURL, handler.Metrics.CacheHits, handler.Metrics.CacheMisses)
	defer cache.Close()

	aiClient := ai.NewClient(cfg.AIAPIKey)
	bridge := youtube.NewOAuthBridge(cfg.OAuthClientID, cfg.OAuthClientSecret, cfg.PublicBaseURL)

	userSvc := service.NewUserService(st, bridge)
	trendSvc := service.NewTrendService(st, aiClient, cache, handler.Metrics.AIFallbacks)
	videoSvc := service.NewVideoService(st, aiClient, bridge, handler.Metrics.AIFallbacks)

	app := fiber.New(fiber.Config{
		AppName:      "YT Creator API",
		ServerHeader: "ytcreator",
	})

	router.Setup(app, &router.Handlers{
		User:     handler.NewUserHandler(userSvc),
		Settings: handler.NewSettingsHandler(st),
		Trend:    handler.NewTrendHandler(trendSvc),
		Video:    handler.NewVideoHandler(videoSvc),
		YouTube:  handler.NewYouTubeHandler(userSvc, bridge.AuthURL),
		Health:   handler.NewHealthHandler(pool, cache.Client()),
	}, cfg.CORSOrigins)

	log.Printf("creator backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
