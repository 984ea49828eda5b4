package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	CORSOrigins string

	// PublicBaseURL is the externally reachable base URL of this server.
	// The OAuth redirect URI is derived from it.
	PublicBaseURL string

	OAuthClientID     string
	OAuthClientSecret string
	AIAPIKey          string

	// DatabaseURL is optional; when empty the server runs on the in-memory store.
	DatabaseURL string
	// RedisURL is optional; when empty caching is disabled.
	RedisURL string
}

func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "8080"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CORSOrigins:       getEnv("CORS_ORIGINS", "*"),
		PublicBaseURL:     getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		OAuthClientID:     os.Getenv("YOUTUBE_CLIENT_ID"),
		OAuthClientSecret: os.Getenv("YOUTUBE_CLIENT_SECRET"),
		AIAPIKey:          os.Getenv("OPENAI_API_KEY"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
	}
}

// Validate reports the credentials that outbound integrations need. Missing
// keys are tolerable in development (AI falls back to templates, OAuth
// returns errors on use) but not in production.
func (c *Config) Validate() error {
	var missing []string
	if c.OAuthClientID == "" {
		missing = append(missing, "YOUTUBE_CLIENT_ID")
	}
	if c.OAuthClientSecret == "" {
		missing = append(missing, "YOUTUBE_CLIENT_SECRET")
	}
	if c.AIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
