package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENVIRONMENT", "LOG_LEVEL", "CORS_ORIGINS", "PUBLIC_BASE_URL",
		"YOUTUBE_CLIENT_ID", "YOUTUBE_CLIENT_SECRET", "OPENAI_API_KEY",
		"DATABASE_URL", "REDIS_URL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want development", cfg.Environment)
	}
	if cfg.PublicBaseURL != "http://localhost:8080" {
		t.Errorf("PublicBaseURL = %q, want http://localhost:8080", cfg.PublicBaseURL)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("DatabaseURL = %q, want empty (in-memory mode)", cfg.DatabaseURL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("PUBLIC_BASE_URL", "https://creator.example.com")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/app")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.PublicBaseURL != "https://creator.example.com" {
		t.Errorf("PublicBaseURL = %q", cfg.PublicBaseURL)
	}
	if cfg.DatabaseURL != "postgres://u:p@db:5432/app" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
}

func TestValidate_ReportsAllMissingKeys(t *testing.T) {
	cfg := &Config{}

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("Validate = nil, want error")
	}
	for _, key := range []string{"YOUTUBE_CLIENT_ID", "YOUTUBE_CLIENT_SECRET", "OPENAI_API_KEY"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q missing %q", err.Error(), key)
		}
	}
}

func TestValidate_AllKeysPresent(t *testing.T) {
	cfg := &Config{
		OAuthClientID:     "id",
		OAuthClientSecret: "secret",
		AIAPIKey:          "key",
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate = %v, want nil", err)
	}
}
