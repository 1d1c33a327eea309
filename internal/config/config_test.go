package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_URL", "JWT_SECRET", "TOKEN_TTL", "RESET_TOKEN_TTL",
		"SERVER_PORT", "REDIS_URL", "S3_BUCKET",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("default token ttl: %v", cfg.TokenTTL)
	}
	if cfg.ResetTokenTTL != time.Hour {
		t.Fatalf("default reset token ttl: %v", cfg.ResetTokenTTL)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("default addr: %s", cfg.Addr())
	}
	if cfg.RedisURL != "" || cfg.S3Bucket != "" {
		t.Fatalf("optional integrations must default to disabled")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("RESET_TOKEN_TTL", "15m")
	t.Setenv("JWT_SECRET", "sekrit")

	cfg := Load()

	if cfg.Addr() != ":9090" {
		t.Fatalf("addr override: %s", cfg.Addr())
	}
	if cfg.TokenTTL != 30*time.Minute || cfg.ResetTokenTTL != 15*time.Minute {
		t.Fatalf("ttl overrides: %v %v", cfg.TokenTTL, cfg.ResetTokenTTL)
	}
	if cfg.JWTSecret != "sekrit" {
		t.Fatalf("secret override: %s", cfg.JWTSecret)
	}
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")

	cfg := Load()
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("bad duration must fall back to default, got %v", cfg.TokenTTL)
	}
}
