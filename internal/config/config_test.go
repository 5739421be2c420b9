package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "ENV", "DATABASE_DSN", "JWT_SECRET", "JWT_EXPIRY", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != "8080" || cfg.Env != "development" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.JWTExpiry != 24*time.Hour || cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Errorf("unexpected limits: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_EXPIRY", "90m")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("RATE_LIMIT_BURST", "nope")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.JWTExpiry != 90*time.Minute {
		t.Errorf("JWTExpiry = %v, want 90m", cfg.JWTExpiry)
	}
	if cfg.RateLimitRPS != 0.5 {
		t.Errorf("RateLimitRPS = %v, want 0.5", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != 10 {
		t.Errorf("RateLimitBurst = %d, want fallback 10", cfg.RateLimitBurst)
	}
}

func TestLoadProductionRequiresSecret(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); !errors.Is(err, ErrInsecureSecret) {
		t.Fatalf("Load() error = %v, want ErrInsecureSecret", err)
	}

	t.Setenv("JWT_SECRET", "a-real-secret")
	if _, err := Load(); err != nil {
		t.Fatalf("Load() with secret error: %v", err)
	}
}
