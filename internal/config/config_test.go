package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.SessionTTL != 336*time.Hour {
		t.Fatalf("expected default session TTL 336h, got %s", cfg.SessionTTL)
	}
	if cfg.Currency != "USD" {
		t.Fatalf("expected default currency USD, got %s", cfg.Currency)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("SESSION_TTL", "24h")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("expected addr :9090, got %s", cfg.HTTPAddr)
	}
	if cfg.RedisAddr != "redis:6379" {
		t.Fatalf("expected redis addr redis:6379, got %s", cfg.RedisAddr)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("expected session TTL 24h, got %s", cfg.SessionTTL)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("expected shutdown timeout 5s, got %s", cfg.ShutdownTimeout)
	}
}

func TestFromEnv_BadCurrency(t *testing.T) {
	t.Setenv("CURRENCY", "DOLLARS")
	if _, err := FromEnv(); err == nil {
		t.Fatalf("expected error for bad currency")
	}
}

func TestFromEnv_BadTTL(t *testing.T) {
	t.Setenv("SESSION_TTL", "-1h")
	if _, err := FromEnv(); err == nil {
		t.Fatalf("expected error for negative session TTL")
	}
}
