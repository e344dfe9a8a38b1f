package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Env != "development" {
		t.Errorf("expected development env, got %s", cfg.Env)
	}
	if cfg.OpsPort != "8080" {
		t.Errorf("expected default ops port 8080, got %s", cfg.OpsPort)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected default session TTL 30m, got %s", cfg.SessionTTL)
	}
	if cfg.CarsPageSize != 5 {
		t.Errorf("expected default page size 5, got %d", cfg.CarsPageSize)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_GROUP_ID", "-1001234567890")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("REDIS_TLS", "true")

	cfg := Load()

	if cfg.BotToken != "123:abc" {
		t.Errorf("expected bot token override, got %s", cfg.BotToken)
	}
	if cfg.AdminGroupID != -1001234567890 {
		t.Errorf("expected admin group id override, got %d", cfg.AdminGroupID)
	}
	if cfg.SessionTTL != 5*time.Minute {
		t.Errorf("expected session TTL 5m, got %s", cfg.SessionTTL)
	}
	if !cfg.RedisTLS {
		t.Error("expected redis TLS enabled")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing bot token")
	}

	cfg.BotToken = "123:abc"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing database URL")
	}

	cfg.DatabaseURL = "postgres://localhost/car_rental"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
