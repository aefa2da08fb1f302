package config

import (
	"testing"
	"time"
)

func TestLoadAppliesDefaults(t *testing.T) {
	setCoreEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Environment != "development" {
		t.Fatalf("Environment = %q, want %q", cfg.Environment, "development")
	}
	if cfg.BrokerBaseURL != defaultBrokerBaseURL {
		t.Fatalf("BrokerBaseURL = %q, want default", cfg.BrokerBaseURL)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("SessionTTL = %v, want 30m", cfg.SessionTTL)
	}
	if cfg.ClockOffsetHours != 0 {
		t.Fatalf("ClockOffsetHours = %d, want 0 outside production", cfg.ClockOffsetHours)
	}
}

func TestLoadProductionEnablesClockOffset(t *testing.T) {
	setCoreEnv(t)
	t.Setenv("ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.IsProduction() {
		t.Fatal("IsProduction() = false, want true")
	}
	if cfg.ClockOffsetHours != 2 {
		t.Fatalf("ClockOffsetHours = %d, want 2", cfg.ClockOffsetHours)
	}
}

func TestLoadRequiresToken(t *testing.T) {
	setCoreEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() = nil error, want missing token error")
	}
}

func TestLoadRejectsBadSessionTTL(t *testing.T) {
	setCoreEnv(t)
	t.Setenv("SESSION_TTL_MINUTES", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("Load() = nil error, want invalid TTL error")
	}
}

func TestLoadParsesSessionTTL(t *testing.T) {
	setCoreEnv(t)
	t.Setenv("SESSION_TTL_MINUTES", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SessionTTL != 5*time.Minute {
		t.Fatalf("SessionTTL = %v, want 5m", cfg.SessionTTL)
	}
}

func setCoreEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_TOKEN", "123:test-token")
	t.Setenv("DB_DSN", "postgres://localhost/campus_bot_test")
	t.Setenv("ENV", "")
	t.Setenv("CAMPUS_BROKER_URL", "")
	t.Setenv("NEWS_FEED_URL", "")
	t.Setenv("SESSION_TTL_MINUTES", "")
}
