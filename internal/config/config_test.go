package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Quota.DailyCap != 1500 || cfg.Quota.PerMinuteCap != 25 {
		t.Errorf("quota defaults: %+v", cfg.Quota)
	}
	if cfg.Cache.HintTTL != 24*time.Hour {
		t.Errorf("expected 24h hint TTL, got %s", cfg.Cache.HintTTL)
	}
	if cfg.Cache.QuestionTTL != time.Hour {
		t.Errorf("expected 1h question TTL, got %s", cfg.Cache.QuestionTTL)
	}
	if cfg.Cache.HintMaxSize != 500 {
		t.Errorf("expected hint cache max 500, got %d", cfg.Cache.HintMaxSize)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info log level, got %q", cfg.LogLevel)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("redis should default to unset, got %q", cfg.Redis.Addr)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("POLEGION_QUOTA_DAILY_CAP", "10")
	t.Setenv("POLEGION_QUOTA_PER_MINUTE_CAP", "2")
	t.Setenv("POLEGION_LOG_LEVEL", "debug")
	t.Setenv("POLEGION_REDIS_ADDR", "localhost:6379")
	t.Setenv("POLEGION_CACHE_HINT_TTL", "10m")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Quota.DailyCap != 10 || cfg.Quota.PerMinuteCap != 2 {
		t.Errorf("quota overrides not applied: %+v", cfg.Quota)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug, got %q", cfg.LogLevel)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("redis addr not applied: %q", cfg.Redis.Addr)
	}
	if cfg.Cache.HintTTL != 10*time.Minute {
		t.Errorf("hint TTL not applied: %s", cfg.Cache.HintTTL)
	}
}

func TestLoad_ProviderListOverride(t *testing.T) {
	t.Setenv("POLEGION_AI_PROVIDERS", "gemini,groq")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.AI.Providers) != 2 || cfg.AI.Providers[0] != "gemini" {
		t.Fatalf("provider override not applied: %v", cfg.AI.Providers)
	}
}

func TestLoad_RejectsUnknownProvider(t *testing.T) {
	t.Setenv("POLEGION_AI_PROVIDERS", "skynet")

	if _, err := Load(""); err == nil {
		t.Fatal("unknown provider name should fail loading")
	}
}

func TestLoad_MissingConfigFileFails(t *testing.T) {
	if _, err := Load("/nonexistent/polegion.yaml"); err == nil {
		t.Fatal("explicit config path that does not exist should fail")
	}
}

func TestNewLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := NewLogger(&Config{LogLevel: "extremely-loud"})
	if log.GetLevel().String() != "info" {
		t.Fatalf("expected info fallback, got %s", log.GetLevel())
	}
}
