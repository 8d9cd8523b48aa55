// Package config assembles the engine's configuration surface:
// environment-first with an optional YAML file for local development.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/PTMAbellana/Polegion-sub002/internal/llm"
	"github.com/PTMAbellana/Polegion-sub002/internal/quota"
)

// Config holds everything the engine needs to start.
type Config struct {
	LogLevel string

	Database DatabaseConfig
	Redis    RedisConfig
	AI       llm.Config
	Quota    quota.Config
	Cache    CacheConfig
}

// DatabaseConfig points at the SQLite store.
type DatabaseConfig struct {
	DSN string
}

// RedisConfig is optional; when Addr is empty the limiter and caches
// stay in-process.
type RedisConfig struct {
	Addr string
}

// CacheConfig tunes the response caches. Hints live much longer than
// generated questions because hint phrasing stays useful across
// sessions.
type CacheConfig struct {
	HintTTL     time.Duration
	QuestionTTL time.Duration
	HintMaxSize int
}

// Load reads configuration from the environment (POLEGION_* variables)
// and, when path is non-empty, a YAML file. Environment wins over file
// values. Missing provider credentials are not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("POLEGION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		LogLevel: v.GetString("log.level"),
		Database: DatabaseConfig{
			DSN: v.GetString("database.dsn"),
		},
		Redis: RedisConfig{
			Addr: v.GetString("redis.addr"),
		},
		AI: llm.ConfigFromEnv(),
		Quota: quota.Config{
			DailyCap:     v.GetInt("quota.daily_cap"),
			PerMinuteCap: v.GetInt("quota.per_minute_cap"),
		},
		Cache: CacheConfig{
			HintTTL:     v.GetDuration("cache.hint_ttl"),
			QuestionTTL: v.GetDuration("cache.question_ttl"),
			HintMaxSize: v.GetInt("cache.hint_max_size"),
		},
	}

	if providers := v.GetString("ai.providers"); providers != "" {
		cfg.AI.Providers = splitList(providers)
	}

	if err := cfg.AI.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("database.dsn", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("quota.daily_cap", 1500)
	v.SetDefault("quota.per_minute_cap", 25)
	v.SetDefault("cache.hint_ttl", 24*time.Hour)
	v.SetDefault("cache.question_ttl", time.Hour)
	v.SetDefault("cache.hint_max_size", 500)
}

// NewLogger builds the process logger from the configured level.
func NewLogger(cfg *Config) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return log
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
