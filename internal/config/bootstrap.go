package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/PTMAbellana/Polegion-sub002/internal/adaptive"
	"github.com/PTMAbellana/Polegion-sub002/internal/llm"
	"github.com/PTMAbellana/Polegion-sub002/internal/quota"
	"github.com/PTMAbellana/Polegion-sub002/internal/respcache"
	"github.com/PTMAbellana/Polegion-sub002/internal/store"
	"github.com/PTMAbellana/Polegion-sub002/internal/tutor"
)

// App is the fully wired engine: store, adaptive engine, and the
// hint/question gate, sharing one logger and one configuration.
type App struct {
	Config *Config
	Log    *logrus.Logger
	Store  *store.Store
	Engine *adaptive.Engine
	Gate   *tutor.Gate

	redis *redis.Client
}

// Bootstrap opens the store, builds the limiter and caches (Redis when
// an address is configured, in-process otherwise), resolves the AI
// provider chain, and wires the engine and gate together.
//
// Missing AI credentials downgrade to rule-based operation with a
// warning; they never fail startup.
func Bootstrap(ctx context.Context, cfg *Config) (*App, error) {
	log := NewLogger(cfg)

	dsn := cfg.Database.DSN
	if dsn == "" {
		path, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		dsn = path
	}
	st, err := store.Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	app := &App{Config: cfg, Log: log, Store: st}

	var (
		limiter   quota.Limiter
		hints     respcache.Store
		questions respcache.Store
	)
	if cfg.Redis.Addr != "" {
		app.redis = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := app.redis.Ping(ctx).Err(); err != nil {
			st.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		limiter = quota.NewRedisLimiter(app.redis, cfg.Quota, "polegion")
		hints = respcache.NewRedis(app.redis, cfg.Cache.HintTTL, log)
		questions = respcache.NewRedis(app.redis, cfg.Cache.QuestionTTL, log)
	} else {
		limiter = quota.NewMemoryLimiter(cfg.Quota)
		hints = respcache.NewMemory(cfg.Cache.HintTTL, cfg.Cache.HintMaxSize)
		questions = respcache.NewMemory(cfg.Cache.QuestionTTL, 0)
	}

	provider, err := llm.NewProvider(ctx, cfg.AI, st, log)
	if err != nil {
		var noCreds *llm.ErrNoCredentials
		if !errors.As(err, &noCreds) {
			st.Close()
			return nil, fmt.Errorf("build AI provider: %w", err)
		}
		log.Warn("no AI provider credentials configured, running rule-based only")
		provider = nil
	}

	app.Engine = adaptive.NewEngine(st, st, log)
	app.Gate = tutor.NewGate(provider, limiter, hints, questions, log)
	return app, nil
}

// Close releases the store and the Redis connection if one was opened.
func (a *App) Close() error {
	var firstErr error
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			firstErr = err
		}
	}
	if a.Store != nil {
		if err := a.Store.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
