package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisLimiter shares both quota windows across process instances via
// Redis. The daily window is an INCR-ed counter keyed by UTC date with
// a 7-day expiry; the per-minute window is a sorted set of request
// timestamps trimmed on every check.
type RedisLimiter struct {
	client *redis.Client
	cfg    Config
	prefix string
	now    func() time.Time
}

// NewRedisLimiter creates a Redis-backed limiter. The prefix namespaces
// keys so hint and question quotas can be tracked independently.
func NewRedisLimiter(client *redis.Client, cfg Config, prefix string) *RedisLimiter {
	if prefix == "" {
		prefix = "quota"
	}
	return &RedisLimiter{client: client, cfg: cfg, prefix: prefix, now: time.Now}
}

func (l *RedisLimiter) Check(ctx context.Context) error {
	now := l.now()

	n, err := l.client.Get(ctx, l.dailyKey(now)).Int()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("read daily counter: %w", err)
	}
	if n >= l.cfg.DailyCap {
		return &LimitError{Window: WindowDaily, Limit: l.cfg.DailyCap}
	}

	minuteKey := l.minuteKey()
	cutoff := now.Add(-time.Minute)
	if err := l.client.ZRemRangeByScore(ctx, minuteKey, "0", formatScore(cutoff)).Err(); err != nil {
		return fmt.Errorf("trim minute window: %w", err)
	}
	count, err := l.client.ZCard(ctx, minuteKey).Result()
	if err != nil {
		return fmt.Errorf("count minute window: %w", err)
	}
	if int(count) >= l.cfg.PerMinuteCap {
		return &LimitError{Window: WindowMinute, Limit: l.cfg.PerMinuteCap}
	}
	return nil
}

func (l *RedisLimiter) Record(ctx context.Context) error {
	now := l.now()

	pipe := l.client.TxPipeline()
	dk := l.dailyKey(now)
	pipe.Incr(ctx, dk)
	pipe.Expire(ctx, dk, retainDays*24*time.Hour)
	pipe.ZAdd(ctx, l.minuteKey(), redis.Z{
		Score:  float64(now.UnixNano()),
		Member: uuid.NewString(),
	})
	pipe.Expire(ctx, l.minuteKey(), 2*time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record quota: %w", err)
	}
	return nil
}

func (l *RedisLimiter) dailyKey(t time.Time) string {
	return fmt.Sprintf("%s:daily:%s", l.prefix, dayKey(t))
}

func (l *RedisLimiter) minuteKey() string {
	return fmt.Sprintf("%s:minute", l.prefix)
}

func formatScore(t time.Time) string {
	return fmt.Sprintf("%d", t.UnixNano())
}
