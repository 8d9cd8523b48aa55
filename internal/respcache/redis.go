package respcache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis backs the cache with a shared Redis instance for multi-instance
// deployments. TTL is enforced by Redis itself; size bounding is left
// to Redis eviction policy. Transport errors degrade to cache misses so
// a Redis outage never blocks the tutoring flow.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

// NewRedis creates a Redis-backed cache.
func NewRedis(client *redis.Client, ttl time.Duration, log *logrus.Logger) *Redis {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Redis{client: client, ttl: ttl, log: log}
}

func (c *Redis) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		c.log.WithError(err).WithField("key", key).Warn("cache read failed, treating as miss")
		return "", false
	}
	return val, true
}

func (c *Redis) Put(ctx context.Context, key, value string) {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("cache write failed")
	}
}
