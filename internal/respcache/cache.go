// Package respcache stores previously generated AI content keyed by the
// request-distinguishing fields, so repeated requests skip the provider
// entirely (and never touch the rate limiter).
package respcache

import (
	"context"
	"sync"
	"time"
)

// Store is the cache abstraction consulted by the hint/question gate.
type Store interface {
	// Get returns the cached value and true on a fresh hit. Stale or
	// missing entries report false.
	Get(ctx context.Context, key string) (string, bool)

	// Put stores a value under the key.
	Put(ctx context.Context, key, value string)
}

type entry struct {
	value   string
	created time.Time
}

// Memory is an in-process TTL cache with a bounded size. When an insert
// would exceed the maximum, the single oldest entry is evicted first.
// A maxSize of 0 means unbounded (still TTL-pruned on lookup).
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	maxSize int
	now     func() time.Time
}

// NewMemory creates an in-memory cache with the given TTL and size cap.
func NewMemory(ttl time.Duration, maxSize int) *Memory {
	return &Memory{
		entries: make(map[string]entry),
		ttl:     ttl,
		maxSize: maxSize,
		now:     time.Now,
	}
}

func (c *Memory) Get(_ context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.now().Sub(e.created) > c.ttl {
		delete(c.entries, key)
		return "", false
	}
	return e.value, true
}

func (c *Memory) Put(_ context.Context, key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && c.maxSize > 0 && len(c.entries) >= c.maxSize {
		c.evictOldest()
	}
	c.entries[key] = entry{value: value, created: c.now()}
}

// Len reports the current number of entries, including any that have
// expired but not yet been pruned by a lookup.
func (c *Memory) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Memory) evictOldest() {
	var oldestKey string
	var oldest time.Time
	first := true
	for k, e := range c.entries {
		if first || e.created.Before(oldest) {
			oldestKey, oldest = k, e.created
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}
