// Package quota bounds AI provider usage with two independent windows:
// a per-calendar-day counter and a trailing 60-second timestamp list.
//
// Check and Record are separate on purpose. Callers check before
// attempting a provider call and record exactly once per attempted
// call — never on cache hits, which do not consume quota.
package quota

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Window identifies which limit rejected a request.
type Window string

const (
	WindowDaily  Window = "daily"
	WindowMinute Window = "per-minute"
)

// LimitError reports a request rejected by one of the windows.
type LimitError struct {
	Window Window
	Limit  int
}

func (e *LimitError) Error() string {
	switch e.Window {
	case WindowMinute:
		return fmt.Sprintf("per-minute limit reached (%d requests/minute)", e.Limit)
	default:
		return fmt.Sprintf("daily limit reached (%d requests/day)", e.Limit)
	}
}

// Config holds the caps for both windows.
type Config struct {
	DailyCap     int
	PerMinuteCap int
}

// DefaultConfig returns the production caps.
func DefaultConfig() Config {
	return Config{DailyCap: 1500, PerMinuteCap: 25}
}

// Limiter is the guard consulted by the hint/question gate.
type Limiter interface {
	// Check returns a *LimitError when either window is exhausted,
	// nil otherwise. It does not consume quota.
	Check(ctx context.Context) error

	// Record consumes one unit of quota in both windows.
	Record(ctx context.Context) error
}

// retainDays is how many daily buckets are kept; older ones are pruned
// on insert.
const retainDays = 7

// MemoryLimiter tracks both windows in process memory. State resets on
// restart, which is acceptable for single-instance deployments; use
// RedisLimiter when instances must share quota.
type MemoryLimiter struct {
	mu     sync.Mutex
	cfg    Config
	daily  map[string]int
	minute []time.Time
	now    func() time.Time
}

// NewMemoryLimiter creates an in-memory limiter.
func NewMemoryLimiter(cfg Config) *MemoryLimiter {
	return &MemoryLimiter{
		cfg:   cfg,
		daily: make(map[string]int),
		now:   time.Now,
	}
}

func (l *MemoryLimiter) Check(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if l.daily[dayKey(now)] >= l.cfg.DailyCap {
		return &LimitError{Window: WindowDaily, Limit: l.cfg.DailyCap}
	}
	l.pruneMinute(now)
	if len(l.minute) >= l.cfg.PerMinuteCap {
		return &LimitError{Window: WindowMinute, Limit: l.cfg.PerMinuteCap}
	}
	return nil
}

func (l *MemoryLimiter) Record(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.daily[dayKey(now)]++
	l.pruneDaily()
	l.pruneMinute(now)
	l.minute = append(l.minute, now)
	return nil
}

// pruneMinute drops timestamps older than the trailing 60 seconds.
func (l *MemoryLimiter) pruneMinute(now time.Time) {
	cutoff := now.Add(-time.Minute)
	kept := l.minute[:0]
	for _, t := range l.minute {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	l.minute = kept
}

// pruneDaily keeps only the most recent retainDays buckets.
func (l *MemoryLimiter) pruneDaily() {
	if len(l.daily) <= retainDays {
		return
	}
	keys := make([]string, 0, len(l.daily))
	for k := range l.daily {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys[:len(keys)-retainDays] {
		delete(l.daily, k)
	}
}

// dayKey normalizes a timestamp to its UTC calendar date.
func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
