package quota

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func fixedClock(start time.Time) (*time.Time, func() time.Time) {
	t := start
	return &t, func() time.Time { return t }
}

func newTestLimiter(cfg Config) (*MemoryLimiter, *time.Time) {
	l := NewMemoryLimiter(cfg)
	now, clock := fixedClock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	l.now = clock
	return l, now
}

func TestMemoryLimiter_PerMinuteCap(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLimiter(Config{DailyCap: 1500, PerMinuteCap: 25})

	for i := 0; i < 25; i++ {
		if err := l.Check(ctx); err != nil {
			t.Fatalf("request %d: unexpected rejection: %v", i+1, err)
		}
		if err := l.Record(ctx); err != nil {
			t.Fatalf("request %d: record: %v", i+1, err)
		}
	}

	err := l.Check(ctx)
	if err == nil {
		t.Fatal("26th request within a minute should be rejected")
	}
	var le *LimitError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LimitError, got %T", err)
	}
	if le.Window != WindowMinute {
		t.Fatalf("expected per-minute window, got %q", le.Window)
	}
	if !strings.Contains(err.Error(), "per-minute limit") {
		t.Errorf("error message should name the per-minute window: %q", err.Error())
	}
}

func TestMemoryLimiter_MinuteWindowSlides(t *testing.T) {
	ctx := context.Background()
	l, now := newTestLimiter(Config{DailyCap: 1500, PerMinuteCap: 5})

	for i := 0; i < 5; i++ {
		_ = l.Record(ctx)
	}
	if err := l.Check(ctx); err == nil {
		t.Fatal("expected rejection at the per-minute cap")
	}

	*now = now.Add(61 * time.Second)
	if err := l.Check(ctx); err != nil {
		t.Fatalf("window should have slid past old timestamps: %v", err)
	}
}

func TestMemoryLimiter_DailyCap(t *testing.T) {
	ctx := context.Background()
	l, now := newTestLimiter(Config{DailyCap: 3, PerMinuteCap: 100})

	for i := 0; i < 3; i++ {
		_ = l.Record(ctx)
		// Spread across minutes so only the daily window binds.
		*now = now.Add(2 * time.Minute)
	}

	err := l.Check(ctx)
	if err == nil {
		t.Fatal("4th request of the day should be rejected")
	}
	var le *LimitError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LimitError, got %T", err)
	}
	if le.Window != WindowDaily {
		t.Fatalf("expected daily window, got %q", le.Window)
	}
	if !strings.Contains(err.Error(), "daily limit") {
		t.Errorf("error message should name the daily window: %q", err.Error())
	}
}

func TestMemoryLimiter_DailyCounterResetsAtMidnightUTC(t *testing.T) {
	ctx := context.Background()
	l, now := newTestLimiter(Config{DailyCap: 2, PerMinuteCap: 100})

	_ = l.Record(ctx)
	_ = l.Record(ctx)
	if err := l.Check(ctx); err == nil {
		t.Fatal("expected rejection at the daily cap")
	}

	*now = now.AddDate(0, 0, 1)
	if err := l.Check(ctx); err != nil {
		t.Fatalf("next calendar day should start fresh: %v", err)
	}
}

func TestMemoryLimiter_CheckDoesNotConsume(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLimiter(Config{DailyCap: 1500, PerMinuteCap: 1})

	for i := 0; i < 10; i++ {
		if err := l.Check(ctx); err != nil {
			t.Fatalf("check %d consumed quota: %v", i+1, err)
		}
	}
	if err := l.Record(ctx); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := l.Check(ctx); err == nil {
		t.Fatal("expected rejection after the single recorded request")
	}
}

func TestMemoryLimiter_OldDailyBucketsPruned(t *testing.T) {
	ctx := context.Background()
	l, now := newTestLimiter(Config{DailyCap: 10, PerMinuteCap: 100})

	for day := 0; day < 10; day++ {
		_ = l.Record(ctx)
		*now = now.AddDate(0, 0, 1)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.daily) > retainDays {
		t.Fatalf("expected at most %d daily buckets, got %d", retainDays, len(l.daily))
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DailyCap != 1500 {
		t.Errorf("expected daily cap 1500, got %d", cfg.DailyCap)
	}
	if cfg.PerMinuteCap != 25 {
		t.Errorf("expected per-minute cap 25, got %d", cfg.PerMinuteCap)
	}
}
