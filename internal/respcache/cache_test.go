package respcache

import (
	"context"
	"testing"
	"time"
)

func newTestCache(ttl time.Duration, maxSize int) (*Memory, *time.Time) {
	c := NewMemory(ttl, maxSize)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestMemory_HitAndMiss(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(time.Hour, 0)

	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatal("empty cache should miss")
	}

	c.Put(ctx, "k", "v")
	got, ok := c.Get(ctx, "k")
	if !ok || got != "v" {
		t.Fatalf("expected hit with 'v', got %q ok=%v", got, ok)
	}
}

func TestMemory_ExpiredEntryDeletedOnLookup(t *testing.T) {
	ctx := context.Background()
	c, now := newTestCache(time.Hour, 0)

	c.Put(ctx, "k", "v")
	*now = now.Add(time.Hour + time.Second)

	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatal("expired entry should miss")
	}
	if c.Len() != 0 {
		t.Fatalf("expired entry should be deleted on lookup, len=%d", c.Len())
	}
}

func TestMemory_EntryFreshAtTTLBoundary(t *testing.T) {
	ctx := context.Background()
	c, now := newTestCache(time.Hour, 0)

	c.Put(ctx, "k", "v")
	*now = now.Add(time.Hour)

	if _, ok := c.Get(ctx, "k"); !ok {
		t.Fatal("entry exactly at TTL age should still hit")
	}
}

func TestMemory_EvictsOldestAtCapacity(t *testing.T) {
	ctx := context.Background()
	c, now := newTestCache(time.Hour, 2)

	c.Put(ctx, "a", "1")
	*now = now.Add(time.Second)
	c.Put(ctx, "b", "2")
	*now = now.Add(time.Second)
	c.Put(ctx, "c", "3")

	if c.Len() != 2 {
		t.Fatalf("expected 2 entries after eviction, got %d", c.Len())
	}
	if _, ok := c.Get(ctx, "a"); ok {
		t.Fatal("oldest entry 'a' should have been evicted")
	}
	if _, ok := c.Get(ctx, "b"); !ok {
		t.Fatal("'b' should survive")
	}
	if _, ok := c.Get(ctx, "c"); !ok {
		t.Fatal("'c' should survive")
	}
}

func TestMemory_OverwriteDoesNotEvict(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(time.Hour, 2)

	c.Put(ctx, "a", "1")
	c.Put(ctx, "b", "2")
	c.Put(ctx, "a", "updated")

	if c.Len() != 2 {
		t.Fatalf("overwriting a key must not evict, len=%d", c.Len())
	}
	got, _ := c.Get(ctx, "a")
	if got != "updated" {
		t.Fatalf("expected updated value, got %q", got)
	}
}

func TestMemory_UnboundedWhenMaxSizeZero(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(time.Hour, 0)

	for i := 0; i < 100; i++ {
		c.Put(ctx, string(rune('a'+i%26))+string(rune('0'+i/26)), "v")
	}
	if c.Len() < 100 {
		t.Fatalf("maxSize 0 must not evict, len=%d", c.Len())
	}
}

func TestHintKey(t *testing.T) {
	k := HintKey("Perimeter", "visual", "What is the perimeter of a square with side 4?")
	want := "hint:perimeter:visual:what_is_the_perimeter_of_a_squ"
	if k != want {
		t.Fatalf("got %q, want %q", k, want)
	}
}

func TestHintKey_DistinguishesQuestions(t *testing.T) {
	a := HintKey("area", "text", "Find the area of a circle with radius 3.")
	b := HintKey("area", "text", "Compute the area of a square with side 3.")
	if a == b {
		t.Fatal("different questions should produce different hint keys")
	}
}

func TestQuestionKey_StableAcrossCalls(t *testing.T) {
	a := QuestionKey("Volume", 4, "Applying")
	b := QuestionKey("volume", 4, "applying")
	if a != b {
		t.Fatalf("equivalent requests must share a key: %q vs %q", a, b)
	}
	if a != "question:volume:4:applying" {
		t.Fatalf("unexpected key shape: %q", a)
	}
}

func TestQuestionKey_DifficultySeparates(t *testing.T) {
	if QuestionKey("volume", 3, "applying") == QuestionKey("volume", 4, "applying") {
		t.Fatal("different difficulties must not share cached questions")
	}
}
