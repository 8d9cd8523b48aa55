package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestFallback_PrimarySuccessSkipsSecondary(t *testing.T) {
	primary := NewMockProvider(MockResponse{Content: json.RawMessage(`{"from":"primary"}`)})
	secondary := NewMockProvider(MockResponse{Content: json.RawMessage(`{"from":"secondary"}`)})

	chain := WithFallback([]Provider{primary, secondary}, nil)
	resp, err := chain.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"from":"primary"}` {
		t.Fatalf("expected primary content, got %s", resp.Content)
	}
	if secondary.CallCount() != 0 {
		t.Fatalf("secondary should not be called, got %d calls", secondary.CallCount())
	}
}

func TestFallback_PrimaryFailureFallsThrough(t *testing.T) {
	primary := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	secondary := NewMockProvider(MockResponse{Content: json.RawMessage(`{"from":"secondary"}`)})

	chain := WithFallback([]Provider{primary, secondary}, nil)
	resp, err := chain.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"from":"secondary"}` {
		t.Fatalf("expected secondary content, got %s", resp.Content)
	}
}

func TestFallback_SingleAttemptPerProvider(t *testing.T) {
	primary := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Content: json.RawMessage(`{"retry":"would succeed"}`)},
	)
	secondary := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	chain := WithFallback([]Provider{primary, secondary}, nil)
	if _, err := chain.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if primary.CallCount() != 1 {
		t.Fatalf("primary must be attempted exactly once, got %d", primary.CallCount())
	}
}

func TestFallback_AllFailed(t *testing.T) {
	primary := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	secondary := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})

	chain := WithFallback([]Provider{primary, secondary}, nil)
	_, err := chain.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error when every provider fails")
	}
	if !strings.Contains(err.Error(), "all providers failed") {
		t.Fatalf("unexpected error message: %v", err)
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("last provider error should be wrapped, got %T", err)
	}
}

func TestFallback_ContextCancellationStopsChain(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	primary := NewMockProvider(MockResponse{Err: ctx.Err()})
	secondary := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	chain := WithFallback([]Provider{primary, secondary}, nil)
	_, err := chain.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if secondary.CallCount() != 0 {
		t.Fatal("cancellation must stop the chain before the next provider")
	}
}

func TestFallback_ModelIDReportsPrimary(t *testing.T) {
	chain := WithFallback([]Provider{NewMockProvider(), NewMockProvider()}, nil)
	if chain.ModelID() != "mock" {
		t.Fatalf("expected primary's model id, got %q", chain.ModelID())
	}
	empty := WithFallback(nil, nil)
	if empty.ModelID() != "none" {
		t.Fatalf("expected 'none' for empty chain, got %q", empty.ModelID())
	}
}
