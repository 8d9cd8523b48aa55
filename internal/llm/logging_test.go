package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PTMAbellana/Polegion-sub002/internal/store"
)

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	repo := store.NewMemoryRepo()
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 34},
	})

	p := WithLogging(mock, repo, nil)
	ctx := WithPurpose(context.Background(), "question-gen")
	_, err := p.Generate(ctx, Request{System: "sys", Messages: []Message{{Role: RoleUser, Content: "go"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.LLMRequests) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(repo.LLMRequests))
	}
	e := repo.LLMRequests[0]
	if !e.Success {
		t.Error("event should record success")
	}
	if e.Purpose != "question-gen" {
		t.Errorf("expected purpose 'question-gen', got %q", e.Purpose)
	}
	if e.InputTokens != 12 || e.OutputTokens != 34 {
		t.Errorf("token counts wrong: in=%d out=%d", e.InputTokens, e.OutputTokens)
	}
	if e.RequestBody == "" || e.ResponseBody == "" {
		t.Error("request and response bodies should be captured")
	}
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	repo := store.NewMemoryRepo()
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})

	p := WithLogging(mock, repo, nil)
	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error to pass through")
	}

	if len(repo.LLMRequests) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(repo.LLMRequests))
	}
	e := repo.LLMRequests[0]
	if e.Success {
		t.Error("event should record failure")
	}
	if e.ErrorMessage == "" {
		t.Error("failure event should carry the error message")
	}
}

func TestSerializeRequest_IncludesSchema(t *testing.T) {
	req := Request{
		System:   "You are a tutor.",
		Messages: []Message{{Role: RoleUser, Content: "generate"}},
		Schema: &Schema{
			Name:       "geometry-question",
			Definition: map[string]any{"type": "object"},
		},
	}
	s := serializeRequest(req)
	for _, want := range []string{"[system]", "You are a tutor.", "[user]", "generate", "geometry-question"} {
		if !strings.Contains(s, want) {
			t.Errorf("serialized request missing %q:\n%s", want, s)
		}
	}
}
