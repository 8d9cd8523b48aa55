package tutor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/PTMAbellana/Polegion-sub002/internal/adaptive"
	"github.com/PTMAbellana/Polegion-sub002/internal/llm"
	"github.com/PTMAbellana/Polegion-sub002/internal/quota"
	"github.com/PTMAbellana/Polegion-sub002/internal/respcache"
)

// countingLimiter records Check/Record calls and can simulate an
// exhausted window.
type countingLimiter struct {
	checks   int
	records  int
	checkErr error
}

func (l *countingLimiter) Check(context.Context) error {
	l.checks++
	return l.checkErr
}

func (l *countingLimiter) Record(context.Context) error {
	l.records++
	return nil
}

var _ quota.Limiter = (*countingLimiter)(nil)

func newTestGate(provider llm.Provider, limiter quota.Limiter) *Gate {
	return NewGate(provider, limiter,
		respcache.NewMemory(time.Hour, 0),
		respcache.NewMemory(time.Hour, 0),
		nil)
}

func eligibleHintRequest() HintRequest {
	return HintRequest{
		QuestionText:   "What is the perimeter of a square with side 4?",
		Topic:          "perimeter",
		Difficulty:     2,
		WrongStreak:    2,
		Action:         adaptive.ActionRepeatCurrent,
		Representation: RepresentationText,
	}
}

func TestHint_WrongStreakBelowThresholdUsesRule(t *testing.T) {
	mock := llm.NewMockProvider()
	limiter := &countingLimiter{}
	g := newTestGate(mock, limiter)

	req := eligibleHintRequest()
	req.WrongStreak = 1
	resp := g.Hint(context.Background(), req)

	if resp.Source != SourceRule {
		t.Fatalf("expected source rule, got %q (%s)", resp.Source, resp.Reason)
	}
	if resp.Hint == "" {
		t.Error("rule path must still produce a hint")
	}
	if mock.CallCount() != 0 {
		t.Error("provider must not be called")
	}
	if limiter.records != 0 {
		t.Error("ineligible request must not consume quota")
	}
}

func TestHint_ProgressActionUsesRule(t *testing.T) {
	mock := llm.NewMockProvider()
	g := newTestGate(mock, &countingLimiter{})

	req := eligibleHintRequest()
	req.Action = adaptive.ActionIncreaseDifficulty
	resp := g.Hint(context.Background(), req)

	if resp.Source != SourceRule {
		t.Fatalf("expected source rule, got %q", resp.Source)
	}
	if mock.CallCount() != 0 {
		t.Error("provider must not be called for progress actions")
	}
}

func TestHint_RateLimitedUsesRule(t *testing.T) {
	mock := llm.NewMockProvider()
	limiter := &countingLimiter{checkErr: &quota.LimitError{Window: quota.WindowMinute, Limit: 25}}
	g := newTestGate(mock, limiter)

	resp := g.Hint(context.Background(), eligibleHintRequest())
	if resp.Source != SourceRule {
		t.Fatalf("expected source rule, got %q", resp.Source)
	}
	if !strings.Contains(resp.Reason, "per-minute limit") {
		t.Errorf("reason should carry the limiter's message: %q", resp.Reason)
	}
	if limiter.records != 0 {
		t.Error("rejected request must not consume quota")
	}
}

func TestHint_AISuccessThenCached(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Add up all four sides of the square.")})
	limiter := &countingLimiter{}
	g := newTestGate(mock, limiter)

	first := g.Hint(context.Background(), eligibleHintRequest())
	if first.Source != SourceAI {
		t.Fatalf("expected source ai, got %q (%s)", first.Source, first.Reason)
	}
	if first.Hint != "Add up all four sides of the square." {
		t.Fatalf("hint: %q", first.Hint)
	}
	if limiter.records != 1 {
		t.Fatalf("expected 1 quota unit consumed, got %d", limiter.records)
	}

	second := g.Hint(context.Background(), eligibleHintRequest())
	if second.Source != SourceAICached {
		t.Fatalf("expected source ai-cached, got %q", second.Source)
	}
	if second.Hint != first.Hint {
		t.Errorf("cached hint differs: %q vs %q", second.Hint, first.Hint)
	}
	if limiter.records != 1 {
		t.Errorf("cache hit must not consume quota, records=%d", limiter.records)
	}
	if mock.CallCount() != 1 {
		t.Errorf("cache hit must not call the provider, calls=%d", mock.CallCount())
	}
}

func TestHint_NilProviderUsesRule(t *testing.T) {
	limiter := &countingLimiter{}
	g := newTestGate(nil, limiter)

	resp := g.Hint(context.Background(), eligibleHintRequest())
	if resp.Source != SourceRule {
		t.Fatalf("expected source rule, got %q", resp.Source)
	}
	if !strings.Contains(resp.Reason, "credentials") {
		t.Errorf("reason should mention missing credentials: %q", resp.Reason)
	}
	if limiter.records != 0 {
		t.Error("credentials guard runs before quota is consumed")
	}
}

func TestHint_ProviderFailureFallsBackToRule(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	limiter := &countingLimiter{}
	g := newTestGate(mock, limiter)

	resp := g.Hint(context.Background(), eligibleHintRequest())
	if resp.Source != SourceRuleFallback {
		t.Fatalf("expected source rule-fallback, got %q", resp.Source)
	}
	if resp.Hint == "" {
		t.Error("fallback must still produce a hint")
	}
	if limiter.records != 1 {
		t.Errorf("attempted provider call consumes quota exactly once, records=%d", limiter.records)
	}
}

func TestGenerateQuestion_LowDifficultySkipsAI(t *testing.T) {
	mock := llm.NewMockProvider()
	g := newTestGate(mock, &countingLimiter{})

	q := g.GenerateQuestion(context.Background(), QuestionRequest{
		Topic: "area", Difficulty: 3, Domain: "applying",
	})
	if q != nil {
		t.Fatal("difficulty below 4 must fall back to the template generator")
	}
	if mock.CallCount() != 0 {
		t.Error("provider must not be called")
	}
}

func TestGenerateQuestion_SuccessThenCached(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validQuestionJSON)})
	limiter := &countingLimiter{}
	g := newTestGate(mock, limiter)

	req := QuestionRequest{Topic: "area", Difficulty: 4, Domain: "applying"}

	q := g.GenerateQuestion(context.Background(), req)
	if q == nil {
		t.Fatal("expected a generated question")
	}
	if q.CorrectAnswer != "A" {
		t.Errorf("correctAnswer: %q", q.CorrectAnswer)
	}
	if limiter.records != 1 {
		t.Fatalf("expected 1 quota unit consumed, got %d", limiter.records)
	}

	again := g.GenerateQuestion(context.Background(), req)
	if again == nil {
		t.Fatal("expected cached question")
	}
	if mock.CallCount() != 1 {
		t.Errorf("equivalent request must be served from cache, calls=%d", mock.CallCount())
	}
	if limiter.records != 1 {
		t.Errorf("cache hit must not consume quota, records=%d", limiter.records)
	}
}

func TestGenerateQuestion_ValidationFailureReturnsNil(t *testing.T) {
	// Duplicate distractor texts trip the distinct-options validator.
	bad := `{
		"question": "What is the area of a square with side 5?",
		"options": [
			{"label": "A", "text": "25", "isCorrect": true},
			{"label": "B", "text": "20", "isCorrect": false},
			{"label": "C", "text": "20", "isCorrect": false},
			{"label": "D", "text": "30", "isCorrect": false}
		],
		"correctAnswer": "A",
		"hint": "Multiply the side by itself."
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(bad)})
	g := newTestGate(mock, &countingLimiter{})

	q := g.GenerateQuestion(context.Background(), QuestionRequest{
		Topic: "area", Difficulty: 4, Domain: "applying",
	})
	if q != nil {
		t.Fatal("invalid question must be rejected, forcing the template fallback")
	}
}

func TestGenerateQuestion_GeometryCheckRejectsWrongAnswer(t *testing.T) {
	bad := `{
		"question": "What is the volume of a cube with edge 3?",
		"options": [
			{"label": "A", "text": "9", "isCorrect": true},
			{"label": "B", "text": "27", "isCorrect": false},
			{"label": "C", "text": "12", "isCorrect": false},
			{"label": "D", "text": "18", "isCorrect": false}
		],
		"correctAnswer": "A",
		"hint": "Multiply edge by edge by edge."
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(bad)})
	g := newTestGate(mock, &countingLimiter{})

	q := g.GenerateQuestion(context.Background(), QuestionRequest{
		Topic: "volume", Difficulty: 5, Domain: "applying",
	})
	if q != nil {
		t.Fatal("arithmetically wrong answer must be rejected")
	}
}
