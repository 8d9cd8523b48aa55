package tutor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/PTMAbellana/Polegion-sub002/internal/adaptive"
	"github.com/PTMAbellana/Polegion-sub002/internal/llm"
	"github.com/PTMAbellana/Polegion-sub002/internal/quota"
	"github.com/PTMAbellana/Polegion-sub002/internal/respcache"
)

// AI eligibility thresholds. Below these the rule-based path answers
// immediately and no quota is consumed.
const (
	hintWrongStreakMin    = 2
	questionDifficultyMin = 4
)

// aiWorthyActions is the allow-list of policy actions for which an AI
// hint adds pedagogical value. Progress actions (increase, advance)
// mean the student is not stuck, so the template hint suffices.
var aiWorthyActions = map[adaptive.Action]bool{
	adaptive.ActionRepeatCurrent:      true,
	adaptive.ActionDecreaseDifficulty: true,
	adaptive.ActionMaintainDifficulty: true,
}

// Gate evaluates the guard chain for hint and question generation:
// eligibility, action relevance, rate limit, cache, credentials. Guards
// run in that order and the first unsatisfied one short-circuits to a
// rule-based response.
type Gate struct {
	provider  llm.Provider // nil when no credentials are configured
	limiter   quota.Limiter
	hints     respcache.Store
	questions respcache.Store
	log       *logrus.Logger
}

// NewGate wires the gate. A nil provider is valid and degrades every
// request to the rule-based path.
func NewGate(provider llm.Provider, limiter quota.Limiter, hints, questions respcache.Store, log *logrus.Logger) *Gate {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Gate{
		provider:  provider,
		limiter:   limiter,
		hints:     hints,
		questions: questions,
		log:       log,
	}
}

// Hint produces a hint for the request. It never returns an error: the
// response's Source and Reason explain which path answered.
func (g *Gate) Hint(ctx context.Context, req HintRequest) HintResponse {
	if req.WrongStreak < hintWrongStreakMin {
		return g.ruleHint(req, SourceRule, "wrong streak below AI threshold")
	}

	if !aiWorthyActions[req.Action] {
		return g.ruleHint(req, SourceRule,
			fmt.Sprintf("action %q does not call for an AI hint", req.Action))
	}

	if err := g.limiter.Check(ctx); err != nil {
		return g.ruleHint(req, SourceRule, "rate limited: "+err.Error())
	}

	key := respcache.HintKey(req.Topic, string(req.Representation), req.QuestionText)
	if cached, ok := g.hints.Get(ctx, key); ok {
		return HintResponse{Hint: cached, Source: SourceAICached, Reason: "served from hint cache"}
	}

	if g.provider == nil {
		return g.ruleHint(req, SourceRule, "no AI provider credentials configured")
	}

	// Quota is consumed per attempted provider call, exactly once, and
	// never on the cache-hit path above.
	if err := g.limiter.Record(ctx); err != nil {
		g.log.WithError(err).Warn("quota record failed, continuing with provider call")
	}

	hint, err := g.generateHint(ctx, req)
	if err != nil {
		g.log.WithError(err).WithField("topic", req.Topic).Warn("AI hint generation failed")
		return g.ruleHint(req, SourceRuleFallback, "AI generation failed: "+err.Error())
	}

	g.hints.Put(ctx, key, hint)
	return HintResponse{Hint: hint, Source: SourceAI, Reason: "generated by AI provider"}
}

// GenerateQuestion produces a validated question, or nil when the
// caller must fall back to the parametric template generator. Like
// Hint, it never returns an error.
func (g *Gate) GenerateQuestion(ctx context.Context, req QuestionRequest) *GeneratedQuestion {
	if req.Difficulty < questionDifficultyMin {
		g.log.WithField("difficulty", req.Difficulty).Debug("difficulty below AI generation threshold")
		return nil
	}

	if err := g.limiter.Check(ctx); err != nil {
		g.log.WithError(err).Debug("question generation rate limited")
		return nil
	}

	key := respcache.QuestionKey(req.Topic, req.Difficulty, req.Domain)
	if cached, ok := g.questions.Get(ctx, key); ok {
		var q GeneratedQuestion
		if err := json.Unmarshal([]byte(cached), &q); err == nil {
			return &q
		}
		// A corrupt cache entry falls through to regeneration.
	}

	if g.provider == nil {
		g.log.Debug("no AI provider credentials configured, using template generator")
		return nil
	}

	if err := g.limiter.Record(ctx); err != nil {
		g.log.WithError(err).Warn("quota record failed, continuing with provider call")
	}

	q, err := g.generateQuestion(ctx, req)
	if err != nil {
		g.log.WithError(err).WithField("topic", req.Topic).Warn("AI question generation failed")
		return nil
	}

	if encoded, err := json.Marshal(q); err == nil {
		g.questions.Put(ctx, key, string(encoded))
	}
	return q
}

func (g *Gate) generateHint(ctx context.Context, req HintRequest) (string, error) {
	ctx = llm.WithPurpose(ctx, "hint")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: hintSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildHintMessage(req)},
		},
		MaxTokens:   256,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	hint := ParseHint(string(resp.Content))
	if hint == "" {
		return "", fmt.Errorf("provider returned an empty hint")
	}
	return hint, nil
}

func (g *Gate) generateQuestion(ctx context.Context, req QuestionRequest) (*GeneratedQuestion, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: questionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuestionMessage(req)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   1024,
		Temperature: 0.8,
	})
	if err != nil {
		return nil, err
	}

	q, stage, err := ParseQuestion(string(resp.Content))
	if err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if stage != "direct-json" {
		g.log.WithField("stage", stage).Debug("question recovered by fallback parser")
	}

	for _, v := range DefaultValidators() {
		if verr := v.Validate(q); verr != nil {
			return nil, verr
		}
	}
	return q, nil
}

func (g *Gate) ruleHint(req HintRequest, source Source, reason string) HintResponse {
	g.log.WithFields(logrus.Fields{
		"topic":  req.Topic,
		"source": source,
		"reason": reason,
	}).Debug("serving rule-based hint")
	return HintResponse{Hint: RuleHint(req), Source: source, Reason: reason}
}
