// Package tutor orchestrates AI-assisted hint and question generation
// behind a short-circuiting guard chain. The tutoring flow is never
// blocked by AI unavailability: every failed guard or provider error
// converts into a rule-based response.
package tutor

import (
	"github.com/PTMAbellana/Polegion-sub002/internal/adaptive"
)

// Source labels which guard/path produced a hint response.
type Source string

const (
	// SourceRule means a guard short-circuited before the provider was
	// considered.
	SourceRule Source = "rule"

	// SourceAI means the provider generated the content on this call.
	SourceAI Source = "ai"

	// SourceAICached means a previous provider response was served from
	// cache; no quota was consumed.
	SourceAICached Source = "ai-cached"

	// SourceRuleFallback means the provider was attempted but failed,
	// and a rule-based response took its place.
	SourceRuleFallback Source = "rule-fallback"
)

// Representation describes how the question is presented to the student.
type Representation string

const (
	RepresentationText      Representation = "text"
	RepresentationVisual    Representation = "visual"
	RepresentationRealWorld Representation = "real_world"
)

// HintRequest asks for a hint on a question the student is struggling
// with.
type HintRequest struct {
	QuestionText   string
	Topic          string
	Difficulty     int
	WrongStreak    int
	Action         adaptive.Action
	Representation Representation
}

// HintResponse carries the hint plus which path produced it.
type HintResponse struct {
	Hint   string
	Source Source
	Reason string
}

// QuestionRequest asks for a freshly generated question. Difficulty
// must be at least 4; below that level the curated pool serves the
// student and generation is skipped.
type QuestionRequest struct {
	Topic       string
	TopicFilter []string
	Difficulty  int
	Domain      string
	AvoidIDs    []string
}

// Option is one of the four answer choices of a generated question.
type Option struct {
	Label   string `json:"label"`
	Text    string `json:"text"`
	Correct bool   `json:"isCorrect"`
}

// GeneratedQuestion is a validated multiple-choice geometry question
// produced by the AI provider.
type GeneratedQuestion struct {
	Question      string   `json:"question"`
	Options       []Option `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Hint          string   `json:"hint"`
}

// CorrectOption returns the option marked correct, or nil if none or
// several are marked. Valid questions always have exactly one.
func (q *GeneratedQuestion) CorrectOption() *Option {
	var found *Option
	for i := range q.Options {
		if q.Options[i].Correct {
			if found != nil {
				return nil
			}
			found = &q.Options[i]
		}
	}
	return found
}
