package tutor

import (
	"fmt"
	"strings"
)

// Validator checks a parsed question before it reaches a student. Any
// failure rejects the question outright and forces the template
// fallback.
type Validator interface {
	// Name returns a short identifier for error messages and logging.
	Name() string

	// Validate returns nil if the question passes. A validator may
	// normalize the question (see AnswerLabelValidator) but never
	// invents content.
	Validate(q *GeneratedQuestion) *ValidationError
}

// ValidationError describes why a question was rejected.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators returns the standard chain in evaluation order.
func DefaultValidators() []Validator {
	return []Validator{
		&OptionCountValidator{},
		&AnswerLabelValidator{},
		&DistinctOptionsValidator{},
		&GeometryCheckValidator{},
	}
}

// OptionCountValidator requires exactly 4 options.
type OptionCountValidator struct{}

func (v *OptionCountValidator) Name() string { return "option-count" }

func (v *OptionCountValidator) Validate(q *GeneratedQuestion) *ValidationError {
	if len(q.Options) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected 4 options, got %d", len(q.Options)),
		}
	}
	return nil
}

// AnswerLabelValidator requires exactly one option marked correct. When
// the designated correctAnswer label disagrees with the marked option,
// the label is corrected to match the marked option, never the other
// way around: the correctness flag is the authoritative signal.
type AnswerLabelValidator struct{}

func (v *AnswerLabelValidator) Name() string { return "answer-label" }

func (v *AnswerLabelValidator) Validate(q *GeneratedQuestion) *ValidationError {
	marked := 0
	var correct *Option
	for i := range q.Options {
		if q.Options[i].Correct {
			marked++
			correct = &q.Options[i]
		}
	}
	if marked != 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected exactly 1 correct option, got %d", marked),
		}
	}
	if q.CorrectAnswer != correct.Label {
		q.CorrectAnswer = correct.Label
	}
	return nil
}

// DistinctOptionsValidator requires all option texts to be pairwise
// distinct after trimming and lowercasing. Duplicate distractors give
// the answer away by elimination.
type DistinctOptionsValidator struct{}

func (v *DistinctOptionsValidator) Name() string { return "distinct-options" }

func (v *DistinctOptionsValidator) Validate(q *GeneratedQuestion) *ValidationError {
	seen := make(map[string]string, len(q.Options))
	for _, opt := range q.Options {
		norm := strings.ToLower(strings.TrimSpace(opt.Text))
		if other, dup := seen[norm]; dup {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("options %s and %s have the same text", other, opt.Label),
			}
		}
		seen[norm] = opt.Label
	}
	return nil
}
