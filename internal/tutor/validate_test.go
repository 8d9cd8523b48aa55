package tutor

import "testing"

func validQuestion() *GeneratedQuestion {
	return &GeneratedQuestion{
		Question: "What is the area of a square with side 5?",
		Options: []Option{
			{Label: "A", Text: "25", Correct: true},
			{Label: "B", Text: "20"},
			{Label: "C", Text: "10"},
			{Label: "D", Text: "30"},
		},
		CorrectAnswer: "A",
		Hint:          "Multiply the side by itself.",
	}
}

func TestDefaultValidators_Order(t *testing.T) {
	chain := DefaultValidators()
	names := []string{"option-count", "answer-label", "distinct-options", "geometry-check"}
	if len(chain) != len(names) {
		t.Fatalf("expected %d validators, got %d", len(names), len(chain))
	}
	for i, v := range chain {
		if v.Name() != names[i] {
			t.Errorf("validator %d: expected %q, got %q", i, names[i], v.Name())
		}
	}
}

func TestValidQuestionPassesChain(t *testing.T) {
	q := validQuestion()
	for _, v := range DefaultValidators() {
		if err := v.Validate(q); err != nil {
			t.Fatalf("valid question rejected by %s: %v", v.Name(), err)
		}
	}
}

func TestOptionCount(t *testing.T) {
	v := &OptionCountValidator{}

	q := validQuestion()
	q.Options = q.Options[:3]
	if err := v.Validate(q); err == nil {
		t.Fatal("3 options should be rejected")
	}

	q = validQuestion()
	q.Options = append(q.Options, Option{Label: "E", Text: "50"})
	if err := v.Validate(q); err == nil {
		t.Fatal("5 options should be rejected")
	}
}

func TestAnswerLabel_NoCorrectOption(t *testing.T) {
	v := &AnswerLabelValidator{}
	q := validQuestion()
	q.Options[0].Correct = false
	if err := v.Validate(q); err == nil {
		t.Fatal("question with no correct option should be rejected")
	}
}

func TestAnswerLabel_MultipleCorrectOptions(t *testing.T) {
	v := &AnswerLabelValidator{}
	q := validQuestion()
	q.Options[1].Correct = true
	if err := v.Validate(q); err == nil {
		t.Fatal("question with two correct options should be rejected")
	}
}

func TestAnswerLabel_CorrectsMismatchedLabel(t *testing.T) {
	// The marked option is authoritative; the label field follows it.
	v := &AnswerLabelValidator{}
	q := validQuestion()
	q.CorrectAnswer = "C"
	if err := v.Validate(q); err != nil {
		t.Fatalf("mismatched label should be corrected, not rejected: %v", err)
	}
	if q.CorrectAnswer != "A" {
		t.Fatalf("expected correctAnswer normalized to 'A', got %q", q.CorrectAnswer)
	}
}

func TestDistinctOptions_DuplicateText(t *testing.T) {
	v := &DistinctOptionsValidator{}
	q := validQuestion()
	q.Options[2].Text = "20" // same as B
	if err := v.Validate(q); err == nil {
		t.Fatal("duplicate option text should be rejected")
	}
}

func TestDistinctOptions_DuplicateAfterNormalization(t *testing.T) {
	v := &DistinctOptionsValidator{}
	q := validQuestion()
	q.Options[1].Text = " 25 "
	// "A" is "25": case/whitespace variants still count as duplicates.
	if err := v.Validate(q); err == nil {
		t.Fatal("whitespace-variant duplicate should be rejected")
	}
}

func TestCorrectOption(t *testing.T) {
	q := validQuestion()
	opt := q.CorrectOption()
	if opt == nil || opt.Label != "A" {
		t.Fatalf("expected option A, got %+v", opt)
	}

	q.Options[1].Correct = true
	if q.CorrectOption() != nil {
		t.Fatal("two marked options should return nil")
	}

	q = &GeneratedQuestion{Options: []Option{{Label: "A", Text: "1"}}}
	if q.CorrectOption() != nil {
		t.Fatal("no marked option should return nil")
	}
}
