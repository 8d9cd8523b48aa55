package tutor

import (
	"strings"
	"testing"
)

func TestBuildHintMessage(t *testing.T) {
	msg := buildHintMessage(HintRequest{
		QuestionText:   "What is the perimeter of a square with side 4?",
		Topic:          "perimeter",
		Difficulty:     2,
		WrongStreak:    2,
		Representation: RepresentationVisual,
	})

	for _, want := range []string{
		"Topic: perimeter",
		"What is the perimeter of a square with side 4?",
		"Difficulty: 2 of 5",
		"Wrong attempts in a row: 2",
		"figure",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("hint message missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "frustrated") {
		t.Error("frustration guidance should only appear from the third wrong answer")
	}
}

func TestBuildHintMessage_FrustrationGuidance(t *testing.T) {
	msg := buildHintMessage(HintRequest{Topic: "area", WrongStreak: 3})
	if !strings.Contains(msg, "frustrated") {
		t.Errorf("expected frustration guidance:\n%s", msg)
	}
}

func TestBuildQuestionMessage(t *testing.T) {
	msg := buildQuestionMessage(QuestionRequest{
		Topic:       "volume",
		TopicFilter: []string{"cylinders", "prisms"},
		Difficulty:  4,
		Domain:      "Applying",
		AvoidIDs:    []string{"q-101", "q-205"},
	})

	for _, want := range []string{
		"Topic: volume",
		"cylinders, prisms",
		"Difficulty: 4 (hard",
		"Cognitive domain: Applying",
		"apply a formula",
		"q-101, q-205",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("question message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildQuestionMessage_UnknownDifficultyFallsBackToMedium(t *testing.T) {
	msg := buildQuestionMessage(QuestionRequest{Topic: "area", Difficulty: 9})
	if !strings.Contains(msg, "medium") {
		t.Errorf("unknown level should describe medium difficulty:\n%s", msg)
	}
}

func TestQuestionSchema_Shape(t *testing.T) {
	if QuestionSchema.Name != "geometry-question" {
		t.Fatalf("schema name: %q", QuestionSchema.Name)
	}
	required, ok := QuestionSchema.Definition["required"].([]any)
	if !ok {
		t.Fatal("schema must declare required fields")
	}
	want := map[string]bool{"question": true, "options": true, "correctAnswer": true, "hint": true}
	for _, r := range required {
		delete(want, r.(string))
	}
	if len(want) != 0 {
		t.Fatalf("schema missing required fields: %v", want)
	}
}
