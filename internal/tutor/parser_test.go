package tutor

import (
	"strings"
	"testing"
)

const validQuestionJSON = `{
	"question": "What is the area of a square with side 5?",
	"options": [
		{"label": "A", "text": "25", "isCorrect": true},
		{"label": "B", "text": "20", "isCorrect": false},
		{"label": "C", "text": "10", "isCorrect": false},
		{"label": "D", "text": "30", "isCorrect": false}
	],
	"correctAnswer": "A",
	"hint": "Multiply the side by itself."
}`

func TestParseQuestion_DirectJSON(t *testing.T) {
	q, stage, err := ParseQuestion(validQuestionJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stage != "direct-json" {
		t.Fatalf("expected direct-json stage, got %q", stage)
	}
	if q.Question != "What is the area of a square with side 5?" {
		t.Errorf("question: %q", q.Question)
	}
	if len(q.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(q.Options))
	}
	if q.CorrectAnswer != "A" {
		t.Errorf("correctAnswer: %q", q.CorrectAnswer)
	}
}

func TestParseQuestion_StripsCodeFences(t *testing.T) {
	fenced := "```json\n" + validQuestionJSON + "\n```"
	q, stage, err := ParseQuestion(fenced)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stage != "direct-json" {
		t.Fatalf("fenced JSON should still parse directly, got stage %q", stage)
	}
	if q.Hint != "Multiply the side by itself." {
		t.Errorf("hint: %q", q.Hint)
	}
}

func TestParseQuestion_BraceExtractRecoversProseWrapped(t *testing.T) {
	wrapped := "Sure! Here is your question:\n" + validQuestionJSON + "\nLet me know if you need another."
	q, stage, err := ParseQuestion(wrapped)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stage != "brace-extract" {
		t.Fatalf("expected brace-extract stage, got %q", stage)
	}
	if len(q.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(q.Options))
	}
}

func TestParseQuestion_FieldExtractRecoversBrokenJSON(t *testing.T) {
	// Trailing comma after the last option breaks both JSON stages.
	broken := `{
		"question": "What is the perimeter of a square with side 3?",
		"options": [
			{"label": "A", "text": "12", "isCorrect": true},
			{"label": "B", "text": "9", "isCorrect": false},
			{"label": "C", "text": "6", "isCorrect": false},
			{"label": "D", "text": "15", "isCorrect": false},
		],
		"correctAnswer": "A",
		"hint": "Add all four sides.",
	}`
	q, stage, err := ParseQuestion(broken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stage != "field-extract" {
		t.Fatalf("expected field-extract stage, got %q", stage)
	}
	if len(q.Options) != 4 {
		t.Fatalf("expected 4 recovered options, got %d", len(q.Options))
	}
	if q.CorrectAnswer != "A" {
		t.Errorf("correctAnswer: %q", q.CorrectAnswer)
	}
	if q.Hint != "Add all four sides." {
		t.Errorf("hint: %q", q.Hint)
	}
}

func TestParseQuestion_AllStagesFail(t *testing.T) {
	_, _, err := ParseQuestion("I cannot generate a question right now.")
	if err == nil {
		t.Fatal("expected error for unparseable text")
	}
	if !strings.Contains(err.Error(), "all parse stages failed") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseQuestion_RejectsEmptyQuestionText(t *testing.T) {
	_, _, err := ParseQuestion(`{"question": "  ", "options": [{"label":"A","text":"1","isCorrect":true}]}`)
	if err == nil {
		t.Fatal("expected error for blank question text")
	}
}

func TestParseHint(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain text", "Try adding the sides.", "Try adding the sides."},
		{"quoted", `"Try adding the sides."`, "Try adding the sides."},
		{"fenced", "```\nTry adding the sides.\n```", "Try adding the sides."},
		{"json object", `{"hint": "Try adding the sides."}`, "Try adding the sides."},
		{"json with whitespace", `{"hint": "  Try adding the sides.  "}`, "Try adding the sides."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseHint(tt.raw); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
