package tutor

import "testing"

func geometryQuestion(text, answer string) *GeneratedQuestion {
	return &GeneratedQuestion{
		Question: text,
		Options: []Option{
			{Label: "A", Text: answer, Correct: true},
			{Label: "B", Text: "999"},
			{Label: "C", Text: "998"},
			{Label: "D", Text: "997"},
		},
		CorrectAnswer: "A",
	}
}

func TestGeometryCheck(t *testing.T) {
	v := &GeometryCheckValidator{}

	tests := []struct {
		name     string
		question string
		answer   string
		wantPass bool
	}{
		{"area of square correct", "What is the area of a square with side 5?", "25", true},
		{"area of square wrong", "What is the area of a square with side 5?", "20", false},
		{"area of rectangle correct", "Find the area of a rectangle 6 by 4.", "24 square units", true},
		{"area of triangle correct", "What is the area of a triangle with base 10 and height 4?", "20", true},
		{"area of circle within tolerance", "What is the area of a circle with radius 3?", "28.3", true},
		{"area of circle wrong", "What is the area of a circle with radius 3?", "31", false},
		{"perimeter of square correct", "What is the perimeter of a square with side 7?", "28", true},
		{"perimeter of square wrong", "What is the perimeter of a square with side 7?", "29", false},
		{"perimeter of rectangle correct", "Find the perimeter of a rectangle 8 by 3.", "22", true},
		{"perimeter of triangle correct", "A triangle has sides 3, 4 and 5. What is its perimeter?", "12", true},
		{"perimeter tolerance is tight", "What is the perimeter of a square with side 7?", "28.5", false},
		{"volume of cube correct", "What is the volume of a cube with edge 3?", "27", true},
		{"volume of cube wrong", "What is the volume of a cube with edge 3?", "9", false},
		{"volume of cylinder correct", "Find the volume of a cylinder with radius 2 and height 5.", "62.8", true},
		{"volume of prism correct", "A rectangular prism measures 2 by 3 by 4. What is its volume?", "24", true},
		{"cylinder with diameter skipped", "Find the volume of a cylinder with diameter 4 and height 5.", "62.8", true},
		{"circle with diameter skipped", "What is the area of a circle with diameter 6?", "28.3", true},
		{"unrecognized measure passes", "How many faces does a cube have?", "6", true},
		{"unrecognized shape passes", "What is the area of a trapezoid with bases 3 and 5?", "16", true},
		{"non-numeric answer passes", "Which shape has four equal sides?", "A square", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := geometryQuestion(tt.question, tt.answer)
			err := v.Validate(q)
			if tt.wantPass && err != nil {
				t.Fatalf("expected pass, got: %v", err)
			}
			if !tt.wantPass && err == nil {
				t.Fatal("expected rejection")
			}
		})
	}
}

func TestGeometryCheck_NoMarkedOptionPasses(t *testing.T) {
	v := &GeometryCheckValidator{}
	q := &GeneratedQuestion{
		Question: "What is the area of a square with side 5?",
		Options:  []Option{{Label: "A", Text: "25"}},
	}
	if err := v.Validate(q); err != nil {
		t.Fatalf("no marked option is the answer-label validator's concern: %v", err)
	}
}

func TestExtractNumbers(t *testing.T) {
	nums := extractNumbers("A rectangle 6.5 by 4 has area -26?")
	want := []float64{6.5, 4, -26}
	if len(nums) != len(want) {
		t.Fatalf("expected %d numbers, got %v", len(want), nums)
	}
	for i := range want {
		if nums[i] != want[i] {
			t.Errorf("number %d: got %v, want %v", i, nums[i], want[i])
		}
	}
}
