package tutor

import (
	"strings"
	"testing"
)

func TestRuleHint_TopicReminder(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"Perimeter of Polygons", "add up every side"},
		{"Volume of Solids", "multiply the dimensions"},
		{"Area of Shapes", "inside of a shape"},
		{"Angles in Triangles", "add up to"},
	}
	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			hint := RuleHint(HintRequest{Topic: tt.topic, Representation: RepresentationText})
			if !strings.Contains(hint, tt.want) {
				t.Fatalf("hint for %q missing %q: %s", tt.topic, tt.want, hint)
			}
		})
	}
}

func TestRuleHint_RepresentationNudge(t *testing.T) {
	visual := RuleHint(HintRequest{Topic: "area", Representation: RepresentationVisual})
	if !strings.Contains(visual, "figure") {
		t.Errorf("visual hint should reference the figure: %s", visual)
	}

	realWorld := RuleHint(HintRequest{Topic: "area", Representation: RepresentationRealWorld})
	if !strings.Contains(realWorld, "real life") {
		t.Errorf("real-world hint should ground the object: %s", realWorld)
	}

	text := RuleHint(HintRequest{Topic: "area", Representation: RepresentationText})
	if !strings.Contains(text, "Re-read") {
		t.Errorf("text hint should prompt re-reading: %s", text)
	}
}

func TestRuleHint_DeepStruggleAddsEncouragement(t *testing.T) {
	calm := RuleHint(HintRequest{Topic: "area", WrongStreak: 2})
	deep := RuleHint(HintRequest{Topic: "area", WrongStreak: 3})
	if strings.Contains(calm, "step by step") {
		t.Error("encouragement should only appear from the third wrong answer")
	}
	if !strings.Contains(deep, "step by step") {
		t.Errorf("deep struggle should add encouragement: %s", deep)
	}
}

func TestRuleHint_UnknownTopicStillHints(t *testing.T) {
	hint := RuleHint(HintRequest{Topic: "tessellation"})
	if hint == "" {
		t.Fatal("unknown topic must still produce a usable hint")
	}
}
