package adaptive

import "testing"

func TestApplyAction(t *testing.T) {
	tests := []struct {
		name        string
		level       int
		action      Action
		wantLevel   int
		wantChanged bool
	}{
		{"decrease steps down", 3, ActionDecreaseDifficulty, 2, true},
		{"decrease clamps at minimum", 1, ActionDecreaseDifficulty, 1, false},
		{"increase steps up", 3, ActionIncreaseDifficulty, 4, true},
		{"increase clamps at maximum", 5, ActionIncreaseDifficulty, 5, false},
		{"advance resets to chapter start", 5, ActionAdvanceChapter, 3, true},
		{"advance from start level is a no-op", 3, ActionAdvanceChapter, 3, false},
		{"maintain keeps level", 4, ActionMaintainDifficulty, 4, false},
		{"repeat keeps level", 2, ActionRepeatCurrent, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := ApplyAction(tt.level, tt.action)
			if got != tt.wantLevel {
				t.Fatalf("level: got %d, want %d", got, tt.wantLevel)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed: got %v, want %v", changed, tt.wantChanged)
			}
		})
	}
}

func TestApplyAction_AlwaysInBounds(t *testing.T) {
	actions := []Action{
		ActionDecreaseDifficulty, ActionMaintainDifficulty,
		ActionIncreaseDifficulty, ActionAdvanceChapter, ActionRepeatCurrent,
	}
	for level := MinDifficulty; level <= MaxDifficulty; level++ {
		for _, a := range actions {
			got, _ := ApplyAction(level, a)
			if got < MinDifficulty || got > MaxDifficulty {
				t.Fatalf("level %d action %q: result %d out of bounds", level, a, got)
			}
		}
	}
}

func TestDifficultyLabel(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "Very Easy"},
		{2, "Easy"},
		{3, "Medium"},
		{4, "Hard"},
		{5, "Very Hard"},
		{0, "Unknown"},
		{6, "Unknown"},
	}
	for _, tt := range tests {
		if got := DifficultyLabel(tt.level); got != tt.want {
			t.Errorf("level %d: got %q, want %q", tt.level, got, tt.want)
		}
	}
}
