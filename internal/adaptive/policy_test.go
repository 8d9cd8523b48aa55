package adaptive

import (
	"strings"
	"testing"
)

func TestDecide_RuleTable(t *testing.T) {
	tests := []struct {
		name       string
		state      State
		wantAction Action
		wantReason string
	}{
		{
			name:       "frustration after three wrong",
			state:      State{DifficultyLevel: 3, WrongStreak: 3, MasteryLevel: 30},
			wantAction: ActionDecreaseDifficulty,
			wantReason: "frustration",
		},
		{
			name:       "frustration blocked at minimum level",
			state:      State{DifficultyLevel: 1, WrongStreak: 4, MasteryLevel: 10, TotalAttempts: 10, CorrectAnswers: 6},
			wantAction: ActionMaintainDifficulty,
		},
		{
			name:       "mastery at top level advances chapter",
			state:      State{DifficultyLevel: 5, CorrectStreak: 3, MasteryLevel: 90},
			wantAction: ActionAdvanceChapter,
			wantReason: "mastery achieved",
		},
		{
			name:       "advance requires max difficulty",
			state:      State{DifficultyLevel: 4, CorrectStreak: 6, MasteryLevel: 90},
			wantAction: ActionIncreaseDifficulty,
			wantReason: "strong performance",
		},
		{
			name:       "strong streak with high mastery steps up",
			state:      State{DifficultyLevel: 2, CorrectStreak: 5, MasteryLevel: 78},
			wantAction: ActionIncreaseDifficulty,
			wantReason: "strong performance",
		},
		{
			name:       "exactly two wrong with low mastery repeats",
			state:      State{DifficultyLevel: 3, WrongStreak: 2, MasteryLevel: 40},
			wantAction: ActionRepeatCurrent,
			wantReason: "building foundation",
		},
		{
			name:       "two wrong with decent mastery falls through to default",
			state:      State{DifficultyLevel: 3, WrongStreak: 2, MasteryLevel: 65},
			wantAction: ActionMaintainDifficulty,
			wantReason: "balanced",
		},
		{
			name:       "early progress maintains",
			state:      State{DifficultyLevel: 1, WrongStreak: 1, MasteryLevel: 20},
			wantAction: ActionMaintainDifficulty,
			wantReason: "steady progress",
		},
		{
			name:       "default when nothing matches",
			state:      State{DifficultyLevel: 3, CorrectStreak: 4, MasteryLevel: 70},
			wantAction: ActionMaintainDifficulty,
			wantReason: "balanced",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.state)
			if got.Action != tt.wantAction {
				t.Fatalf("action: got %q, want %q (reason: %s)", got.Action, tt.wantAction, got.Reason)
			}
			if tt.wantReason != "" && !strings.Contains(got.Reason, tt.wantReason) {
				t.Errorf("reason %q does not mention %q", got.Reason, tt.wantReason)
			}
		})
	}
}

func TestDecide_FirstMatchWins(t *testing.T) {
	// A state matching both the frustration rule and the repeat rule's
	// streak territory must take the higher-priority frustration path.
	s := State{DifficultyLevel: 4, WrongStreak: 3, MasteryLevel: 20}
	got := Decide(s)
	if got.Action != ActionDecreaseDifficulty {
		t.Fatalf("expected decrease_difficulty, got %q", got.Action)
	}
}

func TestDecide_Pure(t *testing.T) {
	s := State{DifficultyLevel: 3, CorrectStreak: 5, MasteryLevel: 80}
	first := Decide(s)
	for i := 0; i < 5; i++ {
		if got := Decide(s); got != first {
			t.Fatalf("decision changed between calls: %+v vs %+v", got, first)
		}
	}
}

func TestDecide_WrongStreakTwoIsExact(t *testing.T) {
	// The repeat rule fires on exactly two wrong answers; a third wrong
	// answer escalates to the frustration rule instead.
	two := Decide(State{DifficultyLevel: 3, WrongStreak: 2, MasteryLevel: 30})
	if two.Action != ActionRepeatCurrent {
		t.Fatalf("wrong_streak=2: expected repeat_current, got %q", two.Action)
	}
	three := Decide(State{DifficultyLevel: 3, WrongStreak: 3, MasteryLevel: 30})
	if three.Action != ActionDecreaseDifficulty {
		t.Fatalf("wrong_streak=3: expected decrease_difficulty, got %q", three.Action)
	}
}
