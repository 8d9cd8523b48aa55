package adaptive

import "testing"

func TestReward(t *testing.T) {
	tests := []struct {
		name   string
		prev   State
		next   State
		action Action
		want   int
	}{
		{
			name: "mastery gain with active streak",
			prev: State{MasteryLevel: 40},
			next: State{MasteryLevel: 50, CorrectStreak: 2},
			// +5 mastery up, +2 streak.
			action: ActionMaintainDifficulty,
			want:   7,
		},
		{
			name: "high mastery adds bonus",
			prev: State{MasteryLevel: 70},
			next: State{MasteryLevel: 80, CorrectStreak: 4},
			// +5 up, +2 streak, +3 high mastery.
			action: ActionIncreaseDifficulty,
			want:   10,
		},
		{
			name: "chapter advance stacks on top",
			prev: State{MasteryLevel: 80},
			next: State{MasteryLevel: 90, CorrectStreak: 3},
			// +5 up, +2 streak, +3 high mastery, +10 advance.
			action: ActionAdvanceChapter,
			want:   20,
		},
		{
			name: "mastery drop penalized",
			prev: State{MasteryLevel: 50},
			next: State{MasteryLevel: 40, WrongStreak: 1},
			// -2 down.
			action: ActionMaintainDifficulty,
			want:   -2,
		},
		{
			name: "deep wrong streak penalized",
			prev: State{MasteryLevel: 30},
			next: State{MasteryLevel: 20, WrongStreak: 5},
			// -2 down, -5 deep streak.
			action: ActionDecreaseDifficulty,
			want:   -7,
		},
		{
			name: "coasting at low level penalized",
			prev: State{MasteryLevel: 100},
			next: State{MasteryLevel: 100, CorrectStreak: 10, DifficultyLevel: 2},
			// +2 streak, +3 high mastery, -3 coasting.
			action: ActionMaintainDifficulty,
			want:   2,
		},
		{
			name:   "flat transition is neutral",
			prev:   State{MasteryLevel: 50},
			next:   State{MasteryLevel: 50},
			action: ActionMaintainDifficulty,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reward(tt.prev, tt.next, tt.action); got != tt.want {
				t.Fatalf("got %d, want %d", got, tt.want)
			}
		})
	}
}
