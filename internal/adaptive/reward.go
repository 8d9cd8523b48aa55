package adaptive

// Reward derives the research-logging signal from a state transition.
// The contributions stack additively. The value is recorded alongside
// the transition for offline analysis and never feeds back into Decide.
func Reward(prev, next State, action Action) int {
	r := 0
	if next.MasteryLevel > prev.MasteryLevel {
		r += 5
	}
	if next.CorrectStreak > 0 {
		r += 2
	}
	if next.MasteryLevel >= 75 {
		r += 3
	}
	if action == ActionAdvanceChapter {
		r += 10
	}
	if next.MasteryLevel < prev.MasteryLevel {
		r -= 2
	}
	if next.WrongStreak >= 5 {
		r -= 5
	}
	// A very long streak at a low level means the student is coasting.
	if next.CorrectStreak >= 10 && next.DifficultyLevel <= 2 {
		r -= 3
	}
	return r
}
