package adaptive

// Streak bonus/penalty tuning. Each consecutive answer moves mastery by
// 3 points, capped at 15 in either direction.
const (
	streakWeight = 3
	streakCap    = 15
)

// ApplyAnswer folds one answer outcome into the state and returns the
// updated copy. Mastery is recomputed from scratch on every call rather
// than incremented, so the score never drifts from the underlying
// counters.
func ApplyAnswer(s State, correct bool) State {
	s.TotalAttempts++
	if correct {
		s.CorrectAnswers++
		s.CorrectStreak++
		s.WrongStreak = 0
	} else {
		s.WrongStreak++
		s.CorrectStreak = 0
	}

	bonus := min(s.CorrectStreak*streakWeight, streakCap)
	penalty := min(s.WrongStreak*streakWeight, streakCap)
	s.MasteryLevel = clamp(s.Accuracy()+float64(bonus-penalty), 0, 100)

	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
