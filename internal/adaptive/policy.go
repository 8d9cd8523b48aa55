package adaptive

// Decide maps a freshly updated state to one action. Rules are checked
// in strict priority order and the first match wins; rules never
// combine. The function is pure: the same state always produces the
// same decision.
//
// Rule 5 deliberately tests wrong_streak for exact equality with 2. With
// three or more wrong answers rule 1 takes over, unless the student is
// already at the lowest level, in which case the default applies.
func Decide(s State) Decision {
	switch {
	case s.WrongStreak >= 3 && s.DifficultyLevel > MinDifficulty:
		return Decision{
			Action: ActionDecreaseDifficulty,
			Reason: "frustration: 3 or more wrong answers in a row, stepping difficulty down",
		}

	case s.MasteryLevel >= 85 && s.CorrectStreak >= 3 && s.DifficultyLevel == MaxDifficulty:
		return Decision{
			Action: ActionAdvanceChapter,
			Reason: "mastery achieved at the highest difficulty, advancing to the next chapter",
		}

	case s.CorrectStreak >= 5 && s.MasteryLevel >= 75 && s.DifficultyLevel < MaxDifficulty:
		return Decision{
			Action: ActionIncreaseDifficulty,
			Reason: "strong performance: long correct streak with high mastery",
		}

	case s.CorrectStreak >= 8 && s.DifficultyLevel <= 2 && s.MasteryLevel >= 80:
		return Decision{
			Action: ActionIncreaseDifficulty,
			Reason: "too easy: sustained success at a low level suggests boredom",
		}

	case s.WrongStreak == 2 && s.MasteryLevel < 50:
		return Decision{
			Action: ActionRepeatCurrent,
			Reason: "building foundation: repeating the current question type",
		}

	case s.MasteryLevel < 60 && s.CorrectStreak < 3 && s.WrongStreak < 2:
		return Decision{
			Action: ActionMaintainDifficulty,
			Reason: "steady progress at the current level",
		}

	default:
		return Decision{
			Action: ActionMaintainDifficulty,
			Reason: "balanced performance, keeping the current level",
		}
	}
}
