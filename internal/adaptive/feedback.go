package adaptive

// Feedback returns the student-facing message for a decision. The tone
// stays encouraging regardless of the outcome.
func Feedback(action Action, correct bool) string {
	switch action {
	case ActionDecreaseDifficulty:
		return "Let's take a small step back and build up your confidence."
	case ActionIncreaseDifficulty:
		return "Great work! Ready for something more challenging?"
	case ActionAdvanceChapter:
		return "Outstanding! You've mastered this chapter. On to the next one!"
	case ActionRepeatCurrent:
		return "Let's try another one like this to lock in the idea."
	default:
		if correct {
			return "Nice job! Keep it up."
		}
		return "Not quite, but you're making progress. Keep going!"
	}
}
