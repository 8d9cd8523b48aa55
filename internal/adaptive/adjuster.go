package adaptive

// ApplyAction transitions a difficulty level under the given action.
// The returned bool reports whether the level actually changed, so
// callers can skip redundant persistence writes.
func ApplyAction(level int, action Action) (int, bool) {
	next := level
	switch action {
	case ActionDecreaseDifficulty:
		next = max(MinDifficulty, level-1)
	case ActionIncreaseDifficulty:
		next = min(MaxDifficulty, level+1)
	case ActionAdvanceChapter:
		// The next chapter starts at mid difficulty.
		next = ChapterStartDifficulty
	case ActionRepeatCurrent, ActionMaintainDifficulty:
		// No change.
	}
	return next, next != level
}
