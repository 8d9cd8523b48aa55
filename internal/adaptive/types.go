package adaptive

// Difficulty level bounds. Every chapter draws questions from pools
// keyed by these levels.
const (
	MinDifficulty = 1
	MaxDifficulty = 5

	// ChapterStartDifficulty is the level a student starts the next
	// chapter at after advancing.
	ChapterStartDifficulty = 3
)

// Action is a pedagogical move chosen by the policy after each answer.
type Action string

const (
	ActionDecreaseDifficulty Action = "decrease_difficulty"
	ActionMaintainDifficulty Action = "maintain_difficulty"
	ActionIncreaseDifficulty Action = "increase_difficulty"
	ActionAdvanceChapter     Action = "advance_chapter"
	ActionRepeatCurrent      Action = "repeat_current"
)

// State holds the per-student, per-chapter performance and difficulty
// record. It is created lazily with defaults on the first interaction
// and mutated on every answer submission.
type State struct {
	StudentID string
	ChapterID string

	// DifficultyLevel is always within [MinDifficulty, MaxDifficulty].
	DifficultyLevel int

	// MasteryLevel is a 0-100 score blending accuracy and streak momentum.
	MasteryLevel float64

	// CorrectStreak and WrongStreak are mutually exclusive: after any
	// update exactly one of them is nonzero (or both are zero before the
	// first answer).
	CorrectStreak int
	WrongStreak   int

	TotalAttempts  int
	CorrectAnswers int
}

// NewState returns the default state for a student's first interaction
// with a chapter.
func NewState(studentID, chapterID string) State {
	return State{
		StudentID:       studentID,
		ChapterID:       chapterID,
		DifficultyLevel: MinDifficulty,
	}
}

// Accuracy returns the lifetime accuracy percentage (0-100).
func (s State) Accuracy() float64 {
	if s.TotalAttempts == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.TotalAttempts) * 100
}

// Decision pairs the chosen action with a human-readable justification.
type Decision struct {
	Action Action
	Reason string
}

// difficultyLabels maps levels to the labels shown in the product.
var difficultyLabels = map[int]string{
	1: "Very Easy",
	2: "Easy",
	3: "Medium",
	4: "Hard",
	5: "Very Hard",
}

// DifficultyLabel returns the display name for a difficulty level.
func DifficultyLabel(level int) string {
	if l, ok := difficultyLabels[level]; ok {
		return l
	}
	return "Unknown"
}
