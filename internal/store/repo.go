package store

import (
	"context"
	"time"
)

// StudentDifficultyData is the persisted per-student, per-chapter
// difficulty record.
type StudentDifficultyData struct {
	StudentID       string
	ChapterID       string
	DifficultyLevel int
	MasteryLevel    float64
	CorrectStreak   int
	WrongStreak     int
	TotalAttempts   int
	CorrectAnswers  int
}

// TransitionEventData captures one answer-driven state transition for
// the append-only research log.
type TransitionEventData struct {
	SessionID   string
	StudentID   string
	ChapterID   string
	QuestionID  string
	PrevLevel   int
	PrevMastery float64
	NewLevel    int
	NewMastery  float64
	Action      string
	Reason      string
	Reward      int
	Correct     bool
	TimeSpentMs int64
}

// LLMRequestEventData captures a single provider call for auditing.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// QuestionData is a question-pool entry read by the API layer when
// serving the next problem at a given level.
type QuestionData struct {
	ID         string
	ChapterID  string
	Topic      string
	Difficulty int
	Text       string
}

// PerformanceSample is one point of a student's transition history.
type PerformanceSample struct {
	Timestamp    time.Time
	Correct      bool
	Action       string
	Reward       int
	MasteryLevel float64
}

// ResearchStats aggregates the transition log for research export.
type ResearchStats struct {
	TotalTransitions int
	TotalReward      int
	ActionCounts     map[string]int
	Accuracy         float64
}

// StudentRepo provides access to persisted difficulty state.
// GetStudentDifficulty returns (nil, nil) when the student has no
// record yet; callers create the default lazily.
type StudentRepo interface {
	GetStudentDifficulty(ctx context.Context, studentID, chapterID string) (*StudentDifficultyData, error)
	UpdateStudentDifficulty(ctx context.Context, data StudentDifficultyData) error
}

// EventRepo provides append access to the audit logs.
type EventRepo interface {
	// LogStateTransition records an answer-driven transition. Unlike
	// every other failure in the engine, an error here propagates to the
	// caller: a broken research log means a broken store.
	LogStateTransition(ctx context.Context, data TransitionEventData) error

	// AppendLLMRequest records a provider call. Failures are logged and
	// swallowed by the caller.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}

// QuestionRepo serves the question pool.
type QuestionRepo interface {
	GetQuestionsByDifficulty(ctx context.Context, chapterID string, difficulty int) ([]QuestionData, error)
}

// ResearchRepo exposes history and aggregate statistics over the
// transition log.
type ResearchRepo interface {
	GetPerformanceHistory(ctx context.Context, studentID string, limit int) ([]PerformanceSample, error)
	GetResearchStatistics(ctx context.Context) (*ResearchStats, error)
}

// Repository is the full persistence collaborator consumed by the
// engine and the API layer.
type Repository interface {
	StudentRepo
	EventRepo
	QuestionRepo
	ResearchRepo
}
