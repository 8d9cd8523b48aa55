package adaptive

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/PTMAbellana/Polegion-sub002/internal/store"
)

// Engine runs the answer-submission pipeline: performance tracking,
// policy decision, difficulty adjustment, reward computation, and
// transition logging.
type Engine struct {
	students store.StudentRepo
	events   store.EventRepo
	log      *logrus.Logger
}

// NewEngine creates an Engine backed by the given repositories.
func NewEngine(students store.StudentRepo, events store.EventRepo, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{students: students, events: events, log: log}
}

// SubmitAnswerInput carries one answer outcome from the API layer.
type SubmitAnswerInput struct {
	StudentID  string
	ChapterID  string
	QuestionID string
	SessionID  string
	Correct    bool
	TimeSpent  time.Duration
}

// SubmitAnswerResult reports the updated state back to the API layer.
type SubmitAnswerResult struct {
	DifficultyLevel int
	DifficultyLabel string
	MasteryLevel    float64
	Action          Action
	Reason          string
	Feedback        string
	Reward          int
}

// SubmitAnswer folds the answer into the student's state, decides the
// next pedagogical action, adjusts difficulty, and appends the
// transition to the research log. Only store failures surface as
// errors; the decision logic itself cannot fail.
func (e *Engine) SubmitAnswer(ctx context.Context, in SubmitAnswerInput) (*SubmitAnswerResult, error) {
	prev, err := e.loadState(ctx, in.StudentID, in.ChapterID)
	if err != nil {
		return nil, err
	}

	next := ApplyAnswer(prev, in.Correct)
	decision := Decide(next)
	next.DifficultyLevel, _ = ApplyAction(next.DifficultyLevel, decision.Action)
	reward := Reward(prev, next, decision.Action)

	if err := e.students.UpdateStudentDifficulty(ctx, toStoreData(next)); err != nil {
		return nil, fmt.Errorf("update student difficulty: %w", err)
	}

	transition := store.TransitionEventData{
		SessionID:   in.SessionID,
		StudentID:   in.StudentID,
		ChapterID:   in.ChapterID,
		QuestionID:  in.QuestionID,
		PrevLevel:   prev.DifficultyLevel,
		PrevMastery: prev.MasteryLevel,
		NewLevel:    next.DifficultyLevel,
		NewMastery:  next.MasteryLevel,
		Action:      string(decision.Action),
		Reason:      decision.Reason,
		Reward:      reward,
		Correct:     in.Correct,
		TimeSpentMs: in.TimeSpent.Milliseconds(),
	}
	if err := e.events.LogStateTransition(ctx, transition); err != nil {
		// Deliberately propagated: a failing research log points at a
		// deeper persistence problem.
		return nil, fmt.Errorf("log state transition: %w", err)
	}

	e.log.WithFields(logrus.Fields{
		"student": in.StudentID,
		"chapter": in.ChapterID,
		"action":  decision.Action,
		"level":   next.DifficultyLevel,
		"mastery": next.MasteryLevel,
	}).Debug("answer processed")

	return &SubmitAnswerResult{
		DifficultyLevel: next.DifficultyLevel,
		DifficultyLabel: DifficultyLabel(next.DifficultyLevel),
		MasteryLevel:    next.MasteryLevel,
		Action:          decision.Action,
		Reason:          decision.Reason,
		Feedback:        Feedback(decision.Action, in.Correct),
		Reward:          reward,
	}, nil
}

// CurrentState returns the student's difficulty state, creating the
// lazy default for first-time interactions without persisting it.
func (e *Engine) CurrentState(ctx context.Context, studentID, chapterID string) (State, error) {
	return e.loadState(ctx, studentID, chapterID)
}

func (e *Engine) loadState(ctx context.Context, studentID, chapterID string) (State, error) {
	data, err := e.students.GetStudentDifficulty(ctx, studentID, chapterID)
	if err != nil {
		return State{}, fmt.Errorf("get student difficulty: %w", err)
	}
	if data == nil {
		return NewState(studentID, chapterID), nil
	}
	return fromStoreData(*data), nil
}

func toStoreData(s State) store.StudentDifficultyData {
	return store.StudentDifficultyData{
		StudentID:       s.StudentID,
		ChapterID:       s.ChapterID,
		DifficultyLevel: s.DifficultyLevel,
		MasteryLevel:    s.MasteryLevel,
		CorrectStreak:   s.CorrectStreak,
		WrongStreak:     s.WrongStreak,
		TotalAttempts:   s.TotalAttempts,
		CorrectAnswers:  s.CorrectAnswers,
	}
}

func fromStoreData(d store.StudentDifficultyData) State {
	return State{
		StudentID:       d.StudentID,
		ChapterID:       d.ChapterID,
		DifficultyLevel: d.DifficultyLevel,
		MasteryLevel:    d.MasteryLevel,
		CorrectStreak:   d.CorrectStreak,
		WrongStreak:     d.WrongStreak,
		TotalAttempts:   d.TotalAttempts,
		CorrectAnswers:  d.CorrectAnswers,
	}
}
