package adaptive

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PTMAbellana/Polegion-sub002/internal/store"
)

func newTestEngine() (*Engine, *store.MemoryRepo) {
	repo := store.NewMemoryRepo()
	return NewEngine(repo, repo, nil), repo
}

func TestSubmitAnswer_FirstInteractionCreatesDefault(t *testing.T) {
	e, repo := newTestEngine()

	res, err := e.SubmitAnswer(context.Background(), SubmitAnswerInput{
		StudentID: "s1", ChapterID: "ch1", QuestionID: "q1", SessionID: "sess1",
		Correct: true, TimeSpent: 12 * time.Second,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.DifficultyLevel != 1 {
		t.Fatalf("first interaction should stay at level 1, got %d", res.DifficultyLevel)
	}
	if res.DifficultyLabel != "Very Easy" {
		t.Fatalf("expected label 'Very Easy', got %q", res.DifficultyLabel)
	}
	if res.Feedback == "" {
		t.Error("expected non-empty feedback")
	}

	saved, err := repo.GetStudentDifficulty(context.Background(), "s1", "ch1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil {
		t.Fatal("expected state persisted after first answer")
	}
	if saved.TotalAttempts != 1 || saved.CorrectAnswers != 1 {
		t.Fatalf("persisted counters wrong: %+v", saved)
	}
}

func TestSubmitAnswer_FrustrationPathDecreasesDifficulty(t *testing.T) {
	e, repo := newTestEngine()

	seed := store.StudentDifficultyData{
		StudentID: "s1", ChapterID: "ch1",
		DifficultyLevel: 3, MasteryLevel: 30,
		WrongStreak: 2, TotalAttempts: 10, CorrectAnswers: 3,
	}
	if err := repo.UpdateStudentDifficulty(context.Background(), seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	res, err := e.SubmitAnswer(context.Background(), SubmitAnswerInput{
		StudentID: "s1", ChapterID: "ch1", QuestionID: "q7", SessionID: "sess1",
		Correct: false,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Action != ActionDecreaseDifficulty {
		t.Fatalf("expected decrease_difficulty, got %q (%s)", res.Action, res.Reason)
	}
	if res.DifficultyLevel != 2 {
		t.Fatalf("expected level 2 after decrease, got %d", res.DifficultyLevel)
	}
}

func TestSubmitAnswer_AdvanceChapterResetsToMidLevel(t *testing.T) {
	e, repo := newTestEngine()

	seed := store.StudentDifficultyData{
		StudentID: "s1", ChapterID: "ch1",
		DifficultyLevel: 5, MasteryLevel: 88,
		CorrectStreak: 2, TotalAttempts: 10, CorrectAnswers: 9,
	}
	if err := repo.UpdateStudentDifficulty(context.Background(), seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	res, err := e.SubmitAnswer(context.Background(), SubmitAnswerInput{
		StudentID: "s1", ChapterID: "ch1", QuestionID: "q9", SessionID: "sess1",
		Correct: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Action != ActionAdvanceChapter {
		t.Fatalf("expected advance_chapter, got %q (%s)", res.Action, res.Reason)
	}
	if res.DifficultyLevel != ChapterStartDifficulty {
		t.Fatalf("expected level %d after advance, got %d", ChapterStartDifficulty, res.DifficultyLevel)
	}
	if res.Reward < 10 {
		t.Errorf("advance should earn at least the +10 bonus, got %d", res.Reward)
	}
}

func TestSubmitAnswer_LogsTransition(t *testing.T) {
	e, repo := newTestEngine()

	_, err := e.SubmitAnswer(context.Background(), SubmitAnswerInput{
		StudentID: "s1", ChapterID: "ch1", QuestionID: "q1", SessionID: "sess1",
		Correct: false, TimeSpent: 2500 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.Transitions) != 1 {
		t.Fatalf("expected 1 transition, got %d", len(repo.Transitions))
	}
	tr := repo.Transitions[0]
	if tr.PrevLevel != 1 || tr.NewLevel != 1 {
		t.Errorf("levels: prev=%d new=%d", tr.PrevLevel, tr.NewLevel)
	}
	if tr.Correct {
		t.Error("transition should record the wrong answer")
	}
	if tr.TimeSpentMs != 2500 {
		t.Errorf("expected 2500ms, got %d", tr.TimeSpentMs)
	}
	if tr.Action == "" || tr.Reason == "" {
		t.Errorf("action/reason must be recorded: %+v", tr)
	}
}

func TestSubmitAnswer_TransitionLogFailurePropagates(t *testing.T) {
	e, repo := newTestEngine()
	repo.FailTransitionLog = errors.New("disk full")

	_, err := e.SubmitAnswer(context.Background(), SubmitAnswerInput{
		StudentID: "s1", ChapterID: "ch1", QuestionID: "q1", SessionID: "sess1",
		Correct: true,
	})
	if err == nil {
		t.Fatal("expected transition log failure to propagate")
	}
}

func TestCurrentState_DoesNotPersistDefault(t *testing.T) {
	e, repo := newTestEngine()

	s, err := e.CurrentState(context.Background(), "s1", "ch1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.DifficultyLevel != MinDifficulty {
		t.Fatalf("expected default level %d, got %d", MinDifficulty, s.DifficultyLevel)
	}

	saved, err := repo.GetStudentDifficulty(context.Background(), "s1", "ch1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved != nil {
		t.Fatal("reading state must not persist the lazy default")
	}
}
