package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepo_StudentDifficultyRoundTrip(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	got, err := repo.GetStudentDifficulty(ctx, "s1", "ch1")
	require.NoError(t, err)
	assert.Nil(t, got, "unknown student must return nil, not an error")

	data := StudentDifficultyData{
		StudentID: "s1", ChapterID: "ch1",
		DifficultyLevel: 3, MasteryLevel: 62.5,
		CorrectStreak: 2, TotalAttempts: 8, CorrectAnswers: 5,
	}
	require.NoError(t, repo.UpdateStudentDifficulty(ctx, data))

	got, err = repo.GetStudentDifficulty(ctx, "s1", "ch1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, data, *got)

	// Per-chapter isolation.
	other, err := repo.GetStudentDifficulty(ctx, "s1", "ch2")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestMemoryRepo_GetStudentDifficultyReturnsCopy(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	require.NoError(t, repo.UpdateStudentDifficulty(ctx, StudentDifficultyData{
		StudentID: "s1", ChapterID: "ch1", DifficultyLevel: 2,
	}))

	first, err := repo.GetStudentDifficulty(ctx, "s1", "ch1")
	require.NoError(t, err)
	first.DifficultyLevel = 5

	second, err := repo.GetStudentDifficulty(ctx, "s1", "ch1")
	require.NoError(t, err)
	assert.Equal(t, 2, second.DifficultyLevel, "mutating a returned record must not affect the store")
}

func TestMemoryRepo_PerformanceHistory(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.LogStateTransition(ctx, TransitionEventData{
			StudentID: "s1", ChapterID: "ch1",
			Action: "maintain_difficulty", Correct: i%2 == 0, Reward: i,
		}))
	}
	require.NoError(t, repo.LogStateTransition(ctx, TransitionEventData{
		StudentID: "s2", ChapterID: "ch1", Action: "repeat_current",
	}))

	history, err := repo.GetPerformanceHistory(ctx, "s1", 3)
	require.NoError(t, err)
	require.Len(t, history, 3)
	// Newest first.
	assert.Equal(t, 4, history[0].Reward)
	for _, sample := range history {
		assert.Equal(t, "maintain_difficulty", sample.Action)
	}
}

func TestMemoryRepo_ResearchStatistics(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	transitions := []TransitionEventData{
		{StudentID: "s1", Action: "maintain_difficulty", Correct: true, Reward: 7},
		{StudentID: "s1", Action: "increase_difficulty", Correct: true, Reward: 10},
		{StudentID: "s2", Action: "maintain_difficulty", Correct: false, Reward: -2},
		{StudentID: "s2", Action: "decrease_difficulty", Correct: false, Reward: -7},
	}
	for _, tr := range transitions {
		require.NoError(t, repo.LogStateTransition(ctx, tr))
	}

	stats, err := repo.GetResearchStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalTransitions)
	assert.Equal(t, 8, stats.TotalReward)
	assert.Equal(t, 2, stats.ActionCounts["maintain_difficulty"])
	assert.InDelta(t, 50.0, stats.Accuracy, 0.001)
}

func TestMemoryRepo_QuestionsByDifficulty(t *testing.T) {
	repo := NewMemoryRepo()
	repo.Questions = []QuestionData{
		{ID: "q1", ChapterID: "ch1", Difficulty: 3, Text: "What is the area of a square with side 2?"},
		{ID: "q2", ChapterID: "ch1", Difficulty: 4, Text: "Find the volume of a cube with edge 3."},
		{ID: "q3", ChapterID: "ch2", Difficulty: 3, Text: "Name a quadrilateral with equal sides."},
	}

	got, err := repo.GetQuestionsByDifficulty(context.Background(), "ch1", 3)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "q1", got[0].ID)
}
