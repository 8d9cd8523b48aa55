package store

import (
	"context"
	"fmt"

	"github.com/PTMAbellana/Polegion-sub002/ent"
	"github.com/PTMAbellana/Polegion-sub002/ent/studentdifficulty"
)

// GetStudentDifficulty returns the persisted state for one student and
// chapter, or (nil, nil) when no record exists yet.
func (s *Store) GetStudentDifficulty(ctx context.Context, studentID, chapterID string) (*StudentDifficultyData, error) {
	row, err := s.client.StudentDifficulty.Query().
		Where(
			studentdifficulty.StudentID(studentID),
			studentdifficulty.ChapterID(chapterID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query student difficulty: %w", err)
	}

	return &StudentDifficultyData{
		StudentID:       row.StudentID,
		ChapterID:       row.ChapterID,
		DifficultyLevel: row.DifficultyLevel,
		MasteryLevel:    row.MasteryLevel,
		CorrectStreak:   row.CorrectStreak,
		WrongStreak:     row.WrongStreak,
		TotalAttempts:   row.TotalAttempts,
		CorrectAnswers:  row.CorrectAnswers,
	}, nil
}

// UpdateStudentDifficulty upserts the state record. Last write wins;
// per-student serialization is left to the caller.
func (s *Store) UpdateStudentDifficulty(ctx context.Context, data StudentDifficultyData) error {
	n, err := s.client.StudentDifficulty.Update().
		Where(
			studentdifficulty.StudentID(data.StudentID),
			studentdifficulty.ChapterID(data.ChapterID),
		).
		SetDifficultyLevel(data.DifficultyLevel).
		SetMasteryLevel(data.MasteryLevel).
		SetCorrectStreak(data.CorrectStreak).
		SetWrongStreak(data.WrongStreak).
		SetTotalAttempts(data.TotalAttempts).
		SetCorrectAnswers(data.CorrectAnswers).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update student difficulty: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = s.client.StudentDifficulty.Create().
		SetStudentID(data.StudentID).
		SetChapterID(data.ChapterID).
		SetDifficultyLevel(data.DifficultyLevel).
		SetMasteryLevel(data.MasteryLevel).
		SetCorrectStreak(data.CorrectStreak).
		SetWrongStreak(data.WrongStreak).
		SetTotalAttempts(data.TotalAttempts).
		SetCorrectAnswers(data.CorrectAnswers).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create student difficulty: %w", err)
	}
	return nil
}
