package store

import (
	"context"
	"fmt"

	"github.com/PTMAbellana/Polegion-sub002/ent/geometryquestion"
)

// GetQuestionsByDifficulty returns the curated question pool for a
// chapter at one difficulty level.
func (s *Store) GetQuestionsByDifficulty(ctx context.Context, chapterID string, difficulty int) ([]QuestionData, error) {
	rows, err := s.client.GeometryQuestion.Query().
		Where(
			geometryquestion.ChapterID(chapterID),
			geometryquestion.Difficulty(difficulty),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	out := make([]QuestionData, 0, len(rows))
	for _, row := range rows {
		out = append(out, QuestionData{
			ID:         row.QuestionID,
			ChapterID:  row.ChapterID,
			Topic:      row.Topic,
			Difficulty: row.Difficulty,
			Text:       row.Text,
		})
	}
	return out, nil
}
