package store

import (
	"context"
	"fmt"

	"github.com/PTMAbellana/Polegion-sub002/ent"
	"github.com/PTMAbellana/Polegion-sub002/ent/transitionevent"
)

// LogStateTransition appends one answer-driven transition to the
// research log.
func (s *Store) LogStateTransition(ctx context.Context, data TransitionEventData) error {
	seqNum, err := s.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = s.client.TransitionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStudentID(data.StudentID).
		SetChapterID(data.ChapterID).
		SetQuestionID(data.QuestionID).
		SetPrevLevel(data.PrevLevel).
		SetPrevMastery(data.PrevMastery).
		SetNewLevel(data.NewLevel).
		SetNewMastery(data.NewMastery).
		SetAction(data.Action).
		SetReason(data.Reason).
		SetReward(data.Reward).
		SetCorrect(data.Correct).
		SetTimeSpentMs(data.TimeSpentMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save transition event: %w", err)
	}
	return nil
}

// AppendLLMRequest records a provider call for auditing.
func (s *Store) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := s.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = s.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

// GetPerformanceHistory returns the most recent transitions for a
// student, newest first.
func (s *Store) GetPerformanceHistory(ctx context.Context, studentID string, limit int) ([]PerformanceSample, error) {
	q := s.client.TransitionEvent.Query().
		Where(transitionevent.StudentID(studentID)).
		Order(ent.Desc(transitionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query performance history: %w", err)
	}

	out := make([]PerformanceSample, 0, len(rows))
	for _, row := range rows {
		out = append(out, PerformanceSample{
			Timestamp:    row.Timestamp,
			Correct:      row.Correct,
			Action:       row.Action,
			Reward:       row.Reward,
			MasteryLevel: row.NewMastery,
		})
	}
	return out, nil
}

// GetResearchStatistics aggregates the full transition log.
func (s *Store) GetResearchStatistics(ctx context.Context) (*ResearchStats, error) {
	rows, err := s.client.TransitionEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query transitions: %w", err)
	}

	stats := &ResearchStats{ActionCounts: make(map[string]int)}
	correct := 0
	for _, row := range rows {
		stats.TotalTransitions++
		stats.TotalReward += row.Reward
		stats.ActionCounts[row.Action]++
		if row.Correct {
			correct++
		}
	}
	if stats.TotalTransitions > 0 {
		stats.Accuracy = float64(correct) / float64(stats.TotalTransitions) * 100
	}
	return stats, nil
}
