package store

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repository for tests and ephemeral runs.
type MemoryRepo struct {
	mu          sync.Mutex
	students    map[string]StudentDifficultyData
	Transitions []TransitionEventData
	LLMRequests []LLMRequestEventData
	Questions   []QuestionData

	// FailTransitionLog, when set, makes LogStateTransition return this
	// error. Used to exercise the one propagating failure path.
	FailTransitionLog error

	now func() time.Time
}

// NewMemoryRepo creates an empty in-memory repository.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		students: make(map[string]StudentDifficultyData),
		now:      time.Now,
	}
}

func studentKey(studentID, chapterID string) string {
	return studentID + "|" + chapterID
}

func (r *MemoryRepo) GetStudentDifficulty(_ context.Context, studentID, chapterID string) (*StudentDifficultyData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d, ok := r.students[studentKey(studentID, chapterID)]; ok {
		copied := d
		return &copied, nil
	}
	return nil, nil
}

func (r *MemoryRepo) UpdateStudentDifficulty(_ context.Context, data StudentDifficultyData) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.students[studentKey(data.StudentID, data.ChapterID)] = data
	return nil
}

func (r *MemoryRepo) LogStateTransition(_ context.Context, data TransitionEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailTransitionLog != nil {
		return r.FailTransitionLog
	}
	r.Transitions = append(r.Transitions, data)
	return nil
}

func (r *MemoryRepo) AppendLLMRequest(_ context.Context, data LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.LLMRequests = append(r.LLMRequests, data)
	return nil
}

func (r *MemoryRepo) GetQuestionsByDifficulty(_ context.Context, chapterID string, difficulty int) ([]QuestionData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []QuestionData
	for _, q := range r.Questions {
		if q.ChapterID == chapterID && q.Difficulty == difficulty {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *MemoryRepo) GetPerformanceHistory(_ context.Context, studentID string, limit int) ([]PerformanceSample, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []PerformanceSample
	for i := len(r.Transitions) - 1; i >= 0; i-- {
		t := r.Transitions[i]
		if t.StudentID != studentID {
			continue
		}
		out = append(out, PerformanceSample{
			Timestamp:    r.now(),
			Correct:      t.Correct,
			Action:       t.Action,
			Reward:       t.Reward,
			MasteryLevel: t.NewMastery,
		})
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *MemoryRepo) GetResearchStatistics(_ context.Context) (*ResearchStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := &ResearchStats{ActionCounts: make(map[string]int)}
	correct := 0
	for _, t := range r.Transitions {
		stats.TotalTransitions++
		stats.TotalReward += t.Reward
		stats.ActionCounts[t.Action]++
		if t.Correct {
			correct++
		}
	}
	if stats.TotalTransitions > 0 {
		stats.Accuracy = float64(correct) / float64(stats.TotalTransitions) * 100
	}
	return stats, nil
}
