package adaptive

import "testing"

func TestApplyAnswer_CountersAndStreaks(t *testing.T) {
	s := NewState("s1", "ch1")

	s = ApplyAnswer(s, true)
	if s.TotalAttempts != 1 || s.CorrectAnswers != 1 {
		t.Fatalf("after one correct: attempts=%d correct=%d", s.TotalAttempts, s.CorrectAnswers)
	}
	if s.CorrectStreak != 1 || s.WrongStreak != 0 {
		t.Fatalf("after one correct: correctStreak=%d wrongStreak=%d", s.CorrectStreak, s.WrongStreak)
	}

	s = ApplyAnswer(s, false)
	if s.TotalAttempts != 2 || s.CorrectAnswers != 1 {
		t.Fatalf("after wrong: attempts=%d correct=%d", s.TotalAttempts, s.CorrectAnswers)
	}
	if s.CorrectStreak != 0 || s.WrongStreak != 1 {
		t.Fatalf("wrong answer must reset correct streak: correctStreak=%d wrongStreak=%d", s.CorrectStreak, s.WrongStreak)
	}
}

func TestApplyAnswer_StreaksMutuallyExclusive(t *testing.T) {
	s := NewState("s1", "ch1")
	answers := []bool{true, true, false, true, false, false, true}

	for i, correct := range answers {
		s = ApplyAnswer(s, correct)
		if s.CorrectStreak > 0 && s.WrongStreak > 0 {
			t.Fatalf("answer %d: both streaks nonzero (correct=%d wrong=%d)", i, s.CorrectStreak, s.WrongStreak)
		}
	}
}

func TestApplyAnswer_MasteryFormula(t *testing.T) {
	// 3 correct out of 4 with a 2-answer correct streak:
	// accuracy 75 + bonus 6 = 81.
	s := State{TotalAttempts: 3, CorrectAnswers: 2, CorrectStreak: 1}
	s = ApplyAnswer(s, true)
	if s.MasteryLevel != 81 {
		t.Fatalf("expected mastery 81, got %v", s.MasteryLevel)
	}
}

func TestApplyAnswer_StreakBonusCapped(t *testing.T) {
	// Streak of 10 would give a raw bonus of 30; it must cap at 15.
	s := State{TotalAttempts: 19, CorrectAnswers: 10, CorrectStreak: 9}
	s = ApplyAnswer(s, true)
	// accuracy 11/20 = 55, +15 capped bonus = 70.
	if s.MasteryLevel != 70 {
		t.Fatalf("expected mastery 70, got %v", s.MasteryLevel)
	}
}

func TestApplyAnswer_MasteryClamped(t *testing.T) {
	perfect := NewState("s1", "ch1")
	for i := 0; i < 20; i++ {
		perfect = ApplyAnswer(perfect, true)
		if perfect.MasteryLevel < 0 || perfect.MasteryLevel > 100 {
			t.Fatalf("answer %d: mastery %v out of range", i, perfect.MasteryLevel)
		}
	}
	if perfect.MasteryLevel != 100 {
		t.Fatalf("all-correct run should clamp at 100, got %v", perfect.MasteryLevel)
	}

	hopeless := NewState("s2", "ch1")
	for i := 0; i < 20; i++ {
		hopeless = ApplyAnswer(hopeless, false)
	}
	if hopeless.MasteryLevel != 0 {
		t.Fatalf("all-wrong run should clamp at 0, got %v", hopeless.MasteryLevel)
	}
}

func TestApplyAnswer_MasteryRecomputedNotDrifted(t *testing.T) {
	// Two states with identical counters must produce identical mastery
	// regardless of the path taken to reach them.
	a := NewState("s1", "ch1")
	for _, c := range []bool{true, false, true, true} {
		a = ApplyAnswer(a, c)
	}

	b := State{StudentID: "s1", ChapterID: "ch1", DifficultyLevel: 1,
		TotalAttempts: 3, CorrectAnswers: 2, CorrectStreak: 1}
	b = ApplyAnswer(b, true)

	if a.MasteryLevel != b.MasteryLevel {
		t.Fatalf("same counters, different mastery: %v vs %v", a.MasteryLevel, b.MasteryLevel)
	}
}

func TestAccuracy_ZeroAttempts(t *testing.T) {
	s := NewState("s1", "ch1")
	if s.Accuracy() != 0 {
		t.Fatalf("expected 0 accuracy with no attempts, got %v", s.Accuracy())
	}
}
