// Code generated by ent, DO NOT EDIT.

package studentdifficulty

import (
	"entgo.io/ent/dialect/sql"
	"github.com/PTMAbellana/Polegion-sub002/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldEQ(FieldStudentID, v))
}

// ChapterID applies equality check predicate on the "chapter_id" field. It's identical to ChapterIDEQ.
func ChapterID(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldEQ(FieldChapterID, v))
}

// DifficultyLevel applies equality check predicate on the "difficulty_level" field. It's identical to DifficultyLevelEQ.
func DifficultyLevel(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldEQ(FieldDifficultyLevel, v))
}

// MasteryLevel applies equality check predicate on the "mastery_level" field. It's identical to MasteryLevelEQ.
func MasteryLevel(v float64) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldEQ(FieldMasteryLevel, v))
}

// CorrectStreak applies equality check predicate on the "correct_streak" field. It's identical to CorrectStreakEQ.
func CorrectStreak(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldEQ(FieldCorrectStreak, v))
}

// WrongStreak applies equality check predicate on the "wrong_streak" field. It's identical to WrongStreakEQ.
func WrongStreak(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldEQ(FieldWrongStreak, v))
}

// TotalAttempts applies equality check predicate on the "total_attempts" field. It's identical to TotalAttemptsEQ.
func TotalAttempts(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldEQ(FieldTotalAttempts, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldEQ(FieldCorrectAnswers, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldContainsFold(FieldStudentID, v))
}

// ChapterIDEQ applies the EQ predicate on the "chapter_id" field.
func ChapterIDEQ(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldEQ(FieldChapterID, v))
}

// ChapterIDNEQ applies the NEQ predicate on the "chapter_id" field.
func ChapterIDNEQ(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldNEQ(FieldChapterID, v))
}

// ChapterIDIn applies the In predicate on the "chapter_id" field.
func ChapterIDIn(vs ...string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldIn(FieldChapterID, vs...))
}

// ChapterIDNotIn applies the NotIn predicate on the "chapter_id" field.
func ChapterIDNotIn(vs ...string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldNotIn(FieldChapterID, vs...))
}

// ChapterIDGT applies the GT predicate on the "chapter_id" field.
func ChapterIDGT(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldGT(FieldChapterID, v))
}

// ChapterIDGTE applies the GTE predicate on the "chapter_id" field.
func ChapterIDGTE(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldGTE(FieldChapterID, v))
}

// ChapterIDLT applies the LT predicate on the "chapter_id" field.
func ChapterIDLT(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldLT(FieldChapterID, v))
}

// ChapterIDLTE applies the LTE predicate on the "chapter_id" field.
func ChapterIDLTE(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldLTE(FieldChapterID, v))
}

// ChapterIDContains applies the Contains predicate on the "chapter_id" field.
func ChapterIDContains(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldContains(FieldChapterID, v))
}

// ChapterIDHasPrefix applies the HasPrefix predicate on the "chapter_id" field.
func ChapterIDHasPrefix(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldHasPrefix(FieldChapterID, v))
}

// ChapterIDHasSuffix applies the HasSuffix predicate on the "chapter_id" field.
func ChapterIDHasSuffix(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldHasSuffix(FieldChapterID, v))
}

// ChapterIDEqualFold applies the EqualFold predicate on the "chapter_id" field.
func ChapterIDEqualFold(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldEqualFold(FieldChapterID, v))
}

// ChapterIDContainsFold applies the ContainsFold predicate on the "chapter_id" field.
func ChapterIDContainsFold(v string) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldContainsFold(FieldChapterID, v))
}

// DifficultyLevelEQ applies the EQ predicate on the "difficulty_level" field.
func DifficultyLevelEQ(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldEQ(FieldDifficultyLevel, v))
}

// DifficultyLevelNEQ applies the NEQ predicate on the "difficulty_level" field.
func DifficultyLevelNEQ(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldNEQ(FieldDifficultyLevel, v))
}

// DifficultyLevelIn applies the In predicate on the "difficulty_level" field.
func DifficultyLevelIn(vs ...int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldIn(FieldDifficultyLevel, vs...))
}

// DifficultyLevelNotIn applies the NotIn predicate on the "difficulty_level" field.
func DifficultyLevelNotIn(vs ...int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldNotIn(FieldDifficultyLevel, vs...))
}

// DifficultyLevelGT applies the GT predicate on the "difficulty_level" field.
func DifficultyLevelGT(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldGT(FieldDifficultyLevel, v))
}

// DifficultyLevelGTE applies the GTE predicate on the "difficulty_level" field.
func DifficultyLevelGTE(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldGTE(FieldDifficultyLevel, v))
}

// DifficultyLevelLT applies the LT predicate on the "difficulty_level" field.
func DifficultyLevelLT(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldLT(FieldDifficultyLevel, v))
}

// DifficultyLevelLTE applies the LTE predicate on the "difficulty_level" field.
func DifficultyLevelLTE(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldLTE(FieldDifficultyLevel, v))
}

// MasteryLevelEQ applies the EQ predicate on the "mastery_level" field.
func MasteryLevelEQ(v float64) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldEQ(FieldMasteryLevel, v))
}

// MasteryLevelNEQ applies the NEQ predicate on the "mastery_level" field.
func MasteryLevelNEQ(v float64) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldNEQ(FieldMasteryLevel, v))
}

// MasteryLevelIn applies the In predicate on the "mastery_level" field.
func MasteryLevelIn(vs ...float64) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldIn(FieldMasteryLevel, vs...))
}

// MasteryLevelNotIn applies the NotIn predicate on the "mastery_level" field.
func MasteryLevelNotIn(vs ...float64) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldNotIn(FieldMasteryLevel, vs...))
}

// MasteryLevelGT applies the GT predicate on the "mastery_level" field.
func MasteryLevelGT(v float64) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldGT(FieldMasteryLevel, v))
}

// MasteryLevelGTE applies the GTE predicate on the "mastery_level" field.
func MasteryLevelGTE(v float64) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldGTE(FieldMasteryLevel, v))
}

// MasteryLevelLT applies the LT predicate on the "mastery_level" field.
func MasteryLevelLT(v float64) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldLT(FieldMasteryLevel, v))
}

// MasteryLevelLTE applies the LTE predicate on the "mastery_level" field.
func MasteryLevelLTE(v float64) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldLTE(FieldMasteryLevel, v))
}

// CorrectStreakEQ applies the EQ predicate on the "correct_streak" field.
func CorrectStreakEQ(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldEQ(FieldCorrectStreak, v))
}

// CorrectStreakNEQ applies the NEQ predicate on the "correct_streak" field.
func CorrectStreakNEQ(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldNEQ(FieldCorrectStreak, v))
}

// CorrectStreakIn applies the In predicate on the "correct_streak" field.
func CorrectStreakIn(vs ...int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldIn(FieldCorrectStreak, vs...))
}

// CorrectStreakNotIn applies the NotIn predicate on the "correct_streak" field.
func CorrectStreakNotIn(vs ...int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldNotIn(FieldCorrectStreak, vs...))
}

// CorrectStreakGT applies the GT predicate on the "correct_streak" field.
func CorrectStreakGT(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldGT(FieldCorrectStreak, v))
}

// CorrectStreakGTE applies the GTE predicate on the "correct_streak" field.
func CorrectStreakGTE(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldGTE(FieldCorrectStreak, v))
}

// CorrectStreakLT applies the LT predicate on the "correct_streak" field.
func CorrectStreakLT(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldLT(FieldCorrectStreak, v))
}

// CorrectStreakLTE applies the LTE predicate on the "correct_streak" field.
func CorrectStreakLTE(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldLTE(FieldCorrectStreak, v))
}

// WrongStreakEQ applies the EQ predicate on the "wrong_streak" field.
func WrongStreakEQ(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldEQ(FieldWrongStreak, v))
}

// WrongStreakNEQ applies the NEQ predicate on the "wrong_streak" field.
func WrongStreakNEQ(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldNEQ(FieldWrongStreak, v))
}

// WrongStreakIn applies the In predicate on the "wrong_streak" field.
func WrongStreakIn(vs ...int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldIn(FieldWrongStreak, vs...))
}

// WrongStreakNotIn applies the NotIn predicate on the "wrong_streak" field.
func WrongStreakNotIn(vs ...int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldNotIn(FieldWrongStreak, vs...))
}

// WrongStreakGT applies the GT predicate on the "wrong_streak" field.
func WrongStreakGT(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldGT(FieldWrongStreak, v))
}

// WrongStreakGTE applies the GTE predicate on the "wrong_streak" field.
func WrongStreakGTE(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldGTE(FieldWrongStreak, v))
}

// WrongStreakLT applies the LT predicate on the "wrong_streak" field.
func WrongStreakLT(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldLT(FieldWrongStreak, v))
}

// WrongStreakLTE applies the LTE predicate on the "wrong_streak" field.
func WrongStreakLTE(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldLTE(FieldWrongStreak, v))
}

// TotalAttemptsEQ applies the EQ predicate on the "total_attempts" field.
func TotalAttemptsEQ(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldEQ(FieldTotalAttempts, v))
}

// TotalAttemptsNEQ applies the NEQ predicate on the "total_attempts" field.
func TotalAttemptsNEQ(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldNEQ(FieldTotalAttempts, v))
}

// TotalAttemptsIn applies the In predicate on the "total_attempts" field.
func TotalAttemptsIn(vs ...int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsNotIn applies the NotIn predicate on the "total_attempts" field.
func TotalAttemptsNotIn(vs ...int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldNotIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsGT applies the GT predicate on the "total_attempts" field.
func TotalAttemptsGT(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldGT(FieldTotalAttempts, v))
}

// TotalAttemptsGTE applies the GTE predicate on the "total_attempts" field.
func TotalAttemptsGTE(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldGTE(FieldTotalAttempts, v))
}

// TotalAttemptsLT applies the LT predicate on the "total_attempts" field.
func TotalAttemptsLT(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldLT(FieldTotalAttempts, v))
}

// TotalAttemptsLTE applies the LTE predicate on the "total_attempts" field.
func TotalAttemptsLTE(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldLTE(FieldTotalAttempts, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.FieldLTE(FieldCorrectAnswers, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudentDifficulty) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudentDifficulty) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudentDifficulty) predicate.StudentDifficulty {
	return predicate.StudentDifficulty(sql.NotPredicates(p))
}
