// Code generated by ent, DO NOT EDIT.

package transitionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/PTMAbellana/Polegion-sub002/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldSessionID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldStudentID, v))
}

// ChapterID applies equality check predicate on the "chapter_id" field. It's identical to ChapterIDEQ.
func ChapterID(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldChapterID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldQuestionID, v))
}

// PrevLevel applies equality check predicate on the "prev_level" field. It's identical to PrevLevelEQ.
func PrevLevel(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldPrevLevel, v))
}

// PrevMastery applies equality check predicate on the "prev_mastery" field. It's identical to PrevMasteryEQ.
func PrevMastery(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldPrevMastery, v))
}

// NewLevel applies equality check predicate on the "new_level" field. It's identical to NewLevelEQ.
func NewLevel(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldNewLevel, v))
}

// NewMastery applies equality check predicate on the "new_mastery" field. It's identical to NewMasteryEQ.
func NewMastery(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldNewMastery, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldAction, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldReason, v))
}

// Reward applies equality check predicate on the "reward" field. It's identical to RewardEQ.
func Reward(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldReward, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldCorrect, v))
}

// TimeSpentMs applies equality check predicate on the "time_spent_ms" field. It's identical to TimeSpentMsEQ.
func TimeSpentMs(v int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldTimeSpentMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldContainsFold(FieldStudentID, v))
}

// ChapterIDEQ applies the EQ predicate on the "chapter_id" field.
func ChapterIDEQ(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldChapterID, v))
}

// ChapterIDNEQ applies the NEQ predicate on the "chapter_id" field.
func ChapterIDNEQ(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldChapterID, v))
}

// ChapterIDIn applies the In predicate on the "chapter_id" field.
func ChapterIDIn(vs ...string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldChapterID, vs...))
}

// ChapterIDNotIn applies the NotIn predicate on the "chapter_id" field.
func ChapterIDNotIn(vs ...string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldChapterID, vs...))
}

// ChapterIDGT applies the GT predicate on the "chapter_id" field.
func ChapterIDGT(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldChapterID, v))
}

// ChapterIDGTE applies the GTE predicate on the "chapter_id" field.
func ChapterIDGTE(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldChapterID, v))
}

// ChapterIDLT applies the LT predicate on the "chapter_id" field.
func ChapterIDLT(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldChapterID, v))
}

// ChapterIDLTE applies the LTE predicate on the "chapter_id" field.
func ChapterIDLTE(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldChapterID, v))
}

// ChapterIDContains applies the Contains predicate on the "chapter_id" field.
func ChapterIDContains(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldContains(FieldChapterID, v))
}

// ChapterIDHasPrefix applies the HasPrefix predicate on the "chapter_id" field.
func ChapterIDHasPrefix(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldHasPrefix(FieldChapterID, v))
}

// ChapterIDHasSuffix applies the HasSuffix predicate on the "chapter_id" field.
func ChapterIDHasSuffix(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldHasSuffix(FieldChapterID, v))
}

// ChapterIDEqualFold applies the EqualFold predicate on the "chapter_id" field.
func ChapterIDEqualFold(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEqualFold(FieldChapterID, v))
}

// ChapterIDContainsFold applies the ContainsFold predicate on the "chapter_id" field.
func ChapterIDContainsFold(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldContainsFold(FieldChapterID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDIsNil applies the IsNil predicate on the "question_id" field.
func QuestionIDIsNil() predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIsNull(FieldQuestionID))
}

// QuestionIDNotNil applies the NotNil predicate on the "question_id" field.
func QuestionIDNotNil() predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotNull(FieldQuestionID))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// PrevLevelEQ applies the EQ predicate on the "prev_level" field.
func PrevLevelEQ(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldPrevLevel, v))
}

// PrevLevelNEQ applies the NEQ predicate on the "prev_level" field.
func PrevLevelNEQ(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldPrevLevel, v))
}

// PrevLevelIn applies the In predicate on the "prev_level" field.
func PrevLevelIn(vs ...int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldPrevLevel, vs...))
}

// PrevLevelNotIn applies the NotIn predicate on the "prev_level" field.
func PrevLevelNotIn(vs ...int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldPrevLevel, vs...))
}

// PrevLevelGT applies the GT predicate on the "prev_level" field.
func PrevLevelGT(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldPrevLevel, v))
}

// PrevLevelGTE applies the GTE predicate on the "prev_level" field.
func PrevLevelGTE(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldPrevLevel, v))
}

// PrevLevelLT applies the LT predicate on the "prev_level" field.
func PrevLevelLT(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldPrevLevel, v))
}

// PrevLevelLTE applies the LTE predicate on the "prev_level" field.
func PrevLevelLTE(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldPrevLevel, v))
}

// PrevMasteryEQ applies the EQ predicate on the "prev_mastery" field.
func PrevMasteryEQ(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldPrevMastery, v))
}

// PrevMasteryNEQ applies the NEQ predicate on the "prev_mastery" field.
func PrevMasteryNEQ(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldPrevMastery, v))
}

// PrevMasteryIn applies the In predicate on the "prev_mastery" field.
func PrevMasteryIn(vs ...float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldPrevMastery, vs...))
}

// PrevMasteryNotIn applies the NotIn predicate on the "prev_mastery" field.
func PrevMasteryNotIn(vs ...float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldPrevMastery, vs...))
}

// PrevMasteryGT applies the GT predicate on the "prev_mastery" field.
func PrevMasteryGT(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldPrevMastery, v))
}

// PrevMasteryGTE applies the GTE predicate on the "prev_mastery" field.
func PrevMasteryGTE(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldPrevMastery, v))
}

// PrevMasteryLT applies the LT predicate on the "prev_mastery" field.
func PrevMasteryLT(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldPrevMastery, v))
}

// PrevMasteryLTE applies the LTE predicate on the "prev_mastery" field.
func PrevMasteryLTE(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldPrevMastery, v))
}

// NewLevelEQ applies the EQ predicate on the "new_level" field.
func NewLevelEQ(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldNewLevel, v))
}

// NewLevelNEQ applies the NEQ predicate on the "new_level" field.
func NewLevelNEQ(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldNewLevel, v))
}

// NewLevelIn applies the In predicate on the "new_level" field.
func NewLevelIn(vs ...int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldNewLevel, vs...))
}

// NewLevelNotIn applies the NotIn predicate on the "new_level" field.
func NewLevelNotIn(vs ...int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldNewLevel, vs...))
}

// NewLevelGT applies the GT predicate on the "new_level" field.
func NewLevelGT(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldNewLevel, v))
}

// NewLevelGTE applies the GTE predicate on the "new_level" field.
func NewLevelGTE(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldNewLevel, v))
}

// NewLevelLT applies the LT predicate on the "new_level" field.
func NewLevelLT(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldNewLevel, v))
}

// NewLevelLTE applies the LTE predicate on the "new_level" field.
func NewLevelLTE(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldNewLevel, v))
}

// NewMasteryEQ applies the EQ predicate on the "new_mastery" field.
func NewMasteryEQ(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldNewMastery, v))
}

// NewMasteryNEQ applies the NEQ predicate on the "new_mastery" field.
func NewMasteryNEQ(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldNewMastery, v))
}

// NewMasteryIn applies the In predicate on the "new_mastery" field.
func NewMasteryIn(vs ...float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldNewMastery, vs...))
}

// NewMasteryNotIn applies the NotIn predicate on the "new_mastery" field.
func NewMasteryNotIn(vs ...float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldNewMastery, vs...))
}

// NewMasteryGT applies the GT predicate on the "new_mastery" field.
func NewMasteryGT(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldNewMastery, v))
}

// NewMasteryGTE applies the GTE predicate on the "new_mastery" field.
func NewMasteryGTE(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldNewMastery, v))
}

// NewMasteryLT applies the LT predicate on the "new_mastery" field.
func NewMasteryLT(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldNewMastery, v))
}

// NewMasteryLTE applies the LTE predicate on the "new_mastery" field.
func NewMasteryLTE(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldNewMastery, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldContainsFold(FieldAction, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldContainsFold(FieldReason, v))
}

// RewardEQ applies the EQ predicate on the "reward" field.
func RewardEQ(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldReward, v))
}

// RewardNEQ applies the NEQ predicate on the "reward" field.
func RewardNEQ(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldReward, v))
}

// RewardIn applies the In predicate on the "reward" field.
func RewardIn(vs ...int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldReward, vs...))
}

// RewardNotIn applies the NotIn predicate on the "reward" field.
func RewardNotIn(vs ...int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldReward, vs...))
}

// RewardGT applies the GT predicate on the "reward" field.
func RewardGT(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldReward, v))
}

// RewardGTE applies the GTE predicate on the "reward" field.
func RewardGTE(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldReward, v))
}

// RewardLT applies the LT predicate on the "reward" field.
func RewardLT(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldReward, v))
}

// RewardLTE applies the LTE predicate on the "reward" field.
func RewardLTE(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldReward, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldCorrect, v))
}

// TimeSpentMsEQ applies the EQ predicate on the "time_spent_ms" field.
func TimeSpentMsEQ(v int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldTimeSpentMs, v))
}

// TimeSpentMsNEQ applies the NEQ predicate on the "time_spent_ms" field.
func TimeSpentMsNEQ(v int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldTimeSpentMs, v))
}

// TimeSpentMsIn applies the In predicate on the "time_spent_ms" field.
func TimeSpentMsIn(vs ...int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldTimeSpentMs, vs...))
}

// TimeSpentMsNotIn applies the NotIn predicate on the "time_spent_ms" field.
func TimeSpentMsNotIn(vs ...int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldTimeSpentMs, vs...))
}

// TimeSpentMsGT applies the GT predicate on the "time_spent_ms" field.
func TimeSpentMsGT(v int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldTimeSpentMs, v))
}

// TimeSpentMsGTE applies the GTE predicate on the "time_spent_ms" field.
func TimeSpentMsGTE(v int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldTimeSpentMs, v))
}

// TimeSpentMsLT applies the LT predicate on the "time_spent_ms" field.
func TimeSpentMsLT(v int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldTimeSpentMs, v))
}

// TimeSpentMsLTE applies the LTE predicate on the "time_spent_ms" field.
func TimeSpentMsLTE(v int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldTimeSpentMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TransitionEvent) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TransitionEvent) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TransitionEvent) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.NotPredicates(p))
}
