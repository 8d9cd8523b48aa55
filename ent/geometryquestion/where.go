// Code generated by ent, DO NOT EDIT.

package geometryquestion

import (
	"entgo.io/ent/dialect/sql"
	"github.com/PTMAbellana/Polegion-sub002/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldLTE(FieldID, id))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldEQ(FieldQuestionID, v))
}

// ChapterID applies equality check predicate on the "chapter_id" field. It's identical to ChapterIDEQ.
func ChapterID(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldEQ(FieldChapterID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldEQ(FieldTopic, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldEQ(FieldDifficulty, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldEQ(FieldText, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldContainsFold(FieldQuestionID, v))
}

// ChapterIDEQ applies the EQ predicate on the "chapter_id" field.
func ChapterIDEQ(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldEQ(FieldChapterID, v))
}

// ChapterIDNEQ applies the NEQ predicate on the "chapter_id" field.
func ChapterIDNEQ(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldNEQ(FieldChapterID, v))
}

// ChapterIDIn applies the In predicate on the "chapter_id" field.
func ChapterIDIn(vs ...string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldIn(FieldChapterID, vs...))
}

// ChapterIDNotIn applies the NotIn predicate on the "chapter_id" field.
func ChapterIDNotIn(vs ...string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldNotIn(FieldChapterID, vs...))
}

// ChapterIDGT applies the GT predicate on the "chapter_id" field.
func ChapterIDGT(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldGT(FieldChapterID, v))
}

// ChapterIDGTE applies the GTE predicate on the "chapter_id" field.
func ChapterIDGTE(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldGTE(FieldChapterID, v))
}

// ChapterIDLT applies the LT predicate on the "chapter_id" field.
func ChapterIDLT(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldLT(FieldChapterID, v))
}

// ChapterIDLTE applies the LTE predicate on the "chapter_id" field.
func ChapterIDLTE(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldLTE(FieldChapterID, v))
}

// ChapterIDContains applies the Contains predicate on the "chapter_id" field.
func ChapterIDContains(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldContains(FieldChapterID, v))
}

// ChapterIDHasPrefix applies the HasPrefix predicate on the "chapter_id" field.
func ChapterIDHasPrefix(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldHasPrefix(FieldChapterID, v))
}

// ChapterIDHasSuffix applies the HasSuffix predicate on the "chapter_id" field.
func ChapterIDHasSuffix(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldHasSuffix(FieldChapterID, v))
}

// ChapterIDEqualFold applies the EqualFold predicate on the "chapter_id" field.
func ChapterIDEqualFold(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldEqualFold(FieldChapterID, v))
}

// ChapterIDContainsFold applies the ContainsFold predicate on the "chapter_id" field.
func ChapterIDContainsFold(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldContainsFold(FieldChapterID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldContainsFold(FieldTopic, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldLTE(FieldDifficulty, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.FieldContainsFold(FieldText, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GeometryQuestion) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GeometryQuestion) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GeometryQuestion) predicate.GeometryQuestion {
	return predicate.GeometryQuestion(sql.NotPredicates(p))
}
