package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudentDifficulty is the per-student, per-chapter performance and
// difficulty record. One row per (student, chapter) pair, created
// lazily on the first answer and mutated on every submission.
type StudentDifficulty struct {
	ent.Schema
}

func (StudentDifficulty) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").NotEmpty(),
		field.String("chapter_id").NotEmpty(),
		field.Int("difficulty_level").
			Default(1).
			Min(1).
			Max(5),
		field.Float("mastery_level").
			Default(0).
			Min(0).
			Max(100),
		field.Int("correct_streak").
			Default(0).
			NonNegative(),
		field.Int("wrong_streak").
			Default(0).
			NonNegative(),
		field.Int("total_attempts").
			Default(0).
			NonNegative(),
		field.Int("correct_answers").
			Default(0).
			NonNegative(),
	}
}

func (StudentDifficulty) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "chapter_id").Unique(),
	}
}
