package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TransitionEvent is the append-only audit record of one answer-driven
// state transition. Written once per answer, never mutated; the
// research export reads it back in sequence order.
type TransitionEvent struct {
	ent.Schema
}

func (TransitionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TransitionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").Optional(),
		field.String("student_id").NotEmpty(),
		field.String("chapter_id").NotEmpty(),
		field.String("question_id").Optional(),
		field.Int("prev_level"),
		field.Float("prev_mastery"),
		field.Int("new_level"),
		field.Float("new_mastery"),
		field.String("action").NotEmpty(),
		field.String("reason").NotEmpty(),
		field.Int("reward"),
		field.Bool("correct"),
		field.Int64("time_spent_ms"),
	}
}

func (TransitionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("chapter_id"),
		index.Fields("action"),
	}
}
