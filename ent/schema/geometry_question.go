package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GeometryQuestion is a curated question-pool entry served to students
// below the AI generation threshold.
type GeometryQuestion struct {
	ent.Schema
}

func (GeometryQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			NotEmpty().
			Unique(),
		field.String("chapter_id").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.Int("difficulty").
			Min(1).
			Max(5),
		field.Text("text").NotEmpty(),
	}
}

func (GeometryQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chapter_id", "difficulty"),
	}
}
