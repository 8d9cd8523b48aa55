package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent records a single AI provider call for quota auditing
// and cost analysis.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").NotEmpty(),
		field.String("model").NotEmpty(),
		field.String("purpose").NotEmpty(),
		field.Int("input_tokens"),
		field.Int("output_tokens"),
		field.Int64("latency_ms"),
		field.Bool("success"),
		field.String("error_message").Optional(),
		field.Text("request_body").Optional(),
		field.Text("response_body").Optional(),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
