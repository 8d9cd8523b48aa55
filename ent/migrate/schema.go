// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GeometryQuestionsColumns holds the columns for the "geometry_questions" table.
	GeometryQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "chapter_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
	}
	// GeometryQuestionsTable holds the schema information for the "geometry_questions" table.
	GeometryQuestionsTable = &schema.Table{
		Name:       "geometry_questions",
		Columns:    GeometryQuestionsColumns,
		PrimaryKey: []*schema.Column{GeometryQuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "geometryquestion_chapter_id_difficulty",
				Unique:  false,
				Columns: []*schema.Column{GeometryQuestionsColumns[2], GeometryQuestionsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt},
		{Name: "output_tokens", Type: field.TypeInt},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "request_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// StudentDifficultiesColumns holds the columns for the "student_difficulties" table.
	StudentDifficultiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "chapter_id", Type: field.TypeString},
		{Name: "difficulty_level", Type: field.TypeInt, Default: 1},
		{Name: "mastery_level", Type: field.TypeFloat64, Default: 0},
		{Name: "correct_streak", Type: field.TypeInt, Default: 0},
		{Name: "wrong_streak", Type: field.TypeInt, Default: 0},
		{Name: "total_attempts", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
	}
	// StudentDifficultiesTable holds the schema information for the "student_difficulties" table.
	StudentDifficultiesTable = &schema.Table{
		Name:       "student_difficulties",
		Columns:    StudentDifficultiesColumns,
		PrimaryKey: []*schema.Column{StudentDifficultiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studentdifficulty_student_id_chapter_id",
				Unique:  true,
				Columns: []*schema.Column{StudentDifficultiesColumns[1], StudentDifficultiesColumns[2]},
			},
		},
	}
	// TransitionEventsColumns holds the columns for the "transition_events" table.
	TransitionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "chapter_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString, Nullable: true},
		{Name: "prev_level", Type: field.TypeInt},
		{Name: "prev_mastery", Type: field.TypeFloat64},
		{Name: "new_level", Type: field.TypeInt},
		{Name: "new_mastery", Type: field.TypeFloat64},
		{Name: "action", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
		{Name: "reward", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_spent_ms", Type: field.TypeInt64},
	}
	// TransitionEventsTable holds the schema information for the "transition_events" table.
	TransitionEventsTable = &schema.Table{
		Name:       "transition_events",
		Columns:    TransitionEventsColumns,
		PrimaryKey: []*schema.Column{TransitionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "transitionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TransitionEventsColumns[1]},
			},
			{
				Name:    "transitionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TransitionEventsColumns[2]},
			},
			{
				Name:    "transitionevent_student_id",
				Unique:  false,
				Columns: []*schema.Column{TransitionEventsColumns[4]},
			},
			{
				Name:    "transitionevent_chapter_id",
				Unique:  false,
				Columns: []*schema.Column{TransitionEventsColumns[5]},
			},
			{
				Name:    "transitionevent_action",
				Unique:  false,
				Columns: []*schema.Column{TransitionEventsColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GeometryQuestionsTable,
		LlmRequestEventsTable,
		StudentDifficultiesTable,
		TransitionEventsTable,
	}
)

func init() {
}
