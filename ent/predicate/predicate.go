// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// GeometryQuestion is the predicate function for geometryquestion builders.
type GeometryQuestion func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// StudentDifficulty is the predicate function for studentdifficulty builders.
type StudentDifficulty func(*sql.Selector)

// TransitionEvent is the predicate function for transitionevent builders.
type TransitionEvent func(*sql.Selector)
