// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/PTMAbellana/Polegion-sub002/ent/transitionevent"
)

// TransitionEvent is the model entity for the TransitionEvent schema.
type TransitionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// ChapterID holds the value of the "chapter_id" field.
	ChapterID string `json:"chapter_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// PrevLevel holds the value of the "prev_level" field.
	PrevLevel int `json:"prev_level,omitempty"`
	// PrevMastery holds the value of the "prev_mastery" field.
	PrevMastery float64 `json:"prev_mastery,omitempty"`
	// NewLevel holds the value of the "new_level" field.
	NewLevel int `json:"new_level,omitempty"`
	// NewMastery holds the value of the "new_mastery" field.
	NewMastery float64 `json:"new_mastery,omitempty"`
	// Action holds the value of the "action" field.
	Action string `json:"action,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// Reward holds the value of the "reward" field.
	Reward int `json:"reward,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct bool `json:"correct,omitempty"`
	// TimeSpentMs holds the value of the "time_spent_ms" field.
	TimeSpentMs  int64 `json:"time_spent_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TransitionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case transitionevent.FieldCorrect:
			values[i] = new(sql.NullBool)
		case transitionevent.FieldPrevMastery, transitionevent.FieldNewMastery:
			values[i] = new(sql.NullFloat64)
		case transitionevent.FieldID, transitionevent.FieldSequence, transitionevent.FieldPrevLevel, transitionevent.FieldNewLevel, transitionevent.FieldReward, transitionevent.FieldTimeSpentMs:
			values[i] = new(sql.NullInt64)
		case transitionevent.FieldSessionID, transitionevent.FieldStudentID, transitionevent.FieldChapterID, transitionevent.FieldQuestionID, transitionevent.FieldAction, transitionevent.FieldReason:
			values[i] = new(sql.NullString)
		case transitionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TransitionEvent fields.
func (_m *TransitionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case transitionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case transitionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case transitionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case transitionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case transitionevent.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case transitionevent.FieldChapterID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_id", values[i])
			} else if value.Valid {
				_m.ChapterID = value.String
			}
		case transitionevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case transitionevent.FieldPrevLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prev_level", values[i])
			} else if value.Valid {
				_m.PrevLevel = int(value.Int64)
			}
		case transitionevent.FieldPrevMastery:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field prev_mastery", values[i])
			} else if value.Valid {
				_m.PrevMastery = value.Float64
			}
		case transitionevent.FieldNewLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field new_level", values[i])
			} else if value.Valid {
				_m.NewLevel = int(value.Int64)
			}
		case transitionevent.FieldNewMastery:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field new_mastery", values[i])
			} else if value.Valid {
				_m.NewMastery = value.Float64
			}
		case transitionevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case transitionevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case transitionevent.FieldReward:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reward", values[i])
			} else if value.Valid {
				_m.Reward = int(value.Int64)
			}
		case transitionevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case transitionevent.FieldTimeSpentMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_ms", values[i])
			} else if value.Valid {
				_m.TimeSpentMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TransitionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TransitionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TransitionEvent.
// Note that you need to call TransitionEvent.Unwrap() before calling this method if this TransitionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TransitionEvent) Update() *TransitionEventUpdateOne {
	return NewTransitionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TransitionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TransitionEvent) Unwrap() *TransitionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TransitionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TransitionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TransitionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("chapter_id=")
	builder.WriteString(_m.ChapterID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("prev_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrevLevel))
	builder.WriteString(", ")
	builder.WriteString("prev_mastery=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrevMastery))
	builder.WriteString(", ")
	builder.WriteString("new_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewLevel))
	builder.WriteString(", ")
	builder.WriteString("new_mastery=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewMastery))
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("reward=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reward))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("time_spent_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentMs))
	builder.WriteByte(')')
	return builder.String()
}

// TransitionEvents is a parsable slice of TransitionEvent.
type TransitionEvents []*TransitionEvent
