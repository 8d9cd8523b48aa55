// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/PTMAbellana/Polegion-sub002/ent/studentdifficulty"
)

// StudentDifficulty is the model entity for the StudentDifficulty schema.
type StudentDifficulty struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// ChapterID holds the value of the "chapter_id" field.
	ChapterID string `json:"chapter_id,omitempty"`
	// DifficultyLevel holds the value of the "difficulty_level" field.
	DifficultyLevel int `json:"difficulty_level,omitempty"`
	// MasteryLevel holds the value of the "mastery_level" field.
	MasteryLevel float64 `json:"mastery_level,omitempty"`
	// CorrectStreak holds the value of the "correct_streak" field.
	CorrectStreak int `json:"correct_streak,omitempty"`
	// WrongStreak holds the value of the "wrong_streak" field.
	WrongStreak int `json:"wrong_streak,omitempty"`
	// TotalAttempts holds the value of the "total_attempts" field.
	TotalAttempts int `json:"total_attempts,omitempty"`
	// CorrectAnswers holds the value of the "correct_answers" field.
	CorrectAnswers int `json:"correct_answers,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudentDifficulty) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studentdifficulty.FieldMasteryLevel:
			values[i] = new(sql.NullFloat64)
		case studentdifficulty.FieldID, studentdifficulty.FieldDifficultyLevel, studentdifficulty.FieldCorrectStreak, studentdifficulty.FieldWrongStreak, studentdifficulty.FieldTotalAttempts, studentdifficulty.FieldCorrectAnswers:
			values[i] = new(sql.NullInt64)
		case studentdifficulty.FieldStudentID, studentdifficulty.FieldChapterID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudentDifficulty fields.
func (_m *StudentDifficulty) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studentdifficulty.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case studentdifficulty.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case studentdifficulty.FieldChapterID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_id", values[i])
			} else if value.Valid {
				_m.ChapterID = value.String
			}
		case studentdifficulty.FieldDifficultyLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_level", values[i])
			} else if value.Valid {
				_m.DifficultyLevel = int(value.Int64)
			}
		case studentdifficulty.FieldMasteryLevel:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_level", values[i])
			} else if value.Valid {
				_m.MasteryLevel = value.Float64
			}
		case studentdifficulty.FieldCorrectStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_streak", values[i])
			} else if value.Valid {
				_m.CorrectStreak = int(value.Int64)
			}
		case studentdifficulty.FieldWrongStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field wrong_streak", values[i])
			} else if value.Valid {
				_m.WrongStreak = int(value.Int64)
			}
		case studentdifficulty.FieldTotalAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_attempts", values[i])
			} else if value.Valid {
				_m.TotalAttempts = int(value.Int64)
			}
		case studentdifficulty.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				_m.CorrectAnswers = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudentDifficulty.
// This includes values selected through modifiers, order, etc.
func (_m *StudentDifficulty) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StudentDifficulty.
// Note that you need to call StudentDifficulty.Unwrap() before calling this method if this StudentDifficulty
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudentDifficulty) Update() *StudentDifficultyUpdateOne {
	return NewStudentDifficultyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudentDifficulty entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudentDifficulty) Unwrap() *StudentDifficulty {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudentDifficulty is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudentDifficulty) String() string {
	var builder strings.Builder
	builder.WriteString("StudentDifficulty(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("chapter_id=")
	builder.WriteString(_m.ChapterID)
	builder.WriteString(", ")
	builder.WriteString("difficulty_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.DifficultyLevel))
	builder.WriteString(", ")
	builder.WriteString("mastery_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryLevel))
	builder.WriteString(", ")
	builder.WriteString("correct_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectStreak))
	builder.WriteString(", ")
	builder.WriteString("wrong_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.WrongStreak))
	builder.WriteString(", ")
	builder.WriteString("total_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAttempts))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteByte(')')
	return builder.String()
}

// StudentDifficulties is a parsable slice of StudentDifficulty.
type StudentDifficulties []*StudentDifficulty
