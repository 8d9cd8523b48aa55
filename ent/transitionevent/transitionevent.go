// Code generated by ent, DO NOT EDIT.

package transitionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the transitionevent type in the database.
	Label = "transition_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldChapterID holds the string denoting the chapter_id field in the database.
	FieldChapterID = "chapter_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldPrevLevel holds the string denoting the prev_level field in the database.
	FieldPrevLevel = "prev_level"
	// FieldPrevMastery holds the string denoting the prev_mastery field in the database.
	FieldPrevMastery = "prev_mastery"
	// FieldNewLevel holds the string denoting the new_level field in the database.
	FieldNewLevel = "new_level"
	// FieldNewMastery holds the string denoting the new_mastery field in the database.
	FieldNewMastery = "new_mastery"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldReward holds the string denoting the reward field in the database.
	FieldReward = "reward"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldTimeSpentMs holds the string denoting the time_spent_ms field in the database.
	FieldTimeSpentMs = "time_spent_ms"
	// Table holds the table name of the transitionevent in the database.
	Table = "transition_events"
)

// Columns holds all SQL columns for transitionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldStudentID,
	FieldChapterID,
	FieldQuestionID,
	FieldPrevLevel,
	FieldPrevMastery,
	FieldNewLevel,
	FieldNewMastery,
	FieldAction,
	FieldReason,
	FieldReward,
	FieldCorrect,
	FieldTimeSpentMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// ChapterIDValidator is a validator for the "chapter_id" field. It is called by the builders before save.
	ChapterIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	ReasonValidator func(string) error
)

// OrderOption defines the ordering options for the TransitionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByChapterID orders the results by the chapter_id field.
func ByChapterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapterID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByPrevLevel orders the results by the prev_level field.
func ByPrevLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrevLevel, opts...).ToFunc()
}

// ByPrevMastery orders the results by the prev_mastery field.
func ByPrevMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrevMastery, opts...).ToFunc()
}

// ByNewLevel orders the results by the new_level field.
func ByNewLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewLevel, opts...).ToFunc()
}

// ByNewMastery orders the results by the new_mastery field.
func ByNewMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewMastery, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByReward orders the results by the reward field.
func ByReward(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReward, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByTimeSpentMs orders the results by the time_spent_ms field.
func ByTimeSpentMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentMs, opts...).ToFunc()
}
