// Code generated by ent, DO NOT EDIT.

package studentdifficulty

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the studentdifficulty type in the database.
	Label = "student_difficulty"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldChapterID holds the string denoting the chapter_id field in the database.
	FieldChapterID = "chapter_id"
	// FieldDifficultyLevel holds the string denoting the difficulty_level field in the database.
	FieldDifficultyLevel = "difficulty_level"
	// FieldMasteryLevel holds the string denoting the mastery_level field in the database.
	FieldMasteryLevel = "mastery_level"
	// FieldCorrectStreak holds the string denoting the correct_streak field in the database.
	FieldCorrectStreak = "correct_streak"
	// FieldWrongStreak holds the string denoting the wrong_streak field in the database.
	FieldWrongStreak = "wrong_streak"
	// FieldTotalAttempts holds the string denoting the total_attempts field in the database.
	FieldTotalAttempts = "total_attempts"
	// FieldCorrectAnswers holds the string denoting the correct_answers field in the database.
	FieldCorrectAnswers = "correct_answers"
	// Table holds the table name of the studentdifficulty in the database.
	Table = "student_difficulties"
)

// Columns holds all SQL columns for studentdifficulty fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldChapterID,
	FieldDifficultyLevel,
	FieldMasteryLevel,
	FieldCorrectStreak,
	FieldWrongStreak,
	FieldTotalAttempts,
	FieldCorrectAnswers,
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
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// ChapterIDValidator is a validator for the "chapter_id" field. It is called by the builders before save.
	ChapterIDValidator func(string) error
	// DefaultDifficultyLevel holds the default value on creation for the "difficulty_level" field.
	DefaultDifficultyLevel int
	// DifficultyLevelValidator is a validator for the "difficulty_level" field. It is called by the builders before save.
	DifficultyLevelValidator func(int) error
	// DefaultMasteryLevel holds the default value on creation for the "mastery_level" field.
	DefaultMasteryLevel float64
	// MasteryLevelValidator is a validator for the "mastery_level" field. It is called by the builders before save.
	MasteryLevelValidator func(float64) error
	// DefaultCorrectStreak holds the default value on creation for the "correct_streak" field.
	DefaultCorrectStreak int
	// CorrectStreakValidator is a validator for the "correct_streak" field. It is called by the builders before save.
	CorrectStreakValidator func(int) error
	// DefaultWrongStreak holds the default value on creation for the "wrong_streak" field.
	DefaultWrongStreak int
	// WrongStreakValidator is a validator for the "wrong_streak" field. It is called by the builders before save.
	WrongStreakValidator func(int) error
	// DefaultTotalAttempts holds the default value on creation for the "total_attempts" field.
	DefaultTotalAttempts int
	// TotalAttemptsValidator is a validator for the "total_attempts" field. It is called by the builders before save.
	TotalAttemptsValidator func(int) error
	// DefaultCorrectAnswers holds the default value on creation for the "correct_answers" field.
	DefaultCorrectAnswers int
	// CorrectAnswersValidator is a validator for the "correct_answers" field. It is called by the builders before save.
	CorrectAnswersValidator func(int) error
)

// OrderOption defines the ordering options for the StudentDifficulty queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByChapterID orders the results by the chapter_id field.
func ByChapterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapterID, opts...).ToFunc()
}

// ByDifficultyLevel orders the results by the difficulty_level field.
func ByDifficultyLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyLevel, opts...).ToFunc()
}

// ByMasteryLevel orders the results by the mastery_level field.
func ByMasteryLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryLevel, opts...).ToFunc()
}

// ByCorrectStreak orders the results by the correct_streak field.
func ByCorrectStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectStreak, opts...).ToFunc()
}

// ByWrongStreak orders the results by the wrong_streak field.
func ByWrongStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWrongStreak, opts...).ToFunc()
}

// ByTotalAttempts orders the results by the total_attempts field.
func ByTotalAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAttempts, opts...).ToFunc()
}

// ByCorrectAnswers orders the results by the correct_answers field.
func ByCorrectAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswers, opts...).ToFunc()
}
