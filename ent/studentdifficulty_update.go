// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/PTMAbellana/Polegion-sub002/ent/predicate"
	"github.com/PTMAbellana/Polegion-sub002/ent/studentdifficulty"
)

// StudentDifficultyUpdate is the builder for updating StudentDifficulty entities.
type StudentDifficultyUpdate struct {
	config
	hooks    []Hook
	mutation *StudentDifficultyMutation
}

// Where appends a list predicates to the StudentDifficultyUpdate builder.
func (_u *StudentDifficultyUpdate) Where(ps ...predicate.StudentDifficulty) *StudentDifficultyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *StudentDifficultyUpdate) SetStudentID(v string) *StudentDifficultyUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *StudentDifficultyUpdate) SetNillableStudentID(v *string) *StudentDifficultyUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetChapterID sets the "chapter_id" field.
func (_u *StudentDifficultyUpdate) SetChapterID(v string) *StudentDifficultyUpdate {
	_u.mutation.SetChapterID(v)
	return _u
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_u *StudentDifficultyUpdate) SetNillableChapterID(v *string) *StudentDifficultyUpdate {
	if v != nil {
		_u.SetChapterID(*v)
	}
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *StudentDifficultyUpdate) SetDifficultyLevel(v int) *StudentDifficultyUpdate {
	_u.mutation.ResetDifficultyLevel()
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *StudentDifficultyUpdate) SetNillableDifficultyLevel(v *int) *StudentDifficultyUpdate {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// AddDifficultyLevel adds value to the "difficulty_level" field.
func (_u *StudentDifficultyUpdate) AddDifficultyLevel(v int) *StudentDifficultyUpdate {
	_u.mutation.AddDifficultyLevel(v)
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *StudentDifficultyUpdate) SetMasteryLevel(v float64) *StudentDifficultyUpdate {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *StudentDifficultyUpdate) SetNillableMasteryLevel(v *float64) *StudentDifficultyUpdate {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *StudentDifficultyUpdate) AddMasteryLevel(v float64) *StudentDifficultyUpdate {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetCorrectStreak sets the "correct_streak" field.
func (_u *StudentDifficultyUpdate) SetCorrectStreak(v int) *StudentDifficultyUpdate {
	_u.mutation.ResetCorrectStreak()
	_u.mutation.SetCorrectStreak(v)
	return _u
}

// SetNillableCorrectStreak sets the "correct_streak" field if the given value is not nil.
func (_u *StudentDifficultyUpdate) SetNillableCorrectStreak(v *int) *StudentDifficultyUpdate {
	if v != nil {
		_u.SetCorrectStreak(*v)
	}
	return _u
}

// AddCorrectStreak adds value to the "correct_streak" field.
func (_u *StudentDifficultyUpdate) AddCorrectStreak(v int) *StudentDifficultyUpdate {
	_u.mutation.AddCorrectStreak(v)
	return _u
}

// SetWrongStreak sets the "wrong_streak" field.
func (_u *StudentDifficultyUpdate) SetWrongStreak(v int) *StudentDifficultyUpdate {
	_u.mutation.ResetWrongStreak()
	_u.mutation.SetWrongStreak(v)
	return _u
}

// SetNillableWrongStreak sets the "wrong_streak" field if the given value is not nil.
func (_u *StudentDifficultyUpdate) SetNillableWrongStreak(v *int) *StudentDifficultyUpdate {
	if v != nil {
		_u.SetWrongStreak(*v)
	}
	return _u
}

// AddWrongStreak adds value to the "wrong_streak" field.
func (_u *StudentDifficultyUpdate) AddWrongStreak(v int) *StudentDifficultyUpdate {
	_u.mutation.AddWrongStreak(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *StudentDifficultyUpdate) SetTotalAttempts(v int) *StudentDifficultyUpdate {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *StudentDifficultyUpdate) SetNillableTotalAttempts(v *int) *StudentDifficultyUpdate {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *StudentDifficultyUpdate) AddTotalAttempts(v int) *StudentDifficultyUpdate {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *StudentDifficultyUpdate) SetCorrectAnswers(v int) *StudentDifficultyUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *StudentDifficultyUpdate) SetNillableCorrectAnswers(v *int) *StudentDifficultyUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *StudentDifficultyUpdate) AddCorrectAnswers(v int) *StudentDifficultyUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// Mutation returns the StudentDifficultyMutation object of the builder.
func (_u *StudentDifficultyUpdate) Mutation() *StudentDifficultyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudentDifficultyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentDifficultyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudentDifficultyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentDifficultyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentDifficultyUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := studentdifficulty.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChapterID(); ok {
		if err := studentdifficulty.ChapterIDValidator(v); err != nil {
			return &ValidationError{Name: "chapter_id", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.chapter_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DifficultyLevel(); ok {
		if err := studentdifficulty.DifficultyLevelValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_level", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.difficulty_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MasteryLevel(); ok {
		if err := studentdifficulty.MasteryLevelValidator(v); err != nil {
			return &ValidationError{Name: "mastery_level", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.mastery_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectStreak(); ok {
		if err := studentdifficulty.CorrectStreakValidator(v); err != nil {
			return &ValidationError{Name: "correct_streak", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.correct_streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WrongStreak(); ok {
		if err := studentdifficulty.WrongStreakValidator(v); err != nil {
			return &ValidationError{Name: "wrong_streak", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.wrong_streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAttempts(); ok {
		if err := studentdifficulty.TotalAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "total_attempts", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.total_attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswers(); ok {
		if err := studentdifficulty.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.correct_answers": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentDifficultyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studentdifficulty.Table, studentdifficulty.Columns, sqlgraph.NewFieldSpec(studentdifficulty.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(studentdifficulty.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChapterID(); ok {
		_spec.SetField(studentdifficulty.FieldChapterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(studentdifficulty.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyLevel(); ok {
		_spec.AddField(studentdifficulty.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(studentdifficulty.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(studentdifficulty.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CorrectStreak(); ok {
		_spec.SetField(studentdifficulty.FieldCorrectStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectStreak(); ok {
		_spec.AddField(studentdifficulty.FieldCorrectStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WrongStreak(); ok {
		_spec.SetField(studentdifficulty.FieldWrongStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrongStreak(); ok {
		_spec.AddField(studentdifficulty.FieldWrongStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(studentdifficulty.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(studentdifficulty.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(studentdifficulty.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(studentdifficulty.FieldCorrectAnswers, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentdifficulty.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudentDifficultyUpdateOne is the builder for updating a single StudentDifficulty entity.
type StudentDifficultyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudentDifficultyMutation
}

// SetStudentID sets the "student_id" field.
func (_u *StudentDifficultyUpdateOne) SetStudentID(v string) *StudentDifficultyUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *StudentDifficultyUpdateOne) SetNillableStudentID(v *string) *StudentDifficultyUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetChapterID sets the "chapter_id" field.
func (_u *StudentDifficultyUpdateOne) SetChapterID(v string) *StudentDifficultyUpdateOne {
	_u.mutation.SetChapterID(v)
	return _u
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_u *StudentDifficultyUpdateOne) SetNillableChapterID(v *string) *StudentDifficultyUpdateOne {
	if v != nil {
		_u.SetChapterID(*v)
	}
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *StudentDifficultyUpdateOne) SetDifficultyLevel(v int) *StudentDifficultyUpdateOne {
	_u.mutation.ResetDifficultyLevel()
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *StudentDifficultyUpdateOne) SetNillableDifficultyLevel(v *int) *StudentDifficultyUpdateOne {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// AddDifficultyLevel adds value to the "difficulty_level" field.
func (_u *StudentDifficultyUpdateOne) AddDifficultyLevel(v int) *StudentDifficultyUpdateOne {
	_u.mutation.AddDifficultyLevel(v)
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *StudentDifficultyUpdateOne) SetMasteryLevel(v float64) *StudentDifficultyUpdateOne {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *StudentDifficultyUpdateOne) SetNillableMasteryLevel(v *float64) *StudentDifficultyUpdateOne {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *StudentDifficultyUpdateOne) AddMasteryLevel(v float64) *StudentDifficultyUpdateOne {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetCorrectStreak sets the "correct_streak" field.
func (_u *StudentDifficultyUpdateOne) SetCorrectStreak(v int) *StudentDifficultyUpdateOne {
	_u.mutation.ResetCorrectStreak()
	_u.mutation.SetCorrectStreak(v)
	return _u
}

// SetNillableCorrectStreak sets the "correct_streak" field if the given value is not nil.
func (_u *StudentDifficultyUpdateOne) SetNillableCorrectStreak(v *int) *StudentDifficultyUpdateOne {
	if v != nil {
		_u.SetCorrectStreak(*v)
	}
	return _u
}

// AddCorrectStreak adds value to the "correct_streak" field.
func (_u *StudentDifficultyUpdateOne) AddCorrectStreak(v int) *StudentDifficultyUpdateOne {
	_u.mutation.AddCorrectStreak(v)
	return _u
}

// SetWrongStreak sets the "wrong_streak" field.
func (_u *StudentDifficultyUpdateOne) SetWrongStreak(v int) *StudentDifficultyUpdateOne {
	_u.mutation.ResetWrongStreak()
	_u.mutation.SetWrongStreak(v)
	return _u
}

// SetNillableWrongStreak sets the "wrong_streak" field if the given value is not nil.
func (_u *StudentDifficultyUpdateOne) SetNillableWrongStreak(v *int) *StudentDifficultyUpdateOne {
	if v != nil {
		_u.SetWrongStreak(*v)
	}
	return _u
}

// AddWrongStreak adds value to the "wrong_streak" field.
func (_u *StudentDifficultyUpdateOne) AddWrongStreak(v int) *StudentDifficultyUpdateOne {
	_u.mutation.AddWrongStreak(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *StudentDifficultyUpdateOne) SetTotalAttempts(v int) *StudentDifficultyUpdateOne {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *StudentDifficultyUpdateOne) SetNillableTotalAttempts(v *int) *StudentDifficultyUpdateOne {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *StudentDifficultyUpdateOne) AddTotalAttempts(v int) *StudentDifficultyUpdateOne {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *StudentDifficultyUpdateOne) SetCorrectAnswers(v int) *StudentDifficultyUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *StudentDifficultyUpdateOne) SetNillableCorrectAnswers(v *int) *StudentDifficultyUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *StudentDifficultyUpdateOne) AddCorrectAnswers(v int) *StudentDifficultyUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// Mutation returns the StudentDifficultyMutation object of the builder.
func (_u *StudentDifficultyUpdateOne) Mutation() *StudentDifficultyMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudentDifficultyUpdate builder.
func (_u *StudentDifficultyUpdateOne) Where(ps ...predicate.StudentDifficulty) *StudentDifficultyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudentDifficultyUpdateOne) Select(field string, fields ...string) *StudentDifficultyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudentDifficulty entity.
func (_u *StudentDifficultyUpdateOne) Save(ctx context.Context) (*StudentDifficulty, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentDifficultyUpdateOne) SaveX(ctx context.Context) *StudentDifficulty {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudentDifficultyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentDifficultyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentDifficultyUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := studentdifficulty.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChapterID(); ok {
		if err := studentdifficulty.ChapterIDValidator(v); err != nil {
			return &ValidationError{Name: "chapter_id", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.chapter_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DifficultyLevel(); ok {
		if err := studentdifficulty.DifficultyLevelValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_level", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.difficulty_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MasteryLevel(); ok {
		if err := studentdifficulty.MasteryLevelValidator(v); err != nil {
			return &ValidationError{Name: "mastery_level", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.mastery_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectStreak(); ok {
		if err := studentdifficulty.CorrectStreakValidator(v); err != nil {
			return &ValidationError{Name: "correct_streak", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.correct_streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WrongStreak(); ok {
		if err := studentdifficulty.WrongStreakValidator(v); err != nil {
			return &ValidationError{Name: "wrong_streak", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.wrong_streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAttempts(); ok {
		if err := studentdifficulty.TotalAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "total_attempts", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.total_attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswers(); ok {
		if err := studentdifficulty.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.correct_answers": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentDifficultyUpdateOne) sqlSave(ctx context.Context) (_node *StudentDifficulty, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studentdifficulty.Table, studentdifficulty.Columns, sqlgraph.NewFieldSpec(studentdifficulty.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudentDifficulty.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studentdifficulty.FieldID)
		for _, f := range fields {
			if !studentdifficulty.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studentdifficulty.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(studentdifficulty.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChapterID(); ok {
		_spec.SetField(studentdifficulty.FieldChapterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(studentdifficulty.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyLevel(); ok {
		_spec.AddField(studentdifficulty.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(studentdifficulty.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(studentdifficulty.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CorrectStreak(); ok {
		_spec.SetField(studentdifficulty.FieldCorrectStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectStreak(); ok {
		_spec.AddField(studentdifficulty.FieldCorrectStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WrongStreak(); ok {
		_spec.SetField(studentdifficulty.FieldWrongStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrongStreak(); ok {
		_spec.AddField(studentdifficulty.FieldWrongStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(studentdifficulty.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(studentdifficulty.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(studentdifficulty.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(studentdifficulty.FieldCorrectAnswers, field.TypeInt, value)
	}
	_node = &StudentDifficulty{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentdifficulty.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
