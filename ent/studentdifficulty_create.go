// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/PTMAbellana/Polegion-sub002/ent/studentdifficulty"
)

// StudentDifficultyCreate is the builder for creating a StudentDifficulty entity.
type StudentDifficultyCreate struct {
	config
	mutation *StudentDifficultyMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *StudentDifficultyCreate) SetStudentID(v string) *StudentDifficultyCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetChapterID sets the "chapter_id" field.
func (_c *StudentDifficultyCreate) SetChapterID(v string) *StudentDifficultyCreate {
	_c.mutation.SetChapterID(v)
	return _c
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_c *StudentDifficultyCreate) SetDifficultyLevel(v int) *StudentDifficultyCreate {
	_c.mutation.SetDifficultyLevel(v)
	return _c
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_c *StudentDifficultyCreate) SetNillableDifficultyLevel(v *int) *StudentDifficultyCreate {
	if v != nil {
		_c.SetDifficultyLevel(*v)
	}
	return _c
}

// SetMasteryLevel sets the "mastery_level" field.
func (_c *StudentDifficultyCreate) SetMasteryLevel(v float64) *StudentDifficultyCreate {
	_c.mutation.SetMasteryLevel(v)
	return _c
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_c *StudentDifficultyCreate) SetNillableMasteryLevel(v *float64) *StudentDifficultyCreate {
	if v != nil {
		_c.SetMasteryLevel(*v)
	}
	return _c
}

// SetCorrectStreak sets the "correct_streak" field.
func (_c *StudentDifficultyCreate) SetCorrectStreak(v int) *StudentDifficultyCreate {
	_c.mutation.SetCorrectStreak(v)
	return _c
}

// SetNillableCorrectStreak sets the "correct_streak" field if the given value is not nil.
func (_c *StudentDifficultyCreate) SetNillableCorrectStreak(v *int) *StudentDifficultyCreate {
	if v != nil {
		_c.SetCorrectStreak(*v)
	}
	return _c
}

// SetWrongStreak sets the "wrong_streak" field.
func (_c *StudentDifficultyCreate) SetWrongStreak(v int) *StudentDifficultyCreate {
	_c.mutation.SetWrongStreak(v)
	return _c
}

// SetNillableWrongStreak sets the "wrong_streak" field if the given value is not nil.
func (_c *StudentDifficultyCreate) SetNillableWrongStreak(v *int) *StudentDifficultyCreate {
	if v != nil {
		_c.SetWrongStreak(*v)
	}
	return _c
}

// SetTotalAttempts sets the "total_attempts" field.
func (_c *StudentDifficultyCreate) SetTotalAttempts(v int) *StudentDifficultyCreate {
	_c.mutation.SetTotalAttempts(v)
	return _c
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_c *StudentDifficultyCreate) SetNillableTotalAttempts(v *int) *StudentDifficultyCreate {
	if v != nil {
		_c.SetTotalAttempts(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *StudentDifficultyCreate) SetCorrectAnswers(v int) *StudentDifficultyCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *StudentDifficultyCreate) SetNillableCorrectAnswers(v *int) *StudentDifficultyCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// Mutation returns the StudentDifficultyMutation object of the builder.
func (_c *StudentDifficultyCreate) Mutation() *StudentDifficultyMutation {
	return _c.mutation
}

// Save creates the StudentDifficulty in the database.
func (_c *StudentDifficultyCreate) Save(ctx context.Context) (*StudentDifficulty, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudentDifficultyCreate) SaveX(ctx context.Context) *StudentDifficulty {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentDifficultyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentDifficultyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudentDifficultyCreate) defaults() {
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		v := studentdifficulty.DefaultDifficultyLevel
		_c.mutation.SetDifficultyLevel(v)
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		v := studentdifficulty.DefaultMasteryLevel
		_c.mutation.SetMasteryLevel(v)
	}
	if _, ok := _c.mutation.CorrectStreak(); !ok {
		v := studentdifficulty.DefaultCorrectStreak
		_c.mutation.SetCorrectStreak(v)
	}
	if _, ok := _c.mutation.WrongStreak(); !ok {
		v := studentdifficulty.DefaultWrongStreak
		_c.mutation.SetWrongStreak(v)
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		v := studentdifficulty.DefaultTotalAttempts
		_c.mutation.SetTotalAttempts(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := studentdifficulty.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudentDifficultyCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "StudentDifficulty.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := studentdifficulty.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChapterID(); !ok {
		return &ValidationError{Name: "chapter_id", err: errors.New(`ent: missing required field "StudentDifficulty.chapter_id"`)}
	}
	if v, ok := _c.mutation.ChapterID(); ok {
		if err := studentdifficulty.ChapterIDValidator(v); err != nil {
			return &ValidationError{Name: "chapter_id", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.chapter_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		return &ValidationError{Name: "difficulty_level", err: errors.New(`ent: missing required field "StudentDifficulty.difficulty_level"`)}
	}
	if v, ok := _c.mutation.DifficultyLevel(); ok {
		if err := studentdifficulty.DifficultyLevelValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_level", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.difficulty_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "StudentDifficulty.mastery_level"`)}
	}
	if v, ok := _c.mutation.MasteryLevel(); ok {
		if err := studentdifficulty.MasteryLevelValidator(v); err != nil {
			return &ValidationError{Name: "mastery_level", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.mastery_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectStreak(); !ok {
		return &ValidationError{Name: "correct_streak", err: errors.New(`ent: missing required field "StudentDifficulty.correct_streak"`)}
	}
	if v, ok := _c.mutation.CorrectStreak(); ok {
		if err := studentdifficulty.CorrectStreakValidator(v); err != nil {
			return &ValidationError{Name: "correct_streak", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.correct_streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WrongStreak(); !ok {
		return &ValidationError{Name: "wrong_streak", err: errors.New(`ent: missing required field "StudentDifficulty.wrong_streak"`)}
	}
	if v, ok := _c.mutation.WrongStreak(); ok {
		if err := studentdifficulty.WrongStreakValidator(v); err != nil {
			return &ValidationError{Name: "wrong_streak", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.wrong_streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		return &ValidationError{Name: "total_attempts", err: errors.New(`ent: missing required field "StudentDifficulty.total_attempts"`)}
	}
	if v, ok := _c.mutation.TotalAttempts(); ok {
		if err := studentdifficulty.TotalAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "total_attempts", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.total_attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "StudentDifficulty.correct_answers"`)}
	}
	if v, ok := _c.mutation.CorrectAnswers(); ok {
		if err := studentdifficulty.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "StudentDifficulty.correct_answers": %w`, err)}
		}
	}
	return nil
}

func (_c *StudentDifficultyCreate) sqlSave(ctx context.Context) (*StudentDifficulty, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudentDifficultyCreate) createSpec() (*StudentDifficulty, *sqlgraph.CreateSpec) {
	var (
		_node = &StudentDifficulty{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studentdifficulty.Table, sqlgraph.NewFieldSpec(studentdifficulty.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(studentdifficulty.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.ChapterID(); ok {
		_spec.SetField(studentdifficulty.FieldChapterID, field.TypeString, value)
		_node.ChapterID = value
	}
	if value, ok := _c.mutation.DifficultyLevel(); ok {
		_spec.SetField(studentdifficulty.FieldDifficultyLevel, field.TypeInt, value)
		_node.DifficultyLevel = value
	}
	if value, ok := _c.mutation.MasteryLevel(); ok {
		_spec.SetField(studentdifficulty.FieldMasteryLevel, field.TypeFloat64, value)
		_node.MasteryLevel = value
	}
	if value, ok := _c.mutation.CorrectStreak(); ok {
		_spec.SetField(studentdifficulty.FieldCorrectStreak, field.TypeInt, value)
		_node.CorrectStreak = value
	}
	if value, ok := _c.mutation.WrongStreak(); ok {
		_spec.SetField(studentdifficulty.FieldWrongStreak, field.TypeInt, value)
		_node.WrongStreak = value
	}
	if value, ok := _c.mutation.TotalAttempts(); ok {
		_spec.SetField(studentdifficulty.FieldTotalAttempts, field.TypeInt, value)
		_node.TotalAttempts = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(studentdifficulty.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	return _node, _spec
}

// StudentDifficultyCreateBulk is the builder for creating many StudentDifficulty entities in bulk.
type StudentDifficultyCreateBulk struct {
	config
	err      error
	builders []*StudentDifficultyCreate
}

// Save creates the StudentDifficulty entities in the database.
func (_c *StudentDifficultyCreateBulk) Save(ctx context.Context) ([]*StudentDifficulty, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudentDifficulty, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudentDifficultyMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StudentDifficultyCreateBulk) SaveX(ctx context.Context) []*StudentDifficulty {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentDifficultyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentDifficultyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
