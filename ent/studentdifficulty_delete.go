// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/PTMAbellana/Polegion-sub002/ent/predicate"
	"github.com/PTMAbellana/Polegion-sub002/ent/studentdifficulty"
)

// StudentDifficultyDelete is the builder for deleting a StudentDifficulty entity.
type StudentDifficultyDelete struct {
	config
	hooks    []Hook
	mutation *StudentDifficultyMutation
}

// Where appends a list predicates to the StudentDifficultyDelete builder.
func (_d *StudentDifficultyDelete) Where(ps ...predicate.StudentDifficulty) *StudentDifficultyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *StudentDifficultyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *StudentDifficultyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *StudentDifficultyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(studentdifficulty.Table, sqlgraph.NewFieldSpec(studentdifficulty.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// StudentDifficultyDeleteOne is the builder for deleting a single StudentDifficulty entity.
type StudentDifficultyDeleteOne struct {
	_d *StudentDifficultyDelete
}

// Where appends a list predicates to the StudentDifficultyDelete builder.
func (_d *StudentDifficultyDeleteOne) Where(ps ...predicate.StudentDifficulty) *StudentDifficultyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *StudentDifficultyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{studentdifficulty.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *StudentDifficultyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
