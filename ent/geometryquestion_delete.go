// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/PTMAbellana/Polegion-sub002/ent/geometryquestion"
	"github.com/PTMAbellana/Polegion-sub002/ent/predicate"
)

// GeometryQuestionDelete is the builder for deleting a GeometryQuestion entity.
type GeometryQuestionDelete struct {
	config
	hooks    []Hook
	mutation *GeometryQuestionMutation
}

// Where appends a list predicates to the GeometryQuestionDelete builder.
func (_d *GeometryQuestionDelete) Where(ps ...predicate.GeometryQuestion) *GeometryQuestionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GeometryQuestionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GeometryQuestionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GeometryQuestionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(geometryquestion.Table, sqlgraph.NewFieldSpec(geometryquestion.FieldID, field.TypeInt))
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

// GeometryQuestionDeleteOne is the builder for deleting a single GeometryQuestion entity.
type GeometryQuestionDeleteOne struct {
	_d *GeometryQuestionDelete
}

// Where appends a list predicates to the GeometryQuestionDelete builder.
func (_d *GeometryQuestionDeleteOne) Where(ps ...predicate.GeometryQuestion) *GeometryQuestionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GeometryQuestionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{geometryquestion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GeometryQuestionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
