// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/PTMAbellana/Polegion-sub002/ent/transitionevent"
)

// TransitionEventCreate is the builder for creating a TransitionEvent entity.
type TransitionEventCreate struct {
	config
	mutation *TransitionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TransitionEventCreate) SetSequence(v int64) *TransitionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TransitionEventCreate) SetTimestamp(v time.Time) *TransitionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TransitionEventCreate) SetNillableTimestamp(v *time.Time) *TransitionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TransitionEventCreate) SetSessionID(v string) *TransitionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *TransitionEventCreate) SetNillableSessionID(v *string) *TransitionEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *TransitionEventCreate) SetStudentID(v string) *TransitionEventCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetChapterID sets the "chapter_id" field.
func (_c *TransitionEventCreate) SetChapterID(v string) *TransitionEventCreate {
	_c.mutation.SetChapterID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *TransitionEventCreate) SetQuestionID(v string) *TransitionEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_c *TransitionEventCreate) SetNillableQuestionID(v *string) *TransitionEventCreate {
	if v != nil {
		_c.SetQuestionID(*v)
	}
	return _c
}

// SetPrevLevel sets the "prev_level" field.
func (_c *TransitionEventCreate) SetPrevLevel(v int) *TransitionEventCreate {
	_c.mutation.SetPrevLevel(v)
	return _c
}

// SetPrevMastery sets the "prev_mastery" field.
func (_c *TransitionEventCreate) SetPrevMastery(v float64) *TransitionEventCreate {
	_c.mutation.SetPrevMastery(v)
	return _c
}

// SetNewLevel sets the "new_level" field.
func (_c *TransitionEventCreate) SetNewLevel(v int) *TransitionEventCreate {
	_c.mutation.SetNewLevel(v)
	return _c
}

// SetNewMastery sets the "new_mastery" field.
func (_c *TransitionEventCreate) SetNewMastery(v float64) *TransitionEventCreate {
	_c.mutation.SetNewMastery(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *TransitionEventCreate) SetAction(v string) *TransitionEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *TransitionEventCreate) SetReason(v string) *TransitionEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetReward sets the "reward" field.
func (_c *TransitionEventCreate) SetReward(v int) *TransitionEventCreate {
	_c.mutation.SetReward(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *TransitionEventCreate) SetCorrect(v bool) *TransitionEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_c *TransitionEventCreate) SetTimeSpentMs(v int64) *TransitionEventCreate {
	_c.mutation.SetTimeSpentMs(v)
	return _c
}

// Mutation returns the TransitionEventMutation object of the builder.
func (_c *TransitionEventCreate) Mutation() *TransitionEventMutation {
	return _c.mutation
}

// Save creates the TransitionEvent in the database.
func (_c *TransitionEventCreate) Save(ctx context.Context) (*TransitionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TransitionEventCreate) SaveX(ctx context.Context) *TransitionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransitionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransitionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TransitionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := transitionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TransitionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TransitionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TransitionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "TransitionEvent.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := transitionevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChapterID(); !ok {
		return &ValidationError{Name: "chapter_id", err: errors.New(`ent: missing required field "TransitionEvent.chapter_id"`)}
	}
	if v, ok := _c.mutation.ChapterID(); ok {
		if err := transitionevent.ChapterIDValidator(v); err != nil {
			return &ValidationError{Name: "chapter_id", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.chapter_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PrevLevel(); !ok {
		return &ValidationError{Name: "prev_level", err: errors.New(`ent: missing required field "TransitionEvent.prev_level"`)}
	}
	if _, ok := _c.mutation.PrevMastery(); !ok {
		return &ValidationError{Name: "prev_mastery", err: errors.New(`ent: missing required field "TransitionEvent.prev_mastery"`)}
	}
	if _, ok := _c.mutation.NewLevel(); !ok {
		return &ValidationError{Name: "new_level", err: errors.New(`ent: missing required field "TransitionEvent.new_level"`)}
	}
	if _, ok := _c.mutation.NewMastery(); !ok {
		return &ValidationError{Name: "new_mastery", err: errors.New(`ent: missing required field "TransitionEvent.new_mastery"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "TransitionEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := transitionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "TransitionEvent.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := transitionevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reward(); !ok {
		return &ValidationError{Name: "reward", err: errors.New(`ent: missing required field "TransitionEvent.reward"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "TransitionEvent.correct"`)}
	}
	if _, ok := _c.mutation.TimeSpentMs(); !ok {
		return &ValidationError{Name: "time_spent_ms", err: errors.New(`ent: missing required field "TransitionEvent.time_spent_ms"`)}
	}
	return nil
}

func (_c *TransitionEventCreate) sqlSave(ctx context.Context) (*TransitionEvent, error) {
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

func (_c *TransitionEventCreate) createSpec() (*TransitionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TransitionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transitionevent.Table, sqlgraph.NewFieldSpec(transitionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(transitionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(transitionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(transitionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(transitionevent.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.ChapterID(); ok {
		_spec.SetField(transitionevent.FieldChapterID, field.TypeString, value)
		_node.ChapterID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(transitionevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.PrevLevel(); ok {
		_spec.SetField(transitionevent.FieldPrevLevel, field.TypeInt, value)
		_node.PrevLevel = value
	}
	if value, ok := _c.mutation.PrevMastery(); ok {
		_spec.SetField(transitionevent.FieldPrevMastery, field.TypeFloat64, value)
		_node.PrevMastery = value
	}
	if value, ok := _c.mutation.NewLevel(); ok {
		_spec.SetField(transitionevent.FieldNewLevel, field.TypeInt, value)
		_node.NewLevel = value
	}
	if value, ok := _c.mutation.NewMastery(); ok {
		_spec.SetField(transitionevent.FieldNewMastery, field.TypeFloat64, value)
		_node.NewMastery = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(transitionevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(transitionevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Reward(); ok {
		_spec.SetField(transitionevent.FieldReward, field.TypeInt, value)
		_node.Reward = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(transitionevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.TimeSpentMs(); ok {
		_spec.SetField(transitionevent.FieldTimeSpentMs, field.TypeInt64, value)
		_node.TimeSpentMs = value
	}
	return _node, _spec
}

// TransitionEventCreateBulk is the builder for creating many TransitionEvent entities in bulk.
type TransitionEventCreateBulk struct {
	config
	err      error
	builders []*TransitionEventCreate
}

// Save creates the TransitionEvent entities in the database.
func (_c *TransitionEventCreateBulk) Save(ctx context.Context) ([]*TransitionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TransitionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TransitionEventMutation)
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
func (_c *TransitionEventCreateBulk) SaveX(ctx context.Context) []*TransitionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransitionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransitionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
