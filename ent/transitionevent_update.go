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
	"github.com/PTMAbellana/Polegion-sub002/ent/transitionevent"
)

// TransitionEventUpdate is the builder for updating TransitionEvent entities.
type TransitionEventUpdate struct {
	config
	hooks    []Hook
	mutation *TransitionEventMutation
}

// Where appends a list predicates to the TransitionEventUpdate builder.
func (_u *TransitionEventUpdate) Where(ps ...predicate.TransitionEvent) *TransitionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TransitionEventUpdate) SetSessionID(v string) *TransitionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableSessionID(v *string) *TransitionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *TransitionEventUpdate) ClearSessionID() *TransitionEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *TransitionEventUpdate) SetStudentID(v string) *TransitionEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableStudentID(v *string) *TransitionEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetChapterID sets the "chapter_id" field.
func (_u *TransitionEventUpdate) SetChapterID(v string) *TransitionEventUpdate {
	_u.mutation.SetChapterID(v)
	return _u
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableChapterID(v *string) *TransitionEventUpdate {
	if v != nil {
		_u.SetChapterID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *TransitionEventUpdate) SetQuestionID(v string) *TransitionEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableQuestionID(v *string) *TransitionEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// ClearQuestionID clears the value of the "question_id" field.
func (_u *TransitionEventUpdate) ClearQuestionID() *TransitionEventUpdate {
	_u.mutation.ClearQuestionID()
	return _u
}

// SetPrevLevel sets the "prev_level" field.
func (_u *TransitionEventUpdate) SetPrevLevel(v int) *TransitionEventUpdate {
	_u.mutation.ResetPrevLevel()
	_u.mutation.SetPrevLevel(v)
	return _u
}

// SetNillablePrevLevel sets the "prev_level" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillablePrevLevel(v *int) *TransitionEventUpdate {
	if v != nil {
		_u.SetPrevLevel(*v)
	}
	return _u
}

// AddPrevLevel adds value to the "prev_level" field.
func (_u *TransitionEventUpdate) AddPrevLevel(v int) *TransitionEventUpdate {
	_u.mutation.AddPrevLevel(v)
	return _u
}

// SetPrevMastery sets the "prev_mastery" field.
func (_u *TransitionEventUpdate) SetPrevMastery(v float64) *TransitionEventUpdate {
	_u.mutation.ResetPrevMastery()
	_u.mutation.SetPrevMastery(v)
	return _u
}

// SetNillablePrevMastery sets the "prev_mastery" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillablePrevMastery(v *float64) *TransitionEventUpdate {
	if v != nil {
		_u.SetPrevMastery(*v)
	}
	return _u
}

// AddPrevMastery adds value to the "prev_mastery" field.
func (_u *TransitionEventUpdate) AddPrevMastery(v float64) *TransitionEventUpdate {
	_u.mutation.AddPrevMastery(v)
	return _u
}

// SetNewLevel sets the "new_level" field.
func (_u *TransitionEventUpdate) SetNewLevel(v int) *TransitionEventUpdate {
	_u.mutation.ResetNewLevel()
	_u.mutation.SetNewLevel(v)
	return _u
}

// SetNillableNewLevel sets the "new_level" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableNewLevel(v *int) *TransitionEventUpdate {
	if v != nil {
		_u.SetNewLevel(*v)
	}
	return _u
}

// AddNewLevel adds value to the "new_level" field.
func (_u *TransitionEventUpdate) AddNewLevel(v int) *TransitionEventUpdate {
	_u.mutation.AddNewLevel(v)
	return _u
}

// SetNewMastery sets the "new_mastery" field.
func (_u *TransitionEventUpdate) SetNewMastery(v float64) *TransitionEventUpdate {
	_u.mutation.ResetNewMastery()
	_u.mutation.SetNewMastery(v)
	return _u
}

// SetNillableNewMastery sets the "new_mastery" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableNewMastery(v *float64) *TransitionEventUpdate {
	if v != nil {
		_u.SetNewMastery(*v)
	}
	return _u
}

// AddNewMastery adds value to the "new_mastery" field.
func (_u *TransitionEventUpdate) AddNewMastery(v float64) *TransitionEventUpdate {
	_u.mutation.AddNewMastery(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *TransitionEventUpdate) SetAction(v string) *TransitionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableAction(v *string) *TransitionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *TransitionEventUpdate) SetReason(v string) *TransitionEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableReason(v *string) *TransitionEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetReward sets the "reward" field.
func (_u *TransitionEventUpdate) SetReward(v int) *TransitionEventUpdate {
	_u.mutation.ResetReward()
	_u.mutation.SetReward(v)
	return _u
}

// SetNillableReward sets the "reward" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableReward(v *int) *TransitionEventUpdate {
	if v != nil {
		_u.SetReward(*v)
	}
	return _u
}

// AddReward adds value to the "reward" field.
func (_u *TransitionEventUpdate) AddReward(v int) *TransitionEventUpdate {
	_u.mutation.AddReward(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *TransitionEventUpdate) SetCorrect(v bool) *TransitionEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableCorrect(v *bool) *TransitionEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_u *TransitionEventUpdate) SetTimeSpentMs(v int64) *TransitionEventUpdate {
	_u.mutation.ResetTimeSpentMs()
	_u.mutation.SetTimeSpentMs(v)
	return _u
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableTimeSpentMs(v *int64) *TransitionEventUpdate {
	if v != nil {
		_u.SetTimeSpentMs(*v)
	}
	return _u
}

// AddTimeSpentMs adds value to the "time_spent_ms" field.
func (_u *TransitionEventUpdate) AddTimeSpentMs(v int64) *TransitionEventUpdate {
	_u.mutation.AddTimeSpentMs(v)
	return _u
}

// Mutation returns the TransitionEventMutation object of the builder.
func (_u *TransitionEventUpdate) Mutation() *TransitionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TransitionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransitionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TransitionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransitionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransitionEventUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := transitionevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChapterID(); ok {
		if err := transitionevent.ChapterIDValidator(v); err != nil {
			return &ValidationError{Name: "chapter_id", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.chapter_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := transitionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := transitionevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *TransitionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transitionevent.Table, transitionevent.Columns, sqlgraph.NewFieldSpec(transitionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(transitionevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(transitionevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(transitionevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChapterID(); ok {
		_spec.SetField(transitionevent.FieldChapterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(transitionevent.FieldQuestionID, field.TypeString, value)
	}
	if _u.mutation.QuestionIDCleared() {
		_spec.ClearField(transitionevent.FieldQuestionID, field.TypeString)
	}
	if value, ok := _u.mutation.PrevLevel(); ok {
		_spec.SetField(transitionevent.FieldPrevLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrevLevel(); ok {
		_spec.AddField(transitionevent.FieldPrevLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PrevMastery(); ok {
		_spec.SetField(transitionevent.FieldPrevMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrevMastery(); ok {
		_spec.AddField(transitionevent.FieldPrevMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NewLevel(); ok {
		_spec.SetField(transitionevent.FieldNewLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewLevel(); ok {
		_spec.AddField(transitionevent.FieldNewLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewMastery(); ok {
		_spec.SetField(transitionevent.FieldNewMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNewMastery(); ok {
		_spec.AddField(transitionevent.FieldNewMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(transitionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(transitionevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reward(); ok {
		_spec.SetField(transitionevent.FieldReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReward(); ok {
		_spec.AddField(transitionevent.FieldReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(transitionevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSpentMs(); ok {
		_spec.SetField(transitionevent.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMs(); ok {
		_spec.AddField(transitionevent.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transitionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TransitionEventUpdateOne is the builder for updating a single TransitionEvent entity.
type TransitionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TransitionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TransitionEventUpdateOne) SetSessionID(v string) *TransitionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableSessionID(v *string) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *TransitionEventUpdateOne) ClearSessionID() *TransitionEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *TransitionEventUpdateOne) SetStudentID(v string) *TransitionEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableStudentID(v *string) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetChapterID sets the "chapter_id" field.
func (_u *TransitionEventUpdateOne) SetChapterID(v string) *TransitionEventUpdateOne {
	_u.mutation.SetChapterID(v)
	return _u
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableChapterID(v *string) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetChapterID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *TransitionEventUpdateOne) SetQuestionID(v string) *TransitionEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableQuestionID(v *string) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// ClearQuestionID clears the value of the "question_id" field.
func (_u *TransitionEventUpdateOne) ClearQuestionID() *TransitionEventUpdateOne {
	_u.mutation.ClearQuestionID()
	return _u
}

// SetPrevLevel sets the "prev_level" field.
func (_u *TransitionEventUpdateOne) SetPrevLevel(v int) *TransitionEventUpdateOne {
	_u.mutation.ResetPrevLevel()
	_u.mutation.SetPrevLevel(v)
	return _u
}

// SetNillablePrevLevel sets the "prev_level" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillablePrevLevel(v *int) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetPrevLevel(*v)
	}
	return _u
}

// AddPrevLevel adds value to the "prev_level" field.
func (_u *TransitionEventUpdateOne) AddPrevLevel(v int) *TransitionEventUpdateOne {
	_u.mutation.AddPrevLevel(v)
	return _u
}

// SetPrevMastery sets the "prev_mastery" field.
func (_u *TransitionEventUpdateOne) SetPrevMastery(v float64) *TransitionEventUpdateOne {
	_u.mutation.ResetPrevMastery()
	_u.mutation.SetPrevMastery(v)
	return _u
}

// SetNillablePrevMastery sets the "prev_mastery" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillablePrevMastery(v *float64) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetPrevMastery(*v)
	}
	return _u
}

// AddPrevMastery adds value to the "prev_mastery" field.
func (_u *TransitionEventUpdateOne) AddPrevMastery(v float64) *TransitionEventUpdateOne {
	_u.mutation.AddPrevMastery(v)
	return _u
}

// SetNewLevel sets the "new_level" field.
func (_u *TransitionEventUpdateOne) SetNewLevel(v int) *TransitionEventUpdateOne {
	_u.mutation.ResetNewLevel()
	_u.mutation.SetNewLevel(v)
	return _u
}

// SetNillableNewLevel sets the "new_level" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableNewLevel(v *int) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetNewLevel(*v)
	}
	return _u
}

// AddNewLevel adds value to the "new_level" field.
func (_u *TransitionEventUpdateOne) AddNewLevel(v int) *TransitionEventUpdateOne {
	_u.mutation.AddNewLevel(v)
	return _u
}

// SetNewMastery sets the "new_mastery" field.
func (_u *TransitionEventUpdateOne) SetNewMastery(v float64) *TransitionEventUpdateOne {
	_u.mutation.ResetNewMastery()
	_u.mutation.SetNewMastery(v)
	return _u
}

// SetNillableNewMastery sets the "new_mastery" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableNewMastery(v *float64) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetNewMastery(*v)
	}
	return _u
}

// AddNewMastery adds value to the "new_mastery" field.
func (_u *TransitionEventUpdateOne) AddNewMastery(v float64) *TransitionEventUpdateOne {
	_u.mutation.AddNewMastery(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *TransitionEventUpdateOne) SetAction(v string) *TransitionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableAction(v *string) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *TransitionEventUpdateOne) SetReason(v string) *TransitionEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableReason(v *string) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetReward sets the "reward" field.
func (_u *TransitionEventUpdateOne) SetReward(v int) *TransitionEventUpdateOne {
	_u.mutation.ResetReward()
	_u.mutation.SetReward(v)
	return _u
}

// SetNillableReward sets the "reward" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableReward(v *int) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetReward(*v)
	}
	return _u
}

// AddReward adds value to the "reward" field.
func (_u *TransitionEventUpdateOne) AddReward(v int) *TransitionEventUpdateOne {
	_u.mutation.AddReward(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *TransitionEventUpdateOne) SetCorrect(v bool) *TransitionEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableCorrect(v *bool) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_u *TransitionEventUpdateOne) SetTimeSpentMs(v int64) *TransitionEventUpdateOne {
	_u.mutation.ResetTimeSpentMs()
	_u.mutation.SetTimeSpentMs(v)
	return _u
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableTimeSpentMs(v *int64) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetTimeSpentMs(*v)
	}
	return _u
}

// AddTimeSpentMs adds value to the "time_spent_ms" field.
func (_u *TransitionEventUpdateOne) AddTimeSpentMs(v int64) *TransitionEventUpdateOne {
	_u.mutation.AddTimeSpentMs(v)
	return _u
}

// Mutation returns the TransitionEventMutation object of the builder.
func (_u *TransitionEventUpdateOne) Mutation() *TransitionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TransitionEventUpdate builder.
func (_u *TransitionEventUpdateOne) Where(ps ...predicate.TransitionEvent) *TransitionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TransitionEventUpdateOne) Select(field string, fields ...string) *TransitionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TransitionEvent entity.
func (_u *TransitionEventUpdateOne) Save(ctx context.Context) (*TransitionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransitionEventUpdateOne) SaveX(ctx context.Context) *TransitionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TransitionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransitionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransitionEventUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := transitionevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChapterID(); ok {
		if err := transitionevent.ChapterIDValidator(v); err != nil {
			return &ValidationError{Name: "chapter_id", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.chapter_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := transitionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := transitionevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *TransitionEventUpdateOne) sqlSave(ctx context.Context) (_node *TransitionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transitionevent.Table, transitionevent.Columns, sqlgraph.NewFieldSpec(transitionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TransitionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transitionevent.FieldID)
		for _, f := range fields {
			if !transitionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transitionevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(transitionevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(transitionevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(transitionevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChapterID(); ok {
		_spec.SetField(transitionevent.FieldChapterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(transitionevent.FieldQuestionID, field.TypeString, value)
	}
	if _u.mutation.QuestionIDCleared() {
		_spec.ClearField(transitionevent.FieldQuestionID, field.TypeString)
	}
	if value, ok := _u.mutation.PrevLevel(); ok {
		_spec.SetField(transitionevent.FieldPrevLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrevLevel(); ok {
		_spec.AddField(transitionevent.FieldPrevLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PrevMastery(); ok {
		_spec.SetField(transitionevent.FieldPrevMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrevMastery(); ok {
		_spec.AddField(transitionevent.FieldPrevMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NewLevel(); ok {
		_spec.SetField(transitionevent.FieldNewLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewLevel(); ok {
		_spec.AddField(transitionevent.FieldNewLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewMastery(); ok {
		_spec.SetField(transitionevent.FieldNewMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNewMastery(); ok {
		_spec.AddField(transitionevent.FieldNewMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(transitionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(transitionevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reward(); ok {
		_spec.SetField(transitionevent.FieldReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReward(); ok {
		_spec.AddField(transitionevent.FieldReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(transitionevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSpentMs(); ok {
		_spec.SetField(transitionevent.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMs(); ok {
		_spec.AddField(transitionevent.FieldTimeSpentMs, field.TypeInt64, value)
	}
	_node = &TransitionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transitionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
