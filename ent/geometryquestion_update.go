// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/PTMAbellana/Polegion-sub002/ent/geometryquestion"
	"github.com/PTMAbellana/Polegion-sub002/ent/predicate"
)

// GeometryQuestionUpdate is the builder for updating GeometryQuestion entities.
type GeometryQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *GeometryQuestionMutation
}

// Where appends a list predicates to the GeometryQuestionUpdate builder.
func (_u *GeometryQuestionUpdate) Where(ps ...predicate.GeometryQuestion) *GeometryQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *GeometryQuestionUpdate) SetQuestionID(v string) *GeometryQuestionUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *GeometryQuestionUpdate) SetNillableQuestionID(v *string) *GeometryQuestionUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetChapterID sets the "chapter_id" field.
func (_u *GeometryQuestionUpdate) SetChapterID(v string) *GeometryQuestionUpdate {
	_u.mutation.SetChapterID(v)
	return _u
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_u *GeometryQuestionUpdate) SetNillableChapterID(v *string) *GeometryQuestionUpdate {
	if v != nil {
		_u.SetChapterID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *GeometryQuestionUpdate) SetTopic(v string) *GeometryQuestionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *GeometryQuestionUpdate) SetNillableTopic(v *string) *GeometryQuestionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *GeometryQuestionUpdate) SetDifficulty(v int) *GeometryQuestionUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *GeometryQuestionUpdate) SetNillableDifficulty(v *int) *GeometryQuestionUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *GeometryQuestionUpdate) AddDifficulty(v int) *GeometryQuestionUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetText sets the "text" field.
func (_u *GeometryQuestionUpdate) SetText(v string) *GeometryQuestionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *GeometryQuestionUpdate) SetNillableText(v *string) *GeometryQuestionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// Mutation returns the GeometryQuestionMutation object of the builder.
func (_u *GeometryQuestionUpdate) Mutation() *GeometryQuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GeometryQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeometryQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GeometryQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeometryQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeometryQuestionUpdate) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := geometryquestion.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "GeometryQuestion.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChapterID(); ok {
		if err := geometryquestion.ChapterIDValidator(v); err != nil {
			return &ValidationError{Name: "chapter_id", err: fmt.Errorf(`ent: validator failed for field "GeometryQuestion.chapter_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := geometryquestion.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "GeometryQuestion.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := geometryquestion.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "GeometryQuestion.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := geometryquestion.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "GeometryQuestion.text": %w`, err)}
		}
	}
	return nil
}

func (_u *GeometryQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(geometryquestion.Table, geometryquestion.Columns, sqlgraph.NewFieldSpec(geometryquestion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(geometryquestion.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChapterID(); ok {
		_spec.SetField(geometryquestion.FieldChapterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(geometryquestion.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(geometryquestion.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(geometryquestion.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(geometryquestion.FieldText, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{geometryquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GeometryQuestionUpdateOne is the builder for updating a single GeometryQuestion entity.
type GeometryQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GeometryQuestionMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *GeometryQuestionUpdateOne) SetQuestionID(v string) *GeometryQuestionUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *GeometryQuestionUpdateOne) SetNillableQuestionID(v *string) *GeometryQuestionUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetChapterID sets the "chapter_id" field.
func (_u *GeometryQuestionUpdateOne) SetChapterID(v string) *GeometryQuestionUpdateOne {
	_u.mutation.SetChapterID(v)
	return _u
}

// SetNillableChapterID sets the "chapter_id" field if the given value is not nil.
func (_u *GeometryQuestionUpdateOne) SetNillableChapterID(v *string) *GeometryQuestionUpdateOne {
	if v != nil {
		_u.SetChapterID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *GeometryQuestionUpdateOne) SetTopic(v string) *GeometryQuestionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *GeometryQuestionUpdateOne) SetNillableTopic(v *string) *GeometryQuestionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *GeometryQuestionUpdateOne) SetDifficulty(v int) *GeometryQuestionUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *GeometryQuestionUpdateOne) SetNillableDifficulty(v *int) *GeometryQuestionUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *GeometryQuestionUpdateOne) AddDifficulty(v int) *GeometryQuestionUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetText sets the "text" field.
func (_u *GeometryQuestionUpdateOne) SetText(v string) *GeometryQuestionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *GeometryQuestionUpdateOne) SetNillableText(v *string) *GeometryQuestionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// Mutation returns the GeometryQuestionMutation object of the builder.
func (_u *GeometryQuestionUpdateOne) Mutation() *GeometryQuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the GeometryQuestionUpdate builder.
func (_u *GeometryQuestionUpdateOne) Where(ps ...predicate.GeometryQuestion) *GeometryQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GeometryQuestionUpdateOne) Select(field string, fields ...string) *GeometryQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GeometryQuestion entity.
func (_u *GeometryQuestionUpdateOne) Save(ctx context.Context) (*GeometryQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeometryQuestionUpdateOne) SaveX(ctx context.Context) *GeometryQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GeometryQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeometryQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeometryQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := geometryquestion.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "GeometryQuestion.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChapterID(); ok {
		if err := geometryquestion.ChapterIDValidator(v); err != nil {
			return &ValidationError{Name: "chapter_id", err: fmt.Errorf(`ent: validator failed for field "GeometryQuestion.chapter_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := geometryquestion.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "GeometryQuestion.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := geometryquestion.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "GeometryQuestion.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := geometryquestion.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "GeometryQuestion.text": %w`, err)}
		}
	}
	return nil
}

func (_u *GeometryQuestionUpdateOne) sqlSave(ctx context.Context) (_node *GeometryQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(geometryquestion.Table, geometryquestion.Columns, sqlgraph.NewFieldSpec(geometryquestion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GeometryQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, geometryquestion.FieldID)
		for _, f := range fields {
			if !geometryquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != geometryquestion.FieldID {
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
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(geometryquestion.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChapterID(); ok {
		_spec.SetField(geometryquestion.FieldChapterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(geometryquestion.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(geometryquestion.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(geometryquestion.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(geometryquestion.FieldText, field.TypeString, value)
	}
	_node = &GeometryQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{geometryquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
