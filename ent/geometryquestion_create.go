// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/PTMAbellana/Polegion-sub002/ent/geometryquestion"
)

// GeometryQuestionCreate is the builder for creating a GeometryQuestion entity.
type GeometryQuestionCreate struct {
	config
	mutation *GeometryQuestionMutation
	hooks    []Hook
}

// SetQuestionID sets the "question_id" field.
func (_c *GeometryQuestionCreate) SetQuestionID(v string) *GeometryQuestionCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetChapterID sets the "chapter_id" field.
func (_c *GeometryQuestionCreate) SetChapterID(v string) *GeometryQuestionCreate {
	_c.mutation.SetChapterID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *GeometryQuestionCreate) SetTopic(v string) *GeometryQuestionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *GeometryQuestionCreate) SetDifficulty(v int) *GeometryQuestionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetText sets the "text" field.
func (_c *GeometryQuestionCreate) SetText(v string) *GeometryQuestionCreate {
	_c.mutation.SetText(v)
	return _c
}

// Mutation returns the GeometryQuestionMutation object of the builder.
func (_c *GeometryQuestionCreate) Mutation() *GeometryQuestionMutation {
	return _c.mutation
}

// Save creates the GeometryQuestion in the database.
func (_c *GeometryQuestionCreate) Save(ctx context.Context) (*GeometryQuestion, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GeometryQuestionCreate) SaveX(ctx context.Context) *GeometryQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeometryQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeometryQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GeometryQuestionCreate) check() error {
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "GeometryQuestion.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := geometryquestion.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "GeometryQuestion.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChapterID(); !ok {
		return &ValidationError{Name: "chapter_id", err: errors.New(`ent: missing required field "GeometryQuestion.chapter_id"`)}
	}
	if v, ok := _c.mutation.ChapterID(); ok {
		if err := geometryquestion.ChapterIDValidator(v); err != nil {
			return &ValidationError{Name: "chapter_id", err: fmt.Errorf(`ent: validator failed for field "GeometryQuestion.chapter_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "GeometryQuestion.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := geometryquestion.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "GeometryQuestion.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "GeometryQuestion.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := geometryquestion.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "GeometryQuestion.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "GeometryQuestion.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := geometryquestion.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "GeometryQuestion.text": %w`, err)}
		}
	}
	return nil
}

func (_c *GeometryQuestionCreate) sqlSave(ctx context.Context) (*GeometryQuestion, error) {
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

func (_c *GeometryQuestionCreate) createSpec() (*GeometryQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &GeometryQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(geometryquestion.Table, sqlgraph.NewFieldSpec(geometryquestion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(geometryquestion.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.ChapterID(); ok {
		_spec.SetField(geometryquestion.FieldChapterID, field.TypeString, value)
		_node.ChapterID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(geometryquestion.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(geometryquestion.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(geometryquestion.FieldText, field.TypeString, value)
		_node.Text = value
	}
	return _node, _spec
}

// GeometryQuestionCreateBulk is the builder for creating many GeometryQuestion entities in bulk.
type GeometryQuestionCreateBulk struct {
	config
	err      error
	builders []*GeometryQuestionCreate
}

// Save creates the GeometryQuestion entities in the database.
func (_c *GeometryQuestionCreateBulk) Save(ctx context.Context) ([]*GeometryQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GeometryQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GeometryQuestionMutation)
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
func (_c *GeometryQuestionCreateBulk) SaveX(ctx context.Context) []*GeometryQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeometryQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeometryQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
