// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/PTMAbellana/Polegion-sub002/ent/geometryquestion"
	"github.com/PTMAbellana/Polegion-sub002/ent/llmrequestevent"
	"github.com/PTMAbellana/Polegion-sub002/ent/predicate"
	"github.com/PTMAbellana/Polegion-sub002/ent/studentdifficulty"
	"github.com/PTMAbellana/Polegion-sub002/ent/transitionevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeGeometryQuestion  = "GeometryQuestion"
	TypeLLMRequestEvent   = "LLMRequestEvent"
	TypeStudentDifficulty = "StudentDifficulty"
	TypeTransitionEvent   = "TransitionEvent"
)

// GeometryQuestionMutation represents an operation that mutates the GeometryQuestion nodes in the graph.
type GeometryQuestionMutation struct {
	config
	op            Op
	typ           string
	id            *int
	question_id   *string
	chapter_id    *string
	topic         *string
	difficulty    *int
	adddifficulty *int
	text          *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*GeometryQuestion, error)
	predicates    []predicate.GeometryQuestion
}

var _ ent.Mutation = (*GeometryQuestionMutation)(nil)

// geometryquestionOption allows management of the mutation configuration using functional options.
type geometryquestionOption func(*GeometryQuestionMutation)

// newGeometryQuestionMutation creates new mutation for the GeometryQuestion entity.
func newGeometryQuestionMutation(c config, op Op, opts ...geometryquestionOption) *GeometryQuestionMutation {
	m := &GeometryQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeGeometryQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGeometryQuestionID sets the ID field of the mutation.
func withGeometryQuestionID(id int) geometryquestionOption {
	return func(m *GeometryQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *GeometryQuestion
		)
		m.oldValue = func(ctx context.Context) (*GeometryQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GeometryQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGeometryQuestion sets the old GeometryQuestion of the mutation.
func withGeometryQuestion(node *GeometryQuestion) geometryquestionOption {
	return func(m *GeometryQuestionMutation) {
		m.oldValue = func(context.Context) (*GeometryQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GeometryQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GeometryQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GeometryQuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GeometryQuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GeometryQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuestionID sets the "question_id" field.
func (m *GeometryQuestionMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *GeometryQuestionMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the GeometryQuestion entity.
// If the GeometryQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeometryQuestionMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *GeometryQuestionMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetChapterID sets the "chapter_id" field.
func (m *GeometryQuestionMutation) SetChapterID(s string) {
	m.chapter_id = &s
}

// ChapterID returns the value of the "chapter_id" field in the mutation.
func (m *GeometryQuestionMutation) ChapterID() (r string, exists bool) {
	v := m.chapter_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterID returns the old "chapter_id" field's value of the GeometryQuestion entity.
// If the GeometryQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeometryQuestionMutation) OldChapterID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterID: %w", err)
	}
	return oldValue.ChapterID, nil
}

// ResetChapterID resets all changes to the "chapter_id" field.
func (m *GeometryQuestionMutation) ResetChapterID() {
	m.chapter_id = nil
}

// SetTopic sets the "topic" field.
func (m *GeometryQuestionMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *GeometryQuestionMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the GeometryQuestion entity.
// If the GeometryQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeometryQuestionMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *GeometryQuestionMutation) ResetTopic() {
	m.topic = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *GeometryQuestionMutation) SetDifficulty(i int) {
	m.difficulty = &i
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *GeometryQuestionMutation) Difficulty() (r int, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the GeometryQuestion entity.
// If the GeometryQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeometryQuestionMutation) OldDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds i to the "difficulty" field.
func (m *GeometryQuestionMutation) AddDifficulty(i int) {
	if m.adddifficulty != nil {
		*m.adddifficulty += i
	} else {
		m.adddifficulty = &i
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *GeometryQuestionMutation) AddedDifficulty() (r int, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *GeometryQuestionMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetText sets the "text" field.
func (m *GeometryQuestionMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *GeometryQuestionMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the GeometryQuestion entity.
// If the GeometryQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeometryQuestionMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *GeometryQuestionMutation) ResetText() {
	m.text = nil
}

// Where appends a list predicates to the GeometryQuestionMutation builder.
func (m *GeometryQuestionMutation) Where(ps ...predicate.GeometryQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GeometryQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GeometryQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GeometryQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GeometryQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GeometryQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GeometryQuestion).
func (m *GeometryQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GeometryQuestionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.question_id != nil {
		fields = append(fields, geometryquestion.FieldQuestionID)
	}
	if m.chapter_id != nil {
		fields = append(fields, geometryquestion.FieldChapterID)
	}
	if m.topic != nil {
		fields = append(fields, geometryquestion.FieldTopic)
	}
	if m.difficulty != nil {
		fields = append(fields, geometryquestion.FieldDifficulty)
	}
	if m.text != nil {
		fields = append(fields, geometryquestion.FieldText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GeometryQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case geometryquestion.FieldQuestionID:
		return m.QuestionID()
	case geometryquestion.FieldChapterID:
		return m.ChapterID()
	case geometryquestion.FieldTopic:
		return m.Topic()
	case geometryquestion.FieldDifficulty:
		return m.Difficulty()
	case geometryquestion.FieldText:
		return m.Text()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GeometryQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case geometryquestion.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case geometryquestion.FieldChapterID:
		return m.OldChapterID(ctx)
	case geometryquestion.FieldTopic:
		return m.OldTopic(ctx)
	case geometryquestion.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case geometryquestion.FieldText:
		return m.OldText(ctx)
	}
	return nil, fmt.Errorf("unknown GeometryQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GeometryQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case geometryquestion.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case geometryquestion.FieldChapterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterID(v)
		return nil
	case geometryquestion.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case geometryquestion.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case geometryquestion.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	}
	return fmt.Errorf("unknown GeometryQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GeometryQuestionMutation) AddedFields() []string {
	var fields []string
	if m.adddifficulty != nil {
		fields = append(fields, geometryquestion.FieldDifficulty)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GeometryQuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case geometryquestion.FieldDifficulty:
		return m.AddedDifficulty()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GeometryQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case geometryquestion.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	}
	return fmt.Errorf("unknown GeometryQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GeometryQuestionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GeometryQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GeometryQuestionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GeometryQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GeometryQuestionMutation) ResetField(name string) error {
	switch name {
	case geometryquestion.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case geometryquestion.FieldChapterID:
		m.ResetChapterID()
		return nil
	case geometryquestion.FieldTopic:
		m.ResetTopic()
		return nil
	case geometryquestion.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case geometryquestion.FieldText:
		m.ResetText()
		return nil
	}
	return fmt.Errorf("unknown GeometryQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GeometryQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GeometryQuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GeometryQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GeometryQuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GeometryQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GeometryQuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GeometryQuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GeometryQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GeometryQuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GeometryQuestion edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *LLMRequestEventMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[llmrequestevent.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LLMRequestEventMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[llmrequestevent.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, llmrequestevent.FieldErrorMessage)
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ClearRequestBody clears the value of the "request_body" field.
func (m *LLMRequestEventMutation) ClearRequestBody() {
	m.request_body = nil
	m.clearedFields[llmrequestevent.FieldRequestBody] = struct{}{}
}

// RequestBodyCleared returns if the "request_body" field was cleared in this mutation.
func (m *LLMRequestEventMutation) RequestBodyCleared() bool {
	_, ok := m.clearedFields[llmrequestevent.FieldRequestBody]
	return ok
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
	delete(m.clearedFields, llmrequestevent.FieldRequestBody)
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ClearResponseBody clears the value of the "response_body" field.
func (m *LLMRequestEventMutation) ClearResponseBody() {
	m.response_body = nil
	m.clearedFields[llmrequestevent.FieldResponseBody] = struct{}{}
}

// ResponseBodyCleared returns if the "response_body" field was cleared in this mutation.
func (m *LLMRequestEventMutation) ResponseBodyCleared() bool {
	_, ok := m.clearedFields[llmrequestevent.FieldResponseBody]
	return ok
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
	delete(m.clearedFields, llmrequestevent.FieldResponseBody)
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llmrequestevent.FieldErrorMessage) {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.FieldCleared(llmrequestevent.FieldRequestBody) {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.FieldCleared(llmrequestevent.FieldResponseBody) {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	switch name {
	case llmrequestevent.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ClearRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ClearResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// StudentDifficultyMutation represents an operation that mutates the StudentDifficulty nodes in the graph.
type StudentDifficultyMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	student_id          *string
	chapter_id          *string
	difficulty_level    *int
	adddifficulty_level *int
	mastery_level       *float64
	addmastery_level    *float64
	correct_streak      *int
	addcorrect_streak   *int
	wrong_streak        *int
	addwrong_streak     *int
	total_attempts      *int
	addtotal_attempts   *int
	correct_answers     *int
	addcorrect_answers  *int
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*StudentDifficulty, error)
	predicates          []predicate.StudentDifficulty
}

var _ ent.Mutation = (*StudentDifficultyMutation)(nil)

// studentdifficultyOption allows management of the mutation configuration using functional options.
type studentdifficultyOption func(*StudentDifficultyMutation)

// newStudentDifficultyMutation creates new mutation for the StudentDifficulty entity.
func newStudentDifficultyMutation(c config, op Op, opts ...studentdifficultyOption) *StudentDifficultyMutation {
	m := &StudentDifficultyMutation{
		config:        c,
		op:            op,
		typ:           TypeStudentDifficulty,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudentDifficultyID sets the ID field of the mutation.
func withStudentDifficultyID(id int) studentdifficultyOption {
	return func(m *StudentDifficultyMutation) {
		var (
			err   error
			once  sync.Once
			value *StudentDifficulty
		)
		m.oldValue = func(ctx context.Context) (*StudentDifficulty, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudentDifficulty.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudentDifficulty sets the old StudentDifficulty of the mutation.
func withStudentDifficulty(node *StudentDifficulty) studentdifficultyOption {
	return func(m *StudentDifficultyMutation) {
		m.oldValue = func(context.Context) (*StudentDifficulty, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudentDifficultyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudentDifficultyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudentDifficultyMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudentDifficultyMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudentDifficulty.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *StudentDifficultyMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *StudentDifficultyMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the StudentDifficulty entity.
// If the StudentDifficulty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentDifficultyMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *StudentDifficultyMutation) ResetStudentID() {
	m.student_id = nil
}

// SetChapterID sets the "chapter_id" field.
func (m *StudentDifficultyMutation) SetChapterID(s string) {
	m.chapter_id = &s
}

// ChapterID returns the value of the "chapter_id" field in the mutation.
func (m *StudentDifficultyMutation) ChapterID() (r string, exists bool) {
	v := m.chapter_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterID returns the old "chapter_id" field's value of the StudentDifficulty entity.
// If the StudentDifficulty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentDifficultyMutation) OldChapterID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterID: %w", err)
	}
	return oldValue.ChapterID, nil
}

// ResetChapterID resets all changes to the "chapter_id" field.
func (m *StudentDifficultyMutation) ResetChapterID() {
	m.chapter_id = nil
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (m *StudentDifficultyMutation) SetDifficultyLevel(i int) {
	m.difficulty_level = &i
	m.adddifficulty_level = nil
}

// DifficultyLevel returns the value of the "difficulty_level" field in the mutation.
func (m *StudentDifficultyMutation) DifficultyLevel() (r int, exists bool) {
	v := m.difficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyLevel returns the old "difficulty_level" field's value of the StudentDifficulty entity.
// If the StudentDifficulty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentDifficultyMutation) OldDifficultyLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyLevel: %w", err)
	}
	return oldValue.DifficultyLevel, nil
}

// AddDifficultyLevel adds i to the "difficulty_level" field.
func (m *StudentDifficultyMutation) AddDifficultyLevel(i int) {
	if m.adddifficulty_level != nil {
		*m.adddifficulty_level += i
	} else {
		m.adddifficulty_level = &i
	}
}

// AddedDifficultyLevel returns the value that was added to the "difficulty_level" field in this mutation.
func (m *StudentDifficultyMutation) AddedDifficultyLevel() (r int, exists bool) {
	v := m.adddifficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficultyLevel resets all changes to the "difficulty_level" field.
func (m *StudentDifficultyMutation) ResetDifficultyLevel() {
	m.difficulty_level = nil
	m.adddifficulty_level = nil
}

// SetMasteryLevel sets the "mastery_level" field.
func (m *StudentDifficultyMutation) SetMasteryLevel(f float64) {
	m.mastery_level = &f
	m.addmastery_level = nil
}

// MasteryLevel returns the value of the "mastery_level" field in the mutation.
func (m *StudentDifficultyMutation) MasteryLevel() (r float64, exists bool) {
	v := m.mastery_level
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryLevel returns the old "mastery_level" field's value of the StudentDifficulty entity.
// If the StudentDifficulty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentDifficultyMutation) OldMasteryLevel(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryLevel: %w", err)
	}
	return oldValue.MasteryLevel, nil
}

// AddMasteryLevel adds f to the "mastery_level" field.
func (m *StudentDifficultyMutation) AddMasteryLevel(f float64) {
	if m.addmastery_level != nil {
		*m.addmastery_level += f
	} else {
		m.addmastery_level = &f
	}
}

// AddedMasteryLevel returns the value that was added to the "mastery_level" field in this mutation.
func (m *StudentDifficultyMutation) AddedMasteryLevel() (r float64, exists bool) {
	v := m.addmastery_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteryLevel resets all changes to the "mastery_level" field.
func (m *StudentDifficultyMutation) ResetMasteryLevel() {
	m.mastery_level = nil
	m.addmastery_level = nil
}

// SetCorrectStreak sets the "correct_streak" field.
func (m *StudentDifficultyMutation) SetCorrectStreak(i int) {
	m.correct_streak = &i
	m.addcorrect_streak = nil
}

// CorrectStreak returns the value of the "correct_streak" field in the mutation.
func (m *StudentDifficultyMutation) CorrectStreak() (r int, exists bool) {
	v := m.correct_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectStreak returns the old "correct_streak" field's value of the StudentDifficulty entity.
// If the StudentDifficulty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentDifficultyMutation) OldCorrectStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectStreak: %w", err)
	}
	return oldValue.CorrectStreak, nil
}

// AddCorrectStreak adds i to the "correct_streak" field.
func (m *StudentDifficultyMutation) AddCorrectStreak(i int) {
	if m.addcorrect_streak != nil {
		*m.addcorrect_streak += i
	} else {
		m.addcorrect_streak = &i
	}
}

// AddedCorrectStreak returns the value that was added to the "correct_streak" field in this mutation.
func (m *StudentDifficultyMutation) AddedCorrectStreak() (r int, exists bool) {
	v := m.addcorrect_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectStreak resets all changes to the "correct_streak" field.
func (m *StudentDifficultyMutation) ResetCorrectStreak() {
	m.correct_streak = nil
	m.addcorrect_streak = nil
}

// SetWrongStreak sets the "wrong_streak" field.
func (m *StudentDifficultyMutation) SetWrongStreak(i int) {
	m.wrong_streak = &i
	m.addwrong_streak = nil
}

// WrongStreak returns the value of the "wrong_streak" field in the mutation.
func (m *StudentDifficultyMutation) WrongStreak() (r int, exists bool) {
	v := m.wrong_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldWrongStreak returns the old "wrong_streak" field's value of the StudentDifficulty entity.
// If the StudentDifficulty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentDifficultyMutation) OldWrongStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWrongStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWrongStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWrongStreak: %w", err)
	}
	return oldValue.WrongStreak, nil
}

// AddWrongStreak adds i to the "wrong_streak" field.
func (m *StudentDifficultyMutation) AddWrongStreak(i int) {
	if m.addwrong_streak != nil {
		*m.addwrong_streak += i
	} else {
		m.addwrong_streak = &i
	}
}

// AddedWrongStreak returns the value that was added to the "wrong_streak" field in this mutation.
func (m *StudentDifficultyMutation) AddedWrongStreak() (r int, exists bool) {
	v := m.addwrong_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetWrongStreak resets all changes to the "wrong_streak" field.
func (m *StudentDifficultyMutation) ResetWrongStreak() {
	m.wrong_streak = nil
	m.addwrong_streak = nil
}

// SetTotalAttempts sets the "total_attempts" field.
func (m *StudentDifficultyMutation) SetTotalAttempts(i int) {
	m.total_attempts = &i
	m.addtotal_attempts = nil
}

// TotalAttempts returns the value of the "total_attempts" field in the mutation.
func (m *StudentDifficultyMutation) TotalAttempts() (r int, exists bool) {
	v := m.total_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAttempts returns the old "total_attempts" field's value of the StudentDifficulty entity.
// If the StudentDifficulty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentDifficultyMutation) OldTotalAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAttempts: %w", err)
	}
	return oldValue.TotalAttempts, nil
}

// AddTotalAttempts adds i to the "total_attempts" field.
func (m *StudentDifficultyMutation) AddTotalAttempts(i int) {
	if m.addtotal_attempts != nil {
		*m.addtotal_attempts += i
	} else {
		m.addtotal_attempts = &i
	}
}

// AddedTotalAttempts returns the value that was added to the "total_attempts" field in this mutation.
func (m *StudentDifficultyMutation) AddedTotalAttempts() (r int, exists bool) {
	v := m.addtotal_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAttempts resets all changes to the "total_attempts" field.
func (m *StudentDifficultyMutation) ResetTotalAttempts() {
	m.total_attempts = nil
	m.addtotal_attempts = nil
}

// SetCorrectAnswers sets the "correct_answers" field.
func (m *StudentDifficultyMutation) SetCorrectAnswers(i int) {
	m.correct_answers = &i
	m.addcorrect_answers = nil
}

// CorrectAnswers returns the value of the "correct_answers" field in the mutation.
func (m *StudentDifficultyMutation) CorrectAnswers() (r int, exists bool) {
	v := m.correct_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswers returns the old "correct_answers" field's value of the StudentDifficulty entity.
// If the StudentDifficulty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentDifficultyMutation) OldCorrectAnswers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswers: %w", err)
	}
	return oldValue.CorrectAnswers, nil
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (m *StudentDifficultyMutation) AddCorrectAnswers(i int) {
	if m.addcorrect_answers != nil {
		*m.addcorrect_answers += i
	} else {
		m.addcorrect_answers = &i
	}
}

// AddedCorrectAnswers returns the value that was added to the "correct_answers" field in this mutation.
func (m *StudentDifficultyMutation) AddedCorrectAnswers() (r int, exists bool) {
	v := m.addcorrect_answers
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectAnswers resets all changes to the "correct_answers" field.
func (m *StudentDifficultyMutation) ResetCorrectAnswers() {
	m.correct_answers = nil
	m.addcorrect_answers = nil
}

// Where appends a list predicates to the StudentDifficultyMutation builder.
func (m *StudentDifficultyMutation) Where(ps ...predicate.StudentDifficulty) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudentDifficultyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudentDifficultyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudentDifficulty, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudentDifficultyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudentDifficultyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudentDifficulty).
func (m *StudentDifficultyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudentDifficultyMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.student_id != nil {
		fields = append(fields, studentdifficulty.FieldStudentID)
	}
	if m.chapter_id != nil {
		fields = append(fields, studentdifficulty.FieldChapterID)
	}
	if m.difficulty_level != nil {
		fields = append(fields, studentdifficulty.FieldDifficultyLevel)
	}
	if m.mastery_level != nil {
		fields = append(fields, studentdifficulty.FieldMasteryLevel)
	}
	if m.correct_streak != nil {
		fields = append(fields, studentdifficulty.FieldCorrectStreak)
	}
	if m.wrong_streak != nil {
		fields = append(fields, studentdifficulty.FieldWrongStreak)
	}
	if m.total_attempts != nil {
		fields = append(fields, studentdifficulty.FieldTotalAttempts)
	}
	if m.correct_answers != nil {
		fields = append(fields, studentdifficulty.FieldCorrectAnswers)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudentDifficultyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studentdifficulty.FieldStudentID:
		return m.StudentID()
	case studentdifficulty.FieldChapterID:
		return m.ChapterID()
	case studentdifficulty.FieldDifficultyLevel:
		return m.DifficultyLevel()
	case studentdifficulty.FieldMasteryLevel:
		return m.MasteryLevel()
	case studentdifficulty.FieldCorrectStreak:
		return m.CorrectStreak()
	case studentdifficulty.FieldWrongStreak:
		return m.WrongStreak()
	case studentdifficulty.FieldTotalAttempts:
		return m.TotalAttempts()
	case studentdifficulty.FieldCorrectAnswers:
		return m.CorrectAnswers()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudentDifficultyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studentdifficulty.FieldStudentID:
		return m.OldStudentID(ctx)
	case studentdifficulty.FieldChapterID:
		return m.OldChapterID(ctx)
	case studentdifficulty.FieldDifficultyLevel:
		return m.OldDifficultyLevel(ctx)
	case studentdifficulty.FieldMasteryLevel:
		return m.OldMasteryLevel(ctx)
	case studentdifficulty.FieldCorrectStreak:
		return m.OldCorrectStreak(ctx)
	case studentdifficulty.FieldWrongStreak:
		return m.OldWrongStreak(ctx)
	case studentdifficulty.FieldTotalAttempts:
		return m.OldTotalAttempts(ctx)
	case studentdifficulty.FieldCorrectAnswers:
		return m.OldCorrectAnswers(ctx)
	}
	return nil, fmt.Errorf("unknown StudentDifficulty field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentDifficultyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studentdifficulty.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case studentdifficulty.FieldChapterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterID(v)
		return nil
	case studentdifficulty.FieldDifficultyLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyLevel(v)
		return nil
	case studentdifficulty.FieldMasteryLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryLevel(v)
		return nil
	case studentdifficulty.FieldCorrectStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectStreak(v)
		return nil
	case studentdifficulty.FieldWrongStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWrongStreak(v)
		return nil
	case studentdifficulty.FieldTotalAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAttempts(v)
		return nil
	case studentdifficulty.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswers(v)
		return nil
	}
	return fmt.Errorf("unknown StudentDifficulty field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudentDifficultyMutation) AddedFields() []string {
	var fields []string
	if m.adddifficulty_level != nil {
		fields = append(fields, studentdifficulty.FieldDifficultyLevel)
	}
	if m.addmastery_level != nil {
		fields = append(fields, studentdifficulty.FieldMasteryLevel)
	}
	if m.addcorrect_streak != nil {
		fields = append(fields, studentdifficulty.FieldCorrectStreak)
	}
	if m.addwrong_streak != nil {
		fields = append(fields, studentdifficulty.FieldWrongStreak)
	}
	if m.addtotal_attempts != nil {
		fields = append(fields, studentdifficulty.FieldTotalAttempts)
	}
	if m.addcorrect_answers != nil {
		fields = append(fields, studentdifficulty.FieldCorrectAnswers)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudentDifficultyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studentdifficulty.FieldDifficultyLevel:
		return m.AddedDifficultyLevel()
	case studentdifficulty.FieldMasteryLevel:
		return m.AddedMasteryLevel()
	case studentdifficulty.FieldCorrectStreak:
		return m.AddedCorrectStreak()
	case studentdifficulty.FieldWrongStreak:
		return m.AddedWrongStreak()
	case studentdifficulty.FieldTotalAttempts:
		return m.AddedTotalAttempts()
	case studentdifficulty.FieldCorrectAnswers:
		return m.AddedCorrectAnswers()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentDifficultyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studentdifficulty.FieldDifficultyLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficultyLevel(v)
		return nil
	case studentdifficulty.FieldMasteryLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteryLevel(v)
		return nil
	case studentdifficulty.FieldCorrectStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectStreak(v)
		return nil
	case studentdifficulty.FieldWrongStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWrongStreak(v)
		return nil
	case studentdifficulty.FieldTotalAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAttempts(v)
		return nil
	case studentdifficulty.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectAnswers(v)
		return nil
	}
	return fmt.Errorf("unknown StudentDifficulty numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudentDifficultyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudentDifficultyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudentDifficultyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StudentDifficulty nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudentDifficultyMutation) ResetField(name string) error {
	switch name {
	case studentdifficulty.FieldStudentID:
		m.ResetStudentID()
		return nil
	case studentdifficulty.FieldChapterID:
		m.ResetChapterID()
		return nil
	case studentdifficulty.FieldDifficultyLevel:
		m.ResetDifficultyLevel()
		return nil
	case studentdifficulty.FieldMasteryLevel:
		m.ResetMasteryLevel()
		return nil
	case studentdifficulty.FieldCorrectStreak:
		m.ResetCorrectStreak()
		return nil
	case studentdifficulty.FieldWrongStreak:
		m.ResetWrongStreak()
		return nil
	case studentdifficulty.FieldTotalAttempts:
		m.ResetTotalAttempts()
		return nil
	case studentdifficulty.FieldCorrectAnswers:
		m.ResetCorrectAnswers()
		return nil
	}
	return fmt.Errorf("unknown StudentDifficulty field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudentDifficultyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudentDifficultyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudentDifficultyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudentDifficultyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudentDifficultyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudentDifficultyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudentDifficultyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StudentDifficulty unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudentDifficultyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StudentDifficulty edge %s", name)
}

// TransitionEventMutation represents an operation that mutates the TransitionEvent nodes in the graph.
type TransitionEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	session_id       *string
	student_id       *string
	chapter_id       *string
	question_id      *string
	prev_level       *int
	addprev_level    *int
	prev_mastery     *float64
	addprev_mastery  *float64
	new_level        *int
	addnew_level     *int
	new_mastery      *float64
	addnew_mastery   *float64
	action           *string
	reason           *string
	reward           *int
	addreward        *int
	correct          *bool
	time_spent_ms    *int64
	addtime_spent_ms *int64
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*TransitionEvent, error)
	predicates       []predicate.TransitionEvent
}

var _ ent.Mutation = (*TransitionEventMutation)(nil)

// transitioneventOption allows management of the mutation configuration using functional options.
type transitioneventOption func(*TransitionEventMutation)

// newTransitionEventMutation creates new mutation for the TransitionEvent entity.
func newTransitionEventMutation(c config, op Op, opts ...transitioneventOption) *TransitionEventMutation {
	m := &TransitionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTransitionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTransitionEventID sets the ID field of the mutation.
func withTransitionEventID(id int) transitioneventOption {
	return func(m *TransitionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TransitionEvent
		)
		m.oldValue = func(ctx context.Context) (*TransitionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TransitionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTransitionEvent sets the old TransitionEvent of the mutation.
func withTransitionEvent(node *TransitionEvent) transitioneventOption {
	return func(m *TransitionEventMutation) {
		m.oldValue = func(context.Context) (*TransitionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TransitionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TransitionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TransitionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TransitionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TransitionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *TransitionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *TransitionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *TransitionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *TransitionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *TransitionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *TransitionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *TransitionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *TransitionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *TransitionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TransitionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *TransitionEventMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[transitionevent.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *TransitionEventMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[transitionevent.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *TransitionEventMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, transitionevent.FieldSessionID)
}

// SetStudentID sets the "student_id" field.
func (m *TransitionEventMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *TransitionEventMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *TransitionEventMutation) ResetStudentID() {
	m.student_id = nil
}

// SetChapterID sets the "chapter_id" field.
func (m *TransitionEventMutation) SetChapterID(s string) {
	m.chapter_id = &s
}

// ChapterID returns the value of the "chapter_id" field in the mutation.
func (m *TransitionEventMutation) ChapterID() (r string, exists bool) {
	v := m.chapter_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterID returns the old "chapter_id" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldChapterID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterID: %w", err)
	}
	return oldValue.ChapterID, nil
}

// ResetChapterID resets all changes to the "chapter_id" field.
func (m *TransitionEventMutation) ResetChapterID() {
	m.chapter_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *TransitionEventMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *TransitionEventMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ClearQuestionID clears the value of the "question_id" field.
func (m *TransitionEventMutation) ClearQuestionID() {
	m.question_id = nil
	m.clearedFields[transitionevent.FieldQuestionID] = struct{}{}
}

// QuestionIDCleared returns if the "question_id" field was cleared in this mutation.
func (m *TransitionEventMutation) QuestionIDCleared() bool {
	_, ok := m.clearedFields[transitionevent.FieldQuestionID]
	return ok
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *TransitionEventMutation) ResetQuestionID() {
	m.question_id = nil
	delete(m.clearedFields, transitionevent.FieldQuestionID)
}

// SetPrevLevel sets the "prev_level" field.
func (m *TransitionEventMutation) SetPrevLevel(i int) {
	m.prev_level = &i
	m.addprev_level = nil
}

// PrevLevel returns the value of the "prev_level" field in the mutation.
func (m *TransitionEventMutation) PrevLevel() (r int, exists bool) {
	v := m.prev_level
	if v == nil {
		return
	}
	return *v, true
}

// OldPrevLevel returns the old "prev_level" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldPrevLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrevLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrevLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrevLevel: %w", err)
	}
	return oldValue.PrevLevel, nil
}

// AddPrevLevel adds i to the "prev_level" field.
func (m *TransitionEventMutation) AddPrevLevel(i int) {
	if m.addprev_level != nil {
		*m.addprev_level += i
	} else {
		m.addprev_level = &i
	}
}

// AddedPrevLevel returns the value that was added to the "prev_level" field in this mutation.
func (m *TransitionEventMutation) AddedPrevLevel() (r int, exists bool) {
	v := m.addprev_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrevLevel resets all changes to the "prev_level" field.
func (m *TransitionEventMutation) ResetPrevLevel() {
	m.prev_level = nil
	m.addprev_level = nil
}

// SetPrevMastery sets the "prev_mastery" field.
func (m *TransitionEventMutation) SetPrevMastery(f float64) {
	m.prev_mastery = &f
	m.addprev_mastery = nil
}

// PrevMastery returns the value of the "prev_mastery" field in the mutation.
func (m *TransitionEventMutation) PrevMastery() (r float64, exists bool) {
	v := m.prev_mastery
	if v == nil {
		return
	}
	return *v, true
}

// OldPrevMastery returns the old "prev_mastery" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldPrevMastery(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrevMastery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrevMastery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrevMastery: %w", err)
	}
	return oldValue.PrevMastery, nil
}

// AddPrevMastery adds f to the "prev_mastery" field.
func (m *TransitionEventMutation) AddPrevMastery(f float64) {
	if m.addprev_mastery != nil {
		*m.addprev_mastery += f
	} else {
		m.addprev_mastery = &f
	}
}

// AddedPrevMastery returns the value that was added to the "prev_mastery" field in this mutation.
func (m *TransitionEventMutation) AddedPrevMastery() (r float64, exists bool) {
	v := m.addprev_mastery
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrevMastery resets all changes to the "prev_mastery" field.
func (m *TransitionEventMutation) ResetPrevMastery() {
	m.prev_mastery = nil
	m.addprev_mastery = nil
}

// SetNewLevel sets the "new_level" field.
func (m *TransitionEventMutation) SetNewLevel(i int) {
	m.new_level = &i
	m.addnew_level = nil
}

// NewLevel returns the value of the "new_level" field in the mutation.
func (m *TransitionEventMutation) NewLevel() (r int, exists bool) {
	v := m.new_level
	if v == nil {
		return
	}
	return *v, true
}

// OldNewLevel returns the old "new_level" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldNewLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewLevel: %w", err)
	}
	return oldValue.NewLevel, nil
}

// AddNewLevel adds i to the "new_level" field.
func (m *TransitionEventMutation) AddNewLevel(i int) {
	if m.addnew_level != nil {
		*m.addnew_level += i
	} else {
		m.addnew_level = &i
	}
}

// AddedNewLevel returns the value that was added to the "new_level" field in this mutation.
func (m *TransitionEventMutation) AddedNewLevel() (r int, exists bool) {
	v := m.addnew_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewLevel resets all changes to the "new_level" field.
func (m *TransitionEventMutation) ResetNewLevel() {
	m.new_level = nil
	m.addnew_level = nil
}

// SetNewMastery sets the "new_mastery" field.
func (m *TransitionEventMutation) SetNewMastery(f float64) {
	m.new_mastery = &f
	m.addnew_mastery = nil
}

// NewMastery returns the value of the "new_mastery" field in the mutation.
func (m *TransitionEventMutation) NewMastery() (r float64, exists bool) {
	v := m.new_mastery
	if v == nil {
		return
	}
	return *v, true
}

// OldNewMastery returns the old "new_mastery" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldNewMastery(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewMastery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewMastery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewMastery: %w", err)
	}
	return oldValue.NewMastery, nil
}

// AddNewMastery adds f to the "new_mastery" field.
func (m *TransitionEventMutation) AddNewMastery(f float64) {
	if m.addnew_mastery != nil {
		*m.addnew_mastery += f
	} else {
		m.addnew_mastery = &f
	}
}

// AddedNewMastery returns the value that was added to the "new_mastery" field in this mutation.
func (m *TransitionEventMutation) AddedNewMastery() (r float64, exists bool) {
	v := m.addnew_mastery
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewMastery resets all changes to the "new_mastery" field.
func (m *TransitionEventMutation) ResetNewMastery() {
	m.new_mastery = nil
	m.addnew_mastery = nil
}

// SetAction sets the "action" field.
func (m *TransitionEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *TransitionEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *TransitionEventMutation) ResetAction() {
	m.action = nil
}

// SetReason sets the "reason" field.
func (m *TransitionEventMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *TransitionEventMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *TransitionEventMutation) ResetReason() {
	m.reason = nil
}

// SetReward sets the "reward" field.
func (m *TransitionEventMutation) SetReward(i int) {
	m.reward = &i
	m.addreward = nil
}

// Reward returns the value of the "reward" field in the mutation.
func (m *TransitionEventMutation) Reward() (r int, exists bool) {
	v := m.reward
	if v == nil {
		return
	}
	return *v, true
}

// OldReward returns the old "reward" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldReward(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReward is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReward requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReward: %w", err)
	}
	return oldValue.Reward, nil
}

// AddReward adds i to the "reward" field.
func (m *TransitionEventMutation) AddReward(i int) {
	if m.addreward != nil {
		*m.addreward += i
	} else {
		m.addreward = &i
	}
}

// AddedReward returns the value that was added to the "reward" field in this mutation.
func (m *TransitionEventMutation) AddedReward() (r int, exists bool) {
	v := m.addreward
	if v == nil {
		return
	}
	return *v, true
}

// ResetReward resets all changes to the "reward" field.
func (m *TransitionEventMutation) ResetReward() {
	m.reward = nil
	m.addreward = nil
}

// SetCorrect sets the "correct" field.
func (m *TransitionEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *TransitionEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *TransitionEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (m *TransitionEventMutation) SetTimeSpentMs(i int64) {
	m.time_spent_ms = &i
	m.addtime_spent_ms = nil
}

// TimeSpentMs returns the value of the "time_spent_ms" field in the mutation.
func (m *TransitionEventMutation) TimeSpentMs() (r int64, exists bool) {
	v := m.time_spent_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentMs returns the old "time_spent_ms" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldTimeSpentMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentMs: %w", err)
	}
	return oldValue.TimeSpentMs, nil
}

// AddTimeSpentMs adds i to the "time_spent_ms" field.
func (m *TransitionEventMutation) AddTimeSpentMs(i int64) {
	if m.addtime_spent_ms != nil {
		*m.addtime_spent_ms += i
	} else {
		m.addtime_spent_ms = &i
	}
}

// AddedTimeSpentMs returns the value that was added to the "time_spent_ms" field in this mutation.
func (m *TransitionEventMutation) AddedTimeSpentMs() (r int64, exists bool) {
	v := m.addtime_spent_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentMs resets all changes to the "time_spent_ms" field.
func (m *TransitionEventMutation) ResetTimeSpentMs() {
	m.time_spent_ms = nil
	m.addtime_spent_ms = nil
}

// Where appends a list predicates to the TransitionEventMutation builder.
func (m *TransitionEventMutation) Where(ps ...predicate.TransitionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TransitionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TransitionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TransitionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TransitionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TransitionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TransitionEvent).
func (m *TransitionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TransitionEventMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.sequence != nil {
		fields = append(fields, transitionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, transitionevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, transitionevent.FieldSessionID)
	}
	if m.student_id != nil {
		fields = append(fields, transitionevent.FieldStudentID)
	}
	if m.chapter_id != nil {
		fields = append(fields, transitionevent.FieldChapterID)
	}
	if m.question_id != nil {
		fields = append(fields, transitionevent.FieldQuestionID)
	}
	if m.prev_level != nil {
		fields = append(fields, transitionevent.FieldPrevLevel)
	}
	if m.prev_mastery != nil {
		fields = append(fields, transitionevent.FieldPrevMastery)
	}
	if m.new_level != nil {
		fields = append(fields, transitionevent.FieldNewLevel)
	}
	if m.new_mastery != nil {
		fields = append(fields, transitionevent.FieldNewMastery)
	}
	if m.action != nil {
		fields = append(fields, transitionevent.FieldAction)
	}
	if m.reason != nil {
		fields = append(fields, transitionevent.FieldReason)
	}
	if m.reward != nil {
		fields = append(fields, transitionevent.FieldReward)
	}
	if m.correct != nil {
		fields = append(fields, transitionevent.FieldCorrect)
	}
	if m.time_spent_ms != nil {
		fields = append(fields, transitionevent.FieldTimeSpentMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TransitionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transitionevent.FieldSequence:
		return m.Sequence()
	case transitionevent.FieldTimestamp:
		return m.Timestamp()
	case transitionevent.FieldSessionID:
		return m.SessionID()
	case transitionevent.FieldStudentID:
		return m.StudentID()
	case transitionevent.FieldChapterID:
		return m.ChapterID()
	case transitionevent.FieldQuestionID:
		return m.QuestionID()
	case transitionevent.FieldPrevLevel:
		return m.PrevLevel()
	case transitionevent.FieldPrevMastery:
		return m.PrevMastery()
	case transitionevent.FieldNewLevel:
		return m.NewLevel()
	case transitionevent.FieldNewMastery:
		return m.NewMastery()
	case transitionevent.FieldAction:
		return m.Action()
	case transitionevent.FieldReason:
		return m.Reason()
	case transitionevent.FieldReward:
		return m.Reward()
	case transitionevent.FieldCorrect:
		return m.Correct()
	case transitionevent.FieldTimeSpentMs:
		return m.TimeSpentMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TransitionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transitionevent.FieldSequence:
		return m.OldSequence(ctx)
	case transitionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case transitionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case transitionevent.FieldStudentID:
		return m.OldStudentID(ctx)
	case transitionevent.FieldChapterID:
		return m.OldChapterID(ctx)
	case transitionevent.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case transitionevent.FieldPrevLevel:
		return m.OldPrevLevel(ctx)
	case transitionevent.FieldPrevMastery:
		return m.OldPrevMastery(ctx)
	case transitionevent.FieldNewLevel:
		return m.OldNewLevel(ctx)
	case transitionevent.FieldNewMastery:
		return m.OldNewMastery(ctx)
	case transitionevent.FieldAction:
		return m.OldAction(ctx)
	case transitionevent.FieldReason:
		return m.OldReason(ctx)
	case transitionevent.FieldReward:
		return m.OldReward(ctx)
	case transitionevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case transitionevent.FieldTimeSpentMs:
		return m.OldTimeSpentMs(ctx)
	}
	return nil, fmt.Errorf("unknown TransitionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransitionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transitionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case transitionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case transitionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case transitionevent.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case transitionevent.FieldChapterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterID(v)
		return nil
	case transitionevent.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case transitionevent.FieldPrevLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrevLevel(v)
		return nil
	case transitionevent.FieldPrevMastery:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrevMastery(v)
		return nil
	case transitionevent.FieldNewLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewLevel(v)
		return nil
	case transitionevent.FieldNewMastery:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewMastery(v)
		return nil
	case transitionevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case transitionevent.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case transitionevent.FieldReward:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReward(v)
		return nil
	case transitionevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case transitionevent.FieldTimeSpentMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentMs(v)
		return nil
	}
	return fmt.Errorf("unknown TransitionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TransitionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, transitionevent.FieldSequence)
	}
	if m.addprev_level != nil {
		fields = append(fields, transitionevent.FieldPrevLevel)
	}
	if m.addprev_mastery != nil {
		fields = append(fields, transitionevent.FieldPrevMastery)
	}
	if m.addnew_level != nil {
		fields = append(fields, transitionevent.FieldNewLevel)
	}
	if m.addnew_mastery != nil {
		fields = append(fields, transitionevent.FieldNewMastery)
	}
	if m.addreward != nil {
		fields = append(fields, transitionevent.FieldReward)
	}
	if m.addtime_spent_ms != nil {
		fields = append(fields, transitionevent.FieldTimeSpentMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TransitionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transitionevent.FieldSequence:
		return m.AddedSequence()
	case transitionevent.FieldPrevLevel:
		return m.AddedPrevLevel()
	case transitionevent.FieldPrevMastery:
		return m.AddedPrevMastery()
	case transitionevent.FieldNewLevel:
		return m.AddedNewLevel()
	case transitionevent.FieldNewMastery:
		return m.AddedNewMastery()
	case transitionevent.FieldReward:
		return m.AddedReward()
	case transitionevent.FieldTimeSpentMs:
		return m.AddedTimeSpentMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransitionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transitionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case transitionevent.FieldPrevLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrevLevel(v)
		return nil
	case transitionevent.FieldPrevMastery:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrevMastery(v)
		return nil
	case transitionevent.FieldNewLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewLevel(v)
		return nil
	case transitionevent.FieldNewMastery:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewMastery(v)
		return nil
	case transitionevent.FieldReward:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReward(v)
		return nil
	case transitionevent.FieldTimeSpentMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentMs(v)
		return nil
	}
	return fmt.Errorf("unknown TransitionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TransitionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transitionevent.FieldSessionID) {
		fields = append(fields, transitionevent.FieldSessionID)
	}
	if m.FieldCleared(transitionevent.FieldQuestionID) {
		fields = append(fields, transitionevent.FieldQuestionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TransitionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TransitionEventMutation) ClearField(name string) error {
	switch name {
	case transitionevent.FieldSessionID:
		m.ClearSessionID()
		return nil
	case transitionevent.FieldQuestionID:
		m.ClearQuestionID()
		return nil
	}
	return fmt.Errorf("unknown TransitionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TransitionEventMutation) ResetField(name string) error {
	switch name {
	case transitionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case transitionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case transitionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case transitionevent.FieldStudentID:
		m.ResetStudentID()
		return nil
	case transitionevent.FieldChapterID:
		m.ResetChapterID()
		return nil
	case transitionevent.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case transitionevent.FieldPrevLevel:
		m.ResetPrevLevel()
		return nil
	case transitionevent.FieldPrevMastery:
		m.ResetPrevMastery()
		return nil
	case transitionevent.FieldNewLevel:
		m.ResetNewLevel()
		return nil
	case transitionevent.FieldNewMastery:
		m.ResetNewMastery()
		return nil
	case transitionevent.FieldAction:
		m.ResetAction()
		return nil
	case transitionevent.FieldReason:
		m.ResetReason()
		return nil
	case transitionevent.FieldReward:
		m.ResetReward()
		return nil
	case transitionevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case transitionevent.FieldTimeSpentMs:
		m.ResetTimeSpentMs()
		return nil
	}
	return fmt.Errorf("unknown TransitionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TransitionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TransitionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TransitionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TransitionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TransitionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TransitionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TransitionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TransitionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TransitionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TransitionEvent edge %s", name)
}
