// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/PTMAbellana/Polegion-sub002/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/PTMAbellana/Polegion-sub002/ent/geometryquestion"
	"github.com/PTMAbellana/Polegion-sub002/ent/llmrequestevent"
	"github.com/PTMAbellana/Polegion-sub002/ent/studentdifficulty"
	"github.com/PTMAbellana/Polegion-sub002/ent/transitionevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// GeometryQuestion is the client for interacting with the GeometryQuestion builders.
	GeometryQuestion *GeometryQuestionClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// StudentDifficulty is the client for interacting with the StudentDifficulty builders.
	StudentDifficulty *StudentDifficultyClient
	// TransitionEvent is the client for interacting with the TransitionEvent builders.
	TransitionEvent *TransitionEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.GeometryQuestion = NewGeometryQuestionClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.StudentDifficulty = NewStudentDifficultyClient(c.config)
	c.TransitionEvent = NewTransitionEventClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		GeometryQuestion:  NewGeometryQuestionClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		StudentDifficulty: NewStudentDifficultyClient(cfg),
		TransitionEvent:   NewTransitionEventClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		GeometryQuestion:  NewGeometryQuestionClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		StudentDifficulty: NewStudentDifficultyClient(cfg),
		TransitionEvent:   NewTransitionEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		GeometryQuestion.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.GeometryQuestion.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.StudentDifficulty.Use(hooks...)
	c.TransitionEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.GeometryQuestion.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.StudentDifficulty.Intercept(interceptors...)
	c.TransitionEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *GeometryQuestionMutation:
		return c.GeometryQuestion.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *StudentDifficultyMutation:
		return c.StudentDifficulty.mutate(ctx, m)
	case *TransitionEventMutation:
		return c.TransitionEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// GeometryQuestionClient is a client for the GeometryQuestion schema.
type GeometryQuestionClient struct {
	config
}

// NewGeometryQuestionClient returns a client for the GeometryQuestion from the given config.
func NewGeometryQuestionClient(c config) *GeometryQuestionClient {
	return &GeometryQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `geometryquestion.Hooks(f(g(h())))`.
func (c *GeometryQuestionClient) Use(hooks ...Hook) {
	c.hooks.GeometryQuestion = append(c.hooks.GeometryQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `geometryquestion.Intercept(f(g(h())))`.
func (c *GeometryQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.GeometryQuestion = append(c.inters.GeometryQuestion, interceptors...)
}

// Create returns a builder for creating a GeometryQuestion entity.
func (c *GeometryQuestionClient) Create() *GeometryQuestionCreate {
	mutation := newGeometryQuestionMutation(c.config, OpCreate)
	return &GeometryQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GeometryQuestion entities.
func (c *GeometryQuestionClient) CreateBulk(builders ...*GeometryQuestionCreate) *GeometryQuestionCreateBulk {
	return &GeometryQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GeometryQuestionClient) MapCreateBulk(slice any, setFunc func(*GeometryQuestionCreate, int)) *GeometryQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GeometryQuestionCreateBulk{err: fmt.Errorf("calling to GeometryQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GeometryQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GeometryQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GeometryQuestion.
func (c *GeometryQuestionClient) Update() *GeometryQuestionUpdate {
	mutation := newGeometryQuestionMutation(c.config, OpUpdate)
	return &GeometryQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GeometryQuestionClient) UpdateOne(_m *GeometryQuestion) *GeometryQuestionUpdateOne {
	mutation := newGeometryQuestionMutation(c.config, OpUpdateOne, withGeometryQuestion(_m))
	return &GeometryQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GeometryQuestionClient) UpdateOneID(id int) *GeometryQuestionUpdateOne {
	mutation := newGeometryQuestionMutation(c.config, OpUpdateOne, withGeometryQuestionID(id))
	return &GeometryQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GeometryQuestion.
func (c *GeometryQuestionClient) Delete() *GeometryQuestionDelete {
	mutation := newGeometryQuestionMutation(c.config, OpDelete)
	return &GeometryQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GeometryQuestionClient) DeleteOne(_m *GeometryQuestion) *GeometryQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GeometryQuestionClient) DeleteOneID(id int) *GeometryQuestionDeleteOne {
	builder := c.Delete().Where(geometryquestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GeometryQuestionDeleteOne{builder}
}

// Query returns a query builder for GeometryQuestion.
func (c *GeometryQuestionClient) Query() *GeometryQuestionQuery {
	return &GeometryQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGeometryQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a GeometryQuestion entity by its id.
func (c *GeometryQuestionClient) Get(ctx context.Context, id int) (*GeometryQuestion, error) {
	return c.Query().Where(geometryquestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GeometryQuestionClient) GetX(ctx context.Context, id int) *GeometryQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GeometryQuestionClient) Hooks() []Hook {
	return c.hooks.GeometryQuestion
}

// Interceptors returns the client interceptors.
func (c *GeometryQuestionClient) Interceptors() []Interceptor {
	return c.inters.GeometryQuestion
}

func (c *GeometryQuestionClient) mutate(ctx context.Context, m *GeometryQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GeometryQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GeometryQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GeometryQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GeometryQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GeometryQuestion mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// StudentDifficultyClient is a client for the StudentDifficulty schema.
type StudentDifficultyClient struct {
	config
}

// NewStudentDifficultyClient returns a client for the StudentDifficulty from the given config.
func NewStudentDifficultyClient(c config) *StudentDifficultyClient {
	return &StudentDifficultyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studentdifficulty.Hooks(f(g(h())))`.
func (c *StudentDifficultyClient) Use(hooks ...Hook) {
	c.hooks.StudentDifficulty = append(c.hooks.StudentDifficulty, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studentdifficulty.Intercept(f(g(h())))`.
func (c *StudentDifficultyClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudentDifficulty = append(c.inters.StudentDifficulty, interceptors...)
}

// Create returns a builder for creating a StudentDifficulty entity.
func (c *StudentDifficultyClient) Create() *StudentDifficultyCreate {
	mutation := newStudentDifficultyMutation(c.config, OpCreate)
	return &StudentDifficultyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudentDifficulty entities.
func (c *StudentDifficultyClient) CreateBulk(builders ...*StudentDifficultyCreate) *StudentDifficultyCreateBulk {
	return &StudentDifficultyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudentDifficultyClient) MapCreateBulk(slice any, setFunc func(*StudentDifficultyCreate, int)) *StudentDifficultyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudentDifficultyCreateBulk{err: fmt.Errorf("calling to StudentDifficultyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudentDifficultyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudentDifficultyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudentDifficulty.
func (c *StudentDifficultyClient) Update() *StudentDifficultyUpdate {
	mutation := newStudentDifficultyMutation(c.config, OpUpdate)
	return &StudentDifficultyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudentDifficultyClient) UpdateOne(_m *StudentDifficulty) *StudentDifficultyUpdateOne {
	mutation := newStudentDifficultyMutation(c.config, OpUpdateOne, withStudentDifficulty(_m))
	return &StudentDifficultyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudentDifficultyClient) UpdateOneID(id int) *StudentDifficultyUpdateOne {
	mutation := newStudentDifficultyMutation(c.config, OpUpdateOne, withStudentDifficultyID(id))
	return &StudentDifficultyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudentDifficulty.
func (c *StudentDifficultyClient) Delete() *StudentDifficultyDelete {
	mutation := newStudentDifficultyMutation(c.config, OpDelete)
	return &StudentDifficultyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudentDifficultyClient) DeleteOne(_m *StudentDifficulty) *StudentDifficultyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudentDifficultyClient) DeleteOneID(id int) *StudentDifficultyDeleteOne {
	builder := c.Delete().Where(studentdifficulty.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudentDifficultyDeleteOne{builder}
}

// Query returns a query builder for StudentDifficulty.
func (c *StudentDifficultyClient) Query() *StudentDifficultyQuery {
	return &StudentDifficultyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudentDifficulty},
		inters: c.Interceptors(),
	}
}

// Get returns a StudentDifficulty entity by its id.
func (c *StudentDifficultyClient) Get(ctx context.Context, id int) (*StudentDifficulty, error) {
	return c.Query().Where(studentdifficulty.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudentDifficultyClient) GetX(ctx context.Context, id int) *StudentDifficulty {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudentDifficultyClient) Hooks() []Hook {
	return c.hooks.StudentDifficulty
}

// Interceptors returns the client interceptors.
func (c *StudentDifficultyClient) Interceptors() []Interceptor {
	return c.inters.StudentDifficulty
}

func (c *StudentDifficultyClient) mutate(ctx context.Context, m *StudentDifficultyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudentDifficultyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudentDifficultyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudentDifficultyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudentDifficultyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudentDifficulty mutation op: %q", m.Op())
	}
}

// TransitionEventClient is a client for the TransitionEvent schema.
type TransitionEventClient struct {
	config
}

// NewTransitionEventClient returns a client for the TransitionEvent from the given config.
func NewTransitionEventClient(c config) *TransitionEventClient {
	return &TransitionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transitionevent.Hooks(f(g(h())))`.
func (c *TransitionEventClient) Use(hooks ...Hook) {
	c.hooks.TransitionEvent = append(c.hooks.TransitionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transitionevent.Intercept(f(g(h())))`.
func (c *TransitionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TransitionEvent = append(c.inters.TransitionEvent, interceptors...)
}

// Create returns a builder for creating a TransitionEvent entity.
func (c *TransitionEventClient) Create() *TransitionEventCreate {
	mutation := newTransitionEventMutation(c.config, OpCreate)
	return &TransitionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TransitionEvent entities.
func (c *TransitionEventClient) CreateBulk(builders ...*TransitionEventCreate) *TransitionEventCreateBulk {
	return &TransitionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TransitionEventClient) MapCreateBulk(slice any, setFunc func(*TransitionEventCreate, int)) *TransitionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TransitionEventCreateBulk{err: fmt.Errorf("calling to TransitionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TransitionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TransitionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TransitionEvent.
func (c *TransitionEventClient) Update() *TransitionEventUpdate {
	mutation := newTransitionEventMutation(c.config, OpUpdate)
	return &TransitionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TransitionEventClient) UpdateOne(_m *TransitionEvent) *TransitionEventUpdateOne {
	mutation := newTransitionEventMutation(c.config, OpUpdateOne, withTransitionEvent(_m))
	return &TransitionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TransitionEventClient) UpdateOneID(id int) *TransitionEventUpdateOne {
	mutation := newTransitionEventMutation(c.config, OpUpdateOne, withTransitionEventID(id))
	return &TransitionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TransitionEvent.
func (c *TransitionEventClient) Delete() *TransitionEventDelete {
	mutation := newTransitionEventMutation(c.config, OpDelete)
	return &TransitionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TransitionEventClient) DeleteOne(_m *TransitionEvent) *TransitionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TransitionEventClient) DeleteOneID(id int) *TransitionEventDeleteOne {
	builder := c.Delete().Where(transitionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TransitionEventDeleteOne{builder}
}

// Query returns a query builder for TransitionEvent.
func (c *TransitionEventClient) Query() *TransitionEventQuery {
	return &TransitionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTransitionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TransitionEvent entity by its id.
func (c *TransitionEventClient) Get(ctx context.Context, id int) (*TransitionEvent, error) {
	return c.Query().Where(transitionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TransitionEventClient) GetX(ctx context.Context, id int) *TransitionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TransitionEventClient) Hooks() []Hook {
	return c.hooks.TransitionEvent
}

// Interceptors returns the client interceptors.
func (c *TransitionEventClient) Interceptors() []Interceptor {
	return c.inters.TransitionEvent
}

func (c *TransitionEventClient) mutate(ctx context.Context, m *TransitionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TransitionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TransitionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TransitionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TransitionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TransitionEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		GeometryQuestion, LLMRequestEvent, StudentDifficulty, TransitionEvent []ent.Hook
	}
	inters struct {
		GeometryQuestion, LLMRequestEvent, StudentDifficulty,
		TransitionEvent []ent.Interceptor
	}
)
