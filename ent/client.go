// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/mightyhq/prepcore/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/mightyhq/prepcore/ent/dailyplan"
	"github.com/mightyhq/prepcore/ent/learnerprofile"
	"github.com/mightyhq/prepcore/ent/llmrequestevent"
	"github.com/mightyhq/prepcore/ent/question"
	"github.com/mightyhq/prepcore/ent/stressrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DailyPlan is the client for interacting with the DailyPlan builders.
	DailyPlan *DailyPlanClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// LearnerProfile is the client for interacting with the LearnerProfile builders.
	LearnerProfile *LearnerProfileClient
	// Question is the client for interacting with the Question builders.
	Question *QuestionClient
	// StressRecord is the client for interacting with the StressRecord builders.
	StressRecord *StressRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DailyPlan = NewDailyPlanClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.LearnerProfile = NewLearnerProfileClient(c.config)
	c.Question = NewQuestionClient(c.config)
	c.StressRecord = NewStressRecordClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		DailyPlan:       NewDailyPlanClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		LearnerProfile:  NewLearnerProfileClient(cfg),
		Question:        NewQuestionClient(cfg),
		StressRecord:    NewStressRecordClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		DailyPlan:       NewDailyPlanClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		LearnerProfile:  NewLearnerProfileClient(cfg),
		Question:        NewQuestionClient(cfg),
		StressRecord:    NewStressRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DailyPlan.
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
	c.DailyPlan.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.LearnerProfile.Use(hooks...)
	c.Question.Use(hooks...)
	c.StressRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.DailyPlan.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.LearnerProfile.Intercept(interceptors...)
	c.Question.Intercept(interceptors...)
	c.StressRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DailyPlanMutation:
		return c.DailyPlan.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *LearnerProfileMutation:
		return c.LearnerProfile.mutate(ctx, m)
	case *QuestionMutation:
		return c.Question.mutate(ctx, m)
	case *StressRecordMutation:
		return c.StressRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DailyPlanClient is a client for the DailyPlan schema.
type DailyPlanClient struct {
	config
}

// NewDailyPlanClient returns a client for the DailyPlan from the given config.
func NewDailyPlanClient(c config) *DailyPlanClient {
	return &DailyPlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dailyplan.Hooks(f(g(h())))`.
func (c *DailyPlanClient) Use(hooks ...Hook) {
	c.hooks.DailyPlan = append(c.hooks.DailyPlan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dailyplan.Intercept(f(g(h())))`.
func (c *DailyPlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.DailyPlan = append(c.inters.DailyPlan, interceptors...)
}

// Create returns a builder for creating a DailyPlan entity.
func (c *DailyPlanClient) Create() *DailyPlanCreate {
	mutation := newDailyPlanMutation(c.config, OpCreate)
	return &DailyPlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DailyPlan entities.
func (c *DailyPlanClient) CreateBulk(builders ...*DailyPlanCreate) *DailyPlanCreateBulk {
	return &DailyPlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DailyPlanClient) MapCreateBulk(slice any, setFunc func(*DailyPlanCreate, int)) *DailyPlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DailyPlanCreateBulk{err: fmt.Errorf("calling to DailyPlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DailyPlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DailyPlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DailyPlan.
func (c *DailyPlanClient) Update() *DailyPlanUpdate {
	mutation := newDailyPlanMutation(c.config, OpUpdate)
	return &DailyPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DailyPlanClient) UpdateOne(_m *DailyPlan) *DailyPlanUpdateOne {
	mutation := newDailyPlanMutation(c.config, OpUpdateOne, withDailyPlan(_m))
	return &DailyPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DailyPlanClient) UpdateOneID(id int) *DailyPlanUpdateOne {
	mutation := newDailyPlanMutation(c.config, OpUpdateOne, withDailyPlanID(id))
	return &DailyPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DailyPlan.
func (c *DailyPlanClient) Delete() *DailyPlanDelete {
	mutation := newDailyPlanMutation(c.config, OpDelete)
	return &DailyPlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DailyPlanClient) DeleteOne(_m *DailyPlan) *DailyPlanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DailyPlanClient) DeleteOneID(id int) *DailyPlanDeleteOne {
	builder := c.Delete().Where(dailyplan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DailyPlanDeleteOne{builder}
}

// Query returns a query builder for DailyPlan.
func (c *DailyPlanClient) Query() *DailyPlanQuery {
	return &DailyPlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDailyPlan},
		inters: c.Interceptors(),
	}
}

// Get returns a DailyPlan entity by its id.
func (c *DailyPlanClient) Get(ctx context.Context, id int) (*DailyPlan, error) {
	return c.Query().Where(dailyplan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DailyPlanClient) GetX(ctx context.Context, id int) *DailyPlan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DailyPlanClient) Hooks() []Hook {
	return c.hooks.DailyPlan
}

// Interceptors returns the client interceptors.
func (c *DailyPlanClient) Interceptors() []Interceptor {
	return c.inters.DailyPlan
}

func (c *DailyPlanClient) mutate(ctx context.Context, m *DailyPlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DailyPlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DailyPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DailyPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DailyPlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DailyPlan mutation op: %q", m.Op())
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

// LearnerProfileClient is a client for the LearnerProfile schema.
type LearnerProfileClient struct {
	config
}

// NewLearnerProfileClient returns a client for the LearnerProfile from the given config.
func NewLearnerProfileClient(c config) *LearnerProfileClient {
	return &LearnerProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learnerprofile.Hooks(f(g(h())))`.
func (c *LearnerProfileClient) Use(hooks ...Hook) {
	c.hooks.LearnerProfile = append(c.hooks.LearnerProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learnerprofile.Intercept(f(g(h())))`.
func (c *LearnerProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearnerProfile = append(c.inters.LearnerProfile, interceptors...)
}

// Create returns a builder for creating a LearnerProfile entity.
func (c *LearnerProfileClient) Create() *LearnerProfileCreate {
	mutation := newLearnerProfileMutation(c.config, OpCreate)
	return &LearnerProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearnerProfile entities.
func (c *LearnerProfileClient) CreateBulk(builders ...*LearnerProfileCreate) *LearnerProfileCreateBulk {
	return &LearnerProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearnerProfileClient) MapCreateBulk(slice any, setFunc func(*LearnerProfileCreate, int)) *LearnerProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearnerProfileCreateBulk{err: fmt.Errorf("calling to LearnerProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearnerProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearnerProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearnerProfile.
func (c *LearnerProfileClient) Update() *LearnerProfileUpdate {
	mutation := newLearnerProfileMutation(c.config, OpUpdate)
	return &LearnerProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearnerProfileClient) UpdateOne(_m *LearnerProfile) *LearnerProfileUpdateOne {
	mutation := newLearnerProfileMutation(c.config, OpUpdateOne, withLearnerProfile(_m))
	return &LearnerProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearnerProfileClient) UpdateOneID(id int) *LearnerProfileUpdateOne {
	mutation := newLearnerProfileMutation(c.config, OpUpdateOne, withLearnerProfileID(id))
	return &LearnerProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearnerProfile.
func (c *LearnerProfileClient) Delete() *LearnerProfileDelete {
	mutation := newLearnerProfileMutation(c.config, OpDelete)
	return &LearnerProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearnerProfileClient) DeleteOne(_m *LearnerProfile) *LearnerProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearnerProfileClient) DeleteOneID(id int) *LearnerProfileDeleteOne {
	builder := c.Delete().Where(learnerprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearnerProfileDeleteOne{builder}
}

// Query returns a query builder for LearnerProfile.
func (c *LearnerProfileClient) Query() *LearnerProfileQuery {
	return &LearnerProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearnerProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a LearnerProfile entity by its id.
func (c *LearnerProfileClient) Get(ctx context.Context, id int) (*LearnerProfile, error) {
	return c.Query().Where(learnerprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearnerProfileClient) GetX(ctx context.Context, id int) *LearnerProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearnerProfileClient) Hooks() []Hook {
	return c.hooks.LearnerProfile
}

// Interceptors returns the client interceptors.
func (c *LearnerProfileClient) Interceptors() []Interceptor {
	return c.inters.LearnerProfile
}

func (c *LearnerProfileClient) mutate(ctx context.Context, m *LearnerProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearnerProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearnerProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearnerProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearnerProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearnerProfile mutation op: %q", m.Op())
	}
}

// QuestionClient is a client for the Question schema.
type QuestionClient struct {
	config
}

// NewQuestionClient returns a client for the Question from the given config.
func NewQuestionClient(c config) *QuestionClient {
	return &QuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `question.Hooks(f(g(h())))`.
func (c *QuestionClient) Use(hooks ...Hook) {
	c.hooks.Question = append(c.hooks.Question, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `question.Intercept(f(g(h())))`.
func (c *QuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Question = append(c.inters.Question, interceptors...)
}

// Create returns a builder for creating a Question entity.
func (c *QuestionClient) Create() *QuestionCreate {
	mutation := newQuestionMutation(c.config, OpCreate)
	return &QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Question entities.
func (c *QuestionClient) CreateBulk(builders ...*QuestionCreate) *QuestionCreateBulk {
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionClient) MapCreateBulk(slice any, setFunc func(*QuestionCreate, int)) *QuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionCreateBulk{err: fmt.Errorf("calling to QuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Question.
func (c *QuestionClient) Update() *QuestionUpdate {
	mutation := newQuestionMutation(c.config, OpUpdate)
	return &QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionClient) UpdateOne(_m *Question) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestion(_m))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionClient) UpdateOneID(id int) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestionID(id))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Question.
func (c *QuestionClient) Delete() *QuestionDelete {
	mutation := newQuestionMutation(c.config, OpDelete)
	return &QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionClient) DeleteOne(_m *Question) *QuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionClient) DeleteOneID(id int) *QuestionDeleteOne {
	builder := c.Delete().Where(question.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionDeleteOne{builder}
}

// Query returns a query builder for Question.
func (c *QuestionClient) Query() *QuestionQuery {
	return &QuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a Question entity by its id.
func (c *QuestionClient) Get(ctx context.Context, id int) (*Question, error) {
	return c.Query().Where(question.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionClient) GetX(ctx context.Context, id int) *Question {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionClient) Hooks() []Hook {
	return c.hooks.Question
}

// Interceptors returns the client interceptors.
func (c *QuestionClient) Interceptors() []Interceptor {
	return c.inters.Question
}

func (c *QuestionClient) mutate(ctx context.Context, m *QuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Question mutation op: %q", m.Op())
	}
}

// StressRecordClient is a client for the StressRecord schema.
type StressRecordClient struct {
	config
}

// NewStressRecordClient returns a client for the StressRecord from the given config.
func NewStressRecordClient(c config) *StressRecordClient {
	return &StressRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stressrecord.Hooks(f(g(h())))`.
func (c *StressRecordClient) Use(hooks ...Hook) {
	c.hooks.StressRecord = append(c.hooks.StressRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stressrecord.Intercept(f(g(h())))`.
func (c *StressRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.StressRecord = append(c.inters.StressRecord, interceptors...)
}

// Create returns a builder for creating a StressRecord entity.
func (c *StressRecordClient) Create() *StressRecordCreate {
	mutation := newStressRecordMutation(c.config, OpCreate)
	return &StressRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StressRecord entities.
func (c *StressRecordClient) CreateBulk(builders ...*StressRecordCreate) *StressRecordCreateBulk {
	return &StressRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StressRecordClient) MapCreateBulk(slice any, setFunc func(*StressRecordCreate, int)) *StressRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StressRecordCreateBulk{err: fmt.Errorf("calling to StressRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StressRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StressRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StressRecord.
func (c *StressRecordClient) Update() *StressRecordUpdate {
	mutation := newStressRecordMutation(c.config, OpUpdate)
	return &StressRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StressRecordClient) UpdateOne(_m *StressRecord) *StressRecordUpdateOne {
	mutation := newStressRecordMutation(c.config, OpUpdateOne, withStressRecord(_m))
	return &StressRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StressRecordClient) UpdateOneID(id int) *StressRecordUpdateOne {
	mutation := newStressRecordMutation(c.config, OpUpdateOne, withStressRecordID(id))
	return &StressRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StressRecord.
func (c *StressRecordClient) Delete() *StressRecordDelete {
	mutation := newStressRecordMutation(c.config, OpDelete)
	return &StressRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StressRecordClient) DeleteOne(_m *StressRecord) *StressRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StressRecordClient) DeleteOneID(id int) *StressRecordDeleteOne {
	builder := c.Delete().Where(stressrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StressRecordDeleteOne{builder}
}

// Query returns a query builder for StressRecord.
func (c *StressRecordClient) Query() *StressRecordQuery {
	return &StressRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStressRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a StressRecord entity by its id.
func (c *StressRecordClient) Get(ctx context.Context, id int) (*StressRecord, error) {
	return c.Query().Where(stressrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StressRecordClient) GetX(ctx context.Context, id int) *StressRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StressRecordClient) Hooks() []Hook {
	return c.hooks.StressRecord
}

// Interceptors returns the client interceptors.
func (c *StressRecordClient) Interceptors() []Interceptor {
	return c.inters.StressRecord
}

func (c *StressRecordClient) mutate(ctx context.Context, m *StressRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StressRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StressRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StressRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StressRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StressRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DailyPlan, LLMRequestEvent, LearnerProfile, Question, StressRecord []ent.Hook
	}
	inters struct {
		DailyPlan, LLMRequestEvent, LearnerProfile, Question,
		StressRecord []ent.Interceptor
	}
)
