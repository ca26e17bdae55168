// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/visaetude/prepcore/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/visaetude/prepcore/ent/answer"
	"github.com/visaetude/prepcore/ent/asset"
	"github.com/visaetude/prepcore/ent/attempt"
	"github.com/visaetude/prepcore/ent/cefrcertificate"
	"github.com/visaetude/prepcore/ent/choice"
	"github.com/visaetude/prepcore/ent/courseexercise"
	"github.com/visaetude/prepcore/ent/courselesson"
	"github.com/visaetude/prepcore/ent/exam"
	"github.com/visaetude/prepcore/ent/examformatresult"
	"github.com/visaetude/prepcore/ent/examsection"
	"github.com/visaetude/prepcore/ent/passage"
	"github.com/visaetude/prepcore/ent/question"
	"github.com/visaetude/prepcore/ent/session"
	"github.com/visaetude/prepcore/ent/userskillprogress"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Answer is the client for interacting with the Answer builders.
	Answer *AnswerClient
	// Asset is the client for interacting with the Asset builders.
	Asset *AssetClient
	// Attempt is the client for interacting with the Attempt builders.
	Attempt *AttemptClient
	// CEFRCertificate is the client for interacting with the CEFRCertificate builders.
	CEFRCertificate *CEFRCertificateClient
	// Choice is the client for interacting with the Choice builders.
	Choice *ChoiceClient
	// CourseExercise is the client for interacting with the CourseExercise builders.
	CourseExercise *CourseExerciseClient
	// CourseLesson is the client for interacting with the CourseLesson builders.
	CourseLesson *CourseLessonClient
	// Exam is the client for interacting with the Exam builders.
	Exam *ExamClient
	// ExamFormatResult is the client for interacting with the ExamFormatResult builders.
	ExamFormatResult *ExamFormatResultClient
	// ExamSection is the client for interacting with the ExamSection builders.
	ExamSection *ExamSectionClient
	// Passage is the client for interacting with the Passage builders.
	Passage *PassageClient
	// Question is the client for interacting with the Question builders.
	Question *QuestionClient
	// Session is the client for interacting with the Session builders.
	Session *SessionClient
	// UserSkillProgress is the client for interacting with the UserSkillProgress builders.
	UserSkillProgress *UserSkillProgressClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Answer = NewAnswerClient(c.config)
	c.Asset = NewAssetClient(c.config)
	c.Attempt = NewAttemptClient(c.config)
	c.CEFRCertificate = NewCEFRCertificateClient(c.config)
	c.Choice = NewChoiceClient(c.config)
	c.CourseExercise = NewCourseExerciseClient(c.config)
	c.CourseLesson = NewCourseLessonClient(c.config)
	c.Exam = NewExamClient(c.config)
	c.ExamFormatResult = NewExamFormatResultClient(c.config)
	c.ExamSection = NewExamSectionClient(c.config)
	c.Passage = NewPassageClient(c.config)
	c.Question = NewQuestionClient(c.config)
	c.Session = NewSessionClient(c.config)
	c.UserSkillProgress = NewUserSkillProgressClient(c.config)
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
		Answer:            NewAnswerClient(cfg),
		Asset:             NewAssetClient(cfg),
		Attempt:           NewAttemptClient(cfg),
		CEFRCertificate:   NewCEFRCertificateClient(cfg),
		Choice:            NewChoiceClient(cfg),
		CourseExercise:    NewCourseExerciseClient(cfg),
		CourseLesson:      NewCourseLessonClient(cfg),
		Exam:              NewExamClient(cfg),
		ExamFormatResult:  NewExamFormatResultClient(cfg),
		ExamSection:       NewExamSectionClient(cfg),
		Passage:           NewPassageClient(cfg),
		Question:          NewQuestionClient(cfg),
		Session:           NewSessionClient(cfg),
		UserSkillProgress: NewUserSkillProgressClient(cfg),
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
		Answer:            NewAnswerClient(cfg),
		Asset:             NewAssetClient(cfg),
		Attempt:           NewAttemptClient(cfg),
		CEFRCertificate:   NewCEFRCertificateClient(cfg),
		Choice:            NewChoiceClient(cfg),
		CourseExercise:    NewCourseExerciseClient(cfg),
		CourseLesson:      NewCourseLessonClient(cfg),
		Exam:              NewExamClient(cfg),
		ExamFormatResult:  NewExamFormatResultClient(cfg),
		ExamSection:       NewExamSectionClient(cfg),
		Passage:           NewPassageClient(cfg),
		Question:          NewQuestionClient(cfg),
		Session:           NewSessionClient(cfg),
		UserSkillProgress: NewUserSkillProgressClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Answer.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.Answer, c.Asset, c.Attempt, c.CEFRCertificate, c.Choice, c.CourseExercise,
		c.CourseLesson, c.Exam, c.ExamFormatResult, c.ExamSection, c.Passage,
		c.Question, c.Session, c.UserSkillProgress,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Answer, c.Asset, c.Attempt, c.CEFRCertificate, c.Choice, c.CourseExercise,
		c.CourseLesson, c.Exam, c.ExamFormatResult, c.ExamSection, c.Passage,
		c.Question, c.Session, c.UserSkillProgress,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnswerMutation:
		return c.Answer.mutate(ctx, m)
	case *AssetMutation:
		return c.Asset.mutate(ctx, m)
	case *AttemptMutation:
		return c.Attempt.mutate(ctx, m)
	case *CEFRCertificateMutation:
		return c.CEFRCertificate.mutate(ctx, m)
	case *ChoiceMutation:
		return c.Choice.mutate(ctx, m)
	case *CourseExerciseMutation:
		return c.CourseExercise.mutate(ctx, m)
	case *CourseLessonMutation:
		return c.CourseLesson.mutate(ctx, m)
	case *ExamMutation:
		return c.Exam.mutate(ctx, m)
	case *ExamFormatResultMutation:
		return c.ExamFormatResult.mutate(ctx, m)
	case *ExamSectionMutation:
		return c.ExamSection.mutate(ctx, m)
	case *PassageMutation:
		return c.Passage.mutate(ctx, m)
	case *QuestionMutation:
		return c.Question.mutate(ctx, m)
	case *SessionMutation:
		return c.Session.mutate(ctx, m)
	case *UserSkillProgressMutation:
		return c.UserSkillProgress.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnswerClient is a client for the Answer schema.
type AnswerClient struct {
	config
}

// NewAnswerClient returns a client for the Answer from the given config.
func NewAnswerClient(c config) *AnswerClient {
	return &AnswerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answer.Hooks(f(g(h())))`.
func (c *AnswerClient) Use(hooks ...Hook) {
	c.hooks.Answer = append(c.hooks.Answer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answer.Intercept(f(g(h())))`.
func (c *AnswerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Answer = append(c.inters.Answer, interceptors...)
}

// Create returns a builder for creating a Answer entity.
func (c *AnswerClient) Create() *AnswerCreate {
	mutation := newAnswerMutation(c.config, OpCreate)
	return &AnswerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Answer entities.
func (c *AnswerClient) CreateBulk(builders ...*AnswerCreate) *AnswerCreateBulk {
	return &AnswerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnswerClient) MapCreateBulk(slice any, setFunc func(*AnswerCreate, int)) *AnswerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnswerCreateBulk{err: fmt.Errorf("calling to AnswerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnswerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnswerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Answer.
func (c *AnswerClient) Update() *AnswerUpdate {
	mutation := newAnswerMutation(c.config, OpUpdate)
	return &AnswerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnswerClient) UpdateOne(_m *Answer) *AnswerUpdateOne {
	mutation := newAnswerMutation(c.config, OpUpdateOne, withAnswer(_m))
	return &AnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnswerClient) UpdateOneID(id int) *AnswerUpdateOne {
	mutation := newAnswerMutation(c.config, OpUpdateOne, withAnswerID(id))
	return &AnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Answer.
func (c *AnswerClient) Delete() *AnswerDelete {
	mutation := newAnswerMutation(c.config, OpDelete)
	return &AnswerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnswerClient) DeleteOne(_m *Answer) *AnswerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnswerClient) DeleteOneID(id int) *AnswerDeleteOne {
	builder := c.Delete().Where(answer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnswerDeleteOne{builder}
}

// Query returns a query builder for Answer.
func (c *AnswerClient) Query() *AnswerQuery {
	return &AnswerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnswer},
		inters: c.Interceptors(),
	}
}

// Get returns a Answer entity by its id.
func (c *AnswerClient) Get(ctx context.Context, id int) (*Answer, error) {
	return c.Query().Where(answer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnswerClient) GetX(ctx context.Context, id int) *Answer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAttempt queries the attempt edge of a Answer.
func (c *AnswerClient) QueryAttempt(_m *Answer) *AttemptQuery {
	query := (&AttemptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(answer.Table, answer.FieldID, id),
			sqlgraph.To(attempt.Table, attempt.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, answer.AttemptTable, answer.AttemptColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuestion queries the question edge of a Answer.
func (c *AnswerClient) QueryQuestion(_m *Answer) *QuestionQuery {
	query := (&QuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(answer.Table, answer.FieldID, id),
			sqlgraph.To(question.Table, question.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, answer.QuestionTable, answer.QuestionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChoice queries the choice edge of a Answer.
func (c *AnswerClient) QueryChoice(_m *Answer) *ChoiceQuery {
	query := (&ChoiceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(answer.Table, answer.FieldID, id),
			sqlgraph.To(choice.Table, choice.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, answer.ChoiceTable, answer.ChoiceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnswerClient) Hooks() []Hook {
	return c.hooks.Answer
}

// Interceptors returns the client interceptors.
func (c *AnswerClient) Interceptors() []Interceptor {
	return c.inters.Answer
}

func (c *AnswerClient) mutate(ctx context.Context, m *AnswerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnswerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnswerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnswerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Answer mutation op: %q", m.Op())
	}
}

// AssetClient is a client for the Asset schema.
type AssetClient struct {
	config
}

// NewAssetClient returns a client for the Asset from the given config.
func NewAssetClient(c config) *AssetClient {
	return &AssetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `asset.Hooks(f(g(h())))`.
func (c *AssetClient) Use(hooks ...Hook) {
	c.hooks.Asset = append(c.hooks.Asset, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `asset.Intercept(f(g(h())))`.
func (c *AssetClient) Intercept(interceptors ...Interceptor) {
	c.inters.Asset = append(c.inters.Asset, interceptors...)
}

// Create returns a builder for creating a Asset entity.
func (c *AssetClient) Create() *AssetCreate {
	mutation := newAssetMutation(c.config, OpCreate)
	return &AssetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Asset entities.
func (c *AssetClient) CreateBulk(builders ...*AssetCreate) *AssetCreateBulk {
	return &AssetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssetClient) MapCreateBulk(slice any, setFunc func(*AssetCreate, int)) *AssetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssetCreateBulk{err: fmt.Errorf("calling to AssetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Asset.
func (c *AssetClient) Update() *AssetUpdate {
	mutation := newAssetMutation(c.config, OpUpdate)
	return &AssetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssetClient) UpdateOne(_m *Asset) *AssetUpdateOne {
	mutation := newAssetMutation(c.config, OpUpdateOne, withAsset(_m))
	return &AssetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssetClient) UpdateOneID(id int) *AssetUpdateOne {
	mutation := newAssetMutation(c.config, OpUpdateOne, withAssetID(id))
	return &AssetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Asset.
func (c *AssetClient) Delete() *AssetDelete {
	mutation := newAssetMutation(c.config, OpDelete)
	return &AssetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssetClient) DeleteOne(_m *Asset) *AssetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssetClient) DeleteOneID(id int) *AssetDeleteOne {
	builder := c.Delete().Where(asset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssetDeleteOne{builder}
}

// Query returns a query builder for Asset.
func (c *AssetClient) Query() *AssetQuery {
	return &AssetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAsset},
		inters: c.Interceptors(),
	}
}

// Get returns a Asset entity by its id.
func (c *AssetClient) Get(ctx context.Context, id int) (*Asset, error) {
	return c.Query().Where(asset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssetClient) GetX(ctx context.Context, id int) *Asset {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AssetClient) Hooks() []Hook {
	return c.hooks.Asset
}

// Interceptors returns the client interceptors.
func (c *AssetClient) Interceptors() []Interceptor {
	return c.inters.Asset
}

func (c *AssetClient) mutate(ctx context.Context, m *AssetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Asset mutation op: %q", m.Op())
	}
}

// AttemptClient is a client for the Attempt schema.
type AttemptClient struct {
	config
}

// NewAttemptClient returns a client for the Attempt from the given config.
func NewAttemptClient(c config) *AttemptClient {
	return &AttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attempt.Hooks(f(g(h())))`.
func (c *AttemptClient) Use(hooks ...Hook) {
	c.hooks.Attempt = append(c.hooks.Attempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attempt.Intercept(f(g(h())))`.
func (c *AttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Attempt = append(c.inters.Attempt, interceptors...)
}

// Create returns a builder for creating a Attempt entity.
func (c *AttemptClient) Create() *AttemptCreate {
	mutation := newAttemptMutation(c.config, OpCreate)
	return &AttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Attempt entities.
func (c *AttemptClient) CreateBulk(builders ...*AttemptCreate) *AttemptCreateBulk {
	return &AttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptClient) MapCreateBulk(slice any, setFunc func(*AttemptCreate, int)) *AttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptCreateBulk{err: fmt.Errorf("calling to AttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Attempt.
func (c *AttemptClient) Update() *AttemptUpdate {
	mutation := newAttemptMutation(c.config, OpUpdate)
	return &AttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptClient) UpdateOne(_m *Attempt) *AttemptUpdateOne {
	mutation := newAttemptMutation(c.config, OpUpdateOne, withAttempt(_m))
	return &AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptClient) UpdateOneID(id int) *AttemptUpdateOne {
	mutation := newAttemptMutation(c.config, OpUpdateOne, withAttemptID(id))
	return &AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Attempt.
func (c *AttemptClient) Delete() *AttemptDelete {
	mutation := newAttemptMutation(c.config, OpDelete)
	return &AttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptClient) DeleteOne(_m *Attempt) *AttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptClient) DeleteOneID(id int) *AttemptDeleteOne {
	builder := c.Delete().Where(attempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptDeleteOne{builder}
}

// Query returns a query builder for Attempt.
func (c *AttemptClient) Query() *AttemptQuery {
	return &AttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a Attempt entity by its id.
func (c *AttemptClient) Get(ctx context.Context, id int) (*Attempt, error) {
	return c.Query().Where(attempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptClient) GetX(ctx context.Context, id int) *Attempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Attempt.
func (c *AttemptClient) QuerySession(_m *Attempt) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(attempt.Table, attempt.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, attempt.SessionTable, attempt.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnswers queries the answers edge of a Attempt.
func (c *AttemptClient) QueryAnswers(_m *Attempt) *AnswerQuery {
	query := (&AnswerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(attempt.Table, attempt.FieldID, id),
			sqlgraph.To(answer.Table, answer.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, attempt.AnswersTable, attempt.AnswersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AttemptClient) Hooks() []Hook {
	return c.hooks.Attempt
}

// Interceptors returns the client interceptors.
func (c *AttemptClient) Interceptors() []Interceptor {
	return c.inters.Attempt
}

func (c *AttemptClient) mutate(ctx context.Context, m *AttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Attempt mutation op: %q", m.Op())
	}
}

// CEFRCertificateClient is a client for the CEFRCertificate schema.
type CEFRCertificateClient struct {
	config
}

// NewCEFRCertificateClient returns a client for the CEFRCertificate from the given config.
func NewCEFRCertificateClient(c config) *CEFRCertificateClient {
	return &CEFRCertificateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cefrcertificate.Hooks(f(g(h())))`.
func (c *CEFRCertificateClient) Use(hooks ...Hook) {
	c.hooks.CEFRCertificate = append(c.hooks.CEFRCertificate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cefrcertificate.Intercept(f(g(h())))`.
func (c *CEFRCertificateClient) Intercept(interceptors ...Interceptor) {
	c.inters.CEFRCertificate = append(c.inters.CEFRCertificate, interceptors...)
}

// Create returns a builder for creating a CEFRCertificate entity.
func (c *CEFRCertificateClient) Create() *CEFRCertificateCreate {
	mutation := newCEFRCertificateMutation(c.config, OpCreate)
	return &CEFRCertificateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CEFRCertificate entities.
func (c *CEFRCertificateClient) CreateBulk(builders ...*CEFRCertificateCreate) *CEFRCertificateCreateBulk {
	return &CEFRCertificateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CEFRCertificateClient) MapCreateBulk(slice any, setFunc func(*CEFRCertificateCreate, int)) *CEFRCertificateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CEFRCertificateCreateBulk{err: fmt.Errorf("calling to CEFRCertificateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CEFRCertificateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CEFRCertificateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CEFRCertificate.
func (c *CEFRCertificateClient) Update() *CEFRCertificateUpdate {
	mutation := newCEFRCertificateMutation(c.config, OpUpdate)
	return &CEFRCertificateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CEFRCertificateClient) UpdateOne(_m *CEFRCertificate) *CEFRCertificateUpdateOne {
	mutation := newCEFRCertificateMutation(c.config, OpUpdateOne, withCEFRCertificate(_m))
	return &CEFRCertificateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CEFRCertificateClient) UpdateOneID(id int) *CEFRCertificateUpdateOne {
	mutation := newCEFRCertificateMutation(c.config, OpUpdateOne, withCEFRCertificateID(id))
	return &CEFRCertificateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CEFRCertificate.
func (c *CEFRCertificateClient) Delete() *CEFRCertificateDelete {
	mutation := newCEFRCertificateMutation(c.config, OpDelete)
	return &CEFRCertificateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CEFRCertificateClient) DeleteOne(_m *CEFRCertificate) *CEFRCertificateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CEFRCertificateClient) DeleteOneID(id int) *CEFRCertificateDeleteOne {
	builder := c.Delete().Where(cefrcertificate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CEFRCertificateDeleteOne{builder}
}

// Query returns a query builder for CEFRCertificate.
func (c *CEFRCertificateClient) Query() *CEFRCertificateQuery {
	return &CEFRCertificateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCEFRCertificate},
		inters: c.Interceptors(),
	}
}

// Get returns a CEFRCertificate entity by its id.
func (c *CEFRCertificateClient) Get(ctx context.Context, id int) (*CEFRCertificate, error) {
	return c.Query().Where(cefrcertificate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CEFRCertificateClient) GetX(ctx context.Context, id int) *CEFRCertificate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CEFRCertificateClient) Hooks() []Hook {
	return c.hooks.CEFRCertificate
}

// Interceptors returns the client interceptors.
func (c *CEFRCertificateClient) Interceptors() []Interceptor {
	return c.inters.CEFRCertificate
}

func (c *CEFRCertificateClient) mutate(ctx context.Context, m *CEFRCertificateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CEFRCertificateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CEFRCertificateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CEFRCertificateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CEFRCertificateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CEFRCertificate mutation op: %q", m.Op())
	}
}

// ChoiceClient is a client for the Choice schema.
type ChoiceClient struct {
	config
}

// NewChoiceClient returns a client for the Choice from the given config.
func NewChoiceClient(c config) *ChoiceClient {
	return &ChoiceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `choice.Hooks(f(g(h())))`.
func (c *ChoiceClient) Use(hooks ...Hook) {
	c.hooks.Choice = append(c.hooks.Choice, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `choice.Intercept(f(g(h())))`.
func (c *ChoiceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Choice = append(c.inters.Choice, interceptors...)
}

// Create returns a builder for creating a Choice entity.
func (c *ChoiceClient) Create() *ChoiceCreate {
	mutation := newChoiceMutation(c.config, OpCreate)
	return &ChoiceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Choice entities.
func (c *ChoiceClient) CreateBulk(builders ...*ChoiceCreate) *ChoiceCreateBulk {
	return &ChoiceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChoiceClient) MapCreateBulk(slice any, setFunc func(*ChoiceCreate, int)) *ChoiceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChoiceCreateBulk{err: fmt.Errorf("calling to ChoiceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChoiceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChoiceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Choice.
func (c *ChoiceClient) Update() *ChoiceUpdate {
	mutation := newChoiceMutation(c.config, OpUpdate)
	return &ChoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChoiceClient) UpdateOne(_m *Choice) *ChoiceUpdateOne {
	mutation := newChoiceMutation(c.config, OpUpdateOne, withChoice(_m))
	return &ChoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChoiceClient) UpdateOneID(id int) *ChoiceUpdateOne {
	mutation := newChoiceMutation(c.config, OpUpdateOne, withChoiceID(id))
	return &ChoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Choice.
func (c *ChoiceClient) Delete() *ChoiceDelete {
	mutation := newChoiceMutation(c.config, OpDelete)
	return &ChoiceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChoiceClient) DeleteOne(_m *Choice) *ChoiceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChoiceClient) DeleteOneID(id int) *ChoiceDeleteOne {
	builder := c.Delete().Where(choice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChoiceDeleteOne{builder}
}

// Query returns a query builder for Choice.
func (c *ChoiceClient) Query() *ChoiceQuery {
	return &ChoiceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChoice},
		inters: c.Interceptors(),
	}
}

// Get returns a Choice entity by its id.
func (c *ChoiceClient) Get(ctx context.Context, id int) (*Choice, error) {
	return c.Query().Where(choice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChoiceClient) GetX(ctx context.Context, id int) *Choice {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQuestion queries the question edge of a Choice.
func (c *ChoiceClient) QueryQuestion(_m *Choice) *QuestionQuery {
	query := (&QuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(choice.Table, choice.FieldID, id),
			sqlgraph.To(question.Table, question.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, choice.QuestionTable, choice.QuestionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChoiceClient) Hooks() []Hook {
	return c.hooks.Choice
}

// Interceptors returns the client interceptors.
func (c *ChoiceClient) Interceptors() []Interceptor {
	return c.inters.Choice
}

func (c *ChoiceClient) mutate(ctx context.Context, m *ChoiceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChoiceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChoiceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Choice mutation op: %q", m.Op())
	}
}

// CourseExerciseClient is a client for the CourseExercise schema.
type CourseExerciseClient struct {
	config
}

// NewCourseExerciseClient returns a client for the CourseExercise from the given config.
func NewCourseExerciseClient(c config) *CourseExerciseClient {
	return &CourseExerciseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `courseexercise.Hooks(f(g(h())))`.
func (c *CourseExerciseClient) Use(hooks ...Hook) {
	c.hooks.CourseExercise = append(c.hooks.CourseExercise, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `courseexercise.Intercept(f(g(h())))`.
func (c *CourseExerciseClient) Intercept(interceptors ...Interceptor) {
	c.inters.CourseExercise = append(c.inters.CourseExercise, interceptors...)
}

// Create returns a builder for creating a CourseExercise entity.
func (c *CourseExerciseClient) Create() *CourseExerciseCreate {
	mutation := newCourseExerciseMutation(c.config, OpCreate)
	return &CourseExerciseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CourseExercise entities.
func (c *CourseExerciseClient) CreateBulk(builders ...*CourseExerciseCreate) *CourseExerciseCreateBulk {
	return &CourseExerciseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CourseExerciseClient) MapCreateBulk(slice any, setFunc func(*CourseExerciseCreate, int)) *CourseExerciseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CourseExerciseCreateBulk{err: fmt.Errorf("calling to CourseExerciseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CourseExerciseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CourseExerciseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CourseExercise.
func (c *CourseExerciseClient) Update() *CourseExerciseUpdate {
	mutation := newCourseExerciseMutation(c.config, OpUpdate)
	return &CourseExerciseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CourseExerciseClient) UpdateOne(_m *CourseExercise) *CourseExerciseUpdateOne {
	mutation := newCourseExerciseMutation(c.config, OpUpdateOne, withCourseExercise(_m))
	return &CourseExerciseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CourseExerciseClient) UpdateOneID(id int) *CourseExerciseUpdateOne {
	mutation := newCourseExerciseMutation(c.config, OpUpdateOne, withCourseExerciseID(id))
	return &CourseExerciseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CourseExercise.
func (c *CourseExerciseClient) Delete() *CourseExerciseDelete {
	mutation := newCourseExerciseMutation(c.config, OpDelete)
	return &CourseExerciseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CourseExerciseClient) DeleteOne(_m *CourseExercise) *CourseExerciseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CourseExerciseClient) DeleteOneID(id int) *CourseExerciseDeleteOne {
	builder := c.Delete().Where(courseexercise.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CourseExerciseDeleteOne{builder}
}

// Query returns a query builder for CourseExercise.
func (c *CourseExerciseClient) Query() *CourseExerciseQuery {
	return &CourseExerciseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCourseExercise},
		inters: c.Interceptors(),
	}
}

// Get returns a CourseExercise entity by its id.
func (c *CourseExerciseClient) Get(ctx context.Context, id int) (*CourseExercise, error) {
	return c.Query().Where(courseexercise.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CourseExerciseClient) GetX(ctx context.Context, id int) *CourseExercise {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLesson queries the lesson edge of a CourseExercise.
func (c *CourseExerciseClient) QueryLesson(_m *CourseExercise) *CourseLessonQuery {
	query := (&CourseLessonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(courseexercise.Table, courseexercise.FieldID, id),
			sqlgraph.To(courselesson.Table, courselesson.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, courseexercise.LessonTable, courseexercise.LessonColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAsset queries the asset edge of a CourseExercise.
func (c *CourseExerciseClient) QueryAsset(_m *CourseExercise) *AssetQuery {
	query := (&AssetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(courseexercise.Table, courseexercise.FieldID, id),
			sqlgraph.To(asset.Table, asset.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, courseexercise.AssetTable, courseexercise.AssetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CourseExerciseClient) Hooks() []Hook {
	return c.hooks.CourseExercise
}

// Interceptors returns the client interceptors.
func (c *CourseExerciseClient) Interceptors() []Interceptor {
	return c.inters.CourseExercise
}

func (c *CourseExerciseClient) mutate(ctx context.Context, m *CourseExerciseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CourseExerciseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CourseExerciseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CourseExerciseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CourseExerciseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CourseExercise mutation op: %q", m.Op())
	}
}

// CourseLessonClient is a client for the CourseLesson schema.
type CourseLessonClient struct {
	config
}

// NewCourseLessonClient returns a client for the CourseLesson from the given config.
func NewCourseLessonClient(c config) *CourseLessonClient {
	return &CourseLessonClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `courselesson.Hooks(f(g(h())))`.
func (c *CourseLessonClient) Use(hooks ...Hook) {
	c.hooks.CourseLesson = append(c.hooks.CourseLesson, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `courselesson.Intercept(f(g(h())))`.
func (c *CourseLessonClient) Intercept(interceptors ...Interceptor) {
	c.inters.CourseLesson = append(c.inters.CourseLesson, interceptors...)
}

// Create returns a builder for creating a CourseLesson entity.
func (c *CourseLessonClient) Create() *CourseLessonCreate {
	mutation := newCourseLessonMutation(c.config, OpCreate)
	return &CourseLessonCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CourseLesson entities.
func (c *CourseLessonClient) CreateBulk(builders ...*CourseLessonCreate) *CourseLessonCreateBulk {
	return &CourseLessonCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CourseLessonClient) MapCreateBulk(slice any, setFunc func(*CourseLessonCreate, int)) *CourseLessonCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CourseLessonCreateBulk{err: fmt.Errorf("calling to CourseLessonClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CourseLessonCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CourseLessonCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CourseLesson.
func (c *CourseLessonClient) Update() *CourseLessonUpdate {
	mutation := newCourseLessonMutation(c.config, OpUpdate)
	return &CourseLessonUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CourseLessonClient) UpdateOne(_m *CourseLesson) *CourseLessonUpdateOne {
	mutation := newCourseLessonMutation(c.config, OpUpdateOne, withCourseLesson(_m))
	return &CourseLessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CourseLessonClient) UpdateOneID(id int) *CourseLessonUpdateOne {
	mutation := newCourseLessonMutation(c.config, OpUpdateOne, withCourseLessonID(id))
	return &CourseLessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CourseLesson.
func (c *CourseLessonClient) Delete() *CourseLessonDelete {
	mutation := newCourseLessonMutation(c.config, OpDelete)
	return &CourseLessonDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CourseLessonClient) DeleteOne(_m *CourseLesson) *CourseLessonDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CourseLessonClient) DeleteOneID(id int) *CourseLessonDeleteOne {
	builder := c.Delete().Where(courselesson.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CourseLessonDeleteOne{builder}
}

// Query returns a query builder for CourseLesson.
func (c *CourseLessonClient) Query() *CourseLessonQuery {
	return &CourseLessonQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCourseLesson},
		inters: c.Interceptors(),
	}
}

// Get returns a CourseLesson entity by its id.
func (c *CourseLessonClient) Get(ctx context.Context, id int) (*CourseLesson, error) {
	return c.Query().Where(courselesson.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CourseLessonClient) GetX(ctx context.Context, id int) *CourseLesson {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExams queries the exams edge of a CourseLesson.
func (c *CourseLessonClient) QueryExams(_m *CourseLesson) *ExamQuery {
	query := (&ExamClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(courselesson.Table, courselesson.FieldID, id),
			sqlgraph.To(exam.Table, exam.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, courselesson.ExamsTable, courselesson.ExamsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExercises queries the exercises edge of a CourseLesson.
func (c *CourseLessonClient) QueryExercises(_m *CourseLesson) *CourseExerciseQuery {
	query := (&CourseExerciseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(courselesson.Table, courselesson.FieldID, id),
			sqlgraph.To(courseexercise.Table, courseexercise.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, courselesson.ExercisesTable, courselesson.ExercisesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAsset queries the asset edge of a CourseLesson.
func (c *CourseLessonClient) QueryAsset(_m *CourseLesson) *AssetQuery {
	query := (&AssetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(courselesson.Table, courselesson.FieldID, id),
			sqlgraph.To(asset.Table, asset.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, courselesson.AssetTable, courselesson.AssetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CourseLessonClient) Hooks() []Hook {
	return c.hooks.CourseLesson
}

// Interceptors returns the client interceptors.
func (c *CourseLessonClient) Interceptors() []Interceptor {
	return c.inters.CourseLesson
}

func (c *CourseLessonClient) mutate(ctx context.Context, m *CourseLessonMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CourseLessonCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CourseLessonUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CourseLessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CourseLessonDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CourseLesson mutation op: %q", m.Op())
	}
}

// ExamClient is a client for the Exam schema.
type ExamClient struct {
	config
}

// NewExamClient returns a client for the Exam from the given config.
func NewExamClient(c config) *ExamClient {
	return &ExamClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `exam.Hooks(f(g(h())))`.
func (c *ExamClient) Use(hooks ...Hook) {
	c.hooks.Exam = append(c.hooks.Exam, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `exam.Intercept(f(g(h())))`.
func (c *ExamClient) Intercept(interceptors ...Interceptor) {
	c.inters.Exam = append(c.inters.Exam, interceptors...)
}

// Create returns a builder for creating a Exam entity.
func (c *ExamClient) Create() *ExamCreate {
	mutation := newExamMutation(c.config, OpCreate)
	return &ExamCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Exam entities.
func (c *ExamClient) CreateBulk(builders ...*ExamCreate) *ExamCreateBulk {
	return &ExamCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExamClient) MapCreateBulk(slice any, setFunc func(*ExamCreate, int)) *ExamCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExamCreateBulk{err: fmt.Errorf("calling to ExamClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExamCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExamCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Exam.
func (c *ExamClient) Update() *ExamUpdate {
	mutation := newExamMutation(c.config, OpUpdate)
	return &ExamUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExamClient) UpdateOne(_m *Exam) *ExamUpdateOne {
	mutation := newExamMutation(c.config, OpUpdateOne, withExam(_m))
	return &ExamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExamClient) UpdateOneID(id int) *ExamUpdateOne {
	mutation := newExamMutation(c.config, OpUpdateOne, withExamID(id))
	return &ExamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Exam.
func (c *ExamClient) Delete() *ExamDelete {
	mutation := newExamMutation(c.config, OpDelete)
	return &ExamDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExamClient) DeleteOne(_m *Exam) *ExamDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExamClient) DeleteOneID(id int) *ExamDeleteOne {
	builder := c.Delete().Where(exam.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExamDeleteOne{builder}
}

// Query returns a query builder for Exam.
func (c *ExamClient) Query() *ExamQuery {
	return &ExamQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExam},
		inters: c.Interceptors(),
	}
}

// Get returns a Exam entity by its id.
func (c *ExamClient) Get(ctx context.Context, id int) (*Exam, error) {
	return c.Query().Where(exam.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExamClient) GetX(ctx context.Context, id int) *Exam {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySections queries the sections edge of a Exam.
func (c *ExamClient) QuerySections(_m *Exam) *ExamSectionQuery {
	query := (&ExamSectionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(exam.Table, exam.FieldID, id),
			sqlgraph.To(examsection.Table, examsection.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, exam.SectionsTable, exam.SectionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLessons queries the lessons edge of a Exam.
func (c *ExamClient) QueryLessons(_m *Exam) *CourseLessonQuery {
	query := (&CourseLessonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(exam.Table, exam.FieldID, id),
			sqlgraph.To(courselesson.Table, courselesson.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, exam.LessonsTable, exam.LessonsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExamClient) Hooks() []Hook {
	return c.hooks.Exam
}

// Interceptors returns the client interceptors.
func (c *ExamClient) Interceptors() []Interceptor {
	return c.inters.Exam
}

func (c *ExamClient) mutate(ctx context.Context, m *ExamMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExamCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExamUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExamDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Exam mutation op: %q", m.Op())
	}
}

// ExamFormatResultClient is a client for the ExamFormatResult schema.
type ExamFormatResultClient struct {
	config
}

// NewExamFormatResultClient returns a client for the ExamFormatResult from the given config.
func NewExamFormatResultClient(c config) *ExamFormatResultClient {
	return &ExamFormatResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `examformatresult.Hooks(f(g(h())))`.
func (c *ExamFormatResultClient) Use(hooks ...Hook) {
	c.hooks.ExamFormatResult = append(c.hooks.ExamFormatResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `examformatresult.Intercept(f(g(h())))`.
func (c *ExamFormatResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExamFormatResult = append(c.inters.ExamFormatResult, interceptors...)
}

// Create returns a builder for creating a ExamFormatResult entity.
func (c *ExamFormatResultClient) Create() *ExamFormatResultCreate {
	mutation := newExamFormatResultMutation(c.config, OpCreate)
	return &ExamFormatResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExamFormatResult entities.
func (c *ExamFormatResultClient) CreateBulk(builders ...*ExamFormatResultCreate) *ExamFormatResultCreateBulk {
	return &ExamFormatResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExamFormatResultClient) MapCreateBulk(slice any, setFunc func(*ExamFormatResultCreate, int)) *ExamFormatResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExamFormatResultCreateBulk{err: fmt.Errorf("calling to ExamFormatResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExamFormatResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExamFormatResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExamFormatResult.
func (c *ExamFormatResultClient) Update() *ExamFormatResultUpdate {
	mutation := newExamFormatResultMutation(c.config, OpUpdate)
	return &ExamFormatResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExamFormatResultClient) UpdateOne(_m *ExamFormatResult) *ExamFormatResultUpdateOne {
	mutation := newExamFormatResultMutation(c.config, OpUpdateOne, withExamFormatResult(_m))
	return &ExamFormatResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExamFormatResultClient) UpdateOneID(id int) *ExamFormatResultUpdateOne {
	mutation := newExamFormatResultMutation(c.config, OpUpdateOne, withExamFormatResultID(id))
	return &ExamFormatResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExamFormatResult.
func (c *ExamFormatResultClient) Delete() *ExamFormatResultDelete {
	mutation := newExamFormatResultMutation(c.config, OpDelete)
	return &ExamFormatResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExamFormatResultClient) DeleteOne(_m *ExamFormatResult) *ExamFormatResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExamFormatResultClient) DeleteOneID(id int) *ExamFormatResultDeleteOne {
	builder := c.Delete().Where(examformatresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExamFormatResultDeleteOne{builder}
}

// Query returns a query builder for ExamFormatResult.
func (c *ExamFormatResultClient) Query() *ExamFormatResultQuery {
	return &ExamFormatResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExamFormatResult},
		inters: c.Interceptors(),
	}
}

// Get returns a ExamFormatResult entity by its id.
func (c *ExamFormatResultClient) Get(ctx context.Context, id int) (*ExamFormatResult, error) {
	return c.Query().Where(examformatresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExamFormatResultClient) GetX(ctx context.Context, id int) *ExamFormatResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExamFormatResultClient) Hooks() []Hook {
	return c.hooks.ExamFormatResult
}

// Interceptors returns the client interceptors.
func (c *ExamFormatResultClient) Interceptors() []Interceptor {
	return c.inters.ExamFormatResult
}

func (c *ExamFormatResultClient) mutate(ctx context.Context, m *ExamFormatResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExamFormatResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExamFormatResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExamFormatResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExamFormatResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExamFormatResult mutation op: %q", m.Op())
	}
}

// ExamSectionClient is a client for the ExamSection schema.
type ExamSectionClient struct {
	config
}

// NewExamSectionClient returns a client for the ExamSection from the given config.
func NewExamSectionClient(c config) *ExamSectionClient {
	return &ExamSectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `examsection.Hooks(f(g(h())))`.
func (c *ExamSectionClient) Use(hooks ...Hook) {
	c.hooks.ExamSection = append(c.hooks.ExamSection, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `examsection.Intercept(f(g(h())))`.
func (c *ExamSectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExamSection = append(c.inters.ExamSection, interceptors...)
}

// Create returns a builder for creating a ExamSection entity.
func (c *ExamSectionClient) Create() *ExamSectionCreate {
	mutation := newExamSectionMutation(c.config, OpCreate)
	return &ExamSectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExamSection entities.
func (c *ExamSectionClient) CreateBulk(builders ...*ExamSectionCreate) *ExamSectionCreateBulk {
	return &ExamSectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExamSectionClient) MapCreateBulk(slice any, setFunc func(*ExamSectionCreate, int)) *ExamSectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExamSectionCreateBulk{err: fmt.Errorf("calling to ExamSectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExamSectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExamSectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExamSection.
func (c *ExamSectionClient) Update() *ExamSectionUpdate {
	mutation := newExamSectionMutation(c.config, OpUpdate)
	return &ExamSectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExamSectionClient) UpdateOne(_m *ExamSection) *ExamSectionUpdateOne {
	mutation := newExamSectionMutation(c.config, OpUpdateOne, withExamSection(_m))
	return &ExamSectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExamSectionClient) UpdateOneID(id int) *ExamSectionUpdateOne {
	mutation := newExamSectionMutation(c.config, OpUpdateOne, withExamSectionID(id))
	return &ExamSectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExamSection.
func (c *ExamSectionClient) Delete() *ExamSectionDelete {
	mutation := newExamSectionMutation(c.config, OpDelete)
	return &ExamSectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExamSectionClient) DeleteOne(_m *ExamSection) *ExamSectionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExamSectionClient) DeleteOneID(id int) *ExamSectionDeleteOne {
	builder := c.Delete().Where(examsection.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExamSectionDeleteOne{builder}
}

// Query returns a query builder for ExamSection.
func (c *ExamSectionClient) Query() *ExamSectionQuery {
	return &ExamSectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExamSection},
		inters: c.Interceptors(),
	}
}

// Get returns a ExamSection entity by its id.
func (c *ExamSectionClient) Get(ctx context.Context, id int) (*ExamSection, error) {
	return c.Query().Where(examsection.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExamSectionClient) GetX(ctx context.Context, id int) *ExamSection {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExam queries the exam edge of a ExamSection.
func (c *ExamSectionClient) QueryExam(_m *ExamSection) *ExamQuery {
	query := (&ExamClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(examsection.Table, examsection.FieldID, id),
			sqlgraph.To(exam.Table, exam.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, examsection.ExamTable, examsection.ExamColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuestions queries the questions edge of a ExamSection.
func (c *ExamSectionClient) QueryQuestions(_m *ExamSection) *QuestionQuery {
	query := (&QuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(examsection.Table, examsection.FieldID, id),
			sqlgraph.To(question.Table, question.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, examsection.QuestionsTable, examsection.QuestionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExamSectionClient) Hooks() []Hook {
	return c.hooks.ExamSection
}

// Interceptors returns the client interceptors.
func (c *ExamSectionClient) Interceptors() []Interceptor {
	return c.inters.ExamSection
}

func (c *ExamSectionClient) mutate(ctx context.Context, m *ExamSectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExamSectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExamSectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExamSectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExamSectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExamSection mutation op: %q", m.Op())
	}
}

// PassageClient is a client for the Passage schema.
type PassageClient struct {
	config
}

// NewPassageClient returns a client for the Passage from the given config.
func NewPassageClient(c config) *PassageClient {
	return &PassageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `passage.Hooks(f(g(h())))`.
func (c *PassageClient) Use(hooks ...Hook) {
	c.hooks.Passage = append(c.hooks.Passage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `passage.Intercept(f(g(h())))`.
func (c *PassageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Passage = append(c.inters.Passage, interceptors...)
}

// Create returns a builder for creating a Passage entity.
func (c *PassageClient) Create() *PassageCreate {
	mutation := newPassageMutation(c.config, OpCreate)
	return &PassageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Passage entities.
func (c *PassageClient) CreateBulk(builders ...*PassageCreate) *PassageCreateBulk {
	return &PassageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PassageClient) MapCreateBulk(slice any, setFunc func(*PassageCreate, int)) *PassageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PassageCreateBulk{err: fmt.Errorf("calling to PassageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PassageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PassageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Passage.
func (c *PassageClient) Update() *PassageUpdate {
	mutation := newPassageMutation(c.config, OpUpdate)
	return &PassageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PassageClient) UpdateOne(_m *Passage) *PassageUpdateOne {
	mutation := newPassageMutation(c.config, OpUpdateOne, withPassage(_m))
	return &PassageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PassageClient) UpdateOneID(id int) *PassageUpdateOne {
	mutation := newPassageMutation(c.config, OpUpdateOne, withPassageID(id))
	return &PassageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Passage.
func (c *PassageClient) Delete() *PassageDelete {
	mutation := newPassageMutation(c.config, OpDelete)
	return &PassageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PassageClient) DeleteOne(_m *Passage) *PassageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PassageClient) DeleteOneID(id int) *PassageDeleteOne {
	builder := c.Delete().Where(passage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PassageDeleteOne{builder}
}

// Query returns a query builder for Passage.
func (c *PassageClient) Query() *PassageQuery {
	return &PassageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePassage},
		inters: c.Interceptors(),
	}
}

// Get returns a Passage entity by its id.
func (c *PassageClient) Get(ctx context.Context, id int) (*Passage, error) {
	return c.Query().Where(passage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PassageClient) GetX(ctx context.Context, id int) *Passage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQuestions queries the questions edge of a Passage.
func (c *PassageClient) QueryQuestions(_m *Passage) *QuestionQuery {
	query := (&QuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(passage.Table, passage.FieldID, id),
			sqlgraph.To(question.Table, question.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, passage.QuestionsTable, passage.QuestionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PassageClient) Hooks() []Hook {
	return c.hooks.Passage
}

// Interceptors returns the client interceptors.
func (c *PassageClient) Interceptors() []Interceptor {
	return c.inters.Passage
}

func (c *PassageClient) mutate(ctx context.Context, m *PassageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PassageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PassageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PassageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PassageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Passage mutation op: %q", m.Op())
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

// QuerySection queries the section edge of a Question.
func (c *QuestionClient) QuerySection(_m *Question) *ExamSectionQuery {
	query := (&ExamSectionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(question.Table, question.FieldID, id),
			sqlgraph.To(examsection.Table, examsection.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, question.SectionTable, question.SectionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPassage queries the passage edge of a Question.
func (c *QuestionClient) QueryPassage(_m *Question) *PassageQuery {
	query := (&PassageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(question.Table, question.FieldID, id),
			sqlgraph.To(passage.Table, passage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, question.PassageTable, question.PassageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAsset queries the asset edge of a Question.
func (c *QuestionClient) QueryAsset(_m *Question) *AssetQuery {
	query := (&AssetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(question.Table, question.FieldID, id),
			sqlgraph.To(asset.Table, asset.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, question.AssetTable, question.AssetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChoices queries the choices edge of a Question.
func (c *QuestionClient) QueryChoices(_m *Question) *ChoiceQuery {
	query := (&ChoiceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(question.Table, question.FieldID, id),
			sqlgraph.To(choice.Table, choice.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, question.ChoicesTable, question.ChoicesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
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

// SessionClient is a client for the Session schema.
type SessionClient struct {
	config
}

// NewSessionClient returns a client for the Session from the given config.
func NewSessionClient(c config) *SessionClient {
	return &SessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `session.Hooks(f(g(h())))`.
func (c *SessionClient) Use(hooks ...Hook) {
	c.hooks.Session = append(c.hooks.Session, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `session.Intercept(f(g(h())))`.
func (c *SessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Session = append(c.inters.Session, interceptors...)
}

// Create returns a builder for creating a Session entity.
func (c *SessionClient) Create() *SessionCreate {
	mutation := newSessionMutation(c.config, OpCreate)
	return &SessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Session entities.
func (c *SessionClient) CreateBulk(builders ...*SessionCreate) *SessionCreateBulk {
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionClient) MapCreateBulk(slice any, setFunc func(*SessionCreate, int)) *SessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCreateBulk{err: fmt.Errorf("calling to SessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Session.
func (c *SessionClient) Update() *SessionUpdate {
	mutation := newSessionMutation(c.config, OpUpdate)
	return &SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionClient) UpdateOne(_m *Session) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSession(_m))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionClient) UpdateOneID(id int) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSessionID(id))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Session.
func (c *SessionClient) Delete() *SessionDelete {
	mutation := newSessionMutation(c.config, OpDelete)
	return &SessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionClient) DeleteOne(_m *Session) *SessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionClient) DeleteOneID(id int) *SessionDeleteOne {
	builder := c.Delete().Where(session.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDeleteOne{builder}
}

// Query returns a query builder for Session.
func (c *SessionClient) Query() *SessionQuery {
	return &SessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a Session entity by its id.
func (c *SessionClient) Get(ctx context.Context, id int) (*Session, error) {
	return c.Query().Where(session.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionClient) GetX(ctx context.Context, id int) *Session {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAttempts queries the attempts edge of a Session.
func (c *SessionClient) QueryAttempts(_m *Session) *AttemptQuery {
	query := (&AttemptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(attempt.Table, attempt.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, session.AttemptsTable, session.AttemptsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionClient) Hooks() []Hook {
	return c.hooks.Session
}

// Interceptors returns the client interceptors.
func (c *SessionClient) Interceptors() []Interceptor {
	return c.inters.Session
}

func (c *SessionClient) mutate(ctx context.Context, m *SessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Session mutation op: %q", m.Op())
	}
}

// UserSkillProgressClient is a client for the UserSkillProgress schema.
type UserSkillProgressClient struct {
	config
}

// NewUserSkillProgressClient returns a client for the UserSkillProgress from the given config.
func NewUserSkillProgressClient(c config) *UserSkillProgressClient {
	return &UserSkillProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userskillprogress.Hooks(f(g(h())))`.
func (c *UserSkillProgressClient) Use(hooks ...Hook) {
	c.hooks.UserSkillProgress = append(c.hooks.UserSkillProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userskillprogress.Intercept(f(g(h())))`.
func (c *UserSkillProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserSkillProgress = append(c.inters.UserSkillProgress, interceptors...)
}

// Create returns a builder for creating a UserSkillProgress entity.
func (c *UserSkillProgressClient) Create() *UserSkillProgressCreate {
	mutation := newUserSkillProgressMutation(c.config, OpCreate)
	return &UserSkillProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserSkillProgress entities.
func (c *UserSkillProgressClient) CreateBulk(builders ...*UserSkillProgressCreate) *UserSkillProgressCreateBulk {
	return &UserSkillProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserSkillProgressClient) MapCreateBulk(slice any, setFunc func(*UserSkillProgressCreate, int)) *UserSkillProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserSkillProgressCreateBulk{err: fmt.Errorf("calling to UserSkillProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserSkillProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserSkillProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserSkillProgress.
func (c *UserSkillProgressClient) Update() *UserSkillProgressUpdate {
	mutation := newUserSkillProgressMutation(c.config, OpUpdate)
	return &UserSkillProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserSkillProgressClient) UpdateOne(_m *UserSkillProgress) *UserSkillProgressUpdateOne {
	mutation := newUserSkillProgressMutation(c.config, OpUpdateOne, withUserSkillProgress(_m))
	return &UserSkillProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserSkillProgressClient) UpdateOneID(id int) *UserSkillProgressUpdateOne {
	mutation := newUserSkillProgressMutation(c.config, OpUpdateOne, withUserSkillProgressID(id))
	return &UserSkillProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserSkillProgress.
func (c *UserSkillProgressClient) Delete() *UserSkillProgressDelete {
	mutation := newUserSkillProgressMutation(c.config, OpDelete)
	return &UserSkillProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserSkillProgressClient) DeleteOne(_m *UserSkillProgress) *UserSkillProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserSkillProgressClient) DeleteOneID(id int) *UserSkillProgressDeleteOne {
	builder := c.Delete().Where(userskillprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserSkillProgressDeleteOne{builder}
}

// Query returns a query builder for UserSkillProgress.
func (c *UserSkillProgressClient) Query() *UserSkillProgressQuery {
	return &UserSkillProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserSkillProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a UserSkillProgress entity by its id.
func (c *UserSkillProgressClient) Get(ctx context.Context, id int) (*UserSkillProgress, error) {
	return c.Query().Where(userskillprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserSkillProgressClient) GetX(ctx context.Context, id int) *UserSkillProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserSkillProgressClient) Hooks() []Hook {
	return c.hooks.UserSkillProgress
}

// Interceptors returns the client interceptors.
func (c *UserSkillProgressClient) Interceptors() []Interceptor {
	return c.inters.UserSkillProgress
}

func (c *UserSkillProgressClient) mutate(ctx context.Context, m *UserSkillProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserSkillProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserSkillProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserSkillProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserSkillProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserSkillProgress mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Answer, Asset, Attempt, CEFRCertificate, Choice, CourseExercise, CourseLesson,
		Exam, ExamFormatResult, ExamSection, Passage, Question, Session,
		UserSkillProgress []ent.Hook
	}
	inters struct {
		Answer, Asset, Attempt, CEFRCertificate, Choice, CourseExercise, CourseLesson,
		Exam, ExamFormatResult, ExamSection, Passage, Question, Session,
		UserSkillProgress []ent.Interceptor
	}
)
