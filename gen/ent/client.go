// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/attackobject"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/document"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/indicator"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/ingestjob"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/mapping"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/report"
	"github.com/joseph-ayodele/threat-mapper/gen/ent/sentence"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AttackObject is the client for interacting with the AttackObject builders.
	AttackObject *AttackObjectClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// Indicator is the client for interacting with the Indicator builders.
	Indicator *IndicatorClient
	// IngestJob is the client for interacting with the IngestJob builders.
	IngestJob *IngestJobClient
	// Mapping is the client for interacting with the Mapping builders.
	Mapping *MappingClient
	// Report is the client for interacting with the Report builders.
	Report *ReportClient
	// Sentence is the client for interacting with the Sentence builders.
	Sentence *SentenceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AttackObject = NewAttackObjectClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.Indicator = NewIndicatorClient(c.config)
	c.IngestJob = NewIngestJobClient(c.config)
	c.Mapping = NewMappingClient(c.config)
	c.Report = NewReportClient(c.config)
	c.Sentence = NewSentenceClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		AttackObject: NewAttackObjectClient(cfg),
		Document:     NewDocumentClient(cfg),
		Indicator:    NewIndicatorClient(cfg),
		IngestJob:    NewIngestJobClient(cfg),
		Mapping:      NewMappingClient(cfg),
		Report:       NewReportClient(cfg),
		Sentence:     NewSentenceClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		AttackObject: NewAttackObjectClient(cfg),
		Document:     NewDocumentClient(cfg),
		Indicator:    NewIndicatorClient(cfg),
		IngestJob:    NewIngestJobClient(cfg),
		Mapping:      NewMappingClient(cfg),
		Report:       NewReportClient(cfg),
		Sentence:     NewSentenceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AttackObject.
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
		c.AttackObject, c.Document, c.Indicator, c.IngestJob, c.Mapping, c.Report,
		c.Sentence,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AttackObject, c.Document, c.Indicator, c.IngestJob, c.Mapping, c.Report,
		c.Sentence,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttackObjectMutation:
		return c.AttackObject.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *IndicatorMutation:
		return c.Indicator.mutate(ctx, m)
	case *IngestJobMutation:
		return c.IngestJob.mutate(ctx, m)
	case *MappingMutation:
		return c.Mapping.mutate(ctx, m)
	case *ReportMutation:
		return c.Report.mutate(ctx, m)
	case *SentenceMutation:
		return c.Sentence.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttackObjectClient is a client for the AttackObject schema.
type AttackObjectClient struct {
	config
}

// NewAttackObjectClient returns a client for the AttackObject from the given config.
func NewAttackObjectClient(c config) *AttackObjectClient {
	return &AttackObjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attackobject.Hooks(f(g(h())))`.
func (c *AttackObjectClient) Use(hooks ...Hook) {
	c.hooks.AttackObject = append(c.hooks.AttackObject, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attackobject.Intercept(f(g(h())))`.
func (c *AttackObjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttackObject = append(c.inters.AttackObject, interceptors...)
}

// Create returns a builder for creating a AttackObject entity.
func (c *AttackObjectClient) Create() *AttackObjectCreate {
	mutation := newAttackObjectMutation(c.config, OpCreate)
	return &AttackObjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttackObject entities.
func (c *AttackObjectClient) CreateBulk(builders ...*AttackObjectCreate) *AttackObjectCreateBulk {
	return &AttackObjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttackObjectClient) MapCreateBulk(slice any, setFunc func(*AttackObjectCreate, int)) *AttackObjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttackObjectCreateBulk{err: fmt.Errorf("calling to AttackObjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttackObjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttackObjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttackObject.
func (c *AttackObjectClient) Update() *AttackObjectUpdate {
	mutation := newAttackObjectMutation(c.config, OpUpdate)
	return &AttackObjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttackObjectClient) UpdateOne(_m *AttackObject) *AttackObjectUpdateOne {
	mutation := newAttackObjectMutation(c.config, OpUpdateOne, withAttackObject(_m))
	return &AttackObjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttackObjectClient) UpdateOneID(id uuid.UUID) *AttackObjectUpdateOne {
	mutation := newAttackObjectMutation(c.config, OpUpdateOne, withAttackObjectID(id))
	return &AttackObjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttackObject.
func (c *AttackObjectClient) Delete() *AttackObjectDelete {
	mutation := newAttackObjectMutation(c.config, OpDelete)
	return &AttackObjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttackObjectClient) DeleteOne(_m *AttackObject) *AttackObjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttackObjectClient) DeleteOneID(id uuid.UUID) *AttackObjectDeleteOne {
	builder := c.Delete().Where(attackobject.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttackObjectDeleteOne{builder}
}

// Query returns a query builder for AttackObject.
func (c *AttackObjectClient) Query() *AttackObjectQuery {
	return &AttackObjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttackObject},
		inters: c.Interceptors(),
	}
}

// Get returns a AttackObject entity by its id.
func (c *AttackObjectClient) Get(ctx context.Context, id uuid.UUID) (*AttackObject, error) {
	return c.Query().Where(attackobject.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttackObjectClient) GetX(ctx context.Context, id uuid.UUID) *AttackObject {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMappings queries the mappings edge of a AttackObject.
func (c *AttackObjectClient) QueryMappings(_m *AttackObject) *MappingQuery {
	query := (&MappingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(attackobject.Table, attackobject.FieldID, id),
			sqlgraph.To(mapping.Table, mapping.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, attackobject.MappingsTable, attackobject.MappingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AttackObjectClient) Hooks() []Hook {
	return c.hooks.AttackObject
}

// Interceptors returns the client interceptors.
func (c *AttackObjectClient) Interceptors() []Interceptor {
	return c.inters.AttackObject
}

func (c *AttackObjectClient) mutate(ctx context.Context, m *AttackObjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttackObjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttackObjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttackObjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttackObjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttackObject mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a Document.
func (c *DocumentClient) QueryJobs(_m *Document) *IngestJobQuery {
	query := (&IngestJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(ingestjob.Table, ingestjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.JobsTable, document.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReports queries the reports edge of a Document.
func (c *DocumentClient) QueryReports(_m *Document) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.ReportsTable, document.ReportsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySentences queries the sentences edge of a Document.
func (c *DocumentClient) QuerySentences(_m *Document) *SentenceQuery {
	query := (&SentenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(sentence.Table, sentence.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.SentencesTable, document.SentencesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// IndicatorClient is a client for the Indicator schema.
type IndicatorClient struct {
	config
}

// NewIndicatorClient returns a client for the Indicator from the given config.
func NewIndicatorClient(c config) *IndicatorClient {
	return &IndicatorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `indicator.Hooks(f(g(h())))`.
func (c *IndicatorClient) Use(hooks ...Hook) {
	c.hooks.Indicator = append(c.hooks.Indicator, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `indicator.Intercept(f(g(h())))`.
func (c *IndicatorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Indicator = append(c.inters.Indicator, interceptors...)
}

// Create returns a builder for creating a Indicator entity.
func (c *IndicatorClient) Create() *IndicatorCreate {
	mutation := newIndicatorMutation(c.config, OpCreate)
	return &IndicatorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Indicator entities.
func (c *IndicatorClient) CreateBulk(builders ...*IndicatorCreate) *IndicatorCreateBulk {
	return &IndicatorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IndicatorClient) MapCreateBulk(slice any, setFunc func(*IndicatorCreate, int)) *IndicatorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IndicatorCreateBulk{err: fmt.Errorf("calling to IndicatorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IndicatorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IndicatorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Indicator.
func (c *IndicatorClient) Update() *IndicatorUpdate {
	mutation := newIndicatorMutation(c.config, OpUpdate)
	return &IndicatorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IndicatorClient) UpdateOne(_m *Indicator) *IndicatorUpdateOne {
	mutation := newIndicatorMutation(c.config, OpUpdateOne, withIndicator(_m))
	return &IndicatorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IndicatorClient) UpdateOneID(id uuid.UUID) *IndicatorUpdateOne {
	mutation := newIndicatorMutation(c.config, OpUpdateOne, withIndicatorID(id))
	return &IndicatorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Indicator.
func (c *IndicatorClient) Delete() *IndicatorDelete {
	mutation := newIndicatorMutation(c.config, OpDelete)
	return &IndicatorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IndicatorClient) DeleteOne(_m *Indicator) *IndicatorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IndicatorClient) DeleteOneID(id uuid.UUID) *IndicatorDeleteOne {
	builder := c.Delete().Where(indicator.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IndicatorDeleteOne{builder}
}

// Query returns a query builder for Indicator.
func (c *IndicatorClient) Query() *IndicatorQuery {
	return &IndicatorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIndicator},
		inters: c.Interceptors(),
	}
}

// Get returns a Indicator entity by its id.
func (c *IndicatorClient) Get(ctx context.Context, id uuid.UUID) (*Indicator, error) {
	return c.Query().Where(indicator.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IndicatorClient) GetX(ctx context.Context, id uuid.UUID) *Indicator {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a Indicator.
func (c *IndicatorClient) QueryReport(_m *Indicator) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(indicator.Table, indicator.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, indicator.ReportTable, indicator.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IndicatorClient) Hooks() []Hook {
	return c.hooks.Indicator
}

// Interceptors returns the client interceptors.
func (c *IndicatorClient) Interceptors() []Interceptor {
	return c.inters.Indicator
}

func (c *IndicatorClient) mutate(ctx context.Context, m *IndicatorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IndicatorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IndicatorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IndicatorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IndicatorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Indicator mutation op: %q", m.Op())
	}
}

// IngestJobClient is a client for the IngestJob schema.
type IngestJobClient struct {
	config
}

// NewIngestJobClient returns a client for the IngestJob from the given config.
func NewIngestJobClient(c config) *IngestJobClient {
	return &IngestJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ingestjob.Hooks(f(g(h())))`.
func (c *IngestJobClient) Use(hooks ...Hook) {
	c.hooks.IngestJob = append(c.hooks.IngestJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ingestjob.Intercept(f(g(h())))`.
func (c *IngestJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.IngestJob = append(c.inters.IngestJob, interceptors...)
}

// Create returns a builder for creating a IngestJob entity.
func (c *IngestJobClient) Create() *IngestJobCreate {
	mutation := newIngestJobMutation(c.config, OpCreate)
	return &IngestJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IngestJob entities.
func (c *IngestJobClient) CreateBulk(builders ...*IngestJobCreate) *IngestJobCreateBulk {
	return &IngestJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IngestJobClient) MapCreateBulk(slice any, setFunc func(*IngestJobCreate, int)) *IngestJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IngestJobCreateBulk{err: fmt.Errorf("calling to IngestJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IngestJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IngestJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IngestJob.
func (c *IngestJobClient) Update() *IngestJobUpdate {
	mutation := newIngestJobMutation(c.config, OpUpdate)
	return &IngestJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IngestJobClient) UpdateOne(_m *IngestJob) *IngestJobUpdateOne {
	mutation := newIngestJobMutation(c.config, OpUpdateOne, withIngestJob(_m))
	return &IngestJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IngestJobClient) UpdateOneID(id uuid.UUID) *IngestJobUpdateOne {
	mutation := newIngestJobMutation(c.config, OpUpdateOne, withIngestJobID(id))
	return &IngestJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IngestJob.
func (c *IngestJobClient) Delete() *IngestJobDelete {
	mutation := newIngestJobMutation(c.config, OpDelete)
	return &IngestJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IngestJobClient) DeleteOne(_m *IngestJob) *IngestJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IngestJobClient) DeleteOneID(id uuid.UUID) *IngestJobDeleteOne {
	builder := c.Delete().Where(ingestjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IngestJobDeleteOne{builder}
}

// Query returns a query builder for IngestJob.
func (c *IngestJobClient) Query() *IngestJobQuery {
	return &IngestJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIngestJob},
		inters: c.Interceptors(),
	}
}

// Get returns a IngestJob entity by its id.
func (c *IngestJobClient) Get(ctx context.Context, id uuid.UUID) (*IngestJob, error) {
	return c.Query().Where(ingestjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IngestJobClient) GetX(ctx context.Context, id uuid.UUID) *IngestJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a IngestJob.
func (c *IngestJobClient) QueryDocument(_m *IngestJob) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ingestjob.Table, ingestjob.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ingestjob.DocumentTable, ingestjob.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IngestJobClient) Hooks() []Hook {
	return c.hooks.IngestJob
}

// Interceptors returns the client interceptors.
func (c *IngestJobClient) Interceptors() []Interceptor {
	return c.inters.IngestJob
}

func (c *IngestJobClient) mutate(ctx context.Context, m *IngestJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IngestJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IngestJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IngestJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IngestJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IngestJob mutation op: %q", m.Op())
	}
}

// MappingClient is a client for the Mapping schema.
type MappingClient struct {
	config
}

// NewMappingClient returns a client for the Mapping from the given config.
func NewMappingClient(c config) *MappingClient {
	return &MappingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mapping.Hooks(f(g(h())))`.
func (c *MappingClient) Use(hooks ...Hook) {
	c.hooks.Mapping = append(c.hooks.Mapping, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mapping.Intercept(f(g(h())))`.
func (c *MappingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Mapping = append(c.inters.Mapping, interceptors...)
}

// Create returns a builder for creating a Mapping entity.
func (c *MappingClient) Create() *MappingCreate {
	mutation := newMappingMutation(c.config, OpCreate)
	return &MappingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Mapping entities.
func (c *MappingClient) CreateBulk(builders ...*MappingCreate) *MappingCreateBulk {
	return &MappingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MappingClient) MapCreateBulk(slice any, setFunc func(*MappingCreate, int)) *MappingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MappingCreateBulk{err: fmt.Errorf("calling to MappingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MappingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MappingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Mapping.
func (c *MappingClient) Update() *MappingUpdate {
	mutation := newMappingMutation(c.config, OpUpdate)
	return &MappingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MappingClient) UpdateOne(_m *Mapping) *MappingUpdateOne {
	mutation := newMappingMutation(c.config, OpUpdateOne, withMapping(_m))
	return &MappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MappingClient) UpdateOneID(id uuid.UUID) *MappingUpdateOne {
	mutation := newMappingMutation(c.config, OpUpdateOne, withMappingID(id))
	return &MappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Mapping.
func (c *MappingClient) Delete() *MappingDelete {
	mutation := newMappingMutation(c.config, OpDelete)
	return &MappingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MappingClient) DeleteOne(_m *Mapping) *MappingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MappingClient) DeleteOneID(id uuid.UUID) *MappingDeleteOne {
	builder := c.Delete().Where(mapping.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MappingDeleteOne{builder}
}

// Query returns a query builder for Mapping.
func (c *MappingClient) Query() *MappingQuery {
	return &MappingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMapping},
		inters: c.Interceptors(),
	}
}

// Get returns a Mapping entity by its id.
func (c *MappingClient) Get(ctx context.Context, id uuid.UUID) (*Mapping, error) {
	return c.Query().Where(mapping.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MappingClient) GetX(ctx context.Context, id uuid.UUID) *Mapping {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a Mapping.
func (c *MappingClient) QueryReport(_m *Mapping) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mapping.Table, mapping.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mapping.ReportTable, mapping.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySentence queries the sentence edge of a Mapping.
func (c *MappingClient) QuerySentence(_m *Mapping) *SentenceQuery {
	query := (&SentenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mapping.Table, mapping.FieldID, id),
			sqlgraph.To(sentence.Table, sentence.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mapping.SentenceTable, mapping.SentenceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAttackObject queries the attack_object edge of a Mapping.
func (c *MappingClient) QueryAttackObject(_m *Mapping) *AttackObjectQuery {
	query := (&AttackObjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mapping.Table, mapping.FieldID, id),
			sqlgraph.To(attackobject.Table, attackobject.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mapping.AttackObjectTable, mapping.AttackObjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MappingClient) Hooks() []Hook {
	return c.hooks.Mapping
}

// Interceptors returns the client interceptors.
func (c *MappingClient) Interceptors() []Interceptor {
	return c.inters.Mapping
}

func (c *MappingClient) mutate(ctx context.Context, m *MappingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MappingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MappingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MappingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Mapping mutation op: %q", m.Op())
	}
}

// ReportClient is a client for the Report schema.
type ReportClient struct {
	config
}

// NewReportClient returns a client for the Report from the given config.
func NewReportClient(c config) *ReportClient {
	return &ReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `report.Hooks(f(g(h())))`.
func (c *ReportClient) Use(hooks ...Hook) {
	c.hooks.Report = append(c.hooks.Report, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `report.Intercept(f(g(h())))`.
func (c *ReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.Report = append(c.inters.Report, interceptors...)
}

// Create returns a builder for creating a Report entity.
func (c *ReportClient) Create() *ReportCreate {
	mutation := newReportMutation(c.config, OpCreate)
	return &ReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Report entities.
func (c *ReportClient) CreateBulk(builders ...*ReportCreate) *ReportCreateBulk {
	return &ReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReportClient) MapCreateBulk(slice any, setFunc func(*ReportCreate, int)) *ReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReportCreateBulk{err: fmt.Errorf("calling to ReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Report.
func (c *ReportClient) Update() *ReportUpdate {
	mutation := newReportMutation(c.config, OpUpdate)
	return &ReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReportClient) UpdateOne(_m *Report) *ReportUpdateOne {
	mutation := newReportMutation(c.config, OpUpdateOne, withReport(_m))
	return &ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReportClient) UpdateOneID(id uuid.UUID) *ReportUpdateOne {
	mutation := newReportMutation(c.config, OpUpdateOne, withReportID(id))
	return &ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Report.
func (c *ReportClient) Delete() *ReportDelete {
	mutation := newReportMutation(c.config, OpDelete)
	return &ReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReportClient) DeleteOne(_m *Report) *ReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReportClient) DeleteOneID(id uuid.UUID) *ReportDeleteOne {
	builder := c.Delete().Where(report.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReportDeleteOne{builder}
}

// Query returns a query builder for Report.
func (c *ReportClient) Query() *ReportQuery {
	return &ReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReport},
		inters: c.Interceptors(),
	}
}

// Get returns a Report entity by its id.
func (c *ReportClient) Get(ctx context.Context, id uuid.UUID) (*Report, error) {
	return c.Query().Where(report.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReportClient) GetX(ctx context.Context, id uuid.UUID) *Report {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a Report.
func (c *ReportClient) QueryDocument(_m *Report) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, report.DocumentTable, report.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySentences queries the sentences edge of a Report.
func (c *ReportClient) QuerySentences(_m *Report) *SentenceQuery {
	query := (&SentenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(sentence.Table, sentence.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.SentencesTable, report.SentencesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryIndicators queries the indicators edge of a Report.
func (c *ReportClient) QueryIndicators(_m *Report) *IndicatorQuery {
	query := (&IndicatorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(indicator.Table, indicator.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.IndicatorsTable, report.IndicatorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMappings queries the mappings edge of a Report.
func (c *ReportClient) QueryMappings(_m *Report) *MappingQuery {
	query := (&MappingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(mapping.Table, mapping.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.MappingsTable, report.MappingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReportClient) Hooks() []Hook {
	return c.hooks.Report
}

// Interceptors returns the client interceptors.
func (c *ReportClient) Interceptors() []Interceptor {
	return c.inters.Report
}

func (c *ReportClient) mutate(ctx context.Context, m *ReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Report mutation op: %q", m.Op())
	}
}

// SentenceClient is a client for the Sentence schema.
type SentenceClient struct {
	config
}

// NewSentenceClient returns a client for the Sentence from the given config.
func NewSentenceClient(c config) *SentenceClient {
	return &SentenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sentence.Hooks(f(g(h())))`.
func (c *SentenceClient) Use(hooks ...Hook) {
	c.hooks.Sentence = append(c.hooks.Sentence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sentence.Intercept(f(g(h())))`.
func (c *SentenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Sentence = append(c.inters.Sentence, interceptors...)
}

// Create returns a builder for creating a Sentence entity.
func (c *SentenceClient) Create() *SentenceCreate {
	mutation := newSentenceMutation(c.config, OpCreate)
	return &SentenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Sentence entities.
func (c *SentenceClient) CreateBulk(builders ...*SentenceCreate) *SentenceCreateBulk {
	return &SentenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SentenceClient) MapCreateBulk(slice any, setFunc func(*SentenceCreate, int)) *SentenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SentenceCreateBulk{err: fmt.Errorf("calling to SentenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SentenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SentenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Sentence.
func (c *SentenceClient) Update() *SentenceUpdate {
	mutation := newSentenceMutation(c.config, OpUpdate)
	return &SentenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SentenceClient) UpdateOne(_m *Sentence) *SentenceUpdateOne {
	mutation := newSentenceMutation(c.config, OpUpdateOne, withSentence(_m))
	return &SentenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SentenceClient) UpdateOneID(id uuid.UUID) *SentenceUpdateOne {
	mutation := newSentenceMutation(c.config, OpUpdateOne, withSentenceID(id))
	return &SentenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Sentence.
func (c *SentenceClient) Delete() *SentenceDelete {
	mutation := newSentenceMutation(c.config, OpDelete)
	return &SentenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SentenceClient) DeleteOne(_m *Sentence) *SentenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SentenceClient) DeleteOneID(id uuid.UUID) *SentenceDeleteOne {
	builder := c.Delete().Where(sentence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SentenceDeleteOne{builder}
}

// Query returns a query builder for Sentence.
func (c *SentenceClient) Query() *SentenceQuery {
	return &SentenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSentence},
		inters: c.Interceptors(),
	}
}

// Get returns a Sentence entity by its id.
func (c *SentenceClient) Get(ctx context.Context, id uuid.UUID) (*Sentence, error) {
	return c.Query().Where(sentence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SentenceClient) GetX(ctx context.Context, id uuid.UUID) *Sentence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a Sentence.
func (c *SentenceClient) QueryReport(_m *Sentence) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sentence.Table, sentence.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sentence.ReportTable, sentence.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocument queries the document edge of a Sentence.
func (c *SentenceClient) QueryDocument(_m *Sentence) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sentence.Table, sentence.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sentence.DocumentTable, sentence.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMappings queries the mappings edge of a Sentence.
func (c *SentenceClient) QueryMappings(_m *Sentence) *MappingQuery {
	query := (&MappingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sentence.Table, sentence.FieldID, id),
			sqlgraph.To(mapping.Table, mapping.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sentence.MappingsTable, sentence.MappingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SentenceClient) Hooks() []Hook {
	return c.hooks.Sentence
}

// Interceptors returns the client interceptors.
func (c *SentenceClient) Interceptors() []Interceptor {
	return c.inters.Sentence
}

func (c *SentenceClient) mutate(ctx context.Context, m *SentenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SentenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SentenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SentenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SentenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Sentence mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AttackObject, Document, Indicator, IngestJob, Mapping, Report,
		Sentence []ent.Hook
	}
	inters struct {
		AttackObject, Document, Indicator, IngestJob, Mapping, Report,
		Sentence []ent.Interceptor
	}
)
