// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/hejijunhao/elephantasm/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hejijunhao/elephantasm/ent/anima"
	"github.com/hejijunhao/elephantasm/ent/apikey"
	"github.com/hejijunhao/elephantasm/ent/dreamaction"
	"github.com/hejijunhao/elephantasm/ent/dreamsession"
	"github.com/hejijunhao/elephantasm/ent/event"
	"github.com/hejijunhao/elephantasm/ent/identity"
	"github.com/hejijunhao/elephantasm/ent/ioconfig"
	"github.com/hejijunhao/elephantasm/ent/knowledge"
	"github.com/hejijunhao/elephantasm/ent/knowledgeauditlog"
	"github.com/hejijunhao/elephantasm/ent/memory"
	"github.com/hejijunhao/elephantasm/ent/memoryevent"
	"github.com/hejijunhao/elephantasm/ent/memorypack"
	"github.com/hejijunhao/elephantasm/ent/synthesisconfig"
	"github.com/hejijunhao/elephantasm/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// APIKey is the client for interacting with the APIKey builders.
	APIKey *APIKeyClient
	// Anima is the client for interacting with the Anima builders.
	Anima *AnimaClient
	// DreamAction is the client for interacting with the DreamAction builders.
	DreamAction *DreamActionClient
	// DreamSession is the client for interacting with the DreamSession builders.
	DreamSession *DreamSessionClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// IOConfig is the client for interacting with the IOConfig builders.
	IOConfig *IOConfigClient
	// Identity is the client for interacting with the Identity builders.
	Identity *IdentityClient
	// Knowledge is the client for interacting with the Knowledge builders.
	Knowledge *KnowledgeClient
	// KnowledgeAuditLog is the client for interacting with the KnowledgeAuditLog builders.
	KnowledgeAuditLog *KnowledgeAuditLogClient
	// Memory is the client for interacting with the Memory builders.
	Memory *MemoryClient
	// MemoryEvent is the client for interacting with the MemoryEvent builders.
	MemoryEvent *MemoryEventClient
	// MemoryPack is the client for interacting with the MemoryPack builders.
	MemoryPack *MemoryPackClient
	// SynthesisConfig is the client for interacting with the SynthesisConfig builders.
	SynthesisConfig *SynthesisConfigClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.APIKey = NewAPIKeyClient(c.config)
	c.Anima = NewAnimaClient(c.config)
	c.DreamAction = NewDreamActionClient(c.config)
	c.DreamSession = NewDreamSessionClient(c.config)
	c.Event = NewEventClient(c.config)
	c.IOConfig = NewIOConfigClient(c.config)
	c.Identity = NewIdentityClient(c.config)
	c.Knowledge = NewKnowledgeClient(c.config)
	c.KnowledgeAuditLog = NewKnowledgeAuditLogClient(c.config)
	c.Memory = NewMemoryClient(c.config)
	c.MemoryEvent = NewMemoryEventClient(c.config)
	c.MemoryPack = NewMemoryPackClient(c.config)
	c.SynthesisConfig = NewSynthesisConfigClient(c.config)
	c.User = NewUserClient(c.config)
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
		APIKey:            NewAPIKeyClient(cfg),
		Anima:             NewAnimaClient(cfg),
		DreamAction:       NewDreamActionClient(cfg),
		DreamSession:      NewDreamSessionClient(cfg),
		Event:             NewEventClient(cfg),
		IOConfig:          NewIOConfigClient(cfg),
		Identity:          NewIdentityClient(cfg),
		Knowledge:         NewKnowledgeClient(cfg),
		KnowledgeAuditLog: NewKnowledgeAuditLogClient(cfg),
		Memory:            NewMemoryClient(cfg),
		MemoryEvent:       NewMemoryEventClient(cfg),
		MemoryPack:        NewMemoryPackClient(cfg),
		SynthesisConfig:   NewSynthesisConfigClient(cfg),
		User:              NewUserClient(cfg),
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
		APIKey:            NewAPIKeyClient(cfg),
		Anima:             NewAnimaClient(cfg),
		DreamAction:       NewDreamActionClient(cfg),
		DreamSession:      NewDreamSessionClient(cfg),
		Event:             NewEventClient(cfg),
		IOConfig:          NewIOConfigClient(cfg),
		Identity:          NewIdentityClient(cfg),
		Knowledge:         NewKnowledgeClient(cfg),
		KnowledgeAuditLog: NewKnowledgeAuditLogClient(cfg),
		Memory:            NewMemoryClient(cfg),
		MemoryEvent:       NewMemoryEventClient(cfg),
		MemoryPack:        NewMemoryPackClient(cfg),
		SynthesisConfig:   NewSynthesisConfigClient(cfg),
		User:              NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		APIKey.
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
		c.APIKey, c.Anima, c.DreamAction, c.DreamSession, c.Event, c.IOConfig,
		c.Identity, c.Knowledge, c.KnowledgeAuditLog, c.Memory, c.MemoryEvent,
		c.MemoryPack, c.SynthesisConfig, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.APIKey, c.Anima, c.DreamAction, c.DreamSession, c.Event, c.IOConfig,
		c.Identity, c.Knowledge, c.KnowledgeAuditLog, c.Memory, c.MemoryEvent,
		c.MemoryPack, c.SynthesisConfig, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *APIKeyMutation:
		return c.APIKey.mutate(ctx, m)
	case *AnimaMutation:
		return c.Anima.mutate(ctx, m)
	case *DreamActionMutation:
		return c.DreamAction.mutate(ctx, m)
	case *DreamSessionMutation:
		return c.DreamSession.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *IOConfigMutation:
		return c.IOConfig.mutate(ctx, m)
	case *IdentityMutation:
		return c.Identity.mutate(ctx, m)
	case *KnowledgeMutation:
		return c.Knowledge.mutate(ctx, m)
	case *KnowledgeAuditLogMutation:
		return c.KnowledgeAuditLog.mutate(ctx, m)
	case *MemoryMutation:
		return c.Memory.mutate(ctx, m)
	case *MemoryEventMutation:
		return c.MemoryEvent.mutate(ctx, m)
	case *MemoryPackMutation:
		return c.MemoryPack.mutate(ctx, m)
	case *SynthesisConfigMutation:
		return c.SynthesisConfig.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// APIKeyClient is a client for the APIKey schema.
type APIKeyClient struct {
	config
}

// NewAPIKeyClient returns a client for the APIKey from the given config.
func NewAPIKeyClient(c config) *APIKeyClient {
	return &APIKeyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `apikey.Hooks(f(g(h())))`.
func (c *APIKeyClient) Use(hooks ...Hook) {
	c.hooks.APIKey = append(c.hooks.APIKey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `apikey.Intercept(f(g(h())))`.
func (c *APIKeyClient) Intercept(interceptors ...Interceptor) {
	c.inters.APIKey = append(c.inters.APIKey, interceptors...)
}

// Create returns a builder for creating a APIKey entity.
func (c *APIKeyClient) Create() *APIKeyCreate {
	mutation := newAPIKeyMutation(c.config, OpCreate)
	return &APIKeyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of APIKey entities.
func (c *APIKeyClient) CreateBulk(builders ...*APIKeyCreate) *APIKeyCreateBulk {
	return &APIKeyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *APIKeyClient) MapCreateBulk(slice any, setFunc func(*APIKeyCreate, int)) *APIKeyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &APIKeyCreateBulk{err: fmt.Errorf("calling to APIKeyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*APIKeyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &APIKeyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for APIKey.
func (c *APIKeyClient) Update() *APIKeyUpdate {
	mutation := newAPIKeyMutation(c.config, OpUpdate)
	return &APIKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *APIKeyClient) UpdateOne(_m *APIKey) *APIKeyUpdateOne {
	mutation := newAPIKeyMutation(c.config, OpUpdateOne, withAPIKey(_m))
	return &APIKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *APIKeyClient) UpdateOneID(id string) *APIKeyUpdateOne {
	mutation := newAPIKeyMutation(c.config, OpUpdateOne, withAPIKeyID(id))
	return &APIKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for APIKey.
func (c *APIKeyClient) Delete() *APIKeyDelete {
	mutation := newAPIKeyMutation(c.config, OpDelete)
	return &APIKeyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *APIKeyClient) DeleteOne(_m *APIKey) *APIKeyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *APIKeyClient) DeleteOneID(id string) *APIKeyDeleteOne {
	builder := c.Delete().Where(apikey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &APIKeyDeleteOne{builder}
}

// Query returns a query builder for APIKey.
func (c *APIKeyClient) Query() *APIKeyQuery {
	return &APIKeyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAPIKey},
		inters: c.Interceptors(),
	}
}

// Get returns a APIKey entity by its id.
func (c *APIKeyClient) Get(ctx context.Context, id string) (*APIKey, error) {
	return c.Query().Where(apikey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *APIKeyClient) GetX(ctx context.Context, id string) *APIKey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a APIKey.
func (c *APIKeyClient) QueryUser(_m *APIKey) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(apikey.Table, apikey.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, apikey.UserTable, apikey.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *APIKeyClient) Hooks() []Hook {
	return c.hooks.APIKey
}

// Interceptors returns the client interceptors.
func (c *APIKeyClient) Interceptors() []Interceptor {
	return c.inters.APIKey
}

func (c *APIKeyClient) mutate(ctx context.Context, m *APIKeyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&APIKeyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&APIKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&APIKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&APIKeyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown APIKey mutation op: %q", m.Op())
	}
}

// AnimaClient is a client for the Anima schema.
type AnimaClient struct {
	config
}

// NewAnimaClient returns a client for the Anima from the given config.
func NewAnimaClient(c config) *AnimaClient {
	return &AnimaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `anima.Hooks(f(g(h())))`.
func (c *AnimaClient) Use(hooks ...Hook) {
	c.hooks.Anima = append(c.hooks.Anima, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `anima.Intercept(f(g(h())))`.
func (c *AnimaClient) Intercept(interceptors ...Interceptor) {
	c.inters.Anima = append(c.inters.Anima, interceptors...)
}

// Create returns a builder for creating a Anima entity.
func (c *AnimaClient) Create() *AnimaCreate {
	mutation := newAnimaMutation(c.config, OpCreate)
	return &AnimaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Anima entities.
func (c *AnimaClient) CreateBulk(builders ...*AnimaCreate) *AnimaCreateBulk {
	return &AnimaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnimaClient) MapCreateBulk(slice any, setFunc func(*AnimaCreate, int)) *AnimaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnimaCreateBulk{err: fmt.Errorf("calling to AnimaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnimaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnimaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Anima.
func (c *AnimaClient) Update() *AnimaUpdate {
	mutation := newAnimaMutation(c.config, OpUpdate)
	return &AnimaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnimaClient) UpdateOne(_m *Anima) *AnimaUpdateOne {
	mutation := newAnimaMutation(c.config, OpUpdateOne, withAnima(_m))
	return &AnimaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnimaClient) UpdateOneID(id string) *AnimaUpdateOne {
	mutation := newAnimaMutation(c.config, OpUpdateOne, withAnimaID(id))
	return &AnimaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Anima.
func (c *AnimaClient) Delete() *AnimaDelete {
	mutation := newAnimaMutation(c.config, OpDelete)
	return &AnimaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnimaClient) DeleteOne(_m *Anima) *AnimaDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnimaClient) DeleteOneID(id string) *AnimaDeleteOne {
	builder := c.Delete().Where(anima.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnimaDeleteOne{builder}
}

// Query returns a query builder for Anima.
func (c *AnimaClient) Query() *AnimaQuery {
	return &AnimaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnima},
		inters: c.Interceptors(),
	}
}

// Get returns a Anima entity by its id.
func (c *AnimaClient) Get(ctx context.Context, id string) (*Anima, error) {
	return c.Query().Where(anima.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnimaClient) GetX(ctx context.Context, id string) *Anima {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Anima.
func (c *AnimaClient) QueryUser(_m *Anima) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(anima.Table, anima.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, anima.UserTable, anima.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Anima.
func (c *AnimaClient) QueryEvents(_m *Anima) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(anima.Table, anima.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, anima.EventsTable, anima.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMemories queries the memories edge of a Anima.
func (c *AnimaClient) QueryMemories(_m *Anima) *MemoryQuery {
	query := (&MemoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(anima.Table, anima.FieldID, id),
			sqlgraph.To(memory.Table, memory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, anima.MemoriesTable, anima.MemoriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryKnowledge queries the knowledge edge of a Anima.
func (c *AnimaClient) QueryKnowledge(_m *Anima) *KnowledgeQuery {
	query := (&KnowledgeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(anima.Table, anima.FieldID, id),
			sqlgraph.To(knowledge.Table, knowledge.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, anima.KnowledgeTable, anima.KnowledgeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryIdentity queries the identity edge of a Anima.
func (c *AnimaClient) QueryIdentity(_m *Anima) *IdentityQuery {
	query := (&IdentityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(anima.Table, anima.FieldID, id),
			sqlgraph.To(identity.Table, identity.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, anima.IdentityTable, anima.IdentityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySynthesisConfig queries the synthesis_config edge of a Anima.
func (c *AnimaClient) QuerySynthesisConfig(_m *Anima) *SynthesisConfigQuery {
	query := (&SynthesisConfigClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(anima.Table, anima.FieldID, id),
			sqlgraph.To(synthesisconfig.Table, synthesisconfig.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, anima.SynthesisConfigTable, anima.SynthesisConfigColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryIoConfig queries the io_config edge of a Anima.
func (c *AnimaClient) QueryIoConfig(_m *Anima) *IOConfigQuery {
	query := (&IOConfigClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(anima.Table, anima.FieldID, id),
			sqlgraph.To(ioconfig.Table, ioconfig.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, anima.IoConfigTable, anima.IoConfigColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMemoryPacks queries the memory_packs edge of a Anima.
func (c *AnimaClient) QueryMemoryPacks(_m *Anima) *MemoryPackQuery {
	query := (&MemoryPackClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(anima.Table, anima.FieldID, id),
			sqlgraph.To(memorypack.Table, memorypack.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, anima.MemoryPacksTable, anima.MemoryPacksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDreamSessions queries the dream_sessions edge of a Anima.
func (c *AnimaClient) QueryDreamSessions(_m *Anima) *DreamSessionQuery {
	query := (&DreamSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(anima.Table, anima.FieldID, id),
			sqlgraph.To(dreamsession.Table, dreamsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, anima.DreamSessionsTable, anima.DreamSessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnimaClient) Hooks() []Hook {
	return c.hooks.Anima
}

// Interceptors returns the client interceptors.
func (c *AnimaClient) Interceptors() []Interceptor {
	return c.inters.Anima
}

func (c *AnimaClient) mutate(ctx context.Context, m *AnimaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnimaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnimaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnimaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnimaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Anima mutation op: %q", m.Op())
	}
}

// DreamActionClient is a client for the DreamAction schema.
type DreamActionClient struct {
	config
}

// NewDreamActionClient returns a client for the DreamAction from the given config.
func NewDreamActionClient(c config) *DreamActionClient {
	return &DreamActionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dreamaction.Hooks(f(g(h())))`.
func (c *DreamActionClient) Use(hooks ...Hook) {
	c.hooks.DreamAction = append(c.hooks.DreamAction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dreamaction.Intercept(f(g(h())))`.
func (c *DreamActionClient) Intercept(interceptors ...Interceptor) {
	c.inters.DreamAction = append(c.inters.DreamAction, interceptors...)
}

// Create returns a builder for creating a DreamAction entity.
func (c *DreamActionClient) Create() *DreamActionCreate {
	mutation := newDreamActionMutation(c.config, OpCreate)
	return &DreamActionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DreamAction entities.
func (c *DreamActionClient) CreateBulk(builders ...*DreamActionCreate) *DreamActionCreateBulk {
	return &DreamActionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DreamActionClient) MapCreateBulk(slice any, setFunc func(*DreamActionCreate, int)) *DreamActionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DreamActionCreateBulk{err: fmt.Errorf("calling to DreamActionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DreamActionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DreamActionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DreamAction.
func (c *DreamActionClient) Update() *DreamActionUpdate {
	mutation := newDreamActionMutation(c.config, OpUpdate)
	return &DreamActionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DreamActionClient) UpdateOne(_m *DreamAction) *DreamActionUpdateOne {
	mutation := newDreamActionMutation(c.config, OpUpdateOne, withDreamAction(_m))
	return &DreamActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DreamActionClient) UpdateOneID(id string) *DreamActionUpdateOne {
	mutation := newDreamActionMutation(c.config, OpUpdateOne, withDreamActionID(id))
	return &DreamActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DreamAction.
func (c *DreamActionClient) Delete() *DreamActionDelete {
	mutation := newDreamActionMutation(c.config, OpDelete)
	return &DreamActionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DreamActionClient) DeleteOne(_m *DreamAction) *DreamActionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DreamActionClient) DeleteOneID(id string) *DreamActionDeleteOne {
	builder := c.Delete().Where(dreamaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DreamActionDeleteOne{builder}
}

// Query returns a query builder for DreamAction.
func (c *DreamActionClient) Query() *DreamActionQuery {
	return &DreamActionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDreamAction},
		inters: c.Interceptors(),
	}
}

// Get returns a DreamAction entity by its id.
func (c *DreamActionClient) Get(ctx context.Context, id string) (*DreamAction, error) {
	return c.Query().Where(dreamaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DreamActionClient) GetX(ctx context.Context, id string) *DreamAction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a DreamAction.
func (c *DreamActionClient) QuerySession(_m *DreamAction) *DreamSessionQuery {
	query := (&DreamSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dreamaction.Table, dreamaction.FieldID, id),
			sqlgraph.To(dreamsession.Table, dreamsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dreamaction.SessionTable, dreamaction.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DreamActionClient) Hooks() []Hook {
	return c.hooks.DreamAction
}

// Interceptors returns the client interceptors.
func (c *DreamActionClient) Interceptors() []Interceptor {
	return c.inters.DreamAction
}

func (c *DreamActionClient) mutate(ctx context.Context, m *DreamActionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DreamActionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DreamActionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DreamActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DreamActionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DreamAction mutation op: %q", m.Op())
	}
}

// DreamSessionClient is a client for the DreamSession schema.
type DreamSessionClient struct {
	config
}

// NewDreamSessionClient returns a client for the DreamSession from the given config.
func NewDreamSessionClient(c config) *DreamSessionClient {
	return &DreamSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dreamsession.Hooks(f(g(h())))`.
func (c *DreamSessionClient) Use(hooks ...Hook) {
	c.hooks.DreamSession = append(c.hooks.DreamSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dreamsession.Intercept(f(g(h())))`.
func (c *DreamSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.DreamSession = append(c.inters.DreamSession, interceptors...)
}

// Create returns a builder for creating a DreamSession entity.
func (c *DreamSessionClient) Create() *DreamSessionCreate {
	mutation := newDreamSessionMutation(c.config, OpCreate)
	return &DreamSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DreamSession entities.
func (c *DreamSessionClient) CreateBulk(builders ...*DreamSessionCreate) *DreamSessionCreateBulk {
	return &DreamSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DreamSessionClient) MapCreateBulk(slice any, setFunc func(*DreamSessionCreate, int)) *DreamSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DreamSessionCreateBulk{err: fmt.Errorf("calling to DreamSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DreamSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DreamSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DreamSession.
func (c *DreamSessionClient) Update() *DreamSessionUpdate {
	mutation := newDreamSessionMutation(c.config, OpUpdate)
	return &DreamSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DreamSessionClient) UpdateOne(_m *DreamSession) *DreamSessionUpdateOne {
	mutation := newDreamSessionMutation(c.config, OpUpdateOne, withDreamSession(_m))
	return &DreamSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DreamSessionClient) UpdateOneID(id string) *DreamSessionUpdateOne {
	mutation := newDreamSessionMutation(c.config, OpUpdateOne, withDreamSessionID(id))
	return &DreamSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DreamSession.
func (c *DreamSessionClient) Delete() *DreamSessionDelete {
	mutation := newDreamSessionMutation(c.config, OpDelete)
	return &DreamSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DreamSessionClient) DeleteOne(_m *DreamSession) *DreamSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DreamSessionClient) DeleteOneID(id string) *DreamSessionDeleteOne {
	builder := c.Delete().Where(dreamsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DreamSessionDeleteOne{builder}
}

// Query returns a query builder for DreamSession.
func (c *DreamSessionClient) Query() *DreamSessionQuery {
	return &DreamSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDreamSession},
		inters: c.Interceptors(),
	}
}

// Get returns a DreamSession entity by its id.
func (c *DreamSessionClient) Get(ctx context.Context, id string) (*DreamSession, error) {
	return c.Query().Where(dreamsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DreamSessionClient) GetX(ctx context.Context, id string) *DreamSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnima queries the anima edge of a DreamSession.
func (c *DreamSessionClient) QueryAnima(_m *DreamSession) *AnimaQuery {
	query := (&AnimaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dreamsession.Table, dreamsession.FieldID, id),
			sqlgraph.To(anima.Table, anima.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dreamsession.AnimaTable, dreamsession.AnimaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryActions queries the actions edge of a DreamSession.
func (c *DreamSessionClient) QueryActions(_m *DreamSession) *DreamActionQuery {
	query := (&DreamActionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dreamsession.Table, dreamsession.FieldID, id),
			sqlgraph.To(dreamaction.Table, dreamaction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, dreamsession.ActionsTable, dreamsession.ActionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DreamSessionClient) Hooks() []Hook {
	return c.hooks.DreamSession
}

// Interceptors returns the client interceptors.
func (c *DreamSessionClient) Interceptors() []Interceptor {
	return c.inters.DreamSession
}

func (c *DreamSessionClient) mutate(ctx context.Context, m *DreamSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DreamSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DreamSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DreamSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DreamSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DreamSession mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id string) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id string) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id string) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id string) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnima queries the anima edge of a Event.
func (c *EventClient) QueryAnima(_m *Event) *AnimaQuery {
	query := (&AnimaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(anima.Table, anima.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.AnimaTable, event.AnimaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMemoryLinks queries the memory_links edge of a Event.
func (c *EventClient) QueryMemoryLinks(_m *Event) *MemoryEventQuery {
	query := (&MemoryEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(memoryevent.Table, memoryevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, event.MemoryLinksTable, event.MemoryLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// IOConfigClient is a client for the IOConfig schema.
type IOConfigClient struct {
	config
}

// NewIOConfigClient returns a client for the IOConfig from the given config.
func NewIOConfigClient(c config) *IOConfigClient {
	return &IOConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ioconfig.Hooks(f(g(h())))`.
func (c *IOConfigClient) Use(hooks ...Hook) {
	c.hooks.IOConfig = append(c.hooks.IOConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ioconfig.Intercept(f(g(h())))`.
func (c *IOConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.IOConfig = append(c.inters.IOConfig, interceptors...)
}

// Create returns a builder for creating a IOConfig entity.
func (c *IOConfigClient) Create() *IOConfigCreate {
	mutation := newIOConfigMutation(c.config, OpCreate)
	return &IOConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IOConfig entities.
func (c *IOConfigClient) CreateBulk(builders ...*IOConfigCreate) *IOConfigCreateBulk {
	return &IOConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IOConfigClient) MapCreateBulk(slice any, setFunc func(*IOConfigCreate, int)) *IOConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IOConfigCreateBulk{err: fmt.Errorf("calling to IOConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IOConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IOConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IOConfig.
func (c *IOConfigClient) Update() *IOConfigUpdate {
	mutation := newIOConfigMutation(c.config, OpUpdate)
	return &IOConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IOConfigClient) UpdateOne(_m *IOConfig) *IOConfigUpdateOne {
	mutation := newIOConfigMutation(c.config, OpUpdateOne, withIOConfig(_m))
	return &IOConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IOConfigClient) UpdateOneID(id string) *IOConfigUpdateOne {
	mutation := newIOConfigMutation(c.config, OpUpdateOne, withIOConfigID(id))
	return &IOConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IOConfig.
func (c *IOConfigClient) Delete() *IOConfigDelete {
	mutation := newIOConfigMutation(c.config, OpDelete)
	return &IOConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IOConfigClient) DeleteOne(_m *IOConfig) *IOConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IOConfigClient) DeleteOneID(id string) *IOConfigDeleteOne {
	builder := c.Delete().Where(ioconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IOConfigDeleteOne{builder}
}

// Query returns a query builder for IOConfig.
func (c *IOConfigClient) Query() *IOConfigQuery {
	return &IOConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIOConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a IOConfig entity by its id.
func (c *IOConfigClient) Get(ctx context.Context, id string) (*IOConfig, error) {
	return c.Query().Where(ioconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IOConfigClient) GetX(ctx context.Context, id string) *IOConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnima queries the anima edge of a IOConfig.
func (c *IOConfigClient) QueryAnima(_m *IOConfig) *AnimaQuery {
	query := (&AnimaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ioconfig.Table, ioconfig.FieldID, id),
			sqlgraph.To(anima.Table, anima.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ioconfig.AnimaTable, ioconfig.AnimaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IOConfigClient) Hooks() []Hook {
	return c.hooks.IOConfig
}

// Interceptors returns the client interceptors.
func (c *IOConfigClient) Interceptors() []Interceptor {
	return c.inters.IOConfig
}

func (c *IOConfigClient) mutate(ctx context.Context, m *IOConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IOConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IOConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IOConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IOConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IOConfig mutation op: %q", m.Op())
	}
}

// IdentityClient is a client for the Identity schema.
type IdentityClient struct {
	config
}

// NewIdentityClient returns a client for the Identity from the given config.
func NewIdentityClient(c config) *IdentityClient {
	return &IdentityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `identity.Hooks(f(g(h())))`.
func (c *IdentityClient) Use(hooks ...Hook) {
	c.hooks.Identity = append(c.hooks.Identity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `identity.Intercept(f(g(h())))`.
func (c *IdentityClient) Intercept(interceptors ...Interceptor) {
	c.inters.Identity = append(c.inters.Identity, interceptors...)
}

// Create returns a builder for creating a Identity entity.
func (c *IdentityClient) Create() *IdentityCreate {
	mutation := newIdentityMutation(c.config, OpCreate)
	return &IdentityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Identity entities.
func (c *IdentityClient) CreateBulk(builders ...*IdentityCreate) *IdentityCreateBulk {
	return &IdentityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IdentityClient) MapCreateBulk(slice any, setFunc func(*IdentityCreate, int)) *IdentityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IdentityCreateBulk{err: fmt.Errorf("calling to IdentityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IdentityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IdentityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Identity.
func (c *IdentityClient) Update() *IdentityUpdate {
	mutation := newIdentityMutation(c.config, OpUpdate)
	return &IdentityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IdentityClient) UpdateOne(_m *Identity) *IdentityUpdateOne {
	mutation := newIdentityMutation(c.config, OpUpdateOne, withIdentity(_m))
	return &IdentityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IdentityClient) UpdateOneID(id string) *IdentityUpdateOne {
	mutation := newIdentityMutation(c.config, OpUpdateOne, withIdentityID(id))
	return &IdentityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Identity.
func (c *IdentityClient) Delete() *IdentityDelete {
	mutation := newIdentityMutation(c.config, OpDelete)
	return &IdentityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IdentityClient) DeleteOne(_m *Identity) *IdentityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IdentityClient) DeleteOneID(id string) *IdentityDeleteOne {
	builder := c.Delete().Where(identity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IdentityDeleteOne{builder}
}

// Query returns a query builder for Identity.
func (c *IdentityClient) Query() *IdentityQuery {
	return &IdentityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIdentity},
		inters: c.Interceptors(),
	}
}

// Get returns a Identity entity by its id.
func (c *IdentityClient) Get(ctx context.Context, id string) (*Identity, error) {
	return c.Query().Where(identity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IdentityClient) GetX(ctx context.Context, id string) *Identity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnima queries the anima edge of a Identity.
func (c *IdentityClient) QueryAnima(_m *Identity) *AnimaQuery {
	query := (&AnimaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(identity.Table, identity.FieldID, id),
			sqlgraph.To(anima.Table, anima.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, identity.AnimaTable, identity.AnimaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IdentityClient) Hooks() []Hook {
	return c.hooks.Identity
}

// Interceptors returns the client interceptors.
func (c *IdentityClient) Interceptors() []Interceptor {
	return c.inters.Identity
}

func (c *IdentityClient) mutate(ctx context.Context, m *IdentityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IdentityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IdentityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IdentityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IdentityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Identity mutation op: %q", m.Op())
	}
}

// KnowledgeClient is a client for the Knowledge schema.
type KnowledgeClient struct {
	config
}

// NewKnowledgeClient returns a client for the Knowledge from the given config.
func NewKnowledgeClient(c config) *KnowledgeClient {
	return &KnowledgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `knowledge.Hooks(f(g(h())))`.
func (c *KnowledgeClient) Use(hooks ...Hook) {
	c.hooks.Knowledge = append(c.hooks.Knowledge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `knowledge.Intercept(f(g(h())))`.
func (c *KnowledgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.Knowledge = append(c.inters.Knowledge, interceptors...)
}

// Create returns a builder for creating a Knowledge entity.
func (c *KnowledgeClient) Create() *KnowledgeCreate {
	mutation := newKnowledgeMutation(c.config, OpCreate)
	return &KnowledgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Knowledge entities.
func (c *KnowledgeClient) CreateBulk(builders ...*KnowledgeCreate) *KnowledgeCreateBulk {
	return &KnowledgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KnowledgeClient) MapCreateBulk(slice any, setFunc func(*KnowledgeCreate, int)) *KnowledgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KnowledgeCreateBulk{err: fmt.Errorf("calling to KnowledgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KnowledgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KnowledgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Knowledge.
func (c *KnowledgeClient) Update() *KnowledgeUpdate {
	mutation := newKnowledgeMutation(c.config, OpUpdate)
	return &KnowledgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KnowledgeClient) UpdateOne(_m *Knowledge) *KnowledgeUpdateOne {
	mutation := newKnowledgeMutation(c.config, OpUpdateOne, withKnowledge(_m))
	return &KnowledgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KnowledgeClient) UpdateOneID(id string) *KnowledgeUpdateOne {
	mutation := newKnowledgeMutation(c.config, OpUpdateOne, withKnowledgeID(id))
	return &KnowledgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Knowledge.
func (c *KnowledgeClient) Delete() *KnowledgeDelete {
	mutation := newKnowledgeMutation(c.config, OpDelete)
	return &KnowledgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KnowledgeClient) DeleteOne(_m *Knowledge) *KnowledgeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KnowledgeClient) DeleteOneID(id string) *KnowledgeDeleteOne {
	builder := c.Delete().Where(knowledge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KnowledgeDeleteOne{builder}
}

// Query returns a query builder for Knowledge.
func (c *KnowledgeClient) Query() *KnowledgeQuery {
	return &KnowledgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKnowledge},
		inters: c.Interceptors(),
	}
}

// Get returns a Knowledge entity by its id.
func (c *KnowledgeClient) Get(ctx context.Context, id string) (*Knowledge, error) {
	return c.Query().Where(knowledge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KnowledgeClient) GetX(ctx context.Context, id string) *Knowledge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnima queries the anima edge of a Knowledge.
func (c *KnowledgeClient) QueryAnima(_m *Knowledge) *AnimaQuery {
	query := (&AnimaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledge.Table, knowledge.FieldID, id),
			sqlgraph.To(anima.Table, anima.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, knowledge.AnimaTable, knowledge.AnimaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAuditLogs queries the audit_logs edge of a Knowledge.
func (c *KnowledgeClient) QueryAuditLogs(_m *Knowledge) *KnowledgeAuditLogQuery {
	query := (&KnowledgeAuditLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledge.Table, knowledge.FieldID, id),
			sqlgraph.To(knowledgeauditlog.Table, knowledgeauditlog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, knowledge.AuditLogsTable, knowledge.AuditLogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *KnowledgeClient) Hooks() []Hook {
	return c.hooks.Knowledge
}

// Interceptors returns the client interceptors.
func (c *KnowledgeClient) Interceptors() []Interceptor {
	return c.inters.Knowledge
}

func (c *KnowledgeClient) mutate(ctx context.Context, m *KnowledgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KnowledgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KnowledgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KnowledgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KnowledgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Knowledge mutation op: %q", m.Op())
	}
}

// KnowledgeAuditLogClient is a client for the KnowledgeAuditLog schema.
type KnowledgeAuditLogClient struct {
	config
}

// NewKnowledgeAuditLogClient returns a client for the KnowledgeAuditLog from the given config.
func NewKnowledgeAuditLogClient(c config) *KnowledgeAuditLogClient {
	return &KnowledgeAuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `knowledgeauditlog.Hooks(f(g(h())))`.
func (c *KnowledgeAuditLogClient) Use(hooks ...Hook) {
	c.hooks.KnowledgeAuditLog = append(c.hooks.KnowledgeAuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `knowledgeauditlog.Intercept(f(g(h())))`.
func (c *KnowledgeAuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.KnowledgeAuditLog = append(c.inters.KnowledgeAuditLog, interceptors...)
}

// Create returns a builder for creating a KnowledgeAuditLog entity.
func (c *KnowledgeAuditLogClient) Create() *KnowledgeAuditLogCreate {
	mutation := newKnowledgeAuditLogMutation(c.config, OpCreate)
	return &KnowledgeAuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KnowledgeAuditLog entities.
func (c *KnowledgeAuditLogClient) CreateBulk(builders ...*KnowledgeAuditLogCreate) *KnowledgeAuditLogCreateBulk {
	return &KnowledgeAuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KnowledgeAuditLogClient) MapCreateBulk(slice any, setFunc func(*KnowledgeAuditLogCreate, int)) *KnowledgeAuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KnowledgeAuditLogCreateBulk{err: fmt.Errorf("calling to KnowledgeAuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KnowledgeAuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KnowledgeAuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KnowledgeAuditLog.
func (c *KnowledgeAuditLogClient) Update() *KnowledgeAuditLogUpdate {
	mutation := newKnowledgeAuditLogMutation(c.config, OpUpdate)
	return &KnowledgeAuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KnowledgeAuditLogClient) UpdateOne(_m *KnowledgeAuditLog) *KnowledgeAuditLogUpdateOne {
	mutation := newKnowledgeAuditLogMutation(c.config, OpUpdateOne, withKnowledgeAuditLog(_m))
	return &KnowledgeAuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KnowledgeAuditLogClient) UpdateOneID(id string) *KnowledgeAuditLogUpdateOne {
	mutation := newKnowledgeAuditLogMutation(c.config, OpUpdateOne, withKnowledgeAuditLogID(id))
	return &KnowledgeAuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KnowledgeAuditLog.
func (c *KnowledgeAuditLogClient) Delete() *KnowledgeAuditLogDelete {
	mutation := newKnowledgeAuditLogMutation(c.config, OpDelete)
	return &KnowledgeAuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KnowledgeAuditLogClient) DeleteOne(_m *KnowledgeAuditLog) *KnowledgeAuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KnowledgeAuditLogClient) DeleteOneID(id string) *KnowledgeAuditLogDeleteOne {
	builder := c.Delete().Where(knowledgeauditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KnowledgeAuditLogDeleteOne{builder}
}

// Query returns a query builder for KnowledgeAuditLog.
func (c *KnowledgeAuditLogClient) Query() *KnowledgeAuditLogQuery {
	return &KnowledgeAuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKnowledgeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a KnowledgeAuditLog entity by its id.
func (c *KnowledgeAuditLogClient) Get(ctx context.Context, id string) (*KnowledgeAuditLog, error) {
	return c.Query().Where(knowledgeauditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KnowledgeAuditLogClient) GetX(ctx context.Context, id string) *KnowledgeAuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryKnowledge queries the knowledge edge of a KnowledgeAuditLog.
func (c *KnowledgeAuditLogClient) QueryKnowledge(_m *KnowledgeAuditLog) *KnowledgeQuery {
	query := (&KnowledgeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledgeauditlog.Table, knowledgeauditlog.FieldID, id),
			sqlgraph.To(knowledge.Table, knowledge.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, knowledgeauditlog.KnowledgeTable, knowledgeauditlog.KnowledgeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *KnowledgeAuditLogClient) Hooks() []Hook {
	return c.hooks.KnowledgeAuditLog
}

// Interceptors returns the client interceptors.
func (c *KnowledgeAuditLogClient) Interceptors() []Interceptor {
	return c.inters.KnowledgeAuditLog
}

func (c *KnowledgeAuditLogClient) mutate(ctx context.Context, m *KnowledgeAuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KnowledgeAuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KnowledgeAuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KnowledgeAuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KnowledgeAuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KnowledgeAuditLog mutation op: %q", m.Op())
	}
}

// MemoryClient is a client for the Memory schema.
type MemoryClient struct {
	config
}

// NewMemoryClient returns a client for the Memory from the given config.
func NewMemoryClient(c config) *MemoryClient {
	return &MemoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `memory.Hooks(f(g(h())))`.
func (c *MemoryClient) Use(hooks ...Hook) {
	c.hooks.Memory = append(c.hooks.Memory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `memory.Intercept(f(g(h())))`.
func (c *MemoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Memory = append(c.inters.Memory, interceptors...)
}

// Create returns a builder for creating a Memory entity.
func (c *MemoryClient) Create() *MemoryCreate {
	mutation := newMemoryMutation(c.config, OpCreate)
	return &MemoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Memory entities.
func (c *MemoryClient) CreateBulk(builders ...*MemoryCreate) *MemoryCreateBulk {
	return &MemoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MemoryClient) MapCreateBulk(slice any, setFunc func(*MemoryCreate, int)) *MemoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MemoryCreateBulk{err: fmt.Errorf("calling to MemoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MemoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MemoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Memory.
func (c *MemoryClient) Update() *MemoryUpdate {
	mutation := newMemoryMutation(c.config, OpUpdate)
	return &MemoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MemoryClient) UpdateOne(_m *Memory) *MemoryUpdateOne {
	mutation := newMemoryMutation(c.config, OpUpdateOne, withMemory(_m))
	return &MemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MemoryClient) UpdateOneID(id string) *MemoryUpdateOne {
	mutation := newMemoryMutation(c.config, OpUpdateOne, withMemoryID(id))
	return &MemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Memory.
func (c *MemoryClient) Delete() *MemoryDelete {
	mutation := newMemoryMutation(c.config, OpDelete)
	return &MemoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MemoryClient) DeleteOne(_m *Memory) *MemoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MemoryClient) DeleteOneID(id string) *MemoryDeleteOne {
	builder := c.Delete().Where(memory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MemoryDeleteOne{builder}
}

// Query returns a query builder for Memory.
func (c *MemoryClient) Query() *MemoryQuery {
	return &MemoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMemory},
		inters: c.Interceptors(),
	}
}

// Get returns a Memory entity by its id.
func (c *MemoryClient) Get(ctx context.Context, id string) (*Memory, error) {
	return c.Query().Where(memory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MemoryClient) GetX(ctx context.Context, id string) *Memory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnima queries the anima edge of a Memory.
func (c *MemoryClient) QueryAnima(_m *Memory) *AnimaQuery {
	query := (&AnimaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(memory.Table, memory.FieldID, id),
			sqlgraph.To(anima.Table, anima.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, memory.AnimaTable, memory.AnimaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEventLinks queries the event_links edge of a Memory.
func (c *MemoryClient) QueryEventLinks(_m *Memory) *MemoryEventQuery {
	query := (&MemoryEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(memory.Table, memory.FieldID, id),
			sqlgraph.To(memoryevent.Table, memoryevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, memory.EventLinksTable, memory.EventLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MemoryClient) Hooks() []Hook {
	return c.hooks.Memory
}

// Interceptors returns the client interceptors.
func (c *MemoryClient) Interceptors() []Interceptor {
	return c.inters.Memory
}

func (c *MemoryClient) mutate(ctx context.Context, m *MemoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MemoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MemoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MemoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Memory mutation op: %q", m.Op())
	}
}

// MemoryEventClient is a client for the MemoryEvent schema.
type MemoryEventClient struct {
	config
}

// NewMemoryEventClient returns a client for the MemoryEvent from the given config.
func NewMemoryEventClient(c config) *MemoryEventClient {
	return &MemoryEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `memoryevent.Hooks(f(g(h())))`.
func (c *MemoryEventClient) Use(hooks ...Hook) {
	c.hooks.MemoryEvent = append(c.hooks.MemoryEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `memoryevent.Intercept(f(g(h())))`.
func (c *MemoryEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.MemoryEvent = append(c.inters.MemoryEvent, interceptors...)
}

// Create returns a builder for creating a MemoryEvent entity.
func (c *MemoryEventClient) Create() *MemoryEventCreate {
	mutation := newMemoryEventMutation(c.config, OpCreate)
	return &MemoryEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MemoryEvent entities.
func (c *MemoryEventClient) CreateBulk(builders ...*MemoryEventCreate) *MemoryEventCreateBulk {
	return &MemoryEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MemoryEventClient) MapCreateBulk(slice any, setFunc func(*MemoryEventCreate, int)) *MemoryEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MemoryEventCreateBulk{err: fmt.Errorf("calling to MemoryEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MemoryEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MemoryEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MemoryEvent.
func (c *MemoryEventClient) Update() *MemoryEventUpdate {
	mutation := newMemoryEventMutation(c.config, OpUpdate)
	return &MemoryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MemoryEventClient) UpdateOne(_m *MemoryEvent) *MemoryEventUpdateOne {
	mutation := newMemoryEventMutation(c.config, OpUpdateOne, withMemoryEvent(_m))
	return &MemoryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MemoryEventClient) UpdateOneID(id string) *MemoryEventUpdateOne {
	mutation := newMemoryEventMutation(c.config, OpUpdateOne, withMemoryEventID(id))
	return &MemoryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MemoryEvent.
func (c *MemoryEventClient) Delete() *MemoryEventDelete {
	mutation := newMemoryEventMutation(c.config, OpDelete)
	return &MemoryEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MemoryEventClient) DeleteOne(_m *MemoryEvent) *MemoryEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MemoryEventClient) DeleteOneID(id string) *MemoryEventDeleteOne {
	builder := c.Delete().Where(memoryevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MemoryEventDeleteOne{builder}
}

// Query returns a query builder for MemoryEvent.
func (c *MemoryEventClient) Query() *MemoryEventQuery {
	return &MemoryEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMemoryEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a MemoryEvent entity by its id.
func (c *MemoryEventClient) Get(ctx context.Context, id string) (*MemoryEvent, error) {
	return c.Query().Where(memoryevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MemoryEventClient) GetX(ctx context.Context, id string) *MemoryEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMemory queries the memory edge of a MemoryEvent.
func (c *MemoryEventClient) QueryMemory(_m *MemoryEvent) *MemoryQuery {
	query := (&MemoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(memoryevent.Table, memoryevent.FieldID, id),
			sqlgraph.To(memory.Table, memory.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, memoryevent.MemoryTable, memoryevent.MemoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvent queries the event edge of a MemoryEvent.
func (c *MemoryEventClient) QueryEvent(_m *MemoryEvent) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(memoryevent.Table, memoryevent.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, memoryevent.EventTable, memoryevent.EventColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MemoryEventClient) Hooks() []Hook {
	return c.hooks.MemoryEvent
}

// Interceptors returns the client interceptors.
func (c *MemoryEventClient) Interceptors() []Interceptor {
	return c.inters.MemoryEvent
}

func (c *MemoryEventClient) mutate(ctx context.Context, m *MemoryEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MemoryEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MemoryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MemoryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MemoryEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MemoryEvent mutation op: %q", m.Op())
	}
}

// MemoryPackClient is a client for the MemoryPack schema.
type MemoryPackClient struct {
	config
}

// NewMemoryPackClient returns a client for the MemoryPack from the given config.
func NewMemoryPackClient(c config) *MemoryPackClient {
	return &MemoryPackClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `memorypack.Hooks(f(g(h())))`.
func (c *MemoryPackClient) Use(hooks ...Hook) {
	c.hooks.MemoryPack = append(c.hooks.MemoryPack, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `memorypack.Intercept(f(g(h())))`.
func (c *MemoryPackClient) Intercept(interceptors ...Interceptor) {
	c.inters.MemoryPack = append(c.inters.MemoryPack, interceptors...)
}

// Create returns a builder for creating a MemoryPack entity.
func (c *MemoryPackClient) Create() *MemoryPackCreate {
	mutation := newMemoryPackMutation(c.config, OpCreate)
	return &MemoryPackCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MemoryPack entities.
func (c *MemoryPackClient) CreateBulk(builders ...*MemoryPackCreate) *MemoryPackCreateBulk {
	return &MemoryPackCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MemoryPackClient) MapCreateBulk(slice any, setFunc func(*MemoryPackCreate, int)) *MemoryPackCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MemoryPackCreateBulk{err: fmt.Errorf("calling to MemoryPackClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MemoryPackCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MemoryPackCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MemoryPack.
func (c *MemoryPackClient) Update() *MemoryPackUpdate {
	mutation := newMemoryPackMutation(c.config, OpUpdate)
	return &MemoryPackUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MemoryPackClient) UpdateOne(_m *MemoryPack) *MemoryPackUpdateOne {
	mutation := newMemoryPackMutation(c.config, OpUpdateOne, withMemoryPack(_m))
	return &MemoryPackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MemoryPackClient) UpdateOneID(id string) *MemoryPackUpdateOne {
	mutation := newMemoryPackMutation(c.config, OpUpdateOne, withMemoryPackID(id))
	return &MemoryPackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MemoryPack.
func (c *MemoryPackClient) Delete() *MemoryPackDelete {
	mutation := newMemoryPackMutation(c.config, OpDelete)
	return &MemoryPackDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MemoryPackClient) DeleteOne(_m *MemoryPack) *MemoryPackDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MemoryPackClient) DeleteOneID(id string) *MemoryPackDeleteOne {
	builder := c.Delete().Where(memorypack.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MemoryPackDeleteOne{builder}
}

// Query returns a query builder for MemoryPack.
func (c *MemoryPackClient) Query() *MemoryPackQuery {
	return &MemoryPackQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMemoryPack},
		inters: c.Interceptors(),
	}
}

// Get returns a MemoryPack entity by its id.
func (c *MemoryPackClient) Get(ctx context.Context, id string) (*MemoryPack, error) {
	return c.Query().Where(memorypack.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MemoryPackClient) GetX(ctx context.Context, id string) *MemoryPack {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnima queries the anima edge of a MemoryPack.
func (c *MemoryPackClient) QueryAnima(_m *MemoryPack) *AnimaQuery {
	query := (&AnimaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(memorypack.Table, memorypack.FieldID, id),
			sqlgraph.To(anima.Table, anima.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, memorypack.AnimaTable, memorypack.AnimaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MemoryPackClient) Hooks() []Hook {
	return c.hooks.MemoryPack
}

// Interceptors returns the client interceptors.
func (c *MemoryPackClient) Interceptors() []Interceptor {
	return c.inters.MemoryPack
}

func (c *MemoryPackClient) mutate(ctx context.Context, m *MemoryPackMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MemoryPackCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MemoryPackUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MemoryPackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MemoryPackDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MemoryPack mutation op: %q", m.Op())
	}
}

// SynthesisConfigClient is a client for the SynthesisConfig schema.
type SynthesisConfigClient struct {
	config
}

// NewSynthesisConfigClient returns a client for the SynthesisConfig from the given config.
func NewSynthesisConfigClient(c config) *SynthesisConfigClient {
	return &SynthesisConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `synthesisconfig.Hooks(f(g(h())))`.
func (c *SynthesisConfigClient) Use(hooks ...Hook) {
	c.hooks.SynthesisConfig = append(c.hooks.SynthesisConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `synthesisconfig.Intercept(f(g(h())))`.
func (c *SynthesisConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.SynthesisConfig = append(c.inters.SynthesisConfig, interceptors...)
}

// Create returns a builder for creating a SynthesisConfig entity.
func (c *SynthesisConfigClient) Create() *SynthesisConfigCreate {
	mutation := newSynthesisConfigMutation(c.config, OpCreate)
	return &SynthesisConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SynthesisConfig entities.
func (c *SynthesisConfigClient) CreateBulk(builders ...*SynthesisConfigCreate) *SynthesisConfigCreateBulk {
	return &SynthesisConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SynthesisConfigClient) MapCreateBulk(slice any, setFunc func(*SynthesisConfigCreate, int)) *SynthesisConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SynthesisConfigCreateBulk{err: fmt.Errorf("calling to SynthesisConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SynthesisConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SynthesisConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SynthesisConfig.
func (c *SynthesisConfigClient) Update() *SynthesisConfigUpdate {
	mutation := newSynthesisConfigMutation(c.config, OpUpdate)
	return &SynthesisConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SynthesisConfigClient) UpdateOne(_m *SynthesisConfig) *SynthesisConfigUpdateOne {
	mutation := newSynthesisConfigMutation(c.config, OpUpdateOne, withSynthesisConfig(_m))
	return &SynthesisConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SynthesisConfigClient) UpdateOneID(id string) *SynthesisConfigUpdateOne {
	mutation := newSynthesisConfigMutation(c.config, OpUpdateOne, withSynthesisConfigID(id))
	return &SynthesisConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SynthesisConfig.
func (c *SynthesisConfigClient) Delete() *SynthesisConfigDelete {
	mutation := newSynthesisConfigMutation(c.config, OpDelete)
	return &SynthesisConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SynthesisConfigClient) DeleteOne(_m *SynthesisConfig) *SynthesisConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SynthesisConfigClient) DeleteOneID(id string) *SynthesisConfigDeleteOne {
	builder := c.Delete().Where(synthesisconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SynthesisConfigDeleteOne{builder}
}

// Query returns a query builder for SynthesisConfig.
func (c *SynthesisConfigClient) Query() *SynthesisConfigQuery {
	return &SynthesisConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSynthesisConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a SynthesisConfig entity by its id.
func (c *SynthesisConfigClient) Get(ctx context.Context, id string) (*SynthesisConfig, error) {
	return c.Query().Where(synthesisconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SynthesisConfigClient) GetX(ctx context.Context, id string) *SynthesisConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnima queries the anima edge of a SynthesisConfig.
func (c *SynthesisConfigClient) QueryAnima(_m *SynthesisConfig) *AnimaQuery {
	query := (&AnimaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(synthesisconfig.Table, synthesisconfig.FieldID, id),
			sqlgraph.To(anima.Table, anima.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, synthesisconfig.AnimaTable, synthesisconfig.AnimaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SynthesisConfigClient) Hooks() []Hook {
	return c.hooks.SynthesisConfig
}

// Interceptors returns the client interceptors.
func (c *SynthesisConfigClient) Interceptors() []Interceptor {
	return c.inters.SynthesisConfig
}

func (c *SynthesisConfigClient) mutate(ctx context.Context, m *SynthesisConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SynthesisConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SynthesisConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SynthesisConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SynthesisConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SynthesisConfig mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnimas queries the animas edge of a User.
func (c *UserClient) QueryAnimas(_m *User) *AnimaQuery {
	query := (&AnimaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(anima.Table, anima.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.AnimasTable, user.AnimasColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAPIKeys queries the api_keys edge of a User.
func (c *UserClient) QueryAPIKeys(_m *User) *APIKeyQuery {
	query := (&APIKeyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(apikey.Table, apikey.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.APIKeysTable, user.APIKeysColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		APIKey, Anima, DreamAction, DreamSession, Event, IOConfig, Identity, Knowledge,
		KnowledgeAuditLog, Memory, MemoryEvent, MemoryPack, SynthesisConfig,
		User []ent.Hook
	}
	inters struct {
		APIKey, Anima, DreamAction, DreamSession, Event, IOConfig, Identity, Knowledge,
		KnowledgeAuditLog, Memory, MemoryEvent, MemoryPack, SynthesisConfig,
		User []ent.Interceptor
	}
)
