// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hejijunhao/elephantasm/ent/anima"
	"github.com/hejijunhao/elephantasm/ent/dreamsession"
	"github.com/hejijunhao/elephantasm/ent/event"
	"github.com/hejijunhao/elephantasm/ent/identity"
	"github.com/hejijunhao/elephantasm/ent/ioconfig"
	"github.com/hejijunhao/elephantasm/ent/knowledge"
	"github.com/hejijunhao/elephantasm/ent/memory"
	"github.com/hejijunhao/elephantasm/ent/memorypack"
	"github.com/hejijunhao/elephantasm/ent/predicate"
	"github.com/hejijunhao/elephantasm/ent/synthesisconfig"
	"github.com/hejijunhao/elephantasm/ent/user"
)

// AnimaQuery is the builder for querying Anima entities.
type AnimaQuery struct {
	config
	ctx                 *QueryContext
	order               []anima.OrderOption
	inters              []Interceptor
	predicates          []predicate.Anima
	withUser            *UserQuery
	withEvents          *EventQuery
	withMemories        *MemoryQuery
	withKnowledge       *KnowledgeQuery
	withIdentity        *IdentityQuery
	withSynthesisConfig *SynthesisConfigQuery
	withIoConfig        *IOConfigQuery
	withMemoryPacks     *MemoryPackQuery
	withDreamSessions   *DreamSessionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AnimaQuery builder.
func (_q *AnimaQuery) Where(ps ...predicate.Anima) *AnimaQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AnimaQuery) Limit(limit int) *AnimaQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AnimaQuery) Offset(offset int) *AnimaQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AnimaQuery) Unique(unique bool) *AnimaQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AnimaQuery) Order(o ...anima.OrderOption) *AnimaQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryUser chains the current query on the "user" edge.
func (_q *AnimaQuery) QueryUser() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(anima.Table, anima.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, anima.UserTable, anima.UserColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvents chains the current query on the "events" edge.
func (_q *AnimaQuery) QueryEvents() *EventQuery {
	query := (&EventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(anima.Table, anima.FieldID, selector),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, anima.EventsTable, anima.EventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMemories chains the current query on the "memories" edge.
func (_q *AnimaQuery) QueryMemories() *MemoryQuery {
	query := (&MemoryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(anima.Table, anima.FieldID, selector),
			sqlgraph.To(memory.Table, memory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, anima.MemoriesTable, anima.MemoriesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryKnowledge chains the current query on the "knowledge" edge.
func (_q *AnimaQuery) QueryKnowledge() *KnowledgeQuery {
	query := (&KnowledgeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(anima.Table, anima.FieldID, selector),
			sqlgraph.To(knowledge.Table, knowledge.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, anima.KnowledgeTable, anima.KnowledgeColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryIdentity chains the current query on the "identity" edge.
func (_q *AnimaQuery) QueryIdentity() *IdentityQuery {
	query := (&IdentityClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(anima.Table, anima.FieldID, selector),
			sqlgraph.To(identity.Table, identity.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, anima.IdentityTable, anima.IdentityColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySynthesisConfig chains the current query on the "synthesis_config" edge.
func (_q *AnimaQuery) QuerySynthesisConfig() *SynthesisConfigQuery {
	query := (&SynthesisConfigClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(anima.Table, anima.FieldID, selector),
			sqlgraph.To(synthesisconfig.Table, synthesisconfig.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, anima.SynthesisConfigTable, anima.SynthesisConfigColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryIoConfig chains the current query on the "io_config" edge.
func (_q *AnimaQuery) QueryIoConfig() *IOConfigQuery {
	query := (&IOConfigClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(anima.Table, anima.FieldID, selector),
			sqlgraph.To(ioconfig.Table, ioconfig.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, anima.IoConfigTable, anima.IoConfigColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMemoryPacks chains the current query on the "memory_packs" edge.
func (_q *AnimaQuery) QueryMemoryPacks() *MemoryPackQuery {
	query := (&MemoryPackClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(anima.Table, anima.FieldID, selector),
			sqlgraph.To(memorypack.Table, memorypack.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, anima.MemoryPacksTable, anima.MemoryPacksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDreamSessions chains the current query on the "dream_sessions" edge.
func (_q *AnimaQuery) QueryDreamSessions() *DreamSessionQuery {
	query := (&DreamSessionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(anima.Table, anima.FieldID, selector),
			sqlgraph.To(dreamsession.Table, dreamsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, anima.DreamSessionsTable, anima.DreamSessionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Anima entity from the query.
// Returns a *NotFoundError when no Anima was found.
func (_q *AnimaQuery) First(ctx context.Context) (*Anima, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{anima.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AnimaQuery) FirstX(ctx context.Context) *Anima {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Anima ID from the query.
// Returns a *NotFoundError when no Anima ID was found.
func (_q *AnimaQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{anima.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AnimaQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Anima entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Anima entity is found.
// Returns a *NotFoundError when no Anima entities are found.
func (_q *AnimaQuery) Only(ctx context.Context) (*Anima, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{anima.Label}
	default:
		return nil, &NotSingularError{anima.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AnimaQuery) OnlyX(ctx context.Context) *Anima {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Anima ID in the query.
// Returns a *NotSingularError when more than one Anima ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AnimaQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{anima.Label}
	default:
		err = &NotSingularError{anima.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AnimaQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Animas.
func (_q *AnimaQuery) All(ctx context.Context) ([]*Anima, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Anima, *AnimaQuery]()
	return withInterceptors[[]*Anima](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AnimaQuery) AllX(ctx context.Context) []*Anima {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Anima IDs.
func (_q *AnimaQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(anima.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AnimaQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AnimaQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AnimaQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AnimaQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AnimaQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *AnimaQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AnimaQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AnimaQuery) Clone() *AnimaQuery {
	if _q == nil {
		return nil
	}
	return &AnimaQuery{
		config:              _q.config,
		ctx:                 _q.ctx.Clone(),
		order:               append([]anima.OrderOption{}, _q.order...),
		inters:              append([]Interceptor{}, _q.inters...),
		predicates:          append([]predicate.Anima{}, _q.predicates...),
		withUser:            _q.withUser.Clone(),
		withEvents:          _q.withEvents.Clone(),
		withMemories:        _q.withMemories.Clone(),
		withKnowledge:       _q.withKnowledge.Clone(),
		withIdentity:        _q.withIdentity.Clone(),
		withSynthesisConfig: _q.withSynthesisConfig.Clone(),
		withIoConfig:        _q.withIoConfig.Clone(),
		withMemoryPacks:     _q.withMemoryPacks.Clone(),
		withDreamSessions:   _q.withDreamSessions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithUser tells the query-builder to eager-load the nodes that are connected to
// the "user" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AnimaQuery) WithUser(opts ...func(*UserQuery)) *AnimaQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUser = query
	return _q
}

// WithEvents tells the query-builder to eager-load the nodes that are connected to
// the "events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AnimaQuery) WithEvents(opts ...func(*EventQuery)) *AnimaQuery {
	query := (&EventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvents = query
	return _q
}

// WithMemories tells the query-builder to eager-load the nodes that are connected to
// the "memories" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AnimaQuery) WithMemories(opts ...func(*MemoryQuery)) *AnimaQuery {
	query := (&MemoryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMemories = query
	return _q
}

// WithKnowledge tells the query-builder to eager-load the nodes that are connected to
// the "knowledge" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AnimaQuery) WithKnowledge(opts ...func(*KnowledgeQuery)) *AnimaQuery {
	query := (&KnowledgeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withKnowledge = query
	return _q
}

// WithIdentity tells the query-builder to eager-load the nodes that are connected to
// the "identity" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AnimaQuery) WithIdentity(opts ...func(*IdentityQuery)) *AnimaQuery {
	query := (&IdentityClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withIdentity = query
	return _q
}

// WithSynthesisConfig tells the query-builder to eager-load the nodes that are connected to
// the "synthesis_config" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AnimaQuery) WithSynthesisConfig(opts ...func(*SynthesisConfigQuery)) *AnimaQuery {
	query := (&SynthesisConfigClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSynthesisConfig = query
	return _q
}

// WithIoConfig tells the query-builder to eager-load the nodes that are connected to
// the "io_config" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AnimaQuery) WithIoConfig(opts ...func(*IOConfigQuery)) *AnimaQuery {
	query := (&IOConfigClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withIoConfig = query
	return _q
}

// WithMemoryPacks tells the query-builder to eager-load the nodes that are connected to
// the "memory_packs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AnimaQuery) WithMemoryPacks(opts ...func(*MemoryPackQuery)) *AnimaQuery {
	query := (&MemoryPackClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMemoryPacks = query
	return _q
}

// WithDreamSessions tells the query-builder to eager-load the nodes that are connected to
// the "dream_sessions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AnimaQuery) WithDreamSessions(opts ...func(*DreamSessionQuery)) *AnimaQuery {
	query := (&DreamSessionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDreamSessions = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Anima.Query().
//		GroupBy(anima.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AnimaQuery) GroupBy(field string, fields ...string) *AnimaGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AnimaGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = anima.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.Anima.Query().
//		Select(anima.FieldUserID).
//		Scan(ctx, &v)
func (_q *AnimaQuery) Select(fields ...string) *AnimaSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AnimaSelect{AnimaQuery: _q}
	sbuild.label = anima.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AnimaSelect configured with the given aggregations.
func (_q *AnimaQuery) Aggregate(fns ...AggregateFunc) *AnimaSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AnimaQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !anima.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *AnimaQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Anima, error) {
	var (
		nodes       = []*Anima{}
		_spec       = _q.querySpec()
		loadedTypes = [9]bool{
			_q.withUser != nil,
			_q.withEvents != nil,
			_q.withMemories != nil,
			_q.withKnowledge != nil,
			_q.withIdentity != nil,
			_q.withSynthesisConfig != nil,
			_q.withIoConfig != nil,
			_q.withMemoryPacks != nil,
			_q.withDreamSessions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Anima).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Anima{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withUser; query != nil {
		if err := _q.loadUser(ctx, query, nodes, nil,
			func(n *Anima, e *User) { n.Edges.User = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvents; query != nil {
		if err := _q.loadEvents(ctx, query, nodes,
			func(n *Anima) { n.Edges.Events = []*Event{} },
			func(n *Anima, e *Event) { n.Edges.Events = append(n.Edges.Events, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMemories; query != nil {
		if err := _q.loadMemories(ctx, query, nodes,
			func(n *Anima) { n.Edges.Memories = []*Memory{} },
			func(n *Anima, e *Memory) { n.Edges.Memories = append(n.Edges.Memories, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withKnowledge; query != nil {
		if err := _q.loadKnowledge(ctx, query, nodes,
			func(n *Anima) { n.Edges.Knowledge = []*Knowledge{} },
			func(n *Anima, e *Knowledge) { n.Edges.Knowledge = append(n.Edges.Knowledge, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withIdentity; query != nil {
		if err := _q.loadIdentity(ctx, query, nodes, nil,
			func(n *Anima, e *Identity) { n.Edges.Identity = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSynthesisConfig; query != nil {
		if err := _q.loadSynthesisConfig(ctx, query, nodes, nil,
			func(n *Anima, e *SynthesisConfig) { n.Edges.SynthesisConfig = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withIoConfig; query != nil {
		if err := _q.loadIoConfig(ctx, query, nodes, nil,
			func(n *Anima, e *IOConfig) { n.Edges.IoConfig = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMemoryPacks; query != nil {
		if err := _q.loadMemoryPacks(ctx, query, nodes,
			func(n *Anima) { n.Edges.MemoryPacks = []*MemoryPack{} },
			func(n *Anima, e *MemoryPack) { n.Edges.MemoryPacks = append(n.Edges.MemoryPacks, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDreamSessions; query != nil {
		if err := _q.loadDreamSessions(ctx, query, nodes,
			func(n *Anima) { n.Edges.DreamSessions = []*DreamSession{} },
			func(n *Anima, e *DreamSession) { n.Edges.DreamSessions = append(n.Edges.DreamSessions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AnimaQuery) loadUser(ctx context.Context, query *UserQuery, nodes []*Anima, init func(*Anima), assign func(*Anima, *User)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Anima)
	for i := range nodes {
		fk := nodes[i].UserID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "user_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *AnimaQuery) loadEvents(ctx context.Context, query *EventQuery, nodes []*Anima, init func(*Anima), assign func(*Anima, *Event)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Anima)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(event.FieldAnimaID)
	}
	query.Where(predicate.Event(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(anima.EventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AnimaID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "anima_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AnimaQuery) loadMemories(ctx context.Context, query *MemoryQuery, nodes []*Anima, init func(*Anima), assign func(*Anima, *Memory)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Anima)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(memory.FieldAnimaID)
	}
	query.Where(predicate.Memory(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(anima.MemoriesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AnimaID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "anima_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AnimaQuery) loadKnowledge(ctx context.Context, query *KnowledgeQuery, nodes []*Anima, init func(*Anima), assign func(*Anima, *Knowledge)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Anima)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(knowledge.FieldAnimaID)
	}
	query.Where(predicate.Knowledge(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(anima.KnowledgeColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AnimaID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "anima_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AnimaQuery) loadIdentity(ctx context.Context, query *IdentityQuery, nodes []*Anima, init func(*Anima), assign func(*Anima, *Identity)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Anima)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(identity.FieldAnimaID)
	}
	query.Where(predicate.Identity(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(anima.IdentityColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AnimaID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "anima_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AnimaQuery) loadSynthesisConfig(ctx context.Context, query *SynthesisConfigQuery, nodes []*Anima, init func(*Anima), assign func(*Anima, *SynthesisConfig)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Anima)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(synthesisconfig.FieldAnimaID)
	}
	query.Where(predicate.SynthesisConfig(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(anima.SynthesisConfigColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AnimaID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "anima_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AnimaQuery) loadIoConfig(ctx context.Context, query *IOConfigQuery, nodes []*Anima, init func(*Anima), assign func(*Anima, *IOConfig)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Anima)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(ioconfig.FieldAnimaID)
	}
	query.Where(predicate.IOConfig(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(anima.IoConfigColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AnimaID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "anima_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AnimaQuery) loadMemoryPacks(ctx context.Context, query *MemoryPackQuery, nodes []*Anima, init func(*Anima), assign func(*Anima, *MemoryPack)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Anima)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(memorypack.FieldAnimaID)
	}
	query.Where(predicate.MemoryPack(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(anima.MemoryPacksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AnimaID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "anima_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AnimaQuery) loadDreamSessions(ctx context.Context, query *DreamSessionQuery, nodes []*Anima, init func(*Anima), assign func(*Anima, *DreamSession)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Anima)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(dreamsession.FieldAnimaID)
	}
	query.Where(predicate.DreamSession(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(anima.DreamSessionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AnimaID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "anima_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *AnimaQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AnimaQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(anima.Table, anima.Columns, sqlgraph.NewFieldSpec(anima.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, anima.FieldID)
		for i := range fields {
			if fields[i] != anima.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withUser != nil {
			_spec.Node.AddColumnOnce(anima.FieldUserID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *AnimaQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(anima.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = anima.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AnimaGroupBy is the group-by builder for Anima entities.
type AnimaGroupBy struct {
	selector
	build *AnimaQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AnimaGroupBy) Aggregate(fns ...AggregateFunc) *AnimaGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AnimaGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AnimaQuery, *AnimaGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AnimaGroupBy) sqlScan(ctx context.Context, root *AnimaQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AnimaSelect is the builder for selecting fields of Anima entities.
type AnimaSelect struct {
	*AnimaQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AnimaSelect) Aggregate(fns ...AggregateFunc) *AnimaSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AnimaSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AnimaQuery, *AnimaSelect](ctx, _s.AnimaQuery, _s, _s.inters, v)
}

func (_s *AnimaSelect) sqlScan(ctx context.Context, root *AnimaQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
