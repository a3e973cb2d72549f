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
	"github.com/hejijunhao/elephantasm/ent/dreamaction"
	"github.com/hejijunhao/elephantasm/ent/dreamsession"
	"github.com/hejijunhao/elephantasm/ent/predicate"
)

// DreamSessionQuery is the builder for querying DreamSession entities.
type DreamSessionQuery struct {
	config
	ctx         *QueryContext
	order       []dreamsession.OrderOption
	inters      []Interceptor
	predicates  []predicate.DreamSession
	withAnima   *AnimaQuery
	withActions *DreamActionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DreamSessionQuery builder.
func (_q *DreamSessionQuery) Where(ps ...predicate.DreamSession) *DreamSessionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DreamSessionQuery) Limit(limit int) *DreamSessionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DreamSessionQuery) Offset(offset int) *DreamSessionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DreamSessionQuery) Unique(unique bool) *DreamSessionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DreamSessionQuery) Order(o ...dreamsession.OrderOption) *DreamSessionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAnima chains the current query on the "anima" edge.
func (_q *DreamSessionQuery) QueryAnima() *AnimaQuery {
	query := (&AnimaClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(dreamsession.Table, dreamsession.FieldID, selector),
			sqlgraph.To(anima.Table, anima.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dreamsession.AnimaTable, dreamsession.AnimaColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryActions chains the current query on the "actions" edge.
func (_q *DreamSessionQuery) QueryActions() *DreamActionQuery {
	query := (&DreamActionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(dreamsession.Table, dreamsession.FieldID, selector),
			sqlgraph.To(dreamaction.Table, dreamaction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, dreamsession.ActionsTable, dreamsession.ActionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DreamSession entity from the query.
// Returns a *NotFoundError when no DreamSession was found.
func (_q *DreamSessionQuery) First(ctx context.Context) (*DreamSession, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{dreamsession.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DreamSessionQuery) FirstX(ctx context.Context) *DreamSession {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DreamSession ID from the query.
// Returns a *NotFoundError when no DreamSession ID was found.
func (_q *DreamSessionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{dreamsession.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DreamSessionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DreamSession entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DreamSession entity is found.
// Returns a *NotFoundError when no DreamSession entities are found.
func (_q *DreamSessionQuery) Only(ctx context.Context) (*DreamSession, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{dreamsession.Label}
	default:
		return nil, &NotSingularError{dreamsession.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DreamSessionQuery) OnlyX(ctx context.Context) *DreamSession {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DreamSession ID in the query.
// Returns a *NotSingularError when more than one DreamSession ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DreamSessionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{dreamsession.Label}
	default:
		err = &NotSingularError{dreamsession.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DreamSessionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DreamSessions.
func (_q *DreamSessionQuery) All(ctx context.Context) ([]*DreamSession, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DreamSession, *DreamSessionQuery]()
	return withInterceptors[[]*DreamSession](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DreamSessionQuery) AllX(ctx context.Context) []*DreamSession {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DreamSession IDs.
func (_q *DreamSessionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(dreamsession.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DreamSessionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DreamSessionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DreamSessionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DreamSessionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DreamSessionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *DreamSessionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DreamSessionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DreamSessionQuery) Clone() *DreamSessionQuery {
	if _q == nil {
		return nil
	}
	return &DreamSessionQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]dreamsession.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.DreamSession{}, _q.predicates...),
		withAnima:   _q.withAnima.Clone(),
		withActions: _q.withActions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAnima tells the query-builder to eager-load the nodes that are connected to
// the "anima" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DreamSessionQuery) WithAnima(opts ...func(*AnimaQuery)) *DreamSessionQuery {
	query := (&AnimaClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAnima = query
	return _q
}

// WithActions tells the query-builder to eager-load the nodes that are connected to
// the "actions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DreamSessionQuery) WithActions(opts ...func(*DreamActionQuery)) *DreamSessionQuery {
	query := (&DreamActionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withActions = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		AnimaID string `json:"anima_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DreamSession.Query().
//		GroupBy(dreamsession.FieldAnimaID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DreamSessionQuery) GroupBy(field string, fields ...string) *DreamSessionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DreamSessionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = dreamsession.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		AnimaID string `json:"anima_id,omitempty"`
//	}
//
//	client.DreamSession.Query().
//		Select(dreamsession.FieldAnimaID).
//		Scan(ctx, &v)
func (_q *DreamSessionQuery) Select(fields ...string) *DreamSessionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DreamSessionSelect{DreamSessionQuery: _q}
	sbuild.label = dreamsession.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DreamSessionSelect configured with the given aggregations.
func (_q *DreamSessionQuery) Aggregate(fns ...AggregateFunc) *DreamSessionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DreamSessionQuery) prepareQuery(ctx context.Context) error {
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
		if !dreamsession.ValidColumn(f) {
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

func (_q *DreamSessionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DreamSession, error) {
	var (
		nodes       = []*DreamSession{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withAnima != nil,
			_q.withActions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DreamSession).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DreamSession{config: _q.config}
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
	if query := _q.withAnima; query != nil {
		if err := _q.loadAnima(ctx, query, nodes, nil,
			func(n *DreamSession, e *Anima) { n.Edges.Anima = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withActions; query != nil {
		if err := _q.loadActions(ctx, query, nodes,
			func(n *DreamSession) { n.Edges.Actions = []*DreamAction{} },
			func(n *DreamSession, e *DreamAction) { n.Edges.Actions = append(n.Edges.Actions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DreamSessionQuery) loadAnima(ctx context.Context, query *AnimaQuery, nodes []*DreamSession, init func(*DreamSession), assign func(*DreamSession, *Anima)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*DreamSession)
	for i := range nodes {
		fk := nodes[i].AnimaID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(anima.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "anima_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *DreamSessionQuery) loadActions(ctx context.Context, query *DreamActionQuery, nodes []*DreamSession, init func(*DreamSession), assign func(*DreamSession, *DreamAction)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*DreamSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(dreamaction.FieldSessionID)
	}
	query.Where(predicate.DreamAction(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(dreamsession.ActionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DreamSessionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DreamSessionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(dreamsession.Table, dreamsession.Columns, sqlgraph.NewFieldSpec(dreamsession.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dreamsession.FieldID)
		for i := range fields {
			if fields[i] != dreamsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withAnima != nil {
			_spec.Node.AddColumnOnce(dreamsession.FieldAnimaID)
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

func (_q *DreamSessionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(dreamsession.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = dreamsession.Columns
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

// DreamSessionGroupBy is the group-by builder for DreamSession entities.
type DreamSessionGroupBy struct {
	selector
	build *DreamSessionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DreamSessionGroupBy) Aggregate(fns ...AggregateFunc) *DreamSessionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DreamSessionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DreamSessionQuery, *DreamSessionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DreamSessionGroupBy) sqlScan(ctx context.Context, root *DreamSessionQuery, v any) error {
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

// DreamSessionSelect is the builder for selecting fields of DreamSession entities.
type DreamSessionSelect struct {
	*DreamSessionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DreamSessionSelect) Aggregate(fns ...AggregateFunc) *DreamSessionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DreamSessionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DreamSessionQuery, *DreamSessionSelect](ctx, _s.DreamSessionQuery, _s, _s.inters, v)
}

func (_s *DreamSessionSelect) sqlScan(ctx context.Context, root *DreamSessionQuery, v any) error {
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
