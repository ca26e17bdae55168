// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/visaetude/prepcore/ent/asset"
	"github.com/visaetude/prepcore/ent/courseexercise"
	"github.com/visaetude/prepcore/ent/courselesson"
	"github.com/visaetude/prepcore/ent/predicate"
)

// CourseExerciseQuery is the builder for querying CourseExercise entities.
type CourseExerciseQuery struct {
	config
	ctx        *QueryContext
	order      []courseexercise.OrderOption
	inters     []Interceptor
	predicates []predicate.CourseExercise
	withLesson *CourseLessonQuery
	withAsset  *AssetQuery
	withFKs    bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CourseExerciseQuery builder.
func (_q *CourseExerciseQuery) Where(ps ...predicate.CourseExercise) *CourseExerciseQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CourseExerciseQuery) Limit(limit int) *CourseExerciseQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CourseExerciseQuery) Offset(offset int) *CourseExerciseQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CourseExerciseQuery) Unique(unique bool) *CourseExerciseQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CourseExerciseQuery) Order(o ...courseexercise.OrderOption) *CourseExerciseQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryLesson chains the current query on the "lesson" edge.
func (_q *CourseExerciseQuery) QueryLesson() *CourseLessonQuery {
	query := (&CourseLessonClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(courseexercise.Table, courseexercise.FieldID, selector),
			sqlgraph.To(courselesson.Table, courselesson.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, courseexercise.LessonTable, courseexercise.LessonColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAsset chains the current query on the "asset" edge.
func (_q *CourseExerciseQuery) QueryAsset() *AssetQuery {
	query := (&AssetClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(courseexercise.Table, courseexercise.FieldID, selector),
			sqlgraph.To(asset.Table, asset.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, courseexercise.AssetTable, courseexercise.AssetColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CourseExercise entity from the query.
// Returns a *NotFoundError when no CourseExercise was found.
func (_q *CourseExerciseQuery) First(ctx context.Context) (*CourseExercise, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{courseexercise.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CourseExerciseQuery) FirstX(ctx context.Context) *CourseExercise {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CourseExercise ID from the query.
// Returns a *NotFoundError when no CourseExercise ID was found.
func (_q *CourseExerciseQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{courseexercise.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CourseExerciseQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CourseExercise entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CourseExercise entity is found.
// Returns a *NotFoundError when no CourseExercise entities are found.
func (_q *CourseExerciseQuery) Only(ctx context.Context) (*CourseExercise, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{courseexercise.Label}
	default:
		return nil, &NotSingularError{courseexercise.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CourseExerciseQuery) OnlyX(ctx context.Context) *CourseExercise {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CourseExercise ID in the query.
// Returns a *NotSingularError when more than one CourseExercise ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CourseExerciseQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{courseexercise.Label}
	default:
		err = &NotSingularError{courseexercise.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CourseExerciseQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CourseExercises.
func (_q *CourseExerciseQuery) All(ctx context.Context) ([]*CourseExercise, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CourseExercise, *CourseExerciseQuery]()
	return withInterceptors[[]*CourseExercise](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CourseExerciseQuery) AllX(ctx context.Context) []*CourseExercise {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CourseExercise IDs.
func (_q *CourseExerciseQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(courseexercise.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CourseExerciseQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CourseExerciseQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CourseExerciseQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CourseExerciseQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CourseExerciseQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CourseExerciseQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CourseExerciseQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CourseExerciseQuery) Clone() *CourseExerciseQuery {
	if _q == nil {
		return nil
	}
	return &CourseExerciseQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]courseexercise.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.CourseExercise{}, _q.predicates...),
		withLesson: _q.withLesson.Clone(),
		withAsset:  _q.withAsset.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithLesson tells the query-builder to eager-load the nodes that are connected to
// the "lesson" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CourseExerciseQuery) WithLesson(opts ...func(*CourseLessonQuery)) *CourseExerciseQuery {
	query := (&CourseLessonClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLesson = query
	return _q
}

// WithAsset tells the query-builder to eager-load the nodes that are connected to
// the "asset" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CourseExerciseQuery) WithAsset(opts ...func(*AssetQuery)) *CourseExerciseQuery {
	query := (&AssetClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAsset = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Kind courseexercise.Kind `json:"kind,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CourseExercise.Query().
//		GroupBy(courseexercise.FieldKind).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CourseExerciseQuery) GroupBy(field string, fields ...string) *CourseExerciseGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CourseExerciseGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = courseexercise.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Kind courseexercise.Kind `json:"kind,omitempty"`
//	}
//
//	client.CourseExercise.Query().
//		Select(courseexercise.FieldKind).
//		Scan(ctx, &v)
func (_q *CourseExerciseQuery) Select(fields ...string) *CourseExerciseSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CourseExerciseSelect{CourseExerciseQuery: _q}
	sbuild.label = courseexercise.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CourseExerciseSelect configured with the given aggregations.
func (_q *CourseExerciseQuery) Aggregate(fns ...AggregateFunc) *CourseExerciseSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CourseExerciseQuery) prepareQuery(ctx context.Context) error {
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
		if !courseexercise.ValidColumn(f) {
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

func (_q *CourseExerciseQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CourseExercise, error) {
	var (
		nodes       = []*CourseExercise{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withLesson != nil,
			_q.withAsset != nil,
		}
	)
	if _q.withLesson != nil || _q.withAsset != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, courseexercise.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CourseExercise).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CourseExercise{config: _q.config}
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
	if query := _q.withLesson; query != nil {
		if err := _q.loadLesson(ctx, query, nodes, nil,
			func(n *CourseExercise, e *CourseLesson) { n.Edges.Lesson = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAsset; query != nil {
		if err := _q.loadAsset(ctx, query, nodes, nil,
			func(n *CourseExercise, e *Asset) { n.Edges.Asset = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CourseExerciseQuery) loadLesson(ctx context.Context, query *CourseLessonQuery, nodes []*CourseExercise, init func(*CourseExercise), assign func(*CourseExercise, *CourseLesson)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*CourseExercise)
	for i := range nodes {
		if nodes[i].course_lesson_exercises == nil {
			continue
		}
		fk := *nodes[i].course_lesson_exercises
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(courselesson.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "course_lesson_exercises" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *CourseExerciseQuery) loadAsset(ctx context.Context, query *AssetQuery, nodes []*CourseExercise, init func(*CourseExercise), assign func(*CourseExercise, *Asset)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*CourseExercise)
	for i := range nodes {
		if nodes[i].course_exercise_asset == nil {
			continue
		}
		fk := *nodes[i].course_exercise_asset
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(asset.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "course_exercise_asset" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *CourseExerciseQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CourseExerciseQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(courseexercise.Table, courseexercise.Columns, sqlgraph.NewFieldSpec(courseexercise.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, courseexercise.FieldID)
		for i := range fields {
			if fields[i] != courseexercise.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *CourseExerciseQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(courseexercise.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = courseexercise.Columns
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

// CourseExerciseGroupBy is the group-by builder for CourseExercise entities.
type CourseExerciseGroupBy struct {
	selector
	build *CourseExerciseQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CourseExerciseGroupBy) Aggregate(fns ...AggregateFunc) *CourseExerciseGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CourseExerciseGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CourseExerciseQuery, *CourseExerciseGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CourseExerciseGroupBy) sqlScan(ctx context.Context, root *CourseExerciseQuery, v any) error {
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

// CourseExerciseSelect is the builder for selecting fields of CourseExercise entities.
type CourseExerciseSelect struct {
	*CourseExerciseQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CourseExerciseSelect) Aggregate(fns ...AggregateFunc) *CourseExerciseSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CourseExerciseSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CourseExerciseQuery, *CourseExerciseSelect](ctx, _s.CourseExerciseQuery, _s, _s.inters, v)
}

func (_s *CourseExerciseSelect) sqlScan(ctx context.Context, root *CourseExerciseQuery, v any) error {
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
