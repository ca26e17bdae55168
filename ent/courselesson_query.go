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
	"github.com/visaetude/prepcore/ent/asset"
	"github.com/visaetude/prepcore/ent/courseexercise"
	"github.com/visaetude/prepcore/ent/courselesson"
	"github.com/visaetude/prepcore/ent/exam"
	"github.com/visaetude/prepcore/ent/predicate"
)

// CourseLessonQuery is the builder for querying CourseLesson entities.
type CourseLessonQuery struct {
	config
	ctx           *QueryContext
	order         []courselesson.OrderOption
	inters        []Interceptor
	predicates    []predicate.CourseLesson
	withExams     *ExamQuery
	withExercises *CourseExerciseQuery
	withAsset     *AssetQuery
	withFKs       bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CourseLessonQuery builder.
func (_q *CourseLessonQuery) Where(ps ...predicate.CourseLesson) *CourseLessonQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CourseLessonQuery) Limit(limit int) *CourseLessonQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CourseLessonQuery) Offset(offset int) *CourseLessonQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CourseLessonQuery) Unique(unique bool) *CourseLessonQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CourseLessonQuery) Order(o ...courselesson.OrderOption) *CourseLessonQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryExams chains the current query on the "exams" edge.
func (_q *CourseLessonQuery) QueryExams() *ExamQuery {
	query := (&ExamClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(courselesson.Table, courselesson.FieldID, selector),
			sqlgraph.To(exam.Table, exam.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, courselesson.ExamsTable, courselesson.ExamsPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryExercises chains the current query on the "exercises" edge.
func (_q *CourseLessonQuery) QueryExercises() *CourseExerciseQuery {
	query := (&CourseExerciseClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(courselesson.Table, courselesson.FieldID, selector),
			sqlgraph.To(courseexercise.Table, courseexercise.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, courselesson.ExercisesTable, courselesson.ExercisesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAsset chains the current query on the "asset" edge.
func (_q *CourseLessonQuery) QueryAsset() *AssetQuery {
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
			sqlgraph.From(courselesson.Table, courselesson.FieldID, selector),
			sqlgraph.To(asset.Table, asset.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, courselesson.AssetTable, courselesson.AssetColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CourseLesson entity from the query.
// Returns a *NotFoundError when no CourseLesson was found.
func (_q *CourseLessonQuery) First(ctx context.Context) (*CourseLesson, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{courselesson.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CourseLessonQuery) FirstX(ctx context.Context) *CourseLesson {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CourseLesson ID from the query.
// Returns a *NotFoundError when no CourseLesson ID was found.
func (_q *CourseLessonQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{courselesson.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CourseLessonQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CourseLesson entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CourseLesson entity is found.
// Returns a *NotFoundError when no CourseLesson entities are found.
func (_q *CourseLessonQuery) Only(ctx context.Context) (*CourseLesson, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{courselesson.Label}
	default:
		return nil, &NotSingularError{courselesson.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CourseLessonQuery) OnlyX(ctx context.Context) *CourseLesson {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CourseLesson ID in the query.
// Returns a *NotSingularError when more than one CourseLesson ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CourseLessonQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{courselesson.Label}
	default:
		err = &NotSingularError{courselesson.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CourseLessonQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CourseLessons.
func (_q *CourseLessonQuery) All(ctx context.Context) ([]*CourseLesson, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CourseLesson, *CourseLessonQuery]()
	return withInterceptors[[]*CourseLesson](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CourseLessonQuery) AllX(ctx context.Context) []*CourseLesson {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CourseLesson IDs.
func (_q *CourseLessonQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(courselesson.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CourseLessonQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CourseLessonQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CourseLessonQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CourseLessonQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CourseLessonQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CourseLessonQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CourseLessonQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CourseLessonQuery) Clone() *CourseLessonQuery {
	if _q == nil {
		return nil
	}
	return &CourseLessonQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]courselesson.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.CourseLesson{}, _q.predicates...),
		withExams:     _q.withExams.Clone(),
		withExercises: _q.withExercises.Clone(),
		withAsset:     _q.withAsset.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithExams tells the query-builder to eager-load the nodes that are connected to
// the "exams" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CourseLessonQuery) WithExams(opts ...func(*ExamQuery)) *CourseLessonQuery {
	query := (&ExamClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExams = query
	return _q
}

// WithExercises tells the query-builder to eager-load the nodes that are connected to
// the "exercises" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CourseLessonQuery) WithExercises(opts ...func(*CourseExerciseQuery)) *CourseLessonQuery {
	query := (&CourseExerciseClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExercises = query
	return _q
}

// WithAsset tells the query-builder to eager-load the nodes that are connected to
// the "asset" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CourseLessonQuery) WithAsset(opts ...func(*AssetQuery)) *CourseLessonQuery {
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
//		Title string `json:"title,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CourseLesson.Query().
//		GroupBy(courselesson.FieldTitle).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CourseLessonQuery) GroupBy(field string, fields ...string) *CourseLessonGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CourseLessonGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = courselesson.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Title string `json:"title,omitempty"`
//	}
//
//	client.CourseLesson.Query().
//		Select(courselesson.FieldTitle).
//		Scan(ctx, &v)
func (_q *CourseLessonQuery) Select(fields ...string) *CourseLessonSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CourseLessonSelect{CourseLessonQuery: _q}
	sbuild.label = courselesson.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CourseLessonSelect configured with the given aggregations.
func (_q *CourseLessonQuery) Aggregate(fns ...AggregateFunc) *CourseLessonSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CourseLessonQuery) prepareQuery(ctx context.Context) error {
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
		if !courselesson.ValidColumn(f) {
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

func (_q *CourseLessonQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CourseLesson, error) {
	var (
		nodes       = []*CourseLesson{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withExams != nil,
			_q.withExercises != nil,
			_q.withAsset != nil,
		}
	)
	if _q.withAsset != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, courselesson.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CourseLesson).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CourseLesson{config: _q.config}
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
	if query := _q.withExams; query != nil {
		if err := _q.loadExams(ctx, query, nodes,
			func(n *CourseLesson) { n.Edges.Exams = []*Exam{} },
			func(n *CourseLesson, e *Exam) { n.Edges.Exams = append(n.Edges.Exams, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withExercises; query != nil {
		if err := _q.loadExercises(ctx, query, nodes,
			func(n *CourseLesson) { n.Edges.Exercises = []*CourseExercise{} },
			func(n *CourseLesson, e *CourseExercise) { n.Edges.Exercises = append(n.Edges.Exercises, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAsset; query != nil {
		if err := _q.loadAsset(ctx, query, nodes, nil,
			func(n *CourseLesson, e *Asset) { n.Edges.Asset = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CourseLessonQuery) loadExams(ctx context.Context, query *ExamQuery, nodes []*CourseLesson, init func(*CourseLesson), assign func(*CourseLesson, *Exam)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[int]*CourseLesson)
	nids := make(map[int]map[*CourseLesson]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(courselesson.ExamsTable)
		s.Join(joinT).On(s.C(exam.FieldID), joinT.C(courselesson.ExamsPrimaryKey[1]))
		s.Where(sql.InValues(joinT.C(courselesson.ExamsPrimaryKey[0]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(courselesson.ExamsPrimaryKey[0]))
		s.AppendSelect(columns...)
		s.SetDistinct(false)
	})
	if err := query.prepareQuery(ctx); err != nil {
		return err
	}
	qr := QuerierFunc(func(ctx context.Context, q Query) (Value, error) {
		return query.sqlAll(ctx, func(_ context.Context, spec *sqlgraph.QuerySpec) {
			assign := spec.Assign
			values := spec.ScanValues
			spec.ScanValues = func(columns []string) ([]any, error) {
				values, err := values(columns[1:])
				if err != nil {
					return nil, err
				}
				return append([]any{new(sql.NullInt64)}, values...), nil
			}
			spec.Assign = func(columns []string, values []any) error {
				outValue := int(values[0].(*sql.NullInt64).Int64)
				inValue := int(values[1].(*sql.NullInt64).Int64)
				if nids[inValue] == nil {
					nids[inValue] = map[*CourseLesson]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*Exam](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "exams" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}
func (_q *CourseLessonQuery) loadExercises(ctx context.Context, query *CourseExerciseQuery, nodes []*CourseLesson, init func(*CourseLesson), assign func(*CourseLesson, *CourseExercise)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*CourseLesson)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.CourseExercise(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(courselesson.ExercisesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.course_lesson_exercises
		if fk == nil {
			return fmt.Errorf(`foreign-key "course_lesson_exercises" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "course_lesson_exercises" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *CourseLessonQuery) loadAsset(ctx context.Context, query *AssetQuery, nodes []*CourseLesson, init func(*CourseLesson), assign func(*CourseLesson, *Asset)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*CourseLesson)
	for i := range nodes {
		if nodes[i].course_lesson_asset == nil {
			continue
		}
		fk := *nodes[i].course_lesson_asset
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
			return fmt.Errorf(`unexpected foreign-key "course_lesson_asset" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *CourseLessonQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CourseLessonQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(courselesson.Table, courselesson.Columns, sqlgraph.NewFieldSpec(courselesson.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, courselesson.FieldID)
		for i := range fields {
			if fields[i] != courselesson.FieldID {
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

func (_q *CourseLessonQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(courselesson.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = courselesson.Columns
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

// CourseLessonGroupBy is the group-by builder for CourseLesson entities.
type CourseLessonGroupBy struct {
	selector
	build *CourseLessonQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CourseLessonGroupBy) Aggregate(fns ...AggregateFunc) *CourseLessonGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CourseLessonGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CourseLessonQuery, *CourseLessonGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CourseLessonGroupBy) sqlScan(ctx context.Context, root *CourseLessonQuery, v any) error {
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

// CourseLessonSelect is the builder for selecting fields of CourseLesson entities.
type CourseLessonSelect struct {
	*CourseLessonQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CourseLessonSelect) Aggregate(fns ...AggregateFunc) *CourseLessonSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CourseLessonSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CourseLessonQuery, *CourseLessonSelect](ctx, _s.CourseLessonQuery, _s, _s.inters, v)
}

func (_s *CourseLessonSelect) sqlScan(ctx context.Context, root *CourseLessonQuery, v any) error {
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
