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
	"github.com/visaetude/prepcore/ent/exam"
	"github.com/visaetude/prepcore/ent/examsection"
	"github.com/visaetude/prepcore/ent/predicate"
	"github.com/visaetude/prepcore/ent/question"
)

// ExamSectionQuery is the builder for querying ExamSection entities.
type ExamSectionQuery struct {
	config
	ctx           *QueryContext
	order         []examsection.OrderOption
	inters        []Interceptor
	predicates    []predicate.ExamSection
	withExam      *ExamQuery
	withQuestions *QuestionQuery
	withFKs       bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ExamSectionQuery builder.
func (_q *ExamSectionQuery) Where(ps ...predicate.ExamSection) *ExamSectionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ExamSectionQuery) Limit(limit int) *ExamSectionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ExamSectionQuery) Offset(offset int) *ExamSectionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ExamSectionQuery) Unique(unique bool) *ExamSectionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ExamSectionQuery) Order(o ...examsection.OrderOption) *ExamSectionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryExam chains the current query on the "exam" edge.
func (_q *ExamSectionQuery) QueryExam() *ExamQuery {
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
			sqlgraph.From(examsection.Table, examsection.FieldID, selector),
			sqlgraph.To(exam.Table, exam.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, examsection.ExamTable, examsection.ExamColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryQuestions chains the current query on the "questions" edge.
func (_q *ExamSectionQuery) QueryQuestions() *QuestionQuery {
	query := (&QuestionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(examsection.Table, examsection.FieldID, selector),
			sqlgraph.To(question.Table, question.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, examsection.QuestionsTable, examsection.QuestionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ExamSection entity from the query.
// Returns a *NotFoundError when no ExamSection was found.
func (_q *ExamSectionQuery) First(ctx context.Context) (*ExamSection, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{examsection.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ExamSectionQuery) FirstX(ctx context.Context) *ExamSection {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ExamSection ID from the query.
// Returns a *NotFoundError when no ExamSection ID was found.
func (_q *ExamSectionQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{examsection.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ExamSectionQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ExamSection entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ExamSection entity is found.
// Returns a *NotFoundError when no ExamSection entities are found.
func (_q *ExamSectionQuery) Only(ctx context.Context) (*ExamSection, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{examsection.Label}
	default:
		return nil, &NotSingularError{examsection.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ExamSectionQuery) OnlyX(ctx context.Context) *ExamSection {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ExamSection ID in the query.
// Returns a *NotSingularError when more than one ExamSection ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ExamSectionQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{examsection.Label}
	default:
		err = &NotSingularError{examsection.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ExamSectionQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ExamSections.
func (_q *ExamSectionQuery) All(ctx context.Context) ([]*ExamSection, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ExamSection, *ExamSectionQuery]()
	return withInterceptors[[]*ExamSection](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ExamSectionQuery) AllX(ctx context.Context) []*ExamSection {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ExamSection IDs.
func (_q *ExamSectionQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(examsection.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ExamSectionQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ExamSectionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ExamSectionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ExamSectionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ExamSectionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ExamSectionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ExamSectionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ExamSectionQuery) Clone() *ExamSectionQuery {
	if _q == nil {
		return nil
	}
	return &ExamSectionQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]examsection.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.ExamSection{}, _q.predicates...),
		withExam:      _q.withExam.Clone(),
		withQuestions: _q.withQuestions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithExam tells the query-builder to eager-load the nodes that are connected to
// the "exam" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExamSectionQuery) WithExam(opts ...func(*ExamQuery)) *ExamSectionQuery {
	query := (&ExamClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExam = query
	return _q
}

// WithQuestions tells the query-builder to eager-load the nodes that are connected to
// the "questions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExamSectionQuery) WithQuestions(opts ...func(*QuestionQuery)) *ExamSectionQuery {
	query := (&QuestionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withQuestions = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SectionCode examsection.SectionCode `json:"section_code,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ExamSection.Query().
//		GroupBy(examsection.FieldSectionCode).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ExamSectionQuery) GroupBy(field string, fields ...string) *ExamSectionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ExamSectionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = examsection.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SectionCode examsection.SectionCode `json:"section_code,omitempty"`
//	}
//
//	client.ExamSection.Query().
//		Select(examsection.FieldSectionCode).
//		Scan(ctx, &v)
func (_q *ExamSectionQuery) Select(fields ...string) *ExamSectionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ExamSectionSelect{ExamSectionQuery: _q}
	sbuild.label = examsection.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ExamSectionSelect configured with the given aggregations.
func (_q *ExamSectionQuery) Aggregate(fns ...AggregateFunc) *ExamSectionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ExamSectionQuery) prepareQuery(ctx context.Context) error {
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
		if !examsection.ValidColumn(f) {
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

func (_q *ExamSectionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ExamSection, error) {
	var (
		nodes       = []*ExamSection{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withExam != nil,
			_q.withQuestions != nil,
		}
	)
	if _q.withExam != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, examsection.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ExamSection).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ExamSection{config: _q.config}
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
	if query := _q.withExam; query != nil {
		if err := _q.loadExam(ctx, query, nodes, nil,
			func(n *ExamSection, e *Exam) { n.Edges.Exam = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withQuestions; query != nil {
		if err := _q.loadQuestions(ctx, query, nodes,
			func(n *ExamSection) { n.Edges.Questions = []*Question{} },
			func(n *ExamSection, e *Question) { n.Edges.Questions = append(n.Edges.Questions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ExamSectionQuery) loadExam(ctx context.Context, query *ExamQuery, nodes []*ExamSection, init func(*ExamSection), assign func(*ExamSection, *Exam)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ExamSection)
	for i := range nodes {
		if nodes[i].exam_sections == nil {
			continue
		}
		fk := *nodes[i].exam_sections
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(exam.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "exam_sections" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ExamSectionQuery) loadQuestions(ctx context.Context, query *QuestionQuery, nodes []*ExamSection, init func(*ExamSection), assign func(*ExamSection, *Question)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*ExamSection)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.Question(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(examsection.QuestionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.exam_section_questions
		if fk == nil {
			return fmt.Errorf(`foreign-key "exam_section_questions" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "exam_section_questions" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ExamSectionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ExamSectionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(examsection.Table, examsection.Columns, sqlgraph.NewFieldSpec(examsection.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examsection.FieldID)
		for i := range fields {
			if fields[i] != examsection.FieldID {
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

func (_q *ExamSectionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(examsection.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = examsection.Columns
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

// ExamSectionGroupBy is the group-by builder for ExamSection entities.
type ExamSectionGroupBy struct {
	selector
	build *ExamSectionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ExamSectionGroupBy) Aggregate(fns ...AggregateFunc) *ExamSectionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ExamSectionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExamSectionQuery, *ExamSectionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ExamSectionGroupBy) sqlScan(ctx context.Context, root *ExamSectionQuery, v any) error {
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

// ExamSectionSelect is the builder for selecting fields of ExamSection entities.
type ExamSectionSelect struct {
	*ExamSectionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ExamSectionSelect) Aggregate(fns ...AggregateFunc) *ExamSectionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ExamSectionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExamSectionQuery, *ExamSectionSelect](ctx, _s.ExamSectionQuery, _s, _s.inters, v)
}

func (_s *ExamSectionSelect) sqlScan(ctx context.Context, root *ExamSectionQuery, v any) error {
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
