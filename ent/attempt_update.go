// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/visaetude/prepcore/ent/answer"
	"github.com/visaetude/prepcore/ent/attempt"
	"github.com/visaetude/prepcore/ent/predicate"
	"github.com/visaetude/prepcore/ent/session"
)

// AttemptUpdate is the builder for updating Attempt entities.
type AttemptUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptMutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdate) Where(ps ...predicate.Attempt) *AttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSectionCode sets the "section_code" field.
func (_u *AttemptUpdate) SetSectionCode(v attempt.SectionCode) *AttemptUpdate {
	_u.mutation.SetSectionCode(v)
	return _u
}

// SetNillableSectionCode sets the "section_code" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableSectionCode(v *attempt.SectionCode) *AttemptUpdate {
	if v != nil {
		_u.SetSectionCode(*v)
	}
	return _u
}

// SetTotalItems sets the "total_items" field.
func (_u *AttemptUpdate) SetTotalItems(v int) *AttemptUpdate {
	_u.mutation.ResetTotalItems()
	_u.mutation.SetTotalItems(v)
	return _u
}

// SetNillableTotalItems sets the "total_items" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableTotalItems(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetTotalItems(*v)
	}
	return _u
}

// AddTotalItems adds value to the "total_items" field.
func (_u *AttemptUpdate) AddTotalItems(v int) *AttemptUpdate {
	_u.mutation.AddTotalItems(v)
	return _u
}

// SetRawScore sets the "raw_score" field.
func (_u *AttemptUpdate) SetRawScore(v int) *AttemptUpdate {
	_u.mutation.ResetRawScore()
	_u.mutation.SetRawScore(v)
	return _u
}

// SetNillableRawScore sets the "raw_score" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableRawScore(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetRawScore(*v)
	}
	return _u
}

// AddRawScore adds value to the "raw_score" field.
func (_u *AttemptUpdate) AddRawScore(v int) *AttemptUpdate {
	_u.mutation.AddRawScore(v)
	return _u
}

// SetScorePercent sets the "score_percent" field.
func (_u *AttemptUpdate) SetScorePercent(v float64) *AttemptUpdate {
	_u.mutation.ResetScorePercent()
	_u.mutation.SetScorePercent(v)
	return _u
}

// SetNillableScorePercent sets the "score_percent" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableScorePercent(v *float64) *AttemptUpdate {
	if v != nil {
		_u.SetScorePercent(*v)
	}
	return _u
}

// AddScorePercent adds value to the "score_percent" field.
func (_u *AttemptUpdate) AddScorePercent(v float64) *AttemptUpdate {
	_u.mutation.AddScorePercent(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *AttemptUpdate) SetFinishedAt(v time.Time) *AttemptUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableFinishedAt(v *time.Time) *AttemptUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *AttemptUpdate) ClearFinishedAt() *AttemptUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetSessionID sets the "session" edge to the Session entity by ID.
func (_u *AttemptUpdate) SetSessionID(id int) *AttemptUpdate {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *AttemptUpdate) SetSession(v *Session) *AttemptUpdate {
	return _u.SetSessionID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_u *AttemptUpdate) AddAnswerIDs(ids ...int) *AttemptUpdate {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_u *AttemptUpdate) AddAnswers(v ...*Answer) *AttemptUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdate) Mutation() *AttemptMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *AttemptUpdate) ClearSession() *AttemptUpdate {
	_u.mutation.ClearSession()
	return _u
}

// ClearAnswers clears all "answers" edges to the Answer entity.
func (_u *AttemptUpdate) ClearAnswers() *AttemptUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to Answer entities by IDs.
func (_u *AttemptUpdate) RemoveAnswerIDs(ids ...int) *AttemptUpdate {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to Answer entities.
func (_u *AttemptUpdate) RemoveAnswers(v ...*Answer) *AttemptUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdate) check() error {
	if v, ok := _u.mutation.SectionCode(); ok {
		if err := attempt.SectionCodeValidator(v); err != nil {
			return &ValidationError{Name: "section_code", err: fmt.Errorf(`ent: validator failed for field "Attempt.section_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalItems(); ok {
		if err := attempt.TotalItemsValidator(v); err != nil {
			return &ValidationError{Name: "total_items", err: fmt.Errorf(`ent: validator failed for field "Attempt.total_items": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RawScore(); ok {
		if err := attempt.RawScoreValidator(v); err != nil {
			return &ValidationError{Name: "raw_score", err: fmt.Errorf(`ent: validator failed for field "Attempt.raw_score": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attempt.session"`)
	}
	return nil
}

func (_u *AttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SectionCode(); ok {
		_spec.SetField(attempt.FieldSectionCode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalItems(); ok {
		_spec.SetField(attempt.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalItems(); ok {
		_spec.AddField(attempt.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RawScore(); ok {
		_spec.SetField(attempt.FieldRawScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRawScore(); ok {
		_spec.AddField(attempt.FieldRawScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScorePercent(); ok {
		_spec.SetField(attempt.FieldScorePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScorePercent(); ok {
		_spec.AddField(attempt.FieldScorePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(attempt.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(attempt.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attempt.SessionTable,
			Columns: []string{attempt.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attempt.SessionTable,
			Columns: []string{attempt.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attempt.AnswersTable,
			Columns: []string{attempt.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attempt.AnswersTable,
			Columns: []string{attempt.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attempt.AnswersTable,
			Columns: []string{attempt.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptUpdateOne is the builder for updating a single Attempt entity.
type AttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptMutation
}

// SetSectionCode sets the "section_code" field.
func (_u *AttemptUpdateOne) SetSectionCode(v attempt.SectionCode) *AttemptUpdateOne {
	_u.mutation.SetSectionCode(v)
	return _u
}

// SetNillableSectionCode sets the "section_code" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableSectionCode(v *attempt.SectionCode) *AttemptUpdateOne {
	if v != nil {
		_u.SetSectionCode(*v)
	}
	return _u
}

// SetTotalItems sets the "total_items" field.
func (_u *AttemptUpdateOne) SetTotalItems(v int) *AttemptUpdateOne {
	_u.mutation.ResetTotalItems()
	_u.mutation.SetTotalItems(v)
	return _u
}

// SetNillableTotalItems sets the "total_items" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableTotalItems(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetTotalItems(*v)
	}
	return _u
}

// AddTotalItems adds value to the "total_items" field.
func (_u *AttemptUpdateOne) AddTotalItems(v int) *AttemptUpdateOne {
	_u.mutation.AddTotalItems(v)
	return _u
}

// SetRawScore sets the "raw_score" field.
func (_u *AttemptUpdateOne) SetRawScore(v int) *AttemptUpdateOne {
	_u.mutation.ResetRawScore()
	_u.mutation.SetRawScore(v)
	return _u
}

// SetNillableRawScore sets the "raw_score" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableRawScore(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetRawScore(*v)
	}
	return _u
}

// AddRawScore adds value to the "raw_score" field.
func (_u *AttemptUpdateOne) AddRawScore(v int) *AttemptUpdateOne {
	_u.mutation.AddRawScore(v)
	return _u
}

// SetScorePercent sets the "score_percent" field.
func (_u *AttemptUpdateOne) SetScorePercent(v float64) *AttemptUpdateOne {
	_u.mutation.ResetScorePercent()
	_u.mutation.SetScorePercent(v)
	return _u
}

// SetNillableScorePercent sets the "score_percent" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableScorePercent(v *float64) *AttemptUpdateOne {
	if v != nil {
		_u.SetScorePercent(*v)
	}
	return _u
}

// AddScorePercent adds value to the "score_percent" field.
func (_u *AttemptUpdateOne) AddScorePercent(v float64) *AttemptUpdateOne {
	_u.mutation.AddScorePercent(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *AttemptUpdateOne) SetFinishedAt(v time.Time) *AttemptUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableFinishedAt(v *time.Time) *AttemptUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *AttemptUpdateOne) ClearFinishedAt() *AttemptUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetSessionID sets the "session" edge to the Session entity by ID.
func (_u *AttemptUpdateOne) SetSessionID(id int) *AttemptUpdateOne {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *AttemptUpdateOne) SetSession(v *Session) *AttemptUpdateOne {
	return _u.SetSessionID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_u *AttemptUpdateOne) AddAnswerIDs(ids ...int) *AttemptUpdateOne {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_u *AttemptUpdateOne) AddAnswers(v ...*Answer) *AttemptUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdateOne) Mutation() *AttemptMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *AttemptUpdateOne) ClearSession() *AttemptUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// ClearAnswers clears all "answers" edges to the Answer entity.
func (_u *AttemptUpdateOne) ClearAnswers() *AttemptUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to Answer entities by IDs.
func (_u *AttemptUpdateOne) RemoveAnswerIDs(ids ...int) *AttemptUpdateOne {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to Answer entities.
func (_u *AttemptUpdateOne) RemoveAnswers(v ...*Answer) *AttemptUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdateOne) Where(ps ...predicate.Attempt) *AttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptUpdateOne) Select(field string, fields ...string) *AttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attempt entity.
func (_u *AttemptUpdateOne) Save(ctx context.Context) (*Attempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdateOne) SaveX(ctx context.Context) *Attempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdateOne) check() error {
	if v, ok := _u.mutation.SectionCode(); ok {
		if err := attempt.SectionCodeValidator(v); err != nil {
			return &ValidationError{Name: "section_code", err: fmt.Errorf(`ent: validator failed for field "Attempt.section_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalItems(); ok {
		if err := attempt.TotalItemsValidator(v); err != nil {
			return &ValidationError{Name: "total_items", err: fmt.Errorf(`ent: validator failed for field "Attempt.total_items": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RawScore(); ok {
		if err := attempt.RawScoreValidator(v); err != nil {
			return &ValidationError{Name: "raw_score", err: fmt.Errorf(`ent: validator failed for field "Attempt.raw_score": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attempt.session"`)
	}
	return nil
}

func (_u *AttemptUpdateOne) sqlSave(ctx context.Context) (_node *Attempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Attempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attempt.FieldID)
		for _, f := range fields {
			if !attempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SectionCode(); ok {
		_spec.SetField(attempt.FieldSectionCode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalItems(); ok {
		_spec.SetField(attempt.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalItems(); ok {
		_spec.AddField(attempt.FieldTotalItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RawScore(); ok {
		_spec.SetField(attempt.FieldRawScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRawScore(); ok {
		_spec.AddField(attempt.FieldRawScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScorePercent(); ok {
		_spec.SetField(attempt.FieldScorePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScorePercent(); ok {
		_spec.AddField(attempt.FieldScorePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(attempt.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(attempt.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attempt.SessionTable,
			Columns: []string{attempt.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attempt.SessionTable,
			Columns: []string{attempt.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attempt.AnswersTable,
			Columns: []string{attempt.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attempt.AnswersTable,
			Columns: []string{attempt.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attempt.AnswersTable,
			Columns: []string{attempt.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Attempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
