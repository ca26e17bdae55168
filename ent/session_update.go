// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/visaetude/prepcore/ent/attempt"
	"github.com/visaetude/prepcore/ent/predicate"
	"github.com/visaetude/prepcore/ent/session"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionUpdate) SetUserID(v string) *SessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableUserID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetExamCode sets the "exam_code" field.
func (_u *SessionUpdate) SetExamCode(v string) *SessionUpdate {
	_u.mutation.SetExamCode(v)
	return _u
}

// SetNillableExamCode sets the "exam_code" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableExamCode(v *string) *SessionUpdate {
	if v != nil {
		_u.SetExamCode(*v)
	}
	return _u
}

// SetSection sets the "section" field.
func (_u *SessionUpdate) SetSection(v string) *SessionUpdate {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSection(v *string) *SessionUpdate {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdate) SetStatus(v session.Status) *SessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStatus(v *session.Status) *SessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *SessionUpdate) SetTotalScore(v float64) *SessionUpdate {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTotalScore(v *float64) *SessionUpdate {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *SessionUpdate) AddTotalScore(v float64) *SessionUpdate {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *SessionUpdate) SetDurationSeconds(v int) *SessionUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableDurationSeconds(v *int) *SessionUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *SessionUpdate) AddDurationSeconds(v int) *SessionUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetResultData sets the "result_data" field.
func (_u *SessionUpdate) SetResultData(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetResultData(v)
	return _u
}

// ClearResultData clears the value of the "result_data" field.
func (_u *SessionUpdate) ClearResultData() *SessionUpdate {
	_u.mutation.ClearResultData()
	return _u
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by IDs.
func (_u *SessionUpdate) AddAttemptIDs(ids ...int) *SessionUpdate {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the Attempt entity.
func (_u *SessionUpdate) AddAttempts(v ...*Attempt) *SessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearAttempts clears all "attempts" edges to the Attempt entity.
func (_u *SessionUpdate) ClearAttempts() *SessionUpdate {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to Attempt entities by IDs.
func (_u *SessionUpdate) RemoveAttemptIDs(ids ...int) *SessionUpdate {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to Attempt entities.
func (_u *SessionUpdate) RemoveAttempts(v ...*Attempt) *SessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := session.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Session.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamCode(); ok {
		if err := session.ExamCodeValidator(v); err != nil {
			return &ValidationError{Name: "exam_code", err: fmt.Errorf(`ent: validator failed for field "Session.exam_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationSeconds(); ok {
		if err := session.DurationSecondsValidator(v); err != nil {
			return &ValidationError{Name: "duration_seconds", err: fmt.Errorf(`ent: validator failed for field "Session.duration_seconds": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(session.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamCode(); ok {
		_spec.SetField(session.FieldExamCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(session.FieldSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(session.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(session.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(session.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(session.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResultData(); ok {
		_spec.SetField(session.FieldResultData, field.TypeJSON, value)
	}
	if _u.mutation.ResultDataCleared() {
		_spec.ClearField(session.FieldResultData, field.TypeJSON)
	}
	if _u.mutation.AttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.AttemptsTable,
			Columns: []string{session.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.AttemptsTable,
			Columns: []string{session.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.AttemptsTable,
			Columns: []string{session.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *SessionUpdateOne) SetUserID(v string) *SessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableUserID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetExamCode sets the "exam_code" field.
func (_u *SessionUpdateOne) SetExamCode(v string) *SessionUpdateOne {
	_u.mutation.SetExamCode(v)
	return _u
}

// SetNillableExamCode sets the "exam_code" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableExamCode(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetExamCode(*v)
	}
	return _u
}

// SetSection sets the "section" field.
func (_u *SessionUpdateOne) SetSection(v string) *SessionUpdateOne {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSection(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdateOne) SetStatus(v session.Status) *SessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStatus(v *session.Status) *SessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *SessionUpdateOne) SetTotalScore(v float64) *SessionUpdateOne {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTotalScore(v *float64) *SessionUpdateOne {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *SessionUpdateOne) AddTotalScore(v float64) *SessionUpdateOne {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *SessionUpdateOne) SetDurationSeconds(v int) *SessionUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableDurationSeconds(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *SessionUpdateOne) AddDurationSeconds(v int) *SessionUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetResultData sets the "result_data" field.
func (_u *SessionUpdateOne) SetResultData(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetResultData(v)
	return _u
}

// ClearResultData clears the value of the "result_data" field.
func (_u *SessionUpdateOne) ClearResultData() *SessionUpdateOne {
	_u.mutation.ClearResultData()
	return _u
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by IDs.
func (_u *SessionUpdateOne) AddAttemptIDs(ids ...int) *SessionUpdateOne {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the Attempt entity.
func (_u *SessionUpdateOne) AddAttempts(v ...*Attempt) *SessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearAttempts clears all "attempts" edges to the Attempt entity.
func (_u *SessionUpdateOne) ClearAttempts() *SessionUpdateOne {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to Attempt entities by IDs.
func (_u *SessionUpdateOne) RemoveAttemptIDs(ids ...int) *SessionUpdateOne {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to Attempt entities.
func (_u *SessionUpdateOne) RemoveAttempts(v ...*Attempt) *SessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := session.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Session.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamCode(); ok {
		if err := session.ExamCodeValidator(v); err != nil {
			return &ValidationError{Name: "exam_code", err: fmt.Errorf(`ent: validator failed for field "Session.exam_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationSeconds(); ok {
		if err := session.DurationSecondsValidator(v); err != nil {
			return &ValidationError{Name: "duration_seconds", err: fmt.Errorf(`ent: validator failed for field "Session.duration_seconds": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(session.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamCode(); ok {
		_spec.SetField(session.FieldExamCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(session.FieldSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(session.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(session.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(session.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(session.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResultData(); ok {
		_spec.SetField(session.FieldResultData, field.TypeJSON, value)
	}
	if _u.mutation.ResultDataCleared() {
		_spec.ClearField(session.FieldResultData, field.TypeJSON)
	}
	if _u.mutation.AttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.AttemptsTable,
			Columns: []string{session.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.AttemptsTable,
			Columns: []string{session.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.AttemptsTable,
			Columns: []string{session.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
