// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/visaetude/prepcore/ent/examformatresult"
	"github.com/visaetude/prepcore/ent/predicate"
)

// ExamFormatResultUpdate is the builder for updating ExamFormatResult entities.
type ExamFormatResultUpdate struct {
	config
	hooks    []Hook
	mutation *ExamFormatResultMutation
}

// Where appends a list predicates to the ExamFormatResultUpdate builder.
func (_u *ExamFormatResultUpdate) Where(ps ...predicate.ExamFormatResult) *ExamFormatResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExamFormatResultUpdate) SetUserID(v string) *ExamFormatResultUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExamFormatResultUpdate) SetNillableUserID(v *string) *ExamFormatResultUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetExamCode sets the "exam_code" field.
func (_u *ExamFormatResultUpdate) SetExamCode(v string) *ExamFormatResultUpdate {
	_u.mutation.SetExamCode(v)
	return _u
}

// SetNillableExamCode sets the "exam_code" field if the given value is not nil.
func (_u *ExamFormatResultUpdate) SetNillableExamCode(v *string) *ExamFormatResultUpdate {
	if v != nil {
		_u.SetExamCode(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ExamFormatResultUpdate) SetLevel(v examformatresult.Level) *ExamFormatResultUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ExamFormatResultUpdate) SetNillableLevel(v *examformatresult.Level) *ExamFormatResultUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetSectionResults sets the "section_results" field.
func (_u *ExamFormatResultUpdate) SetSectionResults(v map[string]interface{}) *ExamFormatResultUpdate {
	_u.mutation.SetSectionResults(v)
	return _u
}

// SetGlobalScore sets the "global_score" field.
func (_u *ExamFormatResultUpdate) SetGlobalScore(v float64) *ExamFormatResultUpdate {
	_u.mutation.ResetGlobalScore()
	_u.mutation.SetGlobalScore(v)
	return _u
}

// SetNillableGlobalScore sets the "global_score" field if the given value is not nil.
func (_u *ExamFormatResultUpdate) SetNillableGlobalScore(v *float64) *ExamFormatResultUpdate {
	if v != nil {
		_u.SetGlobalScore(*v)
	}
	return _u
}

// AddGlobalScore adds value to the "global_score" field.
func (_u *ExamFormatResultUpdate) AddGlobalScore(v float64) *ExamFormatResultUpdate {
	_u.mutation.AddGlobalScore(v)
	return _u
}

// SetScoreMax sets the "score_max" field.
func (_u *ExamFormatResultUpdate) SetScoreMax(v float64) *ExamFormatResultUpdate {
	_u.mutation.ResetScoreMax()
	_u.mutation.SetScoreMax(v)
	return _u
}

// SetNillableScoreMax sets the "score_max" field if the given value is not nil.
func (_u *ExamFormatResultUpdate) SetNillableScoreMax(v *float64) *ExamFormatResultUpdate {
	if v != nil {
		_u.SetScoreMax(*v)
	}
	return _u
}

// AddScoreMax adds value to the "score_max" field.
func (_u *ExamFormatResultUpdate) AddScoreMax(v float64) *ExamFormatResultUpdate {
	_u.mutation.AddScoreMax(v)
	return _u
}

// SetGlobalCefr sets the "global_cefr" field.
func (_u *ExamFormatResultUpdate) SetGlobalCefr(v string) *ExamFormatResultUpdate {
	_u.mutation.SetGlobalCefr(v)
	return _u
}

// SetNillableGlobalCefr sets the "global_cefr" field if the given value is not nil.
func (_u *ExamFormatResultUpdate) SetNillableGlobalCefr(v *string) *ExamFormatResultUpdate {
	if v != nil {
		_u.SetGlobalCefr(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ExamFormatResultUpdate) SetPassed(v bool) *ExamFormatResultUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ExamFormatResultUpdate) SetNillablePassed(v *bool) *ExamFormatResultUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// Mutation returns the ExamFormatResultMutation object of the builder.
func (_u *ExamFormatResultUpdate) Mutation() *ExamFormatResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamFormatResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamFormatResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamFormatResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamFormatResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamFormatResultUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := examformatresult.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExamFormatResult.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamCode(); ok {
		if err := examformatresult.ExamCodeValidator(v); err != nil {
			return &ValidationError{Name: "exam_code", err: fmt.Errorf(`ent: validator failed for field "ExamFormatResult.exam_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := examformatresult.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ExamFormatResult.level": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamFormatResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examformatresult.Table, examformatresult.Columns, sqlgraph.NewFieldSpec(examformatresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(examformatresult.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamCode(); ok {
		_spec.SetField(examformatresult.FieldExamCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(examformatresult.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SectionResults(); ok {
		_spec.SetField(examformatresult.FieldSectionResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.GlobalScore(); ok {
		_spec.SetField(examformatresult.FieldGlobalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGlobalScore(); ok {
		_spec.AddField(examformatresult.FieldGlobalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ScoreMax(); ok {
		_spec.SetField(examformatresult.FieldScoreMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScoreMax(); ok {
		_spec.AddField(examformatresult.FieldScoreMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GlobalCefr(); ok {
		_spec.SetField(examformatresult.FieldGlobalCefr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(examformatresult.FieldPassed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examformatresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamFormatResultUpdateOne is the builder for updating a single ExamFormatResult entity.
type ExamFormatResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamFormatResultMutation
}

// SetUserID sets the "user_id" field.
func (_u *ExamFormatResultUpdateOne) SetUserID(v string) *ExamFormatResultUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExamFormatResultUpdateOne) SetNillableUserID(v *string) *ExamFormatResultUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetExamCode sets the "exam_code" field.
func (_u *ExamFormatResultUpdateOne) SetExamCode(v string) *ExamFormatResultUpdateOne {
	_u.mutation.SetExamCode(v)
	return _u
}

// SetNillableExamCode sets the "exam_code" field if the given value is not nil.
func (_u *ExamFormatResultUpdateOne) SetNillableExamCode(v *string) *ExamFormatResultUpdateOne {
	if v != nil {
		_u.SetExamCode(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ExamFormatResultUpdateOne) SetLevel(v examformatresult.Level) *ExamFormatResultUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ExamFormatResultUpdateOne) SetNillableLevel(v *examformatresult.Level) *ExamFormatResultUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetSectionResults sets the "section_results" field.
func (_u *ExamFormatResultUpdateOne) SetSectionResults(v map[string]interface{}) *ExamFormatResultUpdateOne {
	_u.mutation.SetSectionResults(v)
	return _u
}

// SetGlobalScore sets the "global_score" field.
func (_u *ExamFormatResultUpdateOne) SetGlobalScore(v float64) *ExamFormatResultUpdateOne {
	_u.mutation.ResetGlobalScore()
	_u.mutation.SetGlobalScore(v)
	return _u
}

// SetNillableGlobalScore sets the "global_score" field if the given value is not nil.
func (_u *ExamFormatResultUpdateOne) SetNillableGlobalScore(v *float64) *ExamFormatResultUpdateOne {
	if v != nil {
		_u.SetGlobalScore(*v)
	}
	return _u
}

// AddGlobalScore adds value to the "global_score" field.
func (_u *ExamFormatResultUpdateOne) AddGlobalScore(v float64) *ExamFormatResultUpdateOne {
	_u.mutation.AddGlobalScore(v)
	return _u
}

// SetScoreMax sets the "score_max" field.
func (_u *ExamFormatResultUpdateOne) SetScoreMax(v float64) *ExamFormatResultUpdateOne {
	_u.mutation.ResetScoreMax()
	_u.mutation.SetScoreMax(v)
	return _u
}

// SetNillableScoreMax sets the "score_max" field if the given value is not nil.
func (_u *ExamFormatResultUpdateOne) SetNillableScoreMax(v *float64) *ExamFormatResultUpdateOne {
	if v != nil {
		_u.SetScoreMax(*v)
	}
	return _u
}

// AddScoreMax adds value to the "score_max" field.
func (_u *ExamFormatResultUpdateOne) AddScoreMax(v float64) *ExamFormatResultUpdateOne {
	_u.mutation.AddScoreMax(v)
	return _u
}

// SetGlobalCefr sets the "global_cefr" field.
func (_u *ExamFormatResultUpdateOne) SetGlobalCefr(v string) *ExamFormatResultUpdateOne {
	_u.mutation.SetGlobalCefr(v)
	return _u
}

// SetNillableGlobalCefr sets the "global_cefr" field if the given value is not nil.
func (_u *ExamFormatResultUpdateOne) SetNillableGlobalCefr(v *string) *ExamFormatResultUpdateOne {
	if v != nil {
		_u.SetGlobalCefr(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ExamFormatResultUpdateOne) SetPassed(v bool) *ExamFormatResultUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ExamFormatResultUpdateOne) SetNillablePassed(v *bool) *ExamFormatResultUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// Mutation returns the ExamFormatResultMutation object of the builder.
func (_u *ExamFormatResultUpdateOne) Mutation() *ExamFormatResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExamFormatResultUpdate builder.
func (_u *ExamFormatResultUpdateOne) Where(ps ...predicate.ExamFormatResult) *ExamFormatResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamFormatResultUpdateOne) Select(field string, fields ...string) *ExamFormatResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExamFormatResult entity.
func (_u *ExamFormatResultUpdateOne) Save(ctx context.Context) (*ExamFormatResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamFormatResultUpdateOne) SaveX(ctx context.Context) *ExamFormatResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamFormatResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamFormatResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamFormatResultUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := examformatresult.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExamFormatResult.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamCode(); ok {
		if err := examformatresult.ExamCodeValidator(v); err != nil {
			return &ValidationError{Name: "exam_code", err: fmt.Errorf(`ent: validator failed for field "ExamFormatResult.exam_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := examformatresult.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ExamFormatResult.level": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamFormatResultUpdateOne) sqlSave(ctx context.Context) (_node *ExamFormatResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examformatresult.Table, examformatresult.Columns, sqlgraph.NewFieldSpec(examformatresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExamFormatResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examformatresult.FieldID)
		for _, f := range fields {
			if !examformatresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != examformatresult.FieldID {
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
		_spec.SetField(examformatresult.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamCode(); ok {
		_spec.SetField(examformatresult.FieldExamCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(examformatresult.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SectionResults(); ok {
		_spec.SetField(examformatresult.FieldSectionResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.GlobalScore(); ok {
		_spec.SetField(examformatresult.FieldGlobalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGlobalScore(); ok {
		_spec.AddField(examformatresult.FieldGlobalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ScoreMax(); ok {
		_spec.SetField(examformatresult.FieldScoreMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScoreMax(); ok {
		_spec.AddField(examformatresult.FieldScoreMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GlobalCefr(); ok {
		_spec.SetField(examformatresult.FieldGlobalCefr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(examformatresult.FieldPassed, field.TypeBool, value)
	}
	_node = &ExamFormatResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examformatresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
