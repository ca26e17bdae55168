// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/visaetude/prepcore/ent/examformatresult"
)

// ExamFormatResultCreate is the builder for creating a ExamFormatResult entity.
type ExamFormatResultCreate struct {
	config
	mutation *ExamFormatResultMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ExamFormatResultCreate) SetUserID(v string) *ExamFormatResultCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetExamCode sets the "exam_code" field.
func (_c *ExamFormatResultCreate) SetExamCode(v string) *ExamFormatResultCreate {
	_c.mutation.SetExamCode(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *ExamFormatResultCreate) SetLevel(v examformatresult.Level) *ExamFormatResultCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetSectionResults sets the "section_results" field.
func (_c *ExamFormatResultCreate) SetSectionResults(v map[string]interface{}) *ExamFormatResultCreate {
	_c.mutation.SetSectionResults(v)
	return _c
}

// SetGlobalScore sets the "global_score" field.
func (_c *ExamFormatResultCreate) SetGlobalScore(v float64) *ExamFormatResultCreate {
	_c.mutation.SetGlobalScore(v)
	return _c
}

// SetNillableGlobalScore sets the "global_score" field if the given value is not nil.
func (_c *ExamFormatResultCreate) SetNillableGlobalScore(v *float64) *ExamFormatResultCreate {
	if v != nil {
		_c.SetGlobalScore(*v)
	}
	return _c
}

// SetScoreMax sets the "score_max" field.
func (_c *ExamFormatResultCreate) SetScoreMax(v float64) *ExamFormatResultCreate {
	_c.mutation.SetScoreMax(v)
	return _c
}

// SetNillableScoreMax sets the "score_max" field if the given value is not nil.
func (_c *ExamFormatResultCreate) SetNillableScoreMax(v *float64) *ExamFormatResultCreate {
	if v != nil {
		_c.SetScoreMax(*v)
	}
	return _c
}

// SetGlobalCefr sets the "global_cefr" field.
func (_c *ExamFormatResultCreate) SetGlobalCefr(v string) *ExamFormatResultCreate {
	_c.mutation.SetGlobalCefr(v)
	return _c
}

// SetNillableGlobalCefr sets the "global_cefr" field if the given value is not nil.
func (_c *ExamFormatResultCreate) SetNillableGlobalCefr(v *string) *ExamFormatResultCreate {
	if v != nil {
		_c.SetGlobalCefr(*v)
	}
	return _c
}

// SetPassed sets the "passed" field.
func (_c *ExamFormatResultCreate) SetPassed(v bool) *ExamFormatResultCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_c *ExamFormatResultCreate) SetNillablePassed(v *bool) *ExamFormatResultCreate {
	if v != nil {
		_c.SetPassed(*v)
	}
	return _c
}

// SetTakenAt sets the "taken_at" field.
func (_c *ExamFormatResultCreate) SetTakenAt(v time.Time) *ExamFormatResultCreate {
	_c.mutation.SetTakenAt(v)
	return _c
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_c *ExamFormatResultCreate) SetNillableTakenAt(v *time.Time) *ExamFormatResultCreate {
	if v != nil {
		_c.SetTakenAt(*v)
	}
	return _c
}

// Mutation returns the ExamFormatResultMutation object of the builder.
func (_c *ExamFormatResultCreate) Mutation() *ExamFormatResultMutation {
	return _c.mutation
}

// Save creates the ExamFormatResult in the database.
func (_c *ExamFormatResultCreate) Save(ctx context.Context) (*ExamFormatResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExamFormatResultCreate) SaveX(ctx context.Context) *ExamFormatResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamFormatResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamFormatResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExamFormatResultCreate) defaults() {
	if _, ok := _c.mutation.GlobalScore(); !ok {
		v := examformatresult.DefaultGlobalScore
		_c.mutation.SetGlobalScore(v)
	}
	if _, ok := _c.mutation.ScoreMax(); !ok {
		v := examformatresult.DefaultScoreMax
		_c.mutation.SetScoreMax(v)
	}
	if _, ok := _c.mutation.GlobalCefr(); !ok {
		v := examformatresult.DefaultGlobalCefr
		_c.mutation.SetGlobalCefr(v)
	}
	if _, ok := _c.mutation.Passed(); !ok {
		v := examformatresult.DefaultPassed
		_c.mutation.SetPassed(v)
	}
	if _, ok := _c.mutation.TakenAt(); !ok {
		v := examformatresult.DefaultTakenAt()
		_c.mutation.SetTakenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExamFormatResultCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ExamFormatResult.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := examformatresult.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExamFormatResult.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExamCode(); !ok {
		return &ValidationError{Name: "exam_code", err: errors.New(`ent: missing required field "ExamFormatResult.exam_code"`)}
	}
	if v, ok := _c.mutation.ExamCode(); ok {
		if err := examformatresult.ExamCodeValidator(v); err != nil {
			return &ValidationError{Name: "exam_code", err: fmt.Errorf(`ent: validator failed for field "ExamFormatResult.exam_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "ExamFormatResult.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := examformatresult.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ExamFormatResult.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SectionResults(); !ok {
		return &ValidationError{Name: "section_results", err: errors.New(`ent: missing required field "ExamFormatResult.section_results"`)}
	}
	if _, ok := _c.mutation.GlobalScore(); !ok {
		return &ValidationError{Name: "global_score", err: errors.New(`ent: missing required field "ExamFormatResult.global_score"`)}
	}
	if _, ok := _c.mutation.ScoreMax(); !ok {
		return &ValidationError{Name: "score_max", err: errors.New(`ent: missing required field "ExamFormatResult.score_max"`)}
	}
	if _, ok := _c.mutation.GlobalCefr(); !ok {
		return &ValidationError{Name: "global_cefr", err: errors.New(`ent: missing required field "ExamFormatResult.global_cefr"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "ExamFormatResult.passed"`)}
	}
	if _, ok := _c.mutation.TakenAt(); !ok {
		return &ValidationError{Name: "taken_at", err: errors.New(`ent: missing required field "ExamFormatResult.taken_at"`)}
	}
	return nil
}

func (_c *ExamFormatResultCreate) sqlSave(ctx context.Context) (*ExamFormatResult, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExamFormatResultCreate) createSpec() (*ExamFormatResult, *sqlgraph.CreateSpec) {
	var (
		_node = &ExamFormatResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(examformatresult.Table, sqlgraph.NewFieldSpec(examformatresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(examformatresult.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ExamCode(); ok {
		_spec.SetField(examformatresult.FieldExamCode, field.TypeString, value)
		_node.ExamCode = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(examformatresult.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.SectionResults(); ok {
		_spec.SetField(examformatresult.FieldSectionResults, field.TypeJSON, value)
		_node.SectionResults = value
	}
	if value, ok := _c.mutation.GlobalScore(); ok {
		_spec.SetField(examformatresult.FieldGlobalScore, field.TypeFloat64, value)
		_node.GlobalScore = value
	}
	if value, ok := _c.mutation.ScoreMax(); ok {
		_spec.SetField(examformatresult.FieldScoreMax, field.TypeFloat64, value)
		_node.ScoreMax = value
	}
	if value, ok := _c.mutation.GlobalCefr(); ok {
		_spec.SetField(examformatresult.FieldGlobalCefr, field.TypeString, value)
		_node.GlobalCefr = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(examformatresult.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.TakenAt(); ok {
		_spec.SetField(examformatresult.FieldTakenAt, field.TypeTime, value)
		_node.TakenAt = value
	}
	return _node, _spec
}

// ExamFormatResultCreateBulk is the builder for creating many ExamFormatResult entities in bulk.
type ExamFormatResultCreateBulk struct {
	config
	err      error
	builders []*ExamFormatResultCreate
}

// Save creates the ExamFormatResult entities in the database.
func (_c *ExamFormatResultCreateBulk) Save(ctx context.Context) ([]*ExamFormatResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExamFormatResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamFormatResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExamFormatResultCreateBulk) SaveX(ctx context.Context) []*ExamFormatResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamFormatResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamFormatResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
