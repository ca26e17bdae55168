// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/visaetude/prepcore/ent/answer"
	"github.com/visaetude/prepcore/ent/attempt"
	"github.com/visaetude/prepcore/ent/session"
)

// AttemptCreate is the builder for creating a Attempt entity.
type AttemptCreate struct {
	config
	mutation *AttemptMutation
	hooks    []Hook
}

// SetSectionCode sets the "section_code" field.
func (_c *AttemptCreate) SetSectionCode(v attempt.SectionCode) *AttemptCreate {
	_c.mutation.SetSectionCode(v)
	return _c
}

// SetTotalItems sets the "total_items" field.
func (_c *AttemptCreate) SetTotalItems(v int) *AttemptCreate {
	_c.mutation.SetTotalItems(v)
	return _c
}

// SetNillableTotalItems sets the "total_items" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableTotalItems(v *int) *AttemptCreate {
	if v != nil {
		_c.SetTotalItems(*v)
	}
	return _c
}

// SetRawScore sets the "raw_score" field.
func (_c *AttemptCreate) SetRawScore(v int) *AttemptCreate {
	_c.mutation.SetRawScore(v)
	return _c
}

// SetNillableRawScore sets the "raw_score" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableRawScore(v *int) *AttemptCreate {
	if v != nil {
		_c.SetRawScore(*v)
	}
	return _c
}

// SetScorePercent sets the "score_percent" field.
func (_c *AttemptCreate) SetScorePercent(v float64) *AttemptCreate {
	_c.mutation.SetScorePercent(v)
	return _c
}

// SetNillableScorePercent sets the "score_percent" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableScorePercent(v *float64) *AttemptCreate {
	if v != nil {
		_c.SetScorePercent(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AttemptCreate) SetStartedAt(v time.Time) *AttemptCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableStartedAt(v *time.Time) *AttemptCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *AttemptCreate) SetFinishedAt(v time.Time) *AttemptCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableFinishedAt(v *time.Time) *AttemptCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetSessionID sets the "session" edge to the Session entity by ID.
func (_c *AttemptCreate) SetSessionID(id int) *AttemptCreate {
	_c.mutation.SetSessionID(id)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *AttemptCreate) SetSession(v *Session) *AttemptCreate {
	return _c.SetSessionID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_c *AttemptCreate) AddAnswerIDs(ids ...int) *AttemptCreate {
	_c.mutation.AddAnswerIDs(ids...)
	return _c
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_c *AttemptCreate) AddAnswers(v ...*Answer) *AttemptCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnswerIDs(ids...)
}

// Mutation returns the AttemptMutation object of the builder.
func (_c *AttemptCreate) Mutation() *AttemptMutation {
	return _c.mutation
}

// Save creates the Attempt in the database.
func (_c *AttemptCreate) Save(ctx context.Context) (*Attempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptCreate) SaveX(ctx context.Context) *Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptCreate) defaults() {
	if _, ok := _c.mutation.TotalItems(); !ok {
		v := attempt.DefaultTotalItems
		_c.mutation.SetTotalItems(v)
	}
	if _, ok := _c.mutation.RawScore(); !ok {
		v := attempt.DefaultRawScore
		_c.mutation.SetRawScore(v)
	}
	if _, ok := _c.mutation.ScorePercent(); !ok {
		v := attempt.DefaultScorePercent
		_c.mutation.SetScorePercent(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := attempt.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptCreate) check() error {
	if _, ok := _c.mutation.SectionCode(); !ok {
		return &ValidationError{Name: "section_code", err: errors.New(`ent: missing required field "Attempt.section_code"`)}
	}
	if v, ok := _c.mutation.SectionCode(); ok {
		if err := attempt.SectionCodeValidator(v); err != nil {
			return &ValidationError{Name: "section_code", err: fmt.Errorf(`ent: validator failed for field "Attempt.section_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalItems(); !ok {
		return &ValidationError{Name: "total_items", err: errors.New(`ent: missing required field "Attempt.total_items"`)}
	}
	if v, ok := _c.mutation.TotalItems(); ok {
		if err := attempt.TotalItemsValidator(v); err != nil {
			return &ValidationError{Name: "total_items", err: fmt.Errorf(`ent: validator failed for field "Attempt.total_items": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RawScore(); !ok {
		return &ValidationError{Name: "raw_score", err: errors.New(`ent: missing required field "Attempt.raw_score"`)}
	}
	if v, ok := _c.mutation.RawScore(); ok {
		if err := attempt.RawScoreValidator(v); err != nil {
			return &ValidationError{Name: "raw_score", err: fmt.Errorf(`ent: validator failed for field "Attempt.raw_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScorePercent(); !ok {
		return &ValidationError{Name: "score_percent", err: errors.New(`ent: missing required field "Attempt.score_percent"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Attempt.started_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Attempt.session"`)}
	}
	return nil
}

func (_c *AttemptCreate) sqlSave(ctx context.Context) (*Attempt, error) {
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

func (_c *AttemptCreate) createSpec() (*Attempt, *sqlgraph.CreateSpec) {
	var (
		_node = &Attempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attempt.Table, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SectionCode(); ok {
		_spec.SetField(attempt.FieldSectionCode, field.TypeEnum, value)
		_node.SectionCode = value
	}
	if value, ok := _c.mutation.TotalItems(); ok {
		_spec.SetField(attempt.FieldTotalItems, field.TypeInt, value)
		_node.TotalItems = value
	}
	if value, ok := _c.mutation.RawScore(); ok {
		_spec.SetField(attempt.FieldRawScore, field.TypeInt, value)
		_node.RawScore = value
	}
	if value, ok := _c.mutation.ScorePercent(); ok {
		_spec.SetField(attempt.FieldScorePercent, field.TypeFloat64, value)
		_node.ScorePercent = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(attempt.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(attempt.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
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
		_node.session_attempts = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AttemptCreateBulk is the builder for creating many Attempt entities in bulk.
type AttemptCreateBulk struct {
	config
	err      error
	builders []*AttemptCreate
}

// Save creates the Attempt entities in the database.
func (_c *AttemptCreateBulk) Save(ctx context.Context) ([]*Attempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptMutation)
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
func (_c *AttemptCreateBulk) SaveX(ctx context.Context) []*Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
