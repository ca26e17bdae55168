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
	"github.com/visaetude/prepcore/ent/choice"
	"github.com/visaetude/prepcore/ent/question"
)

// AnswerCreate is the builder for creating a Answer entity.
type AnswerCreate struct {
	config
	mutation *AnswerMutation
	hooks    []Hook
}

// SetTextAnswer sets the "text_answer" field.
func (_c *AnswerCreate) SetTextAnswer(v string) *AnswerCreate {
	_c.mutation.SetTextAnswer(v)
	return _c
}

// SetNillableTextAnswer sets the "text_answer" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableTextAnswer(v *string) *AnswerCreate {
	if v != nil {
		_c.SetTextAnswer(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AnswerCreate) SetCorrect(v bool) *AnswerCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableCorrect(v *bool) *AnswerCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnswerCreate) SetCreatedAt(v time.Time) *AnswerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableCreatedAt(v *time.Time) *AnswerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt" edge to the Attempt entity by ID.
func (_c *AnswerCreate) SetAttemptID(id int) *AnswerCreate {
	_c.mutation.SetAttemptID(id)
	return _c
}

// SetAttempt sets the "attempt" edge to the Attempt entity.
func (_c *AnswerCreate) SetAttempt(v *Attempt) *AnswerCreate {
	return _c.SetAttemptID(v.ID)
}

// SetQuestionID sets the "question" edge to the Question entity by ID.
func (_c *AnswerCreate) SetQuestionID(id int) *AnswerCreate {
	_c.mutation.SetQuestionID(id)
	return _c
}

// SetQuestion sets the "question" edge to the Question entity.
func (_c *AnswerCreate) SetQuestion(v *Question) *AnswerCreate {
	return _c.SetQuestionID(v.ID)
}

// SetChoiceID sets the "choice" edge to the Choice entity by ID.
func (_c *AnswerCreate) SetChoiceID(id int) *AnswerCreate {
	_c.mutation.SetChoiceID(id)
	return _c
}

// SetNillableChoiceID sets the "choice" edge to the Choice entity by ID if the given value is not nil.
func (_c *AnswerCreate) SetNillableChoiceID(id *int) *AnswerCreate {
	if id != nil {
		_c = _c.SetChoiceID(*id)
	}
	return _c
}

// SetChoice sets the "choice" edge to the Choice entity.
func (_c *AnswerCreate) SetChoice(v *Choice) *AnswerCreate {
	return _c.SetChoiceID(v.ID)
}

// Mutation returns the AnswerMutation object of the builder.
func (_c *AnswerCreate) Mutation() *AnswerMutation {
	return _c.mutation
}

// Save creates the Answer in the database.
func (_c *AnswerCreate) Save(ctx context.Context) (*Answer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerCreate) SaveX(ctx context.Context) *Answer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerCreate) defaults() {
	if _, ok := _c.mutation.TextAnswer(); !ok {
		v := answer.DefaultTextAnswer
		_c.mutation.SetTextAnswer(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := answer.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := answer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerCreate) check() error {
	if _, ok := _c.mutation.TextAnswer(); !ok {
		return &ValidationError{Name: "text_answer", err: errors.New(`ent: missing required field "Answer.text_answer"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "Answer.correct"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Answer.created_at"`)}
	}
	if len(_c.mutation.AttemptIDs()) == 0 {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required edge "Answer.attempt"`)}
	}
	if len(_c.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required edge "Answer.question"`)}
	}
	return nil
}

func (_c *AnswerCreate) sqlSave(ctx context.Context) (*Answer, error) {
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

func (_c *AnswerCreate) createSpec() (*Answer, *sqlgraph.CreateSpec) {
	var (
		_node = &Answer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answer.Table, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TextAnswer(); ok {
		_spec.SetField(answer.FieldTextAnswer, field.TypeString, value)
		_node.TextAnswer = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(answer.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(answer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AttemptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.AttemptTable,
			Columns: []string{answer.AttemptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.attempt_answers = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   answer.QuestionTable,
			Columns: []string{answer.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.answer_question = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   answer.ChoiceTable,
			Columns: []string{answer.ChoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(choice.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.answer_choice = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnswerCreateBulk is the builder for creating many Answer entities in bulk.
type AnswerCreateBulk struct {
	config
	err      error
	builders []*AnswerCreate
}

// Save creates the Answer entities in the database.
func (_c *AnswerCreateBulk) Save(ctx context.Context) ([]*Answer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Answer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerMutation)
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
func (_c *AnswerCreateBulk) SaveX(ctx context.Context) []*Answer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
