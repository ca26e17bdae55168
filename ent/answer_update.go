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
	"github.com/visaetude/prepcore/ent/choice"
	"github.com/visaetude/prepcore/ent/predicate"
	"github.com/visaetude/prepcore/ent/question"
)

// AnswerUpdate is the builder for updating Answer entities.
type AnswerUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerMutation
}

// Where appends a list predicates to the AnswerUpdate builder.
func (_u *AnswerUpdate) Where(ps ...predicate.Answer) *AnswerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTextAnswer sets the "text_answer" field.
func (_u *AnswerUpdate) SetTextAnswer(v string) *AnswerUpdate {
	_u.mutation.SetTextAnswer(v)
	return _u
}

// SetNillableTextAnswer sets the "text_answer" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableTextAnswer(v *string) *AnswerUpdate {
	if v != nil {
		_u.SetTextAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerUpdate) SetCorrect(v bool) *AnswerUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableCorrect(v *bool) *AnswerUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnswerUpdate) SetCreatedAt(v time.Time) *AnswerUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableCreatedAt(v *time.Time) *AnswerUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAttemptID sets the "attempt" edge to the Attempt entity by ID.
func (_u *AnswerUpdate) SetAttemptID(id int) *AnswerUpdate {
	_u.mutation.SetAttemptID(id)
	return _u
}

// SetAttempt sets the "attempt" edge to the Attempt entity.
func (_u *AnswerUpdate) SetAttempt(v *Attempt) *AnswerUpdate {
	return _u.SetAttemptID(v.ID)
}

// SetQuestionID sets the "question" edge to the Question entity by ID.
func (_u *AnswerUpdate) SetQuestionID(id int) *AnswerUpdate {
	_u.mutation.SetQuestionID(id)
	return _u
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *AnswerUpdate) SetQuestion(v *Question) *AnswerUpdate {
	return _u.SetQuestionID(v.ID)
}

// SetChoiceID sets the "choice" edge to the Choice entity by ID.
func (_u *AnswerUpdate) SetChoiceID(id int) *AnswerUpdate {
	_u.mutation.SetChoiceID(id)
	return _u
}

// SetNillableChoiceID sets the "choice" edge to the Choice entity by ID if the given value is not nil.
func (_u *AnswerUpdate) SetNillableChoiceID(id *int) *AnswerUpdate {
	if id != nil {
		_u = _u.SetChoiceID(*id)
	}
	return _u
}

// SetChoice sets the "choice" edge to the Choice entity.
func (_u *AnswerUpdate) SetChoice(v *Choice) *AnswerUpdate {
	return _u.SetChoiceID(v.ID)
}

// Mutation returns the AnswerMutation object of the builder.
func (_u *AnswerUpdate) Mutation() *AnswerMutation {
	return _u.mutation
}

// ClearAttempt clears the "attempt" edge to the Attempt entity.
func (_u *AnswerUpdate) ClearAttempt() *AnswerUpdate {
	_u.mutation.ClearAttempt()
	return _u
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *AnswerUpdate) ClearQuestion() *AnswerUpdate {
	_u.mutation.ClearQuestion()
	return _u
}

// ClearChoice clears the "choice" edge to the Choice entity.
func (_u *AnswerUpdate) ClearChoice() *AnswerUpdate {
	_u.mutation.ClearChoice()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerUpdate) check() error {
	if _u.mutation.AttemptCleared() && len(_u.mutation.AttemptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Answer.attempt"`)
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Answer.question"`)
	}
	return nil
}

func (_u *AnswerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TextAnswer(); ok {
		_spec.SetField(answer.FieldTextAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answer.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(answer.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AttemptCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChoiceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChoiceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerUpdateOne is the builder for updating a single Answer entity.
type AnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerMutation
}

// SetTextAnswer sets the "text_answer" field.
func (_u *AnswerUpdateOne) SetTextAnswer(v string) *AnswerUpdateOne {
	_u.mutation.SetTextAnswer(v)
	return _u
}

// SetNillableTextAnswer sets the "text_answer" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableTextAnswer(v *string) *AnswerUpdateOne {
	if v != nil {
		_u.SetTextAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerUpdateOne) SetCorrect(v bool) *AnswerUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableCorrect(v *bool) *AnswerUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnswerUpdateOne) SetCreatedAt(v time.Time) *AnswerUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableCreatedAt(v *time.Time) *AnswerUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAttemptID sets the "attempt" edge to the Attempt entity by ID.
func (_u *AnswerUpdateOne) SetAttemptID(id int) *AnswerUpdateOne {
	_u.mutation.SetAttemptID(id)
	return _u
}

// SetAttempt sets the "attempt" edge to the Attempt entity.
func (_u *AnswerUpdateOne) SetAttempt(v *Attempt) *AnswerUpdateOne {
	return _u.SetAttemptID(v.ID)
}

// SetQuestionID sets the "question" edge to the Question entity by ID.
func (_u *AnswerUpdateOne) SetQuestionID(id int) *AnswerUpdateOne {
	_u.mutation.SetQuestionID(id)
	return _u
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *AnswerUpdateOne) SetQuestion(v *Question) *AnswerUpdateOne {
	return _u.SetQuestionID(v.ID)
}

// SetChoiceID sets the "choice" edge to the Choice entity by ID.
func (_u *AnswerUpdateOne) SetChoiceID(id int) *AnswerUpdateOne {
	_u.mutation.SetChoiceID(id)
	return _u
}

// SetNillableChoiceID sets the "choice" edge to the Choice entity by ID if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableChoiceID(id *int) *AnswerUpdateOne {
	if id != nil {
		_u = _u.SetChoiceID(*id)
	}
	return _u
}

// SetChoice sets the "choice" edge to the Choice entity.
func (_u *AnswerUpdateOne) SetChoice(v *Choice) *AnswerUpdateOne {
	return _u.SetChoiceID(v.ID)
}

// Mutation returns the AnswerMutation object of the builder.
func (_u *AnswerUpdateOne) Mutation() *AnswerMutation {
	return _u.mutation
}

// ClearAttempt clears the "attempt" edge to the Attempt entity.
func (_u *AnswerUpdateOne) ClearAttempt() *AnswerUpdateOne {
	_u.mutation.ClearAttempt()
	return _u
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *AnswerUpdateOne) ClearQuestion() *AnswerUpdateOne {
	_u.mutation.ClearQuestion()
	return _u
}

// ClearChoice clears the "choice" edge to the Choice entity.
func (_u *AnswerUpdateOne) ClearChoice() *AnswerUpdateOne {
	_u.mutation.ClearChoice()
	return _u
}

// Where appends a list predicates to the AnswerUpdate builder.
func (_u *AnswerUpdateOne) Where(ps ...predicate.Answer) *AnswerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerUpdateOne) Select(field string, fields ...string) *AnswerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Answer entity.
func (_u *AnswerUpdateOne) Save(ctx context.Context) (*Answer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerUpdateOne) SaveX(ctx context.Context) *Answer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerUpdateOne) check() error {
	if _u.mutation.AttemptCleared() && len(_u.mutation.AttemptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Answer.attempt"`)
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Answer.question"`)
	}
	return nil
}

func (_u *AnswerUpdateOne) sqlSave(ctx context.Context) (_node *Answer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Answer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answer.FieldID)
		for _, f := range fields {
			if !answer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answer.FieldID {
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
	if value, ok := _u.mutation.TextAnswer(); ok {
		_spec.SetField(answer.FieldTextAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answer.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(answer.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AttemptCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChoiceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChoiceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Answer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
