// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/visaetude/prepcore/ent/exam"
	"github.com/visaetude/prepcore/ent/examsection"
	"github.com/visaetude/prepcore/ent/question"
)

// ExamSectionCreate is the builder for creating a ExamSection entity.
type ExamSectionCreate struct {
	config
	mutation *ExamSectionMutation
	hooks    []Hook
}

// SetSectionCode sets the "section_code" field.
func (_c *ExamSectionCreate) SetSectionCode(v examsection.SectionCode) *ExamSectionCreate {
	_c.mutation.SetSectionCode(v)
	return _c
}

// SetOrder sets the "order" field.
func (_c *ExamSectionCreate) SetOrder(v int) *ExamSectionCreate {
	_c.mutation.SetOrder(v)
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *ExamSectionCreate) SetDurationSeconds(v int) *ExamSectionCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *ExamSectionCreate) SetNillableDurationSeconds(v *int) *ExamSectionCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetExamID sets the "exam" edge to the Exam entity by ID.
func (_c *ExamSectionCreate) SetExamID(id int) *ExamSectionCreate {
	_c.mutation.SetExamID(id)
	return _c
}

// SetExam sets the "exam" edge to the Exam entity.
func (_c *ExamSectionCreate) SetExam(v *Exam) *ExamSectionCreate {
	return _c.SetExamID(v.ID)
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_c *ExamSectionCreate) AddQuestionIDs(ids ...int) *ExamSectionCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_c *ExamSectionCreate) AddQuestions(v ...*Question) *ExamSectionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// Mutation returns the ExamSectionMutation object of the builder.
func (_c *ExamSectionCreate) Mutation() *ExamSectionMutation {
	return _c.mutation
}

// Save creates the ExamSection in the database.
func (_c *ExamSectionCreate) Save(ctx context.Context) (*ExamSection, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExamSectionCreate) SaveX(ctx context.Context) *ExamSection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamSectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamSectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExamSectionCreate) defaults() {
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		v := examsection.DefaultDurationSeconds
		_c.mutation.SetDurationSeconds(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExamSectionCreate) check() error {
	if _, ok := _c.mutation.SectionCode(); !ok {
		return &ValidationError{Name: "section_code", err: errors.New(`ent: missing required field "ExamSection.section_code"`)}
	}
	if v, ok := _c.mutation.SectionCode(); ok {
		if err := examsection.SectionCodeValidator(v); err != nil {
			return &ValidationError{Name: "section_code", err: fmt.Errorf(`ent: validator failed for field "ExamSection.section_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Order(); !ok {
		return &ValidationError{Name: "order", err: errors.New(`ent: missing required field "ExamSection.order"`)}
	}
	if v, ok := _c.mutation.Order(); ok {
		if err := examsection.OrderValidator(v); err != nil {
			return &ValidationError{Name: "order", err: fmt.Errorf(`ent: validator failed for field "ExamSection.order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		return &ValidationError{Name: "duration_seconds", err: errors.New(`ent: missing required field "ExamSection.duration_seconds"`)}
	}
	if v, ok := _c.mutation.DurationSeconds(); ok {
		if err := examsection.DurationSecondsValidator(v); err != nil {
			return &ValidationError{Name: "duration_seconds", err: fmt.Errorf(`ent: validator failed for field "ExamSection.duration_seconds": %w`, err)}
		}
	}
	if len(_c.mutation.ExamIDs()) == 0 {
		return &ValidationError{Name: "exam", err: errors.New(`ent: missing required edge "ExamSection.exam"`)}
	}
	return nil
}

func (_c *ExamSectionCreate) sqlSave(ctx context.Context) (*ExamSection, error) {
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

func (_c *ExamSectionCreate) createSpec() (*ExamSection, *sqlgraph.CreateSpec) {
	var (
		_node = &ExamSection{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(examsection.Table, sqlgraph.NewFieldSpec(examsection.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SectionCode(); ok {
		_spec.SetField(examsection.FieldSectionCode, field.TypeEnum, value)
		_node.SectionCode = value
	}
	if value, ok := _c.mutation.Order(); ok {
		_spec.SetField(examsection.FieldOrder, field.TypeInt, value)
		_node.Order = value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(examsection.FieldDurationSeconds, field.TypeInt, value)
		_node.DurationSeconds = value
	}
	if nodes := _c.mutation.ExamIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   examsection.ExamTable,
			Columns: []string{examsection.ExamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exam.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.exam_sections = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   examsection.QuestionsTable,
			Columns: []string{examsection.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExamSectionCreateBulk is the builder for creating many ExamSection entities in bulk.
type ExamSectionCreateBulk struct {
	config
	err      error
	builders []*ExamSectionCreate
}

// Save creates the ExamSection entities in the database.
func (_c *ExamSectionCreateBulk) Save(ctx context.Context) ([]*ExamSection, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExamSection, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamSectionMutation)
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
func (_c *ExamSectionCreateBulk) SaveX(ctx context.Context) []*ExamSection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamSectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamSectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
