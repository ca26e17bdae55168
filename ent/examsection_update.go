// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/visaetude/prepcore/ent/exam"
	"github.com/visaetude/prepcore/ent/examsection"
	"github.com/visaetude/prepcore/ent/predicate"
	"github.com/visaetude/prepcore/ent/question"
)

// ExamSectionUpdate is the builder for updating ExamSection entities.
type ExamSectionUpdate struct {
	config
	hooks    []Hook
	mutation *ExamSectionMutation
}

// Where appends a list predicates to the ExamSectionUpdate builder.
func (_u *ExamSectionUpdate) Where(ps ...predicate.ExamSection) *ExamSectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSectionCode sets the "section_code" field.
func (_u *ExamSectionUpdate) SetSectionCode(v examsection.SectionCode) *ExamSectionUpdate {
	_u.mutation.SetSectionCode(v)
	return _u
}

// SetNillableSectionCode sets the "section_code" field if the given value is not nil.
func (_u *ExamSectionUpdate) SetNillableSectionCode(v *examsection.SectionCode) *ExamSectionUpdate {
	if v != nil {
		_u.SetSectionCode(*v)
	}
	return _u
}

// SetOrder sets the "order" field.
func (_u *ExamSectionUpdate) SetOrder(v int) *ExamSectionUpdate {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *ExamSectionUpdate) SetNillableOrder(v *int) *ExamSectionUpdate {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *ExamSectionUpdate) AddOrder(v int) *ExamSectionUpdate {
	_u.mutation.AddOrder(v)
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *ExamSectionUpdate) SetDurationSeconds(v int) *ExamSectionUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *ExamSectionUpdate) SetNillableDurationSeconds(v *int) *ExamSectionUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *ExamSectionUpdate) AddDurationSeconds(v int) *ExamSectionUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetExamID sets the "exam" edge to the Exam entity by ID.
func (_u *ExamSectionUpdate) SetExamID(id int) *ExamSectionUpdate {
	_u.mutation.SetExamID(id)
	return _u
}

// SetExam sets the "exam" edge to the Exam entity.
func (_u *ExamSectionUpdate) SetExam(v *Exam) *ExamSectionUpdate {
	return _u.SetExamID(v.ID)
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *ExamSectionUpdate) AddQuestionIDs(ids ...int) *ExamSectionUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *ExamSectionUpdate) AddQuestions(v ...*Question) *ExamSectionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the ExamSectionMutation object of the builder.
func (_u *ExamSectionUpdate) Mutation() *ExamSectionMutation {
	return _u.mutation
}

// ClearExam clears the "exam" edge to the Exam entity.
func (_u *ExamSectionUpdate) ClearExam() *ExamSectionUpdate {
	_u.mutation.ClearExam()
	return _u
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *ExamSectionUpdate) ClearQuestions() *ExamSectionUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *ExamSectionUpdate) RemoveQuestionIDs(ids ...int) *ExamSectionUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *ExamSectionUpdate) RemoveQuestions(v ...*Question) *ExamSectionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamSectionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamSectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamSectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamSectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamSectionUpdate) check() error {
	if v, ok := _u.mutation.SectionCode(); ok {
		if err := examsection.SectionCodeValidator(v); err != nil {
			return &ValidationError{Name: "section_code", err: fmt.Errorf(`ent: validator failed for field "ExamSection.section_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Order(); ok {
		if err := examsection.OrderValidator(v); err != nil {
			return &ValidationError{Name: "order", err: fmt.Errorf(`ent: validator failed for field "ExamSection.order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationSeconds(); ok {
		if err := examsection.DurationSecondsValidator(v); err != nil {
			return &ValidationError{Name: "duration_seconds", err: fmt.Errorf(`ent: validator failed for field "ExamSection.duration_seconds": %w`, err)}
		}
	}
	if _u.mutation.ExamCleared() && len(_u.mutation.ExamIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExamSection.exam"`)
	}
	return nil
}

func (_u *ExamSectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examsection.Table, examsection.Columns, sqlgraph.NewFieldSpec(examsection.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SectionCode(); ok {
		_spec.SetField(examsection.FieldSectionCode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(examsection.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(examsection.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(examsection.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(examsection.FieldDurationSeconds, field.TypeInt, value)
	}
	if _u.mutation.ExamCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExamIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examsection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamSectionUpdateOne is the builder for updating a single ExamSection entity.
type ExamSectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamSectionMutation
}

// SetSectionCode sets the "section_code" field.
func (_u *ExamSectionUpdateOne) SetSectionCode(v examsection.SectionCode) *ExamSectionUpdateOne {
	_u.mutation.SetSectionCode(v)
	return _u
}

// SetNillableSectionCode sets the "section_code" field if the given value is not nil.
func (_u *ExamSectionUpdateOne) SetNillableSectionCode(v *examsection.SectionCode) *ExamSectionUpdateOne {
	if v != nil {
		_u.SetSectionCode(*v)
	}
	return _u
}

// SetOrder sets the "order" field.
func (_u *ExamSectionUpdateOne) SetOrder(v int) *ExamSectionUpdateOne {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *ExamSectionUpdateOne) SetNillableOrder(v *int) *ExamSectionUpdateOne {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *ExamSectionUpdateOne) AddOrder(v int) *ExamSectionUpdateOne {
	_u.mutation.AddOrder(v)
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *ExamSectionUpdateOne) SetDurationSeconds(v int) *ExamSectionUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *ExamSectionUpdateOne) SetNillableDurationSeconds(v *int) *ExamSectionUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *ExamSectionUpdateOne) AddDurationSeconds(v int) *ExamSectionUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetExamID sets the "exam" edge to the Exam entity by ID.
func (_u *ExamSectionUpdateOne) SetExamID(id int) *ExamSectionUpdateOne {
	_u.mutation.SetExamID(id)
	return _u
}

// SetExam sets the "exam" edge to the Exam entity.
func (_u *ExamSectionUpdateOne) SetExam(v *Exam) *ExamSectionUpdateOne {
	return _u.SetExamID(v.ID)
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *ExamSectionUpdateOne) AddQuestionIDs(ids ...int) *ExamSectionUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *ExamSectionUpdateOne) AddQuestions(v ...*Question) *ExamSectionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the ExamSectionMutation object of the builder.
func (_u *ExamSectionUpdateOne) Mutation() *ExamSectionMutation {
	return _u.mutation
}

// ClearExam clears the "exam" edge to the Exam entity.
func (_u *ExamSectionUpdateOne) ClearExam() *ExamSectionUpdateOne {
	_u.mutation.ClearExam()
	return _u
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *ExamSectionUpdateOne) ClearQuestions() *ExamSectionUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *ExamSectionUpdateOne) RemoveQuestionIDs(ids ...int) *ExamSectionUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *ExamSectionUpdateOne) RemoveQuestions(v ...*Question) *ExamSectionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Where appends a list predicates to the ExamSectionUpdate builder.
func (_u *ExamSectionUpdateOne) Where(ps ...predicate.ExamSection) *ExamSectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamSectionUpdateOne) Select(field string, fields ...string) *ExamSectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExamSection entity.
func (_u *ExamSectionUpdateOne) Save(ctx context.Context) (*ExamSection, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamSectionUpdateOne) SaveX(ctx context.Context) *ExamSection {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamSectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamSectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamSectionUpdateOne) check() error {
	if v, ok := _u.mutation.SectionCode(); ok {
		if err := examsection.SectionCodeValidator(v); err != nil {
			return &ValidationError{Name: "section_code", err: fmt.Errorf(`ent: validator failed for field "ExamSection.section_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Order(); ok {
		if err := examsection.OrderValidator(v); err != nil {
			return &ValidationError{Name: "order", err: fmt.Errorf(`ent: validator failed for field "ExamSection.order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationSeconds(); ok {
		if err := examsection.DurationSecondsValidator(v); err != nil {
			return &ValidationError{Name: "duration_seconds", err: fmt.Errorf(`ent: validator failed for field "ExamSection.duration_seconds": %w`, err)}
		}
	}
	if _u.mutation.ExamCleared() && len(_u.mutation.ExamIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExamSection.exam"`)
	}
	return nil
}

func (_u *ExamSectionUpdateOne) sqlSave(ctx context.Context) (_node *ExamSection, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examsection.Table, examsection.Columns, sqlgraph.NewFieldSpec(examsection.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExamSection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examsection.FieldID)
		for _, f := range fields {
			if !examsection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != examsection.FieldID {
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
		_spec.SetField(examsection.FieldSectionCode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(examsection.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(examsection.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(examsection.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(examsection.FieldDurationSeconds, field.TypeInt, value)
	}
	if _u.mutation.ExamCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExamIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExamSection{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examsection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
