// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/visaetude/prepcore/ent/courselesson"
	"github.com/visaetude/prepcore/ent/exam"
	"github.com/visaetude/prepcore/ent/examsection"
	"github.com/visaetude/prepcore/ent/predicate"
)

// ExamUpdate is the builder for updating Exam entities.
type ExamUpdate struct {
	config
	hooks    []Hook
	mutation *ExamMutation
}

// Where appends a list predicates to the ExamUpdate builder.
func (_u *ExamUpdate) Where(ps ...predicate.Exam) *ExamUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCode sets the "code" field.
func (_u *ExamUpdate) SetCode(v string) *ExamUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableCode(v *string) *ExamUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ExamUpdate) SetName(v string) *ExamUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableName(v *string) *ExamUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ExamUpdate) SetLanguage(v string) *ExamUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ExamUpdate) SetNillableLanguage(v *string) *ExamUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// AddSectionIDs adds the "sections" edge to the ExamSection entity by IDs.
func (_u *ExamUpdate) AddSectionIDs(ids ...int) *ExamUpdate {
	_u.mutation.AddSectionIDs(ids...)
	return _u
}

// AddSections adds the "sections" edges to the ExamSection entity.
func (_u *ExamUpdate) AddSections(v ...*ExamSection) *ExamUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSectionIDs(ids...)
}

// AddLessonIDs adds the "lessons" edge to the CourseLesson entity by IDs.
func (_u *ExamUpdate) AddLessonIDs(ids ...int) *ExamUpdate {
	_u.mutation.AddLessonIDs(ids...)
	return _u
}

// AddLessons adds the "lessons" edges to the CourseLesson entity.
func (_u *ExamUpdate) AddLessons(v ...*CourseLesson) *ExamUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLessonIDs(ids...)
}

// Mutation returns the ExamMutation object of the builder.
func (_u *ExamUpdate) Mutation() *ExamMutation {
	return _u.mutation
}

// ClearSections clears all "sections" edges to the ExamSection entity.
func (_u *ExamUpdate) ClearSections() *ExamUpdate {
	_u.mutation.ClearSections()
	return _u
}

// RemoveSectionIDs removes the "sections" edge to ExamSection entities by IDs.
func (_u *ExamUpdate) RemoveSectionIDs(ids ...int) *ExamUpdate {
	_u.mutation.RemoveSectionIDs(ids...)
	return _u
}

// RemoveSections removes "sections" edges to ExamSection entities.
func (_u *ExamUpdate) RemoveSections(v ...*ExamSection) *ExamUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSectionIDs(ids...)
}

// ClearLessons clears all "lessons" edges to the CourseLesson entity.
func (_u *ExamUpdate) ClearLessons() *ExamUpdate {
	_u.mutation.ClearLessons()
	return _u
}

// RemoveLessonIDs removes the "lessons" edge to CourseLesson entities by IDs.
func (_u *ExamUpdate) RemoveLessonIDs(ids ...int) *ExamUpdate {
	_u.mutation.RemoveLessonIDs(ids...)
	return _u
}

// RemoveLessons removes "lessons" edges to CourseLesson entities.
func (_u *ExamUpdate) RemoveLessons(v ...*CourseLesson) *ExamUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLessonIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := exam.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Exam.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := exam.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Exam.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exam.Table, exam.Columns, sqlgraph.NewFieldSpec(exam.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(exam.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(exam.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(exam.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.SectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   exam.SectionsTable,
			Columns: []string{exam.SectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(examsection.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSectionsIDs(); len(nodes) > 0 && !_u.mutation.SectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   exam.SectionsTable,
			Columns: []string{exam.SectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(examsection.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   exam.SectionsTable,
			Columns: []string{exam.SectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(examsection.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LessonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   exam.LessonsTable,
			Columns: exam.LessonsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courselesson.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLessonsIDs(); len(nodes) > 0 && !_u.mutation.LessonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   exam.LessonsTable,
			Columns: exam.LessonsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courselesson.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   exam.LessonsTable,
			Columns: exam.LessonsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courselesson.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exam.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamUpdateOne is the builder for updating a single Exam entity.
type ExamUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamMutation
}

// SetCode sets the "code" field.
func (_u *ExamUpdateOne) SetCode(v string) *ExamUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableCode(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ExamUpdateOne) SetName(v string) *ExamUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableName(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ExamUpdateOne) SetLanguage(v string) *ExamUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ExamUpdateOne) SetNillableLanguage(v *string) *ExamUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// AddSectionIDs adds the "sections" edge to the ExamSection entity by IDs.
func (_u *ExamUpdateOne) AddSectionIDs(ids ...int) *ExamUpdateOne {
	_u.mutation.AddSectionIDs(ids...)
	return _u
}

// AddSections adds the "sections" edges to the ExamSection entity.
func (_u *ExamUpdateOne) AddSections(v ...*ExamSection) *ExamUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSectionIDs(ids...)
}

// AddLessonIDs adds the "lessons" edge to the CourseLesson entity by IDs.
func (_u *ExamUpdateOne) AddLessonIDs(ids ...int) *ExamUpdateOne {
	_u.mutation.AddLessonIDs(ids...)
	return _u
}

// AddLessons adds the "lessons" edges to the CourseLesson entity.
func (_u *ExamUpdateOne) AddLessons(v ...*CourseLesson) *ExamUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLessonIDs(ids...)
}

// Mutation returns the ExamMutation object of the builder.
func (_u *ExamUpdateOne) Mutation() *ExamMutation {
	return _u.mutation
}

// ClearSections clears all "sections" edges to the ExamSection entity.
func (_u *ExamUpdateOne) ClearSections() *ExamUpdateOne {
	_u.mutation.ClearSections()
	return _u
}

// RemoveSectionIDs removes the "sections" edge to ExamSection entities by IDs.
func (_u *ExamUpdateOne) RemoveSectionIDs(ids ...int) *ExamUpdateOne {
	_u.mutation.RemoveSectionIDs(ids...)
	return _u
}

// RemoveSections removes "sections" edges to ExamSection entities.
func (_u *ExamUpdateOne) RemoveSections(v ...*ExamSection) *ExamUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSectionIDs(ids...)
}

// ClearLessons clears all "lessons" edges to the CourseLesson entity.
func (_u *ExamUpdateOne) ClearLessons() *ExamUpdateOne {
	_u.mutation.ClearLessons()
	return _u
}

// RemoveLessonIDs removes the "lessons" edge to CourseLesson entities by IDs.
func (_u *ExamUpdateOne) RemoveLessonIDs(ids ...int) *ExamUpdateOne {
	_u.mutation.RemoveLessonIDs(ids...)
	return _u
}

// RemoveLessons removes "lessons" edges to CourseLesson entities.
func (_u *ExamUpdateOne) RemoveLessons(v ...*CourseLesson) *ExamUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLessonIDs(ids...)
}

// Where appends a list predicates to the ExamUpdate builder.
func (_u *ExamUpdateOne) Where(ps ...predicate.Exam) *ExamUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamUpdateOne) Select(field string, fields ...string) *ExamUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Exam entity.
func (_u *ExamUpdateOne) Save(ctx context.Context) (*Exam, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamUpdateOne) SaveX(ctx context.Context) *Exam {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := exam.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Exam.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := exam.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Exam.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamUpdateOne) sqlSave(ctx context.Context) (_node *Exam, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exam.Table, exam.Columns, sqlgraph.NewFieldSpec(exam.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Exam.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exam.FieldID)
		for _, f := range fields {
			if !exam.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != exam.FieldID {
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
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(exam.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(exam.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(exam.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.SectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   exam.SectionsTable,
			Columns: []string{exam.SectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(examsection.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSectionsIDs(); len(nodes) > 0 && !_u.mutation.SectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   exam.SectionsTable,
			Columns: []string{exam.SectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(examsection.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   exam.SectionsTable,
			Columns: []string{exam.SectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(examsection.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LessonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   exam.LessonsTable,
			Columns: exam.LessonsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courselesson.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLessonsIDs(); len(nodes) > 0 && !_u.mutation.LessonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   exam.LessonsTable,
			Columns: exam.LessonsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courselesson.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   exam.LessonsTable,
			Columns: exam.LessonsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courselesson.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Exam{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exam.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
