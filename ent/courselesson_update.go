// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/visaetude/prepcore/ent/asset"
	"github.com/visaetude/prepcore/ent/courseexercise"
	"github.com/visaetude/prepcore/ent/courselesson"
	"github.com/visaetude/prepcore/ent/exam"
	"github.com/visaetude/prepcore/ent/predicate"
)

// CourseLessonUpdate is the builder for updating CourseLesson entities.
type CourseLessonUpdate struct {
	config
	hooks    []Hook
	mutation *CourseLessonMutation
}

// Where appends a list predicates to the CourseLessonUpdate builder.
func (_u *CourseLessonUpdate) Where(ps ...predicate.CourseLesson) *CourseLessonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CourseLessonUpdate) SetTitle(v string) *CourseLessonUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseLessonUpdate) SetNillableTitle(v *string) *CourseLessonUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *CourseLessonUpdate) SetSlug(v string) *CourseLessonUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *CourseLessonUpdate) SetNillableSlug(v *string) *CourseLessonUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetSection sets the "section" field.
func (_u *CourseLessonUpdate) SetSection(v courselesson.Section) *CourseLessonUpdate {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *CourseLessonUpdate) SetNillableSection(v *courselesson.Section) *CourseLessonUpdate {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *CourseLessonUpdate) SetLevel(v courselesson.Level) *CourseLessonUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *CourseLessonUpdate) SetNillableLevel(v *courselesson.Level) *CourseLessonUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetLocale sets the "locale" field.
func (_u *CourseLessonUpdate) SetLocale(v string) *CourseLessonUpdate {
	_u.mutation.SetLocale(v)
	return _u
}

// SetNillableLocale sets the "locale" field if the given value is not nil.
func (_u *CourseLessonUpdate) SetNillableLocale(v *string) *CourseLessonUpdate {
	if v != nil {
		_u.SetLocale(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *CourseLessonUpdate) SetContent(v string) *CourseLessonUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CourseLessonUpdate) SetNillableContent(v *string) *CourseLessonUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetOrder sets the "order" field.
func (_u *CourseLessonUpdate) SetOrder(v int) *CourseLessonUpdate {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *CourseLessonUpdate) SetNillableOrder(v *int) *CourseLessonUpdate {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *CourseLessonUpdate) AddOrder(v int) *CourseLessonUpdate {
	_u.mutation.AddOrder(v)
	return _u
}

// SetPublished sets the "published" field.
func (_u *CourseLessonUpdate) SetPublished(v bool) *CourseLessonUpdate {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *CourseLessonUpdate) SetNillablePublished(v *bool) *CourseLessonUpdate {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// AddExamIDs adds the "exams" edge to the Exam entity by IDs.
func (_u *CourseLessonUpdate) AddExamIDs(ids ...int) *CourseLessonUpdate {
	_u.mutation.AddExamIDs(ids...)
	return _u
}

// AddExams adds the "exams" edges to the Exam entity.
func (_u *CourseLessonUpdate) AddExams(v ...*Exam) *CourseLessonUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExamIDs(ids...)
}

// AddExerciseIDs adds the "exercises" edge to the CourseExercise entity by IDs.
func (_u *CourseLessonUpdate) AddExerciseIDs(ids ...int) *CourseLessonUpdate {
	_u.mutation.AddExerciseIDs(ids...)
	return _u
}

// AddExercises adds the "exercises" edges to the CourseExercise entity.
func (_u *CourseLessonUpdate) AddExercises(v ...*CourseExercise) *CourseLessonUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExerciseIDs(ids...)
}

// SetAssetID sets the "asset" edge to the Asset entity by ID.
func (_u *CourseLessonUpdate) SetAssetID(id int) *CourseLessonUpdate {
	_u.mutation.SetAssetID(id)
	return _u
}

// SetNillableAssetID sets the "asset" edge to the Asset entity by ID if the given value is not nil.
func (_u *CourseLessonUpdate) SetNillableAssetID(id *int) *CourseLessonUpdate {
	if id != nil {
		_u = _u.SetAssetID(*id)
	}
	return _u
}

// SetAsset sets the "asset" edge to the Asset entity.
func (_u *CourseLessonUpdate) SetAsset(v *Asset) *CourseLessonUpdate {
	return _u.SetAssetID(v.ID)
}

// Mutation returns the CourseLessonMutation object of the builder.
func (_u *CourseLessonUpdate) Mutation() *CourseLessonMutation {
	return _u.mutation
}

// ClearExams clears all "exams" edges to the Exam entity.
func (_u *CourseLessonUpdate) ClearExams() *CourseLessonUpdate {
	_u.mutation.ClearExams()
	return _u
}

// RemoveExamIDs removes the "exams" edge to Exam entities by IDs.
func (_u *CourseLessonUpdate) RemoveExamIDs(ids ...int) *CourseLessonUpdate {
	_u.mutation.RemoveExamIDs(ids...)
	return _u
}

// RemoveExams removes "exams" edges to Exam entities.
func (_u *CourseLessonUpdate) RemoveExams(v ...*Exam) *CourseLessonUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExamIDs(ids...)
}

// ClearExercises clears all "exercises" edges to the CourseExercise entity.
func (_u *CourseLessonUpdate) ClearExercises() *CourseLessonUpdate {
	_u.mutation.ClearExercises()
	return _u
}

// RemoveExerciseIDs removes the "exercises" edge to CourseExercise entities by IDs.
func (_u *CourseLessonUpdate) RemoveExerciseIDs(ids ...int) *CourseLessonUpdate {
	_u.mutation.RemoveExerciseIDs(ids...)
	return _u
}

// RemoveExercises removes "exercises" edges to CourseExercise entities.
func (_u *CourseLessonUpdate) RemoveExercises(v ...*CourseExercise) *CourseLessonUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExerciseIDs(ids...)
}

// ClearAsset clears the "asset" edge to the Asset entity.
func (_u *CourseLessonUpdate) ClearAsset() *CourseLessonUpdate {
	_u.mutation.ClearAsset()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseLessonUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseLessonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseLessonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseLessonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseLessonUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := courselesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CourseLesson.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := courselesson.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "CourseLesson.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Section(); ok {
		if err := courselesson.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "CourseLesson.section": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := courselesson.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "CourseLesson.level": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseLessonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(courselesson.Table, courselesson.Columns, sqlgraph.NewFieldSpec(courselesson.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(courselesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(courselesson.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(courselesson.FieldSection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(courselesson.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Locale(); ok {
		_spec.SetField(courselesson.FieldLocale, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(courselesson.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(courselesson.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(courselesson.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(courselesson.FieldPublished, field.TypeBool, value)
	}
	if _u.mutation.ExamsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   courselesson.ExamsTable,
			Columns: courselesson.ExamsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exam.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExamsIDs(); len(nodes) > 0 && !_u.mutation.ExamsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   courselesson.ExamsTable,
			Columns: courselesson.ExamsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exam.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExamsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   courselesson.ExamsTable,
			Columns: courselesson.ExamsPrimaryKey,
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
	if _u.mutation.ExercisesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   courselesson.ExercisesTable,
			Columns: []string{courselesson.ExercisesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courseexercise.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExercisesIDs(); len(nodes) > 0 && !_u.mutation.ExercisesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   courselesson.ExercisesTable,
			Columns: []string{courselesson.ExercisesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courseexercise.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExercisesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   courselesson.ExercisesTable,
			Columns: []string{courselesson.ExercisesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courseexercise.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssetCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   courselesson.AssetTable,
			Columns: []string{courselesson.AssetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(asset.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   courselesson.AssetTable,
			Columns: []string{courselesson.AssetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(asset.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courselesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseLessonUpdateOne is the builder for updating a single CourseLesson entity.
type CourseLessonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseLessonMutation
}

// SetTitle sets the "title" field.
func (_u *CourseLessonUpdateOne) SetTitle(v string) *CourseLessonUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseLessonUpdateOne) SetNillableTitle(v *string) *CourseLessonUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *CourseLessonUpdateOne) SetSlug(v string) *CourseLessonUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *CourseLessonUpdateOne) SetNillableSlug(v *string) *CourseLessonUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetSection sets the "section" field.
func (_u *CourseLessonUpdateOne) SetSection(v courselesson.Section) *CourseLessonUpdateOne {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *CourseLessonUpdateOne) SetNillableSection(v *courselesson.Section) *CourseLessonUpdateOne {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *CourseLessonUpdateOne) SetLevel(v courselesson.Level) *CourseLessonUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *CourseLessonUpdateOne) SetNillableLevel(v *courselesson.Level) *CourseLessonUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetLocale sets the "locale" field.
func (_u *CourseLessonUpdateOne) SetLocale(v string) *CourseLessonUpdateOne {
	_u.mutation.SetLocale(v)
	return _u
}

// SetNillableLocale sets the "locale" field if the given value is not nil.
func (_u *CourseLessonUpdateOne) SetNillableLocale(v *string) *CourseLessonUpdateOne {
	if v != nil {
		_u.SetLocale(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *CourseLessonUpdateOne) SetContent(v string) *CourseLessonUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CourseLessonUpdateOne) SetNillableContent(v *string) *CourseLessonUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetOrder sets the "order" field.
func (_u *CourseLessonUpdateOne) SetOrder(v int) *CourseLessonUpdateOne {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *CourseLessonUpdateOne) SetNillableOrder(v *int) *CourseLessonUpdateOne {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *CourseLessonUpdateOne) AddOrder(v int) *CourseLessonUpdateOne {
	_u.mutation.AddOrder(v)
	return _u
}

// SetPublished sets the "published" field.
func (_u *CourseLessonUpdateOne) SetPublished(v bool) *CourseLessonUpdateOne {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *CourseLessonUpdateOne) SetNillablePublished(v *bool) *CourseLessonUpdateOne {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// AddExamIDs adds the "exams" edge to the Exam entity by IDs.
func (_u *CourseLessonUpdateOne) AddExamIDs(ids ...int) *CourseLessonUpdateOne {
	_u.mutation.AddExamIDs(ids...)
	return _u
}

// AddExams adds the "exams" edges to the Exam entity.
func (_u *CourseLessonUpdateOne) AddExams(v ...*Exam) *CourseLessonUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExamIDs(ids...)
}

// AddExerciseIDs adds the "exercises" edge to the CourseExercise entity by IDs.
func (_u *CourseLessonUpdateOne) AddExerciseIDs(ids ...int) *CourseLessonUpdateOne {
	_u.mutation.AddExerciseIDs(ids...)
	return _u
}

// AddExercises adds the "exercises" edges to the CourseExercise entity.
func (_u *CourseLessonUpdateOne) AddExercises(v ...*CourseExercise) *CourseLessonUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExerciseIDs(ids...)
}

// SetAssetID sets the "asset" edge to the Asset entity by ID.
func (_u *CourseLessonUpdateOne) SetAssetID(id int) *CourseLessonUpdateOne {
	_u.mutation.SetAssetID(id)
	return _u
}

// SetNillableAssetID sets the "asset" edge to the Asset entity by ID if the given value is not nil.
func (_u *CourseLessonUpdateOne) SetNillableAssetID(id *int) *CourseLessonUpdateOne {
	if id != nil {
		_u = _u.SetAssetID(*id)
	}
	return _u
}

// SetAsset sets the "asset" edge to the Asset entity.
func (_u *CourseLessonUpdateOne) SetAsset(v *Asset) *CourseLessonUpdateOne {
	return _u.SetAssetID(v.ID)
}

// Mutation returns the CourseLessonMutation object of the builder.
func (_u *CourseLessonUpdateOne) Mutation() *CourseLessonMutation {
	return _u.mutation
}

// ClearExams clears all "exams" edges to the Exam entity.
func (_u *CourseLessonUpdateOne) ClearExams() *CourseLessonUpdateOne {
	_u.mutation.ClearExams()
	return _u
}

// RemoveExamIDs removes the "exams" edge to Exam entities by IDs.
func (_u *CourseLessonUpdateOne) RemoveExamIDs(ids ...int) *CourseLessonUpdateOne {
	_u.mutation.RemoveExamIDs(ids...)
	return _u
}

// RemoveExams removes "exams" edges to Exam entities.
func (_u *CourseLessonUpdateOne) RemoveExams(v ...*Exam) *CourseLessonUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExamIDs(ids...)
}

// ClearExercises clears all "exercises" edges to the CourseExercise entity.
func (_u *CourseLessonUpdateOne) ClearExercises() *CourseLessonUpdateOne {
	_u.mutation.ClearExercises()
	return _u
}

// RemoveExerciseIDs removes the "exercises" edge to CourseExercise entities by IDs.
func (_u *CourseLessonUpdateOne) RemoveExerciseIDs(ids ...int) *CourseLessonUpdateOne {
	_u.mutation.RemoveExerciseIDs(ids...)
	return _u
}

// RemoveExercises removes "exercises" edges to CourseExercise entities.
func (_u *CourseLessonUpdateOne) RemoveExercises(v ...*CourseExercise) *CourseLessonUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExerciseIDs(ids...)
}

// ClearAsset clears the "asset" edge to the Asset entity.
func (_u *CourseLessonUpdateOne) ClearAsset() *CourseLessonUpdateOne {
	_u.mutation.ClearAsset()
	return _u
}

// Where appends a list predicates to the CourseLessonUpdate builder.
func (_u *CourseLessonUpdateOne) Where(ps ...predicate.CourseLesson) *CourseLessonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseLessonUpdateOne) Select(field string, fields ...string) *CourseLessonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CourseLesson entity.
func (_u *CourseLessonUpdateOne) Save(ctx context.Context) (*CourseLesson, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseLessonUpdateOne) SaveX(ctx context.Context) *CourseLesson {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseLessonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseLessonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseLessonUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := courselesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CourseLesson.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := courselesson.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "CourseLesson.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Section(); ok {
		if err := courselesson.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "CourseLesson.section": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := courselesson.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "CourseLesson.level": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseLessonUpdateOne) sqlSave(ctx context.Context) (_node *CourseLesson, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(courselesson.Table, courselesson.Columns, sqlgraph.NewFieldSpec(courselesson.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CourseLesson.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, courselesson.FieldID)
		for _, f := range fields {
			if !courselesson.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != courselesson.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(courselesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(courselesson.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(courselesson.FieldSection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(courselesson.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Locale(); ok {
		_spec.SetField(courselesson.FieldLocale, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(courselesson.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(courselesson.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(courselesson.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(courselesson.FieldPublished, field.TypeBool, value)
	}
	if _u.mutation.ExamsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   courselesson.ExamsTable,
			Columns: courselesson.ExamsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exam.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExamsIDs(); len(nodes) > 0 && !_u.mutation.ExamsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   courselesson.ExamsTable,
			Columns: courselesson.ExamsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exam.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExamsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   courselesson.ExamsTable,
			Columns: courselesson.ExamsPrimaryKey,
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
	if _u.mutation.ExercisesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   courselesson.ExercisesTable,
			Columns: []string{courselesson.ExercisesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courseexercise.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExercisesIDs(); len(nodes) > 0 && !_u.mutation.ExercisesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   courselesson.ExercisesTable,
			Columns: []string{courselesson.ExercisesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courseexercise.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExercisesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   courselesson.ExercisesTable,
			Columns: []string{courselesson.ExercisesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courseexercise.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssetCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   courselesson.AssetTable,
			Columns: []string{courselesson.AssetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(asset.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   courselesson.AssetTable,
			Columns: []string{courselesson.AssetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(asset.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CourseLesson{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courselesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
