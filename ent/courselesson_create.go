// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/visaetude/prepcore/ent/asset"
	"github.com/visaetude/prepcore/ent/courseexercise"
	"github.com/visaetude/prepcore/ent/courselesson"
	"github.com/visaetude/prepcore/ent/exam"
)

// CourseLessonCreate is the builder for creating a CourseLesson entity.
type CourseLessonCreate struct {
	config
	mutation *CourseLessonMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *CourseLessonCreate) SetTitle(v string) *CourseLessonCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *CourseLessonCreate) SetSlug(v string) *CourseLessonCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetSection sets the "section" field.
func (_c *CourseLessonCreate) SetSection(v courselesson.Section) *CourseLessonCreate {
	_c.mutation.SetSection(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *CourseLessonCreate) SetLevel(v courselesson.Level) *CourseLessonCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetLocale sets the "locale" field.
func (_c *CourseLessonCreate) SetLocale(v string) *CourseLessonCreate {
	_c.mutation.SetLocale(v)
	return _c
}

// SetNillableLocale sets the "locale" field if the given value is not nil.
func (_c *CourseLessonCreate) SetNillableLocale(v *string) *CourseLessonCreate {
	if v != nil {
		_c.SetLocale(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *CourseLessonCreate) SetContent(v string) *CourseLessonCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *CourseLessonCreate) SetNillableContent(v *string) *CourseLessonCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetOrder sets the "order" field.
func (_c *CourseLessonCreate) SetOrder(v int) *CourseLessonCreate {
	_c.mutation.SetOrder(v)
	return _c
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_c *CourseLessonCreate) SetNillableOrder(v *int) *CourseLessonCreate {
	if v != nil {
		_c.SetOrder(*v)
	}
	return _c
}

// SetPublished sets the "published" field.
func (_c *CourseLessonCreate) SetPublished(v bool) *CourseLessonCreate {
	_c.mutation.SetPublished(v)
	return _c
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_c *CourseLessonCreate) SetNillablePublished(v *bool) *CourseLessonCreate {
	if v != nil {
		_c.SetPublished(*v)
	}
	return _c
}

// AddExamIDs adds the "exams" edge to the Exam entity by IDs.
func (_c *CourseLessonCreate) AddExamIDs(ids ...int) *CourseLessonCreate {
	_c.mutation.AddExamIDs(ids...)
	return _c
}

// AddExams adds the "exams" edges to the Exam entity.
func (_c *CourseLessonCreate) AddExams(v ...*Exam) *CourseLessonCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExamIDs(ids...)
}

// AddExerciseIDs adds the "exercises" edge to the CourseExercise entity by IDs.
func (_c *CourseLessonCreate) AddExerciseIDs(ids ...int) *CourseLessonCreate {
	_c.mutation.AddExerciseIDs(ids...)
	return _c
}

// AddExercises adds the "exercises" edges to the CourseExercise entity.
func (_c *CourseLessonCreate) AddExercises(v ...*CourseExercise) *CourseLessonCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExerciseIDs(ids...)
}

// SetAssetID sets the "asset" edge to the Asset entity by ID.
func (_c *CourseLessonCreate) SetAssetID(id int) *CourseLessonCreate {
	_c.mutation.SetAssetID(id)
	return _c
}

// SetNillableAssetID sets the "asset" edge to the Asset entity by ID if the given value is not nil.
func (_c *CourseLessonCreate) SetNillableAssetID(id *int) *CourseLessonCreate {
	if id != nil {
		_c = _c.SetAssetID(*id)
	}
	return _c
}

// SetAsset sets the "asset" edge to the Asset entity.
func (_c *CourseLessonCreate) SetAsset(v *Asset) *CourseLessonCreate {
	return _c.SetAssetID(v.ID)
}

// Mutation returns the CourseLessonMutation object of the builder.
func (_c *CourseLessonCreate) Mutation() *CourseLessonMutation {
	return _c.mutation
}

// Save creates the CourseLesson in the database.
func (_c *CourseLessonCreate) Save(ctx context.Context) (*CourseLesson, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourseLessonCreate) SaveX(ctx context.Context) *CourseLesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseLessonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseLessonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourseLessonCreate) defaults() {
	if _, ok := _c.mutation.Locale(); !ok {
		v := courselesson.DefaultLocale
		_c.mutation.SetLocale(v)
	}
	if _, ok := _c.mutation.Content(); !ok {
		v := courselesson.DefaultContent
		_c.mutation.SetContent(v)
	}
	if _, ok := _c.mutation.Order(); !ok {
		v := courselesson.DefaultOrder
		_c.mutation.SetOrder(v)
	}
	if _, ok := _c.mutation.Published(); !ok {
		v := courselesson.DefaultPublished
		_c.mutation.SetPublished(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourseLessonCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "CourseLesson.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := courselesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CourseLesson.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "CourseLesson.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := courselesson.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "CourseLesson.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Section(); !ok {
		return &ValidationError{Name: "section", err: errors.New(`ent: missing required field "CourseLesson.section"`)}
	}
	if v, ok := _c.mutation.Section(); ok {
		if err := courselesson.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "CourseLesson.section": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "CourseLesson.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := courselesson.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "CourseLesson.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Locale(); !ok {
		return &ValidationError{Name: "locale", err: errors.New(`ent: missing required field "CourseLesson.locale"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "CourseLesson.content"`)}
	}
	if _, ok := _c.mutation.Order(); !ok {
		return &ValidationError{Name: "order", err: errors.New(`ent: missing required field "CourseLesson.order"`)}
	}
	if _, ok := _c.mutation.Published(); !ok {
		return &ValidationError{Name: "published", err: errors.New(`ent: missing required field "CourseLesson.published"`)}
	}
	return nil
}

func (_c *CourseLessonCreate) sqlSave(ctx context.Context) (*CourseLesson, error) {
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

func (_c *CourseLessonCreate) createSpec() (*CourseLesson, *sqlgraph.CreateSpec) {
	var (
		_node = &CourseLesson{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(courselesson.Table, sqlgraph.NewFieldSpec(courselesson.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(courselesson.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(courselesson.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Section(); ok {
		_spec.SetField(courselesson.FieldSection, field.TypeEnum, value)
		_node.Section = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(courselesson.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Locale(); ok {
		_spec.SetField(courselesson.FieldLocale, field.TypeString, value)
		_node.Locale = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(courselesson.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Order(); ok {
		_spec.SetField(courselesson.FieldOrder, field.TypeInt, value)
		_node.Order = value
	}
	if value, ok := _c.mutation.Published(); ok {
		_spec.SetField(courselesson.FieldPublished, field.TypeBool, value)
		_node.Published = value
	}
	if nodes := _c.mutation.ExamsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExercisesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssetIDs(); len(nodes) > 0 {
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
		_node.course_lesson_asset = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CourseLessonCreateBulk is the builder for creating many CourseLesson entities in bulk.
type CourseLessonCreateBulk struct {
	config
	err      error
	builders []*CourseLessonCreate
}

// Save creates the CourseLesson entities in the database.
func (_c *CourseLessonCreateBulk) Save(ctx context.Context) ([]*CourseLesson, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CourseLesson, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseLessonMutation)
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
func (_c *CourseLessonCreateBulk) SaveX(ctx context.Context) []*CourseLesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseLessonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseLessonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
