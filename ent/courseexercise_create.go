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
)

// CourseExerciseCreate is the builder for creating a CourseExercise entity.
type CourseExerciseCreate struct {
	config
	mutation *CourseExerciseMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (_c *CourseExerciseCreate) SetKind(v courseexercise.Kind) *CourseExerciseCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *CourseExerciseCreate) SetNillableKind(v *courseexercise.Kind) *CourseExerciseCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetStem sets the "stem" field.
func (_c *CourseExerciseCreate) SetStem(v string) *CourseExerciseCreate {
	_c.mutation.SetStem(v)
	return _c
}

// SetNillableStem sets the "stem" field if the given value is not nil.
func (_c *CourseExerciseCreate) SetNillableStem(v *string) *CourseExerciseCreate {
	if v != nil {
		_c.SetStem(*v)
	}
	return _c
}

// SetOptionA sets the "option_a" field.
func (_c *CourseExerciseCreate) SetOptionA(v string) *CourseExerciseCreate {
	_c.mutation.SetOptionA(v)
	return _c
}

// SetNillableOptionA sets the "option_a" field if the given value is not nil.
func (_c *CourseExerciseCreate) SetNillableOptionA(v *string) *CourseExerciseCreate {
	if v != nil {
		_c.SetOptionA(*v)
	}
	return _c
}

// SetOptionB sets the "option_b" field.
func (_c *CourseExerciseCreate) SetOptionB(v string) *CourseExerciseCreate {
	_c.mutation.SetOptionB(v)
	return _c
}

// SetNillableOptionB sets the "option_b" field if the given value is not nil.
func (_c *CourseExerciseCreate) SetNillableOptionB(v *string) *CourseExerciseCreate {
	if v != nil {
		_c.SetOptionB(*v)
	}
	return _c
}

// SetOptionC sets the "option_c" field.
func (_c *CourseExerciseCreate) SetOptionC(v string) *CourseExerciseCreate {
	_c.mutation.SetOptionC(v)
	return _c
}

// SetNillableOptionC sets the "option_c" field if the given value is not nil.
func (_c *CourseExerciseCreate) SetNillableOptionC(v *string) *CourseExerciseCreate {
	if v != nil {
		_c.SetOptionC(*v)
	}
	return _c
}

// SetOptionD sets the "option_d" field.
func (_c *CourseExerciseCreate) SetOptionD(v string) *CourseExerciseCreate {
	_c.mutation.SetOptionD(v)
	return _c
}

// SetNillableOptionD sets the "option_d" field if the given value is not nil.
func (_c *CourseExerciseCreate) SetNillableOptionD(v *string) *CourseExerciseCreate {
	if v != nil {
		_c.SetOptionD(*v)
	}
	return _c
}

// SetCorrectOption sets the "correct_option" field.
func (_c *CourseExerciseCreate) SetCorrectOption(v string) *CourseExerciseCreate {
	_c.mutation.SetCorrectOption(v)
	return _c
}

// SetNillableCorrectOption sets the "correct_option" field if the given value is not nil.
func (_c *CourseExerciseCreate) SetNillableCorrectOption(v *string) *CourseExerciseCreate {
	if v != nil {
		_c.SetCorrectOption(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *CourseExerciseCreate) SetPrompt(v string) *CourseExerciseCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_c *CourseExerciseCreate) SetNillablePrompt(v *string) *CourseExerciseCreate {
	if v != nil {
		_c.SetPrompt(*v)
	}
	return _c
}

// SetMinWords sets the "min_words" field.
func (_c *CourseExerciseCreate) SetMinWords(v int) *CourseExerciseCreate {
	_c.mutation.SetMinWords(v)
	return _c
}

// SetNillableMinWords sets the "min_words" field if the given value is not nil.
func (_c *CourseExerciseCreate) SetNillableMinWords(v *int) *CourseExerciseCreate {
	if v != nil {
		_c.SetMinWords(*v)
	}
	return _c
}

// SetMaxWords sets the "max_words" field.
func (_c *CourseExerciseCreate) SetMaxWords(v int) *CourseExerciseCreate {
	_c.mutation.SetMaxWords(v)
	return _c
}

// SetNillableMaxWords sets the "max_words" field if the given value is not nil.
func (_c *CourseExerciseCreate) SetNillableMaxWords(v *int) *CourseExerciseCreate {
	if v != nil {
		_c.SetMaxWords(*v)
	}
	return _c
}

// SetSampleAnswer sets the "sample_answer" field.
func (_c *CourseExerciseCreate) SetSampleAnswer(v string) *CourseExerciseCreate {
	_c.mutation.SetSampleAnswer(v)
	return _c
}

// SetNillableSampleAnswer sets the "sample_answer" field if the given value is not nil.
func (_c *CourseExerciseCreate) SetNillableSampleAnswer(v *string) *CourseExerciseCreate {
	if v != nil {
		_c.SetSampleAnswer(*v)
	}
	return _c
}

// SetCriteria sets the "criteria" field.
func (_c *CourseExerciseCreate) SetCriteria(v string) *CourseExerciseCreate {
	_c.mutation.SetCriteria(v)
	return _c
}

// SetNillableCriteria sets the "criteria" field if the given value is not nil.
func (_c *CourseExerciseCreate) SetNillableCriteria(v *string) *CourseExerciseCreate {
	if v != nil {
		_c.SetCriteria(*v)
	}
	return _c
}

// SetOrder sets the "order" field.
func (_c *CourseExerciseCreate) SetOrder(v int) *CourseExerciseCreate {
	_c.mutation.SetOrder(v)
	return _c
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_c *CourseExerciseCreate) SetNillableOrder(v *int) *CourseExerciseCreate {
	if v != nil {
		_c.SetOrder(*v)
	}
	return _c
}

// SetLessonID sets the "lesson" edge to the CourseLesson entity by ID.
func (_c *CourseExerciseCreate) SetLessonID(id int) *CourseExerciseCreate {
	_c.mutation.SetLessonID(id)
	return _c
}

// SetLesson sets the "lesson" edge to the CourseLesson entity.
func (_c *CourseExerciseCreate) SetLesson(v *CourseLesson) *CourseExerciseCreate {
	return _c.SetLessonID(v.ID)
}

// SetAssetID sets the "asset" edge to the Asset entity by ID.
func (_c *CourseExerciseCreate) SetAssetID(id int) *CourseExerciseCreate {
	_c.mutation.SetAssetID(id)
	return _c
}

// SetNillableAssetID sets the "asset" edge to the Asset entity by ID if the given value is not nil.
func (_c *CourseExerciseCreate) SetNillableAssetID(id *int) *CourseExerciseCreate {
	if id != nil {
		_c = _c.SetAssetID(*id)
	}
	return _c
}

// SetAsset sets the "asset" edge to the Asset entity.
func (_c *CourseExerciseCreate) SetAsset(v *Asset) *CourseExerciseCreate {
	return _c.SetAssetID(v.ID)
}

// Mutation returns the CourseExerciseMutation object of the builder.
func (_c *CourseExerciseCreate) Mutation() *CourseExerciseMutation {
	return _c.mutation
}

// Save creates the CourseExercise in the database.
func (_c *CourseExerciseCreate) Save(ctx context.Context) (*CourseExercise, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourseExerciseCreate) SaveX(ctx context.Context) *CourseExercise {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseExerciseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseExerciseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourseExerciseCreate) defaults() {
	if _, ok := _c.mutation.Kind(); !ok {
		v := courseexercise.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.Stem(); !ok {
		v := courseexercise.DefaultStem
		_c.mutation.SetStem(v)
	}
	if _, ok := _c.mutation.OptionA(); !ok {
		v := courseexercise.DefaultOptionA
		_c.mutation.SetOptionA(v)
	}
	if _, ok := _c.mutation.OptionB(); !ok {
		v := courseexercise.DefaultOptionB
		_c.mutation.SetOptionB(v)
	}
	if _, ok := _c.mutation.OptionC(); !ok {
		v := courseexercise.DefaultOptionC
		_c.mutation.SetOptionC(v)
	}
	if _, ok := _c.mutation.OptionD(); !ok {
		v := courseexercise.DefaultOptionD
		_c.mutation.SetOptionD(v)
	}
	if _, ok := _c.mutation.CorrectOption(); !ok {
		v := courseexercise.DefaultCorrectOption
		_c.mutation.SetCorrectOption(v)
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		v := courseexercise.DefaultPrompt
		_c.mutation.SetPrompt(v)
	}
	if _, ok := _c.mutation.MinWords(); !ok {
		v := courseexercise.DefaultMinWords
		_c.mutation.SetMinWords(v)
	}
	if _, ok := _c.mutation.MaxWords(); !ok {
		v := courseexercise.DefaultMaxWords
		_c.mutation.SetMaxWords(v)
	}
	if _, ok := _c.mutation.SampleAnswer(); !ok {
		v := courseexercise.DefaultSampleAnswer
		_c.mutation.SetSampleAnswer(v)
	}
	if _, ok := _c.mutation.Criteria(); !ok {
		v := courseexercise.DefaultCriteria
		_c.mutation.SetCriteria(v)
	}
	if _, ok := _c.mutation.Order(); !ok {
		v := courseexercise.DefaultOrder
		_c.mutation.SetOrder(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourseExerciseCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "CourseExercise.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := courseexercise.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CourseExercise.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stem(); !ok {
		return &ValidationError{Name: "stem", err: errors.New(`ent: missing required field "CourseExercise.stem"`)}
	}
	if _, ok := _c.mutation.OptionA(); !ok {
		return &ValidationError{Name: "option_a", err: errors.New(`ent: missing required field "CourseExercise.option_a"`)}
	}
	if _, ok := _c.mutation.OptionB(); !ok {
		return &ValidationError{Name: "option_b", err: errors.New(`ent: missing required field "CourseExercise.option_b"`)}
	}
	if _, ok := _c.mutation.OptionC(); !ok {
		return &ValidationError{Name: "option_c", err: errors.New(`ent: missing required field "CourseExercise.option_c"`)}
	}
	if _, ok := _c.mutation.OptionD(); !ok {
		return &ValidationError{Name: "option_d", err: errors.New(`ent: missing required field "CourseExercise.option_d"`)}
	}
	if _, ok := _c.mutation.CorrectOption(); !ok {
		return &ValidationError{Name: "correct_option", err: errors.New(`ent: missing required field "CourseExercise.correct_option"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "CourseExercise.prompt"`)}
	}
	if _, ok := _c.mutation.MinWords(); !ok {
		return &ValidationError{Name: "min_words", err: errors.New(`ent: missing required field "CourseExercise.min_words"`)}
	}
	if v, ok := _c.mutation.MinWords(); ok {
		if err := courseexercise.MinWordsValidator(v); err != nil {
			return &ValidationError{Name: "min_words", err: fmt.Errorf(`ent: validator failed for field "CourseExercise.min_words": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxWords(); !ok {
		return &ValidationError{Name: "max_words", err: errors.New(`ent: missing required field "CourseExercise.max_words"`)}
	}
	if v, ok := _c.mutation.MaxWords(); ok {
		if err := courseexercise.MaxWordsValidator(v); err != nil {
			return &ValidationError{Name: "max_words", err: fmt.Errorf(`ent: validator failed for field "CourseExercise.max_words": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SampleAnswer(); !ok {
		return &ValidationError{Name: "sample_answer", err: errors.New(`ent: missing required field "CourseExercise.sample_answer"`)}
	}
	if _, ok := _c.mutation.Criteria(); !ok {
		return &ValidationError{Name: "criteria", err: errors.New(`ent: missing required field "CourseExercise.criteria"`)}
	}
	if _, ok := _c.mutation.Order(); !ok {
		return &ValidationError{Name: "order", err: errors.New(`ent: missing required field "CourseExercise.order"`)}
	}
	if len(_c.mutation.LessonIDs()) == 0 {
		return &ValidationError{Name: "lesson", err: errors.New(`ent: missing required edge "CourseExercise.lesson"`)}
	}
	return nil
}

func (_c *CourseExerciseCreate) sqlSave(ctx context.Context) (*CourseExercise, error) {
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

func (_c *CourseExerciseCreate) createSpec() (*CourseExercise, *sqlgraph.CreateSpec) {
	var (
		_node = &CourseExercise{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(courseexercise.Table, sqlgraph.NewFieldSpec(courseexercise.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(courseexercise.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Stem(); ok {
		_spec.SetField(courseexercise.FieldStem, field.TypeString, value)
		_node.Stem = value
	}
	if value, ok := _c.mutation.OptionA(); ok {
		_spec.SetField(courseexercise.FieldOptionA, field.TypeString, value)
		_node.OptionA = value
	}
	if value, ok := _c.mutation.OptionB(); ok {
		_spec.SetField(courseexercise.FieldOptionB, field.TypeString, value)
		_node.OptionB = value
	}
	if value, ok := _c.mutation.OptionC(); ok {
		_spec.SetField(courseexercise.FieldOptionC, field.TypeString, value)
		_node.OptionC = value
	}
	if value, ok := _c.mutation.OptionD(); ok {
		_spec.SetField(courseexercise.FieldOptionD, field.TypeString, value)
		_node.OptionD = value
	}
	if value, ok := _c.mutation.CorrectOption(); ok {
		_spec.SetField(courseexercise.FieldCorrectOption, field.TypeString, value)
		_node.CorrectOption = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(courseexercise.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.MinWords(); ok {
		_spec.SetField(courseexercise.FieldMinWords, field.TypeInt, value)
		_node.MinWords = value
	}
	if value, ok := _c.mutation.MaxWords(); ok {
		_spec.SetField(courseexercise.FieldMaxWords, field.TypeInt, value)
		_node.MaxWords = value
	}
	if value, ok := _c.mutation.SampleAnswer(); ok {
		_spec.SetField(courseexercise.FieldSampleAnswer, field.TypeString, value)
		_node.SampleAnswer = value
	}
	if value, ok := _c.mutation.Criteria(); ok {
		_spec.SetField(courseexercise.FieldCriteria, field.TypeString, value)
		_node.Criteria = value
	}
	if value, ok := _c.mutation.Order(); ok {
		_spec.SetField(courseexercise.FieldOrder, field.TypeInt, value)
		_node.Order = value
	}
	if nodes := _c.mutation.LessonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   courseexercise.LessonTable,
			Columns: []string{courseexercise.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courselesson.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.course_lesson_exercises = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   courseexercise.AssetTable,
			Columns: []string{courseexercise.AssetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(asset.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.course_exercise_asset = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CourseExerciseCreateBulk is the builder for creating many CourseExercise entities in bulk.
type CourseExerciseCreateBulk struct {
	config
	err      error
	builders []*CourseExerciseCreate
}

// Save creates the CourseExercise entities in the database.
func (_c *CourseExerciseCreateBulk) Save(ctx context.Context) ([]*CourseExercise, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CourseExercise, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseExerciseMutation)
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
func (_c *CourseExerciseCreateBulk) SaveX(ctx context.Context) []*CourseExercise {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseExerciseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseExerciseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
