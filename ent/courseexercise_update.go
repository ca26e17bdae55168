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
	"github.com/visaetude/prepcore/ent/predicate"
)

// CourseExerciseUpdate is the builder for updating CourseExercise entities.
type CourseExerciseUpdate struct {
	config
	hooks    []Hook
	mutation *CourseExerciseMutation
}

// Where appends a list predicates to the CourseExerciseUpdate builder.
func (_u *CourseExerciseUpdate) Where(ps ...predicate.CourseExercise) *CourseExerciseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *CourseExerciseUpdate) SetKind(v courseexercise.Kind) *CourseExerciseUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *CourseExerciseUpdate) SetNillableKind(v *courseexercise.Kind) *CourseExerciseUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStem sets the "stem" field.
func (_u *CourseExerciseUpdate) SetStem(v string) *CourseExerciseUpdate {
	_u.mutation.SetStem(v)
	return _u
}

// SetNillableStem sets the "stem" field if the given value is not nil.
func (_u *CourseExerciseUpdate) SetNillableStem(v *string) *CourseExerciseUpdate {
	if v != nil {
		_u.SetStem(*v)
	}
	return _u
}

// SetOptionA sets the "option_a" field.
func (_u *CourseExerciseUpdate) SetOptionA(v string) *CourseExerciseUpdate {
	_u.mutation.SetOptionA(v)
	return _u
}

// SetNillableOptionA sets the "option_a" field if the given value is not nil.
func (_u *CourseExerciseUpdate) SetNillableOptionA(v *string) *CourseExerciseUpdate {
	if v != nil {
		_u.SetOptionA(*v)
	}
	return _u
}

// SetOptionB sets the "option_b" field.
func (_u *CourseExerciseUpdate) SetOptionB(v string) *CourseExerciseUpdate {
	_u.mutation.SetOptionB(v)
	return _u
}

// SetNillableOptionB sets the "option_b" field if the given value is not nil.
func (_u *CourseExerciseUpdate) SetNillableOptionB(v *string) *CourseExerciseUpdate {
	if v != nil {
		_u.SetOptionB(*v)
	}
	return _u
}

// SetOptionC sets the "option_c" field.
func (_u *CourseExerciseUpdate) SetOptionC(v string) *CourseExerciseUpdate {
	_u.mutation.SetOptionC(v)
	return _u
}

// SetNillableOptionC sets the "option_c" field if the given value is not nil.
func (_u *CourseExerciseUpdate) SetNillableOptionC(v *string) *CourseExerciseUpdate {
	if v != nil {
		_u.SetOptionC(*v)
	}
	return _u
}

// SetOptionD sets the "option_d" field.
func (_u *CourseExerciseUpdate) SetOptionD(v string) *CourseExerciseUpdate {
	_u.mutation.SetOptionD(v)
	return _u
}

// SetNillableOptionD sets the "option_d" field if the given value is not nil.
func (_u *CourseExerciseUpdate) SetNillableOptionD(v *string) *CourseExerciseUpdate {
	if v != nil {
		_u.SetOptionD(*v)
	}
	return _u
}

// SetCorrectOption sets the "correct_option" field.
func (_u *CourseExerciseUpdate) SetCorrectOption(v string) *CourseExerciseUpdate {
	_u.mutation.SetCorrectOption(v)
	return _u
}

// SetNillableCorrectOption sets the "correct_option" field if the given value is not nil.
func (_u *CourseExerciseUpdate) SetNillableCorrectOption(v *string) *CourseExerciseUpdate {
	if v != nil {
		_u.SetCorrectOption(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *CourseExerciseUpdate) SetPrompt(v string) *CourseExerciseUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *CourseExerciseUpdate) SetNillablePrompt(v *string) *CourseExerciseUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetMinWords sets the "min_words" field.
func (_u *CourseExerciseUpdate) SetMinWords(v int) *CourseExerciseUpdate {
	_u.mutation.ResetMinWords()
	_u.mutation.SetMinWords(v)
	return _u
}

// SetNillableMinWords sets the "min_words" field if the given value is not nil.
func (_u *CourseExerciseUpdate) SetNillableMinWords(v *int) *CourseExerciseUpdate {
	if v != nil {
		_u.SetMinWords(*v)
	}
	return _u
}

// AddMinWords adds value to the "min_words" field.
func (_u *CourseExerciseUpdate) AddMinWords(v int) *CourseExerciseUpdate {
	_u.mutation.AddMinWords(v)
	return _u
}

// SetMaxWords sets the "max_words" field.
func (_u *CourseExerciseUpdate) SetMaxWords(v int) *CourseExerciseUpdate {
	_u.mutation.ResetMaxWords()
	_u.mutation.SetMaxWords(v)
	return _u
}

// SetNillableMaxWords sets the "max_words" field if the given value is not nil.
func (_u *CourseExerciseUpdate) SetNillableMaxWords(v *int) *CourseExerciseUpdate {
	if v != nil {
		_u.SetMaxWords(*v)
	}
	return _u
}

// AddMaxWords adds value to the "max_words" field.
func (_u *CourseExerciseUpdate) AddMaxWords(v int) *CourseExerciseUpdate {
	_u.mutation.AddMaxWords(v)
	return _u
}

// SetSampleAnswer sets the "sample_answer" field.
func (_u *CourseExerciseUpdate) SetSampleAnswer(v string) *CourseExerciseUpdate {
	_u.mutation.SetSampleAnswer(v)
	return _u
}

// SetNillableSampleAnswer sets the "sample_answer" field if the given value is not nil.
func (_u *CourseExerciseUpdate) SetNillableSampleAnswer(v *string) *CourseExerciseUpdate {
	if v != nil {
		_u.SetSampleAnswer(*v)
	}
	return _u
}

// SetCriteria sets the "criteria" field.
func (_u *CourseExerciseUpdate) SetCriteria(v string) *CourseExerciseUpdate {
	_u.mutation.SetCriteria(v)
	return _u
}

// SetNillableCriteria sets the "criteria" field if the given value is not nil.
func (_u *CourseExerciseUpdate) SetNillableCriteria(v *string) *CourseExerciseUpdate {
	if v != nil {
		_u.SetCriteria(*v)
	}
	return _u
}

// SetOrder sets the "order" field.
func (_u *CourseExerciseUpdate) SetOrder(v int) *CourseExerciseUpdate {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *CourseExerciseUpdate) SetNillableOrder(v *int) *CourseExerciseUpdate {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *CourseExerciseUpdate) AddOrder(v int) *CourseExerciseUpdate {
	_u.mutation.AddOrder(v)
	return _u
}

// SetLessonID sets the "lesson" edge to the CourseLesson entity by ID.
func (_u *CourseExerciseUpdate) SetLessonID(id int) *CourseExerciseUpdate {
	_u.mutation.SetLessonID(id)
	return _u
}

// SetLesson sets the "lesson" edge to the CourseLesson entity.
func (_u *CourseExerciseUpdate) SetLesson(v *CourseLesson) *CourseExerciseUpdate {
	return _u.SetLessonID(v.ID)
}

// SetAssetID sets the "asset" edge to the Asset entity by ID.
func (_u *CourseExerciseUpdate) SetAssetID(id int) *CourseExerciseUpdate {
	_u.mutation.SetAssetID(id)
	return _u
}

// SetNillableAssetID sets the "asset" edge to the Asset entity by ID if the given value is not nil.
func (_u *CourseExerciseUpdate) SetNillableAssetID(id *int) *CourseExerciseUpdate {
	if id != nil {
		_u = _u.SetAssetID(*id)
	}
	return _u
}

// SetAsset sets the "asset" edge to the Asset entity.
func (_u *CourseExerciseUpdate) SetAsset(v *Asset) *CourseExerciseUpdate {
	return _u.SetAssetID(v.ID)
}

// Mutation returns the CourseExerciseMutation object of the builder.
func (_u *CourseExerciseUpdate) Mutation() *CourseExerciseMutation {
	return _u.mutation
}

// ClearLesson clears the "lesson" edge to the CourseLesson entity.
func (_u *CourseExerciseUpdate) ClearLesson() *CourseExerciseUpdate {
	_u.mutation.ClearLesson()
	return _u
}

// ClearAsset clears the "asset" edge to the Asset entity.
func (_u *CourseExerciseUpdate) ClearAsset() *CourseExerciseUpdate {
	_u.mutation.ClearAsset()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseExerciseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseExerciseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseExerciseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseExerciseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseExerciseUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := courseexercise.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CourseExercise.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinWords(); ok {
		if err := courseexercise.MinWordsValidator(v); err != nil {
			return &ValidationError{Name: "min_words", err: fmt.Errorf(`ent: validator failed for field "CourseExercise.min_words": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxWords(); ok {
		if err := courseexercise.MaxWordsValidator(v); err != nil {
			return &ValidationError{Name: "max_words", err: fmt.Errorf(`ent: validator failed for field "CourseExercise.max_words": %w`, err)}
		}
	}
	if _u.mutation.LessonCleared() && len(_u.mutation.LessonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CourseExercise.lesson"`)
	}
	return nil
}

func (_u *CourseExerciseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(courseexercise.Table, courseexercise.Columns, sqlgraph.NewFieldSpec(courseexercise.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(courseexercise.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Stem(); ok {
		_spec.SetField(courseexercise.FieldStem, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionA(); ok {
		_spec.SetField(courseexercise.FieldOptionA, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionB(); ok {
		_spec.SetField(courseexercise.FieldOptionB, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionC(); ok {
		_spec.SetField(courseexercise.FieldOptionC, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionD(); ok {
		_spec.SetField(courseexercise.FieldOptionD, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectOption(); ok {
		_spec.SetField(courseexercise.FieldCorrectOption, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(courseexercise.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.MinWords(); ok {
		_spec.SetField(courseexercise.FieldMinWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinWords(); ok {
		_spec.AddField(courseexercise.FieldMinWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxWords(); ok {
		_spec.SetField(courseexercise.FieldMaxWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxWords(); ok {
		_spec.AddField(courseexercise.FieldMaxWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SampleAnswer(); ok {
		_spec.SetField(courseexercise.FieldSampleAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Criteria(); ok {
		_spec.SetField(courseexercise.FieldCriteria, field.TypeString, value)
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(courseexercise.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(courseexercise.FieldOrder, field.TypeInt, value)
	}
	if _u.mutation.LessonCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssetCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssetIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courseexercise.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseExerciseUpdateOne is the builder for updating a single CourseExercise entity.
type CourseExerciseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseExerciseMutation
}

// SetKind sets the "kind" field.
func (_u *CourseExerciseUpdateOne) SetKind(v courseexercise.Kind) *CourseExerciseUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *CourseExerciseUpdateOne) SetNillableKind(v *courseexercise.Kind) *CourseExerciseUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStem sets the "stem" field.
func (_u *CourseExerciseUpdateOne) SetStem(v string) *CourseExerciseUpdateOne {
	_u.mutation.SetStem(v)
	return _u
}

// SetNillableStem sets the "stem" field if the given value is not nil.
func (_u *CourseExerciseUpdateOne) SetNillableStem(v *string) *CourseExerciseUpdateOne {
	if v != nil {
		_u.SetStem(*v)
	}
	return _u
}

// SetOptionA sets the "option_a" field.
func (_u *CourseExerciseUpdateOne) SetOptionA(v string) *CourseExerciseUpdateOne {
	_u.mutation.SetOptionA(v)
	return _u
}

// SetNillableOptionA sets the "option_a" field if the given value is not nil.
func (_u *CourseExerciseUpdateOne) SetNillableOptionA(v *string) *CourseExerciseUpdateOne {
	if v != nil {
		_u.SetOptionA(*v)
	}
	return _u
}

// SetOptionB sets the "option_b" field.
func (_u *CourseExerciseUpdateOne) SetOptionB(v string) *CourseExerciseUpdateOne {
	_u.mutation.SetOptionB(v)
	return _u
}

// SetNillableOptionB sets the "option_b" field if the given value is not nil.
func (_u *CourseExerciseUpdateOne) SetNillableOptionB(v *string) *CourseExerciseUpdateOne {
	if v != nil {
		_u.SetOptionB(*v)
	}
	return _u
}

// SetOptionC sets the "option_c" field.
func (_u *CourseExerciseUpdateOne) SetOptionC(v string) *CourseExerciseUpdateOne {
	_u.mutation.SetOptionC(v)
	return _u
}

// SetNillableOptionC sets the "option_c" field if the given value is not nil.
func (_u *CourseExerciseUpdateOne) SetNillableOptionC(v *string) *CourseExerciseUpdateOne {
	if v != nil {
		_u.SetOptionC(*v)
	}
	return _u
}

// SetOptionD sets the "option_d" field.
func (_u *CourseExerciseUpdateOne) SetOptionD(v string) *CourseExerciseUpdateOne {
	_u.mutation.SetOptionD(v)
	return _u
}

// SetNillableOptionD sets the "option_d" field if the given value is not nil.
func (_u *CourseExerciseUpdateOne) SetNillableOptionD(v *string) *CourseExerciseUpdateOne {
	if v != nil {
		_u.SetOptionD(*v)
	}
	return _u
}

// SetCorrectOption sets the "correct_option" field.
func (_u *CourseExerciseUpdateOne) SetCorrectOption(v string) *CourseExerciseUpdateOne {
	_u.mutation.SetCorrectOption(v)
	return _u
}

// SetNillableCorrectOption sets the "correct_option" field if the given value is not nil.
func (_u *CourseExerciseUpdateOne) SetNillableCorrectOption(v *string) *CourseExerciseUpdateOne {
	if v != nil {
		_u.SetCorrectOption(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *CourseExerciseUpdateOne) SetPrompt(v string) *CourseExerciseUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *CourseExerciseUpdateOne) SetNillablePrompt(v *string) *CourseExerciseUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetMinWords sets the "min_words" field.
func (_u *CourseExerciseUpdateOne) SetMinWords(v int) *CourseExerciseUpdateOne {
	_u.mutation.ResetMinWords()
	_u.mutation.SetMinWords(v)
	return _u
}

// SetNillableMinWords sets the "min_words" field if the given value is not nil.
func (_u *CourseExerciseUpdateOne) SetNillableMinWords(v *int) *CourseExerciseUpdateOne {
	if v != nil {
		_u.SetMinWords(*v)
	}
	return _u
}

// AddMinWords adds value to the "min_words" field.
func (_u *CourseExerciseUpdateOne) AddMinWords(v int) *CourseExerciseUpdateOne {
	_u.mutation.AddMinWords(v)
	return _u
}

// SetMaxWords sets the "max_words" field.
func (_u *CourseExerciseUpdateOne) SetMaxWords(v int) *CourseExerciseUpdateOne {
	_u.mutation.ResetMaxWords()
	_u.mutation.SetMaxWords(v)
	return _u
}

// SetNillableMaxWords sets the "max_words" field if the given value is not nil.
func (_u *CourseExerciseUpdateOne) SetNillableMaxWords(v *int) *CourseExerciseUpdateOne {
	if v != nil {
		_u.SetMaxWords(*v)
	}
	return _u
}

// AddMaxWords adds value to the "max_words" field.
func (_u *CourseExerciseUpdateOne) AddMaxWords(v int) *CourseExerciseUpdateOne {
	_u.mutation.AddMaxWords(v)
	return _u
}

// SetSampleAnswer sets the "sample_answer" field.
func (_u *CourseExerciseUpdateOne) SetSampleAnswer(v string) *CourseExerciseUpdateOne {
	_u.mutation.SetSampleAnswer(v)
	return _u
}

// SetNillableSampleAnswer sets the "sample_answer" field if the given value is not nil.
func (_u *CourseExerciseUpdateOne) SetNillableSampleAnswer(v *string) *CourseExerciseUpdateOne {
	if v != nil {
		_u.SetSampleAnswer(*v)
	}
	return _u
}

// SetCriteria sets the "criteria" field.
func (_u *CourseExerciseUpdateOne) SetCriteria(v string) *CourseExerciseUpdateOne {
	_u.mutation.SetCriteria(v)
	return _u
}

// SetNillableCriteria sets the "criteria" field if the given value is not nil.
func (_u *CourseExerciseUpdateOne) SetNillableCriteria(v *string) *CourseExerciseUpdateOne {
	if v != nil {
		_u.SetCriteria(*v)
	}
	return _u
}

// SetOrder sets the "order" field.
func (_u *CourseExerciseUpdateOne) SetOrder(v int) *CourseExerciseUpdateOne {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *CourseExerciseUpdateOne) SetNillableOrder(v *int) *CourseExerciseUpdateOne {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *CourseExerciseUpdateOne) AddOrder(v int) *CourseExerciseUpdateOne {
	_u.mutation.AddOrder(v)
	return _u
}

// SetLessonID sets the "lesson" edge to the CourseLesson entity by ID.
func (_u *CourseExerciseUpdateOne) SetLessonID(id int) *CourseExerciseUpdateOne {
	_u.mutation.SetLessonID(id)
	return _u
}

// SetLesson sets the "lesson" edge to the CourseLesson entity.
func (_u *CourseExerciseUpdateOne) SetLesson(v *CourseLesson) *CourseExerciseUpdateOne {
	return _u.SetLessonID(v.ID)
}

// SetAssetID sets the "asset" edge to the Asset entity by ID.
func (_u *CourseExerciseUpdateOne) SetAssetID(id int) *CourseExerciseUpdateOne {
	_u.mutation.SetAssetID(id)
	return _u
}

// SetNillableAssetID sets the "asset" edge to the Asset entity by ID if the given value is not nil.
func (_u *CourseExerciseUpdateOne) SetNillableAssetID(id *int) *CourseExerciseUpdateOne {
	if id != nil {
		_u = _u.SetAssetID(*id)
	}
	return _u
}

// SetAsset sets the "asset" edge to the Asset entity.
func (_u *CourseExerciseUpdateOne) SetAsset(v *Asset) *CourseExerciseUpdateOne {
	return _u.SetAssetID(v.ID)
}

// Mutation returns the CourseExerciseMutation object of the builder.
func (_u *CourseExerciseUpdateOne) Mutation() *CourseExerciseMutation {
	return _u.mutation
}

// ClearLesson clears the "lesson" edge to the CourseLesson entity.
func (_u *CourseExerciseUpdateOne) ClearLesson() *CourseExerciseUpdateOne {
	_u.mutation.ClearLesson()
	return _u
}

// ClearAsset clears the "asset" edge to the Asset entity.
func (_u *CourseExerciseUpdateOne) ClearAsset() *CourseExerciseUpdateOne {
	_u.mutation.ClearAsset()
	return _u
}

// Where appends a list predicates to the CourseExerciseUpdate builder.
func (_u *CourseExerciseUpdateOne) Where(ps ...predicate.CourseExercise) *CourseExerciseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseExerciseUpdateOne) Select(field string, fields ...string) *CourseExerciseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CourseExercise entity.
func (_u *CourseExerciseUpdateOne) Save(ctx context.Context) (*CourseExercise, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseExerciseUpdateOne) SaveX(ctx context.Context) *CourseExercise {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseExerciseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseExerciseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseExerciseUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := courseexercise.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CourseExercise.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinWords(); ok {
		if err := courseexercise.MinWordsValidator(v); err != nil {
			return &ValidationError{Name: "min_words", err: fmt.Errorf(`ent: validator failed for field "CourseExercise.min_words": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxWords(); ok {
		if err := courseexercise.MaxWordsValidator(v); err != nil {
			return &ValidationError{Name: "max_words", err: fmt.Errorf(`ent: validator failed for field "CourseExercise.max_words": %w`, err)}
		}
	}
	if _u.mutation.LessonCleared() && len(_u.mutation.LessonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CourseExercise.lesson"`)
	}
	return nil
}

func (_u *CourseExerciseUpdateOne) sqlSave(ctx context.Context) (_node *CourseExercise, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(courseexercise.Table, courseexercise.Columns, sqlgraph.NewFieldSpec(courseexercise.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CourseExercise.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, courseexercise.FieldID)
		for _, f := range fields {
			if !courseexercise.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != courseexercise.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(courseexercise.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Stem(); ok {
		_spec.SetField(courseexercise.FieldStem, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionA(); ok {
		_spec.SetField(courseexercise.FieldOptionA, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionB(); ok {
		_spec.SetField(courseexercise.FieldOptionB, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionC(); ok {
		_spec.SetField(courseexercise.FieldOptionC, field.TypeString, value)
	}
	if value, ok := _u.mutation.OptionD(); ok {
		_spec.SetField(courseexercise.FieldOptionD, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectOption(); ok {
		_spec.SetField(courseexercise.FieldCorrectOption, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(courseexercise.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.MinWords(); ok {
		_spec.SetField(courseexercise.FieldMinWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinWords(); ok {
		_spec.AddField(courseexercise.FieldMinWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxWords(); ok {
		_spec.SetField(courseexercise.FieldMaxWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxWords(); ok {
		_spec.AddField(courseexercise.FieldMaxWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SampleAnswer(); ok {
		_spec.SetField(courseexercise.FieldSampleAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Criteria(); ok {
		_spec.SetField(courseexercise.FieldCriteria, field.TypeString, value)
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(courseexercise.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(courseexercise.FieldOrder, field.TypeInt, value)
	}
	if _u.mutation.LessonCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssetCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssetIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CourseExercise{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courseexercise.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
