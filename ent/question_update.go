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
	"github.com/visaetude/prepcore/ent/choice"
	"github.com/visaetude/prepcore/ent/examsection"
	"github.com/visaetude/prepcore/ent/passage"
	"github.com/visaetude/prepcore/ent/predicate"
	"github.com/visaetude/prepcore/ent/question"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStem sets the "stem" field.
func (_u *QuestionUpdate) SetStem(v string) *QuestionUpdate {
	_u.mutation.SetStem(v)
	return _u
}

// SetNillableStem sets the "stem" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableStem(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetStem(*v)
	}
	return _u
}

// SetSubtype sets the "subtype" field.
func (_u *QuestionUpdate) SetSubtype(v question.Subtype) *QuestionUpdate {
	_u.mutation.SetSubtype(v)
	return _u
}

// SetNillableSubtype sets the "subtype" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableSubtype(v *question.Subtype) *QuestionUpdate {
	if v != nil {
		_u.SetSubtype(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionUpdate) SetDifficulty(v question.Difficulty) *QuestionUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableDifficulty(v *question.Difficulty) *QuestionUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QuestionUpdate) SetExplanation(v string) *QuestionUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableExplanation(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *QuestionUpdate) ClearExplanation() *QuestionUpdate {
	_u.mutation.ClearExplanation()
	return _u
}

// SetSectionID sets the "section" edge to the ExamSection entity by ID.
func (_u *QuestionUpdate) SetSectionID(id int) *QuestionUpdate {
	_u.mutation.SetSectionID(id)
	return _u
}

// SetSection sets the "section" edge to the ExamSection entity.
func (_u *QuestionUpdate) SetSection(v *ExamSection) *QuestionUpdate {
	return _u.SetSectionID(v.ID)
}

// SetPassageID sets the "passage" edge to the Passage entity by ID.
func (_u *QuestionUpdate) SetPassageID(id int) *QuestionUpdate {
	_u.mutation.SetPassageID(id)
	return _u
}

// SetNillablePassageID sets the "passage" edge to the Passage entity by ID if the given value is not nil.
func (_u *QuestionUpdate) SetNillablePassageID(id *int) *QuestionUpdate {
	if id != nil {
		_u = _u.SetPassageID(*id)
	}
	return _u
}

// SetPassage sets the "passage" edge to the Passage entity.
func (_u *QuestionUpdate) SetPassage(v *Passage) *QuestionUpdate {
	return _u.SetPassageID(v.ID)
}

// SetAssetID sets the "asset" edge to the Asset entity by ID.
func (_u *QuestionUpdate) SetAssetID(id int) *QuestionUpdate {
	_u.mutation.SetAssetID(id)
	return _u
}

// SetNillableAssetID sets the "asset" edge to the Asset entity by ID if the given value is not nil.
func (_u *QuestionUpdate) SetNillableAssetID(id *int) *QuestionUpdate {
	if id != nil {
		_u = _u.SetAssetID(*id)
	}
	return _u
}

// SetAsset sets the "asset" edge to the Asset entity.
func (_u *QuestionUpdate) SetAsset(v *Asset) *QuestionUpdate {
	return _u.SetAssetID(v.ID)
}

// AddChoiceIDs adds the "choices" edge to the Choice entity by IDs.
func (_u *QuestionUpdate) AddChoiceIDs(ids ...int) *QuestionUpdate {
	_u.mutation.AddChoiceIDs(ids...)
	return _u
}

// AddChoices adds the "choices" edges to the Choice entity.
func (_u *QuestionUpdate) AddChoices(v ...*Choice) *QuestionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChoiceIDs(ids...)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearSection clears the "section" edge to the ExamSection entity.
func (_u *QuestionUpdate) ClearSection() *QuestionUpdate {
	_u.mutation.ClearSection()
	return _u
}

// ClearPassage clears the "passage" edge to the Passage entity.
func (_u *QuestionUpdate) ClearPassage() *QuestionUpdate {
	_u.mutation.ClearPassage()
	return _u
}

// ClearAsset clears the "asset" edge to the Asset entity.
func (_u *QuestionUpdate) ClearAsset() *QuestionUpdate {
	_u.mutation.ClearAsset()
	return _u
}

// ClearChoices clears all "choices" edges to the Choice entity.
func (_u *QuestionUpdate) ClearChoices() *QuestionUpdate {
	_u.mutation.ClearChoices()
	return _u
}

// RemoveChoiceIDs removes the "choices" edge to Choice entities by IDs.
func (_u *QuestionUpdate) RemoveChoiceIDs(ids ...int) *QuestionUpdate {
	_u.mutation.RemoveChoiceIDs(ids...)
	return _u
}

// RemoveChoices removes "choices" edges to Choice entities.
func (_u *QuestionUpdate) RemoveChoices(v ...*Choice) *QuestionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChoiceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.Stem(); ok {
		if err := question.StemValidator(v); err != nil {
			return &ValidationError{Name: "stem", err: fmt.Errorf(`ent: validator failed for field "Question.stem": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subtype(); ok {
		if err := question.SubtypeValidator(v); err != nil {
			return &ValidationError{Name: "subtype", err: fmt.Errorf(`ent: validator failed for field "Question.subtype": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	if _u.mutation.SectionCleared() && len(_u.mutation.SectionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Question.section"`)
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stem(); ok {
		_spec.SetField(question.FieldStem, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtype(); ok {
		_spec.SetField(question.FieldSubtype, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(question.FieldExplanation, field.TypeString)
	}
	if _u.mutation.SectionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.SectionTable,
			Columns: []string{question.SectionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(examsection.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SectionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.SectionTable,
			Columns: []string{question.SectionColumn},
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
	if _u.mutation.PassageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.PassageTable,
			Columns: []string{question.PassageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(passage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PassageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.PassageTable,
			Columns: []string{question.PassageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(passage.FieldID, field.TypeInt),
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
			Table:   question.AssetTable,
			Columns: []string{question.AssetColumn},
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
			Table:   question.AssetTable,
			Columns: []string{question.AssetColumn},
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
	if _u.mutation.ChoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.ChoicesTable,
			Columns: []string{question.ChoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(choice.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChoicesIDs(); len(nodes) > 0 && !_u.mutation.ChoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.ChoicesTable,
			Columns: []string{question.ChoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(choice.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.ChoicesTable,
			Columns: []string{question.ChoicesColumn},
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
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetStem sets the "stem" field.
func (_u *QuestionUpdateOne) SetStem(v string) *QuestionUpdateOne {
	_u.mutation.SetStem(v)
	return _u
}

// SetNillableStem sets the "stem" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableStem(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetStem(*v)
	}
	return _u
}

// SetSubtype sets the "subtype" field.
func (_u *QuestionUpdateOne) SetSubtype(v question.Subtype) *QuestionUpdateOne {
	_u.mutation.SetSubtype(v)
	return _u
}

// SetNillableSubtype sets the "subtype" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableSubtype(v *question.Subtype) *QuestionUpdateOne {
	if v != nil {
		_u.SetSubtype(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionUpdateOne) SetDifficulty(v question.Difficulty) *QuestionUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableDifficulty(v *question.Difficulty) *QuestionUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QuestionUpdateOne) SetExplanation(v string) *QuestionUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableExplanation(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *QuestionUpdateOne) ClearExplanation() *QuestionUpdateOne {
	_u.mutation.ClearExplanation()
	return _u
}

// SetSectionID sets the "section" edge to the ExamSection entity by ID.
func (_u *QuestionUpdateOne) SetSectionID(id int) *QuestionUpdateOne {
	_u.mutation.SetSectionID(id)
	return _u
}

// SetSection sets the "section" edge to the ExamSection entity.
func (_u *QuestionUpdateOne) SetSection(v *ExamSection) *QuestionUpdateOne {
	return _u.SetSectionID(v.ID)
}

// SetPassageID sets the "passage" edge to the Passage entity by ID.
func (_u *QuestionUpdateOne) SetPassageID(id int) *QuestionUpdateOne {
	_u.mutation.SetPassageID(id)
	return _u
}

// SetNillablePassageID sets the "passage" edge to the Passage entity by ID if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillablePassageID(id *int) *QuestionUpdateOne {
	if id != nil {
		_u = _u.SetPassageID(*id)
	}
	return _u
}

// SetPassage sets the "passage" edge to the Passage entity.
func (_u *QuestionUpdateOne) SetPassage(v *Passage) *QuestionUpdateOne {
	return _u.SetPassageID(v.ID)
}

// SetAssetID sets the "asset" edge to the Asset entity by ID.
func (_u *QuestionUpdateOne) SetAssetID(id int) *QuestionUpdateOne {
	_u.mutation.SetAssetID(id)
	return _u
}

// SetNillableAssetID sets the "asset" edge to the Asset entity by ID if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableAssetID(id *int) *QuestionUpdateOne {
	if id != nil {
		_u = _u.SetAssetID(*id)
	}
	return _u
}

// SetAsset sets the "asset" edge to the Asset entity.
func (_u *QuestionUpdateOne) SetAsset(v *Asset) *QuestionUpdateOne {
	return _u.SetAssetID(v.ID)
}

// AddChoiceIDs adds the "choices" edge to the Choice entity by IDs.
func (_u *QuestionUpdateOne) AddChoiceIDs(ids ...int) *QuestionUpdateOne {
	_u.mutation.AddChoiceIDs(ids...)
	return _u
}

// AddChoices adds the "choices" edges to the Choice entity.
func (_u *QuestionUpdateOne) AddChoices(v ...*Choice) *QuestionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChoiceIDs(ids...)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearSection clears the "section" edge to the ExamSection entity.
func (_u *QuestionUpdateOne) ClearSection() *QuestionUpdateOne {
	_u.mutation.ClearSection()
	return _u
}

// ClearPassage clears the "passage" edge to the Passage entity.
func (_u *QuestionUpdateOne) ClearPassage() *QuestionUpdateOne {
	_u.mutation.ClearPassage()
	return _u
}

// ClearAsset clears the "asset" edge to the Asset entity.
func (_u *QuestionUpdateOne) ClearAsset() *QuestionUpdateOne {
	_u.mutation.ClearAsset()
	return _u
}

// ClearChoices clears all "choices" edges to the Choice entity.
func (_u *QuestionUpdateOne) ClearChoices() *QuestionUpdateOne {
	_u.mutation.ClearChoices()
	return _u
}

// RemoveChoiceIDs removes the "choices" edge to Choice entities by IDs.
func (_u *QuestionUpdateOne) RemoveChoiceIDs(ids ...int) *QuestionUpdateOne {
	_u.mutation.RemoveChoiceIDs(ids...)
	return _u
}

// RemoveChoices removes "choices" edges to Choice entities.
func (_u *QuestionUpdateOne) RemoveChoices(v ...*Choice) *QuestionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChoiceIDs(ids...)
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Stem(); ok {
		if err := question.StemValidator(v); err != nil {
			return &ValidationError{Name: "stem", err: fmt.Errorf(`ent: validator failed for field "Question.stem": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subtype(); ok {
		if err := question.SubtypeValidator(v); err != nil {
			return &ValidationError{Name: "subtype", err: fmt.Errorf(`ent: validator failed for field "Question.subtype": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	if _u.mutation.SectionCleared() && len(_u.mutation.SectionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Question.section"`)
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
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
	if value, ok := _u.mutation.Stem(); ok {
		_spec.SetField(question.FieldStem, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtype(); ok {
		_spec.SetField(question.FieldSubtype, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(question.FieldExplanation, field.TypeString)
	}
	if _u.mutation.SectionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.SectionTable,
			Columns: []string{question.SectionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(examsection.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SectionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.SectionTable,
			Columns: []string{question.SectionColumn},
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
	if _u.mutation.PassageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.PassageTable,
			Columns: []string{question.PassageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(passage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PassageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.PassageTable,
			Columns: []string{question.PassageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(passage.FieldID, field.TypeInt),
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
			Table:   question.AssetTable,
			Columns: []string{question.AssetColumn},
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
			Table:   question.AssetTable,
			Columns: []string{question.AssetColumn},
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
	if _u.mutation.ChoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.ChoicesTable,
			Columns: []string{question.ChoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(choice.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChoicesIDs(); len(nodes) > 0 && !_u.mutation.ChoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.ChoicesTable,
			Columns: []string{question.ChoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(choice.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.ChoicesTable,
			Columns: []string{question.ChoicesColumn},
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
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
