// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/visaetude/prepcore/ent/asset"
	"github.com/visaetude/prepcore/ent/choice"
	"github.com/visaetude/prepcore/ent/examsection"
	"github.com/visaetude/prepcore/ent/passage"
	"github.com/visaetude/prepcore/ent/question"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
}

// SetStem sets the "stem" field.
func (_c *QuestionCreate) SetStem(v string) *QuestionCreate {
	_c.mutation.SetStem(v)
	return _c
}

// SetSubtype sets the "subtype" field.
func (_c *QuestionCreate) SetSubtype(v question.Subtype) *QuestionCreate {
	_c.mutation.SetSubtype(v)
	return _c
}

// SetNillableSubtype sets the "subtype" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableSubtype(v *question.Subtype) *QuestionCreate {
	if v != nil {
		_c.SetSubtype(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuestionCreate) SetDifficulty(v question.Difficulty) *QuestionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableDifficulty(v *question.Difficulty) *QuestionCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *QuestionCreate) SetExplanation(v string) *QuestionCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableExplanation(v *string) *QuestionCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetSectionID sets the "section" edge to the ExamSection entity by ID.
func (_c *QuestionCreate) SetSectionID(id int) *QuestionCreate {
	_c.mutation.SetSectionID(id)
	return _c
}

// SetSection sets the "section" edge to the ExamSection entity.
func (_c *QuestionCreate) SetSection(v *ExamSection) *QuestionCreate {
	return _c.SetSectionID(v.ID)
}

// SetPassageID sets the "passage" edge to the Passage entity by ID.
func (_c *QuestionCreate) SetPassageID(id int) *QuestionCreate {
	_c.mutation.SetPassageID(id)
	return _c
}

// SetNillablePassageID sets the "passage" edge to the Passage entity by ID if the given value is not nil.
func (_c *QuestionCreate) SetNillablePassageID(id *int) *QuestionCreate {
	if id != nil {
		_c = _c.SetPassageID(*id)
	}
	return _c
}

// SetPassage sets the "passage" edge to the Passage entity.
func (_c *QuestionCreate) SetPassage(v *Passage) *QuestionCreate {
	return _c.SetPassageID(v.ID)
}

// SetAssetID sets the "asset" edge to the Asset entity by ID.
func (_c *QuestionCreate) SetAssetID(id int) *QuestionCreate {
	_c.mutation.SetAssetID(id)
	return _c
}

// SetNillableAssetID sets the "asset" edge to the Asset entity by ID if the given value is not nil.
func (_c *QuestionCreate) SetNillableAssetID(id *int) *QuestionCreate {
	if id != nil {
		_c = _c.SetAssetID(*id)
	}
	return _c
}

// SetAsset sets the "asset" edge to the Asset entity.
func (_c *QuestionCreate) SetAsset(v *Asset) *QuestionCreate {
	return _c.SetAssetID(v.ID)
}

// AddChoiceIDs adds the "choices" edge to the Choice entity by IDs.
func (_c *QuestionCreate) AddChoiceIDs(ids ...int) *QuestionCreate {
	_c.mutation.AddChoiceIDs(ids...)
	return _c
}

// AddChoices adds the "choices" edges to the Choice entity.
func (_c *QuestionCreate) AddChoices(v ...*Choice) *QuestionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChoiceIDs(ids...)
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.Subtype(); !ok {
		v := question.DefaultSubtype
		_c.mutation.SetSubtype(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := question.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.Stem(); !ok {
		return &ValidationError{Name: "stem", err: errors.New(`ent: missing required field "Question.stem"`)}
	}
	if v, ok := _c.mutation.Stem(); ok {
		if err := question.StemValidator(v); err != nil {
			return &ValidationError{Name: "stem", err: fmt.Errorf(`ent: validator failed for field "Question.stem": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subtype(); !ok {
		return &ValidationError{Name: "subtype", err: errors.New(`ent: missing required field "Question.subtype"`)}
	}
	if v, ok := _c.mutation.Subtype(); ok {
		if err := question.SubtypeValidator(v); err != nil {
			return &ValidationError{Name: "subtype", err: fmt.Errorf(`ent: validator failed for field "Question.subtype": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Question.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	if len(_c.mutation.SectionIDs()) == 0 {
		return &ValidationError{Name: "section", err: errors.New(`ent: missing required edge "Question.section"`)}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
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

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Stem(); ok {
		_spec.SetField(question.FieldStem, field.TypeString, value)
		_node.Stem = value
	}
	if value, ok := _c.mutation.Subtype(); ok {
		_spec.SetField(question.FieldSubtype, field.TypeEnum, value)
		_node.Subtype = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeEnum, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if nodes := _c.mutation.SectionIDs(); len(nodes) > 0 {
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
		_node.exam_section_questions = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PassageIDs(); len(nodes) > 0 {
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
		_node.passage_questions = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssetIDs(); len(nodes) > 0 {
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
		_node.question_asset = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChoicesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
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
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
