// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/visaetude/prepcore/ent/userskillprogress"
)

// UserSkillProgressCreate is the builder for creating a UserSkillProgress entity.
type UserSkillProgressCreate struct {
	config
	mutation *UserSkillProgressMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UserSkillProgressCreate) SetUserID(v string) *UserSkillProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetExamCode sets the "exam_code" field.
func (_c *UserSkillProgressCreate) SetExamCode(v string) *UserSkillProgressCreate {
	_c.mutation.SetExamCode(v)
	return _c
}

// SetSkill sets the "skill" field.
func (_c *UserSkillProgressCreate) SetSkill(v userskillprogress.Skill) *UserSkillProgressCreate {
	_c.mutation.SetSkill(v)
	return _c
}

// SetCurrentLevel sets the "current_level" field.
func (_c *UserSkillProgressCreate) SetCurrentLevel(v userskillprogress.CurrentLevel) *UserSkillProgressCreate {
	_c.mutation.SetCurrentLevel(v)
	return _c
}

// SetNillableCurrentLevel sets the "current_level" field if the given value is not nil.
func (_c *UserSkillProgressCreate) SetNillableCurrentLevel(v *userskillprogress.CurrentLevel) *UserSkillProgressCreate {
	if v != nil {
		_c.SetCurrentLevel(*v)
	}
	return _c
}

// SetLastScorePercent sets the "last_score_percent" field.
func (_c *UserSkillProgressCreate) SetLastScorePercent(v float64) *UserSkillProgressCreate {
	_c.mutation.SetLastScorePercent(v)
	return _c
}

// SetNillableLastScorePercent sets the "last_score_percent" field if the given value is not nil.
func (_c *UserSkillProgressCreate) SetNillableLastScorePercent(v *float64) *UserSkillProgressCreate {
	if v != nil {
		_c.SetLastScorePercent(*v)
	}
	return _c
}

// SetTotalAttempts sets the "total_attempts" field.
func (_c *UserSkillProgressCreate) SetTotalAttempts(v int) *UserSkillProgressCreate {
	_c.mutation.SetTotalAttempts(v)
	return _c
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_c *UserSkillProgressCreate) SetNillableTotalAttempts(v *int) *UserSkillProgressCreate {
	if v != nil {
		_c.SetTotalAttempts(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserSkillProgressCreate) SetUpdatedAt(v time.Time) *UserSkillProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserSkillProgressCreate) SetNillableUpdatedAt(v *time.Time) *UserSkillProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the UserSkillProgressMutation object of the builder.
func (_c *UserSkillProgressCreate) Mutation() *UserSkillProgressMutation {
	return _c.mutation
}

// Save creates the UserSkillProgress in the database.
func (_c *UserSkillProgressCreate) Save(ctx context.Context) (*UserSkillProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserSkillProgressCreate) SaveX(ctx context.Context) *UserSkillProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserSkillProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserSkillProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserSkillProgressCreate) defaults() {
	if _, ok := _c.mutation.CurrentLevel(); !ok {
		v := userskillprogress.DefaultCurrentLevel
		_c.mutation.SetCurrentLevel(v)
	}
	if _, ok := _c.mutation.LastScorePercent(); !ok {
		v := userskillprogress.DefaultLastScorePercent
		_c.mutation.SetLastScorePercent(v)
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		v := userskillprogress.DefaultTotalAttempts
		_c.mutation.SetTotalAttempts(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := userskillprogress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserSkillProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserSkillProgress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := userskillprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserSkillProgress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExamCode(); !ok {
		return &ValidationError{Name: "exam_code", err: errors.New(`ent: missing required field "UserSkillProgress.exam_code"`)}
	}
	if v, ok := _c.mutation.ExamCode(); ok {
		if err := userskillprogress.ExamCodeValidator(v); err != nil {
			return &ValidationError{Name: "exam_code", err: fmt.Errorf(`ent: validator failed for field "UserSkillProgress.exam_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skill(); !ok {
		return &ValidationError{Name: "skill", err: errors.New(`ent: missing required field "UserSkillProgress.skill"`)}
	}
	if v, ok := _c.mutation.Skill(); ok {
		if err := userskillprogress.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "UserSkillProgress.skill": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentLevel(); !ok {
		return &ValidationError{Name: "current_level", err: errors.New(`ent: missing required field "UserSkillProgress.current_level"`)}
	}
	if v, ok := _c.mutation.CurrentLevel(); ok {
		if err := userskillprogress.CurrentLevelValidator(v); err != nil {
			return &ValidationError{Name: "current_level", err: fmt.Errorf(`ent: validator failed for field "UserSkillProgress.current_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastScorePercent(); !ok {
		return &ValidationError{Name: "last_score_percent", err: errors.New(`ent: missing required field "UserSkillProgress.last_score_percent"`)}
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		return &ValidationError{Name: "total_attempts", err: errors.New(`ent: missing required field "UserSkillProgress.total_attempts"`)}
	}
	if v, ok := _c.mutation.TotalAttempts(); ok {
		if err := userskillprogress.TotalAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "total_attempts", err: fmt.Errorf(`ent: validator failed for field "UserSkillProgress.total_attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserSkillProgress.updated_at"`)}
	}
	return nil
}

func (_c *UserSkillProgressCreate) sqlSave(ctx context.Context) (*UserSkillProgress, error) {
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

func (_c *UserSkillProgressCreate) createSpec() (*UserSkillProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &UserSkillProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userskillprogress.Table, sqlgraph.NewFieldSpec(userskillprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userskillprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ExamCode(); ok {
		_spec.SetField(userskillprogress.FieldExamCode, field.TypeString, value)
		_node.ExamCode = value
	}
	if value, ok := _c.mutation.Skill(); ok {
		_spec.SetField(userskillprogress.FieldSkill, field.TypeEnum, value)
		_node.Skill = value
	}
	if value, ok := _c.mutation.CurrentLevel(); ok {
		_spec.SetField(userskillprogress.FieldCurrentLevel, field.TypeEnum, value)
		_node.CurrentLevel = value
	}
	if value, ok := _c.mutation.LastScorePercent(); ok {
		_spec.SetField(userskillprogress.FieldLastScorePercent, field.TypeFloat64, value)
		_node.LastScorePercent = value
	}
	if value, ok := _c.mutation.TotalAttempts(); ok {
		_spec.SetField(userskillprogress.FieldTotalAttempts, field.TypeInt, value)
		_node.TotalAttempts = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(userskillprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// UserSkillProgressCreateBulk is the builder for creating many UserSkillProgress entities in bulk.
type UserSkillProgressCreateBulk struct {
	config
	err      error
	builders []*UserSkillProgressCreate
}

// Save creates the UserSkillProgress entities in the database.
func (_c *UserSkillProgressCreateBulk) Save(ctx context.Context) ([]*UserSkillProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserSkillProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserSkillProgressMutation)
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
func (_c *UserSkillProgressCreateBulk) SaveX(ctx context.Context) []*UserSkillProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserSkillProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserSkillProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
