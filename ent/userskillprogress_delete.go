// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/visaetude/prepcore/ent/predicate"
	"github.com/visaetude/prepcore/ent/userskillprogress"
)

// UserSkillProgressDelete is the builder for deleting a UserSkillProgress entity.
type UserSkillProgressDelete struct {
	config
	hooks    []Hook
	mutation *UserSkillProgressMutation
}

// Where appends a list predicates to the UserSkillProgressDelete builder.
func (_d *UserSkillProgressDelete) Where(ps ...predicate.UserSkillProgress) *UserSkillProgressDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *UserSkillProgressDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UserSkillProgressDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *UserSkillProgressDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(userskillprogress.Table, sqlgraph.NewFieldSpec(userskillprogress.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// UserSkillProgressDeleteOne is the builder for deleting a single UserSkillProgress entity.
type UserSkillProgressDeleteOne struct {
	_d *UserSkillProgressDelete
}

// Where appends a list predicates to the UserSkillProgressDelete builder.
func (_d *UserSkillProgressDeleteOne) Where(ps ...predicate.UserSkillProgress) *UserSkillProgressDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *UserSkillProgressDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{userskillprogress.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UserSkillProgressDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
