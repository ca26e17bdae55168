// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/visaetude/prepcore/ent/examformatresult"
	"github.com/visaetude/prepcore/ent/predicate"
)

// ExamFormatResultDelete is the builder for deleting a ExamFormatResult entity.
type ExamFormatResultDelete struct {
	config
	hooks    []Hook
	mutation *ExamFormatResultMutation
}

// Where appends a list predicates to the ExamFormatResultDelete builder.
func (_d *ExamFormatResultDelete) Where(ps ...predicate.ExamFormatResult) *ExamFormatResultDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExamFormatResultDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExamFormatResultDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExamFormatResultDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(examformatresult.Table, sqlgraph.NewFieldSpec(examformatresult.FieldID, field.TypeInt))
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

// ExamFormatResultDeleteOne is the builder for deleting a single ExamFormatResult entity.
type ExamFormatResultDeleteOne struct {
	_d *ExamFormatResultDelete
}

// Where appends a list predicates to the ExamFormatResultDelete builder.
func (_d *ExamFormatResultDeleteOne) Where(ps ...predicate.ExamFormatResult) *ExamFormatResultDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExamFormatResultDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{examformatresult.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExamFormatResultDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
