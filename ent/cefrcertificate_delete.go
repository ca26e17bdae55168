// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/visaetude/prepcore/ent/cefrcertificate"
	"github.com/visaetude/prepcore/ent/predicate"
)

// CEFRCertificateDelete is the builder for deleting a CEFRCertificate entity.
type CEFRCertificateDelete struct {
	config
	hooks    []Hook
	mutation *CEFRCertificateMutation
}

// Where appends a list predicates to the CEFRCertificateDelete builder.
func (_d *CEFRCertificateDelete) Where(ps ...predicate.CEFRCertificate) *CEFRCertificateDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CEFRCertificateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CEFRCertificateDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CEFRCertificateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(cefrcertificate.Table, sqlgraph.NewFieldSpec(cefrcertificate.FieldID, field.TypeInt))
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

// CEFRCertificateDeleteOne is the builder for deleting a single CEFRCertificate entity.
type CEFRCertificateDeleteOne struct {
	_d *CEFRCertificateDelete
}

// Where appends a list predicates to the CEFRCertificateDelete builder.
func (_d *CEFRCertificateDeleteOne) Where(ps ...predicate.CEFRCertificate) *CEFRCertificateDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CEFRCertificateDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{cefrcertificate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CEFRCertificateDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
