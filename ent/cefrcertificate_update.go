// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/visaetude/prepcore/ent/cefrcertificate"
	"github.com/visaetude/prepcore/ent/predicate"
)

// CEFRCertificateUpdate is the builder for updating CEFRCertificate entities.
type CEFRCertificateUpdate struct {
	config
	hooks    []Hook
	mutation *CEFRCertificateMutation
}

// Where appends a list predicates to the CEFRCertificateUpdate builder.
func (_u *CEFRCertificateUpdate) Where(ps ...predicate.CEFRCertificate) *CEFRCertificateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CEFRCertificateUpdate) SetUserID(v string) *CEFRCertificateUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CEFRCertificateUpdate) SetNillableUserID(v *string) *CEFRCertificateUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetExamCode sets the "exam_code" field.
func (_u *CEFRCertificateUpdate) SetExamCode(v string) *CEFRCertificateUpdate {
	_u.mutation.SetExamCode(v)
	return _u
}

// SetNillableExamCode sets the "exam_code" field if the given value is not nil.
func (_u *CEFRCertificateUpdate) SetNillableExamCode(v *string) *CEFRCertificateUpdate {
	if v != nil {
		_u.SetExamCode(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *CEFRCertificateUpdate) SetLevel(v cefrcertificate.Level) *CEFRCertificateUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *CEFRCertificateUpdate) SetNillableLevel(v *cefrcertificate.Level) *CEFRCertificateUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetPdfPath sets the "pdf_path" field.
func (_u *CEFRCertificateUpdate) SetPdfPath(v string) *CEFRCertificateUpdate {
	_u.mutation.SetPdfPath(v)
	return _u
}

// SetNillablePdfPath sets the "pdf_path" field if the given value is not nil.
func (_u *CEFRCertificateUpdate) SetNillablePdfPath(v *string) *CEFRCertificateUpdate {
	if v != nil {
		_u.SetPdfPath(*v)
	}
	return _u
}

// Mutation returns the CEFRCertificateMutation object of the builder.
func (_u *CEFRCertificateUpdate) Mutation() *CEFRCertificateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CEFRCertificateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CEFRCertificateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CEFRCertificateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CEFRCertificateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CEFRCertificateUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := cefrcertificate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CEFRCertificate.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamCode(); ok {
		if err := cefrcertificate.ExamCodeValidator(v); err != nil {
			return &ValidationError{Name: "exam_code", err: fmt.Errorf(`ent: validator failed for field "CEFRCertificate.exam_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := cefrcertificate.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "CEFRCertificate.level": %w`, err)}
		}
	}
	return nil
}

func (_u *CEFRCertificateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cefrcertificate.Table, cefrcertificate.Columns, sqlgraph.NewFieldSpec(cefrcertificate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(cefrcertificate.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamCode(); ok {
		_spec.SetField(cefrcertificate.FieldExamCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(cefrcertificate.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PdfPath(); ok {
		_spec.SetField(cefrcertificate.FieldPdfPath, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cefrcertificate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CEFRCertificateUpdateOne is the builder for updating a single CEFRCertificate entity.
type CEFRCertificateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CEFRCertificateMutation
}

// SetUserID sets the "user_id" field.
func (_u *CEFRCertificateUpdateOne) SetUserID(v string) *CEFRCertificateUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CEFRCertificateUpdateOne) SetNillableUserID(v *string) *CEFRCertificateUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetExamCode sets the "exam_code" field.
func (_u *CEFRCertificateUpdateOne) SetExamCode(v string) *CEFRCertificateUpdateOne {
	_u.mutation.SetExamCode(v)
	return _u
}

// SetNillableExamCode sets the "exam_code" field if the given value is not nil.
func (_u *CEFRCertificateUpdateOne) SetNillableExamCode(v *string) *CEFRCertificateUpdateOne {
	if v != nil {
		_u.SetExamCode(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *CEFRCertificateUpdateOne) SetLevel(v cefrcertificate.Level) *CEFRCertificateUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *CEFRCertificateUpdateOne) SetNillableLevel(v *cefrcertificate.Level) *CEFRCertificateUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetPdfPath sets the "pdf_path" field.
func (_u *CEFRCertificateUpdateOne) SetPdfPath(v string) *CEFRCertificateUpdateOne {
	_u.mutation.SetPdfPath(v)
	return _u
}

// SetNillablePdfPath sets the "pdf_path" field if the given value is not nil.
func (_u *CEFRCertificateUpdateOne) SetNillablePdfPath(v *string) *CEFRCertificateUpdateOne {
	if v != nil {
		_u.SetPdfPath(*v)
	}
	return _u
}

// Mutation returns the CEFRCertificateMutation object of the builder.
func (_u *CEFRCertificateUpdateOne) Mutation() *CEFRCertificateMutation {
	return _u.mutation
}

// Where appends a list predicates to the CEFRCertificateUpdate builder.
func (_u *CEFRCertificateUpdateOne) Where(ps ...predicate.CEFRCertificate) *CEFRCertificateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CEFRCertificateUpdateOne) Select(field string, fields ...string) *CEFRCertificateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CEFRCertificate entity.
func (_u *CEFRCertificateUpdateOne) Save(ctx context.Context) (*CEFRCertificate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CEFRCertificateUpdateOne) SaveX(ctx context.Context) *CEFRCertificate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CEFRCertificateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CEFRCertificateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CEFRCertificateUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := cefrcertificate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CEFRCertificate.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamCode(); ok {
		if err := cefrcertificate.ExamCodeValidator(v); err != nil {
			return &ValidationError{Name: "exam_code", err: fmt.Errorf(`ent: validator failed for field "CEFRCertificate.exam_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := cefrcertificate.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "CEFRCertificate.level": %w`, err)}
		}
	}
	return nil
}

func (_u *CEFRCertificateUpdateOne) sqlSave(ctx context.Context) (_node *CEFRCertificate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cefrcertificate.Table, cefrcertificate.Columns, sqlgraph.NewFieldSpec(cefrcertificate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CEFRCertificate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cefrcertificate.FieldID)
		for _, f := range fields {
			if !cefrcertificate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cefrcertificate.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(cefrcertificate.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamCode(); ok {
		_spec.SetField(cefrcertificate.FieldExamCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(cefrcertificate.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PdfPath(); ok {
		_spec.SetField(cefrcertificate.FieldPdfPath, field.TypeString, value)
	}
	_node = &CEFRCertificate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cefrcertificate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
