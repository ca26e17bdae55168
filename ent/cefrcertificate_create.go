// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/visaetude/prepcore/ent/cefrcertificate"
)

// CEFRCertificateCreate is the builder for creating a CEFRCertificate entity.
type CEFRCertificateCreate struct {
	config
	mutation *CEFRCertificateMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *CEFRCertificateCreate) SetUserID(v string) *CEFRCertificateCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetExamCode sets the "exam_code" field.
func (_c *CEFRCertificateCreate) SetExamCode(v string) *CEFRCertificateCreate {
	_c.mutation.SetExamCode(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *CEFRCertificateCreate) SetLevel(v cefrcertificate.Level) *CEFRCertificateCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetPublicID sets the "public_id" field.
func (_c *CEFRCertificateCreate) SetPublicID(v string) *CEFRCertificateCreate {
	_c.mutation.SetPublicID(v)
	return _c
}

// SetIssuedAt sets the "issued_at" field.
func (_c *CEFRCertificateCreate) SetIssuedAt(v time.Time) *CEFRCertificateCreate {
	_c.mutation.SetIssuedAt(v)
	return _c
}

// SetNillableIssuedAt sets the "issued_at" field if the given value is not nil.
func (_c *CEFRCertificateCreate) SetNillableIssuedAt(v *time.Time) *CEFRCertificateCreate {
	if v != nil {
		_c.SetIssuedAt(*v)
	}
	return _c
}

// SetPdfPath sets the "pdf_path" field.
func (_c *CEFRCertificateCreate) SetPdfPath(v string) *CEFRCertificateCreate {
	_c.mutation.SetPdfPath(v)
	return _c
}

// SetNillablePdfPath sets the "pdf_path" field if the given value is not nil.
func (_c *CEFRCertificateCreate) SetNillablePdfPath(v *string) *CEFRCertificateCreate {
	if v != nil {
		_c.SetPdfPath(*v)
	}
	return _c
}

// Mutation returns the CEFRCertificateMutation object of the builder.
func (_c *CEFRCertificateCreate) Mutation() *CEFRCertificateMutation {
	return _c.mutation
}

// Save creates the CEFRCertificate in the database.
func (_c *CEFRCertificateCreate) Save(ctx context.Context) (*CEFRCertificate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CEFRCertificateCreate) SaveX(ctx context.Context) *CEFRCertificate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CEFRCertificateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CEFRCertificateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CEFRCertificateCreate) defaults() {
	if _, ok := _c.mutation.IssuedAt(); !ok {
		v := cefrcertificate.DefaultIssuedAt()
		_c.mutation.SetIssuedAt(v)
	}
	if _, ok := _c.mutation.PdfPath(); !ok {
		v := cefrcertificate.DefaultPdfPath
		_c.mutation.SetPdfPath(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CEFRCertificateCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CEFRCertificate.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := cefrcertificate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CEFRCertificate.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExamCode(); !ok {
		return &ValidationError{Name: "exam_code", err: errors.New(`ent: missing required field "CEFRCertificate.exam_code"`)}
	}
	if v, ok := _c.mutation.ExamCode(); ok {
		if err := cefrcertificate.ExamCodeValidator(v); err != nil {
			return &ValidationError{Name: "exam_code", err: fmt.Errorf(`ent: validator failed for field "CEFRCertificate.exam_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "CEFRCertificate.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := cefrcertificate.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "CEFRCertificate.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PublicID(); !ok {
		return &ValidationError{Name: "public_id", err: errors.New(`ent: missing required field "CEFRCertificate.public_id"`)}
	}
	if v, ok := _c.mutation.PublicID(); ok {
		if err := cefrcertificate.PublicIDValidator(v); err != nil {
			return &ValidationError{Name: "public_id", err: fmt.Errorf(`ent: validator failed for field "CEFRCertificate.public_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IssuedAt(); !ok {
		return &ValidationError{Name: "issued_at", err: errors.New(`ent: missing required field "CEFRCertificate.issued_at"`)}
	}
	if _, ok := _c.mutation.PdfPath(); !ok {
		return &ValidationError{Name: "pdf_path", err: errors.New(`ent: missing required field "CEFRCertificate.pdf_path"`)}
	}
	return nil
}

func (_c *CEFRCertificateCreate) sqlSave(ctx context.Context) (*CEFRCertificate, error) {
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

func (_c *CEFRCertificateCreate) createSpec() (*CEFRCertificate, *sqlgraph.CreateSpec) {
	var (
		_node = &CEFRCertificate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cefrcertificate.Table, sqlgraph.NewFieldSpec(cefrcertificate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(cefrcertificate.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ExamCode(); ok {
		_spec.SetField(cefrcertificate.FieldExamCode, field.TypeString, value)
		_node.ExamCode = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(cefrcertificate.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.PublicID(); ok {
		_spec.SetField(cefrcertificate.FieldPublicID, field.TypeString, value)
		_node.PublicID = value
	}
	if value, ok := _c.mutation.IssuedAt(); ok {
		_spec.SetField(cefrcertificate.FieldIssuedAt, field.TypeTime, value)
		_node.IssuedAt = value
	}
	if value, ok := _c.mutation.PdfPath(); ok {
		_spec.SetField(cefrcertificate.FieldPdfPath, field.TypeString, value)
		_node.PdfPath = value
	}
	return _node, _spec
}

// CEFRCertificateCreateBulk is the builder for creating many CEFRCertificate entities in bulk.
type CEFRCertificateCreateBulk struct {
	config
	err      error
	builders []*CEFRCertificateCreate
}

// Save creates the CEFRCertificate entities in the database.
func (_c *CEFRCertificateCreateBulk) Save(ctx context.Context) ([]*CEFRCertificate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CEFRCertificate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CEFRCertificateMutation)
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
func (_c *CEFRCertificateCreateBulk) SaveX(ctx context.Context) []*CEFRCertificate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CEFRCertificateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CEFRCertificateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
