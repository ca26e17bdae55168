// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/visaetude/prepcore/ent/cefrcertificate"
)

// CEFRCertificate is the model entity for the CEFRCertificate schema.
type CEFRCertificate struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ExamCode holds the value of the "exam_code" field.
	ExamCode string `json:"exam_code,omitempty"`
	// Level holds the value of the "level" field.
	Level cefrcertificate.Level `json:"level,omitempty"`
	// 12 uppercase hex characters
	PublicID string `json:"public_id,omitempty"`
	// IssuedAt holds the value of the "issued_at" field.
	IssuedAt time.Time `json:"issued_at,omitempty"`
	// Media-relative path of the rendered certificate
	PdfPath      string `json:"pdf_path,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CEFRCertificate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cefrcertificate.FieldID:
			values[i] = new(sql.NullInt64)
		case cefrcertificate.FieldUserID, cefrcertificate.FieldExamCode, cefrcertificate.FieldLevel, cefrcertificate.FieldPublicID, cefrcertificate.FieldPdfPath:
			values[i] = new(sql.NullString)
		case cefrcertificate.FieldIssuedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CEFRCertificate fields.
func (_m *CEFRCertificate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cefrcertificate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case cefrcertificate.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case cefrcertificate.FieldExamCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exam_code", values[i])
			} else if value.Valid {
				_m.ExamCode = value.String
			}
		case cefrcertificate.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = cefrcertificate.Level(value.String)
			}
		case cefrcertificate.FieldPublicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field public_id", values[i])
			} else if value.Valid {
				_m.PublicID = value.String
			}
		case cefrcertificate.FieldIssuedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field issued_at", values[i])
			} else if value.Valid {
				_m.IssuedAt = value.Time
			}
		case cefrcertificate.FieldPdfPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pdf_path", values[i])
			} else if value.Valid {
				_m.PdfPath = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CEFRCertificate.
// This includes values selected through modifiers, order, etc.
func (_m *CEFRCertificate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CEFRCertificate.
// Note that you need to call CEFRCertificate.Unwrap() before calling this method if this CEFRCertificate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CEFRCertificate) Update() *CEFRCertificateUpdateOne {
	return NewCEFRCertificateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CEFRCertificate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CEFRCertificate) Unwrap() *CEFRCertificate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CEFRCertificate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CEFRCertificate) String() string {
	var builder strings.Builder
	builder.WriteString("CEFRCertificate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("exam_code=")
	builder.WriteString(_m.ExamCode)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("public_id=")
	builder.WriteString(_m.PublicID)
	builder.WriteString(", ")
	builder.WriteString("issued_at=")
	builder.WriteString(_m.IssuedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("pdf_path=")
	builder.WriteString(_m.PdfPath)
	builder.WriteByte(')')
	return builder.String()
}

// CEFRCertificates is a parsable slice of CEFRCertificate.
type CEFRCertificates []*CEFRCertificate
