// Code generated by ent, DO NOT EDIT.

package cefrcertificate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the cefrcertificate type in the database.
	Label = "cefr_certificate"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldExamCode holds the string denoting the exam_code field in the database.
	FieldExamCode = "exam_code"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldPublicID holds the string denoting the public_id field in the database.
	FieldPublicID = "public_id"
	// FieldIssuedAt holds the string denoting the issued_at field in the database.
	FieldIssuedAt = "issued_at"
	// FieldPdfPath holds the string denoting the pdf_path field in the database.
	FieldPdfPath = "pdf_path"
	// Table holds the table name of the cefrcertificate in the database.
	Table = "cefr_certificates"
)

// Columns holds all SQL columns for cefrcertificate fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldExamCode,
	FieldLevel,
	FieldPublicID,
	FieldIssuedAt,
	FieldPdfPath,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// ExamCodeValidator is a validator for the "exam_code" field. It is called by the builders before save.
	ExamCodeValidator func(string) error
	// PublicIDValidator is a validator for the "public_id" field. It is called by the builders before save.
	PublicIDValidator func(string) error
	// DefaultIssuedAt holds the default value on creation for the "issued_at" field.
	DefaultIssuedAt func() time.Time
	// DefaultPdfPath holds the default value on creation for the "pdf_path" field.
	DefaultPdfPath string
)

// Level defines the type for the "level" enum field.
type Level string

// Level values.
const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

func (l Level) String() string {
	return string(l)
}

// LevelValidator is a validator for the "level" field enum values. It is called by the builders before save.
func LevelValidator(l Level) error {
	switch l {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return nil
	default:
		return fmt.Errorf("cefrcertificate: invalid enum value for level field: %q", l)
	}
}

// OrderOption defines the ordering options for the CEFRCertificate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByExamCode orders the results by the exam_code field.
func ByExamCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamCode, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByPublicID orders the results by the public_id field.
func ByPublicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublicID, opts...).ToFunc()
}

// ByIssuedAt orders the results by the issued_at field.
func ByIssuedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssuedAt, opts...).ToFunc()
}

// ByPdfPath orders the results by the pdf_path field.
func ByPdfPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfPath, opts...).ToFunc()
}
