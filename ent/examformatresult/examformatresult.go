// Code generated by ent, DO NOT EDIT.

package examformatresult

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the examformatresult type in the database.
	Label = "exam_format_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldExamCode holds the string denoting the exam_code field in the database.
	FieldExamCode = "exam_code"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldSectionResults holds the string denoting the section_results field in the database.
	FieldSectionResults = "section_results"
	// FieldGlobalScore holds the string denoting the global_score field in the database.
	FieldGlobalScore = "global_score"
	// FieldScoreMax holds the string denoting the score_max field in the database.
	FieldScoreMax = "score_max"
	// FieldGlobalCefr holds the string denoting the global_cefr field in the database.
	FieldGlobalCefr = "global_cefr"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldTakenAt holds the string denoting the taken_at field in the database.
	FieldTakenAt = "taken_at"
	// Table holds the table name of the examformatresult in the database.
	Table = "exam_format_results"
)

// Columns holds all SQL columns for examformatresult fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldExamCode,
	FieldLevel,
	FieldSectionResults,
	FieldGlobalScore,
	FieldScoreMax,
	FieldGlobalCefr,
	FieldPassed,
	FieldTakenAt,
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
	// DefaultGlobalScore holds the default value on creation for the "global_score" field.
	DefaultGlobalScore float64
	// DefaultScoreMax holds the default value on creation for the "score_max" field.
	DefaultScoreMax float64
	// DefaultGlobalCefr holds the default value on creation for the "global_cefr" field.
	DefaultGlobalCefr string
	// DefaultPassed holds the default value on creation for the "passed" field.
	DefaultPassed bool
	// DefaultTakenAt holds the default value on creation for the "taken_at" field.
	DefaultTakenAt func() time.Time
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
		return fmt.Errorf("examformatresult: invalid enum value for level field: %q", l)
	}
}

// OrderOption defines the ordering options for the ExamFormatResult queries.
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

// ByGlobalScore orders the results by the global_score field.
func ByGlobalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGlobalScore, opts...).ToFunc()
}

// ByScoreMax orders the results by the score_max field.
func ByScoreMax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreMax, opts...).ToFunc()
}

// ByGlobalCefr orders the results by the global_cefr field.
func ByGlobalCefr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGlobalCefr, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByTakenAt orders the results by the taken_at field.
func ByTakenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTakenAt, opts...).ToFunc()
}
