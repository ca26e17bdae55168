// Code generated by ent, DO NOT EDIT.

package attempt

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the attempt type in the database.
	Label = "attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSectionCode holds the string denoting the section_code field in the database.
	FieldSectionCode = "section_code"
	// FieldTotalItems holds the string denoting the total_items field in the database.
	FieldTotalItems = "total_items"
	// FieldRawScore holds the string denoting the raw_score field in the database.
	FieldRawScore = "raw_score"
	// FieldScorePercent holds the string denoting the score_percent field in the database.
	FieldScorePercent = "score_percent"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// EdgeAnswers holds the string denoting the answers edge name in mutations.
	EdgeAnswers = "answers"
	// Table holds the table name of the attempt in the database.
	Table = "attempts"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "attempts"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_attempts"
	// AnswersTable is the table that holds the answers relation/edge.
	AnswersTable = "answers"
	// AnswersInverseTable is the table name for the Answer entity.
	// It exists in this package in order to avoid circular dependency with the "answer" package.
	AnswersInverseTable = "answers"
	// AnswersColumn is the table column denoting the answers relation/edge.
	AnswersColumn = "attempt_answers"
)

// Columns holds all SQL columns for attempt fields.
var Columns = []string{
	FieldID,
	FieldSectionCode,
	FieldTotalItems,
	FieldRawScore,
	FieldScorePercent,
	FieldStartedAt,
	FieldFinishedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "attempts"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"session_attempts",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTotalItems holds the default value on creation for the "total_items" field.
	DefaultTotalItems int
	// TotalItemsValidator is a validator for the "total_items" field. It is called by the builders before save.
	TotalItemsValidator func(int) error
	// DefaultRawScore holds the default value on creation for the "raw_score" field.
	DefaultRawScore int
	// RawScoreValidator is a validator for the "raw_score" field. It is called by the builders before save.
	RawScoreValidator func(int) error
	// DefaultScorePercent holds the default value on creation for the "score_percent" field.
	DefaultScorePercent float64
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// SectionCode defines the type for the "section_code" enum field.
type SectionCode string

// SectionCode values.
const (
	SectionCodeCo SectionCode = "co"
	SectionCodeCe SectionCode = "ce"
	SectionCodeEo SectionCode = "eo"
	SectionCodeEe SectionCode = "ee"
)

func (sc SectionCode) String() string {
	return string(sc)
}

// SectionCodeValidator is a validator for the "section_code" field enum values. It is called by the builders before save.
func SectionCodeValidator(sc SectionCode) error {
	switch sc {
	case SectionCodeCo, SectionCodeCe, SectionCodeEo, SectionCodeEe:
		return nil
	default:
		return fmt.Errorf("attempt: invalid enum value for section_code field: %q", sc)
	}
}

// OrderOption defines the ordering options for the Attempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySectionCode orders the results by the section_code field.
func BySectionCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSectionCode, opts...).ToFunc()
}

// ByTotalItems orders the results by the total_items field.
func ByTotalItems(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalItems, opts...).ToFunc()
}

// ByRawScore orders the results by the raw_score field.
func ByRawScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawScore, opts...).ToFunc()
}

// ByScorePercent orders the results by the score_percent field.
func ByScorePercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScorePercent, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}

// ByAnswersCount orders the results by answers count.
func ByAnswersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnswersStep(), opts...)
	}
}

// ByAnswers orders the results by answers terms.
func ByAnswers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnswersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
func newAnswersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnswersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
	)
}
