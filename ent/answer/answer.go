// Code generated by ent, DO NOT EDIT.

package answer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the answer type in the database.
	Label = "answer"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTextAnswer holds the string denoting the text_answer field in the database.
	FieldTextAnswer = "text_answer"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAttempt holds the string denoting the attempt edge name in mutations.
	EdgeAttempt = "attempt"
	// EdgeQuestion holds the string denoting the question edge name in mutations.
	EdgeQuestion = "question"
	// EdgeChoice holds the string denoting the choice edge name in mutations.
	EdgeChoice = "choice"
	// Table holds the table name of the answer in the database.
	Table = "answers"
	// AttemptTable is the table that holds the attempt relation/edge.
	AttemptTable = "answers"
	// AttemptInverseTable is the table name for the Attempt entity.
	// It exists in this package in order to avoid circular dependency with the "attempt" package.
	AttemptInverseTable = "attempts"
	// AttemptColumn is the table column denoting the attempt relation/edge.
	AttemptColumn = "attempt_answers"
	// QuestionTable is the table that holds the question relation/edge.
	QuestionTable = "answers"
	// QuestionInverseTable is the table name for the Question entity.
	// It exists in this package in order to avoid circular dependency with the "question" package.
	QuestionInverseTable = "questions"
	// QuestionColumn is the table column denoting the question relation/edge.
	QuestionColumn = "answer_question"
	// ChoiceTable is the table that holds the choice relation/edge.
	ChoiceTable = "answers"
	// ChoiceInverseTable is the table name for the Choice entity.
	// It exists in this package in order to avoid circular dependency with the "choice" package.
	ChoiceInverseTable = "choices"
	// ChoiceColumn is the table column denoting the choice relation/edge.
	ChoiceColumn = "answer_choice"
)

// Columns holds all SQL columns for answer fields.
var Columns = []string{
	FieldID,
	FieldTextAnswer,
	FieldCorrect,
	FieldCreatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "answers"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"answer_question",
	"answer_choice",
	"attempt_answers",
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
	// DefaultTextAnswer holds the default value on creation for the "text_answer" field.
	DefaultTextAnswer string
	// DefaultCorrect holds the default value on creation for the "correct" field.
	DefaultCorrect bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Answer queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTextAnswer orders the results by the text_answer field.
func ByTextAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextAnswer, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAttemptField orders the results by attempt field.
func ByAttemptField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttemptStep(), sql.OrderByField(field, opts...))
	}
}

// ByQuestionField orders the results by question field.
func ByQuestionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionStep(), sql.OrderByField(field, opts...))
	}
}

// ByChoiceField orders the results by choice field.
func ByChoiceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChoiceStep(), sql.OrderByField(field, opts...))
	}
}
func newAttemptStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttemptInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AttemptTable, AttemptColumn),
	)
}
func newQuestionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, QuestionTable, QuestionColumn),
	)
}
func newChoiceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChoiceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, ChoiceTable, ChoiceColumn),
	)
}
