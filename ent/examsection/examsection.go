// Code generated by ent, DO NOT EDIT.

package examsection

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the examsection type in the database.
	Label = "exam_section"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSectionCode holds the string denoting the section_code field in the database.
	FieldSectionCode = "section_code"
	// FieldOrder holds the string denoting the order field in the database.
	FieldOrder = "order"
	// FieldDurationSeconds holds the string denoting the duration_seconds field in the database.
	FieldDurationSeconds = "duration_seconds"
	// EdgeExam holds the string denoting the exam edge name in mutations.
	EdgeExam = "exam"
	// EdgeQuestions holds the string denoting the questions edge name in mutations.
	EdgeQuestions = "questions"
	// Table holds the table name of the examsection in the database.
	Table = "exam_sections"
	// ExamTable is the table that holds the exam relation/edge.
	ExamTable = "exam_sections"
	// ExamInverseTable is the table name for the Exam entity.
	// It exists in this package in order to avoid circular dependency with the "exam" package.
	ExamInverseTable = "exams"
	// ExamColumn is the table column denoting the exam relation/edge.
	ExamColumn = "exam_sections"
	// QuestionsTable is the table that holds the questions relation/edge.
	QuestionsTable = "questions"
	// QuestionsInverseTable is the table name for the Question entity.
	// It exists in this package in order to avoid circular dependency with the "question" package.
	QuestionsInverseTable = "questions"
	// QuestionsColumn is the table column denoting the questions relation/edge.
	QuestionsColumn = "exam_section_questions"
)

// Columns holds all SQL columns for examsection fields.
var Columns = []string{
	FieldID,
	FieldSectionCode,
	FieldOrder,
	FieldDurationSeconds,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "exam_sections"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"exam_sections",
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
	// OrderValidator is a validator for the "order" field. It is called by the builders before save.
	OrderValidator func(int) error
	// DefaultDurationSeconds holds the default value on creation for the "duration_seconds" field.
	DefaultDurationSeconds int
	// DurationSecondsValidator is a validator for the "duration_seconds" field. It is called by the builders before save.
	DurationSecondsValidator func(int) error
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
		return fmt.Errorf("examsection: invalid enum value for section_code field: %q", sc)
	}
}

// OrderOption defines the ordering options for the ExamSection queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySectionCode orders the results by the section_code field.
func BySectionCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSectionCode, opts...).ToFunc()
}

// ByOrder orders the results by the order field.
func ByOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrder, opts...).ToFunc()
}

// ByDurationSeconds orders the results by the duration_seconds field.
func ByDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSeconds, opts...).ToFunc()
}

// ByExamField orders the results by exam field.
func ByExamField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExamStep(), sql.OrderByField(field, opts...))
	}
}

// ByQuestionsCount orders the results by questions count.
func ByQuestionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQuestionsStep(), opts...)
	}
}

// ByQuestions orders the results by questions terms.
func ByQuestions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newExamStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExamInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExamTable, ExamColumn),
	)
}
func newQuestionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
	)
}
