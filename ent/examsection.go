// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/visaetude/prepcore/ent/exam"
	"github.com/visaetude/prepcore/ent/examsection"
)

// ExamSection is the model entity for the ExamSection schema.
type ExamSection struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SectionCode holds the value of the "section_code" field.
	SectionCode examsection.SectionCode `json:"section_code,omitempty"`
	// Position within the exam, 1..4
	Order int `json:"order,omitempty"`
	// Nominal section duration
	DurationSeconds int `json:"duration_seconds,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExamSectionQuery when eager-loading is set.
	Edges         ExamSectionEdges `json:"edges"`
	exam_sections *int
	selectValues  sql.SelectValues
}

// ExamSectionEdges holds the relations/edges for other nodes in the graph.
type ExamSectionEdges struct {
	// Exam holds the value of the exam edge.
	Exam *Exam `json:"exam,omitempty"`
	// Questions holds the value of the questions edge.
	Questions []*Question `json:"questions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ExamOrErr returns the Exam value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExamSectionEdges) ExamOrErr() (*Exam, error) {
	if e.Exam != nil {
		return e.Exam, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: exam.Label}
	}
	return nil, &NotLoadedError{edge: "exam"}
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e ExamSectionEdges) QuestionsOrErr() ([]*Question, error) {
	if e.loadedTypes[1] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExamSection) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case examsection.FieldID, examsection.FieldOrder, examsection.FieldDurationSeconds:
			values[i] = new(sql.NullInt64)
		case examsection.FieldSectionCode:
			values[i] = new(sql.NullString)
		case examsection.ForeignKeys[0]: // exam_sections
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExamSection fields.
func (_m *ExamSection) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case examsection.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case examsection.FieldSectionCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section_code", values[i])
			} else if value.Valid {
				_m.SectionCode = examsection.SectionCode(value.String)
			}
		case examsection.FieldOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order", values[i])
			} else if value.Valid {
				_m.Order = int(value.Int64)
			}
		case examsection.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				_m.DurationSeconds = int(value.Int64)
			}
		case examsection.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field exam_sections", value)
			} else if value.Valid {
				_m.exam_sections = new(int)
				*_m.exam_sections = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExamSection.
// This includes values selected through modifiers, order, etc.
func (_m *ExamSection) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExam queries the "exam" edge of the ExamSection entity.
func (_m *ExamSection) QueryExam() *ExamQuery {
	return NewExamSectionClient(_m.config).QueryExam(_m)
}

// QueryQuestions queries the "questions" edge of the ExamSection entity.
func (_m *ExamSection) QueryQuestions() *QuestionQuery {
	return NewExamSectionClient(_m.config).QueryQuestions(_m)
}

// Update returns a builder for updating this ExamSection.
// Note that you need to call ExamSection.Unwrap() before calling this method if this ExamSection
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExamSection) Update() *ExamSectionUpdateOne {
	return NewExamSectionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExamSection entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExamSection) Unwrap() *ExamSection {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExamSection is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExamSection) String() string {
	var builder strings.Builder
	builder.WriteString("ExamSection(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("section_code=")
	builder.WriteString(fmt.Sprintf("%v", _m.SectionCode))
	builder.WriteString(", ")
	builder.WriteString("order=")
	builder.WriteString(fmt.Sprintf("%v", _m.Order))
	builder.WriteString(", ")
	builder.WriteString("duration_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSeconds))
	builder.WriteByte(')')
	return builder.String()
}

// ExamSections is a parsable slice of ExamSection.
type ExamSections []*ExamSection
