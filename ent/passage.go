// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/visaetude/prepcore/ent/passage"
)

// Passage is the model entity for the Passage schema.
type Passage struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PassageQuery when eager-loading is set.
	Edges        PassageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PassageEdges holds the relations/edges for other nodes in the graph.
type PassageEdges struct {
	// Questions holds the value of the questions edge.
	Questions []*Question `json:"questions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e PassageEdges) QuestionsOrErr() ([]*Question, error) {
	if e.loadedTypes[0] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Passage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case passage.FieldID:
			values[i] = new(sql.NullInt64)
		case passage.FieldTitle, passage.FieldText:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Passage fields.
func (_m *Passage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case passage.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case passage.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case passage.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Passage.
// This includes values selected through modifiers, order, etc.
func (_m *Passage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuestions queries the "questions" edge of the Passage entity.
func (_m *Passage) QueryQuestions() *QuestionQuery {
	return NewPassageClient(_m.config).QueryQuestions(_m)
}

// Update returns a builder for updating this Passage.
// Note that you need to call Passage.Unwrap() before calling this method if this Passage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Passage) Update() *PassageUpdateOne {
	return NewPassageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Passage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Passage) Unwrap() *Passage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Passage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Passage) String() string {
	var builder strings.Builder
	builder.WriteString("Passage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteByte(')')
	return builder.String()
}

// Passages is a parsable slice of Passage.
type Passages []*Passage
