// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/visaetude/prepcore/ent/answer"
	"github.com/visaetude/prepcore/ent/attempt"
	"github.com/visaetude/prepcore/ent/choice"
	"github.com/visaetude/prepcore/ent/question"
)

// Answer is the model entity for the Answer schema.
type Answer struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Free-form response for productive items
	TextAnswer string `json:"text_answer,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct bool `json:"correct,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnswerQuery when eager-loading is set.
	Edges           AnswerEdges `json:"edges"`
	answer_question *int
	answer_choice   *int
	attempt_answers *int
	selectValues    sql.SelectValues
}

// AnswerEdges holds the relations/edges for other nodes in the graph.
type AnswerEdges struct {
	// Attempt holds the value of the attempt edge.
	Attempt *Attempt `json:"attempt,omitempty"`
	// Question holds the value of the question edge.
	Question *Question `json:"question,omitempty"`
	// Choice holds the value of the choice edge.
	Choice *Choice `json:"choice,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// AttemptOrErr returns the Attempt value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnswerEdges) AttemptOrErr() (*Attempt, error) {
	if e.Attempt != nil {
		return e.Attempt, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: attempt.Label}
	}
	return nil, &NotLoadedError{edge: "attempt"}
}

// QuestionOrErr returns the Question value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnswerEdges) QuestionOrErr() (*Question, error) {
	if e.Question != nil {
		return e.Question, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: question.Label}
	}
	return nil, &NotLoadedError{edge: "question"}
}

// ChoiceOrErr returns the Choice value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnswerEdges) ChoiceOrErr() (*Choice, error) {
	if e.Choice != nil {
		return e.Choice, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: choice.Label}
	}
	return nil, &NotLoadedError{edge: "choice"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Answer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case answer.FieldCorrect:
			values[i] = new(sql.NullBool)
		case answer.FieldID:
			values[i] = new(sql.NullInt64)
		case answer.FieldTextAnswer:
			values[i] = new(sql.NullString)
		case answer.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case answer.ForeignKeys[0]: // answer_question
			values[i] = new(sql.NullInt64)
		case answer.ForeignKeys[1]: // answer_choice
			values[i] = new(sql.NullInt64)
		case answer.ForeignKeys[2]: // attempt_answers
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Answer fields.
func (_m *Answer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case answer.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case answer.FieldTextAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text_answer", values[i])
			} else if value.Valid {
				_m.TextAnswer = value.String
			}
		case answer.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case answer.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case answer.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field answer_question", value)
			} else if value.Valid {
				_m.answer_question = new(int)
				*_m.answer_question = int(value.Int64)
			}
		case answer.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field answer_choice", value)
			} else if value.Valid {
				_m.answer_choice = new(int)
				*_m.answer_choice = int(value.Int64)
			}
		case answer.ForeignKeys[2]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field attempt_answers", value)
			} else if value.Valid {
				_m.attempt_answers = new(int)
				*_m.attempt_answers = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Answer.
// This includes values selected through modifiers, order, etc.
func (_m *Answer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAttempt queries the "attempt" edge of the Answer entity.
func (_m *Answer) QueryAttempt() *AttemptQuery {
	return NewAnswerClient(_m.config).QueryAttempt(_m)
}

// QueryQuestion queries the "question" edge of the Answer entity.
func (_m *Answer) QueryQuestion() *QuestionQuery {
	return NewAnswerClient(_m.config).QueryQuestion(_m)
}

// QueryChoice queries the "choice" edge of the Answer entity.
func (_m *Answer) QueryChoice() *ChoiceQuery {
	return NewAnswerClient(_m.config).QueryChoice(_m)
}

// Update returns a builder for updating this Answer.
// Note that you need to call Answer.Unwrap() before calling this method if this Answer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Answer) Update() *AnswerUpdateOne {
	return NewAnswerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Answer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Answer) Unwrap() *Answer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Answer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Answer) String() string {
	var builder strings.Builder
	builder.WriteString("Answer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("text_answer=")
	builder.WriteString(_m.TextAnswer)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Answers is a parsable slice of Answer.
type Answers []*Answer
