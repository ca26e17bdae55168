// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/visaetude/prepcore/ent/attempt"
	"github.com/visaetude/prepcore/ent/session"
)

// Attempt is the model entity for the Attempt schema.
type Attempt struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SectionCode holds the value of the "section_code" field.
	SectionCode attempt.SectionCode `json:"section_code,omitempty"`
	// TotalItems holds the value of the "total_items" field.
	TotalItems int `json:"total_items,omitempty"`
	// RawScore holds the value of the "raw_score" field.
	RawScore int `json:"raw_score,omitempty"`
	// ScorePercent holds the value of the "score_percent" field.
	ScorePercent float64 `json:"score_percent,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AttemptQuery when eager-loading is set.
	Edges            AttemptEdges `json:"edges"`
	session_attempts *int
	selectValues     sql.SelectValues
}

// AttemptEdges holds the relations/edges for other nodes in the graph.
type AttemptEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// Answers holds the value of the answers edge.
	Answers []*Answer `json:"answers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AttemptEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// AnswersOrErr returns the Answers value or an error if the edge
// was not loaded in eager-loading.
func (e AttemptEdges) AnswersOrErr() ([]*Answer, error) {
	if e.loadedTypes[1] {
		return e.Answers, nil
	}
	return nil, &NotLoadedError{edge: "answers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Attempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attempt.FieldScorePercent:
			values[i] = new(sql.NullFloat64)
		case attempt.FieldID, attempt.FieldTotalItems, attempt.FieldRawScore:
			values[i] = new(sql.NullInt64)
		case attempt.FieldSectionCode:
			values[i] = new(sql.NullString)
		case attempt.FieldStartedAt, attempt.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case attempt.ForeignKeys[0]: // session_attempts
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Attempt fields.
func (_m *Attempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attempt.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case attempt.FieldSectionCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section_code", values[i])
			} else if value.Valid {
				_m.SectionCode = attempt.SectionCode(value.String)
			}
		case attempt.FieldTotalItems:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_items", values[i])
			} else if value.Valid {
				_m.TotalItems = int(value.Int64)
			}
		case attempt.FieldRawScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field raw_score", values[i])
			} else if value.Valid {
				_m.RawScore = int(value.Int64)
			}
		case attempt.FieldScorePercent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score_percent", values[i])
			} else if value.Valid {
				_m.ScorePercent = value.Float64
			}
		case attempt.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case attempt.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case attempt.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field session_attempts", value)
			} else if value.Valid {
				_m.session_attempts = new(int)
				*_m.session_attempts = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Attempt.
// This includes values selected through modifiers, order, etc.
func (_m *Attempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the Attempt entity.
func (_m *Attempt) QuerySession() *SessionQuery {
	return NewAttemptClient(_m.config).QuerySession(_m)
}

// QueryAnswers queries the "answers" edge of the Attempt entity.
func (_m *Attempt) QueryAnswers() *AnswerQuery {
	return NewAttemptClient(_m.config).QueryAnswers(_m)
}

// Update returns a builder for updating this Attempt.
// Note that you need to call Attempt.Unwrap() before calling this method if this Attempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Attempt) Update() *AttemptUpdateOne {
	return NewAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Attempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Attempt) Unwrap() *Attempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Attempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Attempt) String() string {
	var builder strings.Builder
	builder.WriteString("Attempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("section_code=")
	builder.WriteString(fmt.Sprintf("%v", _m.SectionCode))
	builder.WriteString(", ")
	builder.WriteString("total_items=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalItems))
	builder.WriteString(", ")
	builder.WriteString("raw_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawScore))
	builder.WriteString(", ")
	builder.WriteString("score_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScorePercent))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Attempts is a parsable slice of Attempt.
type Attempts []*Attempt
