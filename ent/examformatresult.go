// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/visaetude/prepcore/ent/examformatresult"
)

// ExamFormatResult is the model entity for the ExamFormatResult schema.
type ExamFormatResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ExamCode holds the value of the "exam_code" field.
	ExamCode string `json:"exam_code,omitempty"`
	// Level the exam was taken at
	Level examformatresult.Level `json:"level,omitempty"`
	// Per-section raw/total/percent/official score/CEFR estimate
	SectionResults map[string]interface{} `json:"section_results,omitempty"`
	// GlobalScore holds the value of the "global_score" field.
	GlobalScore float64 `json:"global_score,omitempty"`
	// ScoreMax holds the value of the "score_max" field.
	ScoreMax float64 `json:"score_max,omitempty"`
	// GlobalCefr holds the value of the "global_cefr" field.
	GlobalCefr string `json:"global_cefr,omitempty"`
	// Passed holds the value of the "passed" field.
	Passed bool `json:"passed,omitempty"`
	// TakenAt holds the value of the "taken_at" field.
	TakenAt      time.Time `json:"taken_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExamFormatResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case examformatresult.FieldSectionResults:
			values[i] = new([]byte)
		case examformatresult.FieldPassed:
			values[i] = new(sql.NullBool)
		case examformatresult.FieldGlobalScore, examformatresult.FieldScoreMax:
			values[i] = new(sql.NullFloat64)
		case examformatresult.FieldID:
			values[i] = new(sql.NullInt64)
		case examformatresult.FieldUserID, examformatresult.FieldExamCode, examformatresult.FieldLevel, examformatresult.FieldGlobalCefr:
			values[i] = new(sql.NullString)
		case examformatresult.FieldTakenAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExamFormatResult fields.
func (_m *ExamFormatResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case examformatresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case examformatresult.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case examformatresult.FieldExamCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exam_code", values[i])
			} else if value.Valid {
				_m.ExamCode = value.String
			}
		case examformatresult.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = examformatresult.Level(value.String)
			}
		case examformatresult.FieldSectionResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field section_results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SectionResults); err != nil {
					return fmt.Errorf("unmarshal field section_results: %w", err)
				}
			}
		case examformatresult.FieldGlobalScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field global_score", values[i])
			} else if value.Valid {
				_m.GlobalScore = value.Float64
			}
		case examformatresult.FieldScoreMax:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score_max", values[i])
			} else if value.Valid {
				_m.ScoreMax = value.Float64
			}
		case examformatresult.FieldGlobalCefr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field global_cefr", values[i])
			} else if value.Valid {
				_m.GlobalCefr = value.String
			}
		case examformatresult.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case examformatresult.FieldTakenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field taken_at", values[i])
			} else if value.Valid {
				_m.TakenAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExamFormatResult.
// This includes values selected through modifiers, order, etc.
func (_m *ExamFormatResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExamFormatResult.
// Note that you need to call ExamFormatResult.Unwrap() before calling this method if this ExamFormatResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExamFormatResult) Update() *ExamFormatResultUpdateOne {
	return NewExamFormatResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExamFormatResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExamFormatResult) Unwrap() *ExamFormatResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExamFormatResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExamFormatResult) String() string {
	var builder strings.Builder
	builder.WriteString("ExamFormatResult(")
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
	builder.WriteString("section_results=")
	builder.WriteString(fmt.Sprintf("%v", _m.SectionResults))
	builder.WriteString(", ")
	builder.WriteString("global_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.GlobalScore))
	builder.WriteString(", ")
	builder.WriteString("score_max=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScoreMax))
	builder.WriteString(", ")
	builder.WriteString("global_cefr=")
	builder.WriteString(_m.GlobalCefr)
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("taken_at=")
	builder.WriteString(_m.TakenAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExamFormatResults is a parsable slice of ExamFormatResult.
type ExamFormatResults []*ExamFormatResult
