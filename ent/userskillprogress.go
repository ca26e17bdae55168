// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/visaetude/prepcore/ent/userskillprogress"
)

// UserSkillProgress is the model entity for the UserSkillProgress schema.
type UserSkillProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ExamCode holds the value of the "exam_code" field.
	ExamCode string `json:"exam_code,omitempty"`
	// Skill holds the value of the "skill" field.
	Skill userskillprogress.Skill `json:"skill,omitempty"`
	// CurrentLevel holds the value of the "current_level" field.
	CurrentLevel userskillprogress.CurrentLevel `json:"current_level,omitempty"`
	// LastScorePercent holds the value of the "last_score_percent" field.
	LastScorePercent float64 `json:"last_score_percent,omitempty"`
	// TotalAttempts holds the value of the "total_attempts" field.
	TotalAttempts int `json:"total_attempts,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserSkillProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userskillprogress.FieldLastScorePercent:
			values[i] = new(sql.NullFloat64)
		case userskillprogress.FieldID, userskillprogress.FieldTotalAttempts:
			values[i] = new(sql.NullInt64)
		case userskillprogress.FieldUserID, userskillprogress.FieldExamCode, userskillprogress.FieldSkill, userskillprogress.FieldCurrentLevel:
			values[i] = new(sql.NullString)
		case userskillprogress.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserSkillProgress fields.
func (_m *UserSkillProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userskillprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case userskillprogress.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case userskillprogress.FieldExamCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exam_code", values[i])
			} else if value.Valid {
				_m.ExamCode = value.String
			}
		case userskillprogress.FieldSkill:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill", values[i])
			} else if value.Valid {
				_m.Skill = userskillprogress.Skill(value.String)
			}
		case userskillprogress.FieldCurrentLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_level", values[i])
			} else if value.Valid {
				_m.CurrentLevel = userskillprogress.CurrentLevel(value.String)
			}
		case userskillprogress.FieldLastScorePercent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field last_score_percent", values[i])
			} else if value.Valid {
				_m.LastScorePercent = value.Float64
			}
		case userskillprogress.FieldTotalAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_attempts", values[i])
			} else if value.Valid {
				_m.TotalAttempts = int(value.Int64)
			}
		case userskillprogress.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserSkillProgress.
// This includes values selected through modifiers, order, etc.
func (_m *UserSkillProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserSkillProgress.
// Note that you need to call UserSkillProgress.Unwrap() before calling this method if this UserSkillProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserSkillProgress) Update() *UserSkillProgressUpdateOne {
	return NewUserSkillProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserSkillProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserSkillProgress) Unwrap() *UserSkillProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserSkillProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserSkillProgress) String() string {
	var builder strings.Builder
	builder.WriteString("UserSkillProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("exam_code=")
	builder.WriteString(_m.ExamCode)
	builder.WriteString(", ")
	builder.WriteString("skill=")
	builder.WriteString(fmt.Sprintf("%v", _m.Skill))
	builder.WriteString(", ")
	builder.WriteString("current_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentLevel))
	builder.WriteString(", ")
	builder.WriteString("last_score_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastScorePercent))
	builder.WriteString(", ")
	builder.WriteString("total_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAttempts))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserSkillProgresses is a parsable slice of UserSkillProgress.
type UserSkillProgresses []*UserSkillProgress
