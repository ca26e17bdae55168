// Code generated by ent, DO NOT EDIT.

package userskillprogress

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userskillprogress type in the database.
	Label = "user_skill_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldExamCode holds the string denoting the exam_code field in the database.
	FieldExamCode = "exam_code"
	// FieldSkill holds the string denoting the skill field in the database.
	FieldSkill = "skill"
	// FieldCurrentLevel holds the string denoting the current_level field in the database.
	FieldCurrentLevel = "current_level"
	// FieldLastScorePercent holds the string denoting the last_score_percent field in the database.
	FieldLastScorePercent = "last_score_percent"
	// FieldTotalAttempts holds the string denoting the total_attempts field in the database.
	FieldTotalAttempts = "total_attempts"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the userskillprogress in the database.
	Table = "user_skill_progresses"
)

// Columns holds all SQL columns for userskillprogress fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldExamCode,
	FieldSkill,
	FieldCurrentLevel,
	FieldLastScorePercent,
	FieldTotalAttempts,
	FieldUpdatedAt,
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
	// DefaultLastScorePercent holds the default value on creation for the "last_score_percent" field.
	DefaultLastScorePercent float64
	// DefaultTotalAttempts holds the default value on creation for the "total_attempts" field.
	DefaultTotalAttempts int
	// TotalAttemptsValidator is a validator for the "total_attempts" field. It is called by the builders before save.
	TotalAttemptsValidator func(int) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Skill defines the type for the "skill" enum field.
type Skill string

// Skill values.
const (
	SkillCo Skill = "co"
	SkillCe Skill = "ce"
	SkillEo Skill = "eo"
	SkillEe Skill = "ee"
)

func (s Skill) String() string {
	return string(s)
}

// SkillValidator is a validator for the "skill" field enum values. It is called by the builders before save.
func SkillValidator(s Skill) error {
	switch s {
	case SkillCo, SkillCe, SkillEo, SkillEe:
		return nil
	default:
		return fmt.Errorf("userskillprogress: invalid enum value for skill field: %q", s)
	}
}

// CurrentLevel defines the type for the "current_level" enum field.
type CurrentLevel string

// CurrentLevelA1 is the default value of the CurrentLevel enum.
const DefaultCurrentLevel = CurrentLevelA1

// CurrentLevel values.
const (
	CurrentLevelA1 CurrentLevel = "A1"
	CurrentLevelA2 CurrentLevel = "A2"
	CurrentLevelB1 CurrentLevel = "B1"
	CurrentLevelB2 CurrentLevel = "B2"
	CurrentLevelC1 CurrentLevel = "C1"
	CurrentLevelC2 CurrentLevel = "C2"
)

func (cl CurrentLevel) String() string {
	return string(cl)
}

// CurrentLevelValidator is a validator for the "current_level" field enum values. It is called by the builders before save.
func CurrentLevelValidator(cl CurrentLevel) error {
	switch cl {
	case CurrentLevelA1, CurrentLevelA2, CurrentLevelB1, CurrentLevelB2, CurrentLevelC1, CurrentLevelC2:
		return nil
	default:
		return fmt.Errorf("userskillprogress: invalid enum value for current_level field: %q", cl)
	}
}

// OrderOption defines the ordering options for the UserSkillProgress queries.
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

// BySkill orders the results by the skill field.
func BySkill(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkill, opts...).ToFunc()
}

// ByCurrentLevel orders the results by the current_level field.
func ByCurrentLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentLevel, opts...).ToFunc()
}

// ByLastScorePercent orders the results by the last_score_percent field.
func ByLastScorePercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastScorePercent, opts...).ToFunc()
}

// ByTotalAttempts orders the results by the total_attempts field.
func ByTotalAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAttempts, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
