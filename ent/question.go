// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/visaetude/prepcore/ent/asset"
	"github.com/visaetude/prepcore/ent/examsection"
	"github.com/visaetude/prepcore/ent/passage"
	"github.com/visaetude/prepcore/ent/question"
)

// Question is the model entity for the Question schema.
type Question struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stem holds the value of the "stem" field.
	Stem string `json:"stem,omitempty"`
	// Subtype holds the value of the "subtype" field.
	Subtype question.Subtype `json:"subtype,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty question.Difficulty `json:"difficulty,omitempty"`
	// Markdown explanation of the correct answer
	Explanation string `json:"explanation,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuestionQuery when eager-loading is set.
	Edges                  QuestionEdges `json:"edges"`
	exam_section_questions *int
	passage_questions      *int
	question_asset         *int
	selectValues           sql.SelectValues
}

// QuestionEdges holds the relations/edges for other nodes in the graph.
type QuestionEdges struct {
	// Section holds the value of the section edge.
	Section *ExamSection `json:"section,omitempty"`
	// Passage holds the value of the passage edge.
	Passage *Passage `json:"passage,omitempty"`
	// Asset holds the value of the asset edge.
	Asset *Asset `json:"asset,omitempty"`
	// Choices holds the value of the choices edge.
	Choices []*Choice `json:"choices,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// SectionOrErr returns the Section value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionEdges) SectionOrErr() (*ExamSection, error) {
	if e.Section != nil {
		return e.Section, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: examsection.Label}
	}
	return nil, &NotLoadedError{edge: "section"}
}

// PassageOrErr returns the Passage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionEdges) PassageOrErr() (*Passage, error) {
	if e.Passage != nil {
		return e.Passage, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: passage.Label}
	}
	return nil, &NotLoadedError{edge: "passage"}
}

// AssetOrErr returns the Asset value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionEdges) AssetOrErr() (*Asset, error) {
	if e.Asset != nil {
		return e.Asset, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: asset.Label}
	}
	return nil, &NotLoadedError{edge: "asset"}
}

// ChoicesOrErr returns the Choices value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionEdges) ChoicesOrErr() ([]*Choice, error) {
	if e.loadedTypes[3] {
		return e.Choices, nil
	}
	return nil, &NotLoadedError{edge: "choices"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Question) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case question.FieldID:
			values[i] = new(sql.NullInt64)
		case question.FieldStem, question.FieldSubtype, question.FieldDifficulty, question.FieldExplanation:
			values[i] = new(sql.NullString)
		case question.ForeignKeys[0]: // exam_section_questions
			values[i] = new(sql.NullInt64)
		case question.ForeignKeys[1]: // passage_questions
			values[i] = new(sql.NullInt64)
		case question.ForeignKeys[2]: // question_asset
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Question fields.
func (_m *Question) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case question.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case question.FieldStem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stem", values[i])
			} else if value.Valid {
				_m.Stem = value.String
			}
		case question.FieldSubtype:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subtype", values[i])
			} else if value.Valid {
				_m.Subtype = question.Subtype(value.String)
			}
		case question.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = question.Difficulty(value.String)
			}
		case question.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = value.String
			}
		case question.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field exam_section_questions", value)
			} else if value.Valid {
				_m.exam_section_questions = new(int)
				*_m.exam_section_questions = int(value.Int64)
			}
		case question.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field passage_questions", value)
			} else if value.Valid {
				_m.passage_questions = new(int)
				*_m.passage_questions = int(value.Int64)
			}
		case question.ForeignKeys[2]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field question_asset", value)
			} else if value.Valid {
				_m.question_asset = new(int)
				*_m.question_asset = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Question.
// This includes values selected through modifiers, order, etc.
func (_m *Question) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySection queries the "section" edge of the Question entity.
func (_m *Question) QuerySection() *ExamSectionQuery {
	return NewQuestionClient(_m.config).QuerySection(_m)
}

// QueryPassage queries the "passage" edge of the Question entity.
func (_m *Question) QueryPassage() *PassageQuery {
	return NewQuestionClient(_m.config).QueryPassage(_m)
}

// QueryAsset queries the "asset" edge of the Question entity.
func (_m *Question) QueryAsset() *AssetQuery {
	return NewQuestionClient(_m.config).QueryAsset(_m)
}

// QueryChoices queries the "choices" edge of the Question entity.
func (_m *Question) QueryChoices() *ChoiceQuery {
	return NewQuestionClient(_m.config).QueryChoices(_m)
}

// Update returns a builder for updating this Question.
// Note that you need to call Question.Unwrap() before calling this method if this Question
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Question) Update() *QuestionUpdateOne {
	return NewQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Question entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Question) Unwrap() *Question {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Question is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Question) String() string {
	var builder strings.Builder
	builder.WriteString("Question(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("stem=")
	builder.WriteString(_m.Stem)
	builder.WriteString(", ")
	builder.WriteString("subtype=")
	builder.WriteString(fmt.Sprintf("%v", _m.Subtype))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(_m.Explanation)
	builder.WriteByte(')')
	return builder.String()
}

// Questions is a parsable slice of Question.
type Questions []*Question
