// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/visaetude/prepcore/ent/asset"
	"github.com/visaetude/prepcore/ent/courseexercise"
	"github.com/visaetude/prepcore/ent/courselesson"
)

// CourseExercise is the model entity for the CourseExercise schema.
type CourseExercise struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind courseexercise.Kind `json:"kind,omitempty"`
	// Stem holds the value of the "stem" field.
	Stem string `json:"stem,omitempty"`
	// OptionA holds the value of the "option_a" field.
	OptionA string `json:"option_a,omitempty"`
	// OptionB holds the value of the "option_b" field.
	OptionB string `json:"option_b,omitempty"`
	// OptionC holds the value of the "option_c" field.
	OptionC string `json:"option_c,omitempty"`
	// OptionD holds the value of the "option_d" field.
	OptionD string `json:"option_d,omitempty"`
	// A, B, C or D for objective items
	CorrectOption string `json:"correct_option,omitempty"`
	// Productive task statement
	Prompt string `json:"prompt,omitempty"`
	// MinWords holds the value of the "min_words" field.
	MinWords int `json:"min_words,omitempty"`
	// MaxWords holds the value of the "max_words" field.
	MaxWords int `json:"max_words,omitempty"`
	// SampleAnswer holds the value of the "sample_answer" field.
	SampleAnswer string `json:"sample_answer,omitempty"`
	// Evaluation criteria, one per line
	Criteria string `json:"criteria,omitempty"`
	// Order holds the value of the "order" field.
	Order int `json:"order,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CourseExerciseQuery when eager-loading is set.
	Edges                   CourseExerciseEdges `json:"edges"`
	course_exercise_asset   *int
	course_lesson_exercises *int
	selectValues            sql.SelectValues
}

// CourseExerciseEdges holds the relations/edges for other nodes in the graph.
type CourseExerciseEdges struct {
	// Lesson holds the value of the lesson edge.
	Lesson *CourseLesson `json:"lesson,omitempty"`
	// Asset holds the value of the asset edge.
	Asset *Asset `json:"asset,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// LessonOrErr returns the Lesson value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CourseExerciseEdges) LessonOrErr() (*CourseLesson, error) {
	if e.Lesson != nil {
		return e.Lesson, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: courselesson.Label}
	}
	return nil, &NotLoadedError{edge: "lesson"}
}

// AssetOrErr returns the Asset value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CourseExerciseEdges) AssetOrErr() (*Asset, error) {
	if e.Asset != nil {
		return e.Asset, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: asset.Label}
	}
	return nil, &NotLoadedError{edge: "asset"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CourseExercise) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case courseexercise.FieldID, courseexercise.FieldMinWords, courseexercise.FieldMaxWords, courseexercise.FieldOrder:
			values[i] = new(sql.NullInt64)
		case courseexercise.FieldKind, courseexercise.FieldStem, courseexercise.FieldOptionA, courseexercise.FieldOptionB, courseexercise.FieldOptionC, courseexercise.FieldOptionD, courseexercise.FieldCorrectOption, courseexercise.FieldPrompt, courseexercise.FieldSampleAnswer, courseexercise.FieldCriteria:
			values[i] = new(sql.NullString)
		case courseexercise.ForeignKeys[0]: // course_exercise_asset
			values[i] = new(sql.NullInt64)
		case courseexercise.ForeignKeys[1]: // course_lesson_exercises
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CourseExercise fields.
func (_m *CourseExercise) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case courseexercise.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case courseexercise.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = courseexercise.Kind(value.String)
			}
		case courseexercise.FieldStem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stem", values[i])
			} else if value.Valid {
				_m.Stem = value.String
			}
		case courseexercise.FieldOptionA:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field option_a", values[i])
			} else if value.Valid {
				_m.OptionA = value.String
			}
		case courseexercise.FieldOptionB:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field option_b", values[i])
			} else if value.Valid {
				_m.OptionB = value.String
			}
		case courseexercise.FieldOptionC:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field option_c", values[i])
			} else if value.Valid {
				_m.OptionC = value.String
			}
		case courseexercise.FieldOptionD:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field option_d", values[i])
			} else if value.Valid {
				_m.OptionD = value.String
			}
		case courseexercise.FieldCorrectOption:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_option", values[i])
			} else if value.Valid {
				_m.CorrectOption = value.String
			}
		case courseexercise.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case courseexercise.FieldMinWords:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_words", values[i])
			} else if value.Valid {
				_m.MinWords = int(value.Int64)
			}
		case courseexercise.FieldMaxWords:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_words", values[i])
			} else if value.Valid {
				_m.MaxWords = int(value.Int64)
			}
		case courseexercise.FieldSampleAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sample_answer", values[i])
			} else if value.Valid {
				_m.SampleAnswer = value.String
			}
		case courseexercise.FieldCriteria:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field criteria", values[i])
			} else if value.Valid {
				_m.Criteria = value.String
			}
		case courseexercise.FieldOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order", values[i])
			} else if value.Valid {
				_m.Order = int(value.Int64)
			}
		case courseexercise.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field course_exercise_asset", value)
			} else if value.Valid {
				_m.course_exercise_asset = new(int)
				*_m.course_exercise_asset = int(value.Int64)
			}
		case courseexercise.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field course_lesson_exercises", value)
			} else if value.Valid {
				_m.course_lesson_exercises = new(int)
				*_m.course_lesson_exercises = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CourseExercise.
// This includes values selected through modifiers, order, etc.
func (_m *CourseExercise) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLesson queries the "lesson" edge of the CourseExercise entity.
func (_m *CourseExercise) QueryLesson() *CourseLessonQuery {
	return NewCourseExerciseClient(_m.config).QueryLesson(_m)
}

// QueryAsset queries the "asset" edge of the CourseExercise entity.
func (_m *CourseExercise) QueryAsset() *AssetQuery {
	return NewCourseExerciseClient(_m.config).QueryAsset(_m)
}

// Update returns a builder for updating this CourseExercise.
// Note that you need to call CourseExercise.Unwrap() before calling this method if this CourseExercise
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CourseExercise) Update() *CourseExerciseUpdateOne {
	return NewCourseExerciseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CourseExercise entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CourseExercise) Unwrap() *CourseExercise {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CourseExercise is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CourseExercise) String() string {
	var builder strings.Builder
	builder.WriteString("CourseExercise(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("stem=")
	builder.WriteString(_m.Stem)
	builder.WriteString(", ")
	builder.WriteString("option_a=")
	builder.WriteString(_m.OptionA)
	builder.WriteString(", ")
	builder.WriteString("option_b=")
	builder.WriteString(_m.OptionB)
	builder.WriteString(", ")
	builder.WriteString("option_c=")
	builder.WriteString(_m.OptionC)
	builder.WriteString(", ")
	builder.WriteString("option_d=")
	builder.WriteString(_m.OptionD)
	builder.WriteString(", ")
	builder.WriteString("correct_option=")
	builder.WriteString(_m.CorrectOption)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("min_words=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinWords))
	builder.WriteString(", ")
	builder.WriteString("max_words=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxWords))
	builder.WriteString(", ")
	builder.WriteString("sample_answer=")
	builder.WriteString(_m.SampleAnswer)
	builder.WriteString(", ")
	builder.WriteString("criteria=")
	builder.WriteString(_m.Criteria)
	builder.WriteString(", ")
	builder.WriteString("order=")
	builder.WriteString(fmt.Sprintf("%v", _m.Order))
	builder.WriteByte(')')
	return builder.String()
}

// CourseExercises is a parsable slice of CourseExercise.
type CourseExercises []*CourseExercise
