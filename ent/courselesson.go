// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/visaetude/prepcore/ent/asset"
	"github.com/visaetude/prepcore/ent/courselesson"
)

// CourseLesson is the model entity for the CourseLesson schema.
type CourseLesson struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Unique within a (section, level, locale) category
	Slug string `json:"slug,omitempty"`
	// Section holds the value of the "section" field.
	Section courselesson.Section `json:"section,omitempty"`
	// Level holds the value of the "level" field.
	Level courselesson.Level `json:"level,omitempty"`
	// Locale holds the value of the "locale" field.
	Locale string `json:"locale,omitempty"`
	// Rich lesson body: script, reading text or instructions
	Content string `json:"content,omitempty"`
	// Order holds the value of the "order" field.
	Order int `json:"order,omitempty"`
	// Published holds the value of the "published" field.
	Published bool `json:"published,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CourseLessonQuery when eager-loading is set.
	Edges               CourseLessonEdges `json:"edges"`
	course_lesson_asset *int
	selectValues        sql.SelectValues
}

// CourseLessonEdges holds the relations/edges for other nodes in the graph.
type CourseLessonEdges struct {
	// Exams holds the value of the exams edge.
	Exams []*Exam `json:"exams,omitempty"`
	// Exercises holds the value of the exercises edge.
	Exercises []*CourseExercise `json:"exercises,omitempty"`
	// Asset holds the value of the asset edge.
	Asset *Asset `json:"asset,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ExamsOrErr returns the Exams value or an error if the edge
// was not loaded in eager-loading.
func (e CourseLessonEdges) ExamsOrErr() ([]*Exam, error) {
	if e.loadedTypes[0] {
		return e.Exams, nil
	}
	return nil, &NotLoadedError{edge: "exams"}
}

// ExercisesOrErr returns the Exercises value or an error if the edge
// was not loaded in eager-loading.
func (e CourseLessonEdges) ExercisesOrErr() ([]*CourseExercise, error) {
	if e.loadedTypes[1] {
		return e.Exercises, nil
	}
	return nil, &NotLoadedError{edge: "exercises"}
}

// AssetOrErr returns the Asset value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CourseLessonEdges) AssetOrErr() (*Asset, error) {
	if e.Asset != nil {
		return e.Asset, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: asset.Label}
	}
	return nil, &NotLoadedError{edge: "asset"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CourseLesson) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case courselesson.FieldPublished:
			values[i] = new(sql.NullBool)
		case courselesson.FieldID, courselesson.FieldOrder:
			values[i] = new(sql.NullInt64)
		case courselesson.FieldTitle, courselesson.FieldSlug, courselesson.FieldSection, courselesson.FieldLevel, courselesson.FieldLocale, courselesson.FieldContent:
			values[i] = new(sql.NullString)
		case courselesson.ForeignKeys[0]: // course_lesson_asset
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CourseLesson fields.
func (_m *CourseLesson) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case courselesson.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case courselesson.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case courselesson.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case courselesson.FieldSection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section", values[i])
			} else if value.Valid {
				_m.Section = courselesson.Section(value.String)
			}
		case courselesson.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = courselesson.Level(value.String)
			}
		case courselesson.FieldLocale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field locale", values[i])
			} else if value.Valid {
				_m.Locale = value.String
			}
		case courselesson.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case courselesson.FieldOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order", values[i])
			} else if value.Valid {
				_m.Order = int(value.Int64)
			}
		case courselesson.FieldPublished:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field published", values[i])
			} else if value.Valid {
				_m.Published = value.Bool
			}
		case courselesson.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field course_lesson_asset", value)
			} else if value.Valid {
				_m.course_lesson_asset = new(int)
				*_m.course_lesson_asset = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CourseLesson.
// This includes values selected through modifiers, order, etc.
func (_m *CourseLesson) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExams queries the "exams" edge of the CourseLesson entity.
func (_m *CourseLesson) QueryExams() *ExamQuery {
	return NewCourseLessonClient(_m.config).QueryExams(_m)
}

// QueryExercises queries the "exercises" edge of the CourseLesson entity.
func (_m *CourseLesson) QueryExercises() *CourseExerciseQuery {
	return NewCourseLessonClient(_m.config).QueryExercises(_m)
}

// QueryAsset queries the "asset" edge of the CourseLesson entity.
func (_m *CourseLesson) QueryAsset() *AssetQuery {
	return NewCourseLessonClient(_m.config).QueryAsset(_m)
}

// Update returns a builder for updating this CourseLesson.
// Note that you need to call CourseLesson.Unwrap() before calling this method if this CourseLesson
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CourseLesson) Update() *CourseLessonUpdateOne {
	return NewCourseLessonClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CourseLesson entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CourseLesson) Unwrap() *CourseLesson {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CourseLesson is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CourseLesson) String() string {
	var builder strings.Builder
	builder.WriteString("CourseLesson(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("section=")
	builder.WriteString(fmt.Sprintf("%v", _m.Section))
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("locale=")
	builder.WriteString(_m.Locale)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("order=")
	builder.WriteString(fmt.Sprintf("%v", _m.Order))
	builder.WriteString(", ")
	builder.WriteString("published=")
	builder.WriteString(fmt.Sprintf("%v", _m.Published))
	builder.WriteByte(')')
	return builder.String()
}

// CourseLessons is a parsable slice of CourseLesson.
type CourseLessons []*CourseLesson
