// Code generated by ent, DO NOT EDIT.

package courseexercise

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the courseexercise type in the database.
	Label = "course_exercise"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldStem holds the string denoting the stem field in the database.
	FieldStem = "stem"
	// FieldOptionA holds the string denoting the option_a field in the database.
	FieldOptionA = "option_a"
	// FieldOptionB holds the string denoting the option_b field in the database.
	FieldOptionB = "option_b"
	// FieldOptionC holds the string denoting the option_c field in the database.
	FieldOptionC = "option_c"
	// FieldOptionD holds the string denoting the option_d field in the database.
	FieldOptionD = "option_d"
	// FieldCorrectOption holds the string denoting the correct_option field in the database.
	FieldCorrectOption = "correct_option"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldMinWords holds the string denoting the min_words field in the database.
	FieldMinWords = "min_words"
	// FieldMaxWords holds the string denoting the max_words field in the database.
	FieldMaxWords = "max_words"
	// FieldSampleAnswer holds the string denoting the sample_answer field in the database.
	FieldSampleAnswer = "sample_answer"
	// FieldCriteria holds the string denoting the criteria field in the database.
	FieldCriteria = "criteria"
	// FieldOrder holds the string denoting the order field in the database.
	FieldOrder = "order"
	// EdgeLesson holds the string denoting the lesson edge name in mutations.
	EdgeLesson = "lesson"
	// EdgeAsset holds the string denoting the asset edge name in mutations.
	EdgeAsset = "asset"
	// Table holds the table name of the courseexercise in the database.
	Table = "course_exercises"
	// LessonTable is the table that holds the lesson relation/edge.
	LessonTable = "course_exercises"
	// LessonInverseTable is the table name for the CourseLesson entity.
	// It exists in this package in order to avoid circular dependency with the "courselesson" package.
	LessonInverseTable = "course_lessons"
	// LessonColumn is the table column denoting the lesson relation/edge.
	LessonColumn = "course_lesson_exercises"
	// AssetTable is the table that holds the asset relation/edge.
	AssetTable = "course_exercises"
	// AssetInverseTable is the table name for the Asset entity.
	// It exists in this package in order to avoid circular dependency with the "asset" package.
	AssetInverseTable = "assets"
	// AssetColumn is the table column denoting the asset relation/edge.
	AssetColumn = "course_exercise_asset"
)

// Columns holds all SQL columns for courseexercise fields.
var Columns = []string{
	FieldID,
	FieldKind,
	FieldStem,
	FieldOptionA,
	FieldOptionB,
	FieldOptionC,
	FieldOptionD,
	FieldCorrectOption,
	FieldPrompt,
	FieldMinWords,
	FieldMaxWords,
	FieldSampleAnswer,
	FieldCriteria,
	FieldOrder,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "course_exercises"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"course_exercise_asset",
	"course_lesson_exercises",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStem holds the default value on creation for the "stem" field.
	DefaultStem string
	// DefaultOptionA holds the default value on creation for the "option_a" field.
	DefaultOptionA string
	// DefaultOptionB holds the default value on creation for the "option_b" field.
	DefaultOptionB string
	// DefaultOptionC holds the default value on creation for the "option_c" field.
	DefaultOptionC string
	// DefaultOptionD holds the default value on creation for the "option_d" field.
	DefaultOptionD string
	// DefaultCorrectOption holds the default value on creation for the "correct_option" field.
	DefaultCorrectOption string
	// DefaultPrompt holds the default value on creation for the "prompt" field.
	DefaultPrompt string
	// DefaultMinWords holds the default value on creation for the "min_words" field.
	DefaultMinWords int
	// MinWordsValidator is a validator for the "min_words" field. It is called by the builders before save.
	MinWordsValidator func(int) error
	// DefaultMaxWords holds the default value on creation for the "max_words" field.
	DefaultMaxWords int
	// MaxWordsValidator is a validator for the "max_words" field. It is called by the builders before save.
	MaxWordsValidator func(int) error
	// DefaultSampleAnswer holds the default value on creation for the "sample_answer" field.
	DefaultSampleAnswer string
	// DefaultCriteria holds the default value on creation for the "criteria" field.
	DefaultCriteria string
	// DefaultOrder holds the default value on creation for the "order" field.
	DefaultOrder int
)

// Kind defines the type for the "kind" enum field.
type Kind string

// KindObjective is the default value of the Kind enum.
const DefaultKind = KindObjective

// Kind values.
const (
	KindObjective  Kind = "objective"
	KindProductive Kind = "productive"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindObjective, KindProductive:
		return nil
	default:
		return fmt.Errorf("courseexercise: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the CourseExercise queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByStem orders the results by the stem field.
func ByStem(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStem, opts...).ToFunc()
}

// ByOptionA orders the results by the option_a field.
func ByOptionA(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionA, opts...).ToFunc()
}

// ByOptionB orders the results by the option_b field.
func ByOptionB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionB, opts...).ToFunc()
}

// ByOptionC orders the results by the option_c field.
func ByOptionC(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionC, opts...).ToFunc()
}

// ByOptionD orders the results by the option_d field.
func ByOptionD(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionD, opts...).ToFunc()
}

// ByCorrectOption orders the results by the correct_option field.
func ByCorrectOption(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectOption, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByMinWords orders the results by the min_words field.
func ByMinWords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinWords, opts...).ToFunc()
}

// ByMaxWords orders the results by the max_words field.
func ByMaxWords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxWords, opts...).ToFunc()
}

// BySampleAnswer orders the results by the sample_answer field.
func BySampleAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSampleAnswer, opts...).ToFunc()
}

// ByCriteria orders the results by the criteria field.
func ByCriteria(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCriteria, opts...).ToFunc()
}

// ByOrder orders the results by the order field.
func ByOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrder, opts...).ToFunc()
}

// ByLessonField orders the results by lesson field.
func ByLessonField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLessonStep(), sql.OrderByField(field, opts...))
	}
}

// ByAssetField orders the results by asset field.
func ByAssetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssetStep(), sql.OrderByField(field, opts...))
	}
}
func newLessonStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LessonInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LessonTable, LessonColumn),
	)
}
func newAssetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssetInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, AssetTable, AssetColumn),
	)
}
