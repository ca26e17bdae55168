// Code generated by ent, DO NOT EDIT.

package courselesson

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the courselesson type in the database.
	Label = "course_lesson"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldSection holds the string denoting the section field in the database.
	FieldSection = "section"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldLocale holds the string denoting the locale field in the database.
	FieldLocale = "locale"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldOrder holds the string denoting the order field in the database.
	FieldOrder = "order"
	// FieldPublished holds the string denoting the published field in the database.
	FieldPublished = "published"
	// EdgeExams holds the string denoting the exams edge name in mutations.
	EdgeExams = "exams"
	// EdgeExercises holds the string denoting the exercises edge name in mutations.
	EdgeExercises = "exercises"
	// EdgeAsset holds the string denoting the asset edge name in mutations.
	EdgeAsset = "asset"
	// Table holds the table name of the courselesson in the database.
	Table = "course_lessons"
	// ExamsTable is the table that holds the exams relation/edge. The primary key declared below.
	ExamsTable = "course_lesson_exams"
	// ExamsInverseTable is the table name for the Exam entity.
	// It exists in this package in order to avoid circular dependency with the "exam" package.
	ExamsInverseTable = "exams"
	// ExercisesTable is the table that holds the exercises relation/edge.
	ExercisesTable = "course_exercises"
	// ExercisesInverseTable is the table name for the CourseExercise entity.
	// It exists in this package in order to avoid circular dependency with the "courseexercise" package.
	ExercisesInverseTable = "course_exercises"
	// ExercisesColumn is the table column denoting the exercises relation/edge.
	ExercisesColumn = "course_lesson_exercises"
	// AssetTable is the table that holds the asset relation/edge.
	AssetTable = "course_lessons"
	// AssetInverseTable is the table name for the Asset entity.
	// It exists in this package in order to avoid circular dependency with the "asset" package.
	AssetInverseTable = "assets"
	// AssetColumn is the table column denoting the asset relation/edge.
	AssetColumn = "course_lesson_asset"
)

// Columns holds all SQL columns for courselesson fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldSlug,
	FieldSection,
	FieldLevel,
	FieldLocale,
	FieldContent,
	FieldOrder,
	FieldPublished,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "course_lessons"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"course_lesson_asset",
}

var (
	// ExamsPrimaryKey and ExamsColumn2 are the table columns denoting the
	// primary key for the exams relation (M2M).
	ExamsPrimaryKey = []string{"course_lesson_id", "exam_id"}
)

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
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
	// DefaultLocale holds the default value on creation for the "locale" field.
	DefaultLocale string
	// DefaultContent holds the default value on creation for the "content" field.
	DefaultContent string
	// DefaultOrder holds the default value on creation for the "order" field.
	DefaultOrder int
	// DefaultPublished holds the default value on creation for the "published" field.
	DefaultPublished bool
)

// Section defines the type for the "section" enum field.
type Section string

// Section values.
const (
	SectionCo Section = "co"
	SectionCe Section = "ce"
	SectionEo Section = "eo"
	SectionEe Section = "ee"
)

func (s Section) String() string {
	return string(s)
}

// SectionValidator is a validator for the "section" field enum values. It is called by the builders before save.
func SectionValidator(s Section) error {
	switch s {
	case SectionCo, SectionCe, SectionEo, SectionEe:
		return nil
	default:
		return fmt.Errorf("courselesson: invalid enum value for section field: %q", s)
	}
}

// Level defines the type for the "level" enum field.
type Level string

// Level values.
const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

func (l Level) String() string {
	return string(l)
}

// LevelValidator is a validator for the "level" field enum values. It is called by the builders before save.
func LevelValidator(l Level) error {
	switch l {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return nil
	default:
		return fmt.Errorf("courselesson: invalid enum value for level field: %q", l)
	}
}

// OrderOption defines the ordering options for the CourseLesson queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// BySection orders the results by the section field.
func BySection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSection, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByLocale orders the results by the locale field.
func ByLocale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocale, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByOrder orders the results by the order field.
func ByOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrder, opts...).ToFunc()
}

// ByPublished orders the results by the published field.
func ByPublished(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublished, opts...).ToFunc()
}

// ByExamsCount orders the results by exams count.
func ByExamsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExamsStep(), opts...)
	}
}

// ByExams orders the results by exams terms.
func ByExams(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExamsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByExercisesCount orders the results by exercises count.
func ByExercisesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExercisesStep(), opts...)
	}
}

// ByExercises orders the results by exercises terms.
func ByExercises(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExercisesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAssetField orders the results by asset field.
func ByAssetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssetStep(), sql.OrderByField(field, opts...))
	}
}
func newExamsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExamsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, ExamsTable, ExamsPrimaryKey...),
	)
}
func newExercisesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExercisesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExercisesTable, ExercisesColumn),
	)
}
func newAssetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssetInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, AssetTable, AssetColumn),
	)
}
