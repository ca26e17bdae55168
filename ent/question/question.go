// Code generated by ent, DO NOT EDIT.

package question

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStem holds the string denoting the stem field in the database.
	FieldStem = "stem"
	// FieldSubtype holds the string denoting the subtype field in the database.
	FieldSubtype = "subtype"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// EdgeSection holds the string denoting the section edge name in mutations.
	EdgeSection = "section"
	// EdgePassage holds the string denoting the passage edge name in mutations.
	EdgePassage = "passage"
	// EdgeAsset holds the string denoting the asset edge name in mutations.
	EdgeAsset = "asset"
	// EdgeChoices holds the string denoting the choices edge name in mutations.
	EdgeChoices = "choices"
	// Table holds the table name of the question in the database.
	Table = "questions"
	// SectionTable is the table that holds the section relation/edge.
	SectionTable = "questions"
	// SectionInverseTable is the table name for the ExamSection entity.
	// It exists in this package in order to avoid circular dependency with the "examsection" package.
	SectionInverseTable = "exam_sections"
	// SectionColumn is the table column denoting the section relation/edge.
	SectionColumn = "exam_section_questions"
	// PassageTable is the table that holds the passage relation/edge.
	PassageTable = "questions"
	// PassageInverseTable is the table name for the Passage entity.
	// It exists in this package in order to avoid circular dependency with the "passage" package.
	PassageInverseTable = "passages"
	// PassageColumn is the table column denoting the passage relation/edge.
	PassageColumn = "passage_questions"
	// AssetTable is the table that holds the asset relation/edge.
	AssetTable = "questions"
	// AssetInverseTable is the table name for the Asset entity.
	// It exists in this package in order to avoid circular dependency with the "asset" package.
	AssetInverseTable = "assets"
	// AssetColumn is the table column denoting the asset relation/edge.
	AssetColumn = "question_asset"
	// ChoicesTable is the table that holds the choices relation/edge.
	ChoicesTable = "choices"
	// ChoicesInverseTable is the table name for the Choice entity.
	// It exists in this package in order to avoid circular dependency with the "choice" package.
	ChoicesInverseTable = "choices"
	// ChoicesColumn is the table column denoting the choices relation/edge.
	ChoicesColumn = "question_choices"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldStem,
	FieldSubtype,
	FieldDifficulty,
	FieldExplanation,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "questions"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"exam_section_questions",
	"passage_questions",
	"question_asset",
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
	// StemValidator is a validator for the "stem" field. It is called by the builders before save.
	StemValidator func(string) error
)

// Subtype defines the type for the "subtype" enum field.
type Subtype string

// SubtypeMcq is the default value of the Subtype enum.
const DefaultSubtype = SubtypeMcq

// Subtype values.
const (
	SubtypeMcq  Subtype = "mcq"
	SubtypeText Subtype = "text"
)

func (s Subtype) String() string {
	return string(s)
}

// SubtypeValidator is a validator for the "subtype" field enum values. It is called by the builders before save.
func SubtypeValidator(s Subtype) error {
	switch s {
	case SubtypeMcq, SubtypeText:
		return nil
	default:
		return fmt.Errorf("question: invalid enum value for subtype field: %q", s)
	}
}

// Difficulty defines the type for the "difficulty" enum field.
type Difficulty string

// DifficultyMedium is the default value of the Difficulty enum.
const DefaultDifficulty = DifficultyMedium

// Difficulty values.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) String() string {
	return string(d)
}

// DifficultyValidator is a validator for the "difficulty" field enum values. It is called by the builders before save.
func DifficultyValidator(d Difficulty) error {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return nil
	default:
		return fmt.Errorf("question: invalid enum value for difficulty field: %q", d)
	}
}

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStem orders the results by the stem field.
func ByStem(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStem, opts...).ToFunc()
}

// BySubtype orders the results by the subtype field.
func BySubtype(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtype, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByExplanation orders the results by the explanation field.
func ByExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanation, opts...).ToFunc()
}

// BySectionField orders the results by section field.
func BySectionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSectionStep(), sql.OrderByField(field, opts...))
	}
}

// ByPassageField orders the results by passage field.
func ByPassageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPassageStep(), sql.OrderByField(field, opts...))
	}
}

// ByAssetField orders the results by asset field.
func ByAssetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssetStep(), sql.OrderByField(field, opts...))
	}
}

// ByChoicesCount orders the results by choices count.
func ByChoicesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChoicesStep(), opts...)
	}
}

// ByChoices orders the results by choices terms.
func ByChoices(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChoicesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSectionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SectionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SectionTable, SectionColumn),
	)
}
func newPassageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PassageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PassageTable, PassageColumn),
	)
}
func newAssetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssetInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, AssetTable, AssetColumn),
	)
}
func newChoicesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChoicesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChoicesTable, ChoicesColumn),
	)
}
