// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/visaetude/prepcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// Stem applies equality check predicate on the "stem" field. It's identical to StemEQ.
func Stem(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldStem, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExplanation, v))
}

// StemEQ applies the EQ predicate on the "stem" field.
func StemEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldStem, v))
}

// StemNEQ applies the NEQ predicate on the "stem" field.
func StemNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldStem, v))
}

// StemIn applies the In predicate on the "stem" field.
func StemIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldStem, vs...))
}

// StemNotIn applies the NotIn predicate on the "stem" field.
func StemNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldStem, vs...))
}

// StemGT applies the GT predicate on the "stem" field.
func StemGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldStem, v))
}

// StemGTE applies the GTE predicate on the "stem" field.
func StemGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldStem, v))
}

// StemLT applies the LT predicate on the "stem" field.
func StemLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldStem, v))
}

// StemLTE applies the LTE predicate on the "stem" field.
func StemLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldStem, v))
}

// StemContains applies the Contains predicate on the "stem" field.
func StemContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldStem, v))
}

// StemHasPrefix applies the HasPrefix predicate on the "stem" field.
func StemHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldStem, v))
}

// StemHasSuffix applies the HasSuffix predicate on the "stem" field.
func StemHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldStem, v))
}

// StemEqualFold applies the EqualFold predicate on the "stem" field.
func StemEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldStem, v))
}

// StemContainsFold applies the ContainsFold predicate on the "stem" field.
func StemContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldStem, v))
}

// SubtypeEQ applies the EQ predicate on the "subtype" field.
func SubtypeEQ(v Subtype) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubtype, v))
}

// SubtypeNEQ applies the NEQ predicate on the "subtype" field.
func SubtypeNEQ(v Subtype) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSubtype, v))
}

// SubtypeIn applies the In predicate on the "subtype" field.
func SubtypeIn(vs ...Subtype) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSubtype, vs...))
}

// SubtypeNotIn applies the NotIn predicate on the "subtype" field.
func SubtypeNotIn(vs ...Subtype) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSubtype, vs...))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v Difficulty) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v Difficulty) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...Difficulty) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...Difficulty) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldDifficulty, vs...))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationIsNil applies the IsNil predicate on the "explanation" field.
func ExplanationIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldExplanation))
}

// ExplanationNotNil applies the NotNil predicate on the "explanation" field.
func ExplanationNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldExplanation))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldExplanation, v))
}

// HasSection applies the HasEdge predicate on the "section" edge.
func HasSection() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SectionTable, SectionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSectionWith applies the HasEdge predicate on the "section" edge with a given conditions (other predicates).
func HasSectionWith(preds ...predicate.ExamSection) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newSectionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPassage applies the HasEdge predicate on the "passage" edge.
func HasPassage() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PassageTable, PassageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPassageWith applies the HasEdge predicate on the "passage" edge with a given conditions (other predicates).
func HasPassageWith(preds ...predicate.Passage) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newPassageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAsset applies the HasEdge predicate on the "asset" edge.
func HasAsset() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, AssetTable, AssetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssetWith applies the HasEdge predicate on the "asset" edge with a given conditions (other predicates).
func HasAssetWith(preds ...predicate.Asset) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newAssetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChoices applies the HasEdge predicate on the "choices" edge.
func HasChoices() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChoicesTable, ChoicesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChoicesWith applies the HasEdge predicate on the "choices" edge with a given conditions (other predicates).
func HasChoicesWith(preds ...predicate.Choice) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newChoicesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
