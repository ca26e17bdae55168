// Code generated by ent, DO NOT EDIT.

package answer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/visaetude/prepcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldID, id))
}

// TextAnswer applies equality check predicate on the "text_answer" field. It's identical to TextAnswerEQ.
func TextAnswer(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldTextAnswer, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldCorrect, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldCreatedAt, v))
}

// TextAnswerEQ applies the EQ predicate on the "text_answer" field.
func TextAnswerEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldTextAnswer, v))
}

// TextAnswerNEQ applies the NEQ predicate on the "text_answer" field.
func TextAnswerNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldTextAnswer, v))
}

// TextAnswerIn applies the In predicate on the "text_answer" field.
func TextAnswerIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldTextAnswer, vs...))
}

// TextAnswerNotIn applies the NotIn predicate on the "text_answer" field.
func TextAnswerNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldTextAnswer, vs...))
}

// TextAnswerGT applies the GT predicate on the "text_answer" field.
func TextAnswerGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldTextAnswer, v))
}

// TextAnswerGTE applies the GTE predicate on the "text_answer" field.
func TextAnswerGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldTextAnswer, v))
}

// TextAnswerLT applies the LT predicate on the "text_answer" field.
func TextAnswerLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldTextAnswer, v))
}

// TextAnswerLTE applies the LTE predicate on the "text_answer" field.
func TextAnswerLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldTextAnswer, v))
}

// TextAnswerContains applies the Contains predicate on the "text_answer" field.
func TextAnswerContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldTextAnswer, v))
}

// TextAnswerHasPrefix applies the HasPrefix predicate on the "text_answer" field.
func TextAnswerHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldTextAnswer, v))
}

// TextAnswerHasSuffix applies the HasSuffix predicate on the "text_answer" field.
func TextAnswerHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldTextAnswer, v))
}

// TextAnswerEqualFold applies the EqualFold predicate on the "text_answer" field.
func TextAnswerEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldTextAnswer, v))
}

// TextAnswerContainsFold applies the ContainsFold predicate on the "text_answer" field.
func TextAnswerContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldTextAnswer, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldCorrect, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAttempt applies the HasEdge predicate on the "attempt" edge.
func HasAttempt() predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AttemptTable, AttemptColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttemptWith applies the HasEdge predicate on the "attempt" edge with a given conditions (other predicates).
func HasAttemptWith(preds ...predicate.Attempt) predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := newAttemptStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestion applies the HasEdge predicate on the "question" edge.
func HasQuestion() predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, QuestionTable, QuestionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionWith applies the HasEdge predicate on the "question" edge with a given conditions (other predicates).
func HasQuestionWith(preds ...predicate.Question) predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := newQuestionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChoice applies the HasEdge predicate on the "choice" edge.
func HasChoice() predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, ChoiceTable, ChoiceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChoiceWith applies the HasEdge predicate on the "choice" edge with a given conditions (other predicates).
func HasChoiceWith(preds ...predicate.Choice) predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := newChoiceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.NotPredicates(p))
}
