// Code generated by ent, DO NOT EDIT.

package attempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/visaetude/prepcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldID, id))
}

// TotalItems applies equality check predicate on the "total_items" field. It's identical to TotalItemsEQ.
func TotalItems(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldTotalItems, v))
}

// RawScore applies equality check predicate on the "raw_score" field. It's identical to RawScoreEQ.
func RawScore(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldRawScore, v))
}

// ScorePercent applies equality check predicate on the "score_percent" field. It's identical to ScorePercentEQ.
func ScorePercent(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldScorePercent, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldFinishedAt, v))
}

// SectionCodeEQ applies the EQ predicate on the "section_code" field.
func SectionCodeEQ(v SectionCode) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSectionCode, v))
}

// SectionCodeNEQ applies the NEQ predicate on the "section_code" field.
func SectionCodeNEQ(v SectionCode) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldSectionCode, v))
}

// SectionCodeIn applies the In predicate on the "section_code" field.
func SectionCodeIn(vs ...SectionCode) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldSectionCode, vs...))
}

// SectionCodeNotIn applies the NotIn predicate on the "section_code" field.
func SectionCodeNotIn(vs ...SectionCode) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldSectionCode, vs...))
}

// TotalItemsEQ applies the EQ predicate on the "total_items" field.
func TotalItemsEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldTotalItems, v))
}

// TotalItemsNEQ applies the NEQ predicate on the "total_items" field.
func TotalItemsNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldTotalItems, v))
}

// TotalItemsIn applies the In predicate on the "total_items" field.
func TotalItemsIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldTotalItems, vs...))
}

// TotalItemsNotIn applies the NotIn predicate on the "total_items" field.
func TotalItemsNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldTotalItems, vs...))
}

// TotalItemsGT applies the GT predicate on the "total_items" field.
func TotalItemsGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldTotalItems, v))
}

// TotalItemsGTE applies the GTE predicate on the "total_items" field.
func TotalItemsGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldTotalItems, v))
}

// TotalItemsLT applies the LT predicate on the "total_items" field.
func TotalItemsLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldTotalItems, v))
}

// TotalItemsLTE applies the LTE predicate on the "total_items" field.
func TotalItemsLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldTotalItems, v))
}

// RawScoreEQ applies the EQ predicate on the "raw_score" field.
func RawScoreEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldRawScore, v))
}

// RawScoreNEQ applies the NEQ predicate on the "raw_score" field.
func RawScoreNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldRawScore, v))
}

// RawScoreIn applies the In predicate on the "raw_score" field.
func RawScoreIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldRawScore, vs...))
}

// RawScoreNotIn applies the NotIn predicate on the "raw_score" field.
func RawScoreNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldRawScore, vs...))
}

// RawScoreGT applies the GT predicate on the "raw_score" field.
func RawScoreGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldRawScore, v))
}

// RawScoreGTE applies the GTE predicate on the "raw_score" field.
func RawScoreGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldRawScore, v))
}

// RawScoreLT applies the LT predicate on the "raw_score" field.
func RawScoreLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldRawScore, v))
}

// RawScoreLTE applies the LTE predicate on the "raw_score" field.
func RawScoreLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldRawScore, v))
}

// ScorePercentEQ applies the EQ predicate on the "score_percent" field.
func ScorePercentEQ(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldScorePercent, v))
}

// ScorePercentNEQ applies the NEQ predicate on the "score_percent" field.
func ScorePercentNEQ(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldScorePercent, v))
}

// ScorePercentIn applies the In predicate on the "score_percent" field.
func ScorePercentIn(vs ...float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldScorePercent, vs...))
}

// ScorePercentNotIn applies the NotIn predicate on the "score_percent" field.
func ScorePercentNotIn(vs ...float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldScorePercent, vs...))
}

// ScorePercentGT applies the GT predicate on the "score_percent" field.
func ScorePercentGT(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldScorePercent, v))
}

// ScorePercentGTE applies the GTE predicate on the "score_percent" field.
func ScorePercentGTE(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldScorePercent, v))
}

// ScorePercentLT applies the LT predicate on the "score_percent" field.
func ScorePercentLT(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldScorePercent, v))
}

// ScorePercentLTE applies the LTE predicate on the "score_percent" field.
func ScorePercentLTE(v float64) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldScorePercent, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldNotNull(FieldFinishedAt))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Attempt {
	return predicate.Attempt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.Attempt {
	return predicate.Attempt(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnswers applies the HasEdge predicate on the "answers" edge.
func HasAnswers() predicate.Attempt {
	return predicate.Attempt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnswersWith applies the HasEdge predicate on the "answers" edge with a given conditions (other predicates).
func HasAnswersWith(preds ...predicate.Answer) predicate.Attempt {
	return predicate.Attempt(func(s *sql.Selector) {
		step := newAnswersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.NotPredicates(p))
}
