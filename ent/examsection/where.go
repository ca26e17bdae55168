// Code generated by ent, DO NOT EDIT.

package examsection

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/visaetude/prepcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldLTE(FieldID, id))
}

// Order applies equality check predicate on the "order" field. It's identical to OrderEQ.
func Order(v int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldEQ(FieldOrder, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldEQ(FieldDurationSeconds, v))
}

// SectionCodeEQ applies the EQ predicate on the "section_code" field.
func SectionCodeEQ(v SectionCode) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldEQ(FieldSectionCode, v))
}

// SectionCodeNEQ applies the NEQ predicate on the "section_code" field.
func SectionCodeNEQ(v SectionCode) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldNEQ(FieldSectionCode, v))
}

// SectionCodeIn applies the In predicate on the "section_code" field.
func SectionCodeIn(vs ...SectionCode) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldIn(FieldSectionCode, vs...))
}

// SectionCodeNotIn applies the NotIn predicate on the "section_code" field.
func SectionCodeNotIn(vs ...SectionCode) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldNotIn(FieldSectionCode, vs...))
}

// OrderEQ applies the EQ predicate on the "order" field.
func OrderEQ(v int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldEQ(FieldOrder, v))
}

// OrderNEQ applies the NEQ predicate on the "order" field.
func OrderNEQ(v int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldNEQ(FieldOrder, v))
}

// OrderIn applies the In predicate on the "order" field.
func OrderIn(vs ...int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldIn(FieldOrder, vs...))
}

// OrderNotIn applies the NotIn predicate on the "order" field.
func OrderNotIn(vs ...int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldNotIn(FieldOrder, vs...))
}

// OrderGT applies the GT predicate on the "order" field.
func OrderGT(v int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldGT(FieldOrder, v))
}

// OrderGTE applies the GTE predicate on the "order" field.
func OrderGTE(v int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldGTE(FieldOrder, v))
}

// OrderLT applies the LT predicate on the "order" field.
func OrderLT(v int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldLT(FieldOrder, v))
}

// OrderLTE applies the LTE predicate on the "order" field.
func OrderLTE(v int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldLTE(FieldOrder, v))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v int) predicate.ExamSection {
	return predicate.ExamSection(sql.FieldLTE(FieldDurationSeconds, v))
}

// HasExam applies the HasEdge predicate on the "exam" edge.
func HasExam() predicate.ExamSection {
	return predicate.ExamSection(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExamTable, ExamColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExamWith applies the HasEdge predicate on the "exam" edge with a given conditions (other predicates).
func HasExamWith(preds ...predicate.Exam) predicate.ExamSection {
	return predicate.ExamSection(func(s *sql.Selector) {
		step := newExamStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestions applies the HasEdge predicate on the "questions" edge.
func HasQuestions() predicate.ExamSection {
	return predicate.ExamSection(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionsWith applies the HasEdge predicate on the "questions" edge with a given conditions (other predicates).
func HasQuestionsWith(preds ...predicate.Question) predicate.ExamSection {
	return predicate.ExamSection(func(s *sql.Selector) {
		step := newQuestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExamSection) predicate.ExamSection {
	return predicate.ExamSection(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExamSection) predicate.ExamSection {
	return predicate.ExamSection(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExamSection) predicate.ExamSection {
	return predicate.ExamSection(sql.NotPredicates(p))
}
