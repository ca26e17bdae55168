// Code generated by ent, DO NOT EDIT.

package examformatresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/visaetude/prepcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldEQ(FieldUserID, v))
}

// ExamCode applies equality check predicate on the "exam_code" field. It's identical to ExamCodeEQ.
func ExamCode(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldEQ(FieldExamCode, v))
}

// GlobalScore applies equality check predicate on the "global_score" field. It's identical to GlobalScoreEQ.
func GlobalScore(v float64) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldEQ(FieldGlobalScore, v))
}

// ScoreMax applies equality check predicate on the "score_max" field. It's identical to ScoreMaxEQ.
func ScoreMax(v float64) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldEQ(FieldScoreMax, v))
}

// GlobalCefr applies equality check predicate on the "global_cefr" field. It's identical to GlobalCefrEQ.
func GlobalCefr(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldEQ(FieldGlobalCefr, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldEQ(FieldPassed, v))
}

// TakenAt applies equality check predicate on the "taken_at" field. It's identical to TakenAtEQ.
func TakenAt(v time.Time) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldEQ(FieldTakenAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldContainsFold(FieldUserID, v))
}

// ExamCodeEQ applies the EQ predicate on the "exam_code" field.
func ExamCodeEQ(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldEQ(FieldExamCode, v))
}

// ExamCodeNEQ applies the NEQ predicate on the "exam_code" field.
func ExamCodeNEQ(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldNEQ(FieldExamCode, v))
}

// ExamCodeIn applies the In predicate on the "exam_code" field.
func ExamCodeIn(vs ...string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldIn(FieldExamCode, vs...))
}

// ExamCodeNotIn applies the NotIn predicate on the "exam_code" field.
func ExamCodeNotIn(vs ...string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldNotIn(FieldExamCode, vs...))
}

// ExamCodeGT applies the GT predicate on the "exam_code" field.
func ExamCodeGT(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldGT(FieldExamCode, v))
}

// ExamCodeGTE applies the GTE predicate on the "exam_code" field.
func ExamCodeGTE(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldGTE(FieldExamCode, v))
}

// ExamCodeLT applies the LT predicate on the "exam_code" field.
func ExamCodeLT(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldLT(FieldExamCode, v))
}

// ExamCodeLTE applies the LTE predicate on the "exam_code" field.
func ExamCodeLTE(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldLTE(FieldExamCode, v))
}

// ExamCodeContains applies the Contains predicate on the "exam_code" field.
func ExamCodeContains(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldContains(FieldExamCode, v))
}

// ExamCodeHasPrefix applies the HasPrefix predicate on the "exam_code" field.
func ExamCodeHasPrefix(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldHasPrefix(FieldExamCode, v))
}

// ExamCodeHasSuffix applies the HasSuffix predicate on the "exam_code" field.
func ExamCodeHasSuffix(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldHasSuffix(FieldExamCode, v))
}

// ExamCodeEqualFold applies the EqualFold predicate on the "exam_code" field.
func ExamCodeEqualFold(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldEqualFold(FieldExamCode, v))
}

// ExamCodeContainsFold applies the ContainsFold predicate on the "exam_code" field.
func ExamCodeContainsFold(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldContainsFold(FieldExamCode, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v Level) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v Level) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...Level) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...Level) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldNotIn(FieldLevel, vs...))
}

// GlobalScoreEQ applies the EQ predicate on the "global_score" field.
func GlobalScoreEQ(v float64) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldEQ(FieldGlobalScore, v))
}

// GlobalScoreNEQ applies the NEQ predicate on the "global_score" field.
func GlobalScoreNEQ(v float64) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldNEQ(FieldGlobalScore, v))
}

// GlobalScoreIn applies the In predicate on the "global_score" field.
func GlobalScoreIn(vs ...float64) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldIn(FieldGlobalScore, vs...))
}

// GlobalScoreNotIn applies the NotIn predicate on the "global_score" field.
func GlobalScoreNotIn(vs ...float64) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldNotIn(FieldGlobalScore, vs...))
}

// GlobalScoreGT applies the GT predicate on the "global_score" field.
func GlobalScoreGT(v float64) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldGT(FieldGlobalScore, v))
}

// GlobalScoreGTE applies the GTE predicate on the "global_score" field.
func GlobalScoreGTE(v float64) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldGTE(FieldGlobalScore, v))
}

// GlobalScoreLT applies the LT predicate on the "global_score" field.
func GlobalScoreLT(v float64) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldLT(FieldGlobalScore, v))
}

// GlobalScoreLTE applies the LTE predicate on the "global_score" field.
func GlobalScoreLTE(v float64) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldLTE(FieldGlobalScore, v))
}

// ScoreMaxEQ applies the EQ predicate on the "score_max" field.
func ScoreMaxEQ(v float64) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldEQ(FieldScoreMax, v))
}

// ScoreMaxNEQ applies the NEQ predicate on the "score_max" field.
func ScoreMaxNEQ(v float64) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldNEQ(FieldScoreMax, v))
}

// ScoreMaxIn applies the In predicate on the "score_max" field.
func ScoreMaxIn(vs ...float64) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldIn(FieldScoreMax, vs...))
}

// ScoreMaxNotIn applies the NotIn predicate on the "score_max" field.
func ScoreMaxNotIn(vs ...float64) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldNotIn(FieldScoreMax, vs...))
}

// ScoreMaxGT applies the GT predicate on the "score_max" field.
func ScoreMaxGT(v float64) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldGT(FieldScoreMax, v))
}

// ScoreMaxGTE applies the GTE predicate on the "score_max" field.
func ScoreMaxGTE(v float64) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldGTE(FieldScoreMax, v))
}

// ScoreMaxLT applies the LT predicate on the "score_max" field.
func ScoreMaxLT(v float64) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldLT(FieldScoreMax, v))
}

// ScoreMaxLTE applies the LTE predicate on the "score_max" field.
func ScoreMaxLTE(v float64) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldLTE(FieldScoreMax, v))
}

// GlobalCefrEQ applies the EQ predicate on the "global_cefr" field.
func GlobalCefrEQ(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldEQ(FieldGlobalCefr, v))
}

// GlobalCefrNEQ applies the NEQ predicate on the "global_cefr" field.
func GlobalCefrNEQ(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldNEQ(FieldGlobalCefr, v))
}

// GlobalCefrIn applies the In predicate on the "global_cefr" field.
func GlobalCefrIn(vs ...string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldIn(FieldGlobalCefr, vs...))
}

// GlobalCefrNotIn applies the NotIn predicate on the "global_cefr" field.
func GlobalCefrNotIn(vs ...string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldNotIn(FieldGlobalCefr, vs...))
}

// GlobalCefrGT applies the GT predicate on the "global_cefr" field.
func GlobalCefrGT(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldGT(FieldGlobalCefr, v))
}

// GlobalCefrGTE applies the GTE predicate on the "global_cefr" field.
func GlobalCefrGTE(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldGTE(FieldGlobalCefr, v))
}

// GlobalCefrLT applies the LT predicate on the "global_cefr" field.
func GlobalCefrLT(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldLT(FieldGlobalCefr, v))
}

// GlobalCefrLTE applies the LTE predicate on the "global_cefr" field.
func GlobalCefrLTE(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldLTE(FieldGlobalCefr, v))
}

// GlobalCefrContains applies the Contains predicate on the "global_cefr" field.
func GlobalCefrContains(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldContains(FieldGlobalCefr, v))
}

// GlobalCefrHasPrefix applies the HasPrefix predicate on the "global_cefr" field.
func GlobalCefrHasPrefix(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldHasPrefix(FieldGlobalCefr, v))
}

// GlobalCefrHasSuffix applies the HasSuffix predicate on the "global_cefr" field.
func GlobalCefrHasSuffix(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldHasSuffix(FieldGlobalCefr, v))
}

// GlobalCefrEqualFold applies the EqualFold predicate on the "global_cefr" field.
func GlobalCefrEqualFold(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldEqualFold(FieldGlobalCefr, v))
}

// GlobalCefrContainsFold applies the ContainsFold predicate on the "global_cefr" field.
func GlobalCefrContainsFold(v string) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldContainsFold(FieldGlobalCefr, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldNEQ(FieldPassed, v))
}

// TakenAtEQ applies the EQ predicate on the "taken_at" field.
func TakenAtEQ(v time.Time) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldEQ(FieldTakenAt, v))
}

// TakenAtNEQ applies the NEQ predicate on the "taken_at" field.
func TakenAtNEQ(v time.Time) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldNEQ(FieldTakenAt, v))
}

// TakenAtIn applies the In predicate on the "taken_at" field.
func TakenAtIn(vs ...time.Time) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldIn(FieldTakenAt, vs...))
}

// TakenAtNotIn applies the NotIn predicate on the "taken_at" field.
func TakenAtNotIn(vs ...time.Time) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldNotIn(FieldTakenAt, vs...))
}

// TakenAtGT applies the GT predicate on the "taken_at" field.
func TakenAtGT(v time.Time) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldGT(FieldTakenAt, v))
}

// TakenAtGTE applies the GTE predicate on the "taken_at" field.
func TakenAtGTE(v time.Time) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldGTE(FieldTakenAt, v))
}

// TakenAtLT applies the LT predicate on the "taken_at" field.
func TakenAtLT(v time.Time) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldLT(FieldTakenAt, v))
}

// TakenAtLTE applies the LTE predicate on the "taken_at" field.
func TakenAtLTE(v time.Time) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.FieldLTE(FieldTakenAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExamFormatResult) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExamFormatResult) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExamFormatResult) predicate.ExamFormatResult {
	return predicate.ExamFormatResult(sql.NotPredicates(p))
}
