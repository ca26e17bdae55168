// Code generated by ent, DO NOT EDIT.

package userskillprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/visaetude/prepcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldUserID, v))
}

// ExamCode applies equality check predicate on the "exam_code" field. It's identical to ExamCodeEQ.
func ExamCode(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldExamCode, v))
}

// LastScorePercent applies equality check predicate on the "last_score_percent" field. It's identical to LastScorePercentEQ.
func LastScorePercent(v float64) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldLastScorePercent, v))
}

// TotalAttempts applies equality check predicate on the "total_attempts" field. It's identical to TotalAttemptsEQ.
func TotalAttempts(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldTotalAttempts, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldContainsFold(FieldUserID, v))
}

// ExamCodeEQ applies the EQ predicate on the "exam_code" field.
func ExamCodeEQ(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldExamCode, v))
}

// ExamCodeNEQ applies the NEQ predicate on the "exam_code" field.
func ExamCodeNEQ(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNEQ(FieldExamCode, v))
}

// ExamCodeIn applies the In predicate on the "exam_code" field.
func ExamCodeIn(vs ...string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldIn(FieldExamCode, vs...))
}

// ExamCodeNotIn applies the NotIn predicate on the "exam_code" field.
func ExamCodeNotIn(vs ...string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNotIn(FieldExamCode, vs...))
}

// ExamCodeGT applies the GT predicate on the "exam_code" field.
func ExamCodeGT(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGT(FieldExamCode, v))
}

// ExamCodeGTE applies the GTE predicate on the "exam_code" field.
func ExamCodeGTE(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGTE(FieldExamCode, v))
}

// ExamCodeLT applies the LT predicate on the "exam_code" field.
func ExamCodeLT(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLT(FieldExamCode, v))
}

// ExamCodeLTE applies the LTE predicate on the "exam_code" field.
func ExamCodeLTE(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLTE(FieldExamCode, v))
}

// ExamCodeContains applies the Contains predicate on the "exam_code" field.
func ExamCodeContains(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldContains(FieldExamCode, v))
}

// ExamCodeHasPrefix applies the HasPrefix predicate on the "exam_code" field.
func ExamCodeHasPrefix(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldHasPrefix(FieldExamCode, v))
}

// ExamCodeHasSuffix applies the HasSuffix predicate on the "exam_code" field.
func ExamCodeHasSuffix(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldHasSuffix(FieldExamCode, v))
}

// ExamCodeEqualFold applies the EqualFold predicate on the "exam_code" field.
func ExamCodeEqualFold(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEqualFold(FieldExamCode, v))
}

// ExamCodeContainsFold applies the ContainsFold predicate on the "exam_code" field.
func ExamCodeContainsFold(v string) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldContainsFold(FieldExamCode, v))
}

// SkillEQ applies the EQ predicate on the "skill" field.
func SkillEQ(v Skill) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldSkill, v))
}

// SkillNEQ applies the NEQ predicate on the "skill" field.
func SkillNEQ(v Skill) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNEQ(FieldSkill, v))
}

// SkillIn applies the In predicate on the "skill" field.
func SkillIn(vs ...Skill) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldIn(FieldSkill, vs...))
}

// SkillNotIn applies the NotIn predicate on the "skill" field.
func SkillNotIn(vs ...Skill) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNotIn(FieldSkill, vs...))
}

// CurrentLevelEQ applies the EQ predicate on the "current_level" field.
func CurrentLevelEQ(v CurrentLevel) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldCurrentLevel, v))
}

// CurrentLevelNEQ applies the NEQ predicate on the "current_level" field.
func CurrentLevelNEQ(v CurrentLevel) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNEQ(FieldCurrentLevel, v))
}

// CurrentLevelIn applies the In predicate on the "current_level" field.
func CurrentLevelIn(vs ...CurrentLevel) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldIn(FieldCurrentLevel, vs...))
}

// CurrentLevelNotIn applies the NotIn predicate on the "current_level" field.
func CurrentLevelNotIn(vs ...CurrentLevel) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNotIn(FieldCurrentLevel, vs...))
}

// LastScorePercentEQ applies the EQ predicate on the "last_score_percent" field.
func LastScorePercentEQ(v float64) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldLastScorePercent, v))
}

// LastScorePercentNEQ applies the NEQ predicate on the "last_score_percent" field.
func LastScorePercentNEQ(v float64) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNEQ(FieldLastScorePercent, v))
}

// LastScorePercentIn applies the In predicate on the "last_score_percent" field.
func LastScorePercentIn(vs ...float64) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldIn(FieldLastScorePercent, vs...))
}

// LastScorePercentNotIn applies the NotIn predicate on the "last_score_percent" field.
func LastScorePercentNotIn(vs ...float64) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNotIn(FieldLastScorePercent, vs...))
}

// LastScorePercentGT applies the GT predicate on the "last_score_percent" field.
func LastScorePercentGT(v float64) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGT(FieldLastScorePercent, v))
}

// LastScorePercentGTE applies the GTE predicate on the "last_score_percent" field.
func LastScorePercentGTE(v float64) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGTE(FieldLastScorePercent, v))
}

// LastScorePercentLT applies the LT predicate on the "last_score_percent" field.
func LastScorePercentLT(v float64) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLT(FieldLastScorePercent, v))
}

// LastScorePercentLTE applies the LTE predicate on the "last_score_percent" field.
func LastScorePercentLTE(v float64) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLTE(FieldLastScorePercent, v))
}

// TotalAttemptsEQ applies the EQ predicate on the "total_attempts" field.
func TotalAttemptsEQ(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldTotalAttempts, v))
}

// TotalAttemptsNEQ applies the NEQ predicate on the "total_attempts" field.
func TotalAttemptsNEQ(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNEQ(FieldTotalAttempts, v))
}

// TotalAttemptsIn applies the In predicate on the "total_attempts" field.
func TotalAttemptsIn(vs ...int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsNotIn applies the NotIn predicate on the "total_attempts" field.
func TotalAttemptsNotIn(vs ...int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNotIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsGT applies the GT predicate on the "total_attempts" field.
func TotalAttemptsGT(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGT(FieldTotalAttempts, v))
}

// TotalAttemptsGTE applies the GTE predicate on the "total_attempts" field.
func TotalAttemptsGTE(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGTE(FieldTotalAttempts, v))
}

// TotalAttemptsLT applies the LT predicate on the "total_attempts" field.
func TotalAttemptsLT(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLT(FieldTotalAttempts, v))
}

// TotalAttemptsLTE applies the LTE predicate on the "total_attempts" field.
func TotalAttemptsLTE(v int) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLTE(FieldTotalAttempts, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserSkillProgress) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserSkillProgress) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserSkillProgress) predicate.UserSkillProgress {
	return predicate.UserSkillProgress(sql.NotPredicates(p))
}
