// Code generated by ent, DO NOT EDIT.

package courseexercise

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/visaetude/prepcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLTE(FieldID, id))
}

// Stem applies equality check predicate on the "stem" field. It's identical to StemEQ.
func Stem(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldStem, v))
}

// OptionA applies equality check predicate on the "option_a" field. It's identical to OptionAEQ.
func OptionA(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldOptionA, v))
}

// OptionB applies equality check predicate on the "option_b" field. It's identical to OptionBEQ.
func OptionB(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldOptionB, v))
}

// OptionC applies equality check predicate on the "option_c" field. It's identical to OptionCEQ.
func OptionC(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldOptionC, v))
}

// OptionD applies equality check predicate on the "option_d" field. It's identical to OptionDEQ.
func OptionD(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldOptionD, v))
}

// CorrectOption applies equality check predicate on the "correct_option" field. It's identical to CorrectOptionEQ.
func CorrectOption(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldCorrectOption, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldPrompt, v))
}

// MinWords applies equality check predicate on the "min_words" field. It's identical to MinWordsEQ.
func MinWords(v int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldMinWords, v))
}

// MaxWords applies equality check predicate on the "max_words" field. It's identical to MaxWordsEQ.
func MaxWords(v int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldMaxWords, v))
}

// SampleAnswer applies equality check predicate on the "sample_answer" field. It's identical to SampleAnswerEQ.
func SampleAnswer(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldSampleAnswer, v))
}

// Criteria applies equality check predicate on the "criteria" field. It's identical to CriteriaEQ.
func Criteria(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldCriteria, v))
}

// Order applies equality check predicate on the "order" field. It's identical to OrderEQ.
func Order(v int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldOrder, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNotIn(FieldKind, vs...))
}

// StemEQ applies the EQ predicate on the "stem" field.
func StemEQ(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldStem, v))
}

// StemNEQ applies the NEQ predicate on the "stem" field.
func StemNEQ(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNEQ(FieldStem, v))
}

// StemIn applies the In predicate on the "stem" field.
func StemIn(vs ...string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldIn(FieldStem, vs...))
}

// StemNotIn applies the NotIn predicate on the "stem" field.
func StemNotIn(vs ...string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNotIn(FieldStem, vs...))
}

// StemGT applies the GT predicate on the "stem" field.
func StemGT(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGT(FieldStem, v))
}

// StemGTE applies the GTE predicate on the "stem" field.
func StemGTE(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGTE(FieldStem, v))
}

// StemLT applies the LT predicate on the "stem" field.
func StemLT(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLT(FieldStem, v))
}

// StemLTE applies the LTE predicate on the "stem" field.
func StemLTE(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLTE(FieldStem, v))
}

// StemContains applies the Contains predicate on the "stem" field.
func StemContains(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldContains(FieldStem, v))
}

// StemHasPrefix applies the HasPrefix predicate on the "stem" field.
func StemHasPrefix(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldHasPrefix(FieldStem, v))
}

// StemHasSuffix applies the HasSuffix predicate on the "stem" field.
func StemHasSuffix(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldHasSuffix(FieldStem, v))
}

// StemEqualFold applies the EqualFold predicate on the "stem" field.
func StemEqualFold(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEqualFold(FieldStem, v))
}

// StemContainsFold applies the ContainsFold predicate on the "stem" field.
func StemContainsFold(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldContainsFold(FieldStem, v))
}

// OptionAEQ applies the EQ predicate on the "option_a" field.
func OptionAEQ(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldOptionA, v))
}

// OptionANEQ applies the NEQ predicate on the "option_a" field.
func OptionANEQ(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNEQ(FieldOptionA, v))
}

// OptionAIn applies the In predicate on the "option_a" field.
func OptionAIn(vs ...string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldIn(FieldOptionA, vs...))
}

// OptionANotIn applies the NotIn predicate on the "option_a" field.
func OptionANotIn(vs ...string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNotIn(FieldOptionA, vs...))
}

// OptionAGT applies the GT predicate on the "option_a" field.
func OptionAGT(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGT(FieldOptionA, v))
}

// OptionAGTE applies the GTE predicate on the "option_a" field.
func OptionAGTE(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGTE(FieldOptionA, v))
}

// OptionALT applies the LT predicate on the "option_a" field.
func OptionALT(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLT(FieldOptionA, v))
}

// OptionALTE applies the LTE predicate on the "option_a" field.
func OptionALTE(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLTE(FieldOptionA, v))
}

// OptionAContains applies the Contains predicate on the "option_a" field.
func OptionAContains(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldContains(FieldOptionA, v))
}

// OptionAHasPrefix applies the HasPrefix predicate on the "option_a" field.
func OptionAHasPrefix(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldHasPrefix(FieldOptionA, v))
}

// OptionAHasSuffix applies the HasSuffix predicate on the "option_a" field.
func OptionAHasSuffix(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldHasSuffix(FieldOptionA, v))
}

// OptionAEqualFold applies the EqualFold predicate on the "option_a" field.
func OptionAEqualFold(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEqualFold(FieldOptionA, v))
}

// OptionAContainsFold applies the ContainsFold predicate on the "option_a" field.
func OptionAContainsFold(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldContainsFold(FieldOptionA, v))
}

// OptionBEQ applies the EQ predicate on the "option_b" field.
func OptionBEQ(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldOptionB, v))
}

// OptionBNEQ applies the NEQ predicate on the "option_b" field.
func OptionBNEQ(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNEQ(FieldOptionB, v))
}

// OptionBIn applies the In predicate on the "option_b" field.
func OptionBIn(vs ...string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldIn(FieldOptionB, vs...))
}

// OptionBNotIn applies the NotIn predicate on the "option_b" field.
func OptionBNotIn(vs ...string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNotIn(FieldOptionB, vs...))
}

// OptionBGT applies the GT predicate on the "option_b" field.
func OptionBGT(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGT(FieldOptionB, v))
}

// OptionBGTE applies the GTE predicate on the "option_b" field.
func OptionBGTE(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGTE(FieldOptionB, v))
}

// OptionBLT applies the LT predicate on the "option_b" field.
func OptionBLT(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLT(FieldOptionB, v))
}

// OptionBLTE applies the LTE predicate on the "option_b" field.
func OptionBLTE(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLTE(FieldOptionB, v))
}

// OptionBContains applies the Contains predicate on the "option_b" field.
func OptionBContains(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldContains(FieldOptionB, v))
}

// OptionBHasPrefix applies the HasPrefix predicate on the "option_b" field.
func OptionBHasPrefix(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldHasPrefix(FieldOptionB, v))
}

// OptionBHasSuffix applies the HasSuffix predicate on the "option_b" field.
func OptionBHasSuffix(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldHasSuffix(FieldOptionB, v))
}

// OptionBEqualFold applies the EqualFold predicate on the "option_b" field.
func OptionBEqualFold(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEqualFold(FieldOptionB, v))
}

// OptionBContainsFold applies the ContainsFold predicate on the "option_b" field.
func OptionBContainsFold(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldContainsFold(FieldOptionB, v))
}

// OptionCEQ applies the EQ predicate on the "option_c" field.
func OptionCEQ(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldOptionC, v))
}

// OptionCNEQ applies the NEQ predicate on the "option_c" field.
func OptionCNEQ(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNEQ(FieldOptionC, v))
}

// OptionCIn applies the In predicate on the "option_c" field.
func OptionCIn(vs ...string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldIn(FieldOptionC, vs...))
}

// OptionCNotIn applies the NotIn predicate on the "option_c" field.
func OptionCNotIn(vs ...string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNotIn(FieldOptionC, vs...))
}

// OptionCGT applies the GT predicate on the "option_c" field.
func OptionCGT(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGT(FieldOptionC, v))
}

// OptionCGTE applies the GTE predicate on the "option_c" field.
func OptionCGTE(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGTE(FieldOptionC, v))
}

// OptionCLT applies the LT predicate on the "option_c" field.
func OptionCLT(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLT(FieldOptionC, v))
}

// OptionCLTE applies the LTE predicate on the "option_c" field.
func OptionCLTE(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLTE(FieldOptionC, v))
}

// OptionCContains applies the Contains predicate on the "option_c" field.
func OptionCContains(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldContains(FieldOptionC, v))
}

// OptionCHasPrefix applies the HasPrefix predicate on the "option_c" field.
func OptionCHasPrefix(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldHasPrefix(FieldOptionC, v))
}

// OptionCHasSuffix applies the HasSuffix predicate on the "option_c" field.
func OptionCHasSuffix(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldHasSuffix(FieldOptionC, v))
}

// OptionCEqualFold applies the EqualFold predicate on the "option_c" field.
func OptionCEqualFold(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEqualFold(FieldOptionC, v))
}

// OptionCContainsFold applies the ContainsFold predicate on the "option_c" field.
func OptionCContainsFold(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldContainsFold(FieldOptionC, v))
}

// OptionDEQ applies the EQ predicate on the "option_d" field.
func OptionDEQ(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldOptionD, v))
}

// OptionDNEQ applies the NEQ predicate on the "option_d" field.
func OptionDNEQ(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNEQ(FieldOptionD, v))
}

// OptionDIn applies the In predicate on the "option_d" field.
func OptionDIn(vs ...string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldIn(FieldOptionD, vs...))
}

// OptionDNotIn applies the NotIn predicate on the "option_d" field.
func OptionDNotIn(vs ...string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNotIn(FieldOptionD, vs...))
}

// OptionDGT applies the GT predicate on the "option_d" field.
func OptionDGT(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGT(FieldOptionD, v))
}

// OptionDGTE applies the GTE predicate on the "option_d" field.
func OptionDGTE(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGTE(FieldOptionD, v))
}

// OptionDLT applies the LT predicate on the "option_d" field.
func OptionDLT(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLT(FieldOptionD, v))
}

// OptionDLTE applies the LTE predicate on the "option_d" field.
func OptionDLTE(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLTE(FieldOptionD, v))
}

// OptionDContains applies the Contains predicate on the "option_d" field.
func OptionDContains(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldContains(FieldOptionD, v))
}

// OptionDHasPrefix applies the HasPrefix predicate on the "option_d" field.
func OptionDHasPrefix(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldHasPrefix(FieldOptionD, v))
}

// OptionDHasSuffix applies the HasSuffix predicate on the "option_d" field.
func OptionDHasSuffix(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldHasSuffix(FieldOptionD, v))
}

// OptionDEqualFold applies the EqualFold predicate on the "option_d" field.
func OptionDEqualFold(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEqualFold(FieldOptionD, v))
}

// OptionDContainsFold applies the ContainsFold predicate on the "option_d" field.
func OptionDContainsFold(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldContainsFold(FieldOptionD, v))
}

// CorrectOptionEQ applies the EQ predicate on the "correct_option" field.
func CorrectOptionEQ(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldCorrectOption, v))
}

// CorrectOptionNEQ applies the NEQ predicate on the "correct_option" field.
func CorrectOptionNEQ(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNEQ(FieldCorrectOption, v))
}

// CorrectOptionIn applies the In predicate on the "correct_option" field.
func CorrectOptionIn(vs ...string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldIn(FieldCorrectOption, vs...))
}

// CorrectOptionNotIn applies the NotIn predicate on the "correct_option" field.
func CorrectOptionNotIn(vs ...string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNotIn(FieldCorrectOption, vs...))
}

// CorrectOptionGT applies the GT predicate on the "correct_option" field.
func CorrectOptionGT(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGT(FieldCorrectOption, v))
}

// CorrectOptionGTE applies the GTE predicate on the "correct_option" field.
func CorrectOptionGTE(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGTE(FieldCorrectOption, v))
}

// CorrectOptionLT applies the LT predicate on the "correct_option" field.
func CorrectOptionLT(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLT(FieldCorrectOption, v))
}

// CorrectOptionLTE applies the LTE predicate on the "correct_option" field.
func CorrectOptionLTE(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLTE(FieldCorrectOption, v))
}

// CorrectOptionContains applies the Contains predicate on the "correct_option" field.
func CorrectOptionContains(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldContains(FieldCorrectOption, v))
}

// CorrectOptionHasPrefix applies the HasPrefix predicate on the "correct_option" field.
func CorrectOptionHasPrefix(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldHasPrefix(FieldCorrectOption, v))
}

// CorrectOptionHasSuffix applies the HasSuffix predicate on the "correct_option" field.
func CorrectOptionHasSuffix(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldHasSuffix(FieldCorrectOption, v))
}

// CorrectOptionEqualFold applies the EqualFold predicate on the "correct_option" field.
func CorrectOptionEqualFold(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEqualFold(FieldCorrectOption, v))
}

// CorrectOptionContainsFold applies the ContainsFold predicate on the "correct_option" field.
func CorrectOptionContainsFold(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldContainsFold(FieldCorrectOption, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldContainsFold(FieldPrompt, v))
}

// MinWordsEQ applies the EQ predicate on the "min_words" field.
func MinWordsEQ(v int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldMinWords, v))
}

// MinWordsNEQ applies the NEQ predicate on the "min_words" field.
func MinWordsNEQ(v int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNEQ(FieldMinWords, v))
}

// MinWordsIn applies the In predicate on the "min_words" field.
func MinWordsIn(vs ...int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldIn(FieldMinWords, vs...))
}

// MinWordsNotIn applies the NotIn predicate on the "min_words" field.
func MinWordsNotIn(vs ...int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNotIn(FieldMinWords, vs...))
}

// MinWordsGT applies the GT predicate on the "min_words" field.
func MinWordsGT(v int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGT(FieldMinWords, v))
}

// MinWordsGTE applies the GTE predicate on the "min_words" field.
func MinWordsGTE(v int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGTE(FieldMinWords, v))
}

// MinWordsLT applies the LT predicate on the "min_words" field.
func MinWordsLT(v int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLT(FieldMinWords, v))
}

// MinWordsLTE applies the LTE predicate on the "min_words" field.
func MinWordsLTE(v int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLTE(FieldMinWords, v))
}

// MaxWordsEQ applies the EQ predicate on the "max_words" field.
func MaxWordsEQ(v int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldMaxWords, v))
}

// MaxWordsNEQ applies the NEQ predicate on the "max_words" field.
func MaxWordsNEQ(v int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNEQ(FieldMaxWords, v))
}

// MaxWordsIn applies the In predicate on the "max_words" field.
func MaxWordsIn(vs ...int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldIn(FieldMaxWords, vs...))
}

// MaxWordsNotIn applies the NotIn predicate on the "max_words" field.
func MaxWordsNotIn(vs ...int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNotIn(FieldMaxWords, vs...))
}

// MaxWordsGT applies the GT predicate on the "max_words" field.
func MaxWordsGT(v int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGT(FieldMaxWords, v))
}

// MaxWordsGTE applies the GTE predicate on the "max_words" field.
func MaxWordsGTE(v int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGTE(FieldMaxWords, v))
}

// MaxWordsLT applies the LT predicate on the "max_words" field.
func MaxWordsLT(v int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLT(FieldMaxWords, v))
}

// MaxWordsLTE applies the LTE predicate on the "max_words" field.
func MaxWordsLTE(v int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLTE(FieldMaxWords, v))
}

// SampleAnswerEQ applies the EQ predicate on the "sample_answer" field.
func SampleAnswerEQ(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldSampleAnswer, v))
}

// SampleAnswerNEQ applies the NEQ predicate on the "sample_answer" field.
func SampleAnswerNEQ(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNEQ(FieldSampleAnswer, v))
}

// SampleAnswerIn applies the In predicate on the "sample_answer" field.
func SampleAnswerIn(vs ...string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldIn(FieldSampleAnswer, vs...))
}

// SampleAnswerNotIn applies the NotIn predicate on the "sample_answer" field.
func SampleAnswerNotIn(vs ...string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNotIn(FieldSampleAnswer, vs...))
}

// SampleAnswerGT applies the GT predicate on the "sample_answer" field.
func SampleAnswerGT(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGT(FieldSampleAnswer, v))
}

// SampleAnswerGTE applies the GTE predicate on the "sample_answer" field.
func SampleAnswerGTE(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGTE(FieldSampleAnswer, v))
}

// SampleAnswerLT applies the LT predicate on the "sample_answer" field.
func SampleAnswerLT(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLT(FieldSampleAnswer, v))
}

// SampleAnswerLTE applies the LTE predicate on the "sample_answer" field.
func SampleAnswerLTE(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLTE(FieldSampleAnswer, v))
}

// SampleAnswerContains applies the Contains predicate on the "sample_answer" field.
func SampleAnswerContains(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldContains(FieldSampleAnswer, v))
}

// SampleAnswerHasPrefix applies the HasPrefix predicate on the "sample_answer" field.
func SampleAnswerHasPrefix(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldHasPrefix(FieldSampleAnswer, v))
}

// SampleAnswerHasSuffix applies the HasSuffix predicate on the "sample_answer" field.
func SampleAnswerHasSuffix(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldHasSuffix(FieldSampleAnswer, v))
}

// SampleAnswerEqualFold applies the EqualFold predicate on the "sample_answer" field.
func SampleAnswerEqualFold(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEqualFold(FieldSampleAnswer, v))
}

// SampleAnswerContainsFold applies the ContainsFold predicate on the "sample_answer" field.
func SampleAnswerContainsFold(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldContainsFold(FieldSampleAnswer, v))
}

// CriteriaEQ applies the EQ predicate on the "criteria" field.
func CriteriaEQ(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldCriteria, v))
}

// CriteriaNEQ applies the NEQ predicate on the "criteria" field.
func CriteriaNEQ(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNEQ(FieldCriteria, v))
}

// CriteriaIn applies the In predicate on the "criteria" field.
func CriteriaIn(vs ...string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldIn(FieldCriteria, vs...))
}

// CriteriaNotIn applies the NotIn predicate on the "criteria" field.
func CriteriaNotIn(vs ...string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNotIn(FieldCriteria, vs...))
}

// CriteriaGT applies the GT predicate on the "criteria" field.
func CriteriaGT(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGT(FieldCriteria, v))
}

// CriteriaGTE applies the GTE predicate on the "criteria" field.
func CriteriaGTE(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGTE(FieldCriteria, v))
}

// CriteriaLT applies the LT predicate on the "criteria" field.
func CriteriaLT(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLT(FieldCriteria, v))
}

// CriteriaLTE applies the LTE predicate on the "criteria" field.
func CriteriaLTE(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLTE(FieldCriteria, v))
}

// CriteriaContains applies the Contains predicate on the "criteria" field.
func CriteriaContains(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldContains(FieldCriteria, v))
}

// CriteriaHasPrefix applies the HasPrefix predicate on the "criteria" field.
func CriteriaHasPrefix(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldHasPrefix(FieldCriteria, v))
}

// CriteriaHasSuffix applies the HasSuffix predicate on the "criteria" field.
func CriteriaHasSuffix(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldHasSuffix(FieldCriteria, v))
}

// CriteriaEqualFold applies the EqualFold predicate on the "criteria" field.
func CriteriaEqualFold(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEqualFold(FieldCriteria, v))
}

// CriteriaContainsFold applies the ContainsFold predicate on the "criteria" field.
func CriteriaContainsFold(v string) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldContainsFold(FieldCriteria, v))
}

// OrderEQ applies the EQ predicate on the "order" field.
func OrderEQ(v int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldEQ(FieldOrder, v))
}

// OrderNEQ applies the NEQ predicate on the "order" field.
func OrderNEQ(v int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNEQ(FieldOrder, v))
}

// OrderIn applies the In predicate on the "order" field.
func OrderIn(vs ...int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldIn(FieldOrder, vs...))
}

// OrderNotIn applies the NotIn predicate on the "order" field.
func OrderNotIn(vs ...int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldNotIn(FieldOrder, vs...))
}

// OrderGT applies the GT predicate on the "order" field.
func OrderGT(v int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGT(FieldOrder, v))
}

// OrderGTE applies the GTE predicate on the "order" field.
func OrderGTE(v int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldGTE(FieldOrder, v))
}

// OrderLT applies the LT predicate on the "order" field.
func OrderLT(v int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLT(FieldOrder, v))
}

// OrderLTE applies the LTE predicate on the "order" field.
func OrderLTE(v int) predicate.CourseExercise {
	return predicate.CourseExercise(sql.FieldLTE(FieldOrder, v))
}

// HasLesson applies the HasEdge predicate on the "lesson" edge.
func HasLesson() predicate.CourseExercise {
	return predicate.CourseExercise(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LessonTable, LessonColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLessonWith applies the HasEdge predicate on the "lesson" edge with a given conditions (other predicates).
func HasLessonWith(preds ...predicate.CourseLesson) predicate.CourseExercise {
	return predicate.CourseExercise(func(s *sql.Selector) {
		step := newLessonStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAsset applies the HasEdge predicate on the "asset" edge.
func HasAsset() predicate.CourseExercise {
	return predicate.CourseExercise(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, AssetTable, AssetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssetWith applies the HasEdge predicate on the "asset" edge with a given conditions (other predicates).
func HasAssetWith(preds ...predicate.Asset) predicate.CourseExercise {
	return predicate.CourseExercise(func(s *sql.Selector) {
		step := newAssetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CourseExercise) predicate.CourseExercise {
	return predicate.CourseExercise(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CourseExercise) predicate.CourseExercise {
	return predicate.CourseExercise(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CourseExercise) predicate.CourseExercise {
	return predicate.CourseExercise(sql.NotPredicates(p))
}
