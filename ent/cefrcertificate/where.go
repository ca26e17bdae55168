// Code generated by ent, DO NOT EDIT.

package cefrcertificate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/visaetude/prepcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldEQ(FieldUserID, v))
}

// ExamCode applies equality check predicate on the "exam_code" field. It's identical to ExamCodeEQ.
func ExamCode(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldEQ(FieldExamCode, v))
}

// PublicID applies equality check predicate on the "public_id" field. It's identical to PublicIDEQ.
func PublicID(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldEQ(FieldPublicID, v))
}

// IssuedAt applies equality check predicate on the "issued_at" field. It's identical to IssuedAtEQ.
func IssuedAt(v time.Time) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldEQ(FieldIssuedAt, v))
}

// PdfPath applies equality check predicate on the "pdf_path" field. It's identical to PdfPathEQ.
func PdfPath(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldEQ(FieldPdfPath, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldContainsFold(FieldUserID, v))
}

// ExamCodeEQ applies the EQ predicate on the "exam_code" field.
func ExamCodeEQ(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldEQ(FieldExamCode, v))
}

// ExamCodeNEQ applies the NEQ predicate on the "exam_code" field.
func ExamCodeNEQ(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldNEQ(FieldExamCode, v))
}

// ExamCodeIn applies the In predicate on the "exam_code" field.
func ExamCodeIn(vs ...string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldIn(FieldExamCode, vs...))
}

// ExamCodeNotIn applies the NotIn predicate on the "exam_code" field.
func ExamCodeNotIn(vs ...string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldNotIn(FieldExamCode, vs...))
}

// ExamCodeGT applies the GT predicate on the "exam_code" field.
func ExamCodeGT(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldGT(FieldExamCode, v))
}

// ExamCodeGTE applies the GTE predicate on the "exam_code" field.
func ExamCodeGTE(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldGTE(FieldExamCode, v))
}

// ExamCodeLT applies the LT predicate on the "exam_code" field.
func ExamCodeLT(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldLT(FieldExamCode, v))
}

// ExamCodeLTE applies the LTE predicate on the "exam_code" field.
func ExamCodeLTE(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldLTE(FieldExamCode, v))
}

// ExamCodeContains applies the Contains predicate on the "exam_code" field.
func ExamCodeContains(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldContains(FieldExamCode, v))
}

// ExamCodeHasPrefix applies the HasPrefix predicate on the "exam_code" field.
func ExamCodeHasPrefix(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldHasPrefix(FieldExamCode, v))
}

// ExamCodeHasSuffix applies the HasSuffix predicate on the "exam_code" field.
func ExamCodeHasSuffix(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldHasSuffix(FieldExamCode, v))
}

// ExamCodeEqualFold applies the EqualFold predicate on the "exam_code" field.
func ExamCodeEqualFold(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldEqualFold(FieldExamCode, v))
}

// ExamCodeContainsFold applies the ContainsFold predicate on the "exam_code" field.
func ExamCodeContainsFold(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldContainsFold(FieldExamCode, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v Level) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v Level) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...Level) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...Level) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldNotIn(FieldLevel, vs...))
}

// PublicIDEQ applies the EQ predicate on the "public_id" field.
func PublicIDEQ(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldEQ(FieldPublicID, v))
}

// PublicIDNEQ applies the NEQ predicate on the "public_id" field.
func PublicIDNEQ(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldNEQ(FieldPublicID, v))
}

// PublicIDIn applies the In predicate on the "public_id" field.
func PublicIDIn(vs ...string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldIn(FieldPublicID, vs...))
}

// PublicIDNotIn applies the NotIn predicate on the "public_id" field.
func PublicIDNotIn(vs ...string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldNotIn(FieldPublicID, vs...))
}

// PublicIDGT applies the GT predicate on the "public_id" field.
func PublicIDGT(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldGT(FieldPublicID, v))
}

// PublicIDGTE applies the GTE predicate on the "public_id" field.
func PublicIDGTE(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldGTE(FieldPublicID, v))
}

// PublicIDLT applies the LT predicate on the "public_id" field.
func PublicIDLT(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldLT(FieldPublicID, v))
}

// PublicIDLTE applies the LTE predicate on the "public_id" field.
func PublicIDLTE(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldLTE(FieldPublicID, v))
}

// PublicIDContains applies the Contains predicate on the "public_id" field.
func PublicIDContains(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldContains(FieldPublicID, v))
}

// PublicIDHasPrefix applies the HasPrefix predicate on the "public_id" field.
func PublicIDHasPrefix(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldHasPrefix(FieldPublicID, v))
}

// PublicIDHasSuffix applies the HasSuffix predicate on the "public_id" field.
func PublicIDHasSuffix(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldHasSuffix(FieldPublicID, v))
}

// PublicIDEqualFold applies the EqualFold predicate on the "public_id" field.
func PublicIDEqualFold(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldEqualFold(FieldPublicID, v))
}

// PublicIDContainsFold applies the ContainsFold predicate on the "public_id" field.
func PublicIDContainsFold(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldContainsFold(FieldPublicID, v))
}

// IssuedAtEQ applies the EQ predicate on the "issued_at" field.
func IssuedAtEQ(v time.Time) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldEQ(FieldIssuedAt, v))
}

// IssuedAtNEQ applies the NEQ predicate on the "issued_at" field.
func IssuedAtNEQ(v time.Time) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldNEQ(FieldIssuedAt, v))
}

// IssuedAtIn applies the In predicate on the "issued_at" field.
func IssuedAtIn(vs ...time.Time) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldIn(FieldIssuedAt, vs...))
}

// IssuedAtNotIn applies the NotIn predicate on the "issued_at" field.
func IssuedAtNotIn(vs ...time.Time) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldNotIn(FieldIssuedAt, vs...))
}

// IssuedAtGT applies the GT predicate on the "issued_at" field.
func IssuedAtGT(v time.Time) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldGT(FieldIssuedAt, v))
}

// IssuedAtGTE applies the GTE predicate on the "issued_at" field.
func IssuedAtGTE(v time.Time) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldGTE(FieldIssuedAt, v))
}

// IssuedAtLT applies the LT predicate on the "issued_at" field.
func IssuedAtLT(v time.Time) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldLT(FieldIssuedAt, v))
}

// IssuedAtLTE applies the LTE predicate on the "issued_at" field.
func IssuedAtLTE(v time.Time) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldLTE(FieldIssuedAt, v))
}

// PdfPathEQ applies the EQ predicate on the "pdf_path" field.
func PdfPathEQ(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldEQ(FieldPdfPath, v))
}

// PdfPathNEQ applies the NEQ predicate on the "pdf_path" field.
func PdfPathNEQ(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldNEQ(FieldPdfPath, v))
}

// PdfPathIn applies the In predicate on the "pdf_path" field.
func PdfPathIn(vs ...string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldIn(FieldPdfPath, vs...))
}

// PdfPathNotIn applies the NotIn predicate on the "pdf_path" field.
func PdfPathNotIn(vs ...string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldNotIn(FieldPdfPath, vs...))
}

// PdfPathGT applies the GT predicate on the "pdf_path" field.
func PdfPathGT(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldGT(FieldPdfPath, v))
}

// PdfPathGTE applies the GTE predicate on the "pdf_path" field.
func PdfPathGTE(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldGTE(FieldPdfPath, v))
}

// PdfPathLT applies the LT predicate on the "pdf_path" field.
func PdfPathLT(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldLT(FieldPdfPath, v))
}

// PdfPathLTE applies the LTE predicate on the "pdf_path" field.
func PdfPathLTE(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldLTE(FieldPdfPath, v))
}

// PdfPathContains applies the Contains predicate on the "pdf_path" field.
func PdfPathContains(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldContains(FieldPdfPath, v))
}

// PdfPathHasPrefix applies the HasPrefix predicate on the "pdf_path" field.
func PdfPathHasPrefix(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldHasPrefix(FieldPdfPath, v))
}

// PdfPathHasSuffix applies the HasSuffix predicate on the "pdf_path" field.
func PdfPathHasSuffix(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldHasSuffix(FieldPdfPath, v))
}

// PdfPathEqualFold applies the EqualFold predicate on the "pdf_path" field.
func PdfPathEqualFold(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldEqualFold(FieldPdfPath, v))
}

// PdfPathContainsFold applies the ContainsFold predicate on the "pdf_path" field.
func PdfPathContainsFold(v string) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.FieldContainsFold(FieldPdfPath, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CEFRCertificate) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CEFRCertificate) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CEFRCertificate) predicate.CEFRCertificate {
	return predicate.CEFRCertificate(sql.NotPredicates(p))
}
