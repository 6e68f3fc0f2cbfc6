// Code generated by ent, DO NOT EDIT.

package reviewitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/recap/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldID, id))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldSubjectID, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldItemID, v))
}

// ItemType applies equality check predicate on the "item_type" field. It's identical to ItemTypeEQ.
func ItemType(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldItemType, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldIntervalDays, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldStreak, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldEaseFactor, v))
}

// LastScore applies equality check predicate on the "last_score" field. It's identical to LastScoreEQ.
func LastScore(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldLastScore, v))
}

// LastReviewAt applies equality check predicate on the "last_review_at" field. It's identical to LastReviewAtEQ.
func LastReviewAt(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldLastReviewAt, v))
}

// DueAt applies equality check predicate on the "due_at" field. It's identical to DueAtEQ.
func DueAt(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldDueAt, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldContainsFold(FieldSubjectID, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldContainsFold(FieldItemID, v))
}

// ItemTypeEQ applies the EQ predicate on the "item_type" field.
func ItemTypeEQ(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldItemType, v))
}

// ItemTypeNEQ applies the NEQ predicate on the "item_type" field.
func ItemTypeNEQ(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldItemType, v))
}

// ItemTypeIn applies the In predicate on the "item_type" field.
func ItemTypeIn(vs ...string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldItemType, vs...))
}

// ItemTypeNotIn applies the NotIn predicate on the "item_type" field.
func ItemTypeNotIn(vs ...string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldItemType, vs...))
}

// ItemTypeGT applies the GT predicate on the "item_type" field.
func ItemTypeGT(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldItemType, v))
}

// ItemTypeGTE applies the GTE predicate on the "item_type" field.
func ItemTypeGTE(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldItemType, v))
}

// ItemTypeLT applies the LT predicate on the "item_type" field.
func ItemTypeLT(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldItemType, v))
}

// ItemTypeLTE applies the LTE predicate on the "item_type" field.
func ItemTypeLTE(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldItemType, v))
}

// ItemTypeContains applies the Contains predicate on the "item_type" field.
func ItemTypeContains(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldContains(FieldItemType, v))
}

// ItemTypeHasPrefix applies the HasPrefix predicate on the "item_type" field.
func ItemTypeHasPrefix(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldHasPrefix(FieldItemType, v))
}

// ItemTypeHasSuffix applies the HasSuffix predicate on the "item_type" field.
func ItemTypeHasSuffix(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldHasSuffix(FieldItemType, v))
}

// ItemTypeEqualFold applies the EqualFold predicate on the "item_type" field.
func ItemTypeEqualFold(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEqualFold(FieldItemType, v))
}

// ItemTypeContainsFold applies the ContainsFold predicate on the "item_type" field.
func ItemTypeContainsFold(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldContainsFold(FieldItemType, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldIntervalDays, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldStreak, v))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldEaseFactor, v))
}

// LastScoreEQ applies the EQ predicate on the "last_score" field.
func LastScoreEQ(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldLastScore, v))
}

// LastScoreNEQ applies the NEQ predicate on the "last_score" field.
func LastScoreNEQ(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldLastScore, v))
}

// LastScoreIn applies the In predicate on the "last_score" field.
func LastScoreIn(vs ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldLastScore, vs...))
}

// LastScoreNotIn applies the NotIn predicate on the "last_score" field.
func LastScoreNotIn(vs ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldLastScore, vs...))
}

// LastScoreGT applies the GT predicate on the "last_score" field.
func LastScoreGT(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldLastScore, v))
}

// LastScoreGTE applies the GTE predicate on the "last_score" field.
func LastScoreGTE(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldLastScore, v))
}

// LastScoreLT applies the LT predicate on the "last_score" field.
func LastScoreLT(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldLastScore, v))
}

// LastScoreLTE applies the LTE predicate on the "last_score" field.
func LastScoreLTE(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldLastScore, v))
}

// LastReviewAtEQ applies the EQ predicate on the "last_review_at" field.
func LastReviewAtEQ(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldLastReviewAt, v))
}

// LastReviewAtNEQ applies the NEQ predicate on the "last_review_at" field.
func LastReviewAtNEQ(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldLastReviewAt, v))
}

// LastReviewAtIn applies the In predicate on the "last_review_at" field.
func LastReviewAtIn(vs ...time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldLastReviewAt, vs...))
}

// LastReviewAtNotIn applies the NotIn predicate on the "last_review_at" field.
func LastReviewAtNotIn(vs ...time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldLastReviewAt, vs...))
}

// LastReviewAtGT applies the GT predicate on the "last_review_at" field.
func LastReviewAtGT(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldLastReviewAt, v))
}

// LastReviewAtGTE applies the GTE predicate on the "last_review_at" field.
func LastReviewAtGTE(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldLastReviewAt, v))
}

// LastReviewAtLT applies the LT predicate on the "last_review_at" field.
func LastReviewAtLT(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldLastReviewAt, v))
}

// LastReviewAtLTE applies the LTE predicate on the "last_review_at" field.
func LastReviewAtLTE(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldLastReviewAt, v))
}

// DueAtEQ applies the EQ predicate on the "due_at" field.
func DueAtEQ(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldDueAt, v))
}

// DueAtNEQ applies the NEQ predicate on the "due_at" field.
func DueAtNEQ(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldDueAt, v))
}

// DueAtIn applies the In predicate on the "due_at" field.
func DueAtIn(vs ...time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldDueAt, vs...))
}

// DueAtNotIn applies the NotIn predicate on the "due_at" field.
func DueAtNotIn(vs ...time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldDueAt, vs...))
}

// DueAtGT applies the GT predicate on the "due_at" field.
func DueAtGT(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldDueAt, v))
}

// DueAtGTE applies the GTE predicate on the "due_at" field.
func DueAtGTE(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldDueAt, v))
}

// DueAtLT applies the LT predicate on the "due_at" field.
func DueAtLT(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldDueAt, v))
}

// DueAtLTE applies the LTE predicate on the "due_at" field.
func DueAtLTE(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldDueAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewItem) predicate.ReviewItem {
	return predicate.ReviewItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewItem) predicate.ReviewItem {
	return predicate.ReviewItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewItem) predicate.ReviewItem {
	return predicate.ReviewItem(sql.NotPredicates(p))
}
