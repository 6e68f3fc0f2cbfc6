// Code generated by ent, DO NOT EDIT.

package reviewitem

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewitem type in the database.
	Label = "review_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldItemType holds the string denoting the item_type field in the database.
	FieldItemType = "item_type"
	// FieldIntervalDays holds the string denoting the interval_days field in the database.
	FieldIntervalDays = "interval_days"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// FieldEaseFactor holds the string denoting the ease_factor field in the database.
	FieldEaseFactor = "ease_factor"
	// FieldLastScore holds the string denoting the last_score field in the database.
	FieldLastScore = "last_score"
	// FieldLastReviewAt holds the string denoting the last_review_at field in the database.
	FieldLastReviewAt = "last_review_at"
	// FieldDueAt holds the string denoting the due_at field in the database.
	FieldDueAt = "due_at"
	// Table holds the table name of the reviewitem in the database.
	Table = "review_items"
)

// Columns holds all SQL columns for reviewitem fields.
var Columns = []string{
	FieldID,
	FieldSubjectID,
	FieldItemID,
	FieldItemType,
	FieldIntervalDays,
	FieldStreak,
	FieldEaseFactor,
	FieldLastScore,
	FieldLastReviewAt,
	FieldDueAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	SubjectIDValidator func(string) error
	// ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	ItemIDValidator func(string) error
	// ItemTypeValidator is a validator for the "item_type" field. It is called by the builders before save.
	ItemTypeValidator func(string) error
	// IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	IntervalDaysValidator func(int) error
	// StreakValidator is a validator for the "streak" field. It is called by the builders before save.
	StreakValidator func(int) error
	// LastScoreValidator is a validator for the "last_score" field. It is called by the builders before save.
	LastScoreValidator func(int) error
)

// OrderOption defines the ordering options for the ReviewItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// ByItemType orders the results by the item_type field.
func ByItemType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemType, opts...).ToFunc()
}

// ByIntervalDays orders the results by the interval_days field.
func ByIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalDays, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}

// ByEaseFactor orders the results by the ease_factor field.
func ByEaseFactor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEaseFactor, opts...).ToFunc()
}

// ByLastScore orders the results by the last_score field.
func ByLastScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastScore, opts...).ToFunc()
}

// ByLastReviewAt orders the results by the last_review_at field.
func ByLastReviewAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReviewAt, opts...).ToFunc()
}

// ByDueAt orders the results by the due_at field.
func ByDueAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueAt, opts...).ToFunc()
}
