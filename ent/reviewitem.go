// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/recap/ent/reviewitem"
)

// ReviewItem is the model entity for the ReviewItem schema.
type ReviewItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID string `json:"subject_id,omitempty"`
	// ItemID holds the value of the "item_id" field.
	ItemID string `json:"item_id,omitempty"`
	// "quiz" or "exercise"; immutable after creation
	ItemType string `json:"item_type,omitempty"`
	// IntervalDays holds the value of the "interval_days" field.
	IntervalDays int `json:"interval_days,omitempty"`
	// Streak holds the value of the "streak" field.
	Streak int `json:"streak,omitempty"`
	// interval growth multiplier, floored at 1.3
	EaseFactor float64 `json:"ease_factor,omitempty"`
	// LastScore holds the value of the "last_score" field.
	LastScore int `json:"last_score,omitempty"`
	// LastReviewAt holds the value of the "last_review_at" field.
	LastReviewAt time.Time `json:"last_review_at,omitempty"`
	// DueAt holds the value of the "due_at" field.
	DueAt        time.Time `json:"due_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewitem.FieldEaseFactor:
			values[i] = new(sql.NullFloat64)
		case reviewitem.FieldID, reviewitem.FieldIntervalDays, reviewitem.FieldStreak, reviewitem.FieldLastScore:
			values[i] = new(sql.NullInt64)
		case reviewitem.FieldSubjectID, reviewitem.FieldItemID, reviewitem.FieldItemType:
			values[i] = new(sql.NullString)
		case reviewitem.FieldLastReviewAt, reviewitem.FieldDueAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewItem fields.
func (_m *ReviewItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reviewitem.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case reviewitem.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.String
			}
		case reviewitem.FieldItemType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_type", values[i])
			} else if value.Valid {
				_m.ItemType = value.String
			}
		case reviewitem.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				_m.IntervalDays = int(value.Int64)
			}
		case reviewitem.FieldStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak", values[i])
			} else if value.Valid {
				_m.Streak = int(value.Int64)
			}
		case reviewitem.FieldEaseFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_factor", values[i])
			} else if value.Valid {
				_m.EaseFactor = value.Float64
			}
		case reviewitem.FieldLastScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_score", values[i])
			} else if value.Valid {
				_m.LastScore = int(value.Int64)
			}
		case reviewitem.FieldLastReviewAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_review_at", values[i])
			} else if value.Valid {
				_m.LastReviewAt = value.Time
			}
		case reviewitem.FieldDueAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_at", values[i])
			} else if value.Valid {
				_m.DueAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewItem.
// This includes values selected through modifiers, order, etc.
func (_m *ReviewItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewItem.
// Note that you need to call ReviewItem.Unwrap() before calling this method if this ReviewItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReviewItem) Update() *ReviewItemUpdateOne {
	return NewReviewItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReviewItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReviewItem) Unwrap() *ReviewItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReviewItem) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("item_id=")
	builder.WriteString(_m.ItemID)
	builder.WriteString(", ")
	builder.WriteString("item_type=")
	builder.WriteString(_m.ItemType)
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.Streak))
	builder.WriteString(", ")
	builder.WriteString("ease_factor=")
	builder.WriteString(fmt.Sprintf("%v", _m.EaseFactor))
	builder.WriteString(", ")
	builder.WriteString("last_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastScore))
	builder.WriteString(", ")
	builder.WriteString("last_review_at=")
	builder.WriteString(_m.LastReviewAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("due_at=")
	builder.WriteString(_m.DueAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReviewItems is a parsable slice of ReviewItem.
type ReviewItems []*ReviewItem
