// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "item_type", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "passed", Type: field.TypeBool},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_subject_id_item_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4], AttemptEventsColumns[5]},
			},
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
		},
	}
	// ReviewItemsColumns holds the columns for the "review_items" table.
	ReviewItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "item_type", Type: field.TypeString},
		{Name: "interval_days", Type: field.TypeInt},
		{Name: "streak", Type: field.TypeInt},
		{Name: "ease_factor", Type: field.TypeFloat64},
		{Name: "last_score", Type: field.TypeInt},
		{Name: "last_review_at", Type: field.TypeTime},
		{Name: "due_at", Type: field.TypeTime},
	}
	// ReviewItemsTable holds the schema information for the "review_items" table.
	ReviewItemsTable = &schema.Table{
		Name:       "review_items",
		Columns:    ReviewItemsColumns,
		PrimaryKey: []*schema.Column{ReviewItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewitem_subject_id_item_id",
				Unique:  true,
				Columns: []*schema.Column{ReviewItemsColumns[1], ReviewItemsColumns[2]},
			},
			{
				Name:    "reviewitem_due_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewItemsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		ReviewItemsTable,
	}
)

func init() {
}
