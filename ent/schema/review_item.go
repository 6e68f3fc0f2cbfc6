package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewItem holds the current spaced-repetition scheduling state for one
// learnable unit (a quiz or an exercise). Exactly one row exists per
// (subject_id, item_id) pair; rows are created lazily on the first graded
// attempt and updated in place on every subsequent one.
type ReviewItem struct {
	ent.Schema
}

func (ReviewItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("subject_id").NotEmpty(),
		field.String("item_id").NotEmpty(),
		field.String("item_type").NotEmpty().
			Comment(`"quiz" or "exercise"; immutable after creation`),
		field.Int("interval_days").Min(1),
		field.Int("streak").Min(0),
		field.Float("ease_factor").
			Comment("interval growth multiplier, floored at 1.3"),
		field.Int("last_score").Min(0).Max(100),
		field.Time("last_review_at"),
		field.Time("due_at"),
	}
}

func (ReviewItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id", "item_id").Unique(),
		index.Fields("due_at"),
	}
}
