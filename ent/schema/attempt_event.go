package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one graded quiz or exercise attempt. Events are
// append-only; the review schedule is derived state, the attempt log is
// the source of truth for statistics.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Monotonically increasing sequence number"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time the attempt was recorded"),
		field.String("attempt_id").NotEmpty().Unique().
			Comment("UUID assigned when the attempt is recorded"),
		field.String("subject_id").NotEmpty(),
		field.String("item_id").NotEmpty(),
		field.String("item_type").NotEmpty(),
		field.Int("score").Min(0).Max(100),
		field.Bool("passed"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id", "item_id"),
		index.Fields("sequence"),
		index.Fields("timestamp"),
	}
}
