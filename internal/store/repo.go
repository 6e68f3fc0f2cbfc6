package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/recap/internal/srs"
)

// PersistenceError indicates the underlying store failed to read or durably
// write. The prior state is left intact; callers should retry or surface the
// failure rather than silently drop the attempt.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ReviewRepo is the durable mapping from (subject, item) to review state.
// Get returns (nil, nil) when no state has been recorded for the key; absence
// is not an error.
type ReviewRepo interface {
	Get(ctx context.Context, subjectID, itemID string) (*srs.ReviewItem, error)

	// Upsert writes the item's state, creating the row on first attempt.
	// The write is acknowledged only on nil error.
	Upsert(ctx context.Context, item srs.ReviewItem) error

	// All returns a snapshot of every tracked review item.
	All(ctx context.Context) ([]srs.ReviewItem, error)

	// DeleteAll wipes all review state.
	DeleteAll(ctx context.Context) error
}

// AttemptRecord is one appended attempt event as read back from the log.
type AttemptRecord struct {
	Sequence  int64
	Timestamp time.Time
	AttemptID string
	SubjectID string
	ItemID    string
	ItemType  string
	Score     int
	Passed    bool
}

// AttemptWriter persists an item's updated schedule together with the
// attempt event that produced it. The two writes are atomic: on error
// neither is visible, so the prior state stays intact and the caller can
// retry without double-applying the attempt.
type AttemptWriter interface {
	RecordAttempt(ctx context.Context, next srs.ReviewItem, attemptID string, outcome srs.AttemptOutcome) error
}

// AttemptRepo provides append and query access to the attempt log.
type AttemptRepo interface {
	// Append records a graded attempt. attemptID must be unique per call.
	Append(ctx context.Context, attemptID string, outcome srs.AttemptOutcome) error

	// All returns every recorded attempt in sequence order.
	All(ctx context.Context) ([]AttemptRecord, error)

	// ForItem returns the attempts for one (subject, item) in sequence order.
	ForItem(ctx context.Context, subjectID, itemID string) ([]AttemptRecord, error)

	// DeleteAll wipes the attempt log.
	DeleteAll(ctx context.Context) error
}
