package review

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/recap/internal/srs"
	"github.com/abhisek/recap/internal/store"
)

// Service is the single mutation entry point for review scheduling state.
// It owns the read-modify-write cycle around the pure scheduler: load the
// prior state for a key, compute the next state, then persist the new
// schedule and the attempt event as one atomic write.
//
// Construct one Service per store and thread it through callers; there is no
// package-level instance.
type Service struct {
	reviews store.ReviewRepo
	writer  store.AttemptWriter

	// mu guards locks. Each key gets its own mutex so that concurrent
	// attempts on the same (subject, item) serialize without creating
	// contention across unrelated items. A lost read-modify-write race
	// would silently drop an update, corrupting the learner's schedule.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates a review service over the given read and write sides.
func NewService(reviews store.ReviewRepo, writer store.AttemptWriter) *Service {
	return &Service{
		reviews: reviews,
		writer:  writer,
		locks:   make(map[string]*sync.Mutex),
	}
}

// keyLock returns the mutex serializing updates for one (subject, item) key.
func (s *Service) keyLock(subjectID, itemID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := subjectID + "/" + itemID
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// RecordAttempt applies a graded attempt to the item's schedule and returns
// the new state. The outcome is validated before any state changes, and the
// schedule update and log append commit together; a *srs.ValidationError or
// *store.PersistenceError therefore leaves the stored state untouched, so
// the caller can safely retry. The outcome's timestamp is the scheduling
// "now".
func (s *Service) RecordAttempt(ctx context.Context, outcome srs.AttemptOutcome) (*srs.ReviewItem, error) {
	l := s.keyLock(outcome.SubjectID, outcome.ItemID)
	l.Lock()
	defer l.Unlock()

	prev, err := s.reviews.Get(ctx, outcome.SubjectID, outcome.ItemID)
	if err != nil {
		return nil, err
	}

	next, err := srs.Update(prev, outcome, outcome.Timestamp)
	if err != nil {
		return nil, err
	}

	if err := s.writer.RecordAttempt(ctx, next, uuid.NewString(), outcome); err != nil {
		return nil, err
	}

	return &next, nil
}

// Get returns the review state for an item, or nil if none is recorded.
func (s *Service) Get(ctx context.Context, subjectID, itemID string) (*srs.ReviewItem, error) {
	return s.reviews.Get(ctx, subjectID, itemID)
}

// AllItems returns a snapshot of every tracked review item.
func (s *Service) AllItems(ctx context.Context) ([]srs.ReviewItem, error) {
	return s.reviews.All(ctx)
}

// SelectDue returns the items due at now, most overdue first, ties broken by
// (subject, item) for determinism, truncated to limit. limit <= 0 means no
// cap. An empty result is valid. Read-only: no item state changes.
func (s *Service) SelectDue(ctx context.Context, now time.Time, limit int) ([]srs.ReviewItem, error) {
	items, err := s.reviews.All(ctx)
	if err != nil {
		return nil, err
	}

	var due []srs.ReviewItem
	for _, it := range items {
		if it.IsDue(now) {
			due = append(due, it)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if !due[i].DueAt.Equal(due[j].DueAt) {
			return due[i].DueAt.Before(due[j].DueAt)
		}
		if due[i].SubjectID != due[j].SubjectID {
			return due[i].SubjectID < due[j].SubjectID
		}
		return due[i].ItemID < due[j].ItemID
	})

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

// DueCount returns how many items are due at now.
func (s *Service) DueCount(ctx context.Context, now time.Time) (int, error) {
	items, err := s.reviews.All(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, it := range items {
		if it.IsDue(now) {
			count++
		}
	}
	return count, nil
}
