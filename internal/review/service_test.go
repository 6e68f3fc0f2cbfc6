package review

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/recap/internal/srs"
	"github.com/abhisek/recap/internal/store"
)

// memReviewRepo is an in-memory ReviewRepo for tests.
type memReviewRepo struct {
	mu    sync.Mutex
	items map[string]srs.ReviewItem
	fail  error // when set, every call returns this error
}

func newMemReviewRepo() *memReviewRepo {
	return &memReviewRepo{items: make(map[string]srs.ReviewItem)}
}

func (m *memReviewRepo) Get(_ context.Context, subjectID, itemID string) (*srs.ReviewItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	it, ok := m.items[subjectID+"/"+itemID]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (m *memReviewRepo) Upsert(_ context.Context, item srs.ReviewItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.items[item.Key()] = item
	return nil
}

func (m *memReviewRepo) All(_ context.Context) ([]srs.ReviewItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	out := make([]srs.ReviewItem, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it)
	}
	return out, nil
}

func (m *memReviewRepo) DeleteAll(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[string]srs.ReviewItem)
	return nil
}

// memAttemptRepo is an in-memory AttemptRepo for tests.
type memAttemptRepo struct {
	mu      sync.Mutex
	records []store.AttemptRecord
}

func (m *memAttemptRepo) Append(_ context.Context, attemptID string, outcome srs.AttemptOutcome) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, store.AttemptRecord{
		Sequence:  int64(len(m.records) + 1),
		Timestamp: outcome.Timestamp,
		AttemptID: attemptID,
		SubjectID: outcome.SubjectID,
		ItemID:    outcome.ItemID,
		ItemType:  string(outcome.ItemType),
		Score:     outcome.Score,
		Passed:    outcome.Passed(),
	})
	return nil
}

func (m *memAttemptRepo) All(_ context.Context) ([]store.AttemptRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]store.AttemptRecord(nil), m.records...), nil
}

func (m *memAttemptRepo) ForItem(_ context.Context, subjectID, itemID string) ([]store.AttemptRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.AttemptRecord
	for _, r := range m.records {
		if r.SubjectID == subjectID && r.ItemID == itemID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memAttemptRepo) DeleteAll(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
	return nil
}

// memWriter applies the schedule update and log append together, mirroring
// the transactional store writer. When fail is set the whole write fails
// with nothing applied.
type memWriter struct {
	reviews  *memReviewRepo
	attempts *memAttemptRepo
	fail     error
}

func (w *memWriter) RecordAttempt(ctx context.Context, next srs.ReviewItem, attemptID string, outcome srs.AttemptOutcome) error {
	if w.fail != nil {
		return w.fail
	}
	if err := w.reviews.Upsert(ctx, next); err != nil {
		return err
	}
	return w.attempts.Append(ctx, attemptID, outcome)
}

func newTestService() (*Service, *memReviewRepo, *memAttemptRepo) {
	reviews := newMemReviewRepo()
	attempts := &memAttemptRepo{}
	writer := &memWriter{reviews: reviews, attempts: attempts}
	return NewService(reviews, writer), reviews, attempts
}

func quizOutcome(itemID string, score int, ts time.Time) srs.AttemptOutcome {
	return srs.AttemptOutcome{
		SubjectID: "cs101",
		ItemID:    itemID,
		ItemType:  srs.ItemQuiz,
		Score:     score,
		Timestamp: ts,
	}
}

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestRecordAttempt_CreatesStateOnFirstAttempt(t *testing.T) {
	svc, _, attempts := newTestService()
	ctx := context.Background()

	item, err := svc.RecordAttempt(ctx, quizOutcome("cs101-t1-quiz-a", 85, now))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if item.Streak != 1 || item.IntervalDays != 1 || item.EaseFactor != 2.5 {
		t.Errorf("item = %+v, want streak 1, interval 1, ease 2.5", item)
	}

	records, _ := attempts.All(ctx)
	if len(records) != 1 {
		t.Fatalf("attempt log length = %d, want 1", len(records))
	}
	if records[0].AttemptID == "" {
		t.Error("expected a generated attempt ID")
	}
}

func TestRecordAttempt_InvalidScoreLeavesStateUntouched(t *testing.T) {
	svc, _, attempts := newTestService()
	ctx := context.Background()

	if _, err := svc.RecordAttempt(ctx, quizOutcome("cs101-t1-quiz-a", 85, now)); err != nil {
		t.Fatalf("seed attempt: %v", err)
	}
	before, err := svc.Get(ctx, "cs101", "cs101-t1-quiz-a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	_, err = svc.RecordAttempt(ctx, quizOutcome("cs101-t1-quiz-a", 150, now.AddDate(0, 0, 1)))
	var verr *srs.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *srs.ValidationError", err)
	}

	after, err := svc.Get(ctx, "cs101", "cs101-t1-quiz-a")
	if err != nil {
		t.Fatalf("get after reject: %v", err)
	}
	if *after != *before {
		t.Errorf("state changed on rejected attempt: %+v -> %+v", before, after)
	}

	records, _ := attempts.All(ctx)
	if len(records) != 1 {
		t.Errorf("attempt log length = %d, want 1 (rejected attempt not logged)", len(records))
	}
}

func TestRecordAttempt_PersistenceErrorPropagates(t *testing.T) {
	svc, reviews, _ := newTestService()
	ctx := context.Background()

	reviews.fail = &store.PersistenceError{Op: "get review item", Err: errors.New("disk gone")}

	_, err := svc.RecordAttempt(ctx, quizOutcome("cs101-t1-quiz-a", 85, now))
	var perr *store.PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *store.PersistenceError", err)
	}
}

func TestRecordAttempt_FailedWriteLeavesStateUntouched(t *testing.T) {
	reviews := newMemReviewRepo()
	attempts := &memAttemptRepo{}
	writer := &memWriter{reviews: reviews, attempts: attempts}
	svc := NewService(reviews, writer)
	ctx := context.Background()

	if _, err := svc.RecordAttempt(ctx, quizOutcome("cs101-t1-quiz-a", 85, now)); err != nil {
		t.Fatalf("seed attempt: %v", err)
	}
	before, err := svc.Get(ctx, "cs101", "cs101-t1-quiz-a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	writer.fail = &store.PersistenceError{Op: "append attempt event", Err: errors.New("disk full")}
	_, err = svc.RecordAttempt(ctx, quizOutcome("cs101-t1-quiz-a", 100, now.AddDate(0, 0, 1)))
	var perr *store.PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *store.PersistenceError", err)
	}

	// The failed attempt must not have touched the schedule or the log,
	// so retrying it cannot double-apply.
	after, err := svc.Get(ctx, "cs101", "cs101-t1-quiz-a")
	if err != nil {
		t.Fatalf("get after failed write: %v", err)
	}
	if *after != *before {
		t.Errorf("state changed on failed write: %+v -> %+v", before, after)
	}
	records, _ := attempts.All(ctx)
	if len(records) != 1 {
		t.Errorf("attempt log length = %d, want 1 (failed attempt not logged)", len(records))
	}
}

func TestGet_AbsentIsNilNotError(t *testing.T) {
	svc, _, _ := newTestService()

	item, err := svc.Get(context.Background(), "cs101", "never-attempted")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if item != nil {
		t.Error("expected nil state for never-attempted item")
	}
}

func TestSelectDue_FilterOrderAndLimit(t *testing.T) {
	svc, reviews, _ := newTestService()
	ctx := context.Background()

	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	seed := []srs.ReviewItem{
		{SubjectID: "cs101", ItemID: "cs101-t1-quiz-a", ItemType: srs.ItemQuiz, IntervalDays: 1, EaseFactor: 2.5, LastReviewAt: now.AddDate(0, 0, -2), DueAt: yesterday},
		{SubjectID: "cs101", ItemID: "cs101-t1-ex01", ItemType: srs.ItemExercise, IntervalDays: 1, EaseFactor: 2.5, LastReviewAt: yesterday, DueAt: now},
		{SubjectID: "cs101", ItemID: "cs101-t2-quiz-a", ItemType: srs.ItemQuiz, IntervalDays: 2, EaseFactor: 2.5, LastReviewAt: yesterday, DueAt: tomorrow},
	}
	for _, it := range seed {
		if err := reviews.Upsert(ctx, it); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	due, err := svc.SelectDue(ctx, now, 10)
	if err != nil {
		t.Fatalf("select due: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("len(due) = %d, want 2 (tomorrow's item excluded)", len(due))
	}
	if due[0].ItemID != "cs101-t1-quiz-a" || due[1].ItemID != "cs101-t1-ex01" {
		t.Errorf("order = [%s, %s], want most overdue first", due[0].ItemID, due[1].ItemID)
	}

	// Truncation.
	capped, err := svc.SelectDue(ctx, now, 1)
	if err != nil {
		t.Fatalf("select due (limit 1): %v", err)
	}
	if len(capped) != 1 || capped[0].ItemID != "cs101-t1-quiz-a" {
		t.Errorf("capped = %v, want only the most overdue item", capped)
	}
}

func TestSelectDue_TiesBrokenByKey(t *testing.T) {
	svc, reviews, _ := newTestService()
	ctx := context.Background()

	due := now.AddDate(0, 0, -1)
	for _, key := range []struct{ subject, item string }{
		{"math201", "math201-t1-quiz-a"},
		{"cs101", "cs101-t3-quiz-a"},
		{"cs101", "cs101-t1-quiz-a"},
	} {
		err := reviews.Upsert(ctx, srs.ReviewItem{
			SubjectID: key.subject, ItemID: key.item, ItemType: srs.ItemQuiz,
			IntervalDays: 1, EaseFactor: 2.5, LastReviewAt: due.AddDate(0, 0, -1), DueAt: due,
		})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := svc.SelectDue(ctx, now, 0)
	if err != nil {
		t.Fatalf("select due: %v", err)
	}
	want := []string{"cs101-t1-quiz-a", "cs101-t3-quiz-a", "math201-t1-quiz-a"}
	for i, w := range want {
		if got[i].ItemID != w {
			t.Errorf("due[%d] = %s, want %s", i, got[i].ItemID, w)
		}
	}
}

func TestSelectDue_Idempotent(t *testing.T) {
	svc, reviews, _ := newTestService()
	ctx := context.Background()

	for i, id := range []string{"cs101-t1-quiz-a", "cs101-t2-quiz-a"} {
		err := reviews.Upsert(ctx, srs.ReviewItem{
			SubjectID: "cs101", ItemID: id, ItemType: srs.ItemQuiz,
			IntervalDays: 1, EaseFactor: 2.5,
			LastReviewAt: now.AddDate(0, 0, -2-i), DueAt: now.AddDate(0, 0, -1-i),
		})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	first, err := svc.SelectDue(ctx, now, 10)
	if err != nil {
		t.Fatalf("first select: %v", err)
	}
	second, err := svc.SelectDue(ctx, now, 10)
	if err != nil {
		t.Fatalf("second select: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ItemID != second[i].ItemID {
			t.Errorf("order differs at %d: %s vs %s", i, first[i].ItemID, second[i].ItemID)
		}
	}
}

func TestSelectDue_EmptyIsNotAnError(t *testing.T) {
	svc, _, _ := newTestService()

	due, err := svc.SelectDue(context.Background(), now, 10)
	if err != nil {
		t.Fatalf("select due: %v", err)
	}
	if len(due) != 0 {
		t.Errorf("len(due) = %d, want 0", len(due))
	}
}

func TestDueCount(t *testing.T) {
	svc, reviews, _ := newTestService()
	ctx := context.Background()

	dues := []time.Time{now.AddDate(0, 0, -3), now, now.AddDate(0, 0, 2)}
	for i, d := range dues {
		err := reviews.Upsert(ctx, srs.ReviewItem{
			SubjectID: "cs101", ItemID: "item-" + string(rune('a'+i)), ItemType: srs.ItemQuiz,
			IntervalDays: 1, EaseFactor: 2.5, LastReviewAt: d.AddDate(0, 0, -1), DueAt: d,
		})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	count, err := svc.DueCount(ctx, now)
	if err != nil {
		t.Fatalf("due count: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestRecordAttempt_ConcurrentSameKeyLosesNoUpdate(t *testing.T) {
	svc, _, attempts := newTestService()
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.RecordAttempt(ctx, quizOutcome("cs101-t1-quiz-a", 100, now.AddDate(0, 0, i)))
			if err != nil {
				t.Errorf("record %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	records, _ := attempts.All(ctx)
	if len(records) != n {
		t.Errorf("attempt log length = %d, want %d", len(records), n)
	}

	item, err := svc.Get(ctx, "cs101", "cs101-t1-quiz-a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	// Every one of the n passing updates must have landed.
	if item.Streak != n {
		t.Errorf("streak = %d, want %d (no lost updates)", item.Streak, n)
	}
}
