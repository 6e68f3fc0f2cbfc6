package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/recap/internal/srs"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testItem(subjectID, itemID string, due time.Time) srs.ReviewItem {
	return srs.ReviewItem{
		SubjectID:    subjectID,
		ItemID:       itemID,
		ItemType:     srs.ItemQuiz,
		IntervalDays: 1,
		Streak:       1,
		EaseFactor:   2.5,
		LastScore:    85,
		LastReviewAt: due.AddDate(0, 0, -1),
		DueAt:        due,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestReviewRepoGetAbsent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewRepo()
	ctx := context.Background()

	item, err := repo.Get(ctx, "cs101", "cs101-t1-quiz-a")
	if err != nil {
		t.Fatalf("get (absent): %v", err)
	}
	if item != nil {
		t.Fatal("expected nil for untracked item, not an error value")
	}
}

func TestReviewRepoUpsertCreatesThenUpdates(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewRepo()
	ctx := context.Background()

	due := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)
	item := testItem("cs101", "cs101-t1-quiz-a", due)

	if err := repo.Upsert(ctx, item); err != nil {
		t.Fatalf("upsert (create): %v", err)
	}

	got, err := repo.Get(ctx, "cs101", "cs101-t1-quiz-a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected stored item")
	}
	if got.Streak != 1 || got.IntervalDays != 1 || got.EaseFactor != 2.5 {
		t.Errorf("stored item = %+v, want streak 1, interval 1, ease 2.5", got)
	}

	// Update in place; still a single row for the key.
	item.Streak = 2
	item.IntervalDays = 3
	item.DueAt = due.AddDate(0, 0, 3)
	if err := repo.Upsert(ctx, item); err != nil {
		t.Fatalf("upsert (update): %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 item after re-upsert, got %d", len(all))
	}
	if all[0].Streak != 2 || all[0].IntervalDays != 3 {
		t.Errorf("updated item = %+v, want streak 2, interval 3", all[0])
	}
}

func TestReviewRepoAllReturnsEveryItem(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewRepo()
	ctx := context.Background()

	due := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)
	for _, id := range []string{"cs101-t1-quiz-a", "cs101-t2-quiz-a", "cs101-t1-ex01"} {
		if err := repo.Upsert(ctx, testItem("cs101", id, due)); err != nil {
			t.Fatalf("upsert %s: %v", id, err)
		}
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len(all) = %d, want 3", len(all))
	}
}

func TestAttemptRepoAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	scores := []int{55, 80, 100}
	for i, score := range scores {
		err := repo.Append(ctx, "attempt-"+string(rune('a'+i)), srs.AttemptOutcome{
			SubjectID: "cs101",
			ItemID:    "cs101-t1-quiz-a",
			ItemType:  srs.ItemQuiz,
			Score:     score,
			Timestamp: ts.AddDate(0, 0, i),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.ForItem(ctx, "cs101", "cs101-t1-quiz-a")
	if err != nil {
		t.Fatalf("for item: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}

	// Sequence order, pass flags derived from the threshold.
	for i := 1; i < len(records); i++ {
		if records[i].Sequence <= records[i-1].Sequence {
			t.Errorf("records out of sequence order: %d then %d", records[i-1].Sequence, records[i].Sequence)
		}
	}
	if records[0].Passed {
		t.Error("score 55 should not be marked passed")
	}
	if !records[1].Passed || !records[2].Passed {
		t.Error("scores 80 and 100 should be marked passed")
	}
}

func TestAttemptRepoAllAcrossItems(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []string{"cs101-t1-quiz-a", "cs101-t1-ex01"}
	for i, id := range items {
		err := repo.Append(ctx, "attempt-"+string(rune('a'+i)), srs.AttemptOutcome{
			SubjectID: "cs101",
			ItemID:    id,
			ItemType:  srs.ItemQuiz,
			Score:     90,
			Timestamp: ts,
		})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("len(all) = %d, want 2", len(all))
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestRecordAttemptCommitsBothWrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	due := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)
	item := testItem("cs101", "cs101-t1-quiz-a", due)
	outcome := srs.AttemptOutcome{
		SubjectID: "cs101",
		ItemID:    "cs101-t1-quiz-a",
		ItemType:  srs.ItemQuiz,
		Score:     85,
		Timestamp: due.AddDate(0, 0, -1),
	}

	if err := s.RecordAttempt(ctx, item, "attempt-a", outcome); err != nil {
		t.Fatalf("record attempt: %v", err)
	}

	got, err := s.ReviewRepo().Get(ctx, "cs101", "cs101-t1-quiz-a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Streak != 1 {
		t.Errorf("stored item = %+v, want streak 1", got)
	}

	records, err := s.AttemptRepo().All(ctx)
	if err != nil {
		t.Fatalf("all attempts: %v", err)
	}
	if len(records) != 1 || records[0].AttemptID != "attempt-a" {
		t.Errorf("attempt log = %+v, want one record attempt-a", records)
	}
}

func TestRecordAttemptRollsBackOnFailedAppend(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	due := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)
	first := testItem("cs101", "cs101-t1-quiz-a", due)
	outcome := srs.AttemptOutcome{
		SubjectID: "cs101",
		ItemID:    "cs101-t1-quiz-a",
		ItemType:  srs.ItemQuiz,
		Score:     85,
		Timestamp: due.AddDate(0, 0, -1),
	}
	if err := s.RecordAttempt(ctx, first, "attempt-a", outcome); err != nil {
		t.Fatalf("record attempt: %v", err)
	}

	// Reusing the attempt ID violates the unique constraint on the event
	// row, failing the append after the schedule row was already written
	// inside the transaction.
	second := first
	second.Streak = 2
	second.IntervalDays = 3
	second.DueAt = due.AddDate(0, 0, 3)
	outcome.Score = 100
	outcome.Timestamp = due

	err := s.RecordAttempt(ctx, second, "attempt-a", outcome)
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *PersistenceError", err)
	}

	// Both writes must have rolled back together.
	got, err := s.ReviewRepo().Get(ctx, "cs101", "cs101-t1-quiz-a")
	if err != nil {
		t.Fatalf("get after rollback: %v", err)
	}
	if got.Streak != 1 || got.IntervalDays != 1 {
		t.Errorf("item after rollback = %+v, want streak 1 interval 1", got)
	}

	records, err := s.AttemptRepo().All(ctx)
	if err != nil {
		t.Fatalf("all attempts: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("attempt log length = %d, want 1", len(records))
	}
}

func TestDeleteAllWipesState(t *testing.T) {
	s := openTestStore(t)
	reviews := s.ReviewRepo()
	attempts := s.AttemptRepo()
	ctx := context.Background()

	due := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)
	if err := reviews.Upsert(ctx, testItem("cs101", "cs101-t1-quiz-a", due)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	err := attempts.Append(ctx, "attempt-a", srs.AttemptOutcome{
		SubjectID: "cs101",
		ItemID:    "cs101-t1-quiz-a",
		ItemType:  srs.ItemQuiz,
		Score:     85,
		Timestamp: due,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := reviews.DeleteAll(ctx); err != nil {
		t.Fatalf("delete reviews: %v", err)
	}
	if err := attempts.DeleteAll(ctx); err != nil {
		t.Fatalf("delete attempts: %v", err)
	}

	items, err := reviews.All(ctx)
	if err != nil {
		t.Fatalf("all reviews: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("review items after reset = %d, want 0", len(items))
	}

	records, err := attempts.All(ctx)
	if err != nil {
		t.Fatalf("all attempts: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("attempts after reset = %d, want 0", len(records))
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"review_items", "attempt_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
