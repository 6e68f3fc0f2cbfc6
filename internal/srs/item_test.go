package srs

import (
	"testing"
	"time"
)

func TestIsDue(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	item := &ReviewItem{DueAt: now}

	if !item.IsDue(now) {
		t.Error("item due exactly now should be due")
	}
	if !item.IsDue(now.Add(time.Hour)) {
		t.Error("item past due should be due")
	}
	if item.IsDue(now.Add(-time.Hour)) {
		t.Error("item not yet due should not be due")
	}
}

func TestOverdueDays(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	item := &ReviewItem{DueAt: now.Add(-48 * time.Hour)}

	if got := item.OverdueDays(now); got != 2 {
		t.Errorf("OverdueDays = %v, want 2", got)
	}

	future := &ReviewItem{DueAt: now.Add(24 * time.Hour)}
	if got := future.OverdueDays(now); got != 0 {
		t.Errorf("OverdueDays (future) = %v, want 0", got)
	}
}

func TestDaysUntilReview(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	due := &ReviewItem{DueAt: now.Add(-time.Hour)}
	if got := due.DaysUntilReview(now); got != 0 {
		t.Errorf("DaysUntilReview (due) = %d, want 0", got)
	}

	soon := &ReviewItem{DueAt: now.Add(time.Hour)}
	if got := soon.DaysUntilReview(now); got != 1 {
		t.Errorf("DaysUntilReview (partial day) = %d, want 1", got)
	}

	// A whole number of days must not round up to an extra day.
	tomorrow := &ReviewItem{DueAt: now.Add(24 * time.Hour)}
	if got := tomorrow.DaysUntilReview(now); got != 1 {
		t.Errorf("DaysUntilReview (exactly 24h) = %d, want 1", got)
	}

	upcoming := &ReviewItem{DueAt: now.Add(60 * time.Hour)}
	if got := upcoming.DaysUntilReview(now); got != 3 {
		t.Errorf("DaysUntilReview = %d, want 3", got)
	}
}

func TestItemTypeValid(t *testing.T) {
	if !ItemQuiz.Valid() || !ItemExercise.Valid() {
		t.Error("quiz and exercise should be valid item types")
	}
	if ItemType("exam").Valid() {
		t.Error("exam should not be a valid item type")
	}
	if ItemType("").Valid() {
		t.Error("empty item type should not be valid")
	}
}
