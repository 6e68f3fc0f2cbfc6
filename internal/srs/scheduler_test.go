package srs

import (
	"errors"
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func mustUpdate(t *testing.T, prev *ReviewItem, outcome AttemptOutcome, now time.Time) ReviewItem {
	t.Helper()
	next, err := Update(prev, outcome, now)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	return next
}

func outcome(score int) AttemptOutcome {
	return AttemptOutcome{
		SubjectID: "cs101",
		ItemID:    "cs101-t1-quiz-a",
		ItemType:  ItemQuiz,
		Score:     score,
		Timestamp: testNow,
	}
}

func TestUpdate_FirstAttemptPassed(t *testing.T) {
	next := mustUpdate(t, nil, outcome(85), testNow)

	if next.Streak != 1 {
		t.Errorf("Streak = %d, want 1", next.Streak)
	}
	if next.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", next.IntervalDays)
	}
	if next.EaseFactor != 2.5 {
		t.Errorf("EaseFactor = %v, want 2.5", next.EaseFactor)
	}
	if next.LastScore != 85 {
		t.Errorf("LastScore = %d, want 85", next.LastScore)
	}
	if !next.DueAt.Equal(testNow.AddDate(0, 0, 1)) {
		t.Errorf("DueAt = %v, want %v", next.DueAt, testNow.AddDate(0, 0, 1))
	}
}

func TestUpdate_FirstAttemptFailed(t *testing.T) {
	next := mustUpdate(t, nil, outcome(40), testNow)

	if next.Streak != 0 {
		t.Errorf("Streak = %d, want 0", next.Streak)
	}
	if next.EaseFactor != 2.5 {
		t.Errorf("EaseFactor = %v, want 2.5", next.EaseFactor)
	}
	if next.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", next.IntervalDays)
	}
}

func TestUpdate_SecondAttemptPerfectScore(t *testing.T) {
	first := mustUpdate(t, nil, outcome(85), testNow)

	day2 := testNow.AddDate(0, 0, 1)
	second := mustUpdate(t, &first, outcome(100), day2)

	if second.Streak != 2 {
		t.Errorf("Streak = %d, want 2", second.Streak)
	}
	if math.Abs(second.EaseFactor-2.6) > 1e-9 {
		t.Errorf("EaseFactor = %v, want 2.6", second.EaseFactor)
	}
	// round(1 * 2.6) = 3
	if second.IntervalDays != 3 {
		t.Errorf("IntervalDays = %d, want 3", second.IntervalDays)
	}
	if !second.DueAt.Equal(day2.AddDate(0, 0, 3)) {
		t.Errorf("DueAt = %v, want %v", second.DueAt, day2.AddDate(0, 0, 3))
	}
}

func TestUpdate_FailAfterPasses(t *testing.T) {
	first := mustUpdate(t, nil, outcome(85), testNow)
	day2 := testNow.AddDate(0, 0, 1)
	second := mustUpdate(t, &first, outcome(100), day2)

	day5 := day2.AddDate(0, 0, 3)
	third := mustUpdate(t, &second, outcome(50), day5)

	if third.Streak != 0 {
		t.Errorf("Streak = %d, want 0", third.Streak)
	}
	if math.Abs(third.EaseFactor-2.4) > 1e-9 {
		t.Errorf("EaseFactor = %v, want 2.4", third.EaseFactor)
	}
	if third.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", third.IntervalDays)
	}
	if !third.DueAt.Equal(day5.AddDate(0, 0, 1)) {
		t.Errorf("DueAt = %v, want %v", third.DueAt, day5.AddDate(0, 0, 1))
	}
}

func TestUpdate_PassingBoundary(t *testing.T) {
	pass := mustUpdate(t, nil, outcome(70), testNow)
	if pass.Streak != 1 {
		t.Errorf("score 70: Streak = %d, want 1 (70 is a pass)", pass.Streak)
	}

	fail := mustUpdate(t, nil, outcome(69), testNow)
	if fail.Streak != 0 {
		t.Errorf("score 69: Streak = %d, want 0 (69 is a fail)", fail.Streak)
	}
}

func TestUpdate_FailResetsAnyStreak(t *testing.T) {
	prev := &ReviewItem{
		SubjectID:    "cs101",
		ItemID:       "cs101-t1-quiz-a",
		ItemType:     ItemQuiz,
		IntervalDays: 42,
		Streak:       9,
		EaseFactor:   2.8,
		LastScore:    95,
		LastReviewAt: testNow.AddDate(0, 0, -42),
		DueAt:        testNow,
	}

	next := mustUpdate(t, prev, outcome(10), testNow)
	if next.Streak != 0 {
		t.Errorf("Streak = %d, want 0", next.Streak)
	}
	if next.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", next.IntervalDays)
	}
	if math.Abs(next.EaseFactor-2.6) > 1e-9 {
		t.Errorf("EaseFactor = %v, want 2.6", next.EaseFactor)
	}
}

func TestUpdate_EaseFloorHolds(t *testing.T) {
	prev := &ReviewItem{
		SubjectID:    "cs101",
		ItemID:       "cs101-t1-quiz-a",
		ItemType:     ItemQuiz,
		IntervalDays: 1,
		EaseFactor:   1.35,
		LastReviewAt: testNow,
		DueAt:        testNow.AddDate(0, 0, 1),
	}

	// Failure penalty of 0.2 would drop below 1.3 without the floor.
	next := mustUpdate(t, prev, outcome(30), testNow)
	if next.EaseFactor != MinEaseFactor {
		t.Errorf("EaseFactor = %v, want floor %v", next.EaseFactor, MinEaseFactor)
	}

	// A barely-passing score also pulls ease down; still floored.
	prev.EaseFactor = 1.35
	next = mustUpdate(t, prev, outcome(70), testNow)
	if next.EaseFactor != MinEaseFactor {
		t.Errorf("EaseFactor = %v, want floor %v", next.EaseFactor, MinEaseFactor)
	}
}

func TestUpdate_IntervalNeverBelowOneDay(t *testing.T) {
	prev := &ReviewItem{
		SubjectID:    "cs101",
		ItemID:       "cs101-t1-quiz-a",
		ItemType:     ItemQuiz,
		IntervalDays: 1,
		EaseFactor:   MinEaseFactor,
		LastReviewAt: testNow,
		DueAt:        testNow.AddDate(0, 0, 1),
	}

	next := mustUpdate(t, prev, outcome(70), testNow)
	if next.IntervalDays < 1 {
		t.Errorf("IntervalDays = %d, want >= 1", next.IntervalDays)
	}
}

func TestUpdate_IntervalMonotonicUnderRepeatedPerfectScores(t *testing.T) {
	var prev *ReviewItem
	now := testNow
	lastInterval := 0

	for i := 0; i < 10; i++ {
		next := mustUpdate(t, prev, outcome(100), now)
		if next.IntervalDays < lastInterval {
			t.Fatalf("pass %d: interval shrank from %d to %d", i+1, lastInterval, next.IntervalDays)
		}
		lastInterval = next.IntervalDays
		now = next.DueAt
		prev = &next
	}

	if prev.Streak != 10 {
		t.Errorf("Streak = %d, want 10", prev.Streak)
	}
}

func TestUpdate_InvariantsHoldAfterEveryBranch(t *testing.T) {
	scores := []int{0, 35, 69, 70, 71, 85, 100}

	var prev *ReviewItem
	now := testNow
	for round := 0; round < 3; round++ {
		for _, score := range scores {
			next := mustUpdate(t, prev, outcome(score), now)

			if next.IntervalDays < 1 {
				t.Errorf("score %d: IntervalDays = %d, want >= 1", score, next.IntervalDays)
			}
			if next.EaseFactor < MinEaseFactor {
				t.Errorf("score %d: EaseFactor = %v, below floor", score, next.EaseFactor)
			}
			if next.Streak < 0 {
				t.Errorf("score %d: Streak = %d, negative", score, next.Streak)
			}
			if next.LastScore < 0 || next.LastScore > 100 {
				t.Errorf("score %d: LastScore = %d out of range", score, next.LastScore)
			}
			if next.DueAt.Before(next.LastReviewAt) {
				t.Errorf("score %d: DueAt %v before LastReviewAt %v", score, next.DueAt, next.LastReviewAt)
			}
			if want := next.LastReviewAt.AddDate(0, 0, next.IntervalDays); !next.DueAt.Equal(want) {
				t.Errorf("score %d: DueAt = %v, want LastReviewAt + interval = %v", score, next.DueAt, want)
			}

			now = now.AddDate(0, 0, 1)
			prev = &next
		}
	}
}

func TestUpdate_DoesNotMutatePrevious(t *testing.T) {
	prev := &ReviewItem{
		SubjectID:    "cs101",
		ItemID:       "cs101-t1-quiz-a",
		ItemType:     ItemQuiz,
		IntervalDays: 7,
		Streak:       3,
		EaseFactor:   2.5,
		LastScore:    90,
		LastReviewAt: testNow.AddDate(0, 0, -7),
		DueAt:        testNow,
	}
	before := *prev

	_ = mustUpdate(t, prev, outcome(100), testNow)

	if *prev != before {
		t.Error("Update mutated its previous-state argument")
	}
}

func TestUpdate_ScoreOutOfRange(t *testing.T) {
	for _, score := range []int{-1, 101, 150} {
		_, err := Update(nil, outcome(score), testNow)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("score %d: err = %v, want *ValidationError", score, err)
		}
	}
}

func TestUpdate_ItemTypeMismatch(t *testing.T) {
	prev := mustUpdate(t, nil, outcome(85), testNow)

	mismatched := outcome(85)
	mismatched.ItemType = ItemExercise

	_, err := Update(&prev, mismatched, testNow)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
}

func TestUpdate_RejectsUnknownItemType(t *testing.T) {
	bad := outcome(85)
	bad.ItemType = "exam"

	_, err := Update(nil, bad, testNow)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
}

func TestUpdate_RejectsEmptyIdentifiers(t *testing.T) {
	noSubject := outcome(85)
	noSubject.SubjectID = ""
	if _, err := Update(nil, noSubject, testNow); err == nil {
		t.Error("expected error for empty subject ID")
	}

	noItem := outcome(85)
	noItem.ItemID = ""
	if _, err := Update(nil, noItem, testNow); err == nil {
		t.Error("expected error for empty item ID")
	}
}

func TestUpdate_RoundsIntervalHalfUp(t *testing.T) {
	prev := &ReviewItem{
		SubjectID:    "cs101",
		ItemID:       "cs101-t1-quiz-a",
		ItemType:     ItemQuiz,
		IntervalDays: 5,
		Streak:       1,
		EaseFactor:   2.5,
		LastReviewAt: testNow.AddDate(0, 0, -5),
		DueAt:        testNow,
	}

	// Score 85: ease' = 2.5 + (0.1 - 15*0.02) = 2.3; 5 * 2.3 = 11.5 -> 12.
	next := mustUpdate(t, prev, outcome(85), testNow)
	if next.IntervalDays != 12 {
		t.Errorf("IntervalDays = %d, want 12 (11.5 rounds up)", next.IntervalDays)
	}
}
