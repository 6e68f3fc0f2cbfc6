package srs

import (
	"math"
	"time"
)

// ItemType identifies which kind of learnable unit a review item tracks.
// The type is fixed at creation; an item cannot silently change kind.
type ItemType string

const (
	ItemQuiz     ItemType = "quiz"
	ItemExercise ItemType = "exercise"
)

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	return t == ItemQuiz || t == ItemExercise
}

// ReviewItem holds one learner's scheduling state for one quiz or exercise.
type ReviewItem struct {
	SubjectID    string    `json:"subject_id"`
	ItemID       string    `json:"item_id"`
	ItemType     ItemType  `json:"item_type"`
	IntervalDays int       `json:"interval_days"`
	Streak       int       `json:"streak"`
	EaseFactor   float64   `json:"ease_factor"`
	LastScore    int       `json:"last_score"`
	LastReviewAt time.Time `json:"last_review_at"`
	DueAt        time.Time `json:"due_at"`
}

// Key returns the identity of the item within the review state store.
func (it *ReviewItem) Key() string {
	return it.SubjectID + "/" + it.ItemID
}

// IsDue reports whether the item is due for review (at or past its due date).
func (it *ReviewItem) IsDue(now time.Time) bool {
	return !now.Before(it.DueAt)
}

// OverdueDays returns how many days past due the item is. Returns 0 if not yet due.
func (it *ReviewItem) OverdueDays(now time.Time) float64 {
	if now.Before(it.DueAt) {
		return 0
	}
	return now.Sub(it.DueAt).Hours() / 24.0
}

// DaysUntilReview returns the number of days until the next review, with a
// partial day counting as a full one. Returns 0 if already due.
func (it *ReviewItem) DaysUntilReview(now time.Time) int {
	if it.IsDue(now) {
		return 0
	}
	return int(math.Ceil(it.DueAt.Sub(now).Hours() / 24.0))
}

// AttemptOutcome is one graded quiz attempt or exercise completion,
// produced by the quiz/exercise runner and consumed once by the scheduler.
type AttemptOutcome struct {
	SubjectID string    `json:"subject_id"`
	ItemID    string    `json:"item_id"`
	ItemType  ItemType  `json:"item_type"`
	Score     int       `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}

// Passed reports whether the outcome's score meets the passing threshold.
func (o AttemptOutcome) Passed() bool {
	return o.Score >= QuizPassingScore
}
