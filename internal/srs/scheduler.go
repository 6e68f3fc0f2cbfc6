package srs

import (
	"fmt"
	"math"
	"time"
)

// QuizPassingScore is the minimum score counted as a passing review.
// Shared with the aggregate statistics so that "quiz completed" and
// "review passed" use one threshold.
const QuizPassingScore = 70

// Scheduling constants. The ease factor is the interval growth multiplier:
// it rises on strong recalls, drops on failures, and never goes below
// MinEaseFactor so intervals can't collapse.
const (
	InitialEaseFactor   = 2.5
	MinEaseFactor       = 1.3
	InitialIntervalDays = 1

	perfectEaseBonus = 0.1
	scoreEasePenalty = 0.02
	failEasePenalty  = 0.2
)

// Update computes the next review state for an item given the outcome of an
// attempt. It is pure: prev and outcome are not mutated, and the caller must
// serialize concurrent updates for the same (subject, item) key.
//
// The first graded attempt creates the state (interval 1 day, ease 2.5).
// A passing attempt extends the streak and grows the interval by the adjusted
// ease factor; a failing attempt resets the streak and forces a 1-day
// re-check while penalizing the ease factor.
func Update(prev *ReviewItem, outcome AttemptOutcome, now time.Time) (ReviewItem, error) {
	if err := validate(prev, outcome); err != nil {
		return ReviewItem{}, err
	}

	next := ReviewItem{
		SubjectID: outcome.SubjectID,
		ItemID:    outcome.ItemID,
		ItemType:  outcome.ItemType,
		LastScore: outcome.Score,
	}

	switch {
	case prev == nil:
		next.EaseFactor = InitialEaseFactor
		next.IntervalDays = InitialIntervalDays
		if outcome.Passed() {
			next.Streak = 1
		}

	case outcome.Passed():
		next.Streak = prev.Streak + 1
		next.EaseFactor = clampEase(prev.EaseFactor + easeAdjustment(outcome.Score))
		next.IntervalDays = growInterval(prev.IntervalDays, next.EaseFactor)

	default:
		next.Streak = 0
		next.EaseFactor = clampEase(prev.EaseFactor - failEasePenalty)
		next.IntervalDays = InitialIntervalDays
	}

	next.LastReviewAt = now
	next.DueAt = now.AddDate(0, 0, next.IntervalDays)
	return next, nil
}

// validate rejects out-of-range or inconsistent outcomes before they can
// reach the scheduling arithmetic.
func validate(prev *ReviewItem, outcome AttemptOutcome) error {
	if outcome.SubjectID == "" {
		return &ValidationError{Field: "subjectId", Reason: "must not be empty"}
	}
	if outcome.ItemID == "" {
		return &ValidationError{Field: "itemId", Reason: "must not be empty"}
	}
	if !outcome.ItemType.Valid() {
		return &ValidationError{Field: "itemType", Reason: fmt.Sprintf("unknown type %q", outcome.ItemType)}
	}
	if outcome.Score < 0 || outcome.Score > 100 {
		return &ValidationError{Field: "score", Reason: fmt.Sprintf("%d out of range [0,100]", outcome.Score)}
	}
	if prev != nil && prev.ItemType != outcome.ItemType {
		return &ValidationError{
			Field:  "itemType",
			Reason: fmt.Sprintf("%q does not match existing %q", outcome.ItemType, prev.ItemType),
		}
	}
	return nil
}

// easeAdjustment maps a passing score to an ease delta: +0.1 at 100,
// increasingly negative as the score drops toward the passing threshold.
func easeAdjustment(score int) float64 {
	return perfectEaseBonus - float64(100-score)*scoreEasePenalty
}

// clampEase enforces the ease floor after every adjustment.
func clampEase(ease float64) float64 {
	if ease < MinEaseFactor {
		return MinEaseFactor
	}
	return ease
}

// growInterval scales the interval by the ease factor, rounding half up
// and never producing less than one day.
func growInterval(days int, ease float64) int {
	grown := int(math.Round(float64(days) * ease))
	if grown < 1 {
		return 1
	}
	return grown
}
