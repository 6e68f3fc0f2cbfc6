package stats

import (
	"testing"
	"time"

	"github.com/abhisek/recap/internal/store"
)

func record(subjectID, itemID, itemType string, score int) store.AttemptRecord {
	return store.AttemptRecord{
		Timestamp: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		SubjectID: subjectID,
		ItemID:    itemID,
		ItemType:  itemType,
		Score:     score,
		Passed:    score >= 70,
	}
}

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil)
	if s != (Summary{}) {
		t.Errorf("Compute(nil) = %+v, want zero summary", s)
	}
}

func TestCompute_QuizCompletionUsesBestScore(t *testing.T) {
	records := []store.AttemptRecord{
		record("cs101", "cs101-t1-quiz-a", "quiz", 40),
		record("cs101", "cs101-t1-quiz-a", "quiz", 90), // best 90: completed
		record("cs101", "cs101-t2-quiz-a", "quiz", 65), // best 65: not completed
	}

	s := Compute(records)
	if s.QuizzesCompleted != 1 {
		t.Errorf("QuizzesCompleted = %d, want 1", s.QuizzesCompleted)
	}
	if s.TotalAttempts != 3 {
		t.Errorf("TotalAttempts = %d, want 3", s.TotalAttempts)
	}
}

func TestCompute_QuizCompletionBoundary(t *testing.T) {
	records := []store.AttemptRecord{
		record("cs101", "cs101-t1-quiz-a", "quiz", 70),
		record("cs101", "cs101-t2-quiz-a", "quiz", 69),
	}

	s := Compute(records)
	if s.QuizzesCompleted != 1 {
		t.Errorf("QuizzesCompleted = %d, want 1 (70 passes, 69 fails)", s.QuizzesCompleted)
	}
}

func TestCompute_ExercisesCountedOncePerItem(t *testing.T) {
	records := []store.AttemptRecord{
		record("cs101", "cs101-t1-ex01", "exercise", 30),
		record("cs101", "cs101-t1-ex01", "exercise", 80), // passed eventually
		record("cs101", "cs101-t1-ex02", "exercise", 95),
		record("cs101", "cs101-t1-ex03", "exercise", 10), // never passed
	}

	s := Compute(records)
	if s.ExercisesCompleted != 2 {
		t.Errorf("ExercisesCompleted = %d, want 2", s.ExercisesCompleted)
	}
}

func TestCompute_AverageQuizScoreRounded(t *testing.T) {
	records := []store.AttemptRecord{
		record("cs101", "cs101-t1-quiz-a", "quiz", 70),
		record("cs101", "cs101-t1-quiz-a", "quiz", 75),
		// Exercises do not contribute to the quiz average.
		record("cs101", "cs101-t1-ex01", "exercise", 0),
	}

	s := Compute(records)
	// (70 + 75) / 2 = 72.5 -> 73
	if s.AverageQuizScore != 73 {
		t.Errorf("AverageQuizScore = %d, want 73", s.AverageQuizScore)
	}
}
