// Package stats reduces the attempt log into the dashboard numbers:
// completed counts, average quiz score, and per-item bests. Completion
// uses the same passing threshold as the review scheduler.
package stats

import (
	"math"

	"github.com/abhisek/recap/internal/srs"
	"github.com/abhisek/recap/internal/store"
)

// Summary aggregates a learner's attempt history.
type Summary struct {
	QuizzesCompleted   int // quizzes whose best score meets the passing threshold
	ExercisesCompleted int // exercises with at least one passing attempt
	TotalAttempts      int
	AverageQuizScore   int // mean over every quiz attempt, rounded; 0 when none
}

// Compute reduces attempt records into a Summary.
func Compute(records []store.AttemptRecord) Summary {
	type key struct{ subjectID, itemID string }

	bestQuiz := make(map[key]int)
	exercisePassed := make(map[key]bool)

	quizScoreSum := 0
	quizAttempts := 0

	for _, r := range records {
		k := key{r.SubjectID, r.ItemID}
		switch srs.ItemType(r.ItemType) {
		case srs.ItemQuiz:
			if best, ok := bestQuiz[k]; !ok || r.Score > best {
				bestQuiz[k] = r.Score
			}
			quizScoreSum += r.Score
			quizAttempts++
		case srs.ItemExercise:
			if r.Passed {
				exercisePassed[k] = true
			} else if _, ok := exercisePassed[k]; !ok {
				exercisePassed[k] = false
			}
		}
	}

	s := Summary{TotalAttempts: len(records)}

	for _, best := range bestQuiz {
		if best >= srs.QuizPassingScore {
			s.QuizzesCompleted++
		}
	}
	for _, passed := range exercisePassed {
		if passed {
			s.ExercisesCompleted++
		}
	}
	if quizAttempts > 0 {
		s.AverageQuizScore = int(math.Round(float64(quizScoreSum) / float64(quizAttempts)))
	}

	return s
}
