package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/recap/internal/review"
	"github.com/abhisek/recap/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show attempt history statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		records, err := st.AttemptRepo().All(cmd.Context())
		if err != nil {
			return err
		}
		summary := stats.Compute(records)

		svc := review.NewService(st.ReviewRepo(), st)
		dueCount, err := svc.DueCount(cmd.Context(), time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("Quizzes completed:   %d\n", summary.QuizzesCompleted)
		fmt.Printf("Exercises completed: %d\n", summary.ExercisesCompleted)
		fmt.Printf("Total attempts:      %d\n", summary.TotalAttempts)
		fmt.Printf("Average quiz score:  %d\n", summary.AverageQuizScore)
		fmt.Printf("Due for review:      %d\n", dueCount)
		return nil
	},
}
