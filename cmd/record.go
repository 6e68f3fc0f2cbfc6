package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/recap/internal/srs"
)

var recordCmd = &cobra.Command{
	Use:   "record <subject-id> <item-id> <quiz|exercise> <score>",
	Short: "Record a graded attempt and reschedule the item",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("score must be a number, got %q", args[3])
		}

		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		item, err := svc.RecordAttempt(cmd.Context(), srs.AttemptOutcome{
			SubjectID: args[0],
			ItemID:    args[1],
			ItemType:  srs.ItemType(args[2]),
			Score:     score,
			Timestamp: time.Now(),
		})
		if err != nil {
			var verr *srs.ValidationError
			if errors.As(err, &verr) {
				return fmt.Errorf("attempt rejected: %w", verr)
			}
			return err
		}

		printSchedule(item)
		return nil
	},
}

// printSchedule reports the item's updated schedule after an attempt.
func printSchedule(item *srs.ReviewItem) {
	verdict := "failed"
	if item.LastScore >= srs.QuizPassingScore {
		verdict = "passed"
	}
	fmt.Printf("%s %s with %d\n", item.ItemID, verdict, item.LastScore)
	fmt.Printf("streak %d, ease %.2f, next review in %dd (%s)\n",
		item.Streak, item.EaseFactor, item.IntervalDays, item.DueAt.Format("Mon Jan 2"))
}
