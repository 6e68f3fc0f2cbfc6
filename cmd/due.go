package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/recap/internal/format"
	"github.com/abhisek/recap/internal/srs"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show items due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		if all, _ := cmd.Flags().GetBool("all"); all {
			limit = 0
		}

		now := time.Now()
		due, err := svc.SelectDue(cmd.Context(), now, limit)
		if err != nil {
			return err
		}

		if len(due) == 0 {
			fmt.Println("Nothing due. Come back later.")
			return nil
		}

		printItems(due, now)
		return nil
	},
}

func init() {
	dueCmd.Flags().Int("limit", 10, "Maximum number of items to show")
	dueCmd.Flags().Bool("all", false, "Show every due item, ignoring --limit")
}

// printItems renders review items as an aligned table.
func printItems(items []srs.ReviewItem, now time.Time) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tTITLE\tSTREAK\tINTERVAL\tLAST\tDUE")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t%d\t%dd\t%d\t%s\n",
			it.ItemID,
			format.Title(it),
			it.Streak,
			it.IntervalDays,
			it.LastScore,
			dueLabel(&it, now),
		)
	}
	_ = w.Flush()
}

// dueLabel renders how far an item is from its due date.
func dueLabel(it *srs.ReviewItem, now time.Time) string {
	if it.IsDue(now) {
		if over := int(it.OverdueDays(now)); over >= 1 {
			return fmt.Sprintf("%dd overdue", over)
		}
		return "today"
	}
	return fmt.Sprintf("in %dd", it.DaysUntilReview(now))
}
