package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/recap/internal/tui"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Start an interactive review session for due items",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReviewSession(cmd)
	},
}

func init() {
	reviewCmd.Flags().Int("limit", 10, "Maximum queue length for the session")
}

// runReviewSession builds the due queue and hands it to the TUI.
// Also the default action of the bare `recap` command.
func runReviewSession(cmd *cobra.Command) error {
	st, svc, err := openService(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	limit := 10
	if f := cmd.Flags().Lookup("limit"); f != nil {
		limit, _ = cmd.Flags().GetInt("limit")
	}

	queue, err := svc.SelectDue(cmd.Context(), time.Now(), limit)
	if err != nil {
		return err
	}
	if len(queue) == 0 {
		fmt.Println("Nothing due. Come back later.")
		return nil
	}

	return tui.Run(svc, queue)
}
