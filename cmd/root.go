package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/recap/internal/review"
	"github.com/abhisek/recap/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "recap",
	Short: "Spaced-repetition review scheduler",
	Long: "Recap tracks every quiz and exercise you complete and tells you when\n" +
		"to review each one again, growing the gap after passes and resetting it\n" +
		"after failures.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReviewSession(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides RECAP_DB env var)")

	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then RECAP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the store at the resolved database path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// openService opens the store and wires the review service over it.
// Callers must Close the returned store.
func openService(cmd *cobra.Command) (*store.Store, *review.Service, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}
	return st, review.NewService(st.ReviewRepo(), st), nil
}
