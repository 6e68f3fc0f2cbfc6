package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/recap/internal/release"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("recap", version)

		if check, _ := cmd.Flags().GetBool("check"); !check {
			return nil
		}

		result, err := release.NewChecker().Check(cmd.Context(), &release.CheckInput{Version: version})
		if err != nil {
			return fmt.Errorf("check latest release: %w", err)
		}
		if result.UpdateAvailable {
			fmt.Printf("Newer version available: %s (%s)\n", result.LatestVersion, result.ReleaseURL)
		} else {
			fmt.Println("Up to date.")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Also check GitHub for a newer release")
}
