package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every tracked item and its schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		items, err := svc.AllItems(cmd.Context())
		if err != nil {
			return err
		}

		if len(items) == 0 {
			fmt.Println("No items tracked yet. Record an attempt first.")
			return nil
		}

		sort.Slice(items, func(i, j int) bool {
			if items[i].SubjectID != items[j].SubjectID {
				return items[i].SubjectID < items[j].SubjectID
			}
			return items[i].ItemID < items[j].ItemID
		})

		printItems(items, time.Now())
		return nil
	},
}
