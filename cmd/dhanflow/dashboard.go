package main

import (
	"github.com/spf13/cobra"

	"github.com/dhanflow/dhanflow/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Open a full-screen dashboard with balances, budget progress, and
spending trends. Navigate tabs with Tab, quit with q.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			user, err := requireUser(st)
			if err != nil {
				return err
			}

			return tui.Run(cmd.Context(), tui.Config{
				Snapshot: st.Snapshot(),
				UserName: user.Name,
			})
		},
	}
}
