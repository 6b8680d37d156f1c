package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhanflow/dhanflow/internal/cli"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all accounts, transactions, and budgets",
		Long: `Wipe all financial data. The login session, registered users, and
preferences like currency and theme are kept.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if _, err := requireUser(st); err != nil {
				return err
			}

			snap := st.Snapshot()
			if !force {
				prompt := fmt.Sprintf("Delete %d account(s), %d transaction(s), and %d budget(s)?",
					len(snap.Accounts), len(snap.Transactions), len(snap.Budgets))
				if !cli.Confirm(os.Stdout, cmd.InOrStdin(), prompt) {
					fmt.Println(cli.InfoStyle.Render("Reset cancelled."))
					return nil
				}
			}

			st.ResetData()
			fmt.Println(cli.FormatSuccess("All financial data deleted."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}
