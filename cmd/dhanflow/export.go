package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhanflow/dhanflow/internal/cli"
	"github.com/dhanflow/dhanflow/internal/export"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions to CSV",
		Long: `Write every transaction to a CSV file with one row per transaction.
The default filename is stamped with today's date.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if _, err := requireUser(st); err != nil {
				return err
			}

			snap := st.Snapshot()
			if len(snap.Transactions) == 0 {
				fmt.Println(cli.FormatWarning("No transactions to export."))
				return nil
			}

			if output == "" {
				output = export.Filename(time.Now())
			}
			if err := export.WriteFile(output, snap.Transactions); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d transaction(s) to %s",
				len(snap.Transactions), output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: dhanflow_export_<date>.csv)")

	return cmd
}
