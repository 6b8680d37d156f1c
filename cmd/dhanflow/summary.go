package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhanflow/dhanflow/internal/cli"
	"github.com/dhanflow/dhanflow/internal/report"
)

func summaryCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show balances and the month's totals",
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			user, err := requireUser(st)
			if err != nil {
				return err
			}

			snap := st.Snapshot()
			ms := report.SummarizeMonth(snap.Transactions, month, time.Now())
			total := report.TotalBalance(snap.Accounts, snap.Transactions)

			fmt.Println(cli.FormatTitle(cli.FlowIcon + " DhanFlow " + ms.Month))
			fmt.Println(cli.SubtleStyle.Render("Logged in as " + user.Name))
			fmt.Println()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Total balance\t%s\n", cli.BoldStyle.Render(money(st, total)))
			fmt.Fprintf(w, "Income\t%s\n", cli.IncomeStyle.Render("+"+money(st, ms.Income)))
			fmt.Fprintf(w, "Expenses\t%s\n", cli.ExpenseStyle.Render("-"+money(st, ms.Expense)))
			savings := money(st, ms.Savings)
			if ms.Savings.IsNegative() {
				savings = cli.ExpenseStyle.Render(savings)
			} else {
				savings = cli.IncomeStyle.Render(savings)
			}
			fmt.Fprintf(w, "Savings\t%s\n", savings)
			w.Flush()

			exceeded := 0
			for _, p := range report.BudgetReport(snap.Budgets, snap.Transactions) {
				if p.Budget.Month == ms.Month && p.Tier == report.TierExceeded {
					exceeded++
				}
			}
			if exceeded > 0 {
				fmt.Println()
				fmt.Println(cli.FormatWarning(fmt.Sprintf("%d budget(s) exceeded this month; see 'dhanflow budgets list'", exceeded)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "month YYYY-MM (default: current)")

	return cmd
}
