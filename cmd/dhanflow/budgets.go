package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhanflow/dhanflow/internal/cli"
	"github.com/dhanflow/dhanflow/internal/model"
	"github.com/dhanflow/dhanflow/internal/report"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage monthly category budgets",
		Long: `Set spending limits per category per month and track how much of
each limit the month's expenses have consumed.`,
	}

	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(deleteBudgetCmd())

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show budget progress",
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if _, err := requireUser(st); err != nil {
				return err
			}

			snap := st.Snapshot()
			budgets := snap.Budgets
			if month != "" {
				filtered := budgets[:0:0]
				for _, b := range budgets {
					if b.Month == month {
						filtered = append(filtered, b)
					}
				}
				budgets = filtered
			}

			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets set. Try 'dhanflow budgets set'."))
				return nil
			}

			progress := report.BudgetReport(budgets, snap.Transactions)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Month"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Limit"),
				cli.HeaderStyle.Render("Spent"),
				cli.HeaderStyle.Render("Used"),
				cli.HeaderStyle.Render("Status"))

			for _, p := range progress {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f%%\t%s\n",
					p.Budget.Month,
					p.Budget.Category,
					money(st, p.Budget.Limit),
					money(st, p.Spent),
					p.Percent,
					renderTier(p.Tier))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "only budgets for YYYY-MM")

	return cmd
}

func setBudgetCmd() *cobra.Command {
	var (
		limitStr string
		month    string
	)

	cmd := &cobra.Command{
		Use:   "set <category>",
		Short: "Set a budget for a category",
		Long: `Set a monthly spending limit for an expense category. Income Source
cannot be budgeted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if _, err := requireUser(st); err != nil {
				return err
			}

			cat, err := model.ParseCategory(args[0])
			if err != nil {
				return err
			}
			limit, err := parseAmount(limitStr)
			if err != nil {
				return err
			}
			if month == "" {
				month = time.Now().Format(model.MonthLayout)
			}

			b, err := st.AddBudget(model.Budget{
				Category: cat,
				Limit:    limit,
				Month:    month,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget for %s in %s set to %s",
				b.Category, b.Month, money(st, b.Limit))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&limitStr, "limit", "l", "", "spending limit (positive)")
	cmd.Flags().StringVarP(&month, "month", "m", "", "month YYYY-MM (default: current)")
	_ = cmd.MarkFlagRequired("limit")

	return cmd
}

func deleteBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if _, err := requireUser(st); err != nil {
				return err
			}

			snap := st.Snapshot()
			var target model.Budget
			var found bool
			for _, b := range snap.Budgets {
				if b.ID == args[0] || strings.HasPrefix(b.ID, args[0]) {
					target, found = b, true
					break
				}
			}
			if !found {
				fmt.Println(cli.FormatWarning("No budget matches " + args[0] + "; nothing to delete."))
				return nil
			}

			if err := st.DeleteBudget(target.ID); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted %s budget for %s",
				target.Category, target.Month)))
			return nil
		},
	}
}

func renderTier(t report.AlertTier) string {
	switch t {
	case report.TierExceeded:
		return cli.ErrorStyle.Render("EXCEEDED")
	case report.TierWarning:
		return cli.WarningStyle.Render("warning")
	default:
		return cli.SuccessStyle.Render("on track")
	}
}
