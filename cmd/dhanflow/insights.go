package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dhanflow/dhanflow/internal/cli"
	"github.com/dhanflow/dhanflow/internal/model"
	"github.com/dhanflow/dhanflow/internal/report"
	"github.com/dhanflow/dhanflow/internal/store"
)

const barWidth = 30

func insightsCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Spending breakdowns and trends",
		Long: `Show where money went: expense share by category, daily spending over
the last week, and income against expenses over the last six months.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if _, err := requireUser(st); err != nil {
				return err
			}

			snap := st.Snapshot()
			now := time.Now()

			fmt.Println(cli.FormatTitle(cli.ChartIcon + " Insights"))
			fmt.Println()

			printDistribution(st, snap.Transactions, month)
			fmt.Println()
			printDailySeries(st, report.DailyExpenseSeries(snap.Transactions, now))
			fmt.Println()
			printMonthlySeries(st, report.MonthlySeries(snap.Transactions, now))
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "restrict category breakdown to YYYY-MM (default: all time)")

	return cmd
}

func printDistribution(st *store.Store, txs []model.Transaction, month string) {
	label := "all time"
	if month != "" {
		label = month
	}
	fmt.Println(cli.BoldStyle.Render("Expenses by category (" + label + ")"))

	dist := report.CategoryDistribution(txs, month)
	if len(dist) == 0 {
		fmt.Println(cli.SubtleStyle.Render("  no expenses recorded"))
		return
	}

	type slice struct {
		category model.Category
		amount   decimal.Decimal
	}
	slices := make([]slice, 0, len(dist))
	total := decimal.Zero
	for cat, amount := range dist {
		slices = append(slices, slice{cat, amount})
		total = total.Add(amount)
	}
	sort.Slice(slices, func(i, j int) bool {
		if !slices[i].amount.Equal(slices[j].amount) {
			return slices[i].amount.GreaterThan(slices[j].amount)
		}
		return slices[i].category < slices[j].category
	})

	for _, s := range slices {
		share, _ := s.amount.Div(total).Float64()
		fmt.Printf("  %-14s %s %s %s\n",
			s.category,
			bar(share),
			money(st, s.amount),
			cli.SubtleStyle.Render(fmt.Sprintf("(%.0f%%)", share*100)))
	}
}

func printDailySeries(st *store.Store, series []report.DayPoint) {
	fmt.Println(cli.BoldStyle.Render("Daily expenses, last 7 days"))

	max := decimal.Zero
	for _, p := range series {
		if p.Amount.GreaterThan(max) {
			max = p.Amount
		}
	}

	for _, p := range series {
		share := 0.0
		if max.IsPositive() {
			share, _ = p.Amount.Div(max).Float64()
		}
		fmt.Printf("  %s %s %s\n", p.Date, bar(share), money(st, p.Amount))
	}
}

func printMonthlySeries(st *store.Store, series []report.MonthPoint) {
	fmt.Println(cli.BoldStyle.Render("Income vs expenses, last 6 months"))

	for _, p := range series {
		fmt.Printf("  %s  %s  %s\n",
			p.Month,
			cli.IncomeStyle.Render("+"+money(st, p.Income)),
			cli.ExpenseStyle.Render("-"+money(st, p.Expense)))
	}

	savings := report.SavingsOverSeries(series)
	line := "Net savings over the period: " + money(st, savings)
	if savings.IsNegative() {
		fmt.Println(cli.FormatWarning(line))
	} else {
		fmt.Println(cli.FormatSuccess(line))
	}
}

func bar(share float64) string {
	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}
	filled := int(share * barWidth)
	return cli.InfoStyle.Render(strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled))
}
