// Package report computes derived aggregates from a state snapshot.
//
// Every function here is pure: identical input yields identical output and
// nothing is mutated, so callers are free to memoize results. An empty
// transaction list yields all-zero aggregates, never an error.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dhanflow/dhanflow/internal/model"
)

// AccountBalance derives an account's balance: the starting balance plus
// matching income minus matching expenses. Balances are never stored.
func AccountBalance(acc model.Account, txs []model.Transaction) decimal.Decimal {
	balance := acc.StartingBalance
	for _, t := range txs {
		if t.AccountID != acc.ID {
			continue
		}
		switch t.Type {
		case model.TypeIncome:
			balance = balance.Add(t.Amount)
		case model.TypeExpense:
			balance = balance.Sub(t.Amount)
		}
	}
	return balance
}

// TotalBalance is the net worth: the sum of every account's balance.
func TotalBalance(accounts []model.Account, txs []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, acc := range accounts {
		total = total.Add(AccountBalance(acc, txs))
	}
	return total
}

// MonthSummary holds the income, expense, and savings totals for one month.
type MonthSummary struct {
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Savings decimal.Decimal
}

// SummarizeMonth totals transactions whose date falls in the given YYYY-MM
// month. An empty month selects the current calendar month.
func SummarizeMonth(txs []model.Transaction, month string, now time.Time) MonthSummary {
	if month == "" {
		month = now.Format(model.MonthLayout)
	}

	income, expense := decimal.Zero, decimal.Zero
	for _, t := range txs {
		if t.Month() != month {
			continue
		}
		switch t.Type {
		case model.TypeIncome:
			income = income.Add(t.Amount)
		case model.TypeExpense:
			expense = expense.Add(t.Amount)
		}
	}

	return MonthSummary{
		Month:   month,
		Income:  income,
		Expense: expense,
		Savings: income.Sub(expense),
	}
}

// CategoryDistribution groups expense transactions by category, summing
// amounts per category. An empty month selects all time; otherwise only
// transactions dated in that YYYY-MM month count. Categories with no
// matching transactions are omitted rather than reported as zero.
func CategoryDistribution(txs []model.Transaction, month string) map[model.Category]decimal.Decimal {
	dist := make(map[model.Category]decimal.Decimal)
	for _, t := range txs {
		if t.Type != model.TypeExpense {
			continue
		}
		if month != "" && t.Month() != month {
			continue
		}
		dist[t.Category] = dist[t.Category].Add(t.Amount)
	}
	return dist
}
