package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a spending ceiling for one category within one calendar month.
// Nothing prevents two budgets for the same (category, month) pair; the
// model is deliberately permissive and each budget tracks progress alone.
type Budget struct {
	ID       string          `json:"id"`
	Category Category        `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Month    string          `json:"month"`
}

// Validate checks that the budget is well formed.
func (b *Budget) Validate() error {
	cat, err := ParseCategory(string(b.Category))
	if err != nil {
		return err
	}
	if cat == CategoryIncomeSource {
		return fmt.Errorf("budgets cannot target the %s category", CategoryIncomeSource)
	}
	if b.Limit.IsNegative() {
		return fmt.Errorf("budget limit cannot be negative, got %s", b.Limit)
	}
	if _, err := time.Parse(MonthLayout, b.Month); err != nil {
		return fmt.Errorf("invalid budget month %q (want YYYY-MM)", b.Month)
	}
	return nil
}
