package report

import (
	"github.com/shopspring/decimal"

	"github.com/dhanflow/dhanflow/internal/model"
)

// AlertTier classifies how far a budget's spending has progressed.
type AlertTier int

const (
	// TierNominal means spending is below the warning threshold.
	TierNominal AlertTier = iota
	// TierWarning means spending reached 80% of the limit.
	TierWarning
	// TierExceeded means spending reached or passed the limit.
	TierExceeded
)

// Fixed policy thresholds, expressed in percent. Not configurable.
const (
	warningPercent  = 80.0
	exceededPercent = 100.0
)

func (t AlertTier) String() string {
	switch t {
	case TierWarning:
		return "warning"
	case TierExceeded:
		return "exceeded"
	default:
		return "nominal"
	}
}

// BudgetProgress pairs a budget with its derived spending state.
type BudgetProgress struct {
	Budget  model.Budget
	Spent   decimal.Decimal
	Percent float64
	Tier    AlertTier
}

// ProgressFor derives a single budget's progress: spent is the sum of
// expense amounts in the budget's category and month, and percent is
// spent/limit*100. A zero limit reports 0%, never a division by zero.
func ProgressFor(b model.Budget, txs []model.Transaction) BudgetProgress {
	spent := decimal.Zero
	for _, t := range txs {
		if t.Type != model.TypeExpense || t.Category != b.Category || t.Month() != b.Month {
			continue
		}
		spent = spent.Add(t.Amount)
	}

	percent := 0.0
	if b.Limit.IsPositive() {
		percent = spent.Div(b.Limit).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	return BudgetProgress{
		Budget:  b,
		Spent:   spent,
		Percent: percent,
		Tier:    tierFor(percent),
	}
}

// BudgetReport derives progress for every budget, preserving order.
func BudgetReport(budgets []model.Budget, txs []model.Transaction) []BudgetProgress {
	progress := make([]BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		progress = append(progress, ProgressFor(b, txs))
	}
	return progress
}

func tierFor(percent float64) AlertTier {
	switch {
	case percent >= exceededPercent:
		return TierExceeded
	case percent >= warningPercent:
		return TierWarning
	default:
		return TierNominal
	}
}
