package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dhanflow/dhanflow/internal/model"
)

// DailySeriesLen is the number of points in the rolling daily series.
const DailySeriesLen = 7

// MonthlySeriesLen is the number of points in the rolling monthly series.
const MonthlySeriesLen = 6

// DayPoint is one day's expense total.
type DayPoint struct {
	Date   string
	Amount decimal.Decimal
}

// DailyExpenseSeries returns expense totals for the last 7 calendar days
// inclusive of today, oldest first. Days with no transactions report zero,
// so the series always has exactly 7 points.
func DailyExpenseSeries(txs []model.Transaction, now time.Time) []DayPoint {
	series := make([]DayPoint, 0, DailySeriesLen)
	for i := DailySeriesLen - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(model.DateLayout)
		total := decimal.Zero
		for _, t := range txs {
			if t.Type == model.TypeExpense && t.Date == date {
				total = total.Add(t.Amount)
			}
		}
		series = append(series, DayPoint{Date: date, Amount: total})
	}
	return series
}

// MonthPoint is one month's income and expense totals.
type MonthPoint struct {
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// MonthlySeries returns income and expense totals for the last 6 calendar
// months inclusive of the current one, oldest first. Months with no
// transactions report zero, so the series always has exactly 6 points.
func MonthlySeries(txs []model.Transaction, now time.Time) []MonthPoint {
	series := make([]MonthPoint, 0, MonthlySeriesLen)
	for i := MonthlySeriesLen - 1; i >= 0; i-- {
		month := monthStart(now, -i).Format(model.MonthLayout)
		point := MonthPoint{Month: month, Income: decimal.Zero, Expense: decimal.Zero}
		for _, t := range txs {
			if t.Month() != month {
				continue
			}
			switch t.Type {
			case model.TypeIncome:
				point.Income = point.Income.Add(t.Amount)
			case model.TypeExpense:
				point.Expense = point.Expense.Add(t.Amount)
			}
		}
		series = append(series, point)
	}
	return series
}

// SavingsOverSeries sums income minus expense across a monthly series.
func SavingsOverSeries(points []MonthPoint) decimal.Decimal {
	savings := decimal.Zero
	for _, p := range points {
		savings = savings.Add(p.Income).Sub(p.Expense)
	}
	return savings
}

// monthStart anchors month arithmetic at the first of the month so that
// offsets near month ends cannot skip a month during normalization.
func monthStart(t time.Time, offset int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(offset), 1, 0, 0, 0, 0, t.Location())
}
