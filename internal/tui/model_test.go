package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhanflow/dhanflow/internal/model"
	"github.com/dhanflow/dhanflow/internal/store"
)

func testConfig() Config {
	snap := store.NewSnapshot()
	snap.Accounts = []model.Account{
		{ID: "a1", Name: "Salary account", Type: model.AccountTypeBank, StartingBalance: decimal.NewFromInt(1000)},
	}
	snap.Transactions = []model.Transaction{
		{
			ID: "t1", Title: "Groceries", Amount: decimal.NewFromInt(200),
			Type: model.TypeExpense, Category: model.CategoryFood,
			AccountID: "a1", Date: "2024-05-06",
		},
		{
			ID: "t2", Title: "Paycheck", Amount: decimal.NewFromInt(500),
			Type: model.TypeIncome, Category: model.CategoryIncomeSource,
			AccountID: "a1", Date: "2024-05-01",
		},
	}
	snap.Budgets = []model.Budget{
		{ID: "b1", Category: model.CategoryFood, Limit: decimal.NewFromInt(250), Month: "2024-05"},
	}
	return Config{
		Snapshot: snap,
		UserName: "Asha",
		Now:      time.Date(2024, 5, 7, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewModelDerivesAggregates(t *testing.T) {
	m := newModel(testConfig())

	require.Len(t, m.balances, 1)
	assert.True(t, m.balances[0].balance.Equal(decimal.NewFromInt(1300)))
	assert.True(t, m.total.Equal(decimal.NewFromInt(1300)))
	require.Len(t, m.budgets, 1)
	assert.Len(t, m.daily, 7)
	assert.Len(t, m.monthly, 6)
}

func TestTabCycling(t *testing.T) {
	m := newModel(testConfig())
	assert.Equal(t, ViewOverview, m.view)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, ViewAccounts, m.view)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(Model)
	assert.Equal(t, ViewOverview, m.view)

	// Backwards from the first tab wraps to the last.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(Model)
	assert.Equal(t, ViewInsights, m.view)
}

func TestQuitKey(t *testing.T) {
	m := newModel(testConfig())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(Model)

	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestOverviewShowsMonthTotals(t *testing.T) {
	m := newModel(testConfig())

	view := m.View()
	assert.Contains(t, view, "DhanFlow")
	assert.Contains(t, view, "Asha")
	assert.Contains(t, view, "1,300")
	assert.Contains(t, view, "Groceries")
}

func TestBudgetsViewShowsTier(t *testing.T) {
	m := newModel(testConfig())
	m.view = ViewBudgets

	view := m.View()
	// 200 of 250 spent is past the 80 percent warning threshold.
	assert.Contains(t, view, "warning")
	assert.Contains(t, view, "2024-05")
}

func TestScrollClamping(t *testing.T) {
	m := newModel(testConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	m = next.(Model)
	assert.Equal(t, 0, m.scroll)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = next.(Model)
	assert.Equal(t, 1, m.scroll)
}
