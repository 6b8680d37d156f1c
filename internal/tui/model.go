// Package tui renders an interactive, read-only dashboard over the
// current financial data.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/dhanflow/dhanflow/internal/model"
	"github.com/dhanflow/dhanflow/internal/report"
	"github.com/dhanflow/dhanflow/internal/store"
)

// View represents the active dashboard tab.
type View int

const (
	ViewOverview View = iota
	ViewAccounts
	ViewBudgets
	ViewInsights
)

const viewCount = 4

// Config holds everything the dashboard needs to render.
type Config struct {
	Snapshot store.Snapshot
	UserName string
	Now      time.Time
}

// accountRow pairs an account with its derived balance.
type accountRow struct {
	account model.Account
	balance decimal.Decimal
}

// Model holds the dashboard state. All data is read once at startup;
// the dashboard never writes.
type Model struct {
	config   Config
	keymap   KeyMap
	help     help.Model
	balances []accountRow
	total    decimal.Decimal
	budgets  []report.BudgetProgress
	daily    []report.DayPoint
	monthly  []report.MonthPoint
	view     View
	scroll   int
	width    int
	height   int
	showHelp bool
	quitting bool
}

func newModel(cfg Config) Model {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	snap := cfg.Snapshot
	balances := make([]accountRow, 0, len(snap.Accounts))
	for _, acc := range snap.Accounts {
		balances = append(balances, accountRow{
			account: acc,
			balance: report.AccountBalance(acc, snap.Transactions),
		})
	}
	return Model{
		config:   cfg,
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		balances: balances,
		total:    report.TotalBalance(snap.Accounts, snap.Transactions),
		budgets:  report.BudgetReport(snap.Budgets, snap.Transactions),
		daily:    report.DailyExpenseSeries(snap.Transactions, cfg.Now),
		monthly:  report.MonthlySeries(snap.Transactions, cfg.Now),
		view:     ViewOverview,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.NextTab):
		m.view = (m.view + 1) % viewCount
		m.scroll = 0

	case key.Matches(msg, m.keymap.PrevTab):
		m.view = (m.view + viewCount - 1) % viewCount
		m.scroll = 0

	case key.Matches(msg, m.keymap.Up):
		if m.scroll > 0 {
			m.scroll--
		}

	case key.Matches(msg, m.keymap.Down):
		m.scroll++

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
	}
	return m, nil
}
