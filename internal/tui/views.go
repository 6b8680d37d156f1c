package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/dhanflow/dhanflow/internal/currency"
	"github.com/dhanflow/dhanflow/internal/model"
	"github.com/dhanflow/dhanflow/internal/report"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("#6B7280"))

	activeTabStyle = tabStyle.
			Foreground(lipgloss.Color("#7C3AED")).
			Bold(true).
			Underline(true)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7C3AED")).
			Padding(0, 1).
			MarginBottom(1)

	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	incomeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	expenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
)

var viewNames = [viewCount]string{"Overview", "Accounts", "Budgets", "Insights"}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	var body string
	switch m.view {
	case ViewOverview:
		body = m.renderOverview()
	case ViewAccounts:
		body = m.renderAccounts()
	case ViewBudgets:
		body = m.renderBudgets()
	case ViewInsights:
		body = m.renderInsights()
	}
	b.WriteString(m.clipToScroll(body))
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.help.FullHelpView(m.keymap.FullHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keymap.ShortHelp()))
	}
	return b.String()
}

func (m Model) renderHeader() string {
	tabs := make([]string, 0, viewCount)
	for i, name := range viewNames {
		style := tabStyle
		if View(i) == m.view {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(name))
	}
	user := ""
	if m.config.UserName != "" {
		user = labelStyle.Render("  " + m.config.UserName)
	}
	return titleStyle.Render("💸 DhanFlow") + user + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderOverview() string {
	summary := report.SummarizeMonth(m.config.Snapshot.Transactions, "", m.config.Now)

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", labelStyle.Render("Total balance"), m.money(m.total))
	fmt.Fprintf(&b, "%s  %s\n", labelStyle.Render("Income ("+summary.Month+")"),
		incomeStyle.Render("+"+m.money(summary.Income)))
	fmt.Fprintf(&b, "%s  %s\n", labelStyle.Render("Expenses ("+summary.Month+")"),
		expenseStyle.Render("-"+m.money(summary.Expense)))
	savings := m.money(summary.Savings)
	if summary.Savings.IsNegative() {
		savings = expenseStyle.Render(savings)
	} else {
		savings = incomeStyle.Render(savings)
	}
	fmt.Fprintf(&b, "%s  %s\n", labelStyle.Render("Savings"), savings)

	recent := m.recentTransactions(5)
	if len(recent) > 0 {
		b.WriteString("\n" + labelStyle.Render("Recent transactions") + "\n")
		for _, t := range recent {
			amount := m.money(t.Amount)
			if t.Type == model.TypeIncome {
				amount = incomeStyle.Render("+" + amount)
			} else {
				amount = expenseStyle.Render("-" + amount)
			}
			fmt.Fprintf(&b, "  %s  %-24s %s\n", t.Date, truncate(t.Title, 24), amount)
		}
	}
	return sectionStyle.Render(b.String())
}

func (m Model) renderAccounts() string {
	if len(m.balances) == 0 {
		return sectionStyle.Render(labelStyle.Render("No accounts yet."))
	}
	var b strings.Builder
	for _, row := range m.balances {
		fmt.Fprintf(&b, "%-20s %-7s %s\n",
			truncate(row.account.Name, 20), row.account.Type, m.money(row.balance))
	}
	fmt.Fprintf(&b, "%-28s %s\n", labelStyle.Render("Total"), m.money(m.total))
	return sectionStyle.Render(b.String())
}

func (m Model) renderBudgets() string {
	if len(m.budgets) == 0 {
		return sectionStyle.Render(labelStyle.Render("No budgets set."))
	}
	var b strings.Builder
	for _, p := range m.budgets {
		status := incomeStyle.Render("on track")
		switch p.Tier {
		case report.TierExceeded:
			status = expenseStyle.Render("EXCEEDED")
		case report.TierWarning:
			status = warnStyle.Render("warning")
		}
		fmt.Fprintf(&b, "%s %-14s %s %s / %s (%.0f%%) %s\n",
			p.Budget.Month, p.Budget.Category,
			progressBar(p.Percent),
			m.money(p.Spent), m.money(p.Budget.Limit), p.Percent, status)
	}
	return sectionStyle.Render(b.String())
}

func (m Model) renderInsights() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Daily expenses, last 7 days") + "\n")
	maxDay := decimal.Zero
	for _, p := range m.daily {
		if p.Amount.GreaterThan(maxDay) {
			maxDay = p.Amount
		}
	}
	for _, p := range m.daily {
		share := 0.0
		if maxDay.IsPositive() {
			share, _ = p.Amount.Div(maxDay).Float64()
		}
		fmt.Fprintf(&b, "  %s %s %s\n", p.Date, progressBar(share*100), m.money(p.Amount))
	}

	b.WriteString("\n" + labelStyle.Render("Income vs expenses, last 6 months") + "\n")
	for _, p := range m.monthly {
		fmt.Fprintf(&b, "  %s  %s  %s\n", p.Month,
			incomeStyle.Render("+"+m.money(p.Income)),
			expenseStyle.Render("-"+m.money(p.Expense)))
	}

	savings := report.SavingsOverSeries(m.monthly)
	line := "Net savings: " + m.money(savings)
	if savings.IsNegative() {
		b.WriteString("\n" + expenseStyle.Render(line) + "\n")
	} else {
		b.WriteString("\n" + incomeStyle.Render(line) + "\n")
	}
	return sectionStyle.Render(b.String())
}

// recentTransactions returns up to n transactions with the newest dates first.
func (m Model) recentTransactions(n int) []model.Transaction {
	txs := make([]model.Transaction, len(m.config.Snapshot.Transactions))
	copy(txs, m.config.Snapshot.Transactions)
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date > txs[j].Date })
	if len(txs) > n {
		txs = txs[:n]
	}
	return txs
}

func (m Model) money(amount decimal.Decimal) string {
	return currency.Format(amount, m.config.Snapshot.Currency)
}

// clipToScroll drops the first scroll lines so long tabs stay navigable
// on short terminals.
func (m Model) clipToScroll(body string) string {
	if m.scroll == 0 {
		return body
	}
	lines := strings.Split(body, "\n")
	if m.scroll >= len(lines) {
		return ""
	}
	return strings.Join(lines[m.scroll:], "\n")
}

func progressBar(percent float64) string {
	const width = 20
	if percent < 0 {
		percent = 0
	}
	filled := int(percent / 100 * width)
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if percent >= 100 {
		return expenseStyle.Render(bar)
	}
	if percent >= 80 {
		return warnStyle.Render(bar)
	}
	return incomeStyle.Render(bar)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
