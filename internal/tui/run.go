package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard and blocks until the user quits.
func Run(ctx context.Context, cfg Config) error {
	program := tea.NewProgram(newModel(cfg), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
