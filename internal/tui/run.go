package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mero2-web/credit-system-ai/internal/analytics"
	"github.com/mero2-web/credit-system-ai/internal/source"
)

// Config holds the dashboard dependencies.
type Config struct {
	// Source supplies application records and the server aggregates.
	Source source.RecordSource
	// Engine recomputes the report when the decision filter changes.
	// Defaults to a production engine.
	Engine *analytics.Engine
}

// Run starts the dashboard and blocks until the user quits.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Source == nil {
		return fmt.Errorf("record source is required")
	}
	if cfg.Engine == nil {
		cfg.Engine = analytics.New()
	}

	p := tea.NewProgram(
		newModel(cfg),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}

	return nil
}
