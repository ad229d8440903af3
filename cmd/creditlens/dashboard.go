package main

import (
	"github.com/mero2-web/credit-system-ai/internal/tui"
	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive analytics dashboard",
		Long: `Open a full-screen terminal dashboard over the configured source.

Views: Overview (KPIs + distributions), Matrix, Trend, Scatter.
Keys: tab/shift+tab switch views, f cycles the decision filter, / searches,
r reloads, q quits.

The decision filter recomputes record-derived views; KPIs and distributions
always reflect the full portfolio.`,
		RunE: runDashboard,
	}
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	src, err := openSource()
	if err != nil {
		return err
	}
	defer closeSource(src)

	return tui.Run(cmd.Context(), tui.Config{Source: src})
}
