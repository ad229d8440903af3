package main

import (
	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Export the full analytics report as JSON",
		Long: `Run every aggregation over the configured source and write the complete
report to stdout as JSON: KPIs, distributions, risk matrix, decision trend,
scatter sample, and processing statistics.

This is the machine-readable payload chart consumers plot; progress and
logs go to stderr so the output can be piped.

Examples:
  creditlens report --snapshot export.json > report.json
  creditlens report --db credit_system.db | jq .kpis`,
		RunE: runReport,
	}
}

func runReport(cmd *cobra.Command, _ []string) error {
	src, err := openSource()
	if err != nil {
		return err
	}
	defer closeSource(src)

	rep, err := loadReport(cmd.Context(), src)
	if err != nil {
		return err
	}

	return printJSON(rep)
}
