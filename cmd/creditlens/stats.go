package main

import (
	"fmt"

	"github.com/mero2-web/credit-system-ai/internal/render"
	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show processing statistics",
		Long: `Display the review service's processing statistics: how many customers it
holds, how many the rule engine has decided, the rule decision breakdown,
and the risk summary over raw rule decisions.

Unlike the overview, these figures ignore manual overrides and model
decisions; they describe pipeline throughput, not portfolio outcomes.`,
		RunE: runStats,
	}

	cmd.Flags().String("format", "table", "output format (table, json)")

	return cmd
}

func runStats(cmd *cobra.Command, _ []string) error {
	src, err := openSource()
	if err != nil {
		return err
	}
	defer closeSource(src)

	stats, err := src.Statistics(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load statistics: %w", err)
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case formatJSON:
		return printJSON(stats)
	case formatTable:
		fmt.Println("\n" + render.Statistics(stats))
	default:
		return fmt.Errorf("invalid output format: %s (valid options: table, json)", format)
	}

	return nil
}
