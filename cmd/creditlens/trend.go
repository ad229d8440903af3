package main

import (
	"fmt"

	"github.com/mero2-web/credit-system-ai/internal/render"
	"github.com/spf13/cobra"
)

func trendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Show the 14-day decision trend",
		Long: `Bucket applications into calendar days (update time, else creation time)
and show per-bucket decision counts for the 14 most recent days with
activity. Days without applications are not padded in.`,
		RunE: runTrend,
	}

	cmd.Flags().String("format", "table", "output format (table, json)")

	return cmd
}

func runTrend(cmd *cobra.Command, _ []string) error {
	src, err := openSource()
	if err != nil {
		return err
	}
	defer closeSource(src)

	rep, err := loadReport(cmd.Context(), src)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case formatJSON:
		return printJSON(rep.Trend)
	case formatTable:
		fmt.Println("\n" + render.Trend(rep.Trend))
	default:
		return fmt.Errorf("invalid output format: %s (valid options: table, json)", format)
	}

	return nil
}
