package main

import (
	"fmt"

	"github.com/mero2-web/credit-system-ai/internal/analytics"
	"github.com/mero2-web/credit-system-ai/internal/render"
	"github.com/spf13/cobra"
)

func overviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show portfolio KPIs and decision distributions",
		Long: `Display the portfolio overview: headline KPIs (customers, acceptance rate,
average DSR, high-risk share) plus the decision, gender, and financing type
distributions.

KPIs come from the review service's own overview aggregate, so the figures
match the service's dashboard exactly.

Examples:
  # Overview of the review database
  creditlens overview --db credit_system.db

  # Overview of a snapshot export, as JSON
  creditlens overview --snapshot export.json --format json`,
		RunE: runOverview,
	}

	cmd.Flags().String("format", "table", "output format (table, json)")

	return cmd
}

func runOverview(cmd *cobra.Command, _ []string) error {
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
		return printJSON(struct {
			KPIs           analytics.KPISet              `json:"kpis"`
			Decisions      []analytics.DistributionEntry `json:"decisions"`
			Genders        []analytics.DistributionEntry `json:"genders"`
			FinancingTypes []analytics.DistributionEntry `json:"financing_types"`
		}{rep.KPIs, rep.Decisions, rep.Genders, rep.FinancingTypes})
	case formatTable:
		fmt.Println("\n" + render.Overview(rep))
	default:
		return fmt.Errorf("invalid output format: %s (valid options: table, json)", format)
	}

	return nil
}
