package main

import (
	"fmt"

	"github.com/mero2-web/credit-system-ai/internal/render"
	"github.com/mero2-web/credit-system-ai/internal/source"
	"github.com/spf13/cobra"
)

func applicationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "applications",
		Short: "List loan applications",
		Long: `Page through the loan applications the review service holds, the same
listing its review table shows.

The decision filter matches the committed decision: a reviewer's manual
override when one exists, else the model decision, else the rule decision.

Examples:
  # First page of everything
  creditlens applications

  # Search by customer id or name
  creditlens applications --search amina

  # Second page of rejections, 50 per page
  creditlens applications --decision Rejected --page 2 --page-size 50`,
		RunE: runApplications,
	}

	cmd.Flags().String("search", "", "match customer id or name (case-insensitive)")
	cmd.Flags().String("decision", "", "filter by committed decision label")
	cmd.Flags().Int("page", 1, "page number (1-based)")
	cmd.Flags().Int("page-size", source.DefaultPageSize, "records per page (max 500)")
	cmd.Flags().String("format", "table", "output format (table, json)")

	return cmd
}

func runApplications(cmd *cobra.Command, _ []string) error {
	src, err := openSource()
	if err != nil {
		return err
	}
	defer closeSource(src)

	search, _ := cmd.Flags().GetString("search")
	decision, _ := cmd.Flags().GetString("decision")
	pageNum, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")

	page, err := src.Applications(cmd.Context(), source.Query{
		Search:   search,
		Decision: decision,
		Page:     pageNum,
		PageSize: pageSize,
	})
	if err != nil {
		return fmt.Errorf("failed to list applications: %w", err)
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case formatJSON:
		return printJSON(page)
	case formatTable:
		fmt.Println("\n" + render.Applications(page))
	default:
		return fmt.Errorf("invalid output format: %s (valid options: table, json)", format)
	}

	return nil
}
