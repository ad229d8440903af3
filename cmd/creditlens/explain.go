package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mero2-web/credit-system-ai/internal/analytics"
	"github.com/mero2-web/credit-system-ai/internal/common"
	"github.com/mero2-web/credit-system-ai/internal/config"
	"github.com/mero2-web/credit-system-ai/internal/model"
	"github.com/mero2-web/credit-system-ai/internal/render"
	"github.com/mero2-web/credit-system-ai/internal/source"
	"github.com/spf13/cobra"
)

func explainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain <customer-id>",
		Short: "Rank a record's model feature contributions",
		Long: `Rank the per-feature weights behind one application's model score: top
positive drivers, top negative drivers, and the strongest influences by
magnitude, each with its share of the record's total influence.

Contribution weights travel with snapshot exports; the review database does
not store them. For database sources, pass the scoring service's output
directly with --contributions.

Examples:
  # From a snapshot that carries contribution weights
  creditlens explain CUST-0042 --snapshot export.json

  # From a scoring service payload (JSON object of feature: weight)
  creditlens explain CUST-0042 --contributions weights.json`,
		Args: cobra.ExactArgs(1),
		RunE: runExplain,
	}

	cmd.Flags().String("contributions", "", "JSON file of feature weights (overrides the record's own)")
	cmd.Flags().String("format", "table", "output format (table, json)")

	return cmd
}

func runExplain(cmd *cobra.Command, args []string) error {
	customerID := args[0]

	weightsPath, _ := cmd.Flags().GetString("contributions")

	var weights map[string]float64
	if weightsPath != "" {
		var err error
		weights, err = readWeights(weightsPath)
		if err != nil {
			return err
		}
	} else {
		record, err := findApplication(cmd, customerID)
		if err != nil {
			return err
		}
		weights = record.Contributions
	}

	ranking := analytics.RankContributions(weights)

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case formatJSON:
		return printJSON(struct {
			CustomerID string                        `json:"customer_id"`
			Ranking    analytics.ContributionRanking `json:"ranking"`
		}{customerID, ranking})
	case formatTable:
		fmt.Println("\n" + render.Contributions(customerID, ranking))
	default:
		return fmt.Errorf("invalid output format: %s (valid options: table, json)", format)
	}

	return nil
}

// readWeights parses a scoring service payload: a JSON object mapping
// feature names to weights.
func readWeights(path string) (map[string]float64, error) {
	path = filepath.Clean(config.ExpandPath(path))

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's own flag
	if err != nil {
		return nil, fmt.Errorf("failed to read contributions file: %w", err)
	}

	var weights map[string]float64
	if err := json.Unmarshal(data, &weights); err != nil {
		return nil, fmt.Errorf("failed to parse contributions file: %w", err)
	}
	return weights, nil
}

// findApplication searches the configured source for an exact customer id
// match.
func findApplication(cmd *cobra.Command, customerID string) (*model.ApplicationRecord, error) {
	src, err := openSource()
	if err != nil {
		return nil, err
	}
	defer closeSource(src)

	records, err := source.FetchAll(cmd.Context(), src, source.Query{Search: customerID}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to search applications: %w", err)
	}

	for i := range records {
		if strings.EqualFold(records[i].CustomerID, customerID) {
			return &records[i], nil
		}
	}
	return nil, fmt.Errorf("application for customer %q: %w", customerID, common.ErrNotFound)
}
