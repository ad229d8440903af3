package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mero2-web/credit-system-ai/internal/model"
)

func TestBuildRiskMatrix(t *testing.T) {
	t.Run("empty input keeps three zero rows", func(t *testing.T) {
		matrix := BuildRiskMatrix(nil)
		require.Len(t, matrix, 3)
		assert.Equal(t, model.RiskLow, matrix[0].Bin)
		assert.Equal(t, model.RiskMid, matrix[1].Bin)
		assert.Equal(t, model.RiskHigh, matrix[2].Bin)
		for _, row := range matrix {
			assert.Zero(t, row.Accepted+row.Review+row.Rejected)
		}
	})

	t.Run("each record lands in exactly one cell", func(t *testing.T) {
		records := []model.ApplicationRecord{
			record("CUST-001", 0.20, "Accepted"),
			record("CUST-002", 0.45, "Accepted"),
			record("CUST-003", 0.50, "Review"),
			record("CUST-004", 0.60, "Rejected"),
			record("CUST-005", 0.75, "Rejected"),
			record("CUST-006", 0.90, ""),
			{CustomerID: "CUST-007", Decision: "Accepted"}, // no DSR, coerces low
		}

		matrix := BuildRiskMatrix(records)
		require.Len(t, matrix, 3)

		total := 0
		for _, row := range matrix {
			total += row.Accepted + row.Review + row.Rejected
		}
		assert.Equal(t, len(records), total, "no drops and no double counts")

		low, mid, high := matrix[0], matrix[1], matrix[2]
		assert.Equal(t, MatrixRow{Bin: model.RiskLow, Accepted: 2}, low)
		assert.Equal(t, MatrixRow{Bin: model.RiskMid, Accepted: 1, Review: 1, Rejected: 1}, mid)
		assert.Equal(t, MatrixRow{Bin: model.RiskHigh, Rejected: 2}, high)
	})

	t.Run("decision resolves through the priority chain", func(t *testing.T) {
		records := []model.ApplicationRecord{
			{
				CustomerID:      "CUST-008",
				DSR:             floatPtr(0.30),
				AIDecision:      "Accepted",
				MLFinalDecision: "Rejected",
			},
		}

		matrix := BuildRiskMatrix(records)
		assert.Equal(t, 1, matrix[0].Accepted)
		assert.Zero(t, matrix[0].Rejected)
	})
}
