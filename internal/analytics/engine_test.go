package analytics

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mero2-web/credit-system-ai/internal/model"
)

func fixedEngine(seed int64, now time.Time) *Engine {
	return NewWithConfig(Config{
		Now:  func() time.Time { return now },
		Rand: rand.New(rand.NewSource(seed)),
	})
}

func TestEngine_Compute(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	snapshot := func() *model.Snapshot {
		created := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
		return &model.Snapshot{
			Applications: []model.ApplicationRecord{
				{CustomerID: "CUST-001", Name: "Amina", Age: intPtr(34), DSR: floatPtr(0.30), Decision: "Accepted", CreatedAt: timePtr(created)},
				{CustomerID: "CUST-002", Name: "Badr", Age: intPtr(47), DSR: floatPtr(0.50), Decision: "Review", CreatedAt: timePtr(created)},
				{CustomerID: "CUST-003", Name: "Chadia", Age: intPtr(29), DSR: floatPtr(0.72), Decision: "Rejected"},
			},
			Overview: &model.Overview{
				TotalCustomers: 3,
				AverageDSR:     0.506666,
				Decisions: model.CategoryCount{
					{Label: "Accepted", Count: 1},
					{Label: "Review", Count: 1},
					{Label: "Rejected", Count: 1},
				},
				Genders: model.CategoryCount{
					{Label: "female", Count: 2},
					{Label: "male", Count: 1},
				},
				FinancingTypes: model.CategoryCount{
					{Label: "Murabaha", Count: 2},
					{Label: "string", Count: 5},
					{Label: "Ijara", Count: 1},
				},
				DSRHistogram: model.CategoryCount{
					{Label: "<0.45", Count: 1},
					{Label: "0.45-0.60", Count: 1},
					{Label: ">0.60", Count: 1},
				},
			},
			Statistics: &model.Statistics{TotalCustomers: 3, ProcessedCustomers: 3},
		}
	}

	t.Run("assembles every section from one snapshot", func(t *testing.T) {
		report := fixedEngine(7, now).Compute(snapshot())

		assert.Equal(t, now, report.GeneratedAt)
		assert.Equal(t, 3, report.KPIs.TotalCustomers)
		assert.Equal(t, "33.3%", report.KPIs.AcceptanceRate)
		assert.Equal(t, "50.7%", report.KPIs.AverageDSR)
		assert.Equal(t, "33.3%", report.KPIs.HighRiskShare)

		require.Len(t, report.FinancingTypes, 2, "placeholder financing label filtered")
		assert.Equal(t, "Murabaha", report.FinancingTypes[0].Label)

		require.Len(t, report.Matrix, 3)
		assert.Equal(t, 1, report.Matrix[0].Accepted)
		assert.Equal(t, 1, report.Matrix[1].Review)
		assert.Equal(t, 1, report.Matrix[2].Rejected)

		require.Len(t, report.Trend, 2)
		assert.Equal(t, "2024-06-10", report.Trend[0].Day)
		assert.Equal(t, "2024-06-15", report.Trend[1].Day, "timestampless record lands on processing day")

		assert.Equal(t, 3, report.Scatter.Len())
		require.NotNil(t, report.Statistics)
		assert.Equal(t, 3, report.Statistics.ProcessedCustomers)
	})

	t.Run("identical input and config yield identical reports", func(t *testing.T) {
		first := fixedEngine(7, now).Compute(snapshot())
		second := fixedEngine(7, now).Compute(snapshot())
		assert.Equal(t, first, second)
	})

	t.Run("compute never mutates the snapshot", func(t *testing.T) {
		snap := snapshot()
		fixedEngine(7, now).Compute(snap)
		assert.Equal(t, snapshot(), snap)
	})

	t.Run("nil snapshot yields an empty report", func(t *testing.T) {
		report := fixedEngine(7, now).Compute(nil)

		assert.Equal(t, "0%", report.KPIs.AcceptanceRate)
		assert.Empty(t, report.Decisions)
		require.Len(t, report.Matrix, 3)
		assert.Empty(t, report.Trend)
		assert.Zero(t, report.Scatter.Len())
		assert.Nil(t, report.Statistics)
	})

	t.Run("defaults cover nil config fields", func(t *testing.T) {
		engine := NewWithConfig(Config{})
		report := engine.Compute(snapshot())
		assert.False(t, report.GeneratedAt.IsZero())
	})
}
