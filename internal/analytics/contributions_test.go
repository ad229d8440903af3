package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankContributions(t *testing.T) {
	t.Run("bias term excluded and percentages normalized", func(t *testing.T) {
		ranking := RankContributions(map[string]float64{
			"A":        3,
			"B":        -2,
			"BiasTerm": 100,
		})

		assert.InDelta(t, 5.0, ranking.SumAbs, 1e-9)

		require.Len(t, ranking.TopPositive, 1)
		assert.Equal(t, "A", ranking.TopPositive[0].Feature)
		assert.InDelta(t, 60.0, ranking.TopPositive[0].PercentOfInfluence, 1e-9)

		require.Len(t, ranking.TopNegative, 1)
		assert.Equal(t, "B", ranking.TopNegative[0].Feature)
		assert.InDelta(t, 40.0, ranking.TopNegative[0].PercentOfInfluence, 1e-9)

		require.Len(t, ranking.TopAbsolute, 2)
		assert.Equal(t, "A", ranking.TopAbsolute[0].Feature)
		assert.Equal(t, "B", ranking.TopAbsolute[1].Feature)
	})

	t.Run("list caps and orderings", func(t *testing.T) {
		weights := map[string]float64{
			"income":        8,
			"asset_value":   6,
			"tenure":        4,
			"age":           3,
			"dependents":    2,
			"savings":       1,
			"dsr":           -9,
			"expenses":      -7,
			"loan_amount":   -5,
			"late_payments": -3,
			"inquiries":     -2,
			"utilization":   -1,
		}

		ranking := RankContributions(weights)

		require.Len(t, ranking.TopPositive, 5)
		assert.Equal(t, "income", ranking.TopPositive[0].Feature)
		for i := 1; i < len(ranking.TopPositive); i++ {
			assert.Greater(t, ranking.TopPositive[i].Weight, 0.0)
			assert.GreaterOrEqual(t, ranking.TopPositive[i-1].Weight, ranking.TopPositive[i].Weight)
		}

		require.Len(t, ranking.TopNegative, 5)
		assert.Equal(t, "dsr", ranking.TopNegative[0].Feature)
		for i := 1; i < len(ranking.TopNegative); i++ {
			assert.Less(t, ranking.TopNegative[i].Weight, 0.0)
			assert.LessOrEqual(t, ranking.TopNegative[i-1].Weight, ranking.TopNegative[i].Weight)
		}

		require.Len(t, ranking.TopAbsolute, 10)
		assert.Equal(t, "dsr", ranking.TopAbsolute[0].Feature)
		assert.Equal(t, "income", ranking.TopAbsolute[1].Feature)
	})

	t.Run("zero sum forces a safe denominator", func(t *testing.T) {
		ranking := RankContributions(map[string]float64{"A": 0, "B": 0})

		assert.Zero(t, ranking.SumAbs)
		assert.Empty(t, ranking.TopPositive)
		assert.Empty(t, ranking.TopNegative)
		require.Len(t, ranking.TopAbsolute, 2)
		for _, entry := range ranking.TopAbsolute {
			assert.Zero(t, entry.PercentOfInfluence)
		}
	})

	t.Run("equal weights tie-break by feature name", func(t *testing.T) {
		first := RankContributions(map[string]float64{"gamma": 2, "alpha": 2, "beta": 2})
		second := RankContributions(map[string]float64{"beta": 2, "gamma": 2, "alpha": 2})

		assert.Equal(t, first, second, "ranking is independent of map iteration order")
		require.Len(t, first.TopPositive, 3)
		assert.Equal(t, "alpha", first.TopPositive[0].Feature)
		assert.Equal(t, "beta", first.TopPositive[1].Feature)
		assert.Equal(t, "gamma", first.TopPositive[2].Feature)
	})

	t.Run("empty and bias-only maps rank to nothing", func(t *testing.T) {
		for _, weights := range []map[string]float64{nil, {}, {"BiasTerm": 42}} {
			ranking := RankContributions(weights)
			assert.Zero(t, ranking.SumAbs)
			assert.Empty(t, ranking.TopPositive)
			assert.Empty(t, ranking.TopNegative)
			assert.Empty(t, ranking.TopAbsolute)
		}
	})
}
