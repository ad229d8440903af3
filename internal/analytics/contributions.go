package analytics

import (
	"math"
	"sort"
)

// biasTermKey is the scoring service's intercept entry. It is bookkeeping,
// not a feature, and never participates in ranking or normalization.
const biasTermKey = "BiasTerm"

// Ranking sizes.
const (
	topSignedCount   = 5
	topAbsoluteCount = 10
)

// RankedContribution is one feature's weight with its share of the record's
// total influence.
type RankedContribution struct {
	Feature            string  `json:"feature"`
	Weight             float64 `json:"weight"`
	PercentOfInfluence float64 `json:"percent_of_influence"`
}

// ContributionRanking summarizes one record's feature contributions.
// TopAbsolute ranks by magnitude regardless of sign and may overlap the
// signed lists.
type ContributionRanking struct {
	SumAbs      float64              `json:"sum_abs"`
	TopPositive []RankedContribution `json:"top_positive"`
	TopNegative []RankedContribution `json:"top_negative"`
	TopAbsolute []RankedContribution `json:"top_absolute"`
}

// RankContributions normalizes a record's feature weights and ranks them
// three ways: strongest positive, strongest negative, largest absolute.
// Each entry's PercentOfInfluence is its share of the summed absolute
// weight; a zero sum normalizes against 1 so empty and all-zero maps rank
// cleanly to nothing instead of dividing by zero.
func RankContributions(weights map[string]float64) ContributionRanking {
	entries := make([]RankedContribution, 0, len(weights))
	sumAbs := 0.0
	for feature, weight := range weights {
		if feature == biasTermKey {
			continue
		}
		entries = append(entries, RankedContribution{Feature: feature, Weight: weight})
		sumAbs += math.Abs(weight)
	}

	denom := sumAbs
	if denom == 0 {
		denom = 1
	}
	for i := range entries {
		entries[i].PercentOfInfluence = math.Abs(entries[i].Weight) / denom * 100
	}

	// Map iteration order is randomized; pin a deterministic base order so
	// equal weights tie-break identically run over run.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Feature < entries[j].Feature })

	positive := filterContributions(entries, func(w float64) bool { return w > 0 })
	sort.SliceStable(positive, func(i, j int) bool { return positive[i].Weight > positive[j].Weight })

	negative := filterContributions(entries, func(w float64) bool { return w < 0 })
	sort.SliceStable(negative, func(i, j int) bool { return negative[i].Weight < negative[j].Weight })

	absolute := make([]RankedContribution, len(entries))
	copy(absolute, entries)
	sort.SliceStable(absolute, func(i, j int) bool {
		return math.Abs(absolute[i].Weight) > math.Abs(absolute[j].Weight)
	})

	return ContributionRanking{
		SumAbs:      sumAbs,
		TopPositive: headContributions(positive, topSignedCount),
		TopNegative: headContributions(negative, topSignedCount),
		TopAbsolute: headContributions(absolute, topAbsoluteCount),
	}
}

func filterContributions(entries []RankedContribution, keep func(float64) bool) []RankedContribution {
	out := make([]RankedContribution, 0, len(entries))
	for _, e := range entries {
		if keep(e.Weight) {
			out = append(out, e)
		}
	}
	return out
}

func headContributions(entries []RankedContribution, n int) []RankedContribution {
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
