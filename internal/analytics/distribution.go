package analytics

import (
	"sort"
	"strings"

	"github.com/mero2-web/credit-system-ai/internal/model"
)

// placeholderLabel is the Swagger default that leaks into stored data when
// clients submit the documentation example verbatim.
const placeholderLabel = "string"

// DistributionEntry is one ranked category in a normalized distribution.
type DistributionEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// NormalizeDistribution filters placeholder labels and non-positive counts
// out of a raw breakdown and ranks the remainder by count, descending.
// Ties keep the source's first-seen order.
func NormalizeDistribution(counts model.CategoryCount) []DistributionEntry {
	entries := make([]DistributionEntry, 0, len(counts))
	for _, e := range counts {
		if strings.EqualFold(e.Label, placeholderLabel) || e.Count <= 0 {
			continue
		}
		entries = append(entries, DistributionEntry{Label: e.Label, Count: e.Count})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}
