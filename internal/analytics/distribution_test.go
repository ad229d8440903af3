package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mero2-web/credit-system-ai/internal/model"
)

func TestNormalizeDistribution(t *testing.T) {
	tests := []struct {
		name   string
		counts model.CategoryCount
		want   []DistributionEntry
	}{
		{
			name: "sorted descending by count",
			counts: model.CategoryCount{
				{Label: "Review", Count: 2},
				{Label: "Accepted", Count: 7},
				{Label: "Rejected", Count: 4},
			},
			want: []DistributionEntry{
				{Label: "Accepted", Count: 7},
				{Label: "Rejected", Count: 4},
				{Label: "Review", Count: 2},
			},
		},
		{
			name: "placeholder label dropped case-insensitively",
			counts: model.CategoryCount{
				{Label: "string", Count: 10},
				{Label: "STRING", Count: 3},
				{Label: "Murabaha", Count: 2},
			},
			want: []DistributionEntry{
				{Label: "Murabaha", Count: 2},
			},
		},
		{
			name: "non-positive counts dropped",
			counts: model.CategoryCount{
				{Label: "Accepted", Count: 0},
				{Label: "Review", Count: -3},
				{Label: "Rejected", Count: 1},
			},
			want: []DistributionEntry{
				{Label: "Rejected", Count: 1},
			},
		},
		{
			name: "ties keep first-seen order",
			counts: model.CategoryCount{
				{Label: "Ijara", Count: 5},
				{Label: "Murabaha", Count: 5},
				{Label: "Musharaka", Count: 5},
			},
			want: []DistributionEntry{
				{Label: "Ijara", Count: 5},
				{Label: "Murabaha", Count: 5},
				{Label: "Musharaka", Count: 5},
			},
		},
		{
			name:   "empty input yields empty output",
			counts: model.CategoryCount{},
			want:   []DistributionEntry{},
		},
		{
			name:   "nil input yields empty output",
			counts: nil,
			want:   []DistributionEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDistribution(tt.counts)
			assert.Equal(t, tt.want, got)

			for i := 1; i < len(got); i++ {
				assert.GreaterOrEqual(t, got[i-1].Count, got[i].Count, "output must be non-increasing")
			}
		})
	}
}
