package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mero2-web/credit-system-ai/internal/model"
)

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		name string
		dsr  float64
		want model.RiskBin
	}{
		{name: "zero is low", dsr: 0, want: model.RiskLow},
		{name: "just under low ceiling", dsr: 0.449999, want: model.RiskLow},
		{name: "low boundary belongs to middle", dsr: 0.45, want: model.RiskMid},
		{name: "middle of middle", dsr: 0.52, want: model.RiskMid},
		{name: "high boundary belongs to middle", dsr: 0.60, want: model.RiskMid},
		{name: "just over high boundary", dsr: 0.600001, want: model.RiskHigh},
		{name: "well into high", dsr: 0.95, want: model.RiskHigh},
		{name: "over one still high", dsr: 1.8, want: model.RiskHigh},
		{name: "negative coerces low", dsr: -0.2, want: model.RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRisk(tt.dsr))
		})
	}
}
