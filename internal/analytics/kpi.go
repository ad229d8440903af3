package analytics

import (
	"fmt"
	"math"

	"github.com/mero2-web/credit-system-ai/internal/model"
)

// zeroPercent is the display value for metrics whose denominator is absent.
// It is deliberately distinct from a computed "0.0%".
const zeroPercent = "0%"

// KPISet is the overview headline block, percentages preformatted.
type KPISet struct {
	TotalCustomers int    `json:"total_customers"`
	AcceptanceRate string `json:"acceptance_rate"`
	AverageDSR     string `json:"average_dsr"`
	HighRiskShare  string `json:"high_risk_share"`
}

// BuildKPIs derives the headline metrics from the precomputed overview.
// A nil overview yields the zero KPISet rather than an error; the front
// end renders that as an empty portfolio.
func BuildKPIs(ov *model.Overview) KPISet {
	kpis := KPISet{
		AcceptanceRate: zeroPercent,
		AverageDSR:     zeroPercent,
		HighRiskShare:  zeroPercent,
	}
	if ov == nil {
		return kpis
	}

	kpis.TotalCustomers = ov.TotalCustomers
	kpis.AverageDSR = FormatPercent(ov.AverageDSR * 100)

	total := 0
	accepted := 0
	for _, d := range NormalizeDistribution(ov.Decisions) {
		total += d.Count
		if ClassifyDecision(d.Label) == model.BucketAccepted {
			accepted += d.Count
		}
	}
	if total > 0 {
		kpis.AcceptanceRate = FormatPercent(float64(accepted) / float64(total) * 100)
	}

	if high, ok := ov.DSRHistogram.Get(string(model.RiskHigh)); ok {
		denom := ov.TotalCustomers
		if denom < 1 {
			denom = 1
		}
		kpis.HighRiskShare = FormatPercent(float64(high) / float64(denom) * 100)
	}

	return kpis
}

// FormatPercent renders a percentage with one decimal digit, rounding
// half-up. The arithmetic stays in integer tenths because fmt's %.1f
// rounds half-to-even and would flip values like 59.25 to "59.2".
func FormatPercent(v float64) string {
	tenths := int64(math.Floor(v*10 + 0.5))
	sign := ""
	if tenths < 0 {
		sign = "-"
		tenths = -tenths
	}
	return fmt.Sprintf("%s%d.%d%%", sign, tenths/10, tenths%10)
}
