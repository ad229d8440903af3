package analytics

import "github.com/mero2-web/credit-system-ai/internal/model"

// Risk bin boundaries over the debt-service ratio.
const (
	riskLowCeiling = 0.45
	riskHighFloor  = 0.60
)

// ClassifyRisk places a debt-service ratio into its bin. Boundary values
// belong to the middle bin: 0.45 and 0.60 both classify as "0.45-0.60".
// Callers coerce missing ratios to zero before classifying.
func ClassifyRisk(dsr float64) model.RiskBin {
	switch {
	case dsr < riskLowCeiling:
		return model.RiskLow
	case dsr <= riskHighFloor:
		return model.RiskMid
	default:
		return model.RiskHigh
	}
}
