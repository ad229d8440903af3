package model

// Overview is the review service's precomputed analytics aggregate. Every
// field may arrive zero-valued; downstream consumers must tolerate that.
type Overview struct {
	TotalCustomers int           `json:"total_customers"`
	AverageDSR     float64       `json:"avg_dsr"`
	Decisions      CategoryCount `json:"decisions_breakdown"`
	Genders        CategoryCount `json:"gender_distribution"`
	FinancingTypes CategoryCount `json:"financing_type_distribution"`
	DSRHistogram   CategoryCount `json:"dsr_histogram"`
}

// DecisionSummary pairs raw decision counts with precomputed percentages.
type DecisionSummary struct {
	Counts      CategoryCount      `json:"counts"`
	Percentages map[string]float64 `json:"percentages"`
}

// RiskAnalysis summarizes portfolio risk computed from rule decisions.
type RiskAnalysis struct {
	AverageDSR         float64 `json:"average_dsr"`
	HighRiskCustomers  int     `json:"high_risk_customers"`
	HighRiskPercentage float64 `json:"high_risk_percentage"`
}

// Statistics is the review service's processing-status aggregate.
type Statistics struct {
	TotalCustomers     int             `json:"total_customers"`
	ProcessedCustomers int             `json:"processed_customers"`
	DecisionSummary    DecisionSummary `json:"decision_summary"`
	RiskAnalysis       RiskAnalysis    `json:"risk_analysis"`
}
