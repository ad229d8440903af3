// Package model defines the core domain models used throughout the application.
package model

import "time"

// ApplicationRecord represents a single loan application as served by the
// review service. Records are read-only inputs; optional numerics are
// pointers so absent values survive the trip from JSON and SQL.
type ApplicationRecord struct {
	ID         int64  `json:"id"`
	CustomerID string `json:"customer_id"`
	Name       string `json:"name,omitempty"`

	Age *int     `json:"age,omitempty"`
	DSR *float64 `json:"dsr,omitempty"` // debt-service ratio in [0, 1]

	// Decision labels in priority order; empty means the field is absent.
	AIDecision           string `json:"ai_decision,omitempty"`
	FinalDisplayDecision string `json:"final_display_decision,omitempty"`
	MLFinalDecision      string `json:"ml_final_decision,omitempty"`
	Decision             string `json:"decision,omitempty"`

	// Manual review fields; set only when a reviewer overrode the pipeline.
	ManualDecision string `json:"manual_decision,omitempty"`
	ManualNote     string `json:"manual_note,omitempty"`

	Gender        string   `json:"gender,omitempty"`
	JobType       string   `json:"job_type,omitempty"`
	FinancingType string   `json:"financing_type,omitempty"`
	AssetType     string   `json:"asset_type,omitempty"`
	AssetValue    *float64 `json:"asset_value,omitempty"`
	Income        *float64 `json:"income,omitempty"`
	Expenses      *float64 `json:"expenses,omitempty"`

	// Contributions carries per-feature scoring weights when the source
	// provides them; the review database does not.
	Contributions map[string]float64 `json:"shap_contributions,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// DecisionLabel resolves the record's display decision: the first non-empty
// field in priority order. An empty result means no system has decided yet.
func (r *ApplicationRecord) DecisionLabel() string {
	for _, label := range []string{
		r.AIDecision,
		r.FinalDisplayDecision,
		r.MLFinalDecision,
		r.Decision,
	} {
		if label != "" {
			return label
		}
	}
	return ""
}

// EffectiveTime returns the timestamp a record counts toward in time-series
// bucketing: update time, else creation time, else the supplied fallback.
func (r *ApplicationRecord) EffectiveTime(fallback time.Time) time.Time {
	if r.UpdatedAt != nil {
		return *r.UpdatedAt
	}
	if r.CreatedAt != nil {
		return *r.CreatedAt
	}
	return fallback
}

// RiskRatio returns the record's DSR with absent values coerced to zero.
func (r *ApplicationRecord) RiskRatio() float64 {
	if r.DSR == nil {
		return 0
	}
	return *r.DSR
}
