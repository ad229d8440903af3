package analytics

import (
	"time"

	"github.com/mero2-web/credit-system-ai/internal/model"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func timePtr(v time.Time) *time.Time { return &v }

// record builds a minimal application with a DSR and rule decision, the
// shape most aggregation tests need.
func record(customerID string, dsr float64, decision string) model.ApplicationRecord {
	return model.ApplicationRecord{
		CustomerID: customerID,
		DSR:        floatPtr(dsr),
		Decision:   decision,
	}
}
