// Package analytics implements the pure aggregation engine that turns loan
// application records and precomputed review-service aggregates into the
// derived structures charts and rankings consume. Every function here is
// side-effect free: no I/O, no shared state, no ambient clock or randomness.
package analytics

import (
	"strings"

	"github.com/mero2-web/credit-system-ai/internal/model"
)

// ClassifyDecision collapses a free-text decision label into one of the
// three canonical buckets. Matching is case-insensitive and substring-based
// so variants like "ACCEPTED" or "accepted_with_conditions" land where a
// reviewer expects. Unrecognized and empty labels count as rejections: an
// application nobody accepted is not approved.
func ClassifyDecision(label string) model.DecisionBucket {
	normalized := strings.ToLower(label)
	switch {
	case strings.Contains(normalized, "accept"):
		return model.BucketAccepted
	case strings.Contains(normalized, "review"):
		return model.BucketReview
	default:
		return model.BucketRejected
	}
}
