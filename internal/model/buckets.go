package model

// DecisionBucket is one of the three canonical outcomes every free-text
// decision label collapses into.
type DecisionBucket string

// Decision bucket constants.
const (
	BucketAccepted DecisionBucket = "Accepted"
	BucketReview   DecisionBucket = "Review"
	BucketRejected DecisionBucket = "Rejected"
)

// DecisionBuckets returns the buckets in display order.
func DecisionBuckets() []DecisionBucket {
	return []DecisionBucket{BucketAccepted, BucketReview, BucketRejected}
}

// RiskBin is a debt-service-ratio band.
type RiskBin string

// Risk bins in ascending risk order.
const (
	RiskLow  RiskBin = "<0.45"
	RiskMid  RiskBin = "0.45-0.60"
	RiskHigh RiskBin = ">0.60"
)

// RiskBins returns the bins in ascending risk order.
func RiskBins() []RiskBin {
	return []RiskBin{RiskLow, RiskMid, RiskHigh}
}
