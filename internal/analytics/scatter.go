package analytics

import (
	"math/rand"

	"github.com/mero2-web/credit-system-ai/internal/model"
)

// Scatter sampling bounds.
const (
	scatterSampleCap = 300
	fallbackAgeMin   = 21
	fallbackAgeSpan  = 44 // stand-in ages drawn from [21, 65)
)

// ScatterPoint is one record plotted as (age, risk percent).
type ScatterPoint struct {
	Age         float64              `json:"age"`
	RiskPercent float64              `json:"risk_percent"`
	Label       string               `json:"label"`
	Bucket      model.DecisionBucket `json:"bucket"`
}

// ScatterSet groups sampled points by decision bucket.
type ScatterSet struct {
	Accepted []ScatterPoint `json:"accepted"`
	Review   []ScatterPoint `json:"review"`
	Rejected []ScatterPoint `json:"rejected"`
}

// Len counts all points across buckets.
func (s ScatterSet) Len() int {
	return len(s.Accepted) + len(s.Review) + len(s.Rejected)
}

// SampleScatter plots at most the first 300 records in input order. Records
// missing age or DSR get pseudo-random stand-ins from rng so partially
// scored data still fills the chart; inject a fixed-seed source to make
// output reproducible.
func SampleScatter(records []model.ApplicationRecord, rng *rand.Rand) ScatterSet {
	set := ScatterSet{
		Accepted: []ScatterPoint{},
		Review:   []ScatterPoint{},
		Rejected: []ScatterPoint{},
	}
	if len(records) > scatterSampleCap {
		records = records[:scatterSampleCap]
	}

	for i := range records {
		r := &records[i]
		point := ScatterPoint{
			Label:  scatterLabel(r),
			Bucket: ClassifyDecision(r.DecisionLabel()),
		}
		if r.Age != nil {
			point.Age = float64(*r.Age)
		} else {
			point.Age = fallbackAgeMin + rng.Float64()*fallbackAgeSpan
		}
		if r.DSR != nil {
			point.RiskPercent = clamp(*r.DSR*100, 0, 100)
		} else {
			point.RiskPercent = rng.Float64() * 100
		}

		switch point.Bucket {
		case model.BucketAccepted:
			set.Accepted = append(set.Accepted, point)
		case model.BucketReview:
			set.Review = append(set.Review, point)
		case model.BucketRejected:
			set.Rejected = append(set.Rejected, point)
		}
	}

	return set
}

func scatterLabel(r *model.ApplicationRecord) string {
	if r.Name != "" {
		return r.Name
	}
	return r.CustomerID
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
