package analytics

import (
	"sort"
	"time"

	"github.com/mero2-web/credit-system-ai/internal/model"
)

// trendWindowDays caps how many trailing day buckets a trend series keeps.
const trendWindowDays = 14

// dayKeyFormat renders bucket keys as calendar dates.
const dayKeyFormat = "2006-01-02"

// TrendPoint is one calendar day's decision counts.
type TrendPoint struct {
	Day      string `json:"day"`
	Accepted int    `json:"accepted"`
	Review   int    `json:"review"`
	Rejected int    `json:"rejected"`
}

// BuildTrend buckets records by the calendar day of their effective
// timestamp: update time, else creation time, else now — the caller's
// processing time, passed explicitly so runs are reproducible. Buckets
// come back in ascending day order, trimmed to the trailing window.
func BuildTrend(records []model.ApplicationRecord, now time.Time) []TrendPoint {
	buckets := make(map[string]*TrendPoint)
	for i := range records {
		day := records[i].EffectiveTime(now).Format(dayKeyFormat)
		point, ok := buckets[day]
		if !ok {
			point = &TrendPoint{Day: day}
			buckets[day] = point
		}
		switch ClassifyDecision(records[i].DecisionLabel()) {
		case model.BucketAccepted:
			point.Accepted++
		case model.BucketReview:
			point.Review++
		case model.BucketRejected:
			point.Rejected++
		}
	}

	series := make([]TrendPoint, 0, len(buckets))
	for _, point := range buckets {
		series = append(series, *point)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Day < series[j].Day })

	if len(series) > trendWindowDays {
		series = series[len(series)-trendWindowDays:]
	}
	return series
}
