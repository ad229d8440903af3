package analytics

import "github.com/mero2-web/credit-system-ai/internal/model"

// MatrixRow is one risk bin's decision counts in the risk/decision matrix.
type MatrixRow struct {
	Bin      model.RiskBin `json:"bin"`
	Accepted int           `json:"accepted"`
	Review   int           `json:"review"`
	Rejected int           `json:"rejected"`
}

// BuildRiskMatrix cross-tabulates records by risk bin and decision bucket.
// The result always has exactly three rows in ascending risk order, even
// when every cell is zero, so chart axes stay stable. Each record lands in
// exactly one cell.
func BuildRiskMatrix(records []model.ApplicationRecord) []MatrixRow {
	bins := model.RiskBins()
	rows := make([]MatrixRow, len(bins))
	index := make(map[model.RiskBin]int, len(bins))
	for i, bin := range bins {
		rows[i] = MatrixRow{Bin: bin}
		index[bin] = i
	}

	for i := range records {
		row := &rows[index[ClassifyRisk(records[i].RiskRatio())]]
		switch ClassifyDecision(records[i].DecisionLabel()) {
		case model.BucketAccepted:
			row.Accepted++
		case model.BucketReview:
			row.Review++
		case model.BucketRejected:
			row.Rejected++
		}
	}

	return rows
}
