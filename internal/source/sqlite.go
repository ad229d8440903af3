package source

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/mero2-web/credit-system-ai/internal/common"
	"github.com/mero2-web/credit-system-ai/internal/model"
)

// SQLiteSource reads the review service's database directly. The database
// belongs to the service, so the connection is opened read-only and this
// adapter never migrates or writes.
type SQLiteSource struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteSource opens the review service's database file read-only.
func NewSQLiteSource(dbPath string) (*SQLiteSource, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", "file:"+dbPath+"?mode=ro&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteSource{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

const applicationColumns = `
	id, customer_id, name, gender, age, job_type, income, expenses,
	financing_type, asset_type, asset_value, dsr,
	decision, ml_final_decision, manual_decision, manual_note,
	ml_updated_at, created_at`

// Applications returns one page of records, newest first. Each record's
// display decision is materialized the way the service renders it: manual
// override first, else the DSR policy.
func (s *SQLiteSource) Applications(ctx context.Context, q Query) (*Page, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	q = q.normalized()

	where, args := buildFilters(q)

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM customers"+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	query := "SELECT" + applicationColumns + " FROM customers" + where +
		" ORDER BY id DESC LIMIT ? OFFSET ?"
	rows, err := s.db.QueryContext(ctx, query, append(args, q.PageSize, (q.Page-1)*q.PageSize)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]model.ApplicationRecord, 0, q.PageSize)
	for rows.Next() {
		rec, scanErr := scanApplication(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate applications: %w", err)
	}

	return &Page{
		Records:    records,
		Total:      total,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: totalPages(total, q.PageSize),
	}, nil
}

// buildFilters assembles the WHERE clause. The decision filter matches the
// first committed decision in override order, exactly as the service's
// listing endpoint does.
func buildFilters(q Query) (string, []any) {
	var conditions []string
	var args []any

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		conditions = append(conditions, "(customer_id LIKE ? OR name LIKE ?)")
		args = append(args, pattern, pattern)
	}
	if q.Decision != "" {
		conditions = append(conditions, `(manual_decision = ?
			OR (manual_decision IS NULL AND ml_final_decision = ?)
			OR (manual_decision IS NULL AND ml_final_decision IS NULL AND decision = ?))`)
		args = append(args, q.Decision, q.Decision, q.Decision)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func scanApplication(rows *sql.Rows) (model.ApplicationRecord, error) {
	var (
		rec         model.ApplicationRecord
		name        sql.NullString
		gender      sql.NullString
		age         sql.NullInt64
		jobType     sql.NullString
		income      sql.NullFloat64
		expenses    sql.NullFloat64
		finType     sql.NullString
		assetType   sql.NullString
		assetValue  sql.NullFloat64
		dsr         sql.NullFloat64
		decision    sql.NullString
		mlFinal     sql.NullString
		manual      sql.NullString
		manualNote  sql.NullString
		mlUpdatedAt sql.NullTime
		createdAt   sql.NullTime
	)

	if err := rows.Scan(&rec.ID, &rec.CustomerID, &name, &gender, &age, &jobType,
		&income, &expenses, &finType, &assetType, &assetValue, &dsr,
		&decision, &mlFinal, &manual, &manualNote, &mlUpdatedAt, &createdAt); err != nil {
		return rec, fmt.Errorf("failed to scan application: %w", err)
	}

	rec.Name = name.String
	rec.Gender = gender.String
	rec.JobType = jobType.String
	rec.FinancingType = finType.String
	rec.AssetType = assetType.String
	rec.Decision = decision.String
	rec.MLFinalDecision = mlFinal.String
	rec.ManualDecision = manual.String
	rec.ManualNote = manualNote.String
	rec.Age = nullableInt(age)
	rec.Income = nullableFloat(income)
	rec.Expenses = nullableFloat(expenses)
	rec.AssetValue = nullableFloat(assetValue)
	rec.DSR = nullableFloat(dsr)
	rec.UpdatedAt = nullableTime(mlUpdatedAt)
	rec.CreatedAt = nullableTime(createdAt)

	rec.AIDecision = displayDecision(&rec)
	return rec, nil
}

// displayDecision mirrors the service's display chain: a manual override
// wins, otherwise the DSR policy decides. The policy is total, so the
// service's further fallbacks never fire here.
func displayDecision(r *model.ApplicationRecord) string {
	if r.ManualDecision != "" {
		return r.ManualDecision
	}
	return string(policyDecision(r.RiskRatio()))
}

// policyDecision is the service's rule of thumb from the ratio alone:
// over 0.60 rejects, at or under 0.45 accepts, anything between reviews.
func policyDecision(dsr float64) model.DecisionBucket {
	switch {
	case dsr > 0.60:
		return model.BucketRejected
	case dsr <= 0.45:
		return model.BucketAccepted
	default:
		return model.BucketReview
	}
}

// Overview derives the service's precomputed analytics aggregate in SQL
// instead of a table scan. An empty database yields the zero overview with
// no breakdowns, matching the service's empty payload.
func (s *SQLiteSource) Overview(ctx context.Context) (*model.Overview, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	ov := &model.Overview{}
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM customers").Scan(&ov.TotalCustomers); err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}
	if ov.TotalCustomers == 0 {
		return ov, nil
	}

	var avg sql.NullFloat64
	if err := s.db.QueryRowContext(ctx, "SELECT AVG(dsr) FROM customers WHERE dsr IS NOT NULL").Scan(&avg); err != nil {
		return nil, fmt.Errorf("failed to average dsr: %w", err)
	}
	if avg.Valid {
		ov.AverageDSR = round4(avg.Float64)
	}

	// NULLIF folds empty strings into the COALESCE chain the same way the
	// service's truthiness checks do.
	decisions, err := s.groupCounts(ctx, `
		SELECT COALESCE(NULLIF(manual_decision, ''), NULLIF(ml_final_decision, ''), NULLIF(decision, '')) AS label,
		       COUNT(*)
		FROM customers
		WHERE COALESCE(NULLIF(manual_decision, ''), NULLIF(ml_final_decision, ''), NULLIF(decision, '')) IS NOT NULL
		GROUP BY label
		ORDER BY MIN(id)`)
	if err != nil {
		return nil, fmt.Errorf("failed to group decisions: %w", err)
	}
	ov.Decisions = decisions

	genders, err := s.groupCounts(ctx, `
		SELECT gender, COUNT(*)
		FROM customers
		WHERE gender IS NOT NULL
		GROUP BY gender
		ORDER BY MIN(id)`)
	if err != nil {
		return nil, fmt.Errorf("failed to group genders: %w", err)
	}
	ov.Genders = genders

	financing, err := s.groupCounts(ctx, `
		SELECT financing_type, COUNT(*)
		FROM customers
		WHERE financing_type IS NOT NULL
		GROUP BY financing_type
		ORDER BY MIN(id)`)
	if err != nil {
		return nil, fmt.Errorf("failed to group financing types: %w", err)
	}
	ov.FinancingTypes = financing

	var low, mid, high sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `
		SELECT
			SUM(CASE WHEN dsr < 0.45 THEN 1 ELSE 0 END),
			SUM(CASE WHEN dsr >= 0.45 AND dsr <= 0.60 THEN 1 ELSE 0 END),
			SUM(CASE WHEN dsr > 0.60 THEN 1 ELSE 0 END)
		FROM customers
		WHERE dsr IS NOT NULL`).Scan(&low, &mid, &high); err != nil {
		return nil, fmt.Errorf("failed to bin dsr histogram: %w", err)
	}
	ov.DSRHistogram = model.CategoryCount{
		{Label: string(model.RiskLow), Count: int(low.Int64)},
		{Label: string(model.RiskMid), Count: int(mid.Int64)},
		{Label: string(model.RiskHigh), Count: int(high.Int64)},
	}

	return ov, nil
}

// Statistics mirrors the service's processing-status payload, computed from
// raw rule decisions rather than the display chain. It reports ErrNoData
// for databases with no customers or no processed decisions, the cases the
// service answers with a placeholder message.
func (s *SQLiteSource) Statistics(ctx context.Context) (*model.Statistics, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	stats := &model.Statistics{}
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM customers").Scan(&stats.TotalCustomers); err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}
	if stats.TotalCustomers == 0 {
		return nil, fmt.Errorf("%w: no customers", common.ErrNoData)
	}

	decisions, err := s.groupCounts(ctx, `
		SELECT decision, COUNT(*)
		FROM customers
		WHERE decision IS NOT NULL AND decision != ''
		GROUP BY decision
		ORDER BY MIN(id)`)
	if err != nil {
		return nil, fmt.Errorf("failed to group rule decisions: %w", err)
	}
	processed := decisions.Total()
	if processed == 0 {
		return nil, fmt.Errorf("%w: no processed decisions", common.ErrNoData)
	}
	stats.ProcessedCustomers = processed

	counts := model.CategoryCount{}
	percentages := make(map[string]float64, 3)
	for _, bucket := range model.DecisionBuckets() {
		label := string(bucket)
		n, _ := decisions.Get(label)
		key := strings.ToLower(label)
		counts.Set(key, n)
		percentages[key] = round2(float64(n) / float64(processed) * 100)
	}
	stats.DecisionSummary = model.DecisionSummary{Counts: counts, Percentages: percentages}

	var withDSR int
	var avg sql.NullFloat64
	var high sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), AVG(dsr), SUM(CASE WHEN dsr > 0.60 THEN 1 ELSE 0 END)
		FROM customers
		WHERE dsr IS NOT NULL`).Scan(&withDSR, &avg, &high); err != nil {
		return nil, fmt.Errorf("failed to analyze risk: %w", err)
	}
	if withDSR > 0 {
		stats.RiskAnalysis = model.RiskAnalysis{
			AverageDSR:         round4(avg.Float64),
			HighRiskCustomers:  int(high.Int64),
			HighRiskPercentage: round2(float64(high.Int64) / float64(withDSR) * 100),
		}
	}

	return stats, nil
}

func (s *SQLiteSource) groupCounts(ctx context.Context, query string) (model.CategoryCount, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var counts model.CategoryCount
	for rows.Next() {
		var label string
		var n int
		if err := rows.Scan(&label, &n); err != nil {
			return nil, err
		}
		counts = append(counts, model.CategoryEntry{Label: label, Count: n})
	}
	return counts, rows.Err()
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullableTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
