package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mero2-web/credit-system-ai/internal/common"
	"github.com/mero2-web/credit-system-ai/internal/model"
)

// SnapshotSource serves records from a JSON export of the review API. The
// export shape mirrors the API payloads: an applications array plus the
// optional overview and statistics aggregates. Unlike the database, exports
// may embed per-record contribution weights from the scoring service.
type SnapshotSource struct {
	snap model.Snapshot
}

// snapshotFile is the export document. Timestamps arrive as strings because
// the service emits ISO 8601 with and without timezone offsets.
type snapshotFile struct {
	Overview     *model.Overview   `json:"overview"`
	Statistics   *model.Statistics `json:"statistics"`
	Applications []snapshotRecord  `json:"applications"`
}

type snapshotRecord struct {
	model.ApplicationRecord
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	MLUpdatedAt string `json:"ml_updated_at"`
}

// timestampLayouts covers every shape the service has been seen emitting.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// NewSnapshotSource reads a JSON export from disk.
func NewSnapshotSource(path string) (*SnapshotSource, error) {
	if err := validateString(path, "path"); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer func() { _ = f.Close() }()

	src, err := NewSnapshotSourceFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	return src, nil
}

// NewSnapshotSourceFromReader decodes a JSON export from r.
func NewSnapshotSourceFromReader(r io.Reader) (*SnapshotSource, error) {
	var file snapshotFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	snap := model.Snapshot{
		Overview:     file.Overview,
		Statistics:   file.Statistics,
		Applications: make([]model.ApplicationRecord, 0, len(file.Applications)),
	}
	for _, sr := range file.Applications {
		rec := sr.ApplicationRecord
		rec.CreatedAt = parseTimestamp(sr.CreatedAt)
		rec.UpdatedAt = parseTimestamp(firstNonEmpty(sr.UpdatedAt, sr.MLUpdatedAt))
		snap.Applications = append(snap.Applications, rec)
	}

	return &SnapshotSource{snap: snap}, nil
}

// Applications pages the export in document order. Exports come out of the
// API newest first, so no reordering happens here.
func (s *SnapshotSource) Applications(ctx context.Context, q Query) (*Page, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	q = q.normalized()

	matched := make([]model.ApplicationRecord, 0, len(s.snap.Applications))
	for i := range s.snap.Applications {
		if matchesQuery(&s.snap.Applications[i], q) {
			matched = append(matched, s.snap.Applications[i])
		}
	}

	total := len(matched)
	start := (q.Page - 1) * q.PageSize
	if start > total {
		start = total
	}
	end := start + q.PageSize
	if end > total {
		end = total
	}

	return &Page{
		Records:    matched[start:end],
		Total:      total,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: totalPages(total, q.PageSize),
	}, nil
}

// Overview returns the export's embedded aggregate, or ErrNoData when the
// export was taken without one.
func (s *SnapshotSource) Overview(ctx context.Context) (*model.Overview, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if s.snap.Overview == nil {
		return nil, fmt.Errorf("%w: snapshot has no overview", common.ErrNoData)
	}
	return s.snap.Overview, nil
}

// Statistics returns the export's embedded aggregate, or ErrNoData when the
// export was taken without one.
func (s *SnapshotSource) Statistics(ctx context.Context) (*model.Statistics, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if s.snap.Statistics == nil {
		return nil, fmt.Errorf("%w: snapshot has no statistics", common.ErrNoData)
	}
	return s.snap.Statistics, nil
}

// Close implements RecordSource; snapshots hold no resources after decode.
func (s *SnapshotSource) Close() error {
	return nil
}

// matchesQuery applies the same filter semantics as the SQLite adapter:
// substring search over id and name, exact match on the first committed
// decision.
func matchesQuery(r *model.ApplicationRecord, q Query) bool {
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(r.CustomerID), needle) &&
			!strings.Contains(strings.ToLower(r.Name), needle) {
			return false
		}
	}
	if q.Decision != "" && committedDecision(r) != q.Decision {
		return false
	}
	return true
}

// committedDecision is the filter chain the service applies before any
// display policy: manual override, else model decision, else rule decision.
func committedDecision(r *model.ApplicationRecord) string {
	return firstNonEmpty(r.ManualDecision, r.MLFinalDecision, r.Decision)
}

func parseTimestamp(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
