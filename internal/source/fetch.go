package source

import (
	"context"
	"fmt"

	"github.com/mero2-web/credit-system-ai/internal/common"
	"github.com/mero2-web/credit-system-ai/internal/model"
)

// fetchPageSize is the drain page size; larger than the display default so
// a full drain needs fewer round trips.
const fetchPageSize = 200

// FetchAll drains every page the source will serve for the base query's
// filters. onPage, when non-nil, is invoked after each page with the running
// fetch count and the source's total, which is how the CLI drives its
// progress bar.
func FetchAll(ctx context.Context, src RecordSource, base Query, onPage func(fetched, total int)) ([]model.ApplicationRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	q := base
	q.Page = 1
	if q.PageSize <= 0 {
		q.PageSize = fetchPageSize
	}

	var records []model.ApplicationRecord
	for {
		page, err := src.Applications(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch page %d: %w", q.Page, err)
		}
		records = append(records, page.Records...)
		if onPage != nil {
			onPage(len(records), page.Total)
		}
		if len(page.Records) == 0 || len(records) >= page.Total || q.Page >= page.TotalPages {
			break
		}
		q.Page++
	}

	return records, nil
}

// BuildSnapshot drains the source and attaches whichever aggregates it can
// serve. A missing aggregate degrades to nil rather than failing the whole
// snapshot; the engine tolerates both.
func BuildSnapshot(ctx context.Context, src RecordSource, base Query, onPage func(fetched, total int)) (*model.Snapshot, error) {
	records, err := FetchAll(ctx, src, base, onPage)
	if err != nil {
		return nil, err
	}

	snap := &model.Snapshot{Applications: records}

	if ov, err := src.Overview(ctx); err != nil {
		common.LogDebug("overview unavailable", common.Fields{"error": err.Error()})
	} else {
		snap.Overview = ov
	}

	if stats, err := src.Statistics(ctx); err != nil {
		common.LogDebug("statistics unavailable", common.Fields{"error": err.Error()})
	} else {
		snap.Statistics = stats
	}

	return snap, nil
}
