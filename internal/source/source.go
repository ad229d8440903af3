// Package source provides record-source adapters over the review service's
// data: the SQLite database the service owns and JSON snapshot exports of
// its API. Sources only read; the analytics engine never calls them
// directly — commands drain a source into a model.Snapshot first.
package source

import (
	"context"

	"github.com/mero2-web/credit-system-ai/internal/model"
)

// Paging bounds.
const (
	// DefaultPageSize mirrors the review service's listing page size.
	DefaultPageSize = 15
	// MaxPageSize caps one page so a misconfigured caller cannot drag the
	// whole table through a single query.
	MaxPageSize = 500
)

// Query selects and pages application records.
type Query struct {
	// Search matches customer id or name, case-insensitively.
	Search string
	// Decision filters on the first committed decision: manual override,
	// else model decision, else rule decision. Empty selects everything.
	Decision string
	// Page is 1-based.
	Page     int
	PageSize int
}

// normalized returns a copy with paging bounds applied.
func (q Query) normalized() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// Page is one page of records plus paging metadata, shaped like the review
// service's listing payload.
type Page struct {
	Records    []model.ApplicationRecord `json:"records"`
	Total      int                       `json:"total"`
	Page       int                       `json:"page"`
	PageSize   int                       `json:"page_size"`
	TotalPages int                       `json:"total_pages"`
}

// RecordSource serves application records and the review service's
// precomputed aggregates. Implementations are read-only views over data
// another system owns.
type RecordSource interface {
	Applications(ctx context.Context, q Query) (*Page, error)
	Overview(ctx context.Context) (*model.Overview, error)
	Statistics(ctx context.Context) (*model.Statistics, error)
	Close() error
}

func totalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
