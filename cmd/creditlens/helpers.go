package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/mero2-web/credit-system-ai/internal/analytics"
	"github.com/mero2-web/credit-system-ai/internal/config"
	"github.com/mero2-web/credit-system-ai/internal/model"
	"github.com/mero2-web/credit-system-ai/internal/source"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/viper"
)

// defaultDatabase is the review service's conventional database filename.
const defaultDatabase = "credit_system.db"

// Output formats shared by every rendering command.
const (
	formatTable = "table"
	formatJSON  = "json"
)

// openSource resolves the configured record source. A snapshot path wins
// over a database path so exported data can be inspected without a copy of
// the live database.
func openSource() (source.RecordSource, error) {
	if snapPath := viper.GetString("source.snapshot"); snapPath != "" {
		snapPath = config.ExpandPath(snapPath)

		src, err := source.NewSnapshotSource(snapPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot: %w", err)
		}
		slog.Debug("Using snapshot source", "path", snapPath)
		return src, nil
	}

	dbPath := viper.GetString("source.database")
	if dbPath == "" {
		dbPath = defaultDatabase
	}
	dbPath = config.ExpandPath(dbPath)

	src, err := source.NewSQLiteSource(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	slog.Debug("Using database source", "path", dbPath)
	return src, nil
}

// closeSource closes a record source, logging rather than failing.
func closeSource(src source.RecordSource) {
	if err := src.Close(); err != nil {
		slog.Error("Failed to close record source", "error", err)
	}
}

// loadReport drains the configured source and runs one full aggregation
// pass over the result.
func loadReport(ctx context.Context, src source.RecordSource) (*analytics.Report, error) {
	snap, err := loadSnapshot(ctx, src)
	if err != nil {
		return nil, err
	}
	return analytics.New().Compute(snap), nil
}

// loadSnapshot drains every application page plus the source's aggregates,
// driving a progress bar on stderr so JSON output on stdout stays clean.
func loadSnapshot(ctx context.Context, src source.RecordSource) (*model.Snapshot, error) {
	progress := &fetchProgress{}
	snap, err := source.BuildSnapshot(ctx, src, source.Query{}, progress.observe)
	progress.finish()
	if err != nil {
		return nil, fmt.Errorf("failed to load applications: %w", err)
	}
	return snap, nil
}

// fetchProgress adapts the drain callback to a terminal progress bar. The
// bar is created lazily on the first page, once the source has reported a
// total worth tracking.
type fetchProgress struct {
	bar *progressbar.ProgressBar
}

func (p *fetchProgress) observe(fetched, total int) {
	if p.bar == nil {
		if total <= 0 {
			return
		}
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("[cyan][bold]Loading applications...[reset]"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				if _, err := fmt.Fprintln(os.Stderr); err != nil {
					slog.Warn("Failed to write newline after progress bar", "error", err)
				}
			}),
		)
	}

	if err := p.bar.Set(fetched); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
}

func (p *fetchProgress) finish() {
	if p.bar == nil {
		return
	}
	if err := p.bar.Finish(); err != nil {
		slog.Warn("Failed to finish progress bar", "error", err)
	}
}

// printJSON writes a payload as indented JSON to stdout for programmatic
// consumers.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
