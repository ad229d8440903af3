package analytics

import (
	"math/rand"
	"time"

	"github.com/mero2-web/credit-system-ai/internal/model"
)

// Config controls the engine's two ambient inputs. Both are injectable so
// computations stay reproducible under test.
type Config struct {
	// Now supplies the processing time used as the timestamp fallback and
	// the report stamp.
	Now func() time.Time
	// Rand supplies cosmetic stand-in coordinates for the scatter sampler.
	Rand *rand.Rand
}

// DefaultConfig returns production settings: the wall clock and a
// time-seeded randomness source.
func DefaultConfig() Config {
	return Config{
		Now:  time.Now,
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Engine runs every aggregation over one snapshot as a single atomic pure
// computation. It holds no mutable state between invocations, so one engine
// may serve any number of recomputes.
type Engine struct {
	cfg Config
}

// New creates an Engine with production defaults.
func New() *Engine {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an Engine with explicit settings; nil fields fall
// back to the defaults.
func NewWithConfig(cfg Config) *Engine {
	defaults := DefaultConfig()
	if cfg.Now == nil {
		cfg.Now = defaults.Now
	}
	if cfg.Rand == nil {
		cfg.Rand = defaults.Rand
	}
	return &Engine{cfg: cfg}
}

// Report is one complete aggregation pass over a snapshot.
type Report struct {
	GeneratedAt    time.Time           `json:"generated_at"`
	KPIs           KPISet              `json:"kpis"`
	Decisions      []DistributionEntry `json:"decisions"`
	Genders        []DistributionEntry `json:"genders"`
	FinancingTypes []DistributionEntry `json:"financing_types"`
	Matrix         []MatrixRow         `json:"matrix"`
	Trend          []TrendPoint        `json:"trend"`
	Scatter        ScatterSet          `json:"scatter"`
	Statistics     *model.Statistics   `json:"statistics,omitempty"`
}

// Compute aggregates one snapshot into a report. The input is never
// mutated; identical input under an identical Config yields an identical
// report.
func (e *Engine) Compute(snap *model.Snapshot) *Report {
	if snap == nil {
		snap = &model.Snapshot{}
	}
	now := e.cfg.Now()

	var ov model.Overview
	if snap.Overview != nil {
		ov = *snap.Overview
	}

	return &Report{
		GeneratedAt:    now,
		KPIs:           BuildKPIs(snap.Overview),
		Decisions:      NormalizeDistribution(ov.Decisions),
		Genders:        NormalizeDistribution(ov.Genders),
		FinancingTypes: NormalizeDistribution(ov.FinancingTypes),
		Matrix:         BuildRiskMatrix(snap.Applications),
		Trend:          BuildTrend(snap.Applications, now),
		Scatter:        SampleScatter(snap.Applications, e.cfg.Rand),
		Statistics:     snap.Statistics,
	}
}
