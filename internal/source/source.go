package source

import (
	"context"
	"fmt"

	"github.com/tbrandt/econ-data/internal/model"
)

// Batch is the output of one source collection.
type Batch struct {
	// Observations are canonical readings, at most one per (seriesType, date).
	Observations []model.Observation

	// Dropped counts entries discarded per series type (blank values,
	// sentinels, unparsable data points).
	Dropped map[string]int
}

// drop records a discarded entry for a series type.
func (b *Batch) drop(seriesType string) {
	if b.Dropped == nil {
		b.Dropped = make(map[string]int)
	}
	b.Dropped[seriesType]++
}

// Source collects canonical observations from one external provider.
type Source interface {
	// Name identifies the source in logs and the run summary.
	Name() string

	// Collect fetches and adapts the source's current payload. A returned
	// error means the source produced nothing usable this run; the caller
	// skips the source and moves on.
	Collect(ctx context.Context) (Batch, error)
}

// SeriesBinding maps a provider series ID to a canonical series type.
type SeriesBinding struct {
	ID         string // Provider identifier (e.g., "CUUR0000SA0", "DGS10")
	SeriesType string // Canonical tag (e.g., "cpi", "treasury_10y")
}

// ShapeError reports a payload missing its expected structure.
type ShapeError struct {
	Source string
	Detail string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s payload shape: %s", e.Source, e.Detail)
}
