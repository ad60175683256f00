package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Canonical Observation
// -----------------------------------------------------------------------------

// Observation is one canonical reading for a series on a date, produced by a
// source adapter. Observations are value objects: a revised reading is a new
// Observation, never an in-place mutation.
type Observation struct {
	SeriesType string          // Logical series tag (e.g., "cpi", "gold")
	Date       time.Time       // Period the value represents (UTC midnight)
	Value      decimal.Decimal // Primary scalar reading
	High       decimal.Decimal // Period high; equals Value for single-point sources
	Low        decimal.Decimal // Period low; equals Value for single-point sources
	Raw        json.RawMessage // Source's original record, retained for audit
}

// Key returns the (seriesType, date) identity of the observation.
func (o Observation) Key() string {
	return o.SeriesType + "@" + o.Date.Format(time.DateOnly)
}

// ExistingRecord mirrors a stored Observation plus its store identity.
// The collector never constructs IDs; it only passes them back to the store.
type ExistingRecord struct {
	ID         uuid.UUID
	SeriesType string
	Date       time.Time
	Value      decimal.Decimal
	High       decimal.Decimal
	Low        decimal.Decimal
	Raw        json.RawMessage
}

// -----------------------------------------------------------------------------
// Reconciliation
// -----------------------------------------------------------------------------

// Action is the mutation a reconciliation decision requires.
type Action int

const (
	// ActionNone leaves the store untouched.
	ActionNone Action = iota
	// ActionInsert inserts a new record.
	ActionInsert
	// ActionUpdate replaces an existing record's value/high/low/raw.
	ActionUpdate
)

func (a Action) String() string {
	switch a {
	case ActionInsert:
		return "insert"
	case ActionUpdate:
		return "update"
	default:
		return "noop"
	}
}

// Decision is the outcome of reconciling one Observation against the store.
// ID is set only for ActionUpdate; Reason is set only for ActionNone.
type Decision struct {
	Action      Action
	ID          uuid.UUID
	Observation Observation
	Reason      string
}

// -----------------------------------------------------------------------------
// Run Summary
// -----------------------------------------------------------------------------

// Counts tallies reconciliation outcomes for one series type.
type Counts struct {
	Inserted  int
	Updated   int
	Unchanged int
	Skipped   int // Dropped observations and failed store calls
}

// RunSummary reports the outcome of one collection run.
type RunSummary struct {
	Series        map[string]Counts
	SourcesFailed []string
	Started       time.Time
	Finished      time.Time
}

// NewRunSummary returns an empty summary with the start time set.
func NewRunSummary() *RunSummary {
	return &RunSummary{
		Series:  make(map[string]Counts),
		Started: time.Now(),
	}
}

// Add merges one observation outcome into the per-series tally.
func (s *RunSummary) Add(seriesType string, action Action) {
	c := s.Series[seriesType]
	switch action {
	case ActionInsert:
		c.Inserted++
	case ActionUpdate:
		c.Updated++
	default:
		c.Unchanged++
	}
	s.Series[seriesType] = c
}

// AddSkipped records observations that produced no store mutation.
func (s *RunSummary) AddSkipped(seriesType string, n int) {
	if n == 0 {
		return
	}
	c := s.Series[seriesType]
	c.Skipped += n
	s.Series[seriesType] = c
}

// Total sums counts across all series.
func (s *RunSummary) Total() Counts {
	var t Counts
	for _, c := range s.Series {
		t.Inserted += c.Inserted
		t.Updated += c.Updated
		t.Unchanged += c.Unchanged
		t.Skipped += c.Skipped
	}
	return t
}

// String renders a one-line summary for logs.
func (s *RunSummary) String() string {
	t := s.Total()
	return fmt.Sprintf("series=%d inserted=%d updated=%d unchanged=%d skipped=%d failed_sources=%d",
		len(s.Series), t.Inserted, t.Updated, t.Unchanged, t.Skipped, len(s.SourcesFailed))
}
