package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/tbrandt/econ-data/internal/model"
)

// Lookup reads an existing record by its (seriesType, date) key. A nil record
// with a nil error means the key is not stored.
type Lookup interface {
	FindByKey(ctx context.Context, seriesType string, date time.Time) (*model.ExistingRecord, error)
}

// LookupFunc is a function adapter for Lookup.
type LookupFunc func(ctx context.Context, seriesType string, date time.Time) (*model.ExistingRecord, error)

func (f LookupFunc) FindByKey(ctx context.Context, seriesType string, date time.Time) (*model.ExistingRecord, error) {
	return f(ctx, seriesType, date)
}

// Reconcile decides the mutation required for one observation.
//
// Equality is numeric on the decimal values, with no tolerance: sources
// publish fixed-precision figures, so any difference is an intentional
// revision. A revision replaces the whole record (value, high, low, raw), not
// individual fields.
func Reconcile(ctx context.Context, obs model.Observation, lookup Lookup) (model.Decision, error) {
	existing, err := lookup.FindByKey(ctx, obs.SeriesType, obs.Date)
	if err != nil {
		return model.Decision{}, fmt.Errorf("lookup %s: %w", obs.Key(), err)
	}

	if existing == nil {
		return model.Decision{
			Action:      model.ActionInsert,
			Observation: obs,
		}, nil
	}

	if !existing.Value.Equal(obs.Value) {
		return model.Decision{
			Action:      model.ActionUpdate,
			ID:          existing.ID,
			Observation: obs,
		}, nil
	}

	return model.Decision{
		Action:      model.ActionNone,
		Observation: obs,
		Reason:      "unchanged",
	}, nil
}
