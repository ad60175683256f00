package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tbrandt/econ-data/internal/model"
)

// ErrNotFound is returned by UpdateValue when no record has the given id.
var ErrNotFound = errors.New("record not found")

// Gateway is the store contract the collector depends on.
type Gateway interface {
	// FindByKey reads the record for a (seriesType, date) key. Returns
	// (nil, nil) when no record exists.
	FindByKey(ctx context.Context, seriesType string, date time.Time) (*model.ExistingRecord, error)

	// Insert stores a new observation and returns its assigned id.
	Insert(ctx context.Context, obs model.Observation) (uuid.UUID, error)

	// UpdateValue replaces value, high, low, and raw payload of an existing
	// record.
	UpdateValue(ctx context.Context, id uuid.UUID, obs model.Observation) error
}
