package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tbrandt/econ-data/internal/model"
)

// memLookup is an in-memory Lookup keyed by (seriesType, date).
type memLookup struct {
	records map[string]*model.ExistingRecord
	queried []string
	err     error
}

func (m *memLookup) FindByKey(ctx context.Context, seriesType string, date time.Time) (*model.ExistingRecord, error) {
	key := seriesType + "@" + date.Format(time.DateOnly)
	m.queried = append(m.queried, key)
	if m.err != nil {
		return nil, m.err
	}
	return m.records[key], nil
}

func obsWith(seriesType, date, value string) model.Observation {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return model.Observation{
		SeriesType: seriesType,
		Date:       d.UTC(),
		Value:      decimal.RequireFromString(value),
		High:       decimal.RequireFromString(value),
		Low:        decimal.RequireFromString(value),
	}
}

func TestReconcile_InsertWhenAbsent(t *testing.T) {
	lookup := &memLookup{records: map[string]*model.ExistingRecord{}}
	obs := obsWith("cpi", "2024-03-01", "300.0")

	d, err := Reconcile(context.Background(), obs, lookup)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	if d.Action != model.ActionInsert {
		t.Errorf("Action = %v, want insert", d.Action)
	}
	if !d.Observation.Value.Equal(obs.Value) {
		t.Errorf("Observation.Value = %s, want %s", d.Observation.Value, obs.Value)
	}
}

func TestReconcile_UpdateOnRevision(t *testing.T) {
	id := uuid.New()
	lookup := &memLookup{records: map[string]*model.ExistingRecord{
		"cpi@2024-03-01": {
			ID:         id,
			SeriesType: "cpi",
			Value:      decimal.RequireFromString("300.0"),
		},
	}}
	obs := obsWith("cpi", "2024-03-01", "301.5")

	d, err := Reconcile(context.Background(), obs, lookup)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	if d.Action != model.ActionUpdate {
		t.Errorf("Action = %v, want update", d.Action)
	}
	if d.ID != id {
		t.Errorf("ID = %v, want existing id %v", d.ID, id)
	}
	if d.Observation.Value.String() != "301.5" {
		t.Errorf("Observation.Value = %s, want 301.5", d.Observation.Value)
	}
}

func TestReconcile_NoOpWhenUnchanged(t *testing.T) {
	lookup := &memLookup{records: map[string]*model.ExistingRecord{
		"cpi@2024-03-01": {
			ID:    uuid.New(),
			Value: decimal.RequireFromString("300.0"),
		},
	}}

	d, err := Reconcile(context.Background(), obsWith("cpi", "2024-03-01", "300.0"), lookup)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	if d.Action != model.ActionNone {
		t.Errorf("Action = %v, want noop", d.Action)
	}
	if d.Reason != "unchanged" {
		t.Errorf("Reason = %q, want unchanged", d.Reason)
	}
}

func TestReconcile_EqualityIsNumeric(t *testing.T) {
	// 300.0 and 300.00 are the same reading, not a revision.
	lookup := &memLookup{records: map[string]*model.ExistingRecord{
		"cpi@2024-03-01": {
			ID:    uuid.New(),
			Value: decimal.RequireFromString("300.00"),
		},
	}}

	d, err := Reconcile(context.Background(), obsWith("cpi", "2024-03-01", "300.0"), lookup)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if d.Action != model.ActionNone {
		t.Errorf("Action = %v, want noop for numerically equal values", d.Action)
	}
}

func TestReconcile_KeyIsolation(t *testing.T) {
	// Same date, different series: gold never reads silver's record.
	lookup := &memLookup{records: map[string]*model.ExistingRecord{
		"silver@2024-06-01": {
			ID:    uuid.New(),
			Value: decimal.RequireFromString("30.1"),
		},
	}}

	d, err := Reconcile(context.Background(), obsWith("gold", "2024-06-01", "2332.4"), lookup)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	if d.Action != model.ActionInsert {
		t.Errorf("Action = %v, want insert (silver record must not collide)", d.Action)
	}
	if len(lookup.queried) != 1 || lookup.queried[0] != "gold@2024-06-01" {
		t.Errorf("queried = %v, want only gold@2024-06-01", lookup.queried)
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	records := map[string]*model.ExistingRecord{}
	lookup := &memLookup{records: records}
	obs := obsWith("cpi", "2024-03-01", "300.0")

	first, err := Reconcile(context.Background(), obs, lookup)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if first.Action != model.ActionInsert {
		t.Fatalf("first Action = %v, want insert", first.Action)
	}

	// Apply the insert, reconcile the same observation again.
	records["cpi@2024-03-01"] = &model.ExistingRecord{
		ID:    uuid.New(),
		Value: obs.Value,
	}

	second, err := Reconcile(context.Background(), obs, lookup)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if second.Action != model.ActionNone {
		t.Errorf("second Action = %v, want noop (never a duplicate insert)", second.Action)
	}
}

func TestReconcile_LookupError(t *testing.T) {
	wantErr := errors.New("connection reset")
	lookup := &memLookup{err: wantErr}

	_, err := Reconcile(context.Background(), obsWith("cpi", "2024-03-01", "300.0"), lookup)
	if !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want wrapped %v", err, wantErr)
	}
}

func TestLookupFunc(t *testing.T) {
	called := false
	fn := LookupFunc(func(ctx context.Context, seriesType string, date time.Time) (*model.ExistingRecord, error) {
		called = true
		return nil, nil
	})

	if _, err := fn.FindByKey(context.Background(), "cpi", time.Now()); err != nil {
		t.Fatalf("FindByKey() error = %v", err)
	}
	if !called {
		t.Error("adapter did not call underlying func")
	}
}
