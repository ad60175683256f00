package source

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/tbrandt/econ-data/internal/api"
	"github.com/tbrandt/econ-data/internal/model"
	"github.com/tbrandt/econ-data/internal/normalize"
)

// FREDSource collects macroeconomic series already keyed by calendar date.
type FREDSource struct {
	client *api.Client
	series []SeriesBinding
	logger *slog.Logger
}

// NewFREDSource creates a source for the given series bindings.
func NewFREDSource(client *api.Client, series []SeriesBinding, logger *slog.Logger) *FREDSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FREDSource{
		client: client,
		series: series,
		logger: logger,
	}
}

// Name implements Source.
func (s *FREDSource) Name() string { return "fred" }

// Collect fetches observations for every bound series.
func (s *FREDSource) Collect(ctx context.Context) (Batch, error) {
	var batch Batch
	var errs []error

	for _, b := range s.series {
		observations, err := s.client.GetObservations(ctx, b.ID)
		if err != nil {
			s.logger.Warn("fred series fetch failed",
				"series_id", b.ID,
				"series_type", b.SeriesType,
				"err", err,
			)
			errs = append(errs, err)
			continue
		}

		obs, dropped := s.fredObservations(b.SeriesType, observations)
		batch.Observations = append(batch.Observations, obs...)
		for i := 0; i < dropped; i++ {
			batch.drop(b.SeriesType)
		}

		s.logger.Debug("fred series collected",
			"series_type", b.SeriesType,
			"observations", len(obs),
			"dropped", dropped,
		)
	}

	if len(batch.Observations) == 0 && len(errs) > 0 {
		return Batch{}, errors.Join(errs...)
	}
	return batch, nil
}

// fredObservations maps date/value pairs to observations. The "." sentinel and
// unparsable values are dropped with a diagnostic; one bad entry never aborts
// the batch. Repeated dates keep the first entry.
func (s *FREDSource) fredObservations(seriesType string, observations []api.FREDObservation) ([]model.Observation, int) {
	obs := make([]model.Observation, 0, len(observations))
	seen := make(map[time.Time]bool, len(observations))
	dropped := 0

	for _, o := range observations {
		if normalize.IsBlankOrSentinel(o.Value) {
			dropped++
			continue
		}

		date, err := normalize.DateOnly(o.Date)
		if err != nil {
			s.logger.Debug("fred observation has bad date",
				"series_type", seriesType,
				"date", o.Date,
			)
			dropped++
			continue
		}
		if seen[date] {
			continue
		}

		value, err := normalize.ParseDecimal(o.Value)
		if err != nil {
			s.logger.Debug("fred observation unparsable",
				"series_type", seriesType,
				"date", o.Date,
				"value", o.Value,
			)
			dropped++
			continue
		}

		raw, _ := json.Marshal(o)
		seen[date] = true
		obs = append(obs, model.Observation{
			SeriesType: seriesType,
			Date:       date,
			Value:      value,
			High:       value,
			Low:        value,
			Raw:        raw,
		})
	}

	return obs, dropped
}
