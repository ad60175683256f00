package source

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/tbrandt/econ-data/internal/api"
	"github.com/tbrandt/econ-data/internal/model"
	"github.com/tbrandt/econ-data/internal/normalize"
)

// BLSSource collects monthly labor-statistics series.
type BLSSource struct {
	client *api.Client
	series []SeriesBinding
	logger *slog.Logger

	// now is swappable for tests; the v1 API is queried for the current year.
	now func() time.Time
}

// NewBLSSource creates a source for the given series bindings.
func NewBLSSource(client *api.Client, series []SeriesBinding, logger *slog.Logger) *BLSSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &BLSSource{
		client: client,
		series: series,
		logger: logger,
		now:    time.Now,
	}
}

// Name implements Source.
func (s *BLSSource) Name() string { return "bls" }

// Collect fetches the current year's data for every bound series.
func (s *BLSSource) Collect(ctx context.Context) (Batch, error) {
	year := strconv.Itoa(s.now().Year())

	var batch Batch
	var errs []error

	for _, b := range s.series {
		points, err := s.client.GetSeriesData(ctx, b.ID, year, year)
		if err != nil {
			s.logger.Warn("bls series fetch failed",
				"series_id", b.ID,
				"series_type", b.SeriesType,
				"err", err,
			)
			errs = append(errs, err)
			continue
		}

		obs, dropped := blsObservations(b.SeriesType, points)
		batch.Observations = append(batch.Observations, obs...)
		for i := 0; i < dropped; i++ {
			batch.drop(b.SeriesType)
		}

		s.logger.Debug("bls series collected",
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

// blsObservations maps one series' data points to observations. Entries with
// blank values are not-yet-published periods and are dropped; repeated periods
// keep the first entry (the API returns newest first). Single-point monthly
// readings collapse high and low onto the value.
func blsObservations(seriesType string, points []api.BLSDataPoint) ([]model.Observation, int) {
	obs := make([]model.Observation, 0, len(points))
	seen := make(map[time.Time]bool, len(points))
	dropped := 0

	for _, p := range points {
		if normalize.IsBlankOrSentinel(p.Value) {
			dropped++
			continue
		}

		date, err := normalize.MonthStart(p.Year, normalize.PeriodCodeToMonth(p.Period))
		if err != nil {
			dropped++
			continue
		}
		if seen[date] {
			continue
		}

		value, err := normalize.ParseDecimal(p.Value)
		if err != nil {
			dropped++
			continue
		}

		raw, _ := json.Marshal(p)
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
