package source

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/tbrandt/econ-data/internal/api"
	"github.com/tbrandt/econ-data/internal/model"
	"github.com/tbrandt/econ-data/internal/normalize"
)

// MetalsSource collects current spot prices for a set of metals. Each metal is
// its own series type; each call yields exactly one observation per metal.
type MetalsSource struct {
	client   *api.Client
	metals   []string
	currency string
	logger   *slog.Logger
}

// NewMetalsSource creates a source for the given metals.
func NewMetalsSource(client *api.Client, metals []string, currency string, logger *slog.Logger) *MetalsSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &MetalsSource{
		client:   client,
		metals:   metals,
		currency: currency,
		logger:   logger,
	}
}

// Name implements Source.
func (s *MetalsSource) Name() string { return "metals" }

// Collect fetches the current spot quote for every configured metal.
func (s *MetalsSource) Collect(ctx context.Context) (Batch, error) {
	var batch Batch
	var errs []error

	for _, metal := range s.metals {
		spot, err := s.client.GetSpot(ctx, metal, s.currency)
		if err != nil {
			s.logger.Warn("metal spot fetch failed", "metal", metal, "err", err)
			errs = append(errs, err)
			continue
		}

		obs, err := metalObservation(metal, spot)
		if err != nil {
			s.logger.Warn("metal spot payload invalid", "metal", metal, "err", err)
			errs = append(errs, err)
			continue
		}

		batch.Observations = append(batch.Observations, obs)
		s.logger.Debug("metal spot collected",
			"metal", metal,
			"date", obs.Date.Format("2006-01-02"),
			"price", obs.Value,
		)
	}

	if len(batch.Observations) == 0 && len(errs) > 0 {
		return Batch{}, errors.Join(errs...)
	}
	return batch, nil
}

// metalObservation maps one spot response to a single observation. The row is
// keyed by the calendar date of the source timestamp; time of day is
// discarded, so intra-day polls revise the same daily row. High and low come
// from the source, not collapsed onto the price.
func metalObservation(metal string, spot *api.MetalSpotResponse) (model.Observation, error) {
	if spot.Timestamp == "" {
		return model.Observation{}, &ShapeError{Source: "metals", Detail: "missing timestamp for " + metal}
	}

	date, err := normalize.DateOnly(spot.Timestamp)
	if err != nil {
		return model.Observation{}, &ShapeError{Source: "metals", Detail: err.Error()}
	}

	raw, _ := json.Marshal(spot)
	return model.Observation{
		SeriesType: metal,
		Date:       date,
		Value:      decimal.NewFromFloat(spot.Rate.Price),
		High:       decimal.NewFromFloat(spot.Rate.High),
		Low:        decimal.NewFromFloat(spot.Rate.Low),
		Raw:        raw,
	}, nil
}
