package api

import (
	"context"
	"fmt"
	"net/url"
)

// FREDResponse from GET /fred/series/observations
type FREDResponse struct {
	RealtimeStart string            `json:"realtime_start"`
	RealtimeEnd   string            `json:"realtime_end"`
	Count         int               `json:"count"`
	Observations  []FREDObservation `json:"observations"`
}

// FREDObservation is one date/value pair. A "." value marks a period with no
// reading published.
type FREDObservation struct {
	RealtimeStart string `json:"realtime_start"`
	RealtimeEnd   string `json:"realtime_end"`
	Date          string `json:"date"` // "2006-01-02"
	Value         string `json:"value"`
}

// GetObservations fetches all observations for a FRED series.
func (c *Client) GetObservations(ctx context.Context, seriesID string) ([]FREDObservation, error) {
	query := url.Values{}
	query.Set("series_id", seriesID)
	query.Set("api_key", c.apiKey)
	query.Set("file_type", "json")

	var resp FREDResponse
	if err := c.get(ctx, "/fred/series/observations", query, &resp); err != nil {
		return nil, fmt.Errorf("get fred series %s: %w", seriesID, err)
	}

	return resp.Observations, nil
}
