package api

import (
	"context"
	"fmt"
	"net/url"
)

// MetalSpotResponse from GET /v1/metal/spot
type MetalSpotResponse struct {
	Status    string    `json:"status"`
	Metal     string    `json:"metal"`
	Currency  string    `json:"currency"`
	Unit      string    `json:"unit"`
	Timestamp string    `json:"timestamp"` // ISO 8601
	Rate      MetalRate `json:"rate"`
}

// MetalRate is the nested spot quote.
type MetalRate struct {
	Price  float64 `json:"price"`
	Ask    float64 `json:"ask"`
	Bid    float64 `json:"bid"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Change float64 `json:"change"`
}

// metalsStatusOK is the status the metals API returns on success.
const metalsStatusOK = "success"

// GetSpot fetches the current spot price for a metal. The API key goes in the
// query string per the provider's scheme.
func (c *Client) GetSpot(ctx context.Context, metal, currency string) (*MetalSpotResponse, error) {
	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("metal", metal)
	query.Set("currency", currency)

	var resp MetalSpotResponse
	if err := c.get(ctx, "/v1/metal/spot", query, &resp); err != nil {
		return nil, fmt.Errorf("get spot %s: %w", metal, err)
	}

	if resp.Status != metalsStatusOK {
		return nil, fmt.Errorf("metals request for %s failed: status %q", metal, resp.Status)
	}

	return &resp, nil
}
