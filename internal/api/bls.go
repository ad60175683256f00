package api

import (
	"context"
	"fmt"
	"strings"
)

// blsRequest is the POST body for the BLS v1 timeseries endpoint.
type blsRequest struct {
	SeriesID  []string `json:"seriesid"`
	StartYear string   `json:"startyear"`
	EndYear   string   `json:"endyear"`
}

// BLSResponse from POST /publicAPI/v1/timeseries/data/
type BLSResponse struct {
	Status       string     `json:"status"`
	ResponseTime int        `json:"responseTime"`
	Message      []string   `json:"message"`
	Results      BLSResults `json:"Results"`
}

// BLSResults holds the requested series.
type BLSResults struct {
	Series []BLSSeries `json:"series"`
}

// BLSSeries is one series' data points.
type BLSSeries struct {
	SeriesID string         `json:"seriesID"`
	Data     []BLSDataPoint `json:"data"`
}

// BLSDataPoint is one period's reading. Values are strings; a not-yet-published
// period comes through as an empty value.
type BLSDataPoint struct {
	Year       string        `json:"year"`
	Period     string        `json:"period"` // "M01".."M12" for monthly series
	PeriodName string        `json:"periodName"`
	Value      string        `json:"value"`
	Footnotes  []BLSFootnote `json:"footnotes"`
}

// BLSFootnote annotates a data point (e.g., preliminary).
type BLSFootnote struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

// blsStatusOK is the status the BLS API returns on success.
const blsStatusOK = "REQUEST_SUCCEEDED"

// GetSeriesData fetches one series' data points for the given year range.
// The v1 API requires no key.
func (c *Client) GetSeriesData(ctx context.Context, seriesID, startYear, endYear string) ([]BLSDataPoint, error) {
	req := blsRequest{
		SeriesID:  []string{seriesID},
		StartYear: startYear,
		EndYear:   endYear,
	}

	var resp BLSResponse
	if err := c.postJSON(ctx, "/publicAPI/v1/timeseries/data/", req, &resp); err != nil {
		return nil, fmt.Errorf("get bls series %s: %w", seriesID, err)
	}

	if resp.Status != blsStatusOK {
		return nil, fmt.Errorf("bls request for %s failed: %s (%s)",
			seriesID, resp.Status, strings.Join(resp.Message, "; "))
	}

	if len(resp.Results.Series) == 0 {
		return nil, fmt.Errorf("bls response for %s has no series", seriesID)
	}

	return resp.Results.Series[0].Data, nil
}
