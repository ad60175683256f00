// Package api provides HTTP clients for the external data sources.
//
// Endpoints:
//   - BLS public API v1: https://api.bls.gov/publicAPI/v1/timeseries/data/
//   - Metals spot API: https://api.metals.dev/v1/metal/spot
//   - FRED: https://api.stlouisfed.org/fred/series/observations
//
// All clients share the same retrying request core; each source keeps its own
// response types mirroring the documented JSON shape.
package api
