package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBLSBaseURL    = "https://api.bls.gov"
	DefaultMetalsBaseURL = "https://api.metals.dev"
	DefaultFREDBaseURL   = "https://api.stlouisfed.org"
	DefaultCurrency      = "USD"

	DefaultHTTPTimeout  = 30 * time.Second
	DefaultMaxRetries   = 3
	DefaultRetryBackoff = 1 * time.Second

	DefaultDBPort    = 5432
	DefaultDBSSLMode = "prefer"
	DefaultMaxConns  = 10
	DefaultMinConns  = 2

	DefaultSourceConcurrency = 3
)

func (c *CollectorConfig) applyDefaults() {
	// HTTP defaults
	if c.HTTP.Timeout == 0 {
		c.HTTP.Timeout = DefaultHTTPTimeout
	}
	if c.HTTP.MaxRetries == 0 {
		c.HTTP.MaxRetries = DefaultMaxRetries
	}
	if c.HTTP.RetryBackoff == 0 {
		c.HTTP.RetryBackoff = DefaultRetryBackoff
	}

	// Source defaults
	if c.Sources.BLS.BaseURL == "" {
		c.Sources.BLS.BaseURL = DefaultBLSBaseURL
	}
	if c.Sources.Metals.BaseURL == "" {
		c.Sources.Metals.BaseURL = DefaultMetalsBaseURL
	}
	if c.Sources.Metals.Currency == "" {
		c.Sources.Metals.Currency = DefaultCurrency
	}
	if c.Sources.FRED.BaseURL == "" {
		c.Sources.FRED.BaseURL = DefaultFREDBaseURL
	}

	// Database defaults
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	// Run defaults
	if c.Run.SourceConcurrency == 0 {
		c.Run.SourceConcurrency = DefaultSourceConcurrency
	}
}
