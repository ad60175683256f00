package config

import "time"

// CollectorConfig is the root configuration for a collector run. All
// credentials and per-source switches live here; nothing in the collector
// reads ambient process state.
type CollectorConfig struct {
	Instance InstanceConfig `yaml:"instance"`
	HTTP     HTTPConfig     `yaml:"http"`
	Sources  SourcesConfig  `yaml:"sources"`
	Database DBConfig       `yaml:"database"`
	Run      RunConfig      `yaml:"run"`
}

// InstanceConfig identifies this collector.
type InstanceConfig struct {
	ID string `yaml:"id"`
}

// HTTPConfig holds shared transport settings for all source clients.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	MaxRetries   int           `yaml:"max_retries"`
	RetryBackoff time.Duration `yaml:"retry_backoff"`
}

// SourcesConfig enables and parameterizes each data source.
type SourcesConfig struct {
	BLS    BLSConfig    `yaml:"bls"`
	Metals MetalsConfig `yaml:"metals"`
	FRED   FREDConfig   `yaml:"fred"`
}

// SeriesBinding maps one provider series ID to a canonical series type.
type SeriesBinding struct {
	ID         string `yaml:"id"`
	SeriesType string `yaml:"series_type"`
}

// BLSConfig holds labor-statistics source settings. The public v1 API
// requires no key.
type BLSConfig struct {
	Enabled bool            `yaml:"enabled"`
	BaseURL string          `yaml:"base_url"`
	Series  []SeriesBinding `yaml:"series"`
}

// MetalsConfig holds metals spot source settings.
type MetalsConfig struct {
	Enabled  bool     `yaml:"enabled"`
	BaseURL  string   `yaml:"base_url"`
	APIKey   string   `yaml:"api_key"`
	Currency string   `yaml:"currency"`
	Metals   []string `yaml:"metals"`
}

// FREDConfig holds macro-series source settings.
type FREDConfig struct {
	Enabled bool            `yaml:"enabled"`
	BaseURL string          `yaml:"base_url"`
	APIKey  string          `yaml:"api_key"`
	Series  []SeriesBinding `yaml:"series"`
}

// DBConfig holds the canonical store connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// RunConfig holds run coordinator settings.
type RunConfig struct {
	// SourceConcurrency bounds how many sources fetch at once. Reconciliation
	// itself is always sequential.
	SourceConcurrency int `yaml:"source_concurrency"`
}
