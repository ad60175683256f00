package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	yaml := `
instance:
  id: test-collector
sources:
  bls:
    enabled: true
    series:
      - id: CUUR0000SA0
        series_type: cpi
  metals:
    enabled: true
    api_key: metals-key
    metals: [gold, silver]
database:
  host: localhost
  port: 5432
  name: test_db
  user: testuser
  password: testpass
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Instance.ID != "test-collector" {
		t.Errorf("Instance.ID = %q, want %q", cfg.Instance.ID, "test-collector")
	}
	if len(cfg.Sources.BLS.Series) != 1 || cfg.Sources.BLS.Series[0].SeriesType != "cpi" {
		t.Errorf("Sources.BLS.Series = %+v", cfg.Sources.BLS.Series)
	}
	if len(cfg.Sources.Metals.Metals) != 2 {
		t.Errorf("Sources.Metals.Metals = %v, want [gold silver]", cfg.Sources.Metals.Metals)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "localhost")
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_METALS_KEY", "secret123")

	yaml := `
instance:
  id: test-collector
sources:
  metals:
    enabled: true
    api_key: ${TEST_METALS_KEY}
    metals: [gold]
database:
  host: localhost
  name: test_db
  user: testuser
  password: testpass
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Sources.Metals.APIKey != "secret123" {
		t.Errorf("Sources.Metals.APIKey = %q, want %q", cfg.Sources.Metals.APIKey, "secret123")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
instance:
  id: test-collector
database:
  host: localhost
  name: test_db
  user: testuser
  password: testpass
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	// Check defaults were applied
	if cfg.Sources.BLS.BaseURL != DefaultBLSBaseURL {
		t.Errorf("Sources.BLS.BaseURL = %q, want default %q", cfg.Sources.BLS.BaseURL, DefaultBLSBaseURL)
	}
	if cfg.Sources.Metals.Currency != DefaultCurrency {
		t.Errorf("Sources.Metals.Currency = %q, want default %q", cfg.Sources.Metals.Currency, DefaultCurrency)
	}
	if cfg.HTTP.Timeout != DefaultHTTPTimeout {
		t.Errorf("HTTP.Timeout = %v, want default %v", cfg.HTTP.Timeout, DefaultHTTPTimeout)
	}
	if cfg.Database.Port != DefaultDBPort {
		t.Errorf("Database.Port = %d, want default %d", cfg.Database.Port, DefaultDBPort)
	}
	if cfg.Database.MaxConns != DefaultMaxConns {
		t.Errorf("Database.MaxConns = %d, want default %d", cfg.Database.MaxConns, DefaultMaxConns)
	}
	if cfg.Run.SourceConcurrency != DefaultSourceConcurrency {
		t.Errorf("Run.SourceConcurrency = %d, want default %d", cfg.Run.SourceConcurrency, DefaultSourceConcurrency)
	}
}

func TestValidate(t *testing.T) {
	validDB := DBConfig{Host: "localhost", Name: "db", User: "user", Password: "pass", MaxConns: 10, MinConns: 2}

	tests := []struct {
		name    string
		cfg     CollectorConfig
		wantErr string
	}{
		{
			name:    "missing instance id",
			cfg:     CollectorConfig{},
			wantErr: "instance.id is required",
		},
		{
			name: "no sources enabled",
			cfg: CollectorConfig{
				Instance: InstanceConfig{ID: "test"},
			},
			wantErr: "at least one source must be enabled",
		},
		{
			name: "bls enabled without series",
			cfg: CollectorConfig{
				Instance: InstanceConfig{ID: "test"},
				Sources:  SourcesConfig{BLS: BLSConfig{Enabled: true}},
			},
			wantErr: "sources.bls.series must list at least one series when enabled",
		},
		{
			name: "bls binding missing series type",
			cfg: CollectorConfig{
				Instance: InstanceConfig{ID: "test"},
				Sources: SourcesConfig{BLS: BLSConfig{
					Enabled: true,
					Series:  []SeriesBinding{{ID: "CUUR0000SA0"}},
				}},
			},
			wantErr: "sources.bls.series[0].series_type is required",
		},
		{
			name: "metals enabled without key",
			cfg: CollectorConfig{
				Instance: InstanceConfig{ID: "test"},
				Sources: SourcesConfig{Metals: MetalsConfig{
					Enabled: true,
					Metals:  []string{"gold"},
				}},
			},
			wantErr: "sources.metals.api_key is required when enabled",
		},
		{
			name: "fred enabled without key",
			cfg: CollectorConfig{
				Instance: InstanceConfig{ID: "test"},
				Sources: SourcesConfig{FRED: FREDConfig{
					Enabled: true,
					Series:  []SeriesBinding{{ID: "DGS10", SeriesType: "treasury_10y"}},
				}},
			},
			wantErr: "sources.fred.api_key is required when enabled",
		},
		{
			name: "missing database host",
			cfg: CollectorConfig{
				Instance: InstanceConfig{ID: "test"},
				Sources: SourcesConfig{Metals: MetalsConfig{
					Enabled: true, APIKey: "k", Metals: []string{"gold"},
				}},
			},
			wantErr: "database.host is required",
		},
		{
			name: "min_conns exceeds max_conns",
			cfg: CollectorConfig{
				Instance: InstanceConfig{ID: "test"},
				Sources: SourcesConfig{Metals: MetalsConfig{
					Enabled: true, APIKey: "k", Metals: []string{"gold"},
				}},
				Database: DBConfig{Host: "localhost", Name: "db", User: "user", Password: "pass", MaxConns: 5, MinConns: 10},
			},
			wantErr: "database.min_conns (10) cannot exceed max_conns (5)",
		},
		{
			name: "zero source concurrency",
			cfg: CollectorConfig{
				Instance: InstanceConfig{ID: "test"},
				Sources: SourcesConfig{Metals: MetalsConfig{
					Enabled: true, APIKey: "k", Metals: []string{"gold"},
				}},
				Database: validDB,
			},
			wantErr: "run.source_concurrency must be >= 1",
		},
		{
			name: "valid config",
			cfg: CollectorConfig{
				Instance: InstanceConfig{ID: "test"},
				Sources: SourcesConfig{
					BLS: BLSConfig{
						Enabled: true,
						Series:  []SeriesBinding{{ID: "CUUR0000SA0", SeriesType: "cpi"}},
					},
					Metals: MetalsConfig{
						Enabled: true, APIKey: "k", Metals: []string{"gold", "silver"},
					},
				},
				Database: validDB,
				Run:      RunConfig{SourceConcurrency: 3},
			},
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("Validate() expected error containing %q, got nil", tt.wantErr)
				} else if err.Error() != tt.wantErr {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantErr)
				}
			}
		})
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}
