package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *CollectorConfig) Validate() error {
	if c.Instance.ID == "" {
		return errors.New("instance.id is required")
	}

	if !c.Sources.BLS.Enabled && !c.Sources.Metals.Enabled && !c.Sources.FRED.Enabled {
		return errors.New("at least one source must be enabled")
	}

	if c.Sources.BLS.Enabled {
		if len(c.Sources.BLS.Series) == 0 {
			return errors.New("sources.bls.series must list at least one series when enabled")
		}
		if err := validateBindings("sources.bls", c.Sources.BLS.Series); err != nil {
			return err
		}
	}

	if c.Sources.Metals.Enabled {
		if c.Sources.Metals.APIKey == "" {
			return errors.New("sources.metals.api_key is required when enabled")
		}
		if len(c.Sources.Metals.Metals) == 0 {
			return errors.New("sources.metals.metals must list at least one metal when enabled")
		}
	}

	if c.Sources.FRED.Enabled {
		if c.Sources.FRED.APIKey == "" {
			return errors.New("sources.fred.api_key is required when enabled")
		}
		if len(c.Sources.FRED.Series) == 0 {
			return errors.New("sources.fred.series must list at least one series when enabled")
		}
		if err := validateBindings("sources.fred", c.Sources.FRED.Series); err != nil {
			return err
		}
	}

	if err := c.Database.validate("database"); err != nil {
		return err
	}

	if c.Run.SourceConcurrency < 1 {
		return errors.New("run.source_concurrency must be >= 1")
	}

	return nil
}

func validateBindings(prefix string, bindings []SeriesBinding) error {
	for i, b := range bindings {
		if b.ID == "" {
			return fmt.Errorf("%s.series[%d].id is required", prefix, i)
		}
		if b.SeriesType == "" {
			return fmt.Errorf("%s.series[%d].series_type is required", prefix, i)
		}
	}
	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
