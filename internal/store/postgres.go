package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tbrandt/econ-data/internal/config"
	"github.com/tbrandt/econ-data/internal/model"
	"github.com/tbrandt/econ-data/internal/normalize"
)

// Postgres implements Gateway on a pgx connection pool.
type Postgres struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// Connect creates a connection pool and verifies it with a ping.
func Connect(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) (*Postgres, error) {
	if logger == nil {
		logger = slog.Default()
	}

	poolCfg, err := pgxpool.ParseConfig(BuildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConns = int32(cfg.MaxConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Postgres{pool: pool, logger: logger}, nil
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}

// Ping verifies the connection is healthy.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// FindByKey implements Gateway. Numeric columns come back as text so the
// decimal representation survives the round trip exactly.
func (p *Postgres) FindByKey(ctx context.Context, seriesType string, date time.Time) (*model.ExistingRecord, error) {
	const q = `
		SELECT id::text, series_type, date, average::text, high::text, low::text, raw_data
		FROM market_data
		WHERE series_type = $1 AND date = $2
	`

	var (
		idStr          string
		rec            model.ExistingRecord
		avg, high, low string
	)
	err := p.pool.QueryRow(ctx, q, seriesType, date).Scan(
		&idStr, &rec.SeriesType, &rec.Date, &avg, &high, &low, &rec.Raw,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find %s@%s: %w", seriesType, date.Format(time.DateOnly), err)
	}

	if rec.ID, err = uuid.Parse(idStr); err != nil {
		return nil, fmt.Errorf("parse record id %q: %w", idStr, err)
	}
	if rec.Value, err = normalize.ParseDecimal(avg); err != nil {
		return nil, fmt.Errorf("stored average for %s: %w", seriesType, err)
	}
	if rec.High, err = normalize.ParseDecimal(high); err != nil {
		return nil, fmt.Errorf("stored high for %s: %w", seriesType, err)
	}
	if rec.Low, err = normalize.ParseDecimal(low); err != nil {
		return nil, fmt.Errorf("stored low for %s: %w", seriesType, err)
	}

	return &rec, nil
}

// Insert implements Gateway. A unique-constraint violation here means an
// external writer touched the key mid-run, which the collector treats as a
// store write failure for that observation.
func (p *Postgres) Insert(ctx context.Context, obs model.Observation) (uuid.UUID, error) {
	const q = `
		INSERT INTO market_data (series_type, date, average, high, low, raw_data)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id::text
	`

	var idStr string
	err := p.pool.QueryRow(ctx, q,
		obs.SeriesType,
		obs.Date,
		obs.Value.String(),
		obs.High.String(),
		obs.Low.String(),
		[]byte(obs.Raw),
	).Scan(&idStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert %s: %w", obs.Key(), err)
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse inserted id %q: %w", idStr, err)
	}

	p.logger.Debug("inserted record", "key", obs.Key(), "id", id)
	return id, nil
}

// UpdateValue implements Gateway. The whole value side of the record is
// replaced; series_type and date never change.
func (p *Postgres) UpdateValue(ctx context.Context, id uuid.UUID, obs model.Observation) error {
	const q = `
		UPDATE market_data
		SET average = $1, high = $2, low = $3, raw_data = $4
		WHERE id = $5::uuid
	`

	ct, err := p.pool.Exec(ctx, q,
		obs.Value.String(),
		obs.High.String(),
		obs.Low.String(),
		[]byte(obs.Raw),
		id.String(),
	)
	if err != nil {
		return fmt.Errorf("update %s: %w", obs.Key(), err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("update %s (id %s): %w", obs.Key(), id, ErrNotFound)
	}

	p.logger.Debug("updated record", "key", obs.Key(), "id", id, "value", obs.Value)
	return nil
}
