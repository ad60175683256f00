package run

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tbrandt/econ-data/internal/model"
	"github.com/tbrandt/econ-data/internal/reconcile"
	"github.com/tbrandt/econ-data/internal/source"
	"github.com/tbrandt/econ-data/internal/store"
)

// Config holds coordinator settings.
type Config struct {
	// SourceConcurrency bounds concurrent source fetches (default: 3).
	SourceConcurrency int

	// DryRun reconciles and logs decisions without writing to the store.
	DryRun bool
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{SourceConcurrency: 3}
}

// Coordinator executes collection runs.
type Coordinator struct {
	cfg     Config
	gateway store.Gateway
	sources []source.Source
	logger  *slog.Logger
}

// New creates a Coordinator.
func New(cfg Config, gateway store.Gateway, sources []source.Source, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.SourceConcurrency < 1 {
		cfg.SourceConcurrency = DefaultConfig().SourceConcurrency
	}
	return &Coordinator{
		cfg:     cfg,
		gateway: gateway,
		sources: sources,
		logger:  logger,
	}
}

// Run executes one collection run and returns its summary. The error is
// non-nil only when the run was cancelled; source and store failures are
// recorded in the summary instead.
func (c *Coordinator) Run(ctx context.Context) (*model.RunSummary, error) {
	summary := model.NewRunSummary()
	start := time.Now()

	batches := c.fetchAll(ctx, summary)

	// Reconcile sequentially so all operations on a key stay ordered.
	for i, batch := range batches {
		if batch == nil {
			continue
		}

		for seriesType, n := range batch.Dropped {
			summary.AddSkipped(seriesType, n)
		}

		for _, obs := range batch.Observations {
			if err := ctx.Err(); err != nil {
				// Committed writes stand; the next run picks up the rest.
				summary.Finished = time.Now()
				c.logger.Warn("run aborted", "source", c.sources[i].Name(), "err", err)
				return summary, err
			}
			c.reconcileOne(ctx, obs, summary)
		}
	}

	summary.Finished = time.Now()
	c.logger.Info("run complete",
		"summary", summary.String(),
		"duration", time.Since(start),
	)
	return summary, nil
}

// fetchAll collects every source with bounded concurrency. Failed sources are
// recorded on the summary, never propagated: one source must not block the
// others. The returned slice is indexed like c.sources, nil for failures.
func (c *Coordinator) fetchAll(ctx context.Context, summary *model.RunSummary) []*source.Batch {
	batches := make([]*source.Batch, len(c.sources))

	g := &errgroup.Group{}
	g.SetLimit(c.cfg.SourceConcurrency)

	for i, src := range c.sources {
		g.Go(func() error {
			start := time.Now()
			batch, err := src.Collect(ctx)
			if err != nil {
				c.logger.Error("source skipped for this run",
					"source", src.Name(),
					"err", err,
				)
				batches[i] = nil
				return nil
			}

			c.logger.Info("source collected",
				"source", src.Name(),
				"observations", len(batch.Observations),
				"duration", time.Since(start),
			)
			batches[i] = &batch
			return nil
		})
	}
	g.Wait()

	for i, batch := range batches {
		if batch == nil {
			summary.SourcesFailed = append(summary.SourcesFailed, c.sources[i].Name())
		}
	}
	return batches
}

// reconcileOne decides and applies the mutation for one observation. Lookup
// and write failures count as skipped for that series and do not stop the run.
func (c *Coordinator) reconcileOne(ctx context.Context, obs model.Observation, summary *model.RunSummary) {
	decision, err := reconcile.Reconcile(ctx, obs, c.gateway)
	if err != nil {
		c.logger.Error("lookup failed", "key", obs.Key(), "err", err)
		summary.AddSkipped(obs.SeriesType, 1)
		return
	}

	if c.cfg.DryRun {
		c.logger.Info("dry run decision",
			"key", obs.Key(),
			"action", decision.Action.String(),
			"value", obs.Value,
		)
		summary.Add(obs.SeriesType, decision.Action)
		return
	}

	switch decision.Action {
	case model.ActionInsert:
		id, err := c.gateway.Insert(ctx, decision.Observation)
		if err != nil {
			c.logger.Error("insert failed", "key", obs.Key(), "err", err)
			summary.AddSkipped(obs.SeriesType, 1)
			return
		}
		c.logger.Info("inserted",
			"key", obs.Key(),
			"value", obs.Value,
			"id", id,
		)

	case model.ActionUpdate:
		if err := c.gateway.UpdateValue(ctx, decision.ID, decision.Observation); err != nil {
			c.logger.Error("update failed", "key", obs.Key(), "err", err)
			summary.AddSkipped(obs.SeriesType, 1)
			return
		}
		c.logger.Info("updated",
			"key", obs.Key(),
			"value", obs.Value,
		)

	default:
		c.logger.Debug("unchanged", "key", obs.Key())
	}

	summary.Add(obs.SeriesType, decision.Action)
}
