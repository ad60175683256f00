package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tbrandt/econ-data/internal/api"
	"github.com/tbrandt/econ-data/internal/config"
	"github.com/tbrandt/econ-data/internal/run"
	"github.com/tbrandt/econ-data/internal/source"
	"github.com/tbrandt/econ-data/internal/store"
	"github.com/tbrandt/econ-data/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/collector.local.yaml", "path to config file")
	dryRun := flag.Bool("dry-run", false, "reconcile and log decisions without writing")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting collector",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"instance_id", cfg.Instance.ID,
		"bls_enabled", cfg.Sources.BLS.Enabled,
		"metals_enabled", cfg.Sources.Metals.Enabled,
		"fred_enabled", cfg.Sources.FRED.Enabled,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to the store
	logger.Info("connecting to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Name,
	)

	gateway, err := store.Connect(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer gateway.Close()

	logger.Info("database connected")

	sources := buildSources(cfg, logger)
	if len(sources) == 0 {
		logger.Error("no sources enabled")
		os.Exit(1)
	}

	coordinator := run.New(run.Config{
		SourceConcurrency: cfg.Run.SourceConcurrency,
		DryRun:            *dryRun,
	}, gateway, sources, logger)

	summary, err := coordinator.Run(ctx)
	if err != nil {
		logger.Error("run interrupted", "error", err, "summary", summary.String())
		os.Exit(1)
	}

	logger.Info("market data update complete", "summary", summary.String())

	// A partial run is a success; only a run where nothing could be collected
	// is worth a failing exit for the scheduler.
	if len(summary.SourcesFailed) == len(sources) {
		logger.Error("every source failed this run")
		os.Exit(1)
	}
}

// buildSources constructs the enabled sources from config.
func buildSources(cfg *config.CollectorConfig, logger *slog.Logger) []source.Source {
	clientOpts := []api.ClientOption{
		api.WithLogger(logger),
		api.WithTimeout(cfg.HTTP.Timeout),
		api.WithRetries(cfg.HTTP.MaxRetries, cfg.HTTP.RetryBackoff),
	}

	var sources []source.Source

	if cfg.Sources.BLS.Enabled {
		client := api.NewClient(cfg.Sources.BLS.BaseURL, "", clientOpts...)
		sources = append(sources, source.NewBLSSource(client, bindings(cfg.Sources.BLS.Series), logger))
	}

	if cfg.Sources.Metals.Enabled {
		client := api.NewClient(cfg.Sources.Metals.BaseURL, cfg.Sources.Metals.APIKey, clientOpts...)
		sources = append(sources, source.NewMetalsSource(client, cfg.Sources.Metals.Metals, cfg.Sources.Metals.Currency, logger))
	}

	if cfg.Sources.FRED.Enabled {
		client := api.NewClient(cfg.Sources.FRED.BaseURL, cfg.Sources.FRED.APIKey, clientOpts...)
		sources = append(sources, source.NewFREDSource(client, bindings(cfg.Sources.FRED.Series), logger))
	}

	return sources
}

// bindings converts config series bindings to source bindings.
func bindings(in []config.SeriesBinding) []source.SeriesBinding {
	out := make([]source.SeriesBinding, 0, len(in))
	for _, b := range in {
		out = append(out, source.SeriesBinding{ID: b.ID, SeriesType: b.SeriesType})
	}
	return out
}
