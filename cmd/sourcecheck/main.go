// sourcecheck collects from every enabled source and prints the resulting
// observations without touching the database. Useful for verifying API keys
// and series bindings before scheduling the collector.
//
// Usage: go run ./cmd/sourcecheck --config configs/collector.local.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tbrandt/econ-data/internal/api"
	"github.com/tbrandt/econ-data/internal/config"
	"github.com/tbrandt/econ-data/internal/source"
)

func main() {
	configPath := flag.String("config", "configs/collector.example.yaml", "path to config file")
	verbose := flag.Bool("verbose", false, "print raw payloads too")
	flag.Parse()

	// Setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Load config
	cfg, err := config.LoadWithDefaults(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	failed := 0
	for _, src := range buildSources(cfg, logger) {
		fmt.Printf("== %s\n", src.Name())

		batch, err := src.Collect(ctx)
		if err != nil {
			fmt.Printf("   FAILED: %v\n", err)
			failed++
			continue
		}

		for _, obs := range batch.Observations {
			fmt.Printf("   %-16s %s  value=%s high=%s low=%s\n",
				obs.SeriesType,
				obs.Date.Format(time.DateOnly),
				obs.Value, obs.High, obs.Low,
			)
			if *verbose {
				fmt.Printf("   raw: %s\n", obs.Raw)
			}
		}
		for seriesType, n := range batch.Dropped {
			fmt.Printf("   %-16s dropped=%d\n", seriesType, n)
		}
	}

	if failed > 0 {
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
