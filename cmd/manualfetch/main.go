// manualfetch runs a single pipeline once from the command line and
// writes CSV snapshots, bypassing the cache. Useful for checking what
// the upstreams currently return.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mksports/aggregator/internal/aggregate"
	"mksports/aggregator/internal/config"
	"mksports/aggregator/internal/export"
)

func main() {
	pipeline := flag.String("pipeline", "scores", "pipeline to run: scores | fixtures | predictions")
	date := flag.String("date", "", "scores date (YYYY-MM-DD, default today)")
	days := flag.Int("days", 0, "fixtures lookahead days (default from config)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	cfg := config.MustLoad()
	agg := aggregate.New(cfg.HTTPTimeout)
	ctx := context.Background()

	switch *pipeline {
	case "scores":
		target := *date
		if target == "" {
			target = agg.Today()
		}
		events := agg.Scores(ctx, target)
		log.Info().Int("count", len(events)).Str("date", target).Msg("Scores fetched")
		if err := export.Scores(cfg.ExportDir, events); err != nil {
			log.Fatal().Err(err).Msg("Failed to export scores")
		}

	case "fixtures":
		daysAhead := *days
		if daysAhead == 0 {
			daysAhead = cfg.DefaultDaysAhead
		}
		fixtures := agg.Fixtures(ctx, daysAhead)
		log.Info().Int("count", len(fixtures)).Int("days_ahead", daysAhead).Msg("Fixtures fetched")
		if err := export.Fixtures(cfg.ExportDir, fixtures); err != nil {
			log.Fatal().Err(err).Msg("Failed to export fixtures")
		}

	case "predictions":
		predictions := agg.Predictions(ctx)
		log.Info().Int("count", len(predictions)).Msg("Predictions fetched")
		if err := export.Predictions(cfg.ExportDir, predictions); err != nil {
			log.Fatal().Err(err).Msg("Failed to export predictions")
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown pipeline %q\n", *pipeline)
		os.Exit(2)
	}
}
