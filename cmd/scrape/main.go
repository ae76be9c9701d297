// Package main fetches the published curricula from abit.itmo.ru and writes
// the plan JSON files the bot serves from DATA_DIR.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/itmo-abit/planbot/internal/config"
	"github.com/itmo-abit/planbot/internal/curriculum"
	"github.com/itmo-abit/planbot/internal/logger"
	"github.com/itmo-abit/planbot/internal/scraper"
	"github.com/itmo-abit/planbot/internal/scraper/itmo"
)

var planFiles = map[curriculum.ProgramID]string{
	curriculum.ProgramAI:        curriculum.AIPlanFile,
	curriculum.ProgramAIProduct: curriculum.AIProductPlanFile,
}

func main() {
	cfg, err := config.LoadScraper()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	log.Info("Fetching curricula")

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.WithError(err).Fatal("Failed to create data directory")
	}

	client := scraper.NewClient(cfg.ScraperTimeout, cfg.ScraperMaxRetries)
	fetcher := itmo.NewFetcher(client, log, nil)

	ctx := context.Background()
	for program, file := range planFiles {
		url, ok := cfg.ProgramURLs[string(program)]
		if !ok {
			log.WithField("program", string(program)).Fatal("No URL configured")
		}

		raw, err := fetcher.FetchPlan(ctx, program, url)
		if err != nil {
			log.WithError(err).WithField("program", string(program)).Fatal("Fetch failed")
		}

		path := filepath.Join(cfg.DataDir, file)
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			log.WithError(err).WithField("path", path).Fatal("Write failed")
		}
		log.WithField("program", string(program)).WithField("path", path).Info("Plan written")
	}

	log.Info("Done")
}
