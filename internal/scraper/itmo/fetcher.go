package itmo

import (
	"context"
	"fmt"
	"time"

	"github.com/itmo-abit/planbot/internal/curriculum"
	"github.com/itmo-abit/planbot/internal/logger"
	"github.com/itmo-abit/planbot/internal/metrics"
	"github.com/itmo-abit/planbot/internal/scraper"
)

// Fetcher downloads a program page and converts it into the plan JSON the
// matching curriculum adapter reads.
type Fetcher struct {
	client  *scraper.Client
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewFetcher builds a Fetcher. metrics may be nil.
func NewFetcher(client *scraper.Client, log *logger.Logger, m *metrics.Metrics) *Fetcher {
	return &Fetcher{
		client:  client,
		log:     log.WithModule("itmo"),
		metrics: m,
	}
}

// FetchPlan fetches url and returns the program's plan JSON. The result is
// parsed back through the curriculum adapter before returning, so a rendered
// plan the bot cannot load is reported here instead of at startup.
func (f *Fetcher) FetchPlan(ctx context.Context, program curriculum.ProgramID, url string) ([]byte, error) {
	start := time.Now()
	doc, err := f.client.GetDocument(ctx, url)
	if err != nil {
		f.record(program, "error", start)
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	f.record(program, "ok", start)

	page, err := ParsePage(doc)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	f.log.WithFields(map[string]any{
		"program":     string(program),
		"mandatory":   len(page.Mandatory),
		"selective":   len(page.Selective),
		"practicum":   len(page.Practicum),
		"final":       len(page.Final),
		"facultative": len(page.Facultative),
	}).Infof("parsed %q", page.ProgramName)

	var raw []byte
	switch program {
	case curriculum.ProgramAI:
		if raw, err = page.AIPlanJSON(); err == nil {
			_, err = curriculum.NewAIDocument(raw)
		}
	case curriculum.ProgramAIProduct:
		if raw, err = page.ProductPlanJSON(); err == nil {
			_, err = curriculum.NewProductDocument(raw)
		}
	default:
		return nil, fmt.Errorf("unknown program %q", program)
	}
	if err != nil {
		return nil, fmt.Errorf("render plan for %s: %w", program, err)
	}
	return raw, nil
}

func (f *Fetcher) record(program curriculum.ProgramID, status string, start time.Time) {
	if f.metrics == nil {
		return
	}
	f.metrics.RecordScraperRequest(string(program), status, time.Since(start).Seconds())
}
