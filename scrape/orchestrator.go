package scrape

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"rando-scraper/config"
	"rando-scraper/fetcher"
	"rando-scraper/models"
	"rando-scraper/normalize"
	"rando-scraper/paginator"
	"rando-scraper/parser"
	"rando-scraper/store"
)

// Run statuses recorded with each summary.
const (
	StatusCompleted = "completed"
	StatusAborted   = "aborted"
	StatusFailed    = "failed"
)

// maxConsecutiveTransportFailures is how many fetch failures in a row end
// the run with StatusAborted.
const maxConsecutiveTransportFailures = 5

// Orchestrator drives one scrape run: it walks the blog feed, fetches and
// parses each hike page, normalizes the attributes and stores the record.
type Orchestrator struct {
	fetcher fetcher.Fetcher
	robots  *fetcher.RobotsGate
	parser  *parser.DetailParser
	norm    *normalize.Normalizer
	store   store.Store
	cfg     config.ScraperConfig
}

// NewOrchestrator creates an orchestrator. robots may be nil when robots.txt
// checking is disabled.
func NewOrchestrator(f fetcher.Fetcher, robots *fetcher.RobotsGate, st store.Store, cfg config.ScraperConfig) *Orchestrator {
	return &Orchestrator{
		fetcher: f,
		robots:  robots,
		parser:  parser.NewDetailParser(),
		norm:    normalize.NewNormalizer(),
		store:   st,
		cfg:     cfg,
	}
}

// Run executes one scrape over the configured feed. Pages that fail to fetch
// or parse are skipped and counted; storage errors and repeated transport
// failures end the run early. The returned summary is always non-nil.
func (o *Orchestrator) Run() (*models.RunSummary, error) {
	summary := &models.RunSummary{
		RunID:     uuid.New().String(),
		StartedAt: time.Now(),
	}
	log.Printf("Run %s: scraping %s (max pages %d)\n", summary.RunID, o.cfg.BaseURL, o.cfg.MaxPages)

	pager, err := paginator.New(o.fetcher, o.cfg.BaseURL, o.cfg.MaxPages)
	if err != nil {
		o.finish(summary, nil, StatusFailed)
		return summary, err
	}

	consecutiveFailures := 0
	for pager.Next() {
		pageURL := pager.URL()

		if o.robots != nil && !o.robots.Allowed(pageURL) {
			log.Printf("Skipping %s: disallowed by robots.txt\n", pageURL)
			summary.SkippedRobots++
			continue
		}

		html, err := o.fetcher.Fetch(pageURL)
		if err != nil {
			log.Printf("Warning: Failed to fetch %s: %v\n", pageURL, err)
			summary.SkippedTransport++
			consecutiveFailures++
			if consecutiveFailures >= maxConsecutiveTransportFailures {
				o.finish(summary, pager, StatusAborted)
				return summary, fmt.Errorf("aborted after %d consecutive fetch failures, last: %w",
					consecutiveFailures, err)
			}
			continue
		}
		consecutiveFailures = 0

		page, err := o.parser.Parse(pageURL, html)
		if err != nil {
			log.Printf("Warning: Failed to parse %s: %v\n", pageURL, err)
			summary.SkippedParse++
			continue
		}

		rec := models.HikeRecord{
			URL:       page.URL,
			Title:     page.Title,
			MapURL:    page.MapURL,
			Attrs:     page.Attrs,
			ScrapedAt: time.Now(),
		}
		o.norm.Normalize(&rec)

		if err := o.store.Upsert(rec); err != nil {
			o.finish(summary, pager, StatusFailed)
			return summary, err
		}
		summary.Stored++
		log.Printf("Stored hike: %s\n", rec.Title)

		if o.cfg.MaxHikes > 0 && summary.Stored >= o.cfg.MaxHikes {
			log.Printf("Reached hike limit of %d, stopping\n", o.cfg.MaxHikes)
			break
		}
	}

	if err := pager.Err(); err != nil {
		log.Printf("Warning: Listing feed ended early: %v\n", err)
	}

	o.finish(summary, pager, StatusCompleted)
	log.Printf("Run %s finished: %d pages visited, %d links found, %d stored, %d skipped\n",
		summary.RunID, summary.PagesVisited, summary.URLsFound, summary.Stored, summary.Skipped())
	return summary, nil
}

// finish stamps the summary with its final counters and records it. A
// recording failure is logged, not returned.
func (o *Orchestrator) finish(summary *models.RunSummary, pager *paginator.Paginator, status string) {
	if pager != nil {
		summary.PagesVisited = pager.PagesVisited()
		summary.URLsFound = pager.Found()
	}
	summary.Status = status
	summary.FinishedAt = time.Now()
	if err := o.store.RecordRun(*summary); err != nil {
		log.Printf("Warning: Failed to record run summary: %v\n", err)
	}
}
