// Package batch runs the fetch-and-extract pipeline over a list of hotel
// sites with polite pacing between requests.
package batch

import (
	"context"
	"time"

	"github.com/hotelintel/hotelintel/internal/extract"
	"github.com/hotelintel/hotelintel/internal/logger"
	"github.com/hotelintel/hotelintel/internal/scraper"
	"github.com/hotelintel/hotelintel/pkg/hotel"
)

// Result is one site's outcome. Either Record is populated or Err explains
// why fetching failed; extraction itself degrades instead of failing.
type Result struct {
	URL             string
	Record          hotel.Record
	Err             error
	FetchDuration   time.Duration
	ExtractDuration time.Duration
}

// Config holds batch runner configuration.
type Config struct {
	// Delay paces requests between sites. Hotel sites are small businesses;
	// hammering them gets the scraper blocked.
	Delay time.Duration

	// FetchOptions applies to every page fetch.
	FetchOptions scraper.FetchOptions

	// HotelName, when set, bypasses name resolution for every site in the
	// batch. Only sensible for single-site runs.
	HotelName string
}

// DefaultConfig returns sensible batch defaults.
func DefaultConfig() Config {
	return Config{
		Delay:        5 * time.Second,
		FetchOptions: scraper.DefaultFetchOptions(),
	}
}

// Runner processes hotel sites one at a time.
type Runner struct {
	fetcher      scraper.Fetcher
	orchestrator *extract.Orchestrator
	config       Config
}

// New creates a batch runner.
func New(fetcher scraper.Fetcher, orch *extract.Orchestrator, cfg Config) *Runner {
	return &Runner{
		fetcher:      fetcher,
		orchestrator: orch,
		config:       cfg,
	}
}

// Run processes the URLs sequentially and streams results. The channel is
// closed when every site has been processed or the context is cancelled.
func (r *Runner) Run(ctx context.Context, urls []string) <-chan Result {
	results := make(chan Result, len(urls))

	go func() {
		defer close(results)
		r.run(ctx, urls, results)
	}()

	return results
}

func (r *Runner) run(ctx context.Context, urls []string, results chan<- Result) {
	logger.Debug("batch starting", "sites", len(urls), "delay", r.config.Delay)

	for i, url := range urls {
		if i > 0 && r.config.Delay > 0 {
			select {
			case <-ctx.Done():
				logger.Info("batch cancelled", "processed", i, "total", len(urls))
				return
			case <-time.After(r.config.Delay):
			}
		}
		if ctx.Err() != nil {
			logger.Info("batch cancelled", "processed", i, "total", len(urls))
			return
		}

		results <- r.processSite(ctx, url)
	}
}

func (r *Runner) processSite(ctx context.Context, url string) Result {
	result := Result{URL: url}

	fetchStart := time.Now()
	page, err := scraper.FetchWithRetry(ctx, r.fetcher, url, r.config.FetchOptions)
	result.FetchDuration = time.Since(fetchStart)
	if err != nil {
		logger.Error("site fetch failed", "url", url, "error", err)
		result.Err = err
		return result
	}

	extractStart := time.Now()
	record, err := r.orchestrator.ExtractPageNamed(ctx, url, r.config.HotelName, page.HTML)
	result.ExtractDuration = time.Since(extractStart)
	if err != nil {
		result.Err = err
		return result
	}

	result.Record = record
	logger.Info("site processed",
		"url", url,
		"hotel", record.HotelName,
		"confidence", record.ConfidenceScore,
		"fetch_ms", result.FetchDuration.Milliseconds(),
		"extract_ms", result.ExtractDuration.Milliseconds())
	return result
}
