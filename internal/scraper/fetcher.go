// Package scraper fetches hotel-website pages, statically or through a
// headless browser for JavaScript-rendered sites.
package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/hotelintel/hotelintel/internal/logger"
)

// PageContent is one fetched page.
type PageContent struct {
	URL         string
	HTML        string
	Title       string
	StatusCode  int
	ContentType string
	FetchedAt   time.Time
	Links       []string
}

// FetchOptions controls a single fetch.
type FetchOptions struct {
	UserAgent       string
	Timeout         time.Duration
	WaitForSelector string        // dynamic only
	WaitDuration    time.Duration // extra settle time after load
	Headers         map[string]string
	RetryWait       time.Duration // initial backoff for FetchWithRetry
}

// DefaultFetchOptions returns sensible defaults.
func DefaultFetchOptions() FetchOptions {
	return FetchOptions{
		UserAgent: "hotelintel/1.0 (+https://github.com/hotelintel/hotelintel)",
		Timeout:   30 * time.Second,
		RetryWait: 2 * time.Second,
	}
}

// Fetcher abstracts page fetching strategies.
type Fetcher interface {
	// Fetch retrieves page content from a URL.
	Fetch(ctx context.Context, url string, opts FetchOptions) (PageContent, error)

	// Close releases any resources (browser instances, etc.).
	Close() error

	// Type returns "static" or "dynamic".
	Type() string
}

// FetcherConfig holds common fetcher configuration.
type FetcherConfig struct {
	UserAgent string
	Timeout   time.Duration
}

// DefaultFetcherConfig returns sensible defaults.
func DefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		UserAgent: DefaultFetchOptions().UserAgent,
		Timeout:   30 * time.Second,
	}
}

// New creates a fetcher by mode: "static" or "dynamic".
func New(mode string, cfg FetcherConfig) (Fetcher, error) {
	switch mode {
	case "static", "":
		return NewStaticFetcher(cfg), nil
	case "dynamic":
		return NewDynamicFetcher(cfg)
	default:
		return nil, fmt.Errorf("unknown fetch mode %q", mode)
	}
}

const retryAttempts = 3

// FetchWithRetry wraps Fetch with bounded retries. Hotel sites rate-limit
// aggressively, so each retry doubles the wait.
func FetchWithRetry(ctx context.Context, f Fetcher, url string, opts FetchOptions) (PageContent, error) {
	var lastErr error
	wait := opts.RetryWait
	if wait <= 0 {
		wait = DefaultFetchOptions().RetryWait
	}

	for attempt := 1; attempt <= retryAttempts; attempt++ {
		content, err := f.Fetch(ctx, url, opts)
		if err == nil {
			return content, nil
		}
		lastErr = err
		logger.Warn("fetch attempt failed",
			"url", url,
			"attempt", attempt,
			"attempts", retryAttempts,
			"error", err)

		if attempt == retryAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return PageContent{URL: url}, fmt.Errorf("fetch aborted: %w", ctx.Err())
		case <-time.After(wait):
		}
		wait *= 2
	}

	return PageContent{URL: url}, fmt.Errorf("fetch failed after %d attempts: %w", retryAttempts, lastErr)
}
