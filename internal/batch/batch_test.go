package batch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hotelintel/hotelintel/internal/extract"
	"github.com/hotelintel/hotelintel/internal/scraper"
)

type cannedFetcher struct {
	pages map[string]string
}

func (f *cannedFetcher) Fetch(_ context.Context, url string, _ scraper.FetchOptions) (scraper.PageContent, error) {
	html, ok := f.pages[url]
	if !ok {
		return scraper.PageContent{URL: url}, errors.New("connection refused")
	}
	return scraper.PageContent{URL: url, HTML: html, StatusCode: 200}, nil
}
func (f *cannedFetcher) Close() error { return nil }
func (f *cannedFetcher) Type() string { return "static" }

func testOrchestrator(t *testing.T) *extract.Orchestrator {
	t.Helper()
	cfg := extract.DefaultConfig()
	cfg.UseRemote = false
	cfg.UseLocalNLP = false
	o, err := extract.NewOrchestrator(cfg)
	if err != nil {
		t.Fatalf("NewOrchestrator: %v", err)
	}
	return o
}

const goodPage = `<html><head><title>Grand Plaza Hotel</title></head><body>
<h1>Grand Plaza Hotel</h1>
<p>Call us at 555-123-4567 to book your stay at our downtown property.</p>
</body></html>`

func TestRunnerProcessesAllSites(t *testing.T) {
	fetcher := &cannedFetcher{pages: map[string]string{
		"https://a.example": goodPage,
	}}

	cfg := DefaultConfig()
	cfg.Delay = 0
	cfg.FetchOptions.RetryWait = time.Millisecond
	runner := New(fetcher, testOrchestrator(t), cfg)

	var results []Result
	for r := range runner.Run(context.Background(), []string{"https://a.example", "https://down.example"}) {
		results = append(results, r)
	}

	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}

	good := results[0]
	if good.Err != nil {
		t.Fatalf("first site errored: %v", good.Err)
	}
	if good.Record.HotelName != "Grand Plaza Hotel" {
		t.Errorf("HotelName = %q", good.Record.HotelName)
	}
	if good.Record.Phone != "555-123-4567" {
		t.Errorf("Phone = %q", good.Record.Phone)
	}

	// The unreachable site reports its fetch error but does not stop the run.
	if results[1].Err == nil {
		t.Error("second site should carry a fetch error")
	}
	if results[1].Record.HotelName != "" {
		t.Errorf("failed site should have no record, got %+v", results[1].Record)
	}
}

func TestRunnerStopsOnCancel(t *testing.T) {
	fetcher := &cannedFetcher{pages: map[string]string{}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := DefaultConfig()
	cfg.Delay = 0
	runner := New(fetcher, testOrchestrator(t), cfg)

	count := 0
	for range runner.Run(ctx, []string{"https://a.example", "https://b.example"}) {
		count++
	}
	if count != 0 {
		t.Errorf("processed %d sites after cancellation, want 0", count)
	}
}
