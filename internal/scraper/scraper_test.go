package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestStaticFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><title>Grand Plaza Hotel</title></head>
			<body><p>Welcome</p><a href="/amenities">Amenities</a><a href="#top">Top</a></body></html>`))
	}))
	defer srv.Close()

	f := NewStaticFetcher(FetcherConfig{})
	defer f.Close()

	content, err := f.Fetch(context.Background(), srv.URL, DefaultFetchOptions())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if content.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d", content.StatusCode)
	}
	if content.Title != "Grand Plaza Hotel" {
		t.Errorf("Title = %q", content.Title)
	}
	if !strings.Contains(content.HTML, "Welcome") {
		t.Errorf("HTML missing body: %q", content.HTML)
	}
	if len(content.Links) != 1 || !strings.HasSuffix(content.Links[0], "/amenities") {
		t.Errorf("Links = %v, fragment links must be skipped and relative links resolved", content.Links)
	}
}

func TestStaticFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewStaticFetcher(FetcherConfig{})
	if _, err := f.Fetch(context.Background(), srv.URL, DefaultFetchOptions()); err == nil {
		t.Error("expected error for 503 response")
	}
}

func TestNewFetcherModes(t *testing.T) {
	f, err := New("static", FetcherConfig{})
	if err != nil {
		t.Fatalf("New(static): %v", err)
	}
	if f.Type() != "static" {
		t.Errorf("Type = %q", f.Type())
	}

	if _, err := New("teleport", FetcherConfig{}); err == nil {
		t.Error("expected error for unknown mode")
	}
}

type erroringFetcher struct{ calls int }

func (f *erroringFetcher) Fetch(context.Context, string, FetchOptions) (PageContent, error) {
	f.calls++
	return PageContent{}, errors.New("connection refused")
}
func (f *erroringFetcher) Close() error { return nil }
func (f *erroringFetcher) Type() string { return "static" }

func TestFetchWithRetryAbortsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &erroringFetcher{}
	_, err := FetchWithRetry(ctx, f, "https://x.example", DefaultFetchOptions())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled in chain", err)
	}
	if f.calls != 1 {
		t.Errorf("calls = %d, cancellation must stop retries", f.calls)
	}
}

func TestFetchWithRetryReturnsFirstSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><head><title>ok</title></head><body></body></html>"))
	}))
	defer srv.Close()

	content, err := FetchWithRetry(context.Background(), NewStaticFetcher(FetcherConfig{}), srv.URL, DefaultFetchOptions())
	if err != nil {
		t.Fatalf("FetchWithRetry: %v", err)
	}
	if content.Title != "ok" {
		t.Errorf("Title = %q", content.Title)
	}
}
