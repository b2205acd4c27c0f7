// Package normalize reduces a fetched page to a bounded, low-noise content
// sample shared by every extraction strategy.
package normalize

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/hotelintel/hotelintel/internal/logger"
)

// Defaults for sample construction.
const (
	DefaultCharBudget = 3000
	maxBlocks         = 10
	minBlockLen       = 20
)

// boilerplateMarkers disqualify a text block from the sample. They are the
// tell-tales of navigation chrome rather than descriptive content.
var boilerplateMarkers = []string{
	"menu", "click here", "read more", "view all", "overview",
}

// Sample is the bounded text excerpt handed to every strategy for one page.
// Immutable once built: create one per scrape and share it freely.
type Sample struct {
	SourceURL      string
	Text           string
	NameCandidates []string
	ExtractedAt    time.Time
}

// Normalizer builds content samples from raw page HTML.
type Normalizer struct {
	charBudget int
	now        func() time.Time
}

// Option configures the normalizer.
type Option func(*Normalizer)

// WithCharBudget caps the sample text length. Zero keeps the default.
func WithCharBudget(n int) Option {
	return func(nm *Normalizer) {
		if n > 0 {
			nm.charBudget = n
		}
	}
}

// WithClock overrides the time source, used by tests for reproducible
// samples.
func WithClock(now func() time.Time) Option {
	return func(nm *Normalizer) {
		nm.now = now
	}
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		charBudget: DefaultCharBudget,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize reduces raw page HTML to a Sample. It never fails hard: when no
// qualifying block exists, or the HTML cannot be parsed at all, the sample
// degrades to the raw text truncated to the same budget.
func (n *Normalizer) Normalize(sourceURL, html string) *Sample {
	sample := &Sample{
		SourceURL:   sourceURL,
		ExtractedAt: n.now(),
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		logger.Debug("normalize parse failed, using raw text", "url", sourceURL, "error", err)
		sample.Text = truncate(collapseWhitespace(html), n.charBudget)
		return sample
	}

	sample.NameCandidates = nameCandidates(doc)

	// Drop navigation chrome before sampling so later keyword heuristics do
	// not trip over menu items.
	doc.Find("nav, header, footer, aside, script, style, noscript, iframe, svg").Remove()

	blocks := meaningfulBlocks(doc)
	if len(blocks) == 0 {
		logger.Debug("normalize found no qualifying blocks, using raw text", "url", sourceURL)
		sample.Text = truncate(collapseWhitespace(doc.Text()), n.charBudget)
		return sample
	}

	sample.Text = truncate(strings.Join(blocks, " "), n.charBudget)
	logger.Debug("normalize complete",
		"url", sourceURL,
		"blocks", len(blocks),
		"sample_size", len(sample.Text))
	return sample
}

// meaningfulBlocks collects up to maxBlocks content-bearing text blocks in
// document order. A block qualifies only if it exceeds minBlockLen and
// contains no boilerplate marker.
func meaningfulBlocks(doc *goquery.Document) []string {
	var blocks []string
	seen := make(map[string]bool)

	doc.Find("p, li, h1, h2, h3, h4, td, section, article").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		// Containers with block children are covered by the children
		// themselves; taking their text too would double-count.
		if s.Children().Filter("p, section, article, div").Length() > 0 {
			return true
		}

		text := collapseWhitespace(s.Text())
		if len(text) <= minBlockLen || seen[text] {
			return true
		}

		lower := strings.ToLower(text)
		for _, marker := range boilerplateMarkers {
			if strings.Contains(lower, marker) {
				return true
			}
		}

		seen[text] = true
		blocks = append(blocks, text)
		return len(blocks) < maxBlocks
	})

	return blocks
}

// nameCandidates collects hotel-name candidates in decreasing reliability:
// headings and hotel-specific markup first, then social meta tags, the page
// title, and schema.org markup.
func nameCandidates(doc *goquery.Document) []string {
	var candidates []string
	add := func(s string) {
		s = collapseWhitespace(s)
		if s != "" {
			candidates = append(candidates, s)
		}
	}

	add(doc.Find("h1").First().Text())
	add(doc.Find(`[data-testid*="hotel"]`).First().Text())
	add(doc.Find(".hotel-name, .property-name").First().Text())
	if v, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		add(v)
	}
	if v, ok := doc.Find(`meta[name="twitter:title"]`).Attr("content"); ok {
		add(v)
	}
	add(doc.Find("title").First().Text())
	add(doc.Find(`[itemtype*="Hotel"] [itemprop="name"]`).First().Text())

	return candidates
}

// collapseWhitespace normalizes runs of whitespace to single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate limits s to max bytes without splitting a UTF-8 sequence.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := s[:max]
	for !utf8.ValidString(cut) && len(cut) > 0 {
		cut = cut[:len(cut)-1]
	}
	return cut
}
