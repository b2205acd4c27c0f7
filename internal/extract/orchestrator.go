package extract

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hotelintel/hotelintel/internal/llm"
	"github.com/hotelintel/hotelintel/internal/logger"
	"github.com/hotelintel/hotelintel/internal/normalize"
	"github.com/hotelintel/hotelintel/pkg/hotel"
)

// Orchestrator coordinates one extraction run per page: it normalizes the
// HTML once, fans the field-group pipelines out concurrently over the shared
// sample, merges the outcomes into a single Record, and scores it.
type Orchestrator struct {
	cfg        Config
	strategies []Strategy
	nlp        *EntityExtractor
	normalizer *normalize.Normalizer
	scorer     *hotel.Scorer
	now        func() time.Time
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*orchestratorParams)

type orchestratorParams struct {
	provider llm.Provider
	now      func() time.Time
}

// WithProvider supplies the language-model provider backing the remote
// strategy. Without one the remote strategy is skipped even when enabled.
func WithProvider(p llm.Provider) OrchestratorOption {
	return func(op *orchestratorParams) { op.provider = p }
}

// WithClock overrides the time source, used by tests for reproducible
// timestamps.
func WithClock(now func() time.Time) OrchestratorOption {
	return func(op *orchestratorParams) { op.now = now }
}

// NewOrchestrator builds an orchestrator for the given config. Strategy
// availability is decided here, exactly once: a strategy that cannot be
// constructed is logged and left out, it is never probed again per call.
func NewOrchestrator(cfg Config, opts ...OrchestratorOption) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	params := orchestratorParams{now: time.Now}
	for _, opt := range opts {
		opt(&params)
	}

	o := &Orchestrator{
		cfg:        cfg,
		normalizer: normalize.New(normalize.WithCharBudget(cfg.SampleCharBudget)),
		scorer:     hotel.NewScorer(cfg.Weights, cfg.Saturation),
		now:        params.now,
	}

	available := make(map[string]Strategy, 3)

	if cfg.UseRemote && params.provider != nil {
		available[StrategyRemote] = NewRemoteExtractor(params.provider)
		logger.Debug("remote strategy enabled", "provider", params.provider.Name())
	}

	if cfg.UseLocalNLP {
		nlp, err := NewEntityExtractor()
		if err != nil {
			logger.Warn("local NLP strategy unavailable", "error", err)
		} else {
			available[StrategyNLP] = nlp
			o.nlp = nlp
		}
	}

	available[StrategyPattern] = NewPatternExtractor()

	for _, name := range cfg.StrategyOrder {
		if s, ok := available[name]; ok {
			o.strategies = append(o.strategies, s)
		}
	}
	if len(o.strategies) == 0 {
		return nil, fmt.Errorf("no extraction strategy available")
	}

	return o, nil
}

// Strategies returns the names of the active strategies in priority order.
func (o *Orchestrator) Strategies() []string {
	names := make([]string, len(o.strategies))
	for i, s := range o.strategies {
		names[i] = s.Name()
	}
	return names
}

// ExtractPage runs the full pipeline over one page's HTML and returns the
// merged record. Partial results survive timeouts and individual group
// failures; the error return covers only context cancellation before any
// work could complete.
func (o *Orchestrator) ExtractPage(ctx context.Context, sourceURL, html string) (hotel.Record, error) {
	return o.extract(ctx, sourceURL, "", html)
}

// ExtractPageNamed is ExtractPage with a caller-supplied hotel name that
// bypasses name resolution.
func (o *Orchestrator) ExtractPageNamed(ctx context.Context, sourceURL, suppliedName, html string) (hotel.Record, error) {
	return o.extract(ctx, sourceURL, suppliedName, html)
}

func (o *Orchestrator) extract(ctx context.Context, sourceURL, suppliedName, html string) (hotel.Record, error) {
	if o.cfg.PageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.PageTimeout)
		defer cancel()
	}

	rec := hotel.NewRecord(sourceURL)
	if err := ctx.Err(); err != nil {
		return rec, fmt.Errorf("extraction aborted: %w", err)
	}

	sample := o.normalizer.Normalize(sourceURL, html)
	rec.HotelName = o.resolveName(sample, suppliedName)

	groups := hotel.AllGroups()
	outcomes := make(chan Outcome, len(groups))

	g, gctx := errgroup.WithContext(ctx)
	for _, group := range groups {
		pipeline := NewPipeline(group, o.strategies)
		g.Go(func() error {
			defer func() {
				// A panicking strategy must not take the whole page down;
				// the group simply exhausts.
				if r := recover(); r != nil {
					logger.Error("group pipeline panicked", "group", pipeline.group, "panic", r)
					outcomes <- Outcome{Group: pipeline.group, Status: StatusExhausted}
				}
			}()
			outcomes <- pipeline.Run(gctx, sample)
			return nil
		})
	}

	// Pipelines never return errors, so Wait only synchronizes.
	_ = g.Wait()
	close(outcomes)

	usable := 0
	for out := range outcomes {
		if out.Status == StatusUsable {
			usable++
		}
		mergeOutcome(&rec, out)
	}

	rec.EnsureDefaults()
	rec.ScrapedAt = o.now().UTC().Format(time.RFC3339)
	rec.ConfidenceScore = o.scorer.Score(&rec)

	logger.Info("page extraction complete",
		"url", sourceURL,
		"groups_usable", usable,
		"groups_total", len(groups),
		"confidence", rec.ConfidenceScore)
	return rec, nil
}

// resolveName picks the hotel name: a caller-supplied name wins outright,
// then the first plausible candidate from the page markup, optionally
// refined by entity recognition to strip site chrome, falling back to the
// unknown-name sentinel.
func (o *Orchestrator) resolveName(sample *normalize.Sample, suppliedName string) string {
	if suppliedName != "" {
		return suppliedName
	}
	for _, candidate := range sample.NameCandidates {
		if len(candidate) <= 3 {
			continue
		}
		if o.nlp != nil {
			if refined := o.nlp.RefineName(candidate); len(refined) > 3 {
				return refined
			}
		}
		return candidate
	}
	return hotel.UnknownHotelName
}
