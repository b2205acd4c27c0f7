package extract

import (
	"context"

	"github.com/hotelintel/hotelintel/internal/logger"
	"github.com/hotelintel/hotelintel/internal/normalize"
	"github.com/hotelintel/hotelintel/pkg/hotel"
)

// Status is the terminal state of a field-group pipeline.
type Status string

const (
	// StatusUsable means some strategy produced at least one non-empty field.
	StatusUsable Status = "usable"
	// StatusExhausted means every applicable strategy missed or failed.
	StatusExhausted Status = "exhausted"
)

// Outcome is the terminal result of running one group's pipeline.
type Outcome struct {
	Group  hotel.FieldGroup
	Status Status
	Result Result
}

// Pipeline runs the configured strategies for a single field group in
// priority order and stops at the first usable result. A strategy error or
// an unusable result both mean "fall through to the next strategy"; only
// the final outcome distinguishes usable from exhausted.
type Pipeline struct {
	group      hotel.FieldGroup
	strategies []Strategy
}

// NewPipeline builds the pipeline for one group, keeping only the
// strategies that cover it, in the order given.
func NewPipeline(group hotel.FieldGroup, strategies []Strategy) *Pipeline {
	applicable := make([]Strategy, 0, len(strategies))
	for _, s := range strategies {
		if covers(s, group) {
			applicable = append(applicable, s)
		}
	}
	return &Pipeline{group: group, strategies: applicable}
}

// Run executes the fallback chain over the shared sample. Context
// cancellation between strategies short-circuits to exhausted so callers
// keep whatever groups already finished.
func (p *Pipeline) Run(ctx context.Context, sample *normalize.Sample) Outcome {
	for _, s := range p.strategies {
		if ctx.Err() != nil {
			logger.Debug("pipeline cancelled", "group", p.group, "error", ctx.Err())
			break
		}

		result, err := s.Extract(ctx, p.group, sample)
		if err != nil {
			logger.Debug("strategy failed, falling through",
				"group", p.group,
				"strategy", s.Name(),
				"error", err)
			continue
		}
		if !result.Usable() {
			logger.Debug("strategy produced no fields, falling through",
				"group", p.group,
				"strategy", s.Name())
			continue
		}

		logger.Debug("group extracted",
			"group", p.group,
			"strategy", s.Name(),
			"fields", len(result.Fields))
		return Outcome{Group: p.group, Status: StatusUsable, Result: result}
	}

	return Outcome{Group: p.group, Status: StatusExhausted}
}
