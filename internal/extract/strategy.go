// Package extract implements the multi-strategy extraction pipeline: for
// each field group a fixed priority order of strategies is tried until one
// produces a usable result, results are merged into a single hotel.Record,
// and a completeness-based confidence score is attached.
package extract

import (
	"context"
	"errors"

	"github.com/hotelintel/hotelintel/internal/normalize"
	"github.com/hotelintel/hotelintel/pkg/hotel"
)

// Strategy identifiers, also valid values for Config.StrategyOrder.
const (
	StrategyRemote  = "remote"
	StrategyNLP     = "nlp"
	StrategyPattern = "pattern"
)

// ErrStrategyUnavailable marks a strategy that failed its one-time
// construction check (missing credential, model probe failure). Unavailable
// strategies are skipped for the remainder of the run, never retried per
// field group.
var ErrStrategyUnavailable = errors.New("strategy unavailable")

// Result is a per-group, per-strategy extraction outcome. Values may be
// scalars, lists, or nested structures; merge coerces them into the typed
// Record fields.
type Result struct {
	Group    hotel.FieldGroup
	Strategy string
	Fields   map[string]any
}

// Usable reports whether at least one field carries a non-empty value. This
// single definition applies to every group.
func (r Result) Usable() bool {
	for _, v := range r.Fields {
		if !emptyValue(v) {
			return true
		}
	}
	return false
}

// Strategy is one extraction technique behind the uniform per-group
// contract. Extract never returns an error for "nothing found"; it returns
// an unusable Result instead. Errors signal transport or runtime failures
// and make the pipeline fall through to the next strategy.
type Strategy interface {
	// Name returns the strategy identifier.
	Name() string

	// Groups returns the field groups this strategy can extract.
	Groups() []hotel.FieldGroup

	// Extract runs the strategy for one group over the shared sample.
	Extract(ctx context.Context, group hotel.FieldGroup, sample *normalize.Sample) (Result, error)
}

func covers(s Strategy, group hotel.FieldGroup) bool {
	for _, g := range s.Groups() {
		if g == group {
			return true
		}
	}
	return false
}

func emptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []string:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	case []hotel.Restaurant:
		return len(t) == 0
	case []hotel.Place:
		return len(t) == 0
	case []hotel.RoomType:
		return len(t) == 0
	default:
		// Booleans and numbers are values in their own right: a populated
		// parking_available=false still counts as extracted data.
		return false
	}
}
