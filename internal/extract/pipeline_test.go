package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/hotelintel/hotelintel/internal/normalize"
	"github.com/hotelintel/hotelintel/pkg/hotel"
)

// fakeStrategy is a scripted strategy for pipeline tests.
type fakeStrategy struct {
	name   string
	groups []hotel.FieldGroup
	fields map[string]any
	err    error
	calls  int
}

func (f *fakeStrategy) Name() string              { return f.name }
func (f *fakeStrategy) Groups() []hotel.FieldGroup { return f.groups }

func (f *fakeStrategy) Extract(_ context.Context, group hotel.FieldGroup, _ *normalize.Sample) (Result, error) {
	f.calls++
	if f.err != nil {
		return Result{Group: group, Strategy: f.name}, f.err
	}
	return Result{Group: group, Strategy: f.name, Fields: f.fields}, nil
}

func allGroupsFake(name string, fields map[string]any, err error) *fakeStrategy {
	return &fakeStrategy{name: name, groups: hotel.AllGroups(), fields: fields, err: err}
}

func TestPipelineFirstUsableWins(t *testing.T) {
	first := allGroupsFake("remote", map[string]any{"phone": "555-123-4567"}, nil)
	second := allGroupsFake("pattern", map[string]any{"phone": "999-999-9999"}, nil)

	p := NewPipeline(hotel.GroupContact, []Strategy{first, second})
	out := p.Run(context.Background(), sampleOf("irrelevant"))

	if out.Status != StatusUsable {
		t.Fatalf("status = %v, want usable", out.Status)
	}
	if out.Result.Strategy != "remote" {
		t.Errorf("winning strategy = %q, want remote", out.Result.Strategy)
	}
	if second.calls != 0 {
		t.Errorf("lower-priority strategy was called %d times, want 0", second.calls)
	}
}

func TestPipelineFallsThroughOnError(t *testing.T) {
	failing := allGroupsFake("remote", nil, errors.New("api timeout"))
	fallback := allGroupsFake("pattern", map[string]any{"phone": "555-123-4567"}, nil)

	p := NewPipeline(hotel.GroupContact, []Strategy{failing, fallback})
	out := p.Run(context.Background(), sampleOf("irrelevant"))

	if out.Status != StatusUsable {
		t.Fatalf("status = %v, want usable after fallback", out.Status)
	}
	if out.Result.Strategy != "pattern" {
		t.Errorf("winning strategy = %q, want pattern", out.Result.Strategy)
	}
}

func TestPipelineFallsThroughOnUnusableResult(t *testing.T) {
	emptyHanded := allGroupsFake("remote", map[string]any{"phone": ""}, nil)
	fallback := allGroupsFake("pattern", map[string]any{"phone": "555-123-4567"}, nil)

	p := NewPipeline(hotel.GroupContact, []Strategy{emptyHanded, fallback})
	out := p.Run(context.Background(), sampleOf("irrelevant"))

	if out.Result.Strategy != "pattern" {
		t.Errorf("winning strategy = %q, want pattern", out.Result.Strategy)
	}
}

func TestPipelineExhausted(t *testing.T) {
	a := allGroupsFake("remote", nil, errors.New("down"))
	b := allGroupsFake("pattern", map[string]any{}, nil)

	p := NewPipeline(hotel.GroupContact, []Strategy{a, b})
	out := p.Run(context.Background(), sampleOf("irrelevant"))

	if out.Status != StatusExhausted {
		t.Errorf("status = %v, want exhausted", out.Status)
	}
	if a.calls != 1 || b.calls != 1 {
		t.Errorf("every strategy should run exactly once: %d, %d", a.calls, b.calls)
	}
}

func TestPipelineSkipsNonCoveringStrategies(t *testing.T) {
	contactOnly := &fakeStrategy{
		name:   "nlp",
		groups: []hotel.FieldGroup{hotel.GroupContact},
		fields: map[string]any{"address": "1 Main St"},
	}

	p := NewPipeline(hotel.GroupRooms, []Strategy{contactOnly})
	out := p.Run(context.Background(), sampleOf("irrelevant"))

	if out.Status != StatusExhausted {
		t.Errorf("status = %v, want exhausted", out.Status)
	}
	if contactOnly.calls != 0 {
		t.Errorf("non-covering strategy was called %d times", contactOnly.calls)
	}
}

func TestPipelineStopsOnCancelledContext(t *testing.T) {
	s := allGroupsFake("pattern", map[string]any{"phone": "555-123-4567"}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPipeline(hotel.GroupContact, []Strategy{s})
	out := p.Run(ctx, sampleOf("irrelevant"))

	if out.Status != StatusExhausted {
		t.Errorf("status = %v, want exhausted on cancelled context", out.Status)
	}
	if s.calls != 0 {
		t.Errorf("strategy ran %d times after cancellation", s.calls)
	}
}
