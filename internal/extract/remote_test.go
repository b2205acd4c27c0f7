package extract

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/hotelintel/hotelintel/internal/llm"
	"github.com/hotelintel/hotelintel/pkg/hotel"
)

// fakeProvider returns a canned completion and records the last request. The
// mutex matters because the orchestrator calls providers from concurrent
// group pipelines.
type fakeProvider struct {
	mu      sync.Mutex
	content string
	err     error
	lastReq llm.CompletionRequest
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(_ context.Context, req llm.CompletionRequest) (llm.CompletionResponse, error) {
	f.mu.Lock()
	f.lastReq = req
	f.mu.Unlock()
	if f.err != nil {
		return llm.CompletionResponse{}, f.err
	}
	return llm.CompletionResponse{Content: f.content}, nil
}

func TestRemoteExtractParsesGroupJSON(t *testing.T) {
	p := &fakeProvider{content: `{"phone": "555-123-4567", "city": "Springfield", "room_types": ["ignored"]}`}
	e := NewRemoteExtractor(p)

	result, err := e.Extract(context.Background(), hotel.GroupContact, sampleOf("page text"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got := result.Fields["phone"]; got != "555-123-4567" {
		t.Errorf("phone = %v", got)
	}
	if got := result.Fields["city"]; got != "Springfield" {
		t.Errorf("city = %v", got)
	}
	if _, leaked := result.Fields["room_types"]; leaked {
		t.Error("field from another group must be discarded")
	}
}

func TestRemoteExtractPromptContainsSample(t *testing.T) {
	p := &fakeProvider{content: `{}`}
	e := NewRemoteExtractor(p)

	if _, err := e.Extract(context.Background(), hotel.GroupPolicies, sampleOf("Check-in at 3 PM")); err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if len(p.lastReq.Messages) != 2 {
		t.Fatalf("messages = %d, want system + user", len(p.lastReq.Messages))
	}
	if p.lastReq.Messages[0].Role != llm.RoleSystem {
		t.Errorf("first message role = %v", p.lastReq.Messages[0].Role)
	}
	user := p.lastReq.Messages[1].Content
	if !strings.Contains(user, "Check-in at 3 PM") {
		t.Errorf("user prompt missing sample text: %q", user)
	}
	if !strings.Contains(user, "checkin_time") {
		t.Errorf("user prompt missing group field hints: %q", user)
	}
}

func TestRemoteExtractCodeFencedJSON(t *testing.T) {
	p := &fakeProvider{content: "```json\n{\"phone\": \"555-123-4567\"}\n```"}
	e := NewRemoteExtractor(p)

	result, err := e.Extract(context.Background(), hotel.GroupContact, sampleOf("page text"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got := result.Fields["phone"]; got != "555-123-4567" {
		t.Errorf("phone = %v, fenced JSON not handled", got)
	}
}

func TestRemoteExtractBadJSONIsMissNotError(t *testing.T) {
	p := &fakeProvider{content: "I could not find any contact details on this page."}
	e := NewRemoteExtractor(p)

	result, err := e.Extract(context.Background(), hotel.GroupContact, sampleOf("page text"))
	if err != nil {
		t.Fatalf("malformed response must not error: %v", err)
	}
	if result.Usable() {
		t.Errorf("malformed response must be a miss, got %v", result.Fields)
	}
}

func TestRemoteExtractEmptyValuesDiscarded(t *testing.T) {
	p := &fakeProvider{content: `{"phone": "", "email": null, "address": "1 Main St"}`}
	e := NewRemoteExtractor(p)

	result, err := e.Extract(context.Background(), hotel.GroupContact, sampleOf("page text"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if _, ok := result.Fields["phone"]; ok {
		t.Error("empty string value must be discarded")
	}
	if _, ok := result.Fields["email"]; ok {
		t.Error("null value must be discarded")
	}
	if got := result.Fields["address"]; got != "1 Main St" {
		t.Errorf("address = %v", got)
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"a": 1}`, `{"a": 1}`},
		{"```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"  ```json\n{\"a\": 1}\n```  ", `{"a": 1}`},
	}
	for _, tt := range tests {
		if got := stripCodeFences(tt.in); got != tt.want {
			t.Errorf("stripCodeFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
