package extract

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/hotelintel/hotelintel/internal/llm"
	"github.com/hotelintel/hotelintel/internal/logger"
	"github.com/hotelintel/hotelintel/internal/normalize"
	"github.com/hotelintel/hotelintel/pkg/hotel"
)

// RemoteExtractor sends the normalized sample plus a group-specific prompt
// to a language-model endpoint and expects a JSON object scoped to that
// group's fields. Malformed responses are a miss, never an error: fallback
// to the next strategy proceeds.
type RemoteExtractor struct {
	provider    llm.Provider
	maxTokens   int
	temperature float64
}

// NewRemoteExtractor creates a remote strategy backed by the given provider.
// Whether a provider is configured at all is decided once at orchestrator
// construction, not per call.
func NewRemoteExtractor(provider llm.Provider) *RemoteExtractor {
	return &RemoteExtractor{
		provider:    provider,
		maxTokens:   1000,
		temperature: 0.1,
	}
}

// Name returns the strategy identifier.
func (e *RemoteExtractor) Name() string { return StrategyRemote }

// Groups returns every field group: the remote model covers all of them.
func (e *RemoteExtractor) Groups() []hotel.FieldGroup { return hotel.AllGroups() }

// Extract performs one provider call for the group.
func (e *RemoteExtractor) Extract(ctx context.Context, group hotel.FieldGroup, sample *normalize.Sample) (Result, error) {
	result := Result{Group: group, Strategy: e.Name()}

	resp, err := e.provider.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt},
			{Role: llm.RoleUser, Content: buildGroupPrompt(group, sample.Text)},
		},
		MaxTokens:   e.maxTokens,
		Temperature: e.temperature,
	})
	if err != nil {
		return result, err
	}

	fields, ok := parseGroupJSON(resp.Content, group)
	if !ok {
		logger.Debug("remote response not parseable as JSON",
			"group", group,
			"provider", e.provider.Name(),
			"response_size", len(resp.Content))
		return result, nil
	}

	result.Fields = fields
	logger.Debug("remote extraction complete",
		"group", group,
		"provider", e.provider.Name(),
		"fields", len(fields),
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens)
	return result, nil
}

// parseGroupJSON decodes a model response into the group's field map. It
// tolerates markdown code fences around the JSON object and discards any
// field the group does not own, plus empty values.
func parseGroupJSON(content string, group hotel.FieldGroup) (map[string]any, bool) {
	cleaned := stripCodeFences(content)

	var raw map[string]any
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, false
	}

	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		if group.Owns(k) && !emptyValue(v) {
			fields[k] = v
		}
	}
	return fields, true
}

// stripCodeFences removes a ```json ... ``` or ``` ... ``` wrapper.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
