// Package llm defines the language-model collaborator used by the synthesis
// and dream pipelines, plus the JSON decoding helpers their prompts rely on.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Prompt is one completion request. System carries the role framing, User
// the task payload.
type Prompt struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Client is the completion interface the pipelines depend on. Adapters own
// retries; callers treat any returned error as terminal.
type Client interface {
	Complete(ctx context.Context, p Prompt) (string, error)
}

// ExtractJSON strips markdown code fences from a model response, returning
// the raw JSON payload. Plain JSON passes through unchanged.
func ExtractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	return s
}

// DecodeJSON extracts and unmarshals a model response into target.
func DecodeJSON(raw string, target interface{}) error {
	payload := ExtractJSON(raw)
	if payload == "" {
		return fmt.Errorf("empty model response")
	}
	if err := json.Unmarshal([]byte(payload), target); err != nil {
		return fmt.Errorf("failed to decode model response: %w", err)
	}
	return nil
}
