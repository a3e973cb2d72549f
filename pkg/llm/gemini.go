package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"
)

const (
	maxAttempts    = 3
	initialBackoff = 500 * time.Millisecond
)

// GeminiClient implements Client against the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini-backed LLM client.
func NewGeminiClient(apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Model returns the configured model name.
func (c *GeminiClient) Model() string {
	return c.model
}

// Complete runs one completion with up to three attempts and exponential
// backoff between them.
func (c *GeminiClient) Complete(ctx context.Context, p Prompt) (string, error) {
	config := &genai.GenerateContentConfig{}
	if p.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: p.System}},
		}
	}
	if p.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(p.Temperature))
	}
	if p.MaxTokens > 0 {
		config.MaxOutputTokens = int32(p.MaxTokens)
	}
	contents := []*genai.Content{
		genai.NewContentFromText(p.User, genai.RoleUser),
	}

	var lastErr error
	backoff := initialBackoff
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			slog.Warn("Retrying LLM call", "attempt", attempt, "model", c.model, "error", lastErr)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
		if err != nil {
			lastErr = fmt.Errorf("Gemini generation failed: %w", err)
			continue
		}
		text := resp.Text()
		if text == "" {
			lastErr = fmt.Errorf("Gemini returned empty response")
			continue
		}
		return text, nil
	}
	return "", fmt.Errorf("LLM call failed after %d attempts: %w", maxAttempts, lastErr)
}
