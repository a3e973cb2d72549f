// Package synthesis implements the memory-synthesis pipeline (threshold
// gate, event collection, LLM synthesis, atomic persist) and the
// knowledge-synthesis pipeline it can hand off to.
package synthesis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/pkg/embedding"
	"github.com/hejijunhao/elephantasm/pkg/llm"
	"github.com/hejijunhao/elephantasm/pkg/models"
	"github.com/hejijunhao/elephantasm/pkg/services"
)

// tokensPerEvent is the flat token estimate per event in the accumulation
// score.
const tokensPerEvent = 100

// Skip reasons reported by the threshold gate.
const (
	SkipNoEvents       = "no_events"
	SkipBelowThreshold = "below_threshold"
)

// GateResult is the threshold gate's verdict.
type GateResult struct {
	Triggered  bool      `json:"synthesis_triggered"`
	SkipReason string    `json:"skip_reason,omitempty"`
	Score      float64   `json:"score"`
	Threshold  float64   `json:"threshold"`
	EventCount int       `json:"event_count"`
	Baseline   time.Time `json:"baseline"`
}

// Result summarizes one pipeline run.
type Result struct {
	Gate     GateResult `json:"gate"`
	MemoryID string     `json:"memory_id,omitempty"`
}

// synthesized is the typed shape of the LLM synthesis response.
type synthesized struct {
	Summary    string  `json:"summary"`
	Content    string  `json:"content"`
	Importance float64 `json:"importance"`
	Confidence float64 `json:"confidence"`
}

// Pipeline runs memory synthesis for one anima inside a caller-provided
// owner session.
type Pipeline struct {
	llm      llm.Client
	embedder embedding.Embedder
	hook     *AutoKnowledgeHook
}

// NewPipeline creates a synthesis pipeline. The hook may be nil when
// background jobs are disabled.
func NewPipeline(llmClient llm.Client, embedder embedding.Embedder, hook *AutoKnowledgeHook) *Pipeline {
	return &Pipeline{llm: llmClient, embedder: embedder, hook: hook}
}

// CheckThreshold evaluates the accumulation gate without running synthesis.
// A no_events skip advances last_synthesis_check_at so idle time never
// accumulates.
func (p *Pipeline) CheckThreshold(ctx context.Context, client *ent.Client, animaID string, now time.Time) (*GateResult, error) {
	animaSvc := services.NewAnimaService(client)
	cfgSvc := services.NewConfigService(client)

	a, err := animaSvc.Get(ctx, animaID)
	if err != nil {
		return nil, err
	}
	cfg, err := cfgSvc.GetSynthesisConfig(ctx, animaID)
	if err != nil {
		return nil, err
	}

	baseline := a.CreatedAt
	if cfg.LastSynthesisCheckAt != nil && cfg.LastSynthesisCheckAt.After(baseline) {
		baseline = *cfg.LastSynthesisCheckAt
	}
	latest, err := services.NewMemoryService(client).Latest(ctx, animaID)
	if err != nil {
		return nil, err
	}
	if latest != nil && latest.CreatedAt.After(baseline) {
		baseline = latest.CreatedAt
	}

	events, err := services.NewEventService(client).ListSince(ctx, animaID, baseline)
	if err != nil {
		return nil, err
	}

	hours := now.Sub(baseline).Hours()
	if hours < 0 {
		hours = 0
	}
	eventCount := len(events)
	score := cfg.TimeWeight*hours +
		cfg.EventWeight*float64(eventCount) +
		cfg.TokenWeight*float64(eventCount*tokensPerEvent)

	result := &GateResult{
		Score:      score,
		Threshold:  cfg.Threshold,
		EventCount: eventCount,
		Baseline:   baseline,
	}
	if eventCount == 0 {
		result.SkipReason = SkipNoEvents
		if err := cfgSvc.MarkSynthesisCheck(ctx, animaID, now); err != nil {
			return nil, err
		}
		return result, nil
	}
	if score < cfg.Threshold {
		result.SkipReason = SkipBelowThreshold
		return result, nil
	}
	result.Triggered = true
	return result, nil
}

// Run executes the full pipeline: gate, collection, LLM synthesis and the
// atomic persist. The owner session commits when Run returns nil.
func (p *Pipeline) Run(ctx context.Context, client *ent.Client, animaID string, now time.Time) (*Result, error) {
	gate, err := p.CheckThreshold(ctx, client, animaID, now)
	if err != nil {
		return nil, err
	}
	result := &Result{Gate: *gate}
	if !gate.Triggered {
		return result, nil
	}

	events, err := services.NewEventService(client).ListSince(ctx, animaID, gate.Baseline)
	if err != nil {
		return nil, err
	}

	cfg, err := services.NewConfigService(client).GetSynthesisConfig(ctx, animaID)
	if err != nil {
		return nil, err
	}
	raw, err := p.llm.Complete(ctx, llm.Prompt{
		System:      synthesisSystem,
		User:        buildSynthesisPrompt(events),
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("synthesis call failed: %w", err)
	}
	var syn synthesized
	if err := llm.DecodeJSON(raw, &syn); err != nil {
		return nil, fmt.Errorf("synthesis response invalid: %w", err)
	}
	if syn.Content == "" {
		return nil, fmt.Errorf("synthesis response missing content")
	}

	memSvc := services.NewMemoryService(client)
	timeStart := events[0].OccurredAt
	timeEnd := events[len(events)-1].OccurredAt
	imp := clamp01(syn.Importance)
	conf := clamp01(syn.Confidence)
	m, err := memSvc.Create(ctx, models.CreateMemoryRequest{
		AnimaID:    animaID,
		Content:    syn.Content,
		Summary:    syn.Summary,
		Importance: &imp,
		Confidence: &conf,
		TimeStart:  &timeStart,
		TimeEnd:    &timeEnd,
	})
	if err != nil {
		return nil, err
	}

	eventIDs := make([]string, len(events))
	for i, evt := range events {
		eventIDs[i] = evt.ID
	}
	if _, err := memSvc.LinkEvents(ctx, m.ID, eventIDs, nil); err != nil {
		return nil, err
	}

	if p.embedder != nil {
		text := syn.Summary
		if text == "" {
			text = syn.Content
		}
		vec, err := p.embedder.EmbedText(ctx, text)
		if err != nil {
			slog.Warn("Failed to embed synthesized memory", "memory_id", m.ID, "error", err)
		} else if _, err := memSvc.SetEmbedding(ctx, m.ID, vec, p.embedder.Model()); err != nil {
			return nil, err
		}
	}

	if err := services.NewConfigService(client).MarkSynthesisCheck(ctx, animaID, now); err != nil {
		return nil, err
	}

	if p.hook != nil {
		p.hook.Trigger(m.ID)
	}

	result.MemoryID = m.ID
	return result, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
