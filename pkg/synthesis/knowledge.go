package synthesis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/pkg/embedding"
	"github.com/hejijunhao/elephantasm/pkg/llm"
	"github.com/hejijunhao/elephantasm/pkg/models"
	"github.com/hejijunhao/elephantasm/pkg/services"
)

// Knowledge validation bounds.
const (
	MinContentLen = 20
	MaxContentLen = 2000
	MaxSummaryLen = 500
	MaxItems      = 10
	DefaultTopic  = "general"
)

// DedupPolicy decides what happens when a memory already produced knowledge.
type DedupPolicy string

const (
	// DedupReplace retires the memory's previous knowledge before inserting.
	DedupReplace DedupPolicy = "replace"
	// DedupSkip aborts quietly when any previous knowledge exists.
	DedupSkip DedupPolicy = "skip"
	// DedupAppend always inserts.
	DedupAppend DedupPolicy = "append"
)

// extractedItem is the typed shape of one extraction response element.
type extractedItem struct {
	Type       string  `json:"type"`
	Topic      string  `json:"topic"`
	Content    string  `json:"content"`
	Summary    string  `json:"summary"`
	Confidence float64 `json:"confidence"`
}

var validItemTypes = map[string]bool{
	"fact": true, "concept": true, "method": true, "principle": true, "experience": true,
}

// KnowledgePipeline distills knowledge items from a memory.
type KnowledgePipeline struct {
	llm      llm.Client
	embedder embedding.Embedder
}

// NewKnowledgePipeline creates a knowledge-synthesis pipeline.
func NewKnowledgePipeline(llmClient llm.Client, embedder embedding.Embedder) *KnowledgePipeline {
	return &KnowledgePipeline{llm: llmClient, embedder: embedder}
}

// Run extracts, validates and persists knowledge for one memory inside the
// caller's owner session. With DedupSkip and prior knowledge present it
// returns (nil, nil).
func (p *KnowledgePipeline) Run(ctx context.Context, client *ent.Client, memoryID string, policy DedupPolicy, triggeredBy string) ([]*ent.Knowledge, error) {
	memSvc := services.NewMemoryService(client)
	knowSvc := services.NewKnowledgeService(client)

	m, err := memSvc.Get(ctx, memoryID)
	if err != nil {
		return nil, err
	}
	events, err := memSvc.SourceEvents(ctx, memoryID)
	if err != nil {
		return nil, err
	}

	raw, err := p.llm.Complete(ctx, llm.Prompt{
		System:      fmt.Sprintf(extractionSystem, MaxItems),
		User:        buildExtractionPrompt(m, events),
		Temperature: 0.3,
		MaxTokens:   2048,
	})
	if err != nil {
		return nil, fmt.Errorf("extraction call failed: %w", err)
	}
	var extracted []extractedItem
	if err := llm.DecodeJSON(raw, &extracted); err != nil {
		return nil, fmt.Errorf("extraction response invalid: %w", err)
	}

	valid := validateItems(extracted)
	if len(extracted) > 0 && len(valid) == 0 {
		return nil, fmt.Errorf("all %d extracted items failed validation", len(extracted))
	}
	if len(valid) == 0 {
		return nil, nil
	}

	existing, err := knowSvc.FindBySourceMemory(ctx, m.AnimaID, memoryID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		switch policy {
		case DedupSkip:
			return nil, nil
		case DedupReplace:
			for _, k := range existing {
				if err := knowSvc.SoftDelete(ctx, k.ID, triggeredBy); err != nil {
					return nil, err
				}
			}
		}
	}

	created := make([]*ent.Knowledge, 0, len(valid))
	for _, item := range valid {
		conf := clamp01(item.Confidence)
		k, err := knowSvc.Create(ctx, models.CreateKnowledgeRequest{
			AnimaID:        m.AnimaID,
			Type:           item.Type,
			Topic:          item.Topic,
			Content:        item.Content,
			Summary:        item.Summary,
			Confidence:     &conf,
			SourceType:     "internal",
			SourceMemoryID: memoryID,
			TriggeredBy:    triggeredBy,
		})
		if err != nil {
			return nil, err
		}
		created = append(created, k)
	}

	if p.embedder != nil {
		texts := make([]string, len(created))
		for i, k := range created {
			texts[i] = k.Content
		}
		vectors, err := p.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			slog.Warn("Failed to embed knowledge batch", "memory_id", memoryID, "error", err)
		} else {
			for i, k := range created {
				if _, err := knowSvc.SetEmbedding(ctx, k.ID, vectors[i], p.embedder.Model()); err != nil {
					return nil, err
				}
			}
		}
	}

	return created, nil
}

// validateItems applies the per-item rules: known type, content length in
// bounds, summary trimmed to bound, topic fallback, array cap.
func validateItems(items []extractedItem) []extractedItem {
	valid := make([]extractedItem, 0, len(items))
	for _, item := range items {
		if !validItemTypes[item.Type] {
			continue
		}
		if len(item.Content) < MinContentLen || len(item.Content) > MaxContentLen {
			continue
		}
		if len(item.Summary) > MaxSummaryLen {
			item.Summary = item.Summary[:MaxSummaryLen]
		}
		if item.Topic == "" {
			item.Topic = DefaultTopic
		}
		valid = append(valid, item)
		if len(valid) == MaxItems {
			break
		}
	}
	return valid
}
