package dream

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/pkg/llm"
	"github.com/hejijunhao/elephantasm/pkg/models"
	"github.com/hejijunhao/elephantasm/pkg/services"
)

// mergeSeparator joins source contents inside a merged memory.
const mergeSeparator = "\n\n---\n\n"

// deepSleep runs the LLM curation phase: merge adjudication, then batched
// review of the flagged memories.
func (e *Engine) deepSleep(ctx context.Context, client *ent.Client, sessionID string, ls *lightSleepResult) error {
	dreamSvc := services.NewDreamService(client)
	memSvc := services.NewMemoryService(client)

	merged := map[string]bool{}
	for _, group := range ls.mergeGroups {
		if err := e.adjudicateMerge(ctx, client, dreamSvc, memSvc, sessionID, group, merged); err != nil {
			return err
		}
	}

	var pending []*ent.Memory
	for _, m := range ls.reviewFlags {
		if !merged[m.ID] {
			pending = append(pending, m)
		}
	}
	for start := 0; start < len(pending); start += e.cfg.CurationBatchSize {
		end := start + e.cfg.CurationBatchSize
		if end > len(pending) {
			end = len(pending)
		}
		if err := e.reviewBatch(ctx, client, dreamSvc, memSvc, sessionID, pending[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) adjudicateMerge(ctx context.Context, client *ent.Client, dreamSvc *services.DreamService, memSvc *services.MemoryService, sessionID string, group []*ent.Memory, merged map[string]bool) error {
	raw, err := e.llm.Complete(ctx, llm.Prompt{
		System:      mergeSystem,
		User:        buildMergePrompt(group),
		Temperature: e.cfg.Temperature,
		MaxTokens:   e.cfg.MaxTokens,
	})
	if err != nil {
		return fmt.Errorf("merge call failed: %w", err)
	}
	var decision mergeDecision
	if err := llm.DecodeJSON(raw, &decision); err != nil {
		return fmt.Errorf("merge decision invalid: %w", err)
	}
	if !decision.ShouldMerge {
		return nil
	}

	sourceIDs := make([]string, len(group))
	contents := make([]string, 0, len(group))
	timeStart := group[0].TimeStart
	timeEnd := group[0].TimeEnd
	for i, m := range group {
		sourceIDs[i] = m.ID
		if m.Content != "" {
			contents = append(contents, m.Content)
		}
		if m.TimeStart != nil && (timeStart == nil || m.TimeStart.Before(*timeStart)) {
			timeStart = m.TimeStart
		}
		if m.TimeEnd != nil && (timeEnd == nil || m.TimeEnd.After(*timeEnd)) {
			timeEnd = m.TimeEnd
		}
	}

	imp := clamp01(decision.Importance)
	conf := clamp01(decision.Confidence)
	created, err := memSvc.Create(ctx, models.CreateMemoryRequest{
		AnimaID:    group[0].AnimaID,
		Content:    strings.Join(contents, mergeSeparator),
		Summary:    decision.MergedSummary,
		Importance: &imp,
		Confidence: &conf,
		TimeStart:  timeStart,
		TimeEnd:    timeEnd,
		Metadata:   map[string]interface{}{"merged_from": sourceIDs},
	})
	if err != nil {
		return err
	}
	for _, m := range group {
		if err := memSvc.SoftDelete(ctx, m.ID); err != nil {
			return err
		}
		merged[m.ID] = true
	}

	_, err = dreamSvc.RecordAction(ctx, models.RecordDreamActionRequest{
		SessionID:       sessionID,
		ActionType:      "merge",
		Phase:           "deep_sleep",
		SourceMemoryIDs: sourceIDs,
		ResultMemoryIDs: []string{created.ID},
		AfterState:      map[string]interface{}{"summary": decision.MergedSummary},
		Reasoning:       decision.Reasoning,
	})
	if err != nil {
		return err
	}

	e.regenerateEmbedding(ctx, memSvc, created.ID, decision.MergedSummary)
	return nil
}

func (e *Engine) reviewBatch(ctx context.Context, client *ent.Client, dreamSvc *services.DreamService, memSvc *services.MemoryService, sessionID string, batch []*ent.Memory) error {
	raw, err := e.llm.Complete(ctx, llm.Prompt{
		System:      reviewSystem,
		User:        buildReviewPrompt(batch),
		Temperature: e.cfg.Temperature,
		MaxTokens:   e.cfg.MaxTokens,
	})
	if err != nil {
		return fmt.Errorf("review call failed: %w", err)
	}
	var decisions []reviewDecision
	if err := llm.DecodeJSON(raw, &decisions); err != nil {
		return fmt.Errorf("review decisions invalid: %w", err)
	}

	for _, d := range decisions {
		if d.Index < 0 || d.Index >= len(batch) {
			slog.Warn("Review decision index out of range", "index", d.Index, "batch", len(batch))
			continue
		}
		m := batch[d.Index]
		switch strings.ToUpper(d.Action) {
		case "KEEP":
			// no-op
		case "UPDATE":
			if err := e.applyUpdate(ctx, dreamSvc, memSvc, sessionID, m, d); err != nil {
				return err
			}
		case "SPLIT":
			if err := e.applySplit(ctx, dreamSvc, memSvc, sessionID, m, d); err != nil {
				return err
			}
		case "DELETE":
			if err := e.applyDelete(ctx, dreamSvc, memSvc, sessionID, m, d); err != nil {
				return err
			}
		default:
			slog.Warn("Unknown review action", "action", d.Action, "memory_id", m.ID)
		}
	}

	return dreamSvc.AddReviewed(ctx, sessionID, len(batch))
}

func (e *Engine) applyUpdate(ctx context.Context, dreamSvc *services.DreamService, memSvc *services.MemoryService, sessionID string, m *ent.Memory, d reviewDecision) error {
	req := models.UpdateMemoryRequest{
		Importance: d.NewImportance,
		Confidence: d.NewConfidence,
	}
	summaryChanged := false
	if d.NewSummary != "" {
		req.Summary = &d.NewSummary
		summaryChanged = m.Summary == nil || *m.Summary != d.NewSummary
	}
	before := snapshotMemory(m)
	updated, err := memSvc.Update(ctx, m.ID, req)
	if err != nil {
		return err
	}
	_, err = dreamSvc.RecordAction(ctx, models.RecordDreamActionRequest{
		SessionID:       sessionID,
		ActionType:      "update",
		Phase:           "deep_sleep",
		SourceMemoryIDs: []string{m.ID},
		ResultMemoryIDs: []string{m.ID},
		BeforeState:     before,
		AfterState:      snapshotMemory(updated),
		Reasoning:       d.Reasoning,
	})
	if err != nil {
		return err
	}
	if summaryChanged {
		e.regenerateEmbedding(ctx, memSvc, m.ID, d.NewSummary)
	}
	return nil
}

func (e *Engine) applySplit(ctx context.Context, dreamSvc *services.DreamService, memSvc *services.MemoryService, sessionID string, m *ent.Memory, d reviewDecision) error {
	if len(d.SplitInto) < 2 {
		slog.Warn("Split with fewer than two summaries ignored", "memory_id", m.ID)
		return nil
	}
	resultIDs := make([]string, 0, len(d.SplitInto))
	for _, summary := range d.SplitInto {
		created, err := memSvc.Create(ctx, models.CreateMemoryRequest{
			AnimaID:    m.AnimaID,
			Content:    summary,
			Summary:    summary,
			Importance: m.Importance,
			Confidence: m.Confidence,
			TimeStart:  m.TimeStart,
			TimeEnd:    m.TimeEnd,
			Metadata:   map[string]interface{}{"split_from": m.ID},
		})
		if err != nil {
			return err
		}
		resultIDs = append(resultIDs, created.ID)
		e.regenerateEmbedding(ctx, memSvc, created.ID, summary)
	}
	if err := memSvc.SoftDelete(ctx, m.ID); err != nil {
		return err
	}
	_, err := dreamSvc.RecordAction(ctx, models.RecordDreamActionRequest{
		SessionID:       sessionID,
		ActionType:      "split",
		Phase:           "deep_sleep",
		SourceMemoryIDs: []string{m.ID},
		ResultMemoryIDs: resultIDs,
		BeforeState:     snapshotMemory(m),
		AfterState:      map[string]interface{}{"split_into": d.SplitInto},
		Reasoning:       d.Reasoning,
	})
	return err
}

func (e *Engine) applyDelete(ctx context.Context, dreamSvc *services.DreamService, memSvc *services.MemoryService, sessionID string, m *ent.Memory, d reviewDecision) error {
	if err := memSvc.SoftDelete(ctx, m.ID); err != nil {
		return err
	}
	_, err := dreamSvc.RecordAction(ctx, models.RecordDreamActionRequest{
		SessionID:       sessionID,
		ActionType:      "delete",
		Phase:           "deep_sleep",
		SourceMemoryIDs: []string{m.ID},
		BeforeState:     snapshotMemory(m),
		Reasoning:       d.Reasoning,
	})
	return err
}

// regenerateEmbedding refreshes a memory's embedding after its summary
// changed. Embedding failures never fail the dream.
func (e *Engine) regenerateEmbedding(ctx context.Context, memSvc *services.MemoryService, memoryID, text string) {
	if e.embedder == nil || text == "" {
		return
	}
	vec, err := e.embedder.EmbedText(ctx, text)
	if err != nil {
		slog.Warn("Failed to regenerate embedding", "memory_id", memoryID, "error", err)
		return
	}
	if _, err := memSvc.SetEmbedding(ctx, memoryID, vec, e.embedder.Model()); err != nil {
		slog.Warn("Failed to store regenerated embedding", "memory_id", memoryID, "error", err)
	}
}

func snapshotMemory(m *ent.Memory) map[string]interface{} {
	snap := map[string]interface{}{
		"state": string(m.State),
	}
	if m.Summary != nil {
		snap["summary"] = *m.Summary
	}
	if m.Importance != nil {
		snap["importance"] = *m.Importance
	}
	if m.Confidence != nil {
		snap["confidence"] = *m.Confidence
	}
	return snap
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
