package synthesis

import (
	"context"
	"log/slog"
	"time"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/pkg/tenancy"
)

// hookTimeout bounds one detached knowledge-synthesis run.
const hookTimeout = 2 * time.Minute

// Submitter hands work to a bounded background worker group. Submit reports
// whether the job was accepted.
type Submitter interface {
	Submit(job string, fn func(ctx context.Context)) bool
}

// AutoKnowledgeHook schedules knowledge synthesis after a memory is created.
// Fire-and-forget: errors are logged and swallowed, and the hook never
// blocks or fails its caller.
type AutoKnowledgeHook struct {
	envelope *tenancy.Envelope
	pipeline *KnowledgePipeline
	submit   Submitter
	policy   DedupPolicy
}

// NewAutoKnowledgeHook creates the hook.
func NewAutoKnowledgeHook(envelope *tenancy.Envelope, pipeline *KnowledgePipeline, submit Submitter) *AutoKnowledgeHook {
	return &AutoKnowledgeHook{
		envelope: envelope,
		pipeline: pipeline,
		submit:   submit,
		policy:   DedupReplace,
	}
}

// Trigger queues knowledge synthesis for a memory.
func (h *AutoKnowledgeHook) Trigger(memoryID string) {
	accepted := h.submit.Submit("auto_knowledge_"+memoryID, func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, hookTimeout)
		defer cancel()

		ownerID, err := h.envelope.ResolveOwner(ctx, tenancy.KindMemory, memoryID)
		if err != nil {
			slog.Warn("Auto-knowledge owner resolution failed", "memory_id", memoryID, "error", err)
			return
		}
		err = h.envelope.WithOwnerSession(ctx, ownerID, func(ctx context.Context, client *ent.Client) error {
			_, err := h.pipeline.Run(ctx, client, memoryID, h.policy, "auto_knowledge")
			return err
		})
		if err != nil {
			slog.Warn("Auto-knowledge synthesis failed", "memory_id", memoryID, "error", err)
			return
		}
		slog.Info("Auto-knowledge synthesis completed", "memory_id", memoryID)
	})
	if !accepted {
		slog.Warn("Auto-knowledge queue full, dropping trigger", "memory_id", memoryID)
	}
}
