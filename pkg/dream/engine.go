package dream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/ent/dreamsession"
	"github.com/hejijunhao/elephantasm/pkg/config"
	"github.com/hejijunhao/elephantasm/pkg/embedding"
	"github.com/hejijunhao/elephantasm/pkg/llm"
	"github.com/hejijunhao/elephantasm/pkg/models"
	"github.com/hejijunhao/elephantasm/pkg/services"
	"github.com/hejijunhao/elephantasm/pkg/tenancy"
)

// gatherLimit caps how many memories one dream cycle curates.
const gatherLimit = 500

// errCancelled signals that the session stopped being "running" mid-cycle,
// typically because a user cancelled it. The engine stops quietly without
// overwriting the session's final status.
var errCancelled = errors.New("dream session no longer running")

// Engine runs one dream curation cycle: gather, light sleep (algorithmic),
// deep sleep (LLM adjudication), completion.
type Engine struct {
	cfg      *config.DreamConfig
	llm      llm.Client
	embedder embedding.Embedder
	envelope *tenancy.Envelope
}

// NewEngine creates a dream engine.
func NewEngine(cfg *config.DreamConfig, llmClient llm.Client, embedder embedding.Embedder, envelope *tenancy.Envelope) *Engine {
	return &Engine{cfg: cfg, llm: llmClient, embedder: embedder, envelope: envelope}
}

// Run executes the cycle for an already-started session. On failure the
// session is marked failed in a fresh owner session, because the working
// session's writes have rolled back with the error.
func (e *Engine) Run(ctx context.Context, animaID, sessionID string) error {
	ownerID, err := e.envelope.ResolveOwner(ctx, tenancy.KindAnima, animaID)
	if err != nil {
		return fmt.Errorf("failed to resolve dream owner: %w", err)
	}

	runErr := e.envelope.WithOwnerSession(ctx, ownerID, func(ctx context.Context, client *ent.Client) error {
		return e.runCycle(ctx, client, animaID, sessionID)
	})
	if runErr == nil {
		return nil
	}
	if errors.Is(runErr, errCancelled) {
		slog.Info("Dream session cancelled mid-cycle", "session_id", sessionID, "anima_id", animaID)
		return nil
	}

	failErr := e.envelope.WithOwnerSession(ctx, ownerID, func(ctx context.Context, client *ent.Client) error {
		_, err := services.NewDreamService(client).Fail(ctx, sessionID, runErr.Error())
		return err
	})
	if failErr != nil {
		slog.Error("Failed to mark dream session failed", "session_id", sessionID, "error", failErr)
	}
	return runErr
}

func (e *Engine) runCycle(ctx context.Context, client *ent.Client, animaID, sessionID string) error {
	dreamSvc := services.NewDreamService(client)
	memSvc := services.NewMemoryService(client)
	now := time.Now().UTC()

	// Gather.
	if _, err := services.NewAnimaService(client).Get(ctx, animaID); err != nil {
		return fmt.Errorf("failed to load anima: %w", err)
	}
	memories, err := memSvc.List(ctx, models.MemoryFilters{
		AnimaID: animaID,
		States:  []string{"active", "decaying"},
		Limit:   gatherLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to gather memories: %w", err)
	}
	recent, err := e.recentSince(ctx, dreamSvc, memories, animaID)
	if err != nil {
		return err
	}
	slog.Info("Dream gather complete",
		"session_id", sessionID, "anima_id", animaID,
		"memories", len(memories), "recent", len(recent))

	if err := e.ensureRunning(ctx, dreamSvc, sessionID); err != nil {
		return err
	}

	// Light sleep.
	ls, err := e.lightSleep(ctx, client, sessionID, memories, recent, now)
	if err != nil {
		return fmt.Errorf("light sleep failed: %w", err)
	}
	slog.Info("Light sleep complete",
		"session_id", sessionID,
		"merge_groups", len(ls.mergeGroups), "review_flags", len(ls.reviewFlags))

	if err := e.ensureRunning(ctx, dreamSvc, sessionID); err != nil {
		return err
	}

	// Deep sleep.
	if e.llm != nil {
		if err := e.deepSleep(ctx, client, sessionID, ls); err != nil {
			return fmt.Errorf("deep sleep failed: %w", err)
		}
	}

	if err := e.ensureRunning(ctx, dreamSvc, sessionID); err != nil {
		return err
	}

	sess, err := dreamSvc.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if _, err := dreamSvc.Complete(ctx, sessionID, completionSummary(sess)); err != nil {
		return err
	}
	slog.Info("Dream session completed", "session_id", sessionID, "anima_id", animaID)
	return nil
}

// recentSince partitions out the memories created after the previous
// completed dream. With no prior dream, every gathered memory is recent.
func (e *Engine) recentSince(ctx context.Context, dreamSvc *services.DreamService, memories []*ent.Memory, animaID string) ([]*ent.Memory, error) {
	prev, err := dreamSvc.List(ctx, models.DreamSessionFilters{
		AnimaID: animaID,
		Status:  "completed",
		Limit:   1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load previous dream: %w", err)
	}
	if len(prev) == 0 || prev[0].CompletedAt == nil {
		return memories, nil
	}
	cutoff := *prev[0].CompletedAt
	var recent []*ent.Memory
	for _, m := range memories {
		if m.CreatedAt.After(cutoff) {
			recent = append(recent, m)
		}
	}
	return recent, nil
}

// ensureRunning re-reads the session between phases so a user cancel takes
// effect at the next phase boundary.
func (e *Engine) ensureRunning(ctx context.Context, dreamSvc *services.DreamService, sessionID string) error {
	sess, err := dreamSvc.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.Status != dreamsession.StatusRunning {
		return errCancelled
	}
	return nil
}

func completionSummary(sess *ent.DreamSession) string {
	parts := []string{fmt.Sprintf("Reviewed %d memories", sess.MemoriesReviewed)}
	if sess.MemoriesCreated > 0 {
		parts = append(parts, fmt.Sprintf("created %d", sess.MemoriesCreated))
	}
	if sess.MemoriesModified > 0 {
		parts = append(parts, fmt.Sprintf("modified %d", sess.MemoriesModified))
	}
	if sess.MemoriesArchived > 0 {
		parts = append(parts, fmt.Sprintf("archived %d", sess.MemoriesArchived))
	}
	if sess.MemoriesDeleted > 0 {
		parts = append(parts, fmt.Sprintf("deleted %d", sess.MemoriesDeleted))
	}
	return strings.Join(parts, ", ") + "."
}
