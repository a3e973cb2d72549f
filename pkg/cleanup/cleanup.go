// Package cleanup implements the destructive maintenance tool: purge all
// entity data for one user, or everything created after a cutoff. It runs
// on the root client and hard-deletes, so every mode defaults to dry-run.
package cleanup

import (
	"context"
	"fmt"
	"time"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/ent/anima"
	"github.com/hejijunhao/elephantasm/ent/dreamaction"
	"github.com/hejijunhao/elephantasm/ent/dreamsession"
	"github.com/hejijunhao/elephantasm/ent/event"
	"github.com/hejijunhao/elephantasm/ent/identity"
	"github.com/hejijunhao/elephantasm/ent/ioconfig"
	"github.com/hejijunhao/elephantasm/ent/knowledge"
	"github.com/hejijunhao/elephantasm/ent/knowledgeauditlog"
	"github.com/hejijunhao/elephantasm/ent/memory"
	"github.com/hejijunhao/elephantasm/ent/memoryevent"
	"github.com/hejijunhao/elephantasm/ent/memorypack"
	"github.com/hejijunhao/elephantasm/ent/synthesisconfig"
	"github.com/hejijunhao/elephantasm/ent/user"
)

// TableCount is one table's affected-row count, in deletion order.
type TableCount struct {
	Table string
	Count int
}

// Purger runs the destructive maintenance operations.
type Purger struct {
	client *ent.Client
}

// NewPurger creates a purger over the root client.
func NewPurger(client *ent.Client) *Purger {
	return &Purger{client: client}
}

// step pairs a table name with its count and delete operations so both
// modes share the FK-safe ordering. Children always precede parents.
type step struct {
	table  string
	count  func(ctx context.Context) (int, error)
	delete func(ctx context.Context) (int, error)
}

// PurgeUser removes all entity data owned by the user with the given email.
// The user row and its API keys survive. With dryRun the counts are
// computed but nothing is deleted.
func (p *Purger) PurgeUser(ctx context.Context, email string, dryRun bool) ([]TableCount, error) {
	u, err := p.client.User.Query().Where(user.EmailEQ(email)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("no user with email %q", email)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	animaIDs, err := p.client.Anima.Query().
		Where(anima.UserIDEQ(u.ID)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list animas: %w", err)
	}

	steps := []step{
		{
			table: "dream_actions",
			count: func(ctx context.Context) (int, error) {
				return p.client.DreamAction.Query().
					Where(dreamaction.HasSessionWith(dreamsession.AnimaIDIn(animaIDs...))).
					Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.DreamAction.Delete().
					Where(dreamaction.HasSessionWith(dreamsession.AnimaIDIn(animaIDs...))).
					Exec(ctx)
			},
		},
		{
			table: "dream_sessions",
			count: func(ctx context.Context) (int, error) {
				return p.client.DreamSession.Query().
					Where(dreamsession.AnimaIDIn(animaIDs...)).Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.DreamSession.Delete().
					Where(dreamsession.AnimaIDIn(animaIDs...)).Exec(ctx)
			},
		},
		{
			table: "memory_packs",
			count: func(ctx context.Context) (int, error) {
				return p.client.MemoryPack.Query().
					Where(memorypack.AnimaIDIn(animaIDs...)).Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.MemoryPack.Delete().
					Where(memorypack.AnimaIDIn(animaIDs...)).Exec(ctx)
			},
		},
		{
			table: "knowledge_audit_logs",
			count: func(ctx context.Context) (int, error) {
				return p.client.KnowledgeAuditLog.Query().
					Where(knowledgeauditlog.HasKnowledgeWith(knowledge.AnimaIDIn(animaIDs...))).
					Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.KnowledgeAuditLog.Delete().
					Where(knowledgeauditlog.HasKnowledgeWith(knowledge.AnimaIDIn(animaIDs...))).
					Exec(ctx)
			},
		},
		{
			table: "knowledge_items",
			count: func(ctx context.Context) (int, error) {
				return p.client.Knowledge.Query().
					Where(knowledge.AnimaIDIn(animaIDs...)).Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.Knowledge.Delete().
					Where(knowledge.AnimaIDIn(animaIDs...)).Exec(ctx)
			},
		},
		{
			table: "memory_events",
			count: func(ctx context.Context) (int, error) {
				return p.client.MemoryEvent.Query().
					Where(memoryevent.HasMemoryWith(memory.AnimaIDIn(animaIDs...))).
					Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.MemoryEvent.Delete().
					Where(memoryevent.HasMemoryWith(memory.AnimaIDIn(animaIDs...))).
					Exec(ctx)
			},
		},
		{
			table: "memories",
			count: func(ctx context.Context) (int, error) {
				return p.client.Memory.Query().
					Where(memory.AnimaIDIn(animaIDs...)).Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.Memory.Delete().
					Where(memory.AnimaIDIn(animaIDs...)).Exec(ctx)
			},
		},
		{
			table: "events",
			count: func(ctx context.Context) (int, error) {
				return p.client.Event.Query().
					Where(event.AnimaIDIn(animaIDs...)).Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.Event.Delete().
					Where(event.AnimaIDIn(animaIDs...)).Exec(ctx)
			},
		},
		{
			table: "identities",
			count: func(ctx context.Context) (int, error) {
				return p.client.Identity.Query().
					Where(identity.AnimaIDIn(animaIDs...)).Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.Identity.Delete().
					Where(identity.AnimaIDIn(animaIDs...)).Exec(ctx)
			},
		},
		{
			table: "io_configs",
			count: func(ctx context.Context) (int, error) {
				return p.client.IOConfig.Query().
					Where(ioconfig.AnimaIDIn(animaIDs...)).Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.IOConfig.Delete().
					Where(ioconfig.AnimaIDIn(animaIDs...)).Exec(ctx)
			},
		},
		{
			table: "synthesis_configs",
			count: func(ctx context.Context) (int, error) {
				return p.client.SynthesisConfig.Query().
					Where(synthesisconfig.AnimaIDIn(animaIDs...)).Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.SynthesisConfig.Delete().
					Where(synthesisconfig.AnimaIDIn(animaIDs...)).Exec(ctx)
			},
		},
		{
			table: "animas",
			count: func(ctx context.Context) (int, error) {
				return p.client.Anima.Query().
					Where(anima.IDIn(animaIDs...)).Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.Anima.Delete().
					Where(anima.IDIn(animaIDs...)).Exec(ctx)
			},
		},
	}

	return runSteps(ctx, steps, dryRun)
}

// PurgeAfter removes every row created after the cutoff, across the fixed
// tenant-table list in FK-safe order.
func (p *Purger) PurgeAfter(ctx context.Context, cutoff time.Time, dryRun bool) ([]TableCount, error) {
	steps := []step{
		{
			table: "dream_actions",
			count: func(ctx context.Context) (int, error) {
				return p.client.DreamAction.Query().Where(dreamaction.CreatedAtGT(cutoff)).Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.DreamAction.Delete().Where(dreamaction.CreatedAtGT(cutoff)).Exec(ctx)
			},
		},
		{
			table: "dream_sessions",
			count: func(ctx context.Context) (int, error) {
				return p.client.DreamSession.Query().Where(dreamsession.CreatedAtGT(cutoff)).Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.DreamSession.Delete().Where(dreamsession.CreatedAtGT(cutoff)).Exec(ctx)
			},
		},
		{
			table: "memory_packs",
			count: func(ctx context.Context) (int, error) {
				return p.client.MemoryPack.Query().Where(memorypack.CreatedAtGT(cutoff)).Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.MemoryPack.Delete().Where(memorypack.CreatedAtGT(cutoff)).Exec(ctx)
			},
		},
		{
			table: "knowledge_audit_logs",
			count: func(ctx context.Context) (int, error) {
				return p.client.KnowledgeAuditLog.Query().Where(knowledgeauditlog.CreatedAtGT(cutoff)).Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.KnowledgeAuditLog.Delete().Where(knowledgeauditlog.CreatedAtGT(cutoff)).Exec(ctx)
			},
		},
		{
			table: "knowledge_items",
			count: func(ctx context.Context) (int, error) {
				return p.client.Knowledge.Query().Where(knowledge.CreatedAtGT(cutoff)).Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.Knowledge.Delete().Where(knowledge.CreatedAtGT(cutoff)).Exec(ctx)
			},
		},
		{
			table: "memory_events",
			count: func(ctx context.Context) (int, error) {
				return p.client.MemoryEvent.Query().Where(memoryevent.CreatedAtGT(cutoff)).Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.MemoryEvent.Delete().Where(memoryevent.CreatedAtGT(cutoff)).Exec(ctx)
			},
		},
		{
			table: "memories",
			count: func(ctx context.Context) (int, error) {
				return p.client.Memory.Query().Where(memory.CreatedAtGT(cutoff)).Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.Memory.Delete().Where(memory.CreatedAtGT(cutoff)).Exec(ctx)
			},
		},
		{
			table: "events",
			count: func(ctx context.Context) (int, error) {
				return p.client.Event.Query().Where(event.CreatedAtGT(cutoff)).Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.Event.Delete().Where(event.CreatedAtGT(cutoff)).Exec(ctx)
			},
		},
		{
			table: "identities",
			count: func(ctx context.Context) (int, error) {
				return p.client.Identity.Query().Where(identity.CreatedAtGT(cutoff)).Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.Identity.Delete().Where(identity.CreatedAtGT(cutoff)).Exec(ctx)
			},
		},
		{
			table: "io_configs",
			count: func(ctx context.Context) (int, error) {
				return p.client.IOConfig.Query().Where(ioconfig.CreatedAtGT(cutoff)).Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.IOConfig.Delete().Where(ioconfig.CreatedAtGT(cutoff)).Exec(ctx)
			},
		},
		{
			table: "synthesis_configs",
			count: func(ctx context.Context) (int, error) {
				return p.client.SynthesisConfig.Query().Where(synthesisconfig.CreatedAtGT(cutoff)).Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.SynthesisConfig.Delete().Where(synthesisconfig.CreatedAtGT(cutoff)).Exec(ctx)
			},
		},
		{
			table: "animas",
			count: func(ctx context.Context) (int, error) {
				return p.client.Anima.Query().Where(anima.CreatedAtGT(cutoff)).Count(ctx)
			},
			delete: func(ctx context.Context) (int, error) {
				return p.client.Anima.Delete().Where(anima.CreatedAtGT(cutoff)).Exec(ctx)
			},
		},
	}

	return runSteps(ctx, steps, dryRun)
}

func runSteps(ctx context.Context, steps []step, dryRun bool) ([]TableCount, error) {
	results := make([]TableCount, 0, len(steps))
	for _, st := range steps {
		var (
			n   int
			err error
		)
		if dryRun {
			n, err = st.count(ctx)
		} else {
			n, err = st.delete(ctx)
		}
		if err != nil {
			return results, fmt.Errorf("%s: %w", st.table, err)
		}
		results = append(results, TableCount{Table: st.table, Count: n})
	}
	return results, nil
}
