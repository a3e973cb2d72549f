package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/ent/anima"
	"github.com/hejijunhao/elephantasm/ent/dreamaction"
	"github.com/hejijunhao/elephantasm/ent/dreamsession"
	"github.com/hejijunhao/elephantasm/ent/event"
	"github.com/hejijunhao/elephantasm/ent/identity"
	"github.com/hejijunhao/elephantasm/ent/ioconfig"
	"github.com/hejijunhao/elephantasm/ent/knowledge"
	"github.com/hejijunhao/elephantasm/ent/memory"
	"github.com/hejijunhao/elephantasm/ent/memoryevent"
	"github.com/hejijunhao/elephantasm/ent/memorypack"
	"github.com/hejijunhao/elephantasm/ent/synthesisconfig"
	"github.com/hejijunhao/elephantasm/pkg/models"
)

// AnimaService manages anima lifecycle including the cascade soft delete.
// The client must come from a tenancy owner session; row-level security
// scopes every query to the session's user.
type AnimaService struct {
	client *ent.Client
}

// NewAnimaService creates a new AnimaService
func NewAnimaService(client *ent.Client) *AnimaService {
	return &AnimaService{client: client}
}

// Create creates a new anima owned by userID.
func (s *AnimaService) Create(ctx context.Context, userID string, req models.CreateAnimaRequest) (*ent.Anima, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "must not be empty")
	}
	if req.OrganizationID == "" {
		return nil, NewValidationError("organization_id", "must not be empty")
	}

	a, err := s.client.Anima.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetOrganizationID(req.OrganizationID).
		SetName(req.Name).
		SetNillableDescription(nilIfEmpty(req.Description)).
		SetMetadata(req.Metadata).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create anima: %w", err)
	}
	return a, nil
}

// Get returns an anima by id. Soft-deleted animas yield ErrDeleted.
func (s *AnimaService) Get(ctx context.Context, id string) (*ent.Anima, error) {
	a, err := s.client.Anima.Query().
		Where(anima.IDEQ(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get anima: %w", err)
	}
	if a.IsDeleted {
		return nil, ErrDeleted
	}
	return a, nil
}

// List returns the session user's animas, newest first.
func (s *AnimaService) List(ctx context.Context, filters models.AnimaFilters) ([]*ent.Anima, error) {
	q := s.client.Anima.Query()
	if !filters.IncludeDeleted {
		q = q.Where(anima.IsDeleted(false))
	}
	if !filters.IncludeDormant {
		q = q.Where(anima.IsDormant(false))
	}
	animas, err := q.
		Order(ent.Desc(anima.FieldCreatedAt)).
		Limit(clampLimit(filters.Limit, 50, 200)).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list animas: %w", err)
	}
	return animas, nil
}

// Update patches mutable anima fields.
func (s *AnimaService) Update(ctx context.Context, id string, req models.UpdateAnimaRequest) (*ent.Anima, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil && *req.Name == "" {
		return nil, NewValidationError("name", "must not be empty")
	}

	upd := existing.Update().
		SetNillableName(req.Name).
		SetNillableDescription(req.Description).
		SetNillableIsDormant(req.IsDormant)
	if req.Metadata != nil {
		upd = upd.SetMetadata(req.Metadata)
	}
	a, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update anima: %w", err)
	}
	return a, nil
}

// TouchActivity stamps last_activity_at, used by event ingestion.
func (s *AnimaService) TouchActivity(ctx context.Context, id string, at time.Time) error {
	err := s.client.Anima.UpdateOneID(id).
		SetLastActivityAt(at).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to touch anima activity: %w", err)
	}
	return nil
}

// SoftDelete cascades through the anima's descendants and reports how many
// rows each table contributed. Packs, dream sessions, provenance links and
// the 1:1 configs carry no deletion flag, so they are hard-deleted, children
// before parents; everything else is soft-deleted and restorable.
func (s *AnimaService) SoftDelete(ctx context.Context, id string) (*models.CascadeResult, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}

	n, err := s.client.DreamAction.Delete().
		Where(dreamaction.HasSessionWith(dreamsession.AnimaIDEQ(id))).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cascade delete dream actions: %w", err)
	}
	counts["dream_actions"] = n

	n, err = s.client.DreamSession.Delete().
		Where(dreamsession.AnimaIDEQ(id)).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cascade delete dream sessions: %w", err)
	}
	counts["dream_sessions"] = n

	n, err = s.client.MemoryPack.Delete().
		Where(memorypack.AnimaIDEQ(id)).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cascade delete memory packs: %w", err)
	}
	counts["memory_packs"] = n

	n, err = s.client.MemoryEvent.Delete().
		Where(memoryevent.HasMemoryWith(memory.AnimaIDEQ(id))).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cascade delete memory links: %w", err)
	}
	counts["memory_events"] = n

	n, err = s.client.IOConfig.Delete().
		Where(ioconfig.AnimaIDEQ(id)).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cascade delete io config: %w", err)
	}
	counts["io_configs"] = n

	n, err = s.client.SynthesisConfig.Delete().
		Where(synthesisconfig.AnimaIDEQ(id)).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cascade delete synthesis config: %w", err)
	}
	counts["synthesis_configs"] = n

	n, err = s.client.Event.Update().
		Where(event.AnimaIDEQ(id), event.IsDeleted(false)).
		SetIsDeleted(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cascade delete events: %w", err)
	}
	counts["events"] = n

	n, err = s.client.Memory.Update().
		Where(memory.AnimaIDEQ(id), memory.IsDeleted(false)).
		SetIsDeleted(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cascade delete memories: %w", err)
	}
	counts["memories"] = n

	n, err = s.client.Knowledge.Update().
		Where(knowledge.AnimaIDEQ(id), knowledge.IsDeleted(false)).
		SetIsDeleted(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cascade delete knowledge: %w", err)
	}
	counts["knowledge_items"] = n

	n, err = s.client.Identity.Update().
		Where(identity.AnimaIDEQ(id), identity.IsDeleted(false)).
		SetIsDeleted(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cascade delete identity: %w", err)
	}
	counts["identities"] = n

	if err := a.Update().SetIsDeleted(true).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete anima: %w", err)
	}
	counts["animas"] = 1

	return &models.CascadeResult{Counts: counts}, nil
}

// Restore reverses a cascade soft delete with the same per-table accounting.
// The hard-deleted configs come back as fresh defaults; packs, dream
// sessions and provenance links are gone for good.
func (s *AnimaService) Restore(ctx context.Context, id string) (*models.CascadeResult, error) {
	a, err := s.client.Anima.Query().
		Where(anima.IDEQ(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get anima: %w", err)
	}
	if !a.IsDeleted {
		return nil, ErrAlreadyExists
	}

	counts := map[string]int{}

	n, err := s.client.Event.Update().
		Where(event.AnimaIDEQ(id), event.IsDeleted(true)).
		SetIsDeleted(false).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cascade restore events: %w", err)
	}
	counts["events"] = n

	n, err = s.client.Memory.Update().
		Where(memory.AnimaIDEQ(id), memory.IsDeleted(true)).
		SetIsDeleted(false).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cascade restore memories: %w", err)
	}
	counts["memories"] = n

	n, err = s.client.Knowledge.Update().
		Where(knowledge.AnimaIDEQ(id), knowledge.IsDeleted(true)).
		SetIsDeleted(false).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cascade restore knowledge: %w", err)
	}
	counts["knowledge_items"] = n

	n, err = s.client.Identity.Update().
		Where(identity.AnimaIDEQ(id), identity.IsDeleted(true)).
		SetIsDeleted(false).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cascade restore identity: %w", err)
	}
	counts["identities"] = n

	if err := a.Update().SetIsDeleted(false).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to restore anima: %w", err)
	}
	counts["animas"] = 1

	cfgSvc := NewConfigService(s.client)
	if _, err := cfgSvc.GetSynthesisConfig(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to rematerialize synthesis config: %w", err)
	}
	counts["synthesis_configs"] = 1
	if _, err := cfgSvc.GetIOConfig(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to rematerialize io config: %w", err)
	}
	counts["io_configs"] = 1

	return &models.CascadeResult{Counts: counts}, nil
}

// nilIfEmpty converts "" to nil for SetNillable setters on optional fields.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
