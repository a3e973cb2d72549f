package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/ent/memory"
	"github.com/hejijunhao/elephantasm/ent/memoryevent"
	"github.com/hejijunhao/elephantasm/pkg/models"
)

// MemoryService manages consolidated memories, their provenance links and
// their embeddings.
type MemoryService struct {
	client *ent.Client
}

// NewMemoryService creates a new MemoryService
func NewMemoryService(client *ent.Client) *MemoryService {
	return &MemoryService{client: client}
}

// Create creates a new memory.
func (s *MemoryService) Create(ctx context.Context, req models.CreateMemoryRequest) (*ent.Memory, error) {
	if req.Content == "" {
		return nil, NewValidationError("content", "must not be empty")
	}
	if err := validateUnitRange("importance", req.Importance); err != nil {
		return nil, err
	}
	if err := validateUnitRange("confidence", req.Confidence); err != nil {
		return nil, err
	}

	m, err := s.client.Memory.Create().
		SetID(uuid.New().String()).
		SetAnimaID(req.AnimaID).
		SetContent(req.Content).
		SetNillableSummary(nilIfEmpty(req.Summary)).
		SetNillableImportance(req.Importance).
		SetNillableConfidence(req.Confidence).
		SetNillableTimeStart(req.TimeStart).
		SetNillableTimeEnd(req.TimeEnd).
		SetMetadata(req.Metadata).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create memory: %w", err)
	}
	return m, nil
}

// Get returns a memory by id. Soft-deleted memories yield ErrDeleted.
func (s *MemoryService) Get(ctx context.Context, id string) (*ent.Memory, error) {
	m, err := s.client.Memory.Query().
		Where(memory.IDEQ(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get memory: %w", err)
	}
	if m.IsDeleted {
		return nil, ErrDeleted
	}
	return m, nil
}

// List returns memories matching the filters, newest first.
func (s *MemoryService) List(ctx context.Context, filters models.MemoryFilters) ([]*ent.Memory, error) {
	q := s.client.Memory.Query()
	if filters.AnimaID != "" {
		q = q.Where(memory.AnimaIDEQ(filters.AnimaID))
	}
	if len(filters.States) > 0 {
		states, err := memoryStates(filters.States)
		if err != nil {
			return nil, err
		}
		q = q.Where(memory.StateIn(states...))
	}
	if filters.MinImportance != nil {
		q = q.Where(memory.ImportanceGTE(*filters.MinImportance))
	}
	if filters.MinConfidence != nil {
		q = q.Where(memory.ConfidenceGTE(*filters.MinConfidence))
	}
	if !filters.IncludeDeleted {
		q = q.Where(memory.IsDeleted(false))
	}
	memories, err := q.
		Order(ent.Desc(memory.FieldCreatedAt)).
		Limit(clampLimit(filters.Limit, 50, 200)).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memories: %w", err)
	}
	return memories, nil
}

// Latest returns the most recently created non-deleted memory for an anima,
// or nil when none exists. The synthesis gate anchors its baseline here.
func (s *MemoryService) Latest(ctx context.Context, animaID string) (*ent.Memory, error) {
	m, err := s.client.Memory.Query().
		Where(memory.AnimaIDEQ(animaID), memory.IsDeleted(false)).
		Order(ent.Desc(memory.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest memory: %w", err)
	}
	return m, nil
}

// Update patches mutable memory fields.
func (s *MemoryService) Update(ctx context.Context, id string, req models.UpdateMemoryRequest) (*ent.Memory, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Content != nil && *req.Content == "" {
		return nil, NewValidationError("content", "must not be empty")
	}
	if err := validateUnitRange("importance", req.Importance); err != nil {
		return nil, err
	}
	if err := validateUnitRange("confidence", req.Confidence); err != nil {
		return nil, err
	}

	upd := existing.Update().
		SetNillableContent(req.Content).
		SetNillableSummary(req.Summary).
		SetNillableImportance(req.Importance).
		SetNillableConfidence(req.Confidence)
	if req.State != nil {
		states, err := memoryStates([]string{*req.State})
		if err != nil {
			return nil, err
		}
		upd = upd.SetState(states[0])
	}
	if req.Metadata != nil {
		upd = upd.SetMetadata(req.Metadata)
	}
	m, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update memory: %w", err)
	}
	return m, nil
}

// SoftDelete marks a memory deleted. Already-deleted memories are a no-op.
func (s *MemoryService) SoftDelete(ctx context.Context, id string) error {
	m, err := s.client.Memory.Query().
		Where(memory.IDEQ(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get memory: %w", err)
	}
	if m.IsDeleted {
		return nil
	}
	if err := m.Update().SetIsDeleted(true).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete memory: %w", err)
	}
	return nil
}

// Restore reverses a soft delete.
func (s *MemoryService) Restore(ctx context.Context, id string) (*ent.Memory, error) {
	m, err := s.client.Memory.Query().
		Where(memory.IDEQ(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get memory: %w", err)
	}
	if !m.IsDeleted {
		return m, nil
	}
	m, err = m.Update().SetIsDeleted(false).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to restore memory: %w", err)
	}
	return m, nil
}

// LinkEvents records provenance links from a memory to its source events.
// Both sides must belong to the same anima; a duplicate pair yields
// ErrAlreadyExists.
func (s *MemoryService) LinkEvents(ctx context.Context, memoryID string, eventIDs []string, strength *float64) ([]*ent.MemoryEvent, error) {
	if len(eventIDs) == 0 {
		return nil, NewValidationError("event_ids", "must not be empty")
	}
	if err := validateUnitRange("link_strength", strength); err != nil {
		return nil, err
	}
	m, err := s.Get(ctx, memoryID)
	if err != nil {
		return nil, err
	}

	evtSvc := NewEventService(s.client)
	builders := make([]*ent.MemoryEventCreate, 0, len(eventIDs))
	for _, eventID := range eventIDs {
		evt, err := evtSvc.Get(ctx, eventID)
		if err != nil {
			return nil, err
		}
		if evt.AnimaID != m.AnimaID {
			return nil, NewValidationError("event_ids", fmt.Sprintf("event %s belongs to a different anima", eventID))
		}
		builders = append(builders, s.client.MemoryEvent.Create().
			SetID(uuid.New().String()).
			SetMemoryID(memoryID).
			SetEventID(eventID).
			SetNillableLinkStrength(strength))
	}

	links, err := s.client.MemoryEvent.CreateBulk(builders...).Save(ctx)
	if ent.IsConstraintError(err) {
		return nil, fmt.Errorf("memory %s already linked: %w", memoryID, ErrAlreadyExists)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to link events: %w", err)
	}
	return links, nil
}

// SourceEvents returns the events a memory was synthesized from.
func (s *MemoryService) SourceEvents(ctx context.Context, memoryID string) ([]*ent.Event, error) {
	links, err := s.client.MemoryEvent.Query().
		Where(memoryevent.MemoryIDEQ(memoryID)).
		WithEvent().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load memory links: %w", err)
	}
	events := make([]*ent.Event, 0, len(links))
	for _, l := range links {
		if l.Edges.Event != nil {
			events = append(events, l.Edges.Event)
		}
	}
	return events, nil
}

// SetEmbedding stores a memory's embedding vector and the model that
// produced it.
func (s *MemoryService) SetEmbedding(ctx context.Context, id string, vector []float32, model string) (*ent.Memory, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(vector) == 0 {
		return nil, NewValidationError("embedding", "must not be empty")
	}
	m, err := existing.Update().
		SetEmbedding(vector).
		SetEmbeddingModel(model).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set embedding: %w", err)
	}
	return m, nil
}

// ListMissingEmbeddings returns non-deleted memories without an embedding,
// oldest first, for bulk backfill.
func (s *MemoryService) ListMissingEmbeddings(ctx context.Context, animaID string, limit int) ([]*ent.Memory, error) {
	memories, err := s.client.Memory.Query().
		Where(
			memory.AnimaIDEQ(animaID),
			memory.IsDeleted(false),
			memory.EmbeddingIsNil(),
		).
		Order(ent.Asc(memory.FieldCreatedAt)).
		Limit(clampLimit(limit, 100, 500)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memories missing embeddings: %w", err)
	}
	return memories, nil
}

// RecordAccess bumps access counters for retrieved memories. Each hit
// extends the decay half-life.
func (s *MemoryService) RecordAccess(ctx context.Context, ids []string, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	err := s.client.Memory.Update().
		Where(memory.IDIn(ids...)).
		AddAccessCount(1).
		SetLastAccessedAt(at).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record memory access: %w", err)
	}
	return nil
}

// memoryStates parses state strings into the generated enum type.
func memoryStates(in []string) ([]memory.State, error) {
	out := make([]memory.State, 0, len(in))
	for _, s := range in {
		st := memory.State(s)
		if err := memory.StateValidator(st); err != nil {
			return nil, NewValidationError("state", fmt.Sprintf("unknown state %q", s))
		}
		out = append(out, st)
	}
	return out, nil
}

// validateUnitRange rejects values outside [0, 1]; nil passes.
func validateUnitRange(field string, v *float64) error {
	if v != nil && (*v < 0 || *v > 1) {
		return NewValidationError(field, "must be in [0, 1]")
	}
	return nil
}
