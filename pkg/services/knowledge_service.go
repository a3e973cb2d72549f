package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/ent/knowledge"
	"github.com/hejijunhao/elephantasm/ent/knowledgeauditlog"
	"github.com/hejijunhao/elephantasm/pkg/models"
)

// KnowledgeService manages distilled knowledge items. Every mutation writes
// an immutable audit row alongside the change, inside the same owner session
// transaction.
type KnowledgeService struct {
	client *ent.Client
}

// NewKnowledgeService creates a new KnowledgeService
func NewKnowledgeService(client *ent.Client) *KnowledgeService {
	return &KnowledgeService{client: client}
}

// Create creates a knowledge item and its creation audit row.
func (s *KnowledgeService) Create(ctx context.Context, req models.CreateKnowledgeRequest) (*ent.Knowledge, error) {
	kt := knowledge.Type(req.Type)
	if err := knowledge.TypeValidator(kt); err != nil {
		return nil, NewValidationError("type", fmt.Sprintf("unknown knowledge type %q", req.Type))
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "must not be empty")
	}
	if err := validateUnitRange("confidence", req.Confidence); err != nil {
		return nil, err
	}
	sourceType := knowledge.SourceTypeInternal
	if req.SourceType != "" {
		sourceType = knowledge.SourceType(req.SourceType)
		if err := knowledge.SourceTypeValidator(sourceType); err != nil {
			return nil, NewValidationError("source_type", fmt.Sprintf("unknown source type %q", req.SourceType))
		}
	}

	k, err := s.client.Knowledge.Create().
		SetID(uuid.New().String()).
		SetAnimaID(req.AnimaID).
		SetType(kt).
		SetNillableTopic(nilIfEmpty(req.Topic)).
		SetContent(req.Content).
		SetNillableSummary(nilIfEmpty(req.Summary)).
		SetNillableConfidence(req.Confidence).
		SetSourceType(sourceType).
		SetNillableSourceMemoryID(nilIfEmpty(req.SourceMemoryID)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create knowledge: %w", err)
	}

	if err := s.audit(ctx, k, knowledgeauditlog.ActionCreate, nil, snapshotKnowledge(k), "created", req.TriggeredBy); err != nil {
		return nil, err
	}
	return k, nil
}

// Get returns a knowledge item by id. Soft-deleted items yield ErrDeleted.
func (s *KnowledgeService) Get(ctx context.Context, id string) (*ent.Knowledge, error) {
	k, err := s.client.Knowledge.Query().
		Where(knowledge.IDEQ(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get knowledge: %w", err)
	}
	if k.IsDeleted {
		return nil, ErrDeleted
	}
	return k, nil
}

// List returns knowledge items matching the filters, newest first.
func (s *KnowledgeService) List(ctx context.Context, filters models.KnowledgeFilters) ([]*ent.Knowledge, error) {
	q := s.client.Knowledge.Query()
	if filters.AnimaID != "" {
		q = q.Where(knowledge.AnimaIDEQ(filters.AnimaID))
	}
	if len(filters.Types) > 0 {
		types := make([]knowledge.Type, 0, len(filters.Types))
		for _, t := range filters.Types {
			kt := knowledge.Type(t)
			if err := knowledge.TypeValidator(kt); err != nil {
				return nil, NewValidationError("type", fmt.Sprintf("unknown knowledge type %q", t))
			}
			types = append(types, kt)
		}
		q = q.Where(knowledge.TypeIn(types...))
	}
	if filters.Topic != "" {
		q = q.Where(knowledge.TopicEQ(filters.Topic))
	}
	if !filters.IncludeDeleted {
		q = q.Where(knowledge.IsDeleted(false))
	}
	items, err := q.
		Order(ent.Desc(knowledge.FieldCreatedAt)).
		Limit(clampLimit(filters.Limit, 50, 200)).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list knowledge: %w", err)
	}
	return items, nil
}

// FindBySourceMemory returns non-deleted items distilled from a memory.
// The knowledge-synthesis dedup policies key on this.
func (s *KnowledgeService) FindBySourceMemory(ctx context.Context, animaID, memoryID string) ([]*ent.Knowledge, error) {
	items, err := s.client.Knowledge.Query().
		Where(
			knowledge.AnimaIDEQ(animaID),
			knowledge.SourceMemoryIDEQ(memoryID),
			knowledge.IsDeleted(false),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find knowledge by source memory: %w", err)
	}
	return items, nil
}

// Update patches mutable knowledge fields and writes the audit row.
func (s *KnowledgeService) Update(ctx context.Context, id string, req models.UpdateKnowledgeRequest) (*ent.Knowledge, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Content != nil && *req.Content == "" {
		return nil, NewValidationError("content", "must not be empty")
	}
	if err := validateUnitRange("confidence", req.Confidence); err != nil {
		return nil, err
	}
	before := snapshotKnowledge(existing)

	k, err := existing.Update().
		SetNillableTopic(req.Topic).
		SetNillableContent(req.Content).
		SetNillableSummary(req.Summary).
		SetNillableConfidence(req.Confidence).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update knowledge: %w", err)
	}

	if err := s.audit(ctx, k, knowledgeauditlog.ActionUpdate, before, snapshotKnowledge(k), "updated", req.TriggeredBy); err != nil {
		return nil, err
	}
	return k, nil
}

// SetEmbedding stores a knowledge item's embedding vector.
func (s *KnowledgeService) SetEmbedding(ctx context.Context, id string, vector []float32, model string) (*ent.Knowledge, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(vector) == 0 {
		return nil, NewValidationError("embedding", "must not be empty")
	}
	k, err := existing.Update().
		SetEmbedding(vector).
		SetEmbeddingModel(model).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set knowledge embedding: %w", err)
	}
	return k, nil
}

// SoftDelete marks a knowledge item deleted and writes the audit row.
// Already-deleted items are a no-op.
func (s *KnowledgeService) SoftDelete(ctx context.Context, id, triggeredBy string) error {
	k, err := s.client.Knowledge.Query().
		Where(knowledge.IDEQ(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get knowledge: %w", err)
	}
	if k.IsDeleted {
		return nil
	}
	before := snapshotKnowledge(k)
	k, err = k.Update().SetIsDeleted(true).Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete knowledge: %w", err)
	}
	return s.audit(ctx, k, knowledgeauditlog.ActionDelete, before, snapshotKnowledge(k), "deleted", triggeredBy)
}

// Restore reverses a soft delete and writes the audit row.
func (s *KnowledgeService) Restore(ctx context.Context, id, triggeredBy string) (*ent.Knowledge, error) {
	k, err := s.client.Knowledge.Query().
		Where(knowledge.IDEQ(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get knowledge: %w", err)
	}
	if !k.IsDeleted {
		return k, nil
	}
	before := snapshotKnowledge(k)
	k, err = k.Update().SetIsDeleted(false).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to restore knowledge: %w", err)
	}
	if err := s.audit(ctx, k, knowledgeauditlog.ActionRestore, before, snapshotKnowledge(k), "restored", triggeredBy); err != nil {
		return nil, err
	}
	return k, nil
}

// AuditTrail returns a knowledge item's audit rows, oldest first.
func (s *KnowledgeService) AuditTrail(ctx context.Context, knowledgeID string) ([]*ent.KnowledgeAuditLog, error) {
	logs, err := s.client.KnowledgeAuditLog.Query().
		Where(knowledgeauditlog.KnowledgeIDEQ(knowledgeID)).
		Order(ent.Asc(knowledgeauditlog.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load audit trail: %w", err)
	}
	return logs, nil
}

func (s *KnowledgeService) audit(ctx context.Context, k *ent.Knowledge, action knowledgeauditlog.Action, before, after map[string]interface{}, summary, triggeredBy string) error {
	create := s.client.KnowledgeAuditLog.Create().
		SetID(uuid.New().String()).
		SetKnowledgeID(k.ID).
		SetAction(action).
		SetNillableChangeSummary(nilIfEmpty(summary)).
		SetNillableTriggeredBy(nilIfEmpty(triggeredBy)).
		SetAfterState(after)
	if k.SourceMemoryID != nil {
		create = create.SetSourceType("memory").SetSourceID(*k.SourceMemoryID)
	}
	if before != nil {
		create = create.SetBeforeState(before)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write knowledge audit log: %w", err)
	}
	return nil
}

// snapshotKnowledge captures the auditable fields of a knowledge item.
func snapshotKnowledge(k *ent.Knowledge) map[string]interface{} {
	snap := map[string]interface{}{
		"type":       string(k.Type),
		"content":    k.Content,
		"is_deleted": k.IsDeleted,
	}
	if k.Topic != nil {
		snap["topic"] = *k.Topic
	}
	if k.Summary != nil {
		snap["summary"] = *k.Summary
	}
	if k.Confidence != nil {
		snap["confidence"] = *k.Confidence
	}
	return snap
}
