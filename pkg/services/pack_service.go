package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/ent/memorypack"
	"github.com/hejijunhao/elephantasm/pkg/models"
)

// PackService stores compiled memory packs and enforces the per-anima
// retention bound. Packs are artefacts, not memories: they hard-delete.
type PackService struct {
	client *ent.Client
}

// NewPackService creates a new PackService
func NewPackService(client *ent.Client) *PackService {
	return &PackService{client: client}
}

// Save persists one compiled pack.
func (s *PackService) Save(ctx context.Context, req models.SavePackRequest) (*ent.MemoryPack, error) {
	p, err := s.client.MemoryPack.Create().
		SetID(uuid.New().String()).
		SetAnimaID(req.AnimaID).
		SetNillableQuery(nilIfEmpty(req.Query)).
		SetNillablePreset(nilIfEmpty(req.Preset)).
		SetSessionCount(req.SessionCount).
		SetKnowledgeCount(req.KnowledgeCount).
		SetLongTermCount(req.LongTermCount).
		SetTokenCount(req.TokenCount).
		SetMaxTokens(req.MaxTokens).
		SetContent(req.Content).
		SetCompiledAt(req.CompiledAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save memory pack: %w", err)
	}
	return p, nil
}

// Get returns a pack by id.
func (s *PackService) Get(ctx context.Context, id string) (*ent.MemoryPack, error) {
	p, err := s.client.MemoryPack.Query().
		Where(memorypack.IDEQ(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get memory pack: %w", err)
	}
	return p, nil
}

// List returns an anima's packs, most recently compiled first.
func (s *PackService) List(ctx context.Context, animaID string, limit, offset int) ([]*ent.MemoryPack, error) {
	packs, err := s.client.MemoryPack.Query().
		Where(memorypack.AnimaIDEQ(animaID)).
		Order(ent.Desc(memorypack.FieldCompiledAt)).
		Limit(clampLimit(limit, 20, 100)).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memory packs: %w", err)
	}
	return packs, nil
}

// EnforceRetention hard-deletes the oldest packs beyond keep for an anima
// and returns how many were removed.
func (s *PackService) EnforceRetention(ctx context.Context, animaID string, keep int) (int, error) {
	if keep <= 0 {
		return 0, NewValidationError("keep", "must be positive")
	}
	stale, err := s.client.MemoryPack.Query().
		Where(memorypack.AnimaIDEQ(animaID)).
		Order(ent.Desc(memorypack.FieldCompiledAt)).
		Offset(keep).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to find stale packs: %w", err)
	}
	if len(stale) == 0 {
		return 0, nil
	}
	n, err := s.client.MemoryPack.Delete().
		Where(memorypack.IDIn(stale...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune stale packs: %w", err)
	}
	return n, nil
}
