package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/ent/identity"
	"github.com/hejijunhao/elephantasm/pkg/models"
)

// IdentityService manages the per-anima self-model the pack compiler renders
// as prose.
type IdentityService struct {
	client *ent.Client
}

// NewIdentityService creates a new IdentityService
func NewIdentityService(client *ent.Client) *IdentityService {
	return &IdentityService{client: client}
}

// Get returns the anima's identity, or ErrNotFound when none exists yet.
func (s *IdentityService) Get(ctx context.Context, animaID string) (*ent.Identity, error) {
	ident, err := s.client.Identity.Query().
		Where(identity.AnimaIDEQ(animaID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}
	if ident.IsDeleted {
		return nil, ErrDeleted
	}
	return ident, nil
}

// Upsert creates the identity on first write, then patches provided fields.
// The self-reflection tree is deep-merged so partial updates do not clobber
// sibling branches.
func (s *IdentityService) Upsert(ctx context.Context, animaID string, req models.UpsertIdentityRequest) (*ent.Identity, error) {
	existing, err := s.client.Identity.Query().
		Where(identity.AnimaIDEQ(animaID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		created, cerr := s.client.Identity.Create().
			SetID(uuid.New().String()).
			SetAnimaID(animaID).
			SetNillablePersonalityType(req.PersonalityType).
			SetNillableCommunicationStyle(req.CommunicationStyle).
			SetSelfReflection(req.SelfReflection).
			Save(ctx)
		if cerr != nil {
			return nil, fmt.Errorf("failed to create identity: %w", cerr)
		}
		return created, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}
	if existing.IsDeleted {
		return nil, ErrDeleted
	}

	upd := existing.Update().
		SetNillablePersonalityType(req.PersonalityType).
		SetNillableCommunicationStyle(req.CommunicationStyle)
	if req.SelfReflection != nil {
		upd = upd.SetSelfReflection(deepMerge(existing.SelfReflection, req.SelfReflection))
	}
	ident, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update identity: %w", err)
	}
	return ident, nil
}
