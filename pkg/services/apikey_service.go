package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/ent/apikey"
)

// APIKeyService stores API key records. Hashing and verification live in
// pkg/auth; this service only persists what auth hands it. Like users, keys
// sit outside row-level security so the middleware can look them up by
// prefix before any identity is established.
type APIKeyService struct {
	client *ent.Client
}

// NewAPIKeyService creates a new APIKeyService
func NewAPIKeyService(client *ent.Client) *APIKeyService {
	return &APIKeyService{client: client}
}

// Create stores a new key record and returns it.
func (s *APIKeyService) Create(ctx context.Context, userID, name, description, keyHash, keyPrefix string, expiresAt *time.Time) (*ent.APIKey, error) {
	if name == "" {
		return nil, NewValidationError("name", "must not be empty")
	}
	k, err := s.client.APIKey.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetName(name).
		SetNillableDescription(nilIfEmpty(description)).
		SetKeyHash(keyHash).
		SetKeyPrefix(keyPrefix).
		SetNillableExpiresAt(expiresAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create api key: %w", err)
	}
	return k, nil
}

// List returns a user's keys, newest first. Hashes are schema-sensitive and
// never serialize.
func (s *APIKeyService) List(ctx context.Context, userID string) ([]*ent.APIKey, error) {
	keys, err := s.client.APIKey.Query().
		Where(apikey.UserIDEQ(userID)).
		Order(ent.Desc(apikey.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}
	return keys, nil
}

// Get returns a user's key by id.
func (s *APIKeyService) Get(ctx context.Context, userID, id string) (*ent.APIKey, error) {
	k, err := s.client.APIKey.Query().
		Where(apikey.IDEQ(id), apikey.UserIDEQ(userID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get api key: %w", err)
	}
	return k, nil
}

// FindActiveByPrefix returns active, unexpired candidates for a key prefix.
// Prefixes are not unique, so verification must bcrypt-compare each.
func (s *APIKeyService) FindActiveByPrefix(ctx context.Context, prefix string) ([]*ent.APIKey, error) {
	now := time.Now().UTC()
	keys, err := s.client.APIKey.Query().
		Where(
			apikey.KeyPrefixEQ(prefix),
			apikey.IsActive(true),
			apikey.Or(
				apikey.ExpiresAtIsNil(),
				apikey.ExpiresAtGT(now),
			),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find api keys by prefix: %w", err)
	}
	return keys, nil
}

// TouchUsage stamps last_used_at and bumps the request counter.
func (s *APIKeyService) TouchUsage(ctx context.Context, id string) error {
	err := s.client.APIKey.UpdateOneID(id).
		SetLastUsedAt(time.Now().UTC()).
		AddRequestCount(1).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to touch api key usage: %w", err)
	}
	return nil
}

// Revoke deactivates a key. Revoking an already-revoked key yields
// ErrAlreadyExists.
func (s *APIKeyService) Revoke(ctx context.Context, userID, id string) (*ent.APIKey, error) {
	k, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !k.IsActive {
		return nil, fmt.Errorf("api key %s already revoked: %w", id, ErrAlreadyExists)
	}
	k, err = k.Update().SetIsActive(false).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to revoke api key: %w", err)
	}
	return k, nil
}

// Delete removes a key record permanently.
func (s *APIKeyService) Delete(ctx context.Context, userID, id string) error {
	k, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.client.APIKey.DeleteOne(k).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete api key: %w", err)
	}
	return nil
}
