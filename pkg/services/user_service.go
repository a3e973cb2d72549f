package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/ent/user"
)

// UserService manages the ownership root. Users sit outside row-level
// security; the service runs on the root client so the auth boundary can
// resolve identities before any tenancy session exists.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client}
}

// GetOrCreateByExternalSubject resolves a JWT subject to a local user,
// provisioning the row on first sight.
func (s *UserService) GetOrCreateByExternalSubject(ctx context.Context, subject, email string) (*ent.User, error) {
	if subject == "" {
		return nil, NewValidationError("subject", "must not be empty")
	}
	u, err := s.client.User.Query().
		Where(user.ExternalSubjectEQ(subject)).
		Only(ctx)
	if err == nil {
		return u, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up user by subject: %w", err)
	}

	if email == "" {
		// Unique email column needs something stable per subject.
		email = subject + "@unknown.invalid"
	}
	u, err = s.client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(email).
		SetExternalSubject(subject).
		Save(ctx)
	if ent.IsConstraintError(err) {
		u, err = s.client.User.Query().
			Where(user.ExternalSubjectEQ(subject)).
			Only(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}
	return u, nil
}

// GetByEmail returns a user by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*ent.User, error) {
	u, err := s.client.User.Query().
		Where(user.EmailEQ(email)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id string) (*ent.User, error) {
	u, err := s.client.User.Query().
		Where(user.IDEQ(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}
