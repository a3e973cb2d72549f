// Package auth provides request authentication: opaque API keys and
// provider-issued JWTs, both resolving to an internal user id.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/pkg/models"
	"github.com/hejijunhao/elephantasm/pkg/services"
)

const (
	// KeyPrefixLive marks an opaque API key token.
	KeyPrefixLive = "sk_live_"

	// keyPrefixLen is how many leading characters identify the key row.
	keyPrefixLen = 12

	// keyRandomBytes is the entropy behind one key.
	keyRandomBytes = 24
)

// ErrInvalidCredential is returned for any token that fails verification.
// Callers must not learn whether the prefix matched, the hash failed, or the
// key expired.
var ErrInvalidCredential = errors.New("invalid credential")

// KeyManager issues and verifies API keys. It operates on the root client:
// the api_keys and users tables sit outside row filtering because they are
// consulted before any owner is known.
type KeyManager struct {
	keys *services.APIKeyService
}

// NewKeyManager creates a key manager over the root client.
func NewKeyManager(root *ent.Client) *KeyManager {
	return &KeyManager{keys: services.NewAPIKeyService(root)}
}

// Issue mints a new key for the user. The plaintext appears only in the
// returned value; the row stores a bcrypt hash and the lookup prefix.
func (m *KeyManager) Issue(ctx context.Context, userID, name, description string, expiresAt *time.Time) (*models.CreatedAPIKey, error) {
	if name == "" {
		return nil, services.NewValidationError("name", "name is required")
	}

	raw := make([]byte, keyRandomBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("failed to generate key material: %w", err)
	}
	plaintext := KeyPrefixLive + hex.EncodeToString(raw)
	prefix := plaintext[:keyPrefixLen]

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash key: %w", err)
	}

	key, err := m.keys.Create(ctx, userID, name, description, string(hash), prefix, expiresAt)
	if err != nil {
		return nil, err
	}
	return &models.CreatedAPIKey{
		ID:        key.ID,
		Name:      key.Name,
		Key:       plaintext,
		KeyPrefix: prefix,
		ExpiresAt: key.ExpiresAt,
		CreatedAt: key.CreatedAt,
	}, nil
}

// Verify resolves a presented key to its owning user id. The prefix narrows
// the candidate rows; the bcrypt comparison picks the match. Usage counters
// update on success.
func (m *KeyManager) Verify(ctx context.Context, token string) (string, error) {
	if !strings.HasPrefix(token, KeyPrefixLive) || len(token) < keyPrefixLen {
		return "", ErrInvalidCredential
	}

	candidates, err := m.keys.FindActiveByPrefix(ctx, token[:keyPrefixLen])
	if err != nil {
		return "", fmt.Errorf("failed to look up key: %w", err)
	}
	for _, key := range candidates {
		if bcrypt.CompareHashAndPassword([]byte(key.KeyHash), []byte(token)) == nil {
			if err := m.keys.TouchUsage(ctx, key.ID); err != nil {
				return "", fmt.Errorf("failed to record key usage: %w", err)
			}
			return key.UserID, nil
		}
	}
	return "", ErrInvalidCredential
}
