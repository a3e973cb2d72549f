package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/pkg/services"
	testutil "github.com/hejijunhao/elephantasm/test/util"
)

func setupKeyManager(t *testing.T) (*KeyManager, *ent.Client, string) {
	client, _ := testutil.SetupTestDatabase(t)
	u, err := services.NewUserService(client).
		GetOrCreateByExternalSubject(context.Background(), "sub-"+uuid.New().String(), "")
	require.NoError(t, err)
	return NewKeyManager(client), client, u.ID
}

func TestKeyManagerIssue(t *testing.T) {
	m, _, userID := setupKeyManager(t)
	ctx := context.Background()

	t.Run("name required", func(t *testing.T) {
		var verr *services.ValidationError
		_, err := m.Issue(ctx, userID, "", "", nil)
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("key format", func(t *testing.T) {
		created, err := m.Issue(ctx, userID, "ci", "pipeline key", nil)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(created.Key, KeyPrefixLive))
		assert.Len(t, created.Key, len(KeyPrefixLive)+48)
		assert.Equal(t, created.Key[:keyPrefixLen], created.KeyPrefix)
		assert.NotEmpty(t, created.ID)
		assert.Nil(t, created.ExpiresAt)
	})

	t.Run("two keys never collide", func(t *testing.T) {
		k1, err := m.Issue(ctx, userID, "a", "", nil)
		require.NoError(t, err)
		k2, err := m.Issue(ctx, userID, "b", "", nil)
		require.NoError(t, err)
		assert.NotEqual(t, k1.Key, k2.Key)
	})
}

func TestKeyManagerVerify(t *testing.T) {
	m, client, userID := setupKeyManager(t)
	ctx := context.Background()
	keySvc := services.NewAPIKeyService(client)

	created, err := m.Issue(ctx, userID, "verify", "", nil)
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		got, err := m.Verify(ctx, created.Key)
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("usage is recorded", func(t *testing.T) {
		key, err := keySvc.Get(ctx, userID, created.ID)
		require.NoError(t, err)
		require.NotNil(t, key.LastUsedAt)
		assert.Greater(t, key.RequestCount, 0)
	})

	t.Run("malformed tokens are rejected uniformly", func(t *testing.T) {
		for _, token := range []string{"", "Bearer x", "sk_test_deadbeef", created.Key[:10]} {
			_, err := m.Verify(ctx, token)
			assert.True(t, errors.Is(err, ErrInvalidCredential), "token %q", token)
		}
	})

	t.Run("tampered key is rejected", func(t *testing.T) {
		tampered := created.Key[:len(created.Key)-1] + "0"
		if tampered == created.Key {
			tampered = created.Key[:len(created.Key)-1] + "1"
		}
		_, err := m.Verify(ctx, tampered)
		assert.True(t, errors.Is(err, ErrInvalidCredential))
	})

	t.Run("expired key is rejected", func(t *testing.T) {
		past := time.Now().UTC().Add(-time.Hour)
		expired, err := m.Issue(ctx, userID, "expired", "", &past)
		require.NoError(t, err)
		_, err = m.Verify(ctx, expired.Key)
		assert.True(t, errors.Is(err, ErrInvalidCredential))
	})

	t.Run("revoked key is rejected", func(t *testing.T) {
		revokable, err := m.Issue(ctx, userID, "revokable", "", nil)
		require.NoError(t, err)
		_, err = m.Verify(ctx, revokable.Key)
		require.NoError(t, err)

		_, err = keySvc.Revoke(ctx, userID, revokable.ID)
		require.NoError(t, err)
		_, err = m.Verify(ctx, revokable.Key)
		assert.True(t, errors.Is(err, ErrInvalidCredential))
	})
}
