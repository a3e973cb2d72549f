package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hejijunhao/elephantasm/pkg/models"
)

func TestPackService(t *testing.T) {
	client, _, a := setupTenant(t)
	ctx := context.Background()
	svc := NewPackService(client)

	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	savePack := func(t *testing.T, i int) {
		t.Helper()
		_, err := svc.Save(ctx, models.SavePackRequest{
			AnimaID:    a.ID,
			Query:      fmt.Sprintf("query %d", i),
			Preset:     "conversational",
			TokenCount: 100,
			MaxTokens:  2000,
			Content:    map[string]interface{}{"prompt": "hello"},
			CompiledAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	t.Run("save and list newest first", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			savePack(t, i)
		}
		packs, err := svc.List(ctx, a.ID, 0, 0)
		require.NoError(t, err)
		require.Len(t, packs, 3)
		assert.True(t, packs[0].CompiledAt.After(packs[1].CompiledAt))
	})

	t.Run("retention keeps the newest", func(t *testing.T) {
		for i := 3; i < 8; i++ {
			savePack(t, i)
		}
		deleted, err := svc.EnforceRetention(ctx, a.ID, 5)
		require.NoError(t, err)
		assert.Equal(t, 3, deleted)

		packs, err := svc.List(ctx, a.ID, 0, 0)
		require.NoError(t, err)
		require.Len(t, packs, 5)
		assert.True(t, packs[0].CompiledAt.Equal(base.Add(7*time.Minute)))

		// Within bound: nothing to prune.
		deleted, err = svc.EnforceRetention(ctx, a.ID, 100)
		require.NoError(t, err)
		assert.Equal(t, 0, deleted)
	})

	t.Run("retention rejects a non-positive bound", func(t *testing.T) {
		var verr *ValidationError
		_, err := svc.EnforceRetention(ctx, a.ID, 0)
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("get unknown pack", func(t *testing.T) {
		_, err := svc.Get(ctx, "no-such-pack")
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}
