package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hejijunhao/elephantasm/pkg/models"
)

func TestMemoryService(t *testing.T) {
	client, _, a := setupTenant(t)
	ctx := context.Background()
	svc := NewMemoryService(client)
	evtSvc := NewEventService(client)

	t.Run("create and restore", func(t *testing.T) {
		m, err := svc.Create(ctx, models.CreateMemoryRequest{
			AnimaID:    a.ID,
			Content:    "the user moved to lisbon",
			Summary:    "relocation",
			Importance: floatPtr(0.8),
			Confidence: floatPtr(0.9),
		})
		require.NoError(t, err)
		assert.Equal(t, "active", string(m.State))

		require.NoError(t, svc.SoftDelete(ctx, m.ID))
		_, err = svc.Get(ctx, m.ID)
		assert.True(t, errors.Is(err, ErrDeleted))

		restored, err := svc.Restore(ctx, m.ID)
		require.NoError(t, err)
		assert.False(t, restored.IsDeleted)
	})

	t.Run("create validates bounds", func(t *testing.T) {
		var verr *ValidationError
		_, err := svc.Create(ctx, models.CreateMemoryRequest{AnimaID: a.ID, Content: "x", Importance: floatPtr(2)})
		require.ErrorAs(t, err, &verr)
		_, err = svc.Create(ctx, models.CreateMemoryRequest{AnimaID: a.ID, Content: ""})
		require.ErrorAs(t, err, &verr)
	})

	t.Run("provenance links are unique per pair", func(t *testing.T) {
		m, err := svc.Create(ctx, models.CreateMemoryRequest{AnimaID: a.ID, Content: "linked memory"})
		require.NoError(t, err)
		evt, err := evtSvc.Create(ctx, models.CreateEventRequest{AnimaID: a.ID, Type: "message.in", Content: "source"})
		require.NoError(t, err)

		links, err := svc.LinkEvents(ctx, m.ID, []string{evt.ID}, floatPtr(0.7))
		require.NoError(t, err)
		require.Len(t, links, 1)

		_, err = svc.LinkEvents(ctx, m.ID, []string{evt.ID}, nil)
		assert.True(t, errors.Is(err, ErrAlreadyExists))

		events, err := svc.SourceEvents(ctx, m.ID)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, evt.ID, events[0].ID)
	})

	t.Run("embedding lifecycle", func(t *testing.T) {
		m, err := svc.Create(ctx, models.CreateMemoryRequest{AnimaID: a.ID, Content: "needs vector"})
		require.NoError(t, err)

		missing, err := svc.ListMissingEmbeddings(ctx, a.ID, 100)
		require.NoError(t, err)
		found := false
		for _, got := range missing {
			found = found || got.ID == m.ID
		}
		assert.True(t, found)

		_, err = svc.SetEmbedding(ctx, m.ID, nil, "model")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)

		updated, err := svc.SetEmbedding(ctx, m.ID, []float32{0.1, 0.2, 0.3}, "gemini-embedding-001")
		require.NoError(t, err)
		assert.Len(t, updated.Embedding, 3)

		missing, err = svc.ListMissingEmbeddings(ctx, a.ID, 100)
		require.NoError(t, err)
		for _, got := range missing {
			assert.NotEqual(t, m.ID, got.ID)
		}
	})

	t.Run("record access bumps counters", func(t *testing.T) {
		m, err := svc.Create(ctx, models.CreateMemoryRequest{AnimaID: a.ID, Content: "accessed"})
		require.NoError(t, err)

		at := m.CreatedAt.Add(1)
		require.NoError(t, svc.RecordAccess(ctx, []string{m.ID}, at))
		require.NoError(t, svc.RecordAccess(ctx, []string{m.ID}, at))

		got, err := svc.Get(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.AccessCount)
		require.NotNil(t, got.LastAccessedAt)
	})

	t.Run("state transition via update", func(t *testing.T) {
		m, err := svc.Create(ctx, models.CreateMemoryRequest{AnimaID: a.ID, Content: "will archive"})
		require.NoError(t, err)

		next := "archived"
		updated, err := svc.Update(ctx, m.ID, models.UpdateMemoryRequest{State: &next})
		require.NoError(t, err)
		assert.Equal(t, "archived", string(updated.State))

		bad := "bogus"
		_, err = svc.Update(ctx, m.ID, models.UpdateMemoryRequest{State: &bad})
		assert.Error(t, err)
	})
}
