package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hejijunhao/elephantasm/pkg/models"
)

func TestComputeDedupeKey(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("deterministic", func(t *testing.T) {
		k1 := ComputeDedupeKey("a", "message.in", "hello", at, "")
		k2 := ComputeDedupeKey("a", "message.in", "hello", at, "")
		assert.Equal(t, k1, k2)
		assert.Len(t, k1, 32)
	})

	t.Run("sensitive to each component", func(t *testing.T) {
		base := ComputeDedupeKey("a", "message.in", "hello", at, "")
		assert.NotEqual(t, base, ComputeDedupeKey("b", "message.in", "hello", at, ""))
		assert.NotEqual(t, base, ComputeDedupeKey("a", "message.out", "hello", at, ""))
		assert.NotEqual(t, base, ComputeDedupeKey("a", "message.in", "bye", at, ""))
		assert.NotEqual(t, base, ComputeDedupeKey("a", "message.in", "hello", at.Add(time.Second), ""))
		assert.NotEqual(t, base, ComputeDedupeKey("a", "message.in", "hello", at, "s3://x"))
	})

	t.Run("only the content prefix participates", func(t *testing.T) {
		long := make([]byte, 150)
		for i := range long {
			long[i] = 'x'
		}
		k1 := ComputeDedupeKey("a", "message.in", string(long), at, "")
		k2 := ComputeDedupeKey("a", "message.in", string(long)+"tail", at, "")
		assert.Equal(t, k1, k2)
	})

	t.Run("prefix counts characters, not bytes", func(t *testing.T) {
		// Each é is two bytes; a byte cut at 100 would split the 50th rune.
		k1 := ComputeDedupeKey("a", "message.in", strings.Repeat("é", 150), at, "")
		k2 := ComputeDedupeKey("a", "message.in", strings.Repeat("é", 100)+"tail", at, "")
		assert.Equal(t, k1, k2)

		k3 := ComputeDedupeKey("a", "message.in", strings.Repeat("é", 99)+"x", at, "")
		assert.NotEqual(t, k1, k3)
	})
}

func TestEventService(t *testing.T) {
	client, _, a := setupTenant(t)
	ctx := context.Background()
	svc := NewEventService(client)

	t.Run("create validates type and content", func(t *testing.T) {
		_, err := svc.Create(ctx, models.CreateEventRequest{AnimaID: a.ID, Type: "bogus", Content: "x"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)

		_, err = svc.Create(ctx, models.CreateEventRequest{AnimaID: a.ID, Type: "message.in", Content: ""})
		require.ErrorAs(t, err, &verr)
	})

	t.Run("dedupe round trip", func(t *testing.T) {
		req := models.CreateEventRequest{
			AnimaID:    a.ID,
			Type:       "message.in",
			Content:    "the user asked about deadlines",
			OccurredAt: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
			Dedupe:     true,
		}
		first, err := svc.Create(ctx, req)
		require.NoError(t, err)
		assert.NotEmpty(t, first.ID)

		_, err = svc.Create(ctx, req)
		assert.True(t, errors.Is(err, ErrAlreadyExists))
	})

	t.Run("ingestion touches anima activity", func(t *testing.T) {
		at := time.Date(2026, 2, 2, 12, 0, 0, 0, time.UTC)
		_, err := svc.Create(ctx, models.CreateEventRequest{
			AnimaID:    a.ID,
			Type:       "message.out",
			Content:    "replied about deadlines",
			OccurredAt: at,
		})
		require.NoError(t, err)

		updated, err := NewAnimaService(client).Get(ctx, a.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.LastActivityAt)
		assert.True(t, updated.LastActivityAt.Equal(at))
	})

	t.Run("list since returns chronological order", func(t *testing.T) {
		base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		for i := 3; i >= 1; i-- {
			_, err := svc.Create(ctx, models.CreateEventRequest{
				AnimaID:    a.ID,
				Type:       "message.in",
				Content:    "ordered event",
				OccurredAt: base.Add(time.Duration(i) * time.Minute),
			})
			require.NoError(t, err)
		}

		events, err := svc.ListSince(ctx, a.ID, base)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.True(t, events[0].OccurredAt.Before(events[1].OccurredAt))
		assert.True(t, events[1].OccurredAt.Before(events[2].OccurredAt))

		// The boundary is exclusive.
		events, err = svc.ListSince(ctx, a.ID, base.Add(3*time.Minute))
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("soft delete hides and is idempotent", func(t *testing.T) {
		evt, err := svc.Create(ctx, models.CreateEventRequest{
			AnimaID: a.ID, Type: "system", Content: "to be removed",
		})
		require.NoError(t, err)

		require.NoError(t, svc.SoftDelete(ctx, evt.ID))
		require.NoError(t, svc.SoftDelete(ctx, evt.ID))

		_, err = svc.Get(ctx, evt.ID)
		assert.True(t, errors.Is(err, ErrDeleted))
	})

	t.Run("update patches summary and importance", func(t *testing.T) {
		evt, err := svc.Create(ctx, models.CreateEventRequest{
			AnimaID: a.ID, Type: "message.in", Content: "patchable",
		})
		require.NoError(t, err)

		updated, err := svc.Update(ctx, evt.ID, models.UpdateEventRequest{
			Summary:    strPtr("short form"),
			Importance: floatPtr(0.8),
		})
		require.NoError(t, err)
		require.NotNil(t, updated.Summary)
		assert.Equal(t, "short form", *updated.Summary)

		_, err = svc.Update(ctx, evt.ID, models.UpdateEventRequest{Importance: floatPtr(1.5)})
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}
