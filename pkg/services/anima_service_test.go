package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hejijunhao/elephantasm/pkg/models"
)

func TestAnimaService(t *testing.T) {
	client, u, _ := setupTenant(t)
	ctx := context.Background()
	svc := NewAnimaService(client)

	t.Run("create requires name and organization", func(t *testing.T) {
		var verr *ValidationError
		_, err := svc.Create(ctx, u.ID, models.CreateAnimaRequest{OrganizationID: "org-1"})
		require.ErrorAs(t, err, &verr)
		_, err = svc.Create(ctx, u.ID, models.CreateAnimaRequest{Name: "x"})
		require.ErrorAs(t, err, &verr)
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := svc.Get(ctx, "no-such-anima")
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("list excludes dormant by default", func(t *testing.T) {
		a, err := svc.Create(ctx, u.ID, models.CreateAnimaRequest{Name: "Sleeper", OrganizationID: "org-1"})
		require.NoError(t, err)
		dormant := true
		_, err = svc.Update(ctx, a.ID, models.UpdateAnimaRequest{IsDormant: &dormant})
		require.NoError(t, err)

		animas, err := svc.List(ctx, models.AnimaFilters{})
		require.NoError(t, err)
		for _, got := range animas {
			assert.NotEqual(t, a.ID, got.ID)
		}

		animas, err = svc.List(ctx, models.AnimaFilters{IncludeDormant: true})
		require.NoError(t, err)
		found := false
		for _, got := range animas {
			found = found || got.ID == a.ID
		}
		assert.True(t, found)
	})

	t.Run("cascade soft delete and restore", func(t *testing.T) {
		a, err := svc.Create(ctx, u.ID, models.CreateAnimaRequest{Name: "Cascade", OrganizationID: "org-1"})
		require.NoError(t, err)

		evtSvc := NewEventService(client)
		var evtIDs []string
		for i := 0; i < 2; i++ {
			evt, err := evtSvc.Create(ctx, models.CreateEventRequest{
				AnimaID: a.ID, Type: "message.in", Content: "cascade event",
			})
			require.NoError(t, err)
			evtIDs = append(evtIDs, evt.ID)
		}
		memSvc := NewMemoryService(client)
		m, err := memSvc.Create(ctx, models.CreateMemoryRequest{
			AnimaID: a.ID, Content: "cascade memory",
		})
		require.NoError(t, err)
		_, err = memSvc.LinkEvents(ctx, m.ID, evtIDs[:1], nil)
		require.NoError(t, err)
		k, err := NewKnowledgeService(client).Create(ctx, models.CreateKnowledgeRequest{
			AnimaID: a.ID, Type: "fact", Content: "a fact long enough to pass validation",
		})
		require.NoError(t, err)

		cfgSvc := NewConfigService(client)
		_, err = cfgSvc.GetSynthesisConfig(ctx, a.ID)
		require.NoError(t, err)
		_, err = cfgSvc.GetIOConfig(ctx, a.ID)
		require.NoError(t, err)
		_, err = NewPackService(client).Save(ctx, models.SavePackRequest{
			AnimaID:    a.ID,
			Preset:     "conversational",
			Content:    map[string]interface{}{"prompt": "cascade pack"},
			CompiledAt: time.Now().UTC(),
		})
		require.NoError(t, err)
		dreamSvc := NewDreamService(client)
		sess, err := dreamSvc.StartSession(ctx, a.ID, "manual", "", nil)
		require.NoError(t, err)
		_, err = dreamSvc.Complete(ctx, sess.ID, "done")
		require.NoError(t, err)

		result, err := svc.SoftDelete(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Counts["events"])
		assert.Equal(t, 1, result.Counts["memories"])
		assert.Equal(t, 1, result.Counts["knowledge_items"])
		assert.Equal(t, 1, result.Counts["animas"])
		assert.Equal(t, 1, result.Counts["memory_events"])
		assert.Equal(t, 1, result.Counts["memory_packs"])
		assert.Equal(t, 1, result.Counts["dream_sessions"])
		assert.Equal(t, 1, result.Counts["synthesis_configs"])
		assert.Equal(t, 1, result.Counts["io_configs"])

		_, err = svc.Get(ctx, a.ID)
		assert.True(t, errors.Is(err, ErrDeleted))
		_, err = memSvc.Get(ctx, m.ID)
		assert.True(t, errors.Is(err, ErrDeleted))
		_, err = NewKnowledgeService(client).Get(ctx, k.ID)
		assert.True(t, errors.Is(err, ErrDeleted))

		// The flagless children are gone, not hidden.
		n, err := client.MemoryEvent.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		n, err = client.MemoryPack.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		n, err = client.DreamSession.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		n, err = client.SynthesisConfig.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		n, err = client.IOConfig.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		restored, err := svc.Restore(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, restored.Counts["events"])
		assert.Equal(t, 1, restored.Counts["memories"])
		assert.Equal(t, 1, restored.Counts["knowledge_items"])
		assert.Equal(t, 1, restored.Counts["animas"])
		assert.Equal(t, 1, restored.Counts["synthesis_configs"])
		assert.Equal(t, 1, restored.Counts["io_configs"])

		got, err := svc.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.False(t, got.IsDeleted)

		// Default configs are back in place.
		cfg, err := client.SynthesisConfig.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, 10.0, cfg.Threshold)
		n, err = client.IOConfig.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("restore of a live anima conflicts", func(t *testing.T) {
		a, err := svc.Create(ctx, u.ID, models.CreateAnimaRequest{Name: "Live", OrganizationID: "org-1"})
		require.NoError(t, err)
		_, err = svc.Restore(ctx, a.ID)
		assert.True(t, errors.Is(err, ErrAlreadyExists))
	})
}
