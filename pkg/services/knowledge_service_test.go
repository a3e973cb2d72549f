package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hejijunhao/elephantasm/ent/knowledgeauditlog"
	"github.com/hejijunhao/elephantasm/pkg/models"
)

func TestKnowledgeService(t *testing.T) {
	client, _, a := setupTenant(t)
	ctx := context.Background()
	svc := NewKnowledgeService(client)

	t.Run("create validates type and source type", func(t *testing.T) {
		var verr *ValidationError
		_, err := svc.Create(ctx, models.CreateKnowledgeRequest{AnimaID: a.ID, Type: "rumor", Content: "x"})
		require.ErrorAs(t, err, &verr)
		_, err = svc.Create(ctx, models.CreateKnowledgeRequest{
			AnimaID: a.ID, Type: "fact", Content: "valid content", SourceType: "divination",
		})
		require.ErrorAs(t, err, &verr)
	})

	t.Run("lifecycle writes the audit trail", func(t *testing.T) {
		k, err := svc.Create(ctx, models.CreateKnowledgeRequest{
			AnimaID:     a.ID,
			Type:        "fact",
			Content:     "the user prefers terse answers",
			Confidence:  floatPtr(0.8),
			TriggeredBy: "test-user",
		})
		require.NoError(t, err)

		_, err = svc.Update(ctx, k.ID, models.UpdateKnowledgeRequest{
			Summary:     strPtr("terse answers"),
			TriggeredBy: "test-user",
		})
		require.NoError(t, err)

		require.NoError(t, svc.SoftDelete(ctx, k.ID, "test-user"))
		_, err = svc.Get(ctx, k.ID)
		assert.True(t, errors.Is(err, ErrDeleted))

		restored, err := svc.Restore(ctx, k.ID, "test-user")
		require.NoError(t, err)
		assert.False(t, restored.IsDeleted)

		trail, err := svc.AuditTrail(ctx, k.ID)
		require.NoError(t, err)
		require.Len(t, trail, 4)
		assert.Equal(t, knowledgeauditlog.ActionCreate, trail[0].Action)
		assert.Equal(t, knowledgeauditlog.ActionUpdate, trail[1].Action)
		assert.Equal(t, knowledgeauditlog.ActionDelete, trail[2].Action)
		assert.Equal(t, knowledgeauditlog.ActionRestore, trail[3].Action)

		assert.Nil(t, trail[0].BeforeState)
		assert.Equal(t, true, trail[2].AfterState["is_deleted"])
		require.NotNil(t, trail[0].TriggeredBy)
		assert.Equal(t, "test-user", *trail[0].TriggeredBy)
	})

	t.Run("delete and restore are idempotent", func(t *testing.T) {
		k, err := svc.Create(ctx, models.CreateKnowledgeRequest{
			AnimaID: a.ID, Type: "fact", Content: "idempotency check content",
		})
		require.NoError(t, err)

		require.NoError(t, svc.SoftDelete(ctx, k.ID, ""))
		require.NoError(t, svc.SoftDelete(ctx, k.ID, ""))
		_, err = svc.Restore(ctx, k.ID, "")
		require.NoError(t, err)
		_, err = svc.Restore(ctx, k.ID, "")
		require.NoError(t, err)

		trail, err := svc.AuditTrail(ctx, k.ID)
		require.NoError(t, err)
		// One row per state change; the repeated calls add nothing.
		assert.Len(t, trail, 3)
	})

	t.Run("find by source memory excludes deleted", func(t *testing.T) {
		m, err := NewMemoryService(client).Create(ctx, models.CreateMemoryRequest{
			AnimaID: a.ID, Content: "source memory",
		})
		require.NoError(t, err)

		k1, err := svc.Create(ctx, models.CreateKnowledgeRequest{
			AnimaID: a.ID, Type: "fact", Content: "distilled fact one", SourceMemoryID: m.ID,
		})
		require.NoError(t, err)
		k2, err := svc.Create(ctx, models.CreateKnowledgeRequest{
			AnimaID: a.ID, Type: "fact", Content: "distilled fact two", SourceMemoryID: m.ID,
		})
		require.NoError(t, err)

		require.NoError(t, svc.SoftDelete(ctx, k2.ID, ""))

		found, err := svc.FindBySourceMemory(ctx, a.ID, m.ID)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, k1.ID, found[0].ID)
	})

	t.Run("list filters by type and topic", func(t *testing.T) {
		_, err := svc.Create(ctx, models.CreateKnowledgeRequest{
			AnimaID: a.ID, Type: "method", Topic: "testing", Content: "table-driven tests read well",
		})
		require.NoError(t, err)

		items, err := svc.List(ctx, models.KnowledgeFilters{AnimaID: a.ID, Types: []string{"method"}, Topic: "testing"})
		require.NoError(t, err)
		require.Len(t, items, 1)

		_, err = svc.List(ctx, models.KnowledgeFilters{AnimaID: a.ID, Types: []string{"rumor"}})
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}
