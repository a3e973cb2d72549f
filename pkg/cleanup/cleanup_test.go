package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/pkg/models"
	"github.com/hejijunhao/elephantasm/pkg/services"
	testutil "github.com/hejijunhao/elephantasm/test/util"
)

func seedTenant(t *testing.T, client *ent.Client, email string) *ent.Anima {
	t.Helper()
	ctx := context.Background()

	u, err := services.NewUserService(client).GetOrCreateByExternalSubject(ctx, "sub-"+uuid.New().String(), email)
	require.NoError(t, err)
	a, err := services.NewAnimaService(client).Create(ctx, u.ID, models.CreateAnimaRequest{
		Name:           "Purge Target",
		OrganizationID: "org-1",
	})
	require.NoError(t, err)

	evt, err := services.NewEventService(client).Create(ctx, models.CreateEventRequest{
		AnimaID: a.ID, Type: "message.in", Content: "seed event",
	})
	require.NoError(t, err)
	memSvc := services.NewMemoryService(client)
	m, err := memSvc.Create(ctx, models.CreateMemoryRequest{AnimaID: a.ID, Content: "seed memory"})
	require.NoError(t, err)
	_, err = memSvc.LinkEvents(ctx, m.ID, []string{evt.ID}, nil)
	require.NoError(t, err)
	_, err = services.NewKnowledgeService(client).Create(ctx, models.CreateKnowledgeRequest{
		AnimaID: a.ID, Type: "fact", Content: "seed knowledge content",
	})
	require.NoError(t, err)
	_, err = services.NewConfigService(client).GetSynthesisConfig(ctx, a.ID)
	require.NoError(t, err)

	return a
}

func countFor(results []TableCount, table string) int {
	for _, r := range results {
		if r.Table == table {
			return r.Count
		}
	}
	return -1
}

func TestPurgeUser(t *testing.T) {
	client, _ := testutil.SetupTestDatabase(t)
	ctx := context.Background()
	seedTenant(t, client, "victim@example.com")
	survivor := seedTenant(t, client, "bystander@example.com")
	p := NewPurger(client)

	t.Run("unknown email", func(t *testing.T) {
		_, err := p.PurgeUser(ctx, "nobody@example.com", true)
		assert.Error(t, err)
	})

	t.Run("dry run counts without deleting", func(t *testing.T) {
		results, err := p.PurgeUser(ctx, "victim@example.com", true)
		require.NoError(t, err)
		assert.Equal(t, 1, countFor(results, "animas"))
		assert.Equal(t, 1, countFor(results, "events"))
		assert.Equal(t, 1, countFor(results, "memories"))
		assert.Equal(t, 1, countFor(results, "memory_events"))
		assert.Equal(t, 1, countFor(results, "knowledge_items"))
		assert.Equal(t, 1, countFor(results, "knowledge_audit_logs"))
		assert.Equal(t, 1, countFor(results, "synthesis_configs"))

		n, err := client.Anima.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("purge deletes entity data but keeps the user", func(t *testing.T) {
		results, err := p.PurgeUser(ctx, "victim@example.com", false)
		require.NoError(t, err)
		assert.Equal(t, 1, countFor(results, "animas"))

		_, err = services.NewUserService(client).GetByEmail(ctx, "victim@example.com")
		assert.NoError(t, err)

		n, err := client.Anima.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		// The other tenant is untouched.
		_, err = services.NewAnimaService(client).Get(ctx, survivor.ID)
		assert.NoError(t, err)
	})
}

func TestPurgeAfter(t *testing.T) {
	client, _ := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	seedTenant(t, client, "cutoff@example.com")
	p := NewPurger(client)

	t.Run("future cutoff matches nothing", func(t *testing.T) {
		results, err := p.PurgeAfter(ctx, time.Now().UTC().Add(time.Hour), true)
		require.NoError(t, err)
		for _, r := range results {
			assert.Equal(t, 0, r.Count, r.Table)
		}
	})

	t.Run("past cutoff removes the seeded rows", func(t *testing.T) {
		results, err := p.PurgeAfter(ctx, before, false)
		require.NoError(t, err)
		assert.Equal(t, 1, countFor(results, "animas"))
		assert.Equal(t, 1, countFor(results, "events"))
		assert.Equal(t, 1, countFor(results, "memories"))

		n, err := client.Anima.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})
}
