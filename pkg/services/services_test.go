package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/pkg/models"
	testutil "github.com/hejijunhao/elephantasm/test/util"
)

// setupTenant provisions an isolated schema with one user and one anima.
func setupTenant(t *testing.T) (*ent.Client, *ent.User, *ent.Anima) {
	client, _ := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	u, err := NewUserService(client).GetOrCreateByExternalSubject(ctx, "sub-"+uuid.New().String(), "owner@example.com")
	require.NoError(t, err)

	a, err := NewAnimaService(client).Create(ctx, u.ID, models.CreateAnimaRequest{
		Name:           "Test Anima",
		OrganizationID: "org-1",
	})
	require.NoError(t, err)

	return client, u, a
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }
