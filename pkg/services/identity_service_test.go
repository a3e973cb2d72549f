package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hejijunhao/elephantasm/pkg/models"
)

func TestIdentityService(t *testing.T) {
	client, _, a := setupTenant(t)
	ctx := context.Background()
	svc := NewIdentityService(client)

	t.Run("get before first write", func(t *testing.T) {
		_, err := svc.Get(ctx, a.ID)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("upsert creates then patches", func(t *testing.T) {
		ident, err := svc.Upsert(ctx, a.ID, models.UpsertIdentityRequest{
			PersonalityType: strPtr("INTJ"),
			SelfReflection: map[string]interface{}{
				"being":   map[string]interface{}{"traits": []interface{}{"curious"}},
				"purpose": map[string]interface{}{"mission": "remember"},
			},
		})
		require.NoError(t, err)
		require.NotNil(t, ident.PersonalityType)
		assert.Equal(t, "INTJ", *ident.PersonalityType)

		// A partial update merges into the reflection tree instead of
		// clobbering sibling branches.
		ident, err = svc.Upsert(ctx, a.ID, models.UpsertIdentityRequest{
			CommunicationStyle: strPtr("direct"),
			SelfReflection: map[string]interface{}{
				"being": map[string]interface{}{"traits": []interface{}{"curious", "precise"}},
			},
		})
		require.NoError(t, err)
		require.NotNil(t, ident.CommunicationStyle)
		assert.Equal(t, "INTJ", *ident.PersonalityType)

		purpose, ok := ident.SelfReflection["purpose"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "remember", purpose["mission"])
		being := ident.SelfReflection["being"].(map[string]interface{})
		assert.Len(t, being["traits"], 2)
	})
}

func TestConfigService(t *testing.T) {
	client, _, a := setupTenant(t)
	ctx := context.Background()
	svc := NewConfigService(client)

	t.Run("synthesis defaults materialize on first read", func(t *testing.T) {
		cfg, err := svc.GetSynthesisConfig(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, 1.0, cfg.TimeWeight)
		assert.Equal(t, 0.5, cfg.EventWeight)
		assert.Equal(t, 10.0, cfg.Threshold)
		assert.Nil(t, cfg.LastSynthesisCheckAt)

		// Second read returns the same row.
		again, err := svc.GetSynthesisConfig(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, cfg.ID, again.ID)
	})

	t.Run("synthesis update rejects out-of-range values", func(t *testing.T) {
		updated, err := svc.UpdateSynthesisConfig(ctx, a.ID, models.UpdateSynthesisConfigRequest{
			Threshold: floatPtr(25),
		})
		require.NoError(t, err)
		assert.Equal(t, 25.0, updated.Threshold)

		_, err = svc.UpdateSynthesisConfig(ctx, a.ID, models.UpdateSynthesisConfigRequest{
			Threshold: floatPtr(-1),
		})
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("io config deep merge", func(t *testing.T) {
		_, err := svc.UpdateIOConfig(ctx, a.ID, models.UpdateIOConfigRequest{
			ReadSettings: map[string]interface{}{
				"pack": map[string]interface{}{"max_tokens": 2000.0, "preset": "conversational"},
			},
		})
		require.NoError(t, err)

		cfg, err := svc.UpdateIOConfig(ctx, a.ID, models.UpdateIOConfigRequest{
			ReadSettings: map[string]interface{}{
				"pack": map[string]interface{}{"max_tokens": 1500.0},
			},
		})
		require.NoError(t, err)

		pack := cfg.ReadSettings["pack"].(map[string]interface{})
		assert.Equal(t, 1500.0, pack["max_tokens"])
		assert.Equal(t, "conversational", pack["preset"])
	})
}

func TestDeepMerge(t *testing.T) {
	base := map[string]interface{}{
		"a": map[string]interface{}{"x": 1, "y": 2},
		"b": "keep",
		"c": []interface{}{1, 2},
	}
	patch := map[string]interface{}{
		"a": map[string]interface{}{"y": 3},
		"c": []interface{}{9},
		"d": "new",
	}
	out := deepMerge(base, patch)

	a := out["a"].(map[string]interface{})
	assert.Equal(t, 1, a["x"])
	assert.Equal(t, 3, a["y"])
	assert.Equal(t, "keep", out["b"])
	// Lists replace wholesale.
	assert.Equal(t, []interface{}{9}, out["c"])
	assert.Equal(t, "new", out["d"])

	// The inputs are untouched.
	assert.Equal(t, 2, base["a"].(map[string]interface{})["y"])
}
