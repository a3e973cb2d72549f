package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/ent/ioconfig"
	"github.com/hejijunhao/elephantasm/ent/synthesisconfig"
	"github.com/hejijunhao/elephantasm/pkg/models"
)

// ConfigService manages the per-anima 1:1 synthesis and IO configurations.
// Defaults are materialized on first access so that every anima reads a
// concrete row rather than implicit fallbacks.
type ConfigService struct {
	client *ent.Client
}

// NewConfigService creates a new ConfigService
func NewConfigService(client *ent.Client) *ConfigService {
	return &ConfigService{client: client}
}

// GetSynthesisConfig returns the anima's synthesis config, creating the
// default row on first access.
func (s *ConfigService) GetSynthesisConfig(ctx context.Context, animaID string) (*ent.SynthesisConfig, error) {
	cfg, err := s.client.SynthesisConfig.Query().
		Where(synthesisconfig.AnimaIDEQ(animaID)).
		Only(ctx)
	if err == nil {
		return cfg, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get synthesis config: %w", err)
	}

	cfg, err = s.client.SynthesisConfig.Create().
		SetID(uuid.New().String()).
		SetAnimaID(animaID).
		Save(ctx)
	if ent.IsConstraintError(err) {
		// Lost a materialization race; the winner's row is authoritative.
		cfg, err = s.client.SynthesisConfig.Query().
			Where(synthesisconfig.AnimaIDEQ(animaID)).
			Only(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to materialize synthesis config: %w", err)
	}
	return cfg, nil
}

// UpdateSynthesisConfig patches synthesis tuning. Field ranges are enforced
// by the schema; out-of-range values surface as validation errors here.
func (s *ConfigService) UpdateSynthesisConfig(ctx context.Context, animaID string, req models.UpdateSynthesisConfigRequest) (*ent.SynthesisConfig, error) {
	existing, err := s.GetSynthesisConfig(ctx, animaID)
	if err != nil {
		return nil, err
	}
	cfg, err := existing.Update().
		SetNillableTimeWeight(req.TimeWeight).
		SetNillableEventWeight(req.EventWeight).
		SetNillableTokenWeight(req.TokenWeight).
		SetNillableThreshold(req.Threshold).
		SetNillableTemperature(req.Temperature).
		SetNillableMaxTokens(req.MaxTokens).
		SetNillableIntervalHours(req.IntervalHours).
		Save(ctx)
	if ent.IsValidationError(err) {
		return nil, NewValidationError("synthesis_config", err.Error())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update synthesis config: %w", err)
	}
	return cfg, nil
}

// MarkSynthesisCheck stamps the gate's last evaluation time. The baseline
// advances even when no synthesis ran, so skipped windows are not recounted.
func (s *ConfigService) MarkSynthesisCheck(ctx context.Context, animaID string, at time.Time) error {
	existing, err := s.GetSynthesisConfig(ctx, animaID)
	if err != nil {
		return err
	}
	if err := existing.Update().SetLastSynthesisCheckAt(at).Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark synthesis check: %w", err)
	}
	return nil
}

// GetIOConfig returns the anima's IO config, creating the default row on
// first access.
func (s *ConfigService) GetIOConfig(ctx context.Context, animaID string) (*ent.IOConfig, error) {
	cfg, err := s.client.IOConfig.Query().
		Where(ioconfig.AnimaIDEQ(animaID)).
		Only(ctx)
	if err == nil {
		return cfg, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get io config: %w", err)
	}

	cfg, err = s.client.IOConfig.Create().
		SetID(uuid.New().String()).
		SetAnimaID(animaID).
		SetReadSettings(map[string]interface{}{}).
		SetWriteSettings(map[string]interface{}{}).
		Save(ctx)
	if ent.IsConstraintError(err) {
		cfg, err = s.client.IOConfig.Query().
			Where(ioconfig.AnimaIDEQ(animaID)).
			Only(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to materialize io config: %w", err)
	}
	return cfg, nil
}

// UpdateIOConfig deep-merges the request into the stored settings. Merging
// recurses into nested maps; scalar and list values are replaced wholesale.
func (s *ConfigService) UpdateIOConfig(ctx context.Context, animaID string, req models.UpdateIOConfigRequest) (*ent.IOConfig, error) {
	existing, err := s.GetIOConfig(ctx, animaID)
	if err != nil {
		return nil, err
	}
	cfg, err := existing.Update().
		SetReadSettings(deepMerge(existing.ReadSettings, req.ReadSettings)).
		SetWriteSettings(deepMerge(existing.WriteSettings, req.WriteSettings)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update io config: %w", err)
	}
	return cfg, nil
}

// deepMerge overlays patch onto base, recursing where both sides hold maps.
func deepMerge(base, patch map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(base)+len(patch))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range patch {
		pm, pok := v.(map[string]interface{})
		bm, bok := out[k].(map[string]interface{})
		if pok && bok {
			out[k] = deepMerge(bm, pm)
			continue
		}
		out[k] = v
	}
	return out
}
