package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/ent/dreamaction"
	"github.com/hejijunhao/elephantasm/ent/dreamsession"
	"github.com/hejijunhao/elephantasm/pkg/models"
)

// CancelledByUser is the error message a cancelled session carries.
const CancelledByUser = "Cancelled by user"

// DreamService manages dream session lifecycle and the append-only action
// trail. The engine drives it; the API exposes sessions read-only plus
// trigger and cancel.
type DreamService struct {
	client *ent.Client
}

// NewDreamService creates a new DreamService
func NewDreamService(client *ent.Client) *DreamService {
	return &DreamService{client: client}
}

// StartSession creates a running session for the anima. A session already
// running for the same anima yields ErrAlreadyExists; the pre-flight check
// gives the friendly message, the partial unique index on running sessions
// closes the window between check and insert.
func (s *DreamService) StartSession(ctx context.Context, animaID, triggerType, triggeredBy string, configSnapshot map[string]interface{}) (*ent.DreamSession, error) {
	tt := dreamsession.TriggerType(triggerType)
	if err := dreamsession.TriggerTypeValidator(tt); err != nil {
		return nil, NewValidationError("trigger_type", fmt.Sprintf("unknown trigger type %q", triggerType))
	}

	running, err := s.Running(ctx, animaID)
	if err != nil {
		return nil, err
	}
	if running != nil {
		return nil, fmt.Errorf("anima %s already dreaming (session %s): %w", animaID, running.ID, ErrAlreadyExists)
	}

	sess, err := s.client.DreamSession.Create().
		SetID(uuid.New().String()).
		SetAnimaID(animaID).
		SetTriggerType(tt).
		SetNillableTriggeredBy(nilIfEmpty(triggeredBy)).
		SetStartedAt(time.Now().UTC()).
		SetConfigSnapshot(configSnapshot).
		Save(ctx)
	if ent.IsConstraintError(err) {
		return nil, fmt.Errorf("anima %s already dreaming: %w", animaID, ErrAlreadyExists)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to start dream session: %w", err)
	}
	return sess, nil
}

// Running returns the anima's running session, or nil.
func (s *DreamService) Running(ctx context.Context, animaID string) (*ent.DreamSession, error) {
	sess, err := s.client.DreamSession.Query().
		Where(
			dreamsession.AnimaIDEQ(animaID),
			dreamsession.StatusEQ(dreamsession.StatusRunning),
		).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query running session: %w", err)
	}
	return sess, nil
}

// Get returns a session by id.
func (s *DreamService) Get(ctx context.Context, id string) (*ent.DreamSession, error) {
	sess, err := s.client.DreamSession.Query().
		Where(dreamsession.IDEQ(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dream session: %w", err)
	}
	return sess, nil
}

// GetWithActions returns a session with its action trail, oldest action
// first.
func (s *DreamService) GetWithActions(ctx context.Context, id string) (*ent.DreamSession, error) {
	sess, err := s.client.DreamSession.Query().
		Where(dreamsession.IDEQ(id)).
		WithActions(func(q *ent.DreamActionQuery) {
			q.Order(ent.Asc(dreamaction.FieldCreatedAt))
		}).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dream session: %w", err)
	}
	return sess, nil
}

// List returns sessions matching the filters, newest first.
func (s *DreamService) List(ctx context.Context, filters models.DreamSessionFilters) ([]*ent.DreamSession, error) {
	q := s.client.DreamSession.Query()
	if filters.AnimaID != "" {
		q = q.Where(dreamsession.AnimaIDEQ(filters.AnimaID))
	}
	if filters.Status != "" {
		st := dreamsession.Status(filters.Status)
		if err := dreamsession.StatusValidator(st); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", filters.Status))
		}
		q = q.Where(dreamsession.StatusEQ(st))
	}
	sessions, err := q.
		Order(ent.Desc(dreamsession.FieldStartedAt)).
		Limit(clampLimit(filters.Limit, 20, 100)).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list dream sessions: %w", err)
	}
	return sessions, nil
}

// RecordAction appends one curation action and applies the counter rules:
// a merge creates one memory out of many, a split creates many out of one,
// updates modify in place, archives and deletes retire.
func (s *DreamService) RecordAction(ctx context.Context, req models.RecordDreamActionRequest) (*ent.DreamAction, error) {
	at := dreamaction.ActionType(req.ActionType)
	if err := dreamaction.ActionTypeValidator(at); err != nil {
		return nil, NewValidationError("action_type", fmt.Sprintf("unknown action type %q", req.ActionType))
	}
	ph := dreamaction.Phase(req.Phase)
	if err := dreamaction.PhaseValidator(ph); err != nil {
		return nil, NewValidationError("phase", fmt.Sprintf("unknown phase %q", req.Phase))
	}
	if len(req.SourceMemoryIDs) == 0 {
		return nil, NewValidationError("source_memory_ids", "must not be empty")
	}

	create := s.client.DreamAction.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetActionType(at).
		SetPhase(ph).
		SetSourceMemoryIds(req.SourceMemoryIDs).
		SetNillableReasoning(nilIfEmpty(req.Reasoning))
	if req.ResultMemoryIDs != nil {
		create = create.SetResultMemoryIds(req.ResultMemoryIDs)
	}
	if req.BeforeState != nil {
		create = create.SetBeforeState(req.BeforeState)
	}
	if req.AfterState != nil {
		create = create.SetAfterState(req.AfterState)
	}
	action, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record dream action: %w", err)
	}

	upd := s.client.DreamSession.UpdateOneID(req.SessionID)
	switch at {
	case dreamaction.ActionTypeMerge:
		upd = upd.AddMemoriesCreated(1).AddMemoriesModified(len(req.SourceMemoryIDs))
	case dreamaction.ActionTypeSplit:
		upd = upd.AddMemoriesCreated(len(req.ResultMemoryIDs)).AddMemoriesModified(1)
	case dreamaction.ActionTypeUpdate:
		upd = upd.AddMemoriesModified(1)
	case dreamaction.ActionTypeArchive:
		upd = upd.AddMemoriesArchived(1)
	case dreamaction.ActionTypeDelete:
		upd = upd.AddMemoriesDeleted(1)
	}
	if err := upd.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to update session counters: %w", err)
	}
	return action, nil
}

// AddReviewed bumps the reviewed counter after a curation batch.
func (s *DreamService) AddReviewed(ctx context.Context, sessionID string, n int) error {
	if n <= 0 {
		return nil
	}
	err := s.client.DreamSession.UpdateOneID(sessionID).
		AddMemoriesReviewed(n).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to add reviewed count: %w", err)
	}
	return nil
}

// Complete marks a session finished with a summary.
func (s *DreamService) Complete(ctx context.Context, sessionID, summary string) (*ent.DreamSession, error) {
	sess, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sess, err = sess.Update().
		SetStatus(dreamsession.StatusCompleted).
		SetCompletedAt(time.Now().UTC()).
		SetNillableSummary(nilIfEmpty(summary)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete dream session: %w", err)
	}
	return sess, nil
}

// Fail marks a session failed with an error message.
func (s *DreamService) Fail(ctx context.Context, sessionID, message string) (*ent.DreamSession, error) {
	sess, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sess, err = sess.Update().
		SetStatus(dreamsession.StatusFailed).
		SetCompletedAt(time.Now().UTC()).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark dream session failed: %w", err)
	}
	return sess, nil
}

// Cancel marks a running session as failed with the cancellation message.
// The running engine observes the status flip between phases; cancellation
// is advisory, not preemptive. Non-running sessions yield ErrNotRunning.
func (s *DreamService) Cancel(ctx context.Context, sessionID string) (*ent.DreamSession, error) {
	sess, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != dreamsession.StatusRunning {
		return nil, ErrNotRunning
	}
	return s.Fail(ctx, sessionID, CancelledByUser)
}

// SweepStale fails running sessions older than threshold. Crash leftovers
// would otherwise block their anima from dreaming forever.
func (s *DreamService) SweepStale(ctx context.Context, threshold time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-threshold)
	n, err := s.client.DreamSession.Update().
		Where(
			dreamsession.StatusEQ(dreamsession.StatusRunning),
			dreamsession.StartedAtLT(cutoff),
		).
		SetStatus(dreamsession.StatusFailed).
		SetCompletedAt(time.Now().UTC()).
		SetErrorMessage(fmt.Sprintf("Timed out after %s", threshold)).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep stale sessions: %w", err)
	}
	return n, nil
}

// Stats aggregates dream activity, optionally for a single anima.
func (s *DreamService) Stats(ctx context.Context, animaID string) (*models.DreamStats, error) {
	q := s.client.DreamSession.Query()
	if animaID != "" {
		q = q.Where(dreamsession.AnimaIDEQ(animaID))
	}
	sessions, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dream stats: %w", err)
	}

	stats := &models.DreamStats{}
	for _, sess := range sessions {
		stats.TotalSessions++
		switch sess.Status {
		case dreamsession.StatusCompleted:
			stats.CompletedSessions++
		case dreamsession.StatusFailed:
			stats.FailedSessions++
		case dreamsession.StatusRunning:
			stats.RunningSessions++
		}
		stats.MemoriesReviewed += sess.MemoriesReviewed
		stats.MemoriesModified += sess.MemoriesModified
		stats.MemoriesCreated += sess.MemoriesCreated
		stats.MemoriesArchived += sess.MemoriesArchived
		stats.MemoriesDeleted += sess.MemoriesDeleted
	}
	return stats, nil
}
