package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/ent/dreamsession"
	"github.com/hejijunhao/elephantasm/pkg/models"
)

func TestDreamService(t *testing.T) {
	client, _, a := setupTenant(t)
	ctx := context.Background()
	svc := NewDreamService(client)
	snapshot := map[string]interface{}{"decay_half_life_days": 30.0}

	t.Run("only one running session per anima", func(t *testing.T) {
		sess, err := svc.StartSession(ctx, a.ID, "manual", "user-1", snapshot)
		require.NoError(t, err)
		assert.Equal(t, dreamsession.StatusRunning, sess.Status)

		_, err = svc.StartSession(ctx, a.ID, "scheduled", "", snapshot)
		assert.True(t, errors.Is(err, ErrAlreadyExists))

		_, err = svc.Complete(ctx, sess.ID, "done")
		require.NoError(t, err)

		// Terminal state releases the guard.
		next, err := svc.StartSession(ctx, a.ID, "scheduled", "", snapshot)
		require.NoError(t, err)
		_, err = svc.Fail(ctx, next.ID, "boom")
		require.NoError(t, err)
	})

	t.Run("unknown trigger type", func(t *testing.T) {
		var verr *ValidationError
		_, err := svc.StartSession(ctx, a.ID, "cosmic", "", snapshot)
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("counter rules per action type", func(t *testing.T) {
		sess, err := svc.StartSession(ctx, a.ID, "manual", "user-1", snapshot)
		require.NoError(t, err)

		record := func(actionType string, sources, results []string) {
			t.Helper()
			_, err := svc.RecordAction(ctx, models.RecordDreamActionRequest{
				SessionID:       sess.ID,
				ActionType:      actionType,
				Phase:           "deep_sleep",
				SourceMemoryIDs: sources,
				ResultMemoryIDs: results,
			})
			require.NoError(t, err)
		}

		record("merge", []string{"m1", "m2", "m3"}, []string{"m4"})
		record("split", []string{"m5"}, []string{"m6", "m7"})
		record("update", []string{"m8"}, []string{"m8"})
		record("archive", []string{"m9"}, []string{"m9"})
		record("delete", []string{"m10"}, nil)
		require.NoError(t, svc.AddReviewed(ctx, sess.ID, 10))

		got, err := svc.Get(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, got.MemoriesReviewed)
		// merge: 1 created + 3 modified; split: 2 created + 1 modified;
		// update: 1 modified.
		assert.Equal(t, 3, got.MemoriesCreated)
		assert.Equal(t, 5, got.MemoriesModified)
		assert.Equal(t, 1, got.MemoriesArchived)
		assert.Equal(t, 1, got.MemoriesDeleted)

		actions, err := svc.GetWithActions(ctx, sess.ID)
		require.NoError(t, err)
		assert.Len(t, actions.Edges.Actions, 5)

		_, err = svc.Complete(ctx, sess.ID, "curated")
		require.NoError(t, err)
	})

	t.Run("record action validates inputs", func(t *testing.T) {
		sess, err := svc.StartSession(ctx, a.ID, "manual", "", snapshot)
		require.NoError(t, err)
		t.Cleanup(func() {
			_, err := svc.Fail(ctx, sess.ID, "cleanup")
			require.NoError(t, err)
		})

		var verr *ValidationError
		_, err = svc.RecordAction(ctx, models.RecordDreamActionRequest{
			SessionID: sess.ID, ActionType: "explode", Phase: "deep_sleep",
			SourceMemoryIDs: []string{"m"},
		})
		assert.ErrorAs(t, err, &verr)

		_, err = svc.RecordAction(ctx, models.RecordDreamActionRequest{
			SessionID: sess.ID, ActionType: "update", Phase: "deep_sleep",
		})
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("cancel requires a running session", func(t *testing.T) {
		sess, err := svc.StartSession(ctx, a.ID, "manual", "user-1", snapshot)
		require.NoError(t, err)

		cancelled, err := svc.Cancel(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, dreamsession.StatusFailed, cancelled.Status)
		require.NotNil(t, cancelled.ErrorMessage)
		assert.Equal(t, CancelledByUser, *cancelled.ErrorMessage)

		_, err = svc.Cancel(ctx, sess.ID)
		assert.True(t, errors.Is(err, ErrNotRunning))
	})

	t.Run("stale sweep fails old running sessions", func(t *testing.T) {
		sess, err := svc.StartSession(ctx, a.ID, "scheduled", "", snapshot)
		require.NoError(t, err)

		// A fresh session survives the sweep.
		n, err := svc.SweepStale(ctx, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		err = client.DreamSession.UpdateOneID(sess.ID).
			SetStartedAt(time.Now().UTC().Add(-2 * time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		n, err = svc.SweepStale(ctx, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		got, err := svc.Get(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, dreamsession.StatusFailed, got.Status)
	})

	t.Run("stats aggregate counters", func(t *testing.T) {
		stats, err := svc.Stats(ctx, a.ID)
		require.NoError(t, err)
		assert.Greater(t, stats.TotalSessions, 0)
		assert.Equal(t, stats.TotalSessions,
			stats.CompletedSessions+stats.FailedSessions+stats.RunningSessions)
		assert.Equal(t, 10, stats.MemoriesReviewed)
	})
}

func TestDreamSessionSingleRunning(t *testing.T) {
	client, _, a := setupTenant(t)
	ctx := context.Background()
	svc := NewDreamService(client)

	t.Run("storage rejects a second running row", func(t *testing.T) {
		sess, err := svc.StartSession(ctx, a.ID, "manual", "", nil)
		require.NoError(t, err)

		// Insert past the service pre-flight; the partial unique index
		// still refuses the row.
		_, err = client.DreamSession.Create().
			SetID(uuid.New().String()).
			SetAnimaID(a.ID).
			SetTriggerType(dreamsession.TriggerTypeManual).
			SetStartedAt(time.Now().UTC()).
			Save(ctx)
		require.Error(t, err)
		assert.True(t, ent.IsConstraintError(err))

		_, err = svc.Complete(ctx, sess.ID, "done")
		require.NoError(t, err)
	})

	t.Run("concurrent starts admit exactly one", func(t *testing.T) {
		var (
			wg      sync.WaitGroup
			started int32
		)
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.StartSession(ctx, a.ID, "scheduled", "", nil)
				if err == nil {
					atomic.AddInt32(&started, 1)
					return
				}
				assert.True(t, errors.Is(err, ErrAlreadyExists))
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), atomic.LoadInt32(&started))

		running, err := svc.Running(ctx, a.ID)
		require.NoError(t, err)
		require.NotNil(t, running)
		_, err = svc.Fail(ctx, running.ID, "wind down")
		require.NoError(t, err)
	})
}
