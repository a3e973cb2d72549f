package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hejijunhao/elephantasm/pkg/config"
	"github.com/hejijunhao/elephantasm/pkg/services"
)

func TestDebouncer(t *testing.T) {
	t.Run("burst coalesces to one fire", func(t *testing.T) {
		d := newDebouncer()
		defer d.stop()

		var fired int32
		done := make(chan struct{})
		for i := 0; i < 5; i++ {
			ok := d.schedule("job", 30*time.Millisecond, func() {
				atomic.AddInt32(&fired, 1)
				close(done)
			})
			assert.True(t, ok)
		}

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("debounced job never fired")
		}
		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
	})

	t.Run("distinct ids fire independently", func(t *testing.T) {
		d := newDebouncer()
		defer d.stop()

		var wg sync.WaitGroup
		wg.Add(2)
		require.True(t, d.schedule("a", 10*time.Millisecond, wg.Done))
		require.True(t, d.schedule("b", 10*time.Millisecond, wg.Done))

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("jobs never fired")
		}
	})

	t.Run("stop cancels pending and refuses new work", func(t *testing.T) {
		d := newDebouncer()
		var fired int32
		require.True(t, d.schedule("job", 50*time.Millisecond, func() {
			atomic.AddInt32(&fired, 1)
		}))
		d.stop()

		assert.False(t, d.schedule("job", time.Millisecond, func() {
			atomic.AddInt32(&fired, 1)
		}))
		time.Sleep(100 * time.Millisecond)
		assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
	})
}

func TestBackground(t *testing.T) {
	t.Run("submit before start is refused", func(t *testing.T) {
		b := NewBackground(4)
		assert.False(t, b.Submit("early", func(context.Context) {}))
	})

	t.Run("jobs run", func(t *testing.T) {
		b := NewBackground(4)
		b.Start(context.Background())
		defer b.Stop()

		done := make(chan struct{})
		require.True(t, b.Submit("work", func(context.Context) { close(done) }))
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("job never ran")
		}
	})

	t.Run("full queue drops without blocking", func(t *testing.T) {
		b := NewBackground(1)
		b.Start(context.Background())
		defer b.Stop()

		block := make(chan struct{})
		// Saturate the workers, then the queue.
		for i := 0; i < backgroundWorkers; i++ {
			b.Submit("blocker", func(ctx context.Context) {
				select {
				case <-block:
				case <-ctx.Done():
				}
			})
		}
		// One slot in the buffered channel; keep submitting until it is
		// held, then the next submit must be dropped.
		for i := 0; i < 10; i++ {
			b.Submit("filler", func(context.Context) {})
		}
		assert.False(t, b.Submit("overflow", func(context.Context) {}))
		close(block)
	})

	t.Run("panicking job does not kill the worker", func(t *testing.T) {
		b := NewBackground(4)
		b.Start(context.Background())
		defer b.Stop()

		require.True(t, b.Submit("boom", func(context.Context) { panic("boom") }))

		done := make(chan struct{})
		require.Eventually(t, func() bool {
			return b.Submit("after", func(context.Context) { close(done) })
		}, 2*time.Second, 10*time.Millisecond)
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("worker did not survive the panic")
		}
	})

	t.Run("stop is idempotent and final", func(t *testing.T) {
		b := NewBackground(4)
		b.Start(context.Background())
		b.Stop()
		b.Stop()
		assert.False(t, b.Submit("late", func(context.Context) {}))
	})
}

func TestSchedulerStatus(t *testing.T) {
	s := New(config.DefaultSchedulerConfig(), nil, nil, nil, nil, config.DefaultDreamConfig())

	status := s.Status()
	require.Contains(t, status, WorkflowSynthesis)
	require.Contains(t, status, WorkflowDream)

	synth := status[WorkflowSynthesis]
	assert.False(t, synth.Running)
	assert.Equal(t, 6.0, synth.IntervalHours)
	assert.Nil(t, synth.LastRun)
	assert.Equal(t, WorkflowStats{}, synth.Stats)
	assert.Equal(t, 24.0, status[WorkflowDream].IntervalHours)
}

func TestTriggerManualUnknownWorkflow(t *testing.T) {
	s := New(config.DefaultSchedulerConfig(), nil, nil, nil, nil, config.DefaultDreamConfig())
	err := s.TriggerManual(context.Background(), "cosmic_alignment", "")
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestSchedulerStartDisabled(t *testing.T) {
	cfg := config.DefaultSchedulerConfig()
	cfg.BackgroundJobsDisabled = true
	s := New(cfg, nil, nil, nil, nil, config.DefaultDreamConfig())
	s.Start(context.Background())
	s.Stop()

	for _, st := range s.Status() {
		assert.False(t, st.Running)
		assert.Nil(t, st.NextRun)
	}
}

func TestWorkflowClaim(t *testing.T) {
	w := &workflow{name: "test", interval: time.Hour, running: map[string]bool{}}

	assert.True(t, w.claim("anima-1"))
	assert.False(t, w.claim("anima-1"), "second claim while held must fail")
	assert.True(t, w.claim("anima-2"), "other animas are independent")

	w.release("anima-1")
	assert.True(t, w.claim("anima-1"))
}
