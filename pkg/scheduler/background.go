package scheduler

import (
	"context"
	"log/slog"
	"sync"
)

// backgroundWorkers is how many goroutines drain the background queue.
const backgroundWorkers = 4

type backgroundJob struct {
	id string
	fn func(ctx context.Context)
}

// Background is a bounded fire-and-forget worker group for detached tasks:
// auto-knowledge synthesis, pack persistence, retention. Jobs beyond the
// queue bound are dropped with a logged job id.
type Background struct {
	jobs chan backgroundJob

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewBackground creates a worker group with the given queue bound.
func NewBackground(queueSize int) *Background {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Background{jobs: make(chan backgroundJob, queueSize)}
}

// Start launches the workers. Idempotent.
func (b *Background) Start(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started {
		return
	}
	b.started = true

	ctx, b.cancel = context.WithCancel(ctx)
	for i := 0; i < backgroundWorkers; i++ {
		b.wg.Add(1)
		go b.worker(ctx)
	}
}

// Stop cancels in-flight jobs and waits for the workers to exit. Idempotent.
func (b *Background) Stop() {
	b.mu.Lock()
	if !b.started {
		b.mu.Unlock()
		return
	}
	b.started = false
	cancel := b.cancel
	b.mu.Unlock()

	cancel()
	b.wg.Wait()
}

// Submit queues a job without blocking. Returns false when the queue is full
// or the group is stopped; the caller decides whether that matters.
func (b *Background) Submit(job string, fn func(ctx context.Context)) bool {
	b.mu.Lock()
	started := b.started
	b.mu.Unlock()
	if !started {
		return false
	}

	select {
	case b.jobs <- backgroundJob{id: job, fn: fn}:
		return true
	default:
		slog.Warn("Background queue full, dropping job", "job_id", job)
		return false
	}
}

func (b *Background) worker(ctx context.Context) {
	defer b.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-b.jobs:
			func() {
				defer func() {
					if r := recover(); r != nil {
						slog.Error("Background job panicked", "job_id", job.id, "panic", r)
					}
				}()
				job.fn(ctx)
			}()
		}
	}
}
