// Package scheduler orchestrates the periodic workflows: memory synthesis
// sweeps, dream curation sweeps, and the realtime post-event synthesis
// check. One scheduler runs per process.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/ent/anima"
	"github.com/hejijunhao/elephantasm/pkg/config"
	"github.com/hejijunhao/elephantasm/pkg/dream"
	"github.com/hejijunhao/elephantasm/pkg/services"
	"github.com/hejijunhao/elephantasm/pkg/synthesis"
	"github.com/hejijunhao/elephantasm/pkg/tenancy"
)

// Workflow names.
const (
	WorkflowSynthesis = "memory_synthesis"
	WorkflowDream     = "dream_curation"
)

// WorkflowStats accumulates over the scheduler's lifetime.
type WorkflowStats struct {
	TotalRuns       int `json:"total_runs"`
	SuccessfulRuns  int `json:"successful_runs"`
	FailedRuns      int `json:"failed_runs"`
	AnimasProcessed int `json:"animas_processed"`
	ItemsCreated    int `json:"items_created"`
}

// WorkflowStatus is the externally visible state of one workflow.
type WorkflowStatus struct {
	Running       bool          `json:"running"`
	IntervalHours float64       `json:"interval_hours"`
	LastRun       *time.Time    `json:"last_run,omitempty"`
	NextRun       *time.Time    `json:"next_run,omitempty"`
	Stats         WorkflowStats `json:"stats"`
}

// workflow is one registered periodic job with its concurrency guard.
type workflow struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context, animaID, userID string) (itemsCreated int, err error)

	mu       sync.Mutex
	running  map[string]bool // anima ids currently executing
	lastRun  *time.Time
	nextRun  *time.Time
	stats    WorkflowStats
	sweeping bool
}

// claim marks an anima as running in this workflow; false when it already is.
func (w *workflow) claim(animaID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running[animaID] {
		return false
	}
	w.running[animaID] = true
	return true
}

func (w *workflow) release(animaID string) {
	w.mu.Lock()
	delete(w.running, animaID)
	w.mu.Unlock()
}

// Scheduler registers and drives the workflows. Fan-out across animas uses
// the root client (table owner, not subject to row filtering); the per-anima
// work itself always runs inside an owner session.
type Scheduler struct {
	cfg       *config.SchedulerConfig
	root      *ent.Client
	envelope  *tenancy.Envelope
	pipeline  *synthesis.Pipeline
	dream     *dream.Engine
	dreamCfg  *config.DreamConfig
	debounce  *debouncer
	workflows map[string]*workflow

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New creates the scheduler with both built-in workflows registered.
func New(cfg *config.SchedulerConfig, root *ent.Client, envelope *tenancy.Envelope, pipeline *synthesis.Pipeline, engine *dream.Engine, dreamCfg *config.DreamConfig) *Scheduler {
	s := &Scheduler{
		cfg:       cfg,
		root:      root,
		envelope:  envelope,
		pipeline:  pipeline,
		dream:     engine,
		dreamCfg:  dreamCfg,
		debounce:  newDebouncer(),
		workflows: make(map[string]*workflow),
	}
	s.register(WorkflowSynthesis, cfg.SynthesisInterval, s.runSynthesisForAnima)
	s.register(WorkflowDream, cfg.DreamInterval, s.runDreamForAnima)
	return s
}

func (s *Scheduler) register(name string, interval time.Duration, run func(ctx context.Context, animaID, userID string) (int, error)) {
	s.workflows[name] = &workflow{
		name:     name,
		interval: interval,
		run:      run,
		running:  make(map[string]bool),
	}
}

// Start launches one ticker loop per workflow. Idempotent; a no-op when
// background jobs are disabled.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.cfg.BackgroundJobsDisabled {
		return
	}
	s.started = true

	ctx, s.cancel = context.WithCancel(ctx)
	for _, w := range s.workflows {
		next := time.Now().UTC().Add(w.interval)
		w.mu.Lock()
		w.nextRun = &next
		w.mu.Unlock()

		s.wg.Add(1)
		go s.loop(ctx, w)
	}
	slog.Info("Scheduler started",
		"synthesis_interval", s.cfg.SynthesisInterval,
		"dream_interval", s.cfg.DreamInterval)
}

// Stop halts the ticker loops and pending debounce timers. Idempotent.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	cancel := s.cancel
	s.mu.Unlock()

	s.debounce.stop()
	cancel()
	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context, w *workflow) {
	defer s.wg.Done()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx, w, "")
		}
	}
}

// TriggerManual dispatches a workflow immediately, for one anima or fanned
// out across all active animas when animaID is empty.
func (s *Scheduler) TriggerManual(ctx context.Context, name, animaID string) error {
	w, ok := s.workflows[name]
	if !ok {
		return fmt.Errorf("%w: unknown workflow %q", services.ErrNotFound, name)
	}
	go s.sweep(context.WithoutCancel(ctx), w, animaID)
	return nil
}

// Status reports every workflow's current state.
func (s *Scheduler) Status() map[string]WorkflowStatus {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()

	out := make(map[string]WorkflowStatus, len(s.workflows))
	for name, w := range s.workflows {
		w.mu.Lock()
		out[name] = WorkflowStatus{
			Running:       started,
			IntervalHours: w.interval.Hours(),
			LastRun:       w.lastRun,
			NextRun:       w.nextRun,
			Stats:         w.stats,
		}
		w.mu.Unlock()
	}
	return out
}

// sweep runs one workflow execution: single anima or full fan-out.
func (s *Scheduler) sweep(ctx context.Context, w *workflow, animaID string) {
	w.mu.Lock()
	if w.sweeping && animaID == "" {
		w.mu.Unlock()
		slog.Info("Workflow sweep already in progress, skipping", "workflow", w.name)
		return
	}
	if animaID == "" {
		w.sweeping = true
	}
	w.stats.TotalRuns++
	now := time.Now().UTC()
	w.lastRun = &now
	next := now.Add(w.interval)
	w.nextRun = &next
	w.mu.Unlock()

	if animaID == "" {
		defer func() {
			w.mu.Lock()
			w.sweeping = false
			w.mu.Unlock()
		}()
	}

	if w.name == WorkflowDream {
		if swept, err := services.NewDreamService(s.root).SweepStale(ctx, s.dreamCfg.StaleSessionThreshold); err != nil {
			slog.Error("Stale dream sweep failed", "error", err)
		} else if swept > 0 {
			slog.Info("Swept stale dream sessions", "count", swept)
		}
	}

	targets, err := s.targets(ctx, animaID)
	if err != nil {
		slog.Error("Workflow target listing failed", "workflow", w.name, "error", err)
		w.mu.Lock()
		w.stats.FailedRuns++
		w.mu.Unlock()
		return
	}

	var (
		statsMu   sync.Mutex
		processed int
		created   int
		failures  int
	)
	g := new(errgroup.Group)
	for _, t := range targets {
		t := t
		if !w.claim(t.ID) {
			slog.Info("Anima already running in workflow, skipping",
				"workflow", w.name, "anima_id", t.ID)
			continue
		}
		g.Go(func() error {
			defer w.release(t.ID)
			n, err := w.run(ctx, t.ID, t.UserID)
			statsMu.Lock()
			processed++
			created += n
			if err != nil {
				failures++
			}
			statsMu.Unlock()
			if err != nil {
				slog.Error("Workflow execution failed",
					"workflow", w.name, "anima_id", t.ID, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()

	w.mu.Lock()
	w.stats.AnimasProcessed += processed
	w.stats.ItemsCreated += created
	if failures > 0 {
		w.stats.FailedRuns++
	} else {
		w.stats.SuccessfulRuns++
	}
	w.mu.Unlock()
	slog.Info("Workflow sweep finished",
		"workflow", w.name, "animas", processed, "created", created, "failures", failures)
}

// targets lists the animas a sweep covers, with their owning user ids.
func (s *Scheduler) targets(ctx context.Context, animaID string) ([]*ent.Anima, error) {
	q := s.root.Anima.Query().
		Where(anima.IsDeleted(false), anima.IsDormant(false))
	if animaID != "" {
		q = q.Where(anima.IDEQ(animaID))
	}
	animas, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflow targets: %w", err)
	}
	return animas, nil
}

// runSynthesisForAnima executes one synthesis check-and-run in an owner
// session. Returns 1 when a memory was created.
func (s *Scheduler) runSynthesisForAnima(ctx context.Context, animaID, userID string) (int, error) {
	created := 0
	err := s.envelope.WithOwnerSession(ctx, userID, func(ctx context.Context, client *ent.Client) error {
		result, err := s.pipeline.Run(ctx, client, animaID, time.Now().UTC())
		if err != nil {
			return err
		}
		if result.MemoryID != "" {
			created = 1
		}
		return nil
	})
	return created, err
}

// runDreamForAnima starts a session (skipping when one is already running)
// and hands it to the dream engine.
func (s *Scheduler) runDreamForAnima(ctx context.Context, animaID, userID string) (int, error) {
	var sessionID string
	err := s.envelope.WithOwnerSession(ctx, userID, func(ctx context.Context, client *ent.Client) error {
		sess, err := services.NewDreamService(client).StartSession(
			ctx, animaID, "scheduled", "", s.dreamCfg.Snapshot())
		if err != nil {
			return err
		}
		sessionID = sess.ID
		return nil
	})
	if err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			slog.Info("Dream already running, skipping", "anima_id", animaID)
			return 0, nil
		}
		return 0, err
	}
	if err := s.dream.Run(ctx, animaID, sessionID); err != nil {
		return 0, err
	}

	var created int
	err = s.envelope.WithOwnerSession(ctx, userID, func(ctx context.Context, client *ent.Client) error {
		sess, err := services.NewDreamService(client).Get(ctx, sessionID)
		if err != nil {
			return err
		}
		created = sess.MemoriesCreated
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// CheckAndEnqueueIfNeeded evaluates the synthesis gate after an event write
// and, when the threshold is met, enqueues a one-shot run. Bursts within the
// debounce window coalesce: the job id is stable per anima and rescheduling
// replaces the pending timer.
func (s *Scheduler) CheckAndEnqueueIfNeeded(ctx context.Context, animaID, userID string) {
	if s.cfg.BackgroundJobsDisabled {
		return
	}

	var triggered bool
	err := s.envelope.WithOwnerSession(ctx, userID, func(ctx context.Context, client *ent.Client) error {
		gate, err := s.pipeline.CheckThreshold(ctx, client, animaID, time.Now().UTC())
		if err != nil {
			return err
		}
		triggered = gate.Triggered
		return nil
	})
	if err != nil {
		slog.Warn("Realtime synthesis check failed", "anima_id", animaID, "error", err)
		return
	}
	if !triggered {
		return
	}

	jobID := "memory_synthesis_realtime_" + animaID
	s.debounce.schedule(jobID, s.cfg.RealtimeDebounce, func() {
		w := s.workflows[WorkflowSynthesis]
		if !w.claim(animaID) {
			slog.Info("Synthesis already running, dropping realtime run", "anima_id", animaID)
			return
		}
		defer w.release(animaID)

		runCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if _, err := s.runSynthesisForAnima(runCtx, animaID, userID); err != nil {
			slog.Error("Realtime synthesis failed", "anima_id", animaID, "error", err)
		}
	})
}
