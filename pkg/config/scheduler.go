package config

import "time"

// SchedulerConfig controls the workflow orchestrator.
type SchedulerConfig struct {
	// SynthesisInterval is the periodic memory-synthesis sweep interval.
	SynthesisInterval time.Duration

	// DreamInterval is the periodic dream sweep interval.
	DreamInterval time.Duration

	// RealtimeDebounce coalesces post-event synthesis checks: a burst of
	// events within this window triggers a single run.
	RealtimeDebounce time.Duration

	// BackgroundQueueSize bounds the fire-and-forget worker group; tasks
	// beyond the bound are dropped with a logged correlation id.
	BackgroundQueueSize int

	// BackgroundJobsDisabled turns off the auto-knowledge hook and all
	// periodic workflows (used in tests and one-shot tooling).
	BackgroundJobsDisabled bool
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		SynthesisInterval:   6 * time.Hour,
		DreamInterval:       24 * time.Hour,
		RealtimeDebounce:    5 * time.Second,
		BackgroundQueueSize: 64,
	}
}
