package config

import "time"

// RetentionConfig controls background retention behavior.
type RetentionConfig struct {
	// MaxPacksPerAnima bounds persisted pack history; enforced after each
	// persisted compile.
	MaxPacksPerAnima int

	// StaleSweepInterval is how often the orchestrator sweeps stale
	// RUNNING dream sessions.
	StaleSweepInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		MaxPacksPerAnima:   100,
		StaleSweepInterval: 10 * time.Minute,
	}
}
