package config

import "time"

// DreamConfig controls the dream curation engine thresholds.
// A snapshot of these values is frozen onto each DreamSession row.
type DreamConfig struct {
	// DecayHalfLifeDays drives the light-sleep decay update:
	// new_decay = min(1, age_days / half_life).
	DecayHalfLifeDays float64

	// DecayThreshold transitions active → decaying when exceeded
	// (together with ImportanceFloor).
	DecayThreshold float64

	// ImportanceFloor: only memories below this importance transition
	// out of active.
	ImportanceFloor float64

	// ArchiveThreshold transitions decaying → archived when exceeded.
	ArchiveThreshold float64

	// EmbeddingSimilarityThreshold is the cosine-distance ceiling for
	// grouping merge candidates by embedding.
	EmbeddingSimilarityThreshold float64

	// JaccardThreshold is the word-set similarity floor for the fallback
	// grouping of memories without embeddings.
	JaccardThreshold float64

	// ConfidenceReviewThreshold flags low-confidence memories for
	// deep-sleep review.
	ConfidenceReviewThreshold float64

	// MinSummaryLength flags very short summaries for review.
	MinSummaryLength int

	// CurationBatchSize is the review-prompt batch size.
	CurationBatchSize int

	// StaleSessionThreshold is how long a RUNNING session may live before
	// the orchestrator sweep marks it FAILED.
	StaleSessionThreshold time.Duration

	// Temperature and MaxTokens apply to dream LLM calls.
	Temperature float64
	MaxTokens   int
}

// DefaultDreamConfig returns the built-in curation defaults.
func DefaultDreamConfig() *DreamConfig {
	return &DreamConfig{
		DecayHalfLifeDays:            30,
		DecayThreshold:               0.7,
		ImportanceFloor:              0.5,
		ArchiveThreshold:             0.9,
		EmbeddingSimilarityThreshold: 0.3,
		JaccardThreshold:             0.5,
		ConfidenceReviewThreshold:    0.4,
		MinSummaryLength:             20,
		CurationBatchSize:            5,
		StaleSessionThreshold:        60 * time.Minute,
		Temperature:                  0.7,
		MaxTokens:                    4096,
	}
}

// Snapshot returns the config as a JSON-ready map for freezing onto a
// dream session row.
func (c *DreamConfig) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"decay_half_life_days":           c.DecayHalfLifeDays,
		"decay_threshold":                c.DecayThreshold,
		"importance_floor":               c.ImportanceFloor,
		"archive_threshold":              c.ArchiveThreshold,
		"embedding_similarity_threshold": c.EmbeddingSimilarityThreshold,
		"jaccard_threshold":              c.JaccardThreshold,
		"confidence_review_threshold":    c.ConfidenceReviewThreshold,
		"min_summary_length":             c.MinSummaryLength,
		"curation_batch_size":            c.CurationBatchSize,
	}
}
