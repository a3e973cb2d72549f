// Package scoring provides the pure scoring primitives used across
// retrieval, pack compilation and dream curation: exponential recency,
// spaced-repetition decay, the combined multi-factor score and the
// knowledge score. All functions are deterministic and clamp to [0,1].
package scoring

import (
	"math"
	"time"
)

const (
	// DefaultHalfLifeDays is the recency half-life when none is configured.
	DefaultHalfLifeDays = 7.0

	// BaseDecayHalfLifeDays is the spaced-repetition base half-life.
	BaseDecayHalfLifeDays = 30.0

	// DecayBoostFactor multiplies the half-life per recorded access.
	DecayBoostFactor = 1.5

	// MaxDecayHalfLifeDays caps the effective half-life at one year.
	MaxDecayHalfLifeDays = 365.0

	hoursPerDay = 24.0
)

// Weights holds the relative factor weights for the combined score.
// They do not need to sum to 1; Combined normalizes them.
type Weights struct {
	Importance float64
	Confidence float64
	Recency    float64
	Decay      float64
	Similarity float64
}

// DefaultWeights returns the conversational-preset weighting.
func DefaultWeights() Weights {
	return Weights{
		Recency:    0.35,
		Similarity: 0.30,
		Importance: 0.20,
		Confidence: 0.10,
		Decay:      0.05,
	}
}

// Recency computes exp(-ln2 · age_days / half_life) for a memory timestamp
// relative to ref. Future timestamps yield 1. Naive inputs are treated as UTC.
func Recency(memoryTime, ref time.Time, halfLifeDays float64) float64 {
	if halfLifeDays <= 0 {
		halfLifeDays = DefaultHalfLifeDays
	}
	ageDays := ref.UTC().Sub(memoryTime.UTC()).Hours() / hoursPerDay
	if ageDays <= 0 {
		return 1.0
	}
	return clamp01(math.Exp(-math.Ln2 * ageDays / halfLifeDays))
}

// Decay computes the spaced-repetition decay score in [0,1]. Age is measured
// from lastAccessed when present, otherwise from memoryTime. Each access
// boosts the effective half-life by DecayBoostFactor, capped at one year.
// Zero or negative ages yield 0 (a fresh memory has not decayed).
func Decay(memoryTime time.Time, lastAccessed *time.Time, accessCount int, ref time.Time) float64 {
	baseline := memoryTime
	if lastAccessed != nil {
		baseline = *lastAccessed
	}
	ageDays := ref.UTC().Sub(baseline.UTC()).Hours() / hoursPerDay
	if ageDays <= 0 {
		return 0.0
	}
	if accessCount < 0 {
		accessCount = 0
	}
	effectiveHL := BaseDecayHalfLifeDays * math.Pow(DecayBoostFactor, float64(accessCount))
	if effectiveHL > MaxDecayHalfLifeDays {
		effectiveHL = MaxDecayHalfLifeDays
	}
	return clamp01(1.0 - math.Exp(-math.Ln2*ageDays/effectiveHL))
}

// Combined computes the weighted multi-factor score. The decay factor enters
// as (1 − decay) so that a decayed memory scores lower. Nil importance and
// confidence default to 0.5. When similarity is nil its weight is dropped and
// the remaining weights are renormalized. The result is clamped to [0,1].
func Combined(importance, confidence *float64, recency, decay float64, similarity *float64, w Weights) float64 {
	imp := 0.5
	if importance != nil {
		imp = *importance
	}
	conf := 0.5
	if confidence != nil {
		conf = *confidence
	}

	total := w.Importance + w.Confidence + w.Recency + w.Decay
	if similarity != nil {
		total += w.Similarity
	}
	if total <= 0 {
		return 0.0
	}

	score := w.Importance*imp +
		w.Confidence*conf +
		w.Recency*clamp01(recency) +
		w.Decay*(1.0-clamp01(decay))
	if similarity != nil {
		score += w.Similarity * clamp01(*similarity)
	}

	return clamp01(score / total)
}

// KnowledgeScore blends confidence and similarity evenly. Nil confidence
// defaults to 0.5.
func KnowledgeScore(confidence *float64, similarity float64) float64 {
	conf := 0.5
	if confidence != nil {
		conf = *confidence
	}
	return clamp01(0.5*conf + 0.5*clamp01(similarity))
}

// CosineSimilarity computes the cosine similarity of two vectors.
// Mismatched lengths or zero vectors yield 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0.0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0.0
	}
	if v > 1 {
		return 1.0
	}
	return v
}
