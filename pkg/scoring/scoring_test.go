package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestRecency(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	t.Run("identity at reference time", func(t *testing.T) {
		assert.Equal(t, 1.0, Recency(now, now, 7))
	})

	t.Run("half life point scores 0.5", func(t *testing.T) {
		h := 7.0
		past := now.Add(-time.Duration(h*24) * time.Hour)
		assert.InDelta(t, 0.5, Recency(past, now, h), 1e-9)
	})

	t.Run("future timestamps yield 1", func(t *testing.T) {
		assert.Equal(t, 1.0, Recency(now.Add(time.Hour), now, 7))
	})

	t.Run("result is clamped to [0,1]", func(t *testing.T) {
		ancient := now.AddDate(-50, 0, 0)
		r := Recency(ancient, now, 1)
		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, 1.0)
	})

	t.Run("non-positive half life falls back to default", func(t *testing.T) {
		past := now.Add(-DefaultHalfLifeDays * 24 * time.Hour)
		assert.InDelta(t, 0.5, Recency(past, now, 0), 1e-9)
	})
}

func TestDecay(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	t.Run("zero age yields zero decay", func(t *testing.T) {
		assert.Equal(t, 0.0, Decay(now, nil, 0, now))
	})

	t.Run("future baseline yields zero decay", func(t *testing.T) {
		assert.Equal(t, 0.0, Decay(now.Add(time.Hour), nil, 0, now))
	})

	t.Run("monotonically non-decreasing in age", func(t *testing.T) {
		prev := 0.0
		for days := 1; days <= 400; days += 10 {
			d := Decay(now.AddDate(0, 0, -days), nil, 0, now)
			assert.GreaterOrEqual(t, d, prev, "age %d days", days)
			prev = d
		}
	})

	t.Run("non-increasing in access count", func(t *testing.T) {
		memTime := now.AddDate(0, 0, -60)
		prev := 1.0
		for count := 0; count < 10; count++ {
			d := Decay(memTime, nil, count, now)
			assert.LessOrEqual(t, d, prev, "access count %d", count)
			prev = d
		}
	})

	t.Run("age measured from last accessed when present", func(t *testing.T) {
		memTime := now.AddDate(0, 0, -90)
		accessed := now.AddDate(0, 0, -1)
		withAccess := Decay(memTime, &accessed, 0, now)
		withoutAccess := Decay(memTime, nil, 0, now)
		assert.Less(t, withAccess, withoutAccess)
	})

	t.Run("effective half life is capped", func(t *testing.T) {
		memTime := now.AddDate(0, 0, -180)
		// Very high access counts hit the 365-day cap, so the score converges.
		d50 := Decay(memTime, nil, 50, now)
		d100 := Decay(memTime, nil, 100, now)
		assert.InDelta(t, d50, d100, 1e-12)
	})
}

func TestCombined(t *testing.T) {
	w := DefaultWeights()

	t.Run("clamped to [0,1] for all inputs", func(t *testing.T) {
		cases := []struct {
			imp, conf *float64
			rec, dec  float64
			sim       *float64
		}{
			{nil, nil, 0, 0, nil},
			{floatPtr(1), floatPtr(1), 1, 0, floatPtr(1)},
			{floatPtr(0), floatPtr(0), 0, 1, floatPtr(0)},
			{floatPtr(0.5), nil, 2.0, -1.0, floatPtr(5.0)},
		}
		for _, c := range cases {
			s := Combined(c.imp, c.conf, c.rec, c.dec, c.sim, w)
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0)
		}
	})

	t.Run("perfect inputs score 1", func(t *testing.T) {
		s := Combined(floatPtr(1), floatPtr(1), 1.0, 0.0, floatPtr(1), w)
		assert.InDelta(t, 1.0, s, 1e-9)
	})

	t.Run("missing importance and confidence default to 0.5", func(t *testing.T) {
		explicit := Combined(floatPtr(0.5), floatPtr(0.5), 0.8, 0.2, floatPtr(0.6), w)
		defaulted := Combined(nil, nil, 0.8, 0.2, floatPtr(0.6), w)
		assert.InDelta(t, explicit, defaulted, 1e-12)
	})

	t.Run("similarity weight dropped and renormalized when absent", func(t *testing.T) {
		// With uniform factor values the renormalized score must be unchanged.
		s := Combined(floatPtr(0.7), floatPtr(0.7), 0.7, 0.3, nil, w)
		assert.InDelta(t, 0.7, s, 1e-9)
	})

	t.Run("zero weights yield zero", func(t *testing.T) {
		s := Combined(floatPtr(1), floatPtr(1), 1, 0, nil, Weights{})
		assert.Equal(t, 0.0, s)
	})
}

func TestKnowledgeScore(t *testing.T) {
	t.Run("even blend", func(t *testing.T) {
		assert.InDelta(t, 0.7, KnowledgeScore(floatPtr(0.8), 0.6), 1e-9)
	})

	t.Run("nil confidence defaults to 0.5", func(t *testing.T) {
		assert.InDelta(t, 0.55, KnowledgeScore(nil, 0.6), 1e-9)
	})

	t.Run("clamped", func(t *testing.T) {
		assert.LessOrEqual(t, KnowledgeScore(floatPtr(1), 2.0), 1.0)
	})
}

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors", func(t *testing.T) {
		v := []float32{0.1, 0.2, 0.3}
		assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-6)
	})

	t.Run("orthogonal vectors", func(t *testing.T) {
		assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	})

	t.Run("opposite vectors", func(t *testing.T) {
		assert.InDelta(t, -1.0, CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)
	})

	t.Run("mismatched lengths yield 0", func(t *testing.T) {
		assert.Equal(t, 0.0, CosineSimilarity([]float32{1, 2}, []float32{1}))
	})

	t.Run("zero vector yields 0", func(t *testing.T) {
		assert.Equal(t, 0.0, CosineSimilarity([]float32{0, 0}, []float32{1, 1}))
	})
}
