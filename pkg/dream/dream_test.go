package dream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/pkg/config"
	"github.com/hejijunhao/elephantasm/pkg/llm"
)

func strPtr(s string) *string { return &s }

func floatPtr(v float64) *float64 { return &v }

func TestJaccardSimilarity(t *testing.T) {
	t.Run("identical texts", func(t *testing.T) {
		assert.Equal(t, 1.0, JaccardSimilarity("the user moved to lisbon", "the user moved to lisbon"))
	})

	t.Run("disjoint texts", func(t *testing.T) {
		assert.Equal(t, 0.0, JaccardSimilarity("alpha beta", "gamma delta"))
	})

	t.Run("partial overlap", func(t *testing.T) {
		// {a,b,c} vs {b,c,d}: intersection 2, union 4.
		assert.InDelta(t, 0.5, JaccardSimilarity("a b c", "b c d"), 1e-9)
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, 1.0, JaccardSimilarity("Hello World", "hello world"))
	})

	t.Run("empty input scores zero", func(t *testing.T) {
		assert.Equal(t, 0.0, JaccardSimilarity("", "something"))
		assert.Equal(t, 0.0, JaccardSimilarity("", ""))
	})
}

func TestGroupMergeCandidates(t *testing.T) {
	t.Run("embedding proximity groups", func(t *testing.T) {
		memories := []*ent.Memory{
			{ID: "a", Embedding: []float32{1, 0, 0}},
			{ID: "b", Embedding: []float32{0.99, 0.1, 0}},
			{ID: "c", Embedding: []float32{0, 1, 0}},
		}
		groups := groupMergeCandidates(memories, 0.3, 0.5)
		require.Len(t, groups, 1)
		require.Len(t, groups[0], 2)
		assert.Equal(t, "a", groups[0][0].ID)
		assert.Equal(t, "b", groups[0][1].ID)
	})

	t.Run("jaccard fallback without embeddings", func(t *testing.T) {
		memories := []*ent.Memory{
			{ID: "a", Content: "user moved to lisbon in march"},
			{ID: "b", Content: "user moved to lisbon in april"},
			{ID: "c", Content: "completely unrelated topic entirely"},
		}
		groups := groupMergeCandidates(memories, 0.3, 0.5)
		require.Len(t, groups, 1)
		assert.Len(t, groups[0], 2)
	})

	t.Run("mixed embedding presence never matches", func(t *testing.T) {
		memories := []*ent.Memory{
			{ID: "a", Embedding: []float32{1, 0}, Content: "same words here"},
			{ID: "b", Content: "same words here"},
		}
		assert.Empty(t, groupMergeCandidates(memories, 0.9, 0.1))
	})

	t.Run("each memory joins at most one group", func(t *testing.T) {
		memories := []*ent.Memory{
			{ID: "a", Embedding: []float32{1, 0}},
			{ID: "b", Embedding: []float32{1, 0}},
			{ID: "c", Embedding: []float32{1, 0}},
		}
		groups := groupMergeCandidates(memories, 0.5, 0.5)
		require.Len(t, groups, 1)
		assert.Len(t, groups[0], 3)
	})

	t.Run("singletons are not candidates", func(t *testing.T) {
		memories := []*ent.Memory{
			{ID: "a", Embedding: []float32{1, 0}},
			{ID: "b", Embedding: []float32{0, 1}},
		}
		assert.Empty(t, groupMergeCandidates(memories, 0.1, 0.5))
	})
}

func TestReviewFlags(t *testing.T) {
	e := &Engine{cfg: config.DefaultDreamConfig()}
	longSummary := strPtr("a summary comfortably past the minimum length floor")

	memories := []*ent.Memory{
		{ID: "recent", Summary: longSummary, Confidence: floatPtr(0.9)},
		{ID: "low-confidence", Summary: longSummary, Confidence: floatPtr(0.2)},
		{ID: "short-summary", Summary: strPtr("tiny"), Confidence: floatPtr(0.9)},
		{ID: "healthy", Summary: longSummary, Confidence: floatPtr(0.9)},
	}
	recent := []*ent.Memory{{ID: "recent"}}

	flagged := e.reviewFlags(memories, recent)
	ids := make([]string, 0, len(flagged))
	for _, m := range flagged {
		ids = append(ids, m.ID)
	}
	assert.ElementsMatch(t, []string{"recent", "low-confidence", "short-summary"}, ids)
}

func TestDecisionDecoding(t *testing.T) {
	t.Run("merge decision", func(t *testing.T) {
		raw := "```json\n{\"should_merge\": true, \"merged_summary\": \"moved to lisbon\", \"importance\": 0.7, \"confidence\": 0.8, \"reasoning\": \"same event\"}\n```"
		var d mergeDecision
		require.NoError(t, llm.DecodeJSON(raw, &d))
		assert.True(t, d.ShouldMerge)
		assert.Equal(t, "moved to lisbon", d.MergedSummary)
		assert.Equal(t, 0.7, d.Importance)
	})

	t.Run("review decisions", func(t *testing.T) {
		raw := `[
			{"index": 0, "action": "KEEP"},
			{"index": 1, "action": "UPDATE", "new_summary": "better", "new_importance": 0.9},
			{"index": 2, "action": "SPLIT", "split_into": ["one", "two"]},
			{"index": 3, "action": "DELETE", "reasoning": "noise"}
		]`
		var ds []reviewDecision
		require.NoError(t, llm.DecodeJSON(raw, &ds))
		require.Len(t, ds, 4)
		assert.Equal(t, "UPDATE", ds[1].Action)
		require.NotNil(t, ds[1].NewImportance)
		assert.Equal(t, 0.9, *ds[1].NewImportance)
		assert.Nil(t, ds[1].NewConfidence)
		assert.Equal(t, []string{"one", "two"}, ds[2].SplitInto)
	})
}

func TestCompletionSummary(t *testing.T) {
	t.Run("reviewed only", func(t *testing.T) {
		sess := &ent.DreamSession{MemoriesReviewed: 12}
		assert.Equal(t, "Reviewed 12 memories.", completionSummary(sess))
	})

	t.Run("all counters", func(t *testing.T) {
		sess := &ent.DreamSession{
			MemoriesReviewed: 12,
			MemoriesCreated:  1,
			MemoriesModified: 3,
			MemoriesArchived: 2,
			MemoriesDeleted:  4,
		}
		assert.Equal(t, "Reviewed 12 memories, created 1, modified 3, archived 2, deleted 4.", completionSummary(sess))
	})
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.5))
	assert.Equal(t, 0.5, clamp01(0.5))
	assert.Equal(t, 1.0, clamp01(1.5))
}
