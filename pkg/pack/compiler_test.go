package pack

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hejijunhao/elephantasm/pkg/config"
	"github.com/hejijunhao/elephantasm/pkg/scoring"
)

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("abc"))
	assert.Equal(t, 1, EstimateTokens("abcd"))
	assert.Equal(t, 2, EstimateTokens("abcde"))
	assert.Equal(t, 25, EstimateTokens(strings.Repeat("x", 100)))
}

func TestTrimLayer(t *testing.T) {
	items := []Item{
		{ID: "a", Text: strings.Repeat("x", 40)}, // 10 tokens
		{ID: "b", Text: strings.Repeat("x", 80)}, // 20 tokens
		{ID: "c", Text: strings.Repeat("x", 20)}, // 5 tokens
	}

	t.Run("keeps items that fit in order", func(t *testing.T) {
		kept := trimLayer(append([]Item(nil), items...), 16)
		// "a" fits (10), "b" would exceed, "c" still fits (15 total).
		assert.Len(t, kept, 2)
		assert.Equal(t, "a", kept[0].ID)
		assert.Equal(t, "c", kept[1].ID)
		assert.Equal(t, 10, kept[0].Tokens)
		assert.Equal(t, 5, kept[1].Tokens)
	})

	t.Run("zero budget drops everything", func(t *testing.T) {
		assert.Empty(t, trimLayer(append([]Item(nil), items...), 0))
	})

	t.Run("large budget keeps everything", func(t *testing.T) {
		assert.Len(t, trimLayer(append([]Item(nil), items...), 1000), 3)
	})
}

func TestApplyBudget(t *testing.T) {
	c := NewCompiler(config.DefaultPackConfig(), nil)

	t.Run("identity overhead is reserved", func(t *testing.T) {
		p := &CompiledPack{
			MaxTokens:     200,
			IdentityProse: "You are Iris.",
			// 50 tokens of session text against a session share of
			// (200-150)*0.25 = 12 tokens.
			SessionMemories: []Item{{ID: "a", Text: strings.Repeat("x", 200)}},
		}
		c.applyBudget(p)
		assert.Empty(t, p.SessionMemories)
	})

	t.Run("without identity the full budget splits across layers", func(t *testing.T) {
		p := &CompiledPack{
			MaxTokens:       1000,
			SessionMemories: []Item{{ID: "a", Text: strings.Repeat("x", 400)}}, // 100 < 250
			Knowledge:       []Item{{ID: "b", Text: strings.Repeat("x", 400)}}, // 100 < 350
			LongTerm:        []Item{{ID: "c", Text: strings.Repeat("x", 400)}}, // 100 < 400
		}
		c.applyBudget(p)
		assert.Len(t, p.SessionMemories, 1)
		assert.Len(t, p.Knowledge, 1)
		assert.Len(t, p.LongTerm, 1)
	})

	t.Run("overhead larger than budget clamps to zero", func(t *testing.T) {
		p := &CompiledPack{
			MaxTokens:       100,
			IdentityProse:   "You are Iris.",
			SessionMemories: []Item{{ID: "a", Text: "hello"}},
		}
		c.applyBudget(p)
		assert.Empty(t, p.SessionMemories)
	})
}

func TestRetrievalConfigNormalize(t *testing.T) {
	t.Run("fills zero values", func(t *testing.T) {
		rc := RetrievalConfig{AnimaID: "a"}
		rc.normalize(2000)
		assert.Equal(t, 2000, rc.MaxTokens)
		assert.Equal(t, 4.0, rc.SessionWindowHours)
		assert.Equal(t, 5, rc.MaxSessionMemories)
		assert.Equal(t, 3, rc.MaxKnowledgeItems)
		assert.Equal(t, 3, rc.MaxLongTermMemories)
		assert.Equal(t, 0.3, rc.SimilarityThreshold)
		assert.Equal(t, scoring.DefaultWeights(), rc.Weights)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		rc := RetrievalConfig{AnimaID: "a", MaxTokens: 512, SimilarityThreshold: 0.7}
		rc.normalize(2000)
		assert.Equal(t, 512, rc.MaxTokens)
		assert.Equal(t, 0.7, rc.SimilarityThreshold)
	})
}

func TestPrompt(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	p := &CompiledPack{
		IdentityProse:   "You are Iris.",
		SessionMemories: []Item{{Text: "talked about deadlines"}},
		Knowledge:       []Item{{Text: "prefers terse answers", Type: "preference"}},
		LongTerm:        []Item{{Text: "moved to Lisbon", Date: &date}},
	}
	prompt := p.Prompt()

	assert.True(t, strings.HasPrefix(prompt, "You are Iris.\n\n"))
	assert.Contains(t, prompt, "Recent context:\n- talked about deadlines")
	assert.Contains(t, prompt, "What you know:\n- [preference] prefers terse answers")
	assert.Contains(t, prompt, "Relevant memories:\n- [2026-03-14] moved to Lisbon")
	assert.False(t, strings.HasSuffix(prompt, "\n"))
}

func TestConversationalConfig(t *testing.T) {
	rc := ConversationalConfig("anima-1", "what's up", 1500)
	assert.Equal(t, PresetConversational, rc.Preset)
	assert.Equal(t, 1500, rc.MaxTokens)
	assert.True(t, rc.IncludeIdentity)
	assert.True(t, rc.IncludeTemporalAwareness)
	assert.Equal(t, 4.0, rc.SessionWindowHours)
}
