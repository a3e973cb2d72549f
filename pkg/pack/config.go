// Package pack compiles memory packs: the four-layer context artefact an
// agent loads before responding. It owns the retrieval configuration, the
// presets, the identity prose renderer and the token budgeter.
package pack

import (
	"github.com/hejijunhao/elephantasm/pkg/scoring"
)

// Preset names accepted by the compile-by-preset endpoint.
const (
	PresetConversational = "conversational"
	PresetSelfDetermined = "self_determined"
)

// Scoring reasons attached to pack items.
const (
	ReasonSessionRecency = "SESSION_RECENCY"
	ReasonHybrid         = "HYBRID"
	ReasonKnowledge      = "KNOWLEDGE"
)

// RetrievalConfig parameterizes one pack compilation.
type RetrievalConfig struct {
	AnimaID string `json:"anima_id" binding:"required"`
	Query   string `json:"query"`
	Preset  string `json:"-"`

	MaxTokens                int             `json:"max_tokens"`
	SessionWindowHours       float64         `json:"session_window_hours"`
	MaxSessionMemories       int             `json:"max_session_memories"`
	MaxKnowledgeItems        int             `json:"max_knowledge_items"`
	MaxLongTermMemories      int             `json:"max_long_term_memories"`
	SimilarityThreshold      float64         `json:"similarity_threshold"`
	MinImportance            *float64        `json:"min_importance"`
	KnowledgeTypes           []string        `json:"knowledge_types"`
	Weights                  scoring.Weights `json:"weights"`
	IncludeIdentity          bool            `json:"include_identity"`
	IncludeTemporalAwareness bool            `json:"include_temporal_awareness"`
}

// ConversationalConfig is the deterministic preset: recency-weighted, short
// session window, small layers.
func ConversationalConfig(animaID, query string, maxTokens int) RetrievalConfig {
	return RetrievalConfig{
		AnimaID:                  animaID,
		Query:                    query,
		Preset:                   PresetConversational,
		MaxTokens:                maxTokens,
		SessionWindowHours:       4,
		MaxSessionMemories:       5,
		MaxKnowledgeItems:        3,
		MaxLongTermMemories:      3,
		SimilarityThreshold:      0.3,
		Weights:                  scoring.DefaultWeights(),
		IncludeIdentity:          true,
		IncludeTemporalAwareness: true,
	}
}

// normalize fills unset fields with workable values.
func (c *RetrievalConfig) normalize(defaultMaxTokens int) {
	if c.MaxTokens <= 0 {
		c.MaxTokens = defaultMaxTokens
	}
	if c.SessionWindowHours <= 0 {
		c.SessionWindowHours = 4
	}
	if c.MaxSessionMemories <= 0 {
		c.MaxSessionMemories = 5
	}
	if c.MaxKnowledgeItems <= 0 {
		c.MaxKnowledgeItems = 3
	}
	if c.MaxLongTermMemories <= 0 {
		c.MaxLongTermMemories = 3
	}
	if c.SimilarityThreshold <= 0 {
		c.SimilarityThreshold = 0.3
	}
	zero := scoring.Weights{}
	if c.Weights == zero {
		c.Weights = scoring.DefaultWeights()
	}
}
