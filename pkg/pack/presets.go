package pack

import (
	"context"
	"fmt"

	"github.com/hejijunhao/elephantasm/pkg/llm"
	"github.com/hejijunhao/elephantasm/pkg/scoring"
)

const adjudicationSystem = `You configure memory retrieval for an AI agent.
Given the agent's query, decide what mix of stored knowledge and long-term
memories will serve the response best. Respond with JSON only.`

const adjudicationTemplate = `Query: %q

Return a JSON object:
{
  "knowledge_types": [..],            // subset of: fact, concept, method, principle, experience
  "max_knowledge_items": int,         // 1-10
  "max_long_term_memories": int,      // 1-10
  "similarity_threshold": float,      // 0.1-0.9
  "min_importance": float,            // 0.0-1.0
  "weights": {
    "recency": float, "similarity": float, "importance": float,
    "confidence": float, "decay": float   // each 0.0-1.0
  }
}`

// adjudicatedConfig is the typed shape of the adjudication response.
type adjudicatedConfig struct {
	KnowledgeTypes      []string `json:"knowledge_types"`
	MaxKnowledgeItems   int      `json:"max_knowledge_items"`
	MaxLongTermMemories int      `json:"max_long_term_memories"`
	SimilarityThreshold float64  `json:"similarity_threshold"`
	MinImportance       float64  `json:"min_importance"`
	Weights             struct {
		Recency    float64 `json:"recency"`
		Similarity float64 `json:"similarity"`
		Importance float64 `json:"importance"`
		Confidence float64 `json:"confidence"`
		Decay      float64 `json:"decay"`
	} `json:"weights"`
}

var validKnowledgeTypes = map[string]bool{
	"fact": true, "concept": true, "method": true, "principle": true, "experience": true,
}

// SelfDeterminedConfig asks the LLM to adjudicate the non-grounding config
// fields for a query, clamped into safe ranges. Identity inclusion, temporal
// awareness, the 24-hour window and the session cap stay fixed.
func SelfDeterminedConfig(ctx context.Context, client llm.Client, animaID, query string, maxTokens int) (RetrievalConfig, error) {
	rc := RetrievalConfig{
		AnimaID:                  animaID,
		Query:                    query,
		Preset:                   PresetSelfDetermined,
		MaxTokens:                maxTokens,
		SessionWindowHours:       24,
		MaxSessionMemories:       5,
		IncludeIdentity:          true,
		IncludeTemporalAwareness: true,
	}
	if query == "" {
		return rc, fmt.Errorf("self_determined preset requires a query")
	}

	raw, err := client.Complete(ctx, llm.Prompt{
		System:      adjudicationSystem,
		User:        fmt.Sprintf(adjudicationTemplate, query),
		Temperature: 0.2,
		MaxTokens:   512,
	})
	if err != nil {
		return rc, fmt.Errorf("adjudication call failed: %w", err)
	}
	var adj adjudicatedConfig
	if err := llm.DecodeJSON(raw, &adj); err != nil {
		return rc, fmt.Errorf("adjudication response invalid: %w", err)
	}

	for _, t := range adj.KnowledgeTypes {
		if validKnowledgeTypes[t] {
			rc.KnowledgeTypes = append(rc.KnowledgeTypes, t)
		}
	}
	rc.MaxKnowledgeItems = clampInt(adj.MaxKnowledgeItems, 1, 10)
	rc.MaxLongTermMemories = clampInt(adj.MaxLongTermMemories, 1, 10)
	rc.SimilarityThreshold = clampFloat(adj.SimilarityThreshold, 0.1, 0.9)
	minImp := clampFloat(adj.MinImportance, 0, 1)
	if minImp > 0 {
		rc.MinImportance = &minImp
	}
	rc.Weights = scoring.Weights{
		Recency:    clampFloat(adj.Weights.Recency, 0, 1),
		Similarity: clampFloat(adj.Weights.Similarity, 0, 1),
		Importance: clampFloat(adj.Weights.Importance, 0, 1),
		Confidence: clampFloat(adj.Weights.Confidence, 0, 1),
		Decay:      clampFloat(adj.Weights.Decay, 0, 1),
	}
	if rc.Weights == (scoring.Weights{}) {
		rc.Weights = scoring.DefaultWeights()
	}
	return rc, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
