package dream

import (
	"fmt"
	"strings"

	"github.com/hejijunhao/elephantasm/ent"
)

const mergeSystem = `You curate an AI agent's long-term memory. You are
shown several similar memories and decide whether they describe the same
underlying experience and should become one. Respond with JSON only:
{"should_merge": bool, "merged_summary": "..", "importance": 0.0-1.0,
 "confidence": 0.0-1.0, "reasoning": ".."}`

const reviewSystem = `You curate an AI agent's long-term memory. For each
numbered memory decide one action. Respond with a JSON array, one decision
per memory:
[{"index": int, "action": "KEEP|UPDATE|SPLIT|DELETE",
  "new_summary": "..", "new_importance": float, "new_confidence": float,
  "split_into": ["..", ".."], "reasoning": ".."}]
UPDATE rewrites the provided fields. SPLIT needs at least two new summaries.
DELETE is for memories with no lasting value.`

// mergeDecision is the typed merge-prompt response.
type mergeDecision struct {
	ShouldMerge   bool    `json:"should_merge"`
	MergedSummary string  `json:"merged_summary"`
	Importance    float64 `json:"importance"`
	Confidence    float64 `json:"confidence"`
	Reasoning     string  `json:"reasoning"`
}

// reviewDecision is one element of the review-prompt response.
type reviewDecision struct {
	Index         int      `json:"index"`
	Action        string   `json:"action"`
	NewSummary    string   `json:"new_summary"`
	NewImportance *float64 `json:"new_importance"`
	NewConfidence *float64 `json:"new_confidence"`
	SplitInto     []string `json:"split_into"`
	Reasoning     string   `json:"reasoning"`
}

func buildMergePrompt(group []*ent.Memory) string {
	var b strings.Builder
	b.WriteString("Candidate memories:\n\n")
	for i, m := range group {
		fmt.Fprintf(&b, "%d. %s\n", i+1, memorySummaryOrContent(m))
	}
	b.WriteString("\nShould these become one memory?")
	return b.String()
}

func buildReviewPrompt(batch []*ent.Memory) string {
	var b strings.Builder
	b.WriteString("Memories under review:\n\n")
	for i, m := range batch {
		fmt.Fprintf(&b, "%d. %s\n", i, memorySummaryOrContent(m))
		if m.Importance != nil || m.Confidence != nil {
			imp, conf := 0.5, 0.5
			if m.Importance != nil {
				imp = *m.Importance
			}
			if m.Confidence != nil {
				conf = *m.Confidence
			}
			fmt.Fprintf(&b, "   importance=%.2f confidence=%.2f\n", imp, conf)
		}
	}
	return b.String()
}

func memorySummaryOrContent(m *ent.Memory) string {
	if m.Summary != nil && *m.Summary != "" {
		return *m.Summary
	}
	return m.Content
}
