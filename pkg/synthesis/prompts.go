package synthesis

import (
	"fmt"
	"strings"
	"time"

	"github.com/hejijunhao/elephantasm/ent"
)

const synthesisSystem = `You consolidate an AI agent's raw experiences into
one coherent memory. Write in first person from the agent's perspective.
Respond with a single JSON object:
{"summary": "one sentence", "content": "the full memory",
 "importance": 0.0-1.0, "confidence": 0.0-1.0}`

const extractionSystem = `You distill durable knowledge from an AI agent's
memory. Extract only what will stay true beyond this episode. Respond with a
JSON array (at most %d items):
[{"type": "fact|concept|method|principle|experience", "topic": "short tag",
  "content": "the knowledge", "summary": "one sentence",
  "confidence": 0.0-1.0}]`

// buildSynthesisPrompt serializes events chronologically for the synthesis
// call.
func buildSynthesisPrompt(events []*ent.Event) string {
	var b strings.Builder
	b.WriteString("Experiences to consolidate, in order:\n\n")
	for _, evt := range events {
		author := ""
		if evt.Author != nil {
			author = *evt.Author
		} else if evt.Role != nil {
			author = *evt.Role
		}
		if author != "" {
			fmt.Fprintf(&b, "[%s] %s: %s\n", evt.OccurredAt.Format(time.RFC3339), author, evt.Content)
		} else {
			fmt.Fprintf(&b, "[%s] (%s) %s\n", evt.OccurredAt.Format(time.RFC3339), evt.Type, evt.Content)
		}
	}
	return b.String()
}

// buildExtractionPrompt serializes a memory (and optionally its source
// events) for the knowledge-extraction call.
func buildExtractionPrompt(m *ent.Memory, events []*ent.Event) string {
	var b strings.Builder
	b.WriteString("Memory:\n")
	if m.Summary != nil && *m.Summary != "" {
		fmt.Fprintf(&b, "Summary: %s\n", *m.Summary)
	}
	fmt.Fprintf(&b, "%s\n", m.Content)
	if len(events) > 0 {
		b.WriteString("\nSource experiences:\n")
		for _, evt := range events {
			fmt.Fprintf(&b, "- %s\n", evt.Content)
		}
	}
	return b.String()
}
