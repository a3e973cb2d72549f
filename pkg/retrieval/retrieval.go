// Package retrieval provides stateless query helpers over the store: the
// time-window listing, semantic search with in-process cosine re-rank, and
// the temporal-context sentence.
package retrieval

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/ent/event"
	"github.com/hejijunhao/elephantasm/ent/knowledge"
	"github.com/hejijunhao/elephantasm/ent/memory"
	"github.com/hejijunhao/elephantasm/ent/memoryevent"
	"github.com/hejijunhao/elephantasm/pkg/scoring"
)

const (
	// candidateCap bounds the SQL pre-filter feeding the cosine re-rank.
	candidateCap = 500

	// maxTopK bounds the admitted result set.
	maxTopK = 100
)

// Engine runs retrieval queries on an owner-session client.
type Engine struct {
	client *ent.Client
}

// NewEngine creates a retrieval engine.
func NewEngine(client *ent.Client) *Engine {
	return &Engine{client: client}
}

// TimeWindowQuery filters memories by state and creation window.
type TimeWindowQuery struct {
	AnimaID       string
	States        []string
	MinTime       *time.Time
	MaxTime       *time.Time
	MinImportance *float64
	MinConfidence *float64
	Limit         int
}

// TimeWindow returns non-deleted memories in [MinTime, MaxTime), newest
// first.
func (e *Engine) TimeWindow(ctx context.Context, q TimeWindowQuery) ([]*ent.Memory, error) {
	query := e.client.Memory.Query().
		Where(
			memory.AnimaIDEQ(q.AnimaID),
			memory.IsDeleted(false),
		)
	if len(q.States) > 0 {
		states := make([]memory.State, 0, len(q.States))
		for _, s := range q.States {
			states = append(states, memory.State(s))
		}
		query = query.Where(memory.StateIn(states...))
	}
	if q.MinTime != nil {
		query = query.Where(memory.CreatedAtGTE(*q.MinTime))
	}
	if q.MaxTime != nil {
		query = query.Where(memory.CreatedAtLT(*q.MaxTime))
	}
	if q.MinImportance != nil {
		query = query.Where(memory.ImportanceGTE(*q.MinImportance))
	}
	if q.MinConfidence != nil {
		query = query.Where(memory.ConfidenceGTE(*q.MinConfidence))
	}
	limit := q.Limit
	if limit <= 0 || limit > candidateCap {
		limit = candidateCap
	}
	memories, err := query.
		Order(ent.Desc(memory.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to run time-window query: %w", err)
	}
	return memories, nil
}

// ScoredMemory pairs a memory with its query similarity.
type ScoredMemory struct {
	Memory     *ent.Memory
	Similarity float64
}

// ScoredKnowledge pairs a knowledge item with its query similarity.
type ScoredKnowledge struct {
	Knowledge  *ent.Knowledge
	Similarity float64
}

// SearchMemories runs semantic search: SQL pre-filter, then exact cosine
// against queryVec. Rows with distance < 1 − threshold are admitted, best
// match first, capped at topK.
func (e *Engine) SearchMemories(ctx context.Context, animaID string, queryVec []float32, threshold float64, topK int, states []string, maxTime *time.Time) ([]ScoredMemory, error) {
	query := e.client.Memory.Query().
		Where(
			memory.AnimaIDEQ(animaID),
			memory.IsDeleted(false),
			memory.EmbeddingNotNil(),
		)
	if len(states) > 0 {
		parsed := make([]memory.State, 0, len(states))
		for _, s := range states {
			parsed = append(parsed, memory.State(s))
		}
		query = query.Where(memory.StateIn(parsed...))
	}
	if maxTime != nil {
		query = query.Where(memory.CreatedAtLT(*maxTime))
	}
	candidates, err := query.
		Order(ent.Desc(memory.FieldCreatedAt)).
		Limit(candidateCap).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load memory candidates: %w", err)
	}

	results := make([]ScoredMemory, 0, len(candidates))
	for _, m := range candidates {
		sim := scoring.CosineSimilarity(queryVec, m.Embedding)
		if sim > threshold {
			results = append(results, ScoredMemory{Memory: m, Similarity: sim})
		}
	}
	sortScoredMemories(results)
	return results[:capTopK(len(results), topK)], nil
}

// SearchKnowledge runs semantic search over knowledge items, optionally
// restricted to a type set.
func (e *Engine) SearchKnowledge(ctx context.Context, animaID string, queryVec []float32, threshold float64, topK int, types []string) ([]ScoredKnowledge, error) {
	query := e.client.Knowledge.Query().
		Where(
			knowledge.AnimaIDEQ(animaID),
			knowledge.IsDeleted(false),
			knowledge.EmbeddingNotNil(),
		)
	if len(types) > 0 {
		parsed := make([]knowledge.Type, 0, len(types))
		for _, t := range types {
			parsed = append(parsed, knowledge.Type(t))
		}
		query = query.Where(knowledge.TypeIn(parsed...))
	}
	candidates, err := query.
		Order(ent.Desc(knowledge.FieldCreatedAt)).
		Limit(candidateCap).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load knowledge candidates: %w", err)
	}

	results := make([]ScoredKnowledge, 0, len(candidates))
	for _, k := range candidates {
		sim := scoring.CosineSimilarity(queryVec, k.Embedding)
		if sim > threshold {
			results = append(results, ScoredKnowledge{Knowledge: k, Similarity: sim})
		}
	}
	sortScoredKnowledge(results)
	return results[:capTopK(len(results), topK)], nil
}

// TemporalContext describes the anima's most recent conversational exchange.
type TemporalContext struct {
	LastEventAt   time.Time `json:"last_event_at"`
	HoursAgo      float64   `json:"hours_ago"`
	MemorySummary string    `json:"memory_summary,omitempty"`
	Formatted     string    `json:"formatted"`
}

// TemporalContextFor builds the temporal-context sentence from the most
// recent non-deleted conversational event, joined to its linked memory's
// summary when one exists. Returns nil when the anima has never conversed.
func (e *Engine) TemporalContextFor(ctx context.Context, animaID string, now time.Time) (*TemporalContext, error) {
	evt, err := e.client.Event.Query().
		Where(
			event.AnimaIDEQ(animaID),
			event.IsDeleted(false),
			event.TypeIn("message.in", "message.out"),
		).
		Order(ent.Desc(event.FieldOccurredAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load last conversational event: %w", err)
	}

	summary := ""
	link, err := e.client.MemoryEvent.Query().
		Where(memoryevent.EventIDEQ(evt.ID)).
		WithMemory().
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load linked memory: %w", err)
	}
	if link != nil && link.Edges.Memory != nil && link.Edges.Memory.Summary != nil {
		summary = *link.Edges.Memory.Summary
	}

	hoursAgo := now.Sub(evt.OccurredAt).Hours()
	return &TemporalContext{
		LastEventAt:   evt.OccurredAt,
		HoursAgo:      hoursAgo,
		MemorySummary: summary,
		Formatted:     FormatTemporalContext(hoursAgo, summary),
	}, nil
}

// FormatTemporalContext renders the last-communication sentence, bucketing
// the elapsed time into sub-hour, whole hours, "yesterday" or whole days.
func FormatTemporalContext(hoursAgo float64, memorySummary string) string {
	var when string
	switch {
	case hoursAgo < 1:
		when = "less than an hour ago"
	case hoursAgo < 24:
		h := int(hoursAgo)
		if h == 1 {
			when = "1 hour ago"
		} else {
			when = fmt.Sprintf("%d hours ago", h)
		}
	default:
		d := int(hoursAgo / 24)
		if d == 1 {
			when = "yesterday"
		} else {
			when = fmt.Sprintf("%d days ago", d)
		}
	}

	sentence := "Your last communication with the user was " + when
	if memorySummary != "" {
		sentence += " about " + memorySummary
	}
	return sentence + "."
}

func capTopK(n, topK int) int {
	if topK <= 0 || topK > maxTopK {
		topK = maxTopK
	}
	if n < topK {
		return n
	}
	return topK
}

func sortScoredMemories(results []ScoredMemory) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
}

func sortScoredKnowledge(results []ScoredKnowledge) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
}
