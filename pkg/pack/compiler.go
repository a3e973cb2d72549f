package pack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/pkg/config"
	"github.com/hejijunhao/elephantasm/pkg/embedding"
	"github.com/hejijunhao/elephantasm/pkg/retrieval"
	"github.com/hejijunhao/elephantasm/pkg/scoring"
	"github.com/hejijunhao/elephantasm/pkg/services"
)

// sessionHalfLifeDays is the recency half-life for the session layer; a
// few hours old already reads as stale within a conversation.
const sessionHalfLifeDays = 1.0

// Item is one scored entry in a pack layer.
type Item struct {
	ID      string     `json:"id"`
	Text    string     `json:"text"`
	Score   float64    `json:"score"`
	Reason  string     `json:"reason"`
	Type    string     `json:"type,omitempty"`
	Date    *time.Time `json:"date,omitempty"`
	Tokens  int        `json:"tokens"`
	Trimmed bool       `json:"-"`
}

// CompiledPack is the compilation result: four layers, counts and the
// concatenated prompt.
type CompiledPack struct {
	AnimaID         string                     `json:"anima_id"`
	Query           string                     `json:"query,omitempty"`
	Preset          string                     `json:"preset,omitempty"`
	IdentityProse   string                     `json:"identity_prose,omitempty"`
	TemporalContext *retrieval.TemporalContext `json:"temporal_context,omitempty"`
	SessionMemories []Item                     `json:"session_memories"`
	Knowledge       []Item                     `json:"knowledge"`
	LongTerm        []Item                     `json:"long_term_memories"`
	TokenCount      int                        `json:"token_count"`
	MaxTokens       int                        `json:"max_tokens"`
	CompiledAt      time.Time                  `json:"compiled_at"`
	Config          RetrievalConfig            `json:"config"`
}

// Compiler assembles packs from an owner-session client.
type Compiler struct {
	cfg      *config.PackConfig
	embedder embedding.Embedder
}

// NewCompiler creates a pack compiler. The embedder may be nil; query-driven
// layers then stay empty.
func NewCompiler(cfg *config.PackConfig, embedder embedding.Embedder) *Compiler {
	if cfg == nil {
		cfg = config.DefaultPackConfig()
	}
	return &Compiler{cfg: cfg, embedder: embedder}
}

// Compile runs the full compilation against a tenancy-scoped client.
func (c *Compiler) Compile(ctx context.Context, client *ent.Client, rc RetrievalConfig) (*CompiledPack, error) {
	rc.normalize(c.cfg.DefaultMaxTokens)
	now := time.Now().UTC()
	engine := retrieval.NewEngine(client)

	result := &CompiledPack{
		AnimaID:         rc.AnimaID,
		Query:           rc.Query,
		Preset:          rc.Preset,
		SessionMemories: []Item{},
		Knowledge:       []Item{},
		LongTerm:        []Item{},
		MaxTokens:       rc.MaxTokens,
		CompiledAt:      now,
		Config:          rc,
	}

	var queryVec []float32
	if rc.Query != "" && c.embedder != nil {
		vec, err := c.embedder.EmbedText(ctx, rc.Query)
		if err != nil {
			return nil, fmt.Errorf("failed to embed query: %w", err)
		}
		queryVec = vec
	}

	if rc.IncludeIdentity {
		prose, err := c.identityProse(ctx, client, rc.AnimaID)
		if err != nil {
			return nil, err
		}
		result.IdentityProse = prose
	}

	sessionItems, err := c.sessionLayer(ctx, engine, rc, now)
	if err != nil {
		return nil, err
	}
	result.SessionMemories = sessionItems

	if len(sessionItems) == 0 && rc.IncludeTemporalAwareness {
		tc, err := engine.TemporalContextFor(ctx, rc.AnimaID, now)
		if err != nil {
			return nil, err
		}
		result.TemporalContext = tc
	}

	if queryVec != nil {
		knowledgeItems, err := c.knowledgeLayer(ctx, engine, rc, queryVec)
		if err != nil {
			return nil, err
		}
		result.Knowledge = knowledgeItems

		longTermItems, err := c.longTermLayer(ctx, engine, rc, queryVec, now)
		if err != nil {
			return nil, err
		}
		result.LongTerm = longTermItems
	}

	c.applyBudget(result)
	result.TokenCount = c.tokenCount(result)

	// Retrieval hits feed the spaced-repetition half-life.
	accessed := make([]string, 0, len(result.SessionMemories)+len(result.LongTerm))
	for _, it := range result.SessionMemories {
		accessed = append(accessed, it.ID)
	}
	for _, it := range result.LongTerm {
		accessed = append(accessed, it.ID)
	}
	if err := services.NewMemoryService(client).RecordAccess(ctx, accessed, now); err != nil {
		slog.Warn("Failed to record memory access", "anima_id", rc.AnimaID, "error", err)
	}

	return result, nil
}

func (c *Compiler) identityProse(ctx context.Context, client *ent.Client, animaID string) (string, error) {
	animaSvc := services.NewAnimaService(client)
	a, err := animaSvc.Get(ctx, animaID)
	if err != nil {
		return "", err
	}
	ident, err := services.NewIdentityService(client).Get(ctx, animaID)
	if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrDeleted) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return FormatIdentityProse(a.Name, ident.PersonalityType, ident.CommunicationStyle, ident.SelfReflection), nil
}

func (c *Compiler) sessionLayer(ctx context.Context, engine *retrieval.Engine, rc RetrievalConfig, now time.Time) ([]Item, error) {
	minTime := now.Add(-time.Duration(rc.SessionWindowHours * float64(time.Hour)))
	memories, err := engine.TimeWindow(ctx, retrieval.TimeWindowQuery{
		AnimaID: rc.AnimaID,
		States:  []string{"active"},
		MinTime: &minTime,
	})
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(memories))
	for _, m := range memories {
		score := scoring.Recency(m.CreatedAt, now, sessionHalfLifeDays)
		items = append(items, Item{
			ID:     m.ID,
			Text:   memoryText(m),
			Score:  score,
			Reason: ReasonSessionRecency,
			Date:   &m.CreatedAt,
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Score > items[j].Score })
	if len(items) > rc.MaxSessionMemories {
		items = items[:rc.MaxSessionMemories]
	}
	return items, nil
}

func (c *Compiler) knowledgeLayer(ctx context.Context, engine *retrieval.Engine, rc RetrievalConfig, queryVec []float32) ([]Item, error) {
	scored, err := engine.SearchKnowledge(ctx, rc.AnimaID, queryVec, rc.SimilarityThreshold, rc.MaxKnowledgeItems, rc.KnowledgeTypes)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(scored))
	for _, sk := range scored {
		items = append(items, Item{
			ID:     sk.Knowledge.ID,
			Text:   knowledgeText(sk.Knowledge),
			Score:  scoring.KnowledgeScore(sk.Knowledge.Confidence, sk.Similarity),
			Reason: ReasonKnowledge,
			Type:   string(sk.Knowledge.Type),
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Score > items[j].Score })
	return items, nil
}

func (c *Compiler) longTermLayer(ctx context.Context, engine *retrieval.Engine, rc RetrievalConfig, queryVec []float32, now time.Time) ([]Item, error) {
	maxTime := now.Add(-time.Duration(rc.SessionWindowHours * float64(time.Hour)))
	overFetch := rc.MaxLongTermMemories * c.cfg.OverFetchFactor
	scored, err := engine.SearchMemories(ctx, rc.AnimaID, queryVec, rc.SimilarityThreshold, overFetch, nil, &maxTime)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(scored))
	for _, sm := range scored {
		m := sm.Memory
		if rc.MinImportance != nil && (m.Importance == nil || *m.Importance < *rc.MinImportance) {
			continue
		}
		sim := sm.Similarity
		recency := scoring.Recency(m.CreatedAt, now, scoring.DefaultHalfLifeDays)
		// A compile read is not a reinforcement; decay sees the memory as
		// untouched since its last update.
		decay := scoring.Decay(m.CreatedAt, &m.UpdatedAt, 0, now)
		score := scoring.Combined(m.Importance, m.Confidence, recency, decay, &sim, rc.Weights)
		items = append(items, Item{
			ID:     m.ID,
			Text:   memoryText(m),
			Score:  score,
			Reason: ReasonHybrid,
			Date:   &m.CreatedAt,
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Score > items[j].Score })
	if len(items) > rc.MaxLongTermMemories {
		items = items[:rc.MaxLongTermMemories]
	}
	return items, nil
}

// applyBudget reserves the identity overhead, splits the remainder across
// the layers and greedily trims each layer to its share.
func (c *Compiler) applyBudget(p *CompiledPack) {
	budget := p.MaxTokens
	if p.IdentityProse != "" {
		budget -= c.cfg.IdentityTokenOverhead
	}
	if budget < 0 {
		budget = 0
	}
	p.SessionMemories = trimLayer(p.SessionMemories, int(float64(budget)*c.cfg.SessionBudgetShare))
	p.Knowledge = trimLayer(p.Knowledge, int(float64(budget)*c.cfg.KnowledgeBudgetShare))
	p.LongTerm = trimLayer(p.LongTerm, int(float64(budget)*c.cfg.LongTermBudgetShare))
}

// trimLayer keeps items in order while their cumulative token estimate fits
// the layer budget.
func trimLayer(items []Item, budget int) []Item {
	kept := items[:0]
	used := 0
	for _, it := range items {
		it.Tokens = EstimateTokens(it.Text)
		if used+it.Tokens > budget {
			continue
		}
		used += it.Tokens
		kept = append(kept, it)
	}
	return kept
}

func (c *Compiler) tokenCount(p *CompiledPack) int {
	total := 0
	if p.IdentityProse != "" {
		total += c.cfg.IdentityTokenOverhead
	}
	if p.TemporalContext != nil {
		total += EstimateTokens(p.TemporalContext.Formatted)
	}
	for _, layer := range [][]Item{p.SessionMemories, p.Knowledge, p.LongTerm} {
		for _, it := range layer {
			total += EstimateTokens(it.Text)
		}
	}
	return total
}

// EstimateTokens approximates tokens as ceil(len/4).
func EstimateTokens(s string) int {
	return (len(s) + 3) / 4
}

// Prompt concatenates the pack sections into the final context string:
// identity, temporal context, session bullets, knowledge bullets (tagged by
// type), long-term bullets (tagged by date).
func (p *CompiledPack) Prompt() string {
	var b strings.Builder
	if p.IdentityProse != "" {
		b.WriteString(p.IdentityProse)
		b.WriteString("\n\n")
	}
	if p.TemporalContext != nil {
		b.WriteString(p.TemporalContext.Formatted)
		b.WriteString("\n\n")
	}
	if len(p.SessionMemories) > 0 {
		b.WriteString("Recent context:\n")
		for _, it := range p.SessionMemories {
			fmt.Fprintf(&b, "- %s\n", it.Text)
		}
		b.WriteString("\n")
	}
	if len(p.Knowledge) > 0 {
		b.WriteString("What you know:\n")
		for _, it := range p.Knowledge {
			fmt.Fprintf(&b, "- [%s] %s\n", it.Type, it.Text)
		}
		b.WriteString("\n")
	}
	if len(p.LongTerm) > 0 {
		b.WriteString("Relevant memories:\n")
		for _, it := range p.LongTerm {
			if it.Date != nil {
				fmt.Fprintf(&b, "- [%s] %s\n", it.Date.Format("2006-01-02"), it.Text)
			} else {
				fmt.Fprintf(&b, "- %s\n", it.Text)
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// ContentMap serializes the pack payload for persistence.
func (p *CompiledPack) ContentMap() map[string]interface{} {
	content := map[string]interface{}{
		"identity_prose":     p.IdentityProse,
		"session_memories":   layerMap(p.SessionMemories),
		"knowledge":          layerMap(p.Knowledge),
		"long_term_memories": layerMap(p.LongTerm),
		"prompt":             p.Prompt(),
	}
	if p.TemporalContext != nil {
		content["temporal_context"] = map[string]interface{}{
			"last_event_at":  p.TemporalContext.LastEventAt.Format(time.RFC3339),
			"hours_ago":      p.TemporalContext.HoursAgo,
			"memory_summary": p.TemporalContext.MemorySummary,
			"formatted":      p.TemporalContext.Formatted,
		}
	}
	return content
}

func layerMap(items []Item) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(items))
	for _, it := range items {
		m := map[string]interface{}{
			"id":     it.ID,
			"text":   it.Text,
			"score":  it.Score,
			"reason": it.Reason,
		}
		if it.Type != "" {
			m["type"] = it.Type
		}
		if it.Date != nil {
			m["date"] = it.Date.Format(time.RFC3339)
		}
		out = append(out, m)
	}
	return out
}

func memoryText(m *ent.Memory) string {
	if m.Summary != nil && *m.Summary != "" {
		return *m.Summary
	}
	return m.Content
}

func knowledgeText(k *ent.Knowledge) string {
	if k.Summary != nil && *k.Summary != "" {
		return *k.Summary
	}
	return k.Content
}
