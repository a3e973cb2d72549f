package synthesis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/pkg/llm"
	"github.com/hejijunhao/elephantasm/pkg/models"
	"github.com/hejijunhao/elephantasm/pkg/services"
	testutil "github.com/hejijunhao/elephantasm/test/util"
)

// stubLLM replays a canned response and records the prompts it saw.
type stubLLM struct {
	response string
	prompts  []llm.Prompt
}

func (s *stubLLM) Complete(_ context.Context, p llm.Prompt) (string, error) {
	s.prompts = append(s.prompts, p)
	return s.response, nil
}

func setupAnima(t *testing.T) (*ent.Client, *ent.Anima) {
	client, _ := testutil.SetupTestDatabase(t)
	ctx := context.Background()
	u, err := services.NewUserService(client).GetOrCreateByExternalSubject(ctx, "sub-"+uuid.New().String(), "")
	require.NoError(t, err)
	a, err := services.NewAnimaService(client).Create(ctx, u.ID, models.CreateAnimaRequest{
		Name:           "Gate Anima",
		OrganizationID: "org-1",
	})
	require.NoError(t, err)
	return client, a
}

func TestValidateItems(t *testing.T) {
	good := extractedItem{Type: "fact", Content: "a fact comfortably past the minimum content length", Confidence: 0.8}

	t.Run("unknown type dropped", func(t *testing.T) {
		items := validateItems([]extractedItem{{Type: "rumor", Content: good.Content}})
		assert.Empty(t, items)
	})

	t.Run("content length bounds", func(t *testing.T) {
		assert.Empty(t, validateItems([]extractedItem{{Type: "fact", Content: "too short"}}))
		assert.Empty(t, validateItems([]extractedItem{{Type: "fact", Content: strings.Repeat("x", MaxContentLen+1)}}))
		assert.Len(t, validateItems([]extractedItem{good}), 1)
	})

	t.Run("summary truncated to bound", func(t *testing.T) {
		item := good
		item.Summary = strings.Repeat("s", MaxSummaryLen+50)
		valid := validateItems([]extractedItem{item})
		require.Len(t, valid, 1)
		assert.Len(t, valid[0].Summary, MaxSummaryLen)
	})

	t.Run("empty topic defaults", func(t *testing.T) {
		valid := validateItems([]extractedItem{good})
		require.Len(t, valid, 1)
		assert.Equal(t, DefaultTopic, valid[0].Topic)
	})

	t.Run("array capped", func(t *testing.T) {
		items := make([]extractedItem, MaxItems+5)
		for i := range items {
			items[i] = good
		}
		assert.Len(t, validateItems(items), MaxItems)
	})
}

func TestSynthesizedDecoding(t *testing.T) {
	raw := "```json\n{\"summary\": \"short\", \"content\": \"long form\", \"importance\": 0.7, \"confidence\": 0.9}\n```"
	var syn synthesized
	require.NoError(t, llm.DecodeJSON(raw, &syn))
	assert.Equal(t, "short", syn.Summary)
	assert.Equal(t, "long form", syn.Content)
	assert.Equal(t, 0.7, syn.Importance)
}

func TestCheckThreshold(t *testing.T) {
	client, a := setupAnima(t)
	ctx := context.Background()
	p := NewPipeline(nil, nil, nil)
	evtSvc := services.NewEventService(client)

	t.Run("no events skips and advances the baseline", func(t *testing.T) {
		checkedAt := time.Now().UTC()
		gate, err := p.CheckThreshold(ctx, client, a.ID, checkedAt)
		require.NoError(t, err)
		assert.False(t, gate.Triggered)
		assert.Equal(t, SkipNoEvents, gate.SkipReason)
		assert.Equal(t, 0, gate.EventCount)

		cfg, err := services.NewConfigService(client).GetSynthesisConfig(ctx, a.ID)
		require.NoError(t, err)
		require.NotNil(t, cfg.LastSynthesisCheckAt)
		assert.True(t, cfg.LastSynthesisCheckAt.Equal(checkedAt))
	})

	t.Run("accumulation below threshold skips", func(t *testing.T) {
		base := time.Now().UTC()
		for i := 0; i < 3; i++ {
			_, err := evtSvc.Create(ctx, models.CreateEventRequest{
				AnimaID:    a.ID,
				Type:       "message.in",
				Content:    "small talk",
				OccurredAt: base.Add(time.Duration(i+1) * time.Second),
			})
			require.NoError(t, err)
		}

		// Moments later: 3 events and ~no elapsed hours score
		// 0.5*3 + 0.0003*300 = 1.59, under the default threshold of 10.
		gate, err := p.CheckThreshold(ctx, client, a.ID, base.Add(5*time.Second))
		require.NoError(t, err)
		assert.False(t, gate.Triggered)
		assert.Equal(t, SkipBelowThreshold, gate.SkipReason)
		assert.Equal(t, 3, gate.EventCount)
		assert.InDelta(t, 1.59, gate.Score, 0.01)
	})

	t.Run("elapsed time pushes the score over", func(t *testing.T) {
		gate, err := p.CheckThreshold(ctx, client, a.ID, time.Now().UTC().Add(12*time.Hour))
		require.NoError(t, err)
		assert.True(t, gate.Triggered)
		assert.Empty(t, gate.SkipReason)
		assert.GreaterOrEqual(t, gate.Score, gate.Threshold)
	})
}

func TestPipelineRun(t *testing.T) {
	client, a := setupAnima(t)
	ctx := context.Background()
	evtSvc := services.NewEventService(client)

	base := time.Now().UTC()
	for i := 0; i < 3; i++ {
		_, err := evtSvc.Create(ctx, models.CreateEventRequest{
			AnimaID:    a.ID,
			Type:       "message.in",
			Content:    "the user talked about moving to lisbon",
			OccurredAt: base.Add(time.Duration(i+1) * time.Second),
		})
		require.NoError(t, err)
	}

	stub := &stubLLM{response: `{"summary": "relocation plans", "content": "The user is planning a move to Lisbon.", "importance": 0.8, "confidence": 0.9}`}
	p := NewPipeline(stub, nil, nil)

	now := base.Add(12 * time.Hour)
	result, err := p.Run(ctx, client, a.ID, now)
	require.NoError(t, err)
	require.True(t, result.Gate.Triggered)
	require.NotEmpty(t, result.MemoryID)
	require.Len(t, stub.prompts, 1)

	memSvc := services.NewMemoryService(client)
	m, err := memSvc.Get(ctx, result.MemoryID)
	require.NoError(t, err)
	assert.Equal(t, "The user is planning a move to Lisbon.", m.Content)
	require.NotNil(t, m.Summary)
	assert.Equal(t, "relocation plans", *m.Summary)
	require.NotNil(t, m.TimeStart)
	require.NotNil(t, m.TimeEnd)
	assert.True(t, m.TimeEnd.After(*m.TimeStart))

	linked, err := memSvc.SourceEvents(ctx, result.MemoryID)
	require.NoError(t, err)
	assert.Len(t, linked, 3)

	// The check stamp advanced; an immediate re-run finds no new events.
	again, err := p.Run(ctx, client, a.ID, now.Add(time.Second))
	require.NoError(t, err)
	assert.False(t, again.Gate.Triggered)
	assert.Equal(t, SkipNoEvents, again.Gate.SkipReason)
}
