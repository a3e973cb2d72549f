package dream

import (
	"context"
	"strings"
	"time"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/pkg/models"
	"github.com/hejijunhao/elephantasm/pkg/scoring"
	"github.com/hejijunhao/elephantasm/pkg/services"
)

// decayWriteDelta is the minimum decay change worth a row update.
const decayWriteDelta = 0.01

// lightSleepResult carries the algorithmic phase's output into deep sleep.
type lightSleepResult struct {
	mergeGroups [][]*ent.Memory
	reviewFlags []*ent.Memory
}

// lightSleep runs the algorithmic curation phase: decay updates, state
// transitions, merge-candidate grouping and review flagging.
func (e *Engine) lightSleep(ctx context.Context, client *ent.Client, sessionID string, memories, recent []*ent.Memory, now time.Time) (*lightSleepResult, error) {
	dreamSvc := services.NewDreamService(client)

	for _, m := range memories {
		ageDays := now.Sub(m.UpdatedAt).Hours() / 24
		newDecay := ageDays / e.cfg.DecayHalfLifeDays
		if newDecay > 1 {
			newDecay = 1
		}
		if newDecay < 0 {
			newDecay = 0
		}
		oldDecay := 0.0
		if m.DecayScore != nil {
			oldDecay = *m.DecayScore
		}
		if abs(newDecay-oldDecay) > decayWriteDelta {
			updated, err := m.Update().SetDecayScore(newDecay).Save(ctx)
			if err != nil {
				return nil, err
			}
			_, err = dreamSvc.RecordAction(ctx, models.RecordDreamActionRequest{
				SessionID:       sessionID,
				ActionType:      "update",
				Phase:           "light_sleep",
				SourceMemoryIDs: []string{m.ID},
				ResultMemoryIDs: []string{m.ID},
				BeforeState:     map[string]interface{}{"decay_score": oldDecay},
				AfterState:      map[string]interface{}{"decay_score": newDecay},
			})
			if err != nil {
				return nil, err
			}
			*m = *updated
		}

		if err := e.transitionState(ctx, client, dreamSvc, sessionID, m); err != nil {
			return nil, err
		}
	}

	groups := groupMergeCandidates(memories, e.cfg.EmbeddingSimilarityThreshold, e.cfg.JaccardThreshold)

	flags := e.reviewFlags(memories, recent)

	return &lightSleepResult{mergeGroups: groups, reviewFlags: flags}, nil
}

// transitionState applies active → decaying → archived based on the decay
// score, importance floor and archive threshold.
func (e *Engine) transitionState(ctx context.Context, client *ent.Client, dreamSvc *services.DreamService, sessionID string, m *ent.Memory) error {
	decay := 0.0
	if m.DecayScore != nil {
		decay = *m.DecayScore
	}
	importance := 0.5
	if m.Importance != nil {
		importance = *m.Importance
	}

	var next string
	switch {
	case m.State == "active" && decay > e.cfg.DecayThreshold && importance < e.cfg.ImportanceFloor:
		next = "decaying"
	case m.State == "decaying" && decay > e.cfg.ArchiveThreshold:
		next = "archived"
	default:
		return nil
	}

	before := string(m.State)
	updated, err := services.NewMemoryService(client).Update(ctx, m.ID, models.UpdateMemoryRequest{State: &next})
	if err != nil {
		return err
	}
	_, err = dreamSvc.RecordAction(ctx, models.RecordDreamActionRequest{
		SessionID:       sessionID,
		ActionType:      "archive",
		Phase:           "light_sleep",
		SourceMemoryIDs: []string{m.ID},
		ResultMemoryIDs: []string{m.ID},
		BeforeState:     map[string]interface{}{"state": before},
		AfterState:      map[string]interface{}{"state": next},
	})
	if err != nil {
		return err
	}
	*m = *updated
	return nil
}

// groupMergeCandidates groups memories by embedding proximity, falling back
// to Jaccard word-set similarity over summaries when embeddings are absent.
// Each memory joins at most one group; groups of size >= 2 are candidates.
func groupMergeCandidates(memories []*ent.Memory, embeddingDistanceMax, jaccardMin float64) [][]*ent.Memory {
	processed := make(map[string]bool, len(memories))
	var groups [][]*ent.Memory

	for _, m1 := range memories {
		if processed[m1.ID] {
			continue
		}
		group := []*ent.Memory{m1}
		processed[m1.ID] = true

		for _, m2 := range memories {
			if processed[m2.ID] {
				continue
			}
			similar := false
			if len(m1.Embedding) > 0 && len(m2.Embedding) > 0 {
				distance := 1 - scoring.CosineSimilarity(m1.Embedding, m2.Embedding)
				similar = distance < embeddingDistanceMax
			} else if len(m1.Embedding) == 0 && len(m2.Embedding) == 0 {
				similar = JaccardSimilarity(memorySummaryOrContent(m1), memorySummaryOrContent(m2)) >= jaccardMin
			}
			if similar {
				group = append(group, m2)
				processed[m2.ID] = true
			}
		}
		if len(group) >= 2 {
			groups = append(groups, group)
		}
	}
	return groups
}

// JaccardSimilarity computes |A∩B| / |A∪B| over lowercase word sets.
func JaccardSimilarity(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	intersection := 0
	for w := range setA {
		if setB[w] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]bool {
	set := map[string]bool{}
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = true
	}
	return set
}

// reviewFlags marks memories for deep-sleep review: low confidence, very
// short summaries, and everything created since the previous dream.
func (e *Engine) reviewFlags(memories, recent []*ent.Memory) []*ent.Memory {
	recentIDs := make(map[string]bool, len(recent))
	for _, m := range recent {
		recentIDs[m.ID] = true
	}

	var flagged []*ent.Memory
	seen := map[string]bool{}
	for _, m := range memories {
		flag := recentIDs[m.ID]
		if m.Confidence != nil && *m.Confidence < e.cfg.ConfidenceReviewThreshold {
			flag = true
		}
		summaryLen := 0
		if m.Summary != nil {
			summaryLen = len(*m.Summary)
		}
		if summaryLen < e.cfg.MinSummaryLength {
			flag = true
		}
		if flag && !seen[m.ID] {
			seen[m.ID] = true
			flagged = append(flagged, m)
		}
	}
	return flagged
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
