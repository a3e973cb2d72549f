package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/pkg/models"
	"github.com/hejijunhao/elephantasm/pkg/retrieval"
	"github.com/hejijunhao/elephantasm/pkg/services"
)

// CreateMemory creates a memory directly, outside the synthesis pipeline.
func (s *Server) CreateMemory(c *gin.Context) {
	var req models.CreateMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var created *ent.Memory
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		m, err := services.NewMemoryService(client).Create(ctx, req)
		if err != nil {
			return err
		}
		created = m
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListMemories lists memories with the standard filters.
func (s *Server) ListMemories(c *gin.Context) {
	filters := models.MemoryFilters{
		AnimaID:        c.Query("anima_id"),
		MinImportance:  queryFloat(c, "min_importance"),
		MinConfidence:  queryFloat(c, "min_confidence"),
		IncludeDeleted: queryBool(c, "include_deleted"),
		Limit:          queryInt(c, "limit"),
		Offset:         queryInt(c, "offset"),
	}
	if states := c.Query("states"); states != "" {
		filters.States = strings.Split(states, ",")
	}

	var memories []*ent.Memory
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		list, err := services.NewMemoryService(client).List(ctx, filters)
		if err != nil {
			return err
		}
		memories = list
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, memories)
}

// GetMemory fetches one memory.
func (s *Server) GetMemory(c *gin.Context) {
	var m *ent.Memory
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		got, err := services.NewMemoryService(client).Get(ctx, c.Param("id"))
		if err != nil {
			return err
		}
		m = got
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// UpdateMemory patches mutable memory fields.
func (s *Server) UpdateMemory(c *gin.Context) {
	var req models.UpdateMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var m *ent.Memory
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		updated, err := services.NewMemoryService(client).Update(ctx, c.Param("id"), req)
		if err != nil {
			return err
		}
		m = updated
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// DeleteMemory soft-deletes a memory.
func (s *Server) DeleteMemory(c *gin.Context) {
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		return services.NewMemoryService(client).SoftDelete(ctx, c.Param("id"))
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RestoreMemory reverses a soft-delete.
func (s *Server) RestoreMemory(c *gin.Context) {
	var m *ent.Memory
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		restored, err := services.NewMemoryService(client).Restore(ctx, c.Param("id"))
		if err != nil {
			return err
		}
		m = restored
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// GetMemoryEvents returns the memory's source events.
func (s *Server) GetMemoryEvents(c *gin.Context) {
	var events []*ent.Event
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		list, err := services.NewMemoryService(client).SourceEvents(ctx, c.Param("id"))
		if err != nil {
			return err
		}
		events = list
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// EmbedMemory computes and stores the embedding for one memory, from its
// summary when present, else its content.
func (s *Server) EmbedMemory(c *gin.Context) {
	if s.embedder == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "embedding not configured"})
		return
	}

	var m *ent.Memory
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		svc := services.NewMemoryService(client)
		got, err := svc.Get(ctx, c.Param("id"))
		if err != nil {
			return err
		}
		text := got.Content
		if got.Summary != nil && *got.Summary != "" {
			text = *got.Summary
		}
		vec, err := s.embedder.EmbedText(ctx, text)
		if err != nil {
			return err
		}
		m, err = svc.SetEmbedding(ctx, got.ID, vec, s.embedder.Model())
		return err
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// EmbedMemoriesBulk backfills embeddings for memories missing one.
func (s *Server) EmbedMemoriesBulk(c *gin.Context) {
	if s.embedder == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "embedding not configured"})
		return
	}

	var req struct {
		AnimaID string `json:"anima_id" binding:"required"`
		Limit   int    `json:"limit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	embedded := 0
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		svc := services.NewMemoryService(client)
		missing, err := svc.ListMissingEmbeddings(ctx, req.AnimaID, req.Limit)
		if err != nil {
			return err
		}
		if len(missing) == 0 {
			return nil
		}
		texts := make([]string, len(missing))
		for i, m := range missing {
			texts[i] = m.Content
			if m.Summary != nil && *m.Summary != "" {
				texts[i] = *m.Summary
			}
		}
		vectors, err := s.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return err
		}
		for i, m := range missing {
			if _, err := svc.SetEmbedding(ctx, m.ID, vectors[i], s.embedder.Model()); err != nil {
				return err
			}
			embedded++
		}
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"embedded": embedded})
}

// SearchMemories runs embedding-similarity search over memories.
func (s *Server) SearchMemories(c *gin.Context) {
	if s.embedder == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "embedding not configured"})
		return
	}

	var req models.SemanticSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var results []retrieval.ScoredMemory
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		vec, err := s.embedder.EmbedText(ctx, req.Query)
		if err != nil {
			return err
		}
		results, err = retrieval.NewEngine(client).SearchMemories(
			ctx, req.AnimaID, vec, req.Threshold, req.TopK, req.States, nil)
		return err
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results, "searched_at": time.Now().UTC()})
}
