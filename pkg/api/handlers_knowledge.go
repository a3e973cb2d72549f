package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/pkg/auth"
	"github.com/hejijunhao/elephantasm/pkg/models"
	"github.com/hejijunhao/elephantasm/pkg/retrieval"
	"github.com/hejijunhao/elephantasm/pkg/services"
)

// CreateKnowledge creates a knowledge item directly.
func (s *Server) CreateKnowledge(c *gin.Context) {
	var req models.CreateKnowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	req.TriggeredBy = auth.UserID(c)

	var created *ent.Knowledge
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		k, err := services.NewKnowledgeService(client).Create(ctx, req)
		if err != nil {
			return err
		}
		created = k
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListKnowledge lists knowledge items with the standard filters.
func (s *Server) ListKnowledge(c *gin.Context) {
	filters := models.KnowledgeFilters{
		AnimaID:        c.Query("anima_id"),
		Topic:          c.Query("topic"),
		IncludeDeleted: queryBool(c, "include_deleted"),
		Limit:          queryInt(c, "limit"),
		Offset:         queryInt(c, "offset"),
	}
	if types := c.Query("types"); types != "" {
		filters.Types = strings.Split(types, ",")
	}

	var items []*ent.Knowledge
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		list, err := services.NewKnowledgeService(client).List(ctx, filters)
		if err != nil {
			return err
		}
		items = list
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetKnowledge fetches one knowledge item.
func (s *Server) GetKnowledge(c *gin.Context) {
	var k *ent.Knowledge
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		got, err := services.NewKnowledgeService(client).Get(ctx, c.Param("id"))
		if err != nil {
			return err
		}
		k = got
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, k)
}

// UpdateKnowledge patches mutable knowledge fields.
func (s *Server) UpdateKnowledge(c *gin.Context) {
	var req models.UpdateKnowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	req.TriggeredBy = auth.UserID(c)

	var k *ent.Knowledge
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		updated, err := services.NewKnowledgeService(client).Update(ctx, c.Param("id"), req)
		if err != nil {
			return err
		}
		k = updated
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, k)
}

// DeleteKnowledge soft-deletes a knowledge item, writing an audit row.
func (s *Server) DeleteKnowledge(c *gin.Context) {
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		return services.NewKnowledgeService(client).SoftDelete(ctx, c.Param("id"), auth.UserID(c))
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RestoreKnowledge reverses a soft-delete.
func (s *Server) RestoreKnowledge(c *gin.Context) {
	var k *ent.Knowledge
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		restored, err := services.NewKnowledgeService(client).Restore(ctx, c.Param("id"), auth.UserID(c))
		if err != nil {
			return err
		}
		k = restored
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, k)
}

// KnowledgeAuditTrail returns a knowledge item's mutation history.
func (s *Server) KnowledgeAuditTrail(c *gin.Context) {
	var trail []*ent.KnowledgeAuditLog
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		logs, err := services.NewKnowledgeService(client).AuditTrail(ctx, c.Param("id"))
		if err != nil {
			return err
		}
		trail = logs
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trail)
}

// SearchKnowledge runs embedding-similarity search over knowledge items.
func (s *Server) SearchKnowledge(c *gin.Context) {
	if s.embedder == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "embedding not configured"})
		return
	}

	var req models.SemanticSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var results []retrieval.ScoredKnowledge
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		vec, err := s.embedder.EmbedText(ctx, req.Query)
		if err != nil {
			return err
		}
		results, err = retrieval.NewEngine(client).SearchKnowledge(
			ctx, req.AnimaID, vec, req.Threshold, req.TopK, req.Types)
		return err
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results, "searched_at": time.Now().UTC()})
}
