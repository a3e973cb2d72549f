package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/pkg/auth"
	"github.com/hejijunhao/elephantasm/pkg/models"
	"github.com/hejijunhao/elephantasm/pkg/pack"
	"github.com/hejijunhao/elephantasm/pkg/services"
)

// CompilePack compiles a pack from an explicit retrieval config.
func (s *Server) CompilePack(c *gin.Context) {
	var rc pack.RetrievalConfig
	if err := c.ShouldBindJSON(&rc); err != nil {
		respondBindError(c, err)
		return
	}
	s.compile(c, rc)
}

// CompilePackPreset compiles under a named preset. With ?persist=true the
// result is saved in the background and retention enforced afterwards.
func (s *Server) CompilePackPreset(c *gin.Context) {
	var req struct {
		AnimaID   string `json:"anima_id" binding:"required"`
		Query     string `json:"query"`
		MaxTokens int    `json:"max_tokens"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var (
		rc  pack.RetrievalConfig
		err error
	)
	switch preset := c.Param("preset"); preset {
	case pack.PresetConversational:
		rc = pack.ConversationalConfig(req.AnimaID, req.Query, req.MaxTokens)
	case pack.PresetSelfDetermined:
		rc, err = pack.SelfDeterminedConfig(c.Request.Context(), s.llm, req.AnimaID, req.Query, req.MaxTokens)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown preset"})
		return
	}
	s.compile(c, rc)
}

func (s *Server) compile(c *gin.Context, rc pack.RetrievalConfig) {
	var compiled *pack.CompiledPack
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		p, err := s.compiler.Compile(ctx, client, rc)
		if err != nil {
			return err
		}
		compiled = p
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if queryBool(c, "persist") {
		s.persistPack(auth.UserID(c), compiled)
	}
	c.JSON(http.StatusOK, compiled)
}

// persistPack saves a compiled pack and enforces the retention bound,
// detached from the request.
func (s *Server) persistPack(userID string, p *pack.CompiledPack) {
	accepted := s.background.Submit("pack_persist_"+p.AnimaID, func(ctx context.Context) {
		err := s.envelope.WithOwnerSession(ctx, userID, func(ctx context.Context, client *ent.Client) error {
			svc := services.NewPackService(client)
			saved, err := svc.Save(ctx, models.SavePackRequest{
				AnimaID:        p.AnimaID,
				Query:          p.Query,
				Preset:         p.Preset,
				SessionCount:   len(p.SessionMemories),
				KnowledgeCount: len(p.Knowledge),
				LongTermCount:  len(p.LongTerm),
				TokenCount:     p.TokenCount,
				MaxTokens:      p.MaxTokens,
				Content:        p.ContentMap(),
				CompiledAt:     p.CompiledAt,
			})
			if err != nil {
				return err
			}
			deleted, err := svc.EnforceRetention(ctx, p.AnimaID, s.cfg.Retention.MaxPacksPerAnima)
			if err != nil {
				return err
			}
			slog.Info("Pack persisted", "pack_id", saved.ID, "anima_id", p.AnimaID, "pruned", deleted)
			return nil
		})
		if err != nil {
			slog.Warn("Pack persistence failed", "anima_id", p.AnimaID, "error", err)
		}
	})
	if !accepted {
		slog.Warn("Pack persistence dropped, queue full", "anima_id", p.AnimaID)
	}
}

// ListPacks lists an anima's persisted packs, newest first.
func (s *Server) ListPacks(c *gin.Context) {
	animaID := c.Query("anima_id")
	if animaID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "anima_id is required"})
		return
	}

	var packs []*ent.MemoryPack
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		list, err := services.NewPackService(client).List(ctx, animaID, queryInt(c, "limit"), queryInt(c, "offset"))
		if err != nil {
			return err
		}
		packs = list
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, packs)
}

// GetPack fetches one persisted pack.
func (s *Server) GetPack(c *gin.Context) {
	var p *ent.MemoryPack
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		got, err := services.NewPackService(client).Get(ctx, c.Param("id"))
		if err != nil {
			return err
		}
		p = got
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
