package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/pkg/auth"
	"github.com/hejijunhao/elephantasm/pkg/models"
	"github.com/hejijunhao/elephantasm/pkg/services"
)

// TriggerDream starts a manual dream session and hands it to the engine in
// the background. Conflict when a session is already running.
func (s *Server) TriggerDream(c *gin.Context) {
	var req models.TriggerDreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	userID := auth.UserID(c)
	var sessionID string
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		sess, err := services.NewDreamService(client).StartSession(
			ctx, req.AnimaID, "manual", userID, s.cfg.Dream.Snapshot())
		if err != nil {
			return err
		}
		sessionID = sess.ID
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	accepted := s.background.Submit("dream_"+sessionID, func(ctx context.Context) {
		if err := s.dreamEng.Run(ctx, req.AnimaID, sessionID); err != nil {
			slog.Error("Manual dream failed", "session_id", sessionID, "error", err)
		}
	})
	if !accepted {
		// The engine never picked the session up; fail it so the
		// running-session guard does not block the anima.
		failErr := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
			_, err := services.NewDreamService(client).Fail(ctx, sessionID, "Dream queue full")
			return err
		})
		if failErr != nil {
			slog.Error("Failed to fail unqueued dream", "session_id", sessionID, "error", failErr)
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "dream queue full"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"session_id": sessionID, "status": "running"})
}

// ListDreamSessions lists dream sessions, newest first.
func (s *Server) ListDreamSessions(c *gin.Context) {
	filters := models.DreamSessionFilters{
		AnimaID: c.Query("anima_id"),
		Status:  c.Query("status"),
		Limit:   queryInt(c, "limit"),
		Offset:  queryInt(c, "offset"),
	}

	var sessions []*ent.DreamSession
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		list, err := services.NewDreamService(client).List(ctx, filters)
		if err != nil {
			return err
		}
		sessions = list
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GetDreamSessionWithActions returns a session and its full action trail.
func (s *Server) GetDreamSessionWithActions(c *gin.Context) {
	var sess *ent.DreamSession
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		got, err := services.NewDreamService(client).GetWithActions(ctx, c.Param("id"))
		if err != nil {
			return err
		}
		sess = got
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// CancelDreamSession cancels a running session. Conflict when the session
// is already terminal.
func (s *Server) CancelDreamSession(c *gin.Context) {
	var sess *ent.DreamSession
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		cancelled, err := services.NewDreamService(client).Cancel(ctx, c.Param("id"))
		if err != nil {
			return err
		}
		sess = cancelled
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// DreamStats aggregates dream activity, optionally per anima.
func (s *Server) DreamStats(c *gin.Context) {
	var stats *models.DreamStats
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		got, err := services.NewDreamService(client).Stats(ctx, c.Query("anima_id"))
		if err != nil {
			return err
		}
		stats = got
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
