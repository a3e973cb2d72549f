package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/pkg/auth"
	"github.com/hejijunhao/elephantasm/pkg/models"
	"github.com/hejijunhao/elephantasm/pkg/services"
)

// CreateEvent ingests one raw event. A dedupe-key collision surfaces as a
// conflict. On success the realtime synthesis check is enqueued.
func (s *Server) CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var created *ent.Event
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		e, err := services.NewEventService(client).Create(ctx, req)
		if err != nil {
			return err
		}
		created = e
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if s.sched != nil {
		s.sched.CheckAndEnqueueIfNeeded(c.Request.Context(), req.AnimaID, auth.UserID(c))
	}
	c.JSON(http.StatusCreated, created)
}

// ListEvents lists events with the standard filters.
func (s *Server) ListEvents(c *gin.Context) {
	filters := models.EventFilters{
		AnimaID:        c.Query("anima_id"),
		Type:           c.Query("type"),
		SessionID:      c.Query("session_id"),
		MinImportance:  queryFloat(c, "min_importance"),
		IncludeDeleted: queryBool(c, "include_deleted"),
		Limit:          queryInt(c, "limit"),
		Offset:         queryInt(c, "offset"),
	}

	var events []*ent.Event
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		list, err := services.NewEventService(client).List(ctx, filters)
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

// GetEvent fetches one event.
func (s *Server) GetEvent(c *gin.Context) {
	var e *ent.Event
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		got, err := services.NewEventService(client).Get(ctx, c.Param("id"))
		if err != nil {
			return err
		}
		e = got
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// UpdateEvent patches the mutable event fields.
func (s *Server) UpdateEvent(c *gin.Context) {
	var req models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var e *ent.Event
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		updated, err := services.NewEventService(client).Update(ctx, c.Param("id"), req)
		if err != nil {
			return err
		}
		e = updated
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// DeleteEvent soft-deletes an event. Idempotent.
func (s *Server) DeleteEvent(c *gin.Context) {
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		return services.NewEventService(client).SoftDelete(ctx, c.Param("id"))
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
