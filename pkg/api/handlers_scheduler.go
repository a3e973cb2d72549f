package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SchedulerStatus reports every registered workflow's state.
func (s *Server) SchedulerStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.sched.Status())
}

// TriggerWorkflow dispatches a workflow immediately, optionally scoped to
// one anima via the request body.
func (s *Server) TriggerWorkflow(c *gin.Context) {
	var req struct {
		AnimaID string `json:"anima_id"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}

	if err := s.sched.TriggerManual(c.Request.Context(), c.Param("name"), req.AnimaID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"workflow": c.Param("name"), "status": "triggered"})
}
