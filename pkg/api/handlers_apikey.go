package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hejijunhao/elephantasm/pkg/auth"
	"github.com/hejijunhao/elephantasm/pkg/models"
	"github.com/hejijunhao/elephantasm/pkg/services"
)

// API keys live outside the tenant envelope: the rows are consulted before
// any owner session exists, so the handlers use the root client through the
// key manager and key service directly.

// CreateAPIKey mints a key for the caller. The plaintext appears only in
// this response.
func (s *Server) CreateAPIKey(c *gin.Context) {
	var req models.CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := s.keys.Issue(c.Request.Context(), auth.UserID(c), req.Name, req.Description, req.ExpiresAt)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListAPIKeys lists the caller's keys. Hashes never leave the server.
func (s *Server) ListAPIKeys(c *gin.Context) {
	keys, err := services.NewAPIKeyService(s.db.Client).List(c.Request.Context(), auth.UserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, keys)
}

// RevokeAPIKey deactivates a key. Conflict when already revoked.
func (s *Server) RevokeAPIKey(c *gin.Context) {
	key, err := services.NewAPIKeyService(s.db.Client).Revoke(c.Request.Context(), auth.UserID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, key)
}

// DeleteAPIKey removes a key row entirely.
func (s *Server) DeleteAPIKey(c *gin.Context) {
	if err := services.NewAPIKeyService(s.db.Client).Delete(c.Request.Context(), auth.UserID(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
