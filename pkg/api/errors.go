package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hejijunhao/elephantasm/pkg/services"
)

// respondServiceError maps the service sentinels onto HTTP status codes:
// not-found 404, soft-deleted 410, conflicts 409, domain validation 400.
func respondServiceError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrDeleted):
		c.JSON(http.StatusGone, gin.H{"error": "resource is deleted"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "conflict"})
	case errors.Is(err, services.ErrNotRunning):
		c.JSON(http.StatusConflict, gin.H{"error": "not running"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// respondBindError reports a malformed request body.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
}
