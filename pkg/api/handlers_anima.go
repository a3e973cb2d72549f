package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/pkg/auth"
	"github.com/hejijunhao/elephantasm/pkg/models"
	"github.com/hejijunhao/elephantasm/pkg/services"
)

// CreateAnima creates an anima owned by the caller.
func (s *Server) CreateAnima(c *gin.Context) {
	var req models.CreateAnimaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var created *ent.Anima
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		a, err := services.NewAnimaService(client).Create(ctx, auth.UserID(c), req)
		if err != nil {
			return err
		}
		created = a
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListAnimas lists the caller's animas.
func (s *Server) ListAnimas(c *gin.Context) {
	filters := models.AnimaFilters{
		IncludeDeleted: queryBool(c, "include_deleted"),
		IncludeDormant: queryBool(c, "include_dormant"),
		Limit:          queryInt(c, "limit"),
		Offset:         queryInt(c, "offset"),
	}

	var animas []*ent.Anima
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		list, err := services.NewAnimaService(client).List(ctx, filters)
		if err != nil {
			return err
		}
		animas = list
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, animas)
}

// GetAnima fetches one anima.
func (s *Server) GetAnima(c *gin.Context) {
	var a *ent.Anima
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		got, err := services.NewAnimaService(client).Get(ctx, c.Param("id"))
		if err != nil {
			return err
		}
		a = got
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// UpdateAnima patches an anima.
func (s *Server) UpdateAnima(c *gin.Context) {
	var req models.UpdateAnimaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var a *ent.Anima
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		updated, err := services.NewAnimaService(client).Update(ctx, c.Param("id"), req)
		if err != nil {
			return err
		}
		a = updated
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// DeleteAnima cascade soft-deletes an anima and returns per-table counts.
func (s *Server) DeleteAnima(c *gin.Context) {
	var result *models.CascadeResult
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		r, err := services.NewAnimaService(client).SoftDelete(ctx, c.Param("id"))
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RestoreAnima reverses a cascade soft-delete.
func (s *Server) RestoreAnima(c *gin.Context) {
	var result *models.CascadeResult
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		r, err := services.NewAnimaService(client).Restore(ctx, c.Param("id"))
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetIdentity fetches an anima's identity.
func (s *Server) GetIdentity(c *gin.Context) {
	var identity *ent.Identity
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		id, err := services.NewIdentityService(client).Get(ctx, c.Param("id"))
		if err != nil {
			return err
		}
		identity = id
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, identity)
}

// UpsertIdentity creates or patches an anima's identity.
func (s *Server) UpsertIdentity(c *gin.Context) {
	var req models.UpsertIdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var identity *ent.Identity
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		id, err := services.NewIdentityService(client).Upsert(ctx, c.Param("id"), req)
		if err != nil {
			return err
		}
		identity = id
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, identity)
}

// GetSynthesisConfig returns the anima's synthesis tuning, materializing
// defaults on first access.
func (s *Server) GetSynthesisConfig(c *gin.Context) {
	var cfg *ent.SynthesisConfig
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		got, err := services.NewConfigService(client).GetSynthesisConfig(ctx, c.Param("id"))
		if err != nil {
			return err
		}
		cfg = got
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateSynthesisConfig patches the anima's synthesis tuning.
func (s *Server) UpdateSynthesisConfig(c *gin.Context) {
	var req models.UpdateSynthesisConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var cfg *ent.SynthesisConfig
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		updated, err := services.NewConfigService(client).UpdateSynthesisConfig(ctx, c.Param("id"), req)
		if err != nil {
			return err
		}
		cfg = updated
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// GetIOConfig returns the anima's IO settings.
func (s *Server) GetIOConfig(c *gin.Context) {
	var cfg *ent.IOConfig
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		got, err := services.NewConfigService(client).GetIOConfig(ctx, c.Param("id"))
		if err != nil {
			return err
		}
		cfg = got
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateIOConfig deep-merges into the anima's IO settings.
func (s *Server) UpdateIOConfig(c *gin.Context) {
	var req models.UpdateIOConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var cfg *ent.IOConfig
	err := s.withSession(c, func(ctx context.Context, client *ent.Client) error {
		updated, err := services.NewConfigService(client).UpdateIOConfig(ctx, c.Param("id"), req)
		if err != nil {
			return err
		}
		cfg = updated
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func queryBool(c *gin.Context, name string) bool {
	v := c.Query(name)
	return v == "true" || v == "1"
}

func queryInt(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}

func queryFloat(c *gin.Context, name string) *float64 {
	if c.Query(name) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil {
		return nil
	}
	return &v
}
