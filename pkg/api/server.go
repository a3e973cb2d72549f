// Package api exposes the HTTP surface: REST handlers over the service
// layer, with every tenant operation wrapped in an owner session scoped to
// the authenticated user.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hejijunhao/elephantasm/ent"
	"github.com/hejijunhao/elephantasm/pkg/auth"
	"github.com/hejijunhao/elephantasm/pkg/config"
	"github.com/hejijunhao/elephantasm/pkg/database"
	"github.com/hejijunhao/elephantasm/pkg/dream"
	"github.com/hejijunhao/elephantasm/pkg/embedding"
	"github.com/hejijunhao/elephantasm/pkg/llm"
	"github.com/hejijunhao/elephantasm/pkg/pack"
	"github.com/hejijunhao/elephantasm/pkg/scheduler"
	"github.com/hejijunhao/elephantasm/pkg/synthesis"
	"github.com/hejijunhao/elephantasm/pkg/tenancy"
)

// Server wires the HTTP handlers to their collaborators.
type Server struct {
	db         *database.Client
	envelope   *tenancy.Envelope
	authn      *auth.Authenticator
	keys       *auth.KeyManager
	sched      *scheduler.Scheduler
	compiler   *pack.Compiler
	dreamEng   *dream.Engine
	llm        llm.Client
	embedder   embedding.Embedder
	background synthesis.Submitter
	cfg        *config.Config
}

// NewServer creates the API server.
func NewServer(db *database.Client, envelope *tenancy.Envelope, authn *auth.Authenticator, keys *auth.KeyManager, sched *scheduler.Scheduler, compiler *pack.Compiler, dreamEng *dream.Engine, llmClient llm.Client, embedder embedding.Embedder, background synthesis.Submitter, cfg *config.Config) *Server {
	return &Server{
		db:         db,
		envelope:   envelope,
		authn:      authn,
		keys:       keys,
		sched:      sched,
		compiler:   compiler,
		dreamEng:   dreamEng,
		llm:        llmClient,
		embedder:   embedder,
		background: background,
		cfg:        cfg,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.Health)

	v1 := r.Group("/api/v1")
	v1.Use(s.authn.Middleware())

	animas := v1.Group("/animas")
	{
		animas.POST("", s.CreateAnima)
		animas.GET("", s.ListAnimas)
		animas.GET("/:id", s.GetAnima)
		animas.PATCH("/:id", s.UpdateAnima)
		animas.DELETE("/:id", s.DeleteAnima)
		animas.POST("/:id/restore", s.RestoreAnima)
		animas.GET("/:id/identity", s.GetIdentity)
		animas.PUT("/:id/identity", s.UpsertIdentity)
		animas.GET("/:id/config/synthesis", s.GetSynthesisConfig)
		animas.PATCH("/:id/config/synthesis", s.UpdateSynthesisConfig)
		animas.GET("/:id/config/io", s.GetIOConfig)
		animas.PATCH("/:id/config/io", s.UpdateIOConfig)
	}

	events := v1.Group("/events")
	{
		events.POST("", s.CreateEvent)
		events.GET("", s.ListEvents)
		events.GET("/:id", s.GetEvent)
		events.PATCH("/:id", s.UpdateEvent)
		events.DELETE("/:id", s.DeleteEvent)
	}

	memories := v1.Group("/memories")
	{
		memories.POST("", s.CreateMemory)
		memories.GET("", s.ListMemories)
		memories.GET("/:id", s.GetMemory)
		memories.PATCH("/:id", s.UpdateMemory)
		memories.DELETE("/:id", s.DeleteMemory)
		memories.POST("/:id/restore", s.RestoreMemory)
		memories.GET("/:id/events", s.GetMemoryEvents)
		memories.POST("/:id/embedding", s.EmbedMemory)
		memories.POST("/embeddings/bulk", s.EmbedMemoriesBulk)
		memories.POST("/search/semantic", s.SearchMemories)
	}

	knowledge := v1.Group("/knowledge")
	{
		knowledge.POST("", s.CreateKnowledge)
		knowledge.GET("", s.ListKnowledge)
		knowledge.GET("/:id", s.GetKnowledge)
		knowledge.PATCH("/:id", s.UpdateKnowledge)
		knowledge.DELETE("/:id", s.DeleteKnowledge)
		knowledge.POST("/:id/restore", s.RestoreKnowledge)
		knowledge.GET("/:id/audit", s.KnowledgeAuditTrail)
		knowledge.POST("/search/semantic", s.SearchKnowledge)
	}

	packs := v1.Group("/packs")
	{
		packs.POST("/compile", s.CompilePack)
		packs.POST("/compile/:preset", s.CompilePackPreset)
		packs.GET("", s.ListPacks)
		packs.GET("/:id", s.GetPack)
	}

	dreams := v1.Group("/dreams")
	{
		dreams.POST("/trigger", s.TriggerDream)
		dreams.GET("/sessions", s.ListDreamSessions)
		dreams.GET("/sessions/:id/with-actions", s.GetDreamSessionWithActions)
		dreams.POST("/sessions/:id/cancel", s.CancelDreamSession)
		dreams.GET("/stats", s.DreamStats)
	}

	schedRoutes := v1.Group("/scheduler")
	{
		schedRoutes.GET("/status", s.SchedulerStatus)
		schedRoutes.POST("/workflows/:name/trigger", s.TriggerWorkflow)
	}

	apiKeys := v1.Group("/api-keys")
	{
		apiKeys.POST("", s.CreateAPIKey)
		apiKeys.GET("", s.ListAPIKeys)
		apiKeys.POST("/:id/revoke", s.RevokeAPIKey)
		apiKeys.DELETE("/:id", s.DeleteAPIKey)
	}

	return r
}

// Health reports liveness and database reachability. Unauthenticated.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}

// withSession runs fn inside an owner session for the authenticated user.
func (s *Server) withSession(c *gin.Context, fn func(ctx context.Context, client *ent.Client) error) error {
	return s.envelope.WithOwnerSession(c.Request.Context(), auth.UserID(c), fn)
}
