// Elephantasm server — long-term memory engine for agentic systems:
// event ingestion, memory synthesis, knowledge distillation, pack
// compilation and dream curation behind an HTTP API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hejijunhao/elephantasm/pkg/api"
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
	"github.com/hejijunhao/elephantasm/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	envFile := flag.String("env-file", ".env", "Path to environment file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load env file, continuing with existing environment",
			"path", *envFile, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting Elephantasm",
		"version", version.Full(),
		"http_port", httpPort)

	ctx := context.Background()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	envelope := tenancy.NewEnvelope(dbClient.DB())

	// LLM and embedding collaborators. Both are optional: without an API
	// key the synthesis and dream workflows degrade to their algorithmic
	// parts and semantic endpoints report unavailable.
	var llmClient llm.Client
	var embedder embedding.Embedder
	if cfg.LLM.APIKey != "" {
		llmClient, err = llm.NewGeminiClient(cfg.LLM.APIKey, cfg.LLM.Model)
		if err != nil {
			slog.Error("Failed to initialize LLM client", "error", err)
			os.Exit(1)
		}
		embedder, err = embedding.NewGeminiEmbedder(cfg.Embedding.APIKey, cfg.Embedding.Model)
		if err != nil {
			slog.Error("Failed to initialize embedder", "error", err)
			os.Exit(1)
		}
		slog.Info("Gemini collaborators initialized", "model", cfg.LLM.Model)
	} else {
		slog.Warn("GEMINI_API_KEY not set, LLM-backed workflows disabled")
	}

	background := scheduler.NewBackground(cfg.Scheduler.BackgroundQueueSize)
	background.Start(ctx)
	defer background.Stop()

	knowledgePipeline := synthesis.NewKnowledgePipeline(llmClient, embedder)
	var hook *synthesis.AutoKnowledgeHook
	if !cfg.Scheduler.BackgroundJobsDisabled {
		hook = synthesis.NewAutoKnowledgeHook(envelope, knowledgePipeline, background)
	}
	pipeline := synthesis.NewPipeline(llmClient, embedder, hook)

	dreamEngine := dream.NewEngine(cfg.Dream, llmClient, embedder, envelope)
	compiler := pack.NewCompiler(cfg.Pack, embedder)

	sched := scheduler.New(cfg.Scheduler, dbClient.Client, envelope, pipeline, dreamEngine, cfg.Dream)
	sched.Start(ctx)
	defer sched.Stop()

	keys := auth.NewKeyManager(dbClient.Client)
	var jwtValidator *auth.JWTValidator
	if cfg.Auth.JWKSBaseURL != "" {
		jwksURL := cfg.Auth.JWKSBaseURL + "/auth/v1/.well-known/jwks.json"
		jwtValidator, err = auth.NewJWTValidator(ctx, cfg.Auth.JWKSBaseURL, jwksURL)
		if err != nil {
			slog.Error("Failed to initialize JWT validator", "error", err)
			os.Exit(1)
		}
		slog.Info("JWT validation enabled", "issuer", cfg.Auth.JWKSBaseURL+"/auth/v1")
	} else {
		slog.Warn("AUTH_BASE_URL not set, only API key authentication available")
	}
	authn := auth.NewAuthenticator(dbClient.Client, keys, jwtValidator)

	server := api.NewServer(dbClient, envelope, authn, keys, sched, compiler, dreamEngine, llmClient, embedder, background, cfg)
	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}
	slog.Info("Shutdown complete")
}
