// Package config provides typed application configuration with built-in
// defaults and environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Auth      *AuthConfig
	LLM       *LLMConfig
	Embedding *EmbeddingConfig
	Dream     *DreamConfig
	Pack      *PackConfig
	Scheduler *SchedulerConfig
	Retention *RetentionConfig
}

// AuthConfig controls bearer-token authentication.
type AuthConfig struct {
	// JWKSBaseURL is the auth provider base URL; JWKS is fetched from
	// <base>/auth/v1/.well-known/jwks.json and the expected issuer is
	// <base>/auth/v1.
	JWKSBaseURL string

	// Audience is the required JWT audience claim.
	Audience string

	// PayloadCacheTTL is how long verified JWT payloads are cached,
	// keyed on the raw token string.
	PayloadCacheTTL time.Duration

	// JWKSCacheTTL is how long fetched JWKS keys are held before refresh.
	JWKSCacheTTL time.Duration
}

// LLMConfig configures the LLM collaborator adapter.
type LLMConfig struct {
	APIKey      string
	Model       string
	MaxRetries  int
	RetryBaseMs int
}

// EmbeddingConfig configures the embedding collaborator adapter.
type EmbeddingConfig struct {
	APIKey     string
	Model      string
	Dimensions int
}

// LoadFromEnv builds the root config from environment variables,
// falling back to built-in defaults.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Auth: &AuthConfig{
			JWKSBaseURL:     os.Getenv("AUTH_BASE_URL"),
			Audience:        getEnvOrDefault("AUTH_AUDIENCE", "authenticated"),
			PayloadCacheTTL: 5 * time.Minute,
			JWKSCacheTTL:    1 * time.Hour,
		},
		LLM: &LLMConfig{
			APIKey:      os.Getenv("GEMINI_API_KEY"),
			Model:       getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
			MaxRetries:  3,
			RetryBaseMs: 1000,
		},
		Embedding: &EmbeddingConfig{
			APIKey:     os.Getenv("GEMINI_API_KEY"),
			Model:      getEnvOrDefault("GEMINI_EMBEDDING_MODEL", "gemini-embedding-001"),
			Dimensions: 1536,
		},
		Dream:     DefaultDreamConfig(),
		Pack:      DefaultPackConfig(),
		Scheduler: DefaultSchedulerConfig(),
		Retention: DefaultRetentionConfig(),
	}

	if v := os.Getenv("SYNTHESIS_INTERVAL_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("invalid SYNTHESIS_INTERVAL_HOURS: %q", v)
		}
		cfg.Scheduler.SynthesisInterval = time.Duration(hours) * time.Hour
	}
	if v := os.Getenv("DREAM_INTERVAL_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("invalid DREAM_INTERVAL_HOURS: %q", v)
		}
		cfg.Scheduler.DreamInterval = time.Duration(hours) * time.Hour
	}
	if v := os.Getenv("BACKGROUND_JOBS_DISABLED"); v == "true" || v == "1" {
		cfg.Scheduler.BackgroundJobsDisabled = true
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
