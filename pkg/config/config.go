// Package config loads the gateway configuration from environment
// variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/llimit/gateway/pkg/database"
)

// Config holds the full gateway configuration.
type Config struct {
	// HTTPAddr is the listen address of the API server.
	HTTPAddr string

	// UploadsDir is where uploaded file blobs are stored.
	UploadsDir string

	// ScoringAddr is the gRPC address of the model scoring service.
	ScoringAddr string

	// PlanningModel runs decomposition and reevaluation calls.
	PlanningModel string

	// ModelCacheTTL bounds the age of the cached model catalogue.
	ModelCacheTTL time.Duration

	Database database.Config
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	ttl, err := time.ParseDuration(getEnvOrDefault("MODEL_CACHE_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid MODEL_CACHE_TTL: %w", err)
	}

	return &Config{
		HTTPAddr:      getEnvOrDefault("HTTP_ADDR", ":8000"),
		UploadsDir:    getEnvOrDefault("UPLOADS_DIR", "data/uploads"),
		ScoringAddr:   getEnvOrDefault("SCORING_SERVICE_ADDR", "localhost:50051"),
		PlanningModel: getEnvOrDefault("PLANNING_MODEL", "openai/gpt-4o"),
		ModelCacheTTL: ttl,
		Database:      database.LoadConfigFromEnv(),
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
