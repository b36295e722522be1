package client

import (
	"context"
	"fmt"

	"nexusfile/internal/config"
	"nexusfile/internal/logging"
)

// NewClient creates a client based on the configured backend. This is the
// main entry point for client creation.
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	backend := cfg.API.Backend
	if backend == "" {
		backend = "gemini"
	}

	logging.Debug("creating client", "backend", backend, "model", cfg.Model.Name)

	switch backend {
	case "gemini":
		return NewGeminiClient(ctx, cfg)
	case "ollama":
		return NewOllamaClient(cfg)
	default:
		return nil, fmt.Errorf("unknown backend %q (expected gemini or ollama)", backend)
	}
}
