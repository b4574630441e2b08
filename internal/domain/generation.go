package domain

import (
	"context"
	"time"
)

// GenerationOptions are the sampling parameters for a single generation call.
// Zero values mean "use the endpoint's default".
type GenerationOptions struct {
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// TextGenerator is the port to the inference endpoint. Implementations send
// one prompt, block for at most their configured timeout, and return the raw
// generated text with no retries.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, opts GenerationOptions) (string, error)
}

// ModelInfo describes one model reported by the endpoint's catalog.
type ModelInfo struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size,omitempty"`
	ModifiedAt time.Time `json:"modified_at,omitempty"`
}

// ModelCatalog lists the models available on the inference endpoint. It is a
// cheap liveness probe and must never trigger text generation.
type ModelCatalog interface {
	ListModels(ctx context.Context) ([]ModelInfo, error)
}

// Health status values reported by the health check.
const (
	HealthOK      = "ok"
	HealthWarning = "warning"
	HealthError   = "error"
)

// HealthStatus is the result of probing the inference endpoint.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Model   string `json:"model,omitempty"`
}
