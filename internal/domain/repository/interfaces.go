package repository

import (
	"context"
	"query-router/internal/domain/entity"
	"time"
)

// ModelGateway sends a composed prompt to the handle for mode. Every failure
// is reported as *entity.ModelUnavailableError.
type ModelGateway interface {
	Invoke(ctx context.Context, mode entity.Mode, prompt string) (string, error)
}

// KnowledgeSource exposes the read-only organisation record.
type KnowledgeSource interface {
	Record() *entity.KnowledgeRecord
}

// QueryLimiter enforces a per-client quota on the HTTP surface.
type QueryLimiter interface {
	Allow(ctx context.Context, clientID string) (bool, error)
	Window() time.Duration
}
