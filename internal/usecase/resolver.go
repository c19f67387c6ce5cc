package usecase

import (
	"context"
	"query-router/internal/domain/entity"
	"query-router/internal/domain/repository"
	"time"

	"go.uber.org/zap"
)

// Resolver turns one (mode, query) pair into a response. It tries the
// generative path when the gateway was configured and falls back to the
// classifier on any failure, so it always returns usable text.
type Resolver struct {
	state      entity.GatewayState
	gateway    repository.ModelGateway
	composer   *PromptComposer
	classifier *FallbackClassifier
	logger     *zap.Logger
}

func NewResolver(state entity.GatewayState, gateway repository.ModelGateway, knowledge repository.KnowledgeSource, timeout time.Duration, logger *zap.Logger) *Resolver {
	rec := knowledge.Record()
	return &Resolver{
		state:      state,
		gateway:    NewBoundedGateway(gateway, timeout),
		composer:   NewPromptComposer(rec),
		classifier: NewFallbackClassifier(rec),
		logger:     logger.With(zap.String("component", "resolver")),
	}
}

func (r *Resolver) GatewayAvailable() bool { return r.state.Available() }

func (r *Resolver) Resolve(ctx context.Context, mode entity.Mode, query string) *entity.ResolvedResponse {
	start := time.Now()
	if !mode.Valid() {
		r.logger.Warn("unknown mode, answering as general expert", zap.String("mode", string(mode)))
		mode = entity.ModeGeneralExpert
	}

	resp := r.resolve(ctx, mode, query)
	resp.Latency = time.Since(start)

	fields := []zap.Field{
		zap.String("mode", string(mode)),
		zap.String("source", string(resp.Source)),
		zap.Duration("latency", resp.Latency),
	}
	if resp.Category != "" {
		fields = append(fields, zap.String("category", string(resp.Category)))
	}
	if resp.Reason != "" {
		fields = append(fields, zap.String("fallback_reason", string(resp.Reason)))
	}
	r.logger.Info("query resolved", fields...)
	return resp
}

func (r *Resolver) resolve(ctx context.Context, mode entity.Mode, query string) *entity.ResolvedResponse {
	if !r.state.Available() {
		return r.fallback(mode, query, entity.ReasonNotConfigured)
	}

	prompt := r.composer.Compose(mode, query)
	text, err := r.gateway.Invoke(ctx, mode, prompt)
	if err != nil {
		r.logger.Debug("generative call failed", zap.String("mode", string(mode)), zap.Error(err))
		return r.fallback(mode, query, entity.ReasonOf(err))
	}

	return &entity.ResolvedResponse{
		Content: text,
		Mode:    mode,
		Source:  entity.SourceGenerative,
	}
}

func (r *Resolver) fallback(mode entity.Mode, query string, reason entity.FailureReason) *entity.ResolvedResponse {
	category, text := r.classifier.Match(mode, query)
	return &entity.ResolvedResponse{
		Content:  text,
		Mode:     mode,
		Source:   entity.SourceFallback,
		Category: category,
		Reason:   reason,
	}
}
