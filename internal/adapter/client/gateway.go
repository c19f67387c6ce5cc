package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"query-router/internal/domain/entity"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GatewayConfig carries what is needed to reach the generative backend.
type GatewayConfig struct {
	APIKey       string
	Project      string // set to use Vertex AI instead of an API key
	Location     string
	GeneralModel string
	CompanyModel string
}

// Generator is satisfied by GeminiClient; tests substitute their own.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Gateway routes prompts to the handle of each mode.
type Gateway struct {
	handles map[entity.Mode]Generator
}

// NewGateway builds a gateway from explicit handles.
func NewGateway(general, company Generator) *Gateway {
	return &Gateway{handles: map[entity.Mode]Generator{
		entity.ModeGeneralExpert:              general,
		entity.ModeOrganizationRepresentative: company,
	}}
}

// Initialize sets up both model handles. It never fails: a configuration
// problem yields a nil gateway and an unconfigured state whose warning the
// caller reports once.
func Initialize(ctx context.Context, cfg GatewayConfig, logger *zap.Logger) (*Gateway, entity.GatewayState) {
	log := logger.With(zap.String("component", "gateway"))

	c, err := newGenAIClient(ctx, cfg)
	if err != nil {
		warning := fmt.Errorf("%w: %v", entity.ErrConfiguration, err)
		log.Warn("generative backend unavailable, using fallback answers", zap.Error(warning))
		return nil, entity.UnconfiguredGateway(warning)
	}

	general := NewGeminiClientFromClient(c, cfg.GeneralModel, 0.3)
	company := NewGeminiClientFromClient(c, cfg.CompanyModel, 0.5)
	log.Info("dual models configured",
		zap.String("general_model", general.Model()),
		zap.String("company_model", company.Model()))

	return NewGateway(general, company), entity.ReadyGateway()
}

func newGenAIClient(ctx context.Context, cfg GatewayConfig) (*genai.Client, error) {
	if cfg.GeneralModel == "" || cfg.CompanyModel == "" {
		return nil, errors.New("model names are required")
	}
	if cfg.Project != "" {
		return genai.NewClient(ctx, &genai.ClientConfig{
			Project:  cfg.Project,
			Location: cfg.Location,
			Backend:  genai.BackendVertexAI,
		})
	}
	if cfg.APIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// Invoke implements repository.ModelGateway.
func (g *Gateway) Invoke(ctx context.Context, mode entity.Mode, prompt string) (string, error) {
	if g == nil {
		return "", entity.Unavailable(entity.ReasonNotConfigured, nil)
	}
	h, ok := g.handles[mode]
	if !ok || h == nil {
		return "", entity.Unavailable(entity.ReasonNotConfigured, fmt.Errorf("no handle for mode %q", mode))
	}
	text, err := h.Generate(ctx, prompt)
	if err != nil {
		return "", Classify(err)
	}
	return text, nil
}

// Classify folds any provider or transport error into a ModelUnavailableError
// so callers never see a backend-specific shape.
func Classify(err error) *entity.ModelUnavailableError {
	var mu *entity.ModelUnavailableError
	if errors.As(err, &mu) {
		return mu
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return entity.Unavailable(entity.ReasonTimeout, err)
	case errors.Is(err, context.Canceled):
		return entity.Unavailable(entity.ReasonCanceled, err)
	case errors.Is(err, errEmptyGeneration):
		return entity.Unavailable(entity.ReasonMalformed, err)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return entity.Unavailable(entity.ReasonAuth, err)
		case http.StatusTooManyRequests:
			return entity.Unavailable(entity.ReasonRateLimit, err)
		case http.StatusBadRequest:
			if strings.Contains(strings.ToLower(apiErr.Message), "api key") {
				return entity.Unavailable(entity.ReasonAuth, err)
			}
		}
		return entity.Unavailable(entity.ReasonTransport, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429"), strings.Contains(msg, "resource_exhausted"), strings.Contains(msg, "quota"):
		return entity.Unavailable(entity.ReasonRateLimit, err)
	case strings.Contains(msg, "api key"), strings.Contains(msg, "permission_denied"), strings.Contains(msg, "unauthenticated"):
		return entity.Unavailable(entity.ReasonAuth, err)
	case strings.Contains(msg, "deadline"):
		return entity.Unavailable(entity.ReasonTimeout, err)
	}
	return entity.Unavailable(entity.ReasonTransport, err)
}
