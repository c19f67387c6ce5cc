package api

import (
	"errors"
	"math"
	"query-router/internal/domain/entity"
	"query-router/internal/domain/repository"
	"query-router/internal/usecase"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// KnowledgeSnapshotter hands out copies of the knowledge record.
type KnowledgeSnapshotter interface {
	Snapshot() *entity.KnowledgeRecord
}

type ResolveHandler struct {
	resolver  *usecase.Resolver
	knowledge KnowledgeSnapshotter
	limiter   repository.QueryLimiter
	logger    *zap.Logger
}

func NewResolveHandler(resolver *usecase.Resolver, knowledge KnowledgeSnapshotter, limiter repository.QueryLimiter, logger *zap.Logger) *ResolveHandler {
	return &ResolveHandler{
		resolver:  resolver,
		knowledge: knowledge,
		limiter:   limiter,
		logger:    logger.With(zap.String("component", "api")),
	}
}

type resolveResponse struct {
	Content   string               `json:"content"`
	Mode      entity.Mode          `json:"mode"`
	Source    entity.Source        `json:"source"`
	Category  entity.Category      `json:"category,omitempty"`
	Reason    entity.FailureReason `json:"fallback_reason,omitempty"`
	RequestID string               `json:"request_id,omitempty"`
	LatencyMs int64                `json:"latency_ms"`
}

type modeInfo struct {
	Mode entity.Mode `json:"mode"`
	Name string      `json:"name"`
}

func (h *ResolveHandler) HandleResolve(c *fiber.Ctx) error {
	var req entity.ResolveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	mode, err := entity.ParseMode(req.Mode)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
			"modes": entity.Modes,
		})
	}

	clientID := req.ClientID
	if clientID == "" {
		clientID = c.IP()
	}
	if err := h.checkLimit(c, clientID); err != nil {
		if errors.Is(err, entity.ErrRateLimitExceeded) {
			c.Set(fiber.HeaderRetryAfter, retryAfter(h.limiter.Window()))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": err.Error()})
		}
		return err
	}

	resp := h.resolver.Resolve(c.UserContext(), mode, req.Query)

	c.Set("X-Router-Source", string(resp.Source))
	return c.Status(fiber.StatusOK).JSON(resolveResponse{
		Content:   resp.Content,
		Mode:      resp.Mode,
		Source:    resp.Source,
		Category:  resp.Category,
		Reason:    resp.Reason,
		RequestID: c.GetRespHeader(fiber.HeaderXRequestID),
		LatencyMs: resp.Latency.Milliseconds(),
	})
}

// checkLimit fails open when the limiter backend is unreachable so the
// resolver stays reachable.
func (h *ResolveHandler) checkLimit(c *fiber.Ctx, clientID string) error {
	if h.limiter == nil {
		return nil
	}
	allowed, err := h.limiter.Allow(c.UserContext(), clientID)
	if err != nil {
		h.logger.Warn("limiter check failed, allowing query", zap.String("client_id", clientID), zap.Error(err))
		return nil
	}
	if !allowed {
		return entity.ErrRateLimitExceeded
	}
	return nil
}

// retryAfter renders a window as whole seconds, rounded up so a sub-second
// window never advertises 0.
func retryAfter(window time.Duration) string {
	secs := int(math.Ceil(window.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

func (h *ResolveHandler) HandleModes(c *fiber.Ctx) error {
	modes := make([]modeInfo, 0, len(entity.Modes))
	for _, m := range entity.Modes {
		modes = append(modes, modeInfo{Mode: m, Name: m.DisplayName()})
	}
	return c.JSON(fiber.Map{
		"modes":             modes,
		"gateway_available": h.resolver.GatewayAvailable(),
	})
}

func (h *ResolveHandler) HandleKnowledge(c *fiber.Ctx) error {
	return c.JSON(h.knowledge.Snapshot())
}
