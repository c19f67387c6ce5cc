package main

import (
	"context"
	"os"
	"time"

	"query-router/internal/adapter/api"
	"query-router/internal/adapter/client"
	"query-router/internal/adapter/store"
	"query-router/internal/config"
	"query-router/internal/domain/entity"
	"query-router/internal/domain/repository"
	"query-router/internal/pkg/logger"
	"query-router/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	zl := logger.New(cfg.IsProduction(), cfg.App.LogFilePath, zapcore.AddSync(os.Stdout))
	defer func() { _ = zl.Sync() }()

	knowledge, err := store.LoadKnowledgeStore(cfg.Knowledge.File)
	if err != nil {
		zl.Fatal("failed to load knowledge record", zap.Error(err))
	}

	gateway, state := client.Initialize(ctx, cfg.Gateway, zl)
	resolver := usecase.NewResolver(state, gateway, knowledge, cfg.App.ModelTimeout, zl)

	var limiter repository.QueryLimiter
	if cfg.Limiter.RedisAddr != "" {
		// Redis for Rate Limiting across instances
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Limiter.RedisAddr})
		limiter = store.NewRedisLimiter(rdb, cfg.Limiter.Limit, cfg.Limiter.Window)
	} else {
		limiter = store.NewMemoryLimiter(cfg.Limiter.Limit, cfg.Limiter.Window)
	}

	if state.Available() {
		go warmUp(gateway, cfg.App.ModelTimeout, zl)
	}

	// Initialize API Layer (Delivery Layer)
	app := fiber.New(fiber.Config{
		AppName: "Query Router",
	})

	handler := api.NewResolveHandler(resolver, knowledge, limiter, zl)
	api.SetupRouter(app, handler, api.RouterInfo{
		Version:     cfg.App.Version,
		Environment: cfg.App.Environment,
	})

	zl.Info("query router listening",
		zap.String("port", cfg.App.Port),
		zap.Bool("gateway_available", state.Available()))
	if err := app.Listen(":" + cfg.App.Port); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

// warmUp wakes the model instance. Its outcome is logged only; gateway
// availability was fixed at initialization.
func warmUp(gateway *client.Gateway, timeout time.Duration, zl *zap.Logger) {
	warmCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := gateway.Invoke(warmCtx, entity.ModeGeneralExpert, "."); err != nil {
		zl.Warn("model warm-up failed", zap.Error(err))
		return
	}
	zl.Info("model warm-up complete")
}
