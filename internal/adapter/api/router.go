package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RouterInfo is reported by the health endpoint.
type RouterInfo struct {
	Version     string
	Environment string
}

func SetupRouter(app *fiber.App, handler *ResolveHandler, info RouterInfo) {
	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		gateway := "fallback"
		if handler.resolver.GatewayAvailable() {
			gateway = "generative"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"version": info.Version,
			"env":     info.Environment,
			"gateway": gateway,
		})
	})

	// API Versioning
	v1 := app.Group("/v1")
	v1.Get("/modes", handler.HandleModes)
	v1.Get("/knowledge", handler.HandleKnowledge)
	v1.Post("/resolve", handler.HandleResolve)
}
