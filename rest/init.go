package rest

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// Init registers the API routes. /status/summary is registered before
// /status/:device_id so the literal segment wins.
func Init(app *fiber.App, log *zap.Logger) {
	if log != nil {
		logger = log
	}

	SetupSwagger(app)

	app.Get("/health", HealthHandler)

	auth := RequireAPIKey(getAPIKey())

	app.Post("/status", auth, PostStatusHandler)
	app.Get("/status/summary", auth, GetSummaryHandler)
	app.Get("/status/:device_id", auth, GetStatusHandler)
	app.Get("/status/:device_id/history", auth, GetStatusHistoryHandler)

	logger.Info("REST API started")
}
