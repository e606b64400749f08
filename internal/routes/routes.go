// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers.
package routes

import (
	"github.com/gofiber/fiber/v2"

	"fundflow/internal/handlers"
	"fundflow/internal/services/transfer"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, transferService transfer.Service, collector *transfer.Collector) {
	transferHandler := handlers.NewTransferHandler(transferService)

	api := app.Group("/api")
	api.Post("/fund-transfer", transferHandler.Submit)
	api.Get("/fund-transfer/:transactionId", transferHandler.Status)

	app.Get("/health", handlers.HealthCheck)
	app.Get("/metrics", handlers.Metrics(collector))
}
