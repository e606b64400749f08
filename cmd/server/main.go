// Package main is the entry point for the application.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"fundflow/internal/config"
	"fundflow/internal/routes"
	"fundflow/internal/services/ledger"
	"fundflow/internal/services/transfer"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Ledger client for the external account service
	ledgerClient := ledger.NewClient(
		config.GetEnv("LEDGER_BASE_URL", "http://localhost:5001"),
		config.GetDurationEnv("LEDGER_TIMEOUT", ledger.DefaultTimeout),
	)

	// Transfer service with in-memory queue and metrics
	collector := transfer.NewCollector()
	transferService := transfer.NewService(ledgerClient, logger, collector, transfer.Config{
		QueueCapacity: config.GetIntEnv("QUEUE_CAPACITY", transfer.DefaultQueueCapacity),
	})

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName: "fundflow",
	})

	// Middleware
	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,HEAD",
	}))

	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Submissions are rate limited; status polls are not.
	app.Use("/api/fund-transfer", limiter.New(limiter.Config{
		Max:        config.GetIntEnv("SUBMIT_RATE_LIMIT", 60),
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() != fiber.MethodPost
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	// Routes
	routes.SetupRoutes(app, transferService, collector)

	// Start server
	addr := ":" + config.GetEnv("PORT", "3000")
	go func() {
		logger.Info("server listening", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	waitForShutdown(app, transferService, logger)
}

func newLogger() (*zap.Logger, error) {
	if config.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// waitForShutdown waits for SIGTERM or SIGINT, stops accepting requests and
// lets the queue worker finish the transfers already accepted.
func waitForShutdown(app *fiber.App, transferService transfer.Service, logger *zap.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Info("shutting down", zap.String("signal", sig.String()))

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	transferService.Drain()
	logger.Info("queue drained, exiting")
}
