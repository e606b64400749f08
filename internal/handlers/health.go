package handlers

import (
	"github.com/gofiber/fiber/v2"

	"fundflow/internal/services/transfer"
)

func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
	})
}

// Metrics serves the transfer counters in Prometheus text format.
func Metrics(collector *transfer.Collector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "text/plain; version=0.0.4; charset=utf-8")
		return c.SendString(collector.RenderPrometheus())
	}
}
