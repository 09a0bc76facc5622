package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/congo-pay/simplewallet/internal/sim"
)

// RegisterHealthRoutes adds a liveness/readiness style endpoint.
func RegisterHealthRoutes(app *fiber.App, svc *sim.Service, cache *redis.Client) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		storeStatus := "ok"
		cacheStatus := "disabled"

		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := svc.Ping(ctx); err != nil {
			storeStatus = err.Error()
		}
		if cache != nil {
			cacheStatus = "ok"
			if err := cache.Ping(ctx).Err(); err != nil {
				cacheStatus = err.Error()
			}
		}
		status := http.StatusOK
		if storeStatus != "ok" || (cacheStatus != "ok" && cacheStatus != "disabled") {
			status = http.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"status":    fiber.Map{"state": storeStatus, "cache": cacheStatus},
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		})
	})
}
