package routes

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/congo-pay/simplewallet/internal/config"
	"github.com/congo-pay/simplewallet/internal/handler"
	"github.com/congo-pay/simplewallet/internal/logging"
	"github.com/congo-pay/simplewallet/internal/middleware"
	"github.com/congo-pay/simplewallet/internal/sim"
	"github.com/congo-pay/simplewallet/internal/statestore"
	"github.com/congo-pay/simplewallet/internal/wallet"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Simulator
	Store  statestore.Store
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all simulator routes.
func Setup(app *fiber.App, d Deps) error {
	if d.Store == nil {
		return errors.New("state store is required")
	}
	if d.Logger == nil {
		d.Logger = logging.L()
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	simSvc := sim.NewService(d.Store, wallet.NewApplicator(d.Logger), handler.DefaultRegistration())
	simHandler := sim.NewHandler(simSvc)

	RegisterHealthRoutes(app, simSvc, d.Cache)

	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals(middleware.RequestIDLocal).(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})
	RegisterWalletRoutes(api, simHandler)

	return nil
}
