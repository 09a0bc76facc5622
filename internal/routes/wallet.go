package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/simplewallet/internal/sim"
)

// RegisterWalletRoutes wires the simulator endpoints.
func RegisterWalletRoutes(r fiber.Router, h *sim.Handler) {
	r.Get("/family", h.Family)
	r.Get("/state/:address", h.State)
	r.Get("/wallets/:publicKey/balance", h.Balance)
	r.Post("/transactions", h.Submit)
}
