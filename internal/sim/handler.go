package sim

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/simplewallet/internal/txerror"
)

// Handler exposes the simulator over HTTP.
type Handler struct {
	service *Service
}

// NewHandler builds a simulator HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type submitRequest struct {
	SignerPublicKey string `json:"signer_public_key"`
	Payload         string `json:"payload"`
}

type submitResponse struct {
	Status  string `json:"status"`
	Address string `json:"address"`
	Action  string `json:"action"`
	Amount  uint32 `json:"amount"`
	Balance string `json:"balance"`
}

type rejectionResponse struct {
	Status string `json:"status"`
	Kind   string `json:"kind"`
	Error  string `json:"error"`
}

// Submit applies a transaction and reports the new balance. Rejected
// transactions answer 400 with the rejection kind.
func (h *Handler) Submit(c *fiber.Ctx) error {
	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	res, err := h.service.Submit(c.UserContext(), SubmitInput{SignerPublicKey: req.SignerPublicKey, Payload: req.Payload})
	switch {
	case errors.Is(err, ErrMissingSigner):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case txerror.IsInvalid(err):
		return c.Status(http.StatusBadRequest).JSON(rejectionResponse{
			Status: "INVALID",
			Kind:   string(txerror.KindOf(err)),
			Error:  err.Error(),
		})
	case err != nil:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(submitResponse{
		Status:  "COMMITTED",
		Address: res.Address,
		Action:  res.Action,
		Amount:  res.Amount,
		Balance: strconv.FormatUint(uint64(res.Balance), 10),
	})
}

// Balance returns the balance of the wallet owned by :publicKey.
func (h *Handler) Balance(c *fiber.Ctx) error {
	balance, err := h.service.Balance(c.UserContext(), c.Params("publicKey"))
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"public_key": balance.PublicKey,
		"address":    balance.Address,
		"balance":    balance.Amount,
		"exists":     balance.Found,
	})
}

// State returns the raw entry at :address base64 encoded, the shape the
// validator REST API uses.
func (h *Handler) State(c *fiber.Ctx) error {
	addr := c.Params("address")
	data, err := h.service.State(c.UserContext(), addr)
	switch {
	case errors.Is(err, ErrInvalidAddress):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case err != nil:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"address": addr,
		"data":    base64.StdEncoding.EncodeToString(data),
	})
}

// Family returns the registration metadata.
func (h *Handler) Family(c *fiber.Ctx) error {
	reg := h.service.Registration()
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"family":     reg.FamilyName(),
		"versions":   reg.FamilyVersions(),
		"namespaces": reg.Namespaces(),
	})
}
