package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fundflow/internal/services/transfer"
	"fundflow/internal/utils/response"
)

// TransferHandler exposes the fund transfer endpoints.
type TransferHandler struct {
	service transfer.Service
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(s transfer.Service) *TransferHandler { return &TransferHandler{service: s} }

// Submit handles POST /api/fund-transfer requests. Acceptance is immediate:
// the transfer is queued and its outcome is reported only through Status.
func (h *TransferHandler) Submit(c *fiber.Ctx) error {
	var req struct {
		AccountOrigin      string          `json:"accountOrigin"`
		AccountDestination string          `json:"accountDestination"`
		Value              decimal.Decimal `json:"value"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if req.AccountOrigin == "" || req.AccountDestination == "" {
		return response.BadRequest(c, "accountOrigin and accountDestination are required")
	}

	id := h.service.Submit(transfer.SubmitRequest{
		AccountOrigin:      req.AccountOrigin,
		AccountDestination: req.AccountDestination,
		Value:              req.Value,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"transactionId": id,
	})
}

// Status handles GET /api/fund-transfer/:transactionId requests.
func (h *TransferHandler) Status(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("transactionId"))
	if err != nil {
		return response.BadRequest(c, "invalid transaction id")
	}

	return c.JSON(h.service.Status(id))
}
