package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/fluxbill-api/internal/application/billing"
	"github.com/jhoicas/fluxbill-api/internal/application/dto"
)

// InvoiceHandler maneja las peticiones HTTP de facturas.
type InvoiceHandler struct {
	uc *billing.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// List GET /api/invoices?q=
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), c.Query("q"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// Create POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	invoice, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(invoice)
}

// Pay POST /api/invoices/:id/pay?method=
func (h *InvoiceHandler) Pay(c *fiber.Ctx) error {
	ack, err := h.uc.Pay(c.Context(), c.Params("id"), c.Query("method", billing.DefaultPaymentMethod))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(ack)
}
