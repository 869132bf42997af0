package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/fluxbill-api/internal/application/billing"
)

// SubscriptionHandler maneja las peticiones HTTP de suscripciones.
type SubscriptionHandler struct {
	uc *billing.SubscriptionUseCase
}

// NewSubscriptionHandler construye el handler.
func NewSubscriptionHandler(uc *billing.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc}
}

// List GET /api/subscriptions?q=
func (h *SubscriptionHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), c.Query("q"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}
