package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/fluxbill-api/internal/application/billing"
)

// SeedHandler maneja el poblado del dataset de demo.
type SeedHandler struct {
	uc *billing.SeedUseCase
}

// NewSeedHandler construye el handler.
func NewSeedHandler(uc *billing.SeedUseCase) *SeedHandler {
	return &SeedHandler{uc: uc}
}

// Seed POST /api/seed — siembra solo si el store está vacío; idempotente.
func (h *SeedHandler) Seed(c *fiber.Ctx) error {
	result, err := h.uc.Seed(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(result)
}
