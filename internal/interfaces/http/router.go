package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/fluxbill-api/internal/application/assistant"
	"github.com/jhoicas/fluxbill-api/internal/application/billing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceUC      *billing.InvoiceUseCase
	CustomerUC     *billing.CustomerUseCase
	SubscriptionUC *billing.SubscriptionUseCase
	SeedUC         *billing.SeedUseCase
	Planner        *assistant.Planner
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Invoices
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	api.Get("/invoices", invoiceHandler.List)
	api.Post("/invoices", invoiceHandler.Create)
	api.Post("/invoices/:id/pay", invoiceHandler.Pay)

	// Customers
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	api.Get("/customers", customerHandler.List)
	api.Post("/customers", customerHandler.Create)

	// Subscriptions (solo listado; las altas llegan por el seed)
	subscriptionHandler := NewSubscriptionHandler(deps.SubscriptionUC)
	api.Get("/subscriptions", subscriptionHandler.List)

	// Seed del dataset demo (idempotente)
	seedHandler := NewSeedHandler(deps.SeedUC)
	api.Post("/seed", seedHandler.Seed)

	// Asistente (texto y voz)
	assistantHandler := NewAssistantHandler(deps.Planner)
	assistantGroup := app.Group("/assistant")
	assistantGroup.Post("/text", assistantHandler.Text)
	assistantGroup.Post("/voice", assistantHandler.Voice)
}
