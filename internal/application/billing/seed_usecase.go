package billing

import (
	"context"
	"time"

	"github.com/jhoicas/fluxbill-api/internal/application/dto"
	"github.com/jhoicas/fluxbill-api/internal/domain/entity"
	"github.com/jhoicas/fluxbill-api/internal/domain/repository"
)

// SeedUseCase puebla el dataset de demo una única vez.
type SeedUseCase struct {
	invoices      repository.InvoiceRepository
	customers     repository.CustomerRepository
	subscriptions repository.SubscriptionRepository
}

// NewSeedUseCase construye el caso de uso.
func NewSeedUseCase(
	invoices repository.InvoiceRepository,
	customers repository.CustomerRepository,
	subscriptions repository.SubscriptionRepository,
) *SeedUseCase {
	return &SeedUseCase{invoices: invoices, customers: customers, subscriptions: subscriptions}
}

// Seed inserta el dataset fijo solo si el store está vacío (ninguna factura).
// Idempotente: la segunda llamada no inserta nada y reporta Seeded=false.
func (uc *SeedUseCase) Seed(ctx context.Context) (*dto.SeedResponse, error) {
	existing, err := uc.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return &dto.SeedResponse{OK: true, Seeded: false}, nil
	}

	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	demoInvoices := []*entity.Invoice{
		{ID: "INV-10428", Customer: "Apex Retail Pvt Ltd", Amount: 48900, Currency: "INR", Status: entity.InvoiceStatusPaid, Due: date(2025, 12, 2), Created: date(2025, 11, 25), Method: "UPI"},
		{ID: "INV-10429", Customer: "BlueSky Logistics", Amount: 125000, Currency: "INR", Status: entity.InvoiceStatusOverdue, Due: date(2025, 12, 8), Created: date(2025, 11, 28), Method: "Card"},
		{ID: "INV-10430", Customer: "Nimbus Clinics", Amount: 76000, Currency: "INR", Status: entity.InvoiceStatusSent, Due: date(2025, 12, 20), Created: date(2025, 12, 1), Method: "NetBanking"},
	}
	for _, inv := range demoInvoices {
		if err := uc.invoices.Create(ctx, inv); err != nil {
			return nil, err
		}
	}

	demoSubscriptions := []*entity.Subscription{
		{ID: "SUB-2201", Plan: "Growth", Customer: "Nimbus Clinics", MRR: 6999, Status: entity.SubscriptionStatusActive},
		{ID: "SUB-2202", Plan: "Starter", Customer: "Orchid Education", MRR: 1999, Status: entity.SubscriptionStatusActive},
	}
	for _, s := range demoSubscriptions {
		if err := uc.subscriptions.Create(ctx, s); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	demoCustomers := []*entity.Customer{
		{ID: "CUST-901", Name: "Apex Retail Pvt Ltd", Tier: entity.TierMidMarket, Invoices: 12, Status: entity.CustomerStatusHealthy, CreatedAt: now},
		{ID: "CUST-902", Name: "BlueSky Logistics", Tier: entity.TierEnterprise, Invoices: 21, Status: entity.CustomerStatusAtRisk, CreatedAt: now},
	}
	for _, c := range demoCustomers {
		if err := uc.customers.Create(ctx, c); err != nil {
			return nil, err
		}
	}

	return &dto.SeedResponse{OK: true, Seeded: true}, nil
}
