package repository

import (
	"context"

	"github.com/jhoicas/fluxbill-api/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para Payment.
// Los pagos son inmutables: no hay update ni delete.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	ListByInvoice(ctx context.Context, invoiceID string) ([]*entity.Payment, error)
}
