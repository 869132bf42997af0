package repository

import (
	"context"

	"github.com/jhoicas/fluxbill-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	// Create persiste una factura nueva; domain.ErrDuplicate si el ID ya existe.
	Create(ctx context.Context, invoice *entity.Invoice) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	List(ctx context.Context) ([]*entity.Invoice, error)
	// MarkPaid fija status="paid" y sobrescribe method. Solo la usa la operación de pago.
	MarkPaid(ctx context.Context, id, method string) error
}
