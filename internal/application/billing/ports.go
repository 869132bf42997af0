package billing

import (
	"context"

	"github.com/jhoicas/fluxbill-api/internal/domain/repository"
)

// PaymentTxRunner ejecuta el callback del pago dentro de una transacción:
// los repos recibidos están atados a la tx y ambas escrituras confirman juntas.
type PaymentTxRunner interface {
	RunPayment(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}
