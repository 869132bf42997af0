package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/fluxbill-api/internal/application/dto"
	"github.com/jhoicas/fluxbill-api/internal/domain"
	"github.com/jhoicas/fluxbill-api/internal/domain/entity"
	"github.com/jhoicas/fluxbill-api/internal/domain/repository"
)

// DefaultPaymentMethod se aplica cuando el pago no indica medio.
const DefaultPaymentMethod = "UPI"

// InvoiceUseCase casos de uso de facturas: listar+filtrar, crear y pagar.
type InvoiceUseCase struct {
	invoices repository.InvoiceRepository
	tx       PaymentTxRunner
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, tx PaymentTxRunner) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, tx: tx}
}

// List devuelve las facturas que hacen match con la query (vacía = todas).
func (uc *InvoiceUseCase) List(ctx context.Context, q string) ([]dto.InvoiceResponse, error) {
	rows, err := uc.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(rows))
	for _, inv := range rows {
		if matchesQuery(q, inv.SearchFields()) {
			out = append(out, toInvoiceResponse(inv))
		}
	}
	return out, nil
}

// Create crea una factura nueva. domain.ErrDuplicate si el ID ya existe.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ID == "" || in.Customer == "" {
		return nil, domain.ErrInvalidInput
	}
	due, err := time.Parse(dto.DateLayout, in.Due)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	created, err := time.Parse(dto.DateLayout, in.Created)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	inv := &entity.Invoice{
		ID:       in.ID,
		Customer: in.Customer,
		Amount:   in.Amount,
		Currency: defaultStr(in.Currency, "INR"),
		Status:   defaultStr(in.Status, entity.InvoiceStatusSent),
		Due:      due,
		Created:  created,
		Method:   defaultStr(in.Method, "—"),
	}
	if err := uc.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}
	resp := toInvoiceResponse(inv)
	return &resp, nil
}

// Pay marca la factura como pagada y registra exactamente un Payment con el
// amount actual de la factura y el medio indicado, todo en una transacción.
// domain.ErrNotFound si la factura no existe; en ese caso no se crea Payment.
func (uc *InvoiceUseCase) Pay(ctx context.Context, invoiceID, method string) (*dto.PayInvoiceResponse, error) {
	if method == "" {
		method = DefaultPaymentMethod
	}

	err := uc.tx.RunPayment(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		inv, err := invoiceRepo.GetByID(ctx, invoiceID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		if err := invoiceRepo.MarkPaid(ctx, invoiceID, method); err != nil {
			return err
		}
		return paymentRepo.Create(ctx, &entity.Payment{
			ID:        uuid.New().String(),
			InvoiceID: invoiceID,
			Amount:    inv.Amount,
			Method:    method,
			PaidAt:    time.Now().UTC(),
		})
	})
	if err != nil {
		return nil, err
	}
	return &dto.PayInvoiceResponse{OK: true, InvoiceID: invoiceID}, nil
}

func toInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:       inv.ID,
		Customer: inv.Customer,
		Amount:   inv.Amount,
		Currency: inv.Currency,
		Status:   inv.Status,
		Due:      inv.Due.Format(dto.DateLayout),
		Created:  inv.Created.Format(dto.DateLayout),
		Method:   inv.Method,
	}
}

func defaultStr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
