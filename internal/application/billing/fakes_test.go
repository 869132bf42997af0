package billing_test

import (
	"context"

	"github.com/jhoicas/fluxbill-api/internal/domain"
	"github.com/jhoicas/fluxbill-api/internal/domain/entity"
	"github.com/jhoicas/fluxbill-api/internal/domain/repository"
)

// Repos en memoria para los tests de casos de uso. Preservan orden de inserción
// y replican el contrato de los repos de postgres (ErrDuplicate, nil en miss).

type memInvoiceRepo struct {
	order []string
	rows  map[string]*entity.Invoice
}

func newMemInvoiceRepo() *memInvoiceRepo {
	return &memInvoiceRepo{rows: map[string]*entity.Invoice{}}
}

func (r *memInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	if _, ok := r.rows[inv.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *inv
	r.rows[inv.ID] = &cp
	r.order = append(r.order, inv.ID)
	return nil
}

func (r *memInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	inv, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *memInvoiceRepo) List(_ context.Context) ([]*entity.Invoice, error) {
	out := make([]*entity.Invoice, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.rows[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memInvoiceRepo) MarkPaid(_ context.Context, id, method string) error {
	inv, ok := r.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	inv.Status = entity.InvoiceStatusPaid
	inv.Method = method
	return nil
}

type memCustomerRepo struct {
	order []string
	rows  map[string]*entity.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{rows: map[string]*entity.Customer{}}
}

func (r *memCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	if _, ok := r.rows[c.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *c
	r.rows[c.ID] = &cp
	r.order = append(r.order, c.ID)
	return nil
}

func (r *memCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.rows[id]
		out = append(out, &cp)
	}
	return out, nil
}

type memSubscriptionRepo struct {
	order []string
	rows  map[string]*entity.Subscription
}

func newMemSubscriptionRepo() *memSubscriptionRepo {
	return &memSubscriptionRepo{rows: map[string]*entity.Subscription{}}
}

func (r *memSubscriptionRepo) Create(_ context.Context, s *entity.Subscription) error {
	if _, ok := r.rows[s.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *s
	r.rows[s.ID] = &cp
	r.order = append(r.order, s.ID)
	return nil
}

func (r *memSubscriptionRepo) GetByID(_ context.Context, id string) (*entity.Subscription, error) {
	s, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memSubscriptionRepo) List(_ context.Context) ([]*entity.Subscription, error) {
	out := make([]*entity.Subscription, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.rows[id]
		out = append(out, &cp)
	}
	return out, nil
}

type memPaymentRepo struct {
	rows []*entity.Payment
}

func (r *memPaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	cp := *p
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *memPaymentRepo) ListByInvoice(_ context.Context, invoiceID string) ([]*entity.Payment, error) {
	out := []*entity.Payment{}
	for _, p := range r.rows {
		if p.InvoiceID == invoiceID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// memTxRunner ejecuta el callback directo sobre los repos en memoria. Si el
// callback falla, restaura el estado previo para imitar el rollback real.
type memTxRunner struct {
	invoices *memInvoiceRepo
	payments *memPaymentRepo
}

func (t *memTxRunner) RunPayment(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	snapshotInv := make(map[string]entity.Invoice, len(t.invoices.rows))
	for id, inv := range t.invoices.rows {
		snapshotInv[id] = *inv
	}
	snapshotPay := len(t.payments.rows)

	if err := fn(t.invoices, t.payments); err != nil {
		for id := range t.invoices.rows {
			cp := snapshotInv[id]
			t.invoices.rows[id] = &cp
		}
		t.payments.rows = t.payments.rows[:snapshotPay]
		return err
	}
	return nil
}
