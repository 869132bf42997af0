package entity

import "time"

// Estados del ciclo de vida de una factura.
const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusSent    = "sent"
	InvoiceStatusOverdue = "overdue"
	InvoiceStatusPaid    = "paid" // solo lo asigna la operación de pago
)

// Invoice representa una factura emitida (ej. "INV-10428").
// Customer es texto denormalizado, no una FK hacia Customer.ID.
type Invoice struct {
	ID       string
	Customer string
	Amount   int // unidades menores de la moneda (paise, centavos)
	Currency string
	Status   string
	Due      time.Time
	Created  time.Time
	Method   string // medio de pago; lo sobrescribe la operación de pago
}

// SearchFields devuelve los campos sobre los que aplica el filtro de búsqueda.
func (i *Invoice) SearchFields() []string {
	return []string{i.ID, i.Customer, i.Status, i.Method}
}
