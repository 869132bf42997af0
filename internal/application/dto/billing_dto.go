package dto

// Las fechas de negocio (due, created) viajan como "YYYY-MM-DD".
const DateLayout = "2006-01-02"

// CreateInvoiceRequest body para POST /api/invoices.
type CreateInvoiceRequest struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Amount   int    `json:"amount"` // unidades menores de la moneda
	Currency string `json:"currency,omitempty"`
	Status   string `json:"status,omitempty"`
	Due      string `json:"due"`
	Created  string `json:"created"`
	Method   string `json:"method,omitempty"`
}

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Due      string `json:"due"`
	Created  string `json:"created"`
	Method   string `json:"method"`
}

// PayInvoiceResponse acuse de la operación de pago.
type PayInvoiceResponse struct {
	OK        bool   `json:"ok"`
	InvoiceID string `json:"invoice_id"`
}

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Tier     string `json:"tier,omitempty"`
	Invoices int    `json:"invoices,omitempty"`
	Status   string `json:"status,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Tier      string `json:"tier"`
	Invoices  int    `json:"invoices"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// SubscriptionResponse suscripción en respuestas.
type SubscriptionResponse struct {
	ID       string `json:"id"`
	Plan     string `json:"plan"`
	Customer string `json:"customer"`
	MRR      int    `json:"mrr"`
	Status   string `json:"status"`
}

// SeedResponse resultado de POST /api/seed.
type SeedResponse struct {
	OK     bool `json:"ok"`
	Seeded bool `json:"seeded"`
}
