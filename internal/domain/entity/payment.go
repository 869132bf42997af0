package entity

import "time"

// Payment registra un cobro exitoso sobre una factura.
// Se crea exactamente uno por pago y nunca se muta ni se borra.
type Payment struct {
	ID        string // uuid asignado por la aplicación
	InvoiceID string // referencia lógica, sin FK
	Amount    int    // amount de la factura al momento del pago
	Method    string
	PaidAt    time.Time
}
