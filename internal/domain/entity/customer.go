package entity

import "time"

// Tiers comerciales de un cliente.
const (
	TierSMB        = "SMB"
	TierMidMarket  = "Mid-market"
	TierEnterprise = "Enterprise"
)

// Estados de salud de la cuenta.
const (
	CustomerStatusNew     = "new"
	CustomerStatusHealthy = "healthy"
	CustomerStatusAtRisk  = "at_risk"
)

// Customer representa una cuenta de facturación (ej. "CUST-901").
type Customer struct {
	ID        string
	Name      string
	Tier      string
	Invoices  int // contador denormalizado de facturas
	Status    string
	CreatedAt time.Time
}

// SearchFields devuelve los campos sobre los que aplica el filtro de búsqueda.
func (c *Customer) SearchFields() []string {
	return []string{c.ID, c.Name, c.Tier, c.Status}
}
