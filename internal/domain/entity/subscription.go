package entity

// Estados de una suscripción recurrente.
const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusPastDue  = "past_due"
	SubscriptionStatusCanceled = "canceled"
)

// Subscription representa una suscripción de plan recurrente (ej. "SUB-2201").
type Subscription struct {
	ID       string
	Plan     string
	Customer string
	MRR      int // ingreso mensual recurrente, unidades menores
	Status   string
}

// SearchFields devuelve los campos sobre los que aplica el filtro de búsqueda.
func (s *Subscription) SearchFields() []string {
	return []string{s.ID, s.Plan, s.Customer, s.Status}
}
