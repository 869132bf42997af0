package repository

import (
	"context"

	"github.com/jhoicas/fluxbill-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	// Create persiste un cliente nuevo; domain.ErrDuplicate si el ID ya existe.
	Create(ctx context.Context, customer *entity.Customer) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
}
