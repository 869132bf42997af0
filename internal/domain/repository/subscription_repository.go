package repository

import (
	"context"

	"github.com/jhoicas/fluxbill-api/internal/domain/entity"
)

// SubscriptionRepository define el puerto de persistencia para Subscription.
type SubscriptionRepository interface {
	// Create persiste una suscripción nueva; domain.ErrDuplicate si el ID ya existe.
	Create(ctx context.Context, sub *entity.Subscription) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Subscription, error)
	List(ctx context.Context) ([]*entity.Subscription, error)
}
