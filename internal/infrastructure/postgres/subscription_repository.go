package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/fluxbill-api/internal/domain"
	"github.com/jhoicas/fluxbill-api/internal/domain/entity"
	"github.com/jhoicas/fluxbill-api/internal/domain/repository"
)

var _ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)

// SubscriptionRepo implementación de SubscriptionRepository (usable con pool o tx).
type SubscriptionRepo struct {
	q Querier
}

// NewSubscriptionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubscriptionRepository(q Querier) *SubscriptionRepo {
	return &SubscriptionRepo{q: q}
}

// Create persiste una suscripción nueva.
func (r *SubscriptionRepo) Create(ctx context.Context, sub *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, plan, customer, mrr, status)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, sub.ID, sub.Plan, sub.Customer, sub.MRR, sub.Status)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

// GetByID obtiene una suscripción por ID. Devuelve nil, nil si no existe.
func (r *SubscriptionRepo) GetByID(ctx context.Context, id string) (*entity.Subscription, error) {
	query := `
		SELECT id, plan, customer, mrr, status
		FROM subscriptions WHERE id = $1`
	var s entity.Subscription
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Plan, &s.Customer, &s.MRR, &s.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &s, nil
}

// List devuelve todas las suscripciones ordenadas por ID.
func (r *SubscriptionRepo) List(ctx context.Context) ([]*entity.Subscription, error) {
	query := `
		SELECT id, plan, customer, mrr, status
		FROM subscriptions ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Subscription
	for rows.Next() {
		var s entity.Subscription
		if err := rows.Scan(&s.ID, &s.Plan, &s.Customer, &s.MRR, &s.Status); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
