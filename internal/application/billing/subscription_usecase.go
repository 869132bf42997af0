package billing

import (
	"context"

	"github.com/jhoicas/fluxbill-api/internal/application/dto"
	"github.com/jhoicas/fluxbill-api/internal/domain/entity"
	"github.com/jhoicas/fluxbill-api/internal/domain/repository"
)

// SubscriptionUseCase casos de uso de suscripciones. La superficie HTTP solo
// expone el listado; las altas llegan por el seed.
type SubscriptionUseCase struct {
	repo repository.SubscriptionRepository
}

// NewSubscriptionUseCase construye el caso de uso.
func NewSubscriptionUseCase(repo repository.SubscriptionRepository) *SubscriptionUseCase {
	return &SubscriptionUseCase{repo: repo}
}

// List devuelve las suscripciones que hacen match con la query (vacía = todas).
func (uc *SubscriptionUseCase) List(ctx context.Context, q string) ([]dto.SubscriptionResponse, error) {
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SubscriptionResponse, 0, len(rows))
	for _, s := range rows {
		if matchesQuery(q, s.SearchFields()) {
			out = append(out, toSubscriptionResponse(s))
		}
	}
	return out, nil
}

func toSubscriptionResponse(s *entity.Subscription) dto.SubscriptionResponse {
	return dto.SubscriptionResponse{
		ID:       s.ID,
		Plan:     s.Plan,
		Customer: s.Customer,
		MRR:      s.MRR,
		Status:   s.Status,
	}
}
