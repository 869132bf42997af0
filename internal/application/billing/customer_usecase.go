package billing

import (
	"context"
	"time"

	"github.com/jhoicas/fluxbill-api/internal/application/dto"
	"github.com/jhoicas/fluxbill-api/internal/domain"
	"github.com/jhoicas/fluxbill-api/internal/domain/entity"
	"github.com/jhoicas/fluxbill-api/internal/domain/repository"
)

// CustomerUseCase casos de uso de clientes: listar+filtrar y crear.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List devuelve los clientes que hacen match con la query (vacía = todos).
func (uc *CustomerUseCase) List(ctx context.Context, q string) ([]dto.CustomerResponse, error) {
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(rows))
	for _, c := range rows {
		if matchesQuery(q, c.SearchFields()) {
			out = append(out, toCustomerResponse(c))
		}
	}
	return out, nil
}

// Create crea un cliente nuevo. domain.ErrDuplicate si el ID ya existe.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.ID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Customer{
		ID:        in.ID,
		Name:      in.Name,
		Tier:      defaultStr(in.Tier, entity.TierSMB),
		Invoices:  in.Invoices,
		Status:    defaultStr(in.Status, entity.CustomerStatusNew),
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(c)
	return &resp, nil
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Tier:      c.Tier,
		Invoices:  c.Invoices,
		Status:    c.Status,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
}
