package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"pos/src/customers/application/response"
	"pos/src/customers/domain/port"
)

// GetCustomerUseCase caso de uso para consulta de clientes con balance derivado
type GetCustomerUseCase struct {
	customerRepo port.CustomerRepository
	ledgerRepo   port.LedgerRepository
}

// NewGetCustomerUseCase crea una nueva instancia del caso de uso
func NewGetCustomerUseCase(customerRepo port.CustomerRepository, ledgerRepo port.LedgerRepository) *GetCustomerUseCase {
	return &GetCustomerUseCase{
		customerRepo: customerRepo,
		ledgerRepo:   ledgerRepo,
	}
}

// ByID busca un cliente por id con su balance actual
func (uc *GetCustomerUseCase) ByID(ctx context.Context, id uuid.UUID) (*response.CustomerResponse, error) {
	customer, err := uc.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	balance, err := uc.ledgerRepo.CurrentBalance(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting balance: %w", err)
	}

	resp := response.NewCustomerResponse(customer, balance)
	return &resp, nil
}

// List lista clientes con búsqueda por nombre/teléfono, cada uno con su balance
func (uc *GetCustomerUseCase) List(ctx context.Context, search string) ([]response.CustomerResponse, error) {
	customers, err := uc.customerRepo.List(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("error listing customers: %w", err)
	}

	result := make([]response.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		balance, err := uc.ledgerRepo.CurrentBalance(ctx, customer.ID)
		if err != nil {
			return nil, fmt.Errorf("error getting balance for customer %s: %w", customer.ID, err)
		}
		result = append(result, response.NewCustomerResponse(customer, balance))
	}

	return result, nil
}
