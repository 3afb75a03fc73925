package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pos/src/customers/application/request"
	"pos/src/customers/application/response"
	"pos/src/customers/domain/entity"
	"pos/src/customers/domain/port"
)

// UpdateCustomerUseCase caso de uso para edición de cliente
type UpdateCustomerUseCase struct {
	customerRepo port.CustomerRepository
	ledgerRepo   port.LedgerRepository
}

// NewUpdateCustomerUseCase crea una nueva instancia del caso de uso
func NewUpdateCustomerUseCase(customerRepo port.CustomerRepository, ledgerRepo port.LedgerRepository) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{
		customerRepo: customerRepo,
		ledgerRepo:   ledgerRepo,
	}
}

// Execute aplica los campos presentes, validando la unicidad del teléfono
func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, id uuid.UUID, req *request.UpdateCustomerRequest) (*response.CustomerResponse, error) {
	customer, err := uc.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Phone != nil && *req.Phone != "" {
		current := ""
		if customer.Phone != nil {
			current = *customer.Phone
		}
		if *req.Phone != current {
			existing, err := uc.customerRepo.FindByPhone(ctx, *req.Phone)
			if err != nil && !errors.Is(err, entity.ErrCustomerNotFound) {
				return nil, fmt.Errorf("error checking phone: %w", err)
			}
			if existing != nil {
				return nil, entity.ErrPhoneAlreadyUsed
			}
		}
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, entity.ErrCustomerNameRequired
		}
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = req.Phone
	}
	if req.Email != nil {
		customer.Email = req.Email
	}
	if req.Address != nil {
		customer.Address = req.Address
	}
	if req.Notes != nil {
		customer.Notes = req.Notes
	}
	customer.UpdatedAt = time.Now()

	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("error updating customer: %w", err)
	}

	balance, err := uc.ledgerRepo.CurrentBalance(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("error getting balance: %w", err)
	}

	resp := response.NewCustomerResponse(customer, balance)
	return &resp, nil
}
