package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"pos/src/customers/application/request"
	"pos/src/customers/application/response"
	"pos/src/customers/domain/entity"
	"pos/src/customers/domain/port"
)

// CreateCustomerUseCase caso de uso para alta de cliente
type CreateCustomerUseCase struct {
	customerRepo port.CustomerRepository
}

// NewCreateCustomerUseCase crea una nueva instancia del caso de uso
func NewCreateCustomerUseCase(customerRepo port.CustomerRepository) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{customerRepo: customerRepo}
}

// Execute valida la unicidad del teléfono (si viene) y persiste el cliente
func (uc *CreateCustomerUseCase) Execute(ctx context.Context, req *request.CreateCustomerRequest) (*response.CustomerResponse, error) {
	if req.Phone != nil && *req.Phone != "" {
		existing, err := uc.customerRepo.FindByPhone(ctx, *req.Phone)
		if err != nil && !errors.Is(err, entity.ErrCustomerNotFound) {
			return nil, fmt.Errorf("error checking phone: %w", err)
		}
		if existing != nil {
			return nil, entity.ErrPhoneAlreadyUsed
		}
	}

	customer, err := entity.NewCustomer(req.Name, req.Phone, req.Email, req.Address, req.Notes)
	if err != nil {
		return nil, err
	}

	if err := uc.customerRepo.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("error saving customer: %w", err)
	}

	// Cliente nuevo arranca sin deuda
	resp := response.NewCustomerResponse(customer, decimal.Zero)
	return &resp, nil
}
