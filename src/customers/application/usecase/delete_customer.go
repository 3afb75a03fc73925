package usecase

import (
	"context"

	"github.com/google/uuid"

	"pos/src/customers/domain/port"
)

// DeleteCustomerUseCase caso de uso para baja de cliente
// El repositorio rechaza la baja si el cliente tiene ventas o asientos de
// ledger asociados
type DeleteCustomerUseCase struct {
	customerRepo port.CustomerRepository
}

// NewDeleteCustomerUseCase crea una nueva instancia del caso de uso
func NewDeleteCustomerUseCase(customerRepo port.CustomerRepository) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{customerRepo: customerRepo}
}

// Execute verifica existencia y elimina el cliente
func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.customerRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return uc.customerRepo.Delete(ctx, id)
}
