package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"pos/src/customers/application/response"
	"pos/src/customers/domain/port"
)

// GetLedgerUseCase caso de uso para consultar el ledger de un cliente
type GetLedgerUseCase struct {
	customerRepo port.CustomerRepository
	ledgerRepo   port.LedgerRepository
}

// NewGetLedgerUseCase crea una nueva instancia del caso de uso
func NewGetLedgerUseCase(customerRepo port.CustomerRepository, ledgerRepo port.LedgerRepository) *GetLedgerUseCase {
	return &GetLedgerUseCase{
		customerRepo: customerRepo,
		ledgerRepo:   ledgerRepo,
	}
}

// Execute retorna los asientos paginados (más recientes primero) junto con
// el balance actual del cliente
func (uc *GetLedgerUseCase) Execute(ctx context.Context, customerID uuid.UUID, page, limit int) (*response.LedgerResponse, error) {
	customer, err := uc.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	entries, total, err := uc.ledgerRepo.ListByCustomer(ctx, customerID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing ledger entries: %w", err)
	}

	balance, err := uc.ledgerRepo.CurrentBalance(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("error getting balance: %w", err)
	}

	return &response.LedgerResponse{
		Customer:       response.NewCustomerResponse(customer, balance),
		Entries:        entries,
		TotalCount:     total,
		Page:           page,
		Limit:          limit,
		CurrentBalance: balance,
	}, nil
}
