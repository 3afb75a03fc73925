package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"pos/src/customers/application/response"
	"pos/src/customers/domain/port"
)

// DebtorsUseCase caso de uso para el listado de clientes con deuda
type DebtorsUseCase struct {
	customerRepo port.CustomerRepository
	ledgerRepo   port.LedgerRepository
}

// NewDebtorsUseCase crea una nueva instancia del caso de uso
func NewDebtorsUseCase(customerRepo port.CustomerRepository, ledgerRepo port.LedgerRepository) *DebtorsUseCase {
	return &DebtorsUseCase{
		customerRepo: customerRepo,
		ledgerRepo:   ledgerRepo,
	}
}

// Execute retorna los clientes con balance > 0, ordenados por deuda
// descendente, con el total adeudado
func (uc *DebtorsUseCase) Execute(ctx context.Context) (*response.DebtorsResponse, error) {
	customers, err := uc.customerRepo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("error listing customers: %w", err)
	}

	debtors := make([]response.CustomerResponse, 0)
	totalOutstanding := decimal.Zero

	for _, customer := range customers {
		balance, err := uc.ledgerRepo.CurrentBalance(ctx, customer.ID)
		if err != nil {
			return nil, fmt.Errorf("error getting balance for customer %s: %w", customer.ID, err)
		}
		if balance.GreaterThan(decimal.Zero) {
			debtors = append(debtors, response.NewCustomerResponse(customer, balance))
			totalOutstanding = totalOutstanding.Add(balance)
		}
	}

	sort.Slice(debtors, func(i, j int) bool {
		return debtors[i].Balance.GreaterThan(debtors[j].Balance)
	})

	return &response.DebtorsResponse{
		TotalOutstanding: totalOutstanding.Round(2),
		CustomerCount:    len(debtors),
		Customers:        debtors,
	}, nil
}
