package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pos/src/customers/application/request"
	"pos/src/customers/application/response"
	"pos/src/customers/domain/entity"
	"pos/src/customers/domain/port"
)

// RecordPaymentUseCase caso de uso para registrar un pago manual de cuenta
// corriente (camino distinto a la reversa por anulación de venta)
type RecordPaymentUseCase struct {
	customerRepo port.CustomerRepository
	ledgerRepo   port.LedgerRepository
}

// NewRecordPaymentUseCase crea una nueva instancia del caso de uso
func NewRecordPaymentUseCase(customerRepo port.CustomerRepository, ledgerRepo port.LedgerRepository) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		customerRepo: customerRepo,
		ledgerRepo:   ledgerRepo,
	}
}

// Execute valida el pago y appendea un asiento PAYMENT
// Precondiciones: balance actual > 0 y amount <= balance
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, customerID uuid.UUID, req *request.RecordPaymentRequest) (*response.PaymentResponse, error) {
	if _, err := uc.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, entity.ErrInvalidAmount
	}

	description := req.Description
	if description == "" {
		description = "Payment received"
	}

	// Lectura del balance, validación del saldo e INSERT corren en una sola
	// transacción con lock del cliente, igual que el cargo de una venta a
	// crédito: dos pagos concurrentes no pueden leer el mismo balance
	entry, err := uc.ledgerRepo.AppendPayment(ctx, customerID, req.Amount, description)
	if err != nil {
		return nil, err
	}

	return &response.PaymentResponse{
		EntryID:         entry.ID,
		Type:            entry.Type,
		Amount:          entry.Amount,
		PreviousBalance: entry.Balance.Add(entry.Amount),
		NewBalance:      entry.Balance,
		Description:     entry.Description,
		CreatedAt:       entry.CreatedAt,
	}, nil
}
