package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pos/src/customers/domain/entity"
)

// LedgerRepository puerto de persistencia del ledger de crédito
// Los asientos son append-only: no hay Update ni Delete
type LedgerRepository interface {
	// CurrentBalance retorna el balance del asiento más reciente del
	// cliente, o 0 si no tiene asientos. O(1) vía índice
	// (customer_id, seq DESC), nunca sumando el historial.
	CurrentBalance(ctx context.Context, customerID uuid.UUID) (decimal.Decimal, error)
	Append(ctx context.Context, entry *entity.LedgerEntry) error
	// AppendPayment registra un pago manual de forma atómica: lock del
	// cliente, lectura del último balance, validación del saldo y asiento,
	// todo en una transacción. Serializa con los cargos de venta
	// concurrentes del mismo cliente.
	// Errores: ErrCustomerNotFound, ErrNoOutstandingBalance,
	// ErrPaymentExceedsDebt.
	AppendPayment(ctx context.Context, customerID uuid.UUID, amount decimal.Decimal, description string) (*entity.LedgerEntry, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, page, limit int) ([]*entity.LedgerEntry, int, error)
}
