package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryType tipo de asiento del ledger de crédito
type EntryType string

const (
	// EntryTypeCharge aumenta la deuda del cliente (venta a crédito)
	EntryTypeCharge EntryType = "CHARGE"
	// EntryTypePayment baja la deuda (pago recibido o reversa de anulación)
	EntryTypePayment EntryType = "PAYMENT"
)

// LedgerEntry asiento del ledger de crédito de un cliente
// Los asientos son append-only: nunca se mutan ni se borran. El balance
// registrado es el saldo resultante luego de aplicar el asiento; el saldo
// actual de un cliente es el balance de su asiento más reciente.
type LedgerEntry struct {
	ID          uuid.UUID       `json:"id"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	SaleID      *uuid.UUID      `json:"sale_id"`
	Type        EntryType       `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewLedgerEntry crea un asiento calculando el balance resultante a partir
// del saldo previo: CHARGE suma, PAYMENT resta. amount siempre positivo.
func NewLedgerEntry(
	customerID uuid.UUID,
	saleID *uuid.UUID,
	entryType EntryType,
	amount decimal.Decimal,
	previousBalance decimal.Decimal,
	description string,
) (*LedgerEntry, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	var balance decimal.Decimal
	switch entryType {
	case EntryTypeCharge:
		balance = previousBalance.Add(amount)
	case EntryTypePayment:
		balance = previousBalance.Sub(amount)
	default:
		return nil, ErrInvalidEntryType
	}

	return &LedgerEntry{
		ID:          uuid.New(),
		CustomerID:  customerID,
		SaleID:      saleID,
		Type:        entryType,
		Amount:      amount,
		Balance:     balance,
		Description: description,
		CreatedAt:   time.Now(),
	}, nil
}
