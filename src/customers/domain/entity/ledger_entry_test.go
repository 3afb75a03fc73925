package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLedgerEntryChargeAddsToBalance(t *testing.T) {
	customerID := uuid.New()
	saleID := uuid.New()

	entry, err := NewLedgerEntry(customerID, &saleID, EntryTypeCharge,
		decimal.NewFromInt(20), decimal.NewFromInt(5), "Sale #abc12345")
	require.NoError(t, err)

	assert.True(t, entry.Balance.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, EntryTypeCharge, entry.Type)
	assert.Equal(t, &saleID, entry.SaleID)
}

func TestNewLedgerEntryPaymentSubtractsFromBalance(t *testing.T) {
	entry, err := NewLedgerEntry(uuid.New(), nil, EntryTypePayment,
		decimal.NewFromInt(15), decimal.NewFromInt(25), "Payment received")
	require.NoError(t, err)

	assert.True(t, entry.Balance.Equal(decimal.NewFromInt(10)))
	assert.Nil(t, entry.SaleID)
}

func TestNewLedgerEntryPaymentCanGoNegative(t *testing.T) {
	// Reversa de anulación sobre deuda ya saldada: saldo a favor
	entry, err := NewLedgerEntry(uuid.New(), nil, EntryTypePayment,
		decimal.NewFromInt(30), decimal.NewFromInt(10), "Voided sale #abc12345")
	require.NoError(t, err)

	assert.True(t, entry.Balance.Equal(decimal.NewFromInt(-20)))
}

func TestNewLedgerEntryRejectsNonPositiveAmount(t *testing.T) {
	_, err := NewLedgerEntry(uuid.New(), nil, EntryTypeCharge,
		decimal.Zero, decimal.Zero, "x")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewLedgerEntry(uuid.New(), nil, EntryTypePayment,
		decimal.NewFromInt(-5), decimal.Zero, "x")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestNewLedgerEntryRejectsUnknownType(t *testing.T) {
	_, err := NewLedgerEntry(uuid.New(), nil, EntryType("REFUND"),
		decimal.NewFromInt(5), decimal.Zero, "x")
	assert.ErrorIs(t, err, ErrInvalidEntryType)
}
