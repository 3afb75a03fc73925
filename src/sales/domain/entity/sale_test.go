package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogEntity "pos/src/catalog/domain/entity"
)

func pieceProduct(t *testing.T, name string, price int64) *catalogEntity.Product {
	t.Helper()
	product, err := catalogEntity.NewProduct(uuid.NewString(), name,
		decimal.NewFromInt(price), decimal.NewFromInt(price/2), decimal.NewFromInt(3),
		false, catalogEntity.PricingUnitPiece)
	require.NoError(t, err)
	return product
}

func TestNewSaleComputesTotal(t *testing.T) {
	itemA, err := NewSaleItem(pieceProduct(t, "Gaseosa", 10), decimal.NewFromInt(3))
	require.NoError(t, err)
	itemB, err := NewSaleItem(pieceProduct(t, "Pan", 5), decimal.NewFromInt(2))
	require.NoError(t, err)

	sale, err := NewSale(nil, nil, PaymentTypeCash, []*SaleItem{itemA, itemB})
	require.NoError(t, err)

	assert.True(t, sale.TotalAmount.Equal(decimal.NewFromInt(40)), "expected 40, got %s", sale.TotalAmount)
	assert.Equal(t, SaleStatusCompleted, sale.Status)
	for _, item := range sale.Items {
		assert.Equal(t, sale.ID, item.SaleID)
	}
}

func TestNewSaleItemSnapshotsProduct(t *testing.T) {
	product := pieceProduct(t, "Leche", 8)

	item, err := NewSaleItem(product, decimal.NewFromInt(2))
	require.NoError(t, err)

	assert.Equal(t, "Leche", item.ProductName)
	assert.True(t, item.UnitPrice.Equal(product.Price))
	assert.True(t, item.Subtotal.Equal(decimal.NewFromInt(16)))

	// La edición posterior del producto no toca la línea
	product.Name = "Leche entera"
	product.Price = decimal.NewFromInt(99)
	assert.Equal(t, "Leche", item.ProductName)
	assert.True(t, item.UnitPrice.Equal(decimal.NewFromInt(8)))
}

func TestNewSaleRejectsEmptyItems(t *testing.T) {
	_, err := NewSale(nil, nil, PaymentTypeCash, nil)
	assert.ErrorIs(t, err, ErrEmptySale)
}

func TestNewSaleRejectsInvalidPaymentType(t *testing.T) {
	item, err := NewSaleItem(pieceProduct(t, "Pan", 5), decimal.NewFromInt(1))
	require.NoError(t, err)

	_, err = NewSale(nil, nil, PaymentType("CHECK"), []*SaleItem{item})
	assert.ErrorIs(t, err, ErrInvalidPaymentType)
}

func TestNewSaleCreditRequiresCustomer(t *testing.T) {
	item, err := NewSaleItem(pieceProduct(t, "Pan", 5), decimal.NewFromInt(1))
	require.NoError(t, err)

	_, err = NewSale(nil, nil, PaymentTypeCredit, []*SaleItem{item})
	assert.ErrorIs(t, err, ErrCustomerRequired)

	customerID := uuid.New()
	sale, err := NewSale(nil, &customerID, PaymentTypeCredit, []*SaleItem{item})
	require.NoError(t, err)
	assert.Equal(t, &customerID, sale.CustomerID)
}

func TestNewSaleItemRejectsFractionalPieces(t *testing.T) {
	_, err := NewSaleItem(pieceProduct(t, "Pan", 5), decimal.RequireFromString("1.5"))
	assert.ErrorIs(t, err, catalogEntity.ErrNonIntegerQuantity)
}

func TestShortID(t *testing.T) {
	item, err := NewSaleItem(pieceProduct(t, "Pan", 5), decimal.NewFromInt(1))
	require.NoError(t, err)
	sale, err := NewSale(nil, nil, PaymentTypeCash, []*SaleItem{item})
	require.NoError(t, err)

	assert.Len(t, sale.ShortID(), 8)
	assert.Equal(t, sale.ID.String()[:8], sale.ShortID())
}
