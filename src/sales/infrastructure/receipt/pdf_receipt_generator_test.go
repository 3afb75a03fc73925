package receipt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogEntity "pos/src/catalog/domain/entity"
	customerEntity "pos/src/customers/domain/entity"
	"pos/src/sales/domain/entity"
)

func buildSale(t *testing.T, paymentType entity.PaymentType, customerID *uuid.UUID) *entity.Sale {
	t.Helper()
	product, err := catalogEntity.NewProduct(uuid.NewString(), "Gaseosa",
		decimal.NewFromInt(10), decimal.NewFromInt(5), decimal.Zero,
		false, catalogEntity.PricingUnitPiece)
	require.NoError(t, err)

	item, err := entity.NewSaleItem(product, decimal.NewFromInt(2))
	require.NoError(t, err)

	sale, err := entity.NewSale(nil, customerID, paymentType, []*entity.SaleItem{item})
	require.NoError(t, err)
	return sale
}

func TestGenerateProducesPDF(t *testing.T) {
	generator := NewPDFReceiptGenerator("Almacén Don José")
	sale := buildSale(t, entity.PaymentTypeCash, nil)

	pdf, err := generator.Generate(sale, nil)
	require.NoError(t, err)

	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGenerateWithCustomer(t *testing.T) {
	generator := NewPDFReceiptGenerator("")
	customer, err := customerEntity.NewCustomer("Ana", nil, nil, nil, nil)
	require.NoError(t, err)
	sale := buildSale(t, entity.PaymentTypeCredit, &customer.ID)

	pdf, err := generator.Generate(sale, customer)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
