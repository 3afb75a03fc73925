package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogEntity "pos/src/catalog/domain/entity"
	customerEntity "pos/src/customers/domain/entity"
	"pos/src/sales/application/request"
	"pos/src/sales/domain/entity"
)

type saleTestEnv struct {
	store    *memStore
	notifier *fakeNotifier
	createUC *CreateSaleUseCase
	voidUC   *VoidSaleUseCase
}

func newSaleTestEnv() *saleTestEnv {
	store := newMemStore()
	notifier := &fakeNotifier{}
	saleRepo := &fakeSaleRepo{store: store}
	return &saleTestEnv{
		store:    store,
		notifier: notifier,
		createUC: NewCreateSaleUseCase(
			saleRepo,
			&fakeProductRepo{store: store},
			&fakeInventoryRepo{store: store},
			&fakeCustomerRepo{store: store},
			notifier,
		),
		voidUC: NewVoidSaleUseCase(saleRepo),
	}
}

func newPieceProduct(t *testing.T, name string, price, reorderLevel int64) *catalogEntity.Product {
	t.Helper()
	product, err := catalogEntity.NewProduct(uuid.NewString(), name,
		decimal.NewFromInt(price), decimal.NewFromInt(price/2), decimal.NewFromInt(reorderLevel),
		false, catalogEntity.PricingUnitPiece)
	require.NoError(t, err)
	return product
}

func newWeightProduct(t *testing.T, name string, pricePerKg int64) *catalogEntity.Product {
	t.Helper()
	product, err := catalogEntity.NewProduct(uuid.NewString(), name,
		decimal.NewFromInt(pricePerKg), decimal.NewFromInt(pricePerKg/2), decimal.NewFromInt(1),
		true, catalogEntity.PricingUnitKg)
	require.NoError(t, err)
	return product
}

func newTestCustomer(t *testing.T, name string) *customerEntity.Customer {
	t.Helper()
	customer, err := customerEntity.NewCustomer(name, nil, nil, nil, nil)
	require.NoError(t, err)
	return customer
}

func TestCreateSaleDecrementsStockAndComputesTotal(t *testing.T) {
	env := newSaleTestEnv()
	product := newPieceProduct(t, "Gaseosa", 10, 0)
	env.store.addProduct(product, decimal.NewFromInt(5))

	resp, err := env.createUC.Execute(context.Background(), &request.CreateSaleRequest{
		PaymentType: "CASH",
		Items: []request.SaleItemRequest{
			{ProductID: product.ID, Quantity: decimal.NewFromInt(3)},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(30)), "expected 30, got %s", resp.TotalAmount)
	assert.Equal(t, entity.SaleStatusCompleted, resp.Status)
	assert.True(t, env.store.inventory[product.ID].Equal(decimal.NewFromInt(2)),
		"expected stock 2, got %s", env.store.inventory[product.ID])
}

func TestCreateSaleWeightProduct(t *testing.T) {
	env := newSaleTestEnv()
	product := newWeightProduct(t, "Carne", 50000)
	env.store.addProduct(product, decimal.NewFromInt(10))

	resp, err := env.createUC.Execute(context.Background(), &request.CreateSaleRequest{
		PaymentType: "CASH",
		Items: []request.SaleItemRequest{
			{ProductID: product.ID, Quantity: decimal.RequireFromString("0.5")},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(25000)), "expected 25000, got %s", resp.TotalAmount)
	assert.True(t, env.store.inventory[product.ID].Equal(decimal.RequireFromString("9.5")))
}

func TestCreateSaleInsufficientStock(t *testing.T) {
	env := newSaleTestEnv()
	product := newPieceProduct(t, "Gaseosa", 10, 0)
	env.store.addProduct(product, decimal.NewFromInt(2))

	_, err := env.createUC.Execute(context.Background(), &request.CreateSaleRequest{
		PaymentType: "CASH",
		Items: []request.SaleItemRequest{
			{ProductID: product.ID, Quantity: decimal.NewFromInt(3)},
		},
	})
	assert.ErrorIs(t, err, catalogEntity.ErrInsufficientStock)

	// Nada se descontó ni se registró
	assert.True(t, env.store.inventory[product.ID].Equal(decimal.NewFromInt(2)))
	assert.Empty(t, env.store.sales)
}

func TestCreateSaleAggregatesDuplicateLines(t *testing.T) {
	env := newSaleTestEnv()
	product := newPieceProduct(t, "Gaseosa", 10, 0)
	env.store.addProduct(product, decimal.NewFromInt(3))

	// Dos líneas del mismo producto que juntas exceden el stock
	_, err := env.createUC.Execute(context.Background(), &request.CreateSaleRequest{
		PaymentType: "CASH",
		Items: []request.SaleItemRequest{
			{ProductID: product.ID, Quantity: decimal.NewFromInt(2)},
			{ProductID: product.ID, Quantity: decimal.NewFromInt(2)},
		},
	})
	assert.ErrorIs(t, err, catalogEntity.ErrInsufficientStock)
}

func TestCreateSaleUnknownProduct(t *testing.T) {
	env := newSaleTestEnv()

	_, err := env.createUC.Execute(context.Background(), &request.CreateSaleRequest{
		PaymentType: "CASH",
		Items: []request.SaleItemRequest{
			{ProductID: uuid.New(), Quantity: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(t, err, catalogEntity.ErrProductNotFound)
}

func TestCreateSaleCreditChargesLedger(t *testing.T) {
	env := newSaleTestEnv()
	product := newPieceProduct(t, "Gaseosa", 10, 0)
	env.store.addProduct(product, decimal.NewFromInt(5))
	customer := newTestCustomer(t, "Ana")
	env.store.addCustomer(customer)

	resp, err := env.createUC.Execute(context.Background(), &request.CreateSaleRequest{
		PaymentType: "CREDIT",
		CustomerID:  &customer.ID,
		Items: []request.SaleItemRequest{
			{ProductID: product.ID, Quantity: decimal.NewFromInt(2)},
		},
	})
	require.NoError(t, err)

	entries := env.store.ledger[customer.ID]
	require.Len(t, entries, 1)
	assert.Equal(t, customerEntity.EntryTypeCharge, entries[0].Type)
	assert.True(t, entries[0].Amount.Equal(decimal.NewFromInt(20)))
	assert.True(t, entries[0].Balance.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, "Sale #"+resp.ShortID(), entries[0].Description)
	require.NotNil(t, entries[0].SaleID)
	assert.Equal(t, resp.ID, *entries[0].SaleID)
}

func TestCreateSaleCreditRequiresCustomer(t *testing.T) {
	env := newSaleTestEnv()
	product := newPieceProduct(t, "Gaseosa", 10, 0)
	env.store.addProduct(product, decimal.NewFromInt(5))

	_, err := env.createUC.Execute(context.Background(), &request.CreateSaleRequest{
		PaymentType: "CREDIT",
		Items: []request.SaleItemRequest{
			{ProductID: product.ID, Quantity: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(t, err, entity.ErrCustomerRequired)
}

func TestCreateSaleCreditUnknownCustomer(t *testing.T) {
	env := newSaleTestEnv()
	product := newPieceProduct(t, "Gaseosa", 10, 0)
	env.store.addProduct(product, decimal.NewFromInt(5))
	unknown := uuid.New()

	_, err := env.createUC.Execute(context.Background(), &request.CreateSaleRequest{
		PaymentType: "CREDIT",
		CustomerID:  &unknown,
		Items: []request.SaleItemRequest{
			{ProductID: product.ID, Quantity: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(t, err, customerEntity.ErrCustomerNotFound)
}

func TestCreateSaleDuplicateSyncIDFails(t *testing.T) {
	env := newSaleTestEnv()
	product := newPieceProduct(t, "Gaseosa", 10, 0)
	env.store.addProduct(product, decimal.NewFromInt(5))

	syncID := "pos-1-0042"
	req := &request.CreateSaleRequest{
		SyncID:      &syncID,
		PaymentType: "CASH",
		Items: []request.SaleItemRequest{
			{ProductID: product.ID, Quantity: decimal.NewFromInt(2)},
		},
	}

	_, err := env.createUC.Execute(context.Background(), req)
	require.NoError(t, err)

	// El reenvío con el mismo sync_id falla y no vuelve a descontar stock:
	// existe exactamente una venta para ese sync_id
	_, err = env.createUC.Execute(context.Background(), req)
	assert.ErrorIs(t, err, entity.ErrDuplicateSyncID)
	assert.True(t, env.store.inventory[product.ID].Equal(decimal.NewFromInt(3)))
	assert.Len(t, env.store.sales, 1)
}

func TestCreateSaleInvalidPaymentType(t *testing.T) {
	env := newSaleTestEnv()

	_, err := env.createUC.Execute(context.Background(), &request.CreateSaleRequest{
		PaymentType: "CHECK",
		Items: []request.SaleItemRequest{
			{ProductID: uuid.New(), Quantity: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(t, err, entity.ErrInvalidPaymentType)
}

func TestCreateSaleEmptyItems(t *testing.T) {
	env := newSaleTestEnv()

	_, err := env.createUC.Execute(context.Background(), &request.CreateSaleRequest{
		PaymentType: "CASH",
	})
	assert.ErrorIs(t, err, entity.ErrEmptySale)
}

func TestCreateSaleNotifiesLowStock(t *testing.T) {
	env := newSaleTestEnv()
	product := newPieceProduct(t, "Gaseosa", 10, 3)
	env.store.addProduct(product, decimal.NewFromInt(5))

	_, err := env.createUC.Execute(context.Background(), &request.CreateSaleRequest{
		PaymentType: "CASH",
		Items: []request.SaleItemRequest{
			{ProductID: product.ID, Quantity: decimal.NewFromInt(3)},
		},
	})
	require.NoError(t, err)

	// La notificación corre en background
	require.Eventually(t, func() bool {
		return env.notifier.callCount() == 1
	}, time.Second, 10*time.Millisecond)

	products := env.notifier.lastCall()
	require.Len(t, products, 1)
	assert.Equal(t, product.ID, products[0].ID)
	assert.True(t, products[0].Quantity.Equal(decimal.NewFromInt(2)))
}

func TestCreateSaleDoesNotNotifyAboveReorderLevel(t *testing.T) {
	env := newSaleTestEnv()
	product := newPieceProduct(t, "Gaseosa", 10, 1)
	env.store.addProduct(product, decimal.NewFromInt(10))

	_, err := env.createUC.Execute(context.Background(), &request.CreateSaleRequest{
		PaymentType: "CASH",
		Items: []request.SaleItemRequest{
			{ProductID: product.ID, Quantity: decimal.NewFromInt(2)},
		},
	})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, env.notifier.callCount())
}
