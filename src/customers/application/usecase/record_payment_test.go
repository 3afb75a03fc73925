package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos/src/customers/application/request"
	"pos/src/customers/domain/entity"
)

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (r *fakeCustomerRepo) Save(ctx context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, entity.ErrCustomerNotFound
	}
	return customer, nil
}

func (r *fakeCustomerRepo) FindByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	for _, customer := range r.customers {
		if customer.Phone != nil && *customer.Phone == phone {
			return customer, nil
		}
	}
	return nil, entity.ErrCustomerNotFound
}

func (r *fakeCustomerRepo) List(ctx context.Context, search string) ([]*entity.Customer, error) {
	customers := make([]*entity.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		customers = append(customers, customer)
	}
	return customers, nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

type fakeLedgerRepo struct {
	mu      sync.Mutex
	entries map[uuid.UUID][]*entity.LedgerEntry
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{entries: make(map[uuid.UUID][]*entity.LedgerEntry)}
}

func (r *fakeLedgerRepo) CurrentBalance(ctx context.Context, customerID uuid.UUID) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.entries[customerID]
	if len(entries) == 0 {
		return decimal.Zero, nil
	}
	return entries[len(entries)-1].Balance, nil
}

func (r *fakeLedgerRepo) Append(ctx context.Context, entry *entity.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.CustomerID] = append(r.entries[entry.CustomerID], entry)
	return nil
}

// AppendPayment respeta el contrato transaccional del puerto: lectura del
// balance, validación y asiento bajo un único lock
func (r *fakeLedgerRepo) AppendPayment(ctx context.Context, customerID uuid.UUID, amount decimal.Decimal, description string) (*entity.LedgerEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	balance := decimal.Zero
	if entries := r.entries[customerID]; len(entries) > 0 {
		balance = entries[len(entries)-1].Balance
	}

	if balance.LessThanOrEqual(decimal.Zero) {
		return nil, entity.ErrNoOutstandingBalance
	}
	if amount.GreaterThan(balance) {
		return nil, fmt.Errorf("%w: payment amount ($%s) exceeds outstanding balance ($%s)",
			entity.ErrPaymentExceedsDebt, amount.String(), balance.String())
	}

	entry, err := entity.NewLedgerEntry(customerID, nil, entity.EntryTypePayment, amount, balance, description)
	if err != nil {
		return nil, err
	}
	r.entries[customerID] = append(r.entries[customerID], entry)
	return entry, nil
}

func (r *fakeLedgerRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID, page, limit int) ([]*entity.LedgerEntry, int, error) {
	entries := r.entries[customerID]
	return entries, len(entries), nil
}

func setupDebtor(t *testing.T, debt int64) (*fakeCustomerRepo, *fakeLedgerRepo, uuid.UUID) {
	t.Helper()
	customerRepo := newFakeCustomerRepo()
	ledgerRepo := newFakeLedgerRepo()

	customer, err := entity.NewCustomer("Ana", nil, nil, nil, nil)
	require.NoError(t, err)
	customerRepo.customers[customer.ID] = customer

	if debt > 0 {
		entry, err := entity.NewLedgerEntry(customer.ID, nil, entity.EntryTypeCharge,
			decimal.NewFromInt(debt), decimal.Zero, "Sale #abc12345")
		require.NoError(t, err)
		require.NoError(t, ledgerRepo.Append(context.Background(), entry))
	}

	return customerRepo, ledgerRepo, customer.ID
}

func TestRecordPaymentReducesBalance(t *testing.T) {
	customerRepo, ledgerRepo, customerID := setupDebtor(t, 50)
	uc := NewRecordPaymentUseCase(customerRepo, ledgerRepo)

	resp, err := uc.Execute(context.Background(), customerID, &request.RecordPaymentRequest{
		Amount: decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.EntryTypePayment, resp.Type)
	assert.True(t, resp.PreviousBalance.Equal(decimal.NewFromInt(50)))
	assert.True(t, resp.NewBalance.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "Payment received", resp.Description)

	balance, err := ledgerRepo.CurrentBalance(context.Background(), customerID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(30)))
}

func TestRecordPaymentFullSettlement(t *testing.T) {
	customerRepo, ledgerRepo, customerID := setupDebtor(t, 50)
	uc := NewRecordPaymentUseCase(customerRepo, ledgerRepo)

	resp, err := uc.Execute(context.Background(), customerID, &request.RecordPaymentRequest{
		Amount:      decimal.NewFromInt(50),
		Description: "Pago total",
	})
	require.NoError(t, err)

	assert.True(t, resp.NewBalance.Equal(decimal.Zero))
	assert.Equal(t, "Pago total", resp.Description)
}

func TestRecordPaymentNoOutstandingBalance(t *testing.T) {
	customerRepo, ledgerRepo, customerID := setupDebtor(t, 0)
	uc := NewRecordPaymentUseCase(customerRepo, ledgerRepo)

	_, err := uc.Execute(context.Background(), customerID, &request.RecordPaymentRequest{
		Amount: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, entity.ErrNoOutstandingBalance)
}

func TestRecordPaymentExceedsDebt(t *testing.T) {
	customerRepo, ledgerRepo, customerID := setupDebtor(t, 30)
	uc := NewRecordPaymentUseCase(customerRepo, ledgerRepo)

	_, err := uc.Execute(context.Background(), customerID, &request.RecordPaymentRequest{
		Amount: decimal.NewFromInt(31),
	})
	require.ErrorIs(t, err, entity.ErrPaymentExceedsDebt)
	assert.Contains(t, err.Error(), "$31")
	assert.Contains(t, err.Error(), "$30")
}

func TestRecordPaymentConcurrentPaymentsDoNotOverpay(t *testing.T) {
	customerRepo, ledgerRepo, customerID := setupDebtor(t, 50)
	uc := NewRecordPaymentUseCase(customerRepo, ledgerRepo)

	// Dos pagos simultáneos por el total de la deuda: sólo uno puede pasar,
	// el otro tiene que ver el saldo ya cancelado
	start := make(chan struct{})
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			<-start
			_, err := uc.Execute(context.Background(), customerID, &request.RecordPaymentRequest{
				Amount: decimal.NewFromInt(50),
			})
			results <- err
		}()
	}
	close(start)

	var failures int
	for i := 0; i < 2; i++ {
		if err := <-results; err != nil {
			failures++
			assert.ErrorIs(t, err, entity.ErrNoOutstandingBalance)
		}
	}
	assert.Equal(t, 1, failures)

	entries := ledgerRepo.entries[customerID]
	require.Len(t, entries, 2)

	signedSum := decimal.Zero
	for _, entry := range entries {
		if entry.Type == entity.EntryTypeCharge {
			signedSum = signedSum.Add(entry.Amount)
		} else {
			signedSum = signedSum.Sub(entry.Amount)
		}
	}
	assert.True(t, entries[len(entries)-1].Balance.Equal(signedSum),
		"last balance %s != signed sum %s", entries[len(entries)-1].Balance, signedSum)
	assert.True(t, signedSum.Equal(decimal.Zero))
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	customerRepo, ledgerRepo, customerID := setupDebtor(t, 30)
	uc := NewRecordPaymentUseCase(customerRepo, ledgerRepo)

	_, err := uc.Execute(context.Background(), customerID, &request.RecordPaymentRequest{
		Amount: decimal.Zero,
	})
	assert.ErrorIs(t, err, entity.ErrInvalidAmount)
}

func TestRecordPaymentUnknownCustomer(t *testing.T) {
	customerRepo, ledgerRepo, _ := setupDebtor(t, 30)
	uc := NewRecordPaymentUseCase(customerRepo, ledgerRepo)

	_, err := uc.Execute(context.Background(), uuid.New(), &request.RecordPaymentRequest{
		Amount: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, entity.ErrCustomerNotFound)
}

func TestDebtorsListsOnlyCustomersWithDebt(t *testing.T) {
	customerRepo, ledgerRepo, debtorID := setupDebtor(t, 30)

	clean, err := entity.NewCustomer("Bruno", nil, nil, nil, nil)
	require.NoError(t, err)
	customerRepo.customers[clean.ID] = clean

	uc := NewDebtorsUseCase(customerRepo, ledgerRepo)
	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, resp.CustomerCount)
	assert.Equal(t, debtorID, resp.Customers[0].ID)
	assert.True(t, resp.TotalOutstanding.Equal(decimal.NewFromInt(30)))
}
