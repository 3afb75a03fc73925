package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogEntity "pos/src/catalog/domain/entity"
	customerEntity "pos/src/customers/domain/entity"
	notificationPort "pos/src/notifications/domain/port"
	"pos/src/sales/domain/entity"
	"pos/src/sales/domain/port"
)

// memStore estado compartido en memoria para los fakes de los puertos
type memStore struct {
	mu        sync.Mutex
	products  map[uuid.UUID]*catalogEntity.Product
	inventory map[uuid.UUID]decimal.Decimal
	customers map[uuid.UUID]*customerEntity.Customer
	sales     map[uuid.UUID]*entity.Sale
	ledger    map[uuid.UUID][]*customerEntity.LedgerEntry
}

func newMemStore() *memStore {
	return &memStore{
		products:  make(map[uuid.UUID]*catalogEntity.Product),
		inventory: make(map[uuid.UUID]decimal.Decimal),
		customers: make(map[uuid.UUID]*customerEntity.Customer),
		sales:     make(map[uuid.UUID]*entity.Sale),
		ledger:    make(map[uuid.UUID][]*customerEntity.LedgerEntry),
	}
}

func (s *memStore) addProduct(product *catalogEntity.Product, stock decimal.Decimal) {
	s.products[product.ID] = product
	s.inventory[product.ID] = stock
}

func (s *memStore) addCustomer(customer *customerEntity.Customer) {
	s.customers[customer.ID] = customer
}

func (s *memStore) lastBalance(customerID uuid.UUID) decimal.Decimal {
	entries := s.ledger[customerID]
	if len(entries) == 0 {
		return decimal.Zero
	}
	return entries[len(entries)-1].Balance
}

// fakeProductRepo implementa catalogPort.ProductRepository sobre memStore
type fakeProductRepo struct{ store *memStore }

func (r *fakeProductRepo) Save(ctx context.Context, product *catalogEntity.Product) error {
	r.store.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *catalogEntity.Product) error {
	r.store.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalogEntity.Product, error) {
	product, ok := r.store.products[id]
	if !ok {
		return nil, catalogEntity.ErrProductNotFound
	}
	return product, nil
}

func (r *fakeProductRepo) FindByBarcode(ctx context.Context, barcode string) (*catalogEntity.Product, error) {
	for _, product := range r.store.products {
		if product.Barcode == barcode {
			return product, nil
		}
	}
	return nil, catalogEntity.ErrProductNotFound
}

func (r *fakeProductRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*catalogEntity.Product, error) {
	found := make(map[uuid.UUID]*catalogEntity.Product)
	for _, id := range ids {
		if product, ok := r.store.products[id]; ok {
			found[id] = product
		}
	}
	return found, nil
}

func (r *fakeProductRepo) List(ctx context.Context, search string, page, limit int) ([]*catalogEntity.Product, int, error) {
	products := make([]*catalogEntity.Product, 0, len(r.store.products))
	for _, product := range r.store.products {
		products = append(products, product)
	}
	return products, len(products), nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.products, id)
	return nil
}

// fakeInventoryRepo implementa catalogPort.InventoryRepository sobre memStore
type fakeInventoryRepo struct{ store *memStore }

func (r *fakeInventoryRepo) FindByProductID(ctx context.Context, productID uuid.UUID) (*catalogEntity.Inventory, error) {
	qty, ok := r.store.inventory[productID]
	if !ok {
		return nil, catalogEntity.ErrProductNotFound
	}
	return &catalogEntity.Inventory{ProductID: productID, Quantity: qty, LastUpdated: time.Now()}, nil
}

func (r *fakeInventoryRepo) FindByProductIDs(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]*catalogEntity.Inventory, error) {
	found := make(map[uuid.UUID]*catalogEntity.Inventory)
	for _, id := range productIDs {
		if qty, ok := r.store.inventory[id]; ok {
			found[id] = &catalogEntity.Inventory{ProductID: id, Quantity: qty, LastUpdated: time.Now()}
		}
	}
	return found, nil
}

func (r *fakeInventoryRepo) SetQuantity(ctx context.Context, productID uuid.UUID, quantity decimal.Decimal) (*catalogEntity.Inventory, error) {
	if quantity.LessThan(decimal.Zero) {
		return nil, catalogEntity.ErrNegativeInventory
	}
	r.store.inventory[productID] = quantity
	return &catalogEntity.Inventory{ProductID: productID, Quantity: quantity, LastUpdated: time.Now()}, nil
}

func (r *fakeInventoryRepo) AddQuantity(ctx context.Context, productID uuid.UUID, delta decimal.Decimal) (*catalogEntity.Inventory, error) {
	next := r.store.inventory[productID].Add(delta)
	if next.LessThan(decimal.Zero) {
		return nil, catalogEntity.ErrNegativeInventory
	}
	r.store.inventory[productID] = next
	return &catalogEntity.Inventory{ProductID: productID, Quantity: next, LastUpdated: time.Now()}, nil
}

func (r *fakeInventoryRepo) ListStockLevels(ctx context.Context, search string) ([]*catalogEntity.StockLevel, error) {
	levels := make([]*catalogEntity.StockLevel, 0)
	for id, qty := range r.store.inventory {
		levels = append(levels, &catalogEntity.StockLevel{
			Product:     r.store.products[id],
			Quantity:    qty,
			LastUpdated: time.Now(),
		})
	}
	return levels, nil
}

// fakeCustomerRepo implementa customerPort.CustomerRepository sobre memStore
type fakeCustomerRepo struct{ store *memStore }

func (r *fakeCustomerRepo) Save(ctx context.Context, customer *customerEntity.Customer) error {
	r.store.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, customer *customerEntity.Customer) error {
	r.store.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*customerEntity.Customer, error) {
	customer, ok := r.store.customers[id]
	if !ok {
		return nil, customerEntity.ErrCustomerNotFound
	}
	return customer, nil
}

func (r *fakeCustomerRepo) FindByPhone(ctx context.Context, phone string) (*customerEntity.Customer, error) {
	for _, customer := range r.store.customers {
		if customer.Phone != nil && *customer.Phone == phone {
			return customer, nil
		}
	}
	return nil, customerEntity.ErrCustomerNotFound
}

func (r *fakeCustomerRepo) List(ctx context.Context, search string) ([]*customerEntity.Customer, error) {
	customers := make([]*customerEntity.Customer, 0, len(r.store.customers))
	for _, customer := range r.store.customers {
		customers = append(customers, customer)
	}
	return customers, nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.customers, id)
	return nil
}

// fakeSaleRepo implementa port.SaleRepository respetando el contrato
// transaccional: descuenta existencias con guard y encadena el ledger
type fakeSaleRepo struct{ store *memStore }

func (r *fakeSaleRepo) CreateSale(ctx context.Context, sale *entity.Sale, charge *port.CreditCharge) ([]*catalogEntity.StockLevel, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if sale.SyncID != nil {
		for _, existing := range r.store.sales {
			if existing.SyncID != nil && *existing.SyncID == *sale.SyncID {
				return nil, entity.ErrDuplicateSyncID
			}
		}
	}

	required := make(map[uuid.UUID]decimal.Decimal)
	order := make([]uuid.UUID, 0)
	for _, item := range sale.Items {
		if _, ok := required[item.ProductID]; !ok {
			order = append(order, item.ProductID)
		}
		required[item.ProductID] = required[item.ProductID].Add(item.Quantity)
	}

	for productID, qty := range required {
		if r.store.inventory[productID].LessThan(qty) {
			return nil, fmt.Errorf("%w: product %s", catalogEntity.ErrInsufficientStock, productID)
		}
	}

	levels := make([]*catalogEntity.StockLevel, 0, len(order))
	for _, productID := range order {
		next := r.store.inventory[productID].Sub(required[productID])
		r.store.inventory[productID] = next
		levels = append(levels, &catalogEntity.StockLevel{
			Product:     r.store.products[productID],
			Quantity:    next,
			LastUpdated: time.Now(),
		})
	}

	if charge != nil {
		entry, err := customerEntity.NewLedgerEntry(charge.CustomerID, &sale.ID,
			customerEntity.EntryTypeCharge, charge.Amount, r.store.lastBalance(charge.CustomerID), charge.Description)
		if err != nil {
			return nil, err
		}
		r.store.ledger[charge.CustomerID] = append(r.store.ledger[charge.CustomerID], entry)
	}

	r.store.sales[sale.ID] = sale
	return levels, nil
}

func (r *fakeSaleRepo) VoidSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sale, ok := r.store.sales[id]
	if !ok {
		return nil, entity.ErrSaleNotFound
	}
	if sale.Status == entity.SaleStatusVoided {
		return nil, entity.ErrSaleAlreadyVoided
	}

	now := time.Now()
	sale.Status = entity.SaleStatusVoided
	sale.VoidedAt = &now

	for _, item := range sale.Items {
		r.store.inventory[item.ProductID] = r.store.inventory[item.ProductID].Add(item.Quantity)
	}

	if sale.PaymentType == entity.PaymentTypeCredit && sale.CustomerID != nil {
		entry, err := customerEntity.NewLedgerEntry(*sale.CustomerID, &sale.ID,
			customerEntity.EntryTypePayment, sale.TotalAmount, r.store.lastBalance(*sale.CustomerID),
			fmt.Sprintf("Voided sale #%s", sale.ShortID()))
		if err != nil {
			return nil, err
		}
		r.store.ledger[*sale.CustomerID] = append(r.store.ledger[*sale.CustomerID], entry)
	}

	return sale, nil
}

func (r *fakeSaleRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, ok := r.store.sales[id]
	if !ok {
		return nil, entity.ErrSaleNotFound
	}
	return sale, nil
}

func (r *fakeSaleRepo) FindBySyncID(ctx context.Context, syncID string) (*entity.Sale, error) {
	for _, sale := range r.store.sales {
		if sale.SyncID != nil && *sale.SyncID == syncID {
			return sale, nil
		}
	}
	return nil, entity.ErrSaleNotFound
}

func (r *fakeSaleRepo) List(ctx context.Context, filter port.SaleFilter) ([]*entity.Sale, int, error) {
	sales := make([]*entity.Sale, 0, len(r.store.sales))
	for _, sale := range r.store.sales {
		sales = append(sales, sale)
	}
	return sales, len(sales), nil
}

func (r *fakeSaleRepo) DailySummary(ctx context.Context, date time.Time) (*entity.DailySummary, error) {
	summary := &entity.DailySummary{Date: date}
	for _, sale := range r.store.sales {
		if sale.Status == entity.SaleStatusVoided {
			summary.VoidedCount++
			continue
		}
		summary.SaleCount++
		summary.TotalAmount = summary.TotalAmount.Add(sale.TotalAmount)
		if sale.PaymentType == entity.PaymentTypeCash {
			summary.CashTotal = summary.CashTotal.Add(sale.TotalAmount)
		} else {
			summary.CreditTotal = summary.CreditTotal.Add(sale.TotalAmount)
		}
	}
	return summary, nil
}

// fakeNotifier captura las notificaciones de stock bajo
type fakeNotifier struct {
	mu    sync.Mutex
	calls [][]notificationPort.LowStockProduct
}

func (n *fakeNotifier) NotifyLowStock(ctx context.Context, products []notificationPort.LowStockProduct) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, products)
	return nil
}

func (n *fakeNotifier) callCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

func (n *fakeNotifier) lastCall() []notificationPort.LowStockProduct {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.calls) == 0 {
		return nil
	}
	return n.calls[len(n.calls)-1]
}
