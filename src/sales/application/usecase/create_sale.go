package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogEntity "pos/src/catalog/domain/entity"
	catalogPort "pos/src/catalog/domain/port"
	customerPort "pos/src/customers/domain/port"
	notificationPort "pos/src/notifications/domain/port"
	"pos/src/sales/application/request"
	"pos/src/sales/application/response"
	"pos/src/sales/domain/entity"
	"pos/src/sales/domain/port"
	"pos/src/shared/infrastructure/metrics"
)

// CreateSaleUseCase caso de uso para registrar una venta
// Las validaciones corren acá; la atomicidad (venta + descuento de
// existencias + asiento de crédito) vive en el repositorio
type CreateSaleUseCase struct {
	saleRepo      port.SaleRepository
	productRepo   catalogPort.ProductRepository
	inventoryRepo catalogPort.InventoryRepository
	customerRepo  customerPort.CustomerRepository
	notifier      notificationPort.LowStockNotifier
}

// NewCreateSaleUseCase crea una nueva instancia del caso de uso
func NewCreateSaleUseCase(
	saleRepo port.SaleRepository,
	productRepo catalogPort.ProductRepository,
	inventoryRepo catalogPort.InventoryRepository,
	customerRepo customerPort.CustomerRepository,
	notifier notificationPort.LowStockNotifier,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:      saleRepo,
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		customerRepo:  customerRepo,
		notifier:      notifier,
	}
}

// Execute registra una venta. Orden de validación:
//  1. sync_id repetido falla con DuplicateSubmission (protección de reenvíos
//     offline: existe exactamente una venta por sync_id)
//  2. CREDIT exige cliente y que el cliente exista
//  3. lookup batch de productos
//  4. cantidades válidas por unidad de pricing
//  5. chequeo de stock (el repositorio lo repite dentro de la transacción)
//  6. snapshot de precios y cálculo del total
func (uc *CreateSaleUseCase) Execute(ctx context.Context, req *request.CreateSaleRequest) (*response.SaleResponse, error) {
	if req.SyncID != nil && *req.SyncID != "" {
		existing, err := uc.saleRepo.FindBySyncID(ctx, *req.SyncID)
		if err != nil && !errors.Is(err, entity.ErrSaleNotFound) {
			return nil, fmt.Errorf("error checking sync_id: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: %s", entity.ErrDuplicateSyncID, *req.SyncID)
		}
	}

	paymentType := entity.PaymentType(req.PaymentType)
	if !paymentType.IsValid() {
		return nil, entity.ErrInvalidPaymentType
	}
	if len(req.Items) == 0 {
		return nil, entity.ErrEmptySale
	}

	if paymentType == entity.PaymentTypeCredit && req.CustomerID == nil {
		return nil, entity.ErrCustomerRequired
	}
	// El cliente, si viene, tiene que existir (también para ventas CASH con
	// cliente asociado)
	if req.CustomerID != nil {
		if _, err := uc.customerRepo.FindByID(ctx, *req.CustomerID); err != nil {
			return nil, err
		}
	}

	productIDs := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := uc.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("error looking up products: %w", err)
	}

	items := make([]*entity.SaleItem, 0, len(req.Items))
	required := make(map[uuid.UUID]decimal.Decimal)
	for _, itemReq := range req.Items {
		product, ok := products[itemReq.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", catalogEntity.ErrProductNotFound, itemReq.ProductID)
		}

		item, err := entity.NewSaleItem(product, itemReq.Quantity)
		if err != nil {
			return nil, fmt.Errorf("%w: product %s", err, product.Name)
		}
		items = append(items, item)
		required[product.ID] = required[product.ID].Add(itemReq.Quantity)
	}

	// Chequeo de stock previo para fallar temprano con un mensaje claro;
	// el guard definitivo es el UPDATE condicional dentro de la transacción
	inventories, err := uc.inventoryRepo.FindByProductIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("error looking up inventory: %w", err)
	}
	for productID, qty := range required {
		available := decimal.Zero
		if inv, ok := inventories[productID]; ok {
			available = inv.Quantity
		}
		if available.LessThan(qty) {
			metrics.SalesInsufficientStock.Inc()
			return nil, fmt.Errorf("%w: %s (requested %s, available %s)",
				catalogEntity.ErrInsufficientStock, products[productID].Name, qty.String(), available.String())
		}
	}

	sale, err := entity.NewSale(req.SyncID, req.CustomerID, paymentType, items)
	if err != nil {
		return nil, err
	}

	var charge *port.CreditCharge
	if paymentType == entity.PaymentTypeCredit {
		charge = &port.CreditCharge{
			CustomerID:  *req.CustomerID,
			Amount:      sale.TotalAmount,
			Description: fmt.Sprintf("Sale #%s", sale.ShortID()),
		}
	}

	// El índice único sobre sync_id cubre la carrera entre el chequeo de
	// arriba y el INSERT: el perdedor recibe ErrDuplicateSyncID
	stockLevels, err := uc.saleRepo.CreateSale(ctx, sale, charge)
	if err != nil {
		if errors.Is(err, catalogEntity.ErrInsufficientStock) {
			metrics.SalesInsufficientStock.Inc()
		}
		return nil, err
	}

	metrics.SalesCreated.Inc()
	uc.notifyLowStock(stockLevels)

	return &response.SaleResponse{Sale: sale}, nil
}

// notifyLowStock dispara la notificación de stock bajo para los productos
// que quedaron en zona de reposición tras la venta. Fire-and-forget.
func (uc *CreateSaleUseCase) notifyLowStock(stockLevels []*catalogEntity.StockLevel) {
	if uc.notifier == nil {
		return
	}

	lowStock := make([]notificationPort.LowStockProduct, 0)
	for _, level := range stockLevels {
		if level.IsLowStock() {
			lowStock = append(lowStock, notificationPort.LowStockProduct{
				ID:           level.Product.ID,
				Name:         level.Product.Name,
				Quantity:     level.Quantity,
				ReorderLevel: level.Product.ReorderLevel,
			})
		}
	}
	if len(lowStock) == 0 {
		return
	}

	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.notifier.NotifyLowStock(notifyCtx, lowStock); err != nil {
			log.Printf("⚠️  Failed to send low stock notification: %v", err)
		}
	}()
}
