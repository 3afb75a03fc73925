package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pos/src/catalog/application/request"
	"pos/src/catalog/application/response"
	"pos/src/catalog/domain/entity"
	catalogPort "pos/src/catalog/domain/port"
	notificationPort "pos/src/notifications/domain/port"
)

// AdjustInventoryUseCase caso de uso para ajustes manuales de existencias
// (conteo físico, mermas, correcciones)
type AdjustInventoryUseCase struct {
	productRepo   catalogPort.ProductRepository
	inventoryRepo catalogPort.InventoryRepository
	notifier      notificationPort.LowStockNotifier
}

// NewAdjustInventoryUseCase crea una nueva instancia del caso de uso
func NewAdjustInventoryUseCase(
	productRepo catalogPort.ProductRepository,
	inventoryRepo catalogPort.InventoryRepository,
	notifier notificationPort.LowStockNotifier,
) *AdjustInventoryUseCase {
	return &AdjustInventoryUseCase{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		notifier:      notifier,
	}
}

// Execute aplica el ajuste (absoluto o relativo) y dispara la notificación
// de stock bajo si la existencia bajó hasta el nivel de reposición
func (uc *AdjustInventoryUseCase) Execute(ctx context.Context, productID uuid.UUID, req *request.AdjustInventoryRequest) (*response.AdjustInventoryResponse, error) {
	product, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	previous := decimal.Zero
	if inv, err := uc.inventoryRepo.FindByProductID(ctx, productID); err == nil && inv != nil {
		previous = inv.Quantity
	}

	var inventory *entity.Inventory
	if req.IsAbsolute {
		if req.Quantity.LessThan(decimal.Zero) {
			return nil, entity.ErrNegativeInventory
		}
		inventory, err = uc.inventoryRepo.SetQuantity(ctx, productID, req.Quantity)
	} else {
		inventory, err = uc.inventoryRepo.AddQuantity(ctx, productID, req.Quantity)
	}
	if err != nil {
		return nil, err
	}

	isLowStock := inventory.Quantity.LessThanOrEqual(product.ReorderLevel)

	// Notificar sólo si el ajuste hizo BAJAR la existencia hasta zona de
	// reposición; fire-and-forget, el error jamás afecta el ajuste
	if isLowStock && inventory.Quantity.LessThan(previous) && uc.notifier != nil {
		products := []notificationPort.LowStockProduct{{
			ID:           product.ID,
			Name:         product.Name,
			Quantity:     inventory.Quantity,
			ReorderLevel: product.ReorderLevel,
		}}
		go func() {
			notifyCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := uc.notifier.NotifyLowStock(notifyCtx, products); err != nil {
				log.Printf("⚠️  Failed to send low stock notification: %v", err)
			}
		}()
	}

	return &response.AdjustInventoryResponse{
		ProductID:        product.ID,
		Name:             product.Name,
		PreviousQuantity: previous,
		Adjustment:       inventory.Quantity.Sub(previous),
		NewQuantity:      inventory.Quantity,
		Reason:           req.Reason,
		IsLowStock:       isLowStock,
		LastUpdated:      inventory.LastUpdated,
	}, nil
}
