package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"pos/src/catalog/application/response"
	"pos/src/catalog/domain/port"
)

// ListInventoryUseCase caso de uso para el listado de inventario valorizado
type ListInventoryUseCase struct {
	inventoryRepo port.InventoryRepository
}

// NewListInventoryUseCase crea una nueva instancia del caso de uso
func NewListInventoryUseCase(inventoryRepo port.InventoryRepository) *ListInventoryUseCase {
	return &ListInventoryUseCase{inventoryRepo: inventoryRepo}
}

// Execute lista existencias con valores a costo y venta; los totales se
// redondean a 2 decimales (frontera de reporte)
func (uc *ListInventoryUseCase) Execute(ctx context.Context, search string, lowStockOnly bool) (*response.InventoryListResponse, error) {
	levels, err := uc.inventoryRepo.ListStockLevels(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("error listing stock levels: %w", err)
	}

	items := make([]response.InventoryItemResponse, 0, len(levels))
	totalValue := decimal.Zero
	totalRetail := decimal.Zero
	lowStockCount := 0

	for _, level := range levels {
		isLow := level.IsLowStock()
		if isLow {
			lowStockCount++
		}
		if lowStockOnly && !isLow {
			continue
		}

		totalValue = totalValue.Add(level.Value())
		totalRetail = totalRetail.Add(level.RetailValue())

		lastUpdated := level.LastUpdated
		items = append(items, response.InventoryItemResponse{
			ProductID:    level.Product.ID,
			Barcode:      level.Product.Barcode,
			Name:         level.Product.Name,
			Price:        level.Product.Price,
			Cost:         level.Product.Cost,
			ReorderLevel: level.Product.ReorderLevel,
			Quantity:     level.Quantity,
			Value:        level.Value().Round(2),
			RetailValue:  level.RetailValue().Round(2),
			IsLowStock:   isLow,
			LastUpdated:  &lastUpdated,
		})
	}

	return &response.InventoryListResponse{
		Items:            items,
		TotalCount:       len(items),
		TotalValue:       totalValue.Round(2),
		TotalRetailValue: totalRetail.Round(2),
		PotentialProfit:  totalRetail.Sub(totalValue).Round(2),
		LowStockCount:    lowStockCount,
	}, nil
}
