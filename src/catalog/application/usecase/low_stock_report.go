package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"pos/src/catalog/application/response"
	"pos/src/catalog/domain/port"
)

var one = decimal.NewFromInt(1)

// LowStockReportUseCase caso de uso para el reporte de productos a reponer
type LowStockReportUseCase struct {
	inventoryRepo port.InventoryRepository
}

// NewLowStockReportUseCase crea una nueva instancia del caso de uso
func NewLowStockReportUseCase(inventoryRepo port.InventoryRepository) *LowStockReportUseCase {
	return &LowStockReportUseCase{inventoryRepo: inventoryRepo}
}

// Execute lista productos en o bajo su nivel de reposición, los más
// críticos primero, con la cantidad sugerida y su costo estimado
func (uc *LowStockReportUseCase) Execute(ctx context.Context) (*response.LowStockReportResponse, error) {
	levels, err := uc.inventoryRepo.ListStockLevels(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("error listing stock levels: %w", err)
	}

	items := make([]response.LowStockItemResponse, 0)
	totalCost := decimal.Zero

	for _, level := range levels {
		if !level.IsLowStock() {
			continue
		}

		// Déficit: lo que falta para quedar por encima del nivel de reposición
		deficit := level.Product.ReorderLevel.Sub(level.Quantity).Add(one)
		if deficit.LessThan(decimal.Zero) {
			deficit = decimal.Zero
		}
		suggested := deficit
		if suggested.LessThan(level.Product.ReorderLevel) {
			suggested = level.Product.ReorderLevel
		}
		estimated := suggested.Mul(level.Product.Cost)
		totalCost = totalCost.Add(estimated)

		items = append(items, response.LowStockItemResponse{
			ProductID:        level.Product.ID,
			Barcode:          level.Product.Barcode,
			Name:             level.Product.Name,
			CurrentQuantity:  level.Quantity,
			ReorderLevel:     level.Product.ReorderLevel,
			Deficit:          deficit,
			SuggestedReorder: suggested,
			EstimatedCost:    estimated.Round(2),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CurrentQuantity.LessThan(items[j].CurrentQuantity)
	})

	return &response.LowStockReportResponse{
		Count:                     len(items),
		TotalEstimatedRestockCost: totalCost.Round(2),
		Items:                     items,
	}, nil
}
