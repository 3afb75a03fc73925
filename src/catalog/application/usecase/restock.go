package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pos/src/catalog/application/request"
	"pos/src/catalog/application/response"
	"pos/src/catalog/domain/entity"
	"pos/src/catalog/domain/port"
)

// RestockUseCase caso de uso para reposición de mercadería
type RestockUseCase struct {
	productRepo   port.ProductRepository
	inventoryRepo port.InventoryRepository
}

// NewRestockUseCase crea una nueva instancia del caso de uso
func NewRestockUseCase(productRepo port.ProductRepository, inventoryRepo port.InventoryRepository) *RestockUseCase {
	return &RestockUseCase{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
	}
}

// Execute suma la cantidad repuesta a la existencia actual
func (uc *RestockUseCase) Execute(ctx context.Context, productID uuid.UUID, req *request.RestockRequest) (*response.AdjustInventoryResponse, error) {
	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, entity.ErrInvalidQuantity
	}

	product, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	previous := decimal.Zero
	if inv, err := uc.inventoryRepo.FindByProductID(ctx, productID); err == nil && inv != nil {
		previous = inv.Quantity
	}

	inventory, err := uc.inventoryRepo.AddQuantity(ctx, productID, req.Quantity)
	if err != nil {
		return nil, err
	}

	return &response.AdjustInventoryResponse{
		ProductID:        product.ID,
		Name:             product.Name,
		PreviousQuantity: previous,
		Adjustment:       req.Quantity,
		NewQuantity:      inventory.Quantity,
		Reason:           req.Notes,
		IsLowStock:       inventory.Quantity.LessThanOrEqual(product.ReorderLevel),
		LastUpdated:      inventory.LastUpdated,
	}, nil
}
