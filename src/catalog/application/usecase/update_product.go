package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pos/src/catalog/application/request"
	"pos/src/catalog/domain/entity"
	"pos/src/catalog/domain/port"
)

// UpdateProductUseCase caso de uso para edición de producto
// El barcode no se edita: es inmutable para preservar la trazabilidad de
// las ventas históricas
type UpdateProductUseCase struct {
	productRepo port.ProductRepository
}

// NewUpdateProductUseCase crea una nueva instancia del caso de uso
func NewUpdateProductUseCase(productRepo port.ProductRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{productRepo: productRepo}
}

// Execute aplica los campos presentes del request sobre el producto
func (uc *UpdateProductUseCase) Execute(ctx context.Context, id uuid.UUID, req *request.UpdateProductRequest) (*entity.Product, error) {
	product, err := uc.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, entity.ErrProductNameRequired
		}
		product.Name = *req.Name
	}
	if req.Price != nil {
		if req.Price.LessThan(decimal.Zero) {
			return nil, entity.ErrInvalidPrice
		}
		product.Price = *req.Price
	}
	if req.Cost != nil {
		if req.Cost.LessThan(decimal.Zero) {
			return nil, entity.ErrInvalidCost
		}
		product.Cost = *req.Cost
	}
	if req.ReorderLevel != nil && !req.ReorderLevel.LessThan(decimal.Zero) {
		product.ReorderLevel = *req.ReorderLevel
	}
	if req.IsWeightBased != nil {
		product.IsWeightBased = *req.IsWeightBased
	}
	if req.PricingUnit != nil {
		unit := entity.PricingUnit(*req.PricingUnit)
		if !unit.IsValid() {
			return nil, entity.ErrInvalidPricingUnit
		}
		product.PricingUnit = unit
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("error updating product: %w", err)
	}

	return product, nil
}
