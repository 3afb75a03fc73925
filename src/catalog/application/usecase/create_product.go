package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"pos/src/catalog/application/request"
	"pos/src/catalog/domain/entity"
	"pos/src/catalog/domain/port"
)

// CreateProductUseCase caso de uso para alta de producto con existencia inicial en 0
type CreateProductUseCase struct {
	productRepo   port.ProductRepository
	inventoryRepo port.InventoryRepository
}

// NewCreateProductUseCase crea una nueva instancia del caso de uso
func NewCreateProductUseCase(productRepo port.ProductRepository, inventoryRepo port.InventoryRepository) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
	}
}

// Execute valida el barcode único y persiste el producto
func (uc *CreateProductUseCase) Execute(ctx context.Context, req *request.CreateProductRequest) (*entity.Product, error) {
	existing, err := uc.productRepo.FindByBarcode(ctx, req.Barcode)
	if err != nil && !errors.Is(err, entity.ErrProductNotFound) {
		return nil, fmt.Errorf("error checking barcode: %w", err)
	}
	if existing != nil {
		return nil, entity.ErrBarcodeAlreadyUsed
	}

	product, err := entity.NewProduct(
		req.Barcode,
		req.Name,
		req.Price,
		req.Cost,
		req.ReorderLevel,
		req.IsWeightBased,
		entity.PricingUnit(req.PricingUnit),
	)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("error saving product: %w", err)
	}

	// Existencia inicial en 0 para que el producto aparezca en inventario
	if _, err := uc.inventoryRepo.SetQuantity(ctx, product.ID, decimal.Zero); err != nil {
		return nil, fmt.Errorf("error initializing inventory: %w", err)
	}

	return product, nil
}
