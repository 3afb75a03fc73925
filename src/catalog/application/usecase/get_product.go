package usecase

import (
	"context"

	"github.com/google/uuid"

	"pos/src/catalog/domain/entity"
	"pos/src/catalog/domain/port"
)

// GetProductUseCase caso de uso para consultar un producto por id o barcode
type GetProductUseCase struct {
	productRepo port.ProductRepository
}

// NewGetProductUseCase crea una nueva instancia del caso de uso
func NewGetProductUseCase(productRepo port.ProductRepository) *GetProductUseCase {
	return &GetProductUseCase{productRepo: productRepo}
}

// ByID busca un producto por su id
func (uc *GetProductUseCase) ByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return uc.productRepo.FindByID(ctx, id)
}

// ByBarcode busca un producto por su barcode (escaneo en el POS)
func (uc *GetProductUseCase) ByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	return uc.productRepo.FindByBarcode(ctx, barcode)
}

// List lista productos con búsqueda y paginación
func (uc *GetProductUseCase) List(ctx context.Context, search string, page, limit int) ([]*entity.Product, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}
	return uc.productRepo.List(ctx, search, page, limit)
}
