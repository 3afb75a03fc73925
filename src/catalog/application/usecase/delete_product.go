package usecase

import (
	"context"

	"github.com/google/uuid"

	"pos/src/catalog/domain/port"
)

// DeleteProductUseCase caso de uso para baja de producto
// El repositorio rechaza la baja si el producto tiene ventas asociadas
// (integridad de auditoría)
type DeleteProductUseCase struct {
	productRepo port.ProductRepository
}

// NewDeleteProductUseCase crea una nueva instancia del caso de uso
func NewDeleteProductUseCase(productRepo port.ProductRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{productRepo: productRepo}
}

// Execute verifica existencia y elimina el producto
func (uc *DeleteProductUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return uc.productRepo.Delete(ctx, id)
}
