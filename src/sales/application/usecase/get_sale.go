package usecase

import (
	"context"

	"github.com/google/uuid"

	"pos/src/sales/application/response"
	"pos/src/sales/domain/port"
)

// GetSaleUseCase caso de uso para consulta de ventas individuales
type GetSaleUseCase struct {
	saleRepo port.SaleRepository
}

// NewGetSaleUseCase crea una nueva instancia del caso de uso
func NewGetSaleUseCase(saleRepo port.SaleRepository) *GetSaleUseCase {
	return &GetSaleUseCase{saleRepo: saleRepo}
}

// Execute busca una venta por id con sus líneas
func (uc *GetSaleUseCase) Execute(ctx context.Context, id uuid.UUID) (*response.SaleResponse, error) {
	sale, err := uc.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &response.SaleResponse{Sale: sale}, nil
}
