package usecase

import (
	"context"
	"fmt"

	"pos/src/sales/application/response"
	"pos/src/sales/domain/port"
)

// ListSalesUseCase caso de uso para el listado de ventas con filtros
type ListSalesUseCase struct {
	saleRepo port.SaleRepository
}

// NewListSalesUseCase crea una nueva instancia del caso de uso
func NewListSalesUseCase(saleRepo port.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// Execute lista ventas paginadas, más recientes primero
func (uc *ListSalesUseCase) Execute(ctx context.Context, filter port.SaleFilter) (*response.SaleListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 50
	}

	sales, total, err := uc.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing sales: %w", err)
	}

	return &response.SaleListResponse{
		Items:      sales,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}
