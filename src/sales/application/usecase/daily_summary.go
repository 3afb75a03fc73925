package usecase

import (
	"context"
	"fmt"
	"time"

	"pos/src/sales/application/response"
	"pos/src/sales/domain/port"
)

// DailySummaryUseCase caso de uso para el resumen de ventas del día
type DailySummaryUseCase struct {
	saleRepo port.SaleRepository
}

// NewDailySummaryUseCase crea una nueva instancia del caso de uso
func NewDailySummaryUseCase(saleRepo port.SaleRepository) *DailySummaryUseCase {
	return &DailySummaryUseCase{saleRepo: saleRepo}
}

// Execute agrega las ventas del día calendario de date
func (uc *DailySummaryUseCase) Execute(ctx context.Context, date time.Time) (*response.DailySummaryResponse, error) {
	summary, err := uc.saleRepo.DailySummary(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("error building daily summary: %w", err)
	}
	return response.NewDailySummaryResponse(summary), nil
}
