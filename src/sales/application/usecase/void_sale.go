package usecase

import (
	"context"

	"github.com/google/uuid"

	"pos/src/sales/application/response"
	"pos/src/sales/domain/port"
	"pos/src/shared/infrastructure/metrics"
)

// VoidSaleUseCase caso de uso para anular una venta
// La anulación repone existencias y, si la venta fue a crédito, asienta la
// reversa en el ledger del cliente. Todo dentro de la transacción del
// repositorio.
type VoidSaleUseCase struct {
	saleRepo port.SaleRepository
}

// NewVoidSaleUseCase crea una nueva instancia del caso de uso
func NewVoidSaleUseCase(saleRepo port.SaleRepository) *VoidSaleUseCase {
	return &VoidSaleUseCase{saleRepo: saleRepo}
}

// Execute anula la venta. Una venta ya anulada no puede anularse de nuevo.
func (uc *VoidSaleUseCase) Execute(ctx context.Context, id uuid.UUID) (*response.SaleResponse, error) {
	sale, err := uc.saleRepo.VoidSale(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.SalesVoided.Inc()

	return &response.SaleResponse{Sale: sale}, nil
}
