package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	customerEntity "pos/src/customers/domain/entity"
	customerPort "pos/src/customers/domain/port"
	"pos/src/sales/domain/port"
)

// GetReceiptUseCase caso de uso para generar el ticket PDF de una venta
type GetReceiptUseCase struct {
	saleRepo     port.SaleRepository
	customerRepo customerPort.CustomerRepository
	generator    port.ReceiptGenerator
}

// NewGetReceiptUseCase crea una nueva instancia del caso de uso
func NewGetReceiptUseCase(
	saleRepo port.SaleRepository,
	customerRepo customerPort.CustomerRepository,
	generator port.ReceiptGenerator,
) *GetReceiptUseCase {
	return &GetReceiptUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		generator:    generator,
	}
}

// Execute genera el ticket de la venta. Si la venta tiene cliente asociado
// el ticket incluye sus datos.
func (uc *GetReceiptUseCase) Execute(ctx context.Context, saleID uuid.UUID) ([]byte, error) {
	sale, err := uc.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	var customer *customerEntity.Customer
	if sale.CustomerID != nil {
		customer, err = uc.customerRepo.FindByID(ctx, *sale.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("error loading customer: %w", err)
		}
	}

	pdf, err := uc.generator.Generate(sale, customer)
	if err != nil {
		return nil, fmt.Errorf("error generating receipt: %w", err)
	}

	return pdf, nil
}
