package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogEntity "pos/src/catalog/domain/entity"
)

// SaleItem línea de una venta. Congela nombre, precio unitario y unidad de
// pricing del producto al momento de la venta: ediciones posteriores del
// catálogo no alteran ventas históricas.
type SaleItem struct {
	ID          uuid.UUID                 `json:"id"`
	SaleID      uuid.UUID                 `json:"sale_id"`
	ProductID   uuid.UUID                 `json:"product_id"`
	ProductName string                    `json:"product_name"`
	Quantity    decimal.Decimal           `json:"quantity"`
	UnitPrice   decimal.Decimal           `json:"unit_price"`
	PricingUnit catalogEntity.PricingUnit `json:"pricing_unit"`
	Subtotal    decimal.Decimal           `json:"subtotal"`
}

// NewSaleItem crea una línea validando la cantidad contra la unidad de
// pricing y calculando el subtotal con el precio vigente del producto
func NewSaleItem(product *catalogEntity.Product, quantity decimal.Decimal) (*SaleItem, error) {
	if err := catalogEntity.ValidateQuantity(product.PricingUnit, quantity); err != nil {
		return nil, err
	}

	return &SaleItem{
		ID:          uuid.New(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		UnitPrice:   product.Price,
		PricingUnit: product.PricingUnit,
		Subtotal:    catalogEntity.Subtotal(product.Price, product.PricingUnit, quantity),
	}, nil
}
