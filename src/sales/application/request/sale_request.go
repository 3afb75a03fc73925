package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItemRequest línea pedida de una venta
// quantity viene en piezas para productos por pieza y en kg para productos
// por peso, sin importar la unidad de pricing
type SaleItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
}

// CreateSaleRequest request de alta de venta
// sync_id lo genera el POS para reenvíos offline idempotentes
type CreateSaleRequest struct {
	SyncID      *string           `json:"sync_id"`
	CustomerID  *uuid.UUID        `json:"customer_id"`
	PaymentType string            `json:"payment_type" binding:"required"`
	Items       []SaleItemRequest `json:"items" binding:"required"`
}
