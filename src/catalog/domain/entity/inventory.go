package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Inventory representa la existencia de un producto (relación 1:1)
// quantity nunca puede ser negativa; toda mutación refresca LastUpdated
type Inventory struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	LastUpdated time.Time       `json:"last_updated"`
}

// StockLevel combina producto y existencia para listados y chequeos de
// stock bajo
type StockLevel struct {
	Product     *Product        `json:"product"`
	Quantity    decimal.Decimal `json:"quantity"`
	LastUpdated time.Time       `json:"last_updated"`
}

// IsLowStock indica si la existencia está en o por debajo del nivel de
// reposición del producto
func (s *StockLevel) IsLowStock() bool {
	return s.Quantity.LessThanOrEqual(s.Product.ReorderLevel)
}

// Value retorna el valor de la existencia a costo
func (s *StockLevel) Value() decimal.Decimal {
	return s.Quantity.Mul(s.Product.Cost)
}

// RetailValue retorna el valor de la existencia a precio de venta
func (s *StockLevel) RetailValue() decimal.Decimal {
	return s.Quantity.Mul(s.Product.Price)
}
