package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LowStockProduct datos mínimos de un producto con stock bajo
type LowStockProduct struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
}

// LowStockNotifier notifica productos con stock bajo. Es siempre
// fire-and-forget: el caller loguea el error y jamás lo propaga ni hace
// fallar la operación que lo disparó.
type LowStockNotifier interface {
	NotifyLowStock(ctx context.Context, products []LowStockProduct) error
}
