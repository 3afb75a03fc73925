package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pos/src/catalog/domain/entity"
)

// InventoryRepository puerto de persistencia de existencias
type InventoryRepository interface {
	FindByProductID(ctx context.Context, productID uuid.UUID) (*entity.Inventory, error)
	FindByProductIDs(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]*entity.Inventory, error)
	// SetQuantity fija la cantidad absoluta (upsert); falla con
	// ErrNegativeInventory si quantity < 0
	SetQuantity(ctx context.Context, productID uuid.UUID, quantity decimal.Decimal) (*entity.Inventory, error)
	// AddQuantity suma un delta (puede ser negativo); el guard de
	// no-negatividad vive en el SQL, no en la aplicación
	AddQuantity(ctx context.Context, productID uuid.UUID, delta decimal.Decimal) (*entity.Inventory, error)
	// ListStockLevels retorna producto + existencia para listados y stock bajo
	ListStockLevels(ctx context.Context, search string) ([]*entity.StockLevel, error)
}
