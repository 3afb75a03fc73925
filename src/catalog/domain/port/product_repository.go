package port

import (
	"context"

	"github.com/google/uuid"

	"pos/src/catalog/domain/entity"
)

// ProductRepository puerto de persistencia del catálogo de productos
type ProductRepository interface {
	Save(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	// FindByIDs hace el lookup batch para el motor de ventas; retorna sólo
	// los productos existentes (el caller compara contra los ids pedidos)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error)
	List(ctx context.Context, search string, page, limit int) ([]*entity.Product, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
