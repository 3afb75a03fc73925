package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"pos/src/catalog/domain/entity"
)

// InventoryPostgresRepository implementa InventoryRepository usando PostgreSQL
type InventoryPostgresRepository struct {
	db *sql.DB
}

// NewInventoryPostgresRepository crea una nueva instancia del repositorio
func NewInventoryPostgresRepository(db *sql.DB) *InventoryPostgresRepository {
	return &InventoryPostgresRepository{db: db}
}

// FindByProductID busca la existencia de un producto
func (r *InventoryPostgresRepository) FindByProductID(ctx context.Context, productID uuid.UUID) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, quantity, last_updated
		FROM inventory
		WHERE product_id = $1
	`

	inventory := &entity.Inventory{}
	err := r.db.QueryRowContext(ctx, query, productID).Scan(
		&inventory.ID,
		&inventory.ProductID,
		&inventory.Quantity,
		&inventory.LastUpdated,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding inventory: %w", err)
	}

	return inventory, nil
}

// FindByProductIDs busca las existencias de varios productos en batch
func (r *InventoryPostgresRepository) FindByProductIDs(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]*entity.Inventory, error) {
	query := `
		SELECT id, product_id, quantity, last_updated
		FROM inventory
		WHERE product_id = ANY($1)
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(productIDs))
	if err != nil {
		return nil, fmt.Errorf("error finding inventories: %w", err)
	}
	defer rows.Close()

	inventories := make(map[uuid.UUID]*entity.Inventory, len(productIDs))
	for rows.Next() {
		inventory := &entity.Inventory{}
		err := rows.Scan(
			&inventory.ID,
			&inventory.ProductID,
			&inventory.Quantity,
			&inventory.LastUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning inventory: %w", err)
		}
		inventories[inventory.ProductID] = inventory
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventories: %w", err)
	}

	return inventories, nil
}

// SetQuantity fija la cantidad absoluta (upsert)
func (r *InventoryPostgresRepository) SetQuantity(ctx context.Context, productID uuid.UUID, quantity decimal.Decimal) (*entity.Inventory, error) {
	if quantity.LessThan(decimal.Zero) {
		return nil, entity.ErrNegativeInventory
	}

	query := `
		INSERT INTO inventory (id, product_id, quantity, last_updated)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, last_updated = NOW()
		RETURNING id, product_id, quantity, last_updated
	`

	return r.scanInventory(r.db.QueryRowContext(ctx, query, uuid.New(), productID, quantity))
}

// AddQuantity suma un delta a la existencia; el CHECK quantity >= 0 de la
// tabla es el guard autoritativo contra inventario negativo
func (r *InventoryPostgresRepository) AddQuantity(ctx context.Context, productID uuid.UUID, delta decimal.Decimal) (*entity.Inventory, error) {
	query := `
		UPDATE inventory
		SET quantity = quantity + $2, last_updated = NOW()
		WHERE product_id = $1 AND quantity + $2 >= 0
		RETURNING id, product_id, quantity, last_updated
	`

	inventory, err := r.scanInventory(r.db.QueryRowContext(ctx, query, productID, delta))
	if err == entity.ErrProductNotFound {
		// Puede no existir la fila, o el delta dejaría la existencia negativa
		if _, findErr := r.FindByProductID(ctx, productID); findErr == nil {
			return nil, entity.ErrNegativeInventory
		}
		// Fila inexistente: crearla si el delta es válido
		if delta.LessThan(decimal.Zero) {
			return nil, entity.ErrNegativeInventory
		}
		return r.SetQuantity(ctx, productID, delta)
	}
	return inventory, err
}

// ListStockLevels retorna producto + existencia para listados valorizados
func (r *InventoryPostgresRepository) ListStockLevels(ctx context.Context, search string) ([]*entity.StockLevel, error) {
	query := `
		SELECT p.id, p.barcode, p.name, p.price, p.cost, p.reorder_level,
		       p.is_weight_based, p.pricing_unit, p.created_at, p.updated_at,
		       COALESCE(i.quantity, 0), COALESCE(i.last_updated, p.created_at)
		FROM products p
		LEFT JOIN inventory i ON i.product_id = p.id
	`
	args := []interface{}{}
	if search != "" {
		query += " WHERE p.name ILIKE $1 OR p.barcode LIKE $1"
		args = append(args, "%"+search+"%")
	}
	query += " ORDER BY p.name ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing stock levels: %w", err)
	}
	defer rows.Close()

	var levels []*entity.StockLevel
	for rows.Next() {
		product := &entity.Product{}
		level := &entity.StockLevel{Product: product}
		err := rows.Scan(
			&product.ID,
			&product.Barcode,
			&product.Name,
			&product.Price,
			&product.Cost,
			&product.ReorderLevel,
			&product.IsWeightBased,
			&product.PricingUnit,
			&product.CreatedAt,
			&product.UpdatedAt,
			&level.Quantity,
			&level.LastUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning stock level: %w", err)
		}
		levels = append(levels, level)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock levels: %w", err)
	}

	return levels, nil
}

func (r *InventoryPostgresRepository) scanInventory(row *sql.Row) (*entity.Inventory, error) {
	inventory := &entity.Inventory{}
	err := row.Scan(
		&inventory.ID,
		&inventory.ProductID,
		&inventory.Quantity,
		&inventory.LastUpdated,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error scanning inventory: %w", err)
	}
	return inventory, nil
}
