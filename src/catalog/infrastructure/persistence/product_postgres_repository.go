package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"pos/src/catalog/domain/entity"
)

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL
type ProductPostgresRepository struct {
	db *sql.DB
}

// NewProductPostgresRepository crea una nueva instancia del repositorio
func NewProductPostgresRepository(db *sql.DB) *ProductPostgresRepository {
	return &ProductPostgresRepository{db: db}
}

// Save persiste un producto nuevo
func (r *ProductPostgresRepository) Save(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (
			id, barcode, name, price, cost, reorder_level, is_weight_based, pricing_unit, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
	`

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Barcode,
		product.Name,
		product.Price,
		product.Cost,
		product.ReorderLevel,
		product.IsWeightBased,
		product.PricingUnit,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		// 23505 = unique_violation (barcode repetido bajo carrera)
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrBarcodeAlreadyUsed
		}
		return fmt.Errorf("error saving product: %w", err)
	}

	return nil
}

// Update persiste la edición de un producto (el barcode no se toca)
func (r *ProductPostgresRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, price = $3, cost = $4, reorder_level = $5,
		    is_weight_based = $6, pricing_unit = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Price,
		product.Cost,
		product.ReorderLevel,
		product.IsWeightBased,
		product.PricingUnit,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error updating product: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrProductNotFound
	}

	return nil
}

// FindByID busca un producto por su id
func (r *ProductPostgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `
		SELECT id, barcode, name, price, cost, reorder_level, is_weight_based, pricing_unit, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	return r.scanProduct(r.db.QueryRowContext(ctx, query, id))
}

// FindByBarcode busca un producto por su barcode (escaneo POS)
func (r *ProductPostgresRepository) FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	query := `
		SELECT id, barcode, name, price, cost, reorder_level, is_weight_based, pricing_unit, created_at, updated_at
		FROM products
		WHERE barcode = $1
	`

	return r.scanProduct(r.db.QueryRowContext(ctx, query, barcode))
}

// FindByIDs hace el lookup batch de productos para el motor de ventas
func (r *ProductPostgresRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error) {
	query := `
		SELECT id, barcode, name, price, cost, reorder_level, is_weight_based, pricing_unit, created_at, updated_at
		FROM products
		WHERE id = ANY($1)
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("error finding products: %w", err)
	}
	defer rows.Close()

	products := make(map[uuid.UUID]*entity.Product, len(ids))
	for rows.Next() {
		product := &entity.Product{}
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
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products[product.ID] = product
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// List lista productos con búsqueda por nombre o barcode y paginación
func (r *ProductPostgresRepository) List(ctx context.Context, search string, page, limit int) ([]*entity.Product, int, error) {
	where := ""
	args := []interface{}{}
	if search != "" {
		where = "WHERE name ILIKE $1 OR barcode LIKE $1"
		args = append(args, "%"+search+"%")
	}

	var totalCount int
	queryCount := "SELECT COUNT(*) FROM products " + where
	if err := r.db.QueryRowContext(ctx, queryCount, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("error counting products: %w", err)
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf(`
		SELECT id, barcode, name, price, cost, reorder_level, is_weight_based, pricing_unit, created_at, updated_at
		FROM products
		%s
		ORDER BY name ASC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product := &entity.Product{}
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
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating products: %w", err)
	}

	return products, totalCount, nil
}

// Delete elimina un producto sin ventas asociadas
func (r *ProductPostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Primero la fila de inventario (FK 1:1)
	if _, err := r.db.ExecContext(ctx, `DELETE FROM inventory WHERE product_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting inventory: %w", err)
	}

	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		// 23503 = foreign_key_violation (el producto tiene sale_items)
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return entity.ErrProductHasSales
		}
		return fmt.Errorf("error deleting product: %w", err)
	}

	return nil
}

func (r *ProductPostgresRepository) scanProduct(row *sql.Row) (*entity.Product, error) {
	product := &entity.Product{}
	err := row.Scan(
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
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding product: %w", err)
	}
	return product, nil
}
