package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	catalogEntity "pos/src/catalog/domain/entity"
	customerEntity "pos/src/customers/domain/entity"
	"pos/src/sales/domain/entity"
	"pos/src/sales/domain/port"
)

// SalePostgresRepository implementación PostgreSQL del repositorio de ventas
// Toda la sección atómica de crear/anular ventas vive acá: venta, líneas,
// existencias y ledger se confirman en una única transacción
type SalePostgresRepository struct {
	db *sql.DB
}

// NewSalePostgresRepository crea una nueva instancia del repositorio
func NewSalePostgresRepository(db *sql.DB) *SalePostgresRepository {
	return &SalePostgresRepository{db: db}
}

// CreateSale persiste la venta, descuenta existencias y asienta el cargo de
// crédito en una sola transacción. Retorna las existencias resultantes de
// los productos vendidos.
func (r *SalePostgresRepository) CreateSale(ctx context.Context, sale *entity.Sale, charge *port.CreditCharge) ([]*catalogEntity.StockLevel, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// El lock del cliente serializa los asientos de ledger concurrentes:
	// dos cargos simultáneos del mismo cliente encadenan balances correctos
	if charge != nil {
		var lockedID uuid.UUID
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM customers WHERE id = $1 FOR UPDATE`, charge.CustomerID,
		).Scan(&lockedID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, customerEntity.ErrCustomerNotFound
			}
			return nil, fmt.Errorf("error locking customer: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sales (id, sync_id, customer_id, payment_type, status, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, sale.ID, sale.SyncID, sale.CustomerID, sale.PaymentType, sale.Status, sale.TotalAmount, sale.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, entity.ErrDuplicateSyncID
		}
		return nil, fmt.Errorf("error saving sale: %w", err)
	}

	for _, item := range sale.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO sale_items (id, sale_id, product_id, product_name, quantity, unit_price, pricing_unit, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, item.ID, item.SaleID, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice, item.PricingUnit, item.Subtotal)
		if err != nil {
			return nil, fmt.Errorf("error saving sale item: %w", err)
		}
	}

	// Descuento condicional: el WHERE quantity >= pedido es el guard
	// definitivo contra existencias negativas bajo concurrencia
	required := make(map[uuid.UUID]decimal.Decimal)
	order := make([]uuid.UUID, 0, len(sale.Items))
	for _, item := range sale.Items {
		if _, ok := required[item.ProductID]; !ok {
			order = append(order, item.ProductID)
		}
		required[item.ProductID] = required[item.ProductID].Add(item.Quantity)
	}

	stockLevels := make([]*catalogEntity.StockLevel, 0, len(order))
	for _, productID := range order {
		qty := required[productID]

		var product catalogEntity.Product
		level := &catalogEntity.StockLevel{Product: &product}
		err := tx.QueryRowContext(ctx, `
			UPDATE inventory i
			SET quantity = i.quantity - $2, last_updated = NOW()
			FROM products p
			WHERE i.product_id = $1 AND p.id = i.product_id AND i.quantity >= $2
			RETURNING i.quantity, i.last_updated, p.id, p.name, p.reorder_level
		`, productID, qty).Scan(&level.Quantity, &level.LastUpdated, &product.ID, &product.Name, &product.ReorderLevel)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, fmt.Errorf("%w: product %s", catalogEntity.ErrInsufficientStock, productID)
			}
			return nil, fmt.Errorf("error updating inventory: %w", err)
		}
		stockLevels = append(stockLevels, level)
	}

	if charge != nil {
		if err := r.appendLedgerEntry(ctx, tx, charge.CustomerID, &sale.ID,
			customerEntity.EntryTypeCharge, charge.Amount, charge.Description); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing sale: %w", err)
	}

	return stockLevels, nil
}

// VoidSale marca la venta como VOIDED, repone existencias y asienta la
// reversa de crédito, todo en una sola transacción
func (r *SalePostgresRepository) VoidSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	var sale entity.Sale
	err = tx.QueryRowContext(ctx, `
		SELECT id, sync_id, customer_id, payment_type, status, total_amount, created_at, voided_at
		FROM sales
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(&sale.ID, &sale.SyncID, &sale.CustomerID, &sale.PaymentType,
		&sale.Status, &sale.TotalAmount, &sale.CreatedAt, &sale.VoidedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrSaleNotFound
		}
		return nil, fmt.Errorf("error loading sale: %w", err)
	}

	if sale.Status == entity.SaleStatusVoided {
		return nil, entity.ErrSaleAlreadyVoided
	}

	// El lock del cliente sólo hace falta si habrá asiento de reversa
	if sale.PaymentType == entity.PaymentTypeCredit && sale.CustomerID != nil {
		var lockedID uuid.UUID
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM customers WHERE id = $1 FOR UPDATE`, *sale.CustomerID,
		).Scan(&lockedID)
		if err != nil {
			return nil, fmt.Errorf("error locking customer: %w", err)
		}
	}

	now := time.Now()
	_, err = tx.ExecContext(ctx,
		`UPDATE sales SET status = $2, voided_at = $3 WHERE id = $1`,
		sale.ID, entity.SaleStatusVoided, now)
	if err != nil {
		return nil, fmt.Errorf("error voiding sale: %w", err)
	}
	sale.Status = entity.SaleStatusVoided
	sale.VoidedAt = &now

	items, err := r.loadItems(ctx, tx, sale.ID)
	if err != nil {
		return nil, err
	}
	sale.Items = items

	// Reposición de existencias: upsert por si el producto quedó sin fila
	// de inventario
	for _, item := range items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO inventory (id, product_id, quantity, last_updated)
			VALUES ($1, $2, $3, NOW())
			ON CONFLICT (product_id)
			DO UPDATE SET quantity = inventory.quantity + EXCLUDED.quantity, last_updated = NOW()
		`, uuid.New(), item.ProductID, item.Quantity)
		if err != nil {
			return nil, fmt.Errorf("error restoring inventory: %w", err)
		}
	}

	// Reversa del cargo de crédito. El balance puede quedar negativo si el
	// cliente ya había pagado: saldo a favor
	if sale.PaymentType == entity.PaymentTypeCredit && sale.CustomerID != nil {
		description := fmt.Sprintf("Voided sale #%s", sale.ShortID())
		if err := r.appendLedgerEntry(ctx, tx, *sale.CustomerID, &sale.ID,
			customerEntity.EntryTypePayment, sale.TotalAmount, description); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing void: %w", err)
	}

	return &sale, nil
}

// appendLedgerEntry lee el último balance del cliente dentro de la
// transacción y asienta el movimiento encadenado. El caller ya tiene el
// lock FOR UPDATE del cliente.
func (r *SalePostgresRepository) appendLedgerEntry(
	ctx context.Context,
	tx *sql.Tx,
	customerID uuid.UUID,
	saleID *uuid.UUID,
	entryType customerEntity.EntryType,
	amount decimal.Decimal,
	description string,
) error {
	var previousBalance decimal.Decimal
	err := tx.QueryRowContext(ctx, `
		SELECT balance FROM credit_ledger
		WHERE customer_id = $1
		ORDER BY seq DESC
		LIMIT 1
	`, customerID).Scan(&previousBalance)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("error reading balance: %w", err)
	}

	entry, err := customerEntity.NewLedgerEntry(customerID, saleID, entryType, amount, previousBalance, description)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO credit_ledger (id, customer_id, sale_id, type, amount, balance, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, entry.ID, entry.CustomerID, entry.SaleID, entry.Type, entry.Amount, entry.Balance, entry.Description, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("error appending ledger entry: %w", err)
	}

	return nil
}

// FindByID busca una venta con sus líneas
func (r *SalePostgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

// FindBySyncID busca una venta por el sync_id generado por el POS
func (r *SalePostgresRepository) FindBySyncID(ctx context.Context, syncID string) (*entity.Sale, error) {
	return r.findOne(ctx, `WHERE sync_id = $1`, syncID)
}

func (r *SalePostgresRepository) findOne(ctx context.Context, where string, arg interface{}) (*entity.Sale, error) {
	query := `
		SELECT id, sync_id, customer_id, payment_type, status, total_amount, created_at, voided_at
		FROM sales ` + where

	var sale entity.Sale
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&sale.ID, &sale.SyncID, &sale.CustomerID, &sale.PaymentType,
		&sale.Status, &sale.TotalAmount, &sale.CreatedAt, &sale.VoidedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrSaleNotFound
		}
		return nil, fmt.Errorf("error loading sale: %w", err)
	}

	items, err := r.loadItems(ctx, r.db, sale.ID)
	if err != nil {
		return nil, err
	}
	sale.Items = items

	return &sale, nil
}

// List lista ventas paginadas con filtros opcionales, más recientes primero
func (r *SalePostgresRepository) List(ctx context.Context, filter port.SaleFilter) ([]*entity.Sale, int, error) {
	where := `
		WHERE ($1::uuid IS NULL OR customer_id = $1)
		  AND ($2::text IS NULL OR payment_type = $2)
		  AND ($3::text IS NULL OR status = $3)
		  AND ($4::timestamptz IS NULL OR created_at >= $4)
		  AND ($5::timestamptz IS NULL OR created_at < $5)
	`

	var paymentType, status *string
	if filter.PaymentType != nil {
		s := string(*filter.PaymentType)
		paymentType = &s
	}
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}

	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sales `+where,
		filter.CustomerID, paymentType, status, filter.From, filter.To).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting sales: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, sync_id, customer_id, payment_type, status, total_amount, created_at, voided_at
		FROM sales `+where+`
		ORDER BY created_at DESC
		LIMIT $6 OFFSET $7
	`, filter.CustomerID, paymentType, status, filter.From, filter.To, filter.Limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing sales: %w", err)
	}
	defer rows.Close()

	sales := make([]*entity.Sale, 0)
	saleIDs := make([]uuid.UUID, 0)
	byID := make(map[uuid.UUID]*entity.Sale)
	for rows.Next() {
		var sale entity.Sale
		if err := rows.Scan(
			&sale.ID, &sale.SyncID, &sale.CustomerID, &sale.PaymentType,
			&sale.Status, &sale.TotalAmount, &sale.CreatedAt, &sale.VoidedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning sale: %w", err)
		}
		sale.Items = make([]*entity.SaleItem, 0)
		sales = append(sales, &sale)
		saleIDs = append(saleIDs, sale.ID)
		byID[sale.ID] = &sale
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(saleIDs) > 0 {
		itemRows, err := r.db.QueryContext(ctx, `
			SELECT id, sale_id, product_id, product_name, quantity, unit_price, pricing_unit, subtotal
			FROM sale_items
			WHERE sale_id = ANY($1)
		`, pq.Array(saleIDs))
		if err != nil {
			return nil, 0, fmt.Errorf("error loading sale items: %w", err)
		}
		defer itemRows.Close()

		for itemRows.Next() {
			var item entity.SaleItem
			if err := itemRows.Scan(
				&item.ID, &item.SaleID, &item.ProductID, &item.ProductName,
				&item.Quantity, &item.UnitPrice, &item.PricingUnit, &item.Subtotal,
			); err != nil {
				return nil, 0, fmt.Errorf("error scanning sale item: %w", err)
			}
			if sale, ok := byID[item.SaleID]; ok {
				sale.Items = append(sale.Items, &item)
			}
		}
		if err := itemRows.Err(); err != nil {
			return nil, 0, err
		}
	}

	return sales, total, nil
}

// DailySummary agrega las ventas del día calendario [date, date+24h)
func (r *SalePostgresRepository) DailySummary(ctx context.Context, date time.Time) (*entity.DailySummary, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	summary := &entity.DailySummary{Date: dayStart}
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE status = 'COMPLETED'),
			COALESCE(SUM(total_amount) FILTER (WHERE status = 'COMPLETED'), 0),
			COALESCE(SUM(total_amount) FILTER (WHERE status = 'COMPLETED' AND payment_type = 'CASH'), 0),
			COALESCE(SUM(total_amount) FILTER (WHERE status = 'COMPLETED' AND payment_type = 'CREDIT'), 0),
			COUNT(*) FILTER (WHERE status = 'VOIDED')
		FROM sales
		WHERE created_at >= $1 AND created_at < $2
	`, dayStart, dayEnd).Scan(
		&summary.SaleCount, &summary.TotalAmount, &summary.CashTotal,
		&summary.CreditTotal, &summary.VoidedCount,
	)
	if err != nil {
		return nil, fmt.Errorf("error aggregating daily sales: %w", err)
	}

	return summary, nil
}

// queryer abstrae *sql.DB y *sql.Tx para cargar líneas dentro o fuera de
// una transacción
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

func (r *SalePostgresRepository) loadItems(ctx context.Context, q queryer, saleID uuid.UUID) ([]*entity.SaleItem, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, sale_id, product_id, product_name, quantity, unit_price, pricing_unit, subtotal
		FROM sale_items
		WHERE sale_id = $1
	`, saleID)
	if err != nil {
		return nil, fmt.Errorf("error loading sale items: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.SaleItem, 0)
	for rows.Next() {
		var item entity.SaleItem
		if err := rows.Scan(
			&item.ID, &item.SaleID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.PricingUnit, &item.Subtotal,
		); err != nil {
			return nil, fmt.Errorf("error scanning sale item: %w", err)
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}
