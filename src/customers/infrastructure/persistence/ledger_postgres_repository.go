package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pos/src/customers/domain/entity"
)

// LedgerPostgresRepository implementación PostgreSQL del ledger de crédito
// Tabla append-only: sólo INSERT y SELECT
type LedgerPostgresRepository struct {
	db *sql.DB
}

// NewLedgerPostgresRepository crea una nueva instancia del repositorio
func NewLedgerPostgresRepository(db *sql.DB) *LedgerPostgresRepository {
	return &LedgerPostgresRepository{db: db}
}

// CurrentBalance lee el balance del asiento más reciente del cliente.
// Usa el índice (customer_id, seq DESC): una sola fila, sin sumar el
// historial. seq es la secuencia de inserción y desempata asientos con el
// mismo created_at
func (r *LedgerPostgresRepository) CurrentBalance(ctx context.Context, customerID uuid.UUID) (decimal.Decimal, error) {
	query := `
		SELECT balance
		FROM credit_ledger
		WHERE customer_id = $1
		ORDER BY seq DESC
		LIMIT 1
	`

	var balance decimal.Decimal
	err := r.db.QueryRowContext(ctx, query, customerID).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("error reading balance: %w", err)
	}

	return balance, nil
}

// Append inserta un asiento nuevo
func (r *LedgerPostgresRepository) Append(ctx context.Context, entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO credit_ledger (id, customer_id, sale_id, type, amount, balance, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.CustomerID,
		entry.SaleID,
		entry.Type,
		entry.Amount,
		entry.Balance,
		entry.Description,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error appending ledger entry: %w", err)
	}

	return nil
}

// AppendPayment registra un pago manual en una única transacción. El lock
// FOR UPDATE sobre la fila del cliente serializa este camino con los cargos
// y reversas de venta: dos pagos concurrentes nunca leen el mismo balance
func (r *LedgerPostgresRepository) AppendPayment(ctx context.Context, customerID uuid.UUID, amount decimal.Decimal, description string) (*entity.LedgerEntry, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	var lockedID uuid.UUID
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM customers WHERE id = $1 FOR UPDATE`, customerID,
	).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("error locking customer: %w", err)
	}

	var balance decimal.Decimal
	err = tx.QueryRowContext(ctx, `
		SELECT balance
		FROM credit_ledger
		WHERE customer_id = $1
		ORDER BY seq DESC
		LIMIT 1
	`, customerID).Scan(&balance)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("error reading balance: %w", err)
	}

	if balance.LessThanOrEqual(decimal.Zero) {
		return nil, entity.ErrNoOutstandingBalance
	}
	if amount.GreaterThan(balance) {
		return nil, fmt.Errorf("%w: payment amount ($%s) exceeds outstanding balance ($%s)",
			entity.ErrPaymentExceedsDebt, amount.String(), balance.String())
	}

	entry, err := entity.NewLedgerEntry(customerID, nil, entity.EntryTypePayment, amount, balance, description)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO credit_ledger (id, customer_id, sale_id, type, amount, balance, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, entry.ID, entry.CustomerID, entry.SaleID, entry.Type, entry.Amount, entry.Balance, entry.Description, entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error appending ledger entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing payment: %w", err)
	}

	return entry, nil
}

// ListByCustomer lista los asientos de un cliente paginados, más recientes
// primero, junto con el total de asientos
func (r *LedgerPostgresRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, page, limit int) ([]*entity.LedgerEntry, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM credit_ledger WHERE customer_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, customerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting ledger entries: %w", err)
	}

	query := `
		SELECT id, customer_id, sale_id, type, amount, balance, description, created_at
		FROM credit_ledger
		WHERE customer_id = $1
		ORDER BY seq DESC
		LIMIT $2 OFFSET $3
	`

	offset := (page - 1) * limit
	rows, err := r.db.QueryContext(ctx, query, customerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing ledger entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*entity.LedgerEntry, 0)
	for rows.Next() {
		var entry entity.LedgerEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.CustomerID,
			&entry.SaleID,
			&entry.Type,
			&entry.Amount,
			&entry.Balance,
			&entry.Description,
			&entry.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning ledger entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	return entries, total, rows.Err()
}
