package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"pos/src/customers/domain/entity"
)

// CustomerPostgresRepository implementación PostgreSQL del repositorio de clientes
type CustomerPostgresRepository struct {
	db *sql.DB
}

// NewCustomerPostgresRepository crea una nueva instancia del repositorio
func NewCustomerPostgresRepository(db *sql.DB) *CustomerPostgresRepository {
	return &CustomerPostgresRepository{db: db}
}

// Save persiste un cliente nuevo
func (r *CustomerPostgresRepository) Save(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, phone, email, address, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		customer.ID,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.Notes,
		customer.CreatedAt,
		customer.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrPhoneAlreadyUsed
		}
		return fmt.Errorf("error saving customer: %w", err)
	}

	return nil
}

// Update actualiza los datos de un cliente existente
func (r *CustomerPostgresRepository) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, phone = $3, email = $4, address = $5, notes = $6, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		customer.ID,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.Notes,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrPhoneAlreadyUsed
		}
		return fmt.Errorf("error updating customer: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking affected rows: %w", err)
	}
	if rows == 0 {
		return entity.ErrCustomerNotFound
	}

	return nil
}

// FindByID busca un cliente por su id
func (r *CustomerPostgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	query := `
		SELECT id, name, phone, email, address, notes, created_at, updated_at
		FROM customers
		WHERE id = $1
	`

	return r.scanCustomer(r.db.QueryRowContext(ctx, query, id))
}

// FindByPhone busca un cliente por su teléfono
func (r *CustomerPostgresRepository) FindByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	query := `
		SELECT id, name, phone, email, address, notes, created_at, updated_at
		FROM customers
		WHERE phone = $1
	`

	return r.scanCustomer(r.db.QueryRowContext(ctx, query, phone))
}

// List lista clientes ordenados por nombre, con búsqueda opcional por
// nombre o teléfono
func (r *CustomerPostgresRepository) List(ctx context.Context, search string) ([]*entity.Customer, error) {
	query := `
		SELECT id, name, phone, email, address, notes, created_at, updated_at
		FROM customers
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR phone ILIKE '%' || $1 || '%'
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, search)
	if err != nil {
		return nil, fmt.Errorf("error listing customers: %w", err)
	}
	defer rows.Close()

	customers := make([]*entity.Customer, 0)
	for rows.Next() {
		var customer entity.Customer
		if err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Phone,
			&customer.Email,
			&customer.Address,
			&customer.Notes,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning customer: %w", err)
		}
		customers = append(customers, &customer)
	}

	return customers, rows.Err()
}

// Delete elimina un cliente. Falla con ErrCustomerHasSales si tiene ventas
// o asientos de ledger asociados (violación de FK)
func (r *CustomerPostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return entity.ErrCustomerHasSales
		}
		return fmt.Errorf("error deleting customer: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking affected rows: %w", err)
	}
	if rows == 0 {
		return entity.ErrCustomerNotFound
	}

	return nil
}

func (r *CustomerPostgresRepository) scanCustomer(row *sql.Row) (*entity.Customer, error) {
	var customer entity.Customer
	err := row.Scan(
		&customer.ID,
		&customer.Name,
		&customer.Phone,
		&customer.Email,
		&customer.Address,
		&customer.Notes,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("error scanning customer: %w", err)
	}
	return &customer, nil
}
