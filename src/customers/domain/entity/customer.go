package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer representa un cliente con cuenta corriente
// El balance NO se almacena en el cliente: es un campo derivado del último
// asiento de su ledger de crédito
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	Address   *string   `json:"address"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCustomer crea un cliente validando el nombre obligatorio
func NewCustomer(name string, phone, email, address, notes *string) (*Customer, error) {
	if name == "" {
		return nil, ErrCustomerNameRequired
	}

	now := time.Now()

	return &Customer{
		ID:        uuid.New(),
		Name:      name,
		Phone:     phone,
		Email:     email,
		Address:   address,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
