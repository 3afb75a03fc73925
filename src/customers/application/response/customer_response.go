package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pos/src/customers/domain/entity"
)

// CustomerResponse cliente con su balance derivado
type CustomerResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Phone     *string         `json:"phone"`
	Email     *string         `json:"email"`
	Address   *string         `json:"address"`
	Notes     *string         `json:"notes"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewCustomerResponse arma la respuesta combinando cliente y balance
func NewCustomerResponse(customer *entity.Customer, balance decimal.Decimal) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Phone:     customer.Phone,
		Email:     customer.Email,
		Address:   customer.Address,
		Notes:     customer.Notes,
		Balance:   balance,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}

// LedgerResponse ledger paginado de un cliente
type LedgerResponse struct {
	Customer       CustomerResponse      `json:"customer"`
	Entries        []*entity.LedgerEntry `json:"entries"`
	TotalCount     int                   `json:"total_count"`
	Page           int                   `json:"page"`
	Limit          int                   `json:"limit"`
	CurrentBalance decimal.Decimal       `json:"current_balance"`
}

// PaymentResponse resultado de un pago registrado
type PaymentResponse struct {
	EntryID         uuid.UUID       `json:"entry_id"`
	Type            entity.EntryType `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	NewBalance      decimal.Decimal `json:"new_balance"`
	Description     string          `json:"description"`
	CreatedAt       time.Time       `json:"created_at"`
}

// DebtorsResponse listado de clientes con deuda
type DebtorsResponse struct {
	TotalOutstanding decimal.Decimal    `json:"total_outstanding"`
	CustomerCount    int                `json:"customer_count"`
	Customers        []CustomerResponse `json:"customers"`
}
