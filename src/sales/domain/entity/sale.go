package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentType medio de pago de una venta
type PaymentType string

const (
	PaymentTypeCash   PaymentType = "CASH"
	PaymentTypeCredit PaymentType = "CREDIT"
)

// IsValid verifica que el medio de pago sea soportado
func (p PaymentType) IsValid() bool {
	return p == PaymentTypeCash || p == PaymentTypeCredit
}

// SaleStatus estado de una venta
type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "COMPLETED"
	SaleStatusVoided    SaleStatus = "VOIDED"
)

// Sale representa una venta completada en el POS
// El total es la suma exacta de los subtotales de sus líneas, sin redondeo
// intermedio. Una venta nunca se edita: sólo puede anularse, una única vez.
type Sale struct {
	ID          uuid.UUID       `json:"id"`
	SyncID      *string         `json:"sync_id"`
	CustomerID  *uuid.UUID      `json:"customer_id"`
	PaymentType PaymentType     `json:"payment_type"`
	Status      SaleStatus      `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []*SaleItem     `json:"items"`
	CreatedAt   time.Time       `json:"created_at"`
	VoidedAt    *time.Time      `json:"voided_at"`
}

// NewSale crea una venta COMPLETED a partir de sus líneas ya validadas,
// calculando el total. CREDIT exige cliente asociado.
func NewSale(syncID *string, customerID *uuid.UUID, paymentType PaymentType, items []*SaleItem) (*Sale, error) {
	if len(items) == 0 {
		return nil, ErrEmptySale
	}
	if !paymentType.IsValid() {
		return nil, ErrInvalidPaymentType
	}
	if paymentType == PaymentTypeCredit && customerID == nil {
		return nil, ErrCustomerRequired
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal)
	}

	sale := &Sale{
		ID:          uuid.New(),
		SyncID:      syncID,
		CustomerID:  customerID,
		PaymentType: paymentType,
		Status:      SaleStatusCompleted,
		TotalAmount: total,
		Items:       items,
		CreatedAt:   time.Now(),
	}

	for _, item := range items {
		item.SaleID = sale.ID
	}

	return sale, nil
}

// ShortID retorna los primeros 8 caracteres del id, usados en las
// descripciones del ledger y en el ticket
func (s *Sale) ShortID() string {
	return s.ID.String()[:8]
}

// DailySummary agregado de ventas de un día calendario
type DailySummary struct {
	Date        time.Time       `json:"date"`
	SaleCount   int             `json:"sale_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CashTotal   decimal.Decimal `json:"cash_total"`
	CreditTotal decimal.Decimal `json:"credit_total"`
	VoidedCount int             `json:"voided_count"`
}
