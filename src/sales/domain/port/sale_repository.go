package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogEntity "pos/src/catalog/domain/entity"
	"pos/src/sales/domain/entity"
)

// CreditCharge cargo de cuenta corriente a asentar junto con una venta a
// crédito, dentro de la misma transacción
type CreditCharge struct {
	CustomerID  uuid.UUID
	Amount      decimal.Decimal
	Description string
}

// SaleFilter filtros del listado de ventas
type SaleFilter struct {
	CustomerID  *uuid.UUID
	PaymentType *entity.PaymentType
	Status      *entity.SaleStatus
	From        *time.Time
	To          *time.Time
	Page        int
	Limit       int
}

// SaleRepository puerto de persistencia de ventas
// CreateSale y VoidSale son atómicos: venta, existencias y ledger se
// confirman o revierten juntos
type SaleRepository interface {
	// CreateSale persiste la venta con sus líneas, descuenta existencias
	// (fallando con ErrInsufficientStock si alguna quedaría negativa) y, si
	// charge no es nil, asienta el CHARGE en el ledger del cliente. Retorna
	// las existencias resultantes de los productos vendidos para el chequeo
	// de stock bajo.
	CreateSale(ctx context.Context, sale *entity.Sale, charge *CreditCharge) ([]*catalogEntity.StockLevel, error)
	// VoidSale marca la venta como VOIDED (una sola vez), repone las
	// existencias y, si fue a crédito, asienta la reversa PAYMENT
	VoidSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	FindBySyncID(ctx context.Context, syncID string) (*entity.Sale, error)
	List(ctx context.Context, filter SaleFilter) ([]*entity.Sale, int, error)
	// DailySummary agrega las ventas del día calendario [date, date+24h)
	DailySummary(ctx context.Context, date time.Time) (*entity.DailySummary, error)
}
