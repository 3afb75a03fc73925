package response

import (
	"time"

	"github.com/shopspring/decimal"

	"pos/src/sales/domain/entity"
)

// SaleResponse venta con sus líneas
type SaleResponse struct {
	*entity.Sale
}

// SaleListResponse listado paginado de ventas
type SaleListResponse struct {
	Items      []*entity.Sale `json:"items"`
	TotalCount int            `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
}

// DailySummaryResponse resumen de ventas de un día, montos redondeados a
// 2 decimales
type DailySummaryResponse struct {
	Date        time.Time       `json:"date"`
	SaleCount   int             `json:"sale_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CashTotal   decimal.Decimal `json:"cash_total"`
	CreditTotal decimal.Decimal `json:"credit_total"`
	VoidedCount int             `json:"voided_count"`
}

// NewDailySummaryResponse arma el resumen aplicando el redondeo de reporte
func NewDailySummaryResponse(summary *entity.DailySummary) *DailySummaryResponse {
	return &DailySummaryResponse{
		Date:        summary.Date,
		SaleCount:   summary.SaleCount,
		TotalAmount: summary.TotalAmount.Round(2),
		CashTotal:   summary.CashTotal.Round(2),
		CreditTotal: summary.CreditTotal.Round(2),
		VoidedCount: summary.VoidedCount,
	}
}
