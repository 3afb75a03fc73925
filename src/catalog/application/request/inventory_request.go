package request

import "github.com/shopspring/decimal"

// AdjustInventoryRequest request para ajuste de existencias
// Si IsAbsolute es true, Quantity reemplaza la existencia; si no, se suma
// (o resta, con valor negativo) a la actual
type AdjustInventoryRequest struct {
	Quantity   decimal.Decimal `json:"quantity" binding:"required"`
	IsAbsolute bool            `json:"is_absolute"`
	Reason     string          `json:"reason"`
}

// RestockRequest request para reposición de existencias
type RestockRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Notes    string          `json:"notes"`
}
