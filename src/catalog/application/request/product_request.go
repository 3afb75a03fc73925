package request

import "github.com/shopspring/decimal"

// CreateProductRequest request para alta de producto
type CreateProductRequest struct {
	Barcode       string          `json:"barcode" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	Cost          decimal.Decimal `json:"cost"`
	ReorderLevel  decimal.Decimal `json:"reorder_level"`
	IsWeightBased bool            `json:"is_weight_based"`
	PricingUnit   string          `json:"pricing_unit"`
}

// UpdateProductRequest request para edición de producto (campos opcionales)
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Price         *decimal.Decimal `json:"price"`
	Cost          *decimal.Decimal `json:"cost"`
	ReorderLevel  *decimal.Decimal `json:"reorder_level"`
	IsWeightBased *bool            `json:"is_weight_based"`
	PricingUnit   *string          `json:"pricing_unit"`
}
