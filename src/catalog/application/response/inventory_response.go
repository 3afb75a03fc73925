package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryItemResponse una fila del listado de inventario
type InventoryItemResponse struct {
	ProductID    uuid.UUID       `json:"product_id"`
	Barcode      string          `json:"barcode"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	Quantity     decimal.Decimal `json:"quantity"`
	Value        decimal.Decimal `json:"value"`
	RetailValue  decimal.Decimal `json:"retail_value"`
	IsLowStock   bool            `json:"is_low_stock"`
	LastUpdated  *time.Time      `json:"last_updated"`
}

// InventoryListResponse listado de inventario con totales agregados
// Los totales se redondean a 2 decimales (frontera de reporte)
type InventoryListResponse struct {
	Items            []InventoryItemResponse `json:"items"`
	TotalCount       int                     `json:"total_count"`
	TotalValue       decimal.Decimal         `json:"total_value"`
	TotalRetailValue decimal.Decimal         `json:"total_retail_value"`
	PotentialProfit  decimal.Decimal         `json:"potential_profit"`
	LowStockCount    int                     `json:"low_stock_count"`
}

// AdjustInventoryResponse resultado de un ajuste/restock
type AdjustInventoryResponse struct {
	ProductID        uuid.UUID       `json:"product_id"`
	Name             string          `json:"name"`
	PreviousQuantity decimal.Decimal `json:"previous_quantity"`
	Adjustment       decimal.Decimal `json:"adjustment"`
	NewQuantity      decimal.Decimal `json:"new_quantity"`
	Reason           string          `json:"reason,omitempty"`
	IsLowStock       bool            `json:"is_low_stock"`
	LastUpdated      time.Time       `json:"last_updated"`
}

// LowStockItemResponse una fila del reporte de stock bajo
type LowStockItemResponse struct {
	ProductID        uuid.UUID       `json:"product_id"`
	Barcode          string          `json:"barcode"`
	Name             string          `json:"name"`
	CurrentQuantity  decimal.Decimal `json:"current_quantity"`
	ReorderLevel     decimal.Decimal `json:"reorder_level"`
	Deficit          decimal.Decimal `json:"deficit"`
	SuggestedReorder decimal.Decimal `json:"suggested_reorder"`
	EstimatedCost    decimal.Decimal `json:"estimated_cost"`
}

// LowStockReportResponse reporte de productos a reponer
type LowStockReportResponse struct {
	Count                     int                    `json:"count"`
	TotalEstimatedRestockCost decimal.Decimal        `json:"total_estimated_restock_cost"`
	Items                     []LowStockItemResponse `json:"items"`
}
