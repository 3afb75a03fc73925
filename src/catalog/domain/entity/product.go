package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingUnit indica cómo se interpreta el precio unitario de un producto
type PricingUnit string

const (
	PricingUnitPiece   PricingUnit = "PIECE"   // precio por pieza
	PricingUnitKg      PricingUnit = "KG"      // precio por kilogramo
	PricingUnitG       PricingUnit = "G"       // precio por gramo (input en kg)
	PricingUnitPer100g PricingUnit = "PER_100G" // precio por 100 gramos (input en kg)
)

// IsValid verifica que la unidad de pricing sea una de las soportadas
func (u PricingUnit) IsValid() bool {
	switch u {
	case PricingUnitPiece, PricingUnitKg, PricingUnitG, PricingUnitPer100g:
		return true
	}
	return false
}

// Product representa un producto del catálogo
// El barcode es único e inmutable una vez referenciado por una venta
type Product struct {
	ID            uuid.UUID       `json:"id"`
	Barcode       string          `json:"barcode"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	ReorderLevel  decimal.Decimal `json:"reorder_level"`
	IsWeightBased bool            `json:"is_weight_based"`
	PricingUnit   PricingUnit     `json:"pricing_unit"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewProduct crea un producto validando sus invariantes básicos
func NewProduct(
	barcode string,
	name string,
	price decimal.Decimal,
	cost decimal.Decimal,
	reorderLevel decimal.Decimal,
	isWeightBased bool,
	pricingUnit PricingUnit,
) (*Product, error) {
	if barcode == "" {
		return nil, ErrBarcodeRequired
	}
	if name == "" {
		return nil, ErrProductNameRequired
	}
	if price.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if cost.LessThan(decimal.Zero) {
		return nil, ErrInvalidCost
	}

	// Default: producto por pieza
	if pricingUnit == "" {
		pricingUnit = PricingUnitPiece
	}
	if !pricingUnit.IsValid() {
		return nil, ErrInvalidPricingUnit
	}
	if reorderLevel.LessThan(decimal.Zero) {
		reorderLevel = decimal.Zero
	}

	now := time.Now()

	return &Product{
		ID:            uuid.New(),
		Barcode:       barcode,
		Name:          name,
		Price:         price,
		Cost:          cost,
		ReorderLevel:  reorderLevel,
		IsWeightBased: isWeightBased,
		PricingUnit:   pricingUnit,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}
