package entity

import "github.com/shopspring/decimal"

var (
	factorG       = decimal.NewFromInt(1000)
	factorPer100g = decimal.NewFromInt(10)
)

// Subtotal calcula el subtotal de una línea de venta según la unidad de
// pricing del producto. Función pura, sin redondeo: el redondeo a 2
// decimales se aplica recién en los agregados (reportes), nunca por línea.
//
// Para productos por peso la cantidad siempre viene expresada en kg y el
// precio almacenado se asume denominado por kg; G y PER_100G escalan la
// cantidad por 1000 y 10 respectivamente.
func Subtotal(unitPrice decimal.Decimal, unit PricingUnit, quantity decimal.Decimal) decimal.Decimal {
	switch unit {
	case PricingUnitKg:
		return unitPrice.Mul(quantity)
	case PricingUnitG:
		return unitPrice.Mul(quantity.Mul(factorG))
	case PricingUnitPer100g:
		return unitPrice.Mul(quantity.Mul(factorPer100g))
	default:
		// PIECE: precio x cantidad de piezas
		return unitPrice.Mul(quantity)
	}
}

// ValidateQuantity verifica que una cantidad pedida sea válida para la
// unidad de pricing: positiva siempre, y entera para productos por pieza.
// La validación la dispara el caller (motor de ventas), no Subtotal.
func ValidateQuantity(unit PricingUnit, quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidQuantity
	}
	if unit == PricingUnitPiece && !quantity.IsInteger() {
		return ErrNonIntegerQuantity
	}
	return nil
}
