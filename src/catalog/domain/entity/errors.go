package entity

import "errors"

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrBarcodeRequired     = errors.New("barcode is required")
	ErrBarcodeAlreadyUsed  = errors.New("product with this barcode already exists")
	ErrProductNameRequired = errors.New("product name is required")
	ErrInvalidPrice        = errors.New("price must be greater than or equal to 0")
	ErrInvalidCost         = errors.New("cost must be greater than or equal to 0")
	ErrInvalidPricingUnit  = errors.New("invalid pricing_unit")
	ErrProductHasSales     = errors.New("cannot delete product with associated sales")

	ErrInvalidQuantity    = errors.New("quantity must be greater than 0")
	ErrNonIntegerQuantity = errors.New("quantity must be a whole number for piece-priced products")
	ErrNegativeInventory  = errors.New("inventory cannot be negative")
	ErrInsufficientStock  = errors.New("insufficient stock")
)
