package entity

import "errors"

var (
	// ErrSaleNotFound la venta no existe
	ErrSaleNotFound = errors.New("sale not found")
	// ErrEmptySale la venta no tiene items
	ErrEmptySale = errors.New("sale must have at least one item")
	// ErrInvalidPaymentType el medio de pago no es CASH ni CREDIT
	ErrInvalidPaymentType = errors.New("invalid payment type")
	// ErrCustomerRequired una venta a crédito exige cliente asociado
	ErrCustomerRequired = errors.New("credit sales require a customer")
	// ErrDuplicateSyncID ya existe una venta con ese sync_id (reenvío offline)
	ErrDuplicateSyncID = errors.New("duplicate sync_id")
	// ErrSaleAlreadyVoided la venta ya fue anulada
	ErrSaleAlreadyVoided = errors.New("sale already voided")
)
