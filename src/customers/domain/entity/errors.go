package entity

import "errors"

var (
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrPhoneAlreadyUsed     = errors.New("customer with this phone already exists")
	ErrCustomerHasSales     = errors.New("cannot delete customer with associated sales")

	ErrInvalidEntryType     = errors.New("invalid ledger entry type")
	ErrInvalidAmount        = errors.New("amount must be greater than 0")
	ErrNoOutstandingBalance = errors.New("customer has no outstanding balance")
	ErrPaymentExceedsDebt   = errors.New("payment amount exceeds outstanding balance")
)
