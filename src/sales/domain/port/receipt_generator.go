package port

import (
	customerEntity "pos/src/customers/domain/entity"
	"pos/src/sales/domain/entity"
)

// ReceiptGenerator genera el ticket de una venta. customer puede ser nil
// para ventas de mostrador sin cliente asociado.
type ReceiptGenerator interface {
	Generate(sale *entity.Sale, customer *customerEntity.Customer) ([]byte, error)
}
