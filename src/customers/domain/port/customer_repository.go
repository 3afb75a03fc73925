package port

import (
	"context"

	"github.com/google/uuid"

	"pos/src/customers/domain/entity"
)

// CustomerRepository puerto de persistencia de clientes
type CustomerRepository interface {
	Save(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindByPhone(ctx context.Context, phone string) (*entity.Customer, error)
	List(ctx context.Context, search string) ([]*entity.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
