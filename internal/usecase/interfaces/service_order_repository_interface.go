package interfaces

import (
	"context"

	"os_service_api/internal/domain/entities"
)

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// Zero-value returns (empty ID) mean "not found"; errors are reserved for
// infrastructure failures. The storage layer owns the authoritative
// uniqueness guarantee for order codes.

type IServiceOrderRepository interface {
	Create(ctx context.Context, order entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	GetByCode(ctx context.Context, code string) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	Update(ctx context.Context, order entities.ServiceOrder) (entities.ServiceOrder, error)
}
