package interfaces

import (
	"context"

	"os_service_api/internal/domain/entities"
)

// IServiceCatalog is the read-only catalog of services the shop offers.

type IServiceCatalog interface {
	GetByID(ctx context.Context, id string) (entities.CatalogService, error)
}
