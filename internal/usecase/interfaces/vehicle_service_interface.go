package interfaces

import (
	"context"

	"os_service_api/internal/domain/entities"
)

// IVehicleService resolves vehicles and their owning customers. Used to
// validate order creation and for the ownership-based authorization
// checks.

type IVehicleService interface {
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	Exists(ctx context.Context, id string) (bool, error)
}
