package interfaces

import (
	"context"

	"os_service_api/internal/domain/entities"
)

// IPartsSupplyService is the inventory collaborator. It is consulted when
// enriching item lines and during budget approval, where stock is checked
// and then debited.

type IPartsSupplyService interface {
	GetByID(ctx context.Context, id string) (entities.PartsSupply, error)
	CheckAvailability(ctx context.Context, id string, quantity int) (bool, error)
	SetQuantity(ctx context.Context, id string, newQuantity int) error
}
