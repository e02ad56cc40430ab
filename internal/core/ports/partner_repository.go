package ports

import (
	"context"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for delivery partner
// aggregates.
type PartnerRepository interface {
	// Add persists a new partner aggregate, assigning its identifier.
	Add(ctx context.Context, aggregate *partner.DeliveryPartner) error

	// Update persists changes to an existing partner aggregate.
	Update(ctx context.Context, aggregate *partner.DeliveryPartner) error

	// Get retrieves a partner aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*partner.DeliveryPartner, error)

	// GetByUser retrieves the partner profile linked to a user account.
	GetByUser(ctx context.Context, userID kernel.ID) (*partner.DeliveryPartner, error)

	// GetAllAvailableInArea retrieves available partners covering the given
	// area. Implementations lock the returned rows against concurrent claims
	// for the duration of the surrounding transaction.
	GetAllAvailableInArea(ctx context.Context, areaCode kernel.AreaCode) ([]*partner.DeliveryPartner, error)
}
