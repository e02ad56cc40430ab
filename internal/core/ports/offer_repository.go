package ports

import (
	"context"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/offer"
)

// OfferRepository defines the persistence contract for offer aggregates.
type OfferRepository interface {
	// Add persists a new offer aggregate, assigning its identifier.
	Add(ctx context.Context, aggregate *offer.Offer) error

	// Update persists changes to an existing offer aggregate.
	Update(ctx context.Context, aggregate *offer.Offer) error

	// Get retrieves an offer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*offer.Offer, error)
}
