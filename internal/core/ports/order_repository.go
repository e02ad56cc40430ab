package ports

import (
	"context"
	"time"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate and its lines, assigning
	// store-generated identifiers to both.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and partner changes to an existing order.
	// Lines and charges are immutable and never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its lines.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAllPlacedBefore retrieves orders still in Placed status that were
	// placed before the cutoff. Used by the stale order reminder job.
	GetAllPlacedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
