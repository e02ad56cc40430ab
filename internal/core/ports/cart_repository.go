package ports

import (
	"context"

	"pindrop/internal/core/domain/model/cart"
	"pindrop/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// A customer has at most one cart, keyed by their user identifier.
type CartRepository interface {
	// GetByCustomer retrieves the customer's cart with all its lines.
	// Returns an object-not-found error if the customer has no cart rows.
	GetByCustomer(ctx context.Context, customerID kernel.ID) (*cart.Cart, error)

	// Save persists the aggregate's current line set: new lines are inserted
	// and receive identifiers, existing lines are updated, and lines the
	// aggregate removed are deleted. Saving a cleared cart deletes everything.
	Save(ctx context.Context, aggregate *cart.Cart) error
}
