package ports

import (
	"context"

	"pindrop/internal/core/domain/model/catalog"
	"pindrop/internal/core/domain/model/kernel"
)

// CatalogRepository is a read-only port over the restaurant and dish catalog.
// The order side never mutates catalog data; it reads it for availability
// checks, area scoping, price snapshots and fees.
type CatalogRepository interface {
	// GetDish retrieves a dish read model by its unique identifier.
	GetDish(ctx context.Context, id kernel.ID) (*catalog.Dish, error)

	// GetDishes retrieves the dish read models for the given identifiers.
	// Returns an object-not-found error if any identifier has no dish.
	GetDishes(ctx context.Context, ids []kernel.ID) ([]*catalog.Dish, error)

	// GetRestaurant retrieves a restaurant read model by its unique identifier.
	GetRestaurant(ctx context.Context, id kernel.ID) (*catalog.Restaurant, error)
}
