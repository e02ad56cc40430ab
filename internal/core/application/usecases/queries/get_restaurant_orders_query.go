package queries

import (
	"errors"
	"time"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/guard"
)

var ErrGetRestaurantOrdersQueryIsNotConstructed = errors.New(
	"GetRestaurantOrdersQuery must be created via NewGetRestaurantOrdersQuery constructor",
)

// GetRestaurantOrdersQuery retrieves the incoming orders of the restaurants
// owned by a user. Ownership scoping happens inside the query itself: the
// owner only ever sees their own restaurants' orders.
type GetRestaurantOrdersQuery struct {
	ownerUserID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetRestaurantOrdersQuery creates a query for an owner's incoming orders.
func NewGetRestaurantOrdersQuery(ownerUserID kernel.ID) (GetRestaurantOrdersQuery, error) {
	if err := ownerUserID.Validate(); err != nil {
		return GetRestaurantOrdersQuery{}, err
	}
	return GetRestaurantOrdersQuery{
		ownerUserID: ownerUserID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRestaurantOrdersQueryIsNotConstructed if validation fails.
func (q GetRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrdersQueryIsNotConstructed)
}

// OwnerUserID returns the owner's user account identifier.
func (q GetRestaurantOrdersQuery) OwnerUserID() kernel.ID {
	return q.ownerUserID
}

// GetRestaurantOrdersQueryResponse is one incoming order in the owner's view.
type GetRestaurantOrdersQueryResponse struct {
	ID             kernel.ID
	RestaurantName string
	CustomerID     kernel.ID
	Status         string
	Total          float64
	PlacedAt       time.Time
}
