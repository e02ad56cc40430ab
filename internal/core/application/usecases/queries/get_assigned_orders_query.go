package queries

import (
	"errors"
	"time"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/guard"
)

var ErrGetAssignedOrdersQueryIsNotConstructed = errors.New(
	"GetAssignedOrdersQuery must be created via NewGetAssignedOrdersQuery constructor",
)

// GetAssignedOrdersQuery retrieves the orders a delivery partner is currently
// carrying, identified by their user account.
type GetAssignedOrdersQuery struct {
	partnerUserID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetAssignedOrdersQuery creates a query for a partner's active deliveries.
func NewGetAssignedOrdersQuery(partnerUserID kernel.ID) (GetAssignedOrdersQuery, error) {
	if err := partnerUserID.Validate(); err != nil {
		return GetAssignedOrdersQuery{}, err
	}
	return GetAssignedOrdersQuery{
		partnerUserID: partnerUserID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAssignedOrdersQueryIsNotConstructed if validation fails.
func (q GetAssignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedOrdersQueryIsNotConstructed)
}

// PartnerUserID returns the partner's user account identifier.
func (q GetAssignedOrdersQuery) PartnerUserID() kernel.ID {
	return q.partnerUserID
}

// GetAssignedOrdersQueryResponse is one active delivery in the partner's view.
type GetAssignedOrdersQueryResponse struct {
	ID             kernel.ID
	RestaurantName string
	AreaCode       string
	Total          float64
	ETAMinutes     int
	PlacedAt       time.Time
}
