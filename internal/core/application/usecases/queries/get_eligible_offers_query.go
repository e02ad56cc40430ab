package queries

import (
	"errors"
	"fmt"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/errs"
	"pindrop/internal/pkg/guard"
)

var ErrGetEligibleOffersQueryIsNotConstructed = errors.New(
	"GetEligibleOffersQuery must be created via NewGetEligibleOffersQuery constructor",
)

// GetEligibleOffersQuery retrieves the active offers a customer could apply
// at checkout: platform-wide ones plus those scoped to the cart's restaurant,
// filtered by the minimum order value against the current subtotal.
type GetEligibleOffersQuery struct {
	restaurantID kernel.ID
	subtotal     float64

	guard guard.ConstructorGuard
}

// NewGetEligibleOffersQuery creates a query for offers applicable to a
// candidate order.
func NewGetEligibleOffersQuery(restaurantID kernel.ID, subtotal float64) (GetEligibleOffersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetEligibleOffersQuery{}, err
	}
	if subtotal < 0 {
		return GetEligibleOffersQuery{}, errs.NewValueIsInvalidErrorWithCause("subtotal",
			fmt.Errorf("%f is negative", subtotal))
	}
	return GetEligibleOffersQuery{
		restaurantID: restaurantID,
		subtotal:     subtotal,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetEligibleOffersQueryIsNotConstructed if validation fails.
func (q GetEligibleOffersQuery) Validate() error {
	return q.guard.Validate(ErrGetEligibleOffersQueryIsNotConstructed)
}

// RestaurantID returns the restaurant of the candidate order.
func (q GetEligibleOffersQuery) RestaurantID() kernel.ID {
	return q.restaurantID
}

// Subtotal returns the candidate order's subtotal.
func (q GetEligibleOffersQuery) Subtotal() float64 {
	return q.subtotal
}

// GetEligibleOffersQueryResponse is one applicable offer.
type GetEligibleOffersQueryResponse struct {
	ID            kernel.ID
	Description   string
	DiscountPct   float64
	MinOrderValue float64
	Scope         string
}
