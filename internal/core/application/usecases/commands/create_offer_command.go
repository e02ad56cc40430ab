package commands

import (
	"errors"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/offer"
	"pindrop/internal/pkg/errs"
	"pindrop/internal/pkg/guard"
)

var ErrCreateOfferCommandIsNotConstructed = errors.New(
	"CreateOfferCommand must be created via NewCreateOfferCommand constructor",
)

// CreateOfferCommand represents a request to publish a new discount offer,
// either platform-wide or scoped to one restaurant.
type CreateOfferCommand struct { //nolint:recvcheck //using for validation
	description   string
	discountPct   float64
	minOrderValue kernel.Money
	scope         offer.Scope
	restaurantID  *kernel.ID

	guard guard.ConstructorGuard
}

// NewCreateOfferCommand creates a command to publish an offer.
// The restaurantID is required iff scope is restaurant.
func NewCreateOfferCommand(
	description string,
	discountPct float64,
	minOrderValue kernel.Money,
	scope offer.Scope,
	restaurantID *kernel.ID,
) (CreateOfferCommand, error) {
	cmd := CreateOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDescription(description),
		cmd.setScope(scope, restaurantID),
	); err != nil {
		return CreateOfferCommand{}, err
	}

	cmd.discountPct = discountPct
	cmd.minOrderValue = minOrderValue
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOfferCommandIsNotConstructed if validation fails.
func (c CreateOfferCommand) Validate() error {
	return c.guard.Validate(ErrCreateOfferCommandIsNotConstructed)
}

// Description returns the customer-facing offer description.
func (c CreateOfferCommand) Description() string {
	return c.description
}

// DiscountPct returns the requested discount percentage.
// Range validation happens in the offer constructor.
func (c CreateOfferCommand) DiscountPct() float64 {
	return c.discountPct
}

// MinOrderValue returns the subtotal threshold for the offer to apply.
func (c CreateOfferCommand) MinOrderValue() kernel.Money {
	return c.minOrderValue
}

// Scope returns the requested offer scope.
func (c CreateOfferCommand) Scope() offer.Scope {
	return c.scope
}

// RestaurantID returns the restaurant for a restaurant-scoped offer, or nil.
func (c CreateOfferCommand) RestaurantID() *kernel.ID {
	return c.restaurantID
}

func (c *CreateOfferCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("offer description")
	}
	c.description = description
	return nil
}

func (c *CreateOfferCommand) setScope(scope offer.Scope, restaurantID *kernel.ID) error {
	if err := scope.Validate(); err != nil {
		return err
	}
	if restaurantID != nil {
		if err := restaurantID.Validate(); err != nil {
			return err
		}
		c.restaurantID = restaurantID
	}
	c.scope = scope
	return nil
}
