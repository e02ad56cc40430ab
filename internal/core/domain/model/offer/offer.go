// Package offer contains the Offer aggregate and discount evaluation.
//
// Offers are read-mostly: created by admins (platform scope) or restaurant
// owners (restaurant scope), toggled inactive rather than deleted, and
// evaluated against a candidate order subtotal at checkout.
package offer

import (
	"errors"
	"fmt"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/errs"
	"pindrop/internal/pkg/guard"
)

var (
	// ErrOfferIsNotConstructed is returned when an Offer instance was not
	// created through one of the factory methods.
	ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer or RestoreOffer constructor")

	// ErrOfferInactive is returned when evaluating an offer that has been
	// toggled off.
	ErrOfferInactive = errors.New("offer is no longer active")

	// ErrOfferScopeMismatch is returned when a restaurant-scoped offer is
	// applied to an order from a different restaurant.
	ErrOfferScopeMismatch = errors.New("offer is not valid for this restaurant")
)

// MinimumOrderNotMetError is returned when the order subtotal is below the
// offer's minimum order value. Carries the minimum so callers can tell the
// customer how much more they need to add.
type MinimumOrderNotMetError struct {
	Minimum kernel.Money
}

func (e *MinimumOrderNotMetError) Error() string {
	return fmt.Sprintf("minimum order value of %s not met for this offer", e.Minimum)
}

// Scope determines whether an offer applies platform-wide or to one restaurant.
type Scope int

const (
	// ScopeUnknown represents an invalid or undefined scope.
	ScopeUnknown Scope = iota

	// ScopePlatform marks an offer applicable to orders from any restaurant.
	ScopePlatform

	// ScopeRestaurant marks an offer restricted to a single restaurant.
	ScopeRestaurant
)

// ScopeFromString parses a Scope from its string representation.
func ScopeFromString(s string) (Scope, error) {
	switch s {
	case "platform":
		return ScopePlatform, nil
	case "restaurant":
		return ScopeRestaurant, nil
	default:
		return ScopeUnknown, errs.NewValueIsInvalidErrorWithCause("offer scope",
			fmt.Errorf("%q is not a valid scope", s))
	}
}

// Validate checks if the Scope value is valid.
func (s Scope) Validate() error {
	if s != ScopePlatform && s != ScopeRestaurant {
		return errs.NewValueIsInvalidErrorWithCause("offer scope",
			fmt.Errorf("%d is not a valid scope", s))
	}
	return nil
}

// String returns the string representation of the scope.
func (s Scope) String() string {
	switch s {
	case ScopePlatform:
		return "platform"
	case ScopeRestaurant:
		return "restaurant"
	default:
		return "unknown"
	}
}

// Offer represents a percentage discount against an order subtotal.
//
// Invariants:
//   - Discount percentage lies in (0, 100], so a computed discount can never
//     exceed the subtotal it applies to
//   - Minimum order value is non-negative
//   - Restaurant-scoped offers reference exactly one restaurant;
//     platform-scoped offers reference none
type Offer struct {
	id            kernel.ID
	description   string
	discountPct   float64
	minOrderValue kernel.Money
	scope         Scope
	restaurantID  *kernel.ID
	active        bool

	guard guard.ConstructorGuard
}

// NewOffer creates a new active offer with validation.
// The restaurantID is required iff scope is ScopeRestaurant.
func NewOffer(
	description string,
	discountPct float64,
	minOrderValue kernel.Money,
	scope Scope,
	restaurantID *kernel.ID,
) (*Offer, error) {
	o := &Offer{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setDescription(description),
		o.setDiscountPct(discountPct),
		o.setScope(scope, restaurantID),
	); err != nil {
		return nil, err
	}

	o.minOrderValue = minOrderValue
	return o, nil
}

// RestoreOffer reconstructs an offer aggregate from persistent storage.
func RestoreOffer(
	id kernel.ID,
	description string,
	discountPct float64,
	minOrderValue kernel.Money,
	scope Scope,
	restaurantID *kernel.ID,
	active bool,
) (*Offer, error) {
	o := &Offer{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setDescription(description),
		o.setDiscountPct(discountPct),
		o.setScope(scope, restaurantID),
	); err != nil {
		return nil, err
	}

	o.minOrderValue = minOrderValue
	return o, nil
}

// Validate ensures the offer was created through a constructor.
func (o *Offer) Validate() error {
	if o == nil {
		return ErrOfferIsNotConstructed
	}
	return o.guard.Validate(ErrOfferIsNotConstructed)
}

// ID returns the offer identifier.
func (o *Offer) ID() kernel.ID {
	return o.id
}

// Description returns the customer-facing offer description.
func (o *Offer) Description() string {
	return o.description
}

// DiscountPercentage returns the discount percentage in (0, 100].
func (o *Offer) DiscountPercentage() float64 {
	return o.discountPct
}

// MinimumOrderValue returns the subtotal threshold for the offer to apply.
func (o *Offer) MinimumOrderValue() kernel.Money {
	return o.minOrderValue
}

// Scope returns the offer scope.
func (o *Offer) Scope() Scope {
	return o.scope
}

// RestaurantID returns the restaurant a restaurant-scoped offer is bound to.
// Returns nil for platform-scoped offers.
func (o *Offer) RestaurantID() *kernel.ID {
	return o.restaurantID
}

// IsActive reports whether the offer can currently be applied.
func (o *Offer) IsActive() bool {
	return o.active
}

// AssignID sets the store-generated identifier after the first insert.
// Fails if the offer already has an identifier.
func (o *Offer) AssignID(id kernel.ID) error {
	if !o.id.IsZero() {
		return fmt.Errorf("offer already has id %s", o.id)
	}
	return o.setID(id)
}

// Deactivate toggles the offer off. Offers are never deleted; historical
// orders keep referencing them. Idempotent.
func (o *Offer) Deactivate() {
	o.active = false
}

// Activate toggles the offer back on. Idempotent.
func (o *Offer) Activate() {
	o.active = true
}

// Evaluate prices the offer against a candidate order subtotal.
//
// Failure modes:
//   - ErrOfferInactive when the offer has been toggled off
//   - MinimumOrderNotMetError when subtotal < minimum order value
//   - ErrOfferScopeMismatch when a restaurant-scoped offer is applied to an
//     order from another restaurant
//
// On success the discount equals subtotal × percentage / 100. Because the
// percentage is bounded to (0, 100] at creation, the discount never exceeds
// the subtotal and is never negative.
func (o *Offer) Evaluate(subtotal kernel.Money, restaurantID kernel.ID) (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}

	if !o.active {
		return kernel.Money{}, ErrOfferInactive
	}

	if subtotal.LessThan(o.minOrderValue) {
		return kernel.Money{}, &MinimumOrderNotMetError{Minimum: o.minOrderValue}
	}

	if o.scope == ScopeRestaurant && (o.restaurantID == nil || !o.restaurantID.IsEqual(restaurantID)) {
		return kernel.Money{}, ErrOfferScopeMismatch
	}

	return subtotal.Percent(o.discountPct), nil
}

func (o *Offer) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Offer) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("offer description")
	}
	o.description = description
	return nil
}

func (o *Offer) setDiscountPct(pct float64) error {
	if pct <= 0 || pct > 100 {
		return errs.NewValueIsOutOfRangeError("discount percentage", pct, 0, 100)
	}
	o.discountPct = pct
	return nil
}

func (o *Offer) setScope(scope Scope, restaurantID *kernel.ID) error {
	if err := scope.Validate(); err != nil {
		return err
	}

	if scope == ScopeRestaurant {
		if restaurantID == nil {
			return errs.NewValueIsRequiredError("restaurant id for restaurant-scoped offer")
		}
		if err := restaurantID.Validate(); err != nil {
			return err
		}
		o.restaurantID = restaurantID
	} else if restaurantID != nil {
		return errs.NewValueIsInvalidError("platform-scoped offer must not reference a restaurant")
	}

	o.scope = scope
	return nil
}
