package catalog

import (
	"errors"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was not
// created through the RestoreRestaurant factory method.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via RestoreRestaurant constructor")

// Restaurant is a read model of a catalog restaurant.
//
// The core reads restaurants for area scoping (customers only order within
// their own area), the flat restaurant fee applied at checkout, the owner to
// notify about new orders, and the active flag that gates checkout.
type Restaurant struct {
	id       kernel.ID
	name     string
	areaCode kernel.AreaCode
	fee      kernel.Money
	active   bool
	ownerID  *kernel.ID

	isConstructed bool
}

// RestoreRestaurant reconstructs a Restaurant read model from the catalog store.
// The owner is optional: restaurants may exist before an owner account is linked.
func RestoreRestaurant(
	id kernel.ID,
	name string,
	areaCode kernel.AreaCode,
	fee kernel.Money,
	active bool,
	ownerID *kernel.ID,
) (*Restaurant, error) {
	restaurant := &Restaurant{isConstructed: true}

	if err := errors.Join(
		restaurant.setID(id),
		restaurant.setName(name),
		restaurant.setAreaCode(areaCode),
		restaurant.setOwnerID(ownerID),
	); err != nil {
		return nil, err
	}

	restaurant.fee = fee
	restaurant.active = active
	return restaurant, nil
}

// Validate ensures the Restaurant was reconstructed through RestoreRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant identifier.
func (r *Restaurant) ID() kernel.ID {
	return r.id
}

// Name returns the display name of the restaurant.
func (r *Restaurant) Name() string {
	return r.name
}

// AreaCode returns the locality the restaurant serves.
func (r *Restaurant) AreaCode() kernel.AreaCode {
	return r.areaCode
}

// Fee returns the flat restaurant fee added to every order at checkout.
func (r *Restaurant) Fee() kernel.Money {
	return r.fee
}

// IsActive reports whether the restaurant currently accepts orders.
func (r *Restaurant) IsActive() bool {
	return r.active
}

// OwnerID returns the identifier of the owner's user account.
// Returns nil if no owner is linked.
func (r *Restaurant) OwnerID() *kernel.ID {
	return r.ownerID
}

func (r *Restaurant) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setAreaCode(areaCode kernel.AreaCode) error {
	if err := areaCode.Validate(); err != nil {
		return err
	}
	r.areaCode = areaCode
	return nil
}

func (r *Restaurant) setOwnerID(ownerID *kernel.ID) error {
	if ownerID == nil {
		return nil
	}
	if err := ownerID.Validate(); err != nil {
		return err
	}
	r.ownerID = ownerID
	return nil
}
