package catalog

import (
	"errors"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/errs"
)

// ErrDishIsNotConstructed is returned when a Dish instance was not created
// through the RestoreDish factory method.
var ErrDishIsNotConstructed = errors.New("Dish must be created via RestoreDish constructor")

// Dish is a read model of a catalog dish.
//
// The core reads dishes at two points: when a customer adds to their cart
// (availability and area checks) and again at checkout, where the current
// price is snapshotted into the order line. Dishes are never mutated here.
type Dish struct {
	id           kernel.ID
	restaurantID kernel.ID
	name         string
	price        kernel.Money
	available    bool

	isConstructed bool
}

// RestoreDish reconstructs a Dish read model from the catalog store.
func RestoreDish(
	id kernel.ID,
	restaurantID kernel.ID,
	name string,
	price kernel.Money,
	available bool,
) (*Dish, error) {
	dish := &Dish{isConstructed: true}

	if err := errors.Join(
		dish.setID(id),
		dish.setRestaurantID(restaurantID),
		dish.setName(name),
		dish.setPrice(price),
	); err != nil {
		return nil, err
	}

	dish.available = available
	return dish, nil
}

// Validate ensures the Dish was reconstructed through RestoreDish.
func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

// ID returns the dish identifier.
func (d *Dish) ID() kernel.ID {
	return d.id
}

// RestaurantID returns the identifier of the restaurant serving the dish.
func (d *Dish) RestaurantID() kernel.ID {
	return d.restaurantID
}

// Name returns the display name of the dish.
func (d *Dish) Name() string {
	return d.name
}

// Price returns the current catalog price of the dish.
func (d *Dish) Price() kernel.Money {
	return d.price
}

// IsAvailable reports whether the restaurant currently serves the dish.
func (d *Dish) IsAvailable() bool {
	return d.available
}

func (d *Dish) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dish) setRestaurantID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.restaurantID = id
	return nil
}

func (d *Dish) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("dish name")
	}
	d.name = name
	return nil
}

func (d *Dish) setPrice(price kernel.Money) error {
	d.price = price
	return nil
}
