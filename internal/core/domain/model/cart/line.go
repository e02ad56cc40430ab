package cart

import (
	"errors"
	"fmt"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through one of the factory methods.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine constructor")

// Line is a single (dish, quantity) entry in a customer's cart.
// Lines carry no price: prices are read fresh and snapshotted at checkout,
// never at add-to-cart time.
type Line struct {
	id           kernel.ID
	dishID       kernel.ID
	restaurantID kernel.ID
	quantity     int

	isConstructed bool
}

// NewLine creates a new cart line. The identifier is assigned by the store
// on first save.
func NewLine(dishID, restaurantID kernel.ID, quantity int) (*Line, error) {
	line := &Line{isConstructed: true}

	if err := errors.Join(
		line.setDishID(dishID),
		line.setRestaurantID(restaurantID),
		line.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLine reconstructs a cart line from persistent storage.
func RestoreLine(id, dishID, restaurantID kernel.ID, quantity int) (*Line, error) {
	line, err := NewLine(dishID, restaurantID, quantity)
	if err != nil {
		return nil, err
	}
	if err := line.setID(id); err != nil {
		return nil, err
	}
	return line, nil
}

// Validate ensures the line was created through a constructor.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line identifier. Zero until the line is first persisted.
func (l *Line) ID() kernel.ID {
	return l.id
}

// DishID returns the identifier of the dish the line refers to.
func (l *Line) DishID() kernel.ID {
	return l.dishID
}

// RestaurantID returns the identifier of the restaurant serving the dish.
func (l *Line) RestaurantID() kernel.ID {
	return l.restaurantID
}

// Quantity returns the number of units of the dish.
func (l *Line) Quantity() int {
	return l.quantity
}

// AssignID sets the store-generated identifier after the first insert.
// Fails if the line already has an identifier.
func (l *Line) AssignID(id kernel.ID) error {
	if !l.id.IsZero() {
		return fmt.Errorf("cart line already has id %s", l.id)
	}
	return l.setID(id)
}

// increaseQuantity merges additional units into the line.
func (l *Line) increaseQuantity(delta int) error {
	if delta < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", delta))
	}
	l.quantity += delta
	return nil
}

func (l *Line) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setDishID(dishID kernel.ID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}
	l.dishID = dishID
	return nil
}

func (l *Line) setRestaurantID(restaurantID kernel.ID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	l.restaurantID = restaurantID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}
