package order

import (
	"errors"
	"fmt"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through one of the factory methods.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine constructor")

// Line is a priced order line. Unlike a cart line it snapshots the dish name
// and unit price at checkout time, so later catalog edits never change what
// the customer was charged.
type Line struct {
	id        kernel.ID
	dishID    kernel.ID
	dishName  string
	quantity  int
	unitPrice kernel.Money

	isConstructed bool
}

// NewLine creates an order line with a price snapshot taken at checkout.
func NewLine(dishID kernel.ID, dishName string, quantity int, unitPrice kernel.Money) (*Line, error) {
	line := &Line{isConstructed: true}

	if err := errors.Join(
		line.setDishID(dishID),
		line.setDishName(dishName),
		line.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	line.unitPrice = unitPrice
	return line, nil
}

// RestoreLine reconstructs an order line from persistent storage.
func RestoreLine(id, dishID kernel.ID, dishName string, quantity int, unitPrice kernel.Money) (*Line, error) {
	line, err := NewLine(dishID, dishName, quantity, unitPrice)
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

// DishID returns the identifier of the ordered dish.
func (l *Line) DishID() kernel.ID {
	return l.dishID
}

// DishName returns the dish name as it was at checkout time.
func (l *Line) DishName() string {
	return l.dishName
}

// Quantity returns the number of units ordered.
func (l *Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the per-unit price snapshotted at checkout.
func (l *Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Total returns unit price times quantity.
func (l *Line) Total() kernel.Money {
	return l.unitPrice.MulInt(l.quantity)
}

// AssignID sets the store-generated identifier after the first insert.
// Fails if the line already has an identifier.
func (l *Line) AssignID(id kernel.ID) error {
	if !l.id.IsZero() {
		return fmt.Errorf("order line already has id %s", l.id)
	}
	return l.setID(id)
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

func (l *Line) setDishName(dishName string) error {
	if dishName == "" {
		return errs.NewValueIsRequiredError("dish name")
	}
	l.dishName = dishName
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
