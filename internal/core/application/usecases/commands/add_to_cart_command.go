package commands

import (
	"errors"
	"fmt"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/errs"
	"pindrop/internal/pkg/guard"
)

var ErrAddToCartCommandIsNotConstructed = errors.New(
	"AddToCartCommand must be created via NewAddToCartCommand constructor",
)

// AddToCartCommand represents a customer's request to put a dish in their cart.
// Adding a dish already in the cart merges quantities instead of creating a
// duplicate line.
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.ID
	customerArea kernel.AreaCode
	dishID       kernel.ID
	quantity     int

	guard guard.ConstructorGuard
}

// NewAddToCartCommand creates a command to add a dish to the customer's cart.
// Validates identifiers, area code and that quantity is positive.
func NewAddToCartCommand(
	customerID kernel.ID,
	customerArea kernel.AreaCode,
	dishID kernel.ID,
	quantity int,
) (AddToCartCommand, error) {
	cmd := AddToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setCustomerArea(customerArea),
		cmd.setDishID(dishID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddToCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddToCartCommandIsNotConstructed if validation fails.
func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer adding the dish.
func (c AddToCartCommand) CustomerID() kernel.ID {
	return c.customerID
}

// CustomerArea returns the customer's delivery area code.
func (c AddToCartCommand) CustomerArea() kernel.AreaCode {
	return c.customerArea
}

// DishID returns the identifier of the dish to add.
func (c AddToCartCommand) DishID() kernel.ID {
	return c.dishID
}

// Quantity returns the number of units to add.
func (c AddToCartCommand) Quantity() int {
	return c.quantity
}

func (c *AddToCartCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *AddToCartCommand) setCustomerArea(customerArea kernel.AreaCode) error {
	if err := customerArea.Validate(); err != nil {
		return err
	}
	c.customerArea = customerArea
	return nil
}

func (c *AddToCartCommand) setDishID(dishID kernel.ID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}
	c.dishID = dishID
	return nil
}

func (c *AddToCartCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}
