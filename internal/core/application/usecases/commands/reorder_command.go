package commands

import (
	"errors"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/guard"
)

var ErrReorderCommandIsNotConstructed = errors.New(
	"ReorderCommand must be created via NewReorderCommand constructor",
)

// ReorderCommand represents a customer's request to refill their cart from a
// past order of theirs.
type ReorderCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.ID
	customerArea kernel.AreaCode
	orderID      kernel.ID

	guard guard.ConstructorGuard
}

// NewReorderCommand creates a command to refill the cart from a past order.
func NewReorderCommand(customerID kernel.ID, customerArea kernel.AreaCode, orderID kernel.ID) (ReorderCommand, error) {
	cmd := ReorderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setCustomerArea(customerArea),
		cmd.setOrderID(orderID),
	); err != nil {
		return ReorderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReorderCommandIsNotConstructed if validation fails.
func (c ReorderCommand) Validate() error {
	return c.guard.Validate(ErrReorderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the reordering customer.
func (c ReorderCommand) CustomerID() kernel.ID {
	return c.customerID
}

// CustomerArea returns the customer's delivery area code.
func (c ReorderCommand) CustomerArea() kernel.AreaCode {
	return c.customerArea
}

// OrderID returns the identifier of the past order to copy.
func (c ReorderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c *ReorderCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *ReorderCommand) setCustomerArea(customerArea kernel.AreaCode) error {
	if err := customerArea.Validate(); err != nil {
		return err
	}
	c.customerArea = customerArea
	return nil
}

func (c *ReorderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
