package commands

import (
	"errors"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/guard"
)

var ErrRemoveCartLineCommandIsNotConstructed = errors.New(
	"RemoveCartLineCommand must be created via NewRemoveCartLineCommand constructor",
)

// RemoveCartLineCommand represents a customer's request to drop one line from
// their cart, regardless of its quantity.
type RemoveCartLineCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID
	lineID     kernel.ID

	guard guard.ConstructorGuard
}

// NewRemoveCartLineCommand creates a command to remove a cart line.
func NewRemoveCartLineCommand(customerID, lineID kernel.ID) (RemoveCartLineCommand, error) {
	cmd := RemoveCartLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setLineID(lineID),
	); err != nil {
		return RemoveCartLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveCartLineCommandIsNotConstructed if validation fails.
func (c RemoveCartLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartLineCommandIsNotConstructed)
}

// CustomerID returns the identifier of the cart's owner.
func (c RemoveCartLineCommand) CustomerID() kernel.ID {
	return c.customerID
}

// LineID returns the identifier of the line to remove.
func (c RemoveCartLineCommand) LineID() kernel.ID {
	return c.lineID
}

func (c *RemoveCartLineCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *RemoveCartLineCommand) setLineID(lineID kernel.ID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}
	c.lineID = lineID
	return nil
}
