package commands

import (
	"errors"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand represents a customer's request to empty their cart.
// Clearing is idempotent: a missing or already empty cart is not an error.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to empty the customer's cart.
func NewClearCartCommand(customerID kernel.ID) (ClearCartCommand, error) {
	cmd := ClearCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCustomerID(customerID); err != nil {
		return ClearCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrClearCartCommandIsNotConstructed if validation fails.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// CustomerID returns the identifier of the cart's owner.
func (c ClearCartCommand) CustomerID() kernel.ID {
	return c.customerID
}

func (c *ClearCartCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}
