package commands

import (
	"errors"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/errs"
	"pindrop/internal/pkg/guard"
)

var ErrRaiseComplaintCommandIsNotConstructed = errors.New(
	"RaiseComplaintCommand must be created via NewRaiseComplaintCommand constructor",
)

// RaiseComplaintCommand represents a customer reporting an issue, optionally
// tied to one of their orders.
type RaiseComplaintCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.ID
	orderID     *kernel.ID
	description string

	guard guard.ConstructorGuard
}

// NewRaiseComplaintCommand creates a command to raise a complaint.
// The orderID is optional; nil means a general complaint.
func NewRaiseComplaintCommand(customerID kernel.ID, orderID *kernel.ID, description string) (RaiseComplaintCommand, error) {
	cmd := RaiseComplaintCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setOrderID(orderID),
		cmd.setDescription(description),
	); err != nil {
		return RaiseComplaintCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRaiseComplaintCommandIsNotConstructed if validation fails.
func (c RaiseComplaintCommand) Validate() error {
	return c.guard.Validate(ErrRaiseComplaintCommandIsNotConstructed)
}

// CustomerID returns the identifier of the complaining customer.
func (c RaiseComplaintCommand) CustomerID() kernel.ID {
	return c.customerID
}

// OrderID returns the referenced order's identifier, or nil for a general
// complaint.
func (c RaiseComplaintCommand) OrderID() *kernel.ID {
	return c.orderID
}

// Description returns the customer's description of the issue.
func (c RaiseComplaintCommand) Description() string {
	return c.description
}

func (c *RaiseComplaintCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *RaiseComplaintCommand) setOrderID(orderID *kernel.ID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RaiseComplaintCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("complaint description")
	}
	c.description = description
	return nil
}
