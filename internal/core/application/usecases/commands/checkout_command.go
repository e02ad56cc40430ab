package commands

import (
	"errors"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/order"
	"pindrop/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand represents a customer's request to convert their cart into
// a placed order, optionally applying an offer.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.ID
	customerArea kernel.AreaCode
	paymentMode  order.PaymentMode
	offerID      *kernel.ID

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command.
// The offerID is optional; nil means no offer is applied.
func NewCheckoutCommand(
	customerID kernel.ID,
	customerArea kernel.AreaCode,
	paymentMode order.PaymentMode,
	offerID *kernel.ID,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setCustomerArea(customerArea),
		cmd.setPaymentMode(paymentMode),
		cmd.setOfferID(offerID),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCheckoutCommandIsNotConstructed if validation fails.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CustomerID returns the identifier of the checking-out customer.
func (c CheckoutCommand) CustomerID() kernel.ID {
	return c.customerID
}

// CustomerArea returns the customer's delivery area code.
func (c CheckoutCommand) CustomerArea() kernel.AreaCode {
	return c.customerArea
}

// PaymentMode returns how the customer pays.
func (c CheckoutCommand) PaymentMode() order.PaymentMode {
	return c.paymentMode
}

// OfferID returns the offer to apply, or nil for none.
func (c CheckoutCommand) OfferID() *kernel.ID {
	return c.offerID
}

func (c *CheckoutCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setCustomerArea(customerArea kernel.AreaCode) error {
	if err := customerArea.Validate(); err != nil {
		return err
	}
	c.customerArea = customerArea
	return nil
}

func (c *CheckoutCommand) setPaymentMode(paymentMode order.PaymentMode) error {
	if err := paymentMode.Validate(); err != nil {
		return err
	}
	c.paymentMode = paymentMode
	return nil
}

func (c *CheckoutCommand) setOfferID(offerID *kernel.ID) error {
	if offerID == nil {
		return nil
	}
	if err := offerID.Validate(); err != nil {
		return err
	}
	c.offerID = offerID
	return nil
}
