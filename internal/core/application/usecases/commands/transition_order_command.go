package commands

import (
	"errors"
	"fmt"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/order"
	"pindrop/internal/pkg/errs"
	"pindrop/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// ActorRole identifies which kind of principal requests a status change.
// The handler resolves the role plus user into a concrete order.Actor.
type ActorRole int

const (
	// ActorRoleUnknown represents an invalid or undefined role.
	ActorRoleUnknown ActorRole = iota

	// ActorRoleOwner is a restaurant owner advancing kitchen-side statuses.
	ActorRoleOwner

	// ActorRoleCare is a customer-care agent cancelling orders.
	ActorRoleCare

	// ActorRolePartner is a delivery partner marking orders delivered.
	ActorRolePartner
)

func getActorRoleStrings() map[ActorRole]string {
	return map[ActorRole]string{
		ActorRoleOwner:   "owner",
		ActorRoleCare:    "care",
		ActorRolePartner: "delivery",
	}
}

// ActorRoleFromString parses an ActorRole from its string representation.
func ActorRoleFromString(s string) (ActorRole, error) {
	for role, str := range getActorRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return ActorRoleUnknown, errs.NewValueIsInvalidErrorWithCause("actor role",
		fmt.Errorf("%q is not a valid actor role", s))
}

// Validate checks if the ActorRole value is valid.
func (r ActorRole) Validate() error {
	if _, ok := getActorRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("actor role",
			fmt.Errorf("%d is not a valid actor role", r))
	}
	return nil
}

// String returns the string representation of the role.
func (r ActorRole) String() string {
	if str, ok := getActorRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// TransitionOrderCommand represents a request to move an order to a new
// lifecycle status on behalf of an authenticated principal.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	to      order.Status
	role    ActorRole
	userID  kernel.ID

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to change an order's status.
// The role and user identify the principal; the handler verifies that the
// principal actually controls the order's restaurant or delivery.
func NewTransitionOrderCommand(
	orderID kernel.ID,
	to order.Status,
	role ActorRole,
	userID kernel.ID,
) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTo(to),
		cmd.setRole(role),
		cmd.setUserID(userID),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// To returns the target status.
func (c TransitionOrderCommand) To() order.Status {
	return c.to
}

// Role returns the acting principal's role.
func (c TransitionOrderCommand) Role() ActorRole {
	return c.role
}

// UserID returns the acting principal's user identifier.
func (c TransitionOrderCommand) UserID() kernel.ID {
	return c.userID
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTo(to order.Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	c.to = to
	return nil
}

func (c *TransitionOrderCommand) setRole(role ActorRole) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

func (c *TransitionOrderCommand) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
