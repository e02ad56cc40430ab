package commands

import (
	"errors"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/guard"
)

var ErrTogglePartnerAvailabilityCommandIsNotConstructed = errors.New(
	"TogglePartnerAvailabilityCommand must be created via NewTogglePartnerAvailabilityCommand constructor",
)

// TogglePartnerAvailabilityCommand represents a delivery partner going on or
// off shift.
type TogglePartnerAvailabilityCommand struct { //nolint:recvcheck //using for validation
	userID kernel.ID

	guard guard.ConstructorGuard
}

// NewTogglePartnerAvailabilityCommand creates a command to flip the partner's
// availability, identified by their user account.
func NewTogglePartnerAvailabilityCommand(userID kernel.ID) (TogglePartnerAvailabilityCommand, error) {
	cmd := TogglePartnerAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return TogglePartnerAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTogglePartnerAvailabilityCommandIsNotConstructed if validation fails.
func (c TogglePartnerAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrTogglePartnerAvailabilityCommandIsNotConstructed)
}

// UserID returns the partner's user account identifier.
func (c TogglePartnerAvailabilityCommand) UserID() kernel.ID {
	return c.userID
}

func (c *TogglePartnerAvailabilityCommand) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
