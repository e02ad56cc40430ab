package commands

import (
	"errors"

	"pindrop/internal/core/domain/model/complaint"
	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/guard"
)

var ErrUpdateComplaintCommandIsNotConstructed = errors.New(
	"UpdateComplaintCommand must be created via NewUpdateComplaintCommand constructor",
)

// UpdateComplaintCommand represents a care agent moving a complaint along its
// workflow.
type UpdateComplaintCommand struct { //nolint:recvcheck //using for validation
	complaintID kernel.ID
	to          complaint.Status

	guard guard.ConstructorGuard
}

// NewUpdateComplaintCommand creates a command to change a complaint's status.
func NewUpdateComplaintCommand(complaintID kernel.ID, to complaint.Status) (UpdateComplaintCommand, error) {
	cmd := UpdateComplaintCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setComplaintID(complaintID),
		cmd.setTo(to),
	); err != nil {
		return UpdateComplaintCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateComplaintCommandIsNotConstructed if validation fails.
func (c UpdateComplaintCommand) Validate() error {
	return c.guard.Validate(ErrUpdateComplaintCommandIsNotConstructed)
}

// ComplaintID returns the identifier of the complaint to update.
func (c UpdateComplaintCommand) ComplaintID() kernel.ID {
	return c.complaintID
}

// To returns the target workflow status.
func (c UpdateComplaintCommand) To() complaint.Status {
	return c.to
}

func (c *UpdateComplaintCommand) setComplaintID(complaintID kernel.ID) error {
	if err := complaintID.Validate(); err != nil {
		return err
	}
	c.complaintID = complaintID
	return nil
}

func (c *UpdateComplaintCommand) setTo(to complaint.Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	c.to = to
	return nil
}
