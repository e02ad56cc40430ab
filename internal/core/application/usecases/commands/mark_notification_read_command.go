package commands

import (
	"errors"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/guard"
)

var ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
	"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
)

// MarkNotificationReadCommand represents a user acknowledging one of their
// notifications.
type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	userID         kernel.ID
	notificationID kernel.ID

	guard guard.ConstructorGuard
}

// NewMarkNotificationReadCommand creates a command to mark a notification read.
func NewMarkNotificationReadCommand(userID, notificationID kernel.ID) (MarkNotificationReadCommand, error) {
	cmd := MarkNotificationReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setNotificationID(notificationID),
	); err != nil {
		return MarkNotificationReadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkNotificationReadCommandIsNotConstructed if validation fails.
func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

// UserID returns the identifier of the notification's recipient.
func (c MarkNotificationReadCommand) UserID() kernel.ID {
	return c.userID
}

// NotificationID returns the identifier of the notification to mark read.
func (c MarkNotificationReadCommand) NotificationID() kernel.ID {
	return c.notificationID
}

func (c *MarkNotificationReadCommand) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *MarkNotificationReadCommand) setNotificationID(notificationID kernel.ID) error {
	if err := notificationID.Validate(); err != nil {
		return err
	}
	c.notificationID = notificationID
	return nil
}
