package commands

import (
	"context"

	"pindrop/internal/core/ports"
)

// MarkNotificationReadCommandHandler marks a user's notification as read.
// Notifications live outside the aggregate transaction boundary, so this
// handler talks to the sink directly rather than through a unit of work.
type MarkNotificationReadCommandHandler struct {
	notifier ports.NotificationSink
}

// NewMarkNotificationReadCommandHandler creates a handler for read receipts.
func NewMarkNotificationReadCommandHandler(notifier ports.NotificationSink) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		notifier: notifier,
	}
}

// Handle processes the command. Propagates an object-not-found error if the
// notification does not exist or belongs to another user.
func (h MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.notifier.MarkRead(ctx, cmd.UserID(), cmd.NotificationID())
}
