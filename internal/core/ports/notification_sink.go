package ports

import (
	"context"

	"pindrop/internal/core/domain/model/kernel"
)

// NotificationSink delivers in-app notifications to users.
//
// Notifications are best effort: handlers call Notify only after their
// transaction has committed, and a failed delivery never fails the operation
// that triggered it. Callers log failures and move on.
type NotificationSink interface {
	// Notify records a notification message for the given user.
	Notify(ctx context.Context, userID kernel.ID, message string) error

	// MarkRead marks one of the user's notifications as read.
	// Returns an object-not-found error if the notification does not exist
	// or belongs to another user.
	MarkRead(ctx context.Context, userID kernel.ID, notificationID kernel.ID) error
}
