package queries

import (
	"errors"
	"time"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves a user's notifications, newest first.
type GetNotificationsQuery struct {
	userID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query for the user's notifications.
func NewGetNotificationsQuery(userID kernel.ID) (GetNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetNotificationsQuery{}, err
	}
	return GetNotificationsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNotificationsQueryIsNotConstructed if validation fails.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// UserID returns the identifier of the notifications' recipient.
func (q GetNotificationsQuery) UserID() kernel.ID {
	return q.userID
}

// GetNotificationsQueryResponse is one notification in the user's feed.
type GetNotificationsQueryResponse struct {
	ID        kernel.ID
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
