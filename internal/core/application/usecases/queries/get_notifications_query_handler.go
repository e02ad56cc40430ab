package queries

import (
	"context"

	"pindrop/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetNotificationsQueryHandler reads a user's notification feed from the
// database.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for notification queries.
// Requires a GORM database connection for query execution.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle executes the notification feed query, newest first.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) ([]GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	notifications := make([]GetNotificationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			message,
			is_read,
			created_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().Value()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetNotificationsQueryResponse
		var id int64

		if err = rows.Scan(&id, &resp.Message, &resp.IsRead, &resp.CreatedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.NewID(id); err != nil {
			return nil, err
		}

		notifications = append(notifications, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
