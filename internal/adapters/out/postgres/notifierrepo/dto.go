// Package notifierrepo stores in-app notifications. It implements the
// notification sink port directly on the shared database connection rather
// than through the unit of work: notifications are written after the business
// transaction has committed and must not join it.
package notifierrepo

import "time"

// NotificationDTO represents the database model for notifications.
type NotificationDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"index"`
	Message   string
	IsRead    bool
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for notifications.
func (NotificationDTO) TableName() string {
	return "notifications"
}
