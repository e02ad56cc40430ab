package notifierrepo

import (
	"context"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationSink implements NotificationSink using GORM.
type GormNotificationSink struct {
	db *gorm.DB
}

// NewGormNotificationSink creates a new GORM notification sink.
func NewGormNotificationSink(db *gorm.DB) *GormNotificationSink {
	return &GormNotificationSink{db: db}
}

// Notify records a notification message for the given user.
func (s *GormNotificationSink) Notify(ctx context.Context, userID kernel.ID, message string) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if message == "" {
		return errs.NewValueIsRequiredError("notification message")
	}

	dto := NotificationDTO{
		UserID:  userID.Value(),
		Message: message,
	}
	return s.db.WithContext(ctx).Create(&dto).Error
}

// MarkRead marks one of the user's notifications as read. The user scope is
// part of the predicate so one user cannot touch another's notifications.
func (s *GormNotificationSink) MarkRead(ctx context.Context, userID kernel.ID, notificationID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if err := notificationID.Validate(); err != nil {
		return err
	}

	result := s.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ? AND user_id = ?", notificationID.Value(), userID.Value()).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", notificationID.String())
	}

	return nil
}
