package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"pindrop/internal/core/application/usecases/commands"
	"pindrop/internal/core/application/usecases/queries"
	"pindrop/internal/core/domain/model/kernel"
)

type notificationView struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// getNotifications handles GET /api/v1/notifications.
func (s *Server) getNotifications(ctx echo.Context) error {
	p := principalFrom(ctx)

	query, err := queries.NewGetNotificationsQuery(p.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	notifications, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	views := make([]notificationView, len(notifications))
	for i, n := range notifications {
		views[i] = notificationView{
			ID:        n.ID.Value(),
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, views)
}

// markNotificationRead handles POST /api/v1/notifications/:notificationID/read.
func (s *Server) markNotificationRead(ctx echo.Context) error {
	p := principalFrom(ctx)

	notificationID, err := kernel.IDFromString(ctx.Param("notificationID"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(p.UserID, notificationID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.markNotificationReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
