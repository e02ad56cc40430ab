package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pindrop/internal/core/application/usecases/commands"
)

type toggleAvailabilityResponse struct {
	Available bool `json:"available"`
}

// toggleAvailability handles POST /api/v1/partner/availability.
// Flips the partner's shift state and returns the new value.
func (s *Server) toggleAvailability(ctx echo.Context) error {
	p := principalFrom(ctx)

	cmd, err := commands.NewTogglePartnerAvailabilityCommand(p.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	available, err := s.toggleAvailabilityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toggleAvailabilityResponse{Available: available})
}
