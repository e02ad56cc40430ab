package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pindrop/internal/core/application/usecases/commands"
	"pindrop/internal/core/domain/model/cart"
	"pindrop/internal/core/domain/model/complaint"
	"pindrop/internal/core/domain/model/offer"
	"pindrop/internal/core/domain/model/order"
	"pindrop/internal/core/domain/services"
	"pindrop/internal/pkg/errs"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps a use case error to an HTTP response. Unrecognized errors
// become opaque 500s so internals never leak to clients.
func respondError(ctx echo.Context, err error) error {
	code, message := mapError(err)
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

func mapError(err error) (int, string) {
	var (
		invalidTransition   *order.InvalidTransitionError
		invalidStatusChange *complaint.InvalidStatusChangeError
		dishGone            *commands.DishNoLongerAvailableError
		minimumNotMet       *offer.MinimumOrderNotMetError
	)

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()

	case errors.Is(err, order.ErrActorNotAllowed):
		return http.StatusForbidden, err.Error()

	case errors.As(err, &invalidTransition),
		errors.As(err, &invalidStatusChange),
		errors.As(err, &dishGone),
		errors.As(err, &minimumNotMet),
		errors.Is(err, commands.ErrCartIsEmpty),
		errors.Is(err, commands.ErrDishUnavailable),
		errors.Is(err, commands.ErrRestaurantOutOfArea),
		errors.Is(err, commands.ErrRestaurantNotActive),
		errors.Is(err, commands.ErrNothingToReorder),
		errors.Is(err, cart.ErrMixedRestaurantCart),
		errors.Is(err, offer.ErrOfferInactive),
		errors.Is(err, offer.ErrOfferScopeMismatch),
		errors.Is(err, order.ErrPartnerNotAssigned),
		errors.Is(err, services.ErrNoPartnerAvailable),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	}

	return http.StatusInternalServerError, "internal server error"
}
