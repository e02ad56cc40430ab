package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pindrop/internal/core/application/usecases/commands"
	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/order"
)

type checkoutRequest struct {
	PaymentMode string `json:"payment_mode"`
	OfferID     *int64 `json:"offer_id,omitempty"`
}

type checkoutResponse struct {
	OrderID    int64   `json:"order_id"`
	Subtotal   float64 `json:"subtotal"`
	Discount   float64 `json:"discount"`
	Fee        float64 `json:"fee"`
	Total      float64 `json:"total"`
	ETAMinutes int     `json:"eta_minutes"`
}

// checkout handles POST /api/v1/checkout.
func (s *Server) checkout(ctx echo.Context) error {
	p := principalFrom(ctx)

	var req checkoutRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	area, err := kernel.NewAreaCode(p.AreaCode)
	if err != nil {
		return respondError(ctx, err)
	}
	paymentMode, err := order.PaymentModeFromString(req.PaymentMode)
	if err != nil {
		return respondError(ctx, err)
	}

	var offerID *kernel.ID
	if req.OfferID != nil {
		id, err := kernel.NewID(*req.OfferID)
		if err != nil {
			return respondError(ctx, err)
		}
		offerID = &id
	}

	cmd, err := commands.NewCheckoutCommand(p.UserID, area, paymentMode, offerID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, checkoutResponse{
		OrderID:    result.OrderID.Value(),
		Subtotal:   result.Charges.Subtotal.Float64(),
		Discount:   result.Charges.Discount.Float64(),
		Fee:        result.Charges.Fee.Float64(),
		Total:      result.Charges.Total.Float64(),
		ETAMinutes: result.ETAMinutes,
	})
}

// reorder handles POST /api/v1/orders/:orderID/reorder.
// Rebuilds the cart from a past order; the customer checks out again normally.
func (s *Server) reorder(ctx echo.Context) error {
	p := principalFrom(ctx)

	orderID, err := kernel.IDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}
	area, err := kernel.NewAreaCode(p.AreaCode)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReorderCommand(p.UserID, area, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.reorderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}
