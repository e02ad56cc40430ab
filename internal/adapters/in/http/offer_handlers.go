package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pindrop/internal/core/application/usecases/commands"
	"pindrop/internal/core/application/usecases/queries"
	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/offer"
)

type createOfferRequest struct {
	Description   string  `json:"description"`
	DiscountPct   float64 `json:"discount_pct"`
	MinOrderValue float64 `json:"min_order_value"`
	Scope         string  `json:"scope"`
	RestaurantID  *int64  `json:"restaurant_id,omitempty"`
}

type createOfferResponse struct {
	OfferID int64 `json:"offer_id"`
}

type offerView struct {
	ID            int64   `json:"id"`
	Description   string  `json:"description"`
	DiscountPct   float64 `json:"discount_pct"`
	MinOrderValue float64 `json:"min_order_value"`
	Scope         string  `json:"scope"`
}

// getEligibleOffers handles GET /api/v1/offers?restaurant_id=&subtotal=.
func (s *Server) getEligibleOffers(ctx echo.Context) error {
	restaurantID, err := kernel.IDFromString(ctx.QueryParam("restaurant_id"))
	if err != nil {
		return respondError(ctx, err)
	}
	subtotal, err := strconv.ParseFloat(ctx.QueryParam("subtotal"), 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid subtotal query parameter",
		})
	}

	query, err := queries.NewGetEligibleOffersQuery(restaurantID, subtotal)
	if err != nil {
		return respondError(ctx, err)
	}

	offers, err := s.getEligibleOffersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	views := make([]offerView, len(offers))
	for i, o := range offers {
		views[i] = offerView{
			ID:            o.ID.Value(),
			Description:   o.Description,
			DiscountPct:   o.DiscountPct,
			MinOrderValue: o.MinOrderValue,
			Scope:         o.Scope,
		}
	}

	return ctx.JSON(http.StatusOK, views)
}

// createOffer handles POST /api/v1/owner/offers.
func (s *Server) createOffer(ctx echo.Context) error {
	var req createOfferRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	minOrderValue, err := kernel.NewMoneyFromFloat(req.MinOrderValue)
	if err != nil {
		return respondError(ctx, err)
	}
	scope, err := offer.ScopeFromString(req.Scope)
	if err != nil {
		return respondError(ctx, err)
	}

	var restaurantID *kernel.ID
	if req.RestaurantID != nil {
		id, err := kernel.NewID(*req.RestaurantID)
		if err != nil {
			return respondError(ctx, err)
		}
		restaurantID = &id
	}

	cmd, err := commands.NewCreateOfferCommand(
		req.Description, req.DiscountPct, minOrderValue, scope, restaurantID)
	if err != nil {
		return respondError(ctx, err)
	}

	offerID, err := s.createOfferHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOfferResponse{OfferID: offerID.Value()})
}
