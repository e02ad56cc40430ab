package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"pindrop/internal/core/application/usecases/commands"
	"pindrop/internal/core/application/usecases/queries"
	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/order"
)

type changeOrderStatusRequest struct {
	Status string `json:"status"`
}

type customerOrderView struct {
	ID             int64     `json:"id"`
	RestaurantName string    `json:"restaurant_name"`
	Status         string    `json:"status"`
	Total          float64   `json:"total"`
	ETAMinutes     int       `json:"eta_minutes"`
	PlacedAt       time.Time `json:"placed_at"`
}

type restaurantOrderView struct {
	ID             int64     `json:"id"`
	RestaurantName string    `json:"restaurant_name"`
	CustomerID     int64     `json:"customer_id"`
	Status         string    `json:"status"`
	Total          float64   `json:"total"`
	PlacedAt       time.Time `json:"placed_at"`
}

type assignedOrderView struct {
	ID             int64     `json:"id"`
	RestaurantName string    `json:"restaurant_name"`
	AreaCode       string    `json:"area_code"`
	Total          float64   `json:"total"`
	ETAMinutes     int       `json:"eta_minutes"`
	PlacedAt       time.Time `json:"placed_at"`
}

// getCustomerOrders handles GET /api/v1/orders.
func (s *Server) getCustomerOrders(ctx echo.Context) error {
	p := principalFrom(ctx)

	query, err := queries.NewGetCustomerOrdersQuery(p.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	views := make([]customerOrderView, len(orders))
	for i, o := range orders {
		views[i] = customerOrderView{
			ID:             o.ID.Value(),
			RestaurantName: o.RestaurantName,
			Status:         o.Status,
			Total:          o.Total,
			ETAMinutes:     o.ETAMinutes,
			PlacedAt:       o.PlacedAt,
		}
	}

	return ctx.JSON(http.StatusOK, views)
}

// getRestaurantOrders handles GET /api/v1/owner/orders.
func (s *Server) getRestaurantOrders(ctx echo.Context) error {
	p := principalFrom(ctx)

	query, err := queries.NewGetRestaurantOrdersQuery(p.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getRestaurantOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	views := make([]restaurantOrderView, len(orders))
	for i, o := range orders {
		views[i] = restaurantOrderView{
			ID:             o.ID.Value(),
			RestaurantName: o.RestaurantName,
			CustomerID:     o.CustomerID.Value(),
			Status:         o.Status,
			Total:          o.Total,
			PlacedAt:       o.PlacedAt,
		}
	}

	return ctx.JSON(http.StatusOK, views)
}

// getAssignedOrders handles GET /api/v1/partner/orders.
func (s *Server) getAssignedOrders(ctx echo.Context) error {
	p := principalFrom(ctx)

	query, err := queries.NewGetAssignedOrdersQuery(p.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getAssignedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	views := make([]assignedOrderView, len(orders))
	for i, o := range orders {
		views[i] = assignedOrderView{
			ID:             o.ID.Value(),
			RestaurantName: o.RestaurantName,
			AreaCode:       o.AreaCode,
			Total:          o.Total,
			ETAMinutes:     o.ETAMinutes,
			PlacedAt:       o.PlacedAt,
		}
	}

	return ctx.JSON(http.StatusOK, views)
}

// changeOrderStatus handles POST /api/v1/orders/:orderID/status.
// The acting role comes from the principal, not the request body.
func (s *Server) changeOrderStatus(ctx echo.Context) error {
	p := principalFrom(ctx)

	orderID, err := kernel.IDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req changeOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	to, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}
	role, err := commands.ActorRoleFromString(p.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, to, role, p.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
