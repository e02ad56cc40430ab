package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pindrop/internal/core/application/usecases/commands"
	"pindrop/internal/core/application/usecases/queries"
	"pindrop/internal/core/domain/model/kernel"
)

type addToCartRequest struct {
	DishID   int64 `json:"dish_id"`
	Quantity int   `json:"quantity"`
}

type cartLineView struct {
	LineID    int64   `json:"line_id"`
	DishID    int64   `json:"dish_id"`
	DishName  string  `json:"dish_name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type cartView struct {
	Lines    []cartLineView `json:"lines"`
	Subtotal float64        `json:"subtotal"`
}

// getCart handles GET /api/v1/cart.
func (s *Server) getCart(ctx echo.Context) error {
	p := principalFrom(ctx)

	query, err := queries.NewGetCartQuery(p.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	view := cartView{
		Lines:    make([]cartLineView, len(resp.Lines)),
		Subtotal: resp.Subtotal,
	}
	for i, line := range resp.Lines {
		view.Lines[i] = cartLineView{
			LineID:    line.LineID.Value(),
			DishID:    line.DishID.Value(),
			DishName:  line.DishName,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.LineTotal,
		}
	}

	return ctx.JSON(http.StatusOK, view)
}

// addToCart handles POST /api/v1/cart/items.
func (s *Server) addToCart(ctx echo.Context) error {
	p := principalFrom(ctx)

	var req addToCartRequest
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
	dishID, err := kernel.NewID(req.DishID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddToCartCommand(p.UserID, area, dishID, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.addToCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// removeCartLine handles DELETE /api/v1/cart/items/:lineID.
func (s *Server) removeCartLine(ctx echo.Context) error {
	p := principalFrom(ctx)

	lineID, err := kernel.IDFromString(ctx.Param("lineID"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveCartLineCommand(p.UserID, lineID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.removeCartLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// clearCart handles DELETE /api/v1/cart.
func (s *Server) clearCart(ctx echo.Context) error {
	p := principalFrom(ctx)

	cmd, err := commands.NewClearCartCommand(p.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.clearCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
