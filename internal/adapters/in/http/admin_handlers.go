package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pindrop/internal/core/application/usecases/queries"
)

type platformStatsView struct {
	TotalOrders      int64   `json:"total_orders"`
	DeliveredOrders  int64   `json:"delivered_orders"`
	CancelledOrders  int64   `json:"cancelled_orders"`
	DeliveredRevenue float64 `json:"delivered_revenue"`
	OpenComplaints   int64   `json:"open_complaints"`
}

// getPlatformStats handles GET /api/v1/admin/stats.
func (s *Server) getPlatformStats(ctx echo.Context) error {
	query := queries.NewGetPlatformStatsQuery()

	stats, err := s.getPlatformStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, platformStatsView{
		TotalOrders:      stats.TotalOrders,
		DeliveredOrders:  stats.DeliveredOrders,
		CancelledOrders:  stats.CancelledOrders,
		DeliveredRevenue: stats.DeliveredRevenue,
		OpenComplaints:   stats.OpenComplaints,
	})
}
