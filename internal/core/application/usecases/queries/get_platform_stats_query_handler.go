package queries

import (
	"context"

	"pindrop/internal/core/domain/model/complaint"
	"pindrop/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPlatformStatsQueryHandler reads platform-wide counters from the database.
type GetPlatformStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetPlatformStatsQueryHandler creates a handler for platform stat queries.
// Requires a GORM database connection for query execution.
func NewGetPlatformStatsQueryHandler(db *gorm.DB) GetPlatformStatsQueryHandler {
	return GetPlatformStatsQueryHandler{db: db}
}

// Handle executes the stats query in a single round trip.
func (h GetPlatformStatsQueryHandler) Handle(
	ctx context.Context,
	query GetPlatformStatsQuery,
) (GetPlatformStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPlatformStatsQueryResponse{}, err
	}

	var resp GetPlatformStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status = @delivered),
			(SELECT COUNT(*) FROM orders WHERE status = @cancelled),
			(SELECT COALESCE(SUM(total), 0) FROM orders WHERE status = @delivered),
			(SELECT COUNT(*) FROM complaints WHERE status = @open)
	`,
		map[string]any{
			"delivered": order.StatusDelivered.String(),
			"cancelled": order.StatusCancelled.String(),
			"open":      complaint.StatusOpen.String(),
		},
	).Row()

	if err := row.Scan(
		&resp.TotalOrders,
		&resp.DeliveredOrders,
		&resp.CancelledOrders,
		&resp.DeliveredRevenue,
		&resp.OpenComplaints,
	); err != nil {
		return GetPlatformStatsQueryResponse{}, err
	}

	return resp, nil
}
