package queries

import (
	"context"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAssignedOrdersQueryHandler reads a delivery partner's active deliveries
// from the database.
type GetAssignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignedOrdersQueryHandler creates a handler for active delivery queries.
// Requires a GORM database connection for query execution.
func NewGetAssignedOrdersQueryHandler(db *gorm.DB) GetAssignedOrdersQueryHandler {
	return GetAssignedOrdersQueryHandler{db: db}
}

// Handle executes the active delivery query.
// Only orders in Out for Delivery status carried by this partner come back.
func (h GetAssignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedOrdersQuery,
) ([]GetAssignedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAssignedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			r.name,
			r.area_code,
			o.total,
			o.eta_minutes,
			o.placed_at
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		JOIN delivery_partners p ON p.id = o.partner_id
		WHERE p.user_id = ? AND o.status = ?
		ORDER BY o.placed_at
	`, query.PartnerUserID().Value(), order.StatusOutForDelivery.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAssignedOrdersQueryResponse
		var id int64

		if err = rows.Scan(&id, &resp.RestaurantName, &resp.AreaCode, &resp.Total,
			&resp.ETAMinutes, &resp.PlacedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.NewID(id); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
