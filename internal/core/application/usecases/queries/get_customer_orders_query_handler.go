package queries

import (
	"context"

	"pindrop/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler reads a customer's order history from the
// database.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the order history query, newest orders first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCustomerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			r.name,
			o.status,
			o.total,
			o.eta_minutes,
			o.placed_at
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.customer_id = ?
		ORDER BY o.placed_at DESC
	`, query.CustomerID().Value()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCustomerOrdersQueryResponse
		var id int64

		if err = rows.Scan(&id, &resp.RestaurantName, &resp.Status, &resp.Total,
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
