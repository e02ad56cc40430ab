package queries

import (
	"context"

	"pindrop/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetRestaurantOrdersQueryHandler reads the incoming orders of an owner's
// restaurants from the database.
type GetRestaurantOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantOrdersQueryHandler creates a handler for owner order queries.
// Requires a GORM database connection for query execution.
func NewGetRestaurantOrdersQueryHandler(db *gorm.DB) GetRestaurantOrdersQueryHandler {
	return GetRestaurantOrdersQueryHandler{db: db}
}

// Handle executes the owner order query, newest orders first.
// Joining on the owner's user account scopes the result to their restaurants.
func (h GetRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOrdersQuery,
) ([]GetRestaurantOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetRestaurantOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			r.name,
			o.customer_id,
			o.status,
			o.total,
			o.placed_at
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE r.owner_user_id = ?
		ORDER BY o.placed_at DESC
	`, query.OwnerUserID().Value()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetRestaurantOrdersQueryResponse
		var id, customerID int64

		if err = rows.Scan(&id, &resp.RestaurantName, &customerID, &resp.Status,
			&resp.Total, &resp.PlacedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.NewID(id); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.NewID(customerID); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
