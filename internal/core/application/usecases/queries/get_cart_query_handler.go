package queries

import (
	"context"

	"pindrop/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetCartQueryHandler reads a customer's cart joined with current dish data.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart view queries.
// Requires a GORM database connection for query execution.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the cart view query.
// Lines come back in insertion order; the subtotal uses current catalog
// prices, not snapshots.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{Lines: make([]GetCartLineResponse, 0)}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			cl.id,
			cl.dish_id,
			d.name,
			cl.quantity,
			d.price
		FROM cart_lines cl
		JOIN dishes d ON d.id = cl.dish_id
		WHERE cl.customer_id = ?
		ORDER BY cl.id
	`, query.CustomerID().Value()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			lineID, dishID int64
			dishName       string
			quantity       int
			unitPrice      float64
		)

		if err = rows.Scan(&lineID, &dishID, &dishName, &quantity, &unitPrice); err != nil {
			return GetCartQueryResponse{}, err
		}

		line := GetCartLineResponse{
			DishName:  dishName,
			Quantity:  quantity,
			UnitPrice: unitPrice,
			LineTotal: unitPrice * float64(quantity),
		}

		if line.LineID, err = kernel.NewID(lineID); err != nil {
			return GetCartQueryResponse{}, err
		}
		if line.DishID, err = kernel.NewID(dishID); err != nil {
			return GetCartQueryResponse{}, err
		}

		response.Subtotal += line.LineTotal
		response.Lines = append(response.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	return response, nil
}
