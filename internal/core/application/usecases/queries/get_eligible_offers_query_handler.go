package queries

import (
	"context"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/offer"

	"gorm.io/gorm"
)

// GetEligibleOffersQueryHandler reads the offers applicable to a candidate
// order from the database.
type GetEligibleOffersQueryHandler struct {
	db *gorm.DB
}

// NewGetEligibleOffersQueryHandler creates a handler for eligible offer queries.
// Requires a GORM database connection for query execution.
func NewGetEligibleOffersQueryHandler(db *gorm.DB) GetEligibleOffersQueryHandler {
	return GetEligibleOffersQueryHandler{db: db}
}

// Handle executes the eligible offer query.
// Biggest discounts come first so the transport layer can show the best
// offer on top.
func (h GetEligibleOffersQueryHandler) Handle(
	ctx context.Context,
	query GetEligibleOffersQuery,
) ([]GetEligibleOffersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	offers := make([]GetEligibleOffersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			description,
			discount_pct,
			min_order_value,
			scope
		FROM offers
		WHERE active
		  AND (scope = ? OR (scope = ? AND restaurant_id = ?))
		  AND min_order_value <= ?
		ORDER BY discount_pct DESC
	`,
		offer.ScopePlatform.String(),
		offer.ScopeRestaurant.String(),
		query.RestaurantID().Value(),
		query.Subtotal(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetEligibleOffersQueryResponse
		var id int64

		if err = rows.Scan(&id, &resp.Description, &resp.DiscountPct,
			&resp.MinOrderValue, &resp.Scope); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.NewID(id); err != nil {
			return nil, err
		}

		offers = append(offers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return offers, nil
}
