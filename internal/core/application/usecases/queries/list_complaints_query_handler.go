package queries

import (
	"context"
	"database/sql"

	"pindrop/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// ListComplaintsQueryHandler reads the complaint backlog from the database.
type ListComplaintsQueryHandler struct {
	db *gorm.DB
}

// NewListComplaintsQueryHandler creates a handler for complaint backlog queries.
// Requires a GORM database connection for query execution.
func NewListComplaintsQueryHandler(db *gorm.DB) ListComplaintsQueryHandler {
	return ListComplaintsQueryHandler{db: db}
}

// Handle executes the backlog query, oldest complaints first so the care
// team works the queue in order.
func (h ListComplaintsQueryHandler) Handle(
	ctx context.Context,
	query ListComplaintsQuery,
) ([]ListComplaintsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			customer_id,
			order_id,
			description,
			status,
			raised_at
		FROM complaints
	`
	args := make([]any, 0, 1)
	if query.Status() != nil {
		sqlQuery += ` WHERE status = ?`
		args = append(args, query.Status().String())
	}
	sqlQuery += ` ORDER BY raised_at`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	complaints := make([]ListComplaintsQueryResponse, 0)

	for rows.Next() {
		var resp ListComplaintsQueryResponse
		var id, customerID int64
		var orderID sql.NullInt64

		if err = rows.Scan(&id, &customerID, &orderID, &resp.Description,
			&resp.Status, &resp.RaisedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.NewID(id); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.NewID(customerID); err != nil {
			return nil, err
		}
		if orderID.Valid {
			oid, idErr := kernel.NewID(orderID.Int64)
			if idErr != nil {
				return nil, idErr
			}
			resp.OrderID = &oid
		}

		complaints = append(complaints, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return complaints, nil
}
