package queries

import (
	"errors"
	"time"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves a customer's order history, newest first.
type GetCustomerOrdersQuery struct {
	customerID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for the customer's order history.
func NewGetCustomerOrdersQuery(customerID kernel.ID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerOrdersQueryIsNotConstructed if validation fails.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer.
func (q GetCustomerOrdersQuery) CustomerID() kernel.ID {
	return q.customerID
}

// GetCustomerOrdersQueryResponse is one order in the customer's history.
type GetCustomerOrdersQueryResponse struct {
	ID             kernel.ID
	RestaurantName string
	Status         string
	Total          float64
	ETAMinutes     int
	PlacedAt       time.Time
}
