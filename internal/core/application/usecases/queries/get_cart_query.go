// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain aggregates and read projection-shaped
// responses straight from the database.
package queries

import (
	"errors"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a customer's cart with current catalog prices.
// Cart views always show today's prices; snapshotting happens at checkout.
type GetCartQuery struct {
	customerID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the customer's cart contents.
func NewGetCartQuery(customerID kernel.ID) (GetCartQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCartQueryIsNotConstructed if validation fails.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the identifier of the cart's owner.
func (q GetCartQuery) CustomerID() kernel.ID {
	return q.customerID
}

// GetCartLineResponse is one cart line with its dish joined in.
type GetCartLineResponse struct {
	LineID    kernel.ID
	DishID    kernel.ID
	DishName  string
	Quantity  int
	UnitPrice float64
	LineTotal float64
}

// GetCartQueryResponse is the customer's cart view. An empty Lines slice
// means the cart is empty or was never created.
type GetCartQueryResponse struct {
	Lines    []GetCartLineResponse
	Subtotal float64
}
