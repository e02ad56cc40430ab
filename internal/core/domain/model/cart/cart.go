// Package cart contains the Cart aggregate: a per-customer mutable bag of
// (dish, quantity) lines with a single-restaurant invariant.
package cart

import (
	"errors"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created
	// through one of the factory methods.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")

	// ErrMixedRestaurantCart is returned when adding a dish from a different
	// restaurant than the one the cart already holds lines for.
	ErrMixedRestaurantCart = errors.New("cart can only hold dishes from one restaurant at a time")
)

// Cart is the aggregate root for a customer's cart.
//
// Invariants:
//   - Every line references the same restaurant; a violating add is rejected
//     before any mutation
//   - Line quantities are at least 1; adding an existing dish merges quantity
//
// Lifecycle: created on first add, mutated by add/remove/merge, destroyed by
// explicit clear or by successful checkout. The aggregate tracks removed line
// identifiers so the repository can persist deletions.
type Cart struct {
	customerID   kernel.ID
	lines        []*Line
	removedLines []kernel.ID

	isConstructed bool
}

// NewCart creates an empty cart for a customer.
func NewCart(customerID kernel.ID) (*Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return &Cart{
		customerID:    customerID,
		isConstructed: true,
	}, nil
}

// RestoreCart reconstructs a cart aggregate from persistent storage.
// All lines must belong to the same restaurant; a violating line set indicates
// corrupted state and is rejected.
func RestoreCart(customerID kernel.ID, lines []*Line) (*Cart, error) {
	c, err := NewCart(customerID)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
		if len(c.lines) > 0 && !c.lines[0].RestaurantID().IsEqual(line.RestaurantID()) {
			return nil, ErrMixedRestaurantCart
		}
		c.lines = append(c.lines, line)
	}

	return c, nil
}

// Validate ensures the cart was created through a constructor.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// CustomerID returns the identifier of the cart's owner.
func (c *Cart) CustomerID() kernel.ID {
	return c.customerID
}

// Lines returns the current cart lines in insertion order.
// The returned slice is a copy to prevent external modification.
func (c *Cart) Lines() []*Line {
	out := make([]*Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// RemovedLineIDs returns identifiers of persisted lines removed since the
// cart was loaded. Consumed by the repository when saving.
func (c *Cart) RemovedLineIDs() []kernel.ID {
	out := make([]kernel.ID, len(c.removedLines))
	copy(out, c.removedLines)
	return out
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// RestaurantID returns the restaurant all cart lines belong to.
// Returns nil for an empty cart.
func (c *Cart) RestaurantID() *kernel.ID {
	if len(c.lines) == 0 {
		return nil
	}
	id := c.lines[0].RestaurantID()
	return &id
}

// TotalQuantity returns the total number of units across all lines.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, line := range c.lines {
		total += line.quantity
	}
	return total
}

// AddItem adds a dish to the cart, merging quantity into an existing line for
// the same dish or appending a new line.
//
// Returns ErrMixedRestaurantCart if the cart already holds lines from a
// different restaurant; the cart is left unmodified in that case. Dish
// availability and area checks are the caller's responsibility since they
// require catalog reads.
func (c *Cart) AddItem(dishID, restaurantID kernel.ID, quantity int) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if existing := c.RestaurantID(); existing != nil && !existing.IsEqual(restaurantID) {
		return ErrMixedRestaurantCart
	}

	for _, line := range c.lines {
		if line.DishID().IsEqual(dishID) {
			return line.increaseQuantity(quantity)
		}
	}

	line, err := NewLine(dishID, restaurantID, quantity)
	if err != nil {
		return err
	}

	c.lines = append(c.lines, line)
	return nil
}

// RemoveLine removes a line by its identifier.
// Returns an object-not-found error if no such line exists in this cart.
func (c *Cart) RemoveLine(lineID kernel.ID) error {
	if err := c.Validate(); err != nil {
		return err
	}

	for i, line := range c.lines {
		if line.ID().IsEqual(lineID) {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.removedLines = append(c.removedLines, lineID)
			return nil
		}
	}

	return errs.NewObjectNotFoundError("cart line", lineID.String())
}

// Clear removes every line from the cart. Idempotent: clearing an empty cart
// is a no-op.
func (c *Cart) Clear() {
	for _, line := range c.lines {
		if !line.ID().IsZero() {
			c.removedLines = append(c.removedLines, line.ID())
		}
	}
	c.lines = nil
}
