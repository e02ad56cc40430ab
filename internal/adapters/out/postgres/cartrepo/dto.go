// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence. A cart has no row of its own: it is the set of cart line
// rows keyed by the customer identifier.
package cartrepo

import (
	"pindrop/internal/core/domain/model/cart"
	"pindrop/internal/core/domain/model/kernel"
)

// CartLineDTO represents one cart line row.
type CartLineDTO struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	CustomerID   int64 `gorm:"index"`
	DishID       int64
	RestaurantID int64
	Quantity     int
}

// TableName specifies the database table name for cart lines.
func (CartLineDTO) TableName() string {
	return "cart_lines"
}

// fromDomainLine converts a cart line to its database representation.
// A zero line identifier leaves the primary key unset so the store assigns it.
func fromDomainLine(customerID kernel.ID, line *cart.Line) CartLineDTO {
	return CartLineDTO{
		ID:           line.ID().Value(),
		CustomerID:   customerID.Value(),
		DishID:       line.DishID().Value(),
		RestaurantID: line.RestaurantID().Value(),
		Quantity:     line.Quantity(),
	}
}

// toDomain reconstructs the cart aggregate from its line rows.
func toDomain(customerID kernel.ID, dtos []CartLineDTO) (*cart.Cart, error) {
	lines := make([]*cart.Line, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.NewID(dto.ID)
		if err != nil {
			return nil, err
		}
		dishID, err := kernel.NewID(dto.DishID)
		if err != nil {
			return nil, err
		}
		restaurantID, err := kernel.NewID(dto.RestaurantID)
		if err != nil {
			return nil, err
		}

		line, err := cart.RestoreLine(id, dishID, restaurantID, dto.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return cart.RestoreCart(customerID, lines)
}
