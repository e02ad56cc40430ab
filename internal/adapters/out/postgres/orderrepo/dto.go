// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The order row carries the immutable charge breakdown;
// the priced lines live in their own table.
package orderrepo

import (
	"time"

	"github.com/shopspring/decimal"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/order"
)

// OrderDTO represents the database model for orders.
// Monetary columns use numeric to keep the charge snapshot exact.
type OrderDTO struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	CustomerID   int64           `gorm:"index"`
	RestaurantID int64           `gorm:"index"`
	Subtotal     decimal.Decimal `gorm:"type:numeric"`
	Discount     decimal.Decimal `gorm:"type:numeric"`
	Fee          decimal.Decimal `gorm:"type:numeric"`
	Total        decimal.Decimal `gorm:"type:numeric"`
	OfferID      *int64
	PaymentMode  string
	Status       string `gorm:"index"`
	PartnerID    *int64 `gorm:"index"`
	ETAMinutes   int
	PlacedAt     time.Time

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one priced order line row.
type OrderLineDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"index"`
	DishID    int64
	DishName  string
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for order lines.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation.
// Line rows are produced separately so the repository controls their inserts.
func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:           o.ID().Value(),
		CustomerID:   o.CustomerID().Value(),
		RestaurantID: o.RestaurantID().Value(),
		Subtotal:     o.Charges().Subtotal.Amount(),
		Discount:     o.Charges().Discount.Amount(),
		Fee:          o.Charges().Fee.Amount(),
		Total:        o.Charges().Total.Amount(),
		PaymentMode:  o.PaymentMode().String(),
		Status:       o.Status().String(),
		ETAMinutes:   o.ETAMinutes(),
		PlacedAt:     o.PlacedAt(),
	}

	if offerID := o.OfferID(); offerID != nil {
		v := offerID.Value()
		dto.OfferID = &v
	}
	if partnerID := o.Partner(); partnerID != nil {
		v := partnerID.Value()
		dto.PartnerID = &v
	}

	return dto
}

// fromDomainLine converts an order line to its database representation.
func fromDomainLine(orderID kernel.ID, line *order.Line) OrderLineDTO {
	return OrderLineDTO{
		ID:        line.ID().Value(),
		OrderID:   orderID.Value(),
		DishID:    line.DishID().Value(),
		DishName:  line.DishName(),
		Quantity:  line.Quantity(),
		UnitPrice: line.UnitPrice().Amount(),
	}
}

// toDomain reconstructs the order aggregate from its row and line rows.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.NewID(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.NewID(dto.RestaurantID)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, err := toDomainLine(lineDTO)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	charges, err := toDomainCharges(dto)
	if err != nil {
		return nil, err
	}

	var offerID *kernel.ID
	if dto.OfferID != nil {
		v, err := kernel.NewID(*dto.OfferID)
		if err != nil {
			return nil, err
		}
		offerID = &v
	}

	var partnerID *kernel.ID
	if dto.PartnerID != nil {
		v, err := kernel.NewID(*dto.PartnerID)
		if err != nil {
			return nil, err
		}
		partnerID = &v
	}

	paymentMode, err := order.PaymentModeFromString(dto.PaymentMode)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		restaurantID,
		lines,
		charges,
		offerID,
		paymentMode,
		status,
		partnerID,
		dto.ETAMinutes,
		dto.PlacedAt,
	)
}

func toDomainLine(dto OrderLineDTO) (*order.Line, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	dishID, err := kernel.NewID(dto.DishID)
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreLine(id, dishID, dto.DishName, dto.Quantity, unitPrice)
}

func toDomainCharges(dto OrderDTO) (order.Charges, error) {
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return order.Charges{}, err
	}
	discount, err := kernel.NewMoney(dto.Discount)
	if err != nil {
		return order.Charges{}, err
	}
	fee, err := kernel.NewMoney(dto.Fee)
	if err != nil {
		return order.Charges{}, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return order.Charges{}, err
	}

	return order.Charges{
		Subtotal: subtotal,
		Discount: discount,
		Fee:      fee,
		Total:    total,
	}, nil
}
