// Package offerrepo provides data transfer objects and mapping functions for
// offer persistence.
package offerrepo

import (
	"github.com/shopspring/decimal"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/offer"
)

// OfferDTO represents the database model for offers.
type OfferDTO struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Description   string
	DiscountPct   float64
	MinOrderValue decimal.Decimal `gorm:"type:numeric"`
	Scope         string          `gorm:"index"`
	RestaurantID  *int64          `gorm:"index"`
	Active        bool
}

// TableName specifies the database table name for offers.
func (OfferDTO) TableName() string {
	return "offers"
}

// fromDomain converts an offer aggregate to its database representation.
func fromDomain(o *offer.Offer) OfferDTO {
	dto := OfferDTO{
		ID:            o.ID().Value(),
		Description:   o.Description(),
		DiscountPct:   o.DiscountPercentage(),
		MinOrderValue: o.MinimumOrderValue().Amount(),
		Scope:         o.Scope().String(),
		Active:        o.IsActive(),
	}

	if restaurantID := o.RestaurantID(); restaurantID != nil {
		v := restaurantID.Value()
		dto.RestaurantID = &v
	}

	return dto
}

// toDomain reconstructs the offer aggregate from its row.
func toDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	minOrderValue, err := kernel.NewMoney(dto.MinOrderValue)
	if err != nil {
		return nil, err
	}

	scope, err := offer.ScopeFromString(dto.Scope)
	if err != nil {
		return nil, err
	}

	var restaurantID *kernel.ID
	if dto.RestaurantID != nil {
		v, err := kernel.NewID(*dto.RestaurantID)
		if err != nil {
			return nil, err
		}
		restaurantID = &v
	}

	return offer.RestoreOffer(
		id,
		dto.Description,
		dto.DiscountPct,
		minOrderValue,
		scope,
		restaurantID,
		dto.Active,
	)
}
