// Package catalogrepo provides read-only access to the restaurant and dish
// catalog. The ordering core never writes these tables; another part of the
// platform owns them.
package catalogrepo

import (
	"github.com/shopspring/decimal"

	"pindrop/internal/core/domain/model/catalog"
	"pindrop/internal/core/domain/model/kernel"
)

// RestaurantDTO represents the database model for restaurants.
type RestaurantDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	Name        string
	AreaCode    string          `gorm:"index"`
	Fee         decimal.Decimal `gorm:"type:numeric"`
	Active      bool
	OwnerUserID *int64
}

// TableName specifies the database table name for restaurants.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// DishDTO represents the database model for dishes.
type DishDTO struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	RestaurantID int64 `gorm:"index"`
	Name         string
	Price        decimal.Decimal `gorm:"type:numeric"`
	Available    bool
}

// TableName specifies the database table name for dishes.
func (DishDTO) TableName() string {
	return "dishes"
}

// toDomainRestaurant reconstructs a restaurant read model from its row.
func toDomainRestaurant(dto RestaurantDTO) (*catalog.Restaurant, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	areaCode, err := kernel.NewAreaCode(dto.AreaCode)
	if err != nil {
		return nil, err
	}
	fee, err := kernel.NewMoney(dto.Fee)
	if err != nil {
		return nil, err
	}

	var ownerID *kernel.ID
	if dto.OwnerUserID != nil {
		v, err := kernel.NewID(*dto.OwnerUserID)
		if err != nil {
			return nil, err
		}
		ownerID = &v
	}

	return catalog.RestoreRestaurant(id, dto.Name, areaCode, fee, dto.Active, ownerID)
}

// toDomainDish reconstructs a dish read model from its row.
func toDomainDish(dto DishDTO) (*catalog.Dish, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.NewID(dto.RestaurantID)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreDish(id, restaurantID, dto.Name, price, dto.Available)
}
