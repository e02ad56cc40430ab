// Package partnerrepo provides data transfer objects and mapping functions
// for delivery partner persistence.
package partnerrepo

import (
	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/partner"
)

// PartnerDTO represents the database model for delivery partners.
type PartnerDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"uniqueIndex"`
	AreaCode  string `gorm:"index"`
	Available bool
}

// TableName specifies the database table name for delivery partners.
func (PartnerDTO) TableName() string {
	return "delivery_partners"
}

// fromDomain converts a partner aggregate to its database representation.
func fromDomain(p *partner.DeliveryPartner) PartnerDTO {
	return PartnerDTO{
		ID:        p.ID().Value(),
		UserID:    p.UserID().Value(),
		AreaCode:  p.AreaCode().String(),
		Available: p.IsAvailable(),
	}
}

// toDomain reconstructs the partner aggregate from its row.
func toDomain(dto PartnerDTO) (*partner.DeliveryPartner, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.NewID(dto.UserID)
	if err != nil {
		return nil, err
	}
	areaCode, err := kernel.NewAreaCode(dto.AreaCode)
	if err != nil {
		return nil, err
	}

	return partner.RestoreDeliveryPartner(id, userID, areaCode, dto.Available)
}
