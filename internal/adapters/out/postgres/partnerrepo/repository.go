package partnerrepo

import (
	"context"
	"errors"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/partner"
	"pindrop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPartnerRepository implements PartnerRepository using GORM.
type GormPartnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormPartnerRepository creates a new GORM delivery partner repository.
func NewGormPartnerRepository(db *gorm.DB, tracker aggregateTracker) *GormPartnerRepository {
	return &GormPartnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new delivery partner and assigns the store-generated
// identifier back to the aggregate.
func (r *GormPartnerRepository) Add(ctx context.Context, aggregate *partner.DeliveryPartner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	partnerID, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err = aggregate.AssignID(partnerID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(partnerID, aggregate)
	return nil
}

// Update persists changes to an existing delivery partner.
func (r *GormPartnerRepository) Update(ctx context.Context, aggregate *partner.DeliveryPartner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Save(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery partner by unique identifier.
func (r *GormPartnerRepository) Get(ctx context.Context, partnerID kernel.ID) (*partner.DeliveryPartner, error) {
	if err := partnerID.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", partnerID.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery partner", partnerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUser retrieves the delivery partner profile linked to a user account.
func (r *GormPartnerRepository) GetByUser(ctx context.Context, userID kernel.ID) (*partner.DeliveryPartner, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery partner", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailableInArea retrieves available partners covering the given area.
// Rows are locked FOR UPDATE SKIP LOCKED so concurrent dispatch transactions
// never claim the same partner.
func (r *GormPartnerRepository) GetAllAvailableInArea(
	ctx context.Context,
	areaCode kernel.AreaCode,
) ([]*partner.DeliveryPartner, error) {
	if err := areaCode.Validate(); err != nil {
		return nil, err
	}

	var dtos []PartnerDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Order("id").
		Find(&dtos, "area_code = ? AND available", areaCode.String()).Error
	if err != nil {
		return nil, err
	}

	partners := make([]*partner.DeliveryPartner, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}

	return partners, nil
}
