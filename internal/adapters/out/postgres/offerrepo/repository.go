package offerrepo

import (
	"context"
	"errors"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/offer"
	"pindrop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOfferRepository implements OfferRepository using GORM.
type GormOfferRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormOfferRepository creates a new GORM offer repository.
func NewGormOfferRepository(db *gorm.DB, tracker aggregateTracker) *GormOfferRepository {
	return &GormOfferRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new offer and assigns the store-generated identifier back to
// the aggregate.
func (r *GormOfferRepository) Add(ctx context.Context, aggregate *offer.Offer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	offerID, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err = aggregate.AssignID(offerID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(offerID, aggregate)
	return nil
}

// Update persists changes to an existing offer.
func (r *GormOfferRepository) Update(ctx context.Context, aggregate *offer.Offer) error {
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

// Get retrieves an offer by unique identifier.
func (r *GormOfferRepository) Get(ctx context.Context, offerID kernel.ID) (*offer.Offer, error) {
	if err := offerID.Validate(); err != nil {
		return nil, err
	}

	var dto OfferDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", offerID.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", offerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
