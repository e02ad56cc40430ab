package cartrepo

import (
	"context"

	"pindrop/internal/core/domain/model/cart"
	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetByCustomer retrieves the customer's cart with all its lines.
func (r *GormCartRepository) GetByCustomer(ctx context.Context, customerID kernel.ID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartLineDTO
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "customer_id = ?", customerID.Value()).Error; err != nil {
		return nil, err
	}

	if len(dtos) == 0 {
		return nil, errs.NewObjectNotFoundError("cart", customerID.String())
	}

	return toDomain(customerID, dtos)
}

// Save persists the aggregate's current line set: removed lines are deleted,
// new lines inserted and given identifiers, existing lines updated.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	if removed := aggregate.RemovedLineIDs(); len(removed) > 0 {
		ids := make([]int64, 0, len(removed))
		for _, id := range removed {
			ids = append(ids, id.Value())
		}
		if err := db.Delete(&CartLineDTO{}, "id IN ? AND customer_id = ?",
			ids, aggregate.CustomerID().Value()).Error; err != nil {
			return err
		}
	}

	for _, line := range aggregate.Lines() {
		dto := fromDomainLine(aggregate.CustomerID(), line)

		if line.ID().IsZero() {
			if err := db.Create(&dto).Error; err != nil {
				return err
			}

			lineID, err := kernel.NewID(dto.ID)
			if err != nil {
				return err
			}
			if err = line.AssignID(lineID); err != nil {
				return err
			}
			continue
		}

		if err := db.Model(&CartLineDTO{}).
			Where("id = ?", dto.ID).
			Update("quantity", dto.Quantity).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.CustomerID(), aggregate)
	return nil
}
