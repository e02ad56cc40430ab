package orderrepo

import (
	"context"
	"errors"
	"time"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/order"
	"pindrop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a freshly checked-out order and its lines, then assigns the
// store-generated identifiers back to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	dto := fromDomain(aggregate)
	if err := db.Omit("Lines").Create(&dto).Error; err != nil {
		return err
	}

	orderID, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err = aggregate.AssignID(orderID); err != nil {
		return err
	}

	for _, line := range aggregate.Lines() {
		lineDTO := fromDomainLine(orderID, line)
		if err := db.Create(&lineDTO).Error; err != nil {
			return err
		}

		lineID, err := kernel.NewID(lineDTO.ID)
		if err != nil {
			return err
		}
		if err = line.AssignID(lineID); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(orderID, aggregate)
	return nil
}

// Update persists the mutable part of an existing order. Everything else on
// the row is an immutable checkout snapshot, so only the lifecycle status and
// the partner assignment are written.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":     dto.Status,
			"partner_id": dto.PartnerID,
		}).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its lines by unique identifier.
//
// The order row is locked FOR UPDATE so concurrent transitions on the same
// order serialize on the fetch instead of racing on status and partner_id.
func (r *GormOrderRepository) Get(ctx context.Context, orderID kernel.ID) (*order.Order, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Lines").
		First(&dto, "id = ?", orderID.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPlacedBefore retrieves orders still in Placed status whose checkout
// happened before the cutoff. Used by the stale order reminder job.
func (r *GormOrderRepository) GetAllPlacedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("status = ? AND placed_at < ?", order.StatusPlaced.String(), cutoff).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
