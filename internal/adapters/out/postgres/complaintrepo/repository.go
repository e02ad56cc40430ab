package complaintrepo

import (
	"context"
	"errors"

	"pindrop/internal/core/domain/model/complaint"
	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormComplaintRepository implements ComplaintRepository using GORM.
type GormComplaintRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormComplaintRepository creates a new GORM complaint repository.
func NewGormComplaintRepository(db *gorm.DB, tracker aggregateTracker) *GormComplaintRepository {
	return &GormComplaintRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a newly raised complaint and assigns the store-generated
// identifier back to the aggregate.
func (r *GormComplaintRepository) Add(ctx context.Context, aggregate *complaint.Complaint) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	complaintID, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err = aggregate.AssignID(complaintID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(complaintID, aggregate)
	return nil
}

// Update persists changes to an existing complaint.
func (r *GormComplaintRepository) Update(ctx context.Context, aggregate *complaint.Complaint) error {
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

// Get retrieves a complaint by unique identifier.
func (r *GormComplaintRepository) Get(ctx context.Context, complaintID kernel.ID) (*complaint.Complaint, error) {
	if err := complaintID.Validate(); err != nil {
		return nil, err
	}

	var dto ComplaintDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", complaintID.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("complaint", complaintID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
