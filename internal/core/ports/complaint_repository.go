package ports

import (
	"context"

	"pindrop/internal/core/domain/model/complaint"
	"pindrop/internal/core/domain/model/kernel"
)

// ComplaintRepository defines the persistence contract for complaint
// aggregates.
type ComplaintRepository interface {
	// Add persists a new complaint aggregate, assigning its identifier.
	Add(ctx context.Context, aggregate *complaint.Complaint) error

	// Update persists changes to an existing complaint aggregate.
	Update(ctx context.Context, aggregate *complaint.Complaint) error

	// Get retrieves a complaint aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*complaint.Complaint, error)
}
