package queries

import (
	"errors"
	"time"

	"pindrop/internal/core/domain/model/complaint"
	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/guard"
)

var ErrListComplaintsQueryIsNotConstructed = errors.New(
	"ListComplaintsQuery must be created via NewListComplaintsQuery constructor",
)

// ListComplaintsQuery retrieves complaints for the care team, optionally
// filtered by workflow status.
type ListComplaintsQuery struct {
	status *complaint.Status

	guard guard.ConstructorGuard
}

// NewListComplaintsQuery creates a query over the complaint backlog.
// A nil status returns complaints in every status.
func NewListComplaintsQuery(status *complaint.Status) (ListComplaintsQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListComplaintsQuery{}, err
		}
	}
	return ListComplaintsQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListComplaintsQueryIsNotConstructed if validation fails.
func (q ListComplaintsQuery) Validate() error {
	return q.guard.Validate(ErrListComplaintsQueryIsNotConstructed)
}

// Status returns the workflow status filter, or nil for all statuses.
func (q ListComplaintsQuery) Status() *complaint.Status {
	return q.status
}

// ListComplaintsQueryResponse is one complaint in the care backlog.
type ListComplaintsQueryResponse struct {
	ID          kernel.ID
	CustomerID  kernel.ID
	OrderID     *kernel.ID
	Description string
	Status      string
	RaisedAt    time.Time
}
