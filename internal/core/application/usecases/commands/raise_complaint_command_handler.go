package commands

import (
	"context"
	"time"

	"pindrop/internal/core/domain/model/complaint"
	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/pkg/errs"
)

// RaiseComplaintCommandHandler records a new customer complaint in Open
// status for the care team to work.
type RaiseComplaintCommandHandler struct {
	uowFactory ComplaintUoWFactory
}

// NewRaiseComplaintCommandHandler creates a handler for raising complaints.
func NewRaiseComplaintCommandHandler(uowFactory ComplaintUoWFactory) RaiseComplaintCommandHandler {
	return RaiseComplaintCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the complaint and returns its assigned identifier.
// A referenced order must exist and belong to the complaining customer;
// anyone else gets an object-not-found error.
func (h RaiseComplaintCommandHandler) Handle(ctx context.Context, cmd RaiseComplaintCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if cmd.OrderID() != nil {
		o, err := uow.OrderRepository().Get(ctx, *cmd.OrderID())
		if err != nil {
			return kernel.ID{}, err
		}
		if !o.CustomerID().IsEqual(cmd.CustomerID()) {
			return kernel.ID{}, errs.NewObjectNotFoundError("order", cmd.OrderID().String())
		}
	}

	newComplaint, err := complaint.NewComplaint(
		cmd.CustomerID(),
		cmd.OrderID(),
		cmd.Description(),
		time.Now().UTC(),
	)
	if err != nil {
		return kernel.ID{}, err
	}

	if err = uow.ComplaintRepository().Add(ctx, newComplaint); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return newComplaint.ID(), nil
}
