package commands

import (
	"context"
	"fmt"
	"log/slog"

	"pindrop/internal/core/domain/model/complaint"
	"pindrop/internal/core/ports"
)

// UpdateComplaintCommandHandler moves complaints along the care workflow and
// tells the customer about the progress.
type UpdateComplaintCommandHandler struct {
	uowFactory ComplaintUoWFactory
	notifier   ports.NotificationSink
	logger     *slog.Logger
}

// NewUpdateComplaintCommandHandler creates a handler for complaint updates.
func NewUpdateComplaintCommandHandler(
	uowFactory ComplaintUoWFactory,
	notifier ports.NotificationSink,
	logger *slog.Logger,
) UpdateComplaintCommandHandler {
	return UpdateComplaintCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "complaints"),
	}
}

// Handle processes the update. Returns a complaint.InvalidStatusChangeError
// when the workflow graph has no such edge.
func (h UpdateComplaintCommandHandler) Handle(ctx context.Context, cmd UpdateComplaintCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	complaintRepo := uow.ComplaintRepository()

	cpl, err := complaintRepo.Get(ctx, cmd.ComplaintID())
	if err != nil {
		return err
	}

	if err = cpl.UpdateStatus(cmd.To()); err != nil {
		return err
	}

	if err = complaintRepo.Update(ctx, cpl); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyCustomer(ctx, cpl)
	return nil
}

// notifyCustomer tells the customer about the workflow progress, best effort.
func (h UpdateComplaintCommandHandler) notifyCustomer(ctx context.Context, cpl *complaint.Complaint) {
	message := fmt.Sprintf("Your complaint #%s is now %s", cpl.ID(), cpl.Status())
	if err := h.notifier.Notify(ctx, cpl.CustomerID(), message); err != nil {
		h.logger.Warn("customer notification failed",
			"complaint_id", cpl.ID().String(),
			"error", err)
	}
}
