package commands

import (
	"context"
)

// TogglePartnerAvailabilityCommandHandler flips a delivery partner's
// availability when they go on or off shift.
type TogglePartnerAvailabilityCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewTogglePartnerAvailabilityCommandHandler creates a handler for partner
// availability toggles.
func NewTogglePartnerAvailabilityCommandHandler(uowFactory PartnerUoWFactory) TogglePartnerAvailabilityCommandHandler {
	return TogglePartnerAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the toggle command and returns the new availability.
func (h TogglePartnerAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd TogglePartnerAvailabilityCommand,
) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()

	p, err := partnerRepo.GetByUser(ctx, cmd.UserID())
	if err != nil {
		return false, err
	}

	available := p.ToggleAvailability()

	if err = partnerRepo.Update(ctx, p); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return available, nil
}
