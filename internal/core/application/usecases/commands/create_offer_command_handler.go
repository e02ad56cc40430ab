package commands

import (
	"context"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/offer"
)

// CreateOfferCommandHandler publishes new discount offers.
type CreateOfferCommandHandler struct {
	uowFactory OfferUoWFactory
}

// NewCreateOfferCommandHandler creates a handler for offer creation.
func NewCreateOfferCommandHandler(uowFactory OfferUoWFactory) CreateOfferCommandHandler {
	return CreateOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the new offer's identifier.
// A restaurant-scoped offer requires the restaurant to exist in the catalog.
// Discount percentage and scope consistency are enforced by the offer
// constructor.
func (h CreateOfferCommandHandler) Handle(ctx context.Context, cmd CreateOfferCommand) (kernel.ID, error) {
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

	if cmd.Scope() == offer.ScopeRestaurant && cmd.RestaurantID() != nil {
		if _, err := uow.CatalogRepository().GetRestaurant(ctx, *cmd.RestaurantID()); err != nil {
			return kernel.ID{}, err
		}
	}

	newOffer, err := offer.NewOffer(
		cmd.Description(),
		cmd.DiscountPct(),
		cmd.MinOrderValue(),
		cmd.Scope(),
		cmd.RestaurantID(),
	)
	if err != nil {
		return kernel.ID{}, err
	}

	if err = uow.OfferRepository().Add(ctx, newOffer); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return newOffer.ID(), nil
}
