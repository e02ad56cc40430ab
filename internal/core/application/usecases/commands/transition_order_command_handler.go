package commands

import (
	"context"
	"fmt"
	"log/slog"

	"pindrop/internal/core/domain/model/order"
	"pindrop/internal/core/domain/model/partner"
	"pindrop/internal/core/domain/services"
	"pindrop/internal/core/ports"
)

// TransitionOrderCommandHandler moves orders through their lifecycle on
// behalf of owners, care agents and delivery partners.
//
// Beyond the aggregate's own state machine the handler owns two side
// workflows, both inside the same transaction as the status change:
//   - Entering Out for Delivery claims the first available partner in the
//     restaurant's area and links them to the order. No free partner means
//     the whole transition fails and the order stays in Preparing
//   - Delivered, and Cancelled while the order was out for delivery, release
//     the claimed partner for new work
//
// After commit the customer is notified about the status change and a newly
// claimed partner about their assignment, both best effort.
type TransitionOrderCommandHandler struct {
	uowFactory TransitionUoWFactory
	notifier   ports.NotificationSink
	logger     *slog.Logger
}

// NewTransitionOrderCommandHandler creates a handler for order status changes.
func NewTransitionOrderCommandHandler(
	uowFactory TransitionUoWFactory,
	notifier ports.NotificationSink,
	logger *slog.Logger,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "order_transition"),
	}
}

// Handle processes the transition command.
//
// Failure modes surfaced to the caller:
//   - order.InvalidTransitionError when the lifecycle graph has no such edge
//   - order.ErrActorNotAllowed when the principal's role or scope does not
//     cover this transition
//   - services.ErrNoPartnerAvailable when handing off to delivery finds no
//     free partner in the area
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	actor, err := h.resolveActor(ctx, uow, cmd, o)
	if err != nil {
		return err
	}

	fromStatus := o.Status()

	var claimed *partner.DeliveryPartner
	if cmd.To() == order.StatusOutForDelivery {
		claimed, err = h.claimPartner(ctx, uow, o)
		if err != nil {
			return err
		}
	}

	if err = o.Transition(cmd.To(), actor); err != nil {
		return err
	}

	if claimed != nil {
		if err = partnerRepo.Update(ctx, claimed); err != nil {
			return err
		}
	}

	if shouldReleasePartner(fromStatus, cmd.To()) && o.Partner() != nil {
		carrier, getErr := partnerRepo.Get(ctx, *o.Partner())
		if getErr != nil {
			return getErr
		}
		carrier.Release()
		if err = partnerRepo.Update(ctx, carrier); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyCustomer(ctx, o)
	if claimed != nil {
		h.notifyPartner(ctx, o, claimed)
	}
	return nil
}

// resolveActor turns the command's role and user into a concrete Actor,
// verifying that the user actually controls what the role claims.
func (h TransitionOrderCommandHandler) resolveActor(
	ctx context.Context,
	uow TransitionUoW,
	cmd TransitionOrderCommand,
	o *order.Order,
) (order.Actor, error) {
	switch cmd.Role() {
	case ActorRoleOwner:
		restaurant, err := uow.CatalogRepository().GetRestaurant(ctx, o.RestaurantID())
		if err != nil {
			return nil, err
		}
		if restaurant.OwnerID() == nil || !restaurant.OwnerID().IsEqual(cmd.UserID()) {
			return nil, order.ErrActorNotAllowed
		}
		actor, err := order.NewOwnerActor(restaurant.ID())
		if err != nil {
			return nil, err
		}
		return actor, nil

	case ActorRoleCare:
		return order.NewCareActor(), nil

	case ActorRolePartner:
		p, err := uow.PartnerRepository().GetByUser(ctx, cmd.UserID())
		if err != nil {
			return nil, err
		}
		actor, err := order.NewDeliveryActor(p.ID())
		if err != nil {
			return nil, err
		}
		return actor, nil

	default:
		return nil, order.ErrActorNotAllowed
	}
}

// claimPartner finds and claims a free partner in the restaurant's area and
// links them to the order.
func (h TransitionOrderCommandHandler) claimPartner(
	ctx context.Context,
	uow TransitionUoW,
	o *order.Order,
) (*partner.DeliveryPartner, error) {
	restaurant, err := uow.CatalogRepository().GetRestaurant(ctx, o.RestaurantID())
	if err != nil {
		return nil, err
	}

	candidates, err := uow.PartnerRepository().GetAllAvailableInArea(ctx, restaurant.AreaCode())
	if err != nil {
		return nil, err
	}

	return services.NewPartnerMatcher().Match(o, candidates)
}

// shouldReleasePartner reports whether the transition frees the carrying
// partner for new work.
func shouldReleasePartner(from, to order.Status) bool {
	if to == order.StatusDelivered {
		return true
	}
	return to == order.StatusCancelled && from == order.StatusOutForDelivery
}

// notifyCustomer tells the customer about the status change, best effort.
func (h TransitionOrderCommandHandler) notifyCustomer(ctx context.Context, o *order.Order) {
	message := fmt.Sprintf("Your order #%s is now %s", o.ID(), o.Status())
	if err := h.notifier.Notify(ctx, o.CustomerID(), message); err != nil {
		h.logger.Warn("customer notification failed",
			"order_id", o.ID().String(),
			"error", err)
	}
}

// notifyPartner tells the claimed partner about their new delivery, best effort.
func (h TransitionOrderCommandHandler) notifyPartner(
	ctx context.Context,
	o *order.Order,
	claimed *partner.DeliveryPartner,
) {
	message := fmt.Sprintf("New delivery assigned: order #%s", o.ID())
	if err := h.notifier.Notify(ctx, claimed.UserID(), message); err != nil {
		h.logger.Warn("partner notification failed",
			"order_id", o.ID().String(),
			"partner_id", claimed.ID().String(),
			"error", err)
	}
}
