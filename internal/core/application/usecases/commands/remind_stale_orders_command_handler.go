package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/order"
	"pindrop/internal/core/ports"
)

// RemindStaleOrdersCommandHandler scans for orders stuck in Placed status and
// nudges the restaurant owners to accept or reject them. Driven by the
// background job scheduler.
type RemindStaleOrdersCommandHandler struct {
	uowFactory StaleOrderUoWFactory
	notifier   ports.NotificationSink
	logger     *slog.Logger
}

// NewRemindStaleOrdersCommandHandler creates a handler for stale order reminders.
func NewRemindStaleOrdersCommandHandler(
	uowFactory StaleOrderUoWFactory,
	notifier ports.NotificationSink,
	logger *slog.Logger,
) RemindStaleOrdersCommandHandler {
	return RemindStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "stale_orders"),
	}
}

// Handle scans and notifies. Returns the number of reminded orders.
// Orders whose restaurant has no linked owner account are skipped.
func (h RemindStaleOrdersCommandHandler) Handle(ctx context.Context, cmd RemindStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.OlderThan())
	staleOrders, err := uow.OrderRepository().GetAllPlacedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	catalogRepo := uow.CatalogRepository()

	reminded := 0
	for _, staleOrder := range staleOrders {
		restaurant, err := catalogRepo.GetRestaurant(ctx, staleOrder.RestaurantID())
		if err != nil {
			return reminded, err
		}

		ownerID := restaurant.OwnerID()
		if ownerID == nil {
			continue
		}

		h.remindOwner(ctx, *ownerID, staleOrder)
		reminded++
	}

	if err := uow.Commit(ctx); err != nil {
		return reminded, err
	}

	return reminded, nil
}

// remindOwner nudges the owner about one waiting order, best effort.
func (h RemindStaleOrdersCommandHandler) remindOwner(ctx context.Context, ownerID kernel.ID, staleOrder *order.Order) {
	message := fmt.Sprintf("Order #%s has been waiting since %s, please accept or reject it",
		staleOrder.ID(), staleOrder.PlacedAt().Format(time.RFC3339))
	if err := h.notifier.Notify(ctx, ownerID, message); err != nil {
		h.logger.Warn("owner reminder failed",
			"order_id", staleOrder.ID().String(),
			"error", err)
	}
}
